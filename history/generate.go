package history

import (
	"crypto/md5"
	"encoding/binary"
	"fmt"
	"math"
	"math/rand"
	"sort"
	"time"

	"github.com/jonboulle/clockwork"
)

// mockDataVersion is folded into the seed so all timelines regenerate when
// the generation rules change.
const mockDataVersion = "v2"

// Label thresholds for converting a score to a label.
const (
	positiveThreshold = 0.15
	negativeThreshold = -0.15
)

type channelProfile struct {
	name      string
	weight    float64
	summaries map[string][]string // label -> candidate summaries
}

var channelProfiles = []channelProfile{
	{
		name:   "call",
		weight: 0.35,
		summaries: map[string][]string{
			LabelPositive: {
				"Called to thank support for quick resolution",
				"Appreciation call for excellent service",
				"Called to provide positive feedback",
				"Renewal call - very satisfied with service",
				"Quick call - issue resolved immediately",
			},
			LabelNeutral: {
				"Called about billing inquiry",
				"Phone support for account settings update",
				"Follow-up call on previous ticket",
				"Phone verification for account change",
				"Called about promotional offer details",
			},
			LabelNegative: {
				"Complaint call about service quality",
				"Called frustrated about recurring issue",
				"Voice call regarding service outage",
				"Called to escalate unresolved problem",
				"Called to cancel due to poor experience",
			},
		},
	},
	{
		name:   "chat",
		weight: 0.30,
		summaries: map[string][]string{
			LabelPositive: {
				"Chat feedback - great support experience",
				"Quick chat - agent resolved instantly",
				"Chat to express satisfaction with new feature",
				"Positive chat about recent upgrade",
			},
			LabelNeutral: {
				"Web chat asking about features",
				"Chat inquiry about pricing",
				"Chat about order status",
				"Live chat billing question",
				"Quick question via chat widget",
			},
			LabelNegative: {
				"Chat complaint about wait times",
				"Frustrated chat - issue not resolved",
				"Chat about ongoing service problems",
				"Bot-to-agent transfer - complex issue",
			},
		},
	},
	{
		name:   "email",
		weight: 0.20,
		summaries: map[string][]string{
			LabelPositive: {
				"Email thanking team for support",
				"Positive feedback on recent changes",
				"Email praising customer service rep",
				"Satisfied response to resolution email",
			},
			LabelNeutral: {
				"Email inquiry about documentation",
				"Account verification email",
				"Email about contract renewal",
				"Feature request submission",
			},
			LabelNegative: {
				"Email complaint escalation",
				"Email about invoice discrepancy",
				"Email requesting refund",
				"Frustrated email about delayed response",
			},
		},
	},
	{
		name:   "survey",
		weight: 0.10,
		summaries: map[string][]string{
			LabelPositive: {
				"NPS survey - promoter score (9-10)",
				"Excellent rating on satisfaction survey",
				"Positive product feedback survey",
			},
			LabelNeutral: {
				"NPS survey - passive score (7-8)",
				"Annual customer survey response",
				"Quick pulse survey completed",
			},
			LabelNegative: {
				"NPS survey - detractor score (0-6)",
				"Low satisfaction survey rating",
				"Critical feedback in service survey",
			},
		},
	},
	{
		name:   "social",
		weight: 0.05,
		summaries: map[string][]string{
			LabelPositive: {
				"Social media praise/testimonial",
				"Positive public review",
				"Twitter shoutout to support team",
			},
			LabelNeutral: {
				"Facebook message inquiry",
				"LinkedIn comment interaction",
				"Instagram DM support question",
			},
			LabelNegative: {
				"Social media complaint",
				"Negative public review",
				"Twitter complaint about service",
			},
		},
	},
}

// seededRand builds a deterministic generator for the given key.
func seededRand(key string) *rand.Rand {
	sum := md5.Sum([]byte(mockDataVersion + "_" + key))
	seed := int64(binary.BigEndian.Uint32(sum[:4]))
	return rand.New(rand.NewSource(seed))
}

// Generate produces a deterministic interaction timeline for the customer.
// Persona is looked up from the demo customer table when empty; the clock
// anchors "now" so tests can pin timestamps.
func Generate(clock clockwork.Clock, customerID string, days int, personaName string) []Interaction {
	rng := seededRand(fmt.Sprintf("%s_%d", customerID, days))

	var persona Persona
	if personaName != "" {
		persona = LookupPersona(personaName)
	} else {
		persona = pickPersona(rng, customerID)
	}

	count := interactionCount(rng, persona.Frequency, days)

	now := clock.Now()
	start := now.AddDate(0, 0, -days)
	window := now.Sub(start)

	timestamps := make([]time.Time, count)
	for i := range timestamps {
		timestamps[i] = start.
			Add(time.Duration(rng.Float64() * float64(days) * 24 * float64(time.Hour))).
			Add(time.Duration(8+rng.Intn(13)) * time.Hour).
			Add(time.Duration(rng.Intn(60)) * time.Minute)
	}
	sort.Slice(timestamps, func(i, j int) bool { return timestamps[i].Before(timestamps[j]) })

	interactions := make([]Interaction, 0, count)
	for i, ts := range timestamps {
		profile := pickChannel(rng)
		progress := float64(ts.Sub(start)) / float64(window)

		score := sentimentScore(rng, persona, progress)
		label := scoreToLabel(score)

		candidates := profile.summaries[label]
		summary := candidates[rng.Intn(len(candidates))]

		agentID := ""
		if profile.name == "call" || profile.name == "chat" {
			agentID = fmt.Sprintf("AGENT-%d", 100+rng.Intn(900))
		}

		interactions = append(interactions, Interaction{
			ID:         fmt.Sprintf("INT-%s-%04d", customerID, i+1),
			CustomerID: customerID,
			Timestamp:  ts,
			Channel:    profile.name,
			Score:      round3(score),
			Label:      label,
			Confidence: 65 + rng.Intn(31),
			Summary:    summary,
			AgentID:    agentID,
			Resolution: resolution(rng, label),
		})
	}
	return interactions
}

// pickPersona resolves a customer's persona: demo customers use their fixed
// assignment, anyone else draws uniformly from the whole persona table.
func pickPersona(rng *rand.Rand, customerID string) Persona {
	if c, ok := demoCustomers[customerID]; ok {
		return LookupPersona(c.Persona)
	}
	return personas[personaNames[rng.Intn(len(personaNames))]]
}

// interactionCount picks a record count for the frequency and window.
// Customers typically contact support about once a month, so 90 days of
// history lands at 3-5 records.
func interactionCount(rng *rand.Rand, frequency string, days int) int {
	type span struct{ lo, hi int }
	var counts map[string]span
	switch {
	case days <= 30:
		counts = map[string]span{"low": {1, 2}, "medium": {2, 2}, "high": {2, 3}}
	case days <= 60:
		counts = map[string]span{"low": {2, 3}, "medium": {2, 3}, "high": {3, 4}}
	default:
		counts = map[string]span{"low": {3, 4}, "medium": {3, 5}, "high": {4, 5}}
	}
	s, ok := counts[frequency]
	if !ok {
		s = span{3, 4}
	}
	return s.lo + rng.Intn(s.hi-s.lo+1)
}

func pickChannel(rng *rand.Rand) channelProfile {
	total := 0.0
	for _, p := range channelProfiles {
		total += p.weight
	}
	r := rng.Float64() * total
	for _, p := range channelProfiles {
		r -= p.weight
		if r < 0 {
			return p
		}
	}
	return channelProfiles[len(channelProfiles)-1]
}

// sentimentScore combines the persona baseline, a trend modifier that grows
// with progress through the window, and damped noise.
func sentimentScore(rng *rand.Rand, p Persona, progress float64) float64 {
	modifier := 0.0
	switch p.Trend {
	case TrendImproving:
		modifier = -0.3 + progress*0.7
	case TrendDeclining:
		modifier = 0.3 - progress*0.7
	case TrendVolatile:
		modifier = uniform(rng, -0.3, 0.3)
	}

	// Noise is damped so trends stay visible in the demo.
	variance := p.Variance * 0.6
	score := p.BaseSentiment + modifier + uniform(rng, -variance, variance)

	return math.Max(-1.0, math.Min(1.0, score))
}

func scoreToLabel(score float64) string {
	switch {
	case score >= positiveThreshold:
		return LabelPositive
	case score <= negativeThreshold:
		return LabelNegative
	default:
		return LabelNeutral
	}
}

func resolution(rng *rand.Rand, label string) string {
	switch {
	case label == LabelPositive:
		return ResolutionResolved
	case label == LabelNegative && rng.Float64() > 0.6:
		return ResolutionEscalated
	default:
		options := []string{ResolutionResolved, ResolutionPending, ResolutionResolved}
		return options[rng.Intn(len(options))]
	}
}

func uniform(rng *rand.Rand, lo, hi float64) float64 {
	return lo + rng.Float64()*(hi-lo)
}

func round3(v float64) float64 {
	return math.Round(v*1000) / 1000
}
