// Package history generates deterministic mock customer interaction
// history for the demo. Records are seeded by customer ID so repeated
// runs show the same timeline.
package history

import "time"

// Sentiment labels.
const (
	LabelPositive = "positive"
	LabelNeutral  = "neutral"
	LabelNegative = "negative"
)

// Resolution states.
const (
	ResolutionResolved  = "resolved"
	ResolutionEscalated = "escalated"
	ResolutionPending   = "pending"
)

// Interaction is a single historical customer contact.
type Interaction struct {
	ID         string    `json:"id" yaml:"id"`
	CustomerID string    `json:"customerId" yaml:"customerId"`
	Timestamp  time.Time `json:"timestamp" yaml:"timestamp"`
	Channel    string    `json:"channel" yaml:"channel"` // call, chat, email, survey, social
	Score      float64   `json:"sentimentScore" yaml:"sentimentScore"`
	Label      string    `json:"sentimentLabel" yaml:"sentimentLabel"`
	Confidence int       `json:"confidence" yaml:"confidence"`
	Summary    string    `json:"summary" yaml:"summary"`
	AgentID    string    `json:"agentId,omitempty" yaml:"agentId,omitempty"`
	Resolution string    `json:"resolution,omitempty" yaml:"resolution,omitempty"`
}

// Summary aggregates an interaction timeline.
type Summary struct {
	TotalInteractions int            `json:"totalInteractions" yaml:"totalInteractions"`
	AverageSentiment  float64        `json:"averageSentiment" yaml:"averageSentiment"`
	Trend             string         `json:"trend" yaml:"trend"` // improving, declining, stable
	ChannelBreakdown  map[string]int `json:"channelBreakdown" yaml:"channelBreakdown"`
	Distribution      map[string]int `json:"sentimentDistribution" yaml:"sentimentDistribution"`
	PeriodDays        int            `json:"periodDays" yaml:"periodDays"`
	LastInteraction   time.Time      `json:"lastInteraction,omitzero" yaml:"lastInteraction,omitempty"`
}

// Customer describes a demo customer record.
type Customer struct {
	ID         string `json:"id" yaml:"id"`
	Name       string `json:"name" yaml:"name"`
	Email      string `json:"email" yaml:"email"`
	Tier       string `json:"tier" yaml:"tier"`
	Persona    string `json:"persona" yaml:"persona"`
	AccountAge string `json:"accountAge" yaml:"accountAge"`
}

// Report bundles a customer's generated timeline with its summary.
type Report struct {
	CustomerID   string        `json:"customerId" yaml:"customerId"`
	Customer     Customer      `json:"customer" yaml:"customer"`
	Interactions []Interaction `json:"interactions" yaml:"interactions"`
	Summary      Summary       `json:"summary" yaml:"summary"`
}
