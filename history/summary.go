package history

// Summarize computes aggregate statistics over a timeline. Interactions are
// expected in chronological order, as returned by Generate.
func Summarize(interactions []Interaction) Summary {
	if len(interactions) == 0 {
		return Summary{
			Trend:            TrendStable,
			ChannelBreakdown: map[string]int{},
			Distribution:     map[string]int{LabelPositive: 0, LabelNeutral: 0, LabelNegative: 0},
		}
	}

	total := 0.0
	breakdown := make(map[string]int)
	distribution := map[string]int{LabelPositive: 0, LabelNeutral: 0, LabelNegative: 0}
	for _, in := range interactions {
		total += in.Score
		breakdown[in.Channel]++
		distribution[in.Label]++
	}

	periodDays := 0
	if len(interactions) >= 2 {
		first := interactions[0].Timestamp
		last := interactions[len(interactions)-1].Timestamp
		periodDays = int(last.Sub(first).Hours() / 24)
	}

	return Summary{
		TotalInteractions: len(interactions),
		AverageSentiment:  round3(total / float64(len(interactions))),
		Trend:             trend(interactions),
		ChannelBreakdown:  breakdown,
		Distribution:      distribution,
		PeriodDays:        periodDays,
		LastInteraction:   interactions[len(interactions)-1].Timestamp,
	}
}

// trend compares the first third of the timeline against the last third.
func trend(interactions []Interaction) string {
	third := max(1, len(interactions)/3)

	firstAvg := 0.0
	for _, in := range interactions[:third] {
		firstAvg += in.Score
	}
	firstAvg /= float64(third)

	lastAvg := 0.0
	for _, in := range interactions[len(interactions)-third:] {
		lastAvg += in.Score
	}
	lastAvg /= float64(third)

	switch diff := lastAvg - firstAvg; {
	case diff > 0.15:
		return TrendImproving
	case diff < -0.15:
		return TrendDeclining
	default:
		return TrendStable
	}
}
