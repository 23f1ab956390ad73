package assist

import "strings"

// Sentiment labels.
const (
	SentimentPositive = "positive"
	SentimentNeutral  = "neutral"
	SentimentNegative = "negative"
)

var negativeWords = []string{
	"problem", "issue", "broken", "not working", "error", "failed",
	"frustrated", "angry", "upset", "terrible", "worst", "hate",
	"disappointed", "annoyed", "confused", "stuck", "help",
}

var positiveWords = []string{
	"thanks", "thank you", "great", "good", "excellent", "perfect",
	"happy", "pleased", "appreciate", "wonderful", "helpful", "solved",
}

// DetectSentiment classifies text by keyword counts. It is intentionally
// simple; the demo needs a fast in-process signal, not a model.
func DetectSentiment(text string) string {
	lower := strings.ToLower(text)

	negative := 0
	for _, w := range negativeWords {
		if strings.Contains(lower, w) {
			negative++
		}
	}
	positive := 0
	for _, w := range positiveWords {
		if strings.Contains(lower, w) {
			positive++
		}
	}

	switch {
	case negative > positive:
		return SentimentNegative
	case positive > negative:
		return SentimentPositive
	default:
		return SentimentNeutral
	}
}
