package assist

import (
	"fmt"
	"strings"
)

const maxSuggestions = 3

// GenerateSuggestions produces up to three candidate replies for the last
// customer message, using knowledge search hits and detected sentiment.
func GenerateSuggestions(message string, results []Result, sentiment string) []string {
	var suggestions []string
	lower := strings.ToLower(message)

	if containsWord(lower, "hi", "hello", "hey") {
		suggestions = append(suggestions,
			"Hello! I'd be happy to help you today. What can I assist you with?")
	}

	if sentiment == SentimentNegative {
		suggestions = append(suggestions,
			"I understand this can be frustrating. Let me help you resolve this issue.")
	}

	if len(results) > 0 {
		top := results[0]

		if strings.Contains(lower, "configure") || strings.Contains(lower, "setup") || strings.Contains(lower, "set up") {
			suggestions = append(suggestions, fmt.Sprintf(
				"Based on our documentation about %s, let me walk you through the configuration steps.",
				top.Title))
		}

		if strings.Contains(lower, "not working") || strings.Contains(lower, "error") || strings.Contains(lower, "issue") {
			suggestions = append(suggestions, fmt.Sprintf(
				"I found a relevant troubleshooting guide. The most common cause is usually related to configuration settings. Have you checked the %s?",
				strings.ToLower(strings.TrimPrefix(top.Title, "About "))))
		}

		if strings.Contains(lower, "where") || strings.Contains(lower, "how do i") {
			suggestions = append(suggestions, fmt.Sprintf(
				"You can find this in the Admin section. According to our %s documentation, here are the steps...",
				top.Title))
		}

		if strings.Contains(lower, "suggestions") &&
			(strings.Contains(lower, "not showing") || strings.Contains(lower, "not appearing")) {
			suggestions = append(suggestions,
				"For assist suggestions not appearing, please check: 1) NLU confidence threshold (try lowering to 0.6), 2) Knowledge base connection, 3) Queue configuration.")
		}
	}

	if len(suggestions) == 0 {
		suggestions = append(suggestions,
			"I'll be happy to help you with that. Could you provide more details about what you're trying to accomplish?",
			"Let me look into this for you. Can you tell me which product area this relates to?")
	}

	if len(suggestions) > maxSuggestions {
		suggestions = suggestions[:maxSuggestions]
	}
	return suggestions
}

// containsWord reports whether any of the words appears as a standalone
// token in text. A plain substring match would fire on words like "this".
func containsWord(text string, words ...string) bool {
	tokens := strings.FieldsFunc(text, func(r rune) bool {
		return r == ' ' || r == ',' || r == '.' || r == '!' || r == '?' || r == '\n'
	})
	for _, tok := range tokens {
		for _, w := range words {
			if tok == w {
				return true
			}
		}
	}
	return false
}
