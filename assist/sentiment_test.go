package assist

import "testing"

func TestDetectSentiment(t *testing.T) {
	tests := []struct {
		name string
		text string
		want string
	}{
		{"negative keywords", "This is broken and I'm frustrated", SentimentNegative},
		{"positive keywords", "Thanks, that was great and very helpful", SentimentPositive},
		{"no keywords", "What time is the webinar tomorrow", SentimentNeutral},
		{"balanced counts", "Thanks, but there is still a problem", SentimentNeutral},
		{"case insensitive", "TERRIBLE experience, the export FAILED", SentimentNegative},
		{"empty text", "", SentimentNeutral},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := DetectSentiment(tt.text); got != tt.want {
				t.Fatalf("DetectSentiment(%q) = %q, want %q", tt.text, got, tt.want)
			}
		})
	}
}
