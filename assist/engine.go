package assist

import (
	"time"

	"github.com/mkalens/agentdesk/logger"
)

// RoleCustomer marks customer-authored turns in a conversation.
const RoleCustomer = "customer"

// Turn is one conversation entry as seen by the engine.
type Turn struct {
	Role    string
	Content string
}

// Card is a knowledge article preview attached to a suggestion response.
type Card struct {
	Title     string
	Summary   string
	URL       string
	Category  string
	Relevance float64
}

// Response is the engine output for one suggestion request.
type Response struct {
	Suggestions []string
	Cards       []Card
	Sentiment   string
	Latency     time.Duration
}

const searchTopK = 3

// Engine combines knowledge search, sentiment detection, and suggestion
// generation.
type Engine struct {
	store *Store
}

// NewEngine creates an engine over the given store.
func NewEngine(store *Store) *Engine {
	return &Engine{store: store}
}

// Suggest computes reply suggestions from the conversation so far. Only
// customer turns are considered; with none present a greeting is suggested.
func (e *Engine) Suggest(conversation []Turn) Response {
	start := time.Now()

	last := ""
	for _, t := range conversation {
		if t.Role == RoleCustomer {
			last = t.Content
		}
	}

	if last == "" {
		return Response{
			Suggestions: []string{"Hello! How can I help you today?"},
			Sentiment:   SentimentNeutral,
		}
	}

	results := e.store.Search(last, searchTopK)
	sentiment := DetectSentiment(last)
	suggestions := GenerateSuggestions(last, results, sentiment)

	cards := make([]Card, 0, len(results))
	for _, r := range results {
		cards = append(cards, Card{
			Title:     r.Title,
			Summary:   r.Summary(),
			URL:       r.URL,
			Category:  r.Category,
			Relevance: r.Relevance,
		})
	}

	resp := Response{
		Suggestions: suggestions,
		Cards:       cards,
		Sentiment:   sentiment,
		Latency:     time.Since(start),
	}
	logger.Debug("assist suggest",
		"sentiment", resp.Sentiment,
		"suggestions", len(resp.Suggestions),
		"cards", len(resp.Cards),
	)
	return resp
}
