package assist

import (
	"strings"
	"testing"
)

func testEngine(t *testing.T) *Engine {
	t.Helper()
	store := NewStore()
	if err := store.LoadSamples(); err != nil {
		t.Fatalf("LoadSamples() error = %v", err)
	}
	return NewEngine(store)
}

func TestEngineSuggestEmptyConversation(t *testing.T) {
	e := testEngine(t)

	resp := e.Suggest(nil)
	if len(resp.Suggestions) != 1 || !strings.Contains(resp.Suggestions[0], "How can I help") {
		t.Fatalf("Suggest(empty) = %+v, want single greeting", resp.Suggestions)
	}
	if resp.Sentiment != SentimentNeutral {
		t.Fatalf("Suggest(empty).Sentiment = %q, want neutral", resp.Sentiment)
	}
	if len(resp.Cards) != 0 {
		t.Fatalf("Suggest(empty).Cards = %v, want none", resp.Cards)
	}
}

func TestEngineSuggestAgentOnlyConversation(t *testing.T) {
	e := testEngine(t)

	resp := e.Suggest([]Turn{{Role: "agent", Content: "Hello, how can I help?"}})
	if len(resp.Suggestions) != 1 || !strings.Contains(resp.Suggestions[0], "How can I help") {
		t.Fatalf("Suggest(agent-only) = %+v, want greeting", resp.Suggestions)
	}
}

func TestEngineSuggestUsesLastCustomerMessage(t *testing.T) {
	e := testEngine(t)

	resp := e.Suggest([]Turn{
		{Role: RoleCustomer, Content: "hi"},
		{Role: "agent", Content: "Hello! What can I do for you?"},
		{Role: RoleCustomer, Content: "The assist suggestions are not appearing, this issue is frustrating"},
	})

	if resp.Sentiment != SentimentNegative {
		t.Fatalf("Suggest().Sentiment = %q, want negative", resp.Sentiment)
	}
	if len(resp.Suggestions) == 0 {
		t.Fatal("Suggest() returned no suggestions")
	}
	if len(resp.Cards) == 0 {
		t.Fatal("Suggest() returned no knowledge cards")
	}
	for _, c := range resp.Cards {
		if c.Title == "" || c.URL == "" {
			t.Fatalf("card missing fields: %+v", c)
		}
		if len(c.Summary) > summaryLimit+3 {
			t.Fatalf("card summary too long: %d chars", len(c.Summary))
		}
	}
}
