package history

import (
	"fmt"
	"reflect"
	"testing"
	"time"

	"github.com/jonboulle/clockwork"
)

func fixedClock() clockwork.Clock {
	return clockwork.NewFakeClockAt(time.Date(2025, 6, 15, 12, 0, 0, 0, time.UTC))
}

func TestGenerateDeterministic(t *testing.T) {
	clock := fixedClock()
	a := Generate(clock, "CUST-12345", 90, "")
	b := Generate(clock, "CUST-12345", 90, "")
	if !reflect.DeepEqual(a, b) {
		t.Fatal("same customer, window and clock should produce identical timelines")
	}
	if len(a) == 0 {
		t.Fatal("timeline is empty")
	}
}

func TestGenerateDiffersByWindow(t *testing.T) {
	clock := fixedClock()
	a := Generate(clock, "CUST-12345", 30, "")
	b := Generate(clock, "CUST-12345", 90, "")
	if reflect.DeepEqual(a, b) {
		t.Fatal("different windows should reseed the timeline")
	}
}

func TestGenerateRecordShape(t *testing.T) {
	clock := fixedClock()
	now := clock.Now()
	start := now.AddDate(0, 0, -60)

	interactions := Generate(clock, "CUST-67890", 60, "")
	for i, in := range interactions {
		if want := fmt.Sprintf("INT-CUST-67890-%04d", i+1); in.ID != want {
			t.Fatalf("interaction %d ID = %q, want %q", i, in.ID, want)
		}
		if in.CustomerID != "CUST-67890" {
			t.Fatalf("interaction %d CustomerID = %q", i, in.CustomerID)
		}
		if in.Timestamp.Before(start) {
			t.Fatalf("interaction %d timestamp %v precedes window start %v", i, in.Timestamp, start)
		}
		if in.Score < -1 || in.Score > 1 {
			t.Fatalf("interaction %d score %v out of range", i, in.Score)
		}
		if in.Confidence < 65 || in.Confidence > 95 {
			t.Fatalf("interaction %d confidence %d out of range", i, in.Confidence)
		}
		if in.Summary == "" {
			t.Fatalf("interaction %d has empty summary", i)
		}
		switch in.Channel {
		case "call", "chat":
			if in.AgentID == "" {
				t.Fatalf("interaction %d on %s missing agent ID", i, in.Channel)
			}
		case "email", "survey", "social":
			if in.AgentID != "" {
				t.Fatalf("interaction %d on %s should not carry agent ID", i, in.Channel)
			}
		default:
			t.Fatalf("interaction %d has unknown channel %q", i, in.Channel)
		}
		if i > 0 && in.Timestamp.Before(interactions[i-1].Timestamp) {
			t.Fatalf("timeline not chronological at %d", i)
		}
	}
}

func TestGenerateCountWithinSpan(t *testing.T) {
	clock := fixedClock()
	cases := []struct {
		days   int
		lo, hi int
	}{
		// satisfied_loyal has low frequency.
		{30, 1, 2},
		{60, 2, 3},
		{90, 3, 4},
	}
	for _, tc := range cases {
		got := len(Generate(clock, "CUST-67890", tc.days, ""))
		if got < tc.lo || got > tc.hi {
			t.Fatalf("days=%d count = %d, want %d-%d", tc.days, got, tc.lo, tc.hi)
		}
	}
}

func TestScoreToLabel(t *testing.T) {
	cases := []struct {
		score float64
		want  string
	}{
		{0.5, LabelPositive},
		{0.15, LabelPositive},
		{0.14, LabelNeutral},
		{0.0, LabelNeutral},
		{-0.14, LabelNeutral},
		{-0.15, LabelNegative},
		{-0.8, LabelNegative},
	}
	for _, tc := range cases {
		if got := scoreToLabel(tc.score); got != tc.want {
			t.Fatalf("scoreToLabel(%v) = %q, want %q", tc.score, got, tc.want)
		}
	}
}

func TestPositiveInteractionsResolve(t *testing.T) {
	clock := fixedClock()
	for _, id := range demoCustomerIDs {
		for _, in := range Generate(clock, id, 90, "") {
			if in.Label == LabelPositive && in.Resolution != ResolutionResolved {
				t.Fatalf("%s: positive interaction %s has resolution %q", id, in.ID, in.Resolution)
			}
		}
	}
}

func TestPickPersona(t *testing.T) {
	rng := seededRand("persona-draws")

	if got := pickPersona(rng, "CUST-67890").Name; got != "satisfied_loyal" {
		t.Fatalf("demo customer persona = %q, want fixed assignment", got)
	}

	// Unknown customers draw from the whole table, not just the personas
	// the demo customers happen to use.
	seen := make(map[string]bool)
	for range 200 {
		seen[pickPersona(rng, "CUST-99999").Name] = true
	}
	for _, name := range personaNames {
		if !seen[name] {
			t.Fatalf("persona %q never drawn", name)
		}
	}
}

func TestGenerateUnknownCustomerStable(t *testing.T) {
	clock := fixedClock()
	a := Generate(clock, "CUST-99999", 90, "")
	b := Generate(clock, "CUST-99999", 90, "")
	if !reflect.DeepEqual(a, b) {
		t.Fatal("unknown customers should still generate deterministically")
	}
}
