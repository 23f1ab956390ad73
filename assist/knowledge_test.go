package assist

import (
	"strings"
	"testing"
)

func testStore(t *testing.T) *Store {
	t.Helper()
	s := NewStore()
	docs := []Document{
		{ID: "d1", Title: "Configure Routing", Category: "Contact Center",
			Content: "Routing assigns interactions to queues. Skills based routing matches agents."},
		{ID: "d2", Title: "Billing FAQ", Category: "Billing",
			Content: "Invoices are issued monthly. Refunds follow the billing policy."},
		{ID: "d3", Title: "Troubleshoot Messaging", Category: "Troubleshooting",
			Content: "If messaging is not loading, verify the deployment snippet and the queue."},
	}
	for _, d := range docs {
		if err := s.Add(d); err != nil {
			t.Fatalf("Add(%s) error = %v", d.ID, err)
		}
	}
	return s
}

func TestStoreSearchRanksByOverlap(t *testing.T) {
	s := testStore(t)

	results := s.Search("messaging deployment not loading", 3)
	if len(results) == 0 {
		t.Fatal("Search() returned no results")
	}
	if results[0].ID != "d3" {
		t.Fatalf("Search() top hit = %s, want d3", results[0].ID)
	}
	for _, r := range results {
		if r.Relevance <= 0 || r.Relevance > 1 {
			t.Fatalf("relevance %v out of range (0, 1] for %s", r.Relevance, r.ID)
		}
	}
}

func TestStoreSearchOmitsUnrelatedDocs(t *testing.T) {
	s := testStore(t)

	for _, r := range s.Search("refund invoice", 3) {
		if r.ID == "d1" {
			t.Fatalf("Search() returned unrelated doc d1 with relevance %v", r.Relevance)
		}
	}
}

func TestStoreSearchEmptyQuery(t *testing.T) {
	s := testStore(t)
	if got := s.Search("   ", 3); got != nil {
		t.Fatalf("Search(blank) = %v, want nil", got)
	}
	if got := s.Search("routing", 0); got != nil {
		t.Fatalf("Search(topK=0) = %v, want nil", got)
	}
}

func TestStoreAddValidatesAndReplaces(t *testing.T) {
	s := NewStore()
	if err := s.Add(Document{ID: "", Content: "x"}); err == nil {
		t.Fatal("Add() with empty ID should fail")
	}
	if err := s.Add(Document{ID: "d1", Content: " "}); err == nil {
		t.Fatal("Add() with empty content should fail")
	}

	if err := s.Add(Document{ID: "d1", Title: "One", Content: "alpha"}); err != nil {
		t.Fatalf("Add() error = %v", err)
	}
	if err := s.Add(Document{ID: "d1", Title: "One", Content: "beta"}); err != nil {
		t.Fatalf("Add() replace error = %v", err)
	}
	if s.Len() != 1 {
		t.Fatalf("Len() = %d after replacing, want 1", s.Len())
	}
	if got := s.Search("beta", 1); len(got) != 1 {
		t.Fatalf("Search(beta) = %v, want the replaced doc", got)
	}
}

func TestExtractTextStripsMarkup(t *testing.T) {
	md := "# Title\n\nSome **bold** text.\n\n- item one\n- item two\n"
	got := ExtractText([]byte(md))

	for _, want := range []string{"Title", "Some", "bold", "item one", "item two"} {
		if !strings.Contains(got, want) {
			t.Fatalf("ExtractText() = %q, missing %q", got, want)
		}
	}
	for _, markup := range []string{"#", "**", "- "} {
		if strings.Contains(got, markup) {
			t.Fatalf("ExtractText() = %q, still contains markup %q", got, markup)
		}
	}
}

func TestLoadSamples(t *testing.T) {
	s := NewStore()
	if err := s.LoadSamples(); err != nil {
		t.Fatalf("LoadSamples() error = %v", err)
	}
	if s.Len() != len(sampleDocs) {
		t.Fatalf("Len() = %d, want %d", s.Len(), len(sampleDocs))
	}

	results := s.Search("suggestions not appearing confidence threshold", 3)
	if len(results) == 0 {
		t.Fatal("Search() over samples returned nothing")
	}
	if results[0].Category != "AI" {
		t.Fatalf("top sample hit category = %q, want AI", results[0].Category)
	}
}
