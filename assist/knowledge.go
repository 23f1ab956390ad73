// Package assist provides the in-process agent-assist backend: keyword
// sentiment detection, a small knowledge store, and rule-based reply
// suggestions.
package assist

import (
	"fmt"
	"math"
	"sort"
	"strings"
	"sync"
	"unicode"
)

// Document is a knowledge-base article.
type Document struct {
	ID       string
	Title    string
	URL      string
	Category string
	Content  string // plain text, markup already stripped
}

// Result is a scored search hit.
type Result struct {
	Document
	Relevance float64
}

const summaryLimit = 200

// Summary returns a truncated preview of the document content.
func (r Result) Summary() string {
	if len(r.Content) <= summaryLimit {
		return r.Content
	}
	return r.Content[:summaryLimit] + "..."
}

// Store is an in-memory keyword-scored document store.
type Store struct {
	mu     sync.RWMutex
	docs   []Document
	tokens []map[string]int // term frequencies, parallel to docs
}

// NewStore creates an empty knowledge store.
func NewStore() *Store {
	return &Store{}
}

// Add indexes a document. Content is tokenized together with the title so
// title terms are searchable.
func (s *Store) Add(doc Document) error {
	if strings.TrimSpace(doc.ID) == "" {
		return fmt.Errorf("knowledge: document id is required")
	}
	if strings.TrimSpace(doc.Content) == "" {
		return fmt.Errorf("knowledge: document %s has no content", doc.ID)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	for i, existing := range s.docs {
		if existing.ID == doc.ID {
			s.docs[i] = doc
			s.tokens[i] = termFrequencies(doc.Title + " " + doc.Content)
			return nil
		}
	}
	s.docs = append(s.docs, doc)
	s.tokens = append(s.tokens, termFrequencies(doc.Title+" "+doc.Content))
	return nil
}

// Len reports how many documents are indexed.
func (s *Store) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.docs)
}

// Search returns up to topK documents ranked by query-term overlap.
// Relevance is the fraction of query terms present, with a small term
// frequency bonus, clamped to [0, 1]. Documents with no overlap are omitted.
func (s *Store) Search(query string, topK int) []Result {
	terms := tokenize(query)
	if len(terms) == 0 || topK <= 0 {
		return nil
	}

	unique := make(map[string]bool, len(terms))
	for _, t := range terms {
		unique[t] = true
	}

	s.mu.RLock()
	defer s.mu.RUnlock()

	results := make([]Result, 0, len(s.docs))
	for i, doc := range s.docs {
		tf := s.tokens[i]

		matched := 0
		bonus := 0.0
		for term := range unique {
			if n := tf[term]; n > 0 {
				matched++
				bonus += math.Min(float64(n), 5) / 100
			}
		}
		if matched == 0 {
			continue
		}

		relevance := float64(matched)/float64(len(unique)) + bonus
		results = append(results, Result{
			Document:  doc,
			Relevance: math.Round(math.Min(relevance, 1)*10000) / 10000,
		})
	}

	sort.SliceStable(results, func(i, j int) bool {
		if results[i].Relevance != results[j].Relevance {
			return results[i].Relevance > results[j].Relevance
		}
		return results[i].ID < results[j].ID
	})

	if len(results) > topK {
		results = results[:topK]
	}
	return results
}

var stopwords = map[string]bool{
	"a": true, "an": true, "and": true, "are": true, "as": true, "at": true,
	"be": true, "by": true, "do": true, "for": true, "from": true, "how": true,
	"i": true, "in": true, "is": true, "it": true, "my": true, "of": true,
	"on": true, "or": true, "that": true, "the": true, "this": true,
	"to": true, "was": true, "what": true, "with": true, "you": true,
}

// tokenize lowercases, splits on non-alphanumerics, and drops stopwords and
// single-character fragments.
func tokenize(text string) []string {
	fields := strings.FieldsFunc(strings.ToLower(text), func(r rune) bool {
		return !unicode.IsLetter(r) && !unicode.IsDigit(r)
	})

	out := make([]string, 0, len(fields))
	for _, f := range fields {
		if len(f) < 2 || stopwords[f] {
			continue
		}
		out = append(out, f)
	}
	return out
}

func termFrequencies(text string) map[string]int {
	tf := make(map[string]int)
	for _, t := range tokenize(text) {
		tf[t]++
	}
	return tf
}
