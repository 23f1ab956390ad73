package history

import (
	"fmt"
	"sync"

	"github.com/jonboulle/clockwork"
)

// validDays are the supported history windows.
var validDays = map[int]bool{30: true, 60: true, 90: true}

const defaultDays = 90

// Service generates and caches customer timelines so the demo shows a
// consistent history within a session.
type Service struct {
	clock clockwork.Clock

	mu    sync.Mutex
	cache map[string]*Report
}

// NewService creates a history service using the real clock.
func NewService() *Service {
	return NewServiceWithClock(clockwork.NewRealClock())
}

// NewServiceWithClock creates a history service with an injected clock.
func NewServiceWithClock(clock clockwork.Clock) *Service {
	return &Service{
		clock: clock,
		cache: make(map[string]*Report),
	}
}

// Get returns the cached report for the customer, generating it on first
// use. Unsupported day windows fall back to the default.
func (s *Service) Get(customerID string, days int) *Report {
	if !validDays[days] {
		days = defaultDays
	}
	key := fmt.Sprintf("%s_%d", customerID, days)

	s.mu.Lock()
	defer s.mu.Unlock()

	if r, ok := s.cache[key]; ok {
		return r
	}

	customer, ok := demoCustomers[customerID]
	if !ok {
		customer = Customer{ID: customerID, Name: "Unknown Customer"}
	}

	interactions := Generate(s.clock, customerID, days, customer.Persona)
	report := &Report{
		CustomerID:   customerID,
		Customer:     customer,
		Interactions: interactions,
		Summary:      Summarize(interactions),
	}
	s.cache[key] = report
	return report
}

// Reset clears the cache.
func (s *Service) Reset() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.cache = make(map[string]*Report)
}
