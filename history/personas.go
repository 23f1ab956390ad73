package history

// Persona describes how a customer's sentiment behaves over time.
type Persona struct {
	Name          string
	Description   string
	BaseSentiment float64
	Variance      float64
	Trend         string // stable, declining, improving, volatile
	Frequency     string // low, medium, high
}

// Trend values.
const (
	TrendStable    = "stable"
	TrendDeclining = "declining"
	TrendImproving = "improving"
	TrendVolatile  = "volatile"
)

// personaNames fixes the persona order so seeded draws stay deterministic.
var personaNames = []string{
	"satisfied_loyal",
	"frustrated_at_risk",
	"new_curious",
	"volatile_mixed",
	"recovering_churned",
}

var personas = map[string]Persona{
	"satisfied_loyal": {
		Name:          "satisfied_loyal",
		Description:   "Long-term happy customer with occasional minor issues",
		BaseSentiment: 0.45,
		Variance:      0.35,
		Trend:         TrendStable,
		Frequency:     "low",
	},
	"frustrated_at_risk": {
		Name:          "frustrated_at_risk",
		Description:   "Customer experiencing recurring issues, at risk of churning",
		BaseSentiment: -0.15,
		Variance:      0.50,
		Trend:         TrendDeclining,
		Frequency:     "medium",
	},
	"new_curious": {
		Name:          "new_curious",
		Description:   "New customer learning the product, sentiment improving",
		BaseSentiment: 0.10,
		Variance:      0.45,
		Trend:         TrendImproving,
		Frequency:     "low",
	},
	"volatile_mixed": {
		Name:          "volatile_mixed",
		Description:   "Customer with unpredictable sentiment swings",
		BaseSentiment: 0.0,
		Variance:      0.60,
		Trend:         TrendVolatile,
		Frequency:     "low",
	},
	"recovering_churned": {
		Name:          "recovering_churned",
		Description:   "Previously churned customer who returned, rebuilding trust",
		BaseSentiment: 0.10,
		Variance:      0.40,
		Trend:         TrendImproving,
		Frequency:     "low",
	},
}

// demoCustomers are the fixed demo accounts. Keyed lookup stays ordered via
// demoCustomerIDs so list output is stable.
var demoCustomers = map[string]Customer{
	"CUST-12345": {
		ID:         "CUST-12345",
		Name:       "Sarah Johnson",
		Email:      "s.johnson@email.com",
		Tier:       "Platinum",
		Persona:    "recovering_churned",
		AccountAge: "4 years",
	},
	"CUST-67890": {
		ID:         "CUST-67890",
		Name:       "Michael Chen",
		Email:      "m.chen@company.com",
		Tier:       "Gold",
		Persona:    "satisfied_loyal",
		AccountAge: "6 years",
	},
	"CUST-11111": {
		ID:         "CUST-11111",
		Name:       "Emily Rodriguez",
		Email:      "e.rodriguez@email.com",
		Tier:       "Silver",
		Persona:    "new_curious",
		AccountAge: "3 months",
	},
	"CUST-22222": {
		ID:         "CUST-22222",
		Name:       "James Wilson",
		Email:      "j.wilson@business.com",
		Tier:       "Enterprise",
		Persona:    "volatile_mixed",
		AccountAge: "2 years",
	},
	"CUST-33333": {
		ID:         "CUST-33333",
		Name:       "Amanda Foster",
		Email:      "a.foster@startup.io",
		Tier:       "Gold",
		Persona:    "recovering_churned",
		AccountAge: "1 year",
	},
}

var demoCustomerIDs = []string{
	"CUST-12345",
	"CUST-67890",
	"CUST-11111",
	"CUST-22222",
	"CUST-33333",
}

// LookupCustomer returns the demo customer for id.
func LookupCustomer(id string) (Customer, bool) {
	c, ok := demoCustomers[id]
	return c, ok
}

// DemoCustomers returns the fixed demo customers in stable order.
func DemoCustomers() []Customer {
	out := make([]Customer, 0, len(demoCustomerIDs))
	for _, id := range demoCustomerIDs {
		out = append(out, demoCustomers[id])
	}
	return out
}

// LookupPersona returns the persona by name, falling back to satisfied_loyal.
func LookupPersona(name string) Persona {
	if p, ok := personas[name]; ok {
		return p
	}
	return personas["satisfied_loyal"]
}

// Personas returns all known persona names in stable order.
func Personas() []string {
	return append([]string(nil), personaNames...)
}
