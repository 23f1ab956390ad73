package config

const (
	defaultCustomerID     = "CUST-12345"
	defaultHistoryDays    = 90
	defaultIssue          = "Assist suggestions not appearing for my team"
	defaultSuggestDelayMS = 600
	defaultTypingDelayMS  = 1200
)

// DefaultConfig returns a config with sensible defaults.
func DefaultConfig() *Config {
	simulate := true
	return &Config{
		Demo: DemoConfig{
			CustomerID:  defaultCustomerID,
			HistoryDays: defaultHistoryDays,
			Issue:       defaultIssue,
			Simulate:    &simulate,
			Supervisors: defaultSupervisors(),
		},
		Assist: AssistConfig{
			SuggestDelayMS: defaultSuggestDelayMS,
			TypingDelayMS:  defaultTypingDelayMS,
		},
		Logging: defaultLoggingConfig(),
	}
}

func defaultSupervisors() []SupervisorConfig {
	return []SupervisorConfig{
		{
			ID:        "sup-1",
			Name:      "Jennifer Martinez",
			Role:      "Team Lead",
			Status:    "available",
			Specialty: "Technical Escalations",
		},
		{
			ID:        "sup-2",
			Name:      "Marcus Webb",
			Role:      "Supervisor",
			Status:    "busy",
			Specialty: "Billing Disputes",
		},
		{
			ID:        "sup-3",
			Name:      "Priya Sharma",
			Role:      "Senior Supervisor",
			Status:    "away",
			Specialty: "Enterprise Accounts",
		},
	}
}

func defaultLoggingConfig() LoggingConfig {
	return LoggingConfig{
		Level:  "info",
		Stdout: true,
		File:   "logs/agentdesk.log",
	}
}

func (c *Config) applyDefaults() {
	if c.Demo.CustomerID == "" {
		c.Demo.CustomerID = defaultCustomerID
	}
	if c.Demo.HistoryDays <= 0 {
		c.Demo.HistoryDays = defaultHistoryDays
	}
	if c.Demo.Issue == "" {
		c.Demo.Issue = defaultIssue
	}
	if len(c.Demo.Supervisors) == 0 {
		c.Demo.Supervisors = defaultSupervisors()
	}

	if c.Assist.SuggestDelayMS <= 0 {
		c.Assist.SuggestDelayMS = defaultSuggestDelayMS
	}
	if c.Assist.TypingDelayMS <= 0 {
		c.Assist.TypingDelayMS = defaultTypingDelayMS
	}

	def := defaultLoggingConfig()
	if c.Logging.Level == "" {
		c.Logging.Level = def.Level
	}
	if c.Logging.File == "" {
		c.Logging.File = def.File
	}
}
