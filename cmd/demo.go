package cmd

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/mkalens/agentdesk/assist"
	"github.com/mkalens/agentdesk/config"
	"github.com/mkalens/agentdesk/desk"
	"github.com/mkalens/agentdesk/history"
	"github.com/mkalens/agentdesk/logger"
	"github.com/mkalens/agentdesk/ui"
)

var demoCmd = &cobra.Command{
	Use:   "demo",
	Short: "Run the two-pane agent-assist demo",
	Long: `Start the agent-assist demo: the agent desk on the left, the
customer view on the right, and the log pane at the bottom.

With the simulator enabled a scripted customer opens the conversation and
responds to each agent reply; the customer pane also gets a test input for
injecting arbitrary customer messages.

Examples:
  agentdesk demo
  agentdesk demo --customer CUST-67890
  agentdesk demo --simulate=false`,
	RunE: runDemo,
}

var (
	demoCustomer string
	demoDays     int
	demoSimulate bool
)

func init() {
	demoCmd.Flags().StringVar(&demoCustomer, "customer", "", "Demo customer ID (default from config)")
	demoCmd.Flags().IntVar(&demoDays, "days", 0, "History window in days: 30, 60, or 90 (default from config)")
	demoCmd.Flags().BoolVar(&demoSimulate, "simulate", true, "Enable the scripted customer and test input")
	rootCmd.AddCommand(demoCmd)
}

func runDemo(cmd *cobra.Command, _ []string) error {
	cfg, err := config.Load()
	if err != nil {
		cfg = config.DefaultConfig()
	}

	customerID := cfg.Demo.CustomerID
	if demoCustomer != "" {
		customerID = demoCustomer
	}
	days := cfg.Demo.HistoryDays
	if demoDays > 0 {
		days = demoDays
	}
	simulate := cfg.Demo.SimulateEnabled()
	if cmd.Flags().Changed("simulate") {
		simulate = demoSimulate
	}

	store := assist.NewStore()
	if err := store.LoadSamples(); err != nil {
		return fmt.Errorf("load knowledge samples: %w", err)
	}
	if dir := cfg.Assist.DocsDir; dir != "" {
		n, err := store.LoadDir(dir)
		if err != nil {
			return fmt.Errorf("load docs dir: %w", err)
		}
		logger.Info("extra articles indexed", "dir", dir, "count", n)
	}
	engine := assist.NewEngine(store)

	report := history.NewService().Get(customerID, days)
	profile := desk.Profile{
		Name:      report.Customer.Name,
		Tier:      report.Customer.Tier,
		AccountID: customerID,
		Issue:     cfg.Demo.Issue,
		// The count is the generated list length, a single source of truth.
		PreviousInteractions: len(report.Interactions),
	}

	supervisors := make([]ui.Supervisor, 0, len(cfg.Demo.Supervisors))
	for _, s := range cfg.Demo.Supervisors {
		supervisors = append(supervisors, ui.Supervisor{
			ID:        s.ID,
			Name:      s.Name,
			Role:      s.Role,
			Status:    s.Status,
			Specialty: s.Specialty,
		})
	}

	app := ui.NewApp(ui.Config{
		Profile:      profile,
		Supervisors:  supervisors,
		Interactions: report.Interactions,
		TestMode:     simulate,
	})
	program := tea.NewProgram(app, tea.WithAltScreen())

	// Route log output into the TUI log panel for the program's lifetime.
	logger.Intercept(ui.NewLogWriter(program))
	defer logger.Restore()

	runtime := desk.NewRuntime(engine, ui.NewProgramPresenter(program), desk.Options{
		SuggestDelay: time.Duration(cfg.Assist.SuggestDelayMS) * time.Millisecond,
		TypingDelay:  time.Duration(cfg.Assist.TypingDelayMS) * time.Millisecond,
		Simulate:     simulate,
	})

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)
	go func() {
		select {
		case <-sigChan:
			logger.Info("shutdown signal received")
			program.Quit()
		case <-ctx.Done():
		}
	}()

	go runtime.Run(ctx)
	go bridgeIntents(ctx, app, runtime)

	done := startProgram(program)
	logger.Info("demo started", "customer", customerID, "simulate", simulate)
	if err := <-done; err != nil {
		return fmt.Errorf("run tui: %w", err)
	}
	return nil
}

// startProgram runs the TUI on its own goroutine. Intercepted log output is
// delivered through program.Send, which blocks until the program is running,
// so nothing that might log may sit between Intercept and Run on the
// goroutine that calls Run.
func startProgram(program *tea.Program) <-chan error {
	done := make(chan error, 1)
	go func() {
		_, err := program.Run()
		done <- err
	}()
	return done
}

// bridgeIntents forwards panel intents to the desk runtime.
func bridgeIntents(ctx context.Context, app *ui.App, runtime *desk.Runtime) {
	for {
		select {
		case <-ctx.Done():
			return
		case text := <-app.AgentSendCh:
			runtime.AgentSend(text)
		case text := <-app.CustomerSendCh:
			runtime.CustomerSend(text)
		case <-app.ClearSuggestCh:
			runtime.ClearSuggestion()
		}
	}
}
