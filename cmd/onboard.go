package cmd

import (
	"fmt"
	"os"

	"github.com/charmbracelet/huh"
	"github.com/spf13/cobra"

	"github.com/mkalens/agentdesk/config"
	"github.com/mkalens/agentdesk/history"
)

var onboardCmd = &cobra.Command{
	Use:   "onboard",
	Short: "Initialize agentdesk configuration",
	Long:  `Create the agentdesk configuration directory and default config file.`,
	RunE:  runOnboard,
}

func init() {
	rootCmd.AddCommand(onboardCmd)
}

func runOnboard(_ *cobra.Command, _ []string) error {
	configPath, err := config.ConfigPath()
	if err != nil {
		return err
	}
	if _, err := os.Stat(configPath); err == nil {
		fmt.Println("Config already exists at:", configPath)
		fmt.Println("To reconfigure, edit the file directly or delete it first.")
		return nil
	}

	cfg := config.DefaultConfig()

	// --- interactive wizard ---

	var (
		customerID string
		days       int
		simulate   bool
		logLevel   string
	)

	customerOptions := make([]huh.Option[string], 0, len(history.DemoCustomers()))
	for _, c := range history.DemoCustomers() {
		label := fmt.Sprintf("%s — %s (%s)", c.Name, c.Tier, c.Persona)
		customerOptions = append(customerOptions, huh.NewOption(label, c.ID))
	}

	err = huh.NewForm(
		huh.NewGroup(
			huh.NewSelect[string]().
				Title("Choose the demo customer").
				Description("The customer pane shows this customer's profile and history.").
				Options(customerOptions...).
				Value(&customerID),
		),
	).Run()
	if err != nil {
		return err
	}

	err = huh.NewForm(
		huh.NewGroup(
			huh.NewSelect[int]().
				Title("History window").
				Description("How many days of interaction history to generate.").
				Options(
					huh.NewOption("30 days", 30),
					huh.NewOption("60 days", 60),
					huh.NewOption("90 days", 90),
				).
				Value(&days),
		),
	).Run()
	if err != nil {
		return err
	}

	err = huh.NewForm(
		huh.NewGroup(
			huh.NewConfirm().
				Title("Enable the customer simulator?").
				Description("A scripted customer drives the conversation and the customer pane gets a test input.").
				Value(&simulate),
		),
	).Run()
	if err != nil {
		return err
	}

	err = huh.NewForm(
		huh.NewGroup(
			huh.NewSelect[string]().
				Title("Log level").
				Options(
					huh.NewOption("info", "info"),
					huh.NewOption("debug", "debug"),
					huh.NewOption("warn", "warn"),
				).
				Value(&logLevel),
		),
	).Run()
	if err != nil {
		return err
	}

	cfg.Demo.CustomerID = customerID
	cfg.Demo.HistoryDays = days
	cfg.Demo.Simulate = &simulate
	cfg.Logging.Level = logLevel

	if err := config.Save(cfg); err != nil {
		return err
	}

	fmt.Println("Config written to:", configPath)
	fmt.Println("Run \"agentdesk demo\" to start.")
	return nil
}
