package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/mkalens/agentdesk/config"
	"github.com/mkalens/agentdesk/history"
)

var historyCmd = &cobra.Command{
	Use:   "history [customer-id]",
	Short: "Print a customer's generated interaction history",
	Long: `Generate and print the deterministic interaction history and
sentiment summary for a demo customer.

Examples:
  agentdesk history
  agentdesk history CUST-67890 --days 30`,
	Args: cobra.MaximumNArgs(1),
	RunE: runHistory,
}

var historyDays int

func init() {
	historyCmd.Flags().IntVar(&historyDays, "days", 90, "History window in days: 30, 60, or 90")
	rootCmd.AddCommand(historyCmd)
}

func runHistory(_ *cobra.Command, args []string) error {
	customerID := ""
	if len(args) > 0 {
		customerID = args[0]
	}
	if customerID == "" {
		cfg, err := config.Load()
		if err != nil {
			cfg = config.DefaultConfig()
		}
		customerID = cfg.Demo.CustomerID
	}

	report := history.NewService().Get(customerID, historyDays)

	fmt.Printf("%s — %s (%s, %s)\n", report.Customer.ID, report.Customer.Name,
		report.Customer.Tier, report.Customer.Persona)
	fmt.Println()

	for _, in := range report.Interactions {
		resolution := in.Resolution
		if resolution == "" {
			resolution = "-"
		}
		fmt.Printf("%s  %-7s %-9s %+.3f  %-10s %s\n",
			in.Timestamp.Format("2006-01-02 15:04"),
			in.Channel, in.Label, in.Score, resolution, in.Summary)
	}

	s := report.Summary
	fmt.Println()
	fmt.Printf("interactions: %d over %d days\n", s.TotalInteractions, s.PeriodDays)
	fmt.Printf("average sentiment: %+.3f (%s)\n", s.AverageSentiment, s.Trend)
	fmt.Printf("distribution: %d positive / %d neutral / %d negative\n",
		s.Distribution[history.LabelPositive],
		s.Distribution[history.LabelNeutral],
		s.Distribution[history.LabelNegative])
	return nil
}
