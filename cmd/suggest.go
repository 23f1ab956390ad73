package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/mkalens/agentdesk/assist"
	"github.com/mkalens/agentdesk/config"
)

var suggestCmd = &cobra.Command{
	Use:   "suggest",
	Short: "Run the assist engine on a single customer message",
	Long: `Compute sentiment, reply suggestions, and knowledge cards for one
customer message, without starting the TUI.

Example:
  agentdesk suggest -m "The assist suggestions are not showing for my agents"`,
	RunE: runSuggest,
}

var suggestMessage string

func init() {
	suggestCmd.Flags().StringVarP(&suggestMessage, "message", "m", "", "Customer message to analyze")
	_ = suggestCmd.MarkFlagRequired("message")
	rootCmd.AddCommand(suggestCmd)
}

func runSuggest(_ *cobra.Command, _ []string) error {
	store := assist.NewStore()
	if err := store.LoadSamples(); err != nil {
		return fmt.Errorf("load knowledge samples: %w", err)
	}
	if cfg, err := config.Load(); err == nil && cfg.Assist.DocsDir != "" {
		if _, err := store.LoadDir(cfg.Assist.DocsDir); err != nil {
			return fmt.Errorf("load docs dir: %w", err)
		}
	}

	resp := assist.NewEngine(store).Suggest([]assist.Turn{
		{Role: assist.RoleCustomer, Content: suggestMessage},
	})

	fmt.Println("sentiment:", resp.Sentiment)
	fmt.Println()
	fmt.Println("suggestions:")
	for i, s := range resp.Suggestions {
		fmt.Printf("  %d. %s\n", i+1, s)
	}
	if len(resp.Cards) > 0 {
		fmt.Println()
		fmt.Println("knowledge cards:")
		for _, c := range resp.Cards {
			fmt.Printf("  [%.0f%%] %s (%s)\n      %s\n", c.Relevance*100, c.Title, c.Category, c.URL)
		}
	}
	return nil
}
