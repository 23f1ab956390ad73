package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/mkalens/agentdesk/assist"
)

var ingestCmd = &cobra.Command{
	Use:   "ingest <file>...",
	Short: "Index help-center articles into the knowledge store",
	Long: `Parse HTML or markdown help-center articles into the knowledge
store alongside the built-in samples, and optionally search the combined
index.

Examples:
  agentdesk ingest article.html
  agentdesk ingest docs/queues.html docs/routing.md -q "confidence threshold"`,
	Args: cobra.MinimumNArgs(1),
	RunE: runIngest,
}

var ingestQuery string

func init() {
	ingestCmd.Flags().StringVarP(&ingestQuery, "query", "q", "", "Search the combined index after ingesting")
	rootCmd.AddCommand(ingestCmd)
}

func runIngest(_ *cobra.Command, args []string) error {
	store := assist.NewStore()
	if err := store.LoadSamples(); err != nil {
		return fmt.Errorf("load knowledge samples: %w", err)
	}

	for _, path := range args {
		doc, err := store.AddFile(path)
		if err != nil {
			return fmt.Errorf("ingest %s: %w", path, err)
		}
		category := doc.Category
		if category == "" {
			category = "-"
		}
		fmt.Printf("indexed %-20s %s (%s)\n", doc.ID, doc.Title, category)
	}
	fmt.Printf("\n%d documents in the index\n", store.Len())

	if ingestQuery == "" {
		return nil
	}

	fmt.Println()
	results := store.Search(ingestQuery, 5)
	if len(results) == 0 {
		fmt.Println("no matches for:", ingestQuery)
		return nil
	}
	for _, r := range results {
		fmt.Printf("[%.0f%%] %s\n      %s\n", r.Relevance*100, r.Title, r.Summary())
	}
	return nil
}
