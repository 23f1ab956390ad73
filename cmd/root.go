// Package cmd wires the agentdesk CLI.
package cmd

import (
	"os"

	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "agentdesk",
	Short: "Terminal demo of a customer-support agent-assist desk",
	Long: `agentdesk is a self-contained demo of an agent-assist experience:
an agent pane with reply suggestions and a supervisor-transfer flow next to
a customer pane with typing indicators and interaction history.

Run "agentdesk onboard" once to create a config, then "agentdesk demo".`,
	SilenceUsage: true,
}

// Execute runs the root command.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
