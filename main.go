// agentdesk is a terminal demo of a customer-support agent-assist desk.
package main

import (
	"fmt"
	"os"

	"github.com/mkalens/agentdesk/cmd"
	"github.com/mkalens/agentdesk/config"
	"github.com/mkalens/agentdesk/logger"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		cfg = config.DefaultConfig()
	}
	baseDir, _ := config.Dir()
	if err := logger.Init(cfg.BuildLoggerConfig(), baseDir); err != nil {
		fmt.Fprintln(os.Stderr, "logger init error:", err)
	}
	cmd.Execute()
}
