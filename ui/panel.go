// Package ui implements the two-pane agent-assist terminal interface.
package ui

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/mkalens/agentdesk/assist"
	"github.com/mkalens/agentdesk/desk"
)

// Panel is a composable TUI region with its own state, update logic, and view.
// The root App model orchestrates panels without knowing their internals.
type Panel interface {
	Update(tea.Msg) (Panel, tea.Cmd)
	View() string
	SetSize(width, height int)
}

// TranscriptMsg carries a fresh transcript snapshot from the desk runtime.
type TranscriptMsg struct{ Messages []desk.Message }

// TypingMsg toggles the customer typing indicator.
type TypingMsg struct{ On bool }

// LoadingMsg toggles the composer's loading state while a suggestion is
// being computed.
type LoadingMsg struct{ On bool }

// SuggestionMsg delivers an assist response. The first suggestion autofills
// the composer.
type SuggestionMsg struct{ Response assist.Response }

// ClearSuggestionMsg resets the stored suggestion so it cannot re-autofill.
type ClearSuggestionMsg struct{}

// LogLineMsg carries a single log line from the logger writer.
type LogLineMsg struct{ Line string }

// agentSubmitMsg is emitted when the agent composer submits text.
type agentSubmitMsg struct{ Text string }

// customerSubmitMsg is emitted by the customer test input.
type customerSubmitMsg struct{ Text string }

// Supervisor statuses.
const (
	StatusAvailable = "available"
	StatusBusy      = "busy"
	StatusAway      = "away"
)

// Supervisor is one entry in the transfer roster. The set is fixed at
// construction; nothing changes status at runtime.
type Supervisor struct {
	ID        string
	Name      string
	Role      string
	Status    string
	Specialty string
}

// Available reports whether the supervisor can receive a transfer.
func (s Supervisor) Available() bool {
	return s.Status == StatusAvailable
}
