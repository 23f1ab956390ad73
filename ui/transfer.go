package ui

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// transferConfirmDelay is how long the confirmation screen stays up before
// the overlay closes itself.
const transferConfirmDelay = 2 * time.Second

// transferDoneMsg closes the confirmation screen. The sequence token makes
// ticks from abandoned attempts harmless.
type transferDoneMsg struct{ seq int }

var (
	overlayBoxStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("6")).
			Padding(1, 2)
	overlayTitleStyle = lipgloss.NewStyle().Bold(true)
	supCursorStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("6"))
	supDisabledStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("8"))
	statusOnlineStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("2"))
	statusBusyStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("1"))
	statusAwayStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("3"))
	successStyle      = lipgloss.NewStyle().Foreground(lipgloss.Color("2")).Bold(true)
	overlayHelpStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("8"))
	overlayNoteStyle  = lipgloss.NewStyle().MarginTop(1)
	supSpecialtyStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("8"))
)

// transferOverlay is the supervisor-transfer modal. The whole flow is a UI
// simulation: selecting a supervisor shows a confirmation and nothing else
// happens anywhere.
type transferOverlay struct {
	supervisors []Supervisor
	cursor      int
	note        textinput.Model
	open        bool
	success     bool
	selected    Supervisor
	seq         int
	width       int
}

func newTransferOverlay(supervisors []Supervisor) *transferOverlay {
	note := textinput.New()
	note.Prompt = "Note: "
	note.Placeholder = "optional context for the supervisor"
	note.Focus()
	return &transferOverlay{supervisors: supervisors, note: note}
}

func (o *transferOverlay) handleKey(msg tea.KeyMsg) tea.Cmd {
	if o.success {
		// Confirmation screen ignores input until the timer closes it.
		return nil
	}

	switch msg.String() {
	case "up":
		if o.cursor > 0 {
			o.cursor--
		}
		return nil
	case "down":
		if o.cursor < len(o.supervisors)-1 {
			o.cursor++
		}
		return nil
	case "esc":
		o.open = false
		return nil
	case "enter":
		return o.selectCurrent()
	}

	var cmd tea.Cmd
	o.note, cmd = o.note.Update(msg)
	return cmd
}

// selectCurrent starts the fake transfer for an available supervisor.
// Unavailable supervisors are unselectable.
func (o *transferOverlay) selectCurrent() tea.Cmd {
	if len(o.supervisors) == 0 {
		return nil
	}
	sup := o.supervisors[o.cursor]
	if !sup.Available() {
		return nil
	}

	o.success = true
	o.selected = sup
	o.seq++
	seq := o.seq
	return tea.Tick(transferConfirmDelay, func(time.Time) tea.Msg {
		return transferDoneMsg{seq: seq}
	})
}

// handleDone closes the overlay when the confirmation timer fires. Ticks
// from earlier attempts carry stale sequence numbers and are dropped.
func (o *transferOverlay) handleDone(msg transferDoneMsg) {
	if msg.seq != o.seq || !o.success {
		return
	}
	o.success = false
	o.open = false
	o.note.Reset()
}

func (o *transferOverlay) View() string {
	if o.success {
		body := lipgloss.JoinVertical(lipgloss.Left,
			successStyle.Render("✓ Transfer request sent"),
			"",
			fmt.Sprintf("%s (%s) will join the conversation.", o.selected.Name, o.selected.Role),
			overlayHelpStyle.Render("Returning to the conversation..."),
		)
		return overlayBoxStyle.Width(o.width).Render(body)
	}

	var b strings.Builder
	b.WriteString(overlayTitleStyle.Render("Transfer to supervisor"))
	b.WriteString("\n\n")
	for i, sup := range o.supervisors {
		cursor := "  "
		if i == o.cursor {
			cursor = supCursorStyle.Render("▸ ")
		}
		line := fmt.Sprintf("%s %s — %s  %s",
			statusDot(sup.Status), sup.Name, sup.Role,
			supSpecialtyStyle.Render(sup.Specialty))
		if !sup.Available() {
			line = supDisabledStyle.Render(line)
		}
		b.WriteString(cursor + line + "\n")
	}
	b.WriteString(overlayNoteStyle.Render(o.note.View()))
	b.WriteString("\n" + overlayHelpStyle.Render("↑/↓ select · enter transfer · esc cancel"))

	return overlayBoxStyle.Width(o.width).Render(b.String())
}

func statusDot(status string) string {
	switch status {
	case StatusAvailable:
		return statusOnlineStyle.Render("●")
	case StatusBusy:
		return statusBusyStyle.Render("●")
	default:
		return statusAwayStyle.Render("●")
	}
}
