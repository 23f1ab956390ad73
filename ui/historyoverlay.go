package ui

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/mkalens/agentdesk/history"
)

var (
	histBoxStyle   = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("5")).
			Padding(1, 2)
	histTitleStyle = lipgloss.NewStyle().Bold(true)
	histDateStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("8"))
	resolvedStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("2"))
	escalatedStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("1"))
)

// sentimentBadge maps labels to their fixed emoji and color.
func sentimentBadge(label string) string {
	switch label {
	case history.LabelPositive:
		return resolvedStyle.Render("😊 positive")
	case history.LabelNegative:
		return escalatedStyle.Render("😞 negative")
	default:
		return lipgloss.NewStyle().Foreground(lipgloss.Color("3")).Render("😐 neutral")
	}
}

// resolutionBadge renders "Resolved" plainly and everything else with the
// escalated treatment.
func resolutionBadge(resolution string) string {
	if resolution == history.ResolutionResolved {
		return resolvedStyle.Render("Resolved")
	}
	if resolution == "" {
		resolution = history.ResolutionPending
	}
	return escalatedStyle.Render(strings.ToUpper(resolution[:1]) + resolution[1:])
}

// historyOverlay lists the customer's previous interactions.
type historyOverlay struct {
	interactions []history.Interaction
	open         bool
	width        int
}

func newHistoryOverlay(interactions []history.Interaction) *historyOverlay {
	return &historyOverlay{interactions: interactions}
}

func (o *historyOverlay) handleKey(msg tea.KeyMsg) {
	switch msg.String() {
	case "esc", "ctrl+h", "enter":
		o.open = false
	}
}

func (o *historyOverlay) setSize(width, _ int) {
	o.width = width
}

func (o *historyOverlay) View() string {
	var b strings.Builder
	b.WriteString(histTitleStyle.Render("Previous interactions"))
	b.WriteString("\n\n")

	if len(o.interactions) == 0 {
		b.WriteString(histDateStyle.Render("No previous interactions on record."))
	}
	for _, in := range o.interactions {
		b.WriteString(fmt.Sprintf("%s  %s  %s  %s\n",
			histDateStyle.Render(in.Timestamp.Format("2006-01-02")),
			in.Channel,
			sentimentBadge(in.Label),
			resolutionBadge(in.Resolution),
		))
		b.WriteString("  " + in.Summary + "\n")
	}
	b.WriteString("\n" + overlayHelpStyle.Render("esc close"))

	return histBoxStyle.Width(o.width).Render(b.String())
}
