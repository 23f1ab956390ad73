package ui

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/mkalens/agentdesk/desk"
	"github.com/mkalens/agentdesk/history"
)

const typingFrameInterval = 300 * time.Millisecond

// typingFrameMsg advances the typing indicator animation.
type typingFrameMsg struct{}

var typingFrames = []string{"·", "··", "···"}

var (
	customerTitleStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("5"))
	profileStyle       = lipgloss.NewStyle().Foreground(lipgloss.Color("8"))
	typingStyle        = lipgloss.NewStyle().Foreground(lipgloss.Color("8")).Italic(true)
	customerMsgStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("5"))
)

// CustomerPanel is the customer-facing pane: only the customer-authored
// side of the transcript, profile chrome, a typing indicator, the optional
// test-mode input, and the previous-interactions overlay.
type CustomerPanel struct {
	viewport  viewport.Model
	testInput textinput.Model

	profile      desk.Profile
	interactions []history.Interaction
	hist         *historyOverlay

	messages []desk.Message
	typing   bool
	frame    int

	// testMode gates the input: without a customer-message sink there is
	// nothing to render, mirroring the capability-gated prop.
	testMode bool

	width, height int
}

// NewCustomerPanel creates the customer pane. testMode enables the
// simulated-customer input.
func NewCustomerPanel(profile desk.Profile, interactions []history.Interaction, testMode bool) *CustomerPanel {
	ti := textinput.New()
	ti.Prompt = "customer> "
	ti.Placeholder = "simulate a customer message"

	return &CustomerPanel{
		viewport:     viewport.New(0, 0),
		testInput:    ti,
		profile:      profile,
		interactions: interactions,
		hist:         newHistoryOverlay(interactions),
		testMode:     testMode,
	}
}

func (p *CustomerPanel) Update(msg tea.Msg) (Panel, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return p, p.handleKey(msg)

	case TranscriptMsg:
		p.messages = msg.Messages
		p.refreshTranscript()
		return p, nil

	case TypingMsg:
		wasTyping := p.typing
		p.typing = msg.On
		p.frame = 0
		p.refreshTranscript()
		if msg.On && !wasTyping {
			return p, typingTick()
		}
		return p, nil

	case typingFrameMsg:
		if !p.typing {
			return p, nil
		}
		p.frame = (p.frame + 1) % len(typingFrames)
		p.refreshTranscript()
		return p, typingTick()
	}

	var cmd tea.Cmd
	p.testInput, cmd = p.testInput.Update(msg)
	return p, cmd
}

func (p *CustomerPanel) handleKey(msg tea.KeyMsg) tea.Cmd {
	if p.hist.open {
		p.hist.handleKey(msg)
		return nil
	}

	switch msg.String() {
	case "ctrl+h":
		p.hist.open = true
		return nil
	case "enter":
		return p.submit()
	}

	if !p.testMode {
		return nil
	}
	var cmd tea.Cmd
	p.testInput, cmd = p.testInput.Update(msg)
	return cmd
}

// submit emits the trimmed test input as a customer message. Whitespace-only
// input is a silent no-op.
func (p *CustomerPanel) submit() tea.Cmd {
	if !p.testMode {
		return nil
	}
	text := strings.TrimSpace(p.testInput.Value())
	if text == "" {
		return nil
	}
	p.testInput.Reset()
	return func() tea.Msg {
		return customerSubmitMsg{Text: text}
	}
}

// Focus gives keyboard focus to the test input.
func (p *CustomerPanel) Focus() tea.Cmd {
	if !p.testMode {
		return nil
	}
	return p.testInput.Focus()
}

// Blur removes keyboard focus from the test input.
func (p *CustomerPanel) Blur() {
	p.testInput.Blur()
}

// refreshTranscript renders only the customer-authored messages, in the
// order they appear in the shared transcript, plus the typing indicator.
func (p *CustomerPanel) refreshTranscript() {
	var lines []string
	for _, m := range p.messages {
		if m.Role != desk.RoleCustomer {
			continue
		}
		meta := msgMetaStyle.Render(m.Timestamp.Format("15:04"))
		lines = append(lines, meta+" "+customerMsgStyle.Render(m.Content))
	}
	if p.typing {
		lines = append(lines, typingStyle.Render("typing "+typingFrames[p.frame]))
	}
	p.viewport.SetContent(strings.Join(lines, "\n"))
	p.viewport.GotoBottom()
}

func (p *CustomerPanel) View() string {
	if p.hist.open {
		return lipgloss.JoinVertical(lipgloss.Left,
			customerTitleStyle.Render(" Customer View "),
			p.hist.View(),
		)
	}

	header := customerTitleStyle.Render(" Customer View ") + profileStyle.Render(
		fmt.Sprintf("  %s · %s · %s", p.profile.Name, p.profile.Tier, p.profile.AccountID))
	chrome := profileStyle.Render(fmt.Sprintf("issue: %s · %d previous interactions (ctrl+h)",
		p.profile.Issue, p.profile.PreviousInteractions))

	parts := []string{header, chrome, p.viewport.View()}
	if p.testMode {
		parts = append(parts, p.testInput.View())
	}
	return lipgloss.JoinVertical(lipgloss.Left, parts...)
}

func (p *CustomerPanel) SetSize(width, height int) {
	p.width = width
	p.height = height
	p.hist.setSize(max(width-4, 20), height)

	inputH := 0
	if p.testMode {
		inputH = 1
	}
	p.viewport.Width = width
	p.viewport.Height = max(height-2-inputH, 1)
	p.testInput.Width = max(width-len(p.testInput.Prompt)-1, 10)
	p.refreshTranscript()
}

func typingTick() tea.Cmd {
	return tea.Tick(typingFrameInterval, func(time.Time) tea.Msg {
		return typingFrameMsg{}
	})
}
