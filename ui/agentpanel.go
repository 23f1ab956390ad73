package ui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/textarea"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/mkalens/agentdesk/assist"
	"github.com/mkalens/agentdesk/desk"
)

var (
	agentTitleStyle     = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("6"))
	agentBubbleStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("6"))
	customerBubbleStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("7"))
	msgMetaStyle        = lipgloss.NewStyle().Foreground(lipgloss.Color("8"))
	cardStyle           = lipgloss.NewStyle().Foreground(lipgloss.Color("4"))
	loadingStyle        = lipgloss.NewStyle().Foreground(lipgloss.Color("3"))
	sentimentStyles     = map[string]lipgloss.Style{
		assist.SentimentPositive: lipgloss.NewStyle().Foreground(lipgloss.Color("2")),
		assist.SentimentNeutral:  lipgloss.NewStyle().Foreground(lipgloss.Color("3")),
		assist.SentimentNegative: lipgloss.NewStyle().Foreground(lipgloss.Color("1")),
	}
)

const composerHeight = 3

// AgentPanel is the agent-facing pane: full transcript, knowledge cards,
// the reply composer, and the transfer overlay.
type AgentPanel struct {
	viewport viewport.Model
	composer textarea.Model
	transfer *transferOverlay

	messages   []desk.Message
	suggestion string
	response   assist.Response
	loading    bool

	width, height int
}

// NewAgentPanel creates the agent pane with the given transfer roster.
func NewAgentPanel(supervisors []Supervisor) *AgentPanel {
	vp := viewport.New(0, 0)

	ta := textarea.New()
	ta.Placeholder = "Type a reply (enter to send, ctrl+j for newline)"
	ta.ShowLineNumbers = false
	ta.Prompt = "┃ "
	ta.KeyMap.InsertNewline.SetEnabled(false)
	ta.Focus()

	return &AgentPanel{
		viewport: vp,
		composer: ta,
		transfer: newTransferOverlay(supervisors),
	}
}

func (p *AgentPanel) Update(msg tea.Msg) (Panel, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return p, p.handleKey(msg)

	case TranscriptMsg:
		p.messages = msg.Messages
		p.refreshTranscript()
		return p, nil

	case SuggestionMsg:
		p.response = msg.Response
		if s := firstSuggestion(msg.Response); s != "" && s != p.suggestion {
			// One-way sync: the suggestion overwrites the composer once;
			// user edits stay local until submit.
			p.suggestion = s
			p.composer.SetValue(s)
			return p, p.composer.Focus()
		}
		return p, nil

	case ClearSuggestionMsg:
		p.suggestion = ""
		return p, nil

	case LoadingMsg:
		p.loading = msg.On
		return p, nil

	case transferDoneMsg:
		p.transfer.handleDone(msg)
		return p, nil
	}

	var cmd tea.Cmd
	p.composer, cmd = p.composer.Update(msg)
	return p, cmd
}

func (p *AgentPanel) handleKey(msg tea.KeyMsg) tea.Cmd {
	if p.transfer.open {
		return p.transfer.handleKey(msg)
	}

	switch msg.String() {
	case "ctrl+t":
		p.transfer.open = true
		return nil
	case "ctrl+j":
		p.composer.InsertString("\n")
		return nil
	case "enter":
		return p.submit()
	}

	var cmd tea.Cmd
	p.composer, cmd = p.composer.Update(msg)
	return cmd
}

// submit sends the trimmed composer text. Empty input and submits while a
// suggestion is still loading are silent no-ops.
func (p *AgentPanel) submit() tea.Cmd {
	text := strings.TrimSpace(p.composer.Value())
	if text == "" || p.loading {
		return nil
	}
	p.composer.Reset()
	p.suggestion = ""
	return func() tea.Msg {
		return agentSubmitMsg{Text: text}
	}
}

func (p *AgentPanel) refreshTranscript() {
	var lines []string
	for _, m := range p.messages {
		lines = append(lines, p.renderMessage(m))
	}
	p.viewport.SetContent(strings.Join(lines, "\n"))
	p.viewport.GotoBottom()
}

// renderMessage right-aligns agent messages and left-aligns customer ones.
func (p *AgentPanel) renderMessage(m desk.Message) string {
	meta := msgMetaStyle.Render(m.Timestamp.Format("15:04"))
	if m.Role == desk.RoleAgent {
		bubble := agentBubbleStyle.Render(m.Content) + " " + meta
		return lipgloss.PlaceHorizontal(p.viewport.Width, lipgloss.Right, bubble)
	}
	return meta + " " + customerBubbleStyle.Render(m.Content)
}

func (p *AgentPanel) View() string {
	if p.transfer.open {
		return lipgloss.JoinVertical(lipgloss.Left,
			agentTitleStyle.Render(" Agent Desk "),
			p.transfer.View(),
		)
	}

	status := ""
	switch {
	case p.loading:
		status = loadingStyle.Render("assist is thinking...")
	case p.response.Sentiment != "":
		style := sentimentStyles[p.response.Sentiment]
		status = "customer sentiment: " + style.Render(p.response.Sentiment)
	}

	return lipgloss.JoinVertical(lipgloss.Left,
		agentTitleStyle.Render(" Agent Desk ")+msgMetaStyle.Render("  ctrl+t transfer"),
		p.viewport.View(),
		p.renderCards(),
		status,
		p.composer.View(),
	)
}

// renderCards shows compact knowledge-card previews under the transcript.
func (p *AgentPanel) renderCards() string {
	if len(p.response.Cards) == 0 {
		return ""
	}
	var parts []string
	for _, c := range p.response.Cards {
		parts = append(parts, cardStyle.Render(fmt.Sprintf("▣ %s (%.0f%%)", c.Title, c.Relevance*100)))
	}
	return strings.Join(parts, "  ")
}

func (p *AgentPanel) SetSize(width, height int) {
	p.width = width
	p.height = height
	p.transfer.width = max(width-4, 20)

	// Title, cards, and status each take a line above the composer.
	vpHeight := max(height-composerHeight-3, 1)
	p.viewport.Width = width
	p.viewport.Height = vpHeight
	p.composer.SetWidth(width)
	p.composer.SetHeight(composerHeight)
	p.refreshTranscript()
}

func firstSuggestion(resp assist.Response) string {
	if len(resp.Suggestions) == 0 {
		return ""
	}
	return resp.Suggestions[0]
}
