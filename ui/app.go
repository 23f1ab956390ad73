package ui

import (
	"strings"

	"github.com/charmbracelet/bubbles/textarea"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/mkalens/agentdesk/desk"
	"github.com/mkalens/agentdesk/history"
)

const logRatio = 0.25

var (
	separatorStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("8"))
	focusBarStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("8"))
)

// focus targets.
const (
	focusAgent = iota
	focusCustomer
)

// App is the root bubbletea model: agent pane and customer pane side by
// side, log pane at the bottom. Panel intents are forwarded to the desk
// runtime through buffered channels.
type App struct {
	agentPanel    *AgentPanel
	customerPanel *CustomerPanel
	logPanel      Panel

	width, height int
	focus         int
	testMode      bool

	// AgentSendCh receives agent replies submitted in the composer.
	AgentSendCh chan string
	// CustomerSendCh receives simulated customer messages from the test input.
	CustomerSendCh chan string
	// ClearSuggestCh receives clear-suggestion requests.
	ClearSuggestCh chan struct{}
}

// Config bundles the static data the panes render.
type Config struct {
	Profile      desk.Profile
	Supervisors  []Supervisor
	Interactions []history.Interaction
	TestMode     bool
}

// NewApp creates the root TUI model.
func NewApp(cfg Config) *App {
	return &App{
		agentPanel:     NewAgentPanel(cfg.Supervisors),
		customerPanel:  NewCustomerPanel(cfg.Profile, cfg.Interactions, cfg.TestMode),
		logPanel:       NewLogPanel(),
		testMode:       cfg.TestMode,
		AgentSendCh:    make(chan string, 16),
		CustomerSendCh: make(chan string, 16),
		ClearSuggestCh: make(chan struct{}, 16),
	}
}

// Init starts the composer cursor blinking; the composer is focused from
// construction.
func (m *App) Init() tea.Cmd {
	return textarea.Blink
}

func (m *App) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmds []tea.Cmd

	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.recalcLayout()
		return m, nil

	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c":
			return m, tea.Quit
		case "tab":
			if m.testMode {
				cmds = append(cmds, m.toggleFocus())
				return m, tea.Batch(cmds...)
			}
		}
		// Remaining keys go to the focused panel.
		if m.focus == focusCustomer {
			p, cmd := m.customerPanel.Update(msg)
			m.customerPanel = p.(*CustomerPanel)
			return m, cmd
		}
		p, cmd := m.agentPanel.Update(msg)
		m.agentPanel = p.(*AgentPanel)
		return m, cmd

	case agentSubmitMsg:
		// Submit sends the reply and drops the pending suggestion so a
		// stale one cannot reappear.
		send(m.AgentSendCh, msg.Text)
		select {
		case m.ClearSuggestCh <- struct{}{}:
		default:
		}
		return m, nil

	case customerSubmitMsg:
		send(m.CustomerSendCh, msg.Text)
		return m, nil

	case LogLineMsg:
		p, cmd := m.logPanel.Update(msg)
		m.logPanel = p
		return m, cmd

	case TranscriptMsg:
		// Both panes render from the same snapshot.
		cmds = append(cmds, m.forwardAgent(msg), m.forwardCustomer(msg))
		return m, tea.Batch(cmds...)

	case TypingMsg, typingFrameMsg:
		return m, m.forwardCustomer(msg)

	case SuggestionMsg, ClearSuggestionMsg, LoadingMsg, transferDoneMsg:
		return m, m.forwardAgent(msg)
	}

	// Everything else (cursor blink etc.) goes to both input-bearing panels.
	cmds = append(cmds, m.forwardAgent(msg), m.forwardCustomer(msg))
	return m, tea.Batch(cmds...)
}

func (m *App) forwardAgent(msg tea.Msg) tea.Cmd {
	p, cmd := m.agentPanel.Update(msg)
	m.agentPanel = p.(*AgentPanel)
	return cmd
}

func (m *App) forwardCustomer(msg tea.Msg) tea.Cmd {
	p, cmd := m.customerPanel.Update(msg)
	m.customerPanel = p.(*CustomerPanel)
	return cmd
}

func (m *App) toggleFocus() tea.Cmd {
	if m.focus == focusAgent {
		m.focus = focusCustomer
		m.agentPanel.composer.Blur()
		return m.customerPanel.Focus()
	}
	m.focus = focusAgent
	m.customerPanel.Blur()
	return m.agentPanel.composer.Focus()
}

func (m *App) View() string {
	if m.width == 0 || m.height == 0 {
		return "initializing..."
	}

	vsep := separatorStyle.Render(strings.TrimSuffix(
		strings.Repeat("│\n", m.agentPanel.height), "\n"))
	top := lipgloss.JoinHorizontal(lipgloss.Top,
		m.agentPanel.View(),
		vsep,
		m.customerPanel.View(),
	)

	hsep := separatorStyle.Render(strings.Repeat("─", m.width))
	help := focusBarStyle.Render("tab switch pane · ctrl+t transfer · ctrl+h history · ctrl+c quit")

	return lipgloss.JoinVertical(lipgloss.Left,
		top,
		hsep,
		m.logPanel.View(),
		help,
	)
}

func (m *App) recalcLayout() {
	const helpH = 1
	const sepLines = 1

	usable := max(m.height-helpH-sepLines, 4)
	logH := max(int(float64(usable)*logRatio), 1)
	paneH := max(usable-logH, 3)
	paneW := max((m.width-1)/2, 10)

	m.agentPanel.SetSize(paneW, paneH)
	m.customerPanel.SetSize(paneW, paneH)
	m.logPanel.SetSize(m.width, logH)
}

// send forwards text to a runtime channel without blocking the UI loop.
func send(ch chan string, text string) {
	select {
	case ch <- text:
	default:
	}
}
