package ui

import (
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/mkalens/agentdesk/assist"
	"github.com/mkalens/agentdesk/desk"
)

func testSupervisors() []Supervisor {
	return []Supervisor{
		{ID: "sup-1", Name: "Jennifer Martinez", Role: "Team Lead", Status: StatusAvailable, Specialty: "Technical Escalations"},
		{ID: "sup-2", Name: "Marcus Webb", Role: "Supervisor", Status: StatusBusy, Specialty: "Billing Disputes"},
		{ID: "sup-3", Name: "Priya Sharma", Role: "Senior Supervisor", Status: StatusAway, Specialty: "Enterprise Accounts"},
	}
}

func suggestionOf(texts ...string) SuggestionMsg {
	return SuggestionMsg{Response: assist.Response{Suggestions: texts}}
}

func TestAgentPanelSuggestionAutofill(t *testing.T) {
	p := NewAgentPanel(testSupervisors())

	p.Update(suggestionOf("Thanks for reaching out"))
	if got := p.composer.Value(); got != "Thanks for reaching out" {
		t.Fatalf("composer = %q, want the suggestion", got)
	}

	// Local edits survive the same suggestion arriving again.
	p.composer.SetValue("Thanks for reaching out, Sarah")
	p.Update(suggestionOf("Thanks for reaching out"))
	if got := p.composer.Value(); got != "Thanks for reaching out, Sarah" {
		t.Fatalf("composer = %q, edit was overwritten", got)
	}

	// A different suggestion overwrites once more.
	p.Update(suggestionOf("Let me check that setting for you"))
	if got := p.composer.Value(); got != "Let me check that setting for you" {
		t.Fatalf("composer = %q, want the new suggestion", got)
	}
}

func TestAgentPanelSubmit(t *testing.T) {
	p := NewAgentPanel(testSupervisors())
	p.composer.SetValue("  Happy to help with that.  ")

	cmd := p.handleKey(tea.KeyMsg{Type: tea.KeyEnter})
	if cmd == nil {
		t.Fatal("enter with text should produce a submit command")
	}
	submit, ok := cmd().(agentSubmitMsg)
	if !ok {
		t.Fatalf("cmd yielded %T, want agentSubmitMsg", cmd())
	}
	if submit.Text != "Happy to help with that." {
		t.Fatalf("submit text = %q, want trimmed input", submit.Text)
	}
	if p.composer.Value() != "" {
		t.Fatalf("composer = %q after submit, want empty", p.composer.Value())
	}
}

func TestAgentPanelSubmitBlank(t *testing.T) {
	p := NewAgentPanel(testSupervisors())
	p.composer.SetValue("   ")

	if cmd := p.handleKey(tea.KeyMsg{Type: tea.KeyEnter}); cmd != nil {
		t.Fatal("whitespace-only submit should be a no-op")
	}
	if p.composer.Value() != "   " {
		t.Fatalf("composer = %q, no-op should leave input untouched", p.composer.Value())
	}
}

func TestAgentPanelSubmitWhileLoading(t *testing.T) {
	p := NewAgentPanel(testSupervisors())
	p.Update(LoadingMsg{On: true})
	p.composer.SetValue("ready to send")

	if cmd := p.handleKey(tea.KeyMsg{Type: tea.KeyEnter}); cmd != nil {
		t.Fatal("submit while loading should be a no-op")
	}
	if p.composer.Value() != "ready to send" {
		t.Fatalf("composer = %q, want input preserved", p.composer.Value())
	}

	p.Update(LoadingMsg{On: false})
	if cmd := p.handleKey(tea.KeyMsg{Type: tea.KeyEnter}); cmd == nil {
		t.Fatal("submit should work again once loading clears")
	}
}

func TestAgentPanelNewline(t *testing.T) {
	p := NewAgentPanel(testSupervisors())
	p.composer.SetValue("first line")

	p.handleKey(tea.KeyMsg{Type: tea.KeyCtrlJ})
	if !strings.Contains(p.composer.Value(), "\n") {
		t.Fatalf("composer = %q, want an inserted newline", p.composer.Value())
	}
}

func TestAgentPanelTranscript(t *testing.T) {
	p := NewAgentPanel(testSupervisors())
	p.SetSize(80, 24)

	p.Update(TranscriptMsg{Messages: []desk.Message{
		{Role: desk.RoleCustomer, Content: "Hi, I need some help"},
		{Role: desk.RoleAgent, Content: "Of course, what can I do?"},
	}})

	view := p.viewport.View()
	if !strings.Contains(view, "Hi, I need some help") {
		t.Fatalf("transcript missing customer message:\n%s", view)
	}
	if !strings.Contains(view, "Of course, what can I do?") {
		t.Fatalf("transcript missing agent message:\n%s", view)
	}
}

func TestTransferFlow(t *testing.T) {
	p := NewAgentPanel(testSupervisors())
	p.SetSize(80, 24)

	p.handleKey(tea.KeyMsg{Type: tea.KeyCtrlT})
	if !p.transfer.open {
		t.Fatal("ctrl+t should open the transfer overlay")
	}

	// Cursor starts on Jennifer Martinez, who is available.
	cmd := p.handleKey(tea.KeyMsg{Type: tea.KeyEnter})
	if cmd == nil {
		t.Fatal("selecting an available supervisor should start the close timer")
	}
	if !p.transfer.success || p.transfer.selected.Name != "Jennifer Martinez" {
		t.Fatalf("transfer state = %+v", p.transfer)
	}
	if !strings.Contains(p.View(), "Transfer request sent") {
		t.Fatal("confirmation screen not shown")
	}

	// The confirmation screen ignores input until the timer fires.
	p.handleKey(tea.KeyMsg{Type: tea.KeyEsc})
	if !p.transfer.open {
		t.Fatal("esc should not dismiss the confirmation screen")
	}

	// A tick from an abandoned attempt is harmless.
	p.Update(transferDoneMsg{seq: p.transfer.seq - 1})
	if !p.transfer.open || !p.transfer.success {
		t.Fatal("stale tick should be ignored")
	}

	p.Update(transferDoneMsg{seq: p.transfer.seq})
	if p.transfer.open || p.transfer.success {
		t.Fatal("matching tick should close the overlay")
	}
	if p.transfer.note.Value() != "" {
		t.Fatalf("note = %q, want reset", p.transfer.note.Value())
	}
}

func TestTransferUnavailableUnselectable(t *testing.T) {
	p := NewAgentPanel(testSupervisors())
	p.handleKey(tea.KeyMsg{Type: tea.KeyCtrlT})

	for _, name := range []string{"busy", "away"} {
		p.handleKey(tea.KeyMsg{Type: tea.KeyDown})
		if cmd := p.handleKey(tea.KeyMsg{Type: tea.KeyEnter}); cmd != nil {
			t.Fatalf("selecting a %s supervisor should be a no-op", name)
		}
		if p.transfer.success {
			t.Fatalf("%s supervisor started a transfer", name)
		}
	}

	p.handleKey(tea.KeyMsg{Type: tea.KeyEsc})
	if p.transfer.open {
		t.Fatal("esc should close the roster")
	}
}
