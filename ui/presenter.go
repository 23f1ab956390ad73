package ui

import (
	"bytes"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/mkalens/agentdesk/assist"
	"github.com/mkalens/agentdesk/desk"
)

// ProgramPresenter delivers desk runtime updates into a running bubbletea
// program.
type ProgramPresenter struct {
	program *tea.Program
}

// NewProgramPresenter wraps a tea.Program as a desk.Presenter.
func NewProgramPresenter(program *tea.Program) *ProgramPresenter {
	return &ProgramPresenter{program: program}
}

func (p *ProgramPresenter) Transcript(messages []desk.Message) {
	p.program.Send(TranscriptMsg{Messages: messages})
}

func (p *ProgramPresenter) Typing(on bool) {
	p.program.Send(TypingMsg{On: on})
}

func (p *ProgramPresenter) Loading(on bool) {
	p.program.Send(LoadingMsg{On: on})
}

func (p *ProgramPresenter) Suggestion(resp assist.Response) {
	p.program.Send(SuggestionMsg{Response: resp})
}

func (p *ProgramPresenter) ClearSuggestion() {
	p.program.Send(ClearSuggestionMsg{})
}

// LogWriter implements io.Writer and sends each write as a LogLineMsg,
// letting logger.Intercept route log output into the log panel.
type LogWriter struct {
	program *tea.Program
}

// NewLogWriter creates a log writer bound to the program.
func NewLogWriter(program *tea.Program) *LogWriter {
	return &LogWriter{program: program}
}

func (w *LogWriter) Write(p []byte) (int, error) {
	// A single write can contain multiple lines.
	for _, line := range bytes.Split(p, []byte("\n")) {
		if len(line) == 0 {
			continue
		}
		w.program.Send(LogLineMsg{Line: string(line)})
	}
	return len(p), nil
}
