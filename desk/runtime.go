package desk

import (
	"context"
	"strings"
	"time"

	"github.com/jonboulle/clockwork"

	"github.com/mkalens/agentdesk/assist"
	"github.com/mkalens/agentdesk/logger"
)

// Presenter receives state updates for the UI. The runtime never touches
// panel internals; it pushes snapshots and flags and the panels re-render.
type Presenter interface {
	Transcript(messages []Message)
	Typing(on bool)
	Loading(on bool)
	Suggestion(resp assist.Response)
	ClearSuggestion()
}

// DefaultScript is the scripted customer side of the demo conversation.
// Each agent reply advances it by one line.
var DefaultScript = []string{
	"Hi, I need some help with our contact center setup",
	"The assist suggestions are not showing for my agents, this issue is blocking them",
	"Where do I configure the confidence threshold?",
	"Thanks, that solved it!",
}

// Options configure a Runtime.
type Options struct {
	Clock        clockwork.Clock // nil means real clock
	SuggestDelay time.Duration   // simulated assist backend latency
	TypingDelay  time.Duration   // simulator typing duration
	Simulate     bool            // drive the scripted customer
	Script       []string        // nil means DefaultScript
}

type intentKind int

const (
	intentAgentSend intentKind = iota
	intentCustomerSend
	intentClearSuggestion
	intentSuggestReady
)

type intent struct {
	kind intentKind
	text string
	seq  int64
	resp assist.Response
}

const intentBufferSize = 32

// Runtime owns the conversation and routes intents between the panels, the
// assist engine, and the customer simulator. All state changes happen on
// the Run goroutine.
type Runtime struct {
	conv      *Conversation
	engine    *assist.Engine
	presenter Presenter
	clock     clockwork.Clock

	suggestDelay time.Duration
	typingDelay  time.Duration

	simulate  bool
	script    []string
	scriptIdx int

	intents chan intent
	seq     int64 // current suggestion generation, Run goroutine only
}

// NewRuntime creates a desk runtime.
func NewRuntime(engine *assist.Engine, presenter Presenter, opts Options) *Runtime {
	clock := opts.Clock
	if clock == nil {
		clock = clockwork.NewRealClock()
	}
	script := opts.Script
	if script == nil {
		script = DefaultScript
	}
	return &Runtime{
		conv:         NewConversation(),
		engine:       engine,
		presenter:    presenter,
		clock:        clock,
		suggestDelay: opts.SuggestDelay,
		typingDelay:  opts.TypingDelay,
		simulate:     opts.Simulate,
		script:       script,
		intents:      make(chan intent, intentBufferSize),
	}
}

// Conversation returns the owned transcript.
func (r *Runtime) Conversation() *Conversation {
	return r.conv
}

// AgentSend queues an agent message.
func (r *Runtime) AgentSend(text string) {
	r.enqueue(intent{kind: intentAgentSend, text: text})
}

// CustomerSend queues a customer message.
func (r *Runtime) CustomerSend(text string) {
	r.enqueue(intent{kind: intentCustomerSend, text: text})
}

// ClearSuggestion queues a clear-suggestion request.
func (r *Runtime) ClearSuggestion() {
	r.enqueue(intent{kind: intentClearSuggestion})
}

func (r *Runtime) enqueue(in intent) {
	select {
	case r.intents <- in:
	default:
		logger.Warn("desk intent buffer full, intent dropped", "kind", int(in.kind))
	}
}

// Run processes intents until ctx is cancelled. When the simulator is on,
// the scripted customer opens the conversation.
func (r *Runtime) Run(ctx context.Context) {
	if r.simulate {
		r.scheduleCustomerLine(ctx)
	}

	for {
		select {
		case <-ctx.Done():
			return
		case in := <-r.intents:
			r.handle(ctx, in)
		}
	}
}

func (r *Runtime) handle(ctx context.Context, in intent) {
	switch in.kind {
	case intentAgentSend:
		text := strings.TrimSpace(in.text)
		if text == "" {
			return
		}
		r.conv.Append(RoleAgent, text)
		r.presenter.Transcript(r.conv.Messages())
		logger.Debug("agent message", "len", len(text))
		if r.simulate {
			r.scheduleCustomerLine(ctx)
		}

	case intentCustomerSend:
		text := strings.TrimSpace(in.text)
		if text == "" {
			return
		}
		r.presenter.Typing(false)
		r.conv.Append(RoleCustomer, text)
		r.presenter.Transcript(r.conv.Messages())
		logger.Debug("customer message", "len", len(text))
		r.requestSuggestion(ctx)

	case intentClearSuggestion:
		r.presenter.ClearSuggestion()

	case intentSuggestReady:
		// Stale generations lose to a newer customer message.
		if in.seq != r.seq {
			logger.Debug("stale suggestion dropped", "seq", in.seq, "current", r.seq)
			return
		}
		r.presenter.Loading(false)
		r.presenter.Suggestion(in.resp)
	}
}

// requestSuggestion runs the assist engine off the Run goroutine, with the
// configured latency, and posts the result back as an intent.
func (r *Runtime) requestSuggestion(ctx context.Context) {
	r.seq++
	seq := r.seq
	turns := r.turns()

	r.presenter.Loading(true)
	go func() {
		if r.suggestDelay > 0 {
			select {
			case <-ctx.Done():
				return
			case <-r.clock.After(r.suggestDelay):
			}
		}
		resp := r.engine.Suggest(turns)
		r.enqueue(intent{kind: intentSuggestReady, seq: seq, resp: resp})
	}()
}

// scheduleCustomerLine plays the next scripted customer line after a typing
// delay. No-op once the script is exhausted.
func (r *Runtime) scheduleCustomerLine(ctx context.Context) {
	if r.scriptIdx >= len(r.script) {
		return
	}
	line := r.script[r.scriptIdx]
	r.scriptIdx++

	r.presenter.Typing(true)
	go func() {
		if r.typingDelay > 0 {
			select {
			case <-ctx.Done():
				return
			case <-r.clock.After(r.typingDelay):
			}
		}
		r.enqueue(intent{kind: intentCustomerSend, text: line})
	}()
}

func (r *Runtime) turns() []assist.Turn {
	messages := r.conv.Messages()
	turns := make([]assist.Turn, 0, len(messages))
	for _, m := range messages {
		turns = append(turns, assist.Turn{Role: string(m.Role), Content: m.Content})
	}
	return turns
}
