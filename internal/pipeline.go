package internal

import (
	"context"
	"strings"
	"time"
	"unicode/utf8"
)

// Responder produces the assistant reply for a conversation. The history
// slice ends with the just-submitted user message. Implementations may
// call out to a remote backend; they must respect ctx.
type Responder func(ctx context.Context, history []Message) (string, error)

// EchoResponder mirrors the user's text back. It is the default until a
// real generation backend is wired in.
func EchoResponder(_ context.Context, history []Message) (string, error) {
	if len(history) == 0 {
		return "", nil
	}
	return history[len(history)-1].Text, nil
}

const (
	// defaultResponseDelay models response latency: the assistant
	// timestamp is offset from the user message by this much.
	defaultResponseDelay = 500 * time.Millisecond

	// Naming heuristic: inputs longer than nameMinRunes rename a newly
	// created session to their first nameMaxRunes runes.
	nameMinRunes = 5
	nameMaxRunes = 25
)

// Pipeline runs the send-message flow: target resolution, user message
// construction, response construction, append, and the one-shot naming
// heuristic.
type Pipeline struct {
	store     *Store
	responder Responder
	delay     time.Duration
}

// SendResult reports what a send did.
type SendResult struct {
	SessionID      string
	CreatedSession bool
	Appended       []Message
}

// NewPipeline creates a pipeline over the store. A nil responder falls
// back to EchoResponder.
func NewPipeline(store *Store, responder Responder) *Pipeline {
	if responder == nil {
		responder = EchoResponder
	}
	return &Pipeline{
		store:     store,
		responder: responder,
		delay:     defaultResponseDelay,
	}
}

// SetResponseDelay overrides the modeled response latency.
func (p *Pipeline) SetResponseDelay(d time.Duration) {
	if d >= 0 {
		p.delay = d
	}
}

// Send submits user input. Input that trims to empty is rejected before
// any state is touched. The user message is appended and persisted before
// the responder runs so it stays visible while a reply is pending; a
// responder failure lands as a visible error message in the assistant
// slot, and a reply that resolves after its target session was deleted is
// discarded rather than appended elsewhere.
func (p *Pipeline) Send(ctx context.Context, input string) (*SendResult, error) {
	text := strings.TrimSpace(input)
	if text == "" {
		return nil, ErrEmptyText
	}

	created := false
	target := p.store.ActiveSession()
	if target == nil {
		target = p.store.CreateSession()
		created = true
	}

	userMsg := NewMessage(SenderUser, text, time.Now())
	if err := p.store.AppendMessages(target.ID, userMsg); err != nil {
		return nil, err
	}
	result := &SendResult{
		SessionID:      target.ID,
		CreatedSession: created,
		Appended:       []Message{userMsg},
	}

	history := append(target.Messages, userMsg)
	reply, err := p.responder(ctx, history)
	if err != nil {
		LogWarn("Responder failed for session %s: %v", target.ID, err)
		reply = "Sorry, something went wrong generating a response. Please try again."
	}

	if ctx.Err() != nil {
		LogInfo("Discarding response for session %s: %v", target.ID, ctx.Err())
		p.nameNewSession(created, target.ID, text)
		return result, nil
	}

	assistant := NewMessage(SenderAssistant, reply, userMsg.Timestamp.Add(p.delay))
	if err := p.store.AppendMessages(target.ID, assistant); err != nil {
		// The session vanished while the responder ran.
		LogWarn("Discarding response for deleted session %s", target.ID)
		p.nameNewSession(created, target.ID, text)
		return result, nil
	}
	result.Appended = append(result.Appended, assistant)

	p.nameNewSession(created, target.ID, text)
	return result, nil
}

// nameNewSession applies the one-shot naming heuristic after the first
// message lands in a freshly created session. It never re-fires: only a
// send that itself created the session qualifies.
func (p *Pipeline) nameNewSession(created bool, sessionID, text string) {
	if !created || utf8.RuneCountInString(text) <= nameMinRunes {
		return
	}
	if err := p.store.RenameSession(sessionID, DeriveSessionName(text)); err != nil {
		LogWarn("Failed to name session %s: %v", sessionID, err)
	}
}

// DeriveSessionName truncates the first user message to a display name.
func DeriveSessionName(text string) string {
	runes := []rune(text)
	if len(runes) > nameMaxRunes {
		return string(runes[:nameMaxRunes]) + "..."
	}
	return text
}
