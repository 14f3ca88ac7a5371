package internal

import (
	"errors"
	"fmt"
)

// ErrNoEditInProgress is returned when confirm/cancel is called without a
// started edit.
var ErrNoEditInProgress = errors.New("no edit in progress")

// Editor owns the transient edit buffer for a single message: which
// message is being edited and its draft text. The buffer lives outside
// the store, is never persisted, and does not survive a session switch.
type Editor struct {
	store     *Store
	sessionID string
	messageID string
	draft     string
	active    bool
}

// NewEditor creates an editor over the store.
func NewEditor(store *Store) *Editor {
	return &Editor{store: store}
}

// StartEdit begins editing a message, seeding the draft with its current
// text. Only assistant-authored messages are editable here; that is a UI
// policy, the store's EditMessage itself is role-agnostic.
func (e *Editor) StartEdit(sessionID string, msg Message) error {
	if msg.Sender != SenderAssistant {
		return fmt.Errorf("message %s is not editable: only assistant messages can be edited", msg.ID)
	}
	e.sessionID = sessionID
	e.messageID = msg.ID
	e.draft = msg.Text
	e.active = true
	return nil
}

// Editing reports whether an edit is in progress, and for which message.
func (e *Editor) Editing() (string, bool) {
	return e.messageID, e.active
}

// Draft returns the current draft text.
func (e *Editor) Draft() string {
	return e.draft
}

// UpdateDraft replaces the draft text without touching the store.
func (e *Editor) UpdateDraft(text string) {
	if e.active {
		e.draft = text
	}
}

// ConfirmEdit commits the draft through the store. The buffer is kept on
// failure (empty draft, message deleted underneath an open edit) so the
// caller can correct or cancel.
func (e *Editor) ConfirmEdit() error {
	if !e.active {
		return ErrNoEditInProgress
	}
	if err := e.store.EditMessage(e.sessionID, e.messageID, e.draft); err != nil {
		return err
	}
	e.reset()
	return nil
}

// CancelEdit discards the draft without mutating the store.
func (e *Editor) CancelEdit() {
	e.reset()
}

func (e *Editor) reset() {
	e.sessionID = ""
	e.messageID = ""
	e.draft = ""
	e.active = false
}
