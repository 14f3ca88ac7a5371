package internal

import (
	"fmt"
	"strings"
	"sync"
	"time"
)

// Store is the in-memory authoritative session state. Every mutation is
// serialized through its mutex and written through to Storage before the
// call returns; a failed save is logged but never rolled back, so the
// in-memory state stays the source of truth for the running process.
type Store struct {
	mu      sync.Mutex
	state   *State
	storage *Storage
}

// NewStore loads persisted state through the given Storage and returns a
// ready store.
func NewStore(storage *Storage) *Store {
	return &Store{
		state:   storage.Load(),
		storage: storage,
	}
}

func (s *Store) persistLocked() {
	if err := s.storage.Save(s.state); err != nil {
		LogWarn("Failed to persist state: %v", err)
	}
}

func (s *Store) findLocked(id string) *ChatSession {
	for _, sess := range s.state.Sessions {
		if sess.ID == id {
			return sess
		}
	}
	return nil
}

// CreateSession builds a new session with a placeholder name, prepends it
// to the session list, makes it active, and persists. Returns a copy of
// the new session.
func (s *Store) CreateSession() *ChatSession {
	s.mu.Lock()
	defer s.mu.Unlock()

	sess := NewChatSession(time.Now())
	s.state.Sessions = append([]*ChatSession{sess}, s.state.Sessions...)
	s.state.ActiveID = sess.ID
	s.persistLocked()

	LogDebug("Created session %s", sess.ID)
	return sess.Clone()
}

// SelectSession makes the given session active. Unknown ids are a logged
// no-op.
func (s *Store) SelectSession(id string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.findLocked(id) == nil {
		LogWarn("Select ignored: session %s not found", id)
		return
	}
	s.state.ActiveID = id
	s.persistLocked()
}

// DeleteSession removes a session. If it was active, the first remaining
// session becomes active, or none when the list is empty. Unknown ids are
// a logged no-op.
func (s *Store) DeleteSession(id string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	idx := -1
	for i, sess := range s.state.Sessions {
		if sess.ID == id {
			idx = i
			break
		}
	}
	if idx < 0 {
		LogWarn("Delete ignored: session %s not found", id)
		return
	}

	s.state.Sessions = append(s.state.Sessions[:idx], s.state.Sessions[idx+1:]...)
	if s.state.ActiveID == id {
		if len(s.state.Sessions) > 0 {
			s.state.ActiveID = s.state.Sessions[0].ID
		} else {
			s.state.ActiveID = ""
		}
	}
	s.persistLocked()
}

// AppendMessages appends messages to the target session in the given
// order and persists.
func (s *Store) AppendMessages(sessionID string, msgs ...Message) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	sess := s.findLocked(sessionID)
	if sess == nil {
		return fmt.Errorf("append to %s: %w", sessionID, ErrSessionNotFound)
	}
	sess.Messages = append(sess.Messages, msgs...)
	s.persistLocked()
	return nil
}

// RenameSession overwrites the session's display name and persists.
func (s *Store) RenameSession(sessionID, name string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	sess := s.findLocked(sessionID)
	if sess == nil {
		return fmt.Errorf("rename %s: %w", sessionID, ErrSessionNotFound)
	}
	sess.Name = name
	s.persistLocked()
	return nil
}

// EditMessage replaces the text of an existing message in place. The
// message keeps its id, sender, timestamp, and position. Empty text and
// unresolved ids are surfaced to the caller and leave the store untouched.
func (s *Store) EditMessage(sessionID, messageID, newText string) error {
	if strings.TrimSpace(newText) == "" {
		LogWarn("Edit rejected: empty text for message %s", messageID)
		return ErrEmptyText
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	sess := s.findLocked(sessionID)
	if sess == nil {
		LogWarn("Edit ignored: session %s not found", sessionID)
		return fmt.Errorf("edit in %s: %w", sessionID, ErrSessionNotFound)
	}

	for i := range sess.Messages {
		if sess.Messages[i].ID == messageID {
			sess.Messages[i].Text = newText
			s.persistLocked()
			return nil
		}
	}

	LogWarn("Edit ignored: message %s not found in session %s", messageID, sessionID)
	return fmt.Errorf("edit %s: %w", messageID, ErrMessageNotFound)
}

// Sessions returns a copy of all sessions in display order.
func (s *Store) Sessions() []*ChatSession {
	s.mu.Lock()
	defer s.mu.Unlock()

	out := make([]*ChatSession, 0, len(s.state.Sessions))
	for _, sess := range s.state.Sessions {
		out = append(out, sess.Clone())
	}
	return out
}

// Session returns a copy of the session with the given id.
func (s *Store) Session(id string) (*ChatSession, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	sess := s.findLocked(id)
	if sess == nil {
		return nil, false
	}
	return sess.Clone(), true
}

// ActiveID returns the active session id, or empty when none is active.
func (s *Store) ActiveID() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.state.ActiveID
}

// ActiveSession returns a copy of the active session, or nil when no
// session is active.
func (s *Store) ActiveSession() *ChatSession {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.state.ActiveID == "" {
		return nil
	}
	return s.findLocked(s.state.ActiveID).Clone()
}

// ActiveMessages is the derived read model for the transcript view: the
// messages of the active session, or an empty slice when no session is
// active or the id is unresolved.
func (s *Store) ActiveMessages() []Message {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.state.ActiveID == "" {
		return []Message{}
	}
	sess := s.findLocked(s.state.ActiveID)
	if sess == nil {
		return []Message{}
	}
	out := make([]Message, len(sess.Messages))
	copy(out, sess.Messages)
	return out
}

// Len returns the number of sessions.
func (s *Store) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.state.Sessions)
}
