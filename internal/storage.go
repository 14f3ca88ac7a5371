package internal

import (
	"database/sql"
	"encoding/json"
	"time"
)

// Storage keys. The whole session list lives under one key, the active
// session id under another; the row for the active id is removed when no
// session is active.
const (
	keySessions      = "sessions"
	keyActiveSession = "last_active_session_id"
)

// storedMessage is the persisted form of a Message. Timestamps are
// millisecond unix values so a save/load round trip is exact.
type storedMessage struct {
	ID        string `json:"id"`
	Text      string `json:"text"`
	Sender    string `json:"sender"`
	Timestamp int64  `json:"timestamp"`
}

// storedSession is the persisted form of a ChatSession.
type storedSession struct {
	ID       string          `json:"id"`
	Name     string          `json:"name"`
	Messages []storedMessage `json:"messages"`
}

func toStoredSession(s *ChatSession) storedSession {
	msgs := make([]storedMessage, 0, len(s.Messages))
	for _, m := range s.Messages {
		msgs = append(msgs, storedMessage{
			ID:        m.ID,
			Text:      m.Text,
			Sender:    string(m.Sender),
			Timestamp: m.Timestamp.UnixMilli(),
		})
	}
	return storedSession{ID: s.ID, Name: s.Name, Messages: msgs}
}

func (ss storedSession) toSession() *ChatSession {
	msgs := make([]Message, 0, len(ss.Messages))
	for _, m := range ss.Messages {
		msgs = append(msgs, Message{
			ID:        m.ID,
			Text:      m.Text,
			Sender:    Sender(m.Sender),
			Timestamp: time.UnixMilli(m.Timestamp),
		})
	}
	return &ChatSession{ID: ss.ID, Name: ss.Name, Messages: msgs}
}

// Storage persists store state in the chatKV table. It is the only
// component that touches the database; the Store invokes it after every
// mutation and it never mutates state itself.
type Storage struct {
	db *sql.DB
}

// NewStorage creates a new Storage instance
func NewStorage(db *sql.DB) *Storage {
	return &Storage{db: db}
}

// Load deserializes the persisted state. It fails soft: missing keys,
// unreadable rows, or malformed JSON degrade to an empty state with a
// logged warning so startup never blocks on a corrupted store.
func (s *Storage) Load() *State {
	state := &State{}

	raw, ok, err := GetValue(s.db, keySessions)
	if err != nil {
		LogWarn("Failed to read persisted sessions: %v", err)
		return state
	}
	if ok {
		var stored []storedSession
		if err := json.Unmarshal([]byte(raw), &stored); err != nil {
			LogWarn("Ignoring malformed session data: %v", err)
		} else {
			for i := range stored {
				state.Sessions = append(state.Sessions, stored[i].toSession())
			}
		}
	}

	active, ok, err := GetValue(s.db, keyActiveSession)
	if err != nil {
		LogWarn("Failed to read active session id: %v", err)
	} else if ok {
		for _, sess := range state.Sessions {
			if sess.ID == active {
				state.ActiveID = active
				break
			}
		}
		if state.ActiveID == "" {
			LogWarn("Persisted active session %s no longer exists", active)
		}
	}

	// Fall back to the most recent session when no valid active id
	// survived the load.
	if state.ActiveID == "" && len(state.Sessions) > 0 {
		state.ActiveID = state.Sessions[0].ID
	}

	return state
}

// Save serializes sessions and the active session id and writes both keys
// in a single transaction.
func (s *Storage) Save(state *State) error {
	stored := make([]storedSession, 0, len(state.Sessions))
	for _, sess := range state.Sessions {
		stored = append(stored, toStoredSession(sess))
	}

	data, err := json.Marshal(stored)
	if err != nil {
		return &StorageError{Op: "serialize", Key: keySessions, Err: err}
	}

	tx, err := s.db.Begin()
	if err != nil {
		return &StorageError{Op: "begin", Key: keySessions, Err: err}
	}

	if err := setValueTx(tx, keySessions, string(data)); err != nil {
		_ = tx.Rollback()
		return &StorageError{Op: "write", Key: keySessions, Err: err}
	}

	if state.ActiveID != "" {
		err = setValueTx(tx, keyActiveSession, state.ActiveID)
	} else {
		err = deleteValueTx(tx, keyActiveSession)
	}
	if err != nil {
		_ = tx.Rollback()
		return &StorageError{Op: "write", Key: keyActiveSession, Err: err}
	}

	if err := tx.Commit(); err != nil {
		return &StorageError{Op: "commit", Key: keySessions, Err: err}
	}
	return nil
}
