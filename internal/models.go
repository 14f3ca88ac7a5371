package internal

import (
	"fmt"
	"time"

	"github.com/google/uuid"
)

// Sender identifies who authored a message.
type Sender string

const (
	SenderUser      Sender = "user"
	SenderAssistant Sender = "assistant"
)

// Message represents a single turn in a chat session
type Message struct {
	ID        string    `json:"id"`
	Text      string    `json:"text"`
	Sender    Sender    `json:"sender"`
	Timestamp time.Time `json:"timestamp"`
}

// ChatSession represents a named, ordered conversation thread
type ChatSession struct {
	ID       string    `json:"id"`
	Name     string    `json:"name"`
	Messages []Message `json:"messages"`
}

// State holds the full store state: sessions in display order
// (most recently created first) and the active session id.
type State struct {
	Sessions []*ChatSession
	ActiveID string
}

// NewMessage builds a message with an id derived from the creation time
// and the sender tag, e.g. "msg-1717171717000-user".
func NewMessage(sender Sender, text string, ts time.Time) Message {
	return Message{
		ID:        fmt.Sprintf("msg-%d-%s", ts.UnixMilli(), sender),
		Text:      text,
		Sender:    sender,
		Timestamp: ts,
	}
}

// NewChatSession builds an empty session with a placeholder name.
func NewChatSession(now time.Time) *ChatSession {
	return &ChatSession{
		ID:       uuid.NewString(),
		Name:     "New chat - " + now.Format("2006-01-02 15:04"),
		Messages: make([]Message, 0),
	}
}

// Clone returns a deep copy of the session.
func (s *ChatSession) Clone() *ChatSession {
	if s == nil {
		return nil
	}
	msgs := make([]Message, len(s.Messages))
	copy(msgs, s.Messages)
	return &ChatSession{
		ID:       s.ID,
		Name:     s.Name,
		Messages: msgs,
	}
}

// FindMessage locates a message by id. Returns false if no message matches.
func (s *ChatSession) FindMessage(messageID string) (Message, bool) {
	for _, msg := range s.Messages {
		if msg.ID == messageID {
			return msg, true
		}
	}
	return Message{}, false
}

// CreatedAt returns the timestamp of the first message, or the zero time
// for a session that has no messages yet.
func (s *ChatSession) CreatedAt() time.Time {
	if len(s.Messages) == 0 {
		return time.Time{}
	}
	return s.Messages[0].Timestamp
}
