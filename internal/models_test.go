package internal

import (
	"testing"
	"time"
)

func TestNewMessage(t *testing.T) {
	ts := time.UnixMilli(1717171717000)

	tests := []struct {
		sender Sender
		wantID string
	}{
		{sender: SenderUser, wantID: "msg-1717171717000-user"},
		{sender: SenderAssistant, wantID: "msg-1717171717000-assistant"},
	}

	for _, tt := range tests {
		t.Run(string(tt.sender), func(t *testing.T) {
			msg := NewMessage(tt.sender, "hi", ts)
			if msg.ID != tt.wantID {
				t.Errorf("ID = %q, want %q", msg.ID, tt.wantID)
			}
			if msg.Sender != tt.sender || msg.Text != "hi" || !msg.Timestamp.Equal(ts) {
				t.Errorf("unexpected message: %+v", msg)
			}
		})
	}
}

func TestNewChatSession(t *testing.T) {
	now := time.Date(2024, 6, 1, 12, 30, 0, 0, time.UTC)
	session := NewChatSession(now)

	if session.ID == "" {
		t.Error("session id is empty")
	}
	if session.Name != "New chat - 2024-06-01 12:30" {
		t.Errorf("placeholder name = %q", session.Name)
	}
	if session.Messages == nil || len(session.Messages) != 0 {
		t.Error("new session should start with an empty message list")
	}

	// IDs must be unique across creations
	other := NewChatSession(now)
	if other.ID == session.ID {
		t.Error("two sessions created with the same id")
	}
}

func TestChatSession_Clone(t *testing.T) {
	session := &ChatSession{
		ID:   "s1",
		Name: "original",
		Messages: []Message{
			NewMessage(SenderUser, "hi", time.Now()),
		},
	}

	clone := session.Clone()
	clone.Name = "changed"
	clone.Messages[0].Text = "changed"
	clone.Messages = append(clone.Messages, Message{})

	if session.Name != "original" || session.Messages[0].Text != "hi" || len(session.Messages) != 1 {
		t.Error("mutating a clone affected the original")
	}

	var nilSession *ChatSession
	if nilSession.Clone() != nil {
		t.Error("Clone() of nil should be nil")
	}
}

func TestChatSession_FindMessage(t *testing.T) {
	msg := NewMessage(SenderUser, "hi", time.Now())
	session := &ChatSession{ID: "s1", Messages: []Message{msg}}

	if got, ok := session.FindMessage(msg.ID); !ok || got.Text != "hi" {
		t.Errorf("FindMessage(%q) = %+v, %v", msg.ID, got, ok)
	}
	if _, ok := session.FindMessage("m99"); ok {
		t.Error("FindMessage() found a nonexistent id")
	}
}

func TestChatSession_CreatedAt(t *testing.T) {
	empty := &ChatSession{ID: "s1"}
	if !empty.CreatedAt().IsZero() {
		t.Error("CreatedAt() of an empty session should be zero")
	}

	ts := time.UnixMilli(1000)
	session := &ChatSession{
		Messages: []Message{
			NewMessage(SenderUser, "first", ts),
			NewMessage(SenderAssistant, "second", ts.Add(time.Second)),
		},
	}
	if !session.CreatedAt().Equal(ts) {
		t.Errorf("CreatedAt() = %v, want the first message time", session.CreatedAt())
	}
}

func TestMessageIDsDistinctWithinPair(t *testing.T) {
	now := time.Now()
	user := NewMessage(SenderUser, "x", now)
	assistant := NewMessage(SenderAssistant, "x", now)
	if user.ID == assistant.ID {
		t.Errorf("user and assistant ids collide: %s", user.ID)
	}
}
