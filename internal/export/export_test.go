package export

import (
	"time"

	"github.com/iksnae/chat-session/internal"
)

// testSession builds a two-message session used across the format tests.
func testSession(id string) *internal.ChatSession {
	return &internal.ChatSession{
		ID:   id,
		Name: "hello world",
		Messages: []internal.Message{
			{
				ID:        "msg-1000-user",
				Text:      "hello world",
				Sender:    internal.SenderUser,
				Timestamp: time.UnixMilli(1000).UTC(),
			},
			{
				ID:        "msg-1500-assistant",
				Text:      "hello world",
				Sender:    internal.SenderAssistant,
				Timestamp: time.UnixMilli(1500).UTC(),
			},
		},
	}
}

// emptySession builds a session with no messages.
func emptySession(id string) *internal.ChatSession {
	return &internal.ChatSession{
		ID:       id,
		Name:     "New chat - 2024-01-01 00:00",
		Messages: []internal.Message{},
	}
}
