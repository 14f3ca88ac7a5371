package export

import (
	"bytes"
	"strings"
	"testing"
	"time"

	"github.com/iksnae/chat-session/internal"
)

func TestMarkdownExporter_Export(t *testing.T) {
	tests := []struct {
		name    string
		session *internal.ChatSession
		want    []string
		wantErr bool
	}{
		{
			name:    "basic session",
			session: testSession("test1"),
			want: []string{
				"# hello world",
				"**Session:** test1",
				"**Messages:** 2",
				"**user:**",
				"**assistant:**",
			},
			wantErr: false,
		},
		{
			name: "session with timestamp",
			session: &internal.ChatSession{
				ID:   "test2",
				Name: "timestamped",
				Messages: []internal.Message{
					{
						ID:        "msg-1-user",
						Sender:    internal.SenderUser,
						Text:      "Hello",
						Timestamp: time.Date(2023, 1, 1, 0, 0, 0, 0, time.UTC),
					},
				},
			},
			want: []string{
				"**user:** (2023-01-01 00:00:00)",
			},
			wantErr: false,
		},
		{
			name:    "empty session",
			session: emptySession("test3"),
			want: []string{
				"**Messages:** 0",
			},
			wantErr: false,
		},
		{
			name: "message with markdown characters",
			session: &internal.ChatSession{
				ID:   "test4",
				Name: "markdown",
				Messages: []internal.Message{
					{
						ID:     "msg-2-user",
						Sender: internal.SenderUser,
						Text:   "this is **bold** text",
					},
				},
			},
			want: []string{
				`this is \*\*bold\*\* text`,
			},
			wantErr: false,
		},
		{
			name: "code block preserved",
			session: &internal.ChatSession{
				ID:   "test5",
				Name: "code",
				Messages: []internal.Message{
					{
						ID:     "msg-3-assistant",
						Sender: internal.SenderAssistant,
						Text:   "```go\nx := \"**not bold**\"\n```",
					},
				},
			},
			want: []string{
				"x := \"**not bold**\"",
			},
			wantErr: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer
			exporter := &MarkdownExporter{}

			err := exporter.Export(tt.session, &buf)
			if (err != nil) != tt.wantErr {
				t.Errorf("MarkdownExporter.Export() error = %v, wantErr %v", err, tt.wantErr)
				return
			}

			output := buf.String()
			for _, want := range tt.want {
				if !strings.Contains(output, want) {
					t.Errorf("Output missing %q:\n%s", want, output)
				}
			}
		})
	}
}

func TestEscapeMarkdown(t *testing.T) {
	tests := []struct {
		name string
		text string
		want string
	}{
		{
			name: "plain text",
			text: "hello",
			want: "hello",
		},
		{
			name: "bold markers escaped",
			text: "**bold**",
			want: `\*\*bold\*\*`,
		},
		{
			name: "underscores escaped",
			text: "__emphasis__",
			want: `\_\_emphasis\_\_`,
		},
		{
			name: "code block untouched",
			text: "```\n**raw**\n```",
			want: "```\n**raw**\n```",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := escapeMarkdown(tt.text); got != tt.want {
				t.Errorf("escapeMarkdown() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestMarkdownExporter_Extension(t *testing.T) {
	exporter := &MarkdownExporter{}
	if got := exporter.Extension(); got != "md" {
		t.Errorf("MarkdownExporter.Extension() = %v, want md", got)
	}
}
