package export

import (
	"io"
	"time"

	"github.com/iksnae/chat-session/internal"
	"gopkg.in/yaml.v3"
)

// YAMLExporter exports sessions in YAML format
type YAMLExporter struct{}

// yamlSession is the YAML view of a session, with RFC3339 timestamps.
type yamlSession struct {
	ID       string        `yaml:"id"`
	Name     string        `yaml:"name"`
	Messages []yamlMessage `yaml:"messages"`
}

type yamlMessage struct {
	ID        string `yaml:"id"`
	Sender    string `yaml:"sender"`
	Text      string `yaml:"text"`
	Timestamp string `yaml:"timestamp,omitempty"`
}

// Export exports a session to YAML format
func (e *YAMLExporter) Export(session *internal.ChatSession, w io.Writer) error {
	view := yamlSession{
		ID:       session.ID,
		Name:     session.Name,
		Messages: make([]yamlMessage, 0, len(session.Messages)),
	}
	for _, msg := range session.Messages {
		ym := yamlMessage{
			ID:     msg.ID,
			Sender: string(msg.Sender),
			Text:   msg.Text,
		}
		if !msg.Timestamp.IsZero() {
			ym.Timestamp = msg.Timestamp.Format(time.RFC3339)
		}
		view.Messages = append(view.Messages, ym)
	}

	enc := yaml.NewEncoder(w)
	defer func() { _ = enc.Close() }()

	return enc.Encode(view)
}

// Extension returns the file extension for this format
func (e *YAMLExporter) Extension() string {
	return "yaml"
}
