package cmd

import (
	"fmt"

	"github.com/charmbracelet/lipgloss"
	"github.com/iksnae/chat-session/internal"
	"github.com/spf13/cobra"
)

var (
	userStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("39"))

	assistantStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("212"))

	timestampStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("243"))
)

var showCmd = &cobra.Command{
	Use:   "show [session-id]",
	Short: "View a session transcript",
	Long: `View the messages of a session. Without an argument the active
session is shown. Session ids may be abbreviated to a unique prefix.`,
	Args: cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		store, cleanup, err := openStore()
		if err != nil {
			return err
		}
		defer cleanup()

		var session *internal.ChatSession
		if len(args) == 0 {
			session = store.ActiveSession()
			if session == nil {
				return fmt.Errorf("no active session (use `chat-session list` to see available sessions)")
			}
		} else {
			session, err = resolveSession(store, args[0])
			if err != nil {
				return err
			}
		}

		displayTranscript(session)
		return nil
	},
}

func displayTranscript(session *internal.ChatSession) {
	fmt.Println(headerStyle.Render(session.Name))
	fmt.Println(idStyle.Render(session.ID))
	fmt.Println()

	if len(session.Messages) == 0 {
		fmt.Println(dateStyle.Render("No messages yet"))
		return
	}

	for _, msg := range session.Messages {
		label := userStyle.Render("user")
		if msg.Sender == internal.SenderAssistant {
			label = assistantStyle.Render("assistant")
		}
		ts := timestampStyle.Render(msg.Timestamp.Format("2006-01-02 15:04:05"))
		fmt.Printf("%s %s %s\n", label, ts, idStyle.Render(msg.ID))
		fmt.Println(msg.Text)
		fmt.Println()
	}
}

// resolveSession finds a session by full id or unique prefix.
func resolveSession(store *internal.Store, idOrPrefix string) (*internal.ChatSession, error) {
	if session, ok := store.Session(idOrPrefix); ok {
		return session, nil
	}

	var matches []*internal.ChatSession
	for _, session := range store.Sessions() {
		if len(idOrPrefix) >= 4 && len(session.ID) >= len(idOrPrefix) && session.ID[:len(idOrPrefix)] == idOrPrefix {
			matches = append(matches, session)
		}
	}
	switch len(matches) {
	case 1:
		return matches[0], nil
	case 0:
		return nil, fmt.Errorf("session %s not found", idOrPrefix)
	default:
		return nil, fmt.Errorf("session prefix %s is ambiguous (%d matches)", idOrPrefix, len(matches))
	}
}

func init() {
	rootCmd.AddCommand(showCmd)
}
