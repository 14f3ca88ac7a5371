package cmd

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/iksnae/chat-session/internal"
	"github.com/spf13/cobra"
)

var chatCmd = &cobra.Command{
	Use:   "chat",
	Short: "Start an interactive chat",
	Long: `Read messages from stdin and send them through the pipeline.

Slash commands inside the chat:
  /new              start a new session
  /sessions         list sessions
  /switch <id>      switch to another session
  /delete [id]      delete a session (the active one by default)
  /quit             exit`,
	RunE: func(cmd *cobra.Command, args []string) error {
		store, cleanup, err := openStore()
		if err != nil {
			return err
		}
		defer cleanup()

		pipeline := internal.NewPipeline(store, nil)
		pipeline.SetResponseDelay(cfg.ResponseDelay())

		return runChatLoop(cmd, store, pipeline, cmd.InOrStdin(), cmd.OutOrStdout())
	},
}

func runChatLoop(cmd *cobra.Command, store *internal.Store, pipeline *internal.Pipeline, in io.Reader, out io.Writer) error {
	scanner := bufio.NewScanner(in)
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)

	printPrompt(store, out)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())

		if strings.HasPrefix(line, "/") {
			if quit := runChatCommand(store, line, out); quit {
				return nil
			}
			printPrompt(store, out)
			continue
		}

		result, err := pipeline.Send(cmd.Context(), line)
		if err != nil {
			if !errors.Is(err, internal.ErrEmptyText) {
				fmt.Fprintf(out, "error: %v\n", err)
			}
			printPrompt(store, out)
			continue
		}

		if result.CreatedSession {
			if session, ok := store.Session(result.SessionID); ok {
				fmt.Fprintln(out, idStyle.Render("Started new session: "+session.Name))
			}
		}
		for _, msg := range result.Appended {
			if msg.Sender == internal.SenderAssistant {
				fmt.Fprintln(out, assistantStyle.Render("assistant")+" "+msg.Text)
			}
		}
		printPrompt(store, out)
	}
	return scanner.Err()
}

func printPrompt(store *internal.Store, out io.Writer) {
	name := "no session"
	if session := store.ActiveSession(); session != nil {
		name = session.Name
	}
	fmt.Fprint(out, userStyle.Render("["+name+"] > "))
}

// runChatCommand handles a slash command. Returns true when the loop
// should exit.
func runChatCommand(store *internal.Store, line string, out io.Writer) bool {
	fields := strings.Fields(line)
	switch fields[0] {
	case "/quit", "/exit", "/q":
		return true

	case "/new":
		session := store.CreateSession()
		fmt.Fprintln(out, idStyle.Render("Started new session: "+session.Name))

	case "/sessions":
		for _, session := range store.Sessions() {
			marker := "  "
			if session.ID == store.ActiveID() {
				marker = activeStyle.Render("● ")
			}
			shortID := session.ID
			if len(shortID) > 8 {
				shortID = shortID[:8]
			}
			fmt.Fprintf(out, "%s%s  %s (%d messages)\n", marker, idStyle.Render(shortID), session.Name, len(session.Messages))
		}

	case "/switch":
		if len(fields) < 2 {
			fmt.Fprintln(out, "usage: /switch <session-id>")
			break
		}
		if session, err := resolveSession(store, fields[1]); err != nil {
			fmt.Fprintf(out, "error: %v\n", err)
		} else {
			store.SelectSession(session.ID)
			fmt.Fprintln(out, idStyle.Render("Switched to: "+session.Name))
		}

	case "/delete":
		id := store.ActiveID()
		if len(fields) >= 2 {
			if session, err := resolveSession(store, fields[1]); err != nil {
				fmt.Fprintf(out, "error: %v\n", err)
				break
			} else {
				id = session.ID
			}
		}
		if id == "" {
			fmt.Fprintln(out, "no session to delete")
			break
		}
		store.DeleteSession(id)
		fmt.Fprintln(out, idStyle.Render("Deleted session "+id))

	default:
		fmt.Fprintf(out, "unknown command %s\n", fields[0])
	}
	return false
}

func init() {
	rootCmd.AddCommand(chatCmd)
}
