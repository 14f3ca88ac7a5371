package cmd

import (
	"errors"
	"fmt"
	"strings"

	"github.com/iksnae/chat-session/internal"
	"github.com/spf13/cobra"
)

var sendCmd = &cobra.Command{
	Use:   "send <text>...",
	Short: "Send a message to the active session",
	Long: `Send a message through the pipeline. The message goes to the active
session; if none exists, a new session is created and named from the
message text. The assistant's reply is printed.`,
	Args: cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		store, cleanup, err := openStore()
		if err != nil {
			return err
		}
		defer cleanup()

		pipeline := internal.NewPipeline(store, nil)
		pipeline.SetResponseDelay(cfg.ResponseDelay())

		result, err := pipeline.Send(cmd.Context(), strings.Join(args, " "))
		if err != nil {
			if errors.Is(err, internal.ErrEmptyText) {
				return fmt.Errorf("nothing to send: message is empty")
			}
			return err
		}

		if result.CreatedSession {
			if session, ok := store.Session(result.SessionID); ok {
				fmt.Println(idStyle.Render("Started new session: " + session.Name))
			}
		}
		for _, msg := range result.Appended {
			if msg.Sender == internal.SenderAssistant {
				fmt.Println(assistantStyle.Render("assistant") + " " + msg.Text)
			}
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(sendCmd)
}
