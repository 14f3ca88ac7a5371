package cmd

import (
	"fmt"
	"strings"

	"github.com/iksnae/chat-session/internal"
	"github.com/spf13/cobra"
)

var editCmd = &cobra.Command{
	Use:   "edit <session-id> <message-id> <text>...",
	Short: "Edit an assistant message in place",
	Long: `Replace the text of an assistant message. The message keeps its id,
position, and timestamp. Use 'chat-session show <session-id>' to find
message ids. Only assistant messages are editable.`,
	Args: cobra.MinimumNArgs(3),
	RunE: func(cmd *cobra.Command, args []string) error {
		store, cleanup, err := openStore()
		if err != nil {
			return err
		}
		defer cleanup()

		session, err := resolveSession(store, args[0])
		if err != nil {
			return err
		}
		msg, ok := session.FindMessage(args[1])
		if !ok {
			return fmt.Errorf("message %s not found in session %s", args[1], session.ID)
		}

		editor := internal.NewEditor(store)
		if err := editor.StartEdit(session.ID, msg); err != nil {
			return err
		}
		editor.UpdateDraft(strings.Join(args[2:], " "))
		if err := editor.ConfirmEdit(); err != nil {
			return err
		}

		fmt.Println(headerStyle.Render("Message updated"))
		return nil
	},
}

var copyCmd = &cobra.Command{
	Use:   "copy <session-id> <message-id>",
	Short: "Copy a message to the clipboard",
	Long:  `Copy the text of a message to the system clipboard.`,
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		store, cleanup, err := openStore()
		if err != nil {
			return err
		}
		defer cleanup()

		session, err := resolveSession(store, args[0])
		if err != nil {
			return err
		}
		msg, ok := session.FindMessage(args[1])
		if !ok {
			return fmt.Errorf("message %s not found in session %s", args[1], session.ID)
		}

		if internal.CopyMessage(msg.Text) {
			fmt.Println(headerStyle.Render("Copied"))
		} else {
			fmt.Println(dateStyle.Render("Clipboard unavailable"))
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(editCmd)
	rootCmd.AddCommand(copyCmd)
}
