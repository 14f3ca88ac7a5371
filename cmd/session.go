package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

var newCmd = &cobra.Command{
	Use:   "new",
	Short: "Start a new session",
	Long:  `Create a new empty session and make it active.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		store, cleanup, err := openStore()
		if err != nil {
			return err
		}
		defer cleanup()

		session := store.CreateSession()
		fmt.Println(headerStyle.Render("Started new session"))
		fmt.Println(idStyle.Render(session.ID))
		return nil
	},
}

var useCmd = &cobra.Command{
	Use:   "use <session-id>",
	Short: "Make a session active",
	Long:  `Set the active session. New messages will target it.`,
	Args:  cobra.ExactArgs(1),
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
		store.SelectSession(session.ID)
		fmt.Println(headerStyle.Render("Active session: " + session.Name))
		return nil
	},
}

var deleteCmd = &cobra.Command{
	Use:   "delete <session-id>",
	Short: "Delete a session",
	Long: `Delete a session and its messages. If it was active, the most
recent remaining session becomes active.`,
	Args: cobra.ExactArgs(1),
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
		store.DeleteSession(session.ID)
		fmt.Println(headerStyle.Render("Deleted session: " + session.Name))

		if active := store.ActiveSession(); active != nil {
			fmt.Println(idStyle.Render("Active session is now: " + active.Name))
		} else {
			fmt.Println(idStyle.Render("No sessions remain"))
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(newCmd)
	rootCmd.AddCommand(useCmd)
	rootCmd.AddCommand(deleteCmd)
}
