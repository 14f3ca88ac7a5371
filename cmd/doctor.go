package cmd

import (
	"fmt"
	"os"

	"github.com/charmbracelet/lipgloss"
	"github.com/iksnae/chat-session/internal"
	"github.com/spf13/cobra"
)

var (
	successStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("42")).
			Bold(true)

	warnStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("214")).
			Bold(true)

	errStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("196")).
			Bold(true)

	infoStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("39"))

	sectionStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("62")).
			Bold(true).
			Underline(true)
)

var doctorCmd = &cobra.Command{
	Use:   "doctor",
	Short: "Check that the session store is healthy",
	Long: `Check the health of chat-session by verifying:
  • Config file readability
  • Storage path resolution
  • Database accessibility
  • Session data loadability and counts

This command is useful for debugging storage issues.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		fmt.Println(sectionStyle.Render("Chat Session Health Check"))
		fmt.Println()

		// Step 1: config
		fmt.Println(infoStyle.Render("Step 1: Reading config..."))
		if _, err := internal.LoadConfig(configPath); err != nil {
			fmt.Println(warnStyle.Render("⚠ Config unreadable, defaults in effect:"), err)
		} else {
			fmt.Println(successStyle.Render("✓ Config OK"))
		}
		fmt.Println()

		// Step 2: storage path
		fmt.Println(infoStyle.Render("Step 2: Resolving storage path..."))
		path, err := resolveStoragePath()
		if err != nil {
			fmt.Println(errStyle.Render("✗ Failed to resolve storage path:"), err)
			os.Exit(1)
		}
		fmt.Println(successStyle.Render("✓ Storage path: " + path))
		if _, err := os.Stat(path); os.IsNotExist(err) {
			fmt.Println(warnStyle.Render("⚠ Database does not exist yet; it will be created on first use"))
		}
		fmt.Println()

		// Step 3: database
		fmt.Println(infoStyle.Render("Step 3: Opening database..."))
		db, err := internal.OpenDatabase(path)
		if err != nil {
			fmt.Println(errStyle.Render("✗ Failed to open database:"), err)
			os.Exit(1)
		}
		defer func() { _ = db.Close() }()
		fmt.Println(successStyle.Render("✓ Database accessible"))
		fmt.Println()

		// Step 4: state
		fmt.Println(infoStyle.Render("Step 4: Loading state..."))
		state := internal.NewStorage(db).Load()
		messages := 0
		for _, session := range state.Sessions {
			messages += len(session.Messages)
		}
		fmt.Println(successStyle.Render(fmt.Sprintf("✓ Loaded %d session(s), %d message(s)", len(state.Sessions), messages)))
		if state.ActiveID != "" {
			fmt.Println(infoStyle.Render("  Active session: " + state.ActiveID))
		} else {
			fmt.Println(infoStyle.Render("  No active session"))
		}

		return nil
	},
}

func init() {
	rootCmd.AddCommand(doctorCmd)
}
