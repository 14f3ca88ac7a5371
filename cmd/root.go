package cmd

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/iksnae/chat-session/internal"
	"github.com/spf13/cobra"
)

var (
	verbose     bool
	storagePath string
	configPath  string
	cfg         internal.Config
	version     string = "dev"
	commit      string = "unknown"
	date        string = "unknown"
)

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "chat-session",
	Short: "Manage persistent local chat sessions",
	Long: `A CLI chat client that keeps conversation threads in a local store.

Sessions and their messages persist across runs in a SQLite-backed
key/value store. New threads are named automatically from their first
message, and the last active thread is restored on startup.

Quick Start:
  chat-session chat                      # Interactive chat
  chat-session send "hello there"        # One-shot message to the active session
  chat-session list                      # List all sessions
  chat-session show <session-id>         # View a transcript
  chat-session export --format md        # Export sessions as Markdown

For detailed usage, see: https://github.com/iksnae/chat-session`,
	Version: fmt.Sprintf("%s (commit: %s, built: %s)", version, commit, date),
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		loaded, err := internal.LoadConfig(configPath)
		if err != nil {
			return err
		}
		cfg = loaded
		internal.SetVerbose(verbose || cfg.Verbose)
		return nil
	},
}

// Execute adds all child commands to the root command and sets flags appropriately.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Enable verbose logging")
	rootCmd.PersistentFlags().StringVar(&storagePath, "storage", "", "Custom storage location (path to the database file)")
	rootCmd.PersistentFlags().StringVar(&configPath, "config", "", "Custom config file location")

	// Set version template to ensure --version flag works
	rootCmd.SetVersionTemplate(`{{printf "%s\n" .Version}}`)
}

// resolveStoragePath picks the database path: flag, then config, then the
// default under the home directory.
func resolveStoragePath() (string, error) {
	if storagePath != "" {
		return storagePath, nil
	}
	if cfg.StoragePath != "" {
		return cfg.StoragePath, nil
	}
	return internal.DefaultStoragePath()
}

// openStore opens the database and loads the store. The returned cleanup
// closes the database.
func openStore() (*internal.Store, func(), error) {
	path, err := resolveStoragePath()
	if err != nil {
		return nil, nil, err
	}
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return nil, nil, fmt.Errorf("failed to create storage directory: %w", err)
	}

	db, err := internal.OpenDatabase(path)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to initialize storage: %w", err)
	}

	store := internal.NewStore(internal.NewStorage(db))
	return store, func() { _ = db.Close() }, nil
}
