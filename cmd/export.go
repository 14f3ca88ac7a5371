package cmd

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/iksnae/chat-session/internal"
	"github.com/iksnae/chat-session/internal/export"
	"github.com/spf13/cobra"
)

var (
	format    string
	outputDir string
	sessionID string
)

var exportCmd = &cobra.Command{
	Use:   "export",
	Short: "Export sessions to file",
	Long: `Export chat sessions to various formats (jsonl, md, yaml, json).

You can export all sessions or a specific session by ID.
Use 'chat-session list' to see available session IDs.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		store, cleanup, err := openStore()
		if err != nil {
			return err
		}
		defer cleanup()

		exporter, err := export.NewExporter(format)
		if err != nil {
			return err
		}

		var sessions []*internal.ChatSession
		if sessionID != "" {
			session, err := resolveSession(store, sessionID)
			if err != nil {
				return err
			}
			sessions = []*internal.ChatSession{session}
		} else {
			sessions = store.Sessions()
		}

		if len(sessions) == 0 {
			fmt.Println(headerStyle.Render("No sessions to export"))
			return nil
		}

		if err := os.MkdirAll(outputDir, 0755); err != nil {
			return fmt.Errorf("failed to create output directory: %w", err)
		}

		exported := 0
		for _, session := range sessions {
			path := filepath.Join(outputDir, fmt.Sprintf("session_%s.%s", session.ID, exporter.Extension()))
			f, err := os.Create(path)
			if err != nil {
				internal.LogWarn("Failed to create %s: %v", path, err)
				continue
			}
			if err := exporter.Export(session, f); err != nil {
				internal.LogWarn("Failed to export session %s: %v", session.ID, err)
				_ = f.Close()
				continue
			}
			_ = f.Close()
			exported++
		}

		fmt.Println(headerStyle.Render(fmt.Sprintf("Exported %d session(s) to %s", exported, outputDir)))
		return nil
	},
}

func init() {
	rootCmd.AddCommand(exportCmd)
	exportCmd.Flags().StringVarP(&format, "format", "f", "json", "Export format (jsonl, md, yaml, json)")
	exportCmd.Flags().StringVarP(&outputDir, "output", "o", ".", "Output directory")
	exportCmd.Flags().StringVarP(&sessionID, "session", "s", "", "Export a single session by ID")
}
