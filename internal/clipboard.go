package internal

import "github.com/atotto/clipboard"

// clipboardWrite is swappable for tests, where no system clipboard exists.
var clipboardWrite = clipboard.WriteAll

// CopyMessage places message text on the system clipboard. Failures are
// logged and swallowed; copying never affects store state.
func CopyMessage(text string) bool {
	if err := clipboardWrite(text); err != nil {
		LogWarn("Failed to copy message to clipboard: %v", err)
		return false
	}
	return true
}
