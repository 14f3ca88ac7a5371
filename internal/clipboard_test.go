package internal

import (
	"fmt"
	"testing"
)

func TestCopyMessage(t *testing.T) {
	orig := clipboardWrite
	defer func() { clipboardWrite = orig }()

	var copied string
	clipboardWrite = func(text string) error {
		copied = text
		return nil
	}

	if !CopyMessage("hello there") {
		t.Error("CopyMessage() = false, want true")
	}
	if copied != "hello there" {
		t.Errorf("clipboard received %q, want %q", copied, "hello there")
	}
}

func TestCopyMessage_Failure(t *testing.T) {
	orig := clipboardWrite
	defer func() { clipboardWrite = orig }()

	clipboardWrite = func(string) error {
		return fmt.Errorf("no clipboard available")
	}

	// Failure is reported, not raised
	if CopyMessage("text") {
		t.Error("CopyMessage() = true on clipboard failure, want false")
	}
}
