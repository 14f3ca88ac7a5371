package internal

import (
	"errors"
	"fmt"
)

// ErrSessionNotFound is returned when an operation targets a session id
// that does not exist in the store.
var ErrSessionNotFound = errors.New("session not found")

// ErrMessageNotFound is returned when an edit targets a message id that
// does not exist within its session.
var ErrMessageNotFound = errors.New("message not found")

// ErrEmptyText is returned when submitted or edited text trims to empty.
var ErrEmptyText = errors.New("text is empty")

// StorageError represents errors talking to the backing database
type StorageError struct {
	Op  string // "serialize", "begin", "write", "commit", "read"
	Key string // storage key involved
	Err error
}

func (e *StorageError) Error() string {
	return fmt.Sprintf("storage error: %s %s: %v", e.Op, e.Key, e.Err)
}

func (e *StorageError) Unwrap() error {
	return e.Err
}
