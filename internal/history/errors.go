package history

import (
	"errors"
	"fmt"
)

var (
	// ErrSlotEmpty is returned by SlotStorage.Read when nothing was ever persisted.
	ErrSlotEmpty = errors.New("history slot empty")
	// ErrEntryNotFound is returned by Reslot when the source record does not exist.
	ErrEntryNotFound = errors.New("workout entry not found")
)

// PersistenceError means a mutation could not be made durable.
// The previously persisted history is left as it was.
type PersistenceError struct {
	Op  string
	Err error
}

func (e *PersistenceError) Error() string {
	return fmt.Sprintf("persist history (%s): %s", e.Op, e.Err)
}

func (e *PersistenceError) Unwrap() error {
	return e.Err
}

// ParseError means the persisted payload exists but cannot be decoded.
type ParseError struct {
	Err error
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("parse history payload: %s", e.Err)
}

func (e *ParseError) Unwrap() error {
	return e.Err
}
