package history

import "context"

// SlotStorage holds the serialized history under a single named slot.
// Write must replace the whole payload atomically: after it returns an error,
// Read still returns the previous payload.
type SlotStorage interface {
	// Read returns ErrSlotEmpty if nothing was persisted yet.
	Read(ctx context.Context) ([]byte, error)
	Write(ctx context.Context, payload []byte) error
	Close() error
}
