package history

import (
	"context"
	"sync"
)

// MemoryStorage is an in-process slot, used by the memory backend and in tests.
type MemoryStorage struct {
	mutex   sync.Mutex
	payload []byte
	present bool

	writes    int
	failWrite error
	failRead  error
}

func NewMemoryStorage() *MemoryStorage {
	return &MemoryStorage{}
}

// NewMemoryStorageWithPayload starts with the given payload already in the slot.
func NewMemoryStorageWithPayload(payload []byte) *MemoryStorage {
	s := &MemoryStorage{}
	s.set(payload)
	return s
}

func (s *MemoryStorage) Read(_ context.Context) ([]byte, error) {
	s.mutex.Lock()
	defer s.mutex.Unlock()

	if s.failRead != nil {
		return nil, s.failRead
	}
	if !s.present {
		return nil, ErrSlotEmpty
	}
	return append([]byte(nil), s.payload...), nil
}

func (s *MemoryStorage) Write(_ context.Context, payload []byte) error {
	s.mutex.Lock()
	defer s.mutex.Unlock()

	if s.failWrite != nil {
		return s.failWrite
	}
	s.set(payload)
	s.writes++
	return nil
}

func (s *MemoryStorage) Close() error {
	return nil
}

// FailWrites makes every following Write return err; nil restores normal writes.
func (s *MemoryStorage) FailWrites(err error) {
	s.mutex.Lock()
	defer s.mutex.Unlock()
	s.failWrite = err
}

// FailReads makes every following Read return err; nil restores normal reads.
func (s *MemoryStorage) FailReads(err error) {
	s.mutex.Lock()
	defer s.mutex.Unlock()
	s.failRead = err
}

// Writes is the number of successful writes so far.
func (s *MemoryStorage) Writes() int {
	s.mutex.Lock()
	defer s.mutex.Unlock()
	return s.writes
}

func (s *MemoryStorage) Payload() []byte {
	s.mutex.Lock()
	defer s.mutex.Unlock()
	return append([]byte(nil), s.payload...)
}

func (s *MemoryStorage) set(payload []byte) {
	s.payload = append([]byte(nil), payload...)
	s.present = true
}
