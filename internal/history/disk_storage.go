package history

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/google/renameio/v2"
	log "github.com/sirupsen/logrus"

	"github.com/2beens/workoutprogress/pkg"
)

// DiskStorage keeps the history slot in a single JSON file.
type DiskStorage struct {
	path string
}

func NewDiskStorage(path string) (*DiskStorage, error) {
	if path == "" {
		return nil, errors.New("history path is empty")
	}

	// an existing directory at path would make every write fail
	if _, err := pkg.PathExists(path, false); err != nil {
		return nil, fmt.Errorf("history path [%s]: %w", path, err)
	}

	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("create history dir [%s]: %w", dir, err)
	}

	log.Debugf("disk storage: history file [%s]", path)
	return &DiskStorage{path: path}, nil
}

func (s *DiskStorage) Path() string {
	return s.path
}

func (s *DiskStorage) Read(_ context.Context) ([]byte, error) {
	payload, err := os.ReadFile(s.path)
	if errors.Is(err, os.ErrNotExist) {
		return nil, ErrSlotEmpty
	}
	if err != nil {
		return nil, err
	}
	return payload, nil
}

// Write atomically replaces the file, so readers see either the old payload or the new one.
func (s *DiskStorage) Write(_ context.Context, payload []byte) error {
	err := renameio.WriteFile(s.path, payload, 0o644, renameio.WithTempDir(filepath.Dir(s.path)))
	if err != nil {
		return fmt.Errorf("replace history file: %w", err)
	}
	return nil
}

func (s *DiskStorage) Close() error {
	return nil
}
