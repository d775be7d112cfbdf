package repository

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/rs/zerolog/log"

	"github.com/studentshop/cart-service/internal/domain/model"
)

// FileSnapshotStore implements CartSnapshotStore on the local filesystem.
// Each cart key maps to one JSON file under the store's directory. It is the
// default store when no database is configured.
type FileSnapshotStore struct {
	dir string
}

// NewFileSnapshotStore creates a file-backed snapshot store rooted at dir,
// creating the directory if needed.
func NewFileSnapshotStore(dir string) (*FileSnapshotStore, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("create snapshot dir %s: %w", dir, err)
	}
	return &FileSnapshotStore{dir: dir}, nil
}

// Load returns the persisted lines for the given cart key. A missing or
// corrupted snapshot file yields (nil, nil) so the caller starts from an
// empty cart.
func (s *FileSnapshotStore) Load(_ context.Context, key string) ([]model.CartLine, error) {
	data, err := os.ReadFile(s.path(key))
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, nil
		}
		return nil, err
	}

	var lines []model.CartLine
	if err := json.Unmarshal(data, &lines); err != nil {
		log.Warn().Err(err).Str("cart_key", key).Msg("Discarding corrupted cart snapshot")
		return nil, nil
	}
	return lines, nil
}

// Save replaces the snapshot for the given cart key. The file is written to a
// temporary name and renamed into place so readers never see a partial write.
func (s *FileSnapshotStore) Save(_ context.Context, key string, lines []model.CartLine) error {
	if lines == nil {
		lines = []model.CartLine{}
	}
	data, err := json.Marshal(lines)
	if err != nil {
		return fmt.Errorf("encode cart snapshot: %w", err)
	}

	target := s.path(key)
	tmp, err := os.CreateTemp(s.dir, "snapshot-*.tmp")
	if err != nil {
		return err
	}
	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		os.Remove(tmp.Name())
		return err
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmp.Name())
		return err
	}
	return os.Rename(tmp.Name(), target)
}

// Delete removes the snapshot for the given cart key.
func (s *FileSnapshotStore) Delete(_ context.Context, key string) error {
	err := os.Remove(s.path(key))
	if errors.Is(err, os.ErrNotExist) {
		return nil
	}
	return err
}

// path maps a cart key to its snapshot file, replacing characters that are
// not filesystem-safe.
func (s *FileSnapshotStore) path(key string) string {
	safe := strings.Map(func(r rune) rune {
		switch {
		case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z', r >= '0' && r <= '9':
			return r
		case r == '-' || r == '_' || r == '.':
			return r
		default:
			return '_'
		}
	}, key)
	return filepath.Join(s.dir, safe+".json")
}
