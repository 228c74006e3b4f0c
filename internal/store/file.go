package store

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/rs/zerolog/log"
)

// FileStore keeps one <key>.json file per slot under a data directory.
// Writes go through a temp file and rename so a slot is never left half
// written.
type FileStore struct {
	dir string
}

func NewFileStore(dir string) (*FileStore, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("failed to create store directory: %w", err)
	}
	return &FileStore{dir: dir}, nil
}

func (s *FileStore) Get(_ context.Context, key string, out interface{}) bool {
	data, err := os.ReadFile(s.path(key))
	if err != nil {
		return false
	}
	if err := json.Unmarshal(data, out); err != nil {
		log.Warn().Err(err).Str("key", key).Msg("discarding corrupt store slot")
		return false
	}
	return true
}

func (s *FileStore) Set(_ context.Context, key string, value interface{}) {
	data, err := json.Marshal(value)
	if err != nil {
		log.Error().Err(err).Str("key", key).Msg("failed to encode store slot")
		return
	}

	tmp := s.path(key) + ".tmp"
	if err := os.WriteFile(tmp, data, 0o644); err != nil {
		log.Error().Err(err).Str("key", key).Msg("failed to write store slot")
		return
	}
	if err := os.Rename(tmp, s.path(key)); err != nil {
		log.Error().Err(err).Str("key", key).Msg("failed to replace store slot")
	}
}

func (s *FileStore) path(key string) string {
	return filepath.Join(s.dir, key+".json")
}
