package store

import (
	"context"
	"fmt"

	"github.com/medidash/clinic-api/internal/config"
)

// Store is the local key-value persistence adapter. It mirrors the
// dashboard's slot layout: each collection lives in one JSON slot addressed
// by a fixed key.
//
// Get decodes the named slot into out and reports whether it succeeded; on
// absence or a decode failure of any kind it returns false and leaves out
// untouched, so the caller keeps its fallback. Set encodes and writes the
// slot; write failures are logged and swallowed — the in-memory state stays
// authoritative for the rest of the process lifetime.
type Store interface {
	Get(ctx context.Context, key string, out interface{}) bool
	Set(ctx context.Context, key string, value interface{})
}

// Slot keys, fixed per the persisted state layout.
const (
	KeyPatients     = "patients"
	KeyAppointments = "appointments"
	KeyMedicines    = "medicines"
	KeyUser         = "user"
)

// New selects the backend from configuration.
func New(cfg config.StoreConfig) (Store, error) {
	switch cfg.Backend {
	case "file":
		return NewFileStore(cfg.Dir)
	case "redis":
		return NewRedisStore(cfg.RedisURL, cfg.Prefix)
	default:
		return nil, fmt.Errorf("unknown store backend %q", cfg.Backend)
	}
}
