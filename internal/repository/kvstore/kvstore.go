// Package kvstore implements the collection repositories over the local
// key-value store adapter. Each repository holds its collection in memory,
// loads (and lazily seeds) it on first use, and writes the whole collection
// back through the adapter inside every mutation.
package kvstore

import (
	"strings"

	"github.com/google/uuid"
)

// newID produces a prefixed random record identifier, e.g. "P-4f1a09c2".
func newID(prefix string) string {
	return prefix + strings.ReplaceAll(uuid.NewString(), "-", "")[:8]
}
