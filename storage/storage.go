// Package storage provides block storage for content addressed snapshots.
package storage

import (
	"errors"

	"github.com/ipld/go-ipld-prime/storage"
)

// ErrNotFound is returned when no block exists for a key.
var ErrNotFound = errors.New("key not found")

// Storage is a block store usable by an IPLD link system.
type Storage interface {
	storage.ReadableStorage
	storage.WritableStorage
	storage.StreamingReadableStorage
}
