// Package storage provides the string key-value store task lists are saved in.
//
// A Store plays the part of a browser page's local storage: one flat
// namespace of string keys to string values, shared by every widget that
// opens it. Widgets with different keys never see each other's data.
package storage

import (
	"context"
	"errors"
	"fmt"
	"strings"
)

// ErrClosed is returned by operations on a store after Close.
var ErrClosed = errors.New("storage: store is closed")

// Store is a string key-value store. Implementations are safe for
// concurrent use.
type Store interface {
	// GetItem returns the value stored under key. ok is false when the key
	// has never been set or was removed.
	GetItem(ctx context.Context, key string) (value string, ok bool, err error)

	// SetItem stores value under key, replacing any previous value.
	SetItem(ctx context.Context, key, value string) error

	// RemoveItem deletes key. Removing a missing key is not an error.
	RemoveItem(ctx context.Context, key string) error

	// Keys returns every key currently set, sorted.
	Keys(ctx context.Context) ([]string, error)

	// Close releases the store's resources.
	Close() error
}

// Kind names a store backend.
type Kind string

const (
	KindMemory Kind = "memory"
	KindFile   Kind = "file"
	KindSQLite Kind = "sqlite"
)

// Kinds returns the supported backends in display order.
func Kinds() []Kind {
	return []Kind{KindSQLite, KindFile, KindMemory}
}

// ParseKind normalizes a backend name.
func ParseKind(s string) (Kind, error) {
	switch Kind(strings.ToLower(strings.TrimSpace(s))) {
	case KindMemory:
		return KindMemory, nil
	case KindFile, "toml":
		return KindFile, nil
	case KindSQLite, "sqlite3", "":
		return KindSQLite, nil
	default:
		return "", fmt.Errorf("unknown store kind %q (want sqlite, file, or memory)", s)
	}
}

// Open opens a store of the given kind. path is ignored for memory stores.
func Open(kind Kind, path string) (Store, error) {
	switch kind {
	case KindMemory:
		return NewMemoryStore(), nil
	case KindFile:
		return OpenFileStore(path)
	case KindSQLite:
		return OpenSQLiteStore(path)
	default:
		return nil, fmt.Errorf("unknown store kind %q", kind)
	}
}
