// Package storage provides the key-value blob store backing the ledger.
package storage

import (
	"context"
	"errors"
	"fmt"
	"strings"
)

// Named keys under which ledger state is serialized.
const (
	KeyTransactions = "transactions"
	KeyCategories   = "categories"
	KeyTags         = "tags"
	KeySettings     = "settings"
	KeyDraft        = "draft"
)

// BlobStore is the assumed-given persistence surface: named JSON blobs. It
// is deliberately dumb; all structure lives in the ledger.
type BlobStore interface {
	// Get returns the blob stored under key, or common.ErrNotFound.
	Get(ctx context.Context, key string) ([]byte, error)
	// Put stores the blob under key, replacing any existing value.
	Put(ctx context.Context, key string, value []byte) error
	// Delete removes the blob under key; absent keys are a no-op.
	Delete(ctx context.Context, key string) error
	// Keys lists every stored key.
	Keys(ctx context.Context) ([]string, error)
	// Close releases underlying resources.
	Close() error
}

// Validation errors.
var (
	ErrNilContext  = errors.New("context cannot be nil")
	ErrEmptyString = errors.New("string parameter cannot be empty")
)

// validateContext ensures the context is not nil.
func validateContext(ctx context.Context) error {
	if ctx == nil {
		return ErrNilContext
	}
	return nil
}

// validateString ensures a string parameter is not empty.
func validateString(s string, paramName string) error {
	if strings.TrimSpace(s) == "" {
		return fmt.Errorf("%w: %s", ErrEmptyString, paramName)
	}
	return nil
}
