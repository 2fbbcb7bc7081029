package storage

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"spendflow/internal/common"
)

// SnapshotVersion is the backup format version written on export.
const SnapshotVersion = "1.0"

// Snapshot is the full-store export format: every stored key and its JSON
// value, stamped with a format version and export date.
type Snapshot struct {
	Date    time.Time                  `json:"date"`
	Data    map[string]json.RawMessage `json:"data"`
	Version string                     `json:"version"`
}

// Export reads every key from the store into a snapshot.
func Export(ctx context.Context, store BlobStore) (*Snapshot, error) {
	if err := validateContext(ctx); err != nil {
		return nil, err
	}

	keys, err := store.Keys(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list keys: %w", err)
	}

	snapshot := &Snapshot{
		Version: SnapshotVersion,
		Date:    time.Now().UTC(),
		Data:    make(map[string]json.RawMessage, len(keys)),
	}

	for _, key := range keys {
		value, err := store.Get(ctx, key)
		if err != nil {
			return nil, fmt.Errorf("failed to read key %q: %w", key, err)
		}
		snapshot.Data[key] = json.RawMessage(value)
	}

	return snapshot, nil
}

// ParseSnapshot decodes and validates a backup blob. Anything without both a
// version and a data section is rejected before a single write happens.
func ParseSnapshot(raw []byte) (*Snapshot, error) {
	var snapshot Snapshot
	if err := json.Unmarshal(raw, &snapshot); err != nil {
		return nil, fmt.Errorf("%w: %v", common.ErrInvalidFormat, err)
	}
	if snapshot.Version == "" {
		return nil, fmt.Errorf("%w: missing version", common.ErrInvalidFormat)
	}
	if snapshot.Data == nil {
		return nil, fmt.Errorf("%w: missing data", common.ErrInvalidFormat)
	}
	return &snapshot, nil
}

// Restore writes every key in the snapshot into the store. The progress
// callback, when non-nil, is invoked once per key.
func (s *Snapshot) Restore(ctx context.Context, store BlobStore, progress func(key string)) error {
	if err := validateContext(ctx); err != nil {
		return err
	}

	for key, value := range s.Data {
		if err := store.Put(ctx, key, value); err != nil {
			return fmt.Errorf("failed to restore key %q: %w", key, err)
		}
		if progress != nil {
			progress(key)
		}
	}

	return nil
}
