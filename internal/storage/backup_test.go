package storage

import (
	"context"
	"encoding/json"
	"errors"
	"testing"

	"spendflow/internal/common"
)

func TestExportRestore_RoundTrip(t *testing.T) {
	ctx := context.Background()

	source := NewMemoryStore()
	seed := map[string]string{
		KeyTransactions: `[{"id":"1","type":"expense","amount":10}]`,
		KeyCategories:   `{"expense":["food"]}`,
		KeyTags:         `["work"]`,
		KeySettings:     `{"savings":20}`,
	}
	for key, value := range seed {
		if err := source.Put(ctx, key, []byte(value)); err != nil {
			t.Fatalf("Put(%s) error = %v", key, err)
		}
	}

	snapshot, err := Export(ctx, source)
	if err != nil {
		t.Fatalf("Export() error = %v", err)
	}
	if snapshot.Version != SnapshotVersion {
		t.Errorf("Version = %q, want %q", snapshot.Version, SnapshotVersion)
	}
	if snapshot.Date.IsZero() {
		t.Error("Date should be stamped on export")
	}

	// Serialize and re-parse as the file-based flow does.
	raw, err := json.Marshal(snapshot)
	if err != nil {
		t.Fatalf("failed to marshal snapshot: %v", err)
	}
	parsed, err := ParseSnapshot(raw)
	if err != nil {
		t.Fatalf("ParseSnapshot() error = %v", err)
	}

	target := NewMemoryStore()
	var restored []string
	if err := parsed.Restore(ctx, target, func(key string) {
		restored = append(restored, key)
	}); err != nil {
		t.Fatalf("Restore() error = %v", err)
	}
	if len(restored) != len(seed) {
		t.Errorf("progress callback ran %d times, want %d", len(restored), len(seed))
	}

	for key, want := range seed {
		got, err := target.Get(ctx, key)
		if err != nil {
			t.Fatalf("Get(%s) after restore error = %v", key, err)
		}
		if string(got) != want {
			t.Errorf("restored %s = %s, want %s", key, got, want)
		}
	}

	keys, err := target.Keys(ctx)
	if err != nil {
		t.Fatalf("Keys() error = %v", err)
	}
	if len(keys) != len(seed) {
		t.Errorf("restored store holds %d keys, want %d", len(keys), len(seed))
	}
}

func TestExportRestore_AcrossBackends(t *testing.T) {
	ctx := context.Background()

	// Export from sqlite, restore into memory; either backend must accept
	// the other's snapshot.
	source := newTestStore(t)
	if err := source.Put(ctx, KeyTransactions, []byte(`[{"id":"1"}]`)); err != nil {
		t.Fatalf("Put() error = %v", err)
	}

	snapshot, err := Export(ctx, source)
	if err != nil {
		t.Fatalf("Export() error = %v", err)
	}

	target := NewMemoryStore()
	if err := snapshot.Restore(ctx, target, nil); err != nil {
		t.Fatalf("Restore() error = %v", err)
	}

	got, err := target.Get(ctx, KeyTransactions)
	if err != nil {
		t.Fatalf("Get() after restore error = %v", err)
	}
	if string(got) != `[{"id":"1"}]` {
		t.Errorf("restored value = %s", got)
	}
}

func TestExport_EmptyStore(t *testing.T) {
	snapshot, err := Export(context.Background(), NewMemoryStore())
	if err != nil {
		t.Fatalf("Export() error = %v", err)
	}
	if len(snapshot.Data) != 0 {
		t.Errorf("Data has %d entries, want 0", len(snapshot.Data))
	}
}

func TestParseSnapshot_Invalid(t *testing.T) {
	tests := []struct {
		name string
		raw  string
	}{
		{"not json", "definitely not json"},
		{"missing version", `{"date":"2024-01-01T00:00:00Z","data":{}}`},
		{"missing data", `{"version":"1.0","date":"2024-01-01T00:00:00Z"}`},
		{"empty object", `{}`},
		{"wrong shape", `["a","b"]`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := ParseSnapshot([]byte(tt.raw)); !errors.Is(err, common.ErrInvalidFormat) {
				t.Errorf("ParseSnapshot() error = %v, want ErrInvalidFormat", err)
			}
		})
	}
}

func TestParseSnapshot_Valid(t *testing.T) {
	raw := `{"version":"1.0","date":"2024-01-01T00:00:00Z","data":{"tags":["work"]}}`

	snapshot, err := ParseSnapshot([]byte(raw))
	if err != nil {
		t.Fatalf("ParseSnapshot() error = %v", err)
	}
	if snapshot.Version != "1.0" {
		t.Errorf("Version = %q, want 1.0", snapshot.Version)
	}
	if string(snapshot.Data["tags"]) != `["work"]` {
		t.Errorf("Data[tags] = %s, want [\"work\"]", snapshot.Data["tags"])
	}
}
