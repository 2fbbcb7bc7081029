package main

import (
	"context"
	"fmt"
	"strings"
	"time"

	"spendflow/internal/analytics"
	"spendflow/internal/config"
	"spendflow/internal/ledger"
	"spendflow/internal/storage"
)

// initLedger opens the blob store at the configured path and loads the
// ledger from it. The caller owns the returned closer.
func initLedger(ctx context.Context) (*ledger.Ledger, func(), error) {
	store, err := storage.NewSQLiteStore(config.DatabasePath())
	if err != nil {
		return nil, nil, fmt.Errorf("failed to open storage: %w", err)
	}

	led, err := ledger.New(ctx, store)
	if err != nil {
		_ = store.Close()
		return nil, nil, fmt.Errorf("failed to load ledger: %w", err)
	}

	return led, func() { _ = store.Close() }, nil
}

// initStore opens just the blob store, for commands that bypass the ledger
// (export/import operate on raw blobs).
func initStore(_ context.Context) (storage.BlobStore, error) {
	store, err := storage.NewSQLiteStore(config.DatabasePath())
	if err != nil {
		return nil, fmt.Errorf("failed to open storage: %w", err)
	}
	return store, nil
}

// windowFlag resolves the --window flag value to a window anchored at now.
func windowFlag(value string) (analytics.Window, error) {
	granularity, err := analytics.ParseGranularity(value)
	if err != nil {
		return analytics.Window{}, err
	}
	return analytics.WindowAt(granularity, time.Now()), nil
}

// parseDate accepts a bare date or a full RFC 3339 timestamp.
func parseDate(value string) (time.Time, error) {
	value = strings.TrimSpace(value)
	if t, err := time.ParseInLocation("2006-01-02", value, time.Local); err == nil {
		return t, nil
	}
	t, err := time.Parse(time.RFC3339, value)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid date %q (want YYYY-MM-DD or RFC 3339)", value)
	}
	return t, nil
}

// dateRange resolves --from/--to flags into inclusive bounds. An empty from
// is unbounded below; an empty to is unbounded above; a bare to date covers
// the whole day.
func dateRange(from, to string) (time.Time, time.Time, error) {
	var start, end time.Time
	var err error

	if from != "" {
		if start, err = parseDate(from); err != nil {
			return time.Time{}, time.Time{}, err
		}
	}

	end = time.Date(9999, time.December, 31, 0, 0, 0, 0, time.UTC)
	if to != "" {
		if end, err = parseDate(to); err != nil {
			return time.Time{}, time.Time{}, err
		}
		end = end.AddDate(0, 0, 1).Add(-time.Nanosecond)
	}

	return start, end, nil
}

// splitTags turns a comma-separated flag value into a clean tag list.
func splitTags(value string) []string {
	if strings.TrimSpace(value) == "" {
		return []string{}
	}
	parts := strings.Split(value, ",")
	tags := make([]string, 0, len(parts))
	for _, part := range parts {
		if tag := strings.TrimSpace(part); tag != "" {
			tags = append(tags, tag)
		}
	}
	return tags
}
