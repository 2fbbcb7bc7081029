// Package ledger holds the authoritative mutable collection of transactions
// plus the category registry, tag registry, settings, and the draft slot.
//
// The ledger is the single writer of its own state: callers mutate only
// through its methods, mutation is synchronous and single-threaded, and the
// in-memory state is authoritative the moment a call returns. Every mutation
// is mirrored to the blob store; a failed mirror write is logged and never
// surfaced, because the store is a cache of the ledger, not the other way
// around.
package ledger

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"strconv"
	"time"

	"spendflow/internal/common"
	"spendflow/internal/model"
	"spendflow/internal/storage"
)

// Ledger owns all transaction state exclusively. Accessors return copies so
// no caller ever holds a reference into the internal collection.
type Ledger struct {
	store        storage.BlobStore
	categories   map[model.TransactionType][]string
	settings     model.Settings
	draft        model.Draft
	transactions []model.Transaction // most-recent-first
	tags         []string
	lastID       int64
}

// New creates a ledger over the given store, loading any previously
// persisted state. Missing keys fall back to defaults: an empty history, the
// seeded category registry, zero settings, and a fresh draft.
func New(ctx context.Context, store storage.BlobStore) (*Ledger, error) {
	l := &Ledger{
		store:      store,
		categories: DefaultCategories(),
		draft:      model.NewDraft(time.Now()),
	}

	if err := l.load(ctx, storage.KeyTransactions, &l.transactions); err != nil {
		return nil, err
	}
	if err := l.load(ctx, storage.KeyCategories, &l.categories); err != nil {
		return nil, err
	}
	if err := l.load(ctx, storage.KeyTags, &l.tags); err != nil {
		return nil, err
	}
	if err := l.load(ctx, storage.KeySettings, &l.settings); err != nil {
		return nil, err
	}
	if err := l.load(ctx, storage.KeyDraft, &l.draft); err != nil {
		return nil, err
	}

	// Seed the ID watermark so freshly assigned IDs stay unique across
	// restarts even within the same nanosecond.
	for _, txn := range l.transactions {
		if id, err := strconv.ParseInt(txn.ID, 10, 64); err == nil && id > l.lastID {
			l.lastID = id
		}
	}

	slog.Debug("ledger loaded",
		"transactions", len(l.transactions),
		"tags", len(l.tags))

	return l, nil
}

// load unmarshals one persisted key into dst, leaving dst untouched when the
// key has never been written.
func (l *Ledger) load(ctx context.Context, key string, dst any) error {
	raw, err := l.store.Get(ctx, key)
	if errors.Is(err, common.ErrNotFound) {
		return nil
	}
	if err != nil {
		return fmt.Errorf("failed to load %s: %w", key, err)
	}
	if err := json.Unmarshal(raw, dst); err != nil {
		return fmt.Errorf("failed to decode %s: %w", key, err)
	}
	return nil
}

// persist mirrors one key to the store. The in-memory state is already
// authoritative, so failures are logged rather than returned.
func (l *Ledger) persist(ctx context.Context, key string, value any) {
	raw, err := json.Marshal(value)
	if err != nil {
		slog.Warn("failed to encode state for persistence", "key", key, "error", err)
		return
	}
	if err := l.store.Put(ctx, key, raw); err != nil {
		slog.Warn("failed to persist state", "key", key, "error", err)
	}
}

// nextID assigns a current-time-based ID, bumped past the watermark so IDs
// are strictly increasing even for back-to-back appends.
func (l *Ledger) nextID() string {
	id := time.Now().UnixNano()
	if id <= l.lastID {
		id = l.lastID + 1
	}
	l.lastID = id
	return strconv.FormatInt(id, 10)
}

// Append stores a new transaction, assigning its ID and CreatedAt, and
// prepends it: most-recent-first is the canonical iteration order. The
// ledger trusts its input; validation belongs to the boundary that built it.
func (l *Ledger) Append(ctx context.Context, input model.TransactionInput) model.Transaction {
	now := time.Now()

	date := input.Date
	if date.IsZero() {
		date = now
	}

	tags := input.Tags
	if tags == nil {
		tags = []string{}
	}

	txn := model.Transaction{
		ID:          l.nextID(),
		Type:        input.Type,
		Description: input.Description,
		Amount:      input.Amount,
		Date:        date,
		Category:    input.Category,
		AccountName: input.AccountName,
		CreatedAt:   now,
	}
	txn.Tags = make([]string, len(tags))
	copy(txn.Tags, tags)

	l.transactions = append([]model.Transaction{txn}, l.transactions...)
	l.persist(ctx, storage.KeyTransactions, l.transactions)

	slog.Info("transaction appended",
		"id", txn.ID,
		"type", txn.Type,
		"amount", txn.Amount)

	return txn.Clone()
}

// Edit merges the patch into the transaction with the given ID and refreshes
// UpdatedAt. Editing an unknown ID is an explicit no-op; the return value
// reports whether anything was found.
func (l *Ledger) Edit(ctx context.Context, id string, patch model.Patch) bool {
	for i := range l.transactions {
		if l.transactions[i].ID != id {
			continue
		}
		patch.Apply(&l.transactions[i])
		l.transactions[i].UpdatedAt = time.Now()
		l.persist(ctx, storage.KeyTransactions, l.transactions)
		return true
	}
	return false
}

// Remove deletes the transaction with the given ID. Removing an unknown ID
// is an explicit no-op; the return value reports whether anything was found.
func (l *Ledger) Remove(ctx context.Context, id string) bool {
	for i := range l.transactions {
		if l.transactions[i].ID != id {
			continue
		}
		l.transactions = append(l.transactions[:i], l.transactions[i+1:]...)
		l.persist(ctx, storage.KeyTransactions, l.transactions)
		return true
	}
	return false
}

// Get returns the transaction with the given ID.
func (l *Ledger) Get(id string) (model.Transaction, bool) {
	for _, txn := range l.transactions {
		if txn.ID == id {
			return txn.Clone(), true
		}
	}
	return model.Transaction{}, false
}

// Transactions returns a snapshot of the full history, most recent first.
func (l *Ledger) Transactions() []model.Transaction {
	out := make([]model.Transaction, len(l.transactions))
	for i, txn := range l.transactions {
		out[i] = txn.Clone()
	}
	return out
}

// Query returns a snapshot of every transaction satisfying the predicate,
// preserving the canonical order.
func (l *Ledger) Query(pred Predicate) []model.Transaction {
	var out []model.Transaction
	for _, txn := range l.transactions {
		if pred(txn) {
			out = append(out, txn.Clone())
		}
	}
	return out
}

// AddTag registers a tag in the global registry. Idempotent; reports whether
// the tag was new.
func (l *Ledger) AddTag(ctx context.Context, tag string) bool {
	for _, existing := range l.tags {
		if existing == tag {
			return false
		}
	}
	l.tags = append(l.tags, tag)
	l.persist(ctx, storage.KeyTags, l.tags)
	return true
}

// Tags returns a copy of the global tag registry.
func (l *Ledger) Tags() []string {
	out := make([]string, len(l.tags))
	copy(out, l.tags)
	return out
}
