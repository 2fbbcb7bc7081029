package ledger

import (
	"context"
	"fmt"
	"time"

	"spendflow/internal/common"
	"spendflow/internal/model"
	"spendflow/internal/storage"
)

// Draft returns a copy of the in-progress transaction slot.
func (l *Ledger) Draft() model.Draft {
	d := l.draft
	d.Tags = make([]string, len(l.draft.Tags))
	copy(d.Tags, l.draft.Tags)
	return d
}

// SetDraft replaces the draft slot wholesale.
func (l *Ledger) SetDraft(ctx context.Context, draft model.Draft) {
	l.draft = draft
	if l.draft.Tags == nil {
		l.draft.Tags = []string{}
	}
	l.persist(ctx, storage.KeyDraft, l.draft)
}

// AddDraftTag adds a tag to the draft, refusing duplicates.
func (l *Ledger) AddDraftTag(ctx context.Context, tag string) bool {
	if !l.draft.AddTag(tag) {
		return false
	}
	l.persist(ctx, storage.KeyDraft, l.draft)
	return true
}

// RemoveDraftTag removes a tag from the draft.
func (l *Ledger) RemoveDraftTag(ctx context.Context, tag string) bool {
	if !l.draft.RemoveTag(tag) {
		return false
	}
	l.persist(ctx, storage.KeyDraft, l.draft)
	return true
}

// ResetDraft restores the draft slot to its defaults.
func (l *Ledger) ResetDraft(ctx context.Context) {
	l.draft = model.NewDraft(time.Now())
	l.persist(ctx, storage.KeyDraft, l.draft)
}

// CommitDraft validates the draft, appends it to the history, registers its
// tags, and resets the slot. The draft is left untouched when validation
// fails so the user can fix it and retry.
func (l *Ledger) CommitDraft(ctx context.Context) (model.Transaction, error) {
	if err := l.draft.Validate(); err != nil {
		return model.Transaction{}, err
	}
	if l.draft.Category == "" || !l.HasCategory(l.draft.Type, l.draft.Category) {
		return model.Transaction{}, fmt.Errorf("%w: %q for type %s",
			common.ErrUnknownCategory, l.draft.Category, l.draft.Type)
	}

	txn := l.Append(ctx, l.draft.TransactionInput)
	for _, tag := range txn.Tags {
		l.AddTag(ctx, tag)
	}
	l.ResetDraft(ctx)

	return txn, nil
}
