package ledger

import (
	"context"

	"spendflow/internal/model"
	"spendflow/internal/storage"
)

// Settings returns the current user settings.
func (l *Ledger) Settings() model.Settings {
	return l.settings
}

// SaveSettings replaces the settings record wholesale and persists it.
// Bounds checking happens at the boundary before calling.
func (l *Ledger) SaveSettings(ctx context.Context, settings model.Settings) {
	l.settings = settings
	l.persist(ctx, storage.KeySettings, l.settings)
}
