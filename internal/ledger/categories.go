package ledger

import (
	"context"

	"spendflow/internal/model"
	"spendflow/internal/storage"
)

// DefaultCategories is the registry seed: the built-in category set per
// transaction type. The registry only ever grows from here.
func DefaultCategories() map[model.TransactionType][]string {
	return map[model.TransactionType][]string{
		model.TypeExpense: {
			"food", "transportation", "housing", "utilities",
			"entertainment", "shopping", "health", "education", "other",
		},
		model.TypeIncome: {
			"salary", "freelance", "gifts", "dividends", "interest", "other",
		},
		model.TypeInvestment: {
			"stocks", "bonds", "crypto", "real-estate", "mutual-funds", "etf", "other",
		},
		model.TypeSavings: {
			"emergency-fund", "fixed-deposit", "retirement", "goal", "other",
		},
		model.TypeTransfer: {
			"transfer", "other",
		},
	}
}

// Categories returns a copy of the registered categories for a type.
func (l *Ledger) Categories(t model.TransactionType) []string {
	cats := l.categories[t]
	out := make([]string, len(cats))
	copy(out, cats)
	return out
}

// HasCategory reports whether the category is registered for the type.
func (l *Ledger) HasCategory(t model.TransactionType, category string) bool {
	for _, existing := range l.categories[t] {
		if existing == category {
			return true
		}
	}
	return false
}

// AddCategory registers a category for a type. Idempotent; reports whether
// the category was new.
func (l *Ledger) AddCategory(ctx context.Context, t model.TransactionType, category string) bool {
	if l.HasCategory(t, category) {
		return false
	}
	l.categories[t] = append(l.categories[t], category)
	l.persist(ctx, storage.KeyCategories, l.categories)
	return true
}
