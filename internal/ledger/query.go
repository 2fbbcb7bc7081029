package ledger

import (
	"strings"
	"time"

	"spendflow/internal/model"
)

// Predicate selects transactions in a Query call.
type Predicate func(model.Transaction) bool

// All matches every transaction.
func All() Predicate {
	return func(model.Transaction) bool { return true }
}

// ByType matches transactions of the given type.
func ByType(t model.TransactionType) Predicate {
	return func(txn model.Transaction) bool {
		return txn.Type == t
	}
}

// ByCategory matches transactions with the given category.
func ByCategory(category string) Predicate {
	return func(txn model.Transaction) bool {
		return txn.Category == category
	}
}

// ByDateRange matches transactions dated within [start, end], inclusive.
func ByDateRange(start, end time.Time) Predicate {
	return func(txn model.Transaction) bool {
		return !txn.Date.Before(start) && !txn.Date.After(end)
	}
}

// MatchesText matches transactions whose description, category, or any tag
// contains the query, case-insensitively.
func MatchesText(query string) Predicate {
	lowered := strings.ToLower(query)
	return func(txn model.Transaction) bool {
		if strings.Contains(strings.ToLower(txn.Description), lowered) {
			return true
		}
		if strings.Contains(strings.ToLower(txn.Category), lowered) {
			return true
		}
		for _, tag := range txn.Tags {
			if strings.Contains(strings.ToLower(tag), lowered) {
				return true
			}
		}
		return false
	}
}

// And combines predicates; an empty list matches everything.
func And(preds ...Predicate) Predicate {
	return func(txn model.Transaction) bool {
		for _, pred := range preds {
			if !pred(txn) {
				return false
			}
		}
		return true
	}
}
