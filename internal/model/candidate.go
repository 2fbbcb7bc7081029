package model

// Notification directions as they appear in bank notification text.
const (
	DirectionCredited = "credited"
	DirectionDebited  = "debited"
)

// Candidate holds the fields extracted from a bank notification. Each field
// is independently absent; a candidate only becomes a transaction once all
// three resolve. It is transient and never persisted.
type Candidate struct {
	Amount        *float64
	AccountSuffix string
	Direction     string
}

// Complete reports whether every field resolved.
func (c Candidate) Complete() bool {
	return c.AccountSuffix != "" && c.Direction != "" && c.Amount != nil
}

// Type maps the notification direction onto a transaction type.
func (c Candidate) Type() TransactionType {
	if c.Direction == DirectionCredited {
		return TypeIncome
	}
	return TypeExpense
}
