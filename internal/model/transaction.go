// Package model defines the core domain types for the spendflow ledger.
package model

import (
	"fmt"
	"strings"
	"time"
)

// TransactionType is the closed set of recorded financial event kinds.
type TransactionType string

const (
	// TypeExpense represents money spent.
	TypeExpense TransactionType = "expense"
	// TypeIncome represents money received.
	TypeIncome TransactionType = "income"
	// TypeInvestment represents money moved into an investment.
	TypeInvestment TransactionType = "investment"
	// TypeSavings represents money set aside as savings.
	TypeSavings TransactionType = "savings"
	// TypeTransfer represents money moved between own accounts.
	TypeTransfer TransactionType = "transfer"
)

// AllTypes returns every valid transaction type in display order.
func AllTypes() []TransactionType {
	return []TransactionType{TypeExpense, TypeIncome, TypeInvestment, TypeSavings, TypeTransfer}
}

// Valid reports whether t is a member of the type enumeration.
func (t TransactionType) Valid() bool {
	switch t {
	case TypeExpense, TypeIncome, TypeInvestment, TypeSavings, TypeTransfer:
		return true
	}
	return false
}

// ParseType converts a string into a TransactionType.
func ParseType(s string) (TransactionType, error) {
	t := TransactionType(strings.ToLower(strings.TrimSpace(s)))
	if !t.Valid() {
		return "", fmt.Errorf("%q is not a transaction type (expense, income, investment, savings, transfer)", s)
	}
	return t, nil
}

// Transaction represents one recorded financial event.
type Transaction struct {
	Date        time.Time       `json:"date"`
	CreatedAt   time.Time       `json:"createdAt"`
	UpdatedAt   time.Time       `json:"updatedAt,omitempty"`
	ID          string          `json:"id"`
	Type        TransactionType `json:"type"`
	Description string          `json:"description"`
	Category    string          `json:"category"`
	AccountName string          `json:"accountName,omitempty"`
	Tags        []string        `json:"tags"`
	Amount      float64         `json:"amount"`
}

// Clone returns a deep copy so callers never share the tag slice.
func (t Transaction) Clone() Transaction {
	c := t
	if t.Tags != nil {
		c.Tags = make([]string, len(t.Tags))
		copy(c.Tags, t.Tags)
	}
	return c
}

// HasTag reports whether the transaction carries the given tag.
func (t Transaction) HasTag(tag string) bool {
	for _, existing := range t.Tags {
		if existing == tag {
			return true
		}
	}
	return false
}
