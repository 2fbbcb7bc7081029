package model

import (
	"fmt"
	"time"

	"spendflow/internal/common"
)

// TransactionInput carries the user-supplied fields of a transaction before
// the ledger assigns identity and timestamps.
type TransactionInput struct {
	Date        time.Time       `json:"date"`
	Type        TransactionType `json:"type"`
	Description string          `json:"description"`
	Category    string          `json:"category"`
	AccountName string          `json:"accountName,omitempty"`
	Tags        []string        `json:"tags"`
	Amount      float64         `json:"amount"`
}

// Validate checks the input's shape. Category membership is checked
// separately at the boundary because it needs the registry.
func (in TransactionInput) Validate() error {
	if !in.Type.Valid() {
		return fmt.Errorf("%w: %q", common.ErrUnknownType, in.Type)
	}
	if in.Description == "" {
		return common.ErrEmptyDescription
	}
	if in.Amount <= 0 {
		return fmt.Errorf("%w: got %.2f", common.ErrInvalidAmount, in.Amount)
	}
	return nil
}

// Patch describes a partial update to a transaction. Nil fields are left
// untouched by Apply; a non-nil Tags pointer replaces the whole tag set.
type Patch struct {
	Type        *TransactionType
	Description *string
	Amount      *float64
	Date        *time.Time
	Category    *string
	AccountName *string
	Tags        *[]string
}

// Apply merges the patch into txn.
func (p Patch) Apply(txn *Transaction) {
	if p.Type != nil {
		txn.Type = *p.Type
	}
	if p.Description != nil {
		txn.Description = *p.Description
	}
	if p.Amount != nil {
		txn.Amount = *p.Amount
	}
	if p.Date != nil {
		txn.Date = *p.Date
	}
	if p.Category != nil {
		txn.Category = *p.Category
	}
	if p.AccountName != nil {
		txn.AccountName = *p.AccountName
	}
	if p.Tags != nil {
		tags := make([]string, len(*p.Tags))
		copy(tags, *p.Tags)
		txn.Tags = tags
	}
}
