// Package ingest turns bank notifications into ledger entries.
package ingest

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"spendflow/internal/ledger"
	"spendflow/internal/model"
	"spendflow/internal/parser"
)

// FallbackCategory is assigned to automatically ingested transactions; the
// user recategorizes later. It is registered idempotently on first use.
const FallbackCategory = "uncategorized"

// Service wires the notification parser to the ledger.
type Service struct {
	parser *parser.Parser
	ledger *ledger.Ledger
}

// NewService creates an ingestion service over the given ledger.
func NewService(p *parser.Parser, l *ledger.Ledger) *Service {
	return &Service{
		parser: p,
		ledger: l,
	}
}

// ProcessNotification parses a raw notification payload and appends a
// transaction when the candidate fully resolves. Incomplete candidates are
// dropped silently; that is the designed failure mode, not an error. The
// returned transaction is nil on a drop.
func (s *Service) ProcessNotification(ctx context.Context, payload string) *model.Transaction {
	candidate := s.parser.Parse(payload)
	if !candidate.Complete() {
		slog.Debug("notification candidate incomplete, dropping",
			"has_account", candidate.AccountSuffix != "",
			"has_direction", candidate.Direction != "",
			"has_amount", candidate.Amount != nil)
		return nil
	}

	txType := candidate.Type()
	s.ledger.AddCategory(ctx, txType, FallbackCategory)

	txn := s.ledger.Append(ctx, model.TransactionInput{
		Type:        txType,
		Description: fmt.Sprintf("Transaction from account ending with %s", candidate.AccountSuffix),
		Amount:      *candidate.Amount,
		Date:        time.Now(),
		Category:    FallbackCategory,
		Tags:        []string{},
		AccountName: fmt.Sprintf("Account ending with %s", candidate.AccountSuffix),
	})

	slog.Info("notification ingested",
		"id", txn.ID,
		"direction", candidate.Direction,
		"amount", txn.Amount)

	return &txn
}
