package model

import (
	"errors"
	"testing"
	"time"

	"spendflow/internal/common"
)

func TestTransactionInput_Validate(t *testing.T) {
	valid := TransactionInput{
		Type:        TypeExpense,
		Description: "groceries",
		Amount:      42.50,
		Category:    "food",
	}

	tests := []struct {
		name    string
		mutate  func(in *TransactionInput)
		wantErr error
	}{
		{
			name:   "valid input",
			mutate: func(in *TransactionInput) {},
		},
		{
			name:    "invalid type",
			mutate:  func(in *TransactionInput) { in.Type = "loan" },
			wantErr: common.ErrUnknownType,
		},
		{
			name:    "empty type",
			mutate:  func(in *TransactionInput) { in.Type = "" },
			wantErr: common.ErrUnknownType,
		},
		{
			name:    "empty description",
			mutate:  func(in *TransactionInput) { in.Description = "" },
			wantErr: common.ErrEmptyDescription,
		},
		{
			name:    "zero amount",
			mutate:  func(in *TransactionInput) { in.Amount = 0 },
			wantErr: common.ErrInvalidAmount,
		},
		{
			name:    "negative amount",
			mutate:  func(in *TransactionInput) { in.Amount = -5 },
			wantErr: common.ErrInvalidAmount,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			in := valid
			tt.mutate(&in)

			err := in.Validate()
			if tt.wantErr == nil {
				if err != nil {
					t.Errorf("Validate() error = %v, want nil", err)
				}
				return
			}
			if !errors.Is(err, tt.wantErr) {
				t.Errorf("Validate() error = %v, want %v", err, tt.wantErr)
			}
		})
	}
}

func TestSettings_Validate(t *testing.T) {
	tests := []struct {
		name     string
		settings Settings
		wantErr  error
	}{
		{
			name:     "valid",
			settings: Settings{Savings: 20, Invests: 15, SavingsGoal: 100000},
		},
		{
			name:     "zero everything",
			settings: Settings{},
		},
		{
			name:     "boundary percentages",
			settings: Settings{Savings: 0, Invests: 100},
		},
		{
			name:     "savings over a hundred",
			settings: Settings{Savings: 101},
			wantErr:  common.ErrInvalidPercent,
		},
		{
			name:     "negative invests",
			settings: Settings{Invests: -1},
			wantErr:  common.ErrInvalidPercent,
		},
		{
			name:     "negative goal",
			settings: Settings{SavingsGoal: -100},
			wantErr:  common.ErrNegativeGoal,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.settings.Validate()
			if tt.wantErr == nil {
				if err != nil {
					t.Errorf("Validate() error = %v, want nil", err)
				}
				return
			}
			if !errors.Is(err, tt.wantErr) {
				t.Errorf("Validate() error = %v, want %v", err, tt.wantErr)
			}
		})
	}
}

func TestDraft(t *testing.T) {
	d := NewDraft(time.Date(2024, time.March, 1, 0, 0, 0, 0, time.UTC))

	if d.Type != TypeExpense {
		t.Errorf("fresh draft type = %s, want %s", d.Type, TypeExpense)
	}
	if d.Tags == nil || len(d.Tags) != 0 {
		t.Errorf("fresh draft tags = %v, want empty non-nil slice", d.Tags)
	}

	if !d.AddTag("work") {
		t.Error("AddTag(work) = false, want true")
	}
	if d.AddTag("work") {
		t.Error("duplicate AddTag(work) = true, want false")
	}
	if !d.AddTag("travel") {
		t.Error("AddTag(travel) = false, want true")
	}

	if !d.RemoveTag("work") {
		t.Error("RemoveTag(work) = false, want true")
	}
	if d.RemoveTag("work") {
		t.Error("second RemoveTag(work) = true, want false")
	}
	if len(d.Tags) != 1 || d.Tags[0] != "travel" {
		t.Errorf("Tags = %v, want [travel]", d.Tags)
	}
}

func TestCandidate(t *testing.T) {
	amount := 100.0

	tests := []struct {
		name         string
		candidate    Candidate
		wantComplete bool
		wantType     TransactionType
	}{
		{
			name:         "debited maps to expense",
			candidate:    Candidate{Amount: &amount, AccountSuffix: "1234", Direction: DirectionDebited},
			wantComplete: true,
			wantType:     TypeExpense,
		},
		{
			name:         "credited maps to income",
			candidate:    Candidate{Amount: &amount, AccountSuffix: "1234", Direction: DirectionCredited},
			wantComplete: true,
			wantType:     TypeIncome,
		},
		{
			name:      "missing amount",
			candidate: Candidate{AccountSuffix: "1234", Direction: DirectionDebited},
		},
		{
			name:      "missing suffix",
			candidate: Candidate{Amount: &amount, Direction: DirectionDebited},
		},
		{
			name:      "missing direction",
			candidate: Candidate{Amount: &amount, AccountSuffix: "1234"},
		},
		{
			name:      "empty",
			candidate: Candidate{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.candidate.Complete(); got != tt.wantComplete {
				t.Errorf("Complete() = %v, want %v", got, tt.wantComplete)
			}
			if tt.wantComplete && tt.candidate.Type() != tt.wantType {
				t.Errorf("Type() = %s, want %s", tt.candidate.Type(), tt.wantType)
			}
		})
	}
}
