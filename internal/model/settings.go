package model

import (
	"fmt"

	"spendflow/internal/common"
)

// Settings is the small user-preference record. It is loaded at startup and
// replaced wholesale on every save.
type Settings struct {
	Savings            float64 `json:"savings"`
	Invests            float64 `json:"invests"`
	SavingsGoal        float64 `json:"savingsGoal"`
	DarkMode           bool    `json:"darkMode"`
	EnableExpenseAlert bool    `json:"enableExpenseAlert"`
}

// Validate checks the percentage and goal bounds.
func (s Settings) Validate() error {
	if s.Savings < 0 || s.Savings > 100 {
		return fmt.Errorf("%w: savings %.1f", common.ErrInvalidPercent, s.Savings)
	}
	if s.Invests < 0 || s.Invests > 100 {
		return fmt.Errorf("%w: invests %.1f", common.ErrInvalidPercent, s.Invests)
	}
	if s.SavingsGoal < 0 {
		return fmt.Errorf("%w: got %.2f", common.ErrNegativeGoal, s.SavingsGoal)
	}
	return nil
}
