package main

import (
	"fmt"

	"spendflow/internal/cli"
	"spendflow/internal/common"

	"github.com/spf13/cobra"
)

func settingsCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "settings",
		Short: "Show and change user settings",
	}

	cmd.AddCommand(settingsShowCmd())
	cmd.AddCommand(settingsSetCmd())

	return cmd
}

func settingsShowCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "show",
		Short: "Show the current settings",
		RunE: func(cmd *cobra.Command, _ []string) error {
			led, closeLedger, err := initLedger(cmd.Context())
			if err != nil {
				return err
			}
			defer closeLedger()

			s := led.Settings()
			fmt.Println(cli.FormatTitle("Settings"))
			fmt.Printf("  savings:              %.1f%%\n", s.Savings)
			fmt.Printf("  invests:              %.1f%%\n", s.Invests)
			fmt.Printf("  savings goal:         %.2f\n", s.SavingsGoal)
			fmt.Printf("  dark mode:            %t\n", s.DarkMode)
			fmt.Printf("  expense alerts:       %t\n", s.EnableExpenseAlert)
			return nil
		},
	}
}

func settingsSetCmd() *cobra.Command {
	var (
		savingsFlag float64
		investsFlag float64
		goalFlag    float64
		darkFlag    bool
		alertFlag   bool
	)

	cmd := &cobra.Command{
		Use:   "set",
		Short: "Change settings",
		Long:  `Change settings; the record is replaced wholesale and persisted.`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx := cmd.Context()

			led, closeLedger, err := initLedger(ctx)
			if err != nil {
				return err
			}
			defer closeLedger()

			s := led.Settings()
			if cmd.Flags().Changed("savings") {
				s.Savings = savingsFlag
			}
			if cmd.Flags().Changed("invests") {
				s.Invests = investsFlag
			}
			if cmd.Flags().Changed("goal") {
				s.SavingsGoal = goalFlag
			}
			if cmd.Flags().Changed("dark-mode") {
				s.DarkMode = darkFlag
			}
			if cmd.Flags().Changed("expense-alerts") {
				s.EnableExpenseAlert = alertFlag
			}

			if err := s.Validate(); err != nil {
				return common.NewUserError("invalid settings", err)
			}

			led.SaveSettings(ctx, s)
			fmt.Println(cli.FormatSuccess("Settings saved"))
			return nil
		},
	}

	cmd.Flags().Float64Var(&savingsFlag, "savings", 0, "savings percentage (0-100)")
	cmd.Flags().Float64Var(&investsFlag, "invests", 0, "investment percentage (0-100)")
	cmd.Flags().Float64Var(&goalFlag, "goal", 0, "savings goal amount")
	cmd.Flags().BoolVar(&darkFlag, "dark-mode", false, "enable dark mode")
	cmd.Flags().BoolVar(&alertFlag, "expense-alerts", false, "enable expense alerts")

	return cmd
}
