package main

import (
	"fmt"
	"os"
	"text/tabwriter"

	"spendflow/internal/analytics"
	"spendflow/internal/cli"

	"github.com/spf13/cobra"
)

func reportCmd() *cobra.Command {
	var windowValue string

	cmd := &cobra.Command{
		Use:   "report",
		Short: "Derive summaries from the ledger",
		Long:  `Compute window-filtered totals, category rankings, trends, and time series.`,
	}

	cmd.PersistentFlags().StringVarP(&windowValue, "window", "w", "month", "time window (week, month, year)")

	cmd.AddCommand(reportSummaryCmd(&windowValue))
	cmd.AddCommand(reportTopCmd(&windowValue))
	cmd.AddCommand(reportTrendCmd(&windowValue))
	cmd.AddCommand(reportSeriesCmd(&windowValue))

	return cmd
}

func reportSummaryCmd(windowValue *string) *cobra.Command {
	return &cobra.Command{
		Use:   "summary",
		Short: "Totals per type plus the financial-health score",
		RunE: func(cmd *cobra.Command, _ []string) error {
			window, err := windowFlag(*windowValue)
			if err != nil {
				return err
			}

			led, closeLedger, err := initLedger(cmd.Context())
			if err != nil {
				return err
			}
			defer closeLedger()

			txns := analytics.FilterByWindow(led.Transactions(), window)
			totals := analytics.TotalsByType(txns)
			health := analytics.HealthScore(totals.Income, totals.Expenses)

			fmt.Println(cli.FormatTitle(fmt.Sprintf("Summary (%s)", window.Granularity)))
			fmt.Printf("  income:      %s\n", cli.IncomeStyle.Render(fmt.Sprintf("%.2f", totals.Income)))
			fmt.Printf("  expenses:    %s\n", cli.ExpenseStyle.Render(fmt.Sprintf("%.2f", totals.Expenses)))
			fmt.Printf("  investments: %.2f\n", totals.Investments)
			fmt.Printf("  savings:     %.2f\n", totals.Savings)
			fmt.Printf("  transfers:   %.2f\n", totals.Transfers)
			fmt.Println()
			fmt.Printf("  health: %d/100 (%s), savings rate %.1f%%\n",
				health.Score, health.Status, health.SavingsRate)
			return nil
		},
	}
}

func reportTopCmd(windowValue *string) *cobra.Command {
	var limit int

	cmd := &cobra.Command{
		Use:   "top",
		Short: "Rank expense categories by amount",
		RunE: func(cmd *cobra.Command, _ []string) error {
			window, err := windowFlag(*windowValue)
			if err != nil {
				return err
			}

			led, closeLedger, err := initLedger(cmd.Context())
			if err != nil {
				return err
			}
			defer closeLedger()

			txns := analytics.FilterByWindow(led.Transactions(), window)
			ranked := analytics.TopCategories(txns, limit)
			if len(ranked) == 0 {
				fmt.Println(cli.InfoStyle.Render("No expenses in this window."))
				return nil
			}

			w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
			defer func() { _ = w.Flush() }()

			fmt.Fprintf(w, "%s\t%s\t%s\n",
				cli.HeaderStyle.Render("Category"),
				cli.HeaderStyle.Render("Amount"),
				cli.HeaderStyle.Render("Share"))
			for _, share := range ranked {
				fmt.Fprintf(w, "%s\t%.2f\t%.1f%%\n", share.Category, share.Amount, share.Percent)
			}
			return nil
		},
	}

	cmd.Flags().IntVarP(&limit, "limit", "n", analytics.DefaultTopLimit, "number of categories to show")
	return cmd
}

func reportTrendCmd(windowValue *string) *cobra.Command {
	return &cobra.Command{
		Use:   "trend",
		Short: "Compare expenses against the previous period",
		RunE: func(cmd *cobra.Command, _ []string) error {
			window, err := windowFlag(*windowValue)
			if err != nil {
				return err
			}

			led, closeLedger, err := initLedger(cmd.Context())
			if err != nil {
				return err
			}
			defer closeLedger()

			comparison := analytics.PeriodComparison(led.Transactions(), window)

			direction := "down"
			if comparison.IsIncreasing {
				direction = "up"
			}
			fmt.Println(cli.FormatTitle(fmt.Sprintf("Expense trend (%s)", window.Granularity)))
			fmt.Printf("  current:  %.2f\n", comparison.Current)
			fmt.Printf("  previous: %.2f\n", comparison.Previous)
			fmt.Printf("  change:   %.1f%% (%s)\n", comparison.ChangePercent, direction)
			return nil
		},
	}
}

func reportSeriesCmd(windowValue *string) *cobra.Command {
	return &cobra.Command{
		Use:   "series",
		Short: "Income and expense per sub-period, chart-ready",
		RunE: func(cmd *cobra.Command, _ []string) error {
			window, err := windowFlag(*windowValue)
			if err != nil {
				return err
			}

			led, closeLedger, err := initLedger(cmd.Context())
			if err != nil {
				return err
			}
			defer closeLedger()

			buckets := analytics.TimeSeries(led.Transactions(), window, 0)

			w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
			defer func() { _ = w.Flush() }()

			fmt.Fprintf(w, "%s\t%s\t%s\n",
				cli.HeaderStyle.Render("Bucket"),
				cli.HeaderStyle.Render("Income"),
				cli.HeaderStyle.Render("Expense"))
			for _, bucket := range buckets {
				fmt.Fprintf(w, "%s\t%.2f\t%.2f\n", bucket.Label, bucket.Income, bucket.Expense)
			}
			return nil
		},
	}
}
