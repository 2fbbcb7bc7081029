package main

import (
	"fmt"
	"os"
	"strings"
	"text/tabwriter"

	"spendflow/internal/cli"
	"spendflow/internal/common"
	"spendflow/internal/ledger"
	"spendflow/internal/model"

	"github.com/spf13/cobra"
)

func listCmd() *cobra.Command {
	var (
		typeFlag     string
		categoryFlag string
		fromFlag     string
		toFlag       string
		searchFlag   string
	)

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List transactions",
		Long:  `List ledger transactions, most recent first, with optional filters.`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx := cmd.Context()

			led, closeLedger, err := initLedger(ctx)
			if err != nil {
				return err
			}
			defer closeLedger()

			var preds []ledger.Predicate
			if typeFlag != "" {
				txType, err := model.ParseType(typeFlag)
				if err != nil {
					return common.NewUserError("invalid --type", err)
				}
				preds = append(preds, ledger.ByType(txType))
			}
			if categoryFlag != "" {
				preds = append(preds, ledger.ByCategory(categoryFlag))
			}
			if fromFlag != "" || toFlag != "" {
				start, end, err := dateRange(fromFlag, toFlag)
				if err != nil {
					return err
				}
				preds = append(preds, ledger.ByDateRange(start, end))
			}
			if searchFlag != "" {
				preds = append(preds, ledger.MatchesText(searchFlag))
			}

			txns := led.Query(ledger.And(preds...))
			if len(txns) == 0 {
				fmt.Println(cli.InfoStyle.Render("No transactions found."))
				return nil
			}

			w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
			defer func() { _ = w.Flush() }()

			fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%s\t%s\t%s\n",
				cli.HeaderStyle.Render("ID"),
				cli.HeaderStyle.Render("Date"),
				cli.HeaderStyle.Render("Type"),
				cli.HeaderStyle.Render("Amount"),
				cli.HeaderStyle.Render("Category"),
				cli.HeaderStyle.Render("Description"),
				cli.HeaderStyle.Render("Tags"))

			for _, txn := range txns {
				amount := fmt.Sprintf("%.2f", txn.Amount)
				if txn.Type == model.TypeIncome {
					amount = cli.IncomeStyle.Render("+" + amount)
				} else if txn.Type == model.TypeExpense {
					amount = cli.ExpenseStyle.Render("-" + amount)
				}
				fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%s\t%s\t%s\n",
					txn.ID,
					txn.Date.Format("2006-01-02"),
					txn.Type,
					amount,
					txn.Category,
					txn.Description,
					strings.Join(txn.Tags, ","))
			}

			return nil
		},
	}

	cmd.Flags().StringVarP(&typeFlag, "type", "t", "", "filter by transaction type")
	cmd.Flags().StringVarP(&categoryFlag, "category", "c", "", "filter by category")
	cmd.Flags().StringVar(&fromFlag, "from", "", "start date (YYYY-MM-DD)")
	cmd.Flags().StringVar(&toFlag, "to", "", "end date (YYYY-MM-DD, inclusive)")
	cmd.Flags().StringVarP(&searchFlag, "search", "s", "", "free-text match on description, category, and tags")

	return cmd
}
