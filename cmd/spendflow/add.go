package main

import (
	"fmt"
	"time"

	"spendflow/internal/cli"
	"spendflow/internal/common"
	"spendflow/internal/model"
	"spendflow/internal/suggest"

	"github.com/spf13/cobra"
)

func addCmd() *cobra.Command {
	var (
		typeFlag     string
		amountFlag   float64
		dateFlag     string
		categoryFlag string
		tagsFlag     string
		accountFlag  string
		newCategory  bool
	)

	cmd := &cobra.Command{
		Use:   "add <description>",
		Short: "Record a transaction",
		Long: `Record a transaction in the ledger. When --category is omitted, a
category is suggested from the description; pass --new-category to register
a category that is not in the registry yet.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()

			led, closeLedger, err := initLedger(ctx)
			if err != nil {
				return err
			}
			defer closeLedger()

			txType, err := model.ParseType(typeFlag)
			if err != nil {
				return common.NewUserError("invalid --type", err)
			}

			date := time.Now()
			if dateFlag != "" {
				if date, err = parseDate(dateFlag); err != nil {
					return common.NewUserError("invalid --date", err)
				}
			}

			category := categoryFlag
			if category == "" {
				if suggested, ok := suggest.NewDefault().Suggest(args[0], txType); ok {
					category = suggested
					fmt.Println(cli.InfoStyle.Render(fmt.Sprintf("Suggested category: %s", category)))
				}
			}

			input := model.TransactionInput{
				Type:        txType,
				Description: args[0],
				Amount:      amountFlag,
				Date:        date,
				Category:    category,
				Tags:        splitTags(tagsFlag),
				AccountName: accountFlag,
			}

			// The ledger trusts its input; this command is the boundary
			// that vouches for it.
			if err := input.Validate(); err != nil {
				return common.NewUserError("invalid transaction", err)
			}
			if category == "" {
				return common.NewUserError("no category", fmt.Errorf("pass --category (none could be suggested)"))
			}
			if !led.HasCategory(txType, category) {
				if !newCategory {
					return common.NewUserError(
						fmt.Sprintf("category %q is not registered for %s", category, txType),
						fmt.Errorf("pass --new-category to register it"))
				}
				led.AddCategory(ctx, txType, category)
			}

			txn := led.Append(ctx, input)
			for _, tag := range txn.Tags {
				led.AddTag(ctx, tag)
			}

			fmt.Println(cli.FormatSuccess(fmt.Sprintf("Recorded %s of %.2f (%s) as %s",
				txn.Type, txn.Amount, txn.Category, txn.ID)))
			return nil
		},
	}

	cmd.Flags().StringVarP(&typeFlag, "type", "t", "expense", "transaction type (expense, income, investment, savings, transfer)")
	cmd.Flags().Float64VarP(&amountFlag, "amount", "a", 0, "amount (required, > 0)")
	cmd.Flags().StringVarP(&dateFlag, "date", "d", "", "date (YYYY-MM-DD, default today)")
	cmd.Flags().StringVarP(&categoryFlag, "category", "c", "", "category (default: suggested from description)")
	cmd.Flags().StringVar(&tagsFlag, "tags", "", "comma-separated tags")
	cmd.Flags().StringVar(&accountFlag, "account", "", "source account name")
	cmd.Flags().BoolVar(&newCategory, "new-category", false, "register the category if it is new")
	_ = cmd.MarkFlagRequired("amount")

	return cmd
}
