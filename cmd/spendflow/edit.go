package main

import (
	"fmt"

	"spendflow/internal/cli"
	"spendflow/internal/common"
	"spendflow/internal/model"

	"github.com/spf13/cobra"
)

func editCmd() *cobra.Command {
	var (
		typeFlag     string
		amountFlag   float64
		descFlag     string
		dateFlag     string
		categoryFlag string
		tagsFlag     string
		accountFlag  string
		newCategory  bool
	)

	cmd := &cobra.Command{
		Use:   "edit <id>",
		Short: "Edit a transaction",
		Long: `Edit fields of an existing transaction. Only the flags you pass are
changed; everything else keeps its value. Editing an unknown ID is a no-op.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()

			led, closeLedger, err := initLedger(ctx)
			if err != nil {
				return err
			}
			defer closeLedger()

			existing, found := led.Get(args[0])
			if !found {
				fmt.Println(cli.InfoStyle.Render(fmt.Sprintf("No transaction with ID %s; nothing changed.", args[0])))
				return nil
			}

			var patch model.Patch
			targetType := existing.Type

			if cmd.Flags().Changed("type") {
				txType, err := model.ParseType(typeFlag)
				if err != nil {
					return common.NewUserError("invalid --type", err)
				}
				patch.Type = &txType
				targetType = txType
			}
			if cmd.Flags().Changed("amount") {
				if amountFlag <= 0 {
					return common.NewUserError("invalid --amount", common.ErrInvalidAmount)
				}
				patch.Amount = &amountFlag
			}
			if cmd.Flags().Changed("description") {
				if descFlag == "" {
					return common.NewUserError("invalid --description", common.ErrEmptyDescription)
				}
				patch.Description = &descFlag
			}
			if cmd.Flags().Changed("date") {
				date, err := parseDate(dateFlag)
				if err != nil {
					return common.NewUserError("invalid --date", err)
				}
				patch.Date = &date
			}
			if cmd.Flags().Changed("category") {
				if !led.HasCategory(targetType, categoryFlag) {
					if !newCategory {
						return common.NewUserError(
							fmt.Sprintf("category %q is not registered for %s", categoryFlag, targetType),
							fmt.Errorf("pass --new-category to register it"))
					}
					led.AddCategory(ctx, targetType, categoryFlag)
				}
				patch.Category = &categoryFlag
			}
			// A type change drags the existing category along; it must be
			// registered for the new type just like on the add path.
			if patch.Type != nil && patch.Category == nil {
				if !led.HasCategory(targetType, existing.Category) {
					if !newCategory {
						return common.NewUserError(
							fmt.Sprintf("category %q is not registered for %s", existing.Category, targetType),
							fmt.Errorf("pass --category, or --new-category to carry it over"))
					}
					led.AddCategory(ctx, targetType, existing.Category)
				}
			}
			if cmd.Flags().Changed("tags") {
				tags := splitTags(tagsFlag)
				patch.Tags = &tags
			}
			if cmd.Flags().Changed("account") {
				patch.AccountName = &accountFlag
			}

			if led.Edit(ctx, args[0], patch) {
				fmt.Println(cli.FormatSuccess(fmt.Sprintf("Updated transaction %s", args[0])))
			}
			return nil
		},
	}

	cmd.Flags().StringVarP(&typeFlag, "type", "t", "", "new transaction type")
	cmd.Flags().Float64VarP(&amountFlag, "amount", "a", 0, "new amount")
	cmd.Flags().StringVar(&descFlag, "description", "", "new description")
	cmd.Flags().StringVarP(&dateFlag, "date", "d", "", "new date (YYYY-MM-DD)")
	cmd.Flags().StringVarP(&categoryFlag, "category", "c", "", "new category")
	cmd.Flags().StringVar(&tagsFlag, "tags", "", "replacement comma-separated tag set")
	cmd.Flags().StringVar(&accountFlag, "account", "", "new account name")
	cmd.Flags().BoolVar(&newCategory, "new-category", false, "register the category if it is new")

	return cmd
}

func removeCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "remove <id>",
		Short: "Remove a transaction",
		Long:  `Remove a transaction by ID. Removing an unknown ID is a no-op.`,
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()

			led, closeLedger, err := initLedger(ctx)
			if err != nil {
				return err
			}
			defer closeLedger()

			if led.Remove(ctx, args[0]) {
				fmt.Println(cli.FormatSuccess(fmt.Sprintf("Removed transaction %s", args[0])))
			} else {
				fmt.Println(cli.InfoStyle.Render(fmt.Sprintf("No transaction with ID %s; nothing changed.", args[0])))
			}
			return nil
		},
	}
}
