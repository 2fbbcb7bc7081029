package main

import (
	"fmt"
	"strings"

	"spendflow/internal/cli"
	"spendflow/internal/common"
	"spendflow/internal/model"

	"github.com/spf13/cobra"
)

func draftCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "draft",
		Short: "Compose a transaction step by step",
		Long: `The draft is a single in-progress transaction kept outside the ledger.
Set its fields and accumulate tags across invocations, then commit it.`,
	}

	cmd.AddCommand(draftShowCmd())
	cmd.AddCommand(draftSetCmd())
	cmd.AddCommand(draftTagCmd())
	cmd.AddCommand(draftUntagCmd())
	cmd.AddCommand(draftResetCmd())
	cmd.AddCommand(draftCommitCmd())

	return cmd
}

func draftShowCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "show",
		Short: "Show the draft",
		RunE: func(cmd *cobra.Command, _ []string) error {
			led, closeLedger, err := initLedger(cmd.Context())
			if err != nil {
				return err
			}
			defer closeLedger()

			d := led.Draft()
			fmt.Println(cli.FormatTitle("Draft"))
			fmt.Printf("  type:        %s\n", d.Type)
			fmt.Printf("  description: %s\n", d.Description)
			fmt.Printf("  amount:      %.2f\n", d.Amount)
			fmt.Printf("  date:        %s\n", d.Date.Format("2006-01-02"))
			fmt.Printf("  category:    %s\n", d.Category)
			fmt.Printf("  account:     %s\n", d.AccountName)
			fmt.Printf("  tags:        %s\n", strings.Join(d.Tags, ", "))
			return nil
		},
	}
}

func draftSetCmd() *cobra.Command {
	var (
		typeFlag     string
		amountFlag   float64
		descFlag     string
		dateFlag     string
		categoryFlag string
		accountFlag  string
	)

	cmd := &cobra.Command{
		Use:   "set",
		Short: "Set draft fields",
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx := cmd.Context()

			led, closeLedger, err := initLedger(ctx)
			if err != nil {
				return err
			}
			defer closeLedger()

			d := led.Draft()

			if cmd.Flags().Changed("type") {
				txType, err := model.ParseType(typeFlag)
				if err != nil {
					return common.NewUserError("invalid --type", err)
				}
				d.Type = txType
			}
			if cmd.Flags().Changed("amount") {
				d.Amount = amountFlag
			}
			if cmd.Flags().Changed("description") {
				d.Description = descFlag
			}
			if cmd.Flags().Changed("date") {
				date, err := parseDate(dateFlag)
				if err != nil {
					return common.NewUserError("invalid --date", err)
				}
				d.Date = date
			}
			if cmd.Flags().Changed("category") {
				d.Category = categoryFlag
			}
			if cmd.Flags().Changed("account") {
				d.AccountName = accountFlag
			}

			led.SetDraft(ctx, d)
			fmt.Println(cli.FormatSuccess("Draft updated"))
			return nil
		},
	}

	cmd.Flags().StringVarP(&typeFlag, "type", "t", "", "transaction type")
	cmd.Flags().Float64VarP(&amountFlag, "amount", "a", 0, "amount")
	cmd.Flags().StringVar(&descFlag, "description", "", "description")
	cmd.Flags().StringVarP(&dateFlag, "date", "d", "", "date (YYYY-MM-DD)")
	cmd.Flags().StringVarP(&categoryFlag, "category", "c", "", "category")
	cmd.Flags().StringVar(&accountFlag, "account", "", "account name")

	return cmd
}

func draftTagCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "tag <tag>",
		Short: "Add a tag to the draft",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			led, closeLedger, err := initLedger(cmd.Context())
			if err != nil {
				return err
			}
			defer closeLedger()

			if led.AddDraftTag(cmd.Context(), args[0]) {
				fmt.Println(cli.FormatSuccess(fmt.Sprintf("Tagged draft with %q", args[0])))
			} else {
				fmt.Println(cli.InfoStyle.Render(fmt.Sprintf("Draft already tagged %q", args[0])))
			}
			return nil
		},
	}
}

func draftUntagCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "untag <tag>",
		Short: "Remove a tag from the draft",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			led, closeLedger, err := initLedger(cmd.Context())
			if err != nil {
				return err
			}
			defer closeLedger()

			if led.RemoveDraftTag(cmd.Context(), args[0]) {
				fmt.Println(cli.FormatSuccess(fmt.Sprintf("Removed tag %q from draft", args[0])))
			} else {
				fmt.Println(cli.InfoStyle.Render(fmt.Sprintf("Draft has no tag %q", args[0])))
			}
			return nil
		},
	}
}

func draftResetCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "reset",
		Short: "Reset the draft to defaults",
		RunE: func(cmd *cobra.Command, _ []string) error {
			led, closeLedger, err := initLedger(cmd.Context())
			if err != nil {
				return err
			}
			defer closeLedger()

			led.ResetDraft(cmd.Context())
			fmt.Println(cli.FormatSuccess("Draft reset"))
			return nil
		},
	}
}

func draftCommitCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "commit",
		Short: "Validate the draft and append it to the ledger",
		RunE: func(cmd *cobra.Command, _ []string) error {
			led, closeLedger, err := initLedger(cmd.Context())
			if err != nil {
				return err
			}
			defer closeLedger()

			txn, err := led.CommitDraft(cmd.Context())
			if err != nil {
				return common.NewUserError("draft is not ready to commit", err)
			}

			fmt.Println(cli.FormatSuccess(fmt.Sprintf("Committed draft as transaction %s", txn.ID)))
			return nil
		},
	}
}
