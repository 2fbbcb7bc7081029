package main

import (
	"fmt"
	"os"
	"strings"
	"text/tabwriter"

	"spendflow/internal/cli"
	"spendflow/internal/common"
	"spendflow/internal/model"

	"github.com/spf13/cobra"
)

func categoriesCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "categories",
		Short: "Manage the category registry",
		Long:  `List and add the categories available per transaction type.`,
	}

	cmd.AddCommand(listCategoriesCmd())
	cmd.AddCommand(addCategoryCmd())

	return cmd
}

func listCategoriesCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "list [type]",
		Short: "List registered categories",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()

			led, closeLedger, err := initLedger(ctx)
			if err != nil {
				return err
			}
			defer closeLedger()

			types := model.AllTypes()
			if len(args) == 1 {
				txType, err := model.ParseType(args[0])
				if err != nil {
					return common.NewUserError("invalid type", err)
				}
				types = []model.TransactionType{txType}
			}

			w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
			defer func() { _ = w.Flush() }()

			fmt.Fprintf(w, "%s\t%s\n",
				cli.HeaderStyle.Render("Type"),
				cli.HeaderStyle.Render("Categories"))

			for _, t := range types {
				fmt.Fprintf(w, "%s\t%s\n", t, strings.Join(led.Categories(t), ", "))
			}

			return nil
		},
	}
}

func addCategoryCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "add <type> <category>",
		Short: "Register a category for a transaction type",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()

			led, closeLedger, err := initLedger(ctx)
			if err != nil {
				return err
			}
			defer closeLedger()

			txType, err := model.ParseType(args[0])
			if err != nil {
				return common.NewUserError("invalid type", err)
			}

			category := strings.TrimSpace(args[1])
			if category == "" {
				return common.NewUserError("invalid category", fmt.Errorf("category cannot be empty"))
			}

			if led.AddCategory(ctx, txType, category) {
				fmt.Println(cli.FormatSuccess(fmt.Sprintf("Added category %q for %s", category, txType)))
			} else {
				fmt.Println(cli.InfoStyle.Render(fmt.Sprintf("Category %q already registered for %s", category, txType)))
			}
			return nil
		},
	}
}

func tagsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "tags",
		Short: "List every tag ever used",
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx := cmd.Context()

			led, closeLedger, err := initLedger(ctx)
			if err != nil {
				return err
			}
			defer closeLedger()

			tags := led.Tags()
			if len(tags) == 0 {
				fmt.Println(cli.InfoStyle.Render("No tags yet."))
				return nil
			}
			fmt.Println(strings.Join(tags, "\n"))
			return nil
		},
	}
}
