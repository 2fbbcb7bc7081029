package main

import (
	"fmt"
	"io"
	"os"

	"spendflow/internal/cli"
	"spendflow/internal/common"
	"spendflow/internal/ingest"
	"spendflow/internal/model"
	"spendflow/internal/parser"
	"spendflow/internal/suggest"

	"github.com/spf13/cobra"
)

func ingestCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "ingest [payload]",
		Short: "Ingest a bank notification payload",
		Long: `Parse a notification payload (JSON with "text" and "bigText" fields)
and record a transaction when the account suffix, direction, and amount all
resolve. Incomplete payloads are dropped without error. The payload is taken
from the argument, or from stdin when omitted.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()

			payload := ""
			if len(args) == 1 {
				payload = args[0]
			} else {
				raw, err := io.ReadAll(os.Stdin)
				if err != nil {
					return fmt.Errorf("failed to read payload from stdin: %w", err)
				}
				payload = string(raw)
			}

			led, closeLedger, err := initLedger(ctx)
			if err != nil {
				return err
			}
			defer closeLedger()

			svc := ingest.NewService(parser.New(), led)
			txn := svc.ProcessNotification(ctx, payload)
			if txn == nil {
				fmt.Println(cli.InfoStyle.Render("Notification did not resolve to a transaction; dropped."))
				return nil
			}

			fmt.Println(cli.FormatSuccess(fmt.Sprintf("Ingested %s of %.2f as %s",
				txn.Type, txn.Amount, txn.ID)))
			return nil
		},
	}
}

func suggestCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "suggest <type> <description>",
		Short: "Suggest a category for a description",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			txType, err := model.ParseType(args[0])
			if err != nil {
				return common.NewUserError("invalid type", err)
			}

			category, ok := suggest.NewDefault().Suggest(args[1], txType)
			if !ok {
				fmt.Println(cli.InfoStyle.Render("No suggestion."))
				return nil
			}

			fmt.Println(category)
			return nil
		},
	}
}
