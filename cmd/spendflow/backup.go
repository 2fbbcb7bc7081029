package main

import (
	"encoding/json"
	"fmt"
	"os"
	"time"

	"spendflow/internal/cli"
	"spendflow/internal/common"
	"spendflow/internal/storage"

	"github.com/schollz/progressbar/v3"
	"github.com/spf13/cobra"
)

func exportCmd() *cobra.Command {
	var outFlag string

	cmd := &cobra.Command{
		Use:   "export",
		Short: "Export a full backup snapshot",
		Long:  `Write every stored key to a JSON snapshot file for backup or transfer.`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx := cmd.Context()

			store, err := initStore(ctx)
			if err != nil {
				return err
			}
			defer func() { _ = store.Close() }()

			snapshot, err := storage.Export(ctx, store)
			if err != nil {
				return fmt.Errorf("failed to export: %w", err)
			}

			raw, err := json.MarshalIndent(snapshot, "", "  ")
			if err != nil {
				return fmt.Errorf("failed to encode snapshot: %w", err)
			}

			path := outFlag
			if path == "" {
				path = fmt.Sprintf("spendflow_backup_%s.json", time.Now().Format("2006-01-02"))
			}
			if err := os.WriteFile(path, raw, 0600); err != nil {
				return fmt.Errorf("failed to write snapshot: %w", err)
			}

			fmt.Println(cli.FormatSuccess(fmt.Sprintf("Exported %d keys to %s", len(snapshot.Data), path)))
			return nil
		},
	}

	cmd.Flags().StringVarP(&outFlag, "out", "o", "", "output file (default: spendflow_backup_<date>.json)")
	return cmd
}

func importCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "import <file>",
		Short: "Restore a backup snapshot",
		Long: `Validate and restore a snapshot produced by export. Malformed backups
are rejected before anything is written.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()

			raw, err := os.ReadFile(args[0])
			if err != nil {
				return fmt.Errorf("failed to read backup file: %w", err)
			}

			snapshot, err := storage.ParseSnapshot(raw)
			if err != nil {
				return common.NewUserError("backup rejected", err)
			}

			store, err := initStore(ctx)
			if err != nil {
				return err
			}
			defer func() { _ = store.Close() }()

			bar := progressbar.Default(int64(len(snapshot.Data)), "restoring")
			err = snapshot.Restore(ctx, store, func(_ string) {
				_ = bar.Add(1)
			})
			if err != nil {
				return fmt.Errorf("failed to restore snapshot: %w", err)
			}

			fmt.Println(cli.FormatSuccess(fmt.Sprintf("Restored %d keys from %s (exported %s)",
				len(snapshot.Data), args[0], snapshot.Date.Format("2006-01-02"))))
			return nil
		},
	}
}
