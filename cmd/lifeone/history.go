package main

import (
	"errors"
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/Veraticus/lifeone/internal/cli"
	"github.com/Veraticus/lifeone/internal/common"
	"github.com/Veraticus/lifeone/internal/config"
	"github.com/Veraticus/lifeone/internal/storage"
)

func historyCmd() *cobra.Command {
	var limit int
	var jsonOutput bool

	cmd := &cobra.Command{
		Use:   "history",
		Short: "Show recently processed requests",
		RunE: func(cmd *cobra.Command, _ []string) error {
			store, err := openHistoryStore(cmd)
			if err != nil {
				return err
			}
			defer func() { _ = store.Close() }()

			entries, err := store.RecentHistory(cmd.Context(), limit)
			if err != nil {
				return err
			}

			if jsonOutput {
				return writeJSON(cmd.OutOrStdout(), entries)
			}
			fmt.Fprintln(cmd.OutOrStdout(), cli.RenderHistory(entries))
			return nil
		},
	}

	cmd.Flags().IntVarP(&limit, "limit", "n", storage.DefaultHistoryLimit, "number of entries to show")
	cmd.Flags().BoolVar(&jsonOutput, "json", false, "print entries as JSON")

	cmd.AddCommand(historyShowCmd())
	cmd.AddCommand(historyPruneCmd())

	return cmd
}

func historyShowCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "show <id>",
		Short: "Print one history entry as JSON",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			store, err := openHistoryStore(cmd)
			if err != nil {
				return err
			}
			defer func() { _ = store.Close() }()

			entry, err := store.GetHistory(cmd.Context(), args[0])
			if errors.Is(err, common.ErrNotFound) {
				return common.NewUserError("기록을 찾을 수 없습니다: "+args[0], err)
			}
			if err != nil {
				return err
			}
			return writeJSON(cmd.OutOrStdout(), entry)
		},
	}
}

func historyPruneCmd() *cobra.Command {
	var olderThan time.Duration

	cmd := &cobra.Command{
		Use:   "prune",
		Short: "Delete history entries older than a duration",
		RunE: func(cmd *cobra.Command, _ []string) error {
			if olderThan <= 0 {
				return common.NewUserError("--older-than must be positive", common.ErrInvalidRequest)
			}

			store, err := openHistoryStore(cmd)
			if err != nil {
				return err
			}
			defer func() { _ = store.Close() }()

			removed, err := store.PruneHistory(cmd.Context(), time.Now().Add(-olderThan))
			if err != nil {
				return err
			}

			fmt.Fprintln(cmd.OutOrStdout(), cli.FormatSuccess(fmt.Sprintf("%d건 삭제했습니다.", removed)))
			return nil
		},
	}

	cmd.Flags().DurationVar(&olderThan, "older-than", 30*24*time.Hour, "age cutoff")

	return cmd
}

func openHistoryStore(cmd *cobra.Command) (*storage.SQLiteStorage, error) {
	historyCfg := config.LoadHistoryConfig()
	if !historyCfg.Enabled {
		return nil, common.NewUserError("history.enabled가 false입니다.", common.ErrHistoryDisabled)
	}
	return openHistory(cmd.Context(), historyCfg.DatabasePath)
}
