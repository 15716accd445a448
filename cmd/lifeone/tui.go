package main

import (
	"github.com/spf13/cobra"

	"github.com/Veraticus/lifeone/internal/tui"
)

func tuiCmd() *cobra.Command {
	var contextFile string
	var noHistory bool

	cmd := &cobra.Command{
		Use:   "tui",
		Short: "Interactive terminal interface",
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx := cmd.Context()

			snap, err := loadSnapshot(contextFile)
			if err != nil {
				return err
			}

			rt, err := newRuntime(ctx, !noHistory)
			if err != nil {
				return err
			}
			defer rt.Close()

			return tui.Run(ctx, tui.Config{
				Processor: rt.engine,
				Snapshot:  snap,
				AltScreen: true,
			})
		},
	}

	cmd.Flags().StringVar(&contextFile, "context", "", "JSON file with the caller's current data snapshot")
	cmd.Flags().BoolVar(&noHistory, "no-history", false, "do not record requests in the history log")

	return cmd
}
