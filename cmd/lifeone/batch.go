package main

import (
	"bufio"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/Veraticus/lifeone/internal/cli"
	"github.com/Veraticus/lifeone/internal/config"
	"github.com/Veraticus/lifeone/internal/model"
)

// batchLine is one JSON Lines record written by the batch command.
type batchLine struct {
	Response *model.ProcessResponse `json:"response,omitempty"`
	Input    string                 `json:"input"`
	Error    string                 `json:"error,omitempty"`
	Line     int                    `json:"line"`
}

func batchCmd() *cobra.Command {
	var contextFile, outputFile string
	var noProgress, noHistory bool

	cmd := &cobra.Command{
		Use:   "batch [file]",
		Short: "Process a file of utterances, one per line",
		Long: `Process every non-blank line of file (or stdin) against one context
snapshot and write one JSON object per line to stdout or --output.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()

			snap, err := loadSnapshot(contextFile)
			if err != nil {
				return err
			}

			input := cmd.InOrStdin()
			if len(args) == 1 {
				f, err := os.Open(config.ExpandPath(args[0]))
				if err != nil {
					return fmt.Errorf("failed to open input: %w", err)
				}
				defer func() { _ = f.Close() }()
				input = f
			}

			lines, err := cli.NewLineReader(input).ReadLines(ctx)
			if err != nil {
				return fmt.Errorf("failed to read input: %w", err)
			}

			var out io.Writer = cmd.OutOrStdout()
			if outputFile != "" {
				f, err := os.Create(config.ExpandPath(outputFile))
				if err != nil {
					return fmt.Errorf("failed to create output: %w", err)
				}
				defer func() { _ = f.Close() }()
				buffered := bufio.NewWriter(f)
				defer func() { _ = buffered.Flush() }()
				out = buffered
			}

			rt, err := newRuntime(ctx, !noHistory)
			if err != nil {
				return err
			}
			defer rt.Close()

			interrupts := cli.NewInterruptHandler(cmd.ErrOrStderr())
			ctx = interrupts.HandleInterrupts(ctx, "처리된 줄은 출력에 기록되었습니다.")

			runner := cli.NewBatchRunner(rt.engine, snap, cmd.ErrOrStderr(), !noProgress)
			stats, err := runner.Run(ctx, lines, func(item cli.BatchItem) error {
				rec := batchLine{Line: item.Line, Input: item.Input}
				if item.Err != nil {
					rec.Error = item.Err.Error()
				} else {
					resp := item.Response
					rec.Response = &resp
				}
				return writeJSON(out, rec)
			})
			if err != nil && !interrupts.WasInterrupted() {
				return err
			}

			fmt.Fprintln(cmd.ErrOrStderr(), stats.Summary())
			return nil
		},
	}

	cmd.Flags().StringVar(&contextFile, "context", "", "JSON file with the caller's current data snapshot")
	cmd.Flags().StringVarP(&outputFile, "output", "o", "", "write JSON Lines here instead of stdout")
	cmd.Flags().BoolVar(&noProgress, "no-progress", false, "hide the progress bar")
	cmd.Flags().BoolVar(&noHistory, "no-history", false, "do not record requests in the history log")

	return cmd
}
