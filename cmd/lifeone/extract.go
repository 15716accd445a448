package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"

	"github.com/Veraticus/lifeone/internal/cli"
	"github.com/Veraticus/lifeone/internal/engine"
	"github.com/Veraticus/lifeone/internal/model"
)

type extractOptions struct {
	contextFile string
	jsonOutput  bool
	noPrompt    bool
	noHistory   bool
}

func extractCmd() *cobra.Command {
	opts := extractOptions{}

	cmd := &cobra.Command{
		Use:   "extract [text]",
		Short: "Extract records from an utterance",
		Long: `Process one utterance given as arguments, or read utterances line by line
from stdin when none is given. Ambiguous results ask for a clarification
unless --no-prompt or --json is set.`,
		Example: `  lifeone extract 어제 국수 5000원
  lifeone extract --json "내일 3시 회의"
  lifeone extract --context snapshot.json`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runExtract(cmd, args, opts)
		},
	}

	cmd.Flags().StringVar(&opts.contextFile, "context", "", "JSON file with the caller's current data snapshot")
	cmd.Flags().BoolVar(&opts.jsonOutput, "json", false, "print the raw response as JSON")
	cmd.Flags().BoolVar(&opts.noPrompt, "no-prompt", false, "do not ask clarification questions")
	cmd.Flags().BoolVar(&opts.noHistory, "no-history", false, "do not record requests in the history log")

	return cmd
}

func runExtract(cmd *cobra.Command, args []string, opts extractOptions) error {
	ctx := cmd.Context()

	snap, err := loadSnapshot(opts.contextFile)
	if err != nil {
		return err
	}

	rt, err := newRuntime(ctx, !opts.noHistory)
	if err != nil {
		return err
	}
	defer rt.Close()

	out := cmd.OutOrStdout()
	prompter := cli.NewPrompter(cmd.InOrStdin(), out)

	if len(args) > 0 {
		return extractOne(ctx, rt.engine, prompter, out, strings.Join(args, " "), snap, opts)
	}

	if !opts.jsonOutput {
		fmt.Fprintln(out, cli.FormatInfo("한 줄에 하나씩 입력하세요. Ctrl+D로 종료합니다."))
	}

	for {
		if !opts.jsonOutput {
			fmt.Fprint(out, cli.FormatPrompt("입력"))
		}

		line, err := prompter.Reader().ReadLine(ctx)
		if errors.Is(err, io.EOF) || errors.Is(err, cli.ErrInputCancelled) {
			return nil
		}
		if err != nil {
			return err
		}
		if line == "" {
			continue
		}

		if err := extractOne(ctx, rt.engine, prompter, out, line, snap, opts); err != nil {
			fmt.Fprintln(out, cli.FormatError(err.Error()))
		}
	}
}

func extractOne(ctx context.Context, eng *engine.Engine, prompter *cli.Prompter, out io.Writer, text string, snap model.Snapshot, opts extractOptions) error {
	resp, err := eng.Process(ctx, model.ProcessRequest{Text: text, ContextData: &snap})
	if err != nil {
		return err
	}

	if opts.jsonOutput {
		return writeJSON(out, resp)
	}

	fmt.Fprintln(out, cli.RenderResponse(resp))
	if !resp.ClarificationNeeded || opts.noPrompt {
		return nil
	}

	answer, err := prompter.Choose(ctx, resp.Answer, resp.ClarificationOptions)
	if errors.Is(err, cli.ErrNoChoice) || errors.Is(err, cli.ErrInputCancelled) {
		fmt.Fprintln(out, cli.FormatWarning("선택 없이 종료합니다."))
		return nil
	}
	if err != nil {
		return err
	}

	resolved, err := eng.Clarify(model.ClarifyRequest{Answer: answer, Pending: &resp.DataExtraction})
	if err != nil {
		return err
	}

	fmt.Fprintln(out, cli.FormatSuccess(resolved.Answer))
	if records := cli.RenderExtraction(resolved.DataExtraction); records != "" {
		fmt.Fprintln(out, records)
	}
	return nil
}
