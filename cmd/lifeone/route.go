package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/Veraticus/lifeone/internal/cli"
	"github.com/Veraticus/lifeone/internal/engine"
)

func routeCmd() *cobra.Command {
	var explain, jsonOutput bool

	cmd := &cobra.Command{
		Use:   "route <text>",
		Short: "Show whether an utterance is handled locally",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			eng := engine.New(engine.Config{})
			text := strings.Join(args, " ")
			decision := eng.Route(text)
			out := cmd.OutOrStdout()

			if jsonOutput {
				return writeJSON(out, decision)
			}

			fmt.Fprintln(out, cli.RenderDecision(decision))
			if !explain {
				return nil
			}

			fmt.Fprintln(out)
			fmt.Fprintln(out, cli.BoldStyle.Render("규칙 순서"))
			for i, reason := range eng.Policy().Rules() {
				marker := "  "
				line := fmt.Sprintf("%d. %s  %s", i+1, reason, reason.Message())
				if reason == decision.Reason {
					marker = "→ "
					line = cli.SuccessStyle.Render(line)
				} else {
					line = cli.SubtleStyle.Render(line)
				}
				fmt.Fprintln(out, marker+line)
			}
			return nil
		},
	}

	cmd.Flags().BoolVar(&explain, "explain", false, "list every routing rule in evaluation order")
	cmd.Flags().BoolVar(&jsonOutput, "json", false, "print the decision as JSON")

	return cmd
}
