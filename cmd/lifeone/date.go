package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/Veraticus/lifeone/internal/common"
	"github.com/Veraticus/lifeone/internal/engine"
)

func dateCmd() *cobra.Command {
	return &cobra.Command{
		Use:     "date <text>",
		Short:   "Resolve a Korean relative date expression",
		Example: `  lifeone date 다음주 금요일`,
		Args:    cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			eng := engine.New(engine.Config{})

			d, ok := eng.ResolveDate(strings.Join(args, " "))
			if !ok {
				return common.NewUserError("날짜 표현을 찾지 못했습니다.", common.ErrInvalidRequest)
			}

			fmt.Fprintln(cmd.OutOrStdout(), d.String())
			return nil
		},
	}
}
