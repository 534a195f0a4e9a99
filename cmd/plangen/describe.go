package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/aretw0/plangen/internal/presentation/tui"
	"github.com/aretw0/plangen/pkg/encoding"
)

func newDescribeCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "describe <domain> <size>",
		Short: "Summarise an instance as Markdown",
		Long: `Prints the counts, partition, actions and conditions of an instance. On a
terminal the Markdown is rendered with glamour; piped output stays raw.`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			size, err := parseSize(args[1])
			if err != nil {
				return err
			}

			gen := a.generator()
			in, err := gen.Build(cmd.Context(), args[0], size)
			if err != nil {
				return err
			}
			enc, err := gen.GenerateMode(cmd.Context(), args[0], size, encoding.ModePPLTL)
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			rendered, err := tui.RendererFor(out)(tui.Describe(in, enc))
			if err != nil {
				return fmt.Errorf("render failed: %w", err)
			}
			fmt.Fprint(out, rendered)
			return nil
		},
	}
}
