package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/aretw0/plangen/internal/validator"
)

func newValidateCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "validate <domain> <size>",
		Short: "Check an instance for consistency",
		Long: `Builds the instance and checks that the partition is disjoint, names are unique,
every location is reachable from the start and roads match move actions.`,
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
			g, err := gen.Registry().Lookup(args[0])
			if err != nil {
				return err
			}

			// Without locations there is nothing to crawl; the zero start is ignored.
			start, _ := g.StartOf(in)
			if err := validator.ValidateInstance(in, start); err != nil {
				return fmt.Errorf("validation failed: %w", err)
			}
			fmt.Fprintf(cmd.OutOrStdout(), "%s %d is valid\n", in.Domain, in.Size)
			return nil
		},
	}
}
