package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/aretw0/plangen/pkg/encoding"
	"github.com/aretw0/plangen/pkg/registry"
)

// newDomainCmd builds the "<domain> N" command printing one encoding.
func newDomainCmd(a *app, gen registry.Generator) *cobra.Command {
	return &cobra.Command{
		Use:   fmt.Sprintf("%s <%s>", gen.Name, gen.SizeName),
		Short: gen.Summary,
		Long: fmt.Sprintf(`%s.

Prints the .inputs and .outputs lines followed by the formula. The %s must be
at least %d.`, gen.Summary, gen.SizeName, gen.MinSize),
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			size, err := parseSize(args[0])
			if err != nil {
				return err
			}

			enc, err := a.generator().Generate(cmd.Context(), gen.Name, size)
			if err != nil {
				return err
			}
			return encoding.Write(cmd.OutOrStdout(), enc, a.format)
		},
	}
}
