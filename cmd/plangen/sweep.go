package main

import (
	"fmt"
	"text/tabwriter"

	"github.com/spf13/cobra"
)

func newSweepCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "sweep <domain> <from> <to>",
		Short: "Tabulate encoding sizes over a range of sizes",
		Long: `Generates every size in [from, to] and prints one row per size with the
number of inputs, outputs and formula bytes. Useful to pick benchmark sizes.`,
		Args: cobra.ExactArgs(3),
		RunE: func(cmd *cobra.Command, args []string) error {
			from, err := parseSize(args[1])
			if err != nil {
				return err
			}
			to, err := parseSize(args[2])
			if err != nil {
				return err
			}

			encs, err := a.generator().Sweep(cmd.Context(), args[0], from, to)
			if err != nil {
				return err
			}

			tw := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
			fmt.Fprintln(tw, "SIZE\tINPUTS\tOUTPUTS\tBYTES")
			for _, enc := range encs {
				fmt.Fprintf(tw, "%d\t%d\t%d\t%d\n",
					enc.Size, len(enc.Partition.Inputs), len(enc.Partition.Outputs), len(enc.Formula))
			}
			return tw.Flush()
		},
	}
}
