package main

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/aretw0/plangen"
	"github.com/aretw0/plangen/internal/presentation/tui"
)

func newVersionCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "version",
		Short: "Print the version number of plangen",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			out := cmd.OutOrStdout()
			if banner, _ := cmd.Flags().GetBool("banner"); banner {
				tui.PrintBanner(out, plangen.Version)
				return
			}
			printVersion(out)
		},
	}
	cmd.Flags().Bool("banner", false, "Print the banner")
	return cmd
}

func printVersion(w io.Writer) {
	fmt.Fprintf(w, "plangen version %s\n", plangen.Version)
}
