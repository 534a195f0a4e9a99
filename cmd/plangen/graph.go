package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/aretw0/plangen/internal/presentation/graph"
	"github.com/aretw0/plangen/pkg/domain"
	pgrid "github.com/aretw0/plangen/pkg/grid"
	"github.com/aretw0/plangen/pkg/tireworld"
)

// newGraphCmd represents the graph command
func newGraphCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "graph <domain> <size>",
		Short: "Export the location graph visualization",
		Long: `Builds the instance and outputs a Mermaid diagram (graph TD) of its locations
and the moves between them. With --overlay the start, goal and spare-tire
locations are highlighted.`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			size, err := parseSize(args[1])
			if err != nil {
				return err
			}
			in, err := a.generator().Build(cmd.Context(), args[0], size)
			if err != nil {
				return err
			}

			var overlay *graph.Overlay
			if on, _ := cmd.Flags().GetBool("overlay"); on {
				overlay = overlayFor(in)
			}

			// Generate and print Mermaid graph
			fmt.Fprint(cmd.OutOrStdout(), graph.GenerateMermaid(in, overlay))
			return nil
		},
	}
	cmd.Flags().Bool("overlay", false, "Highlight start, goal and spare locations")
	return cmd
}

func overlayFor(in *domain.Instance) *graph.Overlay {
	switch in.Domain {
	case domain.DomainGrid:
		return &graph.Overlay{
			Start: pgrid.Clamp(pgrid.InitCell, in.Size),
			Goal:  pgrid.Clamp(pgrid.GoalCell, in.Size),
		}
	case domain.DomainTireworld:
		return &graph.Overlay{
			Start:  tireworld.StartLocation,
			Goal:   tireworld.GoalLocation,
			Spares: tireworld.SpareLocations,
		}
	}
	return nil
}
