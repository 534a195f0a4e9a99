package main

import (
	"github.com/spf13/cobra"

	"github.com/aretw0/plangen"
	"github.com/aretw0/plangen/pkg/adapters/mcp"
)

// newMCPCmd represents the mcp command
func newMCPCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "mcp",
		Short: "Run the Model Context Protocol (MCP) server",
		Long: `Starts plangen as an MCP Server over Standard Input/Output.

Tools:
- generate: encoding of a domain in a given mode and format.
- describe: Markdown summary of an instance.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			a.logger.Info("Starting MCP server (stdio)")
			return mcp.NewServer(a.generator(), plangen.Version, a.maxSize(cmd), a.logger).ServeStdio()
		},
	}
	cmd.Flags().Int("max-size", 0, "Largest size accepted, 0 for no limit (default from config: 20)")
	return cmd
}
