package cli

import (
	"github.com/mark3labs/mcp-go/server"
	"github.com/spf13/cobra"

	mcpadapter "github.com/pagekraft/pagekraft/internal/adapters/inbound/mcp"
)

func newMCPCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "mcp",
		Short: "MCP server commands",
		Long:  "Commands for running the Pagekraft MCP (Model Context Protocol) server.",
	}
	cmd.AddCommand(newMCPServeCmd())
	return cmd
}

func newMCPServeCmd() *cobra.Command {
	var sitePath string

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Start Pagekraft MCP server (stdio)",
		Long:  "Start the Pagekraft MCP server using stdio transport. This allows AI coding assistants to audit pages and inspect the rule catalog.",
		RunE: func(cmd *cobra.Command, args []string) error {
			if sitePath == "" {
				sitePath = "."
			}
			s := mcpadapter.NewPagekraftMCPServer(sitePath)
			return server.ServeStdio(s)
		},
	}

	cmd.Flags().StringVar(&sitePath, "path", "", "Site path (defaults to current working directory)")

	return cmd
}
