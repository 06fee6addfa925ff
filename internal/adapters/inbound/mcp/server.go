package mcp

import (
	"github.com/mark3labs/mcp-go/server"
)

// NewPagekraftMCPServer creates a new MCP server with all Pagekraft tools
// and resources registered. The sitePath is the root directory of the site
// to audit.
func NewPagekraftMCPServer(sitePath string) *server.MCPServer {
	s := server.NewMCPServer(
		"pagekraft",
		"0.1.0",
		server.WithToolCapabilities(true),
		server.WithResourceCapabilities(true, false),
	)

	registerTools(s, sitePath)
	registerResources(s, sitePath)

	return s
}
