package mcp

import (
	"context"
	"encoding/json"
	"fmt"

	mcplib "github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"

	"github.com/pagekraft/pagekraft/internal/domain"
	"github.com/pagekraft/pagekraft/internal/domain/rules"
)

// registerResources registers all Pagekraft MCP resources on the given server.
func registerResources(s *server.MCPServer, sitePath string) {
	// 1. pagekraft://report - current audit report
	s.AddResource(
		mcplib.NewResource(
			"pagekraft://report",
			"Audit Report",
			mcplib.WithResourceDescription("Current audit report for the site"),
			mcplib.WithMIMEType("application/json"),
		),
		handleReportResource(sitePath),
	)

	// 2. pagekraft://categories - category vocabulary
	s.AddResource(
		mcplib.NewResource(
			"pagekraft://categories",
			"Categories",
			mcplib.WithResourceDescription("Audit categories in canonical report order"),
			mcplib.WithMIMEType("application/json"),
		),
		handleCategoriesResource(),
	)

	// 3. pagekraft://rules - rule catalog
	s.AddResource(
		mcplib.NewResource(
			"pagekraft://rules",
			"Rule Catalog",
			mcplib.WithResourceDescription("Audit rules in execution order"),
			mcplib.WithMIMEType("application/json"),
		),
		handleRulesResource(),
	)
}

func handleReportResource(sitePath string) server.ResourceHandlerFunc {
	return func(_ context.Context, _ mcplib.ReadResourceRequest) ([]mcplib.ResourceContents, error) {
		report, err := newAuditService().AuditSite(sitePath)
		if err != nil {
			return nil, fmt.Errorf("audit failed: %w", err)
		}
		return jsonContents("pagekraft://report", report)
	}
}

func handleCategoriesResource() server.ResourceHandlerFunc {
	return func(_ context.Context, _ mcplib.ReadResourceRequest) ([]mcplib.ResourceContents, error) {
		return jsonContents("pagekraft://categories", domain.Categories)
	}
}

func handleRulesResource() server.ResourceHandlerFunc {
	return func(_ context.Context, _ mcplib.ReadResourceRequest) ([]mcplib.ResourceContents, error) {
		return jsonContents("pagekraft://rules", rules.Catalog())
	}
}

func jsonContents(uri string, v interface{}) ([]mcplib.ResourceContents, error) {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("marshaling %s: %w", uri, err)
	}
	return []mcplib.ResourceContents{
		mcplib.TextResourceContents{
			URI:      uri,
			MIMEType: "application/json",
			Text:     string(data),
		},
	}, nil
}
