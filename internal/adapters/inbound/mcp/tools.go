package mcp

import (
	"context"
	"encoding/json"
	"fmt"

	mcplib "github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"

	"github.com/pagekraft/pagekraft/internal/adapters/outbound/config"
	"github.com/pagekraft/pagekraft/internal/adapters/outbound/cssparse"
	"github.com/pagekraft/pagekraft/internal/adapters/outbound/htmlparse"
	"github.com/pagekraft/pagekraft/internal/adapters/outbound/textreport"
	"github.com/pagekraft/pagekraft/internal/application"
	"github.com/pagekraft/pagekraft/internal/domain/rules"
)

// registerTools registers all Pagekraft MCP tools on the given server.
func registerTools(s *server.MCPServer, sitePath string) {
	// 1. pagekraft_audit
	s.AddTool(
		mcplib.NewTool("pagekraft_audit",
			mcplib.WithDescription("Audit the site's page and stylesheets and return the full report as JSON"),
		),
		handleAudit(sitePath),
	)

	// 2. pagekraft_audit_text
	s.AddTool(
		mcplib.NewTool("pagekraft_audit_text",
			mcplib.WithDescription("Audit the site and return the report in the plain-text checklist format"),
		),
		handleAuditText(sitePath),
	)

	// 3. pagekraft_rules
	s.AddTool(
		mcplib.NewTool("pagekraft_rules",
			mcplib.WithDescription("Return the audit rule catalog in execution order"),
		),
		handleRules(),
	)
}

func newAuditService() *application.AuditService {
	return application.NewAuditService(
		htmlparse.New(),
		cssparse.New(),
		config.New(),
	)
}

func handleAudit(sitePath string) server.ToolHandlerFunc {
	return func(_ context.Context, _ mcplib.CallToolRequest) (*mcplib.CallToolResult, error) {
		report, err := newAuditService().AuditSite(sitePath)
		if err != nil {
			return errorResult(fmt.Sprintf("audit failed: %v", err)), nil
		}
		return jsonResult(report)
	}
}

func handleAuditText(sitePath string) server.ToolHandlerFunc {
	return func(_ context.Context, _ mcplib.CallToolRequest) (*mcplib.CallToolResult, error) {
		report, err := newAuditService().AuditSite(sitePath)
		if err != nil {
			return errorResult(fmt.Sprintf("audit failed: %v", err)), nil
		}
		return textResult(textreport.Render(report)), nil
	}
}

func handleRules() server.ToolHandlerFunc {
	return func(_ context.Context, _ mcplib.CallToolRequest) (*mcplib.CallToolResult, error) {
		return jsonResult(rules.Catalog())
	}
}

// jsonResult marshals v as indented JSON text content.
func jsonResult(v interface{}) (*mcplib.CallToolResult, error) {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("marshaling result: %w", err)
	}
	return &mcplib.CallToolResult{
		Content: []mcplib.Content{mcplib.NewTextContent(string(data))},
	}, nil
}

// textResult returns a plain text content result.
func textResult(text string) *mcplib.CallToolResult {
	return &mcplib.CallToolResult{
		Content: []mcplib.Content{mcplib.NewTextContent(text)},
	}
}

// errorResult returns a tool result that indicates an error occurred.
func errorResult(msg string) *mcplib.CallToolResult {
	return &mcplib.CallToolResult{
		Content: []mcplib.Content{mcplib.NewTextContent(msg)},
		IsError: true,
	}
}
