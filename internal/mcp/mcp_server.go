// Package mcp provides the Model Context Protocol (MCP) server implementation.
package mcp

import (
	"context"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"
	"github.com/talentco/talentmatch/internal/contract"
)

// NewMCPServer initializes and configures the talent match MCP server without
// starting it. This is exposed for unit testing.
func NewMCPServer(baseCfg *contract.Config, source contract.CandidateSource, generator contract.ProfileGenerator) *server.MCPServer {
	s := server.NewMCPServer(
		"Talent Match Server",
		"1.0.0",
		server.WithLogging(),
	)

	h := &toolHandler{
		baseCfg:   baseCfg,
		source:    source,
		generator: generator,
	}

	// --- 1. Tool: run_talent_match ---
	s.AddTool(mcp.NewTool("run_talent_match",
		mcp.WithDescription("Rank the candidate pool against benchmark employees for a vacancy and return match rates."),
		mcp.WithString("role", mcp.Description("Role name for the vacancy."), mcp.Required()),
		mcp.WithString("level", mcp.Description("Job level for the vacancy (e.g. Junior, Senior)."), mcp.Required()),
		mcp.WithString("purpose", mcp.Description("One-line purpose of the role."), mcp.Required()),
		mcp.WithString("benchmarks", mcp.Description("Comma-separated benchmark employee IDs (at most 3 are used)."), mcp.Required()),
		mcp.WithString("position", mcp.Description("Only consider candidates with this position.")),
		mcp.WithString("directorate", mcp.Description("Only consider candidates from this directorate.")),
		mcp.WithNumber("limit", mcp.Description("Limit the number of candidates considered.")),
	), h.handleRunTalentMatch)

	// --- 2. Tool: list_candidates ---
	s.AddTool(mcp.NewTool("list_candidates",
		mcp.WithDescription("List the candidate pool with their talent scores."),
		mcp.WithString("position", mcp.Description("Only list candidates with this position.")),
		mcp.WithString("directorate", mcp.Description("Only list candidates from this directorate.")),
		mcp.WithNumber("limit", mcp.Description("Limit the number of candidates returned.")),
	), h.handleListCandidates)

	return s
}

// StartMCPServer starts the talent match MCP server on stdio.
func StartMCPServer(_ context.Context, baseCfg *contract.Config, source contract.CandidateSource, generator contract.ProfileGenerator) error {
	s := NewMCPServer(baseCfg, source, generator)
	return server.ServeStdio(s)
}
