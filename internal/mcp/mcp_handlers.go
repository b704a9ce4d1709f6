package mcp

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/talentco/talentmatch/core"
	"github.com/talentco/talentmatch/internal/contract"
	"github.com/talentco/talentmatch/schema"
)

// toolHandler holds common dependencies for MCP tool handlers.
type toolHandler struct {
	baseCfg   *contract.Config
	source    contract.CandidateSource
	generator contract.ProfileGenerator
}

func (h *toolHandler) handleRunTalentMatch(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	cfg := h.baseCfg.Clone()
	cfg.Role = schema.RoleDescriptor{
		Name:    request.GetString("role", ""),
		Level:   request.GetString("level", ""),
		Purpose: request.GetString("purpose", ""),
	}
	cfg.BenchmarkIDs = contract.ParseBenchmarkIDs(request.GetString("benchmarks", ""))
	if p := request.GetString("position", ""); p != "" {
		cfg.Position = p
	}
	if d := request.GetString("directorate", ""); d != "" {
		cfg.Directorate = d
	}
	if l := request.GetInt("limit", 0); l > 0 {
		cfg.ResultLimit = l
	}

	if err := contract.ValidateRole(cfg); err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("invalid match parameters: %v", err)), nil
	}

	filter := contract.Filter{
		Position:    cfg.Position,
		Directorate: cfg.Directorate,
		Limit:       cfg.ResultLimit,
	}
	run, err := core.RunPipeline(ctx, cfg.Role, cfg.BenchmarkIDs, h.source, h.generator, filter, cfg.Weights)
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("match failed: %v", err)), nil
	}

	jsonData, _ := json.MarshalIndent(run, "", "  ")
	return mcp.NewToolResultText(string(jsonData)), nil
}

func (h *toolHandler) handleListCandidates(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	filter := contract.Filter{
		Position:    request.GetString("position", ""),
		Directorate: request.GetString("directorate", ""),
	}
	if l := request.GetInt("limit", 0); l > 0 {
		filter.Limit = l
	}

	candidates, err := h.source.FetchCandidates(ctx, filter)
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("fetch failed: %v", err)), nil
	}

	jsonData, _ := json.MarshalIndent(candidates, "", "  ")
	return mcp.NewToolResultText(string(jsonData)), nil
}
