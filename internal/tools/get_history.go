package tools

import (
	"context"
	"fmt"

	"github.com/averycrespi/calc-mcp/internal/calc"
	"github.com/averycrespi/calc-mcp/internal/results"
	"github.com/averycrespi/calc-mcp/pkg/types"

	"github.com/mark3labs/mcp-go/mcp"
)

// GetHistoryTool handles history listing requests
type GetHistoryTool struct {
	sessions types.Sessions
}

// NewGetHistoryTool creates a new get history tool
func NewGetHistoryTool(sessions types.Sessions) *GetHistoryTool {
	return &GetHistoryTool{
		sessions: sessions,
	}
}

// GetTool returns the MCP tool definition
func (t *GetHistoryTool) GetTool() mcp.Tool {
	tool := mcp.NewTool(ToolGetHistory,
		mcp.WithDescription(fmt.Sprintf("List completed operations, newest first (at most %d)", calc.DefaultHistoryCapacity)),
	)
	return tool
}

// Handle processes the tool request
func (t *GetHistoryTool) Handle(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	var toolResult results.HistoryResult
	err := t.sessions.Do(ctx, func(c *calc.Calculator) error {
		toolResult = results.NewHistoryResult(c.History())
		return nil
	})
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("Failed to access calculator session: %v", err)), nil
	}

	return NewJSONToolResult(toolResult)
}
