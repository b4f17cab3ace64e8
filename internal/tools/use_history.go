package tools

import (
	"context"
	"fmt"

	"github.com/averycrespi/calc-mcp/internal/calc"
	"github.com/averycrespi/calc-mcp/pkg/types"

	"github.com/mark3labs/mcp-go/mcp"
)

// UseHistoryTool handles requests to resume from a past result
type UseHistoryTool struct {
	sessions types.Sessions
}

// NewUseHistoryTool creates a new use history tool
func NewUseHistoryTool(sessions types.Sessions) *UseHistoryTool {
	return &UseHistoryTool{
		sessions: sessions,
	}
}

// GetTool returns the MCP tool definition
func (t *UseHistoryTool) GetTool() mcp.Tool {
	tool := mcp.NewTool(ToolUseHistory,
		mcp.WithDescription("Load a past result as the current operand. "+
			"Give the id or index of a history entry, or a raw value"),
		mcp.WithString("id", mcp.Description("ID of a history entry")),
		mcp.WithNumber("index", mcp.Description("1-based history index, 1 being the most recent entry")),
		mcp.WithNumber("value", mcp.Description("Raw value to load")),
	)
	return tool
}

// Handle processes the tool request
func (t *UseHistoryTool) Handle(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	id := mcp.ParseString(req, "id", "")

	index, hasIndex, err := GetOptionalNumberArgument(req, "index")
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	value, hasValue, err := GetOptionalNumberArgument(req, "value")
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	if id == "" && !hasIndex && !hasValue {
		return mcp.NewToolResultError("one of id, index or value is required"), nil
	}

	var lookupErr error
	result, err := RunOnCalculator(ctx, t.sessions, func(c *calc.Calculator) string {
		switch {
		case id != "":
			entry, ok := c.HistoryEntry(id)
			if !ok {
				lookupErr = fmt.Errorf("no history entry with id %q", id)
				return ""
			}
			c.SetFromHistory(entry.Value)
			return fmt.Sprintf("Loaded %s = %s.", entry.Expression, entry.Result)
		case hasIndex:
			history := c.History()
			i := int(index)
			if i < 1 || i > len(history) {
				lookupErr = fmt.Errorf("history index %d out of range (1-%d)", i, len(history))
				return ""
			}
			entry := history[i-1]
			c.SetFromHistory(entry.Value)
			return fmt.Sprintf("Loaded %s = %s.", entry.Expression, entry.Result)
		default:
			c.SetFromHistory(value)
			return ""
		}
	})
	if lookupErr != nil {
		return mcp.NewToolResultError(lookupErr.Error()), nil
	}
	return result, err
}
