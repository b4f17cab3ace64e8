package tools

import (
	"context"
	"fmt"
	"strings"

	"github.com/averycrespi/calc-mcp/internal/calc"
	"github.com/averycrespi/calc-mcp/internal/keys"
	"github.com/averycrespi/calc-mcp/pkg/types"

	"github.com/mark3labs/mcp-go/mcp"
)

// PressKeysTool handles keyboard sequence requests
type PressKeysTool struct {
	sessions types.Sessions
}

// NewPressKeysTool creates a new press keys tool
func NewPressKeysTool(sessions types.Sessions) *PressKeysTool {
	return &PressKeysTool{
		sessions: sessions,
	}
}

// GetTool returns the MCP tool definition
func (t *PressKeysTool) GetTool() mcp.Tool {
	tool := mcp.NewTool(ToolPressKeys,
		mcp.WithDescription("Press a sequence of calculator keys, one character per key. "+
			"Keys: 0-9 digits, . decimal point, + - * / ^ operators, = equals, % percent, "+
			"c clear all, n toggle sign, p pi. Whitespace is ignored"),
		mcp.WithString("keys", mcp.Required(), mcp.Description("Key sequence, for example \"5+2==\"")),
	)
	return tool
}

// Handle processes the tool request
func (t *PressKeysTool) Handle(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	sequence := mcp.ParseString(req, "keys", "")
	if strings.TrimSpace(sequence) == "" {
		return mcp.NewToolResultError("keys parameter is required"), nil
	}

	return RunOnCalculator(ctx, t.sessions, func(c *calc.Calculator) string {
		unknown := keys.PressSequence(c, sequence)
		if len(unknown) > 0 {
			return fmt.Sprintf("Ignored unknown keys: %s", strings.Join(unknown, " "))
		}
		return ""
	})
}
