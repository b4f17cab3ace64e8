package tools

import (
	"context"
	"fmt"

	"github.com/averycrespi/calc-mcp/internal/calc"
	"github.com/averycrespi/calc-mcp/pkg/types"

	"github.com/mark3labs/mcp-go/mcp"
)

// InputDigitTool handles digit entry requests
type InputDigitTool struct {
	sessions types.Sessions
}

// NewInputDigitTool creates a new input digit tool
func NewInputDigitTool(sessions types.Sessions) *InputDigitTool {
	return &InputDigitTool{
		sessions: sessions,
	}
}

// GetTool returns the MCP tool definition
func (t *InputDigitTool) GetTool() mcp.Tool {
	tool := mcp.NewTool(ToolInputDigit,
		mcp.WithDescription("Enter a single digit into the calculator. After a result or operator the digit starts a new operand"),
		mcp.WithString("digit", mcp.Required(), mcp.Description("A single digit from 0 to 9")),
	)
	return tool
}

// Handle processes the tool request
func (t *InputDigitTool) Handle(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	digit, err := GetStringArgument(req, "digit")
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	if len(digit) != 1 || digit[0] < '0' || digit[0] > '9' {
		return mcp.NewToolResultError(fmt.Sprintf("digit must be a single digit from 0 to 9, got: %q", digit)), nil
	}

	return RunOnCalculator(ctx, t.sessions, func(c *calc.Calculator) string {
		c.InputDigit(digit)
		return ""
	})
}
