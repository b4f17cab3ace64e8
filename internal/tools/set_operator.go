package tools

import (
	"context"
	"fmt"

	"github.com/averycrespi/calc-mcp/internal/calc"
	"github.com/averycrespi/calc-mcp/pkg/types"

	"github.com/mark3labs/mcp-go/mcp"
)

// SetOperatorTool handles operator selection requests
type SetOperatorTool struct {
	sessions types.Sessions
}

// NewSetOperatorTool creates a new set operator tool
func NewSetOperatorTool(sessions types.Sessions) *SetOperatorTool {
	return &SetOperatorTool{
		sessions: sessions,
	}
}

// GetTool returns the MCP tool definition
func (t *SetOperatorTool) GetTool() mcp.Tool {
	tool := mcp.NewTool(ToolSetOperator,
		mcp.WithDescription("Choose the binary operator for the next operand. "+
			"Operators chain left to right without precedence: 5 + 3 * 2 = 16"),
		mcp.WithString("operator",
			mcp.Required(),
			mcp.Enum("+", "-", "*", "/", "^"),
			mcp.Description("Operator: + add, - subtract, * multiply, / divide, ^ power"),
		),
	)
	return tool
}

// Handle processes the tool request
func (t *SetOperatorTool) Handle(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	operator := mcp.ParseString(req, "operator", "")
	if operator == "" {
		return mcp.NewToolResultError("operator parameter is required"), nil
	}

	op, ok := calc.ParseOperator(operator)
	if !ok {
		return mcp.NewToolResultError(fmt.Sprintf("unknown operator: %q", operator)), nil
	}

	return RunOnCalculator(ctx, t.sessions, func(c *calc.Calculator) string {
		c.SetOperator(op)
		return ""
	})
}
