package tools

import (
	"context"
	"fmt"

	"github.com/averycrespi/calc-mcp/internal/calc"
	"github.com/averycrespi/calc-mcp/pkg/types"

	"github.com/mark3labs/mcp-go/mcp"
)

// ApplyFunctionTool handles unary function requests
type ApplyFunctionTool struct {
	sessions types.Sessions
}

// NewApplyFunctionTool creates a new apply function tool
func NewApplyFunctionTool(sessions types.Sessions) *ApplyFunctionTool {
	return &ApplyFunctionTool{
		sessions: sessions,
	}
}

func functionNames() []string {
	names := make([]string, 0, len(calc.Functions()))
	for _, fn := range calc.Functions() {
		names = append(names, fn.String())
	}
	return names
}

// GetTool returns the MCP tool definition
func (t *ApplyFunctionTool) GetTool() mcp.Tool {
	tool := mcp.NewTool(ToolApplyFunction,
		mcp.WithDescription("Apply a unary function to the current operand. Trigonometric functions take degrees"),
		mcp.WithString("function",
			mcp.Required(),
			mcp.Enum(functionNames()...),
			mcp.Description("Function: sqrt, sin, cos, tan, ln (natural log), log (base 10), inv (1/x)"),
		),
	)
	return tool
}

// Handle processes the tool request
func (t *ApplyFunctionTool) Handle(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	name := mcp.ParseString(req, "function", "")
	if name == "" {
		return mcp.NewToolResultError("function parameter is required"), nil
	}

	fn, ok := calc.ParseFunction(name)
	if !ok {
		return mcp.NewToolResultError(fmt.Sprintf("unknown function: %q", name)), nil
	}

	return RunOnCalculator(ctx, t.sessions, func(c *calc.Calculator) string {
		c.ApplyUnary(fn)
		return ""
	})
}
