package tools

import (
	"context"

	"github.com/averycrespi/calc-mcp/pkg/types"
	"github.com/mark3labs/mcp-go/mcp"
)

// Tool name prefix for all MCP tools
const ToolPrefix = "calc_"

// Tool names
const (
	ToolInputDigit    = ToolPrefix + "input_digit"
	ToolInputDecimal  = ToolPrefix + "input_decimal"
	ToolSetOperator   = ToolPrefix + "set_operator"
	ToolEquals        = ToolPrefix + "equals"
	ToolPercent       = ToolPrefix + "percent"
	ToolToggleSign    = ToolPrefix + "toggle_sign"
	ToolBackspace     = ToolPrefix + "backspace"
	ToolClearAll      = ToolPrefix + "clear_all"
	ToolClearEntry    = ToolPrefix + "clear_entry"
	ToolApplyFunction = ToolPrefix + "apply_function"
	ToolPi            = ToolPrefix + "pi"
	ToolMemory        = ToolPrefix + "memory"
	ToolPressKeys     = ToolPrefix + "press_keys"
	ToolGetState      = ToolPrefix + "get_state"
	ToolGetHistory    = ToolPrefix + "get_history"
	ToolClearHistory  = ToolPrefix + "clear_history"
	ToolUseHistory    = ToolPrefix + "use_history"
)

// Tool is an MCP tool definition paired with its handler
type Tool interface {
	GetTool() mcp.Tool
	Handle(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error)
}

// All returns every calculator tool bound to the given sessions
func All(sessions types.Sessions) []Tool {
	return []Tool{
		NewInputDigitTool(sessions),
		NewInputDecimalTool(sessions),
		NewSetOperatorTool(sessions),
		NewEqualsTool(sessions),
		NewPercentTool(sessions),
		NewToggleSignTool(sessions),
		NewBackspaceTool(sessions),
		NewClearAllTool(sessions),
		NewClearEntryTool(sessions),
		NewApplyFunctionTool(sessions),
		NewPiTool(sessions),
		NewMemoryTool(sessions),
		NewPressKeysTool(sessions),
		NewGetStateTool(sessions),
		NewGetHistoryTool(sessions),
		NewClearHistoryTool(sessions),
		NewUseHistoryTool(sessions),
	}
}
