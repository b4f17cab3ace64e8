package tools

import (
	"context"

	"github.com/averycrespi/calc-mcp/internal/calc"
	"github.com/averycrespi/calc-mcp/pkg/types"

	"github.com/mark3labs/mcp-go/mcp"
)

// ActionTool handles argument-free calculator operations
type ActionTool struct {
	sessions    types.Sessions
	name        string
	description string
	action      func(c *calc.Calculator) string
}

// NewActionTool creates a tool that applies action to the session calculator
func NewActionTool(sessions types.Sessions, name, description string, action func(c *calc.Calculator) string) *ActionTool {
	return &ActionTool{
		sessions:    sessions,
		name:        name,
		description: description,
		action:      action,
	}
}

// GetTool returns the MCP tool definition
func (t *ActionTool) GetTool() mcp.Tool {
	return mcp.NewTool(t.name, mcp.WithDescription(t.description))
}

// Handle processes the tool request
func (t *ActionTool) Handle(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	return RunOnCalculator(ctx, t.sessions, t.action)
}

// NewInputDecimalTool creates the decimal point tool
func NewInputDecimalTool(sessions types.Sessions) *ActionTool {
	return NewActionTool(sessions, ToolInputDecimal,
		"Add a decimal point to the operand being entered (at most one per operand)",
		func(c *calc.Calculator) string {
			c.InputDecimal()
			return ""
		})
}

// NewEqualsTool creates the equals tool
func NewEqualsTool(sessions types.Sessions) *ActionTool {
	return NewActionTool(sessions, ToolEquals,
		"Complete the pending operation. Pressing it again after a result repeats the last operator and operand",
		func(c *calc.Calculator) string {
			if !c.Equals() {
				return "Calculation failed; clear the calculator or enter a digit to recover."
			}
			return ""
		})
}

// NewPercentTool creates the percent tool
func NewPercentTool(sessions types.Sessions) *ActionTool {
	return NewActionTool(sessions, ToolPercent,
		"Divide the current operand by 100",
		func(c *calc.Calculator) string {
			c.Percent()
			return ""
		})
}

// NewToggleSignTool creates the sign toggle tool
func NewToggleSignTool(sessions types.Sessions) *ActionTool {
	return NewActionTool(sessions, ToolToggleSign,
		"Flip the sign of the current operand",
		func(c *calc.Calculator) string {
			c.ToggleSign()
			return ""
		})
}

// NewBackspaceTool creates the backspace tool
func NewBackspaceTool(sessions types.Sessions) *ActionTool {
	return NewActionTool(sessions, ToolBackspace,
		"Delete the last character of the operand being entered",
		func(c *calc.Calculator) string {
			c.Backspace()
			return ""
		})
}

// NewClearAllTool creates the clear-all tool
func NewClearAllTool(sessions types.Sessions) *ActionTool {
	return NewActionTool(sessions, ToolClearAll,
		"Reset the calculator. Memory and history are kept",
		func(c *calc.Calculator) string {
			c.ClearAll()
			return ""
		})
}

// NewClearEntryTool creates the clear-entry tool
func NewClearEntryTool(sessions types.Sessions) *ActionTool {
	return NewActionTool(sessions, ToolClearEntry,
		"Reset the operand being entered, keeping the pending operation",
		func(c *calc.Calculator) string {
			c.ClearEntry()
			return ""
		})
}

// NewPiTool creates the pi tool
func NewPiTool(sessions types.Sessions) *ActionTool {
	return NewActionTool(sessions, ToolPi,
		"Enter π as the current operand",
		func(c *calc.Calculator) string {
			c.SetPi()
			return ""
		})
}

// NewGetStateTool creates the state query tool
func NewGetStateTool(sessions types.Sessions) *ActionTool {
	return NewActionTool(sessions, ToolGetState,
		"Get the display, expression, memory and error flag without changing anything",
		func(c *calc.Calculator) string {
			return ""
		})
}

// NewClearHistoryTool creates the clear-history tool
func NewClearHistoryTool(sessions types.Sessions) *ActionTool {
	return NewActionTool(sessions, ToolClearHistory,
		"Remove every history entry",
		func(c *calc.Calculator) string {
			c.ClearHistory()
			return "History cleared."
		})
}
