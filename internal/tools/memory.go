package tools

import (
	"context"
	"fmt"
	"strings"

	"github.com/averycrespi/calc-mcp/internal/calc"
	"github.com/averycrespi/calc-mcp/pkg/types"

	"github.com/mark3labs/mcp-go/mcp"
)

// Memory actions
const (
	MemoryActionClear    = "clear"
	MemoryActionStore    = "store"
	MemoryActionAdd      = "add"
	MemoryActionSubtract = "subtract"
	MemoryActionRecall   = "recall"
)

// MemoryTool handles memory register requests
type MemoryTool struct {
	sessions types.Sessions
}

// NewMemoryTool creates a new memory tool
func NewMemoryTool(sessions types.Sessions) *MemoryTool {
	return &MemoryTool{
		sessions: sessions,
	}
}

// GetTool returns the MCP tool definition
func (t *MemoryTool) GetTool() mcp.Tool {
	tool := mcp.NewTool(ToolMemory,
		mcp.WithDescription("Operate the memory register with the current operand"),
		mcp.WithString("action",
			mcp.Required(),
			mcp.Enum(MemoryActionClear, MemoryActionStore, MemoryActionAdd, MemoryActionSubtract, MemoryActionRecall),
			mcp.Description("clear zeroes memory, store copies the operand, add/subtract accumulate it, recall loads memory"),
		),
	)
	return tool
}

// Handle processes the tool request
func (t *MemoryTool) Handle(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	action := strings.ToLower(mcp.ParseString(req, "action", ""))

	var apply func(c *calc.Calculator)
	switch action {
	case MemoryActionClear:
		apply = (*calc.Calculator).MemoryClear
	case MemoryActionStore:
		apply = (*calc.Calculator).MemoryStore
	case MemoryActionAdd:
		apply = (*calc.Calculator).MemoryAdd
	case MemoryActionSubtract:
		apply = (*calc.Calculator).MemorySubtract
	case MemoryActionRecall:
		apply = (*calc.Calculator).MemoryRecall
	case "":
		return mcp.NewToolResultError("action parameter is required"), nil
	default:
		return mcp.NewToolResultError(fmt.Sprintf("unknown memory action: %q", action)), nil
	}

	return RunOnCalculator(ctx, t.sessions, func(c *calc.Calculator) string {
		apply(c)
		return ""
	})
}
