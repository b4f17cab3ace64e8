package tools

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/averycrespi/calc-mcp/internal/calc"
	"github.com/averycrespi/calc-mcp/internal/results"
	"github.com/averycrespi/calc-mcp/pkg/types"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/spf13/cast"
)

// NewJSONToolResult marshals v into an indented JSON text result
func NewJSONToolResult(v any) (*mcp.CallToolResult, error) {
	jsonBytes, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("Failed to marshal tool result JSON: %v", err)), nil
	}

	return mcp.NewToolResultText(string(jsonBytes)), nil
}

// RunOnCalculator applies fn to the session calculator and returns the
// resulting state. The message returned by fn is attached to the result.
func RunOnCalculator(ctx context.Context, sessions types.Sessions, fn func(c *calc.Calculator) string) (*mcp.CallToolResult, error) {
	var toolResult results.StateResult
	err := sessions.Do(ctx, func(c *calc.Calculator) error {
		message := fn(c)
		toolResult = results.NewStateResult(c.Snapshot())
		toolResult.Message = message
		return nil
	})
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("Failed to access calculator session: %v", err)), nil
	}

	return NewJSONToolResult(toolResult)
}

// GetStringArgument extracts an argument as a string, accepting numbers too
func GetStringArgument(req mcp.CallToolRequest, key string) (string, error) {
	raw := mcp.ParseArgument(req, key, nil)
	if raw == nil {
		return "", fmt.Errorf("%s parameter is required", key)
	}

	value, err := cast.ToStringE(raw)
	if err != nil {
		return "", fmt.Errorf("invalid %s parameter: %w", key, err)
	}

	return strings.TrimSpace(value), nil
}

// GetOptionalNumberArgument extracts a numeric argument, reporting whether it was present
func GetOptionalNumberArgument(req mcp.CallToolRequest, key string) (float64, bool, error) {
	raw := mcp.ParseArgument(req, key, nil)
	if raw == nil {
		return 0, false, nil
	}

	value, err := cast.ToFloat64E(raw)
	if err != nil {
		return 0, true, fmt.Errorf("invalid %s parameter: %w", key, err)
	}

	return value, true, nil
}
