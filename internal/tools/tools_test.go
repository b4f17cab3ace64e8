package tools

import (
	"encoding/json"
	"testing"

	"github.com/averycrespi/calc-mcp/internal/results"
	"github.com/averycrespi/calc-mcp/internal/session"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAll_UniqueNames(t *testing.T) {
	tools := All(session.NewManager(nil))

	names := make(map[string]bool)
	for _, tool := range tools {
		name := tool.GetTool().Name
		assert.NotEmpty(t, tool.GetTool().Description, name)
		assert.False(t, names[name], "duplicate tool name %s", name)
		names[name] = true
	}
	assert.Len(t, names, 17)
	assert.True(t, names[ToolPressKeys])
}

func TestInputDigitTool(t *testing.T) {
	tests := []struct {
		name        string
		arguments   map[string]interface{}
		expected    string
		expectError bool
	}{
		{name: "string digit", arguments: map[string]interface{}{"digit": "5"}, expected: "5"},
		{name: "numeric digit", arguments: map[string]interface{}{"digit": float64(8)}, expected: "8"},
		{name: "missing digit", arguments: map[string]interface{}{}, expectError: true},
		{name: "two digits", arguments: map[string]interface{}{"digit": "12"}, expectError: true},
		{name: "letter", arguments: map[string]interface{}{"digit": "a"}, expectError: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tool := NewInputDigitTool(session.NewManager(nil))
			result := callTool(t, tool, tt.arguments)

			if tt.expectError {
				assert.True(t, result.IsError)
				return
			}
			assert.Equal(t, tt.expected, decodeState(t, result).Display)
		})
	}
}

func TestOperatorFlow(t *testing.T) {
	sessions := session.NewManager(nil)
	digit := NewInputDigitTool(sessions)
	operator := NewSetOperatorTool(sessions)
	equals := NewEqualsTool(sessions)

	callTool(t, digit, map[string]interface{}{"digit": "5"})
	state := decodeState(t, callTool(t, operator, map[string]interface{}{"operator": "+"}))
	assert.Equal(t, "5 +", state.Expression)
	assert.Equal(t, "+", state.PendingOperator)

	callTool(t, digit, map[string]interface{}{"digit": "2"})
	assert.Equal(t, "7", decodeState(t, callTool(t, equals, nil)).Display)
	assert.Equal(t, "9", decodeState(t, callTool(t, equals, nil)).Display)

	state = decodeState(t, callTool(t, equals, nil))
	assert.Equal(t, "11", state.Display)
	assert.Equal(t, "+ 2", state.Expression)
	assert.Empty(t, state.PendingOperator)
}

func TestSetOperatorTool_Invalid(t *testing.T) {
	tool := NewSetOperatorTool(session.NewManager(nil))

	result := callTool(t, tool, map[string]interface{}{"operator": "%"})
	assert.True(t, result.IsError)
	assert.Contains(t, resultText(t, result), "unknown operator")

	result = callTool(t, tool, map[string]interface{}{})
	assert.True(t, result.IsError)
}

func TestEqualsTool_DivisionByZero(t *testing.T) {
	sessions := session.NewManager(nil)
	callTool(t, NewPressKeysTool(sessions), map[string]interface{}{"keys": "5/0"})

	state := decodeState(t, callTool(t, NewEqualsTool(sessions), nil))
	assert.Equal(t, "Error", state.Display)
	assert.True(t, state.Error)
	assert.True(t, state.ShowClearEntry)
	assert.Contains(t, state.Message, "Calculation failed")

	state = decodeState(t, callTool(t, NewClearAllTool(sessions), nil))
	assert.Equal(t, "0", state.Display)
	assert.False(t, state.Error)
}

func TestActionTools(t *testing.T) {
	tests := []struct {
		name     string
		keys     string
		tool     func(sessions *session.Manager) Tool
		expected string
	}{
		{name: "decimal", keys: "3", tool: func(s *session.Manager) Tool { return NewInputDecimalTool(s) }, expected: "3."},
		{name: "percent", keys: "25", tool: func(s *session.Manager) Tool { return NewPercentTool(s) }, expected: "0.25"},
		{name: "toggle sign", keys: "25", tool: func(s *session.Manager) Tool { return NewToggleSignTool(s) }, expected: "-25"},
		{name: "backspace", keys: "25", tool: func(s *session.Manager) Tool { return NewBackspaceTool(s) }, expected: "2"},
		{name: "clear entry", keys: "25", tool: func(s *session.Manager) Tool { return NewClearEntryTool(s) }, expected: "0"},
		{name: "pi", keys: "", tool: func(s *session.Manager) Tool { return NewPiTool(s) }, expected: "3.14159265359"},
		{name: "get state", keys: "1234", tool: func(s *session.Manager) Tool { return NewGetStateTool(s) }, expected: "1,234"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			sessions := session.NewManager(nil)
			if tt.keys != "" {
				callTool(t, NewPressKeysTool(sessions), map[string]interface{}{"keys": tt.keys})
			}
			state := decodeState(t, callTool(t, tt.tool(sessions), nil))
			assert.Equal(t, tt.expected, state.Display)
		})
	}
}

func TestApplyFunctionTool(t *testing.T) {
	sessions := session.NewManager(nil)
	tool := NewApplyFunctionTool(sessions)
	callTool(t, NewInputDigitTool(sessions), map[string]interface{}{"digit": "9"})

	state := decodeState(t, callTool(t, tool, map[string]interface{}{"function": "sqrt"}))
	assert.Equal(t, "3", state.Display)

	result := callTool(t, tool, map[string]interface{}{"function": "exp"})
	assert.True(t, result.IsError)

	enum := tool.GetTool().InputSchema.Properties["function"].(map[string]interface{})["enum"]
	assert.Equal(t, []string{"sqrt", "sin", "cos", "tan", "ln", "log", "inv"}, enum)
}

func TestMemoryTool(t *testing.T) {
	sessions := session.NewManager(nil)
	memory := NewMemoryTool(sessions)

	callTool(t, NewInputDigitTool(sessions), map[string]interface{}{"digit": "8"})
	state := decodeState(t, callTool(t, memory, map[string]interface{}{"action": "store"}))
	assert.Equal(t, 8.0, state.Memory)

	callTool(t, NewClearAllTool(sessions), nil)
	state = decodeState(t, callTool(t, memory, map[string]interface{}{"action": "recall"}))
	assert.Equal(t, "8", state.Display)

	callTool(t, memory, map[string]interface{}{"action": "add"})
	state = decodeState(t, callTool(t, memory, map[string]interface{}{"action": "recall"}))
	assert.Equal(t, "16", state.Display)

	callTool(t, memory, map[string]interface{}{"action": "subtract"})
	state = decodeState(t, callTool(t, memory, map[string]interface{}{"action": "clear"}))
	assert.Equal(t, 0.0, state.Memory)

	result := callTool(t, memory, map[string]interface{}{"action": "swap"})
	assert.True(t, result.IsError)
	result = callTool(t, memory, map[string]interface{}{})
	assert.True(t, result.IsError)
}

func TestPressKeysTool(t *testing.T) {
	sessions := session.NewManager(nil)
	tool := NewPressKeysTool(sessions)

	state := decodeState(t, callTool(t, tool, map[string]interface{}{"keys": "2*3="}))
	assert.Equal(t, "6", state.Display)
	assert.Empty(t, state.Message)

	state = decodeState(t, callTool(t, tool, map[string]interface{}{"keys": "c4q"}))
	assert.Equal(t, "4", state.Display)
	assert.Equal(t, "Ignored unknown keys: q", state.Message)

	result := callTool(t, tool, map[string]interface{}{"keys": "  "})
	assert.True(t, result.IsError)
}

func TestHistoryTools(t *testing.T) {
	sessions := session.NewManager(nil)
	callTool(t, NewPressKeysTool(sessions), map[string]interface{}{"keys": "2*3=c"})

	var history results.HistoryResult
	text := resultText(t, callTool(t, NewGetHistoryTool(sessions), nil))
	require.NoError(t, json.Unmarshal([]byte(text), &history))
	require.Equal(t, 1, history.Count)
	assert.Equal(t, "2 x 3", history.Entries[0].Expression)
	assert.Equal(t, "6", history.Entries[0].Result)

	useHistory := NewUseHistoryTool(sessions)

	state := decodeState(t, callTool(t, useHistory, map[string]interface{}{"id": history.Entries[0].ID}))
	assert.Equal(t, "6", state.Display)
	assert.Equal(t, "Loaded 2 x 3 = 6.", state.Message)

	callTool(t, NewClearAllTool(sessions), nil)
	state = decodeState(t, callTool(t, useHistory, map[string]interface{}{"index": float64(1)}))
	assert.Equal(t, "6", state.Display)

	state = decodeState(t, callTool(t, useHistory, map[string]interface{}{"value": 2.5}))
	assert.Equal(t, "2.5", state.Display)

	result := callTool(t, useHistory, map[string]interface{}{"id": "missing"})
	assert.True(t, result.IsError)
	result = callTool(t, useHistory, map[string]interface{}{"index": float64(2)})
	assert.True(t, result.IsError)
	result = callTool(t, useHistory, map[string]interface{}{})
	assert.True(t, result.IsError)

	state = decodeState(t, callTool(t, NewClearHistoryTool(sessions), nil))
	assert.Equal(t, "History cleared.", state.Message)

	text = resultText(t, callTool(t, NewGetHistoryTool(sessions), nil))
	require.NoError(t, json.Unmarshal([]byte(text), &history))
	assert.Equal(t, 0, history.Count)
	assert.Equal(t, "History is empty.", history.Message)
}
