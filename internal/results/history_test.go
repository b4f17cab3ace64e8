package results

import (
	"testing"

	"github.com/averycrespi/calc-mcp/internal/calc"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewHistoryResult(t *testing.T) {
	entries := []calc.Entry{
		{ID: "b", Expression: "7 + 2", Result: "9", Value: 9, Timestamp: "2024-01-02T03:04:06.000Z"},
		{ID: "a", Expression: "5 + 2", Result: "7", Value: 7, Timestamp: "2024-01-02T03:04:05.000Z"},
	}

	result := NewHistoryResult(entries)
	assert.Equal(t, 2, result.Count)
	assert.Equal(t, "Found 2 history entries.", result.Message)
	require.Len(t, result.Entries, 2)
	assert.Equal(t, HistoryEntry{
		Index:      1,
		ID:         "b",
		Expression: "7 + 2",
		Result:     "9",
		Value:      9,
		Timestamp:  "2024-01-02T03:04:06.000Z",
	}, result.Entries[0])
	assert.Equal(t, 2, result.Entries[1].Index)
}

func TestNewHistoryResult_Empty(t *testing.T) {
	result := NewHistoryResult(nil)
	assert.Equal(t, 0, result.Count)
	assert.Equal(t, "History is empty.", result.Message)
	assert.Empty(t, result.Entries)
}
