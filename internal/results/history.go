package results

import (
	"fmt"

	"github.com/averycrespi/calc-mcp/internal/calc"
)

// HistoryResult represents the result of the calc_get_history tool
type HistoryResult struct {
	Count   int            `json:"count"`
	Message string         `json:"message"`
	Entries []HistoryEntry `json:"entries,omitempty"`
}

// HistoryEntry represents one history record.
// Index is 1-based, 1 being the most recent record.
type HistoryEntry struct {
	Index      int     `json:"index"`
	ID         string  `json:"id"`
	Expression string  `json:"expression"`
	Result     string  `json:"result"`
	Value      float64 `json:"value"`
	Timestamp  string  `json:"timestamp"`
}

// NewHistoryResult creates a HistoryResult from entries ordered newest first
func NewHistoryResult(entries []calc.Entry) HistoryResult {
	result := HistoryResult{
		Count:   len(entries),
		Entries: make([]HistoryEntry, 0, len(entries)),
	}
	for i, entry := range entries {
		result.Entries = append(result.Entries, HistoryEntry{
			Index:      i + 1,
			ID:         entry.ID,
			Expression: entry.Expression,
			Result:     entry.Result,
			Value:      entry.Value,
			Timestamp:  entry.Timestamp,
		})
	}
	if len(entries) == 0 {
		result.Message = "History is empty."
	} else {
		result.Message = fmt.Sprintf("Found %d history entries.", len(entries))
	}
	return result
}
