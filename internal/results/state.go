package results

import "github.com/averycrespi/calc-mcp/internal/calc"

// StateResult represents the calculator state returned by every mutating tool
type StateResult struct {
	Display         string  `json:"display"`
	Expression      string  `json:"expression"`
	ShowClearEntry  bool    `json:"show_clear_entry"`
	Memory          float64 `json:"memory"`
	Error           bool    `json:"error"`
	PendingOperator string  `json:"pending_operator,omitempty"`
	Message         string  `json:"message,omitempty"`
}

// NewStateResult creates a StateResult from a calculator snapshot
func NewStateResult(state calc.State) StateResult {
	result := StateResult{
		Display:        state.Display,
		Expression:     state.Expression,
		ShowClearEntry: state.ShowClearEntry,
		Memory:         state.Memory,
		Error:          state.Error,
	}
	if state.Pending.Valid() {
		result.PendingOperator = state.Pending.Key()
	}
	return result
}
