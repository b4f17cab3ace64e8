package types

import (
	"context"

	"github.com/averycrespi/calc-mcp/internal/calc"
)

// Sessions defines access to the calculator owned by the caller's session
type Sessions interface {
	// Do runs fn with exclusive access to the session's calculator
	Do(ctx context.Context, fn func(c *calc.Calculator) error) error
}
