// Package keys maps keyboard keys onto calculator operations.
package keys

import (
	"strings"

	"github.com/averycrespi/calc-mcp/internal/calc"
)

// Named keys, matching browser KeyboardEvent.key values
const (
	KeyEnter     = "Enter"
	KeyBackspace = "Backspace"
	KeyEscape    = "Escape"
)

// Press applies a single key to c. It reports false for unmapped keys.
func Press(c *calc.Calculator, key string) bool {
	switch key {
	case "0", "1", "2", "3", "4", "5", "6", "7", "8", "9":
		c.InputDigit(key)
	case ".":
		c.InputDecimal()
	case "=", KeyEnter:
		c.Equals()
	case "%":
		c.Percent()
	case KeyBackspace:
		c.Backspace()
	case KeyEscape:
		c.ClearEntry()
	case "c", "C":
		c.ClearAll()
	case "n", "N":
		c.ToggleSign()
	case "p", "P":
		c.SetPi()
	default:
		op, ok := calc.ParseOperator(key)
		if !ok {
			return false
		}
		c.SetOperator(op)
	}
	return true
}

// PressSequence applies every rune of seq as a key, skipping whitespace.
// Unmapped keys are returned in order.
func PressSequence(c *calc.Calculator, seq string) []string {
	var unknown []string
	for _, r := range seq {
		key := string(r)
		if strings.TrimSpace(key) == "" {
			continue
		}
		if !Press(c, key) {
			unknown = append(unknown, key)
		}
	}
	return unknown
}
