// Package calc implements the calculator state machine: numeral entry,
// left-to-right operator chaining, repeated equals, unary functions, a memory
// register and a bounded history.
//
// A Calculator is not safe for concurrent use; callers serialise access.
package calc

import (
	"log/slog"
	"math"
	"strings"
	"time"

	"github.com/google/uuid"
)

const timestampLayout = "2006-01-02T15:04:05.000Z07:00"

type errorCause int

const (
	causeDivideByZero errorCause = iota
	causeDomain
	causeNonFinite
)

func (c errorCause) String() string {
	switch c {
	case causeDivideByZero:
		return "division by zero"
	case causeDomain:
		return "domain violation"
	default:
		return "non-finite result"
	}
}

// State is a point-in-time view of everything a front end renders
type State struct {
	Display        string
	Expression     string
	ShowClearEntry bool
	Memory         float64
	Error          bool
	Pending        Operator
}

// Calculator holds the state of a single calculator
type Calculator struct {
	current string
	stored  float64
	pending Operator
	waiting bool
	err     bool
	lastOp  Operator
	lastRHS float64
	hasLast bool
	memory  float64
	history *History

	format  *Formatter
	nowFunc NowFunc
	idFunc  IDFunc
	logger  *slog.Logger
}

// New creates a calculator showing "0" with empty memory and history
func New(options ...Option) *Calculator {
	c := &Calculator{
		history: NewHistory(DefaultHistoryCapacity),
		format:  NewFormatter(DefaultLocale),
		nowFunc: time.Now,
		idFunc:  uuid.NewString,
		logger:  slog.Default(),
	}

	for _, option := range options {
		option(c)
	}

	c.reset()
	return c
}

// reset restores every field except memory and history
func (c *Calculator) reset() {
	c.current = "0"
	c.stored = 0
	c.pending = OpNone
	c.waiting = false
	c.err = false
	c.lastOp = OpNone
	c.lastRHS = 0
	c.hasLast = false
}

// setCurrent is the only writer of current
func (c *Calculator) setCurrent(text string) {
	if text != ErrorText && !validNumeral(text) {
		c.logger.Debug("Rejected invalid numeral text", "text", text)
		text = "0"
	}
	c.current = text
}

func (c *Calculator) value() float64 {
	return parseNumeral(c.current)
}

// startOperand discards the current operand when a result is showing
func (c *Calculator) startOperand() {
	if c.err {
		c.reset()
	}
	if c.waiting {
		c.setCurrent("0")
		c.waiting = false
	}
}

func (c *Calculator) setError(cause errorCause) {
	c.logger.Debug("Calculator entered error state", "cause", cause.String(), "current", c.current)
	c.current = ErrorText
	c.err = true
	c.pending = OpNone
	c.waiting = false
}

// ClearAll resets the calculator, keeping memory and history
func (c *Calculator) ClearAll() {
	c.reset()
}

// ClearEntry resets the operand being entered
func (c *Calculator) ClearEntry() {
	if c.err {
		c.reset()
		return
	}
	c.setCurrent("0")
	c.waiting = false
}

// InputDigit appends a single decimal digit. Anything else is ignored.
func (c *Calculator) InputDigit(digit string) {
	if len(digit) != 1 || digit[0] < '0' || digit[0] > '9' {
		return
	}
	c.startOperand()

	switch c.current {
	case "0":
		c.setCurrent(digit)
	case "-0":
		c.setCurrent("-" + digit)
	default:
		c.setCurrent(c.current + digit)
	}
}

// InputDecimal adds a decimal point unless the operand already has one
func (c *Calculator) InputDecimal() {
	c.startOperand()

	if !strings.Contains(c.current, ".") {
		c.setCurrent(c.current + ".")
	}
}

// Backspace removes the last entered character
func (c *Calculator) Backspace() {
	if c.err {
		c.reset()
		return
	}

	if c.waiting {
		c.setCurrent("0")
		c.waiting = false
		return
	}

	if len(c.current) <= 1 || (len(c.current) == 2 && strings.HasPrefix(c.current, "-")) {
		c.setCurrent("0")
		return
	}

	c.setCurrent(c.current[:len(c.current)-1])
}

// ToggleSign flips the sign of the current operand
func (c *Calculator) ToggleSign() {
	if c.err || c.current == "0" || c.current == "0." {
		return
	}

	if rest, ok := strings.CutPrefix(c.current, "-"); ok {
		c.setCurrent(rest)
	} else {
		c.setCurrent("-" + c.current)
	}
}

// Percent divides the current operand by 100
func (c *Calculator) Percent() {
	if c.err {
		return
	}
	c.setCurrent(c.format.Raw(c.value() / 100))
	c.waiting = false
}

// SetOperator selects the operator applied to the next operand. A second
// operand already typed is first combined with the pending operator, so
// chains evaluate left to right.
func (c *Calculator) SetOperator(op Operator) {
	if c.err || !op.Valid() {
		return
	}

	if c.pending != OpNone && !c.waiting {
		if ok := c.Equals(); !ok {
			return
		}
	} else if c.pending == OpNone {
		c.stored = c.value()
	}

	c.pending = op
	c.waiting = true
}

// Equals completes the pending operation, or repeats the last one when a
// result is showing. It reports false when the calculation failed and the
// calculator entered the error state.
func (c *Calculator) Equals() bool {
	if c.err {
		return false
	}

	if c.pending != OpNone {
		lhs := c.stored
		rhs := c.value()
		if c.waiting {
			rhs = c.stored
		}

		out, ok := c.apply(lhs, rhs, c.pending)
		if !ok {
			return false
		}

		c.recordBinary(lhs, rhs, c.pending, out)
		c.lastOp = c.pending
		c.lastRHS = rhs
		c.hasLast = true
		c.pending = OpNone
		c.waiting = true
		return true
	}

	if c.waiting && c.hasLast {
		lhs := c.value()
		out, ok := c.apply(lhs, c.lastRHS, c.lastOp)
		if !ok {
			return false
		}

		c.recordBinary(lhs, c.lastRHS, c.lastOp, out)
		c.waiting = true
		return true
	}

	return true
}

func (c *Calculator) recordBinary(lhs, rhs float64, op Operator, out float64) {
	expression := c.format.Raw(lhs) + " " + op.Symbol() + " " + c.format.Raw(rhs)
	c.setCurrent(c.format.Raw(out))
	c.stored = out
	c.pushHistory(expression, out)
}

// apply computes lhs op rhs, entering the error state on failure
func (c *Calculator) apply(lhs, rhs float64, op Operator) (float64, bool) {
	var out float64

	switch op {
	case OpAdd:
		out = lhs + rhs
	case OpSub:
		out = lhs - rhs
	case OpMul:
		out = lhs * rhs
	case OpPow:
		out = math.Pow(lhs, rhs)
	case OpDiv:
		if math.Abs(rhs) < epsilon {
			c.setError(causeDivideByZero)
			return 0, false
		}
		out = lhs / rhs
	default:
		return 0, false
	}

	if !finite(out) {
		c.setError(causeNonFinite)
		return 0, false
	}
	return out, true
}

// ApplyUnary applies fn to the current operand. Trigonometric functions
// take degrees.
func (c *Calculator) ApplyUnary(fn Function) {
	if c.err || !fn.Valid() {
		return
	}

	value := c.value()
	out, ok := fn.evaluate(value)
	if !ok {
		c.setError(causeDomain)
		return
	}
	if !finite(out) {
		c.setError(causeNonFinite)
		return
	}

	expression := fn.String() + "(" + c.format.Raw(value) + ")"
	c.setCurrent(c.format.Raw(out))
	c.waiting = true
	c.pushHistory(expression, out)
}

// SetPi enters π as the current operand
func (c *Calculator) SetPi() {
	if c.err {
		c.reset()
	}
	c.setCurrent(c.format.Raw(math.Pi))
	c.waiting = false
}

// MemoryClear zeroes the memory register, even in the error state
func (c *Calculator) MemoryClear() {
	c.memory = 0
}

// MemoryStore copies the current operand into memory
func (c *Calculator) MemoryStore() {
	if c.err {
		return
	}
	c.memory = c.value()
}

// MemoryAdd adds the current operand to memory
func (c *Calculator) MemoryAdd() {
	if c.err {
		return
	}
	c.memory += c.value()
}

// MemorySubtract subtracts the current operand from memory
func (c *Calculator) MemorySubtract() {
	if c.err {
		return
	}
	c.memory -= c.value()
}

// MemoryRecall loads memory into the current operand
func (c *Calculator) MemoryRecall() {
	if c.err {
		c.reset()
	}
	c.setCurrent(c.format.Raw(c.memory))
	c.waiting = false
}

// Memory returns the memory register
func (c *Calculator) Memory() float64 {
	return c.memory
}

func (c *Calculator) pushHistory(expression string, result float64) {
	entry := Entry{
		ID:         c.idFunc(),
		Expression: expression,
		Result:     c.format.Display(normalize(result)),
		Value:      result,
		Timestamp:  c.nowFunc().UTC().Format(timestampLayout),
	}
	c.history.Push(entry)
	c.logger.Debug("Recorded history entry", "expression", expression, "result", entry.Result)
}

// History returns the recorded operations, newest first
func (c *Calculator) History() []Entry {
	return c.history.Entries()
}

// HistoryEntry looks up a history entry by ID
func (c *Calculator) HistoryEntry(id string) (Entry, bool) {
	return c.history.Find(id)
}

// ClearHistory removes every history entry
func (c *Calculator) ClearHistory() {
	c.history.Clear()
}

// SetFromHistory resumes computation from a past result
func (c *Calculator) SetFromHistory(value float64) {
	if c.err {
		c.reset()
	}
	c.setCurrent(c.format.Raw(value))
	c.waiting = false
}

// Display returns the text shown on the main display
func (c *Calculator) Display() string {
	if c.err {
		return ErrorText
	}
	return c.format.Entry(c.current)
}

// Expression returns the trace shown above the display
func (c *Calculator) Expression() string {
	switch {
	case c.err:
		return ""
	case c.pending != OpNone:
		return c.format.Display(c.stored) + " " + c.pending.Symbol()
	case c.hasLast && c.waiting:
		return c.lastOp.Symbol() + " " + c.format.Display(c.lastRHS)
	default:
		return ""
	}
}

// ShouldShowClearEntry reports whether a clear-entry key makes sense
func (c *Calculator) ShouldShowClearEntry() bool {
	return c.err || c.current != "0" || c.pending != OpNone
}

// Snapshot bundles every query into one value
func (c *Calculator) Snapshot() State {
	return State{
		Display:        c.Display(),
		Expression:     c.Expression(),
		ShowClearEntry: c.ShouldShowClearEntry(),
		Memory:         c.memory,
		Error:          c.err,
		Pending:        c.pending,
	}
}
