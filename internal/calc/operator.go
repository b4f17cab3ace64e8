package calc

import (
	"math"
	"strings"
)

// Operator is a binary operator awaiting or applied to two operands
type Operator int

const (
	OpNone Operator = iota
	OpAdd
	OpSub
	OpMul
	OpDiv
	OpPow
)

// ParseOperator converts an operator key or glyph to an Operator
func ParseOperator(s string) (Operator, bool) {
	switch strings.TrimSpace(s) {
	case "+":
		return OpAdd, true
	case "-", "−":
		return OpSub, true
	case "*", "×", "x", "X":
		return OpMul, true
	case "/", "÷":
		return OpDiv, true
	case "^":
		return OpPow, true
	default:
		return OpNone, false
	}
}

// Valid reports whether op is one of the five binary operators
func (op Operator) Valid() bool {
	return op >= OpAdd && op <= OpPow
}

// Symbol returns the symbol used in expressions and history records
func (op Operator) Symbol() string {
	switch op {
	case OpAdd:
		return "+"
	case OpSub:
		return "-"
	case OpMul:
		return "x"
	case OpDiv:
		return "÷"
	case OpPow:
		return "^"
	default:
		return ""
	}
}

// Key returns the ASCII key that selects the operator
func (op Operator) Key() string {
	switch op {
	case OpAdd:
		return "+"
	case OpSub:
		return "-"
	case OpMul:
		return "*"
	case OpDiv:
		return "/"
	case OpPow:
		return "^"
	default:
		return ""
	}
}

func (op Operator) String() string {
	if op == OpNone {
		return "none"
	}
	return op.Symbol()
}

// Function is a unary function applied to the current operand
type Function int

const (
	FnSqrt Function = iota
	FnSin
	FnCos
	FnTan
	FnLn
	FnLog
	FnInv
)

var functionNames = [...]string{
	FnSqrt: "sqrt",
	FnSin:  "sin",
	FnCos:  "cos",
	FnTan:  "tan",
	FnLn:   "ln",
	FnLog:  "log",
	FnInv:  "inv",
}

// Functions lists every unary function in declaration order
func Functions() []Function {
	return []Function{FnSqrt, FnSin, FnCos, FnTan, FnLn, FnLog, FnInv}
}

// ParseFunction converts a function name to a Function
func ParseFunction(name string) (Function, bool) {
	name = strings.ToLower(strings.TrimSpace(name))
	for fn, n := range functionNames {
		if n == name {
			return Function(fn), true
		}
	}
	return 0, false
}

// Valid reports whether fn is a known unary function
func (fn Function) Valid() bool {
	return fn >= FnSqrt && fn <= FnInv
}

func (fn Function) String() string {
	if !fn.Valid() {
		return "unknown"
	}
	return functionNames[fn]
}

// evaluate applies fn to value. A false result means a domain violation.
func (fn Function) evaluate(value float64) (float64, bool) {
	switch fn {
	case FnSqrt:
		if value < 0 {
			return 0, false
		}
		return math.Sqrt(value), true
	case FnSin:
		return math.Sin(toRadians(value)), true
	case FnCos:
		return math.Cos(toRadians(value)), true
	case FnTan:
		return math.Tan(toRadians(value)), true
	case FnLn:
		if value <= 0 {
			return 0, false
		}
		return math.Log(value), true
	case FnLog:
		if value <= 0 {
			return 0, false
		}
		return math.Log10(value), true
	case FnInv:
		if math.Abs(value) < epsilon {
			return 0, false
		}
		return 1 / value, true
	default:
		return 0, false
	}
}

func toRadians(degrees float64) float64 {
	return degrees * math.Pi / 180
}
