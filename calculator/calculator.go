// Package calculator implements stateless arithmetic with validated operands.
package calculator

import (
	"math"

	"github.com/fastygo/valueops/domain"
)

// Operator names an arithmetic operation accepted by Apply.
type Operator string

const (
	OpAdd      Operator = "add"
	OpSubtract Operator = "subtract"
	OpMultiply Operator = "multiply"
	OpDivide   Operator = "divide"
	OpPower    Operator = "power"
)

// Operators lists every operator in a stable order.
var Operators = []Operator{OpAdd, OpSubtract, OpMultiply, OpDivide, OpPower}

// Calculator holds no state; the zero value is ready to use.
type Calculator struct{}

func New() Calculator {
	return Calculator{}
}

func (Calculator) Add(a, b float64) float64 {
	return a + b
}

// Subtract returns a-b.
func (Calculator) Subtract(a, b float64) float64 {
	return a - b
}

func (Calculator) Multiply(a, b float64) float64 {
	return a * b
}

// Divide returns a/b, failing with domain.ErrDivisionByZero when b is zero.
func (Calculator) Divide(a, b float64) (float64, error) {
	if b == 0 {
		return 0, domain.ErrDivisionByZero
	}
	return a / b, nil
}

// Power returns base**exponent with math.Pow semantics, so Power(0, 0) == 1.
func (Calculator) Power(base, exponent float64) float64 {
	return math.Pow(base, exponent)
}

// Apply runs op on dynamically typed operands. Both operands are checked
// before anything else; a non-numeric operand fails with
// domain.ErrNotNumbers regardless of op.
func (c Calculator) Apply(op Operator, a, b any) (float64, error) {
	x, y, err := domain.RequireNumbers(a, b, domain.ErrNotNumbers)
	if err != nil {
		return 0, err
	}
	switch op {
	case OpAdd:
		return c.Add(x, y), nil
	case OpSubtract:
		return c.Subtract(x, y), nil
	case OpMultiply:
		return c.Multiply(x, y), nil
	case OpDivide:
		return c.Divide(x, y)
	case OpPower:
		return c.Power(x, y), nil
	default:
		return 0, domain.ErrUnknownOperator
	}
}
