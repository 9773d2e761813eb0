package calculator

import "strconv"

// Operator is one of the four binary arithmetic operators.
type Operator byte

const (
	OpAdd Operator = '+'
	OpSub Operator = '-'
	OpMul Operator = '*'
	OpDiv Operator = '/'
)

func (op Operator) String() string {
	switch op {
	case OpAdd, OpSub, OpMul, OpDiv:
		return string(rune(op))
	default:
		return "Operator(" + strconv.Itoa(int(op)) + ")"
	}
}

// Precedence returns the binding strength of the operator. Higher binds
// tighter. The result is 0 for invalid operators.
func (op Operator) Precedence() int {
	return int(binop(op).prec)
}

// operatorRune gets the operator for a rune from Operators.
func operatorRune(r rune) (Operator, bool) {
	switch r {
	case '+':
		return OpAdd, true
	case '-':
		return OpSub, true
	case '*', '×':
		return OpMul, true
	case '/', '÷':
		return OpDiv, true
	default:
		return 0, false
	}
}

type operator struct {
	// prec is the precedence value. Higher is more binding.
	prec int8
	// right indicates right-associativity.
	right bool
	// op is the operator this precedence describes.
	op Operator
}

// moreBinding reports whether an incoming operator p binds more tightly than
// than, the operator already on the stack, i.e. whether than must stay on the
// stack when p arrives.
func (p operator) moreBinding(than operator) bool {
	if p.prec != than.prec {
		return p.prec > than.prec
	}
	return p.right
}

// binop gets the precedence of a binary operator. If there is no such
// operator, then the result has a prec of 0.
func binop(op Operator) operator {
	switch op {
	case OpAdd, OpSub:
		return operator{1, false, op}
	case OpMul, OpDiv:
		return operator{2, false, op}
	default:
		return operator{}
	}
}

// apply computes a op b.
func (op Operator) apply(a, b float64) float64 {
	switch op {
	case OpAdd:
		return a + b
	case OpSub:
		return a - b
	case OpMul:
		return a * b
	case OpDiv:
		return a / b
	default:
		panic("calculator: invalid operator " + op.String())
	}
}
