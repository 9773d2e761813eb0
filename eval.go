package calculator

import (
	"math"
	"strconv"
	"strings"

	"github.com/edwingeng/deque"
)

// Sentinel is the text of a Result that failed.
const Sentinel = "NaN"

// Result is the outcome of evaluating an expression: either a value or the
// error that prevented one.
type Result struct {
	// Value is the result of the expression. It is NaN if Err is not nil.
	Value float64
	// Err is the reason evaluation failed.
	Err error
}

// OK returns whether evaluation succeeded.
func (r Result) OK() bool {
	return r.Err == nil
}

// Kind classifies the failure, if any.
func (r Result) Kind() ErrorKind {
	return KindOf(r.Err)
}

// String renders the value as a decimal number, or Sentinel if evaluation
// failed.
func (r Result) String() string {
	if r.Err != nil {
		return Sentinel
	}
	return FormatValue(r.Value)
}

// FormatValue renders a value in positional decimal notation with the fewest
// digits that represent it exactly. Infinities are "+Inf" and "-Inf".
func FormatValue(v float64) string {
	switch {
	case math.IsInf(v, 1):
		return "+Inf"
	case math.IsInf(v, -1):
		return "-Inf"
	case math.IsNaN(v):
		return Sentinel
	case v == 0:
		// Avoid printing -0.
		return "0"
	}
	return strconv.FormatFloat(v, 'f', -1, 64)
}

// evaluator holds the value stack for a single evaluation.
type evaluator struct {
	stack deque.Deque
	evalctx
}

// push pushes a value to the stack.
func (e *evaluator) push(v float64) {
	e.stack.PushBack(v)
}

// pop removes the top from the stack and returns it.
func (e *evaluator) pop() float64 {
	return e.stack.PopBack().(float64)
}

// run evaluates a postfix sequence.
func (e *evaluator) run(p Postfix) (float64, error) {
	for i, tok := range p {
		switch tok.Kind {
		case TokenNumber:
			e.push(tok.Value)
		case TokenOperator:
			if binop(tok.Op).prec == 0 || e.stack.Len() < 2 {
				return 0, &StackError{Index: i, Token: tok, Have: e.stack.Len()}
			}
			b := e.pop()
			a := e.pop()
			r, err := e.apply(tok, a, b)
			if err != nil {
				return 0, err
			}
			e.push(r)
		default:
			return 0, &StackError{Index: i, Token: tok, Have: e.stack.Len()}
		}
	}
	if e.stack.Len() != 1 {
		return 0, &StackError{Index: len(p), Have: e.stack.Len()}
	}
	return e.pop(), nil
}

// apply computes a op b for an operator token.
func (e *evaluator) apply(tok Token, a, b float64) (float64, error) {
	if tok.Op == OpDiv {
		// Guard against invalid divisions, 0/0 or inf/inf.
		if b == 0 && (a == 0 || e.strictdiv) || math.IsInf(a, 0) && math.IsInf(b, 0) {
			return 0, &DomainError{X: b, Func: tok.Op.String(), Col: tok.Pos}
		}
	}
	r := tok.Op.apply(a, b)
	if math.IsNaN(r) {
		// inf-inf, 0*inf, or a NaN operand.
		x := b
		if math.IsNaN(a) || math.IsInf(a, 0) && tok.Op == OpMul {
			x = a
		}
		return 0, &DomainError{X: x, Func: tok.Op.String(), Col: tok.Pos}
	}
	return r, nil
}

// EvaluatePostfix evaluates a postfix sequence. The sequence may come from
// ToPostfix or be built by hand; a sequence that does not reduce to exactly
// one value gives a StackError.
func EvaluatePostfix(p Postfix, opts ...EvalOption) (float64, error) {
	e := evaluator{stack: deque.NewDeque()}
	for _, opt := range opts {
		e.evalctx = opt.evalOption(e.evalctx)
	}
	return e.run(p)
}

// Eval evaluates the expression. It does not modify e, so it is safe to
// evaluate the same Expr concurrently.
func (e *Expr) Eval(opts ...EvalOption) (float64, error) {
	return EvaluatePostfix(e.post, opts...)
}

// EvalString is a shortcut to parse and evaluate a string expression. Options
// that apply to neither parsing nor evaluation are ignored.
func EvalString(expr string, opts ...Option) (float64, error) {
	po, eo := splitopts(opts)
	a, err := Parse(strings.NewReader(expr), po...)
	if err != nil {
		return math.NaN(), err
	}
	v, err := a.Eval(eo...)
	if err != nil {
		return math.NaN(), err
	}
	return v, nil
}

// Evaluate parses and evaluates an expression. Every failure, including a
// panic inside the evaluator, is reported in the Result.
func Evaluate(expr string, opts ...Option) (r Result) {
	defer func() {
		if x := recover(); x != nil {
			r = Result{Value: math.NaN(), Err: &PanicError{Value: x}}
		}
	}()
	v, err := EvalString(expr, opts...)
	return Result{Value: v, Err: err}
}
