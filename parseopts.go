package calculator

// Option is an option for parsing, evaluation, or both. Evaluate and Keypad
// accept any Option; Parse only uses ParseOptions and EvaluatePostfix only
// uses EvalOptions.
type Option interface {
	option()
}

// ParseOption is an option for parsing.
type ParseOption interface {
	Option
	parseOption(parsectx) parsectx
}

// EvalOption is an option for evaluating postfix sequences.
type EvalOption interface {
	Option
	evalOption(evalctx) evalctx
}

// parsectx holds general data for parsing.
type parsectx struct {
	// lenient disables checks for unbalanced parentheses and missing
	// operands.
	lenient bool
}

// evalctx holds evaluation settings.
type evalctx struct {
	// strictdiv makes every division by zero a DomainError.
	strictdiv bool
}

type (
	lenientopt   struct{}
	strictdivopt struct{}
)

func (lenientopt) option()   {}
func (strictdivopt) option() {}

// Lenient tells the parser to tolerate unbalanced parentheses the way a
// forgiving calculator does. A close parenthesis without a matching open one
// closes everything before it, as if an open parenthesis began the input, so
// "3+4)*2" and "3+4)2" are both 14. Open parentheses still unclosed at the
// end of the input are dropped, so "(3+4" is 7. Operators are also accepted where an operand is
// expected; such expressions fail during evaluation with a StackError rather
// than during parsing.
func Lenient() ParseOption {
	return lenientopt{}
}

func (lenientopt) parseOption(p parsectx) parsectx {
	p.lenient = true
	return p
}

// StrictDivision makes every division by zero an error. By default, x/0 for
// nonzero x is an infinity, and only 0/0 is an error.
func StrictDivision() EvalOption {
	return strictdivopt{}
}

func (strictdivopt) evalOption(c evalctx) evalctx {
	c.strictdiv = true
	return c
}

// splitopts separates parse and evaluation options.
func splitopts(opts []Option) ([]ParseOption, []EvalOption) {
	var po []ParseOption
	var eo []EvalOption
	for _, opt := range opts {
		if o, ok := opt.(ParseOption); ok {
			po = append(po, o)
		}
		if o, ok := opt.(EvalOption); ok {
			eo = append(eo, o)
		}
	}
	return po, eo
}
