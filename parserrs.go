package calculator

import (
	"errors"
	"fmt"
	"strconv"
)

// ErrorKind classifies evaluation failures.
type ErrorKind int8

const (
	// KindNone is the kind of a nil error.
	KindNone ErrorKind = iota
	// KindMalformed is an expression that cannot be read as arithmetic:
	// invalid characters, unbalanced parentheses, missing operands.
	KindMalformed
	// KindArithmetic is an operation without a numeric result, like 0/0.
	KindArithmetic
	// KindFailure is any other failure during evaluation.
	KindFailure
)

func (k ErrorKind) String() string {
	switch k {
	case KindNone:
		return "none"
	case KindMalformed:
		return "malformed expression"
	case KindArithmetic:
		return "arithmetic anomaly"
	case KindFailure:
		return "evaluation failure"
	default:
		return "ErrorKind(" + strconv.Itoa(int(k)) + ")"
	}
}

// KindOf classifies an error returned from this package. Errors that don't
// come from this package are KindFailure.
func KindOf(err error) ErrorKind {
	if err == nil {
		return KindNone
	}
	var k interface{ ErrorKind() ErrorKind }
	if errors.As(err, &k) {
		return k.ErrorKind()
	}
	return KindFailure
}

// LexError indicates an invalid token. It implements InputError.
type LexError struct {
	// Text is the token the lexer was scanning when the invalid rune was
	// encountered, plus the invalid rune.
	Text string
	// Kind is the type of token the lexer was scanning. This is "number" or
	// the empty string (if a token kind hadn't been decided).
	Kind string
	// Col is the total number of runes scanned by the lexer up to and
	// including this error.
	Col int
}

func (err *LexError) Error() string {
	pos := "column " + strconv.Itoa(err.Col)
	if err.Kind == "" {
		return "invalid token at " + pos + ": " + err.Text
	}
	return "invalid " + err.Kind + " token at " + pos + ": " + err.Text
}

func (err *LexError) Pos() int {
	return err.Col
}

func (err *LexError) ErrorKind() ErrorKind {
	return KindMalformed
}

// OperatorError is an error indicating an operator where an operand is
// required, as in "*2" or "2*/3". It implements InputError.
type OperatorError struct {
	// Col is the position of the operator.
	Col int
	// Operator is the operator that was found.
	Operator Operator
}

func (err *OperatorError) Error() string {
	return errpos(err.Col, "expected operand before operator "+strconv.Quote(err.Operator.String()))
}

func (err *OperatorError) Pos() int {
	return err.Col
}

func (err *OperatorError) ErrorKind() ErrorKind {
	return KindMalformed
}

// BracketError is an error indicating mismatched parentheses in the input. It
// implements InputError.
type BracketError struct {
	// Col is the position of the unmatched parenthesis.
	Col int
	// Left is the opening parenthesis, if it is the unmatched one.
	Left string
	// Right is the closing parenthesis, if it is the unmatched one.
	Right string
}

func (err *BracketError) Error() string {
	if err.Left == "" {
		return errpos(err.Col, "close bracket "+err.Right+" with no open bracket")
	}
	return errpos(err.Col, "open bracket "+err.Left+" with no close bracket")
}

func (err *BracketError) Pos() int {
	return err.Col
}

func (err *BracketError) ErrorKind() ErrorKind {
	return KindMalformed
}

// EmptyExpressionError is an error indicating an empty expression or
// subexpression, including a missing operand at the end like "5+". It
// implements InputError.
type EmptyExpressionError struct {
	// Col is the position of the token that ended the subexpression.
	Col int
	// End is the token that ended the subexpression, or the empty string at
	// the end of the input.
	End string
}

func (err *EmptyExpressionError) Error() string {
	if err.End == "" {
		if err.Col <= 1 {
			return errpos(err.Col, "no expression")
		}
		return errpos(err.Col, "no expression at end")
	}
	return errpos(err.Col, "no expression up to "+strconv.Quote(err.End))
}

func (err *EmptyExpressionError) Pos() int {
	return err.Col
}

func (err *EmptyExpressionError) ErrorKind() ErrorKind {
	return KindMalformed
}

// StackError is an error from evaluating a postfix sequence that does not
// describe a single value: an operator with too few operands, a parenthesis,
// or more than one value left at the end.
type StackError struct {
	// Index is the index in the postfix sequence of the token that could not
	// be evaluated, or the length of the sequence for leftover values.
	Index int
	// Token is the token that could not be evaluated. It is the zero Token
	// for leftover values.
	Token Token
	// Have is the number of values on the stack.
	Have int
}

func (err *StackError) Error() string {
	switch {
	case err.Token.Kind == TokenOperator && binop(err.Token.Op).prec != 0:
		return "operator " + strconv.Quote(err.Token.Text) + " at index " + strconv.Itoa(err.Index) +
			" needs 2 operands, have " + strconv.Itoa(err.Have)
	case err.Token.Kind == tokenNone:
		return "expression leaves " + strconv.Itoa(err.Have) + " values instead of 1"
	default:
		return "cannot evaluate " + err.Token.Kind.String() + " token " +
			strconv.Quote(err.Token.Text) + " at index " + strconv.Itoa(err.Index)
	}
}

func (err *StackError) ErrorKind() ErrorKind {
	return KindMalformed
}

// DomainError is an error returned when an operator is applied to operands
// without a numeric result, e.g. 0/0. It implements InputError when the
// operator has a source position.
type DomainError struct {
	// X is the out-of-domain operand.
	X float64
	// Func is the operator.
	Func string
	// Col is the position of the operator, or 0 if unknown.
	Col int
}

func (err *DomainError) Error() string {
	r := strconv.FormatFloat(err.X, 'g', -1, 64) + " outside domain"
	if err.Func != "" {
		r += " of " + err.Func
	}
	if err.Col > 0 {
		return errpos(err.Col, r)
	}
	return r
}

func (err *DomainError) Pos() int {
	return err.Col
}

func (err *DomainError) ErrorKind() ErrorKind {
	return KindArithmetic
}

// PanicError is an unexpected failure recovered during evaluation.
type PanicError struct {
	// Value is the recovered value.
	Value interface{}
}

func (err *PanicError) Error() string {
	return fmt.Sprintf("evaluation failed: %v", err.Value)
}

func (err *PanicError) Unwrap() error {
	e, _ := err.Value.(error)
	return e
}

func (err *PanicError) ErrorKind() ErrorKind {
	return KindFailure
}

// errpos is a shortcut to create an error message with a position.
func errpos(pos int, msg string) string {
	return strconv.Itoa(pos) + ": " + msg
}

// InputError is an error with position information. Every error resulting from
// invalid input implements InputError.
type InputError interface {
	error
	// Pos returns the position of the error as the number of runes up to and
	// including the start of the token that caused the error.
	Pos() int
}

var (
	_ InputError = (*OperatorError)(nil)
	_ InputError = (*BracketError)(nil)
	_ InputError = (*EmptyExpressionError)(nil)
	_ InputError = (*LexError)(nil)
	_ InputError = (*DomainError)(nil)
)
