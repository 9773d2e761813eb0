package calculator

import (
	"io"
	"strings"

	"github.com/edwingeng/deque"
)

// Expr = num | Add | Sub | Mul | Div | Sign | Juxt | '(' Expr ')'
// Add = Expr '+' Expr
// Sub = Expr '-' Expr
// Mul = Expr '*' Expr | Expr '×' Expr
// Div = Expr '/' Expr | Expr '÷' Expr
// Sign = ('+' | '-') Expr, only at the start of an Expr; means 0 Sign Expr
// Juxt = Expr '(' Expr ')' | '(' Expr ')' num; means Expr * Expr

// Postfix is an expression in Reverse Polish notation. It contains only
// TokenNumber and TokenOperator tokens.
type Postfix []Token

// String formats the sequence with tokens separated by spaces, e.g. "3 4 2 * +".
func (p Postfix) String() string {
	var b strings.Builder
	for i, tok := range p {
		if i > 0 {
			b.WriteByte(' ')
		}
		b.WriteString(tok.Text)
	}
	return b.String()
}

// Expr is a parsed expression that can be evaluated any number of times.
type Expr struct {
	// post is the expression in postfix form.
	post Postfix
}

// Parse parses an expression from src up to EOF. The given options are applied
// in order.
func Parse(src io.RuneScanner, opts ...ParseOption) (*Expr, error) {
	var p parsectx
	for _, opt := range opts {
		p = opt.parseOption(p)
	}
	post, err := shunt(lex(src), &p)
	if err != nil {
		return nil, err
	}
	return &Expr{post: post}, nil
}

// ToPostfix converts an infix expression to postfix form.
func ToPostfix(expr string, opts ...ParseOption) (Postfix, error) {
	e, err := Parse(strings.NewReader(expr), opts...)
	if err != nil {
		return nil, err
	}
	return e.post, nil
}

// Postfix returns a copy of the expression in postfix form.
func (e *Expr) Postfix() Postfix {
	return append(Postfix(nil), e.post...)
}

// String formats the expression in postfix form.
func (e *Expr) String() string {
	return e.post.String()
}

// shunt converts the token stream to postfix form with the Shunting-Yard
// algorithm. Unless p is lenient, it also checks that operands and operators
// alternate and that parentheses balance.
func shunt(scan *lexer, p *parsectx) (Postfix, error) {
	ops := deque.NewDeque()
	var out Postfix
	// prev is the previous token. An operand is expected exactly when prev
	// is none, an open parenthesis, or an operator.
	var prev Token
	for {
		tok, err := scan.next()
		if err != nil {
			return nil, err
		}
		operand := prev.Kind == tokenNone || prev.Kind == TokenLeftParen || prev.Kind == TokenOperator
		switch tok.Kind {
		case TokenNumber:
			if !operand {
				// (2)3 -> (2)*3
				out = pushop(ops, out, implicitmul(tok))
			}
			out = append(out, tok)
		case TokenLeftParen:
			if !operand {
				// 2(3) -> 2*(3)
				out = pushop(ops, out, implicitmul(tok))
			}
			ops.PushBack(tok)
		case TokenRightParen:
			if operand && prev.Kind != tokenNone && !p.lenient {
				return nil, &EmptyExpressionError{Col: tok.Pos, End: tok.Text}
			}
			var open bool
			out, open = popparen(ops, out)
			if !open {
				if !p.lenient {
					return nil, &BracketError{Col: tok.Pos, Right: tok.Text}
				}
				// Everything before it is closed. With nothing before it,
				// there is no operand for a following term to multiply.
				if prev.Kind == tokenNone {
					continue
				}
			}
		case TokenOperator:
			if operand {
				switch {
				case (prev.Kind == tokenNone || prev.Kind == TokenLeftParen) && (tok.Op == OpAdd || tok.Op == OpSub):
					// -x -> 0-x
					out = append(out, Token{Kind: TokenNumber, Text: "0", Pos: tok.Pos})
				case !p.lenient:
					return nil, &OperatorError{Col: tok.Pos, Operator: tok.Op}
				}
			}
			out = pushop(ops, out, tok)
		case tokenEOF:
			if operand && !p.lenient {
				return nil, &EmptyExpressionError{Col: tok.Pos}
			}
			for ops.Len() > 0 {
				top := ops.PopBack().(Token)
				if top.Kind == TokenLeftParen {
					if !p.lenient {
						return nil, &BracketError{Col: top.Pos, Left: top.Text}
					}
					continue
				}
				out = append(out, top)
			}
			return out, nil
		default:
			panic("calculator: unknown token: " + tok.String())
		}
		prev = tok
	}
}

// pushop pushes an operator token, first moving to the output every operator
// on the stack that binds at least as tightly.
func pushop(ops deque.Deque, out Postfix, tok Token) Postfix {
	in := binop(tok.Op)
	for ops.Len() > 0 {
		top := ops.Back().(Token)
		if top.Kind != TokenOperator || in.moreBinding(binop(top.Op)) {
			break
		}
		out = append(out, ops.PopBack().(Token))
	}
	ops.PushBack(tok)
	return out
}

// popparen moves operators to the output until it pops an open parenthesis.
// The second result is false if the stack ran out first.
func popparen(ops deque.Deque, out Postfix) (Postfix, bool) {
	for ops.Len() > 0 {
		top := ops.PopBack().(Token)
		if top.Kind == TokenLeftParen {
			return out, true
		}
		out = append(out, top)
	}
	return out, false
}

// implicitmul creates the multiplication implied by juxtaposition at tok.
func implicitmul(tok Token) Token {
	return Token{Kind: TokenOperator, Op: OpMul, Text: OpMul.String(), Pos: tok.Pos}
}
