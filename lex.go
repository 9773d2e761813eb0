package calculator

import (
	"errors"
	"io"
	"strconv"
	"strings"
	"unicode"
)

// Token is a lexical token of an expression.
type Token struct {
	// Kind is the kind of the token.
	Kind TokenKind
	// Op is the operator for TokenOperator tokens.
	Op Operator
	// Value is the parsed value of TokenNumber tokens.
	Value float64
	// Text is the source text of the token, with any whitespace removed.
	Text string
	// Pos is the 1-based rune column at which the token starts.
	Pos int
}

func (t Token) String() string {
	return t.Kind.String() + ":" + t.Text + "@" + strconv.Itoa(t.Pos)
}

// TokenKind is the kind of a Token.
type TokenKind int8

const (
	tokenNone TokenKind = iota
	// tokenEOF indicates the end of the input.
	tokenEOF
	// TokenNumber is a decimal number.
	TokenNumber
	// TokenOperator is one of the binary operators.
	TokenOperator
	// TokenLeftParen is an open parenthesis.
	TokenLeftParen
	// TokenRightParen is a close parenthesis.
	TokenRightParen
)

func (k TokenKind) String() string {
	switch k {
	case tokenNone:
		return "None"
	case tokenEOF:
		return "EOF"
	case TokenNumber:
		return "Number"
	case TokenOperator:
		return "Operator"
	case TokenLeftParen:
		return "LeftParen"
	case TokenRightParen:
		return "RightParen"
	default:
		return "TokenKind(" + strconv.Itoa(int(k)) + ")"
	}
}

// Operators contains the runes which are considered to be operators. × and ÷
// are the same operators as * and /.
const Operators = "+-*/×÷"

type lexer struct {
	src  io.RuneScanner
	buf  strings.Builder
	rune int
	eof  bool
}

func lex(src io.RuneScanner) *lexer {
	return &lexer{
		src:  src,
		rune: 1,
	}
}

// readRune reads a rune from the src and updates the lexer's position info.
func (l *lexer) readRune() (r rune, err error) {
	r, sz, err := l.src.ReadRune()
	if sz > 0 {
		l.rune++
	}
	return r, err
}

// unreadRune unreads a rune from the src and updates the lexer's position
// info. Panics if unreading returns an error.
func (l *lexer) unreadRune() {
	if err := l.src.UnreadRune(); err != nil {
		panic(err)
	}
	l.rune--
}

// next scans the next token from the input. The first time EOF is encountered,
// the result is an EOF token with a nil error. Subsequent times, the result is
// an empty token with io.EOF.
func (l *lexer) next() (Token, error) {
	if l.eof {
		return Token{}, io.EOF
	}
	defer l.buf.Reset()
	tok := Token{Pos: l.rune}
	for {
		r, err := l.readRune()
		if err != nil {
			if errors.Is(err, io.EOF) {
				tok.Kind = tokenEOF
				l.eof = true
				return tok, nil
			}
			return tok, err
		}
		switch {
		case unicode.IsSpace(r):
			tok.Pos++
			continue
		case '0' <= r && r <= '9', r == '.':
			l.unreadRune()
			if err := l.scanNum(); err != nil {
				return tok, err
			}
			tok.Text = l.buf.String()
			tok.Kind = TokenNumber
			tok.Value = parseNum(tok.Text)
			return tok, nil
		case r == '(':
			tok.Text = "("
			tok.Kind = TokenLeftParen
			return tok, nil
		case r == ')':
			tok.Text = ")"
			tok.Kind = TokenRightParen
			return tok, nil
		default:
			if op, ok := operatorRune(r); ok {
				tok.Text = op.String()
				tok.Kind = TokenOperator
				tok.Op = op
				return tok, nil
			}
			// Write the rune so that it shows up in the error message.
			l.buf.WriteRune(r)
			return tok, l.error("")
		}
	}
}

// scanNum scans a run of digits and decimal points. Whitespace inside the run
// is dropped, so "1 000" scans as 1000.
func (l *lexer) scanNum() error {
	var dig, dot bool
	for {
		r, err := l.readRune()
		if err != nil {
			if errors.Is(err, io.EOF) {
				break
			}
			return err
		}
		if unicode.IsSpace(r) {
			continue
		}
		if r != '.' && (r < '0' || '9' < r) {
			l.unreadRune()
			break
		}
		l.buf.WriteRune(r)
		if r == '.' {
			if dot {
				return l.error("number")
			}
			dot = true
			continue
		}
		dig = true
	}
	if !dig {
		return l.error("number")
	}
	return nil
}

// parseNum parses the text of a scanned number. Numbers too large for a
// float64 become +Inf.
func parseNum(s string) float64 {
	v, err := strconv.ParseFloat(s, 64)
	switch {
	case err == nil: // do nothing
	case errors.Is(err, strconv.ErrRange):
		// ParseFloat already gives the right infinity or zero.
	default:
		panic("calculator: invalid number: " + s + " (" + err.Error() + ")")
	}
	return v
}

func (l *lexer) error(kind string) error {
	return &LexError{
		Text: l.buf.String(),
		Kind: kind,
		Col:  l.rune - 1,
	}
}

// Tokenize scans an entire expression into tokens. Whitespace is skipped. The
// result is the tokens up to the first invalid one, along with the error
// describing it.
func Tokenize(expr string) ([]Token, error) {
	scan := lex(strings.NewReader(expr))
	var toks []Token
	for {
		tok, err := scan.next()
		if err != nil {
			return toks, err
		}
		if tok.Kind == tokenEOF {
			return toks, nil
		}
		toks = append(toks, tok)
	}
}
