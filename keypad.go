package calculator

import (
	"strconv"
	"strings"
)

// Key is a key on a calculator keypad. Digit, decimal point, operator and
// parenthesis keys are the runes they type.
type Key rune

const (
	KeyDecimal Key = '.'
	KeyAdd     Key = '+'
	KeySub     Key = '-'
	KeyMul     Key = '*'
	KeyDiv     Key = '/'
	KeyOpen    Key = '('
	KeyClose   Key = ')'
	KeyEquals  Key = '='
	// KeyClear resets the buffer to 0.
	KeyClear Key = 'C'
	// KeyDelete removes the last character of the buffer.
	KeyDelete Key = '\b'
)

func (k Key) String() string {
	switch k {
	case KeyDelete:
		return "DEL"
	case KeyClear:
		return "C"
	default:
		return string(rune(k))
	}
}

func (k Key) digit() bool {
	return '0' <= k && k <= '9'
}

func (k Key) operator() bool {
	return k == KeyAdd || k == KeySub || k == KeyMul || k == KeyDiv
}

// ParseKey gets the key named by s. Keys that type a character are named by
// that character; × and ÷ name the multiplication and division keys. The
// clear key is "C" or "AC" and the delete key is "DEL", in any case.
func ParseKey(s string) (Key, error) {
	switch strings.ToUpper(s) {
	case "C", "AC":
		return KeyClear, nil
	case "DEL":
		return KeyDelete, nil
	case "×":
		return KeyMul, nil
	case "÷":
		return KeyDiv, nil
	}
	if len(s) == 1 {
		k := Key(s[0])
		switch {
		case k.digit(), k.operator():
			return k, nil
		case k == KeyDecimal, k == KeyOpen, k == KeyClose, k == KeyEquals:
			return k, nil
		}
	}
	return 0, &KeyError{Name: s}
}

// KeyError is an error indicating a name that is not a key.
type KeyError struct {
	// Name is the name that was not understood.
	Name string
}

func (err *KeyError) Error() string {
	return "unknown key " + strconv.Quote(err.Name)
}

// Keypad is the input buffer of a pocket calculator. It collects keystrokes
// into an expression and evaluates it when = is pressed. The zero Keypad shows
// 0 and uses no options. It is not safe to use a Keypad concurrently.
type Keypad struct {
	buf  string
	last Result
	opts []Option
}

// NewKeypad creates a keypad showing 0. The options are used each time the
// buffer is evaluated.
func NewKeypad(opts ...Option) *Keypad {
	return &Keypad{buf: "0", opts: opts}
}

// Value returns the current contents of the buffer.
func (k *Keypad) Value() string {
	if k.buf == "" {
		return "0"
	}
	return k.buf
}

// Result returns the result of the last evaluation. It is the zero Result if
// = has not been pressed since the keypad was created or cleared.
func (k *Keypad) Result() Result {
	return k.last
}

// PressAll presses each key in order and returns the final buffer.
func (k *Keypad) PressAll(keys ...Key) string {
	for _, key := range keys {
		k.Press(key)
	}
	return k.Value()
}

// Press handles one keystroke and returns the new buffer. Keystrokes that
// would make the buffer unreadable, like two operators in a row, replace the
// previous character or are ignored.
func (k *Keypad) Press(key Key) string {
	if k.buf == "" {
		k.buf = "0"
	}
	last := Key(k.buf[len(k.buf)-1])
	switch {
	case key.digit():
		if k.buf == "0" || k.failed() {
			k.buf = key.String()
		} else {
			k.buf += key.String()
		}
	case key.operator():
		switch {
		case k.failed():
			// ignore
		case last.operator():
			rest := k.buf[:len(k.buf)-1]
			if strings.HasSuffix(rest, "(") && (key == KeyMul || key == KeyDiv) {
				// Only a sign may follow (.
				break
			}
			k.buf = rest + key.String()
		case last == KeyOpen && (key == KeyMul || key == KeyDiv):
			// ignore
		default:
			k.buf += key.String()
		}
	case key == KeyDecimal:
		if k.failed() || last == KeyDecimal || last == KeyOpen || last == KeyClose || last.operator() || strings.Contains(k.number(), ".") {
			break
		}
		k.buf += key.String()
	case key == KeyOpen:
		if k.buf == "0" || k.failed() {
			k.buf = key.String()
		} else {
			k.buf += key.String()
		}
	case key == KeyClose:
		if k.failed() || last.operator() || last == KeyOpen {
			break
		}
		if strings.Count(k.buf, "(") > strings.Count(k.buf, ")") {
			k.buf += key.String()
		}
	case key == KeyEquals:
		if k.failed() || last.operator() {
			break
		}
		k.last = Evaluate(k.buf, k.opts...)
		k.buf = k.last.String()
	case key == KeyClear:
		k.buf = "0"
		k.last = Result{}
	case key == KeyDelete:
		switch {
		case k.failed(), len(k.buf) <= 1:
			k.buf = "0"
		default:
			k.buf = k.buf[:len(k.buf)-1]
		}
	}
	return k.buf
}

// failed returns whether the buffer shows a result that cannot be edited:
// a failure or an infinity.
func (k *Keypad) failed() bool {
	return k.buf == Sentinel || strings.HasSuffix(k.buf, "Inf")
}

// number returns the number at the end of the buffer.
func (k *Keypad) number() string {
	i := strings.LastIndexAny(k.buf, "+-*/()")
	return k.buf[i+1:]
}
