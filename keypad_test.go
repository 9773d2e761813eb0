package calculator_test

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/zephyrtronium/calculator"
)

// keys converts a string to keystrokes one rune at a time. C is the clear key
// and \b is delete.
func keys(s string) []calculator.Key {
	var r []calculator.Key
	for _, c := range s {
		r = append(r, calculator.Key(c))
	}
	return r
}

func TestKeypad(t *testing.T) {
	cases := []struct {
		name string
		in   string
		want string
	}{
		{"initial", "", "0"},
		{"replace-zero", "5", "5"},
		{"zeros", "00", "0"},
		{"digits", "120", "120"},
		{"sum", "12+3=", "15"},
		{"prec", "3+4*2=", "11"},
		{"parens", "(3+4)*2=", "14"},
		{"left-assoc", "8-3+2=", "7"},
		{"decimal", "2.5*4=", "10"},
		{"juxt", "2(3)=", "6"},
		{"replace-op", "1+*", "1*"},
		{"replace-op-eval", "1+-2=", "-1"},
		{"op-on-zero", "+", "0+"},
		{"paren-mul", "(*", "("},
		{"paren-sub", "(-", "(-"},
		{"paren-sign-mul", "(-*", "(-"},
		{"paren-sign-div-eval", "(-/5)=", "-5"},
		{"paren-sign-add", "(-+5)=", "5"},
		{"dots", "1.2.3", "1.23"},
		{"dot-after-op", "1+.", "1+"},
		{"dot-after-paren", "(1).", "(1)"},
		{"dot-after-open", "(.)", "("},
		{"dot-after-open-eval", "(.5)=", "5"},
		{"trailing-dot", "1.+2=", "3"},
		{"close-nothing", ")", "0"},
		{"close-after-op", "(1+)", "(1+"},
		{"close-extra", "(1))", "(1)"},
		{"eq-after-op", "1+=", "1+"},
		{"eq-zero", "=", "0"},
		{"unclosed", "(3+4=", calculator.Sentinel},
		{"div-zero", "1/0=", "+Inf"},
		{"inf-op", "1/0=+", "+Inf"},
		{"inf-digit", "1/0=5", "5"},
		{"undefined", "0/0=", calculator.Sentinel},
		{"nan-op", "0/0=*.)=", calculator.Sentinel},
		{"nan-paren", "0/0=(", "("},
		{"nan-del", "0/0=\b", "0"},
		{"del", "12\b", "1"},
		{"del-last", "1\b", "0"},
		{"del-op", "1+\b", "1"},
		{"clear", "12+3C", "0"},
		{"negative", "5-8=*2=", "-6"},
		{"continue", "1/4=+1=", "1.25"},
		{"repeat-dot", "1/3=.", "0.3333333333333333"},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			k := calculator.NewKeypad()
			assert.Equal(t, c.want, k.PressAll(keys(c.in)...))
			assert.Equal(t, c.want, k.Value())
		})
	}
}

func TestKeypadResult(t *testing.T) {
	k := calculator.NewKeypad()
	assert.Equal(t, calculator.Result{}, k.Result())
	k.PressAll(keys("1+1=")...)
	r := k.Result()
	require.True(t, r.OK())
	assert.Equal(t, 2.0, r.Value)

	k.PressAll(keys("*0/0=")...)
	r = k.Result()
	assert.Equal(t, calculator.KindArithmetic, r.Kind())
	var derr *calculator.DomainError
	assert.ErrorAs(t, r.Err, &derr)

	k.Press(calculator.KeyClear)
	assert.Equal(t, calculator.Result{}, k.Result())
	assert.Equal(t, "0", k.Value())
}

func TestKeypadZero(t *testing.T) {
	var k calculator.Keypad
	assert.Equal(t, "0", k.Value())
	assert.Equal(t, "1", k.Press('1'))
	assert.Equal(t, "3", k.PressAll(keys("+2=")...))

	var d calculator.Keypad
	assert.Equal(t, "0", d.Press(calculator.KeyDelete))
}

func TestKeypadOptions(t *testing.T) {
	k := calculator.NewKeypad(calculator.Lenient())
	assert.Equal(t, "7", k.PressAll(keys("(3+4=")...))

	k = calculator.NewKeypad(calculator.StrictDivision())
	assert.Equal(t, calculator.Sentinel, k.PressAll(keys("1/0=")...))
	assert.Equal(t, calculator.KindArithmetic, k.Result().Kind())
}

func TestParseKey(t *testing.T) {
	cases := []struct {
		name string
		want calculator.Key
	}{
		{"0", '0'},
		{"9", '9'},
		{".", calculator.KeyDecimal},
		{"+", calculator.KeyAdd},
		{"-", calculator.KeySub},
		{"*", calculator.KeyMul},
		{"×", calculator.KeyMul},
		{"/", calculator.KeyDiv},
		{"÷", calculator.KeyDiv},
		{"(", calculator.KeyOpen},
		{")", calculator.KeyClose},
		{"=", calculator.KeyEquals},
		{"C", calculator.KeyClear},
		{"c", calculator.KeyClear},
		{"AC", calculator.KeyClear},
		{"del", calculator.KeyDelete},
		{"DEL", calculator.KeyDelete},
	}
	for _, c := range cases {
		k, err := calculator.ParseKey(c.name)
		if assert.NoError(t, err, c.name) {
			assert.Equal(t, c.want, k, c.name)
		}
	}

	for _, name := range []string{"", "12", "x", "^", "%", "enter"} {
		_, err := calculator.ParseKey(name)
		var kerr *calculator.KeyError
		if assert.ErrorAs(t, err, &kerr, name) {
			assert.Equal(t, name, kerr.Name)
		}
	}
}

func TestKeyString(t *testing.T) {
	assert.Equal(t, "DEL", calculator.KeyDelete.String())
	assert.Equal(t, "C", calculator.KeyClear.String())
	assert.Equal(t, "7", calculator.Key('7').String())
	assert.Equal(t, "=", calculator.KeyEquals.String())
}

func ExampleKeypad() {
	k := calculator.NewKeypad()
	for _, key := range []calculator.Key{'1', '2', calculator.KeyAdd, calculator.KeyMul, '3', calculator.KeyEquals} {
		fmt.Printf("%-3v %s\n", key, k.Press(key))
	}

	// Output:
	// 1   1
	// 2   12
	// +   12+
	// *   12*
	// 3   12*3
	// =   36
}
