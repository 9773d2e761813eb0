// Package calculator implements the evaluation engine behind a keypad
// calculator.
//
// Expressions use the four binary operators + - * /, decimal numbers and
// parentheses. "3+4*2" is 11, "(3+4)*2" is 14, and "8-3+2" is 7. A sign at
// the start of an expression or right after an open parenthesis applies to
// an implicit zero, so "-3+5" is 2. A number or parenthesized term directly
// followed by another parenthesized term is a multiplication: "2(3)" is 6.
//
// Evaluation happens in two steps. ToPostfix converts the infix expression
// to Reverse Polish form with the Shunting-Yard algorithm, and
// EvaluatePostfix runs the postfix sequence on a value stack. Evaluate does
// both and reports any failure in its Result, which renders as "NaN" when
// evaluation failed. None of the functions retain state between calls, so
// they are safe to use concurrently.
//
// Keypad accumulates keystrokes into an expression buffer the way a pocket
// calculator does and evaluates it when = is pressed.
//
package calculator
