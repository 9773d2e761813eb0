package main

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"log"
	"log/slog"
	"os"
	"strings"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	calc "github.com/zephyrtronium/calculator"
)

// errFailed reports that at least one input did not evaluate. Details have
// already been printed by the time it is returned.
var errFailed = errors.New("some inputs failed")

type options struct {
	lenient   bool
	strictDiv bool
	verbose   bool
	noColor   bool
	verb      string
}

func (o *options) calcOpts() []calc.Option {
	var opts []calc.Option
	if o.lenient {
		opts = append(opts, calc.Lenient())
	}
	if o.strictDiv {
		opts = append(opts, calc.StrictDivision())
	}
	return opts
}

func (o *options) parseOpts() []calc.ParseOption {
	if o.lenient {
		return []calc.ParseOption{calc.Lenient()}
	}
	return nil
}

func (o *options) logger(cmd *cobra.Command) *slog.Logger {
	level := slog.LevelWarn
	if o.verbose {
		level = slog.LevelDebug
	}
	return slog.New(slog.NewTextHandler(cmd.ErrOrStderr(), &slog.HandlerOptions{Level: level}))
}

// result prints r in the configured format.
func (o *options) result(w io.Writer, r calc.Result) {
	if o.verb == "" || !r.OK() {
		fmt.Fprintln(w, r)
		return
	}
	fmt.Fprintf(w, o.verb+"\n", r.Value)
}

// fail reports a failed input on the command's error output.
func fail(cmd *cobra.Command, src string, err error) {
	color.New(color.FgRed).Fprintf(cmd.ErrOrStderr(), "%s: %v\n", src, err)
}

// eachInput calls f with each argument, or with each non-blank line of the
// command's input if there are no arguments. The result is errFailed if f
// returned false for any input.
func eachInput(cmd *cobra.Command, args []string, f func(src string) bool) error {
	ok := true
	if len(args) != 0 {
		for _, arg := range args {
			ok = f(arg) && ok
		}
	} else {
		sc := bufio.NewScanner(cmd.InOrStdin())
		for sc.Scan() {
			line := strings.TrimSpace(sc.Text())
			if line == "" {
				continue
			}
			ok = f(line) && ok
		}
		if err := sc.Err(); err != nil {
			return fmt.Errorf("reading input: %w", err)
		}
	}
	if !ok {
		return errFailed
	}
	return nil
}

func newRootCmd() *cobra.Command {
	var o options
	root := &cobra.Command{
		Use:   "calc [expression...]",
		Short: "Evaluate arithmetic expressions",
		Long: `Calc evaluates arithmetic expressions with + - * /, decimal numbers and
parentheses, using the usual precedence rules.

Each argument is evaluated separately. With no arguments, each line of
standard input is an expression. A failed expression prints NaN, and calc
exits with status 1 if any expression failed. Use -- before an expression
that starts with a minus sign.`,
		Args:          cobra.ArbitraryArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			if o.noColor {
				color.NoColor = true
			}
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return runEval(cmd, &o, args)
		},
	}
	pf := root.PersistentFlags()
	pf.BoolVar(&o.lenient, "lenient", false, "tolerate unbalanced parentheses")
	pf.BoolVar(&o.strictDiv, "strict-division", false, "treat every division by zero as an error")
	pf.BoolVarP(&o.verbose, "verbose", "v", false, "log parsing and evaluation details")
	pf.BoolVar(&o.noColor, "no-color", false, "disable colored output")
	root.Flags().StringVar(&o.verb, "fmt", "", "result formatting verb, e.g. %g (default plain decimal)")

	root.AddCommand(newPostfixCmd(&o), newTokensCmd(&o), newKeysCmd(&o))
	return root
}

func runEval(cmd *cobra.Command, o *options, args []string) error {
	lg := o.logger(cmd)
	out := cmd.OutOrStdout()
	return eachInput(cmd, args, func(src string) bool {
		if lg.Enabled(cmd.Context(), slog.LevelDebug) {
			if p, err := calc.ToPostfix(src, o.parseOpts()...); err == nil {
				lg.Debug("parsed", "expr", src, "postfix", p.String())
			}
		}
		r := calc.Evaluate(src, o.calcOpts()...)
		lg.Debug("evaluated", "expr", src, "result", r.String(), "kind", r.Kind().String())
		o.result(out, r)
		if !r.OK() {
			fail(cmd, src, r.Err)
			return false
		}
		return true
	})
}

func main() {
	log.SetFlags(0)
	if err := newRootCmd().Execute(); err != nil {
		if !errors.Is(err, errFailed) {
			log.Print(err)
		}
		os.Exit(1)
	}
}
