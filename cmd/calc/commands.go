package main

import (
	"fmt"
	"strings"

	"github.com/davecgh/go-spew/spew"
	"github.com/spf13/cobra"

	calc "github.com/zephyrtronium/calculator"
)

func newPostfixCmd(o *options) *cobra.Command {
	return &cobra.Command{
		Use:   "postfix [expression...]",
		Short: "Print expressions in Reverse Polish notation",
		RunE: func(cmd *cobra.Command, args []string) error {
			lg := o.logger(cmd)
			out := cmd.OutOrStdout()
			return eachInput(cmd, args, func(src string) bool {
				p, err := calc.ToPostfix(src, o.parseOpts()...)
				if err != nil {
					lg.Debug("parse failed", "expr", src, "kind", calc.KindOf(err).String())
					fmt.Fprintln(out, calc.Sentinel)
					fail(cmd, src, err)
					return false
				}
				fmt.Fprintln(out, p)
				return true
			})
		},
	}
}

func newTokensCmd(o *options) *cobra.Command {
	var dump bool
	cmd := &cobra.Command{
		Use:   "tokens [expression...]",
		Short: "Print the tokens of expressions",
		RunE: func(cmd *cobra.Command, args []string) error {
			lg := o.logger(cmd)
			out := cmd.OutOrStdout()
			return eachInput(cmd, args, func(src string) bool {
				toks, err := calc.Tokenize(src)
				lg.Debug("tokenized", "expr", src, "tokens", len(toks))
				if dump {
					spew.Fdump(out, toks)
				} else {
					s := make([]string, len(toks))
					for i, tok := range toks {
						s[i] = tok.String()
					}
					fmt.Fprintln(out, strings.Join(s, " "))
				}
				if err != nil {
					fail(cmd, src, err)
					return false
				}
				return true
			})
		},
	}
	cmd.Flags().BoolVar(&dump, "dump", false, "dump tokens as Go values")
	return cmd
}

func newKeysCmd(o *options) *cobra.Command {
	var trace bool
	cmd := &cobra.Command{
		Use:   "keys KEY...",
		Short: "Press calculator keys and print the display",
		Long: `Keys presses keys on a calculator keypad in order and prints what the
display shows at the end.

Keys are 0-9 . + - * / ( ) =, C to clear, and DEL to delete the last
character. An argument that is not a key name is split into one key per
character, so "calc keys 12+3=" presses five keys.`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			keys, err := parseKeys(args)
			if err != nil {
				return err
			}
			lg := o.logger(cmd)
			out := cmd.OutOrStdout()
			kp := calc.NewKeypad(o.calcOpts()...)
			for _, k := range keys {
				v := kp.Press(k)
				lg.Debug("pressed", "key", k.String(), "display", v)
				if trace {
					fmt.Fprintf(out, "%-4s%s\n", k, v)
				}
			}
			if !trace {
				fmt.Fprintln(out, kp.Value())
			}
			if r := kp.Result(); !r.OK() {
				fail(cmd, strings.Join(args, " "), r.Err)
				return errFailed
			}
			return nil
		},
	}
	cmd.Flags().BoolVar(&trace, "trace", false, "print the display after every key")
	return cmd
}

// parseKeys converts arguments to keys. An argument which does not name a key
// is split into runes, each of which must name a key.
func parseKeys(args []string) ([]calc.Key, error) {
	var keys []calc.Key
	for _, arg := range args {
		if k, err := calc.ParseKey(arg); err == nil {
			keys = append(keys, k)
			continue
		}
		for _, r := range arg {
			k, err := calc.ParseKey(string(r))
			if err != nil {
				return nil, err
			}
			keys = append(keys, k)
		}
	}
	return keys, nil
}
