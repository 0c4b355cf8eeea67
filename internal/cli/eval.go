package cli

import (
	"fmt"
	"strings"

	"github.com/letung3105/symcalc/internal/symb"
	"github.com/spf13/cobra"
)

func newEvalCmd(a *app) *cobra.Command {
	evalCmd := &cobra.Command{
		Use:   "eval [flags] expression",
		Short: "compute the value of an expression.",
		Long: `Compute the value of an expression. Variables must be given a value with
--let, the value itself may be an expression.`,
		Args: expressionArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			expr, err := parseArgs(args)
			if err != nil {
				return err
			}
			bindings, err := cmd.Flags().GetStringArray("let")
			if err != nil {
				return err
			}
			for _, binding := range bindings {
				name, text, ok := strings.Cut(binding, "=")
				if !ok || name == "" {
					return usageError{fmt.Errorf("malformed binding \"%s\"", binding)}
				}
				value, err := parseText(text)
				if err != nil {
					return err
				}
				expr = symb.Substitute(expr, value, strings.TrimSpace(name))
			}
			val, err := symb.Evaluate(expr)
			if err != nil {
				return err
			}
			printNumber(cmd, val)
			return nil
		},
	}
	evalCmd.Flags().StringArrayP("let", "l", []string{}, "bind a variable, as name=expression")
	return evalCmd
}

func init() {
	register(newEvalCmd)
}
