package cli

import (
	"errors"

	"github.com/letung3105/symcalc/internal/symb"
	"github.com/spf13/cobra"
)

func newSubstCmd(a *app) *cobra.Command {
	substCmd := &cobra.Command{
		Use:   "subst [flags] expression",
		Short: "replace a variable with another expression.",
		Args:  expressionArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			expr, err := parseArgs(args)
			if err != nil {
				return err
			}
			if !cmd.Flags().Changed("with") {
				return usageError{errors.New("missing replacement, use --with")}
			}
			replacement, err := parseText(getString(cmd, "with"))
			if err != nil {
				return err
			}
			expr = symb.Substitute(expr, replacement, a.variable(cmd, expr))
			if getBool(cmd, "simplify") {
				expr = symb.Simplify(expr)
			}
			printExpr(cmd, expr)
			return nil
		},
	}
	addVarFlag(substCmd)
	substCmd.Flags().StringP("with", "w", "", "expression put in place of the variable")
	substCmd.Flags().BoolP("simplify", "s", false, "simplify the result")
	return substCmd
}

func init() {
	register(newSubstCmd)
}
