package cli

import (
	"github.com/letung3105/symcalc/internal/symb"
	"github.com/spf13/cobra"
)

func newSimplifyCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "simplify expression",
		Short: "rewrite an expression with algebraic identities.",
		Args:  expressionArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			expr, err := parseArgs(args)
			if err != nil {
				return err
			}
			printExpr(cmd, symb.Simplify(expr))
			return nil
		},
	}
}

func init() {
	register(newSimplifyCmd)
}
