package cli

import (
	"errors"

	"github.com/letung3105/symcalc/internal/symb"
	"github.com/spf13/cobra"
)

func newDiffCmd(a *app) *cobra.Command {
	diffCmd := &cobra.Command{
		Use:   "diff [flags] expression",
		Short: "differentiate an expression.",
		Args:  expressionArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			expr, err := parseArgs(args)
			if err != nil {
				return err
			}
			order, err := cmd.Flags().GetInt("order")
			if err != nil {
				return err
			}
			if order < 1 {
				return usageError{errors.New("order must be positive")}
			}
			d, err := symb.DiffN(expr, a.variable(cmd, expr), order)
			if err != nil {
				return err
			}
			printExpr(cmd, d)
			return nil
		},
	}
	addVarFlag(diffCmd)
	diffCmd.Flags().IntP("order", "n", 1, "how many times to differentiate")
	return diffCmd
}

func init() {
	register(newDiffCmd)
}
