package cli

import (
	"fmt"

	"github.com/letung3105/symcalc/internal/symb"
	"github.com/spf13/cobra"
)

func newParseCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "parse expression",
		Short: "print the tree of an expression.",
		Long: `Print the tree of an expression in prefix form, followed by the fully
parenthesized infix form that is read back to the same tree.`,
		Args: expressionArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			expr, err := parseArgs(args)
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), symb.TreeString(expr))
			printExpr(cmd, expr)
			return nil
		},
	}
}

func init() {
	register(newParseCmd)
}
