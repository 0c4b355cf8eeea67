package cli

import (
	"fmt"

	"github.com/letung3105/symcalc/internal/symb"
	"github.com/spf13/cobra"
)

func newLimitCmd(a *app) *cobra.Command {
	limitCmd := &cobra.Command{
		Use:   "limit [flags] expression",
		Short: "compute the limit of an expression at a point.",
		Long: `Compute the limit of an expression of one variable at a point, applying
L'Hôpital's rule to indeterminate quotients. "no limit" is printed when no finite
limit could be found.`,
		Args: expressionArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			expr, err := parseArgs(args)
			if err != nil {
				return err
			}
			point, err := getFloat(cmd, "at", a.cfg.Point)
			if err != nil {
				return err
			}
			depth, err := getInt(cmd, "max-lhopital", a.cfg.MaxLHopital)
			if err != nil {
				return err
			}
			val, ok, err := symb.NewLimiter(depth).Limit(expr, point, a.variable(cmd, expr))
			if err != nil {
				return err
			}
			if !ok {
				fmt.Fprintln(cmd.OutOrStdout(), "no limit")
				return nil
			}
			printNumber(cmd, val)
			return nil
		},
	}
	addVarFlag(limitCmd)
	limitCmd.Flags().Float64P("at", "a", 0, "point the variable approaches (default from config)")
	limitCmd.Flags().Int("max-lhopital", 0, "applications of L'Hôpital's rule before giving up (default from config)")
	return limitCmd
}

func init() {
	register(newLimitCmd)
}
