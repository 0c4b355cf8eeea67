package cli

import (
	"fmt"

	"github.com/letung3105/symcalc/internal/symb"
	"github.com/spf13/cobra"
)

func newTaylorCmd(a *app) *cobra.Command {
	taylorCmd := &cobra.Command{
		Use:   "taylor [flags] expression",
		Short: "expand an expression as a Taylor series.",
		Long: `Expand an expression as a Taylor series around a point and print the series
truncated after the requested number of terms.`,
		Args: expressionArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			expr, err := parseArgs(args)
			if err != nil {
				return err
			}
			terms, err := getInt(cmd, "terms", a.cfg.Terms)
			if err != nil {
				return err
			}
			point, err := getFloat(cmd, "at", a.cfg.Point)
			if err != nil {
				return err
			}
			name := a.variable(cmd, expr)
			coeffs, err := symb.Taylor(expr, terms, point, name)
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), symb.SeriesString(coeffs, point, name))
			return nil
		},
	}
	addVarFlag(taylorCmd)
	taylorCmd.Flags().IntP("terms", "n", 0, "number of terms (default from config)")
	taylorCmd.Flags().Float64P("at", "a", 0, "expansion point (default from config)")
	return taylorCmd
}

func init() {
	register(newTaylorCmd)
}
