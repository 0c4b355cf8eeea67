package cli

import (
	"fmt"
	"strconv"

	"github.com/letung3105/symcalc/internal/symb"
	"github.com/spf13/cobra"
)

// Flags are looked up on the command and its parents, so these work for
// persistent flags even when parsing stopped early.

func getBool(cmd *cobra.Command, name string) bool {
	flag := cmd.Flag(name)
	if flag == nil {
		return false
	}
	v, err := strconv.ParseBool(flag.Value.String())
	return err == nil && v
}

func getString(cmd *cobra.Command, name string) string {
	flag := cmd.Flag(name)
	if flag == nil {
		return ""
	}
	return flag.Value.String()
}

// getInt returns the value of an int flag if it was given, and fallback
// otherwise.
func getInt(cmd *cobra.Command, name string, fallback int) (int, error) {
	if !cmd.Flags().Changed(name) {
		return fallback, nil
	}
	return cmd.Flags().GetInt(name)
}

// getFloat returns the value of a float flag if it was given, and fallback
// otherwise.
func getFloat(cmd *cobra.Command, name string, fallback float64) (float64, error) {
	if !cmd.Flags().Changed(name) {
		return fallback, nil
	}
	return cmd.Flags().GetFloat64(name)
}

// variable picks the variable a command works on. The --var flag wins, then
// the only variable of the expression, then the configured one.
func (a *app) variable(cmd *cobra.Command, expr symb.Expr) string {
	if cmd.Flags().Changed("var") {
		return getString(cmd, "var")
	}
	if names := symb.Variables(expr); len(names) == 1 {
		return names[0]
	}
	return a.cfg.Variable
}

func addVarFlag(cmd *cobra.Command) {
	cmd.Flags().String("var", "", "variable to work on (default: the only variable, or the configured one)")
}

func printExpr(cmd *cobra.Command, expr symb.Expr) {
	fmt.Fprintln(cmd.OutOrStdout(), symb.Infixify(expr))
}

func printNumber(cmd *cobra.Command, v float64) {
	fmt.Fprintln(cmd.OutOrStdout(), symb.FormatNumber(v))
}
