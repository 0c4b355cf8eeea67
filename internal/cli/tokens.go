package cli

import (
	"fmt"
	"strings"

	"github.com/letung3105/symcalc/internal/symb"
	"github.com/samber/lo"
	"github.com/spf13/cobra"
)

func newTokensCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "tokens expression",
		Short: "print the tokens of an expression, one per line.",
		Args:  expressionArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			tokens := symb.Tokenize(strings.Join(args, " "))
			lines := lo.Map(tokens, func(tok *symb.Token, _ int) string {
				return tok.String()
			})
			if len(lines) != 0 {
				fmt.Fprintln(cmd.OutOrStdout(), strings.Join(lines, "\n"))
			}
			return nil
		},
	}
}

func init() {
	register(newTokensCmd)
}
