package cli

import (
	"fmt"
	"log/slog"
	"strings"

	"github.com/spf13/cobra"

	"github.com/govalues/hugeint/internal/polish"
)

// Calc evaluates an expression in Polish notation.
var Calc = &cobra.Command{
	Use:   "calc <expression>...",
	Short: "Evaluates an arithmetic expression written in Polish (prefix) notation.",
	Long: "Evaluates an arithmetic expression written in Polish (prefix) notation, " +
		"where every operator precedes its two operands.\n\n" +
		"Supported operators: " + polish.Operators + "\n\n" +
		"Arguments are joined with spaces, so the expression may be passed as one or several arguments.",
	Example: "hugeint calc '* 10 + 7654321 7891234'\nhugeint calc / 987654321098765432109876543210 123456789012345678901234567890",
	Args:    cobra.MinimumNArgs(1),
	RunE:    commandCalc,
}

func commandCalc(cmd *cobra.Command, args []string) error {
	expr := strings.Join(args, " ")
	slog.Debug("evaluating expression", "expr", expr)

	x, err := polish.Evaluate(expr)
	if err != nil {
		return fmt.Errorf("evaluating %q: %w", expr, err)
	}

	slog.Debug("evaluated expression", "expr", expr, "result", x, "digits", x.Prec())
	fmt.Fprintln(cmd.OutOrStdout(), x)
	return nil
}
