package cli

import (
	"fmt"
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/govalues/hugeint"
)

var permissive bool

// Cmp compares two integers.
var Cmp = &cobra.Command{
	Use:   "cmp <x> <y>",
	Short: "Compares two integers and prints <, = or >.",
	Args:  cobra.ExactArgs(2),
	RunE:  commandCmp,
}

func init() {
	Cmp.Flags().BoolVar(&permissive, "permissive", permissive, "Skip non-digit characters and drop excess leading digits instead of failing.")
}

func commandCmp(cmd *cobra.Command, args []string) error {
	x, err := parseArg(args[0])
	if err != nil {
		return err
	}
	y, err := parseArg(args[1])
	if err != nil {
		return err
	}

	var sign string
	switch x.Cmp(y) {
	case -1:
		sign = "<"
	case 0:
		sign = "="
	default:
		sign = ">"
	}
	fmt.Fprintln(cmd.OutOrStdout(), sign)
	return nil
}

func parseArg(s string) (hugeint.Int, error) {
	if permissive {
		x := hugeint.Parse(s)
		if x.String() != s {
			slog.Info("argument normalized", "arg", s, "value", x)
		}
		return x, nil
	}
	x, err := hugeint.ParseExact(s)
	if err != nil {
		return hugeint.Int{}, fmt.Errorf("parsing %q: %w", s, err)
	}
	return x, nil
}
