package cli

import (
	"fmt"
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/govalues/hugeint"
)

// Demo prints a walk through the arithmetic of sample integers.
var Demo = &cobra.Command{
	Use:   "demo",
	Short: "Prints sample integers and the results of operating on them.",
	Args:  cobra.NoArgs,
	RunE:  commandDemo,
}

func commandDemo(cmd *cobra.Command, args []string) error {
	w := cmd.OutOrStdout()

	n1 := hugeint.New(7654321)
	n2 := hugeint.New(7891234)
	n3 := hugeint.Parse("99999999999999999999999999999")
	n4 := hugeint.Parse("1")
	n5 := hugeint.Zero()

	fmt.Fprintf(w, "n1 is %v\nn2 is %v\nn3 is %v\nn4 is %v\nn5 is %v\n\n", n1, n2, n3, n4, n5)

	n5 = n1.Add(n2)
	fmt.Fprintf(w, "%v + %v = %v\n\n", n1, n2, n5)

	fmt.Fprintf(w, "%v + %v\n= %v\n\n", n3, n4, n3.Add(n4))

	n5 = n1.Add(hugeint.New(9))
	fmt.Fprintf(w, "%v + %v = %v\n\n", n1, 9, n5)

	n5 = n2.Add(hugeint.Parse("10000"))
	fmt.Fprintf(w, "%v + %v = %v\n", n2, "10000", n5)

	n6 := hugeint.Parse("123456789012345678901234567890")
	n7 := hugeint.Parse("987654321098765432109876543210")

	fmt.Fprintf(w, "\nMultiplication:\n")
	n8 := n6.Mul(n7)
	if _, err := n6.MulExact(n7); err != nil {
		slog.Warn("product wrapped around", "x", n6, "y", n7, "err", err)
	}
	fmt.Fprintf(w, "%v * %v = %v\n", n6, n7, n8)

	fmt.Fprintf(w, "\nDivision:\n")
	n8, err := n7.Quo(n6)
	if err != nil {
		return err
	}
	fmt.Fprintf(w, "%v / %v = %v\n", n7, n6, n8)
	return nil
}
