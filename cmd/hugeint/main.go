// hugeint is a command-line calculator for fixed-width decimal integers.
package main

import (
	"fmt"
	"os"

	"github.com/govalues/hugeint/cmd/hugeint/cli"
)

func main() {
	if err := cli.Root.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
