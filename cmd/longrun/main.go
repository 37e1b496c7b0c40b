// Command longrun finds the longest run of integers satisfying a predicate.
package main

import (
	"fmt"
	"os"

	"github.com/roach88/longrun/internal/cli"
)

func main() {
	cmd := cli.NewRootCommand()
	if err := cmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(cli.GetExitCode(err))
	}
}
