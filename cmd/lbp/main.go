// Command lbp runs Loopy Belief Propagation on the bundled example networks.
package main

import (
	"fmt"
	"os"

	"github.com/katalvlaran/loopybayes/internal/cli"
)

func main() {
	if err := cli.NewRootCommand().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "error:", err)
		os.Exit(cli.GetExitCode(err))
	}
}
