// Command heatcurve estimates the annual cost, savings, and payback of
// replacing gas heating with an electric heat pump.
package main

import (
	"os"

	"github.com/gridnote/heatcurve/internal/cli"
	"github.com/gridnote/heatcurve/pkg/version"
)

func main() {
	os.Exit(run())
}

// run executes the root command and maps the result to a process exit code.
// It is separated from main so tests can exercise it.
func run() int {
	root := cli.NewRootCmd(version.GetVersion())
	if err := root.Execute(); err != nil {
		// Cobra already printed the error.
		return 1
	}
	return 0
}
