// Command recipefind searches a fixed recipe catalog from the terminal.
package main

import (
	"errors"
	"os"

	"github.com/rshade/recipefind/internal/cli"
	"github.com/rshade/recipefind/pkg/version"
)

func main() {
	os.Exit(run())
}

// run executes the root command and returns the process exit code.
func run() int {
	root := cli.NewRootCmd(version.GetVersion())
	return extractExitCode(root.Execute())
}

// extractExitCode maps err to a process exit code: 0 for nil, the carried
// code for a *cli.ExitError anywhere in the chain, 1 otherwise.
func extractExitCode(err error) int {
	if err == nil {
		return cli.ExitCodeOK
	}
	var exitErr *cli.ExitError
	if errors.As(err, &exitErr) {
		return exitErr.ExitCode
	}
	return cli.ExitCodeError
}
