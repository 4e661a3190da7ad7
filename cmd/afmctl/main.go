// Command afmctl validates AFM executions and builds or inspects the
// messages exchanged with embedded Analytical Designer and KPI Dashboards.
package main

import (
	"fmt"
	"os"

	"github.com/roach88/afmkit/internal/cli"
	"github.com/roach88/afmkit/internal/config"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "afmctl: %v\n", err)
		os.Exit(cli.ExitCommandError)
	}

	// Subcommands report their own errors; cobra prints the rest.
	err = cli.NewRootCommand(cfg).Execute()
	os.Exit(cli.GetExitCode(err))
}
