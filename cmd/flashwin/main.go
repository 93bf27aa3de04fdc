// flashwin - flash a window's caption and taskbar button

package main

import (
	"os"

	"github.com/ariel-frischer/flashwin/internal/cli"
)

func main() {
	if err := cli.Execute(); err != nil {
		os.Exit(cli.ExitCode(err))
	}
}
