// Command morle is the CLI entry point: a thin cobra tree dispatching to
// the modsel driver, mirroring main.py's mode-dispatch table but with one
// subcommand per mode instead of a single --mode flag.
package main

import (
	"fmt"
	"os"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(exitCodeForError(err))
	}
}
