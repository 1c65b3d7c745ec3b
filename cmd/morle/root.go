package main

import (
	"errors"

	"github.com/katalvlaran/morle/costcache"
	"github.com/katalvlaran/morle/mcmc"
	"github.com/katalvlaran/morle/modsel"
	"github.com/spf13/cobra"
)

// Exit codes per spec.md §6: 0 success, 1 configuration/I/O failure, 2 a
// detected NaN cost, an invariant violation, or rule selection stranding
// an ensured connection (a distinct, non-recoverable class from an
// ordinary input error).
const (
	exitSuccess = 0
	exitFailure = 1
	exitAbort   = 2
)

func exitCodeForError(err error) int {
	if errors.Is(err, mcmc.ErrInvariantViolation) || errors.Is(err, costcache.ErrNaNCost) || errors.Is(err, modsel.ErrEnsuredConnectionLost) {
		return exitAbort
	}
	return exitFailure
}

func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:           "morle",
		Short:         "Unsupervised morphological rule and branching inference",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	root.AddCommand(newModselCmd())
	return root
}
