package main

import (
	"errors"
	"testing"

	"github.com/katalvlaran/morle/mcmc"
	"github.com/katalvlaran/morle/modsel"
	"github.com/stretchr/testify/assert"
)

func TestRootCmdHasModselRunSubcommand(t *testing.T) {
	root := newRootCmd()
	modselCmd, _, err := root.Find([]string{"modsel", "run"})
	assert.NoError(t, err)
	assert.Equal(t, "run", modselCmd.Name())
}

func TestExitCodeForError(t *testing.T) {
	assert.Equal(t, exitAbort, exitCodeForError(mcmc.ErrInvariantViolation))
	assert.Equal(t, exitAbort, exitCodeForError(modsel.ErrEnsuredConnectionLost))
	assert.Equal(t, exitFailure, exitCodeForError(errors.New("boom")))
}

func TestPathJoinsRelativeToWorkdir(t *testing.T) {
	assert.Equal(t, "workdir/wordlist.tsv", path("workdir", "wordlist.tsv"))
	assert.Equal(t, "/abs/wordlist.tsv", path("workdir", "/abs/wordlist.tsv"))
	assert.Equal(t, "", path("workdir", ""))
}
