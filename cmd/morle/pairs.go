package main

import (
	"bufio"
	"fmt"
	"io"
	"strings"

	"github.com/katalvlaran/morle/lexicon"
	"github.com/katalvlaran/morle/mcmc"
)

// loadWordPairs reads a two-column (word_a, word_b) TSV naming supervised
// pairs and resolves each word against lx, the same shape the wordpair
// stat dumps write.
func loadWordPairs(r io.Reader, lx *lexicon.Lexicon) ([]mcmc.WordPair, error) {
	var pairs []mcmc.WordPair
	sc := bufio.NewScanner(r)
	line := 0
	for sc.Scan() {
		line++
		text := strings.TrimSpace(sc.Text())
		if text == "" {
			continue
		}
		fields := strings.Split(text, "\t")
		if len(fields) < 2 {
			return nil, fmt.Errorf("line %d: expected word_a\\tword_b, got %q", line, text)
		}
		a, err := resolveWord(lx, fields[0])
		if err != nil {
			return nil, fmt.Errorf("line %d: %w", line, err)
		}
		b, err := resolveWord(lx, fields[1])
		if err != nil {
			return nil, fmt.Errorf("line %d: %w", line, err)
		}
		pairs = append(pairs, mcmc.WordPair{A: a, B: b})
	}
	return pairs, sc.Err()
}

// loadEnsuredConnections reads a two-column (source_word, target_word)
// TSV naming ensured directed connections for semi-supervised runs.
func loadEnsuredConnections(r io.Reader, lx *lexicon.Lexicon) (map[mcmc.Connection]bool, error) {
	ensured := make(map[mcmc.Connection]bool)
	sc := bufio.NewScanner(r)
	line := 0
	for sc.Scan() {
		line++
		text := strings.TrimSpace(sc.Text())
		if text == "" {
			continue
		}
		fields := strings.Split(text, "\t")
		if len(fields) < 2 {
			return nil, fmt.Errorf("line %d: expected source\\ttarget, got %q", line, text)
		}
		source, err := resolveWord(lx, fields[0])
		if err != nil {
			return nil, fmt.Errorf("line %d: %w", line, err)
		}
		target, err := resolveWord(lx, fields[1])
		if err != nil {
			return nil, fmt.Errorf("line %d: %w", line, err)
		}
		ensured[mcmc.Connection{Source: source, Target: target}] = true
	}
	return ensured, sc.Err()
}

func resolveWord(lx *lexicon.Lexicon, s string) (int, error) {
	w, err := lexicon.ParseWord(s, 0, nil)
	if err != nil {
		return 0, err
	}
	id, err := lx.GetID(w)
	if err != nil {
		return 0, fmt.Errorf("unknown word %q", s)
	}
	return id, nil
}
