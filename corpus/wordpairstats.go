package corpus

import (
	"bufio"
	"fmt"
	"io"
	"sort"

	"github.com/katalvlaran/morle/lexicon"
	"github.com/katalvlaran/morle/mcmc"
	"github.com/katalvlaran/morle/stats"
)

// WriteWordPairStats writes the sample-wordpair-stats TSV: one row per
// unordered candidate word pair, columns (word_a, word_b, <stat>*), stat
// columns in sorted name order. Row order follows wordPairIndex's
// assigned slot order (construction order over the edge set), the same
// order mcmc.Sampler.WordPairIndex built it in.
func WriteWordPairStats(w io.Writer, lx *lexicon.Lexicon, wordPairIndex map[mcmc.WordPair]int, reg *stats.Registry) error {
	wpStats := reg.WordPairStats()
	cols := make([]string, 0, len(wpStats))
	for name := range wpStats {
		cols = append(cols, name)
	}
	sort.Strings(cols)

	pairsBySlot := make([]mcmc.WordPair, len(wordPairIndex))
	for pair, slot := range wordPairIndex {
		pairsBySlot[slot] = pair
	}

	bw := bufio.NewWriter(w)
	header := append([]string{"word_a", "word_b"}, cols...)
	if _, err := fmt.Fprintln(bw, tabJoin(header)); err != nil {
		return err
	}

	for _, pair := range pairsBySlot {
		row := []string{lx.Get(pair.A).String(), lx.Get(pair.B).String()}
		for _, name := range cols {
			row = append(row, formatFloat(wpStats[name].Value(pair)))
		}
		if _, err := fmt.Fprintln(bw, tabJoin(row)); err != nil {
			return err
		}
	}
	return bw.Flush()
}
