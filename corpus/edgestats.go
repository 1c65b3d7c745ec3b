package corpus

import (
	"bufio"
	"fmt"
	"io"
	"sort"
	"strconv"

	"github.com/katalvlaran/morle/edgeset"
	"github.com/katalvlaran/morle/lexicon"
	"github.com/katalvlaran/morle/rule"
	"github.com/katalvlaran/morle/stats"
)

// WriteEdgeStats writes the sample-edge-stats TSV: one row per candidate
// edge, columns (source, target, rule, <stat>*), stat columns in sorted
// name order for deterministic output.
func WriteEdgeStats(w io.Writer, es *edgeset.EdgeSet, lx *lexicon.Lexicon, rs *rule.RuleSet, reg *stats.Registry) error {
	cols := sortedEdgeStatNames(reg)
	bw := bufio.NewWriter(w)

	header := append([]string{"source", "target", "rule"}, cols...)
	if _, err := fmt.Fprintln(bw, tabJoin(header)); err != nil {
		return err
	}

	edgeStats := reg.EdgeStats()
	for i := 0; i < es.Len(); i++ {
		e := es.Get(i)
		row := []string{lx.Get(e.Source).String(), lx.Get(e.Target).String(), rs.Get(e.Rule).String()}
		for _, name := range cols {
			row = append(row, formatFloat(edgeStats[name].Value(i)))
		}
		if _, err := fmt.Fprintln(bw, tabJoin(row)); err != nil {
			return err
		}
	}
	return bw.Flush()
}

func sortedEdgeStatNames(reg *stats.Registry) []string {
	edgeStats := reg.EdgeStats()
	names := make([]string, 0, len(edgeStats))
	for name := range edgeStats {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

func tabJoin(cols []string) string {
	out := cols[0]
	for _, c := range cols[1:] {
		out += "\t" + c
	}
	return out
}

func formatFloat(v float64) string {
	return strconv.FormatFloat(v, 'g', -1, 64)
}
