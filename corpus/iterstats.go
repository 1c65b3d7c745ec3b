package corpus

import (
	"bufio"
	"fmt"
	"io"
	"sort"
	"strconv"

	"github.com/katalvlaran/morle/stats"
)

// WriteIterStats writes the sample-iter-stats TSV: one row per recorded
// snapshot, columns (iter, <stat>*), stat columns in sorted name order.
func WriteIterStats(w io.Writer, log *stats.IterationLog) error {
	records := log.Records()
	names := make(map[string]bool)
	for _, rec := range records {
		for name := range rec.Scalars {
			names[name] = true
		}
	}
	cols := make([]string, 0, len(names))
	for name := range names {
		cols = append(cols, name)
	}
	sort.Strings(cols)

	bw := bufio.NewWriter(w)
	header := append([]string{"iter"}, cols...)
	if _, err := fmt.Fprintln(bw, tabJoin(header)); err != nil {
		return err
	}

	for _, rec := range records {
		row := []string{strconv.Itoa(rec.Iter)}
		for _, name := range cols {
			row = append(row, formatFloat(rec.Scalars[name]))
		}
		if _, err := fmt.Fprintln(bw, tabJoin(row)); err != nil {
			return err
		}
	}
	return bw.Flush()
}
