package corpus

import (
	"bufio"
	"fmt"
	"io"
	"sort"

	"github.com/katalvlaran/morle/rule"
	"github.com/katalvlaran/morle/stats"
)

// WriteRuleStats writes the sample-rule-stats TSV: one row per rule,
// columns (rule, <stat>*), stat columns in sorted name order.
func WriteRuleStats(w io.Writer, rs *rule.RuleSet, reg *stats.Registry) error {
	ruleStats := reg.RuleStats()
	cols := make([]string, 0, len(ruleStats))
	for name := range ruleStats {
		cols = append(cols, name)
	}
	sort.Strings(cols)

	bw := bufio.NewWriter(w)
	header := append([]string{"rule"}, cols...)
	if _, err := fmt.Fprintln(bw, tabJoin(header)); err != nil {
		return err
	}

	for id := 0; id < rs.Len(); id++ {
		row := []string{rs.Get(id).String()}
		for _, name := range cols {
			row = append(row, formatFloat(ruleStats[name].Value(id)))
		}
		if _, err := fmt.Fprintln(bw, tabJoin(row)); err != nil {
			return err
		}
	}
	return bw.Flush()
}
