package rule

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"
)

// Load reads a rules TSV: one rule per line, columns "rule_string\tdomsize".
func Load(r io.Reader) (*RuleSet, error) {
	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 0, 64*1024), 1024*1024)
	var rules []Rule
	var domsizes []int
	for sc.Scan() {
		line := strings.TrimRight(sc.Text(), "\r\n")
		if line == "" {
			continue
		}
		cols := strings.Split(line, "\t")
		if len(cols) != 2 {
			return nil, fmt.Errorf("rule: malformed line %q: %w", line, ErrMalformedRule)
		}
		domsize, err := strconv.Atoi(cols[1])
		if err != nil {
			return nil, fmt.Errorf("rule: bad domain size in %q: %w", line, err)
		}
		r, err := Parse(cols[0])
		if err != nil {
			return nil, err
		}
		rules = append(rules, r)
		domsizes = append(domsizes, domsize)
	}
	if err := sc.Err(); err != nil {
		return nil, err
	}
	return NewRuleSet(rules, domsizes)
}

// Save writes rs back out in the format Load accepts, in ID order.
func Save(w io.Writer, rs *RuleSet) error {
	bw := bufio.NewWriter(w)
	for id, r := range rs.Rules() {
		if _, err := fmt.Fprintf(bw, "%s\t%d\n", r.String(), rs.DomSize(id)); err != nil {
			return err
		}
	}
	return bw.Flush()
}
