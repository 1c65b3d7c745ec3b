package edgeset

import (
	"bufio"
	"fmt"
	"io"
	"strings"

	"github.com/katalvlaran/morle/lexicon"
	"github.com/katalvlaran/morle/rule"
)

// Load reads a graph TSV: one candidate edge per line, columns
// "source_word\ttarget_word\trule_string". Words and rules are resolved
// against lx and rs, which must already be fully loaded.
func Load(r io.Reader, lx *lexicon.Lexicon, rs *rule.RuleSet) (*EdgeSet, error) {
	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 0, 64*1024), 1024*1024)
	var edges []GraphEdge
	for sc.Scan() {
		line := strings.TrimRight(sc.Text(), "\r\n")
		if line == "" {
			continue
		}
		cols := strings.Split(line, "\t")
		if len(cols) != 3 {
			return nil, fmt.Errorf("edgeset: malformed line %q", line)
		}
		srcWord, err := lexicon.ParseWord(cols[0], 0, nil)
		if err != nil {
			return nil, err
		}
		tgtWord, err := lexicon.ParseWord(cols[1], 0, nil)
		if err != nil {
			return nil, err
		}
		srcID, err := lx.GetID(srcWord)
		if err != nil {
			return nil, err
		}
		tgtID, err := lx.GetID(tgtWord)
		if err != nil {
			return nil, err
		}
		parsedRule, err := rule.Parse(cols[2])
		if err != nil {
			return nil, err
		}
		ruleID, err := rs.GetID(parsedRule)
		if err != nil {
			return nil, err
		}
		edges = append(edges, GraphEdge{Source: srcID, Target: tgtID, Rule: ruleID})
	}
	if err := sc.Err(); err != nil {
		return nil, err
	}
	return New(edges, lx.Len(), rs.Len())
}

// Save writes es back out in the format Load accepts, in ID order.
func Save(w io.Writer, es *EdgeSet, lx *lexicon.Lexicon, rs *rule.RuleSet) error {
	bw := bufio.NewWriter(w)
	for _, e := range es.edges {
		src := lx.Get(e.Source).String()
		tgt := lx.Get(e.Target).String()
		r := rs.Get(e.Rule).String()
		if _, err := fmt.Fprintf(bw, "%s\t%s\t%s\n", src, tgt, r); err != nil {
			return err
		}
	}
	return bw.Flush()
}
