package lexicon

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"
)

// Load reads a wordlist TSV: one word per line, columns
// "word\tfrequency" optionally followed by vector components
// ("word\tfrequency\tv1\tv2\t...").
func Load(r io.Reader) (*Lexicon, error) {
	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 0, 64*1024), 1024*1024)
	var words []Word
	for sc.Scan() {
		line := strings.TrimRight(sc.Text(), "\r\n")
		if line == "" {
			continue
		}
		cols := strings.Split(line, "\t")
		if len(cols) < 2 {
			return nil, fmt.Errorf("lexicon: malformed line %q: %w", line, ErrMalformedWord)
		}
		freq, err := strconv.ParseFloat(cols[1], 64)
		if err != nil {
			return nil, fmt.Errorf("lexicon: bad frequency in %q: %w", line, err)
		}
		var vector []float64
		if len(cols) > 2 {
			vector = make([]float64, len(cols)-2)
			for i, c := range cols[2:] {
				v, err := strconv.ParseFloat(c, 64)
				if err != nil {
					return nil, fmt.Errorf("lexicon: bad vector component in %q: %w", line, err)
				}
				vector[i] = v
			}
		}
		w, err := ParseWord(cols[0], freq, vector)
		if err != nil {
			return nil, err
		}
		words = append(words, w)
	}
	if err := sc.Err(); err != nil {
		return nil, err
	}
	return NewLexicon(words)
}

// Save writes lx back out in the format Load accepts, in ID order.
func Save(w io.Writer, lx *Lexicon) error {
	bw := bufio.NewWriter(w)
	for _, word := range lx.Words() {
		if _, err := fmt.Fprintf(bw, "%s\t%s", word.String(), strconv.FormatFloat(word.Freq, 'g', -1, 64)); err != nil {
			return err
		}
		for _, v := range word.Vector {
			if _, err := fmt.Fprintf(bw, "\t%s", strconv.FormatFloat(v, 'g', -1, 64)); err != nil {
				return err
			}
		}
		if _, err := bw.WriteString("\n"); err != nil {
			return err
		}
	}
	return bw.Flush()
}
