package lexicon

import (
	"math"

	"github.com/katalvlaran/morle/wordform"
)

// Word is an immutable lexicon entry. Equality is by String(), not by
// pointer identity; two Words with the same symbols and tags are the same
// lexicon entry even if constructed separately.
type Word struct {
	Symbols []string  // symbol sequence, e.g. ["r","u","n"]
	Tags    []string  // tag sequence, e.g. ["<V>"]
	Freq    float64   // observed frequency, >= 0
	LogFreq float64   // math.Log(Freq), precomputed at construction
	Vector  []float64 // optional dense feature vector; nil if absent
}

// NewWord builds a Word from already-tokenized symbols/tags and a
// frequency. LogFreq is derived; Vector may be nil.
func NewWord(symbols, tags []string, freq float64, vector []float64) (Word, error) {
	if len(symbols) == 0 {
		return Word{}, ErrEmptyWord
	}
	if freq < 0 {
		return Word{}, ErrNegativeFrequency
	}
	sc := append([]string(nil), symbols...)
	tc := append([]string(nil), tags...)
	var vc []float64
	if vector != nil {
		vc = append([]float64(nil), vector...)
	}
	return Word{
		Symbols: sc,
		Tags:    tc,
		Freq:    freq,
		LogFreq: math.Log(freq),
		Vector:  vc,
	}, nil
}

// ParseWord parses a raw "symbol+tag*" string (see wordform.ParseWord) and
// builds a Word from it with the given frequency and optional vector.
func ParseWord(s string, freq float64, vector []float64) (Word, error) {
	symbols, tags, ok := wordform.ParseWord(s)
	if !ok {
		return Word{}, ErrMalformedWord
	}
	return NewWord(symbols, tags, freq, vector)
}

// String reassembles the raw "symbol+tag*" form of w.
func (w Word) String() string {
	return wordform.JoinWord(w.Symbols, w.Tags)
}

// Lexicon is an immutable, ID-indexed collection of Words. IDs are
// contiguous over [0, Len()) in insertion order and never change once a
// Lexicon is built.
type Lexicon struct {
	words   []Word
	idByKey map[string]int
	vecDim  int // 0 if no word carries a feature vector
}

// NewLexicon builds a Lexicon from words, assigning IDs in slice order.
// Duplicate word strings and inconsistent vector dimensions are rejected.
func NewLexicon(words []Word) (*Lexicon, error) {
	lx := &Lexicon{
		words:   make([]Word, 0, len(words)),
		idByKey: make(map[string]int, len(words)),
	}
	for _, w := range words {
		key := w.String()
		if _, exists := lx.idByKey[key]; exists {
			return nil, ErrDuplicateWord
		}
		if w.Vector != nil {
			if lx.vecDim == 0 {
				lx.vecDim = len(w.Vector)
			} else if len(w.Vector) != lx.vecDim {
				return nil, ErrVectorDimMismatch
			}
		}
		lx.idByKey[key] = len(lx.words)
		lx.words = append(lx.words, w)
	}
	return lx, nil
}

// Len returns the number of words in the lexicon.
func (lx *Lexicon) Len() int { return len(lx.words) }

// Get returns the word with the given ID. Panics if id is out of range,
// matching core.Graph's trust-the-caller convention for ID-indexed access
// on collections whose IDs are contiguous by construction.
func (lx *Lexicon) Get(id int) Word { return lx.words[id] }

// GetID returns the stable ID of w, or ErrWordNotFound if w is not a member
// of this lexicon (compared by Word.String()).
func (lx *Lexicon) GetID(w Word) (int, error) {
	id, ok := lx.idByKey[w.String()]
	if !ok {
		return 0, ErrWordNotFound
	}
	return id, nil
}

// HasWord reports whether a word with this string form is present.
func (lx *Lexicon) HasWord(s string) bool {
	_, ok := lx.idByKey[s]
	return ok
}

// Words returns the lexicon's words in ID order. The returned slice aliases
// internal storage and must not be mutated.
func (lx *Lexicon) Words() []Word { return lx.words }

// VectorDim returns the dimension of the feature vectors carried by this
// lexicon's words, or 0 if none carry vectors.
func (lx *Lexicon) VectorDim() int { return lx.vecDim }
