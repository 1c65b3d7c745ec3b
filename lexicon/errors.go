package lexicon

import "errors"

// ErrEmptyWord indicates a word string with no symbols was rejected.
var ErrEmptyWord = errors.New("lexicon: word has no symbols")

// ErrMalformedWord indicates a word string did not match the symbol/tag
// grammar (see wordform.ParseWord).
var ErrMalformedWord = errors.New("lexicon: malformed word string")

// ErrNegativeFrequency indicates a word's frequency field was negative.
var ErrNegativeFrequency = errors.New("lexicon: negative frequency")

// ErrDuplicateWord indicates the same word string appeared twice while
// building a Lexicon; IDs must be unique per distinct word.
var ErrDuplicateWord = errors.New("lexicon: duplicate word")

// ErrWordNotFound indicates a lookup by word or by ID found nothing.
var ErrWordNotFound = errors.New("lexicon: word not found")

// ErrVectorDimMismatch indicates feature vectors of differing lengths were
// supplied within the same Lexicon.
var ErrVectorDimMismatch = errors.New("lexicon: feature vector dimension mismatch")
