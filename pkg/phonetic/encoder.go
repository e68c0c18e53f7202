// Package phonetic implements deterministic phonetic encoders: Soundex
// and Refined Soundex, Metaphone and Double Metaphone, Caverphone 1 and
// 2, the Cologne procedure, NYSIIS, Phonex and the Match Rating
// Approach. Each encoder maps a word to a compact code approximating
// its pronunciation, so that different spellings of the same name
// compare equal.
//
// The branching encoders live in their own packages: Daitch-Mokotoff in
// pkg/dm, Beider-Morse in pkg/bm.
package phonetic

// Encoder maps a single word to its phonetic code. Encoding is total:
// any input, including empty or non-alphabetic text, yields a
// well-defined (possibly empty) code, never an error.
type Encoder interface {
	Encode(s string) string
}

// IsEncodeEqual reports whether two values share the same code under e.
func IsEncodeEqual(e Encoder, a, b string) bool {
	return e.Encode(a) == e.Encode(b)
}

// Difference returns the number of positions at which the codes of a
// and b agree, SQL-server style: for the fixed-length Soundex code, 0
// means no similarity and 4 strong similarity. Refined Soundex codes
// are unbounded so the result can exceed 4.
func Difference(e Encoder, a, b string) int {
	ca := []rune(e.Encode(a))
	cb := []rune(e.Encode(b))
	if len(ca) == 0 || len(cb) == 0 {
		return 0
	}
	n := 0
	for i := 0; i < len(ca) && i < len(cb); i++ {
		if ca[i] == cb[i] {
			n++
		}
	}
	return n
}
