package phonetic

import "github.com/cockroachdb/errors"

// soundexSilent marks a letter as silent in a Soundex mapping.
const soundexSilent = '-'

// USEnglishSoundexMapping codes A..Z for American Soundex. Vowels map
// to '0'; H and W are handled by the special case, not the table.
const USEnglishSoundexMapping = "01230120022455012623010202"

// GenealogySoundexMapping is the mapping published by genealogy.com:
// vowels plus H and W are silent ('-') instead of '0', so they do not
// break runs of identical codes.
const GenealogySoundexMapping = "-123-12--22455-12623-1-2-2"

// Soundex is the classic four-character American Soundex. The zero
// value is not usable; construct with NewSoundex or use DefaultSoundex.
type Soundex struct {
	mapping [26]rune
	// specialHW treats H and W as silence between consonants. It is
	// enabled automatically when the mapping itself carries no silent
	// code.
	specialHW bool
}

var _ Encoder = Soundex{}

// DefaultSoundex is the US English encoder with the H/W special case.
var DefaultSoundex = Soundex{mapping: toMapping(USEnglishSoundexMapping), specialHW: true}

// GenealogySoundex uses the genealogy.com mapping, where vowels, H and
// W are silent codes in the table itself.
var GenealogySoundex = Soundex{mapping: toMapping(GenealogySoundexMapping), specialHW: false}

func toMapping(s string) [26]rune {
	var m [26]rune
	copy(m[:], []rune(s))
	return m
}

// NewSoundex builds a Soundex from a 26-character mapping string giving
// the code of A, B, ... Z in order. '-' marks a silent letter; when the
// mapping has no silent letter the H/W special case is enabled.
func NewSoundex(mapping string) (Soundex, error) {
	rs := []rune(mapping)
	if len(rs) != 26 {
		return Soundex{}, errors.Newf("soundex mapping must have 26 characters, got %d", len(rs))
	}
	s := Soundex{mapping: toMapping(mapping)}
	s.specialHW = true
	for _, r := range rs {
		if r == soundexSilent {
			s.specialHW = false
			break
		}
	}
	return s, nil
}

func (s Soundex) code(ch rune) rune {
	return s.mapping[ch-'A']
}

// Encode returns the four-character code: first letter, then the first
// three consonant codes, zero padded. Adjacent letters with the same
// code collapse; with the H/W special case those two letters are
// skipped without resetting the previous code, so "Ashcraft" encodes
// like "Ashcroft".
func (s Soundex) Encode(value string) string {
	cleaned := soundexClean(value)
	if cleaned == "" {
		return ""
	}

	runes := []rune(cleaned)
	code := []rune{runes[0], '0', '0', '0'}
	count := 1
	previous := s.code(runes[0])
	for _, ch := range runes[1:] {
		if count >= len(code) {
			break
		}
		if s.specialHW && (ch == 'H' || ch == 'W') {
			continue
		}
		digit := s.code(ch)
		if digit == soundexSilent {
			continue
		}
		if digit != '0' && digit != previous {
			code[count] = digit
			count++
		}
		previous = digit
	}
	return string(code)
}

// RefinedSoundex keeps the full run-length-collapsed code instead of
// truncating to four characters, giving a finer-grained Difference.
type RefinedSoundex struct {
	mapping [26]rune
}

var _ Encoder = RefinedSoundex{}

// USEnglishRefinedMapping codes A..Z for the refined algorithm.
const USEnglishRefinedMapping = "01360240043788015936020505"

// DefaultRefinedSoundex is the US English refined encoder.
var DefaultRefinedSoundex = RefinedSoundex{mapping: toMapping(USEnglishRefinedMapping)}

// NewRefinedSoundex builds a RefinedSoundex from a 26-character mapping
// string giving the code of A, B, ... Z in order.
func NewRefinedSoundex(mapping string) (RefinedSoundex, error) {
	rs := []rune(mapping)
	if len(rs) != 26 {
		return RefinedSoundex{}, errors.Newf("refined soundex mapping must have 26 characters, got %d", len(rs))
	}
	return RefinedSoundex{mapping: toMapping(mapping)}, nil
}

// Encode returns the first letter followed by the code of every letter,
// with consecutive identical codes collapsed. Unlike classic Soundex
// the vowel code '0' is kept, and the code of the first letter is
// emitted too.
func (s RefinedSoundex) Encode(value string) string {
	cleaned := soundexClean(value)
	if cleaned == "" {
		return ""
	}

	var b []rune
	runes := []rune(cleaned)
	b = append(b, runes[0])
	var previous rune
	for _, ch := range runes {
		code := s.mapping[ch-'A']
		if code != previous {
			b = append(b, code)
		}
		previous = code
	}
	return string(b)
}
