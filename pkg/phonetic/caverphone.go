package phonetic

import "strings"

// Caverphone1 is the original 1.0 Caverphone algorithm, producing a
// fixed six-character code padded with '1'.
type Caverphone1 struct{}

// Caverphone2 is the revisited 2.0 algorithm, producing a ten-character
// code padded with '1'.
type Caverphone2 struct{}

var (
	_ Encoder = Caverphone1{}
	_ Encoder = Caverphone2{}
)

const (
	caverphone1Pad = "111111"
	caverphone2Pad = "1111111111"
)

// removeNonLowerLetters keeps only lower-case letters. Run after
// strings.ToLower, it drops digits, punctuation and whitespace.
func removeNonLowerLetters(s string) string {
	var b strings.Builder
	b.Grow(len(s))
	for _, r := range s {
		if 'a' <= r && r <= 'z' {
			b.WriteRune(r)
		}
	}
	return b.String()
}

func replaceEnd(s, pattern, to string) string {
	if strings.HasSuffix(s, pattern) {
		return s[:len(s)-len(pattern)] + to
	}
	return s
}

func replaceStart(s, pattern, to string) string {
	if strings.HasPrefix(s, pattern) {
		return to + s[len(pattern):]
	}
	return s
}

// compactUpper collapses each run of a character from set into a single
// upper-case copy, like the regex s+ -> S for every s in set.
func compactUpper(s string, set string) string {
	var b strings.Builder
	b.Grow(len(s))
	var previous rune
	for _, ch := range s {
		if strings.ContainsRune(set, ch) {
			if previous != ch {
				b.WriteRune(ch - ('a' - 'A'))
				previous = ch
			}
		} else {
			b.WriteRune(ch)
			previous = 0
		}
	}
	return b.String()
}

func markInitialVowel(s string) string {
	rs := []rune(s)
	if len(rs) > 0 && isVowel(rs[0], false) {
		rs[0] = 'A'
	}
	return string(rs)
}

func vowelsTo3(s string) string {
	rs := []rune(s)
	for i, r := range rs {
		if isVowel(r, false) {
			rs[i] = '3'
		}
	}
	return string(rs)
}

// Encode implements the Caverphone 1.0 replacement chain.
func (Caverphone1) Encode(s string) string {
	if s == "" {
		return caverphone1Pad
	}

	txt := removeNonLowerLetters(strings.ToLower(s))

	txt = replaceStart(txt, "cough", "cou2f")
	txt = replaceStart(txt, "rough", "rou2f")
	txt = replaceStart(txt, "tough", "tou2f")
	txt = replaceStart(txt, "enough", "enou2f")
	txt = replaceStart(txt, "gn", "2n")

	txt = replaceEnd(txt, "mb", "m2")
	txt = strings.ReplaceAll(txt, "cq", "2q")
	txt = strings.ReplaceAll(txt, "ci", "si")
	txt = strings.ReplaceAll(txt, "ce", "se")
	txt = strings.ReplaceAll(txt, "cy", "sy")
	txt = strings.ReplaceAll(txt, "tch", "2ch")
	txt = strings.ReplaceAll(txt, "c", "k")
	txt = strings.ReplaceAll(txt, "q", "k")
	txt = strings.ReplaceAll(txt, "x", "k")
	txt = strings.ReplaceAll(txt, "v", "f")
	txt = strings.ReplaceAll(txt, "dg", "2g")
	txt = strings.ReplaceAll(txt, "tio", "sio")
	txt = strings.ReplaceAll(txt, "tia", "sia")
	txt = strings.ReplaceAll(txt, "d", "t")
	txt = strings.ReplaceAll(txt, "ph", "fh")
	txt = strings.ReplaceAll(txt, "b", "p")
	txt = strings.ReplaceAll(txt, "sh", "s2")
	txt = strings.ReplaceAll(txt, "z", "s")
	txt = markInitialVowel(txt)
	txt = vowelsTo3(txt)
	txt = strings.ReplaceAll(txt, "3gh3", "3kh3")
	txt = strings.ReplaceAll(txt, "gh", "22")
	txt = strings.ReplaceAll(txt, "g", "k")
	txt = compactUpper(txt, "stpkfmn")
	txt = strings.ReplaceAll(txt, "w3", "W3")
	txt = strings.ReplaceAll(txt, "wy", "Wy")
	txt = strings.ReplaceAll(txt, "wh3", "Wh3")
	txt = strings.ReplaceAll(txt, "why", "Why")
	txt = strings.ReplaceAll(txt, "w", "2")
	txt = replaceStart(txt, "h", "A")
	txt = strings.ReplaceAll(txt, "h", "2")
	txt = strings.ReplaceAll(txt, "r3", "R3")
	txt = strings.ReplaceAll(txt, "ry", "Ry")
	txt = strings.ReplaceAll(txt, "r", "2")
	txt = strings.ReplaceAll(txt, "l3", "L3")
	txt = strings.ReplaceAll(txt, "ly", "Ly")
	txt = strings.ReplaceAll(txt, "l", "2")
	txt = strings.ReplaceAll(txt, "j", "y")
	txt = strings.ReplaceAll(txt, "y3", "Y3")
	txt = strings.ReplaceAll(txt, "y", "2")

	txt = strings.ReplaceAll(txt, "2", "")
	txt = strings.ReplaceAll(txt, "3", "")

	txt += caverphone1Pad
	return txt[:len(caverphone1Pad)]
}

// Encode implements the Caverphone 2.0 replacement chain. It differs
// from 1.0 in the final-e drop, the trough prefix, the y handling and
// the trailing w/r/l and final-3 rules.
func (Caverphone2) Encode(s string) string {
	if s == "" {
		return caverphone2Pad
	}

	txt := removeNonLowerLetters(strings.ToLower(s))

	txt = replaceEnd(txt, "e", "")

	txt = replaceStart(txt, "cough", "cou2f")
	txt = replaceStart(txt, "rough", "rou2f")
	txt = replaceStart(txt, "tough", "tou2f")
	txt = replaceStart(txt, "enough", "enou2f")
	txt = replaceStart(txt, "trough", "trou2f")
	txt = replaceStart(txt, "gn", "2n")

	txt = replaceEnd(txt, "mb", "m2")
	txt = strings.ReplaceAll(txt, "cq", "2q")
	txt = strings.ReplaceAll(txt, "ci", "si")
	txt = strings.ReplaceAll(txt, "ce", "se")
	txt = strings.ReplaceAll(txt, "cy", "sy")
	txt = strings.ReplaceAll(txt, "tch", "2ch")
	txt = strings.ReplaceAll(txt, "c", "k")
	txt = strings.ReplaceAll(txt, "q", "k")
	txt = strings.ReplaceAll(txt, "x", "k")
	txt = strings.ReplaceAll(txt, "v", "f")
	txt = strings.ReplaceAll(txt, "dg", "2g")
	txt = strings.ReplaceAll(txt, "tio", "sio")
	txt = strings.ReplaceAll(txt, "tia", "sia")
	txt = strings.ReplaceAll(txt, "d", "t")
	txt = strings.ReplaceAll(txt, "ph", "fh")
	txt = strings.ReplaceAll(txt, "b", "p")
	txt = strings.ReplaceAll(txt, "sh", "s2")
	txt = strings.ReplaceAll(txt, "z", "s")
	txt = markInitialVowel(txt)
	txt = vowelsTo3(txt)
	txt = strings.ReplaceAll(txt, "j", "y")
	txt = replaceStart(txt, "y3", "Y3")
	txt = replaceStart(txt, "y", "A")
	txt = strings.ReplaceAll(txt, "y", "3")
	txt = strings.ReplaceAll(txt, "3gh3", "3kh3")
	txt = strings.ReplaceAll(txt, "gh", "22")
	txt = strings.ReplaceAll(txt, "g", "k")
	txt = compactUpper(txt, "stpkfmn")
	txt = strings.ReplaceAll(txt, "w3", "W3")
	txt = strings.ReplaceAll(txt, "wh3", "Wh3")
	txt = replaceEnd(txt, "w", "3")
	txt = strings.ReplaceAll(txt, "w", "2")
	txt = replaceStart(txt, "h", "A")
	txt = strings.ReplaceAll(txt, "h", "2")
	txt = strings.ReplaceAll(txt, "r3", "R3")
	txt = replaceEnd(txt, "r", "3")
	txt = strings.ReplaceAll(txt, "r", "2")
	txt = strings.ReplaceAll(txt, "l3", "L3")
	txt = replaceEnd(txt, "l", "3")
	txt = strings.ReplaceAll(txt, "l", "2")

	txt = strings.ReplaceAll(txt, "2", "")
	txt = replaceEnd(txt, "3", "A")
	txt = strings.ReplaceAll(txt, "3", "")

	txt += caverphone2Pad
	return txt[:len(caverphone2Pad)]
}
