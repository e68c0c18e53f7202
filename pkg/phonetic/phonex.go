package phonetic

import "strings"

// Phonex is the Lait/Randell 1996 refinement of Soundex, described in
// "An assessment of name matching algorithms". It rewrites a handful of
// leading letter groups before transcoding, and codes L and R by
// whether a vowel follows.
type Phonex struct {
	maxCodeLength int
}

var _ Encoder = Phonex{}

// DefaultPhonex produces the customary four-character codes.
var DefaultPhonex = Phonex{maxCodeLength: 4}

// NewPhonex returns an encoder producing codes of at most maxCodeLength
// characters, zero padded.
func NewPhonex(maxCodeLength int) Phonex {
	return Phonex{maxCodeLength: maxCodeLength}
}

func (p Phonex) preprocess(value string) string {
	input := soundexClean(value)

	for strings.HasSuffix(input, "S") {
		input = input[:len(input)-1]
	}

	switch {
	case strings.HasPrefix(input, "KN"):
		input = "N" + input[2:]
	case strings.HasPrefix(input, "PH"):
		input = "F" + input[2:]
	case strings.HasPrefix(input, "WR"):
		input = "R" + input[2:]
	}

	if strings.HasPrefix(input, "H") {
		input = input[1:]
	}

	if input != "" {
		switch input[0] {
		case 'E', 'I', 'O', 'U', 'Y':
			input = "A" + input[1:]
		case 'P':
			input = "B" + input[1:]
		case 'V':
			input = "F" + input[1:]
		case 'K', 'Q':
			input = "C" + input[1:]
		case 'J':
			input = "G" + input[1:]
		case 'Z':
			input = "S" + input[1:]
		}
	}

	return input
}

func phonexVowel(r rune) bool {
	return isVowel(lowerASCII(r), true)
}

// transcode returns the digit for cur and whether the following
// character is consumed as part of the same group (MD, MG, ND, NG).
func (p Phonex) transcode(cur, next rune, isLast bool) (rune, bool) {
	skipNext := false
	var code rune
	switch cur {
	case 'B', 'P', 'F', 'V':
		code = '1'
	case 'C', 'S', 'K', 'G', 'J', 'Q', 'X', 'Z':
		code = '2'
	case 'D', 'T':
		if next == 'C' {
			code = '0'
		} else {
			code = '3'
		}
	case 'L':
		if phonexVowel(next) || isLast {
			code = '4'
		} else {
			code = '0'
		}
	case 'M', 'N':
		skipNext = next == 'D' || next == 'G'
		code = '5'
	case 'R':
		if phonexVowel(next) || isLast {
			code = '6'
		} else {
			code = '0'
		}
	default:
		code = '0'
	}
	return code, skipNext
}

// Encode returns the Phonex code: the (preprocessed) first letter
// followed by digit codes, zero padded to the maximum length.
func (p Phonex) Encode(value string) string {
	chars := []rune(p.preprocess(value))

	var result []rune
	last := '0'

	for i := 0; i < len(chars) && len(result) < p.maxCodeLength; i++ {
		cur := chars[i]
		next := rune(0)
		if i+1 < len(chars) {
			next = chars[i+1]
		}
		code, skipNext := p.transcode(cur, next, i == len(chars)-1)
		if skipNext {
			i++
		}

		if last != code && code != '0' && i != 0 {
			result = append(result, code)
		}

		if i == 0 {
			result = append(result, cur)
			last = code
		} else {
			last = result[len(result)-1]
		}
	}

	for len(result) < p.maxCodeLength {
		result = append(result, '0')
	}
	return string(result)
}
