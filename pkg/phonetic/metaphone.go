package phonetic

import "strings"

const (
	metaphoneFrontV = "EIY"
	metaphoneVarson = "CSPTG"
)

// Metaphone implements Lawrence Philips' 1990 Metaphone algorithm. The
// code is truncated to a maximum length, four by default.
type Metaphone struct {
	maxCodeLength int
}

var _ Encoder = Metaphone{}

// DefaultMetaphone produces the customary four-character codes.
var DefaultMetaphone = Metaphone{maxCodeLength: 4}

// NewMetaphone returns an encoder producing codes of at most
// maxCodeLength characters.
func NewMetaphone(maxCodeLength int) Metaphone {
	return Metaphone{maxCodeLength: maxCodeLength}
}

func metaphoneVowelAt(text []rune, index int) bool {
	if index < 0 || index >= len(text) {
		return false
	}
	return isVowel(lowerASCII(text[index]), false)
}

func metaphonePrevious(text []rune, index int, ch rune) bool {
	return index > 0 && text[index-1] == ch
}

func metaphoneNext(text []rune, index int, ch rune) bool {
	return index+1 < len(text) && text[index+1] == ch
}

// metaphoneRegion reports whether test occurs anywhere in text from
// index on, provided text is long enough to hold it there. This looser
// lookahead matches the historical behavior the published code vectors
// were produced with.
func metaphoneRegion(text []rune, index int, test string) bool {
	if index+len(test) > len(text) {
		return false
	}
	return strings.Contains(string(text[index:]), test)
}

func metaphoneLast(size, n int) bool {
	return n+1 == size
}

// Encode returns the Metaphone code of value.
func (m Metaphone) Encode(value string) string {
	inwd := []rune(strings.ToUpper(value))
	if len(inwd) == 1 {
		return string(inwd)
	}
	if len(inwd) == 0 {
		return ""
	}

	var local []rune
	switch inwd[0] {
	case 'K', 'G', 'P':
		if len(inwd) > 1 && inwd[1] == 'N' {
			local = inwd[1:]
		} else {
			local = inwd
		}
	case 'A':
		if len(inwd) > 1 && inwd[1] == 'E' {
			local = inwd[1:]
		} else {
			local = inwd
		}
	case 'W':
		switch {
		case len(inwd) > 1 && inwd[1] == 'R':
			local = inwd[1:]
		case len(inwd) > 1 && inwd[1] == 'H':
			local = append([]rune{'W'}, inwd[2:]...)
		default:
			local = inwd
		}
	case 'X':
		local = append([]rune{'S'}, inwd[1:]...)
	default:
		local = inwd
	}

	wdsz := len(local)
	var code []rune
	skip := 0

	for index, symb := range local {
		if skip > 0 {
			skip--
			continue
		}
		if len(code) == m.maxCodeLength {
			break
		}
		if symb != 'C' && metaphonePrevious(local, index, symb) {
			continue
		}

		switch symb {
		case 'A', 'E', 'I', 'O', 'U':
			if index == 0 {
				code = append(code, symb)
			}
		case 'B':
			if !metaphonePrevious(local, index, 'M') || !metaphoneLast(wdsz, index) {
				code = append(code, symb)
			}
		case 'C':
			frontNext := index+1 < wdsz && strings.ContainsRune(metaphoneFrontV, local[index+1])
			switch {
			case metaphonePrevious(local, index, 'S') && !metaphoneLast(wdsz, index) && frontNext:
				// dropped, as in SCE / SCI / SCY
			case metaphoneRegion(local, index, "CIA"):
				code = append(code, 'X')
			case !metaphoneLast(wdsz, index) && frontNext:
				code = append(code, 'S')
			case metaphonePrevious(local, index, 'S') && metaphoneNext(local, index, 'H'):
				code = append(code, 'K')
			case metaphoneNext(local, index, 'H'):
				if index == 0 && wdsz > 3 && metaphoneVowelAt(local, 2) {
					code = append(code, 'K')
				} else {
					code = append(code, 'X')
				}
			default:
				code = append(code, 'K')
			}
		case 'D':
			if !metaphoneLast(wdsz, index+1) && metaphoneNext(local, index, 'G') &&
				index+2 < wdsz && strings.ContainsRune(metaphoneFrontV, local[index+2]) {
				code = append(code, 'J')
				skip = 2
			} else {
				code = append(code, 'T')
			}
		case 'G':
			silent := (metaphoneLast(wdsz, index+1) && metaphoneNext(local, index, 'H')) ||
				(!metaphoneLast(wdsz, index+1) && metaphoneNext(local, index, 'H') && !metaphoneVowelAt(local, index+2)) ||
				(index > 0 && (metaphoneRegion(local, index, "GN") || metaphoneRegion(local, index, "GNED")))
			if !silent {
				hard := metaphonePrevious(local, index, 'G')
				if !metaphoneLast(wdsz, index) && strings.ContainsRune(metaphoneFrontV, local[index+1]) && !hard {
					code = append(code, 'J')
				} else {
					code = append(code, 'K')
				}
			}
		case 'H':
			silent := metaphoneLast(wdsz, index) ||
				(index > 0 && strings.ContainsRune(metaphoneVarson, local[index-1]))
			if !silent && metaphoneVowelAt(local, index+1) {
				code = append(code, 'H')
			}
		case 'F', 'J', 'L', 'M', 'N', 'R':
			code = append(code, symb)
		case 'K':
			if index == 0 || !metaphonePrevious(local, index, 'C') {
				code = append(code, symb)
			}
		case 'P':
			if metaphoneNext(local, index, 'H') {
				code = append(code, 'F')
			} else {
				code = append(code, symb)
			}
		case 'Q':
			code = append(code, 'K')
		case 'S':
			if metaphoneRegion(local, index, "SH") ||
				metaphoneRegion(local, index, "SIO") ||
				metaphoneRegion(local, index, "SIA") {
				code = append(code, 'X')
			} else {
				code = append(code, 'S')
			}
		case 'T':
			switch {
			case metaphoneRegion(local, index, "TIA"), metaphoneRegion(local, index, "TIO"):
				code = append(code, 'X')
			case metaphoneRegion(local, index, "TCH"):
				// dropped
			case metaphoneRegion(local, index, "TH"):
				code = append(code, '0')
			default:
				code = append(code, 'T')
			}
		case 'V':
			code = append(code, 'F')
		case 'W', 'Y':
			if !metaphoneLast(wdsz, index) && metaphoneVowelAt(local, index+1) {
				code = append(code, symb)
			}
		case 'X':
			code = append(code, 'K', 'S')
		case 'Z':
			code = append(code, 'S')
		}

		if len(code) > m.maxCodeLength {
			code = code[:m.maxCodeLength]
		}
	}

	return string(code)
}
