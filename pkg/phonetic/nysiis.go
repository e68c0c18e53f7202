package phonetic

import "strings"

// NYSIIS implements the New York State Identification and Intelligence
// System code. In strict mode (the default) the code is truncated to
// six characters.
type NYSIIS struct {
	strict bool
}

var _ Encoder = NYSIIS{}

// DefaultNYSIIS is the strict (six character) variant.
var DefaultNYSIIS = NYSIIS{strict: true}

// NewNYSIIS returns an encoder; strict caps the code at six characters.
func NewNYSIIS(strict bool) NYSIIS {
	return NYSIIS{strict: strict}
}

// nysiisTranscode maps the character at the current position given its
// neighbours. The returned string overwrites the buffer starting at the
// current position, so multi-character results rewrite lookahead
// characters in place.
func nysiisTranscode(prev, cur, next, nextNext rune) string {
	if cur == 'E' && next == 'V' {
		return "AF"
	}
	if isVowel(lowerASCII(cur), false) {
		return "A"
	}
	switch {
	case cur == 'Q':
		return "G"
	case cur == 'Z':
		return "S"
	case cur == 'M':
		return "N"
	case cur == 'K' && next == 'N':
		return "NN"
	case cur == 'K':
		return "C"
	}
	if cur == 'S' && next == 'C' && nextNext == 'H' {
		return "SSS"
	}
	if cur == 'P' && next == 'H' {
		return "FF"
	}
	hSilent := cur == 'H' && (!isVowel(lowerASCII(prev), false) || !isVowel(lowerASCII(next), false))
	wAfterVowel := cur == 'W' && isVowel(lowerASCII(prev), false)
	if hSilent || wAfterVowel {
		return string(prev)
	}
	return string(cur)
}

func lowerASCII(r rune) rune {
	if r >= 'A' && r <= 'Z' {
		return r + ('a' - 'A')
	}
	return r
}

// Encode computes the NYSIIS code: prefix and suffix rewrites, then a
// left-to-right transcode pass that collapses repeats, then final
// trailing-S/AY/A trimming.
func (n NYSIIS) Encode(value string) string {
	tmp := soundexClean(value)
	if tmp == "" {
		return ""
	}

	switch {
	case strings.HasPrefix(tmp, "MAC"):
		tmp = "MCC" + tmp[3:]
	case strings.HasPrefix(tmp, "KN"):
		tmp = "NN" + tmp[2:]
	case strings.HasPrefix(tmp, "K"):
		tmp = "C" + tmp[1:]
	case strings.HasPrefix(tmp, "PH"), strings.HasPrefix(tmp, "PF"):
		tmp = "FF" + tmp[2:]
	case strings.HasPrefix(tmp, "SCH"):
		tmp = "SSS" + tmp[3:]
	}

	switch {
	case strings.HasSuffix(tmp, "EE"), strings.HasSuffix(tmp, "IE"):
		tmp = tmp[:len(tmp)-2] + "Y"
	case strings.HasSuffix(tmp, "DT"), strings.HasSuffix(tmp, "RT"),
		strings.HasSuffix(tmp, "RD"), strings.HasSuffix(tmp, "NT"),
		strings.HasSuffix(tmp, "ND"):
		tmp = tmp[:len(tmp)-2] + "D"
	}

	chars := []rune(tmp)
	key := []rune{chars[0]}

	for i := 1; i < len(chars); i++ {
		next, nextNext := rune(0), rune(0)
		if i+1 < len(chars) {
			next = chars[i+1]
		}
		if i+2 < len(chars) {
			nextNext = chars[i+2]
		}
		transcoded := nysiisTranscode(chars[i-1], chars[i], next, nextNext)
		for j, c := range []rune(transcoded) {
			if i+j < len(chars) {
				chars[i+j] = c
			}
		}
		if chars[i-1] != chars[i] {
			key = append(key, chars[i])
		}
	}

	result := string(key)
	if len(result) > 1 {
		result = strings.TrimSuffix(result, "S")
		if len(result) > 2 && strings.HasSuffix(result, "AY") {
			result = result[:len(result)-2] + "Y"
		}
		result = strings.TrimSuffix(result, "A")
	}

	if n.strict && len(result) > 6 {
		result = result[:6]
	}
	return result
}
