package phonetic

import "strings"

// MatchRating implements the Western Airlines Match Rating Approach:
// a short consonant-skeleton code plus a dedicated comparison rule
// (minimum rating by summed code length) instead of plain code
// equality. Use IsMatch for the full MRA comparison.
type MatchRating struct{}

var _ Encoder = MatchRating{}

var mraDoubleConsonants = []string{
	"BB", "CC", "DD", "FF", "GG", "HH", "JJ", "KK", "LL", "MM", "NN",
	"PP", "QQ", "RR", "SS", "TT", "VV", "WW", "XX", "YY", "ZZ",
}

const mraPunctuation = "-&'.,"

func mraCleanName(value string) string {
	upper := strings.ToUpper(value)
	var b strings.Builder
	b.Grow(len(upper))
	for _, r := range upper {
		if strings.ContainsRune(mraPunctuation, r) || r == ' ' || r == '\t' || r == '\n' || r == '\r' {
			continue
		}
		b.WriteRune(r)
	}
	return RemoveDiacritics(b.String())
}

func mraRemoveVowels(value string) string {
	var b strings.Builder
	b.Grow(len(value))
	for i, r := range []rune(value) {
		if i > 0 && isVowel(lowerASCII(r), false) {
			continue
		}
		b.WriteRune(r)
	}
	return b.String()
}

func mraRemoveDoubleConsonants(value string) string {
	result := strings.ToUpper(value)
	for _, double := range mraDoubleConsonants {
		result = strings.ReplaceAll(result, double, double[:1])
	}
	return result
}

func mraFirst3Last3(value string) string {
	rs := []rune(value)
	if len(rs) > 6 {
		return string(rs[:3]) + string(rs[len(rs)-3:])
	}
	return value
}

// Encode returns the MRA code: cleaned name, vowels removed (except a
// leading one), doubled consonants collapsed, then first three plus
// last three characters. Inputs of at most one meaningful character
// yield "".
func (MatchRating) Encode(value string) string {
	trimmed := strings.TrimSpace(value)
	if len([]rune(trimmed)) <= 1 {
		return ""
	}
	v := mraCleanName(value)
	v = mraRemoveVowels(v)
	v = mraRemoveDoubleConsonants(v)
	return mraFirst3Last3(v)
}

// minimumRating gives the threshold the comparison count must reach for
// two codes of the given summed length to be considered a match.
func minimumRating(sumLength int) int {
	switch {
	case sumLength <= 4:
		return 5
	case sumLength <= 7:
		return 4
	case sumLength <= 11:
		return 3
	case sumLength == 12:
		return 2
	default:
		return 1
	}
}

// mraCompare blanks characters that agree scanning left-to-right and
// right-to-left simultaneously, then rates the longer residue against
// the ideal length 6.
func mraCompare(name1, name2 string) int {
	n1 := []rune(name1)
	n2 := []rune(name2)

	for i := 0; i < len(n1); i++ {
		if i >= len(n2) {
			break
		}
		if n1[i] == n2[i] {
			n1[i] = ' '
			n2[i] = ' '
		}
		if n1[len(n1)-1-i] == n2[len(n2)-1-i] {
			n1[len(n1)-1-i] = ' '
			n2[len(n2)-1-i] = ' '
		}
	}

	count := func(rs []rune) int {
		n := 0
		for _, r := range rs {
			if r != ' ' {
				n++
			}
		}
		return n
	}
	longer := count(n1)
	if c2 := count(n2); c2 > longer {
		longer = c2
	}
	if longer > 6 {
		return longer - 6
	}
	return 6 - longer
}

// IsMatch applies the full MRA comparison: encode both names, reject
// when the code lengths differ by three or more, then require the
// comparison rating to reach the minimum for the summed code length.
func (m MatchRating) IsMatch(first, second string) bool {
	f := strings.TrimSpace(first)
	s := strings.TrimSpace(second)
	if len([]rune(f)) <= 1 || len([]rune(s)) <= 1 {
		return false
	}
	if first == second {
		return true
	}

	name1 := m.Encode(first)
	name2 := m.Encode(second)

	diff := len(name1) - len(name2)
	if diff < 0 {
		diff = -diff
	}
	if diff >= 3 {
		return false
	}

	return mraCompare(name1, name2) >= minimumRating(len(name1)+len(name2))
}
