package phonetic

import "strings"

var (
	dmSilentStart    = []string{"GN", "KN", "PN", "WR", "PS"}
	dmLRNMBHFVWSpace = []string{"L", "R", "N", "M", "B", "H", "F", "V", "W", " "}
	dmESToER         = []string{"ES", "EP", "EB", "EL", "EY", "IB", "IL", "IN", "IE", "EI", "ER"}
	dmLTKSNMBZ       = []string{"L", "T", "K", "S", "N", "M", "B", "Z"}
)

// DoubleMetaphoneResult holds the two codes Double Metaphone can
// produce for a word.
type DoubleMetaphoneResult struct {
	primary   []rune
	alternate []rune
	maxLength int
}

// Primary returns the primary code.
func (r *DoubleMetaphoneResult) Primary() string { return string(r.primary) }

// Alternate returns the alternate code.
func (r *DoubleMetaphoneResult) Alternate() string { return string(r.alternate) }

func (r *DoubleMetaphoneResult) appendBoth(ch rune) {
	r.appendPrimary(ch)
	r.appendAlternate(ch)
}

func (r *DoubleMetaphoneResult) append(ch, alternate rune) {
	r.appendPrimary(ch)
	r.appendAlternate(alternate)
}

func (r *DoubleMetaphoneResult) appendPrimary(ch rune) {
	if len(r.primary) < r.maxLength {
		r.primary = append(r.primary, ch)
	}
}

func (r *DoubleMetaphoneResult) appendAlternate(ch rune) {
	if len(r.alternate) < r.maxLength {
		r.alternate = append(r.alternate, ch)
	}
}

func (r *DoubleMetaphoneResult) appendStrBoth(value string) {
	r.appendStr(value, value)
}

func (r *DoubleMetaphoneResult) appendStr(value, alternate string) {
	for _, ch := range value {
		r.appendPrimary(ch)
	}
	for _, ch := range alternate {
		r.appendAlternate(ch)
	}
}

func (r *DoubleMetaphoneResult) isComplete() bool {
	return len(r.primary) >= r.maxLength && len(r.alternate) >= r.maxLength
}

// DoubleMetaphone implements Lawrence Philips' Double Metaphone. Encode
// returns the primary code; EncodeAlternate and DoubleMetaphone give
// access to the alternate one.
type DoubleMetaphone struct {
	maxCodeLength int
}

var _ Encoder = DoubleMetaphone{}

// DefaultDoubleMetaphone produces the customary four-character codes.
var DefaultDoubleMetaphone = DoubleMetaphone{maxCodeLength: 4}

// NewDoubleMetaphone returns an encoder producing codes of at most
// maxCodeLength characters.
func NewDoubleMetaphone(maxCodeLength int) DoubleMetaphone {
	return DoubleMetaphone{maxCodeLength: maxCodeLength}
}

// dmContains reports whether the substring of length chars starting at
// start equals one of the criteria. Out-of-range regions never match.
func dmContains(value []rune, start, length int, criteria ...string) bool {
	if start < 0 || start+length > len(value) {
		return false
	}
	target := string(value[start : start+length])
	for _, c := range criteria {
		if target == c {
			return true
		}
	}
	return false
}

func dmCharAt(value []rune, index int) rune {
	if index < 0 || index >= len(value) {
		return 0
	}
	return value[index]
}

func dmVowelAt(value []rune, index int) bool {
	if index < 0 || index >= len(value) {
		return false
	}
	return isVowel(lowerASCII(value[index]), true)
}

func dmSlavoGermanic(value string) bool {
	return strings.ContainsAny(value, "WK") ||
		strings.Contains(value, "CZ") ||
		strings.Contains(value, "WITZ")
}

// Encode returns the primary Double Metaphone code.
func (m DoubleMetaphone) Encode(value string) string {
	return m.DoubleMetaphone(value).Primary()
}

// EncodeAlternate returns the alternate Double Metaphone code.
func (m DoubleMetaphone) EncodeAlternate(value string) string {
	return m.DoubleMetaphone(value).Alternate()
}

// IsEncodedEqual reports whether the two values share a code; alternate
// selects which of the two codes is compared.
func (m DoubleMetaphone) IsEncodedEqual(value1, value2 string, alternate bool) bool {
	r1 := m.DoubleMetaphone(value1)
	r2 := m.DoubleMetaphone(value2)
	if alternate {
		return r1.Alternate() == r2.Alternate()
	}
	return r1.Primary() == r2.Primary()
}

// DoubleMetaphone computes both codes for value.
func (m DoubleMetaphone) DoubleMetaphone(value string) *DoubleMetaphoneResult {
	result := &DoubleMetaphoneResult{maxLength: m.maxCodeLength}
	trimmed := strings.TrimSpace(value)
	if trimmed == "" {
		return result
	}

	upper := strings.ToUpper(trimmed)
	slavoGermanic := dmSlavoGermanic(upper)
	rs := []rune(upper)

	index := 0
	for _, sl := range dmSilentStart {
		if strings.HasPrefix(upper, sl) {
			index = 1
			break
		}
	}

	for index < len(rs) && !result.isComplete() {
		skip := 0
		switch ch := rs[index]; ch {
		case 'A', 'E', 'I', 'O', 'U', 'Y':
			if index == 0 {
				result.appendBoth('A')
			}
		case 'B':
			result.appendBoth('P')
			if dmCharAt(rs, index+1) == 'B' {
				skip = 1
			}
		case 'Ç':
			result.appendBoth('S')
		case 'C':
			skip = handleC(rs, result, index)
		case 'D':
			skip = handleD(rs, result, index)
		case 'F':
			result.appendBoth('F')
			if dmCharAt(rs, index+1) == 'F' {
				skip = 1
			}
		case 'G':
			skip = handleG(rs, result, index, slavoGermanic)
		case 'H':
			skip = handleH(rs, result, index)
		case 'J':
			skip = handleJ(rs, result, index, slavoGermanic)
		case 'K':
			result.appendBoth('K')
			if dmCharAt(rs, index+1) == 'K' {
				skip = 1
			}
		case 'L':
			skip = handleL(rs, result, index)
		case 'M':
			result.appendBoth('M')
			if conditionM0(rs, index) {
				skip = 1
			}
		case 'N':
			result.appendBoth('N')
			if dmCharAt(rs, index+1) == 'N' {
				skip = 1
			}
		case 'Ñ':
			result.appendBoth('N')
		case 'P':
			skip = handleP(rs, result, index)
		case 'Q':
			result.appendBoth('K')
			if dmCharAt(rs, index+1) == 'Q' {
				skip = 1
			}
		case 'R':
			skip = handleR(rs, result, index, slavoGermanic)
		case 'S':
			skip = handleS(rs, result, index, slavoGermanic)
		case 'T':
			skip = handleT(rs, result, index)
		case 'V':
			result.appendBoth('F')
			if dmCharAt(rs, index+1) == 'V' {
				skip = 1
			}
		case 'W':
			skip = handleW(rs, result, index)
		case 'X':
			skip = handleX(rs, result, index)
		case 'Z':
			skip = handleZ(rs, result, index, slavoGermanic)
		}
		index += skip + 1
	}

	return result
}

func handleC(value []rune, result *DoubleMetaphoneResult, index int) int {
	switch {
	case conditionC0(value, index):
		result.appendBoth('K')
		return 1
	case index == 0 && dmContains(value, index, 6, "CAESAR"):
		result.appendBoth('S')
		return 1
	case dmContains(value, index, 2, "CH"):
		return handleCH(value, result, index)
	case dmContains(value, index, 2, "CZ") &&
		!dmContains(value, index-2, 4, "WICZ"):
		// Czerny
		result.append('S', 'X')
		return 1
	case dmContains(value, index+1, 3, "CIA"):
		// focaccia
		result.appendBoth('X')
		return 2
	case dmContains(value, index, 2, "CC") &&
		!(index == 1 && dmCharAt(value, 0) == 'M'):
		// double cc but not McClelland
		return handleCC(value, result, index)
	case dmContains(value, index, 2, "CK", "CG", "CQ"):
		result.appendBoth('K')
		return 1
	case dmContains(value, index, 2, "CI", "CE", "CY"):
		// Italian vs English
		if dmContains(value, index, 3, "CIO", "CIE", "CIA") {
			result.append('S', 'X')
		} else {
			result.appendBoth('S')
		}
		return 1
	default:
		result.appendBoth('K')
		switch {
		case dmContains(value, index+1, 2, " C", " Q", " G"):
			// Mac Caffrey, Mac Gregor
			return 2
		case dmContains(value, index+1, 1, "C", "K", "Q") &&
			!dmContains(value, index+1, 2, "CE", "CI"):
			return 1
		default:
			return 0
		}
	}
}

func conditionC0(value []rune, index int) bool {
	if dmContains(value, index, 4, "CHIA") {
		return true
	}
	if index < 1 {
		return false
	}
	if index < 2 || dmVowelAt(value, index-2) {
		return false
	}
	if !dmContains(value, index-1, 3, "ACH") {
		return false
	}
	ch := dmCharAt(value, index+2)
	return (ch != 'I' && ch != 'E') ||
		dmContains(value, index-2, 6, "BACHER", "MACHER")
}

func handleCH(value []rune, result *DoubleMetaphoneResult, index int) int {
	switch {
	case index > 0 && dmContains(value, index, 4, "CHAE"):
		// Michael
		result.append('K', 'X')
	case conditionCH0(value, index) || conditionCH1(value, index):
		// Greek roots and other kh sounds
		result.appendBoth('K')
	case index > 0:
		if dmContains(value, 0, 2, "MC") {
			result.appendBoth('K')
		} else {
			result.append('X', 'K')
		}
	default:
		result.appendBoth('X')
	}
	return 1
}

func conditionCH0(value []rune, index int) bool {
	if index != 0 {
		return false
	}
	if !dmContains(value, index+1, 5, "HARAC", "HARIS") &&
		!dmContains(value, index+1, 3, "HOR", "HYM", "HIA", "HEM") {
		return false
	}
	return !dmContains(value, 0, 5, "CHORE")
}

func conditionCH1(value []rune, index int) bool {
	return dmContains(value, 0, 4, "VAN ", "VON ") ||
		dmContains(value, 0, 3, "SCH") ||
		(index > 1 && dmContains(value, index-2, 6, "ORCHES", "ARCHIT", "ORCHID")) ||
		(index > 1 && dmContains(value, index+2, 1, "T", "S")) ||
		((index == 0 || dmContains(value, index-1, 1, "A", "O", "U", "E")) &&
			(dmContains(value, index+2, 1, dmLRNMBHFVWSpace...) || index+1 == len(value)-1))
}

func handleCC(value []rune, result *DoubleMetaphoneResult, index int) int {
	if dmContains(value, index+2, 1, "I", "E", "H") &&
		!dmContains(value, index+2, 2, "HU") {
		// bellocchio but not bacchus
		if (index == 1 && dmCharAt(value, index-1) == 'A') ||
			dmContains(value, index-1, 5, "UCCEE", "UCCES") {
			// accident, accede, succeed
			result.appendStrBoth("KS")
		} else {
			// bacci, bertucci, other Italian
			result.appendBoth('X')
		}
		return 2
	}
	// Pierce's rule
	result.appendBoth('K')
	return 1
}

func handleD(value []rune, result *DoubleMetaphoneResult, index int) int {
	switch {
	case dmContains(value, index, 2, "DG"):
		if dmContains(value, index+2, 1, "I", "E", "Y") {
			result.appendBoth('J')
			return 2
		}
		result.appendStrBoth("TK")
		return 1
	case dmContains(value, index, 2, "DT", "DD"):
		result.appendBoth('T')
		return 1
	default:
		result.appendBoth('T')
		return 0
	}
}

func handleG(value []rune, result *DoubleMetaphoneResult, index int, slavoGermanic bool) int {
	switch {
	case dmCharAt(value, index+1) == 'H':
		return handleGH(value, result, index)
	case dmCharAt(value, index+1) == 'N':
		switch {
		case index == 1 && dmVowelAt(value, 0) && !slavoGermanic:
			result.appendStr("KN", "N")
		case !dmContains(value, index+2, 2, "EY") &&
			dmCharAt(value, index+1) != 'Y' && !slavoGermanic:
			result.appendStr("N", "KN")
		default:
			result.appendStrBoth("KN")
		}
		return 1
	case dmContains(value, index+1, 2, "LI") && !slavoGermanic:
		result.appendStr("KL", "L")
		return 1
	case (index == 0 &&
		(dmCharAt(value, index+1) == 'Y' || dmContains(value, index+1, 2, dmESToER...))) ||
		((dmContains(value, index+1, 2, "ER") || dmCharAt(value, index+1) == 'Y') &&
			!dmContains(value, 0, 6, "DANGER", "RANGER", "MANGER") &&
			(index == 0 || !dmContains(value, index-1, 1, "E", "I")) &&
			(index == 0 || !dmContains(value, index-1, 3, "RGY", "OGY"))):
		// -ger-, -gy-, and -ges- etc. at the beginning
		result.append('K', 'J')
		return 1
	case dmContains(value, index+1, 1, "E", "I", "Y") ||
		(index > 0 && dmContains(value, index-1, 4, "AGGI", "OGGI")):
		// Italian biaggi
		switch {
		case dmContains(value, 0, 4, "VAN ", "VON ") ||
			dmContains(value, 0, 3, "SCH") ||
			dmContains(value, index+1, 2, "ET"):
			// obvious germanic
			result.appendBoth('K')
		case dmContains(value, index+1, 3, "IER"):
			result.appendBoth('J')
		default:
			result.append('J', 'K')
		}
		return 1
	case dmCharAt(value, index+1) == 'G':
		result.appendBoth('K')
		return 1
	default:
		result.appendBoth('K')
		return 0
	}
}

func handleGH(value []rune, result *DoubleMetaphoneResult, index int) int {
	switch {
	case index > 0 && !dmVowelAt(value, index-1):
		result.appendBoth('K')
		return 1
	case index == 0:
		if dmCharAt(value, index+2) == 'I' {
			result.appendBoth('J')
		} else {
			result.appendBoth('K')
		}
		return 1
	case (index > 1 && dmContains(value, index-2, 1, "B", "H", "D")) ||
		(index > 2 && dmContains(value, index-3, 1, "B", "H", "D")) ||
		(index > 3 && dmContains(value, index-4, 1, "B", "H")):
		// Parker's rule, e.g. hugh
		return 1
	default:
		if index > 2 && dmCharAt(value, index-1) == 'U' &&
			dmContains(value, index-3, 1, "C", "G", "L", "R", "T") {
			// laugh, McLaughlin, cough, gough, rough, tough
			result.appendBoth('F')
		} else if index > 0 && dmCharAt(value, index-1) != 'I' {
			result.appendBoth('K')
		}
		return 1
	}
}

func handleH(value []rune, result *DoubleMetaphoneResult, index int) int {
	// keep only if first and before a vowel, or between two vowels;
	// this also swallows HH
	if (index == 0 || dmVowelAt(value, index-1)) && dmVowelAt(value, index+1) {
		result.appendBoth('H')
		return 1
	}
	return 0
}

func handleJ(value []rune, result *DoubleMetaphoneResult, index int, slavoGermanic bool) int {
	if dmContains(value, index, 4, "JOSE") || dmContains(value, 0, 4, "SAN ") {
		// obvious Spanish, Jose, San Jacinto
		if (index == 0 && dmCharAt(value, index+4) == ' ') || len(value) == 4 ||
			dmContains(value, 0, 4, "SAN ") {
			result.appendBoth('H')
		} else {
			result.append('J', 'H')
		}
		return 0
	}

	switch {
	case index == 0:
		result.append('J', 'A')
	case dmVowelAt(value, index-1) && !slavoGermanic &&
		(dmCharAt(value, index+1) == 'A' || dmCharAt(value, index+1) == 'O'):
		result.append('J', 'H')
	case index == len(value)-1:
		result.append('J', ' ')
	case !dmContains(value, index+1, 1, dmLTKSNMBZ...) &&
		(index == 0 || !dmContains(value, index-1, 1, "S", "K", "L")):
		result.appendBoth('J')
	}

	if dmCharAt(value, index+1) == 'J' {
		return 1
	}
	return 0
}

func handleL(value []rune, result *DoubleMetaphoneResult, index int) int {
	if dmCharAt(value, index+1) == 'L' {
		if conditionL0(value, index) {
			result.appendPrimary('L')
		} else {
			result.appendBoth('L')
		}
		return 1
	}
	result.appendBoth('L')
	return 0
}

func conditionL0(value []rune, index int) bool {
	if index == len(value)-3 && index > 0 &&
		dmContains(value, index-1, 4, "ILLO", "ILLA", "ALLE") {
		return true
	}
	return (dmContains(value, len(value)-2, 2, "AS", "OS") ||
		dmContains(value, len(value)-1, 1, "A", "O")) &&
		dmContains(value, index-1, 4, "ALLE")
}

func conditionM0(value []rune, index int) bool {
	if dmCharAt(value, index+1) == 'M' {
		return true
	}
	return index > 0 && dmContains(value, index-1, 3, "UMB") &&
		(index+1 == len(value)-1 || dmContains(value, index+2, 2, "ER"))
}

func handleP(value []rune, result *DoubleMetaphoneResult, index int) int {
	if dmCharAt(value, index+1) == 'H' {
		result.appendBoth('F')
		return 1
	}
	result.appendBoth('P')
	if dmContains(value, index+1, 1, "P", "B") {
		return 1
	}
	return 0
}

func handleR(value []rune, result *DoubleMetaphoneResult, index int, slavoGermanic bool) int {
	if index > 3 && index == len(value)-1 && !slavoGermanic &&
		dmContains(value, index-2, 2, "IE") &&
		!dmContains(value, index-4, 2, "ME", "MA") {
		result.appendAlternate('R')
	} else {
		result.appendBoth('R')
	}
	if dmCharAt(value, index+1) == 'R' {
		return 1
	}
	return 0
}

func handleS(value []rune, result *DoubleMetaphoneResult, index int, slavoGermanic bool) int {
	switch {
	case index > 0 && dmContains(value, index-1, 3, "ISL", "YSL"):
		// island, isle, carlisle, carlysle
		return 0
	case index == 0 && dmContains(value, index, 5, "SUGAR"):
		result.append('X', 'S')
		return 0
	case dmContains(value, index, 2, "SH"):
		if dmContains(value, index+1, 4, "HEIM", "HOEK", "HOLM", "HOLZ") {
			// germanic
			result.appendBoth('S')
		} else {
			result.appendBoth('X')
		}
		return 1
	case dmContains(value, index, 3, "SIO", "SIA") || dmContains(value, index, 4, "SIAN"):
		// Italian and Armenian
		if slavoGermanic {
			result.appendBoth('S')
		} else {
			result.append('S', 'X')
		}
		return 2
	case (index == 0 && dmContains(value, index+1, 1, "M", "N", "L", "W")) ||
		dmContains(value, index+1, 1, "Z"):
		// smith matches schmidt, snider matches schneider; also -sz-
		result.append('S', 'X')
		if dmContains(value, index+1, 1, "Z") {
			return 1
		}
		return 0
	case dmContains(value, index, 2, "SC"):
		return handleSC(value, result, index)
	default:
		if index > 1 && index == len(value)-1 &&
			dmContains(value, index-2, 2, "AI", "OI") {
			// french, e.g. resnais, artois
			result.appendAlternate('S')
		} else {
			result.appendBoth('S')
		}
		if dmContains(value, index+1, 1, "S", "Z") {
			return 1
		}
		return 0
	}
}

func handleSC(value []rune, result *DoubleMetaphoneResult, index int) int {
	switch {
	case dmCharAt(value, index+2) == 'H':
		// Schlesinger's rule
		switch {
		case dmContains(value, index+3, 2, "OO", "ER", "EN", "UY", "ED", "EM"):
			// Dutch origin, e.g. school, schooner
			if dmContains(value, index+3, 2, "ER", "EN") {
				// schermerhorn, schenker
				result.appendStr("X", "SK")
			} else {
				result.appendStrBoth("SK")
			}
		case index == 0 && !dmVowelAt(value, 3) && dmCharAt(value, 3) != 'W':
			result.append('X', 'S')
		default:
			result.appendBoth('X')
		}
	case dmContains(value, index+2, 1, "I", "E", "Y"):
		result.appendBoth('S')
	default:
		result.appendStrBoth("SK")
	}
	return 2
}

func handleT(value []rune, result *DoubleMetaphoneResult, index int) int {
	switch {
	case dmContains(value, index, 4, "TION") || dmContains(value, index, 3, "TIA", "TCH"):
		result.appendBoth('X')
		return 2
	case dmContains(value, index, 2, "TH") || dmContains(value, index, 3, "TTH"):
		if dmContains(value, index+2, 2, "OM", "AM") ||
			dmContains(value, 0, 4, "VAN ", "VON ") ||
			dmContains(value, 0, 3, "SCH") {
			// thomas, thames, or germanic
			result.appendBoth('T')
		} else {
			result.append('0', 'T')
		}
		return 1
	default:
		result.appendBoth('T')
		if dmContains(value, index+1, 1, "T", "D") {
			return 1
		}
		return 0
	}
}

func handleW(value []rune, result *DoubleMetaphoneResult, index int) int {
	switch {
	case dmContains(value, index, 2, "WR"):
		// can also be in the middle of the word
		result.appendBoth('R')
		return 1
	case index == 0 && (dmVowelAt(value, index+1) || dmContains(value, index, 2, "WH")):
		if dmVowelAt(value, index+1) {
			// Wasserman should match Vasserman
			result.append('A', 'F')
		} else {
			// need Uomo to match Womo
			result.appendBoth('A')
		}
		return 0
	case (index > 0 && index == len(value)-1 && dmVowelAt(value, index-1)) ||
		(index > 0 && dmContains(value, index-1, 5, "EWSKI", "EWSKY", "OWSKI", "OWSKY")) ||
		dmContains(value, 0, 3, "SCH"):
		// Arnow should match Arnoff
		result.appendAlternate('F')
		return 0
	case dmContains(value, index, 4, "WICZ", "WITZ"):
		// Polish, e.g. filipowicz
		result.appendStr("TS", "FX")
		return 3
	default:
		return 0
	}
}

func handleX(value []rune, result *DoubleMetaphoneResult, index int) int {
	if index == 0 {
		result.appendBoth('S')
		return 0
	}
	final := index == len(value)-1
	if !(final &&
		(dmContains(value, index-3, 3, "IAU", "EAU") ||
			dmContains(value, index-2, 2, "AU", "OU"))) {
		// french, e.g. breaux
		result.appendStrBoth("KS")
	}
	if dmContains(value, index+1, 1, "C", "X") {
		return 1
	}
	return 0
}

func handleZ(value []rune, result *DoubleMetaphoneResult, index int, slavoGermanic bool) int {
	if dmCharAt(value, index+1) == 'H' {
		// Chinese pinyin, e.g. zhao
		result.appendBoth('J')
		return 1
	}
	if dmContains(value, index+1, 2, "ZO", "ZI", "ZA") ||
		(slavoGermanic && index > 0 && dmCharAt(value, index-1) != 'T') {
		result.appendStr("S", "TS")
	} else {
		result.appendBoth('S')
	}
	if dmCharAt(value, index+1) == 'Z' {
		return 1
	}
	return 0
}
