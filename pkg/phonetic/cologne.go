package phonetic

import "strings"

// Cologne implements the Kölner Phonetik, a soundex-like procedure
// tuned for German words. Codes are digit strings of unbounded length;
// '0' (vowel) is only ever kept at the start of the code.
type Cologne struct{}

var _ Encoder = Cologne{}

const cologneIgnore = '-'

// cologneOutput collapses consecutive identical codes and drops
// non-leading '0' while pushing.
type cologneOutput struct {
	last rune
	b    strings.Builder
}

func (o *cologneOutput) push(ch rune) {
	if ch != cologneIgnore && o.last != ch && (ch != '0' || o.b.Len() == 0) {
		o.b.WriteRune(ch)
	}
	o.last = ch
}

func cologneContains(set string, ch rune) bool {
	return strings.ContainsRune(set, ch)
}

// Encode maps the input to its Cologne code. Case and umlauts are
// normalized first; any rune outside A-Z after normalization separates
// letters without contributing a code.
func (c Cologne) Encode(s string) string {
	out := &cologneOutput{last: '/'}

	tmp := strings.ToUpper(s)
	tmp = strings.ReplaceAll(tmp, "Ä", "A")
	tmp = strings.ReplaceAll(tmp, "Ü", "U")
	tmp = strings.ReplaceAll(tmp, "Ö", "O")

	runes := []rune(tmp)
	last := cologneIgnore
	for i, ch := range runes {
		if ch < 'A' || ch > 'Z' {
			continue
		}
		next := cologneIgnore
		if i+1 < len(runes) {
			next = runes[i+1]
		}

		switch {
		case cologneContains("AEIJOUY", ch):
			out.push('0')
		case ch == 'B' || (ch == 'P' && next != 'H'):
			out.push('1')
		case (ch == 'D' || ch == 'T') && !cologneContains("CSZ", next):
			out.push('2')
		case cologneContains("FPVW", ch):
			out.push('3')
		case cologneContains("GKQ", ch):
			out.push('4')
		case ch == 'X' && !cologneContains("CKQ", last):
			out.push('4')
			out.push('8')
		case ch == 'S' || ch == 'Z':
			out.push('8')
		case ch == 'C':
			switch {
			case out.b.Len() == 0:
				if cologneContains("AHKLOQRUX", next) {
					out.push('4')
				} else {
					out.push('8')
				}
			case cologneContains("SZ", last) || !cologneContains("AHKOQUX", next):
				out.push('8')
			default:
				out.push('4')
			}
		case cologneContains("DTX", ch):
			out.push('8')
		default:
			switch ch {
			case 'R':
				out.push('7')
			case 'L':
				out.push('5')
			case 'M', 'N':
				out.push('6')
			case 'H':
				out.push(cologneIgnore)
			}
		}

		last = ch
	}

	return out.b.String()
}
