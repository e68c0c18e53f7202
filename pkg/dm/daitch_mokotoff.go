// Package dm implements the Daitch-Mokotoff soundex, a genealogy
// oriented refinement of the classic soundex with branching: a name may
// yield several six-digit codes when a letter group has more than one
// plausible pronunciation.
//
// The coding chart ships embedded (rules/dmrules.txt) and follows the
// shared resource format: quadruplet rules plus "<char>=<char>" ASCII
// folding lines, with "//" and "/* ... */" comments.
package dm

import (
	_ "embed"
	"sort"
	"strings"
	"unicode"

	"github.com/cockroachdb/errors"

	"github.com/temporal-IPA/phonetics/pkg/rules"
)

//go:embed rules/dmrules.txt
var defaultRules string

const defaultRulesName = "dmrules.txt"

// maxLength is the length of a Daitch-Mokotoff code.
const maxLength = 6

type branch struct {
	builder         string
	lastReplacement string
	hasLast         bool
}

// finish pads the code with '0' up to maxLength.
func (b *branch) finish() {
	for len(b.builder) < maxLength {
		b.builder += "0"
	}
}

// processNextReplacement appends replacement unless the previous
// replacement already ends with it; force overrides the suppression,
// which is needed for adjacent m and n.
func (b *branch) processNextReplacement(replacement string, force bool) {
	append_ := !b.hasLast || !strings.HasSuffix(b.lastReplacement, replacement) || force

	if append_ && len(b.builder) < maxLength {
		b.builder += replacement
		if len(b.builder) > maxLength {
			b.builder = b.builder[:maxLength]
		}
	}

	b.lastReplacement = replacement
	b.hasLast = true
}

type rule struct {
	pattern               string
	patternLength         int
	replacementAtStart    []string
	replacementBeforeVowel []string
	replacementDefault    []string
}

func (r rule) matches(context []rune) bool {
	return strings.HasPrefix(string(context), r.pattern)
}

func (r rule) replacements(context []rune, atStart bool) []string {
	if atStart {
		return r.replacementAtStart
	}
	if r.patternLength < len(context) && isVowel(context[r.patternLength]) {
		return r.replacementBeforeVowel
	}
	return r.replacementDefault
}

func isVowel(ch rune) bool {
	switch ch {
	case 'a', 'e', 'i', 'o', 'u':
		return true
	}
	return false
}

// Soundex is a Daitch-Mokotoff encoder built from a coding chart.
// Values are safe for concurrent use.
type Soundex struct {
	asciiFolding bool
	rules        map[rune][]rule
	folding      map[rune]rune
}

// Builder configures and constructs a Soundex.
type Builder struct {
	rules        string
	rulesName    string
	asciiFolding bool
}

// NewBuilder returns a builder preloaded with the embedded coding chart
// and ASCII folding enabled.
func NewBuilder() Builder {
	return Builder{rules: defaultRules, rulesName: defaultRulesName, asciiFolding: true}
}

// WithRules replaces the coding chart text; name is used in parse
// errors.
func (b Builder) WithRules(name, text string) Builder {
	b.rules = text
	b.rulesName = name
	return b
}

// ASCIIFolding enables or disables the "<char>=<char>" folding rules.
func (b Builder) ASCIIFolding(enabled bool) Builder {
	b.asciiFolding = enabled
	return b
}

// Build parses the coding chart and returns the encoder.
func (b Builder) Build() (*Soundex, error) {
	s := &Soundex{
		asciiFolding: b.asciiFolding,
		rules:        make(map[rune][]rule),
		folding:      make(map[rune]rune),
	}

	err := rules.ForEach(b.rules, func(line rules.Line) error {
		if fields, ok := rules.Quadruplet(line.Text); ok {
			r := rule{
				pattern:                fields[0],
				patternLength:          len([]rune(fields[0])),
				replacementAtStart:     strings.Split(fields[1], "|"),
				replacementBeforeVowel: strings.Split(fields[2], "|"),
				replacementDefault:     strings.Split(fields[3], "|"),
			}
			first := []rune(r.pattern)[0]
			s.rules[first] = append(s.rules[first], r)
			return nil
		}
		if from, to, ok := rules.Folding(line.Text); ok {
			s.folding[from] = to
			return nil
		}
		return errors.WithStack(&rules.ParseError{
			Filename: b.rulesName,
			Line:     line.Number,
			Content:  line.Text,
			Reason:   "can't recognize line",
		})
	})
	if err != nil {
		return nil, err
	}

	// Longest pattern first, so "chs" wins over "ch" and "c".
	for _, rs := range s.rules {
		sort.SliceStable(rs, func(i, j int) bool {
			return rs[i].patternLength > rs[j].patternLength
		})
	}

	return s, nil
}

// New returns an encoder using the embedded coding chart.
func New() (*Soundex, error) {
	return NewBuilder().Build()
}

// Soundex encodes value with branching. The codes are joined with a
// pipe, in generation order with duplicates removed.
func (s *Soundex) Soundex(value string) string {
	return strings.Join(s.Codes(value, true), "|")
}

// Encode encodes value without branching and returns the single code.
func (s *Soundex) Encode(value string) string {
	codes := s.Codes(value, false)
	if len(codes) == 0 {
		return ""
	}
	return codes[0]
}

// Codes encodes value and returns the code list. With branching
// disabled the list has exactly one entry.
func (s *Soundex) Codes(value string, branching bool) []string {
	var source []rune
	for _, ch := range value {
		if unicode.IsSpace(ch) {
			continue
		}
		lower := unicode.ToLower(ch)
		if s.asciiFolding {
			if folded, ok := s.folding[lower]; ok {
				lower = folded
			}
		}
		source = append(source, lower)
	}

	currentBranches := []branch{{}}

	lastChar := rune(0)
	for index := 0; index < len(source); index++ {
		ch := source[index]
		charRules, ok := s.rules[ch]
		if !ok {
			continue
		}
		for _, r := range charRules {
			context := source[index:]
			if !r.matches(context) {
				continue
			}

			replacements := r.replacements(context, lastChar == 0)
			force := (lastChar == 'm' && ch == 'n') || (lastChar == 'n' && ch == 'm')

			var nextBranches []branch
			for _, cur := range currentBranches {
				for _, replacement := range replacements {
					next := cur
					next.processNextReplacement(replacement, force)
					if !containsBranch(nextBranches, next) {
						nextBranches = append(nextBranches, next)
					}
					if !branching {
						break
					}
				}
			}
			currentBranches = nextBranches

			index += r.patternLength - 1
			break
		}
		lastChar = ch
	}

	result := make([]string, 0, len(currentBranches))
	for i := range currentBranches {
		currentBranches[i].finish()
		result = append(result, currentBranches[i].builder)
	}
	return result
}

func containsBranch(branches []branch, b branch) bool {
	for _, existing := range branches {
		if existing == b {
			return true
		}
	}
	return false
}
