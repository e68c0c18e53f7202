package bm

import (
	"sort"
	"strings"

	"github.com/cockroachdb/errors"

	"github.com/temporal-IPA/phonetics/pkg/rules"
)

// Phoneme is a candidate phonetic spelling together with the set of
// languages for which that spelling remains plausible.
type Phoneme struct {
	text      string
	languages LanguageSet
}

// NewPhoneme builds a phoneme from a spelling and a language
// constraint.
func NewPhoneme(text string, languages LanguageSet) Phoneme {
	return Phoneme{text: text, languages: languages}
}

// Text returns the spelling.
func (p Phoneme) Text() string { return p.text }

// Languages returns the language constraint.
func (p Phoneme) Languages() LanguageSet { return p.languages }

func (p Phoneme) String() string {
	return p.text + "[" + p.languages.String() + "]"
}

// joinPhonemes concatenates two spellings under a precomputed language
// constraint.
func joinPhonemes(left, right Phoneme, languages LanguageSet) Phoneme {
	return Phoneme{text: left.text + right.text, languages: languages}
}

func (p Phoneme) append(text string) Phoneme {
	return Phoneme{text: p.text + text, languages: p.languages}
}

func (p Phoneme) mergeLanguages(other LanguageSet) Phoneme {
	return Phoneme{text: p.text, languages: p.languages.Merge(other)}
}

// parsePhoneme parses a single phoneme expression, "text" or
// "text[lang1+lang2]".
func parsePhoneme(expr string) (Phoneme, error) {
	open := strings.IndexRune(expr, '[')
	if open < 0 {
		return Phoneme{text: expr, languages: AnyLanguage}, nil
	}
	if !strings.HasSuffix(expr, "]") {
		return Phoneme{}, errors.Newf("phoneme %q has a '[' but does not end with ']'", expr)
	}
	languages := strings.Split(expr[open+1:len(expr)-1], "+")
	return Phoneme{text: expr[:open], languages: SomeLanguages(languages...)}, nil
}

// parsePhonemeExpr parses the replacement field of a rule: either a
// single phoneme or "(alt1|alt2|...)" alternatives. A leading or
// trailing "|" inside the parentheses adds an empty alternative.
func parsePhonemeExpr(expr string) ([]Phoneme, error) {
	if !strings.HasPrefix(expr, "(") {
		p, err := parsePhoneme(expr)
		if err != nil {
			return nil, err
		}
		return []Phoneme{p}, nil
	}
	if !strings.HasSuffix(expr, ")") {
		return nil, errors.Newf("phoneme expression %q does not end with ')'", expr)
	}
	inner := expr[1 : len(expr)-1]
	var phonemes []Phoneme
	for _, alt := range strings.Split(inner, "|") {
		p, err := parsePhoneme(alt)
		if err != nil {
			return nil, err
		}
		phonemes = append(phonemes, p)
	}
	if strings.HasPrefix(inner, "|") || strings.HasSuffix(inner, "|") {
		phonemes = append(phonemes, Phoneme{languages: AnyLanguage})
	}
	return phonemes, nil
}

// Rule is one transformation: when pattern occurs with satisfied left
// and right contexts, it is replaced by one of the phoneme
// alternatives.
type Rule struct {
	location     string
	line         int
	pattern      []rune
	patternText  string
	leftContext  matcher
	rightContext matcher
	phonemes     []Phoneme
}

// patternAndContextMatches tests the rule at position index of input.
func (r *Rule) patternAndContextMatches(input []rune, index int) bool {
	end := index + len(r.pattern)
	if end > len(input) {
		return false
	}
	if string(input[index:end]) != r.patternText {
		return false
	}
	if !r.rightContext.matches(string(input[end:])) {
		return false
	}
	return r.leftContext.matches(string(input[:index]))
}

// ruleKey identifies one rule group.
type ruleKey struct {
	nameType NameType
	kind     ruleKind
	language string
}

// ruleBucket indexes a rule group by the first rune of each pattern,
// longest pattern first within a bucket.
type ruleBucket map[rune][]*Rule

// Rules is the repository of all parsed transformation rules, grouped
// by name type, phase and language. Read-only once built, so safe to
// share across goroutines.
type Rules struct {
	groups map[ruleKey]ruleBucket
}

// group returns the bucket map for a (name type, phase, language)
// triple. language is a concrete language, "any" or, for the final
// phases, "common". Missing groups return nil, which matches nothing.
func (r *Rules) group(nameType NameType, kind ruleKind, language string) ruleBucket {
	return r.groups[ruleKey{nameType: nameType, kind: kind, language: language}]
}

// resolver fetches the raw text of a named rule resource.
type resolver func(name string) (string, error)

// parseRuleFile parses one rule resource into a bucket map. "#include"
// lines splice the named resource in place.
func parseRuleFile(resolve resolver, filename string, bucket ruleBucket) error {
	content, err := resolve(filename)
	if err != nil {
		return err
	}

	return rules.ForEach(content, func(line rules.Line) error {
		if included, ok := rules.Include(line.Text); ok {
			if err := parseRuleFile(resolve, included, bucket); err != nil {
				return errors.Wrapf(err, "include %q in %s at line %d",
					included, filename, line.Number)
			}
			return nil
		}

		fields, ok := rules.Quadruplet(line.Text)
		if !ok {
			return errors.WithStack(&rules.ParseError{
				Filename: filename,
				Line:     line.Number,
				Content:  line.Text,
				Reason:   "can't recognize rule line",
			})
		}

		r, err := newRule(filename, line.Number, fields)
		if err != nil {
			return errors.WithStack(&rules.ParseError{
				Filename: filename,
				Line:     line.Number,
				Content:  line.Text,
				Reason:   err.Error(),
			})
		}
		bucket[r.pattern[0]] = append(bucket[r.pattern[0]], r)
		return nil
	})
}

func newRule(filename string, line int, fields [4]string) (*Rule, error) {
	left, err := parseMatcher(fields[1])
	if err != nil {
		return nil, err
	}
	right, err := parseMatcher(fields[2])
	if err != nil {
		return nil, err
	}
	phonemes, err := parsePhonemeExpr(fields[3])
	if err != nil {
		return nil, err
	}
	return &Rule{
		location:     filename,
		line:         line,
		pattern:      []rune(fields[0]),
		patternText:  fields[0],
		leftContext:  left,
		rightContext: right,
		phonemes:     phonemes,
	}, nil
}

// buildRules loads every rule resource named by the language lists:
// "<nt>_<kind>_<language>" for each known language plus, for the two
// final phases, "<nt>_<kind>_common". Every resource must resolve.
func buildRules(resolve resolver, languages *Languages) (*Rules, error) {
	r := &Rules{groups: make(map[ruleKey]ruleBucket)}

	for nameType, list := range languages.sets {
		for _, kind := range ruleKinds {
			names := make([]string, 0, len(list)+1)
			for _, language := range list {
				names = append(names, language)
			}
			if kind != rulesKind {
				names = append(names, "common")
			}
			for _, language := range names {
				filename := nameType.String() + "_" + kind.String() + "_" + language
				bucket := make(ruleBucket)
				if err := parseRuleFile(resolve, filename, bucket); err != nil {
					return nil, err
				}
				sortBuckets(bucket)
				r.groups[ruleKey{nameType: nameType, kind: kind, language: language}] = bucket
			}
		}
	}

	return r, nil
}

// sortBuckets orders each bucket longest pattern first, so the match
// scan tries the most specific rule before its prefixes. The sort is
// stable to keep file order between equal-length patterns.
func sortBuckets(bucket ruleBucket) {
	for _, list := range bucket {
		sort.SliceStable(list, func(i, j int) bool {
			return len(list[i].pattern) > len(list[j].pattern)
		})
	}
}
