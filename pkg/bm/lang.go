package bm

import (
	"regexp"
	"strings"

	"github.com/cockroachdb/errors"

	"github.com/temporal-IPA/phonetics/pkg/rules"
)

// langRule is one language-guessing rule: when pattern matches the
// input, the rule's languages are either intersected with or subtracted
// from the running candidate set.
type langRule struct {
	line          int
	pattern       *regexp.Regexp
	languages     map[string]struct{}
	acceptOnMatch bool
}

// Lang guesses the languages of a name for one name type.
type Lang struct {
	languages []string
	rules     []langRule
}

// GuessLanguages narrows the full language list of the name type by
// applying the guessing rules in file order to the lower-cased input.
// An empty outcome degrades to AnyLanguage rather than an impossible
// set, so an unrecognized script never makes encoding fail.
func (l *Lang) GuessLanguages(input string) LanguageSet {
	input = strings.ToLower(input)

	remaining := make(map[string]struct{}, len(l.languages))
	for _, language := range l.languages {
		remaining[language] = struct{}{}
	}

	for _, rule := range l.rules {
		if !rule.pattern.MatchString(input) {
			continue
		}
		if rule.acceptOnMatch {
			for language := range remaining {
				if _, ok := rule.languages[language]; !ok {
					delete(remaining, language)
				}
			}
		} else {
			for language := range rule.languages {
				delete(remaining, language)
			}
		}
	}

	languages := make([]string, 0, len(remaining))
	for language := range remaining {
		languages = append(languages, language)
	}
	result := SomeLanguages(languages...)
	if result.IsEmpty() {
		return AnyLanguage
	}
	return result
}

// Langs holds one guesser per name type.
type Langs struct {
	langs map[NameType]*Lang
}

// Get returns the guesser of a name type, or nil when the configuration
// does not cover it.
func (l *Langs) Get(nameType NameType) *Lang {
	return l.langs[nameType]
}

// parseLang parses a "<regex> <lang1>+<lang2>+... <true|false>"
// resource into a guesser over the given language list.
func parseLang(filename, content string, languages []string) (*Lang, error) {
	lang := &Lang{languages: languages}

	err := rules.ForEach(content, func(line rules.Line) error {
		pattern, langList, accept, ok := rules.LangGuess(line.Text)
		if !ok {
			return errors.WithStack(&rules.ParseError{
				Filename: filename,
				Line:     line.Number,
				Content:  line.Text,
				Reason:   "can't recognize language detection line",
			})
		}

		var acceptOnMatch bool
		switch accept {
		case "true":
			acceptOnMatch = true
		case "false":
			acceptOnMatch = false
		default:
			return errors.WithStack(&rules.ParseError{
				Filename: filename,
				Line:     line.Number,
				Content:  line.Text,
				Reason:   "not a boolean: " + accept,
			})
		}

		re, err := regexp.Compile(pattern)
		if err != nil {
			return errors.WithStack(&rules.ParseError{
				Filename: filename,
				Line:     line.Number,
				Content:  line.Text,
				Reason:   err.Error(),
			})
		}

		set := make(map[string]struct{})
		for _, language := range strings.Split(langList, "+") {
			set[language] = struct{}{}
		}
		lang.rules = append(lang.rules, langRule{
			line:          line.Number,
			pattern:       re,
			languages:     set,
			acceptOnMatch: acceptOnMatch,
		})
		return nil
	})
	if err != nil {
		return nil, err
	}
	return lang, nil
}
