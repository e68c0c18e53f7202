package bm

import (
	"regexp"
	"strings"

	"github.com/cockroachdb/errors"
)

// matcher tests a rule context against the text on one side of the
// matched pattern.
type matcher interface {
	matches(input string) bool
}

// The context expressions used by the rule files overwhelmingly fall
// into a few trivial shapes (anchored literals and single character
// classes). They are recognized here and evaluated with plain string
// operations; anything else falls back to a compiled regexp searched
// anywhere in the input, which is what the rule language specifies.

type allStringsMatcher struct{}

func (allStringsMatcher) matches(string) bool { return true }

type isEmptyMatcher struct{}

func (isEmptyMatcher) matches(input string) bool { return input == "" }

type equalsMatcher struct{ text string }

func (m equalsMatcher) matches(input string) bool { return input == m.text }

type startsWithMatcher struct{ prefix string }

func (m startsWithMatcher) matches(input string) bool {
	return strings.HasPrefix(input, m.prefix)
}

type endsWithMatcher struct{ suffix string }

func (m endsWithMatcher) matches(input string) bool {
	return strings.HasSuffix(input, m.suffix)
}

type equalsCharMatcher struct {
	chars       string
	shouldMatch bool
}

func (m equalsCharMatcher) matches(input string) bool {
	r := []rune(input)
	return len(r) == 1 && strings.ContainsRune(m.chars, r[0]) == m.shouldMatch
}

type startsWithCharMatcher struct {
	chars       string
	shouldMatch bool
}

func (m startsWithCharMatcher) matches(input string) bool {
	for _, r := range input {
		return strings.ContainsRune(m.chars, r) == m.shouldMatch
	}
	return false
}

type endsWithCharMatcher struct {
	chars       string
	shouldMatch bool
}

func (m endsWithCharMatcher) matches(input string) bool {
	r := []rune(input)
	if len(r) == 0 {
		return false
	}
	return strings.ContainsRune(m.chars, r[len(r)-1]) == m.shouldMatch
}

type regexpMatcher struct{ re *regexp.Regexp }

func (m regexpMatcher) matches(input string) bool { return m.re.MatchString(input) }

// parseMatcher recognizes the optimized context shapes and compiles
// everything else as a regexp.
func parseMatcher(pattern string) (matcher, error) {
	if pattern == "" {
		return allStringsMatcher{}, nil
	}
	if m, ok := optimizedMatcher(pattern); ok {
		return m, nil
	}
	re, err := regexp.Compile(pattern)
	if err != nil {
		return nil, errors.Wrapf(err, "context pattern %q", pattern)
	}
	return regexpMatcher{re: re}, nil
}

func optimizedMatcher(pattern string) (matcher, bool) {
	anchorStart := strings.HasPrefix(pattern, "^")
	anchorEnd := strings.HasSuffix(pattern, "$")
	content := strings.TrimSuffix(strings.TrimPrefix(pattern, "^"), "$")

	if !strings.Contains(pattern, "[") {
		if anchorStart && anchorEnd {
			if content == "" {
				return isEmptyMatcher{}, true
			}
			return equalsMatcher{text: content}, true
		}
		if (anchorStart || anchorEnd) && content == "" {
			return allStringsMatcher{}, true
		}
		if anchorStart {
			return startsWithMatcher{prefix: content}, true
		}
		if anchorEnd {
			return endsWithMatcher{suffix: content}, true
		}
		return nil, false
	}

	if !strings.HasPrefix(content, "[") || !strings.HasSuffix(content, "]") {
		return nil, false
	}
	chars := content[1 : len(content)-1]
	if strings.Contains(chars, "[") {
		return nil, false
	}
	shouldMatch := !strings.HasPrefix(chars, "^")
	chars = strings.TrimPrefix(chars, "^")

	switch {
	case anchorStart && anchorEnd:
		return equalsCharMatcher{chars: chars, shouldMatch: shouldMatch}, true
	case anchorStart:
		return startsWithCharMatcher{chars: chars, shouldMatch: shouldMatch}, true
	case anchorEnd:
		return endsWithCharMatcher{chars: chars, shouldMatch: shouldMatch}, true
	}
	return nil, false
}
