// Package bm implements the Beider-Morse phonetic matching system, a
// rule-driven, language-aware transducer that converts a name into a set
// of plausible phonetic spellings.
//
// An encode call guesses (or is given) a set of candidate languages for
// the name, applies the main transformation rules of the selected name
// type, then two passes of final rules (common, then language specific),
// branching on every rule that offers alternative spellings. Branches
// carry the subset of languages still compatible with them and are
// pruned when that subset becomes empty.
//
// Rule resources are plain text files loaded once into a ConfigFiles
// bundle; a constructed PhoneticEngine never fails during encoding.
package bm

import (
	"sort"
	"strings"
)

type languageSetKind int

const (
	anyLanguageKind languageSetKind = iota
	noLanguagesKind
	someLanguagesKind
)

// LanguageSet represents a constraint over languages: unconstrained,
// impossible, or a concrete set of language names. The zero value is
// AnyLanguage.
type LanguageSet struct {
	kind languageSetKind
	// sorted, unique, non-empty iff kind is someLanguagesKind
	languages []string
}

// AnyLanguage matches every language. It is the identity of RestrictTo
// and absorbs Merge.
var AnyLanguage = LanguageSet{kind: anyLanguageKind}

// NoLanguages matches no language. It is the identity of Merge and
// absorbs RestrictTo.
var NoLanguages = LanguageSet{kind: noLanguagesKind}

// SomeLanguages builds a concrete language set. An empty collection
// collapses to NoLanguages, so a SomeLanguages value never carries an
// empty set.
func SomeLanguages(languages ...string) LanguageSet {
	if len(languages) == 0 {
		return NoLanguages
	}
	sorted := make([]string, len(languages))
	copy(sorted, languages)
	sort.Strings(sorted)
	unique := sorted[:1]
	for _, l := range sorted[1:] {
		if l != unique[len(unique)-1] {
			unique = append(unique, l)
		}
	}
	return LanguageSet{kind: someLanguagesKind, languages: unique}
}

// IsEmpty reports whether no language satisfies the constraint.
func (s LanguageSet) IsEmpty() bool {
	return s.kind == noLanguagesKind
}

// IsSingleton reports whether exactly one language satisfies the
// constraint.
func (s LanguageSet) IsSingleton() bool {
	return s.kind == someLanguagesKind && len(s.languages) == 1
}

// Any returns one member of a concrete set, or "" for AnyLanguage and
// NoLanguages.
func (s LanguageSet) Any() string {
	if s.kind != someLanguagesKind {
		return ""
	}
	return s.languages[0]
}

// RestrictTo intersects two constraints.
func (s LanguageSet) RestrictTo(other LanguageSet) LanguageSet {
	switch {
	case other.kind == anyLanguageKind:
		return s
	case other.kind == noLanguagesKind:
		return other
	case s.kind == anyLanguageKind:
		return other
	case s.kind == noLanguagesKind:
		return s
	}
	var common []string
	i, j := 0, 0
	for i < len(s.languages) && j < len(other.languages) {
		switch {
		case s.languages[i] == other.languages[j]:
			common = append(common, s.languages[i])
			i++
			j++
		case s.languages[i] < other.languages[j]:
			i++
		default:
			j++
		}
	}
	return SomeLanguages(common...)
}

// Merge unions two constraints.
func (s LanguageSet) Merge(other LanguageSet) LanguageSet {
	switch {
	case other.kind == anyLanguageKind:
		return other
	case other.kind == noLanguagesKind:
		return s
	case s.kind == anyLanguageKind:
		return s
	case s.kind == noLanguagesKind:
		return other
	}
	return SomeLanguages(append(append([]string{}, s.languages...), other.languages...)...)
}

func (s LanguageSet) String() string {
	switch s.kind {
	case anyLanguageKind:
		return "ANY_LANGUAGE"
	case noLanguagesKind:
		return "NO_LANGUAGES"
	}
	return strings.Join(s.languages, ",")
}

// NameType selects one of the three cultural rule profiles.
type NameType int

const (
	// Ashkenazi names.
	Ashkenazi NameType = iota
	// Generic names, the most inclusive profile.
	Generic
	// Sephardic names.
	Sephardic
)

var nameTypes = []NameType{Ashkenazi, Generic, Sephardic}

func (n NameType) String() string {
	switch n {
	case Ashkenazi:
		return "ash"
	case Sephardic:
		return "sep"
	default:
		return "gen"
	}
}

// ParseNameType resolves the short name-type token used in resource
// filenames ("ash", "gen" or "sep").
func ParseNameType(value string) (NameType, error) {
	switch value {
	case "ash":
		return Ashkenazi, nil
	case "gen":
		return Generic, nil
	case "sep":
		return Sephardic, nil
	}
	return 0, &UnknownNameTypeError{Name: value}
}

// namePrefixes lists the nobiliary particles of a name type. A fresh
// slice is returned so callers may not mutate shared state.
func (n NameType) namePrefixes() []string {
	switch n {
	case Ashkenazi:
		return []string{"bar", "ben", "da", "de", "van", "von"}
	case Sephardic:
		return []string{
			"al", "el", "da", "dal", "de", "del", "dela", "de la",
			"della", "des", "di", "do", "dos", "du", "van", "von",
		}
	default:
		return []string{
			"da", "dal", "de", "del", "dela", "de la", "della",
			"des", "di", "do", "dos", "du", "van", "von",
		}
	}
}

// RuleType selects which final-rule flavour an engine applies. Approx
// rules produce the widest set of interpretations, Exact rules the
// narrowest.
type RuleType int

const (
	// Approx selects the approximate final rules.
	Approx RuleType = iota
	// Exact selects the exact final rules.
	Exact
)

func (r RuleType) String() string {
	if r == Exact {
		return "exact"
	}
	return "approx"
}

// ruleKind extends RuleType with the internal main-transformation
// phase, which never surfaces in the public API.
type ruleKind int

const (
	approxKind ruleKind = iota
	exactKind
	rulesKind
)

var ruleKinds = []ruleKind{approxKind, exactKind, rulesKind}

func (r RuleType) kind() ruleKind {
	if r == Exact {
		return exactKind
	}
	return approxKind
}

func (r ruleKind) String() string {
	switch r {
	case exactKind:
		return "exact"
	case rulesKind:
		return "rules"
	default:
		return "approx"
	}
}

// Languages holds, per name type, the list of languages its rule set
// knows about.
type Languages struct {
	sets map[NameType][]string
}

// Get returns the sorted language list of a name type, or nil when the
// configuration does not cover it.
func (l *Languages) Get(nameType NameType) []string {
	return l.sets[nameType]
}
