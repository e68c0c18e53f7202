package bm

import (
	"strings"
)

// PhoneticEngine encodes names into their Beider-Morse phonetic
// spellings. Engines are cheap to build, immutable and safe for
// concurrent use; the heavy lifting lives in the shared ConfigFiles.
type PhoneticEngine struct {
	lang        *Lang
	rules       *Rules
	nameType    NameType
	ruleType    RuleType
	concat      bool
	maxPhonemes int
	prefixes    []string
}

// NewPhoneticEngine builds an engine with the default phoneme cap. When
// concat is on, multi-word names are fused and encoded as a unit;
// otherwise each word is encoded independently.
func NewPhoneticEngine(config *ConfigFiles, nameType NameType, ruleType RuleType, concat bool) (*PhoneticEngine, error) {
	return NewPhoneticEngineMaxPhonemes(config, nameType, ruleType, concat, DefaultMaxPhonemes)
}

// NewPhoneticEngineMaxPhonemes builds an engine with an explicit bound
// on the number of phonetic alternatives carried per encode pass.
func NewPhoneticEngineMaxPhonemes(config *ConfigFiles, nameType NameType, ruleType RuleType, concat bool, maxPhonemes int) (*PhoneticEngine, error) {
	lang := config.Langs.Get(nameType)
	if lang == nil {
		return nil, &UnknownNameTypeError{Name: nameType.String()}
	}
	return &PhoneticEngine{
		lang:        lang,
		rules:       config.Rules,
		nameType:    nameType,
		ruleType:    ruleType,
		concat:      concat,
		maxPhonemes: maxPhonemes,
		prefixes:    nameType.namePrefixes(),
	}, nil
}

// MaxPhonemes returns the branch cap of this engine.
func (e *PhoneticEngine) MaxPhonemes() int { return e.maxPhonemes }

// Encode guesses the languages of the input and encodes it. It is a
// total function: any string, including empty or garbage input, yields
// a well-defined result.
func (e *PhoneticEngine) Encode(input string) string {
	return e.EncodeWithLanguageSet(input, e.lang.GuessLanguages(input))
}

// EncodeWithLanguageSet encodes the input under an explicit language
// constraint, bypassing the guesser.
func (e *PhoneticEngine) EncodeWithLanguageSet(input string, languageSet LanguageSet) string {
	languageToken := "any"
	if languageSet.IsSingleton() {
		languageToken = languageSet.Any()
	}
	mainRules := e.rules.group(e.nameType, rulesKind, languageToken)
	finalCommon := e.rules.group(e.nameType, e.ruleType.kind(), "common")
	finalLanguage := e.rules.group(e.nameType, e.ruleType.kind(), languageToken)

	input = strings.TrimSpace(strings.ReplaceAll(strings.ToLower(input), "-", " "))

	// Nobiliary particles produce two plausible forms, with the
	// particle fused in and without it. Both are encoded.
	if e.nameType == Generic && strings.HasPrefix(input, "d'") {
		remainder := strings.TrimPrefix(input, "d'")
		combined := "d" + remainder
		return "(" + e.Encode(remainder) + ")-(" + e.Encode(combined) + ")"
	}
	for _, prefix := range e.prefixes {
		if strings.HasPrefix(input, prefix+" ") {
			remainder := strings.TrimPrefix(input, prefix+" ")
			combined := prefix + remainder
			return "(" + e.Encode(remainder) + ")-(" + e.Encode(combined) + ")"
		}
	}

	words := strings.Fields(input)
	words2 := make([]string, 0, len(words))
	switch e.nameType {
	case Sephardic:
		for _, word := range words {
			parts := strings.Split(word, "'")
			words2 = append(words2, parts[len(parts)-1])
		}
		words2 = e.removePrefixes(words2)
	case Ashkenazi:
		words2 = e.removePrefixes(words)
	default:
		words2 = words
	}

	if e.concat {
		input = strings.Join(words2, " ")
	} else if len(words) == 1 {
		input = words[0]
	} else if len(words2) > 0 {
		encoded := make([]string, len(words2))
		for i, word := range words2 {
			encoded[i] = e.Encode(word)
		}
		return strings.Join(encoded, "-")
	}

	builder := emptyPhonemeBuilder(languageSet)
	text := []rune(input)
	for i := 0; i < len(text); {
		i, _ = e.scan(text, i, mainRules, builder)
	}

	builder = e.applyFinalRules(builder, finalCommon)
	builder = e.applyFinalRules(builder, finalLanguage)

	return builder.makeString()
}

func (e *PhoneticEngine) removePrefixes(words []string) []string {
	kept := make([]string, 0, len(words))
	for _, word := range words {
		prefix := false
		for _, p := range e.prefixes {
			if word == p {
				prefix = true
				break
			}
		}
		if !prefix {
			kept = append(kept, word)
		}
	}
	return kept
}

// scan tries the rules keyed by the rune at position i, most specific
// first, applying the first full match to the builder. It returns the
// next scan position and whether a rule fired.
func (e *PhoneticEngine) scan(text []rune, i int, bucket ruleBucket, builder *phonemeBuilder) (int, bool) {
	for _, rule := range bucket[text[i]] {
		if rule.patternAndContextMatches(text, i) {
			builder.apply(rule.phonemes, e.maxPhonemes)
			return i + len(rule.pattern), true
		}
	}
	return i + 1, false
}

// applyFinalRules rescans every phoneme with a final-rule group. Each
// phoneme expands in its own sub-builder seeded with its language set;
// characters no rule claims pass through verbatim, unlike in the main
// pass where they are dropped. Sub-results merge by text, unioning
// language sets.
func (e *PhoneticEngine) applyFinalRules(builder *phonemeBuilder, bucket ruleBucket) *phonemeBuilder {
	if len(bucket) == 0 {
		return builder
	}

	result := &phonemeBuilder{}
	for _, phoneme := range builder.phonemes {
		sub := emptyPhonemeBuilder(phoneme.languages)
		text := []rune(phoneme.text)
		for i := 0; i < len(text); {
			next, found := e.scan(text, i, bucket, sub)
			if !found {
				sub.appendText(string(text[i : i+1]))
			}
			i = next
		}
		for _, p := range sub.phonemes {
			result.mergeInsert(p)
		}
	}
	return result
}
