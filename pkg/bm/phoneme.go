package bm

import (
	"sort"
	"strings"
)

// DefaultMaxPhonemes bounds the number of branches an encode call may
// carry. It is the only resource bound in the system; without it the
// cross-product of rule alternatives can explode on ambiguous names.
const DefaultMaxPhonemes = 20

// phonemeBuilder is the live set of candidate spellings during one
// encode pass. Phonemes are kept sorted by text and unique by text, so
// iteration order, and therefore the cap behavior and the rendered
// output, is deterministic.
type phonemeBuilder struct {
	phonemes []Phoneme
}

// emptyPhonemeBuilder seeds a builder with a single empty spelling
// carrying the candidate language set.
func emptyPhonemeBuilder(languages LanguageSet) *phonemeBuilder {
	return &phonemeBuilder{phonemes: []Phoneme{{languages: languages}}}
}

// search returns the insertion slot for text and whether a phoneme with
// that text is already present.
func (b *phonemeBuilder) search(text string) (int, bool) {
	i := sort.Search(len(b.phonemes), func(i int) bool {
		return b.phonemes[i].text >= text
	})
	return i, i < len(b.phonemes) && b.phonemes[i].text == text
}

// insert adds a phoneme unless one with the same text exists, and
// reports whether the set grew. On collision the existing phoneme wins.
func (b *phonemeBuilder) insert(p Phoneme) bool {
	i, found := b.search(p.text)
	if found {
		return false
	}
	b.phonemes = append(b.phonemes, Phoneme{})
	copy(b.phonemes[i+1:], b.phonemes[i:])
	b.phonemes[i] = p
	return true
}

// mergeInsert adds a phoneme, unioning language sets when a phoneme
// with the same text exists. Either origin independently justifies the
// spelling, hence union rather than intersection.
func (b *phonemeBuilder) mergeInsert(p Phoneme) {
	i, found := b.search(p.text)
	if found {
		b.phonemes[i] = b.phonemes[i].mergeLanguages(p.languages)
		return
	}
	b.phonemes = append(b.phonemes, Phoneme{})
	copy(b.phonemes[i+1:], b.phonemes[i:])
	b.phonemes[i] = p
}

// appendText appends literal text to every phoneme. Sort order is
// preserved since a common suffix does not reorder distinct texts.
func (b *phonemeBuilder) appendText(text string) {
	for i := range b.phonemes {
		b.phonemes[i] = b.phonemes[i].append(text)
	}
}

// apply replaces the set with the cross product of the current phonemes
// and a matched rule's alternatives, intersecting language sets and
// dropping combinations whose intersection is empty. Once maxPhonemes
// distinct spellings have been produced the remaining combinations are
// abandoned outright, so the survivors depend on the iteration order of
// both loops.
func (b *phonemeBuilder) apply(alternatives []Phoneme, maxPhonemes int) {
	result := &phonemeBuilder{phonemes: make([]Phoneme, 0, len(b.phonemes))}
	for _, left := range b.phonemes {
		for _, right := range alternatives {
			languages := left.languages.RestrictTo(right.languages)
			if languages.IsEmpty() {
				continue
			}
			if len(result.phonemes) < maxPhonemes {
				result.insert(joinPhonemes(left, right, languages))
				if len(result.phonemes) >= maxPhonemes {
					b.phonemes = result.phonemes
					return
				}
			}
		}
	}
	b.phonemes = result.phonemes
}

// makeString renders the sorted, deduplicated spellings joined by "|".
func (b *phonemeBuilder) makeString() string {
	texts := make([]string, len(b.phonemes))
	for i, p := range b.phonemes {
		texts[i] = p.text
	}
	return strings.Join(texts, "|")
}
