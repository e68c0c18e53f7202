package bm

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPhonemeBuilderSeedAndAppend(t *testing.T) {
	b := emptyPhonemeBuilder(SomeLanguages("english"))
	assert.Equal(t, "", b.makeString())

	b.appendText("ab")
	b.appendText("c")
	assert.Equal(t, "abc", b.makeString())
	assert.Equal(t, SomeLanguages("english"), b.phonemes[0].Languages())
}

func TestPhonemeBuilderInsertKeepsOrderAndDedupes(t *testing.T) {
	b := &phonemeBuilder{}
	assert.True(t, b.insert(NewPhoneme("b", AnyLanguage)))
	assert.True(t, b.insert(NewPhoneme("a", AnyLanguage)))
	assert.True(t, b.insert(NewPhoneme("ab", AnyLanguage)))
	// Same text again does not grow the set, whatever its languages.
	assert.False(t, b.insert(NewPhoneme("a", SomeLanguages("french"))))

	assert.Equal(t, "a|ab|b", b.makeString())
	assert.Equal(t, AnyLanguage, b.phonemes[0].Languages())
}

func TestPhonemeBuilderApplyCrossProduct(t *testing.T) {
	b := emptyPhonemeBuilder(AnyLanguage)
	b.appendText("ta")

	b.apply([]Phoneme{
		NewPhoneme("r", AnyLanguage),
		NewPhoneme("l", AnyLanguage),
	}, DefaultMaxPhonemes)

	assert.Equal(t, "tal|tar", b.makeString())
}

func TestPhonemeBuilderApplyPrunesIncompatibleLanguages(t *testing.T) {
	b := emptyPhonemeBuilder(SomeLanguages("english"))
	b.appendText("t")

	b.apply([]Phoneme{
		NewPhoneme("a", SomeLanguages("french")),
		NewPhoneme("o", SomeLanguages("english", "french")),
	}, DefaultMaxPhonemes)

	assert.Equal(t, "to", b.makeString())
	assert.Equal(t, SomeLanguages("english"), b.phonemes[0].Languages())
}

func TestPhonemeBuilderApplyCapShortCircuits(t *testing.T) {
	b := &phonemeBuilder{}
	b.insert(NewPhoneme("a", AnyLanguage))
	b.insert(NewPhoneme("b", AnyLanguage))

	b.apply([]Phoneme{
		NewPhoneme("x", AnyLanguage),
		NewPhoneme("y", AnyLanguage),
	}, 3)

	// The cap aborts the whole cross product after the third insertion:
	// ax, ay, bx survive and by is never generated.
	assert.Equal(t, "ax|ay|bx", b.makeString())
}

func TestPhonemeBuilderMergeInsertUnionsLanguages(t *testing.T) {
	b := &phonemeBuilder{}
	b.mergeInsert(NewPhoneme("ta", SomeLanguages("english")))
	b.mergeInsert(NewPhoneme("ta", SomeLanguages("french")))
	b.mergeInsert(NewPhoneme("to", SomeLanguages("english")))

	assert.Equal(t, "ta|to", b.makeString())
	assert.Equal(t, SomeLanguages("english", "french"), b.phonemes[0].Languages())
}
