package dm

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/temporal-IPA/phonetics/pkg/rules"
)

const customRules = `/*
A
multiline
comment.
 */

// A single line comment.

à=a // A trailing comment after a folding rule.
/*
The substring sh becomes 0 at the start of the word, nothing before a
vowel, and branches between 0 and 1 otherwise.
 */
"sh" "0" "" "0|1"`

func TestBuildCustomRules(t *testing.T) {
	encoder, err := NewBuilder().WithRules("custom.txt", customRules).Build()
	require.NoError(t, err)

	require.Len(t, encoder.rules['s'], 1)
	r := encoder.rules['s'][0]
	assert.Equal(t, "sh", r.pattern)
	assert.Equal(t, []string{"0"}, r.replacementAtStart)
	assert.Equal(t, []string{""}, r.replacementBeforeVowel)
	assert.Equal(t, []string{"0", "1"}, r.replacementDefault)

	assert.Equal(t, map[rune]rune{'à': 'a'}, encoder.folding)
}

func TestBuildMalformedRules(t *testing.T) {
	_, err := NewBuilder().WithRules("broken.txt", "This is wrong.").Build()
	require.Error(t, err)

	var parseErr *rules.ParseError
	require.ErrorAs(t, err, &parseErr)
	assert.Equal(t, 1, parseErr.Line)
	assert.Equal(t, "This is wrong.", parseErr.Content)
}

func TestAccentedCharacterFolding(t *testing.T) {
	encoder, err := New()
	require.NoError(t, err)

	assert.Equal(t, "294795", encoder.Soundex("Straßburg"))
	assert.Equal(t, "294795", encoder.Soundex("Strasburg"))
	assert.Equal(t, "095600", encoder.Soundex("Éregon"))
	assert.Equal(t, "095600", encoder.Soundex("Eregon"))
}

func TestAdjacentCodes(t *testing.T) {
	encoder, err := New()
	require.NoError(t, err)

	assert.Equal(t, "054800", encoder.Soundex("AKSSOL"))
	assert.Equal(t, "547830|545783|594783|594578", encoder.Soundex("GERSCHFELD"))
}

func TestEncodeBasic(t *testing.T) {
	encoder, err := New()
	require.NoError(t, err)

	data := map[string]string{
		"AUERBACH":   "097400",
		"OHRBACH":    "097400",
		"LIPSHITZ":   "874400",
		"LIPPSZYC":   "874400",
		"LEWINSKY":   "876450",
		"LEVINSKI":   "876450",
		"SZLAMAWICZ": "486740",
		"SHLAMOVITZ": "486740",
	}
	for value, expected := range data {
		assert.Equal(t, expected, encoder.Encode(value), value)
	}
}

func TestEncodeIgnoresNonLetters(t *testing.T) {
	encoder, err := New()
	require.NoError(t, err)

	for _, v := range []string{
		"OBrien", "'OBrien", "O'Brien", "OB'rien", "OBr'ien",
		"OBri'en", "OBrie'n", "OBrien'",
	} {
		assert.Equal(t, "079600", encoder.Encode(v), v)
	}

	for _, v := range []string{
		"KINGSMITH", "-KINGSMITH", "K-INGSMITH", "KI-NGSMITH",
		"KIN-GSMITH", "KING-SMITH", "KINGS-MITH", "KINGSM-ITH",
		"KINGSMI-TH", "KINGSMIT-H", "KINGSMITH-",
	} {
		assert.Equal(t, "565463", encoder.Encode(v), v)
	}

	assert.Equal(t, "746536", encoder.Encode(" \t\n\r Washington \t\n\r "))
	assert.Equal(t, "746536", encoder.Encode("Washington"))
}

func TestSoundexBasic(t *testing.T) {
	encoder, err := New()
	require.NoError(t, err)

	data := map[string]string{
		"GOLDEN":     "583600",
		"Alpert":     "087930",
		"Breuer":     "791900",
		"Haber":      "579000",
		"Mannheim":   "665600",
		"Mintz":      "664000",
		"Topf":       "370000",
		"Kleinmann":  "586660",
		"Ben Aron":   "769600",
		"AUERBACH":   "097400|097500",
		"OHRBACH":    "097400|097500",
		"LIPSHITZ":   "874400",
		"LIPPSZYC":   "874400|874500",
		"LEWINSKY":   "876450",
		"LEVINSKI":   "876450",
		"SZLAMAWICZ": "486740",
		"SHLAMOVITZ": "486740",
	}
	for value, expected := range data {
		assert.Equal(t, expected, encoder.Soundex(value), value)
	}
}

func TestSoundexBranching(t *testing.T) {
	encoder, err := New()
	require.NoError(t, err)

	data := map[string]string{
		"Ceniow":         "467000|567000",
		"Tsenyuv":        "467000",
		"Holubica":       "587400|587500",
		"Golubitsa":      "587400",
		"Przemysl":       "746480|794648",
		"Pshemeshil":     "746480",
		"Rosochowaciec":  "944744|944745|944754|944755|945744|945745|945754|945755",
		"Rosokhovatsets": "945744",
		"Peters":         "734000|739400",
		"Peterson":       "734600|739460",
		"Moskowitz":      "645740",
		"Moskovitz":      "645740",
		"Jackson":        "154600|145460|454600|445460",
		"Jackson-Jackson": "154654|154645|154644|145465|145464|" +
			"454654|454645|454644|445465|445464",
	}
	for value, expected := range data {
		assert.Equal(t, expected, encoder.Soundex(value), value)
	}

	assert.Equal(t, []string{"944744"}, encoder.Codes("Rosochowaciec", false))
	assert.Equal(t, "944744", encoder.Encode("Rosochowaciec"))
}

func TestSpecialRomanianCharacters(t *testing.T) {
	encoder, err := New()
	require.NoError(t, err)

	assert.Equal(t, "364000|464000", encoder.Soundex("ţamas"))
	assert.Equal(t, "364000|464000", encoder.Soundex("țamas"))
}
