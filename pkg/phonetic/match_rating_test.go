package phonetic

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMatchRatingEncode(t *testing.T) {
	data := []struct {
		value, expected string
	}{
		{"HARPER", "HRPR"},
		{"Smith", "SMTH"},
		{"Smyth", "SMYTH"},
		{" ", ""},
		{"", ""},
		{"E", ""},
	}
	for _, d := range data {
		assert.Equal(t, d.expected, MatchRating{}.Encode(d.value), "%q", d.value)
	}
}

func TestMatchRatingHelpers(t *testing.T) {
	assert.Equal(t, "BUBLE", mraRemoveDoubleConsonants("BUBBLE"))
	assert.Equal(t, "MISISIPI", mraRemoveDoubleConsonants("MISSISSIPPI"))
	assert.Equal(t, "BEETLE", mraRemoveDoubleConsonants("BEETLE"))

	assert.Equal(t, "ALSSNDR", mraRemoveVowels("ALESSANDRA"))
	assert.Equal(t, "ADN", mraRemoveVowels("AIDAN"))
	assert.Equal(t, "DCLN", mraRemoveVowels("DECLAN"))

	assert.Equal(t, "Aleder", mraFirst3Last3("Alexzander"))
	assert.Equal(t, "PETE", mraFirst3Last3("PETE"))

	assert.Equal(t, "THISISATEST", mraCleanName("This-ís   a t.,es &t"))
}

func TestMatchRatingCompare(t *testing.T) {
	assert.Equal(t, 4, mraCompare("ALEXANDER", "ALEXANDRA"))
	assert.Equal(t, 0, mraCompare("EINSTEIN", "MICHAELA"))
}

func TestMatchRatingMinimumRating(t *testing.T) {
	data := map[int]int{1: 5, 2: 5, 5: 4, 6: 4, 7: 4, 8: 3, 10: 3, 13: 1}
	for sum, expected := range data {
		assert.Equal(t, expected, minimumRating(sum), "sum %d", sum)
	}
}

func TestMatchRatingMatches(t *testing.T) {
	pairs := [][2]string{
		{"John", "John"},
		{"smith", "smyth"},
		{"Burns", "Bourne"},
		{"Catherine", "Kathryn"},
		{"Brian", "Bryan"},
		{"Séan", "Shaun"},
		{"Cólm", "C-olín"},
		{"Stephen", "Steven"},
		{"Steven", "Stefan"},
		{"Sam", "Samuel"},
		{"Micky", "Michael"},
		{"Oona", "Oonagh"},
		{"Sophie", "Sofia"},
		{"Franciszek", "Frances"},
		{"Tomasz", "tom"},
		{"Kl", "Karl"},
		{"Zach", "Zacharia"},
		{"O'Sullivan", "Ó ' Súilleabháin"},
		{"o'muireadhaigh", "Ó 'Muircheartaigh "},
		{"Cooper-Flynn", "Super-Lyn"},
		{"Hailey", "Halley"},
		{"Auerbach", "Uhrbach"},
		{"Moskowitz", "Moskovitz"},
		{"LIPSHITZ", "LIPPSZYC"},
		{"LEWINSKY", "LEVINSKI"},
		{"SZLAMAWICZ", "SHLAMOVITZ"},
		{"R o s o ch o w a c ie c", " R o s o k ho v a ts e ts"},
		{" P rz e m y s l", " P sh e m e sh i l"},
		{"Peterson", "Peters"},
		{"McGowan", "Mc Geoghegan"},
		{"Sean", "John"},
	}
	for _, p := range pairs {
		assert.True(t, MatchRating{}.IsMatch(p[0], p[1]), "%s should match %s", p[0], p[1])
	}
}

func TestMatchRatingNonMatches(t *testing.T) {
	pairs := [][2]string{
		{"Al", "Ed"},
		{"Karl", "C"},
		{"Karl", "Alessandro"},
		{"Úna", "Oonagh"},
		{"Moriarty", "OMuircheartaigh"},
		{"Murphy", " "},
		{"Murphy", ""},
		{"Murphy", "Lynch"},
		{"test", ""},
		{"", "test"},
		{"t", "test"},
	}
	for _, p := range pairs {
		assert.False(t, MatchRating{}.IsMatch(p[0], p[1]), "%s should not match %s", p[0], p[1])
	}
}

func TestMatchRatingAccentFolding(t *testing.T) {
	require.Equal(t, "AEIOU", mraCleanName("áéíóú"))
	require.Equal(t, "AEOUSSAEOUNNA", mraCleanName("äëöüßÄËÖÜñÑà"))
}
