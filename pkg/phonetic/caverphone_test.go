package phonetic

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCaverphone1CommonCode(t *testing.T) {
	for _, value := range []string{
		"add", "aid", "at", "art", "eat", "earth", "head", "hit", "hot",
		"hold", "hard", "heart", "it", "out", "old",
	} {
		assert.Equal(t, "AT1111", Caverphone1{}.Encode(value), value)
	}
}

func TestCaverphone1EndMB(t *testing.T) {
	assert.Equal(t, "M11111", Caverphone1{}.Encode("mb"))
	assert.Equal(t, "MPM111", Caverphone1{}.Encode("mbmb"))
}

func TestCaverphone1Examples(t *testing.T) {
	assert.Equal(t, "TFT111", Caverphone1{}.Encode("David"))
	assert.Equal(t, "WTL111", Caverphone1{}.Encode("Whittle"))
	assert.Equal(t, "L11111", Caverphone1{}.Encode("Lee"))
	assert.Equal(t, "TMPSN1", Caverphone1{}.Encode("Thompson"))
}

func TestCaverphone1IsEncodeEqual(t *testing.T) {
	require.False(t, IsEncodeEqual(Caverphone1{}, "Peter", "Stevenson"))
	require.True(t, IsEncodeEqual(Caverphone1{}, "Peter", "Peady"))
}

func TestCaverphone2CommonCode(t *testing.T) {
	for _, value := range []string{
		"add", "aid", "at", "art", "eat", "earth", "head", "hit", "hot",
		"hold", "hard", "heart", "it", "out", "old",
	} {
		assert.Equal(t, "AT11111111", Caverphone2{}.Encode(value), value)
	}
}

func TestCaverphone2EndMB(t *testing.T) {
	assert.Equal(t, "M111111111", Caverphone2{}.Encode("mb"))
	assert.Equal(t, "MPM1111111", Caverphone2{}.Encode("mbmb"))
}

func TestCaverphone2Examples(t *testing.T) {
	data := []struct {
		value, expected string
	}{
		{"Stevenson", "STFNSN1111"},
		{"Peter", "PTA1111111"},
		{"rather", "RTA1111111"},
		{"ready", "RTA1111111"},
		{"writer", "RTA1111111"},
		{"social", "SSA1111111"},
		{"able", "APA1111111"},
		{"appear", "APA1111111"},
		{"Tedder", "TTA1111111"},
		{"Karleen", "KLN1111111"},
		{"Dyun", "TN11111111"},
	}
	for _, d := range data {
		assert.Equal(t, d.expected, Caverphone2{}.Encode(d.value), d.value)
	}
}

func TestCaverphone2IsEncodeEqual(t *testing.T) {
	require.False(t, IsEncodeEqual(Caverphone2{}, "Peter", "Stevenson"))
	require.True(t, IsEncodeEqual(Caverphone2{}, "Peter", "Peady"))
}
