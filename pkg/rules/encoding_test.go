package rules

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseCharset(t *testing.T) {
	cs, err := ParseCharset("UTF-8")
	require.NoError(t, err)
	assert.Equal(t, UTF8, cs)

	cs, err = ParseCharset(" iso-8859-2 ")
	require.NoError(t, err)
	assert.Equal(t, ISO8859_2, cs)

	_, err = ParseCharset("ebcdic")
	assert.Error(t, err)
}

func TestDecodeText(t *testing.T) {
	// "müller" in ISO-8859-1: ü is 0xFC.
	raw := []byte{'m', 0xFC, 'l', 'l', 'e', 'r'}
	got, err := DecodeText(raw, ISO8859_1)
	require.NoError(t, err)
	assert.Equal(t, "müller", got)

	got, err = DecodeText([]byte("plain"), UTF8)
	require.NoError(t, err)
	assert.Equal(t, "plain", got)
}
