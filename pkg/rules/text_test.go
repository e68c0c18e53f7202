package rules

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestForEachSkipsComments(t *testing.T) {
	src := "/*\nThis\nis\na\nmultiline\ncomment\n */\n" +
		"///\n// single line\n///\n" +
		"à=a // folding with trailing comment\n" +
		"\n" +
		"\"sh\" \"0\" \"\" \"0|1\"\n"

	var got []Line
	err := ForEach(src, func(ln Line) error {
		got = append(got, ln)
		return nil
	})
	require.NoError(t, err)

	require.Len(t, got, 2)
	assert.Equal(t, `à=a // folding with trailing comment`, got[0].Text)
	assert.Equal(t, 11, got[0].Number)
	assert.Equal(t, `"sh" "0" "" "0|1"`, got[1].Text)
	assert.Equal(t, 13, got[1].Number)
}

func TestForEachBlockEndBeforeStart(t *testing.T) {
	// A bare "*/" must close the block even though the opener line also
	// carried a "*" prefix.
	src := "/*\n*/\ntoken\n"

	var got []string
	err := ForEach(src, func(ln Line) error {
		got = append(got, ln.Text)
		return nil
	})
	require.NoError(t, err)
	assert.Equal(t, []string{"token"}, got)
}

func TestForEachCommentedEqualsStripped(t *testing.T) {
	plain := "\"a\" \"b\" \"c\" \"d\"\n\"e\" \"f\" \"g\" \"h\"\n"
	commented := "// header\n/*\nblock\n*/\n\"a\" \"b\" \"c\" \"d\"\n\n// middle\n\"e\" \"f\" \"g\" \"h\"\n// tail\n"

	collect := func(src string) []string {
		var out []string
		err := ForEach(src, func(ln Line) error {
			out = append(out, ln.Text)
			return nil
		})
		require.NoError(t, err)
		return out
	}

	assert.Equal(t, collect(plain), collect(commented))
}

func TestQuadruplet(t *testing.T) {
	tests := []struct {
		line   string
		fields [4]string
		ok     bool
	}{
		{`"p" "l" "r" "ph"`, [4]string{"p", "l", "r", "ph"}, true},
		{`  "sh" "0" "" "0|1"  `, [4]string{"sh", "0", "", "0|1"}, true},
		{`"sh" "0" "" "0|1" // trailing`, [4]string{"sh", "0", "", "0|1"}, true},
		{`"" "l" "r" "ph"`, [4]string{}, false},
		{`"p" "l" "r"`, [4]string{}, false},
		{`p l r ph`, [4]string{}, false},
	}
	for _, tc := range tests {
		fields, ok := Quadruplet(tc.line)
		assert.Equal(t, tc.ok, ok, "line %q", tc.line)
		if tc.ok {
			assert.Equal(t, tc.fields, fields, "line %q", tc.line)
		}
	}
}

func TestFolding(t *testing.T) {
	from, to, ok := Folding("ß=s")
	require.True(t, ok)
	assert.Equal(t, 'ß', from)
	assert.Equal(t, 's', to)

	from, to, ok = Folding("à=a // fold accent")
	require.True(t, ok)
	assert.Equal(t, 'à', from)
	assert.Equal(t, 'a', to)

	_, _, ok = Folding("ab=a")
	assert.False(t, ok)
	_, _, ok = Folding("plain token")
	assert.False(t, ok)
}

func TestLangGuess(t *testing.T) {
	pattern, langs, accept, ok := LangGuess(`zh polish+russian true`)
	require.True(t, ok)
	assert.Equal(t, "zh", pattern)
	assert.Equal(t, "polish+russian", langs)
	assert.Equal(t, "true", accept)

	pattern, langs, accept, ok = LangGuess(`eau$ french false // reject`)
	require.True(t, ok)
	assert.Equal(t, "eau$", pattern)
	assert.Equal(t, "french", langs)
	assert.Equal(t, "false", accept)

	_, _, _, ok = LangGuess("only two")
	assert.False(t, ok)
}

func TestInclude(t *testing.T) {
	name, ok := Include("#include gen_common")
	require.True(t, ok)
	assert.Equal(t, "gen_common", name)

	name, ok = Include("#include ash_approx_common // shared tail")
	require.True(t, ok)
	assert.Equal(t, "ash_approx_common", name)

	_, ok = Include(`"p" "l" "r" "ph"`)
	assert.False(t, ok)
}
