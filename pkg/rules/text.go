package rules

import (
	"regexp"
	"strings"
)

const (
	lineComment = "//"
	blockStart  = "/*"
	blockEnd    = "*/"
)

// Line is one meaningful (non-blank, non-comment) line of a resource.
type Line struct {
	Number int
	Text   string
}

// ForEach walks a resource and calls fn for every meaningful line, in
// order. Blank lines, "//" lines and "/* ... */" blocks are skipped.
// The block-end delimiter is tested before the block-start one, so a
// line that is exactly "*/" always closes a block. Line numbers are
// 1-based and count every physical line, including skipped ones.
//
// fn receives the line with surrounding whitespace trimmed; returning an
// error aborts the walk and is passed through unchanged.
func ForEach(text string, fn func(Line) error) error {
	inBlock := false
	for i, raw := range strings.Split(text, "\n") {
		trimmed := strings.TrimSpace(raw)
		if strings.HasPrefix(trimmed, blockEnd) {
			inBlock = false
			continue
		}
		if strings.HasPrefix(trimmed, blockStart) {
			inBlock = true
			continue
		}
		if inBlock || trimmed == "" || strings.HasPrefix(trimmed, lineComment) {
			continue
		}
		if err := fn(Line{Number: i + 1, Text: trimmed}); err != nil {
			return err
		}
	}
	return nil
}

var (
	quadrupletRE = regexp.MustCompile(`^\s*"(.+?)"\s+"(.*?)"\s+"(.*?)"\s+"(.*?)"\s*(//.*)?$`)
	foldingRE    = regexp.MustCompile(`^\s*(\S)=(\S)\s*(//.*)?$`)
	langGuessRE  = regexp.MustCompile(`^\s*(\S+)\s+(\S+)\s+(\S+)\s*(//.*)?$`)
	includeRE    = regexp.MustCompile(`^\s*#include\s+([a-z_]+?)\s*(//.*)?$`)
)

// Quadruplet parses a rule line of four double-quoted fields separated
// by whitespace, with an optional trailing "//" comment. The first field
// must be non-empty; the others may be empty strings.
func Quadruplet(line string) (fields [4]string, ok bool) {
	m := quadrupletRE.FindStringSubmatch(line)
	if m == nil {
		return fields, false
	}
	copy(fields[:], m[1:5])
	return fields, true
}

// Folding parses a "<char>=<char>" substitution line, with an optional
// trailing "//" comment.
func Folding(line string) (from, to rune, ok bool) {
	m := foldingRE.FindStringSubmatch(line)
	if m == nil {
		return 0, 0, false
	}
	fr := []rune(m[1])
	tr := []rune(m[2])
	if len(fr) != 1 || len(tr) != 1 {
		return 0, 0, false
	}
	return fr[0], tr[0], true
}

// LangGuess parses a language-guessing line:
// "<regex> <lang1>+<lang2>+... <true|false>", with an optional trailing
// "//" comment. The boolean token is returned unvalidated; callers
// reject anything but "true"/"false".
func LangGuess(line string) (pattern, langs, accept string, ok bool) {
	m := langGuessRE.FindStringSubmatch(line)
	if m == nil {
		return "", "", "", false
	}
	return m[1], m[2], m[3], true
}

// Include parses a "#include <name>" line, with an optional trailing
// "//" comment.
func Include(line string) (name string, ok bool) {
	m := includeRE.FindStringSubmatch(line)
	if m == nil {
		return "", false
	}
	return m[1], true
}
