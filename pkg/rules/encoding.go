package rules

import (
	"io"
	"strings"

	"github.com/cockroachdb/errors"
	"golang.org/x/text/encoding"
	"golang.org/x/text/encoding/charmap"
	"golang.org/x/text/encoding/unicode"
	"golang.org/x/text/transform"
)

// Charset identifies the character encoding of a rule resource. Rule
// files are edited by hand and circulate in a handful of legacy
// encodings besides UTF-8; decoding is normalized here so the parsers
// only ever see UTF-8.
type Charset int

const (
	UTF8 Charset = iota
	UTF16LE
	UTF16BE

	ISO8859_1
	ISO8859_2
	ISO8859_5
	ISO8859_7
	ISO8859_8
	ISO8859_15

	KOI8R
	KOI8U

	Windows1250
	Windows1251
	Windows1252
	Windows1255
)

var charsetNames = map[string]Charset{
	"utf-8":        UTF8,
	"utf8":         UTF8,
	"utf-16le":     UTF16LE,
	"utf-16be":     UTF16BE,
	"iso-8859-1":   ISO8859_1,
	"iso-8859-2":   ISO8859_2,
	"iso-8859-5":   ISO8859_5,
	"iso-8859-7":   ISO8859_7,
	"iso-8859-8":   ISO8859_8,
	"iso-8859-15":  ISO8859_15,
	"koi8-r":       KOI8R,
	"koi8-u":       KOI8U,
	"windows-1250": Windows1250,
	"windows-1251": Windows1251,
	"windows-1252": Windows1252,
	"windows-1255": Windows1255,
}

// ParseCharset resolves a case-insensitive charset name.
func ParseCharset(name string) (Charset, error) {
	cs, ok := charsetNames[strings.ToLower(strings.TrimSpace(name))]
	if !ok {
		return 0, errors.Newf("unknown charset: %s", name)
	}
	return cs, nil
}

func (c Charset) encoding() (encoding.Encoding, error) {
	switch c {
	case UTF8:
		return unicode.UTF8, nil
	case UTF16LE:
		return unicode.UTF16(unicode.LittleEndian, unicode.UseBOM), nil
	case UTF16BE:
		return unicode.UTF16(unicode.BigEndian, unicode.UseBOM), nil
	case ISO8859_1:
		return charmap.ISO8859_1, nil
	case ISO8859_2:
		return charmap.ISO8859_2, nil
	case ISO8859_5:
		return charmap.ISO8859_5, nil
	case ISO8859_7:
		return charmap.ISO8859_7, nil
	case ISO8859_8:
		return charmap.ISO8859_8, nil
	case ISO8859_15:
		return charmap.ISO8859_15, nil
	case KOI8R:
		return charmap.KOI8R, nil
	case KOI8U:
		return charmap.KOI8U, nil
	case Windows1250:
		return charmap.Windows1250, nil
	case Windows1251:
		return charmap.Windows1251, nil
	case Windows1252:
		return charmap.Windows1252, nil
	case Windows1255:
		return charmap.Windows1255, nil
	}
	return nil, errors.Newf("unsupported charset id: %d", int(c))
}

// DecodeText converts raw resource bytes from the given charset to a
// UTF-8 string.
func DecodeText(raw []byte, cs Charset) (string, error) {
	enc, err := cs.encoding()
	if err != nil {
		return "", err
	}
	r := transform.NewReader(strings.NewReader(string(raw)), enc.NewDecoder())
	out, err := io.ReadAll(r)
	if err != nil {
		return "", errors.Wrap(err, "decode rule text")
	}
	return string(out), nil
}
