package ircbump

import (
	"fmt"
	"strings"

	"golang.org/x/text/encoding/charmap"
)

var charsets = map[string]*charmap.Charmap{
	"utf8":        charmap.XUserDefined,
	"latin1":      charmap.ISO8859_1,
	"iso88591":    charmap.ISO8859_1,
	"latin9":      charmap.ISO8859_15,
	"iso885915":   charmap.ISO8859_15,
	"cp1252":      charmap.Windows1252,
	"windows1252": charmap.Windows1252,
	"cp1251":      charmap.Windows1251,
	"windows1251": charmap.Windows1251,
	"koi8r":       charmap.KOI8R,
	"cp437":       charmap.CodePage437,
	"ibm437":      charmap.CodePage437,
	"cp850":       charmap.CodePage850,
}

// Charset returns the charmap for a charset name such as "latin1", "ISO-8859-1" or "cp1252".
// Case, dashes and underscores are ignored, and "utf-8" returns [charmap.XUserDefined]
// which the [Decoder] reads without decoding.
func Charset(name string) (*charmap.Charmap, error) {
	key := strings.NewReplacer("-", "", "_", "", " ", "").Replace(strings.ToLower(name))
	if key == "" {
		return charmap.XUserDefined, nil
	}
	cm, ok := charsets[key]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrCharset, name)
	}
	return cm, nil
}
