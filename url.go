package ircbump

import "regexp"

// urlRegexp treats formatting control bytes as ordinary characters,
// so a matched URL may carry codes that need stripping before use.
// A URL ends at any Unicode space, not only the ASCII ones matched by \s.
var urlRegexp = regexp.MustCompile(`(?i)(?:https?|ftp)://` +
	`[^\s\v\p{Z}\x{feff}/$.?#][^\s\v\p{Z}\x{feff}]*`)

// Span is the byte offset and length of a URL found in the raw input.
type Span struct {
	Start int
	Len   int
}

// End returns the offset of the first byte after the span.
func (s Span) End() int {
	return s.Start + s.Len
}

// FindURLs returns the http, https and ftp URLs found in s, in order of appearance.
func FindURLs(s string) []Span {
	matches := urlRegexp.FindAllStringIndex(s, -1)
	spans := make([]Span, 0, len(matches))
	for _, m := range matches {
		spans = append(spans, Span{Start: m[0], Len: m[1] - m[0]})
	}
	return spans
}
