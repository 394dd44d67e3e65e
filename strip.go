package ircbump

import "regexp"

// codesRegexp matches the same control sequences that Convert consumes:
// toggles, resets and colors with up to two digits either side of an optional comma.
var codesRegexp = regexp.MustCompile(`[\x02\x1f\x0f\x16]+|\x03[0-9]{0,2}(?:,[0-9]{0,2})?`)

// StripCodes returns s with every formatting control sequence removed.
func StripCodes(s string) string {
	return codesRegexp.ReplaceAllLiteralString(s, "")
}
