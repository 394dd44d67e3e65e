package ircbump

import "fmt"

// Code is an mIRC color number as written after the color control byte.
// Values outside of 0-15 are kept as is and resolve to black.
type Code int

// Sentinel codes for the viewer's default colors, used when the
// foreground and background are swapped while either side is unset.
const (
	DefaultFG Code = -1 // DefaultFG is the default foreground (text) color
	DefaultBG Code = -2 // DefaultBG is the default background color
)

// Named mIRC color codes.
const (
	White Code = iota
	Black
	Blue
	Green
	LightRed
	Brown
	Purple
	Orange
	Yellow
	LightGreen
	Cyan
	LightCyan
	LightBlue
	Pink
	Grey
	LightGrey
)

// Entry is a row of the color table.
type Entry struct {
	Name string   // Name is the canonical mIRC name of the color
	RGB  [3]uint8 // RGB holds the red, green and blue components
}

// Color returns the entry as a #rrggbb hex color.
func (e Entry) Color() Color {
	return Color(fmt.Sprintf("#%02x%02x%02x", e.RGB[0], e.RGB[1], e.RGB[2]))
}

// Color code represented as a CSS hexadecimal value with a leading #,
// for example the mIRC light red is "#ff0000".
type Color string

// CBlack is the color used for unknown codes.
const CBlack Color = "#000000"

// BG returns the CSS background-color property and color value.
func (c Color) BG() string {
	if c == "" {
		return ""
	}
	return "background-color: " + string(c)
}

// FG returns the CSS color property and color value.
func (c Color) FG() string {
	if c == "" {
		return ""
	}
	return "color: " + string(c)
}

// MIRC returns the 16 standard colors in code order.
// The values come from the [mIRC colors] page.
//
// [mIRC colors]: http://www.mirc.com/colors.html
//
//nolint:mnd
func MIRC() [16]Entry {
	return [16]Entry{
		{"White", [3]uint8{255, 255, 255}},
		{"Black", [3]uint8{0, 0, 0}},
		{"Blue", [3]uint8{0, 0, 127}},
		{"Green", [3]uint8{0, 147, 0}},
		{"Light Red", [3]uint8{255, 0, 0}},
		{"Brown", [3]uint8{127, 0, 0}},
		{"Purple", [3]uint8{156, 0, 156}},
		{"Orange", [3]uint8{252, 127, 0}},
		{"Yellow", [3]uint8{255, 255, 0}},
		{"Light Green", [3]uint8{0, 252, 0}},
		{"Cyan", [3]uint8{0, 147, 147}},
		{"Light Cyan", [3]uint8{0, 255, 255}},
		{"Light Blue", [3]uint8{0, 0, 252}},
		{"Pink", [3]uint8{255, 0, 255}},
		{"Grey", [3]uint8{127, 127, 127}},
		{"Light Grey", [3]uint8{210, 210, 210}},
	}
}

// Lookup returns the table entry for the code.
// The default sentinels resolve to black text on a white background.
// The boolean is false for codes that are not in the table.
func Lookup(code Code) (Entry, bool) {
	switch code {
	case DefaultFG:
		return Entry{"default-fgcolor", [3]uint8{0, 0, 0}}, true
	case DefaultBG:
		return Entry{"default-bgcolor", [3]uint8{255, 255, 255}}, true
	}
	table := MIRC()
	if code < 0 || int(code) >= len(table) {
		return Entry{}, false
	}
	return table[code], true
}

// Resolve returns the hex color of the code, or black when the code is unknown.
func Resolve(code Code) Color {
	e, ok := Lookup(code)
	if !ok {
		return CBlack
	}
	return e.Color()
}
