package ircbump

import (
	"html"
	"strings"
)

// Attr is one axis of formatting state.
// The order of the constants is the order in which attributes are
// reopened when several of them are enabled by the same request.
type Attr uint8

const (
	AttrBold      Attr = iota // AttrBold renders as <strong>
	AttrUnderline             // AttrUnderline renders as an underlined span
	AttrFG                    // AttrFG is the foreground color
	AttrBG                    // AttrBG is the background color
	AttrLink                  // AttrLink is an anchor around a detected URL

	attrCount = int(AttrLink) + 1
)

// Attrs lists every attribute in reopen order.
func Attrs() [attrCount]Attr {
	return [attrCount]Attr{AttrBold, AttrUnderline, AttrFG, AttrBG, AttrLink}
}

func (a Attr) String() string {
	switch a {
	case AttrBold:
		return "bold"
	case AttrUnderline:
		return "underline"
	case AttrFG:
		return "fgcolor"
	case AttrBG:
		return "bgcolor"
	case AttrLink:
		return "link"
	}
	return "unknown"
}

// Value is the state of a single attribute.
// The zero value is disabled. Bold and underline only use On,
// the colors use Code and the link uses URL.
type Value struct {
	On   bool
	Code Code
	URL  string
}

// Off is the disabled value of every attribute.
func Off() Value { return Value{} }

// Enabled is the value of a switched on bold or underline.
func Enabled() Value { return Value{On: true} }

// ColorValue returns an enabled color attribute.
func ColorValue(c Code) Value { return Value{On: true, Code: c} }

// LinkValue returns an enabled link attribute pointing at url.
func LinkValue(url string) Value { return Value{On: true, URL: url} }

// tag is the HTML template of an attribute.
// The open template is completed with the result of arg, when set.
type tag struct {
	open  string
	close string
	arg   func(Value) string
}

var tags = [attrCount]tag{
	AttrBold:      {open: "<strong>", close: "</strong>"},
	AttrUnderline: {open: `<span style="text-decoration: underline">`, close: "</span>"},
	AttrFG: {open: `<span style="{}">`, close: "</span>",
		arg: func(v Value) string { return Resolve(v.Code).FG() }},
	AttrBG: {open: `<span style="{}">`, close: "</span>",
		arg: func(v Value) string { return Resolve(v.Code).BG() }},
	AttrLink: {open: `<a href="{}">`, close: "</a>",
		arg: func(v Value) string { return html.EscapeString(v.URL) }},
}

// HTML returns the opening tag for an enabled value or the closing tag for a disabled one.
func (c Change) HTML() string {
	t := tags[c.Attr]
	if !c.Value.On {
		return t.close
	}
	if t.arg == nil {
		return t.open
	}
	return strings.Replace(t.open, "{}", t.arg(c.Value), 1)
}
