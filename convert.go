package ircbump

import (
	"html"
	"strings"
)

// Options configures a conversion.
type Options struct {
	CreateLinks bool // CreateLinks wraps http, https and ftp URLs in anchors
}

// Convert returns the HTML fragment for the IRC formatted input.
// Every tag it opens is closed before it returns, literal text is escaped
// and all control codes are removed.
// Invalid UTF-8 sequences are replaced by U+FFFD.
func Convert(input string, opts Options) string {
	input = strings.ToValidUTF8(input, "\uFFFD")
	c := converter{in: input}
	if opts.CreateLinks {
		c.urls = make(map[int]int)
		for _, sp := range FindURLs(input) {
			c.urls[sp.Start] = sp.Len
		}
	}
	return c.run()
}

// converter holds the scratch state of a single Convert call.
type converter struct {
	in      string
	stack   Stack
	out     strings.Builder
	tags    []Change    // tags waiting for the next text run
	mark    int         // start of the pending text run
	urls    map[int]int // URL start offset to length
	linkEnd int
}

func (c *converter) run() string {
	c.out.Grow(len(c.in))
	for i := 0; i < len(c.in); i++ {
		if !isControl(c.in[i]) {
			c.literal(i)
			continue
		}
		c.flush(i)
		switch c.in[i] {
		case CtrlBold:
			c.apply(i, Request{AttrBold: Toggle()})
		case CtrlUnderline:
			c.apply(i, Request{AttrUnderline: Toggle()})
		case CtrlReset:
			// an open link is left alone
			c.apply(i, Request{
				AttrBold:      SetTo(Off()),
				AttrUnderline: SetTo(Off()),
				AttrFG:        SetTo(Off()),
				AttrBG:        SetTo(Off()),
			})
		case CtrlReverse:
			c.apply(i, c.swap())
		case CtrlColor:
			i = c.color(i)
		}
		c.mark = i + 1
	}
	c.flush(len(c.in))
	c.apply(len(c.in), ClearAll())
	c.commit()
	return c.out.String()
}

func isControl(b byte) bool {
	switch b {
	case CtrlBold, CtrlUnderline, CtrlReset, CtrlReverse, CtrlColor:
		return true
	}
	return false
}

// flush writes the waiting tags and the escaped text between the mark and i.
func (c *converter) flush(i int) {
	if i <= c.mark {
		return
	}
	c.commit()
	c.out.WriteString(html.EscapeString(c.in[c.mark:i]))
	c.mark = i
}

// apply reconciles the request at position i.
// A close that directly follows the open of the same attribute cancels it,
// so no empty elements are written.
func (c *converter) apply(i int, req Request) {
	c.flush(i)
	for _, ch := range c.stack.Reconcile(req) {
		if n := len(c.tags); !ch.Value.On && n > 0 && c.tags[n-1].Attr == ch.Attr && c.tags[n-1].Value.On {
			c.tags = c.tags[:n-1]
			continue
		}
		c.tags = append(c.tags, ch)
	}
}

func (c *converter) commit() {
	for _, ch := range c.tags {
		c.out.WriteString(ch.HTML())
	}
	c.tags = c.tags[:0]
}

// swap exchanges the foreground and background colors.
// An unset side becomes the opposite default color, and a default color
// that lands back on its own side is disabled again.
func (c *converter) swap() Request {
	fg := c.stack.Value(AttrBG)
	if !fg.On {
		fg = ColorValue(DefaultBG)
	}
	bg := c.stack.Value(AttrFG)
	if !bg.On {
		bg = ColorValue(DefaultFG)
	}
	if fg == ColorValue(DefaultFG) {
		fg = Off()
	}
	if bg == ColorValue(DefaultBG) {
		bg = Off()
	}
	return Request{AttrFG: SetTo(fg), AttrBG: SetTo(bg)}
}

// color parses the digits following the color control byte at i and
// returns the index of the last byte consumed.
// A missing number leaves its color unchanged.
func (c *converter) color(i int) int {
	fg, j := digits(c.in, i+1)
	if fg >= 0 {
		c.apply(i, Request{AttrFG: SetTo(ColorValue(Code(fg)))})
	}
	if j >= len(c.in) || c.in[j] != ',' {
		return j - 1
	}
	bg, k := digits(c.in, j+1)
	if bg >= 0 {
		c.apply(i, Request{AttrBG: SetTo(ColorValue(Code(bg)))})
	}
	return k - 1
}

// digits reads up to two decimal digits of s from offset i.
// It returns -1 when there are none, and the offset following the digits.
func digits(s string, i int) (int, int) {
	const most = 2
	n, j := -1, i
	for j < len(s) && j-i < most && '0' <= s[j] && s[j] <= '9' {
		if n < 0 {
			n = 0
		}
		n = n*10 + int(s[j]-'0') //nolint:mnd
		j++
	}
	return n, j
}

// literal opens or closes the link around the text byte at i.
// The link is opened as the outermost tag: everything open is closed first
// and reopened inside the anchor.
func (c *converter) literal(i int) {
	if c.urls == nil {
		return
	}
	if c.stack.Value(AttrLink).On {
		if i >= c.linkEnd {
			c.apply(i, Request{AttrLink: SetTo(Off())})
		}
		return
	}
	n, ok := c.urls[i]
	if !ok {
		return
	}
	link := LinkValue(StripCodes(c.in[i : i+n]))
	prev := c.stack.State()
	c.apply(i, ClearAll())
	c.apply(i, Request{AttrLink: SetTo(link)})
	prev[AttrLink] = link
	c.apply(i, Restore(prev))
	c.linkEnd = i + n
}
