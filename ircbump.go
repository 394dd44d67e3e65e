// Package ircbump converts IRC formatting control codes such as bold, underline
// and mIRC colors, into a HTML representation.
//
// Control codes may toggle attributes in any order, while HTML tags must nest,
// so a change to an attribute that is not the innermost one closes the tags above
// it and reopens them afterwards. The output is always a balanced fragment.
package ircbump

import (
	"bufio"
	"bytes"
	"errors"
	"fmt"
	"html/template"
	"io"
	"strings"

	"golang.org/x/text/encoding/charmap"
)

var (
	ErrReader  = errors.New("reader is nil")
	ErrCharset = errors.New("unknown charset")
)

const (
	CtrlBold      = 0x02 // CtrlBold toggles bold text
	CtrlColor     = 0x03 // CtrlColor introduces a foreground and optional background color
	CtrlReset     = 0x0f // CtrlReset disables bold, underline and both colors
	CtrlReverse   = 0x16 // CtrlReverse swaps the foreground and background colors
	CtrlUnderline = 0x1f // CtrlUnderline toggles underlined text
)

// Decoder reads IRC formatted text and holds its HTML fragment.
type Decoder struct {
	charset  *charmap.Charmap
	opts     Options
	text     string
	fragment string
}

// NewDecoder creates a Decoder. When links is true, URLs are wrapped in anchors.
//
// Most IRC text is UTF-8, which is used when charset is nil or [charmap.XUserDefined].
// Older logs and networks can use a legacy single byte charset such as
// [charmap.Windows1252] or [charmap.ISO8859_1], see [Charset].
func NewDecoder(links bool, charset *charmap.Charmap) *Decoder {
	if charset == nil {
		charset = charmap.XUserDefined
	}
	return &Decoder{
		charset: charset,
		opts:    Options{CreateLinks: links},
	}
}

// Read reads all of r and converts it, replacing any previous fragment.
func (d *Decoder) Read(r io.Reader) error {
	if r == nil {
		return ErrReader
	}
	p, err := io.ReadAll(r)
	if err != nil {
		return fmt.Errorf("read all: %w", err)
	}
	if d.charset != charmap.XUserDefined {
		p, err = d.charset.NewDecoder().Bytes(p)
		if err != nil {
			return fmt.Errorf("decode %s: %w", d.charset, err)
		}
	}
	d.text = strings.ToValidUTF8(string(p), "\uFFFD")
	d.fragment = Convert(d.text, d.opts)
	return nil
}

// Fragment returns the HTML of the last Read.
func (d *Decoder) Fragment() string {
	return d.fragment
}

// Plain returns the text of the last Read with the control codes removed.
func (d *Decoder) Plain() string {
	return StripCodes(d.text)
}

// Write writes to w the fragment inside an outer div using the default colors.
func (d *Decoder) Write(w io.Writer) error {
	if w == nil {
		w = io.Discard
	}
	fg, bg := Resolve(DefaultFG), Resolve(DefaultBG)
	t, err := template.New("irc").Parse(
		`{{define "T"}}<div style="` + fg.FG() + "; " + bg.BG() + `">{{ . }}</div>{{end}}`)
	if err != nil {
		return fmt.Errorf("write template parse: %w", err)
	}
	if err := t.ExecuteTemplate(w, "T", template.HTML(d.fragment)); err != nil { //nolint:gosec
		return fmt.Errorf("write template execute: %w", err)
	}
	return nil
}

// Buffer creates a new Buffer containing the HTML fragment of the IRC formatted
// text found in the Reader.
//
// The other arguments are used by the [NewDecoder] which documents their purpose.
func Buffer(r io.Reader, links bool, charset *charmap.Charmap) (*bytes.Buffer, error) {
	d := NewDecoder(links, charset)
	if err := d.Read(r); err != nil {
		return nil, err
	}
	var b bytes.Buffer
	out := bufio.NewWriter(&b)
	if _, err := out.WriteString(d.Fragment()); err != nil {
		return nil, fmt.Errorf("buffer out write: %w", err)
	}
	if err := out.Flush(); err != nil {
		return nil, fmt.Errorf("buffer out flush: %w", err)
	}
	return &b, nil
}

// Bytes returns the HTML fragment of the IRC formatted text found in the Reader.
// It assumes the Reader is UTF-8 and does not create links.
func Bytes(r io.Reader) ([]byte, error) {
	buf, err := Buffer(r, false, nil)
	if err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// String returns the HTML fragment of the IRC formatted text found in the Reader.
// It assumes the Reader is UTF-8 and does not create links.
func String(r io.Reader) (string, error) {
	buf, err := Buffer(r, false, nil)
	if err != nil {
		return "", err
	}
	return buf.String(), nil
}

// WriteTo writes to w the HTML fragment of the IRC formatted text found in the Reader.
// It assumes the Reader is UTF-8 and does not create links.
//
// The return int64 is the number of bytes written.
func WriteTo(r io.Reader, w io.Writer) (int64, error) {
	buf, err := Buffer(r, false, nil)
	if err != nil {
		return 0, err
	}
	i, err := buf.WriteTo(w)
	if err != nil {
		return 0, fmt.Errorf("buffer write to: %w", err)
	}
	return i, nil
}
