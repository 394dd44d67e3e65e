package ircbump_test

import (
	"slices"
	"testing"

	"github.com/bengarrett/ircbump"
	"github.com/nalgeon/be"
)

// consistent checks that exactly the enabled attributes are open.
func consistent(t *testing.T, s *ircbump.Stack) {
	t.Helper()
	open := s.Open()
	for _, a := range ircbump.Attrs() {
		be.Equal(t, slices.Contains(open, a), s.Value(a).On)
	}
	be.Equal(t, len(open), len(slices.Compact(slices.Clone(open))))
}

func TestReconcileToggle(t *testing.T) {
	t.Parallel()
	var s ircbump.Stack
	got := s.Reconcile(ircbump.Request{ircbump.AttrBold: ircbump.Toggle()})
	be.Equal(t, got, []ircbump.Change{{Attr: ircbump.AttrBold, Value: ircbump.Enabled()}})
	be.Equal(t, s.Open(), []ircbump.Attr{ircbump.AttrBold})
	consistent(t, &s)

	got = s.Reconcile(ircbump.Request{ircbump.AttrBold: ircbump.Toggle()})
	be.Equal(t, got, []ircbump.Change{{Attr: ircbump.AttrBold, Value: ircbump.Off()}})
	be.Equal(t, len(s.Open()), 0)
	consistent(t, &s)
}

func TestReconcileNoop(t *testing.T) {
	t.Parallel()
	var s ircbump.Stack
	got := s.Reconcile(ircbump.Request{ircbump.AttrUnderline: ircbump.SetTo(ircbump.Off())})
	be.Equal(t, len(got), 0)
	got = s.Reconcile(ircbump.Request{})
	be.Equal(t, len(got), 0)

	s.Reconcile(ircbump.Request{ircbump.AttrFG: ircbump.SetTo(ircbump.ColorValue(ircbump.LightRed))})
	got = s.Reconcile(ircbump.Request{
		ircbump.AttrFG:   ircbump.SetTo(ircbump.ColorValue(ircbump.LightRed)),
		ircbump.AttrBold: ircbump.Keep(),
	})
	be.Equal(t, len(got), 0)
	consistent(t, &s)
}

func TestReconcileCollateral(t *testing.T) {
	t.Parallel()
	var s ircbump.Stack
	red := ircbump.ColorValue(ircbump.LightRed)
	s.Reconcile(ircbump.Request{ircbump.AttrUnderline: ircbump.Toggle()})
	s.Reconcile(ircbump.Request{ircbump.AttrFG: ircbump.SetTo(red)})
	got := s.Reconcile(ircbump.Request{ircbump.AttrUnderline: ircbump.Toggle()})
	be.Equal(t, got, []ircbump.Change{
		{Attr: ircbump.AttrFG, Value: ircbump.Off()},
		{Attr: ircbump.AttrUnderline, Value: ircbump.Off()},
		{Attr: ircbump.AttrFG, Value: red},
	})
	be.Equal(t, s.Open(), []ircbump.Attr{ircbump.AttrFG})
	be.Equal(t, s.Value(ircbump.AttrFG), red)
	consistent(t, &s)
}

func TestReconcileColorChange(t *testing.T) {
	t.Parallel()
	var s ircbump.Stack
	s.Reconcile(ircbump.Request{ircbump.AttrFG: ircbump.SetTo(ircbump.ColorValue(ircbump.LightRed))})
	s.Reconcile(ircbump.Request{ircbump.AttrBold: ircbump.Toggle()})
	got := s.Reconcile(ircbump.Request{ircbump.AttrFG: ircbump.SetTo(ircbump.ColorValue(ircbump.Green))})
	be.Equal(t, got, []ircbump.Change{
		{Attr: ircbump.AttrBold, Value: ircbump.Off()},
		{Attr: ircbump.AttrFG, Value: ircbump.Off()},
		{Attr: ircbump.AttrFG, Value: ircbump.ColorValue(ircbump.Green)},
		{Attr: ircbump.AttrBold, Value: ircbump.Enabled()},
	})
	be.Equal(t, s.Open(), []ircbump.Attr{ircbump.AttrFG, ircbump.AttrBold})
	consistent(t, &s)
}

func TestReconcileOrder(t *testing.T) {
	t.Parallel()
	var s ircbump.Stack
	red := ircbump.ColorValue(ircbump.LightRed)
	blue := ircbump.ColorValue(ircbump.Blue)
	s.Reconcile(ircbump.Request{ircbump.AttrBold: ircbump.Toggle()})
	s.Reconcile(ircbump.Request{ircbump.AttrUnderline: ircbump.Toggle()})
	s.Reconcile(ircbump.Request{ircbump.AttrFG: ircbump.SetTo(red)})
	// requested enables come before the collateral reopens, which keep their pop order
	got := s.Reconcile(ircbump.Request{
		ircbump.AttrBold: ircbump.SetTo(ircbump.Off()),
		ircbump.AttrBG:   ircbump.SetTo(blue),
	})
	be.Equal(t, got, []ircbump.Change{
		{Attr: ircbump.AttrFG, Value: ircbump.Off()},
		{Attr: ircbump.AttrUnderline, Value: ircbump.Off()},
		{Attr: ircbump.AttrBold, Value: ircbump.Off()},
		{Attr: ircbump.AttrBG, Value: blue},
		{Attr: ircbump.AttrFG, Value: red},
		{Attr: ircbump.AttrUnderline, Value: ircbump.Enabled()},
	})
	be.Equal(t, s.Open(), []ircbump.Attr{ircbump.AttrBG, ircbump.AttrFG, ircbump.AttrUnderline})
	consistent(t, &s)
}

func TestReconcileTargetAbove(t *testing.T) {
	t.Parallel()
	var s ircbump.Stack
	s.Reconcile(ircbump.Request{ircbump.AttrBold: ircbump.Toggle()})
	s.Reconcile(ircbump.Request{ircbump.AttrFG: ircbump.SetTo(ircbump.ColorValue(ircbump.LightRed))})
	// fg sits above bold and is a target itself, so it is not reopened as collateral
	got := s.Reconcile(ircbump.Request{
		ircbump.AttrBold: ircbump.SetTo(ircbump.Off()),
		ircbump.AttrFG:   ircbump.SetTo(ircbump.ColorValue(ircbump.Pink)),
	})
	be.Equal(t, got, []ircbump.Change{
		{Attr: ircbump.AttrFG, Value: ircbump.Off()},
		{Attr: ircbump.AttrBold, Value: ircbump.Off()},
		{Attr: ircbump.AttrFG, Value: ircbump.ColorValue(ircbump.Pink)},
	})
	consistent(t, &s)
}

func TestReconcileClearAll(t *testing.T) {
	t.Parallel()
	var s ircbump.Stack
	s.Reconcile(ircbump.Request{ircbump.AttrLink: ircbump.SetTo(ircbump.LinkValue("http://x"))})
	s.Reconcile(ircbump.Request{ircbump.AttrUnderline: ircbump.Toggle()})
	s.Reconcile(ircbump.Request{ircbump.AttrBG: ircbump.SetTo(ircbump.ColorValue(ircbump.DefaultBG))})
	state := s.State()
	got := s.Reconcile(ircbump.ClearAll())
	be.Equal(t, got, []ircbump.Change{
		{Attr: ircbump.AttrBG, Value: ircbump.Off()},
		{Attr: ircbump.AttrUnderline, Value: ircbump.Off()},
		{Attr: ircbump.AttrLink, Value: ircbump.Off()},
	})
	be.Equal(t, len(s.Open()), 0)
	consistent(t, &s)

	// restoring reopens in attribute order
	got = s.Reconcile(ircbump.Restore(state))
	be.Equal(t, s.Open(), []ircbump.Attr{ircbump.AttrUnderline, ircbump.AttrBG, ircbump.AttrLink})
	be.Equal(t, len(got), 3)
	be.Equal(t, s.State(), state)
	consistent(t, &s)
}

func TestSetToOff(t *testing.T) {
	t.Parallel()
	var s ircbump.Stack
	s.Reconcile(ircbump.Request{ircbump.AttrFG: ircbump.SetTo(ircbump.ColorValue(ircbump.Yellow))})
	// a disabled value is normalized, whatever its other fields hold
	got := s.Reconcile(ircbump.Request{ircbump.AttrFG: ircbump.SetTo(ircbump.Value{Code: ircbump.Yellow})})
	be.Equal(t, got, []ircbump.Change{{Attr: ircbump.AttrFG, Value: ircbump.Off()}})
	consistent(t, &s)
}

func TestChangeHTML(t *testing.T) {
	t.Parallel()
	tests := []struct {
		change ircbump.Change
		want   string
	}{
		{ircbump.Change{Attr: ircbump.AttrBold, Value: ircbump.Enabled()}, "<strong>"},
		{ircbump.Change{Attr: ircbump.AttrBold}, "</strong>"},
		{ircbump.Change{Attr: ircbump.AttrUnderline, Value: ircbump.Enabled()},
			`<span style="text-decoration: underline">`},
		{ircbump.Change{Attr: ircbump.AttrUnderline}, "</span>"},
		{ircbump.Change{Attr: ircbump.AttrFG, Value: ircbump.ColorValue(ircbump.Orange)},
			`<span style="color: #fc7f00">`},
		{ircbump.Change{Attr: ircbump.AttrBG, Value: ircbump.ColorValue(99)},
			`<span style="background-color: #000000">`},
		{ircbump.Change{Attr: ircbump.AttrBG}, "</span>"},
		{ircbump.Change{Attr: ircbump.AttrLink, Value: ircbump.LinkValue("http://a/?b&c")},
			`<a href="http://a/?b&amp;c">`},
		{ircbump.Change{Attr: ircbump.AttrLink}, "</a>"},
	}
	for _, tt := range tests {
		be.Equal(t, tt.change.HTML(), tt.want)
	}
}

func TestAttrString(t *testing.T) {
	t.Parallel()
	names := []string{}
	for _, a := range ircbump.Attrs() {
		names = append(names, a.String())
	}
	be.Equal(t, names, []string{"bold", "underline", "fgcolor", "bgcolor", "link"})
	be.Equal(t, ircbump.Attr(42).String(), "unknown")
}
