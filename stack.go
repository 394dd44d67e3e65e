package ircbump

import "slices"

type opKind uint8

const (
	opKeep opKind = iota
	opSet
	opToggle
)

// Op is the requested change to one attribute: keep it, set it to a value or toggle it.
// The zero value keeps the attribute unchanged.
type Op struct {
	kind  opKind
	value Value
}

// Keep leaves the attribute untouched.
func Keep() Op { return Op{} }

// SetTo requests the value v. A disabled v closes the attribute.
func SetTo(v Value) Op {
	if !v.On {
		v = Off()
	}
	return Op{kind: opSet, value: v}
}

// Toggle requests the logical negation of the current value.
func Toggle() Op { return Op{kind: opToggle} }

// Request maps each attribute to the operation wanted for it.
// A keyed literal such as Request{AttrBold: Toggle()} leaves the other attributes unchanged.
type Request [attrCount]Op

// ClearAll requests every attribute to be disabled, links included.
func ClearAll() Request {
	var r Request
	for _, a := range Attrs() {
		r[a] = SetTo(Off())
	}
	return r
}

// Restore requests every attribute to take the value it has in state.
func Restore(state [attrCount]Value) Request {
	var r Request
	for _, a := range Attrs() {
		r[a] = SetTo(state[a])
	}
	return r
}

// Change is a single tag emission, an open for enabled values and a close otherwise.
type Change struct {
	Attr  Attr
	Value Value
}

// Stack tracks the enabled attributes and the order of their open tags.
// An attribute is in the open list exactly when its value is enabled,
// and the first entry is the outermost tag.
// The zero value is ready to use with everything disabled.
type Stack struct {
	state [attrCount]Value
	open  []Attr
}

// Value returns the current value of the attribute.
func (s *Stack) Value(a Attr) Value {
	return s.state[a]
}

// State returns a copy of every attribute value.
func (s *Stack) State() [attrCount]Value {
	return s.state
}

// Open returns the open attributes, outermost first.
func (s *Stack) Open() []Attr {
	return slices.Clone(s.open)
}

// Reconcile applies the request and returns the tag changes that realize it, in emission order.
//
// An attribute that is turned off, or changed to another value, is closed by popping
// the stack down to and including it. Attributes popped on the way that were not part
// of the request are reopened afterwards with their previous value, after the
// requested enables.
func (s *Stack) Reconcile(req Request) []Change {
	var (
		want    [attrCount]Value
		targets [attrCount]bool
	)
	for _, a := range Attrs() {
		op := req[a]
		v := op.value
		switch op.kind {
		case opKeep:
			continue
		case opToggle:
			v = Enabled()
			if s.state[a].On {
				v = Off()
			}
		}
		if v == s.state[a] {
			continue
		}
		want[a] = v
		targets[a] = true
	}

	var changes []Change
	var collateral []Change
	for _, a := range Attrs() {
		if !targets[a] || !s.state[a].On {
			continue
		}
		for len(s.open) > 0 {
			top := s.open[len(s.open)-1]
			s.open = s.open[:len(s.open)-1]
			prev := s.state[top]
			s.state[top] = Off()
			changes = append(changes, Change{Attr: top, Value: Off()})
			if top == a {
				break
			}
			if !targets[top] {
				collateral = append(collateral, Change{Attr: top, Value: prev})
			}
		}
	}

	for _, a := range Attrs() {
		if targets[a] && want[a].On {
			changes = s.push(changes, Change{Attr: a, Value: want[a]})
		}
	}
	for _, c := range collateral {
		changes = s.push(changes, c)
	}
	return changes
}

func (s *Stack) push(changes []Change, c Change) []Change {
	s.state[c.Attr] = c.Value
	s.open = append(s.open, c.Attr)
	return append(changes, c)
}
