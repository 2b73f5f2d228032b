// Package ui holds the per-page interaction state of the portfolio: which
// section is active, whether the mobile menu is expanded, and which sections
// have already played their reveal animation.
//
// None of it is stored on the server. The page carries the fields in every
// request it makes and a reload starts again from Default.
package ui

import (
	"errors"
	"net/url"
)

// Section is the anchor id of one in-page section.
type Section string

const (
	Home     Section = "home"
	About    Section = "about"
	Skills   Section = "skills"
	Projects Section = "projects"
	Contact  Section = "contact"
)

var sections = []Section{Home, About, Skills, Projects, Contact}

// ErrUnknownSection is returned when a section id is not one of the page anchors.
var ErrUnknownSection = errors.New("unknown section")

// Sections returns the page anchors in page order.
func Sections() []Section {
	out := make([]Section, len(sections))
	copy(out, sections)
	return out
}

// ParseSection validates an anchor id.
func ParseSection(s string) (Section, error) {
	for _, sec := range sections {
		if string(sec) == s {
			return sec, nil
		}
	}
	return "", ErrUnknownSection
}

// Valid reports whether s is one of the page anchors.
func (s Section) Valid() bool {
	_, err := ParseSection(string(s))
	return err == nil
}

// Anchor returns the fragment link for the section.
func (s Section) Anchor() string {
	return "#" + string(s)
}

// State is the interaction state of one page instance.
type State struct {
	Active   Section
	MenuOpen bool
}

// Default is the state of a freshly loaded page.
func Default() State {
	return State{Active: Home}
}

// Navigate activates the given section and closes the mobile menu.
// The state is returned unchanged together with ErrUnknownSection when id is
// not a page anchor.
func (s State) Navigate(id Section) (State, error) {
	if !id.Valid() {
		return s, ErrUnknownSection
	}
	return State{Active: id, MenuOpen: false}, nil
}

// ToggleMenu flips the mobile menu.
func (s State) ToggleMenu() State {
	s.MenuOpen = !s.MenuOpen
	return s
}

// Form field names used to carry the state between the page and the server.
const (
	FieldSection = "section"
	FieldMenu    = "menu"
)

const (
	menuOpen   = "open"
	menuClosed = "closed"
)

// FromValues reads a state from query or form values. Missing or unknown
// values fall back to Default.
func FromValues(v url.Values) State {
	st := Default()
	if sec, err := ParseSection(v.Get(FieldSection)); err == nil {
		st.Active = sec
	}
	st.MenuOpen = v.Get(FieldMenu) == menuOpen
	return st
}

// Values encodes the state as form values.
func (s State) Values() url.Values {
	v := url.Values{}
	v.Set(FieldSection, string(s.Active))
	v.Set(FieldMenu, s.menu())
	return v
}

// Fields returns the state as a flat map, suitable for hx-vals.
func (s State) Fields() map[string]string {
	return map[string]string{
		FieldSection: string(s.Active),
		FieldMenu:    s.menu(),
	}
}

// Key is a stable, compact identifier of the state.
func (s State) Key() string {
	return string(s.Active) + "/" + s.menu()
}

func (s State) menu() string {
	if s.MenuOpen {
		return menuOpen
	}
	return menuClosed
}
