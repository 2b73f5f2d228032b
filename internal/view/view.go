// Package view renders the portfolio page and its HTMX fragments with
// gomponents.
//
// Views are pure: they take content plus UI state and return a node tree.
// Interactivity is expressed through htmx attributes that post the state back
// to the routes declared here.
package view

import (
	"encoding/json"
	"time"

	g "maragu.dev/gomponents"
	h "maragu.dev/gomponents/html"

	"github.com/devankur/portfolio/internal/motion"
	"github.com/devankur/portfolio/internal/ui"
)

// Routes the views post to.
const (
	RouteNavigate = "/ui/navigate"
	RouteMenu     = "/ui/menu"
	RouteReveal   = "/ui/reveal/"
	RouteContact  = "/contact"
)

// FieldTarget carries the section a navigation control points at.
const FieldTarget = "target"

// NavID is the element id of the navigation bar, the swap target of every
// navigation fragment.
const NavID = "site-nav"

const (
	TailwindCDN = "https://cdn.tailwindcss.com"
	HTMXCDN     = "https://unpkg.com/htmx.org@2.0.4"
)

func hxPost(url string) g.Node {
	return g.Attr("hx-post", url)
}

func hxVals(v map[string]string) g.Node {
	// marshaling a map of strings cannot fail
	b, _ := json.Marshal(v)
	return g.Attr("hx-vals", string(b))
}

// navigate wires a link so that activating it scrolls to the section and
// replaces the nav bar with one rendered for the new state.
func navigate(id ui.Section) g.Node {
	return g.Group([]g.Node{
		h.Href(id.Anchor()),
		hxPost(RouteNavigate),
		g.Attr("hx-target", "#"+NavID),
		hxVals(map[string]string{FieldTarget: string(id)}),
	})
}

// item renders a child of an animated container. The i-th child starts
// i stagger steps after the container.
func item(el func(...g.Node) g.Node, i int, class string, children ...g.Node) g.Node {
	return el(append([]g.Node{
		h.Class(joinClass(motion.Item.Class(), class)),
		delay(motion.Stagger(motion.Item.Transition, i)),
	}, children...)...)
}

func delay(d time.Duration) g.Node {
	return h.Style(motion.DelayStyle(d))
}

func joinClass(a, b string) string {
	switch {
	case a == "":
		return b
	case b == "":
		return a
	}
	return a + " " + b
}
