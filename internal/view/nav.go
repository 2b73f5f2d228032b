package view

import (
	"strconv"

	g "maragu.dev/gomponents"
	c "maragu.dev/gomponents/components"
	h "maragu.dev/gomponents/html"

	"github.com/devankur/portfolio/internal/content"
	"github.com/devankur/portfolio/internal/motion"
	"github.com/devankur/portfolio/internal/ui"
)

// MobileMenuID is the element id of the expanded mobile overlay.
const MobileMenuID = "mobile-menu"

// Nav renders the navigation bar returned by the navigate and menu routes.
// The brand does not replay its entrance when the bar is swapped in.
func Nav(site *content.Site, st ui.State) g.Node {
	return navBar(site, st, false)
}

// navBar renders the fixed navigation bar. onLoad plays the brand entrance,
// for the bar that is part of the full page.
func navBar(site *content.Site, st ui.State, onLoad bool) g.Node {
	brand := "text-2xl font-bold text-gray-900"
	if onLoad {
		brand = joinClass(brand, motion.Brand.Class())
	}

	swap := "outerHTML"
	if st.MenuOpen {
		// leave time for the overlay to collapse before it is replaced
		swap += " swap:" + strconv.FormatInt(motion.MenuDuration.Milliseconds(), 10) + "ms"
	}

	return h.Nav(
		h.ID(NavID),
		h.Class("fixed top-0 left-0 right-0 bg-white/80 backdrop-blur-md z-50 border-b border-gray-200"),
		g.Attr("hx-swap", swap),
		h.Data("active", string(st.Active)),
		h.Div(h.Class("max-w-7xl mx-auto px-4 sm:px-6 lg:px-8"),
			h.Div(h.Class("flex justify-between items-center h-16"),
				h.Div(h.Class(brand), g.Text(site.Brand)),
				h.Div(h.Class("hidden md:flex space-x-8"),
					g.Map(site.Nav, func(n content.NavItem) g.Node {
						return desktopLink(n, n.ID == st.Active)
					}),
				),
				resumeLink(site.Resume, joinClass("hidden md:block px-4 py-2 bg-gray-900 text-white rounded-md text-sm font-medium hover:bg-gray-800 transition-colors", motion.Press.Class())),
				menuToggle(st),
			),
		),
		g.If(st.MenuOpen, mobileMenu(site, st)),
	)
}

func desktopLink(n content.NavItem, active bool) g.Node {
	return h.A(
		navigate(n.ID),
		c.Classes{
			"text-sm font-medium transition-colors": true,
			motion.Press.Class():                    true,
			"text-gray-900":                         active,
			"text-gray-600 hover:text-gray-900":     !active,
		},
		g.If(active, h.Aria("current", "location")),
		g.Text(n.Label),
	)
}

func resumeLink(l content.Link, class string) g.Node {
	return h.A(
		h.Href(l.Href),
		h.Target("_blank"),
		h.Rel("noopener noreferrer"),
		h.Class(class),
		g.Text(l.Label),
	)
}

// menuToggle flips the mobile overlay. Without scripts the link reloads the
// page in the toggled state.
func menuToggle(st ui.State) g.Node {
	name := "menu"
	if st.MenuOpen {
		name = "x"
	}
	return h.A(
		h.Href("/?"+st.ToggleMenu().Values().Encode()),
		hxPost(RouteMenu),
		g.Attr("hx-target", "#"+NavID),
		hxVals(st.Fields()),
		h.Class("md:hidden p-2 rounded-md text-gray-600 hover:text-gray-900 hover:bg-gray-100"),
		h.Aria("label", "Toggle menu"),
		h.Aria("controls", MobileMenuID),
		h.Aria("expanded", strconv.FormatBool(st.MenuOpen)),
		icon(name, 24, ""),
	)
}

func mobileMenu(site *content.Site, st ui.State) g.Node {
	return h.Div(
		h.ID(MobileMenuID),
		h.Class(joinClass("md:hidden bg-white border-t border-gray-200 overflow-hidden", motion.MenuEnter.Class())),
		h.Div(h.Class("px-4 py-2 space-y-2"),
			g.Map(site.Nav, func(n content.NavItem) g.Node {
				return h.A(
					navigate(n.ID),
					h.Class("block w-full text-left px-3 py-2 text-gray-600 hover:text-gray-900 hover:bg-gray-100 rounded-md"),
					g.If(n.ID == st.Active, h.Aria("current", "location")),
					g.Text(n.Label),
				)
			}),
			resumeLink(site.Resume, "block w-full text-left px-3 py-2 bg-gray-900 text-white rounded-md"),
		),
	)
}
