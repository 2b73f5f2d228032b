package view

import (
	g "maragu.dev/gomponents"
	h "maragu.dev/gomponents/html"

	"github.com/devankur/portfolio/internal/content"
	"github.com/devankur/portfolio/internal/motion"
	"github.com/devankur/portfolio/internal/ui"
)

// Hero is the landing section. It plays its entrance on load, not on scroll.
func Hero(site *content.Site) g.Node {
	hero := site.Hero
	return h.Section(
		h.ID(string(ui.Home)),
		h.Class("min-h-screen flex items-center justify-center px-4 sm:px-6 lg:px-8"),
		h.Div(h.Class("text-center max-w-4xl mx-auto"),
			item(h.Div, 0, "inline-block px-4 py-2 bg-gray-200 rounded-full text-sm text-gray-700 mb-8", g.Text(hero.Badge)),
			item(h.H1, 1, "text-4xl md:text-6xl lg:text-7xl font-bold text-gray-900 mb-6 leading-tight", g.Text(hero.Headline)),
			item(h.P, 2, "text-lg md:text-xl text-gray-600 mb-8 max-w-2xl mx-auto", g.Text(hero.Tagline)),
			item(h.Div, 3, "flex flex-col sm:flex-row gap-4 justify-center",
				cta(hero.Primary, "bg-gray-900 text-white hover:bg-gray-800"),
				cta(hero.Secondary, "border border-gray-300 text-gray-900 hover:bg-gray-50"),
			),
			item(h.Div, 4, "mt-16 text-gray-500",
				h.P(h.Class("text-sm mb-2"), g.Text(hero.ScrollHint)),
				h.Div(h.Class(motion.Bounce.Class()), icon("chevron-down", 20, "mx-auto")),
			),
		),
	)
}

func cta(b content.CTA, class string) g.Node {
	return h.A(
		navigate(b.Target),
		g.Attr("hx-swap", "outerHTML"),
		h.Class(joinClass("inline-block px-8 py-3 rounded-md font-medium transition-colors "+class, motion.Press.Class())),
		g.Text(b.Label),
	)
}
