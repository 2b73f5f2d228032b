package view

import (
	g "maragu.dev/gomponents"
	c "maragu.dev/gomponents/components"
	h "maragu.dev/gomponents/html"

	"github.com/devankur/portfolio/internal/content"
	"github.com/devankur/portfolio/internal/motion"
	"github.com/devankur/portfolio/internal/ui"
)

// Page renders the whole document.
func Page(site *content.Site, st ui.State, rev ui.Revealed) g.Node {
	return document(site.Title,
		h.Class("min-h-screen bg-gray-50"),
		navBar(site, st, true),
		h.Main(
			Hero(site),
			About(site, rev.Has(ui.About)),
			Showcase(site, rev.Has(ui.Skills)),
			Contact(site, rev.Has(ui.Contact)),
		),
		Footer(site),
	)
}

func Footer(site *content.Site) g.Node {
	return h.Footer(h.Class("bg-white py-8 px-4 sm:px-6 lg:px-8 border-t border-gray-200"),
		h.Div(h.Class("max-w-7xl mx-auto"),
			h.Div(h.Class("flex flex-col sm:flex-row justify-between items-center"),
				h.P(h.Class("text-gray-600 text-sm mb-4 sm:mb-0"), g.Text(site.Footer.Notice)),
			),
		),
	)
}

// NotFound is served for unknown routes.
func NotFound(site *content.Site) g.Node {
	return document("Page Not Found | "+site.Brand,
		h.Class("min-h-screen bg-gray-50 flex items-center justify-center"),
		h.Main(h.Class("text-center px-4"),
			h.H1(h.Class("text-4xl font-bold text-gray-900 mb-4"), g.Text("Page Not Found")),
			h.P(h.Class("text-gray-600 mb-8"), g.Text("The page you're looking for doesn't exist.")),
			h.A(h.Href("/"), h.Class("px-8 py-3 bg-gray-900 text-white rounded-md font-medium "+motion.Press.Class()),
				g.Text("Back to "+site.Brand)),
		),
	)
}

func document(title string, body ...g.Node) g.Node {
	return c.HTML5(c.HTML5Props{
		Title:    title,
		Language: "en",
		Head: []g.Node{
			h.Script(h.Src(TailwindCDN)),
			h.Script(h.Src(HTMXCDN), h.Defer()),
			h.StyleEl(g.Raw(motion.Stylesheet())),
			g.El("noscript", h.StyleEl(g.Raw(motion.NoScript()))),
		},
		Body: body,
	})
}
