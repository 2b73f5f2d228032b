package view

import (
	g "maragu.dev/gomponents"
	h "maragu.dev/gomponents/html"

	"github.com/devankur/portfolio/internal/content"
	"github.com/devankur/portfolio/internal/ui"
)

func About(site *content.Site, revealed bool) g.Node {
	return h.Section(
		h.ID(string(ui.About)),
		h.Class("py-20 px-4 sm:px-6 lg:px-8 scroll-mt-16"),
		h.Div(h.Class("max-w-7xl mx-auto"), aboutBody(site, revealed)),
	)
}

func aboutBody(site *content.Site, revealed bool) g.Node {
	about := site.About
	return revealContainer(ui.About, revealed, "grid grid-cols-1 lg:grid-cols-3 gap-12",
		h.Div(h.Class("lg:col-span-2"),
			item(h.Div, 0, "flex items-center mb-8",
				icon("user", 24, "mr-3 text-gray-700"),
				h.H2(h.Class("text-3xl font-bold text-gray-900"), g.Text(about.Heading)),
			),
			// bio is goldmark output, already escaped
			item(h.Div, 1, "space-y-6 text-gray-700 text-lg leading-relaxed",
				g.Map(site.BioHTML, func(p string) g.Node { return g.Raw(p) }),
			),
		),
		item(h.Div, 2, "bg-white p-8 rounded-lg shadow-lg",
			h.H3(h.Class("text-xl font-bold text-gray-900 mb-6"), g.Text(about.InfoTitle)),
			h.Dl(h.Class("space-y-4"),
				g.Map(about.Info, func(it content.InfoItem) g.Node {
					return h.Div(
						h.Dt(h.Class("inline font-medium text-gray-700"), g.Text(it.Label+":")),
						h.Dd(h.Class("inline ml-2 text-gray-600"), g.Text(it.Value)),
					)
				}),
			),
		),
	)
}
