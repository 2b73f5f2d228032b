package view

import (
	"strconv"

	g "maragu.dev/gomponents"
	h "maragu.dev/gomponents/html"

	"github.com/devankur/portfolio/internal/content"
	"github.com/devankur/portfolio/internal/motion"
	"github.com/devankur/portfolio/internal/ui"
)

// Showcase renders the skills grid and the project cards. Both share one
// reveal; the projects heading carries the projects anchor.
func Showcase(site *content.Site, revealed bool) g.Node {
	return h.Section(
		h.ID(string(ui.Skills)),
		h.Class("py-20 px-4 sm:px-6 lg:px-8 bg-white scroll-mt-16"),
		h.Div(h.Class("max-w-7xl mx-auto"), showcaseBody(site, revealed)),
	)
}

func showcaseBody(site *content.Site, revealed bool) g.Node {
	gridDelay := motion.Stagger(motion.Item.Transition, 1)
	cardDelay := motion.Stagger(motion.Item.Transition, 3)

	return revealContainer(ui.Skills, revealed, "",
		item(h.Div, 0, "flex items-center justify-center mb-12",
			icon("code", 24, "mr-3 text-gray-700"),
			h.H2(h.Class("text-3xl font-bold text-gray-900"), g.Text(site.SkillsHeading)),
		),
		item(h.Ul, 1, "grid grid-cols-2 md:grid-cols-4 gap-4 mb-20",
			g.Map(site.Skills, func(s string) g.Node {
				return h.Li(
					h.Class(joinClass("bg-gray-50 p-4 rounded-lg text-center font-medium text-gray-700 hover:bg-gray-100 transition-colors "+motion.Item.Class(), motion.Lift.Class())),
					delay(gridDelay),
					h.Data("skill", s),
					g.Text(s),
				)
			}),
		),
		item(h.Div, 2, "flex items-center justify-center mb-12 scroll-mt-24",
			h.ID(string(ui.Projects)),
			icon("briefcase", 24, "mr-3 text-gray-700"),
			h.H2(h.Class("text-3xl font-bold text-gray-900"), g.Text(site.ProjectHeading)),
		),
		item(h.Div, 3, "grid grid-cols-1 md:grid-cols-2 lg:grid-cols-3 gap-8",
			g.Map(site.Projects, func(p content.Project) g.Node {
				return h.Article(
					h.Class(joinClass("bg-white rounded-lg shadow-lg overflow-hidden hover:shadow-xl transition-shadow "+motion.Item.Class(), motion.Lift.Class())),
					delay(cardDelay),
					h.Data("project", strconv.Itoa(p.ID)),
					h.Div(h.Class("h-48 bg-gradient-to-br "+p.Accent.From+" "+p.Accent.To+" flex items-center justify-center"),
						h.Img(
							h.Src(p.ImageURL),
							h.Alt(p.Title),
							g.Attr("loading", "lazy"),
							h.Class("w-full h-full object-cover"),
						),
					),
					h.Div(h.Class("p-6"),
						h.H3(h.Class("text-xl font-bold text-gray-900 mb-2"), g.Text(p.Title)),
						h.P(h.Class("text-gray-600"), g.Text(p.Description)),
					),
				)
			}),
		),
	)
}
