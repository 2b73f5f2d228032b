package view

import (
	g "maragu.dev/gomponents"
	h "maragu.dev/gomponents/html"

	"github.com/devankur/portfolio/internal/content"
	"github.com/devankur/portfolio/internal/motion"
	"github.com/devankur/portfolio/internal/ui"
)

const inputClass = "w-full px-4 py-3 border border-gray-300 rounded-md focus:ring-2 focus:ring-gray-900 focus:border-transparent"

func Contact(site *content.Site, revealed bool) g.Node {
	return h.Section(
		h.ID(string(ui.Contact)),
		h.Class("py-20 px-4 sm:px-6 lg:px-8 bg-gray-50 scroll-mt-16"),
		h.Div(h.Class("max-w-4xl mx-auto"), contactBody(site, revealed)),
	)
}

// contactBody renders the contact form. Submitting it has no effect: the
// route answers 204 and htmx swaps nothing.
func contactBody(site *content.Site, revealed bool) g.Node {
	ct := site.Contact
	return revealContainer(ui.Contact, revealed, "",
		item(h.Div, 0, "flex items-center justify-center mb-12",
			icon("mail", 24, "mr-3 text-gray-700"),
			h.H2(h.Class("text-3xl font-bold text-gray-900"), g.Text(ct.Heading)),
		),
		item(h.Div, 1, "bg-white p-8 rounded-lg shadow-lg",
			h.Form(
				h.Method("post"),
				h.Action(RouteContact),
				hxPost(RouteContact),
				g.Attr("hx-swap", "none"),
				h.Class("space-y-6"),
				g.Group(fieldRows(ct.Fields)),
				h.Button(
					h.Type("submit"),
					h.Class(joinClass("w-full px-8 py-3 bg-gray-900 text-white rounded-md font-medium hover:bg-gray-800 transition-colors", motion.Submit.Class())),
					g.Text(ct.SubmitLabel),
				),
			),
		),
	)
}

// fieldRows pairs up consecutive half-width fields into two-column rows.
func fieldRows(fields []content.Field) []g.Node {
	var (
		rows  []g.Node
		halfs []g.Node
	)
	flush := func() {
		if len(halfs) > 0 {
			rows = append(rows, h.Div(h.Class("grid grid-cols-1 md:grid-cols-2 gap-6"), g.Group(halfs)))
			halfs = nil
		}
	}
	for _, f := range fields {
		if f.Half {
			halfs = append(halfs, field(f))
			if len(halfs) == 2 {
				flush()
			}
			continue
		}
		flush()
		rows = append(rows, field(f))
	}
	flush()
	return rows
}

func field(f content.Field) g.Node {
	var input g.Node
	if f.Type == "textarea" {
		input = h.Textarea(h.Name(f.Name), g.Attr("rows", "5"), h.Placeholder(f.Placeholder), h.Class(inputClass))
	} else {
		input = h.Input(h.Type(f.Type), h.Name(f.Name), h.Placeholder(f.Placeholder), h.Class(inputClass))
	}
	return h.Label(h.Class("block"),
		h.Span(h.Class("block text-sm font-medium text-gray-700 mb-2"), g.Text(f.Label)),
		input,
	)
}
