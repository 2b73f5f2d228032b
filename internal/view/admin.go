package view

import (
	"fmt"
	"strconv"
	"time"

	g "maragu.dev/gomponents"
	h "maragu.dev/gomponents/html"

	"github.com/devankur/portfolio/internal/analytics"
	"github.com/devankur/portfolio/internal/content"
)

// Admin routes.
const (
	RouteAdminLogin     = "/admin/login"
	RouteAdminLogout    = "/admin/logout"
	RouteAdminDashboard = "/admin/dashboard"
	RouteAdminStats     = "/admin/api/stats"
	RouteAdminExport    = "/admin/export/stats"
	RouteAdminCleanup   = "/admin/privacy/cleanup"
	RoutePrivacy        = "/privacy"
)

const cardClass = "bg-white p-6 rounded-lg shadow"

// AdminLogin renders the login form. errMsg is shown above it when set.
func AdminLogin(errMsg string) g.Node {
	return document("Admin Login",
		h.Class("min-h-screen bg-gray-50 flex items-center justify-center"),
		h.Main(h.Class("w-full max-w-sm "+cardClass),
			h.H1(h.Class("text-2xl font-bold text-gray-900 mb-6"), g.Text("Admin Login")),
			g.If(errMsg != "",
				h.P(h.Class("mb-4 text-sm text-red-600"), h.Role("alert"), g.Text(errMsg)),
			),
			h.Form(h.Method("post"), h.Action(RouteAdminLogin), h.Class("space-y-4"),
				h.Input(h.Type("text"), h.Name("username"), h.Placeholder("Username"), h.Required(), h.Class(inputClass)),
				h.Input(h.Type("password"), h.Name("password"), h.Placeholder("Password"), h.Required(), h.Class(inputClass)),
				h.Button(h.Type("submit"),
					h.Class("w-full px-8 py-3 bg-gray-900 text-white rounded-md font-medium hover:bg-gray-800"),
					g.Text("Sign in")),
			),
		),
	)
}

// AdminDashboard shows the recorded metrics.
func AdminDashboard(stats *analytics.Stats) g.Node {
	return document("Admin Dashboard",
		h.Class("min-h-screen bg-gray-50"),
		h.Main(h.Class("max-w-6xl mx-auto py-10 px-4 space-y-8"),
			h.Div(h.Class("flex items-center justify-between"),
				h.H1(h.Class("text-3xl font-bold text-gray-900"), g.Text("Dashboard")),
				h.Div(h.Class("flex gap-4 text-sm"),
					h.A(h.Href(RouteAdminExport), h.Class("text-gray-700 hover:text-gray-900"), g.Text("Export")),
					h.A(h.Href(RouteAdminLogout), h.Class("text-gray-700 hover:text-gray-900"), g.Text("Log out")),
				),
			),
			h.Div(h.Class("grid grid-cols-2 md:grid-cols-4 gap-4"),
				statCard("Total visits", stats.TotalVisitors),
				statCard("Unique visitors", stats.UniqueVisitors),
				statCard("Today", stats.VisitorsToday),
				statCard("This week", stats.VisitorsThisWeek),
			),
			h.Section(h.Class(cardClass),
				h.H2(h.Class("text-xl font-semibold mb-4"), g.Text("Navigation")),
				g.If(len(stats.Navigations) == 0, h.P(h.Class("text-gray-500"), g.Text("No navigation recorded yet."))),
				h.Ul(h.Class("space-y-1"),
					g.Map(stats.Navigations, func(n analytics.SectionCount) g.Node {
						return h.Li(h.Class("flex justify-between"), g.Attr("data-section", n.Section),
							h.Span(g.Text(n.Section)),
							h.Span(h.Class("font-mono"), g.Text(strconv.FormatInt(n.Count, 10))),
						)
					}),
				),
			),
			h.Section(h.Class(cardClass),
				h.Div(h.Class("flex items-center justify-between mb-4"),
					h.H2(h.Class("text-xl font-semibold"), g.Text("Recent visitors")),
					h.Form(h.Method("post"), h.Action(RouteAdminCleanup),
						h.Button(h.Type("submit"), h.Class("text-sm text-red-600 hover:text-red-800"), g.Text("Purge expired data")),
					),
				),
				h.Table(h.Class("w-full text-sm"),
					h.THead(h.Tr(
						h.Th(h.Class("text-left"), g.Text("Visitor")),
						h.Th(h.Class("text-left"), g.Text("Path")),
						h.Th(h.Class("text-left"), g.Text("User agent")),
						h.Th(h.Class("text-left"), g.Text("Time")),
					)),
					h.TBody(
						g.Map(stats.RecentVisitors, func(v analytics.Visit) g.Node {
							return h.Tr(
								h.Td(h.Class("font-mono"), g.Text(v.HashedIP)),
								h.Td(g.Text(v.Path)),
								h.Td(h.Class("truncate max-w-xs"), g.Text(v.UserAgent)),
								h.Td(g.Text(v.Timestamp.Format(time.DateTime))),
							)
						}),
					),
				),
			),
		),
	)
}

func statCard(label string, n int64) g.Node {
	return h.Div(h.Class(cardClass),
		h.P(h.Class("text-sm text-gray-500"), g.Text(label)),
		h.P(h.Class("text-2xl font-bold text-gray-900"), g.Text(strconv.FormatInt(n, 10))),
	)
}

// Privacy explains what the site records about visitors.
func Privacy(site *content.Site, retention time.Duration) g.Node {
	return document("Privacy Policy | "+site.Brand,
		h.Class("min-h-screen bg-gray-50"),
		h.Main(h.Class("max-w-3xl mx-auto py-16 px-4 space-y-4 text-gray-700"),
			h.H1(h.Class("text-3xl font-bold text-gray-900 mb-6"), g.Text("Privacy Policy")),
			h.P(g.Text("This site records anonymous page visits to understand which sections are useful.")),
			h.P(g.Text("IP addresses are never stored. Each address is hashed with a secret that changes whenever the server restarts, so visits cannot be traced back to you.")),
			h.P(g.Text("Requests sent with the Do Not Track header are not recorded at all.")),
			h.P(g.Text(fmt.Sprintf("Recorded visits are deleted after %s.", retentionText(retention)))),
			h.P(g.Text("The contact form does not store or forward anything you type into it.")),
			h.A(h.Href("/"), h.Class("inline-block mt-6 text-gray-900 underline"), g.Text("Back to "+site.Brand)),
		),
		Footer(site),
	)
}

func retentionText(d time.Duration) string {
	days := int(d.Hours() / 24)
	switch {
	case days >= 365 && days%365 == 0:
		if days == 365 {
			return "12 months"
		}
		return fmt.Sprintf("%d years", days/365)
	case days >= 1:
		if days == 1 {
			return "1 day"
		}
		return fmt.Sprintf("%d days", days)
	}
	return d.String()
}
