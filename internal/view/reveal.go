package view

import (
	"fmt"

	g "maragu.dev/gomponents"
	h "maragu.dev/gomponents/html"

	"github.com/devankur/portfolio/internal/content"
	"github.com/devankur/portfolio/internal/motion"
	"github.com/devankur/portfolio/internal/ui"
)

// RevealTrigger fires the reveal request once, when a tenth of the
// container is visible.
const RevealTrigger = "intersect once threshold:0.1"

func revealID(sec ui.Section) string {
	return "reveal-" + string(sec)
}

// revealContainer wraps a section's animated children. While pending it
// holds them on their initial frame and asks the server for the revealed
// version as soon as it scrolls into view. The revealed version carries no
// trigger, so the transition plays at most once per page load.
func revealContainer(sec ui.Section, revealed bool, class string, children ...g.Node) g.Node {
	if revealed {
		return h.Div(h.ID(revealID(sec)), h.Class(class), h.Data("revealed", "true"), g.Group(children))
	}
	return h.Div(
		h.ID(revealID(sec)),
		h.Class(joinClass(motion.PendingScope, class)),
		hxPost(RouteReveal+string(sec)),
		g.Attr("hx-trigger", RevealTrigger),
		g.Attr("hx-swap", "outerHTML"),
		g.Group(children),
	)
}

// bodies renders the animated container of each section that reveals on
// scroll, given whether it has been revealed.
var bodies = map[ui.Section]func(*content.Site, bool) g.Node{
	ui.About:   aboutBody,
	ui.Skills:  showcaseBody,
	ui.Contact: contactBody,
}

// Revealed renders the animated container of sec in its revealed state.
func Revealed(site *content.Site, sec ui.Section) (g.Node, error) {
	body, ok := bodies[sec]
	if !ui.Animated(sec) || !ok {
		return nil, fmt.Errorf("%w: %q has no reveal", ui.ErrUnknownSection, sec)
	}
	var rev ui.Revealed
	return body(site, rev.Mark(sec).Has(sec)), nil
}
