package motion

import (
	"strings"
	"time"
)

// Timings shared by the page.
const (
	ItemDuration = 600 * time.Millisecond
	ItemStagger  = 100 * time.Millisecond
	MenuDuration = 300 * time.Millisecond
)

// PendingScope marks a section whose reveal has not fired yet.
const PendingScope = "reveal-pending"

var (
	// Item fades and lifts a section child into place.
	Item = Variant{
		Name:       "item",
		Frames:     []Style{{Opacity: 0, Y: 20}, Rest},
		Transition: Transition{Duration: ItemDuration, Stagger: ItemStagger},
	}

	// Brand slides the logotype in from the left on load.
	Brand = Variant{
		Name:       "brand",
		Frames:     []Style{{Opacity: 0, X: -20}, Rest},
		Transition: Transition{Duration: 300 * time.Millisecond},
	}

	// Bounce nudges the scroll hint down and back, forever.
	Bounce = Variant{
		Name:       "bounce",
		Frames:     []Style{Rest, {Opacity: 1, Y: 5}, Rest},
		Transition: Transition{Duration: 1500 * time.Millisecond, Infinite: true, Ease: "ease-in-out"},
	}

	// MenuEnter expands the mobile overlay.
	MenuEnter = Variant{
		Name:       "menu",
		Frames:     []Style{{Opacity: 0, MaxHeight: "0"}, {Opacity: 1, MaxHeight: "32rem"}},
		Transition: Transition{Duration: MenuDuration},
	}
)

var (
	// Press is used by buttons and links.
	Press = Gesture{Name: "press", Hover: 1.05, Tap: 0.95}
	// Lift is used by skill chips and project cards.
	Lift = Gesture{Name: "lift", Hover: 1.05}
	// Submit is the gentler press of the contact button.
	Submit = Gesture{Name: "submit", Hover: 1.02, Tap: 0.98}
)

// Variants lists every variant the stylesheet defines.
func Variants() []Variant {
	return []Variant{Item, Brand, Bounce, MenuEnter}
}

// Gestures lists every gesture the stylesheet defines.
func Gestures() []Gesture {
	return []Gesture{Press, Lift, Submit}
}

// Stylesheet renders the CSS for all presets, the pending reveal state and
// the collapse of the mobile menu while its nav is being swapped out.
func Stylesheet() string {
	var b strings.Builder
	b.WriteString("html{scroll-behavior:smooth;}\n")
	for _, v := range Variants() {
		b.WriteString(v.CSS())
	}
	for _, g := range Gestures() {
		b.WriteString(g.CSS())
	}
	b.WriteString(Item.Hold("." + PendingScope))
	b.WriteString(".htmx-swapping ." + MenuEnter.Class() +
		"{transition:opacity " + ms(MenuDuration) + " ease-in,max-height " + ms(MenuDuration) + " ease-in;" +
		MenuEnter.Initial().Declarations() + "}\n")
	return b.String()
}

// NoScript reveals pending sections when scripts are disabled.
func NoScript() string {
	return "." + PendingScope + " ." + Item.Class() + "{" + Rest.Declarations() + "}"
}
