// Package motion describes the page's animated transitions declaratively and
// renders them to CSS.
//
// Every effect is a pair of styles (where the element starts and where it
// rests) plus timing. Any surface that interpolates CSS can play them, so the
// page needs no animation runtime in the browser.
package motion

import (
	"fmt"
	"strconv"
	"strings"
	"time"
)

// Style is one visual state of an element. A zero Scale means 1.
type Style struct {
	Opacity   float64
	X, Y      float64 // px
	Scale     float64
	MaxHeight string
}

// Rest is the resting style of every animated element.
var Rest = Style{Opacity: 1}

// Declarations renders the style as CSS declarations.
func (s Style) Declarations() string {
	var b strings.Builder
	b.WriteString("opacity:")
	b.WriteString(num(s.Opacity))
	b.WriteString(";transform:")
	b.WriteString(s.Transform())
	b.WriteString(";")
	if s.MaxHeight != "" {
		b.WriteString("max-height:")
		b.WriteString(s.MaxHeight)
		b.WriteString(";")
	}
	return b.String()
}

// Transform renders the translate/scale part of the style.
func (s Style) Transform() string {
	scale := s.Scale
	if scale == 0 {
		scale = 1
	}
	if s.X == 0 && s.Y == 0 && scale == 1 {
		return "none"
	}
	var parts []string
	if s.X != 0 || s.Y != 0 {
		parts = append(parts, fmt.Sprintf("translate(%spx,%spx)", num(s.X), num(s.Y)))
	}
	if scale != 1 {
		parts = append(parts, fmt.Sprintf("scale(%s)", num(scale)))
	}
	return strings.Join(parts, " ")
}

// Transition is the timing of a variant.
type Transition struct {
	Duration time.Duration
	Delay    time.Duration
	// Stagger is added to Delay once per preceding sibling.
	Stagger  time.Duration
	Infinite bool
	Ease     string
}

// Stagger returns the start delay of the i-th child animated with t.
func Stagger(t Transition, i int) time.Duration {
	if i < 0 {
		i = 0
	}
	return t.Delay + time.Duration(i)*t.Stagger
}

// DelayStyle is an inline style that shifts an element's animation start.
func DelayStyle(d time.Duration) string {
	return "animation-delay:" + ms(d)
}

// Variant is a named transition through two or more frames. The first frame
// is the initial style, the last is the style at rest.
type Variant struct {
	Name   string
	Frames []Style
	Transition
}

// Class is the CSS class that plays the variant.
func (v Variant) Class() string {
	return "m-" + v.Name
}

// Initial is the first frame.
func (v Variant) Initial() Style {
	if len(v.Frames) == 0 {
		return Rest
	}
	return v.Frames[0]
}

// CSS renders the keyframes and the class rule.
//
// Finite variants use fill-mode backwards: the element shows the first frame
// while waiting for its delay and falls back to its own styles afterwards,
// which lets gesture rules take over the transform.
func (v Variant) CSS() string {
	var b strings.Builder
	fmt.Fprintf(&b, "@keyframes %s{", v.Class())
	n := len(v.Frames)
	for i, f := range v.Frames {
		pct := 100
		if n > 1 {
			pct = i * 100 / (n - 1)
		}
		fmt.Fprintf(&b, "%d%%{%s}", pct, f.Declarations())
	}
	b.WriteString("}\n")

	ease := v.Ease
	if ease == "" {
		ease = "ease-out"
	}
	iter, fill := "1", "backwards"
	if v.Infinite {
		iter, fill = "infinite", "none"
	}
	// the final max-height stays on the element once the animation ends
	var rest string
	if n > 0 && v.Frames[n-1].MaxHeight != "" {
		rest = "max-height:" + v.Frames[n-1].MaxHeight + ";"
	}
	fmt.Fprintf(&b, ".%s{animation:%s %s %s %s %s %s;%s}\n",
		v.Class(), v.Class(), ms(v.Duration), ease, ms(v.Delay), iter, fill, rest)
	return b.String()
}

// Hold renders a rule that parks the variant's elements on their initial frame
// while they are inside scope.
func (v Variant) Hold(scope string) string {
	return fmt.Sprintf("%s .%s{animation:none;%s}\n", scope, v.Class(), v.Initial().Declarations())
}

// Gesture scales an element while hovered and while pressed. A zero scale
// leaves that state alone.
type Gesture struct {
	Name  string
	Hover float64
	Tap   float64
}

// Class is the CSS class that enables the gesture.
func (g Gesture) Class() string {
	return "g-" + g.Name
}

// CSS renders the gesture rules.
func (g Gesture) CSS() string {
	var b strings.Builder
	fmt.Fprintf(&b, ".%s{transition:transform 150ms ease-out;}\n", g.Class())
	if g.Hover != 0 {
		fmt.Fprintf(&b, ".%s:hover{transform:scale(%s);}\n", g.Class(), num(g.Hover))
	}
	if g.Tap != 0 {
		fmt.Fprintf(&b, ".%s:active{transform:scale(%s);}\n", g.Class(), num(g.Tap))
	}
	return b.String()
}

func num(f float64) string {
	return strconv.FormatFloat(f, 'f', -1, 64)
}

func ms(d time.Duration) string {
	return strconv.FormatInt(d.Milliseconds(), 10) + "ms"
}
