package ui

// Revealed records which sections have played their reveal animation.
// It is a one-way latch: bits are set by Mark and never cleared.
type Revealed uint8

func (r Revealed) bit(s Section) (Revealed, bool) {
	for i, sec := range sections {
		if sec == s {
			return 1 << i, true
		}
	}
	return 0, false
}

// Mark latches s. Marking an already revealed section or an unknown one
// returns r unchanged.
func (r Revealed) Mark(s Section) Revealed {
	b, ok := r.bit(s)
	if !ok {
		return r
	}
	return r | b
}

// Has reports whether s has been revealed.
func (r Revealed) Has(s Section) bool {
	b, ok := r.bit(s)
	return ok && r&b != 0
}

// Animated reports whether s takes part in the scroll-triggered reveal.
// The hero animates on load instead.
func Animated(s Section) bool {
	switch s {
	case About, Skills, Contact:
		return true
	}
	return false
}
