package content

import (
	"errors"
	"fmt"
	"strings"

	"github.com/devankur/portfolio/internal/ui"
)

var fieldTypes = map[string]bool{"text": true, "email": true, "textarea": true}

// Validate checks the invariants the page relies on and reports every
// violation at once. The returned error matches ErrInvalid.
func (s *Site) Validate() error {
	var errs []error
	add := func(format string, args ...any) {
		errs = append(errs, fmt.Errorf(format, args...))
	}

	if strings.TrimSpace(s.Brand) == "" {
		add("brand is empty")
	}

	seen := map[ui.Section]bool{}
	for i, n := range s.Nav {
		switch {
		case !n.ID.Valid():
			add("nav[%d]: %q is not a page anchor", i, n.ID)
		case seen[n.ID]:
			add("nav[%d]: duplicate id %q", i, n.ID)
		}
		seen[n.ID] = true
		if strings.TrimSpace(n.Label) == "" {
			add("nav[%d]: empty label", i)
		}
	}
	for _, sec := range ui.Sections() {
		if !seen[sec] {
			add("nav: missing entry for %q", sec)
		}
	}

	if s.Resume.Href == "" {
		add("resume: href is empty")
	}

	for name, cta := range map[string]CTA{"primary": s.Hero.Primary, "secondary": s.Hero.Secondary} {
		if !cta.Target.Valid() {
			add("hero.%s: %q is not a page anchor", name, cta.Target)
		}
	}

	if len(s.Skills) == 0 {
		add("skills: list is empty")
	}
	skills := map[string]int{}
	for i, sk := range s.Skills {
		if strings.TrimSpace(sk) == "" {
			add("skills[%d]: empty label", i)
			continue
		}
		if j, dup := skills[sk]; dup {
			add("skills[%d]: %q duplicates skills[%d]", i, sk, j)
		}
		skills[sk] = i
	}

	ids := map[int]bool{}
	for i, p := range s.Projects {
		if ids[p.ID] {
			add("projects[%d]: duplicate id %d", i, p.ID)
		}
		ids[p.ID] = true
		if strings.TrimSpace(p.Title) == "" {
			add("projects[%d]: empty title", i)
		}
	}

	names := map[string]bool{}
	for i, f := range s.Contact.Fields {
		if !fieldTypes[f.Type] {
			add("contact.fields[%d]: unsupported type %q", i, f.Type)
		}
		if f.Name == "" || names[f.Name] {
			add("contact.fields[%d]: missing or duplicate name %q", i, f.Name)
		}
		names[f.Name] = true
	}

	if len(errs) == 0 {
		return nil
	}
	return fmt.Errorf("%w: %w", ErrInvalid, errors.Join(errs...))
}
