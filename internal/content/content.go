// Package content holds everything the portfolio page says: the navigation
// entries, hero copy, biography, skills, projects and contact form layout.
//
// Content is declared in YAML, validated once on load and treated as
// immutable afterwards.
package content

import (
	"bytes"
	_ "embed"
	"errors"
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/devankur/portfolio/internal/ui"
)

//go:embed default.yaml
var defaultYAML []byte

// ErrInvalid wraps every content validation failure.
var ErrInvalid = errors.New("invalid content")

// NavItem is one entry of the navigation bar.
type NavItem struct {
	ID    ui.Section `yaml:"id"`
	Label string     `yaml:"label"`
}

// Link is an external link, e.g. the resume.
type Link struct {
	Label string `yaml:"label"`
	Href  string `yaml:"href"`
}

// CTA is a call-to-action button that scrolls to a section.
type CTA struct {
	Label  string     `yaml:"label"`
	Target ui.Section `yaml:"target"`
}

type Hero struct {
	Badge      string `yaml:"badge"`
	Headline   string `yaml:"headline"`
	Tagline    string `yaml:"tagline"`
	Primary    CTA    `yaml:"primary"`
	Secondary  CTA    `yaml:"secondary"`
	ScrollHint string `yaml:"scroll_hint"`
}

// InfoItem is one row of the about section's quick-info panel.
type InfoItem struct {
	Label string `yaml:"label"`
	Value string `yaml:"value"`
}

type About struct {
	Heading   string `yaml:"heading"`
	// Bio paragraphs are written in Markdown.
	Bio       []string   `yaml:"bio"`
	InfoTitle string     `yaml:"info_title"`
	Info      []InfoItem `yaml:"info"`
}

// Gradient is the pair of Tailwind color stops behind a project image.
type Gradient struct {
	From string `yaml:"from"`
	To   string `yaml:"to"`
}

type Project struct {
	ID          int      `yaml:"id"`
	Title       string   `yaml:"title"`
	Description string   `yaml:"description"`
	ImageURL    string   `yaml:"image_url"`
	Accent      Gradient `yaml:"accent"`
}

// Field is one input of the contact form.
type Field struct {
	Name        string `yaml:"name"`
	Label       string `yaml:"label"`
	Type        string `yaml:"type"` // text, email or textarea
	Placeholder string `yaml:"placeholder"`
	// Half fields share a row on wide screens.
	Half bool `yaml:"half"`
}

type Contact struct {
	Heading     string  `yaml:"heading"`
	Fields      []Field `yaml:"fields"`
	SubmitLabel string  `yaml:"submit_label"`
}

type Footer struct {
	Notice string `yaml:"notice"`
}

// Site is the complete content of the page.
type Site struct {
	Title          string    `yaml:"title"`
	Brand          string    `yaml:"brand"`
	Nav            []NavItem `yaml:"nav"`
	Resume         Link      `yaml:"resume"`
	Hero           Hero      `yaml:"hero"`
	About          About     `yaml:"about"`
	SkillsHeading  string    `yaml:"skills_heading"`
	Skills         []string  `yaml:"skills"`
	ProjectHeading string    `yaml:"projects_heading"`
	Projects       []Project `yaml:"projects"`
	Contact        Contact   `yaml:"contact"`
	Footer         Footer    `yaml:"footer"`

	// BioHTML is About.Bio rendered from Markdown. Filled by Load.
	BioHTML []string `yaml:"-"`
}

// Load decodes, validates and prepares content from r.
func Load(r io.Reader) (*Site, error) {
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)

	var s Site
	if err := dec.Decode(&s); err != nil {
		return nil, fmt.Errorf("decode content: %w", err)
	}
	if err := s.Validate(); err != nil {
		return nil, err
	}
	bio, err := RenderMarkdown(s.About.Bio)
	if err != nil {
		return nil, fmt.Errorf("render bio: %w", err)
	}
	s.BioHTML = bio
	return &s, nil
}

// LoadFile loads content from a YAML file.
func LoadFile(path string) (*Site, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open content file %s: %w", path, err)
	}
	defer f.Close()

	s, err := Load(f)
	if err != nil {
		return nil, fmt.Errorf("content file %s: %w", path, err)
	}
	return s, nil
}

// Default returns the content compiled into the binary.
func Default() (*Site, error) {
	return Load(bytes.NewReader(defaultYAML))
}

// DefaultYAML returns a copy of the compiled-in content source.
func DefaultYAML() []byte {
	return bytes.Clone(defaultYAML)
}
