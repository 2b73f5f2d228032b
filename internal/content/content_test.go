package content

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"

	"github.com/devankur/portfolio/internal/ui"
)

func TestDefault(t *testing.T) {
	site, err := Default()
	require.NoError(t, err)

	assert.Equal(t, "DevAnkur", site.Brand)

	require.Len(t, site.Nav, 5)
	for i, sec := range ui.Sections() {
		assert.Equal(t, sec, site.Nav[i].ID)
	}

	assert.Equal(t, []string{
		"HTML", "CSS", "JavaScript", "TypeScript",
		"React", "Next.js", "Tailwind CSS", "Framer Motion",
		"Node.js", "Git", "Figma", "Responsive Design",
	}, site.Skills)

	require.Len(t, site.Projects, 3)
	assert.Equal(t, "E-commerce Platform", site.Projects[0].Title)
	assert.Equal(t, Gradient{From: "from-blue-500", To: "to-purple-600"}, site.Projects[2].Accent)

	assert.Equal(t, ui.Projects, site.Hero.Primary.Target)
	assert.Equal(t, ui.Contact, site.Hero.Secondary.Target)

	require.Len(t, site.About.Info, 4)
	require.Len(t, site.BioHTML, len(site.About.Bio))
	assert.Contains(t, site.BioHTML[0], "<strong>Ankur Jha</strong>")

	require.Len(t, site.Contact.Fields, 4)
	assert.Equal(t, "/resume.pdf", site.Resume.Href)
}

func TestLoad_UnknownField(t *testing.T) {
	_, err := Load(strings.NewReader("brand: x\ncolour: red\n"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "colour")
}

// mutate loads the default content as a generic document, applies fn and
// re-encodes it, so each test starts from valid content.
func mutate(t *testing.T, fn func(s *Site)) string {
	t.Helper()
	var s Site
	require.NoError(t, yaml.Unmarshal(DefaultYAML(), &s))
	fn(&s)
	out, err := yaml.Marshal(&s)
	require.NoError(t, err)
	return string(out)
}

func TestLoad_Validation(t *testing.T) {
	tests := []struct {
		name string
		edit func(s *Site)
		want string
	}{
		{"duplicate skill", func(s *Site) { s.Skills = append(s.Skills, "Git") }, `"Git" duplicates`},
		{"empty skill", func(s *Site) { s.Skills[3] = " " }, "skills[3]: empty label"},
		{"no skills", func(s *Site) { s.Skills = nil }, "skills: list is empty"},
		{"unknown nav anchor", func(s *Site) { s.Nav[1].ID = "blog" }, `"blog" is not a page anchor`},
		{"missing nav anchor", func(s *Site) { s.Nav = s.Nav[:4] }, `missing entry for "contact"`},
		{"duplicate nav anchor", func(s *Site) { s.Nav[4].ID = ui.Home }, `duplicate id "home"`},
		{"bad cta", func(s *Site) { s.Hero.Primary.Target = "work" }, "hero.primary"},
		{"duplicate project", func(s *Site) { s.Projects[1].ID = 1 }, "duplicate id 1"},
		{"untitled project", func(s *Site) { s.Projects[0].Title = "" }, "projects[0]: empty title"},
		{"field type", func(s *Site) { s.Contact.Fields[0].Type = "tel" }, `unsupported type "tel"`},
		{"empty brand", func(s *Site) { s.Brand = "" }, "brand is empty"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Load(strings.NewReader(mutate(t, tt.edit)))
			require.ErrorIs(t, err, ErrInvalid)
			assert.Contains(t, err.Error(), tt.want)
		})
	}
}

func TestValidate_ReportsEveryProblem(t *testing.T) {
	_, err := Load(strings.NewReader(mutate(t, func(s *Site) {
		s.Brand = ""
		s.Skills = append(s.Skills, "HTML")
	})))
	require.ErrorIs(t, err, ErrInvalid)
	assert.Contains(t, err.Error(), "brand is empty")
	assert.Contains(t, err.Error(), `"HTML" duplicates`)
}

func TestRenderMarkdown(t *testing.T) {
	out, err := RenderMarkdown([]string{"plain *em*", "see https://example.com", "<script>x</script>"})
	require.NoError(t, err)
	assert.Equal(t, "<p>plain <em>em</em></p>", out[0])
	assert.Contains(t, out[1], `<a href="https://example.com">`)
	assert.NotContains(t, out[2], "<script>")
}
