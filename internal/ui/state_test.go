package ui

import (
	"net/url"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefault(t *testing.T) {
	st := Default()
	assert.Equal(t, Home, st.Active)
	assert.False(t, st.MenuOpen)
}

func TestNavigate_EverySection(t *testing.T) {
	for _, sec := range Sections() {
		for _, open := range []bool{false, true} {
			st := State{Active: Home, MenuOpen: open}
			next, err := st.Navigate(sec)
			require.NoError(t, err)
			assert.Equal(t, sec, next.Active)
			assert.False(t, next.MenuOpen, "menu must close after navigating to %s", sec)
		}
	}
}

func TestNavigate_CloseIsIdempotent(t *testing.T) {
	st := State{Active: About, MenuOpen: true}
	once, err := st.Navigate(Projects)
	require.NoError(t, err)
	twice, err := once.Navigate(Projects)
	require.NoError(t, err)
	assert.Equal(t, once, twice)
	assert.False(t, twice.MenuOpen)
}

func TestNavigate_UnknownSection(t *testing.T) {
	st := State{Active: Skills, MenuOpen: true}
	next, err := st.Navigate("blog")
	assert.ErrorIs(t, err, ErrUnknownSection)
	assert.Equal(t, st, next)
}

func TestToggleMenu_Alternates(t *testing.T) {
	st := Default()
	want := false
	for i := 0; i < 6; i++ {
		st = st.ToggleMenu()
		want = !want
		assert.Equal(t, want, st.MenuOpen, "toggle #%d", i+1)
		assert.Equal(t, Home, st.Active)
	}
}

func TestScenario_FreshLoadNavigateAndMenu(t *testing.T) {
	st := Default()

	st, err := st.Navigate(Projects)
	require.NoError(t, err)
	assert.Equal(t, State{Active: Projects}, st)
	assert.Equal(t, "#projects", st.Active.Anchor())

	st = st.ToggleMenu()
	assert.True(t, st.MenuOpen)

	st, err = st.Navigate(Contact)
	require.NoError(t, err)
	assert.Equal(t, State{Active: Contact}, st)
}

func TestFromValues(t *testing.T) {
	tests := []struct {
		name string
		in   url.Values
		want State
	}{
		{"empty", url.Values{}, Default()},
		{"section and open menu", url.Values{"section": {"skills"}, "menu": {"open"}}, State{Active: Skills, MenuOpen: true}},
		{"unknown section falls back", url.Values{"section": {"blog"}}, Default()},
		{"unknown menu value is closed", url.Values{"section": {"about"}, "menu": {"yes"}}, State{Active: About}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, FromValues(tt.in))
		})
	}
}

func TestValuesRoundTrip(t *testing.T) {
	st := State{Active: Contact, MenuOpen: true}
	assert.Equal(t, st, FromValues(st.Values()))
	assert.Equal(t, map[string]string{"section": "contact", "menu": "open"}, st.Fields())
	assert.Equal(t, "contact/open", st.Key())
}

func TestSectionsIsACopy(t *testing.T) {
	s := Sections()
	s[0] = "mutated"
	assert.Equal(t, Home, Sections()[0])
}
