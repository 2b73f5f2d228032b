package server

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"net/url"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/devankur/portfolio/internal/content"
	"github.com/devankur/portfolio/internal/motion"
	"github.com/devankur/portfolio/internal/ui"
	"github.com/devankur/portfolio/internal/view"
)

func init() {
	gin.SetMode(gin.TestMode)
}

type memPages struct {
	mu    sync.Mutex
	pages map[string][]byte
	hits  int
}

func (m *memPages) Get(_ context.Context, key string) ([]byte, bool) {
	m.mu.Lock()
	defer m.mu.Unlock()
	b, ok := m.pages[key]
	if ok {
		m.hits++
	}
	return b, ok
}

func (m *memPages) Set(_ context.Context, key string, page []byte) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.pages == nil {
		m.pages = map[string][]byte{}
	}
	m.pages[key] = append([]byte(nil), page...)
}

func (m *memPages) Close() error { return nil }

func newServer(t *testing.T, opts Options) *Server {
	t.Helper()
	if opts.Content == nil {
		site, err := content.Default()
		require.NoError(t, err)
		opts.Content = content.NewStaticStore(site)
	}
	s, err := New(opts)
	require.NoError(t, err)
	return s
}

func do(s *Server, req *http.Request) *httptest.ResponseRecorder {
	w := httptest.NewRecorder()
	s.Handler().ServeHTTP(w, req)
	return w
}

func postForm(path string, form url.Values) *http.Request {
	req := httptest.NewRequest(http.MethodPost, path, strings.NewReader(form.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	req.Header.Set("HX-Request", "true")
	return req
}

func TestNew_RequiresContent(t *testing.T) {
	_, err := New(Options{})
	assert.Error(t, err)
}

func TestPage(t *testing.T) {
	s := newServer(t, Options{})
	w := do(s, httptest.NewRequest(http.MethodGet, "/", nil))

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, htmlContentType, w.Header().Get("Content-Type"))
	assert.NotEmpty(t, w.Header().Get(requestIDHeader))
	body := w.Body.String()
	assert.Contains(t, body, `id="site-nav"`)
	assert.Contains(t, body, `data-active="home"`)
	assert.Contains(t, body, motion.Brand.Class())
	for _, sec := range ui.Sections() {
		assert.Contains(t, body, `id="`+string(sec)+`"`)
	}
}

func TestPage_QueryState(t *testing.T) {
	s := newServer(t, Options{})

	w := do(s, httptest.NewRequest(http.MethodGet, "/?section=contact&menu=open", nil))
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `data-active="contact"`)
	assert.Contains(t, w.Body.String(), `id="`+view.MobileMenuID+`"`)

	w = do(s, httptest.NewRequest(http.MethodGet, "/?section=nowhere&menu=maybe", nil))
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `data-active="home"`)
	assert.NotContains(t, w.Body.String(), `id="`+view.MobileMenuID+`"`)
}

func TestPage_Cached(t *testing.T) {
	pages := &memPages{}
	s := newServer(t, Options{Pages: pages})

	first := do(s, httptest.NewRequest(http.MethodGet, "/?section=about", nil))
	second := do(s, httptest.NewRequest(http.MethodGet, "/?section=about", nil))

	assert.Equal(t, 1, pages.hits)
	assert.Equal(t, first.Body.String(), second.Body.String())
	assert.Contains(t, pages.pages, "static:about/closed")
}

func TestRequestID_Reused(t *testing.T) {
	s := newServer(t, Options{})
	req := httptest.NewRequest(http.MethodGet, "/healthz", nil)
	req.Header.Set(requestIDHeader, "abc-123")
	w := do(s, req)
	assert.Equal(t, "abc-123", w.Header().Get(requestIDHeader))
}

func TestNavigate(t *testing.T) {
	s := newServer(t, Options{})
	w := do(s, postForm(view.RouteNavigate, url.Values{
		view.FieldTarget: {"projects"},
		ui.FieldSection:  {"home"},
		ui.FieldMenu:     {"open"},
	}))

	require.Equal(t, http.StatusOK, w.Code)
	body := w.Body.String()
	assert.True(t, strings.HasPrefix(body, "<nav"), body)
	assert.Contains(t, body, `data-active="projects"`)
	assert.NotContains(t, body, `id="`+view.MobileMenuID+`"`)
	assert.NotContains(t, body, motion.Brand.Class(), "brand entrance replayed on navigation")
}

func TestNavigate_Unknown(t *testing.T) {
	s := newServer(t, Options{})
	for _, target := range []string{"", "blog"} {
		w := do(s, postForm(view.RouteNavigate, url.Values{view.FieldTarget: {target}}))
		assert.Equal(t, http.StatusBadRequest, w.Code, "target %q", target)
	}
}

func TestMenu(t *testing.T) {
	s := newServer(t, Options{})

	w := do(s, postForm(view.RouteMenu, url.Values{ui.FieldSection: {"about"}, ui.FieldMenu: {"closed"}}))
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `id="`+view.MobileMenuID+`"`)
	assert.Contains(t, w.Body.String(), `data-active="about"`)

	w = do(s, postForm(view.RouteMenu, url.Values{ui.FieldSection: {"about"}, ui.FieldMenu: {"open"}}))
	require.Equal(t, http.StatusOK, w.Code)
	assert.NotContains(t, w.Body.String(), `id="`+view.MobileMenuID+`"`)
	assert.NotContains(t, w.Body.String(), motion.Brand.Class())
}

func TestReveal(t *testing.T) {
	s := newServer(t, Options{})
	for _, sec := range []ui.Section{ui.About, ui.Skills, ui.Contact} {
		w := do(s, postForm(view.RouteReveal+string(sec), nil))
		require.Equal(t, http.StatusOK, w.Code, sec)
		assert.Contains(t, w.Body.String(), `data-revealed="true"`)
		assert.NotContains(t, w.Body.String(), "hx-trigger")
	}
	for _, sec := range []string{"home", "projects", "blog"} {
		w := do(s, postForm(view.RouteReveal+sec, nil))
		assert.Equal(t, http.StatusNotFound, w.Code, sec)
	}
}

func TestContact(t *testing.T) {
	s := newServer(t, Options{})
	w := do(s, postForm(view.RouteContact, url.Values{"name": {"Ada"}, "message": {"hi"}}))
	assert.Equal(t, http.StatusNoContent, w.Code)
	assert.Empty(t, w.Body.String())
}

func TestResume(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "resume.pdf")

	s := newServer(t, Options{ResumeFile: path})
	w := do(s, httptest.NewRequest(http.MethodGet, "/resume.pdf", nil))
	assert.Equal(t, http.StatusNotFound, w.Code)

	require.NoError(t, os.WriteFile(path, []byte("%PDF-1.4"), 0o644))
	w = do(s, httptest.NewRequest(http.MethodGet, "/resume.pdf", nil))
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "%PDF-1.4", w.Body.String())
}

func TestStatic(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "app.css"), []byte("body{}"), 0o644))

	s := newServer(t, Options{StaticDir: dir})
	w := do(s, httptest.NewRequest(http.MethodGet, "/static/app.css", nil))
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "body{}", w.Body.String())
}

func TestHealthz(t *testing.T) {
	s := newServer(t, Options{})
	w := do(s, httptest.NewRequest(http.MethodGet, "/healthz", nil))
	require.Equal(t, http.StatusOK, w.Code)

	var body map[string]string
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.Equal(t, "ok", body["status"])
	assert.Equal(t, "static", body["revision"])
}

func TestNotFound(t *testing.T) {
	s := newServer(t, Options{})
	w := do(s, httptest.NewRequest(http.MethodGet, "/nowhere", nil))
	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Contains(t, w.Body.String(), "Page Not Found")

	// no analytics, no admin area
	w = do(s, httptest.NewRequest(http.MethodGet, "/admin/login", nil))
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestRecovery(t *testing.T) {
	s := newServer(t, Options{})
	s.engine.GET("/boom", func(*gin.Context) { panic("boom") })

	w := do(s, httptest.NewRequest(http.MethodGet, "/boom", nil))
	assert.Equal(t, http.StatusInternalServerError, w.Code)
}
