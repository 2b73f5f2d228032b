package server

import (
	"bytes"
	"net/http"
	"os"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/devankur/portfolio/internal/cache"
	"github.com/devankur/portfolio/internal/ui"
	"github.com/devankur/portfolio/internal/view"
)

// page renders the full document for the state in the query string. Pages
// are cached per content revision and state.
func (s *Server) page(c *gin.Context) {
	ctx := c.Request.Context()
	st := ui.FromValues(c.Request.URL.Query())
	site, rev := s.content.Current()
	key := cache.Key(rev, st)

	if b, ok := s.pages.Get(ctx, key); ok {
		c.Data(http.StatusOK, htmlContentType, b)
		return
	}

	var buf bytes.Buffer
	if err := view.Page(site, st, 0).Render(&buf); err != nil {
		s.log.Error("render page", zap.String("state", st.Key()), zap.Error(err))
		c.AbortWithStatus(http.StatusInternalServerError)
		return
	}
	s.pages.Set(ctx, key, buf.Bytes())
	c.Data(http.StatusOK, htmlContentType, buf.Bytes())
}

// formState reads the UI state posted by an htmx control.
func formState(c *gin.Context) (ui.State, error) {
	if err := c.Request.ParseForm(); err != nil {
		return ui.State{}, err
	}
	return ui.FromValues(c.Request.PostForm), nil
}

// navigate answers a navigation click with the nav bar for the new state.
// Unknown targets get a 400, which htmx does not swap, so the page is left
// as it was.
func (s *Server) navigate(c *gin.Context) {
	st, err := formState(c)
	if err != nil {
		c.String(http.StatusBadRequest, "bad form")
		return
	}
	target := c.Request.PostForm.Get(view.FieldTarget)
	next, err := st.Navigate(ui.Section(target))
	if err != nil {
		c.String(http.StatusBadRequest, err.Error())
		return
	}
	if s.tracker != nil {
		s.tracker.Navigated(target)
	}
	renderNode(c, http.StatusOK, view.Nav(s.content.Site(), next))
}

func (s *Server) menu(c *gin.Context) {
	st, err := formState(c)
	if err != nil {
		c.String(http.StatusBadRequest, "bad form")
		return
	}
	renderNode(c, http.StatusOK, view.Nav(s.content.Site(), st.ToggleMenu()))
}

// reveal returns a section's animated container in its revealed state.
func (s *Server) reveal(c *gin.Context) {
	sec := ui.Section(c.Param("section"))
	if !ui.Animated(sec) {
		c.String(http.StatusNotFound, "%q has no reveal", sec)
		return
	}
	n, err := view.Revealed(s.content.Site(), sec)
	if err != nil {
		s.log.Error("render reveal", zap.String("section", string(sec)), zap.Error(err))
		c.AbortWithStatus(http.StatusInternalServerError)
		return
	}
	renderNode(c, http.StatusOK, n)
}

// contact accepts the contact form and does nothing with it.
func (s *Server) contact(c *gin.Context) {
	c.Status(http.StatusNoContent)
}

func (s *Server) resume(c *gin.Context) {
	if s.resumeFile == "" {
		s.notFound(c)
		return
	}
	if _, err := os.Stat(s.resumeFile); err != nil {
		s.log.Warn("resume file unavailable", zap.String("path", s.resumeFile), zap.Error(err))
		s.notFound(c)
		return
	}
	c.File(s.resumeFile)
}

func (s *Server) healthz(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok", "revision": s.content.Revision()})
}

func (s *Server) notFound(c *gin.Context) {
	renderNode(c, http.StatusNotFound, view.NotFound(s.content.Site()))
}
