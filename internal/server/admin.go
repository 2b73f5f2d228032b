package server

import (
	"crypto/subtle"
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/devankur/portfolio/internal/analytics"
	"github.com/devankur/portfolio/internal/view"
)

const (
	adminCookie    = "admin_token"
	adminCookieAge = 24 * 60 * 60
	adminPath      = "/admin"
)

// admin guards the metrics pages with a single set of credentials. A
// successful login hands out a random token that lives as long as the
// process.
type admin struct {
	username, password string
	token              string
	tracker            *analytics.Tracker
	log                *zap.Logger
}

func (s *Server) mountAdmin(r *gin.Engine, username, password string) error {
	if username == "" || password == "" {
		return errors.New("server: admin credentials are required when analytics is enabled")
	}
	token, err := analytics.RandomToken()
	if err != nil {
		return err
	}
	a := &admin{
		username: username,
		password: password,
		token:    token,
		tracker:  s.tracker,
		log:      s.log.Named("admin"),
	}
	a.log.Info("admin access available", zap.String("path", view.RouteAdminLogin))

	r.GET(view.RoutePrivacy, func(c *gin.Context) {
		renderNode(c, http.StatusOK, view.Privacy(s.content.Site(), s.retention))
	})

	r.GET(view.RouteAdminLogin, a.loginPage)
	r.POST(view.RouteAdminLogin, a.login)
	r.GET(view.RouteAdminLogout, a.logout)

	protected := r.Group(adminPath)
	protected.Use(a.requireLogin)
	protected.GET("/dashboard", a.dashboard)
	protected.GET("/api/stats", a.statsJSON)
	protected.GET("/export/stats", a.export)
	protected.POST("/privacy/cleanup", s.cleanup)
	return nil
}

func equal(a, b string) bool {
	return subtle.ConstantTimeCompare([]byte(a), []byte(b)) == 1
}

func (a *admin) requireLogin(c *gin.Context) {
	token, err := c.Cookie(adminCookie)
	if err != nil || !equal(token, a.token) {
		c.Redirect(http.StatusFound, view.RouteAdminLogin)
		c.Abort()
		return
	}
	c.Next()
}

func (a *admin) loginPage(c *gin.Context) {
	renderNode(c, http.StatusOK, view.AdminLogin(""))
}

func (a *admin) login(c *gin.Context) {
	// Evaluate both so a wrong username costs as much as a wrong password.
	userOK := equal(c.PostForm("username"), a.username)
	passOK := equal(c.PostForm("password"), a.password)
	visitor := a.tracker.HashIP(c.ClientIP())
	if !userOK || !passOK {
		a.log.Warn("failed admin login", zap.String("visitor", visitor))
		renderNode(c, http.StatusUnauthorized, view.AdminLogin("Invalid credentials"))
		return
	}
	c.SetSameSite(http.SameSiteStrictMode)
	c.SetCookie(adminCookie, a.token, adminCookieAge, adminPath, "", c.Request.TLS != nil, true)
	a.log.Info("admin login", zap.String("visitor", visitor))
	c.Redirect(http.StatusFound, view.RouteAdminDashboard)
}

func (a *admin) logout(c *gin.Context) {
	c.SetCookie(adminCookie, "", -1, adminPath, "", c.Request.TLS != nil, true)
	c.Redirect(http.StatusFound, view.RouteAdminLogin)
}

func (a *admin) dashboard(c *gin.Context) {
	stats, err := a.tracker.Store().Stats(c.Request.Context())
	if err != nil {
		a.log.Error("load stats", zap.Error(err))
		c.String(http.StatusInternalServerError, "failed to load statistics")
		return
	}
	renderNode(c, http.StatusOK, view.AdminDashboard(stats))
}

func (a *admin) statsJSON(c *gin.Context) {
	stats, err := a.tracker.Store().Stats(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, stats)
}

func (a *admin) export(c *gin.Context) {
	stats, err := a.tracker.Store().Stats(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.Header("Content-Disposition", "attachment; filename=portfolio-stats.json")
	a.log.Info("stats exported")
	c.IndentedJSON(http.StatusOK, stats)
}

// cleanup purges metrics older than the retention period.
func (s *Server) cleanup(c *gin.Context) {
	n, err := s.tracker.Store().Cleanup(c.Request.Context(), s.retention)
	if err != nil {
		s.log.Error("privacy cleanup", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "cleanup failed"})
		return
	}
	if c.GetHeader("Accept") == "application/json" {
		c.JSON(http.StatusOK, gin.H{"deleted": n})
		return
	}
	c.Redirect(http.StatusSeeOther, view.RouteAdminDashboard)
}
