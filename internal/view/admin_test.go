package view

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/devankur/portfolio/internal/analytics"
)

func TestAdminLogin(t *testing.T) {
	out := render(t, AdminLogin(""))
	assert.Contains(t, out, `action="/admin/login"`)
	assert.Contains(t, out, `name="username"`)
	assert.Contains(t, out, `type="password"`)
	assert.NotContains(t, out, `role="alert"`)

	out = render(t, AdminLogin("Invalid credentials"))
	assert.Contains(t, out, `role="alert"`)
	assert.Contains(t, out, "Invalid credentials")
}

func TestAdminDashboard(t *testing.T) {
	stats := &analytics.Stats{
		TotalVisitors:    7,
		UniqueVisitors:   3,
		VisitorsToday:    2,
		VisitorsThisWeek: 5,
		Navigations:      []analytics.SectionCount{{Section: "projects", Count: 4}, {Section: "contact", Count: 1}},
		RecentVisitors: []analytics.Visit{
			{HashedIP: "0123456789abcdef", Path: "/", UserAgent: "curl", Timestamp: time.Date(2026, 10, 17, 9, 30, 0, 0, time.UTC)},
		},
	}
	doc := parse(t, AdminDashboard(stats))

	sections := findAll(doc, hasAttr("data-section"))
	require.Len(t, sections, 2)
	assert.Equal(t, "projects4", text(sections[0]))

	out := render(t, AdminDashboard(stats))
	assert.Contains(t, out, "0123456789abcdef")
	assert.Contains(t, out, "2026-10-17 09:30:00")
	assert.Contains(t, out, `action="/admin/privacy/cleanup"`)
}

func TestAdminDashboard_Empty(t *testing.T) {
	out := render(t, AdminDashboard(&analytics.Stats{}))
	assert.Contains(t, out, "No navigation recorded yet.")
}

func TestPrivacy(t *testing.T) {
	out := render(t, Privacy(defaultSite(t), 365*24*time.Hour))
	assert.Contains(t, out, "deleted after 12 months")
	assert.Contains(t, out, "Do Not Track")
}

func TestRetentionText(t *testing.T) {
	tests := []struct {
		d    time.Duration
		want string
	}{
		{365 * 24 * time.Hour, "12 months"},
		{2 * 365 * 24 * time.Hour, "2 years"},
		{90 * 24 * time.Hour, "90 days"},
		{24 * time.Hour, "1 day"},
		{time.Hour, "1h0m0s"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, retentionText(tt.d), tt.d.String())
	}
}
