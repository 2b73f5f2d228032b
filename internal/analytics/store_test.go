package analytics

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func openStore(t *testing.T) *Store {
	t.Helper()
	s, err := Open(context.Background(), filepath.Join(t.TempDir(), "metrics.db"), nil)
	require.NoError(t, err)
	t.Cleanup(func() { s.Close() })
	return s
}

func TestStore_Stats(t *testing.T) {
	ctx := context.Background()
	s := openStore(t)
	now := time.Date(2026, 10, 17, 15, 0, 0, 0, time.UTC)
	s.now = func() time.Time { return now }

	visits := []Visit{
		{HashedIP: "aaa", Path: "/", Timestamp: now.Add(-time.Hour)},
		{HashedIP: "aaa", Path: "/", Timestamp: now.Add(-2 * time.Hour)},
		{HashedIP: "bbb", Path: "/", Timestamp: now.Add(-3 * 24 * time.Hour)},
		{HashedIP: "ccc", Path: "/", Timestamp: now.Add(-30 * 24 * time.Hour)},
	}
	for _, v := range visits {
		require.NoError(t, s.RecordVisit(ctx, v))
	}
	for _, sec := range []string{"projects", "contact", "projects"} {
		require.NoError(t, s.RecordNavigation(ctx, sec))
	}

	stats, err := s.Stats(ctx)
	require.NoError(t, err)
	assert.EqualValues(t, 4, stats.TotalVisitors)
	assert.EqualValues(t, 3, stats.UniqueVisitors)
	assert.EqualValues(t, 2, stats.VisitorsToday)
	assert.EqualValues(t, 3, stats.VisitorsThisWeek)
	assert.Equal(t, []SectionCount{{"projects", 2}, {"contact", 1}}, stats.Navigations)

	require.Len(t, stats.RecentVisitors, 4)
	assert.True(t, stats.RecentVisitors[0].Timestamp.Equal(now.Add(-time.Hour)))
}

func TestStore_Cleanup(t *testing.T) {
	ctx := context.Background()
	s := openStore(t)
	now := time.Date(2026, 10, 17, 12, 0, 0, 0, time.UTC)
	s.now = func() time.Time { return now }

	require.NoError(t, s.RecordVisit(ctx, Visit{HashedIP: "old", Timestamp: now.AddDate(-2, 0, 0)}))
	require.NoError(t, s.RecordVisit(ctx, Visit{HashedIP: "new", Timestamp: now.AddDate(0, -1, 0)}))

	n, err := s.Cleanup(ctx, 365*24*time.Hour)
	require.NoError(t, err)
	assert.EqualValues(t, 1, n)

	recent, err := s.Recent(ctx, 10)
	require.NoError(t, err)
	require.Len(t, recent, 1)
	assert.Equal(t, "new", recent[0].HashedIP)
}

func TestTracker(t *testing.T) {
	s := openStore(t)
	tr, err := NewTracker(s, nil)
	require.NoError(t, err)

	h1 := tr.HashIP("203.0.113.7")
	assert.Len(t, h1, 16)
	assert.Equal(t, h1, tr.HashIP("203.0.113.7"))
	assert.NotEqual(t, h1, tr.HashIP("203.0.113.8"))
	assert.NotContains(t, h1, "203")

	tr.Visit("203.0.113.7", "test-agent", "/")
	tr.Visit("203.0.113.7", "test-agent", "/")
	tr.Navigated("about")
	tr.Close()

	stats, err := s.Stats(context.Background())
	require.NoError(t, err)
	assert.EqualValues(t, 2, stats.TotalVisitors)
	assert.EqualValues(t, 1, stats.UniqueVisitors)
	assert.Equal(t, []SectionCount{{"about", 1}}, stats.Navigations)
	assert.Equal(t, h1, stats.RecentVisitors[0].HashedIP)
}

func TestShouldTrack(t *testing.T) {
	tests := []struct {
		path, dnt string
		want      bool
	}{
		{"/", "", true},
		{"/", "1", false},
		{"/static/app.css", "", false},
		{"/admin/dashboard", "", false},
		{"/ui/navigate", "", false},
		{"/resume.pdf", "", false},
		{"/healthz", "", false},
		{"/privacy", "", false},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, ShouldTrack(tt.path, tt.dnt), "%s dnt=%q", tt.path, tt.dnt)
	}
}
