package cache

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/devankur/portfolio/internal/ui"
)

func TestKey(t *testing.T) {
	assert.Equal(t, "abc123:home/closed", Key("abc123", ui.Default()))
	assert.Equal(t, "abc123:projects/open", Key("abc123", ui.State{Active: ui.Projects, MenuOpen: true}))
	assert.NotEqual(t, Key("r1", ui.Default()), Key("r2", ui.Default()))
}

func TestNop(t *testing.T) {
	var p Pages = Nop{}
	p.Set(context.Background(), "k", []byte("page"))
	_, ok := p.Get(context.Background(), "k")
	assert.False(t, ok)
	assert.NoError(t, p.Close())
}

func TestNewRedis_BadURL(t *testing.T) {
	_, err := NewRedis("not a url", time.Minute, nil)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "parse redis url")
}

func TestNewRedis_Unreachable(t *testing.T) {
	if testing.Short() {
		t.Skip("dials the network")
	}
	_, err := NewRedis("redis://127.0.0.1:1/0", time.Minute, nil)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "ping redis")
}
