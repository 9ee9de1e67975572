package fmtstring

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCacheParse(t *testing.T) {
	c := NewCache()

	tmpl1, err := c.Parse("%{name}")
	require.NoError(t, err)

	tmpl2, err := c.Parse("%{name}")
	require.NoError(t, err)

	assert.Same(t, tmpl1, tmpl2)

	stats := c.Stats()
	assert.Equal(t, 1, stats.Entries)
	assert.Equal(t, 1, stats.Hits)
	assert.Equal(t, 1, stats.Miss)
}

func TestCacheParseError(t *testing.T) {
	c := NewCache()

	_, err := c.Parse("%{unterminated")
	require.Error(t, err)

	// parse errors must not be cached
	assert.Equal(t, 0, c.Stats().Entries)
}
