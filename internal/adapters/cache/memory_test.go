package cache

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestMemoryStringCache(t *testing.T) {
	c := NewMemoryStringCache()

	_, ok := c.Get("missing")
	assert.False(t, ok)

	c.Set("announcement", "nearly sold out")
	got, ok := c.Get("announcement")
	assert.True(t, ok)
	assert.Equal(t, "nearly sold out", got)

	// Last write wins.
	c.Set("announcement", "updated")
	got, _ = c.Get("announcement")
	assert.Equal(t, "updated", got)

	c.Delete("announcement")
	_, ok = c.Get("announcement")
	assert.False(t, ok)
}
