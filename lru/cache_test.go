package lru_test

import (
	"fmt"
	"testing"
	"time"

	"github.com/mpickford/folkweb/lru"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCache(t *testing.T) {
	t.Parallel()

	t.Run("set then get within the freshness window", func(t *testing.T) {
		t.Parallel()

		c := lru.New(8, time.Hour)
		c.Set("https://example.com/a.html", []byte("<html>a</html>"))

		got, ok := c.Get("https://example.com/a.html")
		require.True(t, ok)
		assert.Equal(t, "<html>a</html>", string(got))
	})

	t.Run("miss for unknown key", func(t *testing.T) {
		t.Parallel()

		c := lru.New(8, time.Hour)
		_, ok := c.Get("https://example.com/missing.html")
		assert.False(t, ok)
	})

	t.Run("set overwrites the previous entry", func(t *testing.T) {
		t.Parallel()

		c := lru.New(8, time.Hour)
		c.Set("k", []byte("old"))
		c.Set("k", []byte("new"))

		got, ok := c.Get("k")
		require.True(t, ok)
		assert.Equal(t, "new", string(got))
	})

	t.Run("entries expire after the TTL", func(t *testing.T) {
		t.Parallel()

		c := lru.New(8, 20*time.Millisecond)
		c.Set("k", []byte("v"))

		_, ok := c.Get("k")
		require.True(t, ok)

		time.Sleep(50 * time.Millisecond)

		_, ok = c.Get("k")
		assert.False(t, ok)
	})

	t.Run("capacity bounds the entry count", func(t *testing.T) {
		t.Parallel()

		c := lru.New(4, time.Hour)
		for i := 0; i < 10; i++ {
			c.Set(fmt.Sprintf("key-%d", i), []byte("v"))
		}

		assert.LessOrEqual(t, c.Len(), 4)

		// The most recently written entry survives.
		_, ok := c.Get("key-9")
		assert.True(t, ok)
	})
}
