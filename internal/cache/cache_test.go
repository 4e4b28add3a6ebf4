package cache

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestKey(t *testing.T) {
	assert.Equal(t, "workouts:stats:42", Key("workouts", "stats", "42"))
	assert.Equal(t, "single", Key("single"))
}

func TestFreeCache(t *testing.T) {
	c := NewFreeCache(1024 * 1024)

	_, found := c.Get("nope")
	assert.False(t, found)

	require.NoError(t, c.Set("k1", []byte("v1"), 0))
	val, found := c.Get("k1")
	require.True(t, found)
	assert.Equal(t, []byte("v1"), val)

	assert.True(t, c.Del("k1"))
	_, found = c.Get("k1")
	assert.False(t, found)
	assert.False(t, c.Del("k1"))
}
