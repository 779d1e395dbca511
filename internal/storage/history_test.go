package storage

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestRecentHistoryEvictsOldest(t *testing.T) {
	h := NewRecentHistory(3)

	h.Add("a")
	h.Add("b")
	h.Add("c")
	assert.True(t, h.Contains("a"))

	h.Add("d")
	assert.False(t, h.Contains("a"), "oldest entry must be evicted")
	assert.True(t, h.Contains("b"))
	assert.True(t, h.Contains("c"))
	assert.True(t, h.Contains("d"))
}

func TestRecentHistoryIgnoresDuplicates(t *testing.T) {
	h := NewRecentHistory(2)

	h.Add("a")
	h.Add("a")
	h.Add("b")
	// "a" was added once, so it still fits.
	assert.True(t, h.Contains("a"))
	assert.True(t, h.Contains("b"))
}

func TestCooldownTracker(t *testing.T) {
	c := NewCooldownTracker()
	now := time.Now()
	c.now = func() time.Time { return now }

	assert.True(t, c.Allow(1, time.Minute), "first call always passes")
	assert.False(t, c.Allow(1, time.Minute), "second call is on cooldown")
	assert.True(t, c.Allow(2, time.Minute), "chats cool down independently")

	now = now.Add(61 * time.Second)
	assert.True(t, c.Allow(1, time.Minute))
}
