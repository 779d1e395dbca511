package storage

import (
	"sync"
	"time"
)

// RecentHistory is a fixed-capacity set of recently used values with FIFO
// eviction. The bot uses it to avoid reposting the same frog image back to
// back in a chat.
type RecentHistory struct {
	mu       sync.Mutex
	capacity int
	order    []string
	seen     map[string]struct{}
}

// NewRecentHistory creates a history that remembers the last capacity values.
// A capacity below 1 is treated as 1.
func NewRecentHistory(capacity int) *RecentHistory {
	if capacity < 1 {
		capacity = 1
	}
	return &RecentHistory{
		capacity: capacity,
		seen:     make(map[string]struct{}, capacity),
	}
}

// Add records a value, evicting the oldest one when the history is full.
// Adding a value that is already present is a no-op.
func (h *RecentHistory) Add(value string) {
	h.mu.Lock()
	defer h.mu.Unlock()

	if _, ok := h.seen[value]; ok {
		return
	}

	if len(h.order) >= h.capacity {
		oldest := h.order[0]
		h.order = h.order[1:]
		delete(h.seen, oldest)
	}

	h.order = append(h.order, value)
	h.seen[value] = struct{}{}
}

// Contains reports whether a value is in the history.
func (h *RecentHistory) Contains(value string) bool {
	h.mu.Lock()
	defer h.mu.Unlock()
	_, ok := h.seen[value]
	return ok
}

// CooldownTracker tracks per-chat cooldowns for commands that should not be
// spammable.
type CooldownTracker struct {
	mu   sync.Mutex
	last map[int64]time.Time
	now  func() time.Time
}

// NewCooldownTracker creates an empty tracker.
func NewCooldownTracker() *CooldownTracker {
	return &CooldownTracker{
		last: make(map[int64]time.Time),
		now:  time.Now,
	}
}

// Allow reports whether the cooldown for chatID has elapsed and, if so,
// restarts it.
func (c *CooldownTracker) Allow(chatID int64, cooldown time.Duration) bool {
	c.mu.Lock()
	defer c.mu.Unlock()

	now := c.now()
	if last, ok := c.last[chatID]; ok && now.Sub(last) < cooldown {
		return false
	}

	c.last[chatID] = now
	return true
}
