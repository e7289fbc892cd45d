package bruteforce

import (
	"sync"
	"time"
)

const (
	// DefaultMaxAttempts is how many consecutive failures a client may
	// accumulate inside one window before further attempts are refused
	DefaultMaxAttempts = 6

	// DefaultWindow is the rolling window and cooldown duration
	DefaultWindow = 15 * time.Minute
)

// Guard gates a protected endpoint by client key. Admit is called before
// the handler runs; Fail after every rejected authentication attempt,
// regardless of why it was rejected; Reset after a successful one.
type Guard interface {
	Admit(key string) (allowed bool, retryAfter time.Duration)
	Fail(key string)
	Reset(key string)
}

type entry struct {
	failures  int
	windowEnd time.Time
}

// MemoryGuard is a process-local Guard backed by an expiring map.
// Counters are lost on restart, which is acceptable for this defense.
type MemoryGuard struct {
	mu          sync.Mutex
	entries     map[string]*entry
	maxAttempts int
	window      time.Duration
	now         func() time.Time
}

// NewMemoryGuard creates a guard allowing maxAttempts failures per window.
// Non-positive arguments fall back to the defaults.
func NewMemoryGuard(maxAttempts int, window time.Duration) *MemoryGuard {
	if maxAttempts <= 0 {
		maxAttempts = DefaultMaxAttempts
	}
	if window <= 0 {
		window = DefaultWindow
	}
	return &MemoryGuard{
		entries:     make(map[string]*entry),
		maxAttempts: maxAttempts,
		window:      window,
		now:         time.Now,
	}
}

// Admit reports whether the client may attempt authentication. When the
// client is blocked, retryAfter is the time remaining until the cooldown
// elapses.
func (g *MemoryGuard) Admit(key string) (bool, time.Duration) {
	g.mu.Lock()
	defer g.mu.Unlock()

	e, ok := g.entries[key]
	if !ok {
		return true, 0
	}

	now := g.now()
	if now.After(e.windowEnd) {
		delete(g.entries, key)
		return true, 0
	}

	if e.failures >= g.maxAttempts {
		return false, e.windowEnd.Sub(now)
	}

	return true, 0
}

// Fail records a failed attempt for the client. The first failure of a
// fresh window starts the cooldown clock.
func (g *MemoryGuard) Fail(key string) {
	g.mu.Lock()
	defer g.mu.Unlock()

	now := g.now()
	e, ok := g.entries[key]
	if !ok || now.After(e.windowEnd) {
		g.entries[key] = &entry{failures: 1, windowEnd: now.Add(g.window)}
		return
	}

	e.failures++
}

// Reset clears the counter for the client after a successful login
func (g *MemoryGuard) Reset(key string) {
	g.mu.Lock()
	defer g.mu.Unlock()
	delete(g.entries, key)
}

// Sweep drops all expired entries and returns how many were removed.
// Called periodically so abandoned clients do not accumulate.
func (g *MemoryGuard) Sweep() int {
	g.mu.Lock()
	defer g.mu.Unlock()

	now := g.now()
	removed := 0
	for key, e := range g.entries {
		if now.After(e.windowEnd) {
			delete(g.entries, key)
			removed++
		}
	}
	return removed
}
