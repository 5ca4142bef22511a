package ratelimit

import (
	"context"
	"sync"
	"time"
)

type window struct {
	count int
	start time.Time
}

// MemoryLimiter is the single-process fallback used when Redis is not
// configured.
type MemoryLimiter struct {
	limit  int
	window time.Duration
	now    func() time.Time

	mu      sync.Mutex
	clients map[string]*window
}

func NewMemoryLimiter(limit int, win time.Duration) *MemoryLimiter {
	return &MemoryLimiter{
		limit:   limit,
		window:  win,
		now:     time.Now,
		clients: make(map[string]*window),
	}
}

func (m *MemoryLimiter) Allow(_ context.Context, key string) (Result, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	now := m.now()

	// Clean up old entries
	for k, w := range m.clients {
		if now.Sub(w.start) >= m.window {
			delete(m.clients, k)
		}
	}

	w, ok := m.clients[key]
	if !ok {
		w = &window{start: now}
		m.clients[key] = w
	}

	res := Result{Limit: m.limit, ResetAt: w.start.Add(m.window)}
	if w.count >= m.limit {
		return res, nil
	}
	w.count++
	res.Allowed = true
	res.Remaining = m.limit - w.count
	return res, nil
}
