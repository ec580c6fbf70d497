package ratelimit

import (
	"context"
	"sync"
	"time"

	"github.com/umairmr377-gif/Play-Zone-sub000/internal/clock"
)

type windowCounter struct {
	start time.Time
	count int
}

// MemoryStore keeps per-key fixed-window counters in process memory.
type MemoryStore struct {
	mu      sync.Mutex
	clock   clock.Clock
	windows map[string]windowCounter
}

func NewMemoryStore(clk clock.Clock) *MemoryStore {
	return &MemoryStore{
		clock:   clk,
		windows: make(map[string]windowCounter),
	}
}

func (s *MemoryStore) Incr(_ context.Context, key string, window time.Duration) (int, error) {
	now := s.clock.Now()

	s.mu.Lock()
	defer s.mu.Unlock()

	w, ok := s.windows[key]
	if !ok || now.Sub(w.start) >= window {
		w = windowCounter{start: now}
	}
	w.count++
	s.windows[key] = w

	// Drop stale windows opportunistically so the map does not grow with
	// every client ever seen.
	if len(s.windows) > 1024 {
		for k, v := range s.windows {
			if now.Sub(v.start) >= window {
				delete(s.windows, k)
			}
		}
	}

	return w.count, nil
}
