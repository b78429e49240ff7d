package storage

import (
	"context"
	"sync"
	"time"

	"das-foods/internal/service"
)

// MemoryGuard is the single-process fallback when Redis is not configured.
type MemoryGuard struct {
	mu      sync.Mutex
	expires map[string]time.Time
}

func NewMemoryGuard() *MemoryGuard {
	return &MemoryGuard{expires: make(map[string]time.Time)}
}

func (g *MemoryGuard) Acquire(_ context.Context, key string, ttl time.Duration) (bool, error) {
	g.mu.Lock()
	defer g.mu.Unlock()
	now := time.Now()
	if until, ok := g.expires[key]; ok && now.Before(until) {
		return false, nil
	}
	g.expires[key] = now.Add(ttl)
	return true, nil
}

func (g *MemoryGuard) Release(_ context.Context, key string) error {
	g.mu.Lock()
	delete(g.expires, key)
	g.mu.Unlock()
	return nil
}

var _ service.InFlightGuard = (*MemoryGuard)(nil)
