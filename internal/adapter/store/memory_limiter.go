package store

import (
	"context"
	"sync"
	"time"

	"swot-core/internal/domain/entity"
)

type window struct {
	count   int
	resetAt time.Time
}

// MemoryLimiter is a fixed-window request counter keyed by client
// identifier. Records are created lazily on first request and never
// evicted; the table is bounded only by the number of distinct
// identifiers, which is acceptable at demo scale.
type MemoryLimiter struct {
	mu      sync.Mutex
	records map[string]*window
	limit   int
	window  time.Duration
	now     func() time.Time
}

func NewMemoryLimiter(limit int, windowDur time.Duration) *MemoryLimiter {
	return &MemoryLimiter{
		records: make(map[string]*window),
		limit:   limit,
		window:  windowDur,
		now:     time.Now,
	}
}

// Check performs the check-and-increment as one atomic step under the
// table lock so two concurrent requests cannot both slip under the limit.
func (l *MemoryLimiter) Check(ctx context.Context, identifier string) (entity.RateDecision, error) {
	l.mu.Lock()
	defer l.mu.Unlock()

	t := l.now()
	rec, ok := l.records[identifier]
	if !ok || t.After(rec.resetAt) {
		// First request, or the previous window expired.
		l.records[identifier] = &window{count: 1, resetAt: t.Add(l.window)}
		return entity.RateDecision{Allowed: true}, nil
	}

	if rec.count >= l.limit {
		return entity.RateDecision{Allowed: false, ResetAt: rec.resetAt}, nil
	}

	rec.count++
	return entity.RateDecision{Allowed: true}, nil
}
