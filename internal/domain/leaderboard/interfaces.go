package leaderboard

import (
	"context"
	"time"

	"github.com/adventboard/adventboard/internal/domain/standings"
)

// Store provides persistence for cached standings snapshots. The age of
// an entry is derived from its last successful write; a missing entry
// reports ok=false and is treated as infinitely stale.
type Store interface {
	Load(ctx context.Context, group string, year int) (*standings.Standings, error)
	Save(ctx context.Context, group string, year int, s *standings.Standings) error
	Age(ctx context.Context, group string, year int) (age time.Duration, ok bool, err error)
	// WithLock serializes the read-check-fetch-write sequence for one
	// (group, year) key across concurrent invocations.
	WithLock(ctx context.Context, group string, year int, fn func() error) error
}
