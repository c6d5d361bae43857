// Package leaderboard decides whether cached standings are fresh enough
// to reuse and refreshes them from the origin when they are not.
package leaderboard

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/adventboard/adventboard/internal/contest"
	"github.com/adventboard/adventboard/internal/domain/standings"
	"github.com/adventboard/adventboard/internal/origin"
)

// Policy holds the phase-dependent cache-age thresholds. The contest's
// first hour after a puzzle unlock is the burst window; BurstNoCache
// selects the stricter variant that bypasses the cache entirely there.
type Policy struct {
	BurstTTL     time.Duration
	BurstNoCache bool
	ActiveTTL    time.Duration
	IdleTTL      time.Duration
}

// DefaultPolicy returns the strict threshold set: 60s in the burst
// window, 15 minutes during the contest, one hour otherwise.
func DefaultPolicy() Policy {
	return Policy{
		BurstTTL:  60 * time.Second,
		ActiveTTL: 15 * time.Minute,
		IdleTTL:   time.Hour,
	}
}

func (p Policy) ttl(phase contest.Phase) time.Duration {
	switch phase {
	case contest.PhaseBurst:
		return p.BurstTTL
	case contest.PhaseActive:
		return p.ActiveTTL
	default:
		return p.IdleTTL
	}
}

// Service is the freshness cache over a standings store and an origin
// client.
type Service struct {
	store  Store
	origin origin.Client
	policy Policy
	logger *slog.Logger
}

// NewService creates a new leaderboard service.
func NewService(store Store, client origin.Client, policy Policy, logger *slog.Logger) *Service {
	if logger == nil {
		logger = slog.Default()
	}
	return &Service{store: store, origin: client, policy: policy, logger: logger}
}

// GetOrRefresh returns the standings for (group, year), reusing the
// cached snapshot when its age is within the calendar phase's threshold
// and refreshing from the origin otherwise. A failed refresh surfaces
// the origin's classified error and leaves the prior cache entry intact;
// only a later successful fetch supersedes it.
func (s *Service) GetOrRefresh(ctx context.Context, session, group string, year int, now time.Time) (*standings.Standings, error) {
	phase := contest.PhaseAt(now, year)

	fresh, err := s.isFresh(ctx, group, year, phase)
	if err != nil {
		return nil, err
	}
	if fresh {
		cached, err := s.store.Load(ctx, group, year)
		if err != nil {
			return nil, fmt.Errorf("loading cached standings: %w", err)
		}
		return cached, nil
	}

	var result *standings.Standings
	err = s.store.WithLock(ctx, group, year, func() error {
		// Another invocation may have refreshed while this one waited
		// for the lock; re-check before hitting the origin.
		fresh, err := s.isFresh(ctx, group, year, phase)
		if err != nil {
			return err
		}
		if fresh {
			cached, err := s.store.Load(ctx, group, year)
			if err != nil {
				return fmt.Errorf("loading cached standings: %w", err)
			}
			result = cached
			return nil
		}

		fetched, err := s.origin.Fetch(ctx, session, group, year)
		if err != nil {
			return err
		}
		if err := s.store.Save(ctx, group, year, fetched); err != nil {
			return fmt.Errorf("persisting standings: %w", err)
		}

		s.logger.Info("refreshed standings",
			"group", group, "year", year, "phase", phase.String(),
			"participants", len(fetched.Members))
		result = fetched
		return nil
	})
	if err != nil {
		return nil, err
	}
	return result, nil
}

func (s *Service) isFresh(ctx context.Context, group string, year int, phase contest.Phase) (bool, error) {
	if phase == contest.PhaseBurst && s.policy.BurstNoCache {
		return false, nil
	}
	age, ok, err := s.store.Age(ctx, group, year)
	if err != nil {
		return false, fmt.Errorf("checking cache age: %w", err)
	}
	if !ok {
		return false, nil
	}
	return age <= s.policy.ttl(phase), nil
}
