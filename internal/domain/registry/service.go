package registry

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/adventboard/adventboard/internal/repository"
)

// maxMintAttempts bounds the collision-retry loop. Reaching it means
// the randomness source is broken, not that the space filled up.
const maxMintAttempts = 100

// Service manages the public leaderboard registry.
type Service struct {
	store  Store
	logger *slog.Logger
}

// NewService creates a new registry service.
func NewService(store Store, logger *slog.Logger) *Service {
	if logger == nil {
		logger = slog.Default()
	}
	return &Service{store: store, logger: logger}
}

// Publish makes a group's leaderboard reachable under a public token.
// Publishing an already-published group updates its stored session and
// returns the existing token. Callers are expected to have validated
// the session against the origin first; the registry stores it as-is.
func (s *Service) Publish(ctx context.Context, groupID, session string) (string, error) {
	var token string
	err := s.store.WithLock(ctx, func() error {
		existing, err := s.store.FindByGroup(ctx, groupID)
		if err == nil {
			existing.Session = session
			if err := s.store.Put(ctx, existing); err != nil {
				return fmt.Errorf("updating published record: %w", err)
			}
			token = existing.Token
			return nil
		}
		if !errors.Is(err, repository.ErrNotFound) {
			return fmt.Errorf("looking up group record: %w", err)
		}

		for attempt := 0; attempt < maxMintAttempts; attempt++ {
			candidate, err := newToken()
			if err != nil {
				return err
			}
			taken, err := s.store.Exists(ctx, candidate)
			if err != nil {
				return fmt.Errorf("checking token collision: %w", err)
			}
			if taken {
				continue
			}
			rec := &PublicLeaderboard{Token: candidate, GroupID: groupID, Session: session}
			if err := s.store.Put(ctx, rec); err != nil {
				return fmt.Errorf("persisting published record: %w", err)
			}
			s.logger.Info("published leaderboard", "group", groupID, "token", candidate)
			token = candidate
			return nil
		}
		return ErrTokenSpaceExhausted
	})
	if err != nil {
		return "", err
	}
	return token, nil
}

// Resolve looks up a record by its public token.
func (s *Service) Resolve(ctx context.Context, token string) (*PublicLeaderboard, error) {
	rec, err := s.store.Get(ctx, token)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("resolving token: %w", err)
	}
	return rec, nil
}

// Renew overwrites the stored session for an existing record. The new
// session must already have been validated against the origin; an
// unknown token returns ErrNotFound without writing anything.
func (s *Service) Renew(ctx context.Context, token, newSession string) error {
	rec, err := s.store.Get(ctx, token)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return ErrNotFound
		}
		return fmt.Errorf("loading record for renewal: %w", err)
	}

	rec.Session = newSession
	if err := s.store.Put(ctx, rec); err != nil {
		return fmt.Errorf("persisting renewed record: %w", err)
	}
	s.logger.Info("renewed leaderboard session", "token", token)
	return nil
}
