package mocks

import (
	"context"
	"time"

	"github.com/adventboard/adventboard/internal/domain/registry"
	"github.com/adventboard/adventboard/internal/domain/standings"
	"github.com/stretchr/testify/mock"
)

// StandingsStore is a mock for leaderboard.Store.
type StandingsStore struct {
	mock.Mock
}

func (m *StandingsStore) Load(ctx context.Context, group string, year int) (*standings.Standings, error) {
	args := m.Called(ctx, group, year)
	if s, ok := args.Get(0).(*standings.Standings); ok {
		return s, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *StandingsStore) Save(ctx context.Context, group string, year int, s *standings.Standings) error {
	args := m.Called(ctx, group, year, s)
	return args.Error(0)
}

func (m *StandingsStore) Age(ctx context.Context, group string, year int) (time.Duration, bool, error) {
	args := m.Called(ctx, group, year)
	return args.Get(0).(time.Duration), args.Bool(1), args.Error(2)
}

func (m *StandingsStore) WithLock(ctx context.Context, group string, year int, fn func() error) error {
	args := m.Called(ctx, group, year, fn)
	if args.Error(0) != nil {
		return args.Error(0)
	}
	return fn()
}

// RegistryStore is a mock for registry.Store.
type RegistryStore struct {
	mock.Mock
}

func (m *RegistryStore) Get(ctx context.Context, token string) (*registry.PublicLeaderboard, error) {
	args := m.Called(ctx, token)
	if rec, ok := args.Get(0).(*registry.PublicLeaderboard); ok {
		return rec, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *RegistryStore) FindByGroup(ctx context.Context, groupID string) (*registry.PublicLeaderboard, error) {
	args := m.Called(ctx, groupID)
	if rec, ok := args.Get(0).(*registry.PublicLeaderboard); ok {
		return rec, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *RegistryStore) Put(ctx context.Context, rec *registry.PublicLeaderboard) error {
	args := m.Called(ctx, rec)
	return args.Error(0)
}

func (m *RegistryStore) Exists(ctx context.Context, token string) (bool, error) {
	args := m.Called(ctx, token)
	return args.Bool(0), args.Error(1)
}

func (m *RegistryStore) WithLock(ctx context.Context, fn func() error) error {
	args := m.Called(ctx, fn)
	if args.Error(0) != nil {
		return args.Error(0)
	}
	return fn()
}

// OriginClient is a mock for origin.Client.
type OriginClient struct {
	mock.Mock
}

func (m *OriginClient) Fetch(ctx context.Context, session, group string, year int) (*standings.Standings, error) {
	args := m.Called(ctx, session, group, year)
	if s, ok := args.Get(0).(*standings.Standings); ok {
		return s, args.Error(1)
	}
	return nil, args.Error(1)
}
