package registry

import "context"

// Store provides persistence for public leaderboard records. Get and
// Exists look up by token; FindByGroup resolves the secondary
// group-to-record association. Both lookups return the repository
// not-found sentinel when nothing matches.
type Store interface {
	Get(ctx context.Context, token string) (*PublicLeaderboard, error)
	FindByGroup(ctx context.Context, groupID string) (*PublicLeaderboard, error)
	Put(ctx context.Context, rec *PublicLeaderboard) error
	Exists(ctx context.Context, token string) (bool, error)
	// WithLock serializes token minting across concurrent publishes so
	// two invocations can never persist the same candidate token.
	WithLock(ctx context.Context, fn func() error) error
}
