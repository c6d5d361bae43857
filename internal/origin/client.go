// Package origin talks to the upstream contest site that serves the
// authoritative leaderboard JSON.
package origin

import (
	"context"

	"github.com/adventboard/adventboard/internal/domain/standings"
)

// Client fetches a private leaderboard from the origin. Implementations
// classify failures into the package's sentinel errors so callers can
// distinguish an expired session from a bad group id.
type Client interface {
	Fetch(ctx context.Context, session, group string, year int) (*standings.Standings, error)
}
