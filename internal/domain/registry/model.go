// Package registry publishes private leaderboards under durable public
// tokens so they can be shared without exposing the owning session.
package registry

// TokenLength is the fixed public token size. At 62^16 the token space
// makes collisions a retry case, not a planning concern.
const TokenLength = 16

// PublicLeaderboard associates a public token with its source group and
// the session credential used to refresh its data. Session is the only
// field that changes after creation; renewal overwrites it. The JSON
// field names match the original on-disk records.
type PublicLeaderboard struct {
	Token   string `json:"token"`
	GroupID string `json:"id"`
	Session string `json:"session"`
}
