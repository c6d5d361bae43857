package registry

import "errors"

var (
	// ErrNotFound indicates no record exists for the token.
	ErrNotFound = errors.New("public leaderboard not found")
	// ErrTokenSpaceExhausted indicates token minting kept colliding.
	// Pathological; it cannot realistically happen with 16-character
	// alphanumeric tokens.
	ErrTokenSpaceExhausted = errors.New("token space exhausted")
)
