package origin

import "errors"

var (
	// ErrInvalidCredentials indicates the origin rejected the session.
	ErrInvalidCredentials = errors.New("origin: invalid session")
	// ErrNotFound indicates the group id or year doesn't exist upstream.
	ErrNotFound = errors.New("origin: leaderboard not found")
	// ErrMalformedResponse indicates the origin answered successfully
	// but the body wasn't a decodable leaderboard document.
	ErrMalformedResponse = errors.New("origin: malformed response")
)
