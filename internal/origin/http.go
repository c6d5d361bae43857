package origin

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/adventboard/adventboard/internal/domain/standings"
)

// DefaultBaseURL is the production contest site.
const DefaultBaseURL = "https://adventofcode.com"

// HTTPClient is the default Client implementation: one blocking GET per
// fetch, authenticated with the session cookie.
type HTTPClient struct {
	baseURL string
	client  *http.Client
}

// NewHTTPClient builds an HTTPClient against the given base URL. An
// empty baseURL selects the production site.
func NewHTTPClient(baseURL string, timeout time.Duration) *HTTPClient {
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}
	return &HTTPClient{
		baseURL: baseURL,
		client:  &http.Client{Timeout: timeout},
	}
}

// Fetch retrieves and decodes one private leaderboard. Response classes
// map onto the package's sentinel errors: a 2xx with an undecodable body
// is ErrMalformedResponse, a 4xx is ErrNotFound, anything else is
// ErrInvalidCredentials.
func (c *HTTPClient) Fetch(ctx context.Context, session, group string, year int) (*standings.Standings, error) {
	url := fmt.Sprintf("%s/%d/leaderboard/private/view/%s.json", c.baseURL, year, group)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, fmt.Errorf("building origin request: %w", err)
	}
	req.AddCookie(&http.Cookie{Name: "session", Value: session})

	resp, err := c.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("fetching leaderboard: %w", err)
	}
	defer resp.Body.Close()

	switch {
	case resp.StatusCode >= 200 && resp.StatusCode < 300:
		body, err := io.ReadAll(resp.Body)
		if err != nil {
			return nil, fmt.Errorf("reading origin response: %w", err)
		}
		s, err := standings.Decode(body)
		if err != nil {
			return nil, fmt.Errorf("%w: %v", ErrMalformedResponse, err)
		}
		return s, nil
	case resp.StatusCode >= 400 && resp.StatusCode < 500:
		return nil, ErrNotFound
	default:
		return nil, ErrInvalidCredentials
	}
}
