// Package request carries per-invocation context explicitly. Engine
// code never reads ambient process state; whatever a request needs is
// captured once at the boundary and passed down.
package request

import (
	"log/slog"
	"time"

	"github.com/google/uuid"
)

// Context identifies one external request and pins its arrival instant.
// All freshness decisions for the request use ReceivedAt, so a slow
// origin fetch can't shift the calendar phase mid-request.
type Context struct {
	ID         string
	ReceivedAt time.Time
}

// New creates a request context for an invocation arriving at now.
func New(now time.Time) Context {
	return Context{ID: uuid.NewString(), ReceivedAt: now}
}

// Logger returns a logger that tags every record with the request id.
func (c Context) Logger(base *slog.Logger) *slog.Logger {
	if base == nil {
		base = slog.Default()
	}
	return base.With("request_id", c.ID)
}
