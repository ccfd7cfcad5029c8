// Package runid carries a correlation ID through a CLI run or an HTTP request
// so every log line of one check can be grouped together.
package runid

import (
	"context"

	"github.com/google/uuid"
)

type ctxKey struct{}

// New returns a fresh random run ID.
func New() string {
	return uuid.NewString()
}

// NewContext returns a context that carries the given run ID.
func NewContext(ctx context.Context, id string) context.Context {
	return context.WithValue(ctx, ctxKey{}, id)
}

// FromContext returns the run ID stored in ctx, or an empty string.
func FromContext(ctx context.Context) string {
	id, _ := ctx.Value(ctxKey{}).(string)
	return id
}
