package port

import (
	"context"

	"github.com/crestbank/underwriting-service/internal/domain/event"
)

// ---------------------------------------------------------------------------
// Event publisher port
// ---------------------------------------------------------------------------

// EventPublisher publishes decision events to external consumers.
type EventPublisher interface {
	Publish(ctx context.Context, events ...event.DomainEvent) error
}

// ---------------------------------------------------------------------------
// Cache port
// ---------------------------------------------------------------------------

// AssessmentCache memoizes serialized engine results by input key. Because
// every computation is a pure function of its inputs, a cache hit is always
// byte-identical to recomputation; implementations may therefore miss freely
// (including on every call) without affecting correctness.
type AssessmentCache interface {
	Get(ctx context.Context, key string) (string, bool)
	Set(ctx context.Context, key, value string) error
}
