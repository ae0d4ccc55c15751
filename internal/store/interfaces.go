package store

import (
	"context"
	"errors"

	"product-showcase-service/internal/domain"
)

// Predefined errors for store operations.
// Implementations wrap the underlying cause so that both are visible to errors.Is.
var (
	ErrStoreUnavailable = errors.New("store: products resource unavailable")
	ErrStoreCorrupt     = errors.New("store: products resource corrupt")
)

// ProductReader loads the full product collection from the backing resource.
// Every call reads the resource again; nothing is cached between calls.
type ProductReader interface {
	LoadAll(ctx context.Context) ([]domain.Product, error)
}

// Pinger reports whether the backing resource is reachable. Used by health checks.
type Pinger interface {
	Ping(ctx context.Context) error
}
