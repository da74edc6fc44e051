// nolint: revive
package utils

import (
	"context"
)

// CtxDone returns ctx.Err() if ctx is done, nil otherwise
func CtxDone(ctx context.Context) error {
	select {
	case <-ctx.Done():
		return ctx.Err()
	default:
	}

	return nil
}

// Provider - value provider for type T, resolved per call
type Provider[T any] func(ctx context.Context) T

// Const - constant value provider
func Const[T any](v T) Provider[T] {
	return func(_ context.Context) T {
		return v
	}
}

// Or returns v, or def when v is the zero value
func Or[T comparable](v, def T) T {
	var zero T
	if v == zero {
		return def
	}

	return v
}
