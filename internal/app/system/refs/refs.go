// internal/app/system/refs/refs.go
//
// Package refs resolves cross-references (foreign ids) into display values
// with a bounded concurrent fan-out. A lookup that fails for one id never
// fails the page: that slot gets the caller's placeholder and the rest
// render normally.
package refs

import (
	"context"

	"go.mongodb.org/mongo-driver/bson/primitive"
	"golang.org/x/sync/errgroup"
)

// maxConcurrent bounds the fan-out so a member list with hundreds of ids
// does not open that many simultaneous queries.
const maxConcurrent = 8

// ResolveAll looks up every id concurrently and returns results in the same
// order and length as ids. When lookup returns an error for an id, the
// result at that position is placeholder(id) and no error is reported to
// the caller.
func ResolveAll[T any](ctx context.Context, ids []primitive.ObjectID, lookup func(context.Context, primitive.ObjectID) (T, error), placeholder func(primitive.ObjectID) T) []T {
	results := make([]T, len(ids))
	if len(ids) == 0 {
		return results
	}

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(maxConcurrent)

	for i, id := range ids {
		i, id := i, id
		g.Go(func() error {
			v, err := lookup(gctx, id)
			if err != nil {
				results[i] = placeholder(id)
				return nil
			}
			results[i] = v
			return nil
		})
	}

	// Workers never return errors; Wait is just the join point.
	_ = g.Wait()
	return results
}

// ResolveOne is the best-effort single-id variant: absence or failure
// yields nil rather than an error.
func ResolveOne[T any](ctx context.Context, id primitive.ObjectID, lookup func(context.Context, primitive.ObjectID) (*T, error)) *T {
	if id.IsZero() {
		return nil
	}
	v, err := lookup(ctx, id)
	if err != nil {
		return nil
	}
	return v
}
