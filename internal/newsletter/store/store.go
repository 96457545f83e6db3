package store

import "context"

// Store abstracts newsletter subscription persistence. Subscribing an
// already-subscribed email is a no-op, never an error; implementations
// guarantee at most one row per address.
type Store interface {
	Subscribe(ctx context.Context, email string) error
}
