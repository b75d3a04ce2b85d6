package subtrack

import "context"

// Store is the interface for keeping subscription records.
// Implementations own the records they hold and must hand out copies, so
// callers can never mutate stored state behind the registry's back.
type Store interface {
	// Get retrieves a subscription by name.
	Get(ctx context.Context, name string) (*Subscription, error)
	// Put inserts a new subscription keyed by its name.
	// It fails with ErrDuplicateName if the name is already present.
	Put(ctx context.Context, sub *Subscription) error
	// Update replaces the stored record with the same name.
	// It fails with ErrNotFound if the name is absent.
	Update(ctx context.Context, sub *Subscription) error
	// Delete removes a subscription by name.
	Delete(ctx context.Context, name string) error
	// List returns all subscriptions in insertion order.
	List(ctx context.Context) ([]*Subscription, error)
}
