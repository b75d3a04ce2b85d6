package subtrack

import (
	"context"
	"fmt"
	"sync"
)

// InMemoryStore is the in-memory implementation of the Store interface.
// It keeps insertion order so listings are stable.
type InMemoryStore struct {
	subscriptions map[string]*Subscription
	order         []string
	mu            sync.RWMutex
}

// NewInMemoryStore creates a new InMemoryStore.
func NewInMemoryStore() *InMemoryStore {
	return &InMemoryStore{
		subscriptions: make(map[string]*Subscription),
	}
}

// Get retrieves a copy of a subscription from the store.
func (s *InMemoryStore) Get(ctx context.Context, name string) (*Subscription, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	sub, ok := s.subscriptions[name]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrNotFound, name)
	}

	return sub.clone(), nil
}

// Put inserts a new subscription. Names are unique; inserting an existing
// name fails with ErrDuplicateName.
func (s *InMemoryStore) Put(ctx context.Context, sub *Subscription) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.subscriptions[sub.Name]; ok {
		return fmt.Errorf("%w: %q", ErrDuplicateName, sub.Name)
	}

	s.subscriptions[sub.Name] = sub.clone()
	s.order = append(s.order, sub.Name)
	return nil
}

// Update replaces the stored record for sub.Name, keeping its slot in the
// insertion order.
func (s *InMemoryStore) Update(ctx context.Context, sub *Subscription) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.subscriptions[sub.Name]; !ok {
		return fmt.Errorf("%w: %q", ErrNotFound, sub.Name)
	}

	s.subscriptions[sub.Name] = sub.clone()
	return nil
}

// Delete removes a subscription by name.
func (s *InMemoryStore) Delete(ctx context.Context, name string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.subscriptions[name]; !ok {
		return fmt.Errorf("%w: %q", ErrNotFound, name)
	}

	delete(s.subscriptions, name)
	for i, n := range s.order {
		if n == name {
			s.order = append(s.order[:i], s.order[i+1:]...)
			break
		}
	}
	return nil
}

// List returns copies of all subscriptions in insertion order.
func (s *InMemoryStore) List(ctx context.Context) ([]*Subscription, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	subs := make([]*Subscription, 0, len(s.order))
	for _, name := range s.order {
		subs = append(subs, s.subscriptions[name].clone())
	}
	return subs, nil
}
