// Package memstore keeps slots in memory. Nothing survives the process.
package memstore

import (
	"context"
	"sync"

	"github.com/Makepad-fr/dayplan/internal/store"
)

type Store struct {
	mu    sync.Mutex
	slots map[string][]byte
}

func New() *Store {
	return &Store{slots: make(map[string][]byte)}
}

func (s *Store) Get(_ context.Context, key string) ([]byte, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	b, ok := s.slots[key]
	if !ok {
		return nil, store.ErrNoSlot
	}
	return append([]byte(nil), b...), nil
}

func (s *Store) Put(_ context.Context, key string, value []byte) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.slots[key] = append([]byte(nil), value...)
	return nil
}

func (s *Store) Close() error { return nil }
