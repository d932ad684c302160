package planner

import (
	"context"
	"errors"

	"github.com/Makepad-fr/dayplan/internal/store"
	"github.com/Makepad-fr/dayplan/internal/store/memstore"
)

var errDiskFull = errors.New("disk full")

// flakySlots fails every Put once failPut is set.
type flakySlots struct {
	*memstore.Store
	failPut bool
}

func newFlaky() *flakySlots { return &flakySlots{Store: memstore.New()} }

func (f *flakySlots) Put(ctx context.Context, key string, value []byte) error {
	if f.failPut {
		return errDiskFull
	}
	return f.Store.Put(ctx, key, value)
}

var _ store.Slots = (*flakySlots)(nil)
