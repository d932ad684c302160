// Package store defines the local key/value slots the planner persists into.
package store

import (
	"context"
	"errors"
)

// Slot keys. Each holds one JSON document.
const (
	KeyTasks    = "tasks"
	KeyGoals    = "weeklyGoals"
	KeySettings = "settings"
)

// ErrNoSlot is returned by Get when nothing was stored under a key.
var ErrNoSlot = errors.New("slot not found")

// Slots is a local key/value store. Values are opaque bytes.
type Slots interface {
	Get(ctx context.Context, key string) ([]byte, error)
	Put(ctx context.Context, key string, value []byte) error
	Close() error
}
