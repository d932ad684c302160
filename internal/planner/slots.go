package planner

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/google/uuid"

	"github.com/Makepad-fr/dayplan/internal/logger"
	"github.com/Makepad-fr/dayplan/internal/store"
)

func newID() string { return uuid.NewString() }

// loadSlot decodes key into dst. A missing slot leaves dst untouched.
func loadSlot(ctx context.Context, slots store.Slots, key string, dst any) error {
	b, err := slots.Get(ctx, key)
	if err != nil {
		if errors.Is(err, store.ErrNoSlot) {
			logger.Debug(ctx, "slot empty", "slot", key)
			return nil
		}
		return fmt.Errorf("load %s: %w", key, err)
	}
	if err := json.Unmarshal(b, dst); err != nil {
		return fmt.Errorf("load %s: json unmarshal: %w", key, err)
	}
	return nil
}

func saveSlot(ctx context.Context, slots store.Slots, key string, v any) error {
	b, err := json.Marshal(v)
	if err != nil {
		saveTotal.WithLabelValues(key, "error").Inc()
		return fmt.Errorf("save %s: json marshal: %w", key, err)
	}
	if err := slots.Put(ctx, key, b); err != nil {
		saveTotal.WithLabelValues(key, "error").Inc()
		return fmt.Errorf("save %s: %w", key, err)
	}
	saveTotal.WithLabelValues(key, "success").Inc()
	return nil
}
