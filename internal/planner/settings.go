package planner

import (
	"context"

	"github.com/Makepad-fr/dayplan/internal/model"
	"github.com/Makepad-fr/dayplan/internal/store"
)

// SettingsStore persists the four display preferences as one object.
type SettingsStore struct {
	slots    store.Slots
	settings model.Settings
}

func LoadSettings(ctx context.Context, slots store.Slots) (*SettingsStore, error) {
	var s model.Settings
	if err := loadSlot(ctx, slots, store.KeySettings, &s); err != nil {
		return nil, err
	}
	return &SettingsStore{slots: slots, settings: s}, nil
}

func (s *SettingsStore) Current() model.Settings { return s.settings }

// Update replaces the whole settings object and persists it.
func (s *SettingsStore) Update(ctx context.Context, next model.Settings) (model.Settings, error) {
	if err := saveSlot(ctx, s.slots, store.KeySettings, next); err != nil {
		observe("settings", "update", err)
		return s.settings, err
	}
	s.settings = next
	observe("settings", "update", nil)
	return next, nil
}

// SettingsPatch carries the controls an adapter changed; nil fields keep
// their current value.
type SettingsPatch struct {
	Bg    *string `json:"bg,omitempty"`
	Color *string `json:"color,omitempty"`
	Size  *string `json:"size,omitempty"`
	Font  *string `json:"font,omitempty"`
}

// Apply builds the full settings object from cur plus the patch.
func (p SettingsPatch) Apply(cur model.Settings) model.Settings {
	if p.Bg != nil {
		cur.Bg = *p.Bg
	}
	if p.Color != nil {
		cur.Color = *p.Color
	}
	if p.Size != nil {
		cur.Size = *p.Size
	}
	if p.Font != nil {
		cur.Font = *p.Font
	}
	return cur
}
