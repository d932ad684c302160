package planner

import (
	"context"
	"slices"
	"strings"

	"github.com/Makepad-fr/dayplan/internal/model"
	"github.com/Makepad-fr/dayplan/internal/store"
)

// GoalStore is the weekly goal checklist. Goals cannot be deleted.
type GoalStore struct {
	slots store.Slots
	goals []model.Goal
}

func LoadGoals(ctx context.Context, slots store.Slots) (*GoalStore, error) {
	var goals []model.Goal
	if err := loadSlot(ctx, slots, store.KeyGoals, &goals); err != nil {
		return nil, err
	}
	for i := range goals {
		if goals[i].ID == "" {
			goals[i].ID = newID()
		}
	}
	return &GoalStore{slots: slots, goals: goals}, nil
}

func (s *GoalStore) All() []model.Goal {
	return slices.Clone(s.goals)
}

// Add validates the trimmed text but stores it as typed.
func (s *GoalStore) Add(ctx context.Context, text string) (model.Goal, error) {
	if strings.TrimSpace(text) == "" {
		observe("goal", "add", ErrEmptyText)
		return model.Goal{}, ErrEmptyText
	}
	goal := model.Goal{ID: newID(), Text: text}

	prev := s.goals
	s.goals = append(slices.Clone(s.goals), goal)
	if err := s.Save(ctx); err != nil {
		s.goals = prev
		observe("goal", "add", err)
		return model.Goal{}, err
	}
	observe("goal", "add", nil)
	return goal, nil
}

func (s *GoalStore) Toggle(ctx context.Context, id string) (model.Goal, error) {
	i := slices.IndexFunc(s.goals, func(g model.Goal) bool { return g.ID == id })
	if i < 0 {
		observe("goal", "toggle", ErrNotFound)
		return model.Goal{}, ErrNotFound
	}
	s.goals[i].Done = !s.goals[i].Done
	if err := s.Save(ctx); err != nil {
		s.goals[i].Done = !s.goals[i].Done
		observe("goal", "toggle", err)
		return model.Goal{}, err
	}
	observe("goal", "toggle", nil)
	return s.goals[i], nil
}

func (s *GoalStore) Save(ctx context.Context) error {
	goals := s.goals
	if goals == nil {
		goals = []model.Goal{}
	}
	return saveSlot(ctx, s.slots, store.KeyGoals, goals)
}
