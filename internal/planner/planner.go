// Package planner holds the task, goal and settings stores and serializes
// access to them for the adapters.
package planner

import (
	"context"
	"sync"

	"github.com/Makepad-fr/dayplan/internal/logger"
	"github.com/Makepad-fr/dayplan/internal/model"
	"github.com/Makepad-fr/dayplan/internal/store"
	"github.com/Makepad-fr/dayplan/internal/view"
)

// Planner is the single owner of planner state for one set of slots.
type Planner struct {
	mu       sync.Mutex
	tasks    *TaskStore
	goals    *GoalStore
	settings *SettingsStore
}

// Open loads all three slots.
func Open(ctx context.Context, slots store.Slots) (*Planner, error) {
	tasks, err := LoadTasks(ctx, slots)
	if err != nil {
		return nil, err
	}
	goals, err := LoadGoals(ctx, slots)
	if err != nil {
		return nil, err
	}
	settings, err := LoadSettings(ctx, slots)
	if err != nil {
		return nil, err
	}
	logger.Debug(ctx, "planner loaded",
		"tasks", len(tasks.tasks),
		"goals", len(goals.goals),
	)
	return &Planner{tasks: tasks, goals: goals, settings: settings}, nil
}

// -------------- tasks ----------------

func (p *Planner) AddTask(ctx context.Context, in NewTask) (model.Task, error) {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.tasks.Add(ctx, in)
}

func (p *Planner) ToggleTask(ctx context.Context, id string) (model.Task, error) {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.tasks.Toggle(ctx, id)
}

func (p *Planner) DeleteTask(ctx context.Context, id string) error {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.tasks.Delete(ctx, id)
}

// Task looks up one task by id.
func (p *Planner) Task(id string) (model.Task, error) {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.tasks.Get(id)
}

func (p *Planner) Tasks() []model.Task {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.tasks.All()
}

// Day renders the task list of date.
func (p *Planner) Day(date string) view.DayView {
	p.mu.Lock()
	defer p.mu.Unlock()
	return view.RenderDay(p.tasks.tasks, date)
}

// Week renders the strip around date with per-day task counts.
func (p *Planner) Week(date string) (view.WeekView, error) {
	p.mu.Lock()
	defer p.mu.Unlock()
	return view.RenderWeek(date, p.tasks.tasks)
}

// -------------- goals ----------------

func (p *Planner) AddGoal(ctx context.Context, text string) (model.Goal, error) {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.goals.Add(ctx, text)
}

func (p *Planner) ToggleGoal(ctx context.Context, id string) (model.Goal, error) {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.goals.Toggle(ctx, id)
}

func (p *Planner) Goals() view.GoalsView {
	p.mu.Lock()
	defer p.mu.Unlock()
	return view.RenderGoals(p.goals.goals)
}

// -------------- settings ----------------

func (p *Planner) Settings() model.Settings {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.settings.Current()
}

func (p *Planner) UpdateSettings(ctx context.Context, s model.Settings) (model.Settings, error) {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.settings.Update(ctx, s)
}

// PatchSettings recomputes the full settings object from the current
// values plus the changed controls.
func (p *Planner) PatchSettings(ctx context.Context, patch SettingsPatch) (model.Settings, error) {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.settings.Update(ctx, patch.Apply(p.settings.Current()))
}
