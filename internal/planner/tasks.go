package planner

import (
	"context"
	"fmt"
	"slices"
	"strings"

	"github.com/Makepad-fr/dayplan/internal/model"
	"github.com/Makepad-fr/dayplan/internal/store"
	"github.com/Makepad-fr/dayplan/internal/timeutil"
	"github.com/Makepad-fr/dayplan/internal/view"
)

// NewTask is the user input for TaskStore.Add. Empty times are allowed.
type NewTask struct {
	Text      string `json:"text"`
	Date      string `json:"date"`
	StartTime string `json:"startTime"`
	EndTime   string `json:"endTime"`
}

// TaskStore owns the ordered task list and mirrors it into the tasks slot
// after every mutation.
type TaskStore struct {
	slots store.Slots
	tasks []model.Task
}

// LoadTasks reads the tasks slot. A missing slot is an empty list.
// Records without an id get one; it is persisted with the next mutation.
func LoadTasks(ctx context.Context, slots store.Slots) (*TaskStore, error) {
	var tasks []model.Task
	if err := loadSlot(ctx, slots, store.KeyTasks, &tasks); err != nil {
		return nil, err
	}
	for i := range tasks {
		if tasks[i].ID == "" {
			tasks[i].ID = newID()
		}
	}
	return &TaskStore{slots: slots, tasks: tasks}, nil
}

// All returns a copy of the backing list in insertion order.
func (s *TaskStore) All() []model.Task {
	return slices.Clone(s.tasks)
}

// Get returns the task with id.
func (s *TaskStore) Get(id string) (model.Task, error) {
	i := s.indexOf(id)
	if i < 0 {
		return model.Task{}, ErrNotFound
	}
	return s.tasks[i], nil
}

// ForDate returns the tasks of one day ordered by start time string.
func (s *TaskStore) ForDate(date string) []model.Task {
	return view.ForDate(s.tasks, date)
}

// Add appends a task. Empty (trimmed) text or date, or a time that is not
// "HH:MM", leaves the list untouched.
func (s *TaskStore) Add(ctx context.Context, in NewTask) (model.Task, error) {
	text := strings.TrimSpace(in.Text)
	date := strings.TrimSpace(in.Date)
	if text == "" {
		observe("task", "add", ErrEmptyText)
		return model.Task{}, ErrEmptyText
	}
	if date == "" {
		observe("task", "add", ErrEmptyDate)
		return model.Task{}, ErrEmptyDate
	}

	for _, v := range []string{in.StartTime, in.EndTime} {
		if timeutil.IsMissing(v) {
			continue
		}
		if _, err := timeutil.ToMinutes(v); err != nil {
			observe("task", "add", ErrBadTime)
			return model.Task{}, fmt.Errorf("%w, got %q", ErrBadTime, strings.TrimSpace(v))
		}
	}

	start := timeutil.NormalizeTime(in.StartTime)
	end := timeutil.NormalizeTime(in.EndTime)
	task := model.Task{
		ID:        newID(),
		Text:      text,
		Date:      date,
		StartTime: start,
		EndTime:   end,
		Duration:  timeutil.CalculateDuration(start, end),
	}

	prev := s.tasks
	s.tasks = append(slices.Clone(s.tasks), task)
	if err := s.Save(ctx); err != nil {
		s.tasks = prev
		observe("task", "add", err)
		return model.Task{}, err
	}
	observe("task", "add", nil)
	return task, nil
}

// Toggle flips done for the task with id.
func (s *TaskStore) Toggle(ctx context.Context, id string) (model.Task, error) {
	i := s.indexOf(id)
	if i < 0 {
		observe("task", "toggle", ErrNotFound)
		return model.Task{}, ErrNotFound
	}
	s.tasks[i].Done = !s.tasks[i].Done
	if err := s.Save(ctx); err != nil {
		s.tasks[i].Done = !s.tasks[i].Done
		observe("task", "toggle", err)
		return model.Task{}, err
	}
	observe("task", "toggle", nil)
	return s.tasks[i], nil
}

// Delete removes the task with id.
func (s *TaskStore) Delete(ctx context.Context, id string) error {
	i := s.indexOf(id)
	if i < 0 {
		observe("task", "delete", ErrNotFound)
		return ErrNotFound
	}
	prev := s.tasks
	s.tasks = slices.Delete(slices.Clone(s.tasks), i, i+1)
	if err := s.Save(ctx); err != nil {
		s.tasks = prev
		observe("task", "delete", err)
		return err
	}
	observe("task", "delete", nil)
	return nil
}

// Save rewrites the tasks slot with the full list.
func (s *TaskStore) Save(ctx context.Context) error {
	tasks := s.tasks
	if tasks == nil {
		tasks = []model.Task{}
	}
	return saveSlot(ctx, s.slots, store.KeyTasks, tasks)
}

func (s *TaskStore) indexOf(id string) int {
	return slices.IndexFunc(s.tasks, func(t model.Task) bool { return t.ID == id })
}
