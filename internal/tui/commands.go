package tui

import (
	"context"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/Makepad-fr/dayplan/internal/model"
	"github.com/Makepad-fr/dayplan/internal/planner"
)

// Planner writes run as commands and report back through these messages.
// The program context only stops the event loop; a write that has started
// is allowed to finish.

type taskAddedMsg struct{ err error }

type goalAddedMsg struct{ err error }

type settingsSavedMsg struct{ err error }

type toggledMsg struct {
	op  string
	err error
}

type deletedMsg struct {
	task model.Task
	err  error
}

type restoredMsg struct {
	task model.Task
	err  error
}

func addTaskCmd(p *planner.Planner, in planner.NewTask) tea.Cmd {
	return func() tea.Msg {
		_, err := p.AddTask(context.Background(), in)
		return taskAddedMsg{err: err}
	}
}

func addGoalCmd(p *planner.Planner, text string) tea.Cmd {
	return func() tea.Msg {
		_, err := p.AddGoal(context.Background(), text)
		return goalAddedMsg{err: err}
	}
}

func saveSettingsCmd(p *planner.Planner, s model.Settings) tea.Cmd {
	return func() tea.Msg {
		_, err := p.UpdateSettings(context.Background(), s)
		return settingsSavedMsg{err: err}
	}
}

func toggleTaskCmd(p *planner.Planner, id string) tea.Cmd {
	return func() tea.Msg {
		_, err := p.ToggleTask(context.Background(), id)
		return toggledMsg{op: "toggle", err: err}
	}
}

func toggleGoalCmd(p *planner.Planner, id string) tea.Cmd {
	return func() tea.Msg {
		_, err := p.ToggleGoal(context.Background(), id)
		return toggledMsg{op: "toggle goal", err: err}
	}
}

// deleteTaskCmd snapshots the task before removing it so it can be undone.
func deleteTaskCmd(p *planner.Planner, id string) tea.Cmd {
	return func() tea.Msg {
		t, err := p.Task(id)
		if err != nil {
			return deletedMsg{err: err}
		}
		return deletedMsg{task: t, err: p.DeleteTask(context.Background(), id)}
	}
}

// restoreTaskCmd re-adds t under a new id, done state included.
func restoreTaskCmd(p *planner.Planner, t model.Task) tea.Cmd {
	return func() tea.Msg {
		ctx := context.Background()
		restored, err := p.AddTask(ctx, planner.NewTask{
			Text: t.Text, Date: t.Date, StartTime: t.StartTime, EndTime: t.EndTime,
		})
		if err == nil && t.Done {
			_, err = p.ToggleTask(ctx, restored.ID)
		}
		return restoredMsg{task: t, err: err}
	}
}
