package tui

import (
	"context"
	"errors"
	"fmt"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/Makepad-fr/dayplan/internal/logger"
	"github.com/Makepad-fr/dayplan/internal/model"
	"github.com/Makepad-fr/dayplan/internal/planner"
	"github.com/Makepad-fr/dayplan/internal/timeutil"
	"github.com/Makepad-fr/dayplan/internal/view"
)

type pane int

const (
	paneTasks pane = iota
	paneGoals
)

type mode int

const (
	modeBrowse mode = iota
	modeAddTask
	modeAddGoal
	modeSettings
)

// Task form fields.
const (
	fieldText = iota
	fieldStart
	fieldEnd
)

// Settings form fields.
const (
	fieldBg = iota
	fieldColor
	fieldSize
	fieldFont
)

type Model struct {
	planner *planner.Planner
	keys    keyMap
	help    help.Model

	date  string
	today string
	pane  pane
	mode  mode

	taskCursor int
	goalCursor int

	taskForm     []textinput.Model
	goalInput    textinput.Model
	settingsForm []textinput.Model
	focus        int

	// single-level undo of the last delete
	undo *model.Task

	status string
	err    string

	width, height int
}

// New builds the model for date (YYYY-MM-DD).
func New(p *planner.Planner, date, today string) Model {
	m := Model{
		planner: p,
		keys:    defaultKeys(),
		help:    help.New(),
		date:    date,
		today:   today,
		width:   80,
		height:  24,
	}

	m.taskForm = []textinput.Model{
		newInput("What needs doing?", 200),
		newInput("HH:MM", 5),
		newInput("HH:MM", 5),
	}
	m.taskForm[fieldText].Prompt = "task  > "
	m.taskForm[fieldStart].Prompt = "start > "
	m.taskForm[fieldEnd].Prompt = "end   > "

	m.goalInput = newInput("New weekly goal...", 200)
	m.goalInput.Prompt = "goal > "

	m.settingsForm = []textinput.Model{
		newInput("#1e1e2e or 236", 32),
		newInput("#cdd6f4 or 252", 32),
		newInput("16", 3),
		newInput("monospace", 64),
	}
	m.settingsForm[fieldBg].Prompt = "background > "
	m.settingsForm[fieldColor].Prompt = "color      > "
	m.settingsForm[fieldSize].Prompt = "size (px)  > "
	m.settingsForm[fieldFont].Prompt = "font       > "
	return m
}

func newInput(placeholder string, limit int) textinput.Model {
	ti := textinput.New()
	ti.Placeholder = placeholder
	ti.CharLimit = limit
	return ti
}

// Date is the currently selected day.
func (m Model) Date() string { return m.date }

func (m Model) Init() tea.Cmd { return nil }

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width, m.height = msg.Width, msg.Height
		m.help.Width = msg.Width
		return m, nil
	case taskAddedMsg:
		return m.taskAdded(msg.err)
	case goalAddedMsg:
		switch {
		case errors.Is(msg.err, planner.ErrEmptyText):
			return m, nil
		case msg.err != nil:
			m.fail("add goal", msg.err)
			return m, nil
		}
		m.goalInput.SetValue("")
		m.status = "goal added"
		return m.closeForms(), nil
	case settingsSavedMsg:
		if msg.err != nil {
			m.fail("settings", msg.err)
			return m, nil
		}
		m.status = "settings saved"
		return m.closeForms(), nil
	case toggledMsg:
		if msg.err != nil {
			m.fail(msg.op, msg.err)
		}
		return m, nil
	case deletedMsg:
		if msg.err != nil {
			m.fail("delete", msg.err)
			return m, nil
		}
		m.undo = &msg.task
		m.status = "deleted, u to undo"
		m.taskCursor = clamp(m.taskCursor, len(m.planner.Day(m.date).Rows))
		return m, nil
	case restoredMsg:
		if msg.err != nil {
			m.undo = &msg.task
			m.fail("undo", msg.err)
			return m, nil
		}
		m.status = "restored"
		return m, nil
	case tea.KeyMsg:
		switch m.mode {
		case modeAddTask:
			return m.updateTaskForm(msg)
		case modeAddGoal:
			return m.updateGoalInput(msg)
		case modeSettings:
			return m.updateSettingsForm(msg)
		}
		return m.updateBrowse(msg)
	}
	return m, nil
}

func (m Model) updateBrowse(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	m.err = ""
	switch {
	case key.Matches(msg, m.keys.Quit):
		return m, tea.Quit
	case key.Matches(msg, m.keys.PrevDay):
		m.shiftDate(-1)
	case key.Matches(msg, m.keys.NextDay):
		m.shiftDate(1)
	case key.Matches(msg, m.keys.PrevWeek):
		m.shiftDate(-7)
	case key.Matches(msg, m.keys.NextWeek):
		m.shiftDate(7)
	case key.Matches(msg, m.keys.Today):
		m.date, m.taskCursor = m.today, 0
	case key.Matches(msg, m.keys.Up):
		m.moveCursor(-1)
	case key.Matches(msg, m.keys.Down):
		m.moveCursor(1)
	case key.Matches(msg, m.keys.SwitchPane):
		if m.pane == paneTasks {
			m.pane = paneGoals
		} else {
			m.pane = paneTasks
		}
	case key.Matches(msg, m.keys.Toggle):
		return m, m.toggleSelected()
	case key.Matches(msg, m.keys.Delete):
		return m, m.deleteSelected()
	case key.Matches(msg, m.keys.Undo):
		return m.undoDelete()
	case key.Matches(msg, m.keys.Add):
		if m.pane == paneGoals {
			m.mode = modeAddGoal
			m.goalInput.SetValue("")
			return m, m.goalInput.Focus()
		}
		m.mode = modeAddTask
		return m, m.focusForm(m.taskForm, fieldText)
	case key.Matches(msg, m.keys.Settings):
		m.mode = modeSettings
		s := m.planner.Settings()
		for i, v := range []string{s.Bg, s.Color, s.Size, s.Font} {
			m.settingsForm[i].SetValue(v)
			m.settingsForm[i].CursorEnd()
		}
		return m, m.focusForm(m.settingsForm, fieldBg)
	}
	return m, nil
}

// -------------- browse actions ----------------

func (m *Model) shiftDate(days int) {
	next, err := timeutil.AddDays(m.date, days)
	if err != nil {
		m.err = err.Error()
		return
	}
	m.date, m.taskCursor = next, 0
}

func (m *Model) moveCursor(delta int) {
	if m.pane == paneGoals {
		m.goalCursor = clamp(m.goalCursor+delta, m.planner.Goals().Total)
		return
	}
	m.taskCursor = clamp(m.taskCursor+delta, len(m.planner.Day(m.date).Rows))
}

func clamp(i, n int) int {
	if i >= n {
		i = n - 1
	}
	if i < 0 {
		i = 0
	}
	return i
}

func (m Model) toggleSelected() tea.Cmd {
	if m.pane == paneGoals {
		id, ok := m.planner.Goals().IDAt(m.goalCursor + 1)
		if !ok {
			return nil
		}
		return toggleGoalCmd(m.planner, id)
	}
	id, ok := m.planner.Day(m.date).IDAt(m.taskCursor + 1)
	if !ok {
		return nil
	}
	return toggleTaskCmd(m.planner, id)
}

func (m Model) deleteSelected() tea.Cmd {
	if m.pane != paneTasks {
		return nil
	}
	id, ok := m.planner.Day(m.date).IDAt(m.taskCursor + 1)
	if !ok {
		return nil
	}
	return deleteTaskCmd(m.planner, id)
}

// undoDelete re-adds the last deleted task under a new id. Only one delete
// is remembered, so a second undo is a no-op.
func (m Model) undoDelete() (tea.Model, tea.Cmd) {
	if m.undo == nil {
		return m, nil
	}
	t := *m.undo
	m.undo = nil
	return m, restoreTaskCmd(m.planner, t)
}

func (m *Model) fail(op string, err error) {
	logger.Error(context.Background(), err, "tui: "+op)
	m.err = fmt.Sprintf("%s: %v", op, err)
}

// -------------- forms ----------------

func (m *Model) focusForm(form []textinput.Model, field int) tea.Cmd {
	m.focus = field
	var cmd tea.Cmd
	for i := range form {
		if i == field {
			cmd = form[i].Focus()
		} else {
			form[i].Blur()
		}
	}
	return cmd
}

func (m Model) closeForms() Model {
	for i := range m.taskForm {
		m.taskForm[i].Blur()
	}
	for i := range m.settingsForm {
		m.settingsForm[i].Blur()
	}
	m.goalInput.Blur()
	m.mode = modeBrowse
	return m
}

func (m Model) updateTaskForm(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "esc":
		return m.closeForms(), nil
	case "tab", "down":
		return m, m.focusForm(m.taskForm, (m.focus+1)%len(m.taskForm))
	case "shift+tab", "up":
		return m, m.focusForm(m.taskForm, (m.focus+len(m.taskForm)-1)%len(m.taskForm))
	case "enter":
		return m, addTaskCmd(m.planner, planner.NewTask{
			Text:      m.taskForm[fieldText].Value(),
			Date:      m.date,
			StartTime: m.taskForm[fieldStart].Value(),
			EndTime:   m.taskForm[fieldEnd].Value(),
		})
	}
	var cmd tea.Cmd
	m.taskForm[m.focus], cmd = m.taskForm[m.focus].Update(msg)
	return m, cmd
}

// taskAdded keeps the form open either way: cleared after a save, filled in
// after a rejected entry.
func (m Model) taskAdded(err error) (tea.Model, tea.Cmd) {
	switch {
	case errors.Is(err, planner.ErrEmptyText):
		m.status = "type a task first"
		return m, nil
	case errors.Is(err, planner.ErrBadTime):
		m.status = "times must be HH:MM (24h)"
		return m, nil
	case err != nil:
		m.fail("add", err)
		return m, nil
	}
	// date is kept for repeated entry on the same day
	for i := range m.taskForm {
		m.taskForm[i].SetValue("")
	}
	m.status = "added"
	return m, m.focusForm(m.taskForm, fieldText)
}

func (m Model) updateGoalInput(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "esc":
		return m.closeForms(), nil
	case "enter":
		return m, addGoalCmd(m.planner, m.goalInput.Value())
	}
	var cmd tea.Cmd
	m.goalInput, cmd = m.goalInput.Update(msg)
	return m, cmd
}

// updateSettingsForm saves the whole object built from all four fields.
func (m Model) updateSettingsForm(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "esc":
		return m.closeForms(), nil
	case "tab", "down":
		return m, m.focusForm(m.settingsForm, (m.focus+1)%len(m.settingsForm))
	case "shift+tab", "up":
		return m, m.focusForm(m.settingsForm, (m.focus+len(m.settingsForm)-1)%len(m.settingsForm))
	case "enter":
		s := model.Settings{
			Bg:    m.settingsForm[fieldBg].Value(),
			Color: m.settingsForm[fieldColor].Value(),
			Size:  m.settingsForm[fieldSize].Value(),
			Font:  m.settingsForm[fieldFont].Value(),
		}
		return m, saveSettingsCmd(m.planner, s)
	}
	var cmd tea.Cmd
	m.settingsForm[m.focus], cmd = m.settingsForm[m.focus].Update(msg)
	return m, cmd
}

// Run starts the interactive planner on date. Cancelling ctx ends the program.
func Run(ctx context.Context, p *planner.Planner, date, today string) error {
	prog := tea.NewProgram(New(p, date, today), tea.WithAltScreen(), tea.WithContext(ctx))
	_, err := prog.Run()
	return err
}

func (m Model) dayView() view.DayView { return m.planner.Day(m.date) }
