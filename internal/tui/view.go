package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/lipgloss"

	"github.com/Makepad-fr/dayplan/internal/timeutil"
)

func (m Model) View() string {
	var b strings.Builder

	b.WriteString(m.header())
	b.WriteString("\n")
	b.WriteString(m.weekStrip())
	b.WriteString("\n\n")

	switch m.pane {
	case paneGoals:
		b.WriteString(m.goalsPane())
	default:
		b.WriteString(m.tasksPane())
	}

	switch m.mode {
	case modeAddTask:
		b.WriteString("\n\n" + formBox("New task", inputViews(m.taskForm)))
	case modeAddGoal:
		b.WriteString("\n\n" + formBox("New goal", []string{m.goalInput.View()}))
	case modeSettings:
		b.WriteString("\n\n" + formBox("Settings", inputViews(m.settingsForm)))
	}

	b.WriteString("\n\n")
	switch {
	case m.err != "":
		b.WriteString(errorStyle.Render("✗ " + m.err))
	case m.status != "":
		b.WriteString(mutedStyle.Render(m.status))
	}
	b.WriteString("\n")
	b.WriteString(m.help.View(m.keys))

	return frameStyle(m.planner.Settings()).Render(b.String())
}

func (m Model) header() string {
	day := m.dayView()
	title := m.date
	if d, err := timeutil.ParseDate(m.date); err == nil {
		title = d.Format("Monday, Jan 2 2006")
	}
	return fmt.Sprintf("%s  %s  %s",
		titleStyle.Render(title),
		successStyle.Render(fmt.Sprintf("%s %d", boxChecked, day.Done)),
		pendingStyle.Render(fmt.Sprintf("%s %d", boxUnchecked, day.Pending)),
	)
}

func (m Model) weekStrip() string {
	week, err := m.planner.Week(m.date)
	if err != nil {
		return errorStyle.Render(err.Error())
	}
	boxes := make([]string, 0, len(week.Days))
	for _, d := range week.Days {
		label := fmt.Sprintf("%s\n%2d", d.Weekday, d.Day)
		if d.Tasks > 0 {
			label += fmt.Sprintf(" ·%d", d.Tasks)
		}
		st := dayBoxStyle
		if d.Active {
			st = activeDayStyle
		}
		boxes = append(boxes, st.Render(label))
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, boxes...)
}

func (m Model) tasksPane() string {
	day := m.dayView()
	if day.Empty {
		return mutedStyle.Render(day.Placeholder)
	}
	lines := make([]string, 0, len(day.Rows))
	for i, r := range day.Rows {
		box := pendingStyle.Render(boxUnchecked)
		text := r.Text
		if r.Done {
			box = successStyle.Render(boxChecked)
			text = doneStyle.Render(text)
		}
		line := fmt.Sprintf("%s %s %s  %s",
			box, accentStyle.Render(r.Range), mutedStyle.Render("("+r.Minutes+")"), text)
		if i == m.taskCursor && m.mode == modeBrowse {
			line = selectedStyle.Render("> ") + line
		} else {
			line = "  " + line
		}
		lines = append(lines, line)
	}
	return strings.Join(lines, "\n")
}

func (m Model) goalsPane() string {
	goals := m.planner.Goals()
	title := titleStyle.Render(fmt.Sprintf("Weekly goals %d/%d", goals.Done, goals.Total))
	if goals.Total == 0 {
		return title + "\n" + mutedStyle.Render("No goals yet, press a to add one")
	}
	lines := []string{title}
	for i, g := range goals.Rows {
		mark := pendingStyle.Render(goalOpen)
		text := g.Text
		if g.Done {
			mark = successStyle.Render(goalDone)
			text = doneStyle.Render(text)
		}
		prefix := "  "
		if i == m.goalCursor && m.mode == modeBrowse {
			prefix = selectedStyle.Render("> ")
		}
		lines = append(lines, prefix+mark+" "+text)
	}
	return strings.Join(lines, "\n")
}

func formBox(title string, rows []string) string {
	body := titleStyle.Render(title) + "\n" + strings.Join(rows, "\n") + "\n" +
		mutedStyle.Render("enter save · tab next field · esc cancel")
	return lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color("12")).
		Padding(0, 1).
		Render(body)
}

func inputViews(form []textinput.Model) []string {
	out := make([]string, 0, len(form))
	for _, in := range form {
		out = append(out, in.View())
	}
	return out
}
