package cli

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/Makepad-fr/dayplan/internal/planner"
	"github.com/Makepad-fr/dayplan/internal/timeutil"
	"github.com/Makepad-fr/dayplan/internal/ui"
	"github.com/Makepad-fr/dayplan/internal/view"
)

func (a *app) addCommand() *cobra.Command {
	var start, end string
	cmd := &cobra.Command{
		Use:   "add <text...>",
		Short: "Add a task to the selected day",
		Args:  minArgs(1, "usage: dayplan add <text...> [--start HH:MM] [--end HH:MM]"),
		RunE: func(cmd *cobra.Command, args []string) error {
			task, err := a.planner.AddTask(cmd.Context(), planner.NewTask{
				Text:      strings.Join(args, " "),
				Date:      a.date,
				StartTime: start,
				EndTime:   end,
			})
			switch {
			case errors.Is(err, planner.ErrEmptyText):
				return usagef("add: empty text")
			case errors.Is(err, planner.ErrBadTime):
				return usagef("add: --start/--end: %v", err)
			}
			if err != nil {
				return fmt.Errorf("add: %w", err)
			}
			ui.OK(fmt.Sprintf("added for %s (%s)", task.Date, task.Duration))
			return nil
		},
	}
	cmd.Flags().StringVar(&start, "start", "", "start time HH:MM")
	cmd.Flags().StringVar(&end, "end", "", "end time HH:MM")
	return cmd
}

func (a *app) listCommand() *cobra.Command {
	var group bool
	cmd := &cobra.Command{
		Use:     "ls",
		Aliases: []string{"list"},
		Short:   "List the tasks of the selected day",
		Args:    exactArgs(0, "usage: dayplan ls [--date YYYY-MM-DD] [--group]"),
		RunE: func(cmd *cobra.Command, _ []string) error {
			ui.Panel(dayPanel(a.planner.Day(a.date), group))
			return nil
		},
	}
	cmd.Flags().BoolVar(&group, "group", false, "group output by pending/done")
	return cmd
}

func (a *app) doneCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "done <n>",
		Short: "Toggle done for row n of the selected day",
		Args:  exactArgs(1, "usage: dayplan done <n>"),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := a.rowID(args[0], "done")
			if err != nil {
				return err
			}
			task, err := a.planner.ToggleTask(cmd.Context(), id)
			if err != nil {
				return fmt.Errorf("done: %w", err)
			}
			if task.Done {
				ui.OK("marked done")
			} else {
				ui.OK("marked pending")
			}
			return nil
		},
	}
}

func (a *app) removeCommand() *cobra.Command {
	return &cobra.Command{
		Use:     "rm <n>",
		Aliases: []string{"delete"},
		Short:   "Delete row n of the selected day",
		Args:    exactArgs(1, "usage: dayplan rm <n>"),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := a.rowID(args[0], "rm")
			if err != nil {
				return err
			}
			if err := a.planner.DeleteTask(cmd.Context(), id); err != nil {
				return fmt.Errorf("rm: %w", err)
			}
			ui.OK("removed")
			return nil
		},
	}
}

// rowID maps a 1-based row of `dayplan ls` to the task id.
func (a *app) rowID(arg, verb string) (string, error) {
	n, err := strconv.Atoi(arg)
	if err != nil {
		return "", usagef("%s: not a number: %s", verb, arg)
	}
	day := a.planner.Day(a.date)
	id, ok := day.IDAt(n)
	if !ok {
		return "", usageError{
			msg:  fmt.Sprintf("row out of range: have %d, got %d", len(day.Rows), n),
			hint: "Hint: run `dayplan ls` to see valid rows",
		}
	}
	return id, nil
}

// -------------- rendering helpers --------------

func dayPanel(day view.DayView, group bool) []string {
	t := ui.Current()
	title := day.Date
	if d, err := timeutil.ParseDate(day.Date); err == nil {
		title = d.Format("Monday, Jan 2 2006")
	}
	header := fmt.Sprintf("%s  %s %d  %s %d  %s %d",
		ui.C(t.Title, title),
		ui.C(t.Success, t.SymDone), day.Done,
		ui.C(t.Pending, t.SymUnchecked), day.Pending,
		ui.C(t.Accent, "Total"), len(day.Rows),
	)

	lines := []string{header, ui.C(t.Muted, ui.ProgressBar(day.Done, day.Done+day.Pending, 28)), ""}
	switch {
	case day.Empty:
		lines = append(lines, ui.C(t.Muted, day.Placeholder))
	case group:
		lines = append(lines, groupLines(day.Rows)...)
	default:
		lines = append(lines, taskLines(day.Rows)...)
	}
	lines = append(lines, "", ui.C(t.Muted, "Tip: add with `dayplan add \"Buy milk\" --start 09:00`"))
	return lines
}

func taskLines(rows []view.TaskRow) []string {
	t := ui.Current()
	out := make([]string, 0, len(rows))
	for _, r := range rows {
		idx := fmt.Sprintf("%2d.", r.Index)
		box, color := t.BoxUnchecked, t.Muted
		text := ui.Truncate(r.Text, 60)
		if r.Done {
			box, color = t.BoxChecked, t.Success
			text = ui.C(t.Done, text)
		}
		out = append(out, fmt.Sprintf("%s %s %s %s  %s",
			ui.C(t.Muted, idx), ui.C(color, box),
			ui.C(t.Accent, r.Range), ui.C(t.Muted, "("+r.Minutes+")"), text))
	}
	return out
}

func groupLines(rows []view.TaskRow) []string {
	var pend, done []view.TaskRow
	for _, r := range rows {
		if r.Done {
			done = append(done, r)
		} else {
			pend = append(pend, r)
		}
	}
	t := ui.Current()
	section := func(name string, rs []view.TaskRow) []string {
		lines := []string{ui.C(t.Accent, name)}
		if len(rs) == 0 {
			return append(lines, ui.C(t.Muted, "(none)"))
		}
		return append(lines, taskLines(rs)...)
	}
	lines := section("Pending", pend)
	lines = append(lines, "")
	return append(lines, section("Done", done)...)
}

// -------------- argument checks --------------

func exactArgs(n int, usage string) cobra.PositionalArgs {
	return func(_ *cobra.Command, args []string) error {
		if len(args) != n {
			return usageError{msg: usage}
		}
		return nil
	}
}

func minArgs(n int, usage string) cobra.PositionalArgs {
	return func(_ *cobra.Command, args []string) error {
		if len(args) < n {
			return usageError{msg: usage}
		}
		return nil
	}
}
