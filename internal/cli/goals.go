package cli

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/Makepad-fr/dayplan/internal/planner"
	"github.com/Makepad-fr/dayplan/internal/ui"
	"github.com/Makepad-fr/dayplan/internal/view"
)

func (a *app) goalCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "goal",
		Short: "Track weekly goals",
		Args:  exactArgs(0, "usage: dayplan goal <add|ls|done>"),
		RunE: func(cmd *cobra.Command, _ []string) error {
			return a.printGoals()
		},
	}

	add := &cobra.Command{
		Use:   "add <text...>",
		Short: "Add a weekly goal",
		Args:  minArgs(1, "usage: dayplan goal add <text...>"),
		RunE: func(cmd *cobra.Command, args []string) error {
			_, err := a.planner.AddGoal(cmd.Context(), strings.Join(args, " "))
			if errors.Is(err, planner.ErrEmptyText) {
				return usagef("goal add: empty text")
			}
			if err != nil {
				return fmt.Errorf("goal add: %w", err)
			}
			ui.OK("goal added")
			return nil
		},
	}

	ls := &cobra.Command{
		Use:   "ls",
		Short: "List weekly goals",
		Args:  exactArgs(0, "usage: dayplan goal ls"),
		RunE: func(cmd *cobra.Command, _ []string) error {
			return a.printGoals()
		},
	}

	done := &cobra.Command{
		Use:   "done <n>",
		Short: "Toggle goal n",
		Args:  exactArgs(1, "usage: dayplan goal done <n>"),
		RunE: func(cmd *cobra.Command, args []string) error {
			n, err := strconv.Atoi(args[0])
			if err != nil {
				return usagef("goal done: not a number: %s", args[0])
			}
			goals := a.planner.Goals()
			id, ok := goals.IDAt(n)
			if !ok {
				return usageError{
					msg:  fmt.Sprintf("goal out of range: have %d, got %d", goals.Total, n),
					hint: "Hint: run `dayplan goal ls` to see valid goals",
				}
			}
			if _, err := a.planner.ToggleGoal(cmd.Context(), id); err != nil {
				return fmt.Errorf("goal done: %w", err)
			}
			ui.OK("toggled")
			return nil
		},
	}

	cmd.AddCommand(add, ls, done)
	return cmd
}

func (a *app) printGoals() error {
	ui.Panel(goalLines(a.planner.Goals()))
	return nil
}

func goalLines(g view.GoalsView) []string {
	t := ui.Current()
	lines := []string{
		fmt.Sprintf("%s  %s %d/%d", ui.C(t.Title, "Weekly goals"), ui.C(t.Success, t.SymDone), g.Done, g.Total),
		ui.C(t.Muted, ui.ProgressBar(g.Done, g.Total, 28)),
		"",
	}
	if len(g.Rows) == 0 {
		lines = append(lines, ui.C(t.Muted, "no goals yet"))
	}
	for _, r := range g.Rows {
		circle, color := t.GoalOpen, t.Muted
		text := ui.Truncate(r.Text, 60)
		if r.Done {
			circle, color = t.GoalDone, t.Success
			text = ui.C(t.Done, text)
		}
		lines = append(lines, fmt.Sprintf("%s %s %s", ui.C(t.Muted, fmt.Sprintf("%2d.", r.Index)), ui.C(color, circle), text))
	}
	return lines
}
