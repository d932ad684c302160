package cli

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/Makepad-fr/dayplan/internal/ui"
	"github.com/Makepad-fr/dayplan/internal/view"
)

func (a *app) weekCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "week",
		Short: "Show the Sunday-to-Saturday strip around the selected day",
		Args:  exactArgs(0, "usage: dayplan week [--date YYYY-MM-DD]"),
		RunE: func(cmd *cobra.Command, _ []string) error {
			w, err := a.planner.Week(a.date)
			if err != nil {
				return usagef("week: %v", err)
			}
			ui.Panel(weekLines(w))
			return nil
		},
	}
}

// weekLines draws one box per day; the selected day is bracketed.
func weekLines(w view.WeekView) []string {
	t := ui.Current()
	var names, days, counts []string
	for _, d := range w.Days {
		name := fmt.Sprintf(" %s ", d.Weekday)
		num := fmt.Sprintf(" %3d ", d.Day)
		count := "     "
		if d.Tasks > 0 {
			count = fmt.Sprintf(" %2d%s ", d.Tasks, t.SymUnchecked)
		}
		if d.Active {
			names = append(names, ui.C(t.Active, "["+strings.TrimSpace(name)+"]"))
			days = append(days, ui.C(t.Active, "["+strings.TrimSpace(num)+"]"))
		} else {
			names = append(names, name)
			days = append(days, ui.C(t.Muted, num))
		}
		counts = append(counts, ui.C(t.Pending, count))
	}
	return []string{
		ui.C(t.Title, "Week of "+w.Start),
		"",
		strings.Join(names, ""),
		strings.Join(days, ""),
		strings.Join(counts, ""),
	}
}
