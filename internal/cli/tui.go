package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/Makepad-fr/dayplan/internal/timeutil"
	"github.com/Makepad-fr/dayplan/internal/tui"
)

func (a *app) tuiCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "tui",
		Short: "Open the interactive planner",
		Args:  exactArgs(0, "usage: dayplan tui [--date YYYY-MM-DD]"),
		RunE: func(cmd *cobra.Command, _ []string) error {
			if err := tui.Run(cmd.Context(), a.planner, a.date, timeutil.Today(a.now())); err != nil {
				return fmt.Errorf("tui: %w", err)
			}
			return nil
		},
	}
}
