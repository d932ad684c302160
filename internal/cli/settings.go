package cli

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/Makepad-fr/dayplan/internal/model"
	"github.com/Makepad-fr/dayplan/internal/planner"
	"github.com/Makepad-fr/dayplan/internal/ui"
)

func (a *app) settingsCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "settings",
		Short: "Show or change display preferences",
		Args:  exactArgs(0, "usage: dayplan settings <show|set|reset>"),
		RunE: func(cmd *cobra.Command, _ []string) error {
			ui.Panel(settingsLines(a.planner.Settings()))
			return nil
		},
	}

	show := &cobra.Command{
		Use:   "show",
		Short: "Print the saved preferences",
		Args:  exactArgs(0, "usage: dayplan settings show"),
		RunE: func(cmd *cobra.Command, _ []string) error {
			ui.Panel(settingsLines(a.planner.Settings()))
			return nil
		},
	}

	var bg, color, size, font string
	set := &cobra.Command{
		Use:   "set",
		Short: "Change one or more preferences; the others keep their value",
		Args:  exactArgs(0, "usage: dayplan settings set [--bg C] [--color C] [--size N] [--font F]"),
		RunE: func(cmd *cobra.Command, _ []string) error {
			var patch planner.SettingsPatch
			f := cmd.Flags()
			if f.Changed("bg") {
				patch.Bg = &bg
			}
			if f.Changed("color") {
				patch.Color = &color
			}
			if f.Changed("size") {
				if size != "" {
					if n, err := strconv.Atoi(size); err != nil || n <= 0 {
						return usagef("--size: want a positive number, got %q", size)
					}
				}
				patch.Size = &size
			}
			if f.Changed("font") {
				patch.Font = &font
			}
			if patch == (planner.SettingsPatch{}) {
				return usagef("settings set: nothing to change")
			}
			s, err := a.planner.PatchSettings(cmd.Context(), patch)
			if err != nil {
				return fmt.Errorf("settings: %w", err)
			}
			ui.OK("settings saved")
			ui.Panel(settingsLines(s))
			return nil
		},
	}
	set.Flags().StringVar(&bg, "bg", "", "background color (CSS color or terminal color)")
	set.Flags().StringVar(&color, "color", "", "font color")
	set.Flags().StringVar(&size, "size", "", "font size in px")
	set.Flags().StringVar(&font, "font", "", "font family")

	reset := &cobra.Command{
		Use:   "reset",
		Short: "Clear every preference",
		Args:  exactArgs(0, "usage: dayplan settings reset"),
		RunE: func(cmd *cobra.Command, _ []string) error {
			if _, err := a.planner.UpdateSettings(cmd.Context(), model.Settings{}); err != nil {
				return fmt.Errorf("settings: %w", err)
			}
			ui.OK("settings reset")
			return nil
		},
	}

	cmd.AddCommand(show, set, reset)
	return cmd
}

func settingsLines(s model.Settings) []string {
	t := ui.Current()
	val := func(v, suffix string) string {
		if v == "" {
			return ui.C(t.Muted, "(default)")
		}
		return v + suffix
	}
	return []string{
		ui.C(t.Title, "Settings"),
		"",
		"background  " + val(s.Bg, ""),
		"color       " + val(s.Color, ""),
		"size        " + val(s.Size, "px"),
		"font        " + val(s.Font, ""),
	}
}
