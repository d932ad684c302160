package view

import (
	"time"

	"github.com/Makepad-fr/dayplan/internal/model"
	"github.com/Makepad-fr/dayplan/internal/timeutil"
)

type DayBox struct {
	Date    string `json:"date"`
	Weekday string `json:"weekday"` // Sun, Mon, ...
	Day     int    `json:"day"`     // day of month
	Active  bool   `json:"active"`
	Tasks   int    `json:"tasks"`
}

// WeekView is the Sunday-to-Saturday strip around a selected date.
type WeekView struct {
	Selected string   `json:"selected"`
	Start    string   `json:"start"`
	Days     []DayBox `json:"days"`
}

// WeekStart returns the Sunday on or before t.
func WeekStart(t time.Time) time.Time {
	return t.AddDate(0, 0, -int(t.Weekday()))
}

// RenderWeek builds the strip for selected (YYYY-MM-DD). tasks only feed
// the per-day counts and may be nil.
func RenderWeek(selected string, tasks []model.Task) (WeekView, error) {
	sel, err := timeutil.ParseDate(selected)
	if err != nil {
		return WeekView{}, err
	}
	counts := make(map[string]int)
	for _, t := range tasks {
		counts[t.Date]++
	}

	sunday := WeekStart(sel)
	v := WeekView{
		Selected: timeutil.FormatDate(sel),
		Start:    timeutil.FormatDate(sunday),
		Days:     make([]DayBox, 0, 7),
	}
	for i := 0; i < 7; i++ {
		d := sunday.AddDate(0, 0, i)
		date := timeutil.FormatDate(d)
		v.Days = append(v.Days, DayBox{
			Date:    date,
			Weekday: d.Weekday().String()[:3],
			Day:     d.Day(),
			Active:  date == v.Selected,
			Tasks:   counts[date],
		})
	}
	return v, nil
}

// ActiveIndex is the position of the selected day in the strip.
func (w WeekView) ActiveIndex() int {
	for i, d := range w.Days {
		if d.Active {
			return i
		}
	}
	return -1
}
