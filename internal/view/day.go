// Package view turns planner state into adapter-neutral view descriptions.
// Nothing here touches storage or a terminal.
package view

import (
	"sort"

	"github.com/Makepad-fr/dayplan/internal/model"
	"github.com/Makepad-fr/dayplan/internal/timeutil"
)

// EmptyDay is shown when a day has no tasks.
const EmptyDay = "No tasks for this day"

type TaskRow struct {
	ID       string `json:"id"`
	Index    int    `json:"index"` // 1-based display position
	Start    string `json:"start"` // 12-hour
	End      string `json:"end"`   // 12-hour
	Range    string `json:"range"`
	Minutes  string `json:"minutes"`
	Duration string `json:"duration"`
	Text     string `json:"text"`
	Done     bool   `json:"done"`
}

type DayView struct {
	Date        string    `json:"date"`
	Rows        []TaskRow `json:"rows"`
	Empty       bool      `json:"empty"`
	Placeholder string    `json:"placeholder,omitempty"`
	Done        int       `json:"done"`
	Pending     int       `json:"pending"`
}

// ForDate filters tasks to date and sorts them ascending by StartTime using
// plain string comparison. An untimed task ("—") collates before any
// "HH:MM". Ties keep insertion order.
func ForDate(tasks []model.Task, date string) []model.Task {
	var day []model.Task
	for _, t := range tasks {
		if t.Date == date {
			day = append(day, t)
		}
	}
	sort.SliceStable(day, func(i, j int) bool {
		a, b := day[i].StartTime, day[j].StartTime
		if ma, mb := timeutil.IsMissing(a), timeutil.IsMissing(b); ma != mb {
			return ma
		}
		return a < b
	})
	return day
}

// RenderDay builds the day list for date.
func RenderDay(tasks []model.Task, date string) DayView {
	day := ForDate(tasks, date)
	v := DayView{Date: date, Rows: make([]TaskRow, 0, len(day))}
	if len(day) == 0 {
		v.Empty = true
		v.Placeholder = EmptyDay
		return v
	}
	for i, t := range day {
		start, end := timeutil.To12Hour(t.StartTime), timeutil.To12Hour(t.EndTime)
		v.Rows = append(v.Rows, TaskRow{
			ID:       t.ID,
			Index:    i + 1,
			Start:    start,
			End:      end,
			Range:    start + " – " + end,
			Minutes:  timeutil.DurationInMinutes(t.StartTime, t.EndTime),
			Duration: t.Duration,
			Text:     t.Text,
			Done:     t.Done,
		})
		if t.Done {
			v.Done++
		} else {
			v.Pending++
		}
	}
	return v
}

// IDAt maps a 1-based row number to its task id.
func (v DayView) IDAt(n int) (string, bool) {
	if n < 1 || n > len(v.Rows) {
		return "", false
	}
	return v.Rows[n-1].ID, true
}
