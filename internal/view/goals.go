package view

import "github.com/Makepad-fr/dayplan/internal/model"

type GoalRow struct {
	ID    string `json:"id"`
	Index int    `json:"index"`
	Text  string `json:"text"`
	Done  bool   `json:"done"`
}

type GoalsView struct {
	Rows  []GoalRow `json:"rows"`
	Done  int       `json:"done"`
	Total int       `json:"total"`
}

// RenderGoals lists goals in insertion order. There is no date filter.
func RenderGoals(goals []model.Goal) GoalsView {
	v := GoalsView{Rows: make([]GoalRow, 0, len(goals)), Total: len(goals)}
	for i, g := range goals {
		v.Rows = append(v.Rows, GoalRow{ID: g.ID, Index: i + 1, Text: g.Text, Done: g.Done})
		if g.Done {
			v.Done++
		}
	}
	return v
}

func (v GoalsView) IDAt(n int) (string, bool) {
	if n < 1 || n > len(v.Rows) {
		return "", false
	}
	return v.Rows[n-1].ID, true
}
