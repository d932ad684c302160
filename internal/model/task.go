package model

// Task is a single scheduled activity for one calendar day.
// Duration is derived from StartTime/EndTime when the task is created
// and is never recomputed.
type Task struct {
	ID        string `json:"id"`
	Text      string `json:"text"`
	Date      string `json:"date"`      // YYYY-MM-DD
	StartTime string `json:"startTime"` // HH:MM or "—"
	EndTime   string `json:"endTime"`   // HH:MM or "—"
	Duration  string `json:"duration"`
	Done      bool   `json:"done"`
}

// Goal is a weekly checklist item with no date association.
type Goal struct {
	ID   string `json:"id"`
	Text string `json:"text"`
	Done bool   `json:"done"`
}

// Settings are page-wide display preferences. Empty fields mean
// "use the default rendering".
type Settings struct {
	Bg    string `json:"bg,omitempty"`
	Color string `json:"color,omitempty"`
	Size  string `json:"size,omitempty"`
	Font  string `json:"font,omitempty"`
}

// IsZero reports whether no preference is set.
func (s Settings) IsZero() bool {
	return s == Settings{}
}
