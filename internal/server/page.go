package server

import (
	"html/template"
	"net/http"

	"github.com/Makepad-fr/dayplan/internal/logger"
	"github.com/Makepad-fr/dayplan/internal/timeutil"
	"github.com/Makepad-fr/dayplan/internal/view"
)

var pageTmpl = template.Must(template.New("day").Parse(`<!doctype html>
<html lang="en">
<head>
<meta charset="utf-8">
<title>dayplan · {{.Day.Date}}</title>
<style>
body { font-family: system-ui, sans-serif; max-width: 42rem; margin: 2rem auto; }
.week { display: flex; gap: .5rem; }
.week a { flex: 1; text-align: center; padding: .4rem; border: 1px solid #ccc; border-radius: 6px; text-decoration: none; color: inherit; }
.week a.active { border-color: #3b82f6; font-weight: bold; }
.done { text-decoration: line-through; opacity: .6; }
.muted { opacity: .6; }
</style>
</head>
<body style="{{.Style}}">
<h1>{{.Title}}</h1>
<nav class="week">
{{range .Week.Days}}<a href="/?date={{.Date}}"{{if .Active}} class="active"{{end}}>{{.Weekday}}<br>{{.Day}}</a>
{{end}}</nav>
<p class="muted">{{.Day.Done}} done · {{.Day.Pending}} pending</p>
{{if .Day.Empty}}<p class="muted">{{.Day.Placeholder}}</p>{{else}}<ul>
{{range .Day.Rows}}<li{{if .Done}} class="done"{{end}}>{{.Range}} ({{.Minutes}}) {{.Text}}</li>
{{end}}</ul>{{end}}
<h2>Weekly goals {{.Goals.Done}}/{{.Goals.Total}}</h2>
<ul>
{{range .Goals.Rows}}<li{{if .Done}} class="done"{{end}}>{{.Text}}</li>
{{end}}</ul>
</body>
</html>
`))

type pageData struct {
	Title string
	Style template.CSS
	Day   view.DayView
	Week  view.WeekView
	Goals view.GoalsView
}

// page renders the day selected by ?date= (default today) with the saved
// display settings applied to the body.
func (h *handlers) page(w http.ResponseWriter, r *http.Request) {
	date := timeutil.Today(h.now())
	if raw := r.URL.Query().Get("date"); raw != "" {
		d, ok := dateParam(w, raw)
		if !ok {
			return
		}
		date = d
	}
	week, err := h.planner.Week(date)
	if err != nil {
		writeError(w, http.StatusBadRequest, err)
		return
	}

	data := pageData{
		Title: date,
		Style: template.CSS(view.CSS(h.planner.Settings())),
		Day:   h.planner.Day(date),
		Week:  week,
		Goals: h.planner.Goals(),
	}
	if d, err := timeutil.ParseDate(date); err == nil {
		data.Title = d.Format("Monday, Jan 2 2006")
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	if err := pageTmpl.Execute(w, data); err != nil {
		logger.Error(r.Context(), err, "render page")
	}
}
