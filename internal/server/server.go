// Package server exposes the planner over HTTP: a JSON API, a small HTML
// day page and the Prometheus metrics.
package server

import (
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/Makepad-fr/dayplan/internal/logger"
	"github.com/Makepad-fr/dayplan/internal/planner"
	"github.com/Makepad-fr/dayplan/internal/timeutil"
)

type handlers struct {
	planner *planner.Planner
	now     func() time.Time
}

// NewRouter wires every route onto a chi mux. now picks the default day
// for requests without a date.
func NewRouter(p *planner.Planner, now func() time.Time) *chi.Mux {
	if now == nil {
		now = time.Now
	}
	h := &handlers{planner: p, now: now}

	r := chi.NewRouter()
	r.Use(middleware.Recoverer)
	r.Use(requestLog)

	r.Get("/", h.page)
	r.Handle("/metrics", promhttp.Handler())

	r.Route("/api", func(r chi.Router) {
		r.Get("/days/{date}", h.day)
		r.Get("/weeks/{date}", h.week)

		r.Post("/tasks", h.addTask)
		r.Post("/tasks/{id}/toggle", h.toggleTask)
		r.Delete("/tasks/{id}", h.deleteTask)

		r.Get("/goals", h.goals)
		r.Post("/goals", h.addGoal)
		r.Post("/goals/{id}/toggle", h.toggleGoal)

		r.Get("/settings", h.settings)
		r.Put("/settings", h.updateSettings)
	})
	return r
}

func requestLog(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)
		start := time.Now()
		next.ServeHTTP(ww, r)
		logger.Debug(r.Context(), "http request",
			"method", r.Method,
			"path", r.URL.Path,
			"status", ww.Status(),
			"took", time.Since(start),
		)
	})
}

// -------------- days and weeks ----------------

func (h *handlers) day(w http.ResponseWriter, r *http.Request) {
	date, ok := dateParam(w, chi.URLParam(r, "date"))
	if !ok {
		return
	}
	writeJSON(w, http.StatusOK, h.planner.Day(date))
}

func (h *handlers) week(w http.ResponseWriter, r *http.Request) {
	date, ok := dateParam(w, chi.URLParam(r, "date"))
	if !ok {
		return
	}
	v, err := h.planner.Week(date)
	if err != nil {
		writeError(w, http.StatusBadRequest, err)
		return
	}
	writeJSON(w, http.StatusOK, v)
}

// -------------- tasks ----------------

func (h *handlers) addTask(w http.ResponseWriter, r *http.Request) {
	var req planner.NewTask
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, err)
		return
	}

	if req.Date != "" {
		date, ok := dateParam(w, req.Date)
		if !ok {
			return
		}
		req.Date = date
	}

	task, err := h.planner.AddTask(r.Context(), req)
	if err != nil {
		h.fail(w, r, "add task", err)
		return
	}
	writeJSON(w, http.StatusCreated, task)
}

func (h *handlers) toggleTask(w http.ResponseWriter, r *http.Request) {
	task, err := h.planner.ToggleTask(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		h.fail(w, r, "toggle task", err)
		return
	}
	writeJSON(w, http.StatusOK, task)
}

func (h *handlers) deleteTask(w http.ResponseWriter, r *http.Request) {
	if err := h.planner.DeleteTask(r.Context(), chi.URLParam(r, "id")); err != nil {
		h.fail(w, r, "delete task", err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// -------------- goals ----------------

type newGoal struct {
	Text string `json:"text"`
}

func (h *handlers) goals(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, h.planner.Goals())
}

func (h *handlers) addGoal(w http.ResponseWriter, r *http.Request) {
	var req newGoal
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, err)
		return
	}

	goal, err := h.planner.AddGoal(r.Context(), req.Text)
	if err != nil {
		h.fail(w, r, "add goal", err)
		return
	}
	writeJSON(w, http.StatusCreated, goal)
}

func (h *handlers) toggleGoal(w http.ResponseWriter, r *http.Request) {
	goal, err := h.planner.ToggleGoal(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		h.fail(w, r, "toggle goal", err)
		return
	}
	writeJSON(w, http.StatusOK, goal)
}

// -------------- settings ----------------

func (h *handlers) settings(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, h.planner.Settings())
}

// updateSettings takes a partial object; absent fields keep their value.
func (h *handlers) updateSettings(w http.ResponseWriter, r *http.Request) {
	var patch planner.SettingsPatch
	if err := json.NewDecoder(r.Body).Decode(&patch); err != nil {
		writeError(w, http.StatusBadRequest, err)
		return
	}

	s, err := h.planner.PatchSettings(r.Context(), patch)
	if err != nil {
		h.fail(w, r, "update settings", err)
		return
	}
	writeJSON(w, http.StatusOK, s)
}

// -------------- helpers ----------------

type errorBody struct {
	Error string `json:"error"`
}

// fail maps planner errors to a status code and logs the unexpected ones.
func (h *handlers) fail(w http.ResponseWriter, r *http.Request, op string, err error) {
	switch {
	case errors.Is(err, planner.ErrEmptyText), errors.Is(err, planner.ErrEmptyDate),
		errors.Is(err, planner.ErrBadTime):
		writeError(w, http.StatusBadRequest, err)
	case errors.Is(err, planner.ErrNotFound):
		writeError(w, http.StatusNotFound, err)
	default:
		logger.Error(r.Context(), err, op)
		writeError(w, http.StatusInternalServerError, err)
	}
}

func dateParam(w http.ResponseWriter, raw string) (string, bool) {
	d, err := timeutil.ParseDate(raw)
	if err != nil {
		writeError(w, http.StatusBadRequest, err)
		return "", false
	}
	return timeutil.FormatDate(d), true
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, status int, err error) {
	writeJSON(w, status, errorBody{Error: err.Error()})
}
