package server

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Makepad-fr/dayplan/internal/model"
	"github.com/Makepad-fr/dayplan/internal/planner"
	"github.com/Makepad-fr/dayplan/internal/store/memstore"
	"github.com/Makepad-fr/dayplan/internal/view"
)

func newTestServer(t *testing.T) (*httptest.Server, *planner.Planner) {
	t.Helper()
	p, err := planner.Open(context.Background(), memstore.New())
	require.NoError(t, err)
	now := func() time.Time { return time.Date(2024, 5, 15, 10, 0, 0, 0, time.UTC) }
	srv := httptest.NewServer(NewRouter(p, now))
	t.Cleanup(srv.Close)
	return srv, p
}

func do(t *testing.T, method, url, body string) (*http.Response, []byte) {
	t.Helper()
	var r io.Reader
	if body != "" {
		r = strings.NewReader(body)
	}
	req, err := http.NewRequest(method, url, r)
	require.NoError(t, err)
	resp, err := http.DefaultClient.Do(req)
	require.NoError(t, err)
	defer resp.Body.Close()
	b, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	return resp, b
}

func TestAddTaskAndDay(t *testing.T) {
	srv, _ := newTestServer(t)

	resp, body := do(t, http.MethodPost, srv.URL+"/api/tasks",
		`{"text":"Write report","date":"2024-05-15","startTime":"09:00","endTime":"10:30"}`)
	require.Equal(t, http.StatusCreated, resp.StatusCode, string(body))

	var task model.Task
	require.NoError(t, json.Unmarshal(body, &task))
	assert.NotEmpty(t, task.ID)
	assert.Equal(t, "1h 30m", task.Duration)

	resp, body = do(t, http.MethodGet, srv.URL+"/api/days/2024-05-15", "")
	require.Equal(t, http.StatusOK, resp.StatusCode)
	var day view.DayView
	require.NoError(t, json.Unmarshal(body, &day))
	require.Len(t, day.Rows, 1)
	assert.Equal(t, "09:00 AM – 10:30 AM", day.Rows[0].Range)
	assert.Equal(t, "90 min", day.Rows[0].Minutes)

	resp, body = do(t, http.MethodGet, srv.URL+"/api/days/2024-05-16", "")
	require.Equal(t, http.StatusOK, resp.StatusCode)
	require.NoError(t, json.Unmarshal(body, &day))
	assert.True(t, day.Empty)
	assert.Equal(t, view.EmptyDay, day.Placeholder)
}

func TestAddTaskRejectsBadInput(t *testing.T) {
	srv, p := newTestServer(t)

	for _, body := range []string{
		`{"text":"  ","date":"2024-05-15"}`,
		`{"text":"x","date":""}`,
		`{"text":"x","date":"15/05/2024"}`,
		`{"text":"x","date":"2024-05-15","startTime":"25:00"}`,
		`{"text":"x","date":"2024-05-15","endTime":"9am"}`,
		`not json`,
	} {
		resp, _ := do(t, http.MethodPost, srv.URL+"/api/tasks", body)
		assert.Equal(t, http.StatusBadRequest, resp.StatusCode, body)
	}
	assert.Empty(t, p.Tasks())
}

func TestToggleAndDeleteTask(t *testing.T) {
	srv, p := newTestServer(t)
	task, err := p.AddTask(context.Background(), planner.NewTask{Text: "a", Date: "2024-05-15"})
	require.NoError(t, err)

	resp, body := do(t, http.MethodPost, srv.URL+"/api/tasks/"+task.ID+"/toggle", "")
	require.Equal(t, http.StatusOK, resp.StatusCode)
	var toggled model.Task
	require.NoError(t, json.Unmarshal(body, &toggled))
	assert.True(t, toggled.Done)

	resp, _ = do(t, http.MethodDelete, srv.URL+"/api/tasks/"+task.ID, "")
	assert.Equal(t, http.StatusNoContent, resp.StatusCode)
	assert.Empty(t, p.Tasks())

	resp, _ = do(t, http.MethodDelete, srv.URL+"/api/tasks/"+task.ID, "")
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
	resp, _ = do(t, http.MethodPost, srv.URL+"/api/tasks/nope/toggle", "")
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
}

func TestWeek(t *testing.T) {
	srv, _ := newTestServer(t)

	resp, body := do(t, http.MethodGet, srv.URL+"/api/weeks/2024-05-15", "")
	require.Equal(t, http.StatusOK, resp.StatusCode)
	var w view.WeekView
	require.NoError(t, json.Unmarshal(body, &w))
	assert.Equal(t, "2024-05-12", w.Start)
	require.Len(t, w.Days, 7)
	assert.Equal(t, 3, w.ActiveIndex())

	resp, _ = do(t, http.MethodGet, srv.URL+"/api/weeks/someday", "")
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
}

func TestGoals(t *testing.T) {
	srv, _ := newTestServer(t)

	resp, body := do(t, http.MethodPost, srv.URL+"/api/goals", `{"text":"Run 20km"}`)
	require.Equal(t, http.StatusCreated, resp.StatusCode)
	var g model.Goal
	require.NoError(t, json.Unmarshal(body, &g))

	resp, _ = do(t, http.MethodPost, srv.URL+"/api/goals", `{"text":" "}`)
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)

	resp, _ = do(t, http.MethodPost, srv.URL+"/api/goals/"+g.ID+"/toggle", "")
	require.Equal(t, http.StatusOK, resp.StatusCode)

	resp, body = do(t, http.MethodGet, srv.URL+"/api/goals", "")
	require.Equal(t, http.StatusOK, resp.StatusCode)
	var goals view.GoalsView
	require.NoError(t, json.Unmarshal(body, &goals))
	assert.Equal(t, 1, goals.Total)
	assert.Equal(t, 1, goals.Done)
}

func TestSettingsPatch(t *testing.T) {
	srv, p := newTestServer(t)
	_, err := p.UpdateSettings(context.Background(), model.Settings{Bg: "#000000", Font: "Georgia"})
	require.NoError(t, err)

	resp, body := do(t, http.MethodPut, srv.URL+"/api/settings", `{"color":"#ffffff","size":"18"}`)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	var s model.Settings
	require.NoError(t, json.Unmarshal(body, &s))
	assert.Equal(t, model.Settings{Bg: "#000000", Color: "#ffffff", Size: "18", Font: "Georgia"}, s)

	resp, body = do(t, http.MethodGet, srv.URL+"/api/settings", "")
	require.Equal(t, http.StatusOK, resp.StatusCode)
	require.NoError(t, json.Unmarshal(body, &s))
	assert.Equal(t, "18", s.Size)
}

func TestPage(t *testing.T) {
	srv, p := newTestServer(t)
	ctx := context.Background()
	_, err := p.AddTask(ctx, planner.NewTask{Text: "Tea & cake", Date: "2024-05-15", StartTime: "16:00"})
	require.NoError(t, err)
	_, err = p.UpdateSettings(ctx, model.Settings{Bg: "#000000", Size: "18"})
	require.NoError(t, err)

	resp, body := do(t, http.MethodGet, srv.URL+"/", "")
	require.Equal(t, http.StatusOK, resp.StatusCode)
	page := string(body)
	assert.Contains(t, page, "Wednesday, May 15 2024")
	assert.Contains(t, page, "Tea &amp; cake")
	assert.Contains(t, page, "background: #000000; font-size: 18px")

	resp, body = do(t, http.MethodGet, srv.URL+"/?date=2024-05-16", "")
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Contains(t, string(body), view.EmptyDay)

	resp, _ = do(t, http.MethodGet, srv.URL+"/?date=tomorrow", "")
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
}

func TestMetricsEndpoint(t *testing.T) {
	srv, p := newTestServer(t)
	_, err := p.AddGoal(context.Background(), "count me")
	require.NoError(t, err)

	resp, body := do(t, http.MethodGet, srv.URL+"/metrics", "")
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Contains(t, string(body), "dayplan_store_operations_total")
}
