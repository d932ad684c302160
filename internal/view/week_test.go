package view

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Makepad-fr/dayplan/internal/model"
)

func TestRenderWeekWednesday(t *testing.T) {
	// 2024-05-15 is a Wednesday
	w, err := RenderWeek("2024-05-15", nil)
	require.NoError(t, err)

	require.Len(t, w.Days, 7)
	assert.Equal(t, "2024-05-12", w.Start)
	assert.Equal(t, "2024-05-12", w.Days[0].Date)
	assert.Equal(t, "Sun", w.Days[0].Weekday)
	assert.Equal(t, "Sat", w.Days[6].Weekday)
	assert.Equal(t, 18, w.Days[6].Day)
	assert.Equal(t, 3, w.ActiveIndex())
	assert.True(t, w.Days[3].Active)
}

func TestRenderWeekSundayAndMonthBoundary(t *testing.T) {
	w, err := RenderWeek("2024-06-02", nil) // Sunday
	require.NoError(t, err)
	assert.Equal(t, "2024-06-02", w.Start)
	assert.Equal(t, 0, w.ActiveIndex())

	w, err = RenderWeek("2024-03-01", nil) // Friday
	require.NoError(t, err)
	assert.Equal(t, "2024-02-25", w.Start)
	assert.Equal(t, 29, w.Days[4].Day)
	assert.Equal(t, 5, w.ActiveIndex())
}

func TestRenderWeekCounts(t *testing.T) {
	tasks := []model.Task{
		{Date: "2024-05-13"}, {Date: "2024-05-13"}, {Date: "2024-05-20"},
	}
	w, err := RenderWeek("2024-05-15", tasks)
	require.NoError(t, err)
	assert.Equal(t, 2, w.Days[1].Tasks)
	assert.Equal(t, 0, w.Days[3].Tasks)
}

func TestRenderWeekBadDate(t *testing.T) {
	_, err := RenderWeek("not-a-date", nil)
	assert.Error(t, err)
}

func TestWeekStart(t *testing.T) {
	sat := time.Date(2024, 5, 18, 15, 0, 0, 0, time.UTC)
	assert.Equal(t, time.Sunday, WeekStart(sat).Weekday())
	assert.Equal(t, 12, WeekStart(sat).Day())
}
