package cli

import (
	"bytes"
	"context"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var fixedNow = func() time.Time { return time.Date(2024, 5, 15, 10, 0, 0, 0, time.UTC) }

type result struct {
	code     int
	out, err string
}

// run invokes the CLI against dir with the plain mono theme.
func run(t *testing.T, dir string, args ...string) result {
	t.Helper()
	var out, errOut bytes.Buffer
	full := append([]string{"--data-dir", dir, "--theme", "mono"}, args...)
	code := Run(context.Background(), full, Options{Out: &out, Err: &errOut, Now: fixedNow})
	return result{code: code, out: out.String(), err: errOut.String()}
}

func TestAddListDone(t *testing.T) {
	dir := t.TempDir()

	r := run(t, dir, "add", "Write", "report", "--start", "09:00", "--end", "10:30")
	require.Equal(t, 0, r.code, r.err)
	assert.Contains(t, r.out, "added for 2024-05-15 (1h 30m)")

	r = run(t, dir, "ls")
	require.Equal(t, 0, r.code, r.err)
	assert.Contains(t, r.out, "Wednesday, May 15 2024")
	assert.Contains(t, r.out, "[ ] 09:00 AM – 10:30 AM (90 min)  Write report")

	r = run(t, dir, "done", "1")
	require.Equal(t, 0, r.code, r.err)
	assert.Contains(t, r.out, "marked done")

	r = run(t, dir, "ls")
	assert.Contains(t, r.out, "[x] 09:00 AM")

	r = run(t, dir, "done", "1")
	assert.Contains(t, r.out, "marked pending")
}

func TestListEmptyDay(t *testing.T) {
	r := run(t, t.TempDir(), "ls", "--date", "2024-05-16")
	require.Equal(t, 0, r.code, r.err)
	assert.Contains(t, r.out, "No tasks for this day")
	assert.Contains(t, r.out, "Thursday, May 16 2024")
}

func TestAddEmptyTextIsUsageError(t *testing.T) {
	dir := t.TempDir()
	r := run(t, dir, "add", "   ")
	assert.Equal(t, 2, r.code)
	assert.Contains(t, r.err, "add: empty text")
	assert.NoFileExists(t, filepath.Join(dir, "tasks.json"))
}

func TestAddRejectsBadTime(t *testing.T) {
	r := run(t, t.TempDir(), "add", "x", "--start", "25:00")
	assert.Equal(t, 2, r.code)
	assert.Contains(t, r.err, "--start")
	assert.Contains(t, r.err, `"25:00"`)

	r = run(t, t.TempDir(), "add", "x", "--end", "9am")
	assert.Equal(t, 2, r.code)
}

func TestRowOutOfRange(t *testing.T) {
	r := run(t, t.TempDir(), "done", "3")
	assert.Equal(t, 2, r.code)
	assert.Contains(t, r.err, "row out of range: have 0, got 3")
	assert.Contains(t, r.err, "dayplan ls")

	r = run(t, t.TempDir(), "rm", "two")
	assert.Equal(t, 2, r.code)
	assert.Contains(t, r.err, "not a number")
}

func TestRemoveOnlyTheSelectedDuplicate(t *testing.T) {
	dir := t.TempDir()
	for i := 0; i < 2; i++ {
		r := run(t, dir, "add", "same", "--start", "08:00")
		require.Equal(t, 0, r.code, r.err)
	}
	r := run(t, dir, "rm", "2")
	require.Equal(t, 0, r.code, r.err)

	r = run(t, dir, "ls")
	assert.Equal(t, 1, strings.Count(r.out, "same"))
}

func TestUsageErrors(t *testing.T) {
	dir := t.TempDir()
	for _, args := range [][]string{
		{"bogus"},
		{"ls", "--nope"},
		{"ls", "extra"},
		{"--date", "15/05/2024", "ls"},
		{"--store", "floppy", "ls"},
	} {
		r := run(t, dir, args...)
		assert.Equal(t, 2, r.code, "%v: %s", args, r.err)
	}
}

func TestWeek(t *testing.T) {
	dir := t.TempDir()
	run(t, dir, "add", "a", "--date", "2024-05-13")
	run(t, dir, "add", "b", "--date", "2024-05-13")

	r := run(t, dir, "week")
	require.Equal(t, 0, r.code, r.err)
	assert.Contains(t, r.out, "Week of 2024-05-12")
	assert.Contains(t, r.out, "[Wed]")
	assert.Contains(t, r.out, " 2-")
}

func TestGoals(t *testing.T) {
	dir := t.TempDir()

	r := run(t, dir, "goal", "add", "Run", "20km")
	require.Equal(t, 0, r.code, r.err)

	r = run(t, dir, "goal", "done", "1")
	require.Equal(t, 0, r.code, r.err)

	r = run(t, dir, "goal")
	require.Equal(t, 0, r.code, r.err)
	assert.Contains(t, r.out, "(*) Run 20km")
	assert.Contains(t, r.out, "1/1")

	r = run(t, dir, "goal", "done", "4")
	assert.Equal(t, 2, r.code)

	r = run(t, dir, "goal", "add", " ")
	assert.Equal(t, 2, r.code)
}

func TestSettings(t *testing.T) {
	dir := t.TempDir()

	r := run(t, dir, "settings", "set", "--bg", "#000000", "--size", "18")
	require.Equal(t, 0, r.code, r.err)

	r = run(t, dir, "settings", "set", "--font", "Georgia")
	require.Equal(t, 0, r.code, r.err)

	r = run(t, dir, "settings", "show")
	assert.Contains(t, r.out, "background  #000000")
	assert.Contains(t, r.out, "size        18px")
	assert.Contains(t, r.out, "font        Georgia")

	assert.Equal(t, 2, run(t, dir, "settings", "set").code)
	assert.Equal(t, 2, run(t, dir, "settings", "set", "--size", "big").code)

	require.Equal(t, 0, run(t, dir, "settings", "reset").code)
	r = run(t, dir, "settings")
	assert.Contains(t, r.out, "background  (default)")
}

func TestSQLiteBackendPersists(t *testing.T) {
	dir := t.TempDir()
	r := run(t, dir, "--store", "sqlite", "add", "from sqlite")
	require.Equal(t, 0, r.code, r.err)
	assert.FileExists(t, filepath.Join(dir, "dayplan.db"))

	r = run(t, dir, "--store", "sqlite", "ls")
	assert.Contains(t, r.out, "from sqlite")

	// the json backend has its own files
	r = run(t, dir, "ls")
	assert.NotContains(t, r.out, "from sqlite")
}

func TestStoreFromEnv(t *testing.T) {
	t.Setenv("DAYPLAN_STORE", "memory")
	dir := t.TempDir()

	r := run(t, dir, "add", "gone soon")
	require.Equal(t, 0, r.code, r.err)
	assert.NoFileExists(t, filepath.Join(dir, "tasks.json"))

	// a flag set on the command line wins over the env
	r = run(t, dir, "--store", "json", "add", "kept")
	require.Equal(t, 0, r.code, r.err)
	assert.FileExists(t, filepath.Join(dir, "tasks.json"))
}
