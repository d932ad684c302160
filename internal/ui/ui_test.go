package ui

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestProgressBar(t *testing.T) {
	assert.Equal(t, "█████░░░░░  50%", ProgressBar(1, 2, 10))
	assert.Equal(t, "░░░░░   0%", ProgressBar(0, 0, 1))
	assert.Equal(t, "█████ 100%", ProgressBar(5, 5, 5))
}

func TestTruncate(t *testing.T) {
	assert.Equal(t, "short", Truncate("short", 10))
	assert.Equal(t, "abcdefg...", Truncate("abcdefghijklmnop", 10))
}

func TestPanelAlignsBorders(t *testing.T) {
	var out bytes.Buffer
	SetOutput(&out, &out)
	defer SetOutput(nil, nil)
	SetColorForcing(false, true)
	defer SetColorForcing(false, false)
	SetTheme("mono")
	defer SetTheme("classic")

	Panel([]string{"a", "longer line", "[x] done"})

	lines := strings.Split(strings.TrimRight(out.String(), "\n"), "\n")
	require.Len(t, lines, 5)
	assert.Equal(t, "+-------------+", lines[0])
	assert.Equal(t, "| a           |", lines[1])
	assert.Equal(t, "| [x] done    |", lines[3])
}

func TestOKFail(t *testing.T) {
	var out, errOut bytes.Buffer
	SetOutput(&out, &errOut)
	defer SetOutput(nil, nil)

	OK("added")
	Fail("nope")
	assert.Equal(t, "✔ added\n", out.String())
	assert.Equal(t, "✖ nope\n", errOut.String())
}

func TestFailUsesThemeErrorColor(t *testing.T) {
	var out, errOut bytes.Buffer
	SetOutput(&out, &errOut)
	defer SetOutput(nil, nil)
	SetColorForcing(true, false)
	defer SetColorForcing(false, false)

	SetTheme("neon")
	defer SetTheme("classic")
	Fail("nope")
	Hint("try again")
	assert.Equal(t, Current().Error+"✖ nope"+reset+"\n"+Current().Muted+"try again"+reset+"\n", errOut.String())

	errOut.Reset()
	SetTheme("classic")
	Fail("nope")
	assert.True(t, strings.HasPrefix(errOut.String(), "\033[31m"), "%q", errOut.String())
}
