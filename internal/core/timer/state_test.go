package timer

import (
	"math"
	"regexp"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFormatDisplay(t *testing.T) {
	cases := map[int]string{
		0:     "00:00",
		-90:   "01:30",
		65:    "+01:05",
		-1500: "25:00",
		-300:  "05:00",
		1:     "+00:01",
		-1:    "00:01",
		3599:  "+59:59",
		5999:  "+99:59",
		-5999: "99:59",
		// Minutes widen past two digits.
		6000:  "+100:00",
		-6000: "100:00",
		-6001: "100:01",
	}
	for elapsed, expected := range cases {
		assert.Equal(t, expected, FormatDisplay(elapsed), "elapsed %d", elapsed)
	}
}

func TestFormatDisplayShape(t *testing.T) {
	shape := regexp.MustCompile(`^[+]?\d{2}:\d{2}$`)
	for elapsed := -5999; elapsed <= 5999; elapsed++ {
		if !shape.MatchString(FormatDisplay(elapsed)) {
			t.Fatalf("unexpected display for %d: %q", elapsed, FormatDisplay(elapsed))
		}
	}
}

func TestFormatDisplayExtremes(t *testing.T) {
	assert.NotPanics(t, func() { FormatDisplay(math.MinInt) })
	assert.NotContains(t, FormatDisplay(math.MinInt), "-")
	assert.Equal(t, "+", FormatDisplay(math.MaxInt)[:1])
}

func TestControls(t *testing.T) {
	stopped := State{Elapsed: -10}
	assert.Equal(t, Controls{Play: true, Reset: true}, stopped.Controls())

	running := State{Elapsed: -10, Running: true}
	assert.Equal(t, Controls{Pause: true, Reset: true}, running.Controls())

	atZero := State{Elapsed: 0, Running: true}
	assert.False(t, atZero.Controls().Skip)

	overtime := State{Elapsed: 5, Running: true}
	assert.Equal(t, Controls{Pause: true, Reset: true, Skip: true}, overtime.Controls())

	pausedOvertime := State{Elapsed: 5}
	assert.False(t, pausedOvertime.Controls().Skip)
}

func TestPhase(t *testing.T) {
	assert.Equal(t, PhaseBreak, PhaseWork.Next())
	assert.Equal(t, PhaseWork, PhaseBreak.Next())
	assert.Equal(t, "Work", PhaseWork.Title())
	assert.Equal(t, "Break", PhaseBreak.Title())
}
