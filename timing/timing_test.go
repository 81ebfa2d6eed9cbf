package timing

import (
	"bytes"
	"strings"
	"testing"
	"time"

	"github.com/go-logr/logr/funcr"
	"github.com/stretchr/testify/require"
)

// fakeClock advances by step on every reading.
func fakeClock(step time.Duration) func() time.Time {
	t := time.Unix(0, 0)
	return func() time.Time {
		t = t.Add(step)
		return t
	}
}

func TestStopwatch(t *testing.T) {
	t.Parallel()
	sw := &Stopwatch{now: fakeClock(5 * time.Millisecond)}

	sw.Start("a")
	require.Equal(t, 5*time.Millisecond, sw.Stop("a"))
	require.Zero(t, sw.Stop("a"), "stopping twice")
	require.Zero(t, sw.Stop("never-started"))
}

func TestStopwatchZeroValue(t *testing.T) {
	t.Parallel()
	var sw Stopwatch
	sw.Start("x")
	require.GreaterOrEqual(t, sw.Stop("x"), time.Duration(0))
}

func TestConsoleMarkers(t *testing.T) {
	t.Parallel()
	var buf bytes.Buffer
	c := NewConsole(&buf)
	c.sw.now = fakeClock(1500 * time.Microsecond)

	c.Start("polymur")
	d := c.Stop("polymur")

	require.Equal(t, 1500*time.Microsecond, d)
	require.Equal(t, "polymur: start\npolymur: 1.500ms\n", buf.String())
}

func TestLogTimer(t *testing.T) {
	t.Parallel()
	var lines []string
	logger := funcr.New(func(prefix, args string) {
		lines = append(lines, args)
	}, funcr.Options{})

	lt := &LogTimer{Log: logger, Bytes: 1 << 20}
	lt.sw.now = fakeClock(time.Second)
	lt.Start("xxh3")
	require.Equal(t, time.Second, lt.Stop("xxh3"))

	require.Len(t, lines, 1)
	require.True(t, strings.Contains(lines[0], `"label"="xxh3"`), lines[0])
	require.True(t, strings.Contains(lines[0], "1.0 MiB/s"), lines[0])
}

func TestRate(t *testing.T) {
	t.Parallel()
	require.Equal(t, "n/a", Rate(100, 0))
	require.Equal(t, "2.0 KiB/s", Rate(4096, 2*time.Second))
}
