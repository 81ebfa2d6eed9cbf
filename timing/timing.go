// Package timing provides the timer service the runner calls around its
// measured loop. Timers are never invoked inside the loop.
package timing

import (
	"fmt"
	"io"
	"time"

	"github.com/dustin/go-humanize"
	"github.com/go-logr/logr"
)

// Timer brackets a measured region identified by label.
type Timer interface {
	Start(label string)
	// Stop ends the region started with the same label and returns its
	// duration.
	Stop(label string) time.Duration
}

// Stopwatch is a silent Timer. The zero value is ready to use.
type Stopwatch struct {
	now     func() time.Time
	started map[string]time.Time
}

func (s *Stopwatch) clock() time.Time {
	if s.now != nil {
		return s.now()
	}
	return time.Now()
}

func (s *Stopwatch) Start(label string) {
	if s.started == nil {
		s.started = make(map[string]time.Time)
	}
	s.started[label] = s.clock()
}

// Stop returns zero for a label that was never started.
func (s *Stopwatch) Stop(label string) time.Duration {
	t0, ok := s.started[label]
	if !ok {
		return 0
	}
	delete(s.started, label)
	return s.clock().Sub(t0)
}

// Console mimics the browser console.time / console.timeEnd pair by writing
// start and end markers to w.
type Console struct {
	w  io.Writer
	sw Stopwatch
}

func NewConsole(w io.Writer) *Console {
	return &Console{w: w}
}

func (c *Console) Start(label string) {
	fmt.Fprintf(c.w, "%s: start\n", label)
	c.sw.Start(label)
}

func (c *Console) Stop(label string) time.Duration {
	d := c.sw.Stop(label)
	fmt.Fprintf(c.w, "%s: %.3fms\n", label, float64(d)/float64(time.Millisecond))
	return d
}

// LogTimer reports each measured region through a logger once it ends.
// Bytes, when set, is used to log throughput alongside the duration.
type LogTimer struct {
	Log   logr.Logger
	Bytes uint64
	sw    Stopwatch
}

func (l *LogTimer) Start(label string) {
	l.sw.Start(label)
}

func (l *LogTimer) Stop(label string) time.Duration {
	d := l.sw.Stop(label)
	kv := []any{"label", label, "elapsed", d}
	if l.Bytes > 0 {
		kv = append(kv, "hashed", humanize.IBytes(l.Bytes), "throughput", Rate(l.Bytes, d))
	}
	l.Log.Info("timer stopped", kv...)
	return d
}

// Rate formats bytes over d as a human readable per-second figure.
func Rate(bytes uint64, d time.Duration) string {
	if d <= 0 {
		return "n/a"
	}
	perSec := float64(bytes) / d.Seconds()
	return humanize.IBytes(uint64(perSec)) + "/s"
}
