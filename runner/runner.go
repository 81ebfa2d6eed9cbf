// Package runner drives a hasher.Hasher over windows of a random buffer for a
// fixed number of iterations.
//
// The buffer is generated once per run. In sliding mode it is four windows
// long and the window start advances by one byte per iteration, wrapping to
// zero when the window would run past the end; this varies alignment so a
// single static window cannot produce unrealistically friendly cache or
// branch behaviour. In static mode the buffer is exactly one window.
package runner

import (
	"errors"
	"fmt"
	"strconv"
	"time"

	"github.com/dustin/go-humanize"
	"github.com/go-logr/logr"

	"HashBench/blob"
	"HashBench/errutil"
	"HashBench/hasher"
	"HashBench/timing"
	"HashBench/utils"
)

// MaxWindowSize bounds the window so the sliding buffer length stays well
// inside int range on every platform.
const MaxWindowSize = 1 << 28

var (
	ErrInvalidWindow = errors.New("window size must be between 1 and 256MiB")
	ErrInvalidMode   = errors.New("unknown run mode")
)

type Mode int

const (
	Sliding Mode = iota
	Static
)

func (m Mode) String() string {
	switch m {
	case Sliding:
		return "sliding"
	case Static:
		return "static"
	}
	return fmt.Sprintf("Mode(%d)", int(m))
}

// Multiplier is the buffer length in windows.
func (m Mode) Multiplier() int {
	if m == Static {
		return 1
	}
	return 4
}

type Config struct {
	WindowSize int
	Iterations uint64
	Mode       Mode
}

// Validate rejects configurations that cannot produce a meaningful run. A
// zero window would hash the empty slice every iteration, so it is refused
// rather than silently benchmarked.
func (c Config) Validate() error {
	if c.WindowSize < 1 || c.WindowSize > MaxWindowSize {
		return &errutil.ConfigError{Field: "window size", Value: strconv.Itoa(c.WindowSize), Err: ErrInvalidWindow}
	}
	if c.Mode != Sliding && c.Mode != Static {
		return &errutil.ConfigError{Field: "mode", Value: c.Mode.String(), Err: ErrInvalidMode}
	}
	return nil
}

// BufferLen is the length of the random buffer a run allocates.
func (c Config) BufferLen() int {
	return c.WindowSize * c.Mode.Multiplier()
}

type Runner struct {
	cfg   Config
	src   blob.Source
	timer timing.Timer
	log   logr.Logger
	label string
}

type Option func(*Runner)

// WithSource sets the randomness used to fill the buffer.
func WithSource(src blob.Source) Option {
	return func(r *Runner) { r.src = src }
}

// WithSeed fills the buffer from a deterministic source seeded with seed.
func WithSeed(seed uint64) Option {
	return WithSource(blob.NewSource(seed))
}

// WithTimer sets the timer service called around the measured loop.
func WithTimer(t timing.Timer) Option {
	return func(r *Runner) { r.timer = t }
}

func WithLogger(l logr.Logger) Option {
	return func(r *Runner) { r.log = l }
}

// WithLabel names the run for the timer and the logs.
func WithLabel(label string) Option {
	return func(r *Runner) { r.label = label }
}

// New validates cfg and returns a Runner. Nothing is allocated until Run.
func New(cfg Config, opts ...Option) (*Runner, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	r := &Runner{
		cfg:   cfg,
		log:   logr.Discard(),
		label: "run",
	}
	for _, opt := range opts {
		opt(r)
	}
	if r.src == nil {
		r.src = blob.NewSource(uint64(time.Now().UnixNano()))
	}
	if r.timer == nil {
		r.timer = &timing.Stopwatch{}
	}
	return r, nil
}

// Run generates the buffer and performs exactly cfg.Iterations calls to
// h.Hash. Only the loop is timed; buffer generation and output allocation
// happen before the timer starts.
func (r *Runner) Run(h hasher.Hasher) Result {
	size := r.cfg.WindowSize
	n := r.cfg.Iterations
	buf := blob.Generate(r.src, r.cfg.BufferLen())
	out := make([]byte, h.OutputSize())
	cur := newCursor(len(buf), size)

	r.log.V(1).Info("starting run",
		"label", r.label,
		"mode", r.cfg.Mode.String(),
		"window", humanize.IBytes(uint64(size)),
		"buffer", humanize.IBytes(uint64(len(buf))),
		"iterations", n,
		"alignments", cur.period(),
	)

	r.timer.Start(r.label)
	for i := uint64(0); i < n; i++ {
		h.Hash(buf[cur.offset:cur.offset+size], out)
		cur.advance()
	}
	elapsed := r.timer.Stop(r.label)

	res := Result{
		Label:       r.label,
		Mode:        r.cfg.Mode,
		WindowSize:  size,
		BufferLen:   len(buf),
		Iterations:  n,
		FinalOffset: cur.offset,
		Wraps:       cur.wraps,
		Elapsed:     elapsed,
		Digest:      out,
	}
	// Elapsed time is the timer's to report.
	r.log.V(1).Info("finished run",
		"label", r.label,
		"wraps", cur.wraps,
		"final_offset", cur.offset,
	)
	return res
}

// Execute validates cfg, builds a Runner and runs h. On a configuration
// error h is never called.
func Execute(cfg Config, h hasher.Hasher, opts ...Option) (Result, error) {
	r, err := New(cfg, opts...)
	if err != nil {
		return Result{}, err
	}
	return r.Run(h), nil
}

type Result struct {
	Label       string
	Mode        Mode
	WindowSize  int
	BufferLen   int
	Iterations  uint64
	FinalOffset int
	// Wraps counts how many times the window start returned to 0. In
	// static mode every iteration wraps.
	Wraps   uint64
	Elapsed time.Duration
	// Digest is the output of the last hash call, or zeros when no
	// iterations ran.
	Digest []byte
}

func (r Result) BytesHashed() uint64 {
	return r.Iterations * uint64(r.WindowSize)
}

// Throughput returns hashed bytes per second, or 0 when nothing was timed.
func (r Result) Throughput() float64 {
	if r.Elapsed <= 0 {
		return 0
	}
	return float64(r.BytesHashed()) / r.Elapsed.Seconds()
}

// MemReport describes what the run kept resident while looping.
func (r Result) MemReport() utils.MemReport {
	return utils.MemReport{
		Name:       r.Label,
		TotalBytes: r.BufferLen + len(r.Digest),
		Children: []utils.MemReport{
			{Name: "buffer", TotalBytes: r.BufferLen},
			{Name: "output", TotalBytes: len(r.Digest)},
		},
	}
}
