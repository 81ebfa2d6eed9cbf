// Package suite holds the fixed-size benchmark entries meant for embedded
// hosts such as a headless browser, where each entry is started by name and
// timed by the host console.
package suite

import (
	"fmt"
	"strings"

	"github.com/go-logr/logr"

	"HashBench/hasher"
	"HashBench/runner"
	"HashBench/timing"
	"HashBench/utils"
)

const (
	WindowSize = 4096
	Iterations = 10000
)

// Entry is one named benchmark.
type Entry struct {
	Name string
	Kind hasher.Kind
}

var entries = []Entry{
	{Name: "polymur", Kind: hasher.Polymur},
	{Name: "blake3", Kind: hasher.Blake3},
	{Name: "xxh3", Kind: hasher.XXH3},
	{Name: "xxh3-128", Kind: hasher.XXH3x128},
	{Name: "farm64", Kind: hasher.Farm64},
	{Name: "highway-fingerprint", Kind: hasher.HighwayFingerprint},
}

// Entries returns the entries constructible in this build.
func Entries() []Entry {
	out := make([]Entry, 0, len(entries))
	for _, e := range entries {
		if e.Kind.Available() {
			out = append(out, e)
		}
	}
	return out
}

// Names returns the names of Entries.
func Names() []string {
	return utils.Map(Entries(), func(e Entry) string { return e.Name })
}

// Find returns the entry called name.
func Find(name string) (Entry, error) {
	for _, e := range Entries() {
		if e.Name == name {
			return e, nil
		}
	}
	return Entry{}, fmt.Errorf("suite entry %q: %w", name, hasher.ErrUnknownHasher)
}

// Symbol is the global function name under which a browser host can start e.
func (e Entry) Symbol() string {
	return "hashbench_" + strings.ReplaceAll(e.Name, "-", "_")
}

// Select resolves names to entries in the order given. No names selects every
// available entry.
func Select(names []string) ([]Entry, error) {
	if len(names) == 0 {
		return Entries(), nil
	}
	out := make([]Entry, 0, len(names))
	for _, name := range names {
		e, err := Find(name)
		if err != nil {
			return nil, err
		}
		out = append(out, e)
	}
	return out, nil
}

// Run executes e as a sliding run of WindowSize bytes for Iterations calls,
// bracketed by timer.Start(e.Name) and timer.Stop(e.Name).
func Run(e Entry, timer timing.Timer, seed uint64, log logr.Logger) (runner.Result, error) {
	h, err := hasher.New(e.Kind, hasher.Params{Seed: seed})
	if err != nil {
		return runner.Result{}, err
	}
	return runner.Execute(
		runner.Config{WindowSize: WindowSize, Iterations: Iterations, Mode: runner.Sliding},
		h,
		runner.WithSeed(seed),
		runner.WithTimer(timer),
		runner.WithLabel(e.Name),
		runner.WithLogger(log),
	)
}

// RunAll runs every available entry in order and stops at the first error.
func RunAll(timer timing.Timer, seed uint64, log logr.Logger) ([]runner.Result, error) {
	return RunEntries(Entries(), timer, seed, log)
}

// RunEntries runs es in order and stops at the first error.
func RunEntries(es []Entry, timer timing.Timer, seed uint64, log logr.Logger) ([]runner.Result, error) {
	var results []runner.Result
	for _, e := range es {
		res, err := Run(e, timer, seed, log)
		if err != nil {
			return results, err
		}
		results = append(results, res)
	}
	return results, nil
}
