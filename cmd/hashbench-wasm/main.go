//go:build js && wasm

// Command hashbench-wasm runs the fixed benchmark suite inside a browser.
// Each entry is timed with the page's console.time / console.timeEnd, so the
// numbers show up in the devtools console under the entry's name.
//
// Started with entry names as arguments it runs just those and exits.
// Without arguments it runs the whole suite once, then stays resident with one
// global function per entry (see suite.Entry.Symbol) so the host page can
// start any entry again by name.
package main

import (
	"math/rand/v2"
	"os"
	"syscall/js"
	"time"

	"github.com/go-logr/logr"

	"HashBench/log"
	"HashBench/suite"
	"HashBench/timing"
)

func main() {
	logger, flush := log.New("hashbench-wasm", log.WithConsoleSink(os.Stdout))
	defer func() { _ = flush() }()

	seed := rand.Uint64()
	console := timing.NewBrowserConsole()

	if args := os.Args[1:]; len(args) > 0 {
		es, err := suite.Select(args)
		if err != nil {
			logger.Error(err, "unknown suite entry")
			os.Exit(1)
		}
		logger.Info("running entries", "entries", args, "seed", seed)
		if _, err := suite.RunEntries(es, console, seed, logger); err != nil {
			logger.Error(err, "suite failed")
			os.Exit(1)
		}
		return
	}

	for _, e := range suite.Entries() {
		js.Global().Set(e.Symbol(), js.FuncOf(func(js.Value, []js.Value) any {
			return runEntry(e, console, seed, logger)
		}))
	}

	logger.Info("running suite", "entries", suite.Names(), "seed", seed,
		"window", suite.WindowSize, "iterations", suite.Iterations)
	if _, err := suite.RunAll(console, seed, logger); err != nil {
		logger.Error(err, "suite failed")
		os.Exit(1)
	}
	_ = flush()

	select {}
}

func runEntry(e suite.Entry, timer timing.Timer, seed uint64, logger logr.Logger) any {
	res, err := suite.Run(e, timer, seed, logger)
	if err != nil {
		logger.Error(err, "entry failed", "entry", e.Name)
		return map[string]any{"name": e.Name, "error": err.Error()}
	}
	return map[string]any{
		"name":       e.Name,
		"elapsed_ms": float64(res.Elapsed) / float64(time.Millisecond),
		"throughput": timing.Rate(res.BytesHashed(), res.Elapsed),
	}
}
