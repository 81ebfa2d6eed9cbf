package main

import (
	"errors"
	"fmt"
	"io"
	"math/rand/v2"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/alecthomas/kingpin/v2"
	"github.com/dustin/go-humanize"
	"github.com/go-logr/logr"
	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/schollz/progressbar/v3"

	"HashBench/errutil"
	"HashBench/hasher"
	"HashBench/log"
	"HashBench/runner"
	"HashBench/suite"
	"HashBench/timing"
	"HashBench/utils"
)

func main() {
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr))
}

type options struct {
	verbose int
	logJSON bool
	seed    string
	static  bool
}

func run(args []string, stdout, stderr io.Writer) int {
	var opts options

	app := kingpin.New("hashbench", "Measure hash function throughput over windows of a random buffer.")
	app.UsageWriter(stderr)
	app.ErrorWriter(stderr)
	app.Terminate(nil)
	app.Flag("verbose", "Increase log verbosity; repeat for more.").Short('v').CounterVar(&opts.verbose)
	app.Flag("log-json", "Write logs as JSON.").BoolVar(&opts.logJSON)
	app.Flag("seed", "Seed for the random buffer and seeded hashers. Random when unset.").Envar("HASHBENCH_SEED").StringVar(&opts.seed)
	app.Flag("static", "Hash one fixed window every iteration instead of sliding it.").BoolVar(&opts.static)

	runCmd := app.Command("run", "Benchmark a single hasher.").Default()
	runHasher := runCmd.Arg("hasher", "Hasher name, see 'list'.").Required().String()
	runWindow := runCmd.Arg("window-size", "Bytes hashed per call.").Required().Int()
	runIterations := runCmd.Arg("iterations", "Number of hash calls.").Required().Uint64()
	runMemReport := runCmd.Flag("mem-report", "Print the memory held during the run; JSON with --log-json.").Bool()

	compareCmd := app.Command("compare", "Benchmark every available hasher one after another.")
	compareWindow := compareCmd.Arg("window-size", "Bytes hashed per call.").Required().Int()
	compareIterations := compareCmd.Arg("iterations", "Number of hash calls per hasher.").Required().Uint64()
	compareCSV := compareCmd.Flag("csv", "Append results to this CSV file.").String()

	suiteCmd := app.Command("suite", "Run the fixed browser suite natively, printing console.time style markers.")
	suiteEntries := suiteCmd.Arg("entry", "Suite entries to run; all when omitted.").Strings()

	listCmd := app.Command("list", "List hashers available in this build.")

	cmd, err := app.Parse(args)
	if err != nil {
		fmt.Fprintf(stderr, "hashbench: %v\n", err)
		return 1
	}
	if cmd == "" {
		// --help was handled by kingpin.
		return 0
	}

	logger, flush := newLogger(stderr, opts)
	defer func() { _ = flush() }()

	if cmd == listCmd.FullCommand() {
		return list(stdout)
	}

	seed, err := resolveSeed(opts.seed)
	if err != nil {
		return fail(logger, err)
	}
	logger.Info("using seed", "seed", seed)

	mode := runner.Sliding
	if opts.static {
		mode = runner.Static
	}

	switch cmd {
	case runCmd.FullCommand():
		cfg := runner.Config{WindowSize: *runWindow, Iterations: *runIterations, Mode: mode}
		err = single(stdout, logger, *runHasher, cfg, seed, memReportFormat(*runMemReport, opts.logJSON))
	case compareCmd.FullCommand():
		cfg := runner.Config{WindowSize: *compareWindow, Iterations: *compareIterations, Mode: mode}
		err = compare(stdout, stderr, logger, cfg, seed, *compareCSV)
	case suiteCmd.FullCommand():
		err = runSuite(stdout, logger, *suiteEntries, seed)
	}
	if err != nil {
		return fail(logger, err)
	}
	return 0
}

func newLogger(w io.Writer, opts options) (logr.Logger, func() error) {
	level := log.WithLevel(int8(opts.verbose))
	if opts.logJSON {
		return log.New("hashbench", log.WithJSONSink(w, level))
	}
	return log.New("hashbench", log.WithConsoleSink(w, level))
}

func fail(logger logr.Logger, err error) int {
	var cfgErr *errutil.ConfigError
	if errors.As(err, &cfgErr) {
		logger.Error(err, "invalid configuration, nothing was run")
	} else {
		logger.Error(err, "benchmark failed")
	}
	return 1
}

func resolveSeed(s string) (uint64, error) {
	if s == "" {
		return rand.Uint64(), nil
	}
	seed, err := strconv.ParseUint(s, 0, 64)
	if err != nil {
		return 0, &errutil.ConfigError{Field: "seed", Value: s, Err: err}
	}
	return seed, nil
}

type memFormat int

const (
	memNone memFormat = iota
	memTree
	memJSON
)

func memReportFormat(enabled, json bool) memFormat {
	switch {
	case !enabled:
		return memNone
	case json:
		return memJSON
	}
	return memTree
}

// single benchmarks one hasher. The hasher and the runner are both fully
// built and validated before the buffer is generated.
func single(stdout io.Writer, logger logr.Logger, name string, cfg runner.Config, seed uint64, mem memFormat) error {
	h, err := hasher.NewByName(name, hasher.Params{Seed: seed})
	if err != nil {
		return err
	}
	r, err := runner.New(cfg,
		runner.WithSeed(seed),
		runner.WithLabel(name),
		runner.WithLogger(logger),
		runner.WithTimer(&timing.LogTimer{
			Log:   logger.V(1),
			Bytes: cfg.Iterations * uint64(cfg.WindowSize),
		}),
	)
	if err != nil {
		return err
	}

	res := r.Run(h)
	fmt.Fprintf(stdout, "%s mode=%s window=%s iterations=%s elapsed=%s throughput=%s\n",
		res.Label,
		res.Mode,
		humanize.IBytes(uint64(res.WindowSize)),
		humanize.Comma(int64(res.Iterations)),
		res.Elapsed,
		timing.Rate(res.BytesHashed(), res.Elapsed),
	)
	switch mem {
	case memJSON:
		fmt.Fprintln(stdout, res.MemReport().JSON())
	case memTree:
		if _, err := res.MemReport().WriteTo(stdout); err != nil {
			return err
		}
	}
	return nil
}

// runSuite runs the fixed-size suite entries with console markers on stdout,
// so native numbers line up with what the browser build prints.
func runSuite(stdout io.Writer, logger logr.Logger, names []string, seed uint64) error {
	es, err := suite.Select(names)
	if err != nil {
		return err
	}
	_, err = suite.RunEntries(es, timing.NewConsole(stdout), seed, logger)
	return err
}

var csvHeader = []string{"hasher", "family", "output_bytes", "mode", "window", "iterations", "elapsed_ns", "bytes_per_sec"}

// compare runs every available hasher sequentially with the same
// configuration and seed, then prints a table.
func compare(stdout, stderr io.Writer, logger logr.Logger, cfg runner.Config, seed uint64, csvPath string) error {
	if err := cfg.Validate(); err != nil {
		return err
	}
	kinds := hasher.Available()
	bar := progressbar.NewOptions(len(kinds),
		progressbar.OptionSetWriter(stderr),
		progressbar.OptionSetDescription("hashing"),
		progressbar.OptionShowCount(),
		progressbar.OptionClearOnFinish(),
	)

	results := make([]runner.Result, 0, len(kinds))
	for _, kind := range kinds {
		bar.Describe(kind.String())
		h, err := hasher.New(kind, hasher.Params{Seed: seed})
		if err != nil {
			return err
		}
		res, err := runner.Execute(cfg, h,
			runner.WithSeed(seed),
			runner.WithLabel(kind.String()),
			runner.WithLogger(logger),
		)
		if err != nil {
			return err
		}
		results = append(results, res)
		_ = bar.Add(1)
	}
	_ = bar.Finish()

	t := table.NewWriter()
	t.SetOutputMirror(stdout)
	t.SetStyle(table.StyleLight)
	t.AppendHeader(table.Row{"Hasher", "Family", "Output", "Elapsed", "Throughput"})
	rows := make([][]string, 0, len(results))
	for i, res := range results {
		kind := kinds[i]
		t.AppendRow(table.Row{
			kind.String(),
			kind.Family().String(),
			fmt.Sprintf("%d B", kind.OutputSize()),
			res.Elapsed.Round(time.Microsecond),
			timing.Rate(res.BytesHashed(), res.Elapsed),
		})
		rows = append(rows, []string{
			kind.String(),
			kind.Family().String(),
			strconv.Itoa(kind.OutputSize()),
			res.Mode.String(),
			strconv.Itoa(res.WindowSize),
			strconv.FormatUint(res.Iterations, 10),
			strconv.FormatInt(res.Elapsed.Nanoseconds(), 10),
			strconv.FormatFloat(res.Throughput(), 'f', 0, 64),
		})
	}
	t.AppendFooter(table.Row{"", "", "", "window " + humanize.IBytes(uint64(cfg.WindowSize)), humanize.Comma(int64(cfg.Iterations)) + " calls"})
	t.Render()

	if csvPath != "" {
		if err := utils.NewStatsWriter(csvPath, csvHeader).Append(rows...); err != nil {
			return err
		}
		logger.Info("appended results", "path", csvPath, "rows", len(rows))
	}
	return nil
}

func list(stdout io.Writer) int {
	t := table.NewWriter()
	t.SetOutputMirror(stdout)
	t.SetStyle(table.StyleLight)
	t.AppendHeader(table.Row{"Hasher", "Family", "Output"})
	for _, kind := range hasher.Available() {
		t.AppendRow(table.Row{kind.String(), kind.Family().String(), fmt.Sprintf("%d B", kind.OutputSize())})
	}
	t.Render()

	var missing []string
	for _, name := range hasher.Names() {
		if k, _ := hasher.Lookup(name); !k.Available() {
			missing = append(missing, name)
		}
	}
	if len(missing) > 0 {
		fmt.Fprintf(stdout, "not available in this build: %s\n", strings.Join(missing, ", "))
	}
	return 0
}
