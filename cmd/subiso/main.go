// Command subiso searches for subgraph isomorphisms between a pattern
// graph and a target graph.
//
// Usage:
//
//	subiso [options] pattern-path target-path [num_threads] [base_cpu]
package main

import (
	"context"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strconv"
	"time"

	"github.com/google/uuid"
	sdkmetric "go.opentelemetry.io/otel/sdk/metric"

	"github.com/katalvlaran/subiso/classify"
	"github.com/katalvlaran/subiso/config"
	"github.com/katalvlaran/subiso/engine"
	"github.com/katalvlaran/subiso/graphio"
	"github.com/katalvlaran/subiso/match"
	"github.com/katalvlaran/subiso/observability"
	"github.com/katalvlaran/subiso/sortorder"
)

func main() {
	os.Exit(run(os.Args[1:]))
}

func run(args []string) int {
	fs := flag.NewFlagSet("subiso", flag.ContinueOnError)
	var (
		configPath       string
		engineName       string
		storeSolutions   bool
		shallowThreshold int
		localCap         int
		verbose          bool
	)
	fs.StringVar(&configPath, "config", "", "optional YAML run-config file")
	fs.StringVar(&engineName, "engine", "parallel", "search engine: sequential, parallel, or wls")
	fs.BoolVar(&storeSolutions, "store-solutions", false, "retain every solution in memory")
	fs.IntVar(&shallowThreshold, "shallow-threshold", 0, "wls: CoreLen below which children always spill to the global stack")
	fs.IntVar(&localCap, "local-cap", 0, "wls: local stack capacity before children spill to the global stack")
	fs.BoolVar(&verbose, "verbose", false, "log search lifecycle events to stderr")
	fs.SetOutput(os.Stderr)

	if err := fs.Parse(args); err != nil {
		return 1
	}

	positional := fs.Args()
	if len(positional) < 2 {
		fmt.Fprintf(os.Stderr, "usage: %s [options] pattern-path target-path [num_threads] [base_cpu]\n", os.Args[0])
		fs.PrintDefaults()

		return 1
	}

	var fileCfg config.Config
	if configPath != "" {
		c, err := config.FromFile(configPath)
		if err != nil {
			fmt.Fprintf(os.Stderr, "subiso: %v\n", err)

			return 1
		}
		fileCfg = c
	}

	numThreads := fileCfg.Int("num_threads", 1)
	if len(positional) >= 3 {
		n, err := strconv.Atoi(positional[2])
		if err != nil {
			fmt.Fprintf(os.Stderr, "subiso: invalid num_threads %q: %v\n", positional[2], err)

			return 1
		}
		numThreads = n
	}

	baseCPU := fileCfg.Int("base_cpu", 0)
	if len(positional) >= 4 {
		n, err := strconv.Atoi(positional[3])
		if err != nil {
			fmt.Fprintf(os.Stderr, "subiso: invalid base_cpu %q: %v\n", positional[3], err)

			return 1
		}
		baseCPU = n
	}

	if !flagWasSet(fs, "engine") {
		engineName = fileCfg.String("engine", engineName)
	}
	if !flagWasSet(fs, "store-solutions") {
		storeSolutions = fileCfg.Bool("store_solutions", storeSolutions)
	}
	if !flagWasSet(fs, "shallow-threshold") {
		shallowThreshold = fileCfg.Int("shallow_threshold", shallowThreshold)
	}
	if !flagWasSet(fs, "local-cap") {
		localCap = fileCfg.Int("local_cap", localCap)
	}

	logOut := io.Writer(os.Stderr)
	if !verbose {
		logOut = io.Discard
	}
	logger := slog.New(slog.NewTextHandler(logOut, nil))

	count, elapsed, err := search(positional[0], positional[1], engineName, numThreads, baseCPU, storeSolutions, shallowThreshold, localCap, logger)
	if err != nil {
		fmt.Fprintf(os.Stderr, "subiso: %v\n", err)

		return 1
	}

	fmt.Printf("%d %f\n", count, elapsed.Seconds())

	return 0
}

func flagWasSet(fs *flag.FlagSet, name string) bool {
	set := false
	fs.Visit(func(f *flag.Flag) {
		if f.Name == name {
			set = true
		}
	})

	return set
}

func search(patternPath, targetPath, engineName string, numThreads, baseCPU int, storeSolutions bool, shallowThreshold, localCap int, logger *slog.Logger) (uint64, time.Duration, error) {
	runID := uuid.NewString()

	// No reader is attached: instrument creation alone exercises the otel
	// SDK metric pipeline without requiring an external collector.
	meterProvider := sdkmetric.NewMeterProvider()
	defer meterProvider.Shutdown(context.Background())
	recorder := observability.New(meterProvider.Meter("subiso"))

	pattern, err := graphio.LoadFile(patternPath)
	if err != nil {
		return 0, 0, fmt.Errorf("subiso: load pattern: %w", err)
	}
	target, err := graphio.LoadFile(targetPath)
	if err != nil {
		return 0, 0, fmt.Errorf("subiso: load target: %w", err)
	}

	logger.Info("search starting", slog.String("run_id", runID), slog.String("pattern", patternPath),
		slog.String("target", targetPath), slog.Int("workers", numThreads), slog.Int("base_cpu", baseCPU),
		slog.String("engine", engineName))

	targetClasses := classify.ClassifyTarget(target)
	patternClasses := classify.ClassifyPattern(pattern, targetClasses)
	order := sortorder.Sort(pattern)
	s0 := match.NewState(pattern, target, patternClasses, targetClasses, order)

	cfg := engine.Config{
		NumThreads:       numThreads,
		BaseCPU:          baseCPU,
		StoreSolutions:   storeSolutions,
		ShallowThreshold: shallowThreshold,
		LocalCap:         localCap,
	}

	start := time.Now()
	var count uint64
	switch engineName {
	case "sequential":
		seq := engine.NewSequential(storeSolutions, nil)
		seq.Sink().SetRecorder(recorder, engineName)
		seq.FindAll(s0)
		count = seq.Sink().Count()
	case "wls":
		wls := engine.NewWLS(cfg, nil)
		wls.Sink().SetRecorder(recorder, engineName)
		c, _, runErr := wls.Run(s0)
		if runErr != nil {
			return 0, 0, runErr
		}
		count = c
	case "parallel":
		par := engine.New(cfg, nil)
		par.Sink().SetRecorder(recorder, engineName)
		c, _, runErr := par.Run(s0)
		if runErr != nil {
			return 0, 0, runErr
		}
		count = c
	default:
		return 0, 0, fmt.Errorf("subiso: unknown engine %q", engineName)
	}
	elapsed := time.Since(start)

	logger.Info("search finished", slog.String("run_id", runID), slog.Uint64("solutions", count), slog.Duration("elapsed", elapsed))

	return count, elapsed, nil
}
