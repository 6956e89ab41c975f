package bench

import (
	"fmt"
	"runtime"
	"slices"
	"time"

	"github.com/sirupsen/logrus"
)

// Run executes one benchmark for the given configuration and returns the
// per-algorithm timing rows. Correctness violations (assert-sorted or verify
// mismatch) fail the whole run with an error; plugin problems never do.
// An out-of-range element type falls back to i32 rather than failing.
func Run(cfg Config) (*RunResult, error) {
	switch cfg.Type {
	case ElemU32:
		return runForType[uint32](&cfg)
	case ElemI64:
		return runForType[int64](&cfg)
	case ElemU64:
		return runForType[uint64](&cfg)
	case ElemF32:
		return runForType[float32](&cfg)
	case ElemF64:
		return runForType[float64](&cfg)
	case ElemStr:
		return runForType[string](&cfg)
	case ElemI32:
		return runForType[int32](&cfg)
	default:
		cfg.Type = ElemI32
		return runForType[int32](&cfg)
	}
}

func runForType[T Element](cfg *Config) (*RunResult, error) {
	// Thread-budget hint: applied once per run, before any algorithm
	// executes, never re-applied per algorithm.
	if cfg.Threads > 0 {
		runtime.GOMAXPROCS(cfg.Threads)
	}

	regs := buildRegistry[T]()
	var handles []*loadedPlugin
	if len(cfg.PluginPaths) > 0 {
		handles = loadPluginsInto(cfg.PluginPaths, &regs)
	}
	defer closePlugins(handles)

	return runWithRegistry(cfg, regs)
}

// runWithRegistry drives one assembled registry through verification and the
// warm-up/timed trial loops.
func runWithRegistry[T Element](cfg *Config, regs []Algorithm[T]) (*RunResult, error) {
	rng := newRand(cfg.Seed)
	original := MakeDataset[T](cfg, rng)
	work := make([]T, len(original))

	if cfg.Verify {
		ref := slices.Clone(original)
		slices.Sort(ref)
		for _, algo := range regs {
			if !cfg.algoSelected(algo.Name) {
				continue
			}
			copy(work, original)
			algo.Run(work)
			if !slices.IsSorted(work) {
				return nil, fmt.Errorf("verification failed (not sorted): %s", algo.Name)
			}
			if !slices.Equal(work, ref) {
				return nil, fmt.Errorf("verification mismatch vs reference sort: %s", algo.Name)
			}
		}
	}

	repeats := max(1, cfg.Repeats)
	rows := make([]ResultRow, 0, len(regs))
	for _, algo := range regs {
		if !cfg.algoSelected(algo.Name) {
			continue
		}
		for w := 0; w < cfg.Warmup; w++ {
			if _, err := benchmarkOnce(algo, original, work, cfg.AssertSorted); err != nil {
				return nil, err
			}
		}
		times := make([]float64, 0, repeats)
		for rep := 0; rep < repeats; rep++ {
			elapsed, err := benchmarkOnce(algo, original, work, cfg.AssertSorted)
			if err != nil {
				return nil, err
			}
			times = append(times, elapsed)
		}
		rows = append(rows, ResultRow{
			Algo:              algo.Name,
			N:                 cfg.N,
			Dist:              cfg.Dist.String(),
			Stats:             summarize(times),
			SpeedupVsBaseline: 1.0,
		})
		logrus.Debugf("%s: median %.3fms over %d repeats", algo.Name, rows[len(rows)-1].Stats.MedianMs, repeats)
	}
	applyBaseline(rows, cfg.Baseline)

	return &RunResult{
		Type:     cfg.Type,
		N:        cfg.N,
		Dist:     cfg.Dist.String(),
		Repeats:  repeats,
		Seed:     cfg.Seed,
		Baseline: cfg.Baseline,
		Rows:     rows,
	}, nil
}

// benchmarkOnce runs one trial: copy the original into the work buffer,
// invoke the algorithm, and measure the wall-clock span on the monotonic
// clock. The original is never mutated.
func benchmarkOnce[T Element](algo Algorithm[T], original, work []T, assertSorted bool) (float64, error) {
	copy(work, original)
	t0 := time.Now()
	algo.Run(work)
	elapsed := float64(time.Since(t0)) / float64(time.Millisecond)
	if assertSorted && !slices.IsSorted(work) {
		return 0, fmt.Errorf("assertion failed: output not sorted (algo=%s)", algo.Name)
	}
	return elapsed, nil
}
