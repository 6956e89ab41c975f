package bench

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func smallRunConfig() Config {
	cfg := DefaultConfig()
	cfg.N = 2000
	cfg.Repeats = 3
	cfg.Algos = []string{"std_sort", "insertion_sort"}
	return cfg
}

func TestRun_ProducesOneRowPerSelectedAlgorithm(t *testing.T) {
	res, err := Run(smallRunConfig())
	assert.NoError(t, err)
	assert.Len(t, res.Rows, 2)
	assert.Equal(t, "std_sort", res.Rows[0].Algo)
	assert.Equal(t, "insertion_sort", res.Rows[1].Algo)
	for _, r := range res.Rows {
		assert.Equal(t, 2000, r.N)
		assert.Equal(t, "random", r.Dist)
		assert.GreaterOrEqual(t, r.Stats.MaxMs, r.Stats.MinMs)
		assert.GreaterOrEqual(t, r.Stats.MedianMs, 0.0)
		assert.InDelta(t, 1.0, r.SpeedupVsBaseline, 1e-12)
	}
}

func TestRun_ZeroRepeats_StillTimesOnce(t *testing.T) {
	cfg := smallRunConfig()
	cfg.Repeats = 0
	res, err := Run(cfg)
	assert.NoError(t, err)
	assert.Equal(t, 1, res.Repeats)
	assert.Len(t, res.Rows, 2)
	// one sample: stddev is zero and min == max == median
	for _, r := range res.Rows {
		assert.Equal(t, 0.0, r.Stats.StddevMs)
		assert.Equal(t, r.Stats.MinMs, r.Stats.MaxMs)
	}
}

func TestRun_VerifyPasses_ForBuiltins(t *testing.T) {
	cfg := smallRunConfig()
	cfg.Verify = true
	cfg.Repeats = 1
	_, err := Run(cfg)
	assert.NoError(t, err)
}

func TestRun_AssertSorted_PassesForBuiltins(t *testing.T) {
	cfg := smallRunConfig()
	cfg.AssertSorted = true
	cfg.Repeats = 1
	_, err := Run(cfg)
	assert.NoError(t, err)
}

func TestRun_EveryElementType(t *testing.T) {
	for _, et := range SupportedTypes() {
		t.Run(et.String(), func(t *testing.T) {
			cfg := DefaultConfig()
			cfg.N = 500
			cfg.Repeats = 1
			cfg.Type = et
			cfg.Algos = []string{"std_sort"}
			cfg.Verify = true
			res, err := Run(cfg)
			assert.NoError(t, err)
			assert.Len(t, res.Rows, 1)
			assert.Equal(t, et, res.Type)
		})
	}
}

func TestRun_InvalidType_FallsBackToI32(t *testing.T) {
	cfg := smallRunConfig()
	cfg.Type = ElemType(99)
	res, err := Run(cfg)
	assert.NoError(t, err)
	assert.Equal(t, ElemI32, res.Type)
}

func TestRun_BaselineSpeedups(t *testing.T) {
	cfg := DefaultConfig()
	cfg.N = 1000
	cfg.Repeats = 2
	cfg.Algos = []string{"std_sort", "heap_sort"}
	b := "std_sort"
	cfg.Baseline = &b

	res, err := Run(cfg)
	assert.NoError(t, err)
	assert.Len(t, res.Rows, 2)
	assert.InDelta(t, 1.0, res.Rows[0].SpeedupVsBaseline, 1e-9)
	assert.Greater(t, res.Rows[1].SpeedupVsBaseline, 0.0)
}

func TestRun_ExcludeFilter_Wins(t *testing.T) {
	cfg := DefaultConfig()
	cfg.N = 100
	cfg.Repeats = 1
	cfg.Algos = []string{"std_sort", "heap_sort"}
	cfg.ExcludeAlgos = []string{"heap_sort"}
	res, err := Run(cfg)
	assert.NoError(t, err)
	assert.Len(t, res.Rows, 1)
	assert.Equal(t, "std_sort", res.Rows[0].Algo)
}

func TestRun_EmptySelection_YieldsNoRows(t *testing.T) {
	cfg := DefaultConfig()
	cfg.N = 100
	cfg.Repeats = 1
	cfg.Algos = []string{"no_such_algorithm"}
	res, err := Run(cfg)
	assert.NoError(t, err)
	assert.Empty(t, res.Rows)
}

func TestRun_MissingPlugin_IsNotFatal(t *testing.T) {
	cfg := smallRunConfig()
	cfg.Repeats = 1
	cfg.PluginPaths = []string{"/nonexistent/plugin.so"}
	res, err := Run(cfg)
	assert.NoError(t, err)
	assert.Len(t, res.Rows, 2)
}

func TestBenchmarkOnce_DoesNotMutateOriginal(t *testing.T) {
	original := []int32{5, 2, 9, 1}
	work := make([]int32, len(original))
	algo := Algorithm[int32]{Name: "probe", Run: func(v []int32) { timsort(v) }}

	_, err := benchmarkOnce(algo, original, work, true)
	assert.NoError(t, err)
	assert.Equal(t, []int32{5, 2, 9, 1}, original)
	assert.Equal(t, []int32{1, 2, 5, 9}, work)
}

func TestBenchmarkOnce_BrokenAlgorithm_FailsAssertion(t *testing.T) {
	original := []int32{5, 2, 9, 1}
	work := make([]int32, len(original))
	broken := Algorithm[int32]{Name: "broken", Run: func(v []int32) {}}

	_, err := benchmarkOnce(broken, original, work, true)
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "broken")
}

func TestRunWithRegistry_Verify_NoOpEntry_FailsNotSorted(t *testing.T) {
	// GIVEN a registry whose only entry leaves the buffer untouched,
	// contributed through a plugin table
	p := &loadedPlugin{path: "mem", v2: []AlgoV2{{Name: "noop", RunI32: func(v []int32) {}}}}
	var regs []Algorithm[int32]
	assert.Equal(t, 1, contributeEntries(p, &regs))

	cfg := DefaultConfig()
	cfg.N = 100
	cfg.Repeats = 1
	cfg.Verify = true

	// THEN verification fails the whole run before any timing happens
	res, err := runWithRegistry(&cfg, regs)
	assert.Nil(t, res)
	if assert.Error(t, err) {
		assert.Contains(t, err.Error(), "not sorted")
		assert.Contains(t, err.Error(), "noop")
	}
}

func TestRunWithRegistry_Verify_CorruptingEntry_FailsMismatch(t *testing.T) {
	// GIVEN an entry that produces sorted output with the wrong values
	corrupt := Algorithm[int32]{Name: "corrupt", Run: func(v []int32) {
		for i := range v {
			v[i] = 0
		}
	}}

	cfg := DefaultConfig()
	cfg.N = 100
	cfg.Repeats = 1
	cfg.Verify = true

	// THEN the sortedness check passes but the reference comparison fails
	res, err := runWithRegistry(&cfg, []Algorithm[int32]{corrupt})
	assert.Nil(t, res)
	if assert.Error(t, err) {
		assert.Contains(t, err.Error(), "mismatch")
		assert.Contains(t, err.Error(), "corrupt")
	}
}

func TestRunWithRegistry_VerifyOff_BrokenEntryStillTimed(t *testing.T) {
	// without verify or assert-sorted, a broken entry is timed like any other
	noop := Algorithm[int32]{Name: "noop", Run: func(v []int32) {}}
	cfg := DefaultConfig()
	cfg.N = 100
	cfg.Repeats = 1

	res, err := runWithRegistry(&cfg, []Algorithm[int32]{noop})
	assert.NoError(t, err)
	assert.Len(t, res.Rows, 1)
}

func TestRun_Float32RunsDistribution(t *testing.T) {
	cfg := DefaultConfig()
	cfg.N = 512
	cfg.Type = ElemF32
	cfg.Dist = DistRuns
	cfg.Repeats = 2
	cfg.Algos = []string{"std_sort"}

	res, err := Run(cfg)
	assert.NoError(t, err)
	assert.Len(t, res.Rows, 1)
	assert.GreaterOrEqual(t, res.Rows[0].Stats.MedianMs, 0.0)
}

func TestRun_StringSortedDistribution(t *testing.T) {
	cfg := DefaultConfig()
	cfg.N = 256
	cfg.Type = ElemStr
	cfg.Dist = DistSorted
	cfg.Repeats = 1
	cfg.Algos = []string{"std_sort"}
	cfg.Verify = true

	res, err := Run(cfg)
	assert.NoError(t, err)
	assert.Len(t, res.Rows, 1)
	assert.Equal(t, "sorted", res.Rows[0].Dist)
}

func TestRun_DupsSingleValue_TriviallySorted(t *testing.T) {
	cfg := DefaultConfig()
	cfg.N = 300
	cfg.Dist = DistDups
	cfg.DupValues = 1
	cfg.Repeats = 1
	cfg.Verify = true
	cfg.AssertSorted = true
	_, err := Run(cfg)
	assert.NoError(t, err)
}

func TestRun_SameSeed_SameRowSetAndDataset(t *testing.T) {
	cfg := DefaultConfig()
	cfg.N = 1000
	cfg.Repeats = 1
	cfg.Verify = true
	s := uint64(7)
	cfg.Seed = &s

	a, err := Run(cfg)
	assert.NoError(t, err)
	b, err := Run(cfg)
	assert.NoError(t, err)

	assert.Equal(t, len(a.Rows), len(b.Rows))
	for i := range a.Rows {
		assert.Equal(t, a.Rows[i].Algo, b.Rows[i].Algo)
	}
	assert.Equal(t, &s, a.Seed)
}
