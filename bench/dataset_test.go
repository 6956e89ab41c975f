package bench

import (
	"slices"
	"testing"

	"github.com/stretchr/testify/assert"
)

func genWith(cfg Config) []int32 {
	rng := newRand(cfg.Seed)
	return MakeDataset[int32](&cfg, rng)
}

func TestMakeDataset_DefaultSeed_IsDeterministic(t *testing.T) {
	// GIVEN two generations with identical parameters and no explicit seed
	cfg := DefaultConfig()
	cfg.N = 4096

	// THEN the datasets are identical element for element
	a := genWith(cfg)
	b := genWith(cfg)
	assert.Equal(t, a, b)
}

func TestMakeDataset_DifferentSeeds_Differ(t *testing.T) {
	cfg := DefaultConfig()
	cfg.N = 4096
	s1, s2 := uint64(1), uint64(2)

	cfg.Seed = &s1
	a := genWith(cfg)
	cfg.Seed = &s2
	b := genWith(cfg)
	assert.NotEqual(t, a, b)
}

func TestMakeDataset_LengthIsExactlyN(t *testing.T) {
	cfg := DefaultConfig()
	for _, n := range []int{0, 1, 2, 7, 1000} {
		cfg.N = n
		assert.Len(t, genWith(cfg), n)
	}
}

func TestMakeDataset_SortedAndReverse(t *testing.T) {
	cfg := DefaultConfig()
	cfg.N = 512

	cfg.Dist = DistSorted
	v := genWith(cfg)
	assert.True(t, slices.IsSorted(v))
	assert.Equal(t, int32(0), v[0])
	assert.Equal(t, int32(511), v[511])

	cfg.Dist = DistReverse
	v = genWith(cfg)
	assert.Equal(t, int32(511), v[0])
	assert.Equal(t, int32(0), v[511])
	for i := 1; i < len(v); i++ {
		assert.LessOrEqual(t, v[i], v[i-1])
	}
}

func TestMakeDataset_Dups_SingleValue_IsConstant(t *testing.T) {
	// GIVEN K=1 distinct values
	cfg := DefaultConfig()
	cfg.N = 256
	cfg.Dist = DistDups
	cfg.DupValues = 1

	// THEN every element is the same value
	v := genWith(cfg)
	for _, x := range v {
		assert.Equal(t, int32(0), x)
	}
}

func TestMakeDataset_Dups_ValuesStayBelowK(t *testing.T) {
	cfg := DefaultConfig()
	cfg.N = 2000
	cfg.Dist = DistDups
	cfg.DupValues = 16

	for _, x := range genWith(cfg) {
		assert.GreaterOrEqual(t, x, int32(0))
		assert.Less(t, x, int32(16))
	}
}

func TestMakeDataset_Partial_ZeroPct_StaysSorted(t *testing.T) {
	cfg := DefaultConfig()
	cfg.N = 1000
	cfg.Dist = DistPartial
	cfg.PartialShufflePct = 0
	assert.True(t, slices.IsSorted(genWith(cfg)))
}

func TestMakeDataset_Partial_IsPermutationOfIota(t *testing.T) {
	cfg := DefaultConfig()
	cfg.N = 1000
	cfg.Dist = DistPartial
	cfg.PartialShufflePct = 50

	v := genWith(cfg)
	sorted := slices.Clone(v)
	slices.Sort(sorted)
	for i, x := range sorted {
		assert.Equal(t, int32(i), x)
	}
}

func TestMakeDataset_Saw_PeriodIsCappedAt1024(t *testing.T) {
	cfg := DefaultConfig()
	cfg.N = 3000
	cfg.Dist = DistSaw

	v := genWith(cfg)
	for i, x := range v {
		assert.Equal(t, int32(i%1024), x)
	}
}

func TestMakeDataset_Saw_SmallN_PeriodIsN(t *testing.T) {
	cfg := DefaultConfig()
	cfg.N = 10
	cfg.Dist = DistSaw
	v := genWith(cfg)
	for i, x := range v {
		assert.Equal(t, int32(i), x)
	}
}

func TestMakeDataset_Runs_BlocksAreSorted(t *testing.T) {
	cfg := DefaultConfig()
	cfg.N = 5000
	cfg.Dist = DistRuns

	v := genWith(cfg)
	for i := 0; i < len(v); i += runMaxLen {
		hi := min(i+runMaxLen, len(v))
		assert.True(t, slices.IsSorted(v[i:hi]), "block at %d", i)
	}
}

func TestMakeDataset_OrganPipe_Shape(t *testing.T) {
	cfg := DefaultConfig()
	cfg.N = 7
	cfg.Dist = DistOrganPipe
	assert.Equal(t, []int32{0, 1, 2, 3, 2, 1, 0}, genWith(cfg))
}

func TestMakeDataset_Staggered_IsPermutationWhenDivisible(t *testing.T) {
	// GIVEN N divisible by the block size
	cfg := DefaultConfig()
	cfg.N = 128
	cfg.Dist = DistStaggered
	cfg.StaggerBlock = 8

	// THEN the dataset is a permutation of 0..N-1
	v := genWith(cfg)
	sorted := slices.Clone(v)
	slices.Sort(sorted)
	for i, x := range sorted {
		assert.Equal(t, int32(i), x)
	}
}

func TestMakeDataset_Zipf_ValuesStayBelowK(t *testing.T) {
	cfg := DefaultConfig()
	cfg.N = 3000
	cfg.Dist = DistZipf
	cfg.DupValues = 10
	cfg.ZipfS = 1.2

	counts := map[int32]int{}
	for _, x := range genWith(cfg) {
		assert.GreaterOrEqual(t, x, int32(0))
		assert.Less(t, x, int32(10))
		counts[x]++
	}
	// rank 0 dominates under a skew this strong
	assert.Greater(t, counts[0], counts[9])
}

func TestMakeDataset_RunsHT_IsDeterministic(t *testing.T) {
	cfg := DefaultConfig()
	cfg.N = 4096
	cfg.Dist = DistRunsHT
	assert.Equal(t, genWith(cfg), genWith(cfg))
}

func TestMakeDataset_Gauss_IsDeterministicAcrossTypes(t *testing.T) {
	cfg := DefaultConfig()
	cfg.N = 2000
	cfg.Dist = DistGauss

	ua := MakeDataset[uint32](&cfg, newRand(nil))
	ub := MakeDataset[uint32](&cfg, newRand(nil))
	assert.Equal(t, ua, ub)

	fa := MakeDataset[float64](&cfg, newRand(nil))
	fb := MakeDataset[float64](&cfg, newRand(nil))
	assert.Equal(t, fa, fb)
}

func TestMakeDataset_Strings_FixedWidthAndOrderPreserving(t *testing.T) {
	cfg := DefaultConfig()
	cfg.N = 300
	cfg.Dist = DistSorted

	rng := newRand(nil)
	v := MakeDataset[string](&cfg, rng)
	assert.True(t, slices.IsSorted(v))
	for _, s := range v {
		assert.Len(t, s, strKeyLen)
	}
}

func TestStrNumKey_LexOrderEqualsNumericOrder(t *testing.T) {
	assert.Less(t, strNumKey(99), strNumKey(100))
	assert.Less(t, strNumKey(0), strNumKey(1))
	assert.Equal(t, "000000000042", strNumKey(42))
}

func TestStrBase26Key_LexOrderEqualsNumericOrder(t *testing.T) {
	assert.Less(t, strBase26Key(25), strBase26Key(26))
	assert.Equal(t, strKeyLen, len(strBase26Key(1_000_000_000_000)))
}

func TestMakeDataset_Strings_Random_IsDeterministic(t *testing.T) {
	cfg := DefaultConfig()
	cfg.N = 500
	a := MakeDataset[string](&cfg, newRand(nil))
	b := MakeDataset[string](&cfg, newRand(nil))
	assert.Equal(t, a, b)
}

func TestStaggeredValue_FullBlocks_InterleaveFormula(t *testing.T) {
	// n=8, B=4, m=2: v[i] = (i mod B)*m + i/B
	want := []int{0, 2, 4, 6, 1, 3, 5, 7}
	for i, w := range want {
		assert.Equal(t, w, staggeredValue(i, 8, 4), "i=%d", i)
	}
}

func TestStaggeredValue_TailKeepsOwnIndex(t *testing.T) {
	// n=10, block=4: the last two elements past the full blocks stay put
	assert.Equal(t, 8, staggeredValue(8, 10, 4))
	assert.Equal(t, 9, staggeredValue(9, 10, 4))
}

func TestIntFromFloat_SaturatesAtExtremes(t *testing.T) {
	assert.Equal(t, int32(2147483647), intFromFloat[int32](1e18, 32, true))
	assert.Equal(t, int32(-2147483648), intFromFloat[int32](-1e18, 32, true))
	assert.Equal(t, uint32(0), intFromFloat[uint32](-5, 32, false))
	assert.Equal(t, uint32(4294967295), intFromFloat[uint32](1e18, 32, false))
}
