package bench

import (
	"math"
	"math/rand/v2"
	"slices"
	"sort"

	"gonum.org/v1/gonum/stat/distuv"
)

// Element is the closed set of sortable representations. Dispatch over the
// set happens once per run (see harness.go), never per call.
type Element interface {
	~int32 | ~uint32 | ~int64 | ~uint64 | ~float32 | ~float64 | ~string
}

// IntElem is the subset of Element with integral representations.
type IntElem interface {
	~int32 | ~uint32 | ~int64 | ~uint64
}

// FloatElem is the subset of Element with floating-point representations.
type FloatElem interface {
	~float32 | ~float64
}

const (
	sawMaxPeriod = 1024
	runMaxLen    = 2048
	runsHTBase   = 32 // heavy-tail run length scale
	strKeyLen    = 12
)

// MakeDataset generates the run's original dataset: length exactly cfg.N,
// deterministic for identical (seed, N, type, dist, params) inputs.
func MakeDataset[T Element](cfg *Config, rng *rand.Rand) []T {
	var zero T
	switch any(zero).(type) {
	case int32:
		return any(makeIntData[int32](cfg, rng, 32, true)).([]T)
	case uint32:
		return any(makeIntData[uint32](cfg, rng, 32, false)).([]T)
	case int64:
		return any(makeIntData[int64](cfg, rng, 64, true)).([]T)
	case uint64:
		return any(makeIntData[uint64](cfg, rng, 64, false)).([]T)
	case float32:
		return any(makeFloatData[float32](cfg, rng)).([]T)
	case float64:
		return any(makeFloatData[float64](cfg, rng)).([]T)
	case string:
		return any(makeStringData(cfg, rng)).([]T)
	}
	return make([]T, cfg.N)
}

// sawPeriod is min(n, 1024) with a floor of 1.
func sawPeriod(n int) int {
	p := n
	if p > sawMaxPeriod {
		p = sawMaxPeriod
	}
	if p < 1 {
		p = 1
	}
	return p
}

// runLength is min(n, 2048) with a floor of 1.
func runLength(n int) int {
	r := n
	if r > runMaxLen {
		r = runMaxLen
	}
	if r < 1 {
		r = 1
	}
	return r
}

func clampPct(pct int) int {
	if pct < 0 {
		return 0
	}
	if pct > 100 {
		return 100
	}
	return pct
}

// partialSwaps performs ⌊n·pct/100⌋ independent uniform-random index-pair
// swaps on an initially sorted sequence.
func partialSwaps[T any](v []T, rng *rand.Rand, pct int) {
	n := len(v)
	if n == 0 {
		return
	}
	toShuffle := n * clampPct(pct) / 100
	for i := 0; i < toShuffle; i++ {
		a, b := rng.IntN(n), rng.IntN(n)
		v[a], v[b] = v[b], v[a]
	}
}

// zipfCum builds the cumulative probability table for a discrete Zipf law
// over ranks 1..k with skew s: P(rank r) ∝ r^-s.
func zipfCum(k int, s float64) []float64 {
	if k < 1 {
		k = 1
	}
	if !(s > 0) {
		s = 1.2
	}
	cum := make([]float64, k)
	z := 0.0
	for r := 1; r <= k; r++ {
		z += 1.0 / math.Pow(float64(r), s)
	}
	run := 0.0
	for r := 1; r <= k; r++ {
		run += (1.0 / math.Pow(float64(r), s)) / z
		cum[r-1] = run
	}
	return cum
}

// zipfDraw samples a rank index in [0, len(cum)) by inverse transform.
func zipfDraw(cum []float64, rng *rand.Rand) int {
	u := rng.Float64()
	idx := sort.SearchFloat64s(cum, u)
	if idx >= len(cum) {
		idx = len(cum) - 1
	}
	return idx
}

// organPipeValue is the ascend-then-descend shape: min(i, n-1-i).
func organPipeValue(i, n int) int {
	if j := n - 1 - i; j < i {
		return j
	}
	return i
}

// staggeredValue interleaves B ascending subsequences over 0..n-1: for the
// m = n/B full blocks, v[i] = (i mod B)·m + i/B. The tail past the last
// full block stays at its own index.
func staggeredValue(i, n, block int) int {
	if block < 1 {
		block = 1
	}
	m := n / block
	if m == 0 || i >= m*block {
		return i
	}
	return (i%block)*m + i/block
}

// heavyTailRuns sorts consecutive blocks whose lengths are drawn from a
// Pareto(1, alpha) law scaled by runsHTBase and clamped to [1, 2048].
func heavyTailRuns[T Element](v []T, rng *rand.Rand, alpha float64) {
	if !(alpha > 0) {
		alpha = 1.5
	}
	pd := distuv.Pareto{Xm: 1, Alpha: alpha, Src: rng}
	n := len(v)
	for i := 0; i < n; {
		l := int(math.Ceil(runsHTBase * pd.Rand()))
		if l < 1 {
			l = 1
		}
		if l > runMaxLen {
			l = runMaxLen
		}
		if i+l > n {
			l = n - i
		}
		slices.Sort(v[i : i+l])
		i += l
	}
}

// intFromFloat clamps x into the representable range of the target integral
// type and converts. Deterministic at the extremes (saturates).
func intFromFloat[T IntElem](x float64, width uint, signed bool) T {
	if signed {
		hi := math.Ldexp(1, int(width-1))
		if x >= hi-1 {
			return T(uint64(1)<<(width-1) - 1)
		}
		if x <= -hi {
			return T(uint64(1) << (width - 1)) // min-value bit pattern
		}
		return T(int64(x))
	}
	hi := math.Ldexp(1, int(width))
	if x >= hi-1 {
		if width == 64 {
			allOnes := ^uint64(0)
			return T(allOnes)
		}
		return T(uint64(1)<<width - 1)
	}
	if x <= 0 {
		return T(0)
	}
	return T(uint64(x))
}

func makeIntData[T IntElem](cfg *Config, rng *rand.Rand, width uint, signed bool) []T {
	n := cfg.N
	v := make([]T, n)
	randFull := func() T {
		u := rng.Uint64()
		if width < 64 {
			u &= uint64(1)<<width - 1
		}
		return T(u)
	}
	maxV := math.Ldexp(1, int(width)) // 2^width; signed range also spans 2^width
	if signed {
		maxV = math.Ldexp(1, int(width-1)) - 1
	} else {
		maxV--
	}

	switch cfg.Dist {
	case DistSorted:
		for i := range v {
			v[i] = T(i)
		}
	case DistReverse:
		for i := range v {
			v[i] = T(n - 1 - i)
		}
	case DistDups:
		k := max(1, cfg.DupValues)
		for i := range v {
			v[i] = T(rng.IntN(k))
		}
	case DistSaw:
		p := sawPeriod(n)
		for i := range v {
			v[i] = T(i % p)
		}
	case DistRuns:
		for i := range v {
			v[i] = randFull()
		}
		r := runLength(n)
		for i := 0; i < n; i += r {
			hi := min(i+r, n)
			slices.Sort(v[i:hi])
		}
	case DistGauss:
		nd := distuv.Normal{Mu: 0, Sigma: 1, Src: rng}
		mean, minV := 0.0, 0.0
		if signed {
			minV = -math.Ldexp(1, int(width-1))
		} else {
			mean = maxV / 2
		}
		stddev := (maxV - minV) / 8
		for i := range v {
			v[i] = intFromFloat[T](mean+stddev*nd.Rand(), width, signed)
		}
	case DistExp:
		ed := distuv.Exponential{Rate: 1, Src: rng}
		scale := maxV / 8
		for i := range v {
			v[i] = intFromFloat[T](scale*ed.Rand(), width, signed)
		}
	case DistZipf:
		cum := zipfCum(max(1, cfg.DupValues), cfg.ZipfS)
		for i := range v {
			v[i] = T(zipfDraw(cum, rng))
		}
	case DistOrganPipe:
		for i := range v {
			v[i] = T(organPipeValue(i, n))
		}
	case DistStaggered:
		for i := range v {
			v[i] = T(staggeredValue(i, n, cfg.StaggerBlock))
		}
	case DistRunsHT:
		for i := range v {
			v[i] = randFull()
		}
		heavyTailRuns(v, rng, cfg.RunsAlpha)
	case DistPartial:
		for i := range v {
			v[i] = T(i)
		}
		partialSwaps(v, rng, cfg.PartialShufflePct)
	default: // DistRandom and safe fallback
		for i := range v {
			v[i] = randFull()
		}
	}
	return v
}

func makeFloatData[T FloatElem](cfg *Config, rng *rand.Rand) []T {
	n := cfg.N
	v := make([]T, n)

	switch cfg.Dist {
	case DistSorted:
		for i := range v {
			v[i] = T(i)
		}
	case DistReverse:
		for i := range v {
			v[i] = T(n - 1 - i)
		}
	case DistDups:
		k := max(1, cfg.DupValues)
		for i := range v {
			v[i] = T(rng.IntN(k))
		}
	case DistSaw:
		p := sawPeriod(n)
		for i := range v {
			v[i] = T(i % p)
		}
	case DistRuns:
		for i := range v {
			v[i] = T(rng.Float64())
		}
		r := runLength(n)
		for i := 0; i < n; i += r {
			hi := min(i+r, n)
			slices.Sort(v[i:hi])
		}
	case DistGauss:
		nd := distuv.Normal{Mu: 0, Sigma: 1, Src: rng}
		for i := range v {
			v[i] = T(nd.Rand())
		}
	case DistExp:
		ed := distuv.Exponential{Rate: 1, Src: rng}
		for i := range v {
			v[i] = T(ed.Rand())
		}
	case DistZipf:
		cum := zipfCum(max(1, cfg.DupValues), cfg.ZipfS)
		for i := range v {
			v[i] = T(zipfDraw(cum, rng))
		}
	case DistOrganPipe:
		for i := range v {
			v[i] = T(organPipeValue(i, n))
		}
	case DistStaggered:
		for i := range v {
			v[i] = T(staggeredValue(i, n, cfg.StaggerBlock))
		}
	case DistRunsHT:
		for i := range v {
			v[i] = T(rng.Float64())
		}
		heavyTailRuns(v, rng, cfg.RunsAlpha)
	case DistPartial:
		for i := range v {
			v[i] = T(i)
		}
		partialSwaps(v, rng, cfg.PartialShufflePct)
	default:
		for i := range v {
			v[i] = T(rng.Float64())
		}
	}
	return v
}

// strNumKey encodes x as a fixed-width zero-padded decimal so lexicographic
// order equals numeric order.
func strNumKey(x uint64) string {
	buf := [strKeyLen]byte{}
	for i := strKeyLen - 1; i >= 0; i-- {
		buf[i] = byte('0' + x%10)
		x /= 10
	}
	return string(buf[:])
}

// strBase26Key encodes x as a fixed-width base-26 lowercase word, again
// preserving numeric order lexicographically.
func strBase26Key(x uint64) string {
	buf := [strKeyLen]byte{}
	for i := strKeyLen - 1; i >= 0; i-- {
		buf[i] = byte('a' + x%26)
		x /= 26
	}
	return string(buf[:])
}

const strRandMax = uint64(1_000_000_000_000)

func makeStringData(cfg *Config, rng *rand.Rand) []string {
	n := cfg.N
	v := make([]string, n)

	switch cfg.Dist {
	case DistSorted:
		for i := range v {
			v[i] = strNumKey(uint64(i))
		}
	case DistReverse:
		for i := range v {
			v[i] = strNumKey(uint64(n - 1 - i))
		}
	case DistDups:
		k := max(1, cfg.DupValues)
		for i := range v {
			v[i] = strNumKey(uint64(rng.IntN(k)))
		}
	case DistSaw:
		p := sawPeriod(n)
		for i := range v {
			v[i] = strNumKey(uint64(i % p))
		}
	case DistRuns:
		for i := range v {
			v[i] = strBase26Key(rng.Uint64N(strRandMax + 1))
		}
		r := runLength(n)
		for i := 0; i < n; i += r {
			hi := min(i+r, n)
			slices.Sort(v[i:hi])
		}
	case DistGauss:
		nd := distuv.Normal{Mu: 0, Sigma: 1, Src: rng}
		for i := range v {
			x := (nd.Rand() + 4.0) * 1e10
			if x < 0 {
				x = 0
			}
			v[i] = strBase26Key(uint64(math.Round(x)))
		}
	case DistExp:
		ed := distuv.Exponential{Rate: 1, Src: rng}
		for i := range v {
			v[i] = strBase26Key(uint64(ed.Rand() * 1e10))
		}
	case DistZipf:
		cum := zipfCum(max(1, cfg.DupValues), cfg.ZipfS)
		for i := range v {
			v[i] = strNumKey(uint64(zipfDraw(cum, rng)))
		}
	case DistOrganPipe:
		for i := range v {
			v[i] = strNumKey(uint64(organPipeValue(i, n)))
		}
	case DistStaggered:
		for i := range v {
			v[i] = strNumKey(uint64(staggeredValue(i, n, cfg.StaggerBlock)))
		}
	case DistRunsHT:
		for i := range v {
			v[i] = strBase26Key(rng.Uint64N(strRandMax + 1))
		}
		heavyTailRuns(v, rng, cfg.RunsAlpha)
	case DistPartial:
		for i := range v {
			v[i] = strNumKey(uint64(i))
		}
		partialSwaps(v, rng, cfg.PartialShufflePct)
	default:
		for i := range v {
			v[i] = strBase26Key(rng.Uint64N(strRandMax + 1))
		}
	}
	return v
}
