package bench

import (
	"math"
	"slices"
	"strings"

	"github.com/sirupsen/logrus"
	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat"
)

// quickselect partially reorders v so that v[k] holds the k-th order
// statistic, every element left of k is <= v[k], and every element right of
// k is >= v[k].
func quickselect(v []float64, k int) {
	lo, hi := 0, len(v)
	for hi-lo > 1 {
		p := v[lo+(hi-lo)/2]
		i, j := lo, hi-1
		for i <= j {
			for v[i] < p {
				i++
			}
			for v[j] > p {
				j--
			}
			if i <= j {
				v[i], v[j] = v[j], v[i]
				i++
				j--
			}
		}
		switch {
		case k <= j:
			hi = j + 1
		case k >= i:
			lo = i
		default:
			return
		}
	}
}

// medianPartial computes the partial-selection median: the middle-rank
// element for odd counts; for even counts, the average of the maximum
// element among the lower half left behind by the selection and the
// middle-rank element. Mutates v.
func medianPartial(v []float64) float64 {
	n := len(v)
	if n == 0 {
		return 0
	}
	mid := n / 2
	quickselect(v, mid)
	if n%2 == 1 {
		return v[mid]
	}
	return 0.5 * (floats.Max(v[:mid]) + v[mid])
}

// summarize reduces one algorithm's timed samples to its aggregate row
// statistics. Stddev is the population form (divide by n), zero below two
// samples.
func summarize(times []float64) TimingStats {
	med := medianPartial(slices.Clone(times))
	st := TimingStats{MedianMs: med, MeanMs: med, MinMs: med, MaxMs: med}
	if len(times) == 0 {
		return st
	}
	st.MinMs = floats.Min(times)
	st.MaxMs = floats.Max(times)
	st.MeanMs = stat.Mean(times, nil)
	if len(times) >= 2 {
		ss := 0.0
		for _, x := range times {
			d := x - st.MeanMs
			ss += d * d
		}
		st.StddevMs = math.Sqrt(ss / float64(len(times)))
	}
	return st
}

// applyBaseline rewrites every row's speedup as baseline-median over own
// median. Rows keep the default 1.0 when no baseline is configured, the
// baseline was not executed, or its median is zero.
func applyBaseline(rows []ResultRow, baseline *string) {
	if baseline == nil || len(rows) == 0 {
		return
	}
	name := strings.ToLower(*baseline)
	baselineMed := 0.0
	for _, r := range rows {
		if strings.ToLower(r.Algo) == name {
			baselineMed = r.Stats.MedianMs
			break
		}
	}
	if baselineMed <= 0 {
		logrus.Warnf("baseline %q not found among executed algorithms; speedups default to 1.0", *baseline)
		return
	}
	for i := range rows {
		rows[i].SpeedupVsBaseline = baselineMed / math.Max(1e-12, rows[i].Stats.MedianMs)
	}
}
