package bench

import (
	"fmt"
	"regexp"
	"strings"
)

// Dist identifies a dataset distribution shape.
type Dist int

const (
	DistRandom Dist = iota
	DistPartial
	DistDups
	DistReverse
	DistSorted
	DistSaw
	DistRuns
	DistGauss
	DistExp
	DistZipf
	DistOrganPipe
	DistStaggered
	DistRunsHT
)

var distNames = []string{
	"random", "partial", "dups", "reverse", "sorted",
	"saw", "runs", "gauss", "exp", "zipf",
	"organpipe", "staggered", "runs_ht",
}

// String returns the stable output name of the distribution.
// Out-of-range values fall back to "random".
func (d Dist) String() string {
	if d < 0 || int(d) >= len(distNames) {
		return "random"
	}
	return distNames[d]
}

// AllDistNames returns the stable name table in declaration order.
func AllDistNames() []string {
	out := make([]string, len(distNames))
	copy(out, distNames)
	return out
}

// ParseDist maps a name to a Dist. Unknown names fall back to DistRandom
// with a non-nil error so callers can choose between strict and lenient use.
func ParseDist(s string) (Dist, error) {
	switch strings.ToLower(s) {
	case "organ-pipe":
		return DistOrganPipe, nil
	case "kruns_ht":
		return DistRunsHT, nil
	}
	for i, name := range distNames {
		if name == strings.ToLower(s) {
			return Dist(i), nil
		}
	}
	return DistRandom, fmt.Errorf("unknown distribution %q", s)
}

// ElemType identifies the element representation being sorted.
type ElemType int

const (
	ElemI32 ElemType = iota
	ElemU32
	ElemI64
	ElemU64
	ElemF32
	ElemF64
	ElemStr
)

var elemTypeNames = []string{"i32", "u32", "i64", "u64", "f32", "f64", "str"}

// String returns the stable name of the element type.
// Out-of-range values fall back to "i32".
func (t ElemType) String() string {
	if t < 0 || int(t) >= len(elemTypeNames) {
		return "i32"
	}
	return elemTypeNames[t]
}

// MarshalJSON emits the stable type name rather than the enum ordinal.
func (t ElemType) MarshalJSON() ([]byte, error) {
	return []byte(`"` + t.String() + `"`), nil
}

// SupportedTypes returns every element representation in declaration order.
func SupportedTypes() []ElemType {
	return []ElemType{ElemI32, ElemU32, ElemI64, ElemU64, ElemF32, ElemF64, ElemStr}
}

// ParseElemType maps a name to an ElemType. Unknown names fall back to
// ElemI32 with a non-nil error.
func ParseElemType(s string) (ElemType, error) {
	for i, name := range elemTypeNames {
		if name == strings.ToLower(s) {
			return ElemType(i), nil
		}
	}
	return ElemI32, fmt.Errorf("unknown element type %q", s)
}

// Config describes one benchmark run. It is caller-owned, read-only input:
// the engine never mutates it.
type Config struct {
	N       int      // element count
	Dist    Dist     // distribution kind
	Type    ElemType // element representation
	Repeats int      // timed trials per algorithm (effective count is max(1, Repeats))
	Warmup  int      // discarded warm-up trials per algorithm
	Seed    *uint64  // nil = fixed default seed, for determinism

	Algos        []string         // exact lowercase names to include (empty = all)
	AlgoRegex    []*regexp.Regexp // regex include filters
	ExcludeAlgos []string         // exact lowercase names to exclude; wins over inclusion
	ExcludeRegex []*regexp.Regexp // regex exclude filters; wins over inclusion

	PartialShufflePct int     // for DistPartial, clamped to 0..100
	DupValues         int     // K for DistDups/DistZipf
	ZipfS             float64 // Zipf skew
	RunsAlpha         float64 // heavy-tail alpha for DistRunsHT
	StaggerBlock      int     // block size for DistStaggered

	Verify       bool // verify each algorithm against a reference sort once
	AssertSorted bool // assert sortedness after every trial (fatal on violation)

	Threads     int      // thread-budget hint for internally-parallel algorithms (0 = default)
	PluginPaths []string // shared libraries to load algorithm entries from
	Baseline    *string  // algorithm whose median is the speedup numerator
}

// DefaultConfig returns the engine defaults, matching the CLI defaults.
func DefaultConfig() Config {
	return Config{
		N:                 100000,
		Dist:              DistRandom,
		Type:              ElemI32,
		Repeats:           5,
		PartialShufflePct: 10,
		DupValues:         100,
		ZipfS:             1.2,
		RunsAlpha:         1.5,
		StaggerBlock:      32,
	}
}

// matchesFilter reports whether name matches any exact lowercase name or any
// regex (tried against both the raw and lowercased name). Empty filter lists
// match nothing.
func matchesFilter(exact []string, regexes []*regexp.Regexp, name string) bool {
	ln := strings.ToLower(name)
	for _, s := range exact {
		if s == ln {
			return true
		}
	}
	for _, re := range regexes {
		if re.MatchString(name) || re.MatchString(ln) {
			return true
		}
	}
	return false
}

// algoSelected applies the selection predicate: included iff the include
// lists are empty or match, and the exclude lists do not match. Exclusion
// wins over inclusion.
func (c *Config) algoSelected(name string) bool {
	if len(c.Algos) > 0 || len(c.AlgoRegex) > 0 {
		if !matchesFilter(c.Algos, c.AlgoRegex, name) {
			return false
		}
	}
	return !matchesFilter(c.ExcludeAlgos, c.ExcludeRegex, name)
}
