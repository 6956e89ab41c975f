package bench

// TimingStats aggregates one algorithm's timed samples, all in milliseconds.
type TimingStats struct {
	MedianMs float64 `json:"median_ms"`
	MeanMs   float64 `json:"mean_ms"`
	MinMs    float64 `json:"min_ms"`
	MaxMs    float64 `json:"max_ms"`
	StddevMs float64 `json:"stddev_ms"` // population stddev; 0 when fewer than 2 samples
}

// ResultRow is one algorithm's aggregate result within a run.
type ResultRow struct {
	Algo              string      `json:"algo"`
	N                 int         `json:"N"`
	Dist              string      `json:"dist"`
	Stats             TimingStats `json:"stats"`
	SpeedupVsBaseline float64     `json:"speedup_vs_baseline"`
}

// RunResult is the value handed back to the caller: everything needed to
// render CSV/JSON/JSONL or plots, independent of any output encoding.
// Rows appear in registry iteration order, post-filtering.
type RunResult struct {
	Type     ElemType    `json:"type"`
	N        int         `json:"N"`
	Dist     string      `json:"dist"`
	Repeats  int         `json:"repeats"` // effective count, max(1, Config.Repeats)
	Seed     *uint64     `json:"seed,omitempty"`
	Baseline *string     `json:"baseline,omitempty"`
	Rows     []ResultRow `json:"rows"`
}
