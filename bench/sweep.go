package bench

import (
	"fmt"
	"os"
	"regexp"
	"strings"

	"gopkg.in/yaml.v3"
)

// SweepSpec is a versioned YAML description of a sequence of benchmark runs
// sharing a set of defaults. Each run opens its own registry and plugin
// handles and closes them before the next run starts.
type SweepSpec struct {
	Version  string     `yaml:"version"`
	Defaults SweepRun   `yaml:"defaults"`
	Runs     []SweepRun `yaml:"runs"`
}

// SweepRun holds one run's overrides. Zero values defer to the sweep
// defaults, then to the engine defaults.
type SweepRun struct {
	N            int      `yaml:"n,omitempty"`
	Dist         string   `yaml:"dist,omitempty"`
	Type         string   `yaml:"type,omitempty"`
	Repeats      int      `yaml:"repeats,omitempty"`
	Warmup       int      `yaml:"warmup,omitempty"`
	Seed         *uint64  `yaml:"seed,omitempty"`
	Algos        []string `yaml:"algos,omitempty"`
	AlgoRegex    []string `yaml:"algo_regex,omitempty"`
	Exclude      []string `yaml:"exclude,omitempty"`
	ExcludeRegex []string `yaml:"exclude_regex,omitempty"`
	PartialPct   int      `yaml:"partial_pct,omitempty"`
	DupsK        int      `yaml:"dups_k,omitempty"`
	ZipfS        float64  `yaml:"zipf_s,omitempty"`
	RunsAlpha    float64  `yaml:"runs_alpha,omitempty"`
	StaggerBlock int      `yaml:"stagger_block,omitempty"`
	Verify       *bool    `yaml:"verify,omitempty"`
	AssertSorted *bool    `yaml:"assert_sorted,omitempty"`
	Threads      int      `yaml:"threads,omitempty"`
	Plugins      []string `yaml:"plugins,omitempty"`
	Baseline     string   `yaml:"baseline,omitempty"`
}

// LoadSweepSpec reads and validates a sweep spec from a YAML file.
func LoadSweepSpec(path string) (*SweepSpec, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read sweep spec: %w", err)
	}
	var spec SweepSpec
	if err := yaml.Unmarshal(data, &spec); err != nil {
		return nil, fmt.Errorf("parse sweep spec: %w", err)
	}
	if spec.Version != "" && spec.Version != "1" {
		return nil, fmt.Errorf("unsupported sweep spec version %q", spec.Version)
	}
	if len(spec.Runs) == 0 {
		return nil, fmt.Errorf("sweep spec has no runs")
	}
	return &spec, nil
}

func compileRegexList(patterns []string) ([]*regexp.Regexp, error) {
	var out []*regexp.Regexp
	for _, pat := range patterns {
		if pat == "" {
			continue
		}
		re, err := regexp.Compile("(?i)" + pat)
		if err != nil {
			return nil, fmt.Errorf("invalid regex %q: %w", pat, err)
		}
		out = append(out, re)
	}
	return out, nil
}

// CompileRegexList compiles case-insensitive algorithm name filters.
func CompileRegexList(patterns []string) ([]*regexp.Regexp, error) {
	return compileRegexList(patterns)
}

func lowerAll(names []string) []string {
	out := make([]string, 0, len(names))
	for _, n := range names {
		if n != "" {
			out = append(out, strings.ToLower(n))
		}
	}
	return out
}

// Configs expands the spec into one Config per run, applying defaults.
func (s *SweepSpec) Configs() ([]Config, error) {
	cfgs := make([]Config, 0, len(s.Runs))
	for i, run := range s.Runs {
		merged := mergeRuns(s.Defaults, run)
		cfg, err := merged.toConfig()
		if err != nil {
			return nil, fmt.Errorf("run %d: %w", i, err)
		}
		cfgs = append(cfgs, cfg)
	}
	return cfgs, nil
}

func mergeRuns(base, over SweepRun) SweepRun {
	out := base
	if over.N != 0 {
		out.N = over.N
	}
	if over.Dist != "" {
		out.Dist = over.Dist
	}
	if over.Type != "" {
		out.Type = over.Type
	}
	if over.Repeats != 0 {
		out.Repeats = over.Repeats
	}
	if over.Warmup != 0 {
		out.Warmup = over.Warmup
	}
	if over.Seed != nil {
		out.Seed = over.Seed
	}
	if len(over.Algos) > 0 {
		out.Algos = over.Algos
	}
	if len(over.AlgoRegex) > 0 {
		out.AlgoRegex = over.AlgoRegex
	}
	if len(over.Exclude) > 0 {
		out.Exclude = over.Exclude
	}
	if len(over.ExcludeRegex) > 0 {
		out.ExcludeRegex = over.ExcludeRegex
	}
	if over.PartialPct != 0 {
		out.PartialPct = over.PartialPct
	}
	if over.DupsK != 0 {
		out.DupsK = over.DupsK
	}
	if over.ZipfS != 0 {
		out.ZipfS = over.ZipfS
	}
	if over.RunsAlpha != 0 {
		out.RunsAlpha = over.RunsAlpha
	}
	if over.StaggerBlock != 0 {
		out.StaggerBlock = over.StaggerBlock
	}
	if over.Verify != nil {
		out.Verify = over.Verify
	}
	if over.AssertSorted != nil {
		out.AssertSorted = over.AssertSorted
	}
	if over.Threads != 0 {
		out.Threads = over.Threads
	}
	if len(over.Plugins) > 0 {
		out.Plugins = over.Plugins
	}
	if over.Baseline != "" {
		out.Baseline = over.Baseline
	}
	return out
}

func (r SweepRun) toConfig() (Config, error) {
	cfg := DefaultConfig()
	if r.N != 0 {
		cfg.N = r.N
	}
	if r.Dist != "" {
		d, err := ParseDist(r.Dist)
		if err != nil {
			return cfg, err
		}
		cfg.Dist = d
	}
	if r.Type != "" {
		t, err := ParseElemType(r.Type)
		if err != nil {
			return cfg, err
		}
		cfg.Type = t
	}
	if r.Repeats != 0 {
		cfg.Repeats = r.Repeats
	}
	cfg.Warmup = r.Warmup
	cfg.Seed = r.Seed
	cfg.Algos = lowerAll(r.Algos)
	cfg.ExcludeAlgos = lowerAll(r.Exclude)
	var err error
	if cfg.AlgoRegex, err = compileRegexList(r.AlgoRegex); err != nil {
		return cfg, err
	}
	if cfg.ExcludeRegex, err = compileRegexList(r.ExcludeRegex); err != nil {
		return cfg, err
	}
	if r.PartialPct != 0 {
		cfg.PartialShufflePct = r.PartialPct
	}
	if r.DupsK != 0 {
		cfg.DupValues = r.DupsK
	}
	if r.ZipfS != 0 {
		cfg.ZipfS = r.ZipfS
	}
	if r.RunsAlpha != 0 {
		cfg.RunsAlpha = r.RunsAlpha
	}
	if r.StaggerBlock != 0 {
		cfg.StaggerBlock = r.StaggerBlock
	}
	cfg.Verify = r.Verify != nil && *r.Verify
	cfg.AssertSorted = r.AssertSorted != nil && *r.AssertSorted
	cfg.Threads = r.Threads
	cfg.PluginPaths = r.Plugins
	if r.Baseline != "" {
		b := r.Baseline
		cfg.Baseline = &b
	}
	return cfg, nil
}
