// Package api exposes the benchmark engine over HTTP. Request sizes are
// capped so a single call cannot pin the process for minutes.
package api

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"github.com/sortbench/sortbench/bench"
)

// Request caps enforced on POST /api/run.
const (
	MaxN       = 10_000_000
	MaxRepeats = 50
)

// RunRequest is the POST /api/run body. Absent fields take the engine
// defaults.
type RunRequest struct {
	N            int      `json:"n"`
	Dist         string   `json:"dist"`
	Type         string   `json:"type"`
	Repeats      int      `json:"repeats"`
	Warmup       int      `json:"warmup"`
	Seed         *uint64  `json:"seed"`
	Algos        []string `json:"algos"`
	Exclude      []string `json:"exclude"`
	PartialPct   int      `json:"partial_pct"`
	DupsK        int      `json:"dups_k"`
	ZipfS        float64  `json:"zipf_s"`
	RunsAlpha    float64  `json:"runs_alpha"`
	StaggerBlock int      `json:"stagger_block"`
	Verify       bool     `json:"verify"`
	AssertSorted bool     `json:"assert_sorted"`
	Threads      int      `json:"threads"`
	Baseline     string   `json:"baseline"`
}

func (r *RunRequest) toConfig() (bench.Config, error) {
	cfg := bench.DefaultConfig()
	if r.N != 0 {
		cfg.N = r.N
	}
	if r.Dist != "" {
		d, err := bench.ParseDist(r.Dist)
		if err != nil {
			return cfg, err
		}
		cfg.Dist = d
	}
	if r.Type != "" {
		t, err := bench.ParseElemType(r.Type)
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
	cfg.Algos = lower(r.Algos)
	cfg.ExcludeAlgos = lower(r.Exclude)
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
	cfg.Verify = r.Verify
	cfg.AssertSorted = r.AssertSorted
	cfg.Threads = r.Threads
	if r.Baseline != "" {
		b := r.Baseline
		cfg.Baseline = &b
	}
	return cfg, nil
}

func lower(names []string) []string {
	out := make([]string, 0, len(names))
	for _, n := range names {
		if n != "" {
			out = append(out, strings.ToLower(n))
		}
	}
	return out
}

// NewRouter builds the HTTP handler. Plugin paths given here are served in
// /api/meta listings and loaded per run.
func NewRouter(pluginPaths []string) *gin.Engine {
	gin.SetMode(gin.ReleaseMode)
	r := gin.New()
	r.Use(gin.Recovery())

	r.GET("/api/meta", func(c *gin.Context) {
		algos := map[string][]string{}
		for _, t := range bench.SupportedTypes() {
			algos[t.String()] = bench.ListAlgorithmsWithPlugins(t, pluginPaths)
		}
		c.JSON(http.StatusOK, gin.H{
			"types": typeNames(),
			"dists": bench.AllDistNames(),
			"algos": algos,
		})
	})

	r.GET("/api/limits", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"max_n":       MaxN,
			"max_repeats": MaxRepeats,
		})
	})

	r.POST("/api/run", func(c *gin.Context) {
		var req RunRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		if req.N < 0 || req.N > MaxN {
			c.JSON(http.StatusBadRequest, gin.H{"error": "n out of range"})
			return
		}
		if req.Repeats < 0 || req.Repeats > MaxRepeats {
			c.JSON(http.StatusBadRequest, gin.H{"error": "repeats out of range"})
			return
		}
		cfg, err := req.toConfig()
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		cfg.PluginPaths = pluginPaths
		res, err := bench.Run(cfg)
		if err != nil {
			logrus.Errorf("run failed: %v", err)
			c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusOK, res)
	})

	return r
}

func typeNames() []string {
	types := bench.SupportedTypes()
	out := make([]string, 0, len(types))
	for _, t := range types {
		out = append(out, t.String())
	}
	return out
}

// Serve runs the HTTP server on addr until it fails.
func Serve(addr string, pluginPaths []string) error {
	logrus.Infof("listening on %s", addr)
	return NewRouter(pluginPaths).Run(addr)
}
