// Package bench provides the core sort-benchmark engine.
//
// # Reading Guide
//
// Start with these three files to understand the engine:
//   - config.go: Config value, element types and distribution kinds
//   - harness.go: Run — per-type dispatch, warm-up/timed trials, verification
//   - registry.go: built-in algorithm catalog and selection filters
//
// # Architecture
//
// A run is strictly sequential: one seeded dataset is generated
// (dataset.go), the registry for the active element type is assembled once
// (built-ins plus plugin-contributed entries, plugin.go), the harness drives
// each selected algorithm through warm-up and timed trials against fresh
// copies of the dataset, and the aggregator (stats.go) reduces the timing
// samples to a RunResult. Encoders for the RunResult live in bench/export;
// the HTTP surface lives in bench/api.
//
// Determinism: identical (seed, N, type, distribution, params) inputs
// produce bit-identical datasets across runs and processes.
package bench
