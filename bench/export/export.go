// Package export renders benchmark run results as CSV, JSON, JSONL, or an
// aligned text table. All numeric fields are emitted with exactly three
// decimal places so outputs diff cleanly across runs.
package export

import (
	"encoding/csv"
	"encoding/json"
	"fmt"
	"io"
	"strconv"
	"text/tabwriter"

	"github.com/sortbench/sortbench/bench"
)

var baseColumns = []string{"algo", "N", "dist", "median_ms", "mean_ms", "min_ms", "max_ms", "stddev_ms"}

const speedupColumn = "speedup_vs_baseline"

func fixed(x float64) string {
	return strconv.FormatFloat(x, 'f', 3, 64)
}

// Columns returns the output column names, with the speedup column appended
// when a baseline was configured.
func Columns(includeSpeedup bool) []string {
	cols := make([]string, len(baseColumns), len(baseColumns)+1)
	copy(cols, baseColumns)
	if includeSpeedup {
		cols = append(cols, speedupColumn)
	}
	return cols
}

func rowFields(r bench.ResultRow, includeSpeedup bool) []string {
	fields := []string{
		r.Algo,
		strconv.Itoa(r.N),
		r.Dist,
		fixed(r.Stats.MedianMs),
		fixed(r.Stats.MeanMs),
		fixed(r.Stats.MinMs),
		fixed(r.Stats.MaxMs),
		fixed(r.Stats.StddevMs),
	}
	if includeSpeedup {
		fields = append(fields, fixed(r.SpeedupVsBaseline))
	}
	return fields
}

// CSV writes the run as comma-separated rows, one per algorithm.
func CSV(w io.Writer, res *bench.RunResult, withHeader bool) error {
	includeSpeedup := res.Baseline != nil
	cw := csv.NewWriter(w)
	if withHeader {
		if err := cw.Write(Columns(includeSpeedup)); err != nil {
			return err
		}
	}
	for _, r := range res.Rows {
		if err := cw.Write(rowFields(r, includeSpeedup)); err != nil {
			return err
		}
	}
	cw.Flush()
	return cw.Error()
}

// Table writes the run as an aligned text table with a header.
func Table(w io.Writer, res *bench.RunResult) error {
	includeSpeedup := res.Baseline != nil
	tw := tabwriter.NewWriter(w, 2, 4, 2, ' ', 0)
	for i, c := range Columns(includeSpeedup) {
		if i > 0 {
			fmt.Fprint(tw, "\t")
		}
		fmt.Fprint(tw, c)
	}
	fmt.Fprintln(tw)
	for _, r := range res.Rows {
		for i, f := range rowFields(r, includeSpeedup) {
			if i > 0 {
				fmt.Fprint(tw, "\t")
			}
			fmt.Fprint(tw, f)
		}
		fmt.Fprintln(tw)
	}
	return tw.Flush()
}

func rowObject(r bench.ResultRow, includeSpeedup bool) map[string]any {
	obj := map[string]any{
		"algo":      r.Algo,
		"N":         r.N,
		"dist":      r.Dist,
		"median_ms": json.Number(fixed(r.Stats.MedianMs)),
		"mean_ms":   json.Number(fixed(r.Stats.MeanMs)),
		"min_ms":    json.Number(fixed(r.Stats.MinMs)),
		"max_ms":    json.Number(fixed(r.Stats.MaxMs)),
		"stddev_ms": json.Number(fixed(r.Stats.StddevMs)),
	}
	if includeSpeedup {
		obj[speedupColumn] = json.Number(fixed(r.SpeedupVsBaseline))
	}
	return obj
}

// JSON writes the whole run as one JSON document carrying the run metadata
// and the per-algorithm rows.
func JSON(w io.Writer, res *bench.RunResult, pretty bool) error {
	includeSpeedup := res.Baseline != nil
	rows := make([]map[string]any, 0, len(res.Rows))
	for _, r := range res.Rows {
		rows = append(rows, rowObject(r, includeSpeedup))
	}
	doc := map[string]any{
		"type":    res.Type,
		"N":       res.N,
		"dist":    res.Dist,
		"repeats": res.Repeats,
		"rows":    rows,
	}
	if res.Seed != nil {
		doc["seed"] = *res.Seed
	}
	if res.Baseline != nil {
		doc["baseline"] = *res.Baseline
	}
	enc := json.NewEncoder(w)
	if pretty {
		enc.SetIndent("", "  ")
	}
	return enc.Encode(doc)
}

// JSONL writes one JSON object per row, newline-delimited, suitable for
// appending across runs.
func JSONL(w io.Writer, res *bench.RunResult) error {
	includeSpeedup := res.Baseline != nil
	enc := json.NewEncoder(w)
	for _, r := range res.Rows {
		if err := enc.Encode(rowObject(r, includeSpeedup)); err != nil {
			return err
		}
	}
	return nil
}
