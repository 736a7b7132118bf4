package bench

import (
	"bytes"
	"fmt"
	"io"
	"os"
	"path/filepath"
)

// Artifact file names written by WriteArtifacts.
const (
	FileSummaryCSV     = "detailed_results.csv"
	FileRunsCSV        = "runs.csv"
	FileBestCSV        = "best_configurations.csv"
	FileOperatorCSV    = "operator_performance.csv"
	FileComparisonCSV  = "comparison_table.csv"
	FileWorkbook       = "tsp_results.xlsx"
	FileConvergencePNG = "convergence_comparison.png"
	FileRatioPNG       = "population_ratio_impact.png"
)

// WriteArtifacts writes every export of r into dir, creating it if needed,
// and returns the paths written in a fixed order.
func WriteArtifacts(dir string, r *Report) ([]string, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("bench: %w", err)
	}

	var (
		best = BestConfigurations(r.Summaries)
		ops  = OperatorPerformance(r.Summaries)
		out  []string
	)
	tables := []struct {
		name  string
		write func(io.Writer) error
	}{
		{FileSummaryCSV, func(w io.Writer) error { return WriteSummaryCSV(w, r.Summaries) }},
		{FileRunsCSV, func(w io.Writer) error { return WriteRunsCSV(w, r.Runs) }},
		{FileBestCSV, func(w io.Writer) error { return WriteSummaryCSV(w, best) }},
		{FileOperatorCSV, func(w io.Writer) error { return WriteOperatorCSV(w, ops) }},
		{FileComparisonCSV, func(w io.Writer) error { return WriteComparisonCSV(w, r.Summaries) }},
		{FileWorkbook, func(w io.Writer) error { return WriteXLSX(w, r) }},
	}
	for _, t := range tables {
		var buf bytes.Buffer
		if err := t.write(&buf); err != nil {
			return out, err
		}
		path := filepath.Join(dir, t.name)
		if err := os.WriteFile(path, buf.Bytes(), 0o644); err != nil {
			return out, fmt.Errorf("bench: %w", err)
		}
		out = append(out, path)
	}

	charts := []struct {
		name string
		plot func(string, []Summary) error
	}{
		{FileConvergencePNG, PlotConvergence},
		{FileRatioPNG, PlotRatioImpact},
	}
	for _, c := range charts {
		path := filepath.Join(dir, c.name)
		if err := c.plot(path, r.Summaries); err != nil {
			return out, err
		}
		out = append(out, path)
	}
	return out, nil
}
