// Package bench - tabular exports.
//
// Column names follow one vocabulary across CSV and XLSX so that the files
// can be joined or diffed directly. Durations are written in seconds.
package bench

import (
	"encoding/csv"
	"fmt"
	"io"
	"strconv"

	"github.com/xuri/excelize/v2"
)

// Sheet names of the XLSX workbook.
const (
	SheetDetailed   = "Detailed Results"
	SheetBest       = "Best Configurations"
	SheetOperators  = "Operator Performance"
	SheetComparison = "Comparison Table"
)

var (
	summaryHeader = []string{
		"city_size", "population_ratio", "population_size", "crossover_type", "mutation_type", "runs",
		"avg_best_distance", "std_best_distance", "min_best_distance",
		"avg_execution_time", "avg_stagnation_gen", "avg_final_generation",
	}
	runHeader = []string{
		"city_size", "population_ratio", "population_size", "crossover_type", "mutation_type", "run", "seed",
		"best_distance", "execution_time", "stagnation_generation", "final_generation", "run_id",
	}
	operatorHeader = []string{
		"crossover_type", "mutation_type", "avg_best_distance", "avg_execution_time", "avg_stagnation_gen",
	}
)

func summaryRow(s Summary) []any {
	return []any{
		s.Cities, s.PopulationRatio, s.PopulationSize, s.Crossover.String(), s.Mutation.String(), s.Runs,
		s.MeanBestDistance, s.StdBestDistance, s.MinBestDistance,
		s.MeanDuration.Seconds(), s.MeanStagnationGeneration, s.MeanFinalGeneration,
	}
}

func runRow(r RunResult) []any {
	return []any{
		r.Cities, r.PopulationRatio, r.PopulationSize, r.Crossover.String(), r.Mutation.String(), r.Run, r.Seed,
		r.BestDistance, r.Duration.Seconds(), r.StagnationGeneration, r.FinalGeneration, r.RunID,
	}
}

func operatorRow(o OperatorSummary) []any {
	return []any{
		o.Crossover.String(), o.Mutation.String(),
		o.MeanBestDistance, o.MeanDuration.Seconds(), o.MeanStagnationGeneration,
	}
}

// comparisonMetrics are the pivoted values, each spanning every pairing.
var comparisonMetrics = []struct {
	name  string
	value func(*Summary) float64
}{
	{"avg_best_distance", func(s *Summary) float64 { return s.MeanBestDistance }},
	{"avg_execution_time", func(s *Summary) float64 { return s.MeanDuration.Seconds() }},
	{"avg_stagnation_gen", func(s *Summary) float64 { return s.MeanStagnationGeneration }},
}

// comparisonTable flattens c into a header and rows. Columns are named
// "metric[crossover/mutation]"; a pairing absent from a row is left blank.
func comparisonTable(c Comparison) ([]string, [][]any) {
	header := []string{"city_size", "population_ratio"}
	for _, m := range comparisonMetrics {
		for _, p := range c.Pairs {
			header = append(header, m.name+"["+p.String()+"]")
		}
	}

	rows := make([][]any, len(c.Rows))
	for i, r := range c.Rows {
		row := make([]any, 0, len(header))
		row = append(row, r.Cities, r.PopulationRatio)
		for _, m := range comparisonMetrics {
			for _, cell := range r.Cells {
				if cell == nil {
					row = append(row, nil)
					continue
				}
				row = append(row, m.value(cell))
			}
		}
		rows[i] = row
	}
	return header, rows
}

// WriteComparisonCSV writes the Compare pivot of summaries.
func WriteComparisonCSV(w io.Writer, summaries []Summary) error {
	header, rows := comparisonTable(Compare(summaries))
	return writeCSV(w, header, rows)
}

// WriteSummaryCSV writes one row per Summary.
func WriteSummaryCSV(w io.Writer, summaries []Summary) error {
	return writeCSV(w, summaryHeader, mapRows(summaries, summaryRow))
}

// WriteRunsCSV writes one row per run.
func WriteRunsCSV(w io.Writer, runs []RunResult) error {
	return writeCSV(w, runHeader, mapRows(runs, runRow))
}

// WriteOperatorCSV writes one row per operator pairing.
func WriteOperatorCSV(w io.Writer, ops []OperatorSummary) error {
	return writeCSV(w, operatorHeader, mapRows(ops, operatorRow))
}

func writeCSV(w io.Writer, header []string, rows [][]any) error {
	cw := csv.NewWriter(w)
	if err := cw.Write(header); err != nil {
		return fmt.Errorf("bench: csv: %w", err)
	}
	record := make([]string, len(header))
	for _, row := range rows {
		for i, v := range row {
			record[i] = formatCell(v)
		}
		if err := cw.Write(record); err != nil {
			return fmt.Errorf("bench: csv: %w", err)
		}
	}
	cw.Flush()
	if err := cw.Error(); err != nil {
		return fmt.Errorf("bench: csv: %w", err)
	}
	return nil
}

func formatCell(v any) string {
	switch x := v.(type) {
	case float64:
		return strconv.FormatFloat(x, 'f', -1, 64)
	case string:
		return x
	case nil:
		return ""
	default:
		return fmt.Sprint(x)
	}
}

// WriteXLSX writes the report as a workbook: every configuration summary,
// the best configuration per city size, the operator pairing averages and
// the Compare pivot, one sheet each.
func WriteXLSX(w io.Writer, r *Report) error {
	f := excelize.NewFile()
	defer f.Close()

	best := BestConfigurations(r.Summaries)
	ops := OperatorPerformance(r.Summaries)
	cmpHeader, cmpRows := comparisonTable(Compare(r.Summaries))

	sheets := []struct {
		name   string
		header []string
		rows   [][]any
	}{
		{SheetDetailed, summaryHeader, mapRows(r.Summaries, summaryRow)},
		{SheetBest, summaryHeader, mapRows(best, summaryRow)},
		{SheetOperators, operatorHeader, mapRows(ops, operatorRow)},
		{SheetComparison, cmpHeader, cmpRows},
	}
	for i, s := range sheets {
		if i == 0 {
			if err := f.SetSheetName("Sheet1", s.name); err != nil {
				return fmt.Errorf("bench: xlsx: %w", err)
			}
		} else if _, err := f.NewSheet(s.name); err != nil {
			return fmt.Errorf("bench: xlsx: %w", err)
		}
		if err := writeSheet(f, s.name, s.header, s.rows); err != nil {
			return err
		}
	}
	f.SetActiveSheet(0)

	if err := f.Write(w); err != nil {
		return fmt.Errorf("bench: xlsx: %w", err)
	}
	return nil
}

func writeSheet(f *excelize.File, sheet string, header []string, rows [][]any) error {
	head := make([]any, len(header))
	for i, h := range header {
		head[i] = h
	}
	if err := f.SetSheetRow(sheet, "A1", &head); err != nil {
		return fmt.Errorf("bench: xlsx %s: %w", sheet, err)
	}
	for i, row := range rows {
		cell, err := excelize.CoordinatesToCellName(1, i+2)
		if err != nil {
			return fmt.Errorf("bench: xlsx %s: %w", sheet, err)
		}
		if err = f.SetSheetRow(sheet, cell, &row); err != nil {
			return fmt.Errorf("bench: xlsx %s: %w", sheet, err)
		}
	}
	return nil
}

func mapRows[T any](items []T, row func(T) []any) [][]any {
	out := make([][]any, len(items))
	for i, it := range items {
		out[i] = row(it)
	}
	return out
}
