package bench_test

import (
	"bytes"
	"context"
	"encoding/csv"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/xuri/excelize/v2"

	"github.com/katalvlaran/gatsp/bench"
	"github.com/katalvlaran/gatsp/ga"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeReport builds a two-size report without running the engine.
func fakeReport() *bench.Report {
	var runs []bench.RunResult
	for _, n := range []int{10, 20} {
		for _, ratio := range []int{5, 7} {
			for _, cx := range ga.CrossoverTypes() {
				c := configuration(n, ratio, cx, ga.SwapMutation)
				runs = append(runs,
					fakeRun(c, 0, float64(n*ratio), time.Second, 20),
					fakeRun(c, 1, float64(n*ratio)+2, 2*time.Second, n+ratio))
			}
		}
	}
	return &bench.Report{Runs: runs, Summaries: bench.Aggregate(runs)}
}

func TestWriteSummaryCSV(t *testing.T) {
	rep := fakeReport()
	var buf bytes.Buffer
	require.NoError(t, bench.WriteSummaryCSV(&buf, rep.Summaries))

	rows, err := csv.NewReader(&buf).ReadAll()
	require.NoError(t, err)
	require.Len(t, rows, len(rep.Summaries)+1)
	assert.Equal(t, "city_size", rows[0][0])
	assert.Equal(t, "avg_best_distance", rows[0][6])
	assert.Equal(t, []string{"10", "5", "50", "ordered", "swap", "2", "51", "1", "50", "1.5", "17.5", "17.5"}, rows[1])
}

func TestWriteRunsAndOperatorCSV(t *testing.T) {
	rep := fakeReport()

	var buf bytes.Buffer
	require.NoError(t, bench.WriteRunsCSV(&buf, rep.Runs))
	rows, err := csv.NewReader(&buf).ReadAll()
	require.NoError(t, err)
	assert.Len(t, rows, len(rep.Runs)+1)

	buf.Reset()
	require.NoError(t, bench.WriteOperatorCSV(&buf, bench.OperatorPerformance(rep.Summaries)))
	rows, err = csv.NewReader(&buf).ReadAll()
	require.NoError(t, err)
	require.Len(t, rows, 3)
	assert.Equal(t, []string{"crossover_type", "mutation_type", "avg_best_distance", "avg_execution_time", "avg_stagnation_gen"}, rows[0])
	assert.Equal(t, "ordered", rows[1][0])
	assert.Equal(t, "cycle", rows[2][0])
}

func TestWriteXLSX(t *testing.T) {
	rep := fakeReport()
	var buf bytes.Buffer
	require.NoError(t, bench.WriteXLSX(&buf, rep))

	f, err := excelize.OpenReader(&buf)
	require.NoError(t, err)
	t.Cleanup(func() { _ = f.Close() })

	assert.Equal(t, []string{bench.SheetDetailed, bench.SheetBest, bench.SheetOperators, bench.SheetComparison}, f.GetSheetList())

	rows, err := f.GetRows(bench.SheetDetailed)
	require.NoError(t, err)
	assert.Len(t, rows, len(rep.Summaries)+1)
	assert.Equal(t, "city_size", rows[0][0])

	rows, err = f.GetRows(bench.SheetBest)
	require.NoError(t, err)
	require.Len(t, rows, 3) // header + two city sizes
	assert.Equal(t, "10", rows[1][0])
	assert.Equal(t, "20", rows[2][0])

	rows, err = f.GetRows(bench.SheetOperators)
	require.NoError(t, err)
	assert.Len(t, rows, 3)

	rows, err = f.GetRows(bench.SheetComparison)
	require.NoError(t, err)
	require.Len(t, rows, 5) // header + (2 sizes x 2 ratios)
	assert.Equal(t, "avg_best_distance[ordered/swap]", rows[0][2])
	assert.Equal(t, []string{"20", "7", "141", "141", "1.5", "1.5", "23.5", "23.5"}, rows[4])
}

func TestWriteComparisonCSV(t *testing.T) {
	rep := fakeReport()
	var buf bytes.Buffer
	require.NoError(t, bench.WriteComparisonCSV(&buf, rep.Summaries))

	rows, err := csv.NewReader(&buf).ReadAll()
	require.NoError(t, err)
	require.Len(t, rows, 5)
	assert.Equal(t, []string{
		"city_size", "population_ratio",
		"avg_best_distance[ordered/swap]", "avg_best_distance[cycle/swap]",
		"avg_execution_time[ordered/swap]", "avg_execution_time[cycle/swap]",
		"avg_stagnation_gen[ordered/swap]", "avg_stagnation_gen[cycle/swap]",
	}, rows[0])
	assert.Equal(t, []string{"10", "5", "51", "51", "1.5", "1.5", "17.5", "17.5"}, rows[1])
	assert.Equal(t, []string{"10", "7", "71", "71", "1.5", "1.5", "18.5", "18.5"}, rows[2])

	// A pairing missing from one row leaves its cells blank.
	partial := rep.Summaries[:len(rep.Summaries)-1]
	buf.Reset()
	require.NoError(t, bench.WriteComparisonCSV(&buf, partial))
	rows, err = csv.NewReader(&buf).ReadAll()
	require.NoError(t, err)
	assert.Equal(t, []string{"20", "7", "141", "", "1.5", "", "23.5", ""}, rows[4])
}

func TestPlots(t *testing.T) {
	rep := fakeReport()
	dir := t.TempDir()

	conv := filepath.Join(dir, "conv.png")
	require.NoError(t, bench.PlotConvergence(conv, rep.Summaries))
	requireNonEmptyFile(t, conv)

	ratio := filepath.Join(dir, "ratio.png")
	require.NoError(t, bench.PlotRatioImpact(ratio, rep.Summaries))
	requireNonEmptyFile(t, ratio)

	require.ErrorIs(t, bench.PlotHistories(filepath.Join(dir, "x.png"), "empty", []bench.Series{{Name: "a"}}), bench.ErrNothingToPlot)
	require.ErrorIs(t, bench.PlotRatioImpact(filepath.Join(dir, "y.png"), nil), bench.ErrNothingToPlot)
}

func TestWriteArtifacts(t *testing.T) {
	cfg := smallConfig()
	cfg.CitySizes = []int{5}
	cfg.PopulationRatios = []int{2}
	rep, err := bench.Run(context.Background(), cfg)
	require.NoError(t, err)

	dir := filepath.Join(t.TempDir(), "results")
	paths, err := bench.WriteArtifacts(dir, rep)
	require.NoError(t, err)
	require.Len(t, paths, 8)
	for _, p := range paths {
		requireNonEmptyFile(t, p)
	}
	assert.Equal(t, filepath.Join(dir, bench.FileComparisonCSV), paths[4])
	assert.Equal(t, filepath.Join(dir, bench.FileWorkbook), paths[5])
}

func requireNonEmptyFile(t *testing.T, path string) {
	t.Helper()
	st, err := os.Stat(path)
	require.NoError(t, err)
	require.Positive(t, st.Size())
}
