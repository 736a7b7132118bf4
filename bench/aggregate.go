// Package bench - summaries over finished runs.
//
// Spread is the population standard deviation (divide by N).
package bench

import (
	"cmp"
	"slices"
	"time"

	"gonum.org/v1/gonum/stat"

	"github.com/katalvlaran/gatsp/ga"
)

// Summary aggregates the runs of one Configuration.
type Summary struct {
	Configuration
	Runs int

	MeanBestDistance         float64
	StdBestDistance          float64
	MinBestDistance          float64
	MeanDuration             time.Duration
	MeanStagnationGeneration float64
	MeanFinalGeneration      float64

	// BestHistory is the convergence history of the run with the shortest tour.
	BestHistory []float64
}

// OperatorSummary averages every Summary sharing one operator pairing.
type OperatorSummary struct {
	Crossover ga.CrossoverType
	Mutation  ga.MutationType

	MeanBestDistance         float64
	MeanDuration             time.Duration
	MeanStagnationGeneration float64
}

// Aggregate groups runs by Configuration, in order of first appearance.
func Aggregate(runs []RunResult) []Summary {
	var (
		order  []Configuration
		groups = make(map[Configuration][]RunResult)
	)
	for _, r := range runs {
		if _, ok := groups[r.Configuration]; !ok {
			order = append(order, r.Configuration)
		}
		groups[r.Configuration] = append(groups[r.Configuration], r)
	}

	out := make([]Summary, 0, len(order))
	for _, c := range order {
		out = append(out, summarize(c, groups[c]))
	}
	return out
}

func summarize(c Configuration, runs []RunResult) Summary {
	var (
		n     = len(runs)
		best  = make([]float64, n)
		secs  = make([]float64, n)
		stag  = make([]float64, n)
		final = make([]float64, n)
		top   int
	)
	for i, r := range runs {
		best[i] = r.BestDistance
		secs[i] = r.Duration.Seconds()
		stag[i] = float64(r.StagnationGeneration)
		final[i] = float64(r.FinalGeneration)
		if r.BestDistance < runs[top].BestDistance {
			top = i
		}
	}

	return Summary{
		Configuration:            c,
		Runs:                     n,
		MeanBestDistance:         stat.Mean(best, nil),
		StdBestDistance:          stat.PopStdDev(best, nil),
		MinBestDistance:          runs[top].BestDistance,
		MeanDuration:             seconds(stat.Mean(secs, nil)),
		MeanStagnationGeneration: stat.Mean(stag, nil),
		MeanFinalGeneration:      stat.Mean(final, nil),
		BestHistory:              append([]float64(nil), runs[top].History...),
	}
}

// BestConfigurations returns, for each city size, the summary with the
// lowest mean best distance; ties keep the earliest. Sorted by city size.
func BestConfigurations(summaries []Summary) []Summary {
	var (
		best  = make(map[int]int, 4)
		sizes []int
	)
	for i, s := range summaries {
		j, ok := best[s.Cities]
		if !ok {
			sizes = append(sizes, s.Cities)
			best[s.Cities] = i
			continue
		}
		if s.MeanBestDistance < summaries[j].MeanBestDistance {
			best[s.Cities] = i
		}
	}
	slices.Sort(sizes)

	out := make([]Summary, len(sizes))
	for i, n := range sizes {
		out[i] = summaries[best[n]]
	}
	return out
}

// OperatorPerformance averages summaries per (crossover, mutation) pairing,
// ordered by crossover then mutation.
func OperatorPerformance(summaries []Summary) []OperatorSummary {
	type key struct {
		cx ga.CrossoverType
		mt ga.MutationType
	}
	var (
		groups = make(map[key][]Summary)
		keys   []key
	)
	for _, s := range summaries {
		k := key{s.Crossover, s.Mutation}
		if _, ok := groups[k]; !ok {
			keys = append(keys, k)
		}
		groups[k] = append(groups[k], s)
	}
	slices.SortFunc(keys, func(a, b key) int {
		if c := cmp.Compare(a.cx, b.cx); c != 0 {
			return c
		}
		return cmp.Compare(a.mt, b.mt)
	})

	out := make([]OperatorSummary, 0, len(keys))
	for _, k := range keys {
		g := groups[k]
		var (
			dist = make([]float64, len(g))
			secs = make([]float64, len(g))
			stag = make([]float64, len(g))
		)
		for i, s := range g {
			dist[i] = s.MeanBestDistance
			secs[i] = s.MeanDuration.Seconds()
			stag[i] = s.MeanStagnationGeneration
		}
		out = append(out, OperatorSummary{
			Crossover:                k.cx,
			Mutation:                 k.mt,
			MeanBestDistance:         stat.Mean(dist, nil),
			MeanDuration:             seconds(stat.Mean(secs, nil)),
			MeanStagnationGeneration: stat.Mean(stag, nil),
		})
	}
	return out
}

// OperatorPair is one (crossover, mutation) column of a Comparison.
type OperatorPair struct {
	Crossover ga.CrossoverType
	Mutation  ga.MutationType
}

// String renders the pair as "crossover/mutation".
func (p OperatorPair) String() string { return p.Crossover.String() + "/" + p.Mutation.String() }

// ComparisonRow is one (city size, population ratio) row of a Comparison.
// Cells holds one entry per Comparison.Pairs column; nil marks a pairing the
// grid did not run.
type ComparisonRow struct {
	Cities          int
	PopulationRatio int
	Cells           []*Summary
}

// Comparison pivots summaries: rows are (city size, population ratio),
// columns are operator pairings.
type Comparison struct {
	Pairs []OperatorPair
	Rows  []ComparisonRow
}

// Compare builds the pivot of summaries. Rows are ordered by city size then
// ratio, columns by crossover then mutation. A duplicate cell keeps the
// first summary.
func Compare(summaries []Summary) Comparison {
	type rowKey struct{ n, ratio int }
	var (
		cmpPair = func(a, b OperatorPair) int {
			if c := cmp.Compare(a.Crossover, b.Crossover); c != 0 {
				return c
			}
			return cmp.Compare(a.Mutation, b.Mutation)
		}
		cmpRow = func(a, b rowKey) int {
			if c := cmp.Compare(a.n, b.n); c != 0 {
				return c
			}
			return cmp.Compare(a.ratio, b.ratio)
		}
		pairs []OperatorPair
		rows  []rowKey
	)
	for _, s := range summaries {
		p := OperatorPair{s.Crossover, s.Mutation}
		if !slices.Contains(pairs, p) {
			pairs = append(pairs, p)
		}
		k := rowKey{s.Cities, s.PopulationRatio}
		if !slices.Contains(rows, k) {
			rows = append(rows, k)
		}
	}
	slices.SortFunc(pairs, cmpPair)
	slices.SortFunc(rows, cmpRow)

	out := Comparison{Pairs: pairs, Rows: make([]ComparisonRow, len(rows))}
	for i, k := range rows {
		out.Rows[i] = ComparisonRow{Cities: k.n, PopulationRatio: k.ratio, Cells: make([]*Summary, len(pairs))}
	}
	for i := range summaries {
		s := &summaries[i]
		r, _ := slices.BinarySearchFunc(rows, rowKey{s.Cities, s.PopulationRatio}, cmpRow)
		c, _ := slices.BinarySearchFunc(pairs, OperatorPair{s.Crossover, s.Mutation}, cmpPair)
		if out.Rows[r].Cells[c] == nil {
			out.Rows[r].Cells[c] = s
		}
	}
	return out
}

func seconds(s float64) time.Duration {
	return time.Duration(s * float64(time.Second))
}
