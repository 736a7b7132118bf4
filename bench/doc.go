// Package bench runs the genetic-algorithm engine over a grid of problem
// sizes, population ratios and operator pairings, and summarizes the results.
//
// A grid point (Configuration) is run Config.Runs times. Every run uses a
// mutation rate of 1/N, elitism and tournament selection with fixed sizes,
// and the window-minimum stopping rule over a trailing window of best
// distances, bounded by a generation budget.
//
// All configurations of one city size share the same random instances (one
// per run index), so operator pairings are compared on identical inputs.
// Seeds for instances and engines are derived from Config.Seed, so a report
// is reproducible regardless of how many workers execute it.
//
// Outputs:
//   - Aggregate, BestConfigurations, OperatorPerformance, Compare: in-memory tables.
//   - WriteSummaryCSV, WriteRunsCSV, WriteComparisonCSV, WriteXLSX: tabular exports.
//   - PlotConvergence, PlotRatioImpact: PNG charts.
//   - WriteArtifacts: everything above into one directory.
package bench
