// Package gatsp is a genetic-algorithm toolkit for the symmetric Euclidean
// Travelling Salesman Problem: evolve a population of closed tours, stop on
// stagnation, and benchmark operator choices across instance sizes.
//
// What is in the box?
//
//   - Cities and distances: planar points, Euclidean metric, dense matrix
//   - Engine: tournament selection with elitism, OX and CX crossover,
//     swap, insertion and inversion mutation, stagnation detection
//   - Local search: 2-opt polish of a finished tour
//   - Drivers: synchronous batch runs and a cancellable background loop
//   - Benchmark: parameter grid, aggregation, CSV/XLSX/PNG artifacts
//   - Persistence: in-memory and SQLite run stores
//   - TSPLIB: NODE_COORD_SECTION instance files
//
// Everything is organized under these subpackages:
//
//	city/     - City, Distance, Matrix, random instances
//	ga/       - Engine, Options, operators, fitness, TwoOpt
//	driver/   - RunBatch and Loop (start/stop/step around one Engine)
//	bench/    - grid runner, Aggregate, exports and charts
//	store/    - Store interface, MemoryStore, SQLiteStore
//	tsplib/   - Parse and ReadFile for .tsp instances
//	cmd/gatsp - command line: solve, bench, runs
//
// Quick example, the four corners of a 10x10 square:
//
//	A───B
//	│   │
//	D───C
//
//	eng, _ := ga.NewEngine(cities, ga.DefaultOptions())
//	res, _ := driver.RunBatch(ctx, eng, 500)
//	fmt.Println(res.BestDistance) // 40
//
// Determinism: every random draw comes from the seeded stream in
// ga.Options.Seed, so equal seeds give equal runs.
//
//	go install github.com/katalvlaran/gatsp/cmd/gatsp@latest
package gatsp
