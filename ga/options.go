package ga

import "log/slog"

// Default parameter values. They match the historical interactive defaults;
// the stopping window and threshold match the historical benchmark harness.
const (
	DefaultPopulationSize                = 100
	DefaultEliteSize                     = 20
	DefaultMutationRate                  = 0.01
	DefaultTournamentSize                = 5
	DefaultImprovementThreshold          = 0.005
	DefaultGenerationsWithoutImprovement = 20
)

// Options configures an Engine. It is validated exhaustively by Initialize.
//
// PopulationSize                – routes per generation; must be ≥ 2.
// EliteSize                     – best routes copied unchanged into the next generation; 0 ≤ EliteSize ≤ PopulationSize.
// MutationRate                  – probability in [0,1]; per gene for Swap, per route for Insertion/Inversion.
// TournamentSize                – distinct draws per tournament; 1 ≤ TournamentSize ≤ PopulationSize.
// Crossover, Mutation           – operator choices, resolved once at Initialize.
// UseStoppingCriterion          – enable the stagnation report; otherwise ShouldStop is always false.
// ImprovementThreshold          – relative improvement below which ShouldStop fires; must be > 0.
// GenerationsWithoutImprovement – stagnation window length; must be ≥ 1.
// Stagnation                    – which relative-improvement formula the window uses.
// Seed                          – RNG seed; 0 selects a fixed default seed (never time-based).
// Logger                        – optional structured logger for Debug traces; nil discards.
type Options struct {
	PopulationSize                int
	EliteSize                     int
	MutationRate                  float64
	TournamentSize                int
	Crossover                     CrossoverType
	Mutation                      MutationType
	UseStoppingCriterion          bool
	ImprovementThreshold          float64
	GenerationsWithoutImprovement int
	Stagnation                    StagnationStrategy
	Seed                          int64
	Logger                        *slog.Logger
}

// DefaultOptions returns the default configuration:
//
//   - PopulationSize: 100, EliteSize: 20, TournamentSize: 5.
//   - MutationRate: 0.01, Crossover: ordered, Mutation: swap.
//   - UseStoppingCriterion: false, ImprovementThreshold: 0.005,
//     GenerationsWithoutImprovement: 20, Stagnation: oldest-newest.
//   - Seed: 0 (fixed default stream).
func DefaultOptions() Options {
	return Options{
		PopulationSize:                DefaultPopulationSize,
		EliteSize:                     DefaultEliteSize,
		MutationRate:                  DefaultMutationRate,
		TournamentSize:                DefaultTournamentSize,
		Crossover:                     OrderedCrossover,
		Mutation:                      SwapMutation,
		UseStoppingCriterion:          false,
		ImprovementThreshold:          DefaultImprovementThreshold,
		GenerationsWithoutImprovement: DefaultGenerationsWithoutImprovement,
		Stagnation:                    StagnationOldestNewest,
		Seed:                          0,
	}
}
