package simplex

// SimplexStats collects solve diagnostics. All fields stay at their zero
// values until a completed solve sets Valid; they inform diagnosis, never
// solving logic.
type SimplexStats struct {
	Valid bool

	// IterationCount is the number of pivots (including bound flips)
	// performed by the last run.
	IterationCount int

	// NumInvert counts basis factorizations, including the initial one.
	NumInvert int

	// LastInvertNumEl is the stored-element count of the latest LU
	// factors; LastFactoredBasisNumEl the nonzero count of the basis
	// matrix it factored.
	LastInvertNumEl        int
	LastFactoredBasisNumEl int

	// Running-average densities of the iteration work vectors: the
	// entering column (ftran result), the pricing row (btran result), the
	// priced pivotal row over nonbasic columns, and the steepest-edge
	// update column.
	ColAqDensity  float64
	RowEpDensity  float64
	RowApDensity  float64
	RowDSEDensity float64
}

// densityDecay is the running-average mixing factor for the density
// statistics.
const densityDecay = 0.95

// updateDensity folds one observation into a running average.
func updateDensity(avg *float64, nonzeros, length int) {
	if length == 0 {
		return
	}
	d := float64(nonzeros) / float64(length)
	if *avg == 0 {
		*avg = d

		return
	}
	*avg = densityDecay**avg + (1-densityDecay)*d
}

// Info reports solution quality measures of the last run, in the units
// and sense of the original model.
type Info struct {
	NumPrimalInfeasibilities int
	MaxPrimalInfeasibility   float64
	SumPrimalInfeasibilities float64

	NumDualInfeasibilities int
	MaxDualInfeasibility   float64
	SumDualInfeasibilities float64

	// Complementarity violations are identically zero at StatusOptimal:
	// nonbasic values sit exactly on their status bound and basic duals
	// are exactly zero.
	MaxComplementarityViolation  float64
	SumComplementarityViolations float64

	// DualObjectiveValue is computed from the duals and the nonbasic
	// bound values; at optimality it agrees with the primal objective to
	// floating-point accuracy.
	DualObjectiveValue float64
}

// Result is the read-only outcome of one Run.
type Result struct {
	Status Status

	// ObjectiveValue is cᵀx + offset in the model's own sense.
	ObjectiveValue float64

	// Primal and dual solution vectors in original units.
	ColValue []float64
	ColDual  []float64
	RowValue []float64
	RowDual  []float64

	// Basis is the final basis; feed it back via SetBasis to warm start.
	Basis Basis

	// IterationCount is the number of pivots performed by this run.
	IterationCount int

	Info  Info
	Stats SimplexStats
}
