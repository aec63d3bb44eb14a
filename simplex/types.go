package simplex

import "errors"

// Sentinel errors. Statuses cover everything a solve discovers on its
// own; these errors cover caller contract violations and unrepairable
// numerical breakdown only.
var (
	// ErrNilModel is returned by NewSolver when the model pointer is nil.
	ErrNilModel = errors.New("simplex: nil model")

	// ErrSingularBasis is returned when the basis matrix cannot be
	// factorized even after substituting logical columns.
	ErrSingularBasis = errors.New("simplex: basis matrix is singular")

	// ErrBadBasis is returned by SetBasis for a basis whose dimensions or
	// row↔variable assignment are inconsistent with the model.
	ErrBadBasis = errors.New("simplex: inconsistent basis")

	// ErrBadOptions is returned by Run for out-of-range option values.
	ErrBadOptions = errors.New("simplex: invalid options")
)

// Status is the terminal state of a solve. Limits are warnings carrying
// partial state, not errors.
type Status int

const (
	// StatusNotSet means no solve has completed.
	StatusNotSet Status = iota

	// StatusOptimal: primal and dual feasible; complementarity holds
	// exactly (max and sum of complementarity violation are zero).
	StatusOptimal

	// StatusInfeasible: certified primal infeasibility.
	StatusInfeasible

	// StatusUnbounded: certified unboundedness of the objective.
	StatusUnbounded

	// StatusObjectiveBound: the running dual objective proved that no
	// solution satisfies the configured objective bound.
	StatusObjectiveBound

	// StatusIterationLimit: the iteration ceiling was reached.
	StatusIterationLimit

	// StatusTimeLimit: the wall-clock deadline was reached.
	StatusTimeLimit

	// StatusNumericalFailure: instability persisted past the retry budget.
	StatusNumericalFailure
)

// String returns a human-readable status name.
func (s Status) String() string {
	switch s {
	case StatusOptimal:
		return "Optimal"
	case StatusInfeasible:
		return "Infeasible"
	case StatusUnbounded:
		return "Unbounded"
	case StatusObjectiveBound:
		return "ObjectiveBound"
	case StatusIterationLimit:
		return "IterationLimit"
	case StatusTimeLimit:
		return "TimeLimit"
	case StatusNumericalFailure:
		return "NumericalFailure"
	default:
		return "NotSet"
	}
}

// Strategy selects the simplex variant dispatched once per solve.
type Strategy int

const (
	// StrategyChoose lets the engine pick (currently the plain dual).
	StrategyChoose Strategy = iota

	// StrategyDualPlain is the serial dual simplex.
	StrategyDualPlain

	// StrategyDualTasks is the dual simplex with a small pricing task pool.
	StrategyDualTasks

	// StrategyDualMulti is the dual simplex with a per-CPU pricing pool.
	StrategyDualMulti

	// StrategyPrimal is the two-phase primal simplex.
	StrategyPrimal
)

// String returns the strategy name used in diagnostics.
func (s Strategy) String() string {
	switch s {
	case StrategyDualPlain:
		return "dual-plain"
	case StrategyDualTasks:
		return "dual-tasks"
	case StrategyDualMulti:
		return "dual-multi"
	case StrategyPrimal:
		return "primal"
	default:
		return "choose"
	}
}

// EdgeWeightMode selects the pricing weight scheme.
type EdgeWeightMode int

const (
	// WeightSteepestEdge maintains exact dual steepest-edge row weights.
	WeightSteepestEdge EdgeWeightMode = iota

	// WeightDevex maintains Devex reference-framework weights.
	WeightDevex

	// WeightPlain prices with unit weights (Dantzig rule).
	WeightPlain
)

// ScaleMode selects model scaling applied to the working copy.
type ScaleMode int

const (
	// ScaleEquilibration applies power-of-two geometric-mean row/column
	// scaling; factors are exact in floating point, so unscaling the
	// solution introduces no drift.
	ScaleEquilibration ScaleMode = iota

	// ScaleOff solves the model as given.
	ScaleOff
)
