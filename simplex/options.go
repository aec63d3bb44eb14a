package simplex

import (
	"math"
	"runtime"
	"time"

	"github.com/pkg/errors"
)

// Defaults - single source of truth for zero-configuration behavior.
// These mirror the solver's long-standing tunings; tests pin them.
const (
	// DefaultIterationLimit caps the pivot count of one solve.
	DefaultIterationLimit = 999999

	// DefaultObjectiveBound disables the objective cutoff for practical
	// purposes while staying finite and comparable.
	DefaultObjectiveBound = 1e200

	// DefaultPrimalFeasTol is the primal feasibility tolerance.
	DefaultPrimalFeasTol = 1e-7

	// DefaultDualFeasTol is the dual feasibility (optimality) tolerance.
	DefaultDualFeasTol = 1e-7

	// DefaultRefactorInterval is the pivot-update count after which the
	// basis is refactorized from scratch.
	DefaultRefactorInterval = 100

	// DefaultMaxWorkers caps the pricing pool of the Multi strategy.
	DefaultMaxWorkers = 8

	// pivotTol is the smallest pivot magnitude the ratio tests accept.
	pivotTol = 1e-9
)

// Options is the immutable per-solve configuration. The zero value is not
// usable directly; start from DefaultOptions and override fields.
//
// Mutating an Options value between runs is safe; the solver keeps no
// reference to it after Run returns.
type Options struct {
	// Strategy selects the simplex variant (see Strategy).
	Strategy Strategy

	// EdgeWeight selects the pricing weight scheme (see EdgeWeightMode).
	EdgeWeight EdgeWeightMode

	// IterationLimit is the hard pivot ceiling. Zero means zero: the solve
	// returns StatusIterationLimit having performed no iterations.
	IterationLimit int

	// TimeLimit is the wall-clock budget; 0 disables the deadline.
	TimeLimit time.Duration

	// ObjectiveBound terminates a minimize solve with
	// StatusObjectiveBound once the dual objective proves no solution
	// beats it. Ignored for Maximize models.
	ObjectiveBound float64

	// PrimalFeasTol and DualFeasTol are the feasibility tolerances.
	PrimalFeasTol float64
	DualFeasTol   float64

	// PerturbCosts randomizes the magnitude of dual phase-1 cost shifts
	// within [DualFeasTol, 10·DualFeasTol] to break degenerate ties.
	// When false, shifts restore dual feasibility exactly with no margin.
	PerturbCosts bool

	// UseWarmStart reuses the basis left by the previous run (or supplied
	// via SetBasis) instead of the all-logical basis.
	UseWarmStart bool

	// Scale selects working-model scaling.
	Scale ScaleMode

	// RefactorInterval overrides DefaultRefactorInterval when positive.
	RefactorInterval int

	// MaxWorkers bounds the pricing pool of DualTasks/DualMulti; 0 picks
	// a strategy-appropriate default.
	MaxWorkers int

	// Seed drives every randomized choice. 0 selects the fixed default
	// seed, so the zero value is still fully deterministic.
	Seed int64
}

// DefaultOptions returns the production defaults.
func DefaultOptions() Options {
	return Options{
		Strategy:         StrategyChoose,
		EdgeWeight:       WeightSteepestEdge,
		IterationLimit:   DefaultIterationLimit,
		ObjectiveBound:   DefaultObjectiveBound,
		PrimalFeasTol:    DefaultPrimalFeasTol,
		DualFeasTol:      DefaultDualFeasTol,
		PerturbCosts:     true,
		UseWarmStart:     true,
		Scale:            ScaleEquilibration,
		RefactorInterval: DefaultRefactorInterval,
	}
}

// validate reports the first nonsensical option value.
func (o *Options) validate() error {
	if o.IterationLimit < 0 {
		return errors.Wrapf(ErrBadOptions, "IterationLimit=%d", o.IterationLimit)
	}
	if o.TimeLimit < 0 {
		return errors.Wrapf(ErrBadOptions, "TimeLimit=%s", o.TimeLimit)
	}
	if !(o.PrimalFeasTol > 0) || !(o.DualFeasTol > 0) {
		return errors.Wrapf(ErrBadOptions, "tolerances must be positive (primal=%g dual=%g)",
			o.PrimalFeasTol, o.DualFeasTol)
	}
	if math.IsNaN(o.ObjectiveBound) {
		return errors.Wrap(ErrBadOptions, "ObjectiveBound is NaN")
	}
	if o.RefactorInterval < 0 || o.MaxWorkers < 0 {
		return errors.Wrapf(ErrBadOptions, "RefactorInterval=%d MaxWorkers=%d",
			o.RefactorInterval, o.MaxWorkers)
	}
	switch o.Strategy {
	case StrategyChoose, StrategyDualPlain, StrategyDualTasks, StrategyDualMulti, StrategyPrimal:
	default:
		return errors.Wrapf(ErrBadOptions, "Strategy=%d", o.Strategy)
	}

	return nil
}

// workers resolves the pricing pool size for the configured strategy.
// The plain strategies always report 1 so the scans stay serial.
func (o *Options) workers() int {
	switch o.Strategy {
	case StrategyDualTasks:
		if o.MaxWorkers > 0 {
			return min(o.MaxWorkers, 2)
		}

		return 2
	case StrategyDualMulti:
		w := o.MaxWorkers
		if w == 0 {
			w = runtime.NumCPU()
		}

		return max(1, min(w, DefaultMaxWorkers))
	default:
		return 1
	}
}

// refactorInterval resolves the effective update budget.
func (o *Options) refactorInterval() int {
	if o.RefactorInterval > 0 {
		return o.RefactorInterval
	}

	return DefaultRefactorInterval
}
