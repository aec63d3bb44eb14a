package simplex

import (
	"math"
	"time"

	"github.com/pkg/errors"
	"gonum.org/v1/gonum/floats"

	"github.com/katalvlaran/lvlsolve/lp"
)

// Solver runs the simplex method on one model and keeps the final basis
// between runs, so a second Run with UseWarmStart picks up where the
// first stopped (hot start after an iteration or time limit included).
//
// A Solver is not safe for concurrent use; run independent solves on
// independent Solver values.
type Solver struct {
	model *lp.Lp
	basis *Basis
}

// NewSolver validates the model and prepares a solver for it. The model
// is not copied; the caller must not mutate it while the solver is in
// use.
func NewSolver(model *lp.Lp) (*Solver, error) {
	if model == nil {
		return nil, ErrNilModel
	}
	if err := model.Validate(); err != nil {
		return nil, err
	}

	return &Solver{model: model}, nil
}

// Solve is the one-shot convenience wrapper around NewSolver and Run.
func Solve(model *lp.Lp, opts Options) (*Result, error) {
	s, err := NewSolver(model)
	if err != nil {
		return nil, err
	}

	return s.Run(opts)
}

// SetBasis installs a starting basis for the next warm-started run. The
// basis is validated against the model dimensions and copied.
func (s *Solver) SetBasis(b *Basis) error {
	if err := b.validate(s.model.NumRow, s.model.NumTot()); err != nil {
		return err
	}
	c := b.Clone()
	s.basis = &c

	return nil
}

// ClearSolver drops any retained basis; the next run cold-starts from
// the all-logical basis.
func (s *Solver) ClearSolver() {
	s.basis = nil
}

// Run performs one simplex solve under the given options. An error is
// returned only for contract violations (bad options, an installed basis
// that is singular beyond repair); everything the algorithm itself
// decides, numerical failure included, comes back as a Result status.
func (s *Solver) Run(opts Options) (*Result, error) {
	if err := opts.validate(); err != nil {
		return nil, err
	}
	start := time.Now()

	view := newModelView(s.model, opts.Scale)
	stats := &SimplexStats{}

	logical := LogicalBasis(view.numRow, view.numCol)
	basis := &logical
	warm := false
	if opts.UseWarmStart && s.basis != nil &&
		len(s.basis.BasicIndex) == view.numRow && len(s.basis.NonbasicFlag) == view.numTot {
		c := s.basis.Clone()
		basis = &c
		warm = true
	}
	basis.resolveMoves(view)

	factor := newFactorization(view, stats, opts.refactorInterval())
	if err := factor.factorize(basis); err != nil {
		if !warm {
			return nil, errors.Wrap(err, "logical basis")
		}
		// fall back once: a stale warm basis may be singular for the
		// current model
		basis = &logical
		basis.resolveMoves(view)
		if err := factor.factorize(basis); err != nil {
			return nil, err
		}
	}

	w := newWorkspace(view, factor, basis, rngFromSeed(opts.Seed))
	w.setNonbasicValues()
	status := StatusNotSet
	if err := w.computeBasicValues(); err != nil {
		status = StatusNumericalFailure
	} else if err := w.computeDuals(w.cost); err != nil {
		status = StatusNumericalFailure
	}

	if status == StatusNotSet {
		status = s.drive(w, &opts, stats, start)
	}

	stats.Valid = true
	final := basis.Clone()
	s.basis = &final

	res := s.extract(w, status, stats)
	if res.Status == StatusOptimal && view.sense == lp.Minimize &&
		res.ObjectiveValue > opts.ObjectiveBound {
		res.Status = StatusObjectiveBound
	}

	return res, nil
}

// drive dispatches the configured strategy and, for the dual driver,
// the primal cleanup pass that finishes a shift-perturbed solve.
func (s *Solver) drive(w *workspace, opts *Options, stats *SimplexStats, start time.Time) Status {
	workers := opts.workers()
	if opts.Strategy == StrategyPrimal {
		p := &primalDriver{
			w:       w,
			weights: newPrimalWeights(opts.EdgeWeight, w.view.numTot),
			opts:    opts,
			stats:   stats,
			workers: workers,
			start:   start,
		}

		return p.run()
	}

	d := &dualDriver{
		w:       w,
		weights: newDualWeights(opts.EdgeWeight, w.view.numRow),
		opts:    opts,
		stats:   stats,
		workers: workers,
		start:   start,
	}
	if err := d.weights.initialize(w.basis, w); err != nil {
		return StatusNumericalFailure
	}
	status, cleanup := d.run()
	if !cleanup {
		return status
	}

	p := &primalDriver{
		w:       w,
		weights: newPrimalWeights(opts.EdgeWeight, w.view.numTot),
		opts:    opts,
		stats:   stats,
		workers: workers,
		start:   start,
	}

	return p.run()
}

// extract maps the scaled internal point back to the model space, pins
// nonbasic variables exactly to their bounds and fills the solution
// quality report.
func (s *Solver) extract(w *workspace, status Status, stats *SimplexStats) *Result {
	v := w.view
	m := s.model
	sense := m.EffectiveSense()
	sig := 1.0
	if sense == lp.Maximize {
		sig = -1
	}

	res := &Result{
		Status:         status,
		ColValue:       make([]float64, m.NumCol),
		ColDual:        make([]float64, m.NumCol),
		RowValue:       make([]float64, m.NumRow),
		RowDual:        make([]float64, m.NumRow),
		Basis:          w.basis.Clone(),
		IterationCount: stats.IterationCount,
		Stats:          *stats,
	}

	for j := 0; j < m.NumCol; j++ {
		x := w.value[j] * v.colScale[j]
		if w.basis.NonbasicFlag[j] == 1 {
			switch w.basis.NonbasicMove[j] {
			case moveUp:
				x = m.ColLower[j]
			case moveDown:
				x = m.ColUpper[j]
			default:
				if m.ColLower[j] == m.ColUpper[j] {
					x = m.ColLower[j]
				} else {
					x = 0
				}
			}
		}
		res.ColValue[j] = x
		if w.basis.NonbasicFlag[j] == 0 {
			res.ColDual[j] = 0
		} else {
			res.ColDual[j] = sig * w.dual[j] / v.colScale[j]
		}
	}
	for i := 0; i < m.NumRow; i++ {
		j := m.NumCol + i
		sv := w.value[j] / v.rowScale[i]
		if w.basis.NonbasicFlag[j] == 1 {
			switch w.basis.NonbasicMove[j] {
			case moveUp:
				sv = m.RowLower[i]
			case moveDown:
				sv = m.RowUpper[i]
			default:
				if m.RowLower[i] == m.RowUpper[i] {
					sv = m.RowLower[i]
				} else {
					sv = 0
				}
			}
		}
		res.RowValue[i] = sv
		if w.basis.NonbasicFlag[j] == 0 {
			res.RowDual[i] = 0
		} else {
			res.RowDual[i] = sig * w.dual[j] * v.rowScale[i]
		}
	}

	obj := m.Offset
	for j := 0; j < m.NumCol; j++ {
		obj += m.ColCost[j] * res.ColValue[j]
	}
	res.ObjectiveValue = obj

	s.fillInfo(res, sig)

	return res
}

// fillInfo measures the reported solution against the model: bound
// violations, wrong-signed duals and primal·dual complementarity
// products. All measured in model space on the already-pinned values.
func (s *Solver) fillInfo(res *Result, sig float64) {
	m := s.model
	info := &res.Info

	record := func(val, lo, hi, dual float64) {
		if viol := math.Max(lo-val, val-hi); viol > 0 {
			info.NumPrimalInfeasibilities++
			info.SumPrimalInfeasibilities += viol
			if viol > info.MaxPrimalInfeasibility {
				info.MaxPrimalInfeasibility = viol
			}
		}
		// sign convention of a minimize model: at lower d ≥ 0, at upper
		// d ≤ 0, zero when strictly inside
		dmin := sig * dual
		var dviol float64
		switch {
		case lo == hi:
		case val <= lo:
			dviol = math.Max(0, -dmin)
		case val >= hi:
			dviol = math.Max(0, dmin)
		default:
			dviol = math.Abs(dmin)
		}
		if dviol > 0 {
			info.NumDualInfeasibilities++
			info.SumDualInfeasibilities += dviol
			if dviol > info.MaxDualInfeasibility {
				info.MaxDualInfeasibility = dviol
			}
		}
		dist := math.Min(val-lo, hi-val)
		switch {
		case dist < 0:
			dist = 0
		case math.IsInf(dist, 1):
			dist = math.Abs(val)
		}
		if comp := math.Abs(dual) * dist; comp > 0 {
			info.SumComplementarityViolations += comp
			if comp > info.MaxComplementarityViolation {
				info.MaxComplementarityViolation = comp
			}
		}
	}

	for j := 0; j < m.NumCol; j++ {
		record(res.ColValue[j], m.ColLower[j], m.ColUpper[j], res.ColDual[j])
	}
	for i := 0; i < m.NumRow; i++ {
		record(res.RowValue[i], m.RowLower[i], m.RowUpper[i], res.RowDual[i])
	}

	info.DualObjectiveValue = m.Offset +
		floats.Dot(res.ColDual, res.ColValue) +
		floats.Dot(res.RowDual, res.RowValue)
}
