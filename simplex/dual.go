package simplex

import (
	"math"
	"time"

	"github.com/katalvlaran/lvlsolve/lp"
)

// dualDriver runs the dual simplex: every iterate is dual feasible (after
// the flip/shift phase 1) and pivots chase primal feasibility. It is the
// default driver; the primal driver cleans up when cost shifts were
// needed and their removal re-exposes dual infeasibility.
type dualDriver struct {
	w       *workspace
	weights *dualWeights
	opts    *Options
	stats   *SimplexStats
	workers int
	start   time.Time
}

// restoreDualFeasibility makes every nonbasic reduced cost sign-correct.
// A variable with a finite opposite bound is flipped there; one without
// gets a cost shift. Reports whether any flip changed the primal point.
func (d *dualDriver) restoreDualFeasibility() bool {
	w, v, b := d.w, d.w.view, d.w.basis
	tol := d.opts.DualFeasTol
	margin := func() float64 {
		if !d.opts.PerturbCosts {
			return 0
		}

		return tol * (1 + 9*w.rng.Float64())
	}

	flipped := false
	for j := 0; j < v.numTot; j++ {
		if b.NonbasicFlag[j] == 0 || v.isFixed(j) {
			continue
		}
		switch b.NonbasicMove[j] {
		case moveUp:
			if w.dual[j] >= -tol {
				continue
			}
			if !math.IsInf(v.upper[j], 1) {
				b.NonbasicMove[j] = moveDown
				w.value[j] = v.upper[j]
				flipped = true
			} else {
				t := margin()
				w.applyShift(j, t, w.dual[j])
				w.dual[j] = t
			}
		case moveDown:
			if w.dual[j] <= tol {
				continue
			}
			if !math.IsInf(v.lower[j], -1) {
				b.NonbasicMove[j] = moveUp
				w.value[j] = v.lower[j]
				flipped = true
			} else {
				t := -margin()
				w.applyShift(j, t, w.dual[j])
				w.dual[j] = t
			}
		default: // free
			if math.Abs(w.dual[j]) > tol {
				w.applyShift(j, 0, w.dual[j])
				w.dual[j] = 0
			}
		}
	}

	return flipped
}

// dualInfeasible reports whether any nonbasic reduced cost violates its
// sign condition beyond the tolerance.
func (d *dualDriver) dualInfeasible() bool {
	w, v, b := d.w, d.w.view, d.w.basis
	tol := d.opts.DualFeasTol
	for j := 0; j < v.numTot; j++ {
		if b.NonbasicFlag[j] == 0 || v.isFixed(j) {
			continue
		}
		switch b.NonbasicMove[j] {
		case moveUp:
			if w.dual[j] < -tol {
				return true
			}
		case moveDown:
			if w.dual[j] > tol {
				return true
			}
		default:
			if math.Abs(w.dual[j]) > tol {
				return true
			}
		}
	}

	return false
}

// refresh refactorizes when flagged and recomputes the working point and
// reduced costs from scratch.
func (d *dualDriver) refresh() error {
	w := d.w
	if w.factor.needRefactor() {
		if err := w.factor.factorize(w.basis); err != nil {
			return err
		}
	}
	w.setNonbasicValues()
	if err := w.computeBasicValues(); err != nil {
		return err
	}

	return w.computeDuals(w.cost)
}

// run drives dual pivots until a terminal status. The second result asks
// the controller to finish with primal phase-2 cleanup: the point is
// primal feasible but removing the phase-1 cost shifts left some reduced
// costs with the wrong sign.
func (d *dualDriver) run() (Status, bool) {
	w, v, opts, stats := d.w, d.w.view, d.opts, d.stats

	if d.restoreDualFeasibility() {
		_ = w.computeBasicValues() // refresh below recomputes on failure
	}
	for {
		if stats.IterationCount >= opts.IterationLimit {
			return StatusIterationLimit, false
		}
		if opts.TimeLimit > 0 && time.Since(d.start) > opts.TimeLimit {
			return StatusTimeLimit, false
		}

		if err := d.refresh(); err != nil {
			if w.factor.noteInstability() {
				return StatusNumericalFailure, false
			}

			continue
		}

		// Dual feasible with true costs means the working objective is a
		// valid lower bound on the optimum; past the cutoff the solve can
		// stop before reaching optimality.
		if v.sense == lp.Minimize && w.totalShift() == 0 &&
			w.objective(true)+v.offset > opts.ObjectiveBound {
			return StatusObjectiveBound, false
		}

		pick := bestScored(v.numRow, d.workers, func(i int) float64 {
			infeas := w.primalInfeasibility(w.basis.BasicIndex[i])
			if math.Abs(infeas) <= opts.PrimalFeasTol {
				return 0
			}

			return infeas * infeas / d.weights.w[i]
		})
		if pick.index < 0 {
			if w.totalShift() > 0 {
				w.removeShifts()
				if err := w.computeDuals(w.cost); err != nil {
					if w.factor.noteInstability() {
						return StatusNumericalFailure, false
					}

					continue
				}
				if d.dualInfeasible() {
					return StatusNotSet, true
				}
			}

			return StatusOptimal, false
		}

		r := pick.index
		bi := w.basis.BasicIndex[r]
		sigma, targetBound, targetMove := 1.0, v.lower[bi], moveUp
		if w.value[bi] > v.upper[bi] {
			sigma, targetBound, targetMove = -1.0, v.upper[bi], moveDown
		}
		if v.isFixed(bi) {
			targetMove = moveZero
		}

		rowEp, err := w.rowEp(r, stats)
		if err != nil {
			if w.factor.noteInstability() {
				return StatusNumericalFailure, false
			}

			continue
		}
		alpha := w.rowAp(rowEp, stats)

		ratio := dualRatioTest(w, alpha, sigma, opts.DualFeasTol, d.workers)
		if ratio.entering < 0 {
			// No column can absorb the dual step: the dual is unbounded
			// along this row regardless of costs, so the primal row
			// system itself is infeasible.
			return StatusInfeasible, false
		}
		q := ratio.entering

		colAq, err := w.colAq(q, stats)
		if err != nil {
			if w.factor.noteInstability() {
				return StatusNumericalFailure, false
			}

			continue
		}
		alphaQ := colAq[r]
		if math.Abs(alphaQ) <= pivotTol ||
			math.Abs(alphaQ-alpha[q]) > 1e-7*(1+math.Abs(alphaQ)) {
			if w.factor.noteInstability() {
				return StatusNumericalFailure, false
			}

			continue
		}

		if err := d.weights.update(w, r, colAq, rowEp, alphaQ, stats); err != nil {
			if w.factor.noteInstability() {
				return StatusNumericalFailure, false
			}

			continue
		}

		w.basis.BasicIndex[r] = q
		w.basis.NonbasicFlag[q] = 0
		w.basis.NonbasicMove[q] = 0
		w.basis.NonbasicFlag[bi] = 1
		w.basis.NonbasicMove[bi] = targetMove
		w.value[bi] = targetBound

		if err := w.factor.update(w.basis, r, q); err != nil {
			if w.factor.noteInstability() {
				return StatusNumericalFailure, false
			}
		}
		stats.IterationCount++
	}
}
