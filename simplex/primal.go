package simplex

import (
	"math"
	"time"
)

// primalDriver runs the primal simplex. Phase 1 minimizes the composite
// infeasibility objective (cost −1 per basic below its lower bound, +1
// per basic above its upper), re-priced every iteration; phase 2 then
// minimizes the working costs. It also serves as the cleanup pass after
// the dual driver removes its phase-1 cost shifts.
type primalDriver struct {
	w       *workspace
	weights *primalWeights
	opts    *Options
	stats   *SimplexStats
	workers int
	start   time.Time
}

// compositeCost builds the phase-1 pricing costs. Returns nil when the
// point is primal feasible, which switches pricing to the true costs.
func (p *primalDriver) compositeCost() []float64 {
	w, v := p.w, p.w.view
	var comp []float64
	for i := 0; i < v.numRow; i++ {
		bi := w.basis.BasicIndex[i]
		infeas := w.primalInfeasibility(bi)
		if math.Abs(infeas) <= p.opts.PrimalFeasTol {
			continue
		}
		if comp == nil {
			comp = make([]float64, v.numTot)
		}
		if infeas > 0 { // below lower, pull up
			comp[bi] = -1
		} else {
			comp[bi] = 1
		}
	}

	return comp
}

func (p *primalDriver) refresh() error {
	w := p.w
	if w.factor.needRefactor() {
		if err := w.factor.factorize(w.basis); err != nil {
			return err
		}
	}
	w.setNonbasicValues()

	return w.computeBasicValues()
}

// run drives primal pivots until a terminal status.
func (p *primalDriver) run() Status {
	w, v, opts, stats := p.w, p.w.view, p.opts, p.stats
	tol := opts.DualFeasTol

	for {
		if stats.IterationCount >= opts.IterationLimit {
			return StatusIterationLimit
		}
		if opts.TimeLimit > 0 && time.Since(p.start) > opts.TimeLimit {
			return StatusTimeLimit
		}

		if err := p.refresh(); err != nil {
			if w.factor.noteInstability() {
				return StatusNumericalFailure
			}

			continue
		}

		comp := p.compositeCost()
		phase1 := comp != nil
		cost := w.cost
		if phase1 {
			cost = comp
		}
		if err := w.computeDuals(cost); err != nil {
			if w.factor.noteInstability() {
				return StatusNumericalFailure
			}

			continue
		}

		pick := bestScored(v.numTot, p.workers, func(j int) float64 {
			if w.basis.NonbasicFlag[j] == 0 || v.isFixed(j) {
				return 0
			}
			d := w.dual[j]
			switch w.basis.NonbasicMove[j] {
			case moveUp:
				if d >= -tol {
					return 0
				}
			case moveDown:
				if d <= tol {
					return 0
				}
			default:
				if math.Abs(d) <= tol {
					return 0
				}
			}

			return d * d / p.weights.w[j]
		})
		if pick.index < 0 {
			if phase1 {
				// Phase 1 optimal with infeasibility left over: no basis
				// reaches the bounds.
				return StatusInfeasible
			}

			return StatusOptimal
		}
		q := pick.index

		dir := 1.0
		switch w.basis.NonbasicMove[q] {
		case moveDown:
			dir = -1
		case moveZero:
			if w.dual[q] > 0 {
				dir = -1
			}
		}

		colAq, err := w.colAq(q, stats)
		if err != nil {
			if w.factor.noteInstability() {
				return StatusNumericalFailure
			}

			continue
		}

		ratio := primalRatioTest(w, q, dir, colAq, opts.PrimalFeasTol, phase1)
		if ratio.blockRow < 0 {
			if math.IsInf(ratio.step, 1) {
				if phase1 {
					// A composite descent direction with no block cannot
					// happen at a finite infeasibility; give up rather
					// than loop.
					return StatusNumericalFailure
				}

				return StatusUnbounded
			}
			// bound flip: the entering variable crosses its own range
			if w.basis.NonbasicMove[q] == moveUp {
				w.basis.NonbasicMove[q] = moveDown
				w.value[q] = v.upper[q]
			} else {
				w.basis.NonbasicMove[q] = moveUp
				w.value[q] = v.lower[q]
			}
			stats.IterationCount++

			continue
		}

		r := ratio.blockRow
		bi := w.basis.BasicIndex[r]
		alphaQ := colAq[r]
		if math.Abs(alphaQ) <= pivotTol {
			if w.factor.noteInstability() {
				return StatusNumericalFailure
			}

			continue
		}

		// which bound the blocking basic lands on
		rate := -dir * alphaQ
		var targetMove int8
		var targetBound float64
		if rate > 0 {
			if phase1 && w.value[bi] < v.lower[bi] {
				targetMove, targetBound = moveUp, v.lower[bi]
			} else {
				targetMove, targetBound = moveDown, v.upper[bi]
			}
		} else {
			if phase1 && w.value[bi] > v.upper[bi] {
				targetMove, targetBound = moveDown, v.upper[bi]
			} else {
				targetMove, targetBound = moveUp, v.lower[bi]
			}
		}
		if v.isFixed(bi) {
			targetMove = moveZero
		}

		if p.weights.mode != WeightPlain {
			rowEp, rerr := w.rowEp(r, stats)
			if rerr != nil {
				if w.factor.noteInstability() {
					return StatusNumericalFailure
				}

				continue
			}
			alpha := w.rowAp(rowEp, stats)
			p.weights.update(w.basis, q, bi, alpha, alphaQ)
		}

		w.basis.BasicIndex[r] = q
		w.basis.NonbasicFlag[q] = 0
		w.basis.NonbasicMove[q] = 0
		w.basis.NonbasicFlag[bi] = 1
		w.basis.NonbasicMove[bi] = targetMove
		w.value[bi] = targetBound

		if err := w.factor.update(w.basis, r, q); err != nil {
			if w.factor.noteInstability() {
				return StatusNumericalFailure
			}
		}
		stats.IterationCount++
	}
}
