package simplex

import "math"

// dualRatio holds the outcome of the dual ratio test: the entering
// variable and the dual step length.
type dualRatio struct {
	entering int
	step     float64
}

// dualRatioTest selects the entering variable for the dual pivot in the
// row priced by alpha. sigma is +1 when the leaving basic sits below its
// lower bound and −1 when above its upper; the dual step θ ≥ 0 moves
// every reduced cost by σ·θ·α_j.
//
// Two passes in the manner of Harris: the first finds the largest step
// that keeps every reduced cost within dualTol of feasibility, the
// second picks the largest pivot among columns whose exact ratio fits
// under that relaxed step. Returns entering −1 when no column bounds the
// step, which certifies dual unboundedness.
func dualRatioTest(w *workspace, alpha []float64, sigma, dualTol float64, workers int) dualRatio {
	v := w.view
	b := w.basis

	// candidate denominator, positive for admissible columns
	denom := func(j int) float64 {
		if b.NonbasicFlag[j] == 0 || v.isFixed(j) || math.Abs(alpha[j]) <= pivotTol {
			return 0
		}
		switch b.NonbasicMove[j] {
		case moveUp:
			return -sigma * alpha[j]
		case moveDown:
			return sigma * alpha[j]
		default: // free, d_j = 0, blocks immediately in either direction
			return math.Abs(alpha[j])
		}
	}
	numer := func(j int) float64 {
		switch b.NonbasicMove[j] {
		case moveUp:
			return w.dual[j]
		case moveDown:
			return -w.dual[j]
		default:
			return 0
		}
	}

	thetaMax := math.Inf(1)
	for j := 0; j < v.numTot; j++ {
		d := denom(j)
		if d <= pivotTol {
			continue
		}
		if r := (numer(j) + dualTol) / d; r < thetaMax {
			thetaMax = r
		}
	}
	if math.IsInf(thetaMax, 1) {
		return dualRatio{entering: -1}
	}

	best := bestScored(v.numTot, workers, func(j int) float64 {
		d := denom(j)
		if d <= pivotTol {
			return 0
		}
		if numer(j)/d > thetaMax {
			return 0
		}

		return math.Abs(alpha[j])
	})
	if best.index < 0 {
		return dualRatio{entering: -1}
	}

	return dualRatio{entering: best.index, step: numer(best.index) / denom(best.index)}
}

// primalRatio holds the outcome of the primal ratio test. blockRow < 0
// with a finite step means the entering variable hits its own opposite
// bound (a bound flip); an infinite step with no blocking row certifies
// unboundedness.
type primalRatio struct {
	blockRow int
	step     float64
}

// primalRatioTest finds how far the entering variable can move in
// direction dir before a basic variable hits a bound. colAq is the ftran
// of the entering column, so basic row i changes at rate −dir·colAq[i].
//
// In phase 1 (phase1 true) a basic variable that is currently outside a
// bound blocks at the bound it is violating rather than the far one; the
// composite cost flips there and the driver re-prices.
func primalRatioTest(w *workspace, q int, dir float64, colAq []float64, feasTol float64, phase1 bool) primalRatio {
	v := w.view
	b := w.basis

	// rate and blocking distance per row, zero rate for non-blocking
	limit := func(i int) (rate, dist float64) {
		rate = -dir * colAq[i]
		if math.Abs(rate) <= pivotTol {
			return 0, 0
		}
		bi := b.BasicIndex[i]
		val := w.value[bi]
		if rate > 0 {
			bound := v.upper[bi]
			if phase1 && val < v.lower[bi] {
				bound = v.lower[bi]
			}
			if math.IsInf(bound, 1) {
				return 0, 0
			}

			return rate, bound - val
		}
		bound := v.lower[bi]
		if phase1 && val > v.upper[bi] {
			bound = v.upper[bi]
		}
		if math.IsInf(bound, -1) {
			return 0, 0
		}

		return rate, bound - val
	}

	thetaMax := math.Inf(1)
	for i := 0; i < v.numRow; i++ {
		rate, dist := limit(i)
		if rate == 0 {
			continue
		}
		if r := (dist + math.Copysign(feasTol, rate)) / rate; r < thetaMax {
			thetaMax = r
		}
	}
	if thetaMax < 0 {
		thetaMax = 0
	}

	// own range of the entering variable caps the step as a bound flip
	ownRange := v.upper[q] - v.lower[q]

	best := bestScored(v.numRow, 1, func(i int) float64 {
		rate, dist := limit(i)
		if rate == 0 {
			return 0
		}
		if dist/rate > thetaMax {
			return 0
		}

		return math.Abs(rate)
	})
	if best.index < 0 {
		if math.IsInf(ownRange, 1) {
			return primalRatio{blockRow: -1, step: math.Inf(1)}
		}

		return primalRatio{blockRow: -1, step: ownRange}
	}

	rate, dist := limit(best.index)
	step := dist / rate
	if step < 0 {
		step = 0
	}
	if ownRange < step {
		return primalRatio{blockRow: -1, step: ownRange}
	}

	return primalRatio{blockRow: best.index, step: step}
}
