package simplex

import "gonum.org/v1/gonum/mat"

const (
	// minDualWeight floors the steepest-edge weights; the update formula
	// can drift below the true norm on ill-conditioned bases.
	minDualWeight = 1e-4
	// devexResetThreshold restarts the Devex reference framework once the
	// approximate weights have grown past any useful accuracy.
	devexResetThreshold = 1e6
)

// dualWeights carries the per-row pricing weights of the dual simplex.
// With WeightSteepestEdge w_i tracks ‖B⁻ᵀe_i‖² exactly; with WeightDevex
// it is the usual monotone approximation; with WeightPlain it stays 1 and
// pricing degenerates to the most-infeasible rule.
type dualWeights struct {
	mode EdgeWeightMode
	w    []float64
}

func newDualWeights(mode EdgeWeightMode, numRow int) *dualWeights {
	dw := &dualWeights{mode: mode, w: make([]float64, numRow)}
	for i := range dw.w {
		dw.w[i] = 1
	}

	return dw
}

// initialize computes exact steepest-edge weights for a non-logical
// starting basis. A logical basis B = −I already has unit row norms, so
// the constructor's ones are exact there.
func (dw *dualWeights) initialize(b *Basis, w *workspace) error {
	if dw.mode != WeightSteepestEdge {
		return nil
	}
	m := w.view.numRow
	if b.isLogical(w.view.numCol) {
		return nil
	}
	row := make([]float64, m)
	for i := 0; i < m; i++ {
		for k := range row {
			row[k] = 0
		}
		row[i] = 1
		vec := mat.NewVecDense(m, row)
		if err := w.factor.btran(vec); err != nil {
			return err
		}
		dw.w[i] = mat.Dot(vec, vec)
		if dw.w[i] < minDualWeight {
			dw.w[i] = minDualWeight
		}
	}

	return nil
}

// update refreshes the weights after the pivot in row r with ftran column
// colAq and pivot element alphaR. rowEp is the btran of e_r; steepest
// edge additionally needs τ = B⁻¹ρ_r, one extra ftran whose density
// feeds RowDSEDensity.
func (dw *dualWeights) update(w *workspace, r int, colAq, rowEp []float64, alphaR float64, stats *SimplexStats) error {
	m := w.view.numRow
	switch dw.mode {
	case WeightSteepestEdge:
		tau := append([]float64(nil), rowEp...)
		vec := mat.NewVecDense(m, tau)
		if err := w.factor.ftran(vec); err != nil {
			return err
		}
		nz := 0
		for i := 0; i < m; i++ {
			tau[i] = vec.AtVec(i)
			if tau[i] != 0 {
				nz++
			}
		}
		updateDensity(&stats.RowDSEDensity, nz, m)

		wr := dw.w[r]
		for i := 0; i < m; i++ {
			if i == r || colAq[i] == 0 {
				continue
			}
			mu := colAq[i] / alphaR
			dw.w[i] += mu * (mu*wr - 2*tau[i])
			if dw.w[i] < minDualWeight {
				dw.w[i] = minDualWeight
			}
		}
		dw.w[r] = wr / (alphaR * alphaR)
		if dw.w[r] < minDualWeight {
			dw.w[r] = minDualWeight
		}
	case WeightDevex:
		wr := dw.w[r]
		grown := 0.0
		for i := 0; i < m; i++ {
			if i == r || colAq[i] == 0 {
				continue
			}
			mu := colAq[i] / alphaR
			if cand := mu * mu * wr; cand > dw.w[i] {
				dw.w[i] = cand
			}
			if dw.w[i] > grown {
				grown = dw.w[i]
			}
		}
		dw.w[r] = wr / (alphaR * alphaR)
		if dw.w[r] < 1 {
			dw.w[r] = 1
		}
		if grown > devexResetThreshold {
			for i := range dw.w {
				dw.w[i] = 1
			}
		}
	case WeightPlain:
	}

	return nil
}

// primalWeights carries the Devex reference weights of primal pricing,
// one per unified column. Plain mode keeps them at 1 (Dantzig pricing).
type primalWeights struct {
	mode EdgeWeightMode
	w    []float64
}

func newPrimalWeights(mode EdgeWeightMode, numTot int) *primalWeights {
	pw := &primalWeights{mode: mode, w: make([]float64, numTot)}
	for j := range pw.w {
		pw.w[j] = 1
	}

	return pw
}

// update refreshes the column weights after entering q leaves row r. The
// alpha values of the pivotal row price every nonbasic column, so only
// Devex (and steepest edge, approximated by Devex on the primal side)
// touches them.
func (pw *primalWeights) update(b *Basis, q, leaving int, alpha []float64, alphaQ float64) {
	if pw.mode == WeightPlain {
		return
	}
	wq := pw.w[q]
	grown := 0.0
	for j := range alpha {
		if alpha[j] == 0 || b.NonbasicFlag[j] == 0 || j == q {
			continue
		}
		mu := alpha[j] / alphaQ
		if cand := mu * mu * wq; cand > pw.w[j] {
			pw.w[j] = cand
		}
		if pw.w[j] > grown {
			grown = pw.w[j]
		}
	}
	pw.w[leaving] = wq / (alphaQ * alphaQ)
	if pw.w[leaving] < 1 {
		pw.w[leaving] = 1
	}
	if grown > devexResetThreshold {
		for j := range pw.w {
			pw.w[j] = 1
		}
	}
}
