package simplex

import (
	"math/rand"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/mat"
)

// workspace bundles the per-solve working vectors: current costs (with
// any dual-feasibility shifts), primal values, reduced costs and the row
// duals of the last btran. All vectors span the unified index range
// [0, numTot): structural columns first, then logicals.
type workspace struct {
	view   *modelView
	factor *factorization
	basis  *Basis
	rng    *rand.Rand

	cost  []float64 // working cost, trueCost plus shift
	shift []float64
	value []float64
	dual  []float64
	y     []float64 // row duals of the last computeDuals
}

func newWorkspace(view *modelView, factor *factorization, basis *Basis, rng *rand.Rand) *workspace {
	n := view.numTot

	return &workspace{
		view:   view,
		factor: factor,
		basis:  basis,
		rng:    rng,
		cost:   append([]float64(nil), view.cost...),
		shift:  make([]float64, n),
		value:  make([]float64, n),
		y:      make([]float64, view.numRow),
		dual:   make([]float64, n),
	}
}

// totalShift is the L1 norm of the applied cost shifts. While it is
// nonzero the working objective is not the true objective.
func (w *workspace) totalShift() float64 { return floats.Norm(w.shift, 1) }

// applyShift moves the working cost of variable j so its reduced cost
// becomes target, recording the displacement for later removal.
func (w *workspace) applyShift(j int, target, current float64) {
	delta := target - current
	w.shift[j] += delta
	w.cost[j] += delta
}

// removeShifts restores the true costs. Reduced costs must be recomputed
// afterwards.
func (w *workspace) removeShifts() {
	for j := range w.shift {
		w.cost[j] -= w.shift[j]
		w.shift[j] = 0
	}
}

// setNonbasicValues pins every nonbasic variable to the bound indicated
// by its move direction.
func (w *workspace) setNonbasicValues() {
	v := w.view
	for j := 0; j < v.numTot; j++ {
		if w.basis.NonbasicFlag[j] == 0 {
			continue
		}
		switch w.basis.NonbasicMove[j] {
		case moveUp:
			w.value[j] = v.lower[j]
		case moveDown:
			w.value[j] = v.upper[j]
		default:
			if v.isFixed(j) {
				w.value[j] = v.lower[j]
			} else {
				w.value[j] = 0 // free at origin
			}
		}
	}
}

// computeBasicValues solves B·x_B = −N·x_N for the basic values. The
// nonbasic values must already be set.
func (w *workspace) computeBasicValues() error {
	v := w.view
	if v.numRow == 0 {
		return nil
	}
	rhs := make([]float64, v.numRow)
	for j := 0; j < v.numTot; j++ {
		if w.basis.NonbasicFlag[j] == 0 || w.value[j] == 0 {
			continue
		}
		w.view.scatterColumn(j, -w.value[j], rhs)
	}
	vec := mat.NewVecDense(v.numRow, rhs)
	if err := w.factor.ftran(vec); err != nil {
		return err
	}
	for i := 0; i < v.numRow; i++ {
		w.value[w.basis.BasicIndex[i]] = vec.AtVec(i)
	}

	return nil
}

// computeDuals recomputes y = B⁻ᵀ·c_B and every reduced cost from the
// given cost vector, usually the working costs but a composite phase 1
// cost in the primal driver. Basic reduced costs are exactly zero.
func (w *workspace) computeDuals(cost []float64) error {
	v := w.view
	if v.numRow > 0 {
		cb := make([]float64, v.numRow)
		for i := 0; i < v.numRow; i++ {
			cb[i] = cost[w.basis.BasicIndex[i]]
		}
		vec := mat.NewVecDense(v.numRow, cb)
		if err := w.factor.btran(vec); err != nil {
			return err
		}
		for i := 0; i < v.numRow; i++ {
			w.y[i] = vec.AtVec(i)
		}
	}
	for j := 0; j < v.numTot; j++ {
		if w.basis.NonbasicFlag[j] == 0 {
			w.dual[j] = 0

			continue
		}
		w.dual[j] = cost[j] - v.columnDot(j, w.y)
	}

	return nil
}

// objective evaluates the objective at the current values. With trueCost
// the original (shift-free) costs are used.
func (w *workspace) objective(trueCost bool) float64 {
	v := w.view
	z := 0.0
	for j := 0; j < v.numCol; j++ {
		c := w.cost[j]
		if trueCost {
			c -= w.shift[j]
		}
		z += c * w.value[j]
	}

	return z
}

// primalInfeasibility returns the variable bound violation, positive
// when below the lower bound and negative when above the upper.
func (w *workspace) primalInfeasibility(j int) float64 {
	if w.value[j] < w.view.lower[j] {
		return w.view.lower[j] - w.value[j]
	}
	if w.value[j] > w.view.upper[j] {
		return w.view.upper[j] - w.value[j]
	}

	return 0
}

// colAq solves B·a = A_q, the ftran of the entering column, and records
// its density.
func (w *workspace) colAq(entering int, stats *SimplexStats) ([]float64, error) {
	v := w.view
	col := make([]float64, v.numRow)
	if v.numRow == 0 {
		return col, nil
	}
	v.scatterColumn(entering, 1, col)
	vec := mat.NewVecDense(v.numRow, col)
	if err := w.factor.ftran(vec); err != nil {
		return nil, err
	}
	nz := 0
	for i := 0; i < v.numRow; i++ {
		col[i] = vec.AtVec(i)
		if col[i] != 0 {
			nz++
		}
	}
	updateDensity(&stats.ColAqDensity, nz, v.numRow)

	return col, nil
}

// rowEp solves Bᵀ·ρ = e_r, the btran of the leaving row, and records its
// density.
func (w *workspace) rowEp(leavingRow int, stats *SimplexStats) ([]float64, error) {
	v := w.view
	row := make([]float64, v.numRow)
	row[leavingRow] = 1
	vec := mat.NewVecDense(v.numRow, row)
	if err := w.factor.btran(vec); err != nil {
		return nil, err
	}
	nz := 0
	for i := 0; i < v.numRow; i++ {
		row[i] = vec.AtVec(i)
		if row[i] != 0 {
			nz++
		}
	}
	updateDensity(&stats.RowEpDensity, nz, v.numRow)

	return row, nil
}

// rowAp prices the pivotal row: alpha[j] = ρᵀ·A_j for every nonbasic j,
// zero elsewhere. Records the row density.
func (w *workspace) rowAp(rowEp []float64, stats *SimplexStats) []float64 {
	v := w.view
	alpha := make([]float64, v.numTot)
	nz := 0
	for j := 0; j < v.numTot; j++ {
		if w.basis.NonbasicFlag[j] == 0 {
			continue
		}
		a := v.columnDot(j, rowEp)
		alpha[j] = a
		if a != 0 {
			nz++
		}
	}
	updateDensity(&stats.RowApDensity, nz, v.numTot)

	return alpha
}
