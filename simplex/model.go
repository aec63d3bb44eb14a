package simplex

import (
	"math"

	"github.com/katalvlaran/lvlsolve/lp"
)

// modelView is the solver's read-only working copy of the model: the
// unified structural+logical variable space over the homogeneous system
// A·x − s = 0, internally always minimizing, optionally scaled. The
// original model is never mutated.
type modelView struct {
	numCol int
	numRow int
	numTot int

	// Scaled CSC of the structural columns. Logical column numCol+i is
	// implicit: a single −1 in row i.
	astart []int
	aindex []int
	avalue []float64

	// Per-variable cost and bounds in the scaled, minimize-oriented
	// space. Costs of logicals are zero.
	cost  []float64
	lower []float64
	upper []float64

	sense  lp.ObjSense
	offset float64

	// Power-of-two scale factors, all ones when scaling is off. A
	// structural value unscales as x = x'·colScale[j], a slack as
	// s = s'/rowScale[i].
	colScale []float64
	rowScale []float64
}

// newModelView builds the working view from a validated model.
func newModelView(model *lp.Lp, mode ScaleMode) *modelView {
	n, m := model.NumCol, model.NumRow
	v := &modelView{
		numCol: n,
		numRow: m,
		numTot: n + m,
		astart: append([]int(nil), model.AStart...),
		aindex: append([]int(nil), model.AIndex...),
		avalue: append([]float64(nil), model.AValue...),
		cost:   make([]float64, n+m),
		lower:  make([]float64, n+m),
		upper:  make([]float64, n+m),
		sense:  model.EffectiveSense(),
		offset: model.Offset,
	}
	if len(v.astart) == 0 {
		v.astart = []int{0}
	}

	for j := 0; j < n; j++ {
		c := model.ColCost[j]
		if v.sense == lp.Maximize {
			c = -c
		}
		v.cost[j] = c
		v.lower[j] = model.ColLower[j]
		v.upper[j] = model.ColUpper[j]
	}
	for i := 0; i < m; i++ {
		v.lower[n+i] = model.RowLower[i]
		v.upper[n+i] = model.RowUpper[i]
	}

	v.colScale = make([]float64, n)
	v.rowScale = make([]float64, m)
	for j := range v.colScale {
		v.colScale[j] = 1
	}
	for i := range v.rowScale {
		v.rowScale[i] = 1
	}
	if mode == ScaleEquilibration {
		v.applyScaling()
	}

	return v
}

// pow2Near returns the power of two nearest to x on a log scale.
// Power-of-two factors make every scale/unscale multiplication exact.
func pow2Near(x float64) float64 {
	if x <= 0 || math.IsInf(x, 0) || math.IsNaN(x) {
		return 1
	}

	return math.Ldexp(1, int(math.Round(math.Log2(x))))
}

// applyScaling computes geometric-mean equilibration factors rounded to
// powers of two and rewrites the working copy in the scaled space:
// A' = R·A·C, c' = C·c, colBounds' = colBounds/C, rowBounds' = R·rowBounds.
func (v *modelView) applyScaling() {
	n, m := v.numCol, v.numRow
	cs := make([]float64, n)
	rs := make([]float64, m)

	// Column pass on original values.
	for j := 0; j < n; j++ {
		lo, hi := math.Inf(1), 0.0
		for k := v.astart[j]; k < v.astart[j+1]; k++ {
			a := math.Abs(v.avalue[k])
			if a == 0 {
				continue
			}
			lo = math.Min(lo, a)
			hi = math.Max(hi, a)
		}
		cs[j] = 1
		if hi > 0 {
			cs[j] = 1 / pow2Near(math.Sqrt(lo*hi))
		}
	}
	// Row pass on column-scaled values.
	rowLo := make([]float64, m)
	rowHi := make([]float64, m)
	for i := range rowLo {
		rowLo[i] = math.Inf(1)
	}
	for j := 0; j < n; j++ {
		for k := v.astart[j]; k < v.astart[j+1]; k++ {
			a := math.Abs(v.avalue[k]) * cs[j]
			if a == 0 {
				continue
			}
			i := v.aindex[k]
			rowLo[i] = math.Min(rowLo[i], a)
			rowHi[i] = math.Max(rowHi[i], a)
		}
	}
	for i := 0; i < m; i++ {
		rs[i] = 1
		if rowHi[i] > 0 {
			rs[i] = 1 / pow2Near(math.Sqrt(rowLo[i]*rowHi[i]))
		}
	}

	for j := 0; j < n; j++ {
		for k := v.astart[j]; k < v.astart[j+1]; k++ {
			v.avalue[k] *= rs[v.aindex[k]] * cs[j]
		}
		v.cost[j] *= cs[j]
		v.lower[j] /= cs[j]
		v.upper[j] /= cs[j]
	}
	for i := 0; i < m; i++ {
		v.lower[n+i] *= rs[i]
		v.upper[n+i] *= rs[i]
	}

	v.colScale = cs
	v.rowScale = rs
}

// isLogical reports whether variable j is a logical (slack).
func (v *modelView) isLogical(j int) bool { return j >= v.numCol }

// isFixed reports whether variable j has coincident bounds.
func (v *modelView) isFixed(j int) bool { return v.lower[j] == v.upper[j] }

// isFree reports whether variable j is unbounded in both directions.
func (v *modelView) isFree(j int) bool {
	return math.IsInf(v.lower[j], -1) && math.IsInf(v.upper[j], 1)
}

// columnDot returns A_jᵀ·y for the unified column j.
func (v *modelView) columnDot(j int, y []float64) float64 {
	if v.isLogical(j) {
		return -y[j-v.numCol]
	}
	var dot float64
	for k := v.astart[j]; k < v.astart[j+1]; k++ {
		dot += v.avalue[k] * y[v.aindex[k]]
	}

	return dot
}

// scatterColumn accumulates sig·A_j into dst (length numRow).
func (v *modelView) scatterColumn(j int, sig float64, dst []float64) {
	if v.isLogical(j) {
		dst[j-v.numCol] -= sig

		return
	}
	for k := v.astart[j]; k < v.astart[j+1]; k++ {
		dst[v.aindex[k]] += sig * v.avalue[k]
	}
}

// columnNonzeros counts stored entries of the unified column j.
func (v *modelView) columnNonzeros(j int) int {
	if v.isLogical(j) {
		return 1
	}

	return v.astart[j+1] - v.astart[j]
}
