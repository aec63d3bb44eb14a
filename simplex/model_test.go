package simplex

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/lvlsolve/lp"
)

func scaledView(t *testing.T, mode ScaleMode) *modelView {
	t.Helper()
	m := &lp.Lp{
		NumCol:   2,
		NumRow:   2,
		AStart:   []int{0, 2, 4},
		AIndex:   []int{0, 1, 0, 1},
		AValue:   []float64{1, 2, 1, 4},
		ColCost:  []float64{-8, -10},
		ColLower: []float64{0, 0},
		ColUpper: []float64{lp.Inf, lp.Inf},
		RowLower: []float64{math.Inf(-1), math.Inf(-1)},
		RowUpper: []float64{80, 120},
	}
	require.NoError(t, m.Validate())

	return newModelView(m, mode)
}

// TestPow2Near pins the factor rounding, half-exponents away from zero.
func TestPow2Near(t *testing.T) {
	assert.Equal(t, 1.0, pow2Near(1))
	assert.Equal(t, 2.0, pow2Near(1.5))
	assert.Equal(t, 4.0, pow2Near(3.9))
	assert.Equal(t, 0.25, pow2Near(0.3))
	assert.Equal(t, 2.0, pow2Near(math.Sqrt2), "half exponents round up")
	assert.Equal(t, 1.0, pow2Near(0), "degenerate input keeps factor 1")
	assert.Equal(t, 1.0, pow2Near(math.Inf(1)))
}

// TestModelView_ScalingExact verifies every factor is a power of two and
// the scaled copy round-trips without drift.
func TestModelView_ScalingExact(t *testing.T) {
	v := scaledView(t, ScaleEquilibration)

	for _, f := range append(append([]float64(nil), v.colScale...), v.rowScale...) {
		frac, _ := math.Frexp(f)
		assert.Equal(t, 0.5, frac, "factor %g is a power of two", f)
	}

	raw := scaledView(t, ScaleOff)
	for k := range v.avalue {
		i, j := v.aindex[k], 0
		for v.astart[j+1] <= k {
			j++
		}
		assert.Equal(t, raw.avalue[k],
			v.avalue[k]/(v.rowScale[i]*v.colScale[j]), "entry %d unscales exactly", k)
	}
}

// TestModelView_ScaleOffIsIdentity verifies the off mode keeps factors 1.
func TestModelView_ScaleOffIsIdentity(t *testing.T) {
	v := scaledView(t, ScaleOff)
	for _, f := range v.colScale {
		assert.Equal(t, 1.0, f)
	}
	for _, f := range v.rowScale {
		assert.Equal(t, 1.0, f)
	}
}

// TestModelView_LogicalColumns verifies the implicit −1 logical columns
// through columnDot and scatterColumn.
func TestModelView_LogicalColumns(t *testing.T) {
	v := scaledView(t, ScaleOff)

	y := []float64{3, 5}
	assert.Equal(t, -3.0, v.columnDot(v.numCol+0, y), "logical 0 is −e₀")
	assert.Equal(t, -5.0, v.columnDot(v.numCol+1, y), "logical 1 is −e₁")
	assert.Equal(t, 1.0*3+2*5, v.columnDot(0, y), "structural dot uses the CSC entries")

	dst := make([]float64, 2)
	v.scatterColumn(v.numCol+1, 2, dst)
	assert.Equal(t, []float64{0, -2}, dst)
	v.scatterColumn(0, 1, dst)
	assert.Equal(t, []float64{1, 0}, dst)
}

// TestModelView_MaximizeNegatesCosts verifies the internal minimize
// orientation.
func TestModelView_MaximizeNegatesCosts(t *testing.T) {
	m := &lp.Lp{
		NumCol:   1,
		NumRow:   0,
		AStart:   []int{0, 0},
		ColCost:  []float64{4},
		ColLower: []float64{0},
		ColUpper: []float64{1},
		Sense:    lp.Maximize,
	}
	v := newModelView(m, ScaleOff)
	assert.Equal(t, -4.0, v.cost[0], "maximize costs negate internally")
}
