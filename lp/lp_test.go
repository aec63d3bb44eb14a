package lp_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/lvlsolve/lp"
)

// twoColModel builds a small well-formed model used across the tests:
//
//	minimize −8x₀ − 10x₁
//	s.t.     x₀ +  x₁ ≤ 80
//	        2x₀ + 4x₁ ≤ 120
//	         x₀, x₁ ≥ 0
func twoColModel() *lp.Lp {
	return &lp.Lp{
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
		Name:     "blend",
	}
}

// TestValidate_OK verifies a well-formed model passes.
func TestValidate_OK(t *testing.T) {
	assert.NoError(t, twoColModel().Validate(), "well-formed model must validate")
}

// TestValidate_Dimensions covers mismatched vector lengths.
func TestValidate_Dimensions(t *testing.T) {
	m := twoColModel()
	m.ColCost = []float64{-8}
	assert.ErrorIs(t, m.Validate(), lp.ErrMatrixDimensions, "short ColCost must error")

	m = twoColModel()
	m.RowUpper = nil
	assert.ErrorIs(t, m.Validate(), lp.ErrMatrixDimensions, "missing RowUpper must error")

	m = twoColModel()
	m.NumCol = -1
	m.ColCost = nil
	assert.ErrorIs(t, m.Validate(), lp.ErrMatrixDimensions, "negative NumCol must error")
}

// TestValidate_MatrixStart covers malformed CSC offsets.
func TestValidate_MatrixStart(t *testing.T) {
	m := twoColModel()
	m.AStart = []int{0, 3, 2}
	assert.ErrorIs(t, m.Validate(), lp.ErrMatrixStart, "decreasing AStart must error")

	m = twoColModel()
	m.AStart = []int{0, 2, 5}
	assert.ErrorIs(t, m.Validate(), lp.ErrMatrixStart, "final offset past len(AIndex) must error")

	m = twoColModel()
	m.AStart = []int{1, 2, 4}
	assert.ErrorIs(t, m.Validate(), lp.ErrMatrixStart, "nonzero AStart[0] must error")
}

// TestValidate_MatrixEntries covers out-of-range indices and non-finite
// coefficients.
func TestValidate_MatrixEntries(t *testing.T) {
	m := twoColModel()
	m.AIndex[2] = 7
	assert.ErrorIs(t, m.Validate(), lp.ErrMatrixIndices, "row index past NumRow must error")

	m = twoColModel()
	m.AValue[0] = math.NaN()
	assert.ErrorIs(t, m.Validate(), lp.ErrMatrixValue, "NaN coefficient must error")

	m = twoColModel()
	m.AValue[1] = math.Inf(1)
	assert.ErrorIs(t, m.Validate(), lp.ErrMatrixValue, "infinite coefficient must error")
}

// TestValidate_Bounds covers inverted and NaN bounds on both sides.
func TestValidate_Bounds(t *testing.T) {
	m := twoColModel()
	m.ColLower[1] = 5
	m.ColUpper[1] = 3
	assert.ErrorIs(t, m.Validate(), lp.ErrColBounds, "inverted column bounds must error")

	m = twoColModel()
	m.RowLower[0] = math.NaN()
	assert.ErrorIs(t, m.Validate(), lp.ErrRowBounds, "NaN row bound must error")
}

// TestClone verifies deep independence of the copy.
func TestClone(t *testing.T) {
	m := twoColModel()
	c := m.Clone()
	require.NoError(t, c.Validate(), "clone of a valid model must validate")

	c.AValue[0] = 99
	c.ColCost[1] = 99
	assert.Equal(t, 1.0, m.AValue[0], "mutating the clone must not touch the original matrix")
	assert.Equal(t, -10.0, m.ColCost[1], "mutating the clone must not touch the original costs")
}

// TestEffectiveSense confirms the zero value optimizes as Minimize.
func TestEffectiveSense(t *testing.T) {
	m := twoColModel()
	assert.Equal(t, lp.Minimize, m.EffectiveSense(), "zero Sense must read as Minimize")

	m.Sense = lp.Maximize
	assert.Equal(t, lp.Maximize, m.EffectiveSense(), "explicit Maximize must survive")
}

// TestNumNz counts stored entries through AStart.
func TestNumNz(t *testing.T) {
	assert.Equal(t, 4, twoColModel().NumNz(), "blend model stores four coefficients")
}
