package simplex

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/katalvlaran/lvlsolve/lp"
)

// TestLogicalBasis pins the all-slack layout.
func TestLogicalBasis(t *testing.T) {
	b := LogicalBasis(2, 3)
	assert.Equal(t, []int{3, 4}, b.BasicIndex, "logicals basic in row order")
	assert.Equal(t, []int8{1, 1, 1, 0, 0}, b.NonbasicFlag, "structurals nonbasic")
	assert.NoError(t, b.validate(2, 5))
	assert.True(t, b.isLogical(3))

	b.BasicIndex[0] = 0
	b.NonbasicFlag[0] = 0
	b.NonbasicFlag[3] = 1
	assert.False(t, b.isLogical(3))
	assert.NoError(t, b.validate(2, 5), "swapped basis is still a bijection")
}

// TestBasis_ValidateRejects covers the malformed shapes.
func TestBasis_ValidateRejects(t *testing.T) {
	b := LogicalBasis(2, 2)
	b.BasicIndex[1] = b.BasicIndex[0]
	assert.ErrorIs(t, b.validate(2, 4), ErrBadBasis, "duplicate basic variable")

	b = LogicalBasis(2, 2)
	b.BasicIndex[0] = 9
	assert.ErrorIs(t, b.validate(2, 4), ErrBadBasis, "variable index out of range")

	b = LogicalBasis(2, 2)
	b.NonbasicFlag[3] = 1
	assert.ErrorIs(t, b.validate(2, 4), ErrBadBasis, "basic variable flagged nonbasic")

	b = LogicalBasis(2, 2)
	b.NonbasicFlag[0] = 0
	assert.ErrorIs(t, b.validate(2, 4), ErrBadBasis, "variable in neither set")
}

// TestBasis_ResolveMoves covers the bound assignment rules, including
// warm-start preservation of a legal at-upper position.
func TestBasis_ResolveMoves(t *testing.T) {
	m := &lp.Lp{
		NumCol:   4,
		NumRow:   0,
		AStart:   []int{0, 0, 0, 0, 0},
		ColCost:  make([]float64, 4),
		ColLower: []float64{0, math.Inf(-1), 2, math.Inf(-1)},
		ColUpper: []float64{lp.Inf, 5, 2, lp.Inf},
	}
	v := newModelView(m, ScaleOff)

	b := LogicalBasis(0, 4)
	b.NonbasicMove[0] = moveDown // illegal: no finite upper
	b.resolveMoves(v)
	assert.Equal(t, moveUp, b.NonbasicMove[0], "finite lower pulls to moveUp")
	assert.Equal(t, moveDown, b.NonbasicMove[1], "upper-only variable sits at its upper bound")
	assert.Equal(t, moveZero, b.NonbasicMove[2], "fixed variable carries moveZero")
	assert.Equal(t, moveZero, b.NonbasicMove[3], "free variable carries moveZero")

	boxed := &lp.Lp{
		NumCol:   1,
		NumRow:   0,
		AStart:   []int{0, 0},
		ColCost:  []float64{0},
		ColLower: []float64{0},
		ColUpper: []float64{9},
	}
	bv := newModelView(boxed, ScaleOff)
	bb := LogicalBasis(0, 1)
	bb.NonbasicMove[0] = moveDown
	bb.resolveMoves(bv)
	assert.Equal(t, moveDown, bb.NonbasicMove[0], "a legal at-upper position survives")
}

// TestBasis_CloneIndependence verifies the deep copy.
func TestBasis_CloneIndependence(t *testing.T) {
	b := LogicalBasis(2, 2)
	c := b.Clone()
	c.BasicIndex[0] = 0
	c.NonbasicMove[1] = moveDown
	assert.Equal(t, 2, b.BasicIndex[0], "clone mutation leaves the original basis")
	assert.Equal(t, moveZero, b.NonbasicMove[1])
}
