package simplex

import (
	"math"

	"github.com/pkg/errors"
)

// Nonbasic move directions: which way a nonbasic variable may leave its
// bound. Fixed and free variables carry moveZero.
const (
	moveUp   int8 = 1
	moveDown int8 = -1
	moveZero int8 = 0
)

// Basis is the row↔variable assignment of a simplex basis:
// BasicIndex[i] is the variable basic in row i; NonbasicFlag[j] is 1 for
// nonbasic variables and 0 for basic ones; NonbasicMove[j] records the
// bound a nonbasic variable sits at (+1 at lower, −1 at upper, 0
// fixed/free). Exactly one variable is basic per row.
type Basis struct {
	BasicIndex   []int
	NonbasicFlag []int8
	NonbasicMove []int8
}

// LogicalBasis returns the all-slack basis for an m-row, n-column model:
// every logical variable basic, every structural nonbasic at a bound.
// Move directions are resolved against the bounds by resolveMoves.
func LogicalBasis(numRow, numCol int) Basis {
	b := Basis{
		BasicIndex:   make([]int, numRow),
		NonbasicFlag: make([]int8, numRow+numCol),
		NonbasicMove: make([]int8, numRow+numCol),
	}
	for i := 0; i < numRow; i++ {
		b.BasicIndex[i] = numCol + i
	}
	for j := 0; j < numCol; j++ {
		b.NonbasicFlag[j] = 1
	}

	return b
}

// Clone returns a deep copy.
func (b *Basis) Clone() Basis {
	return Basis{
		BasicIndex:   append([]int(nil), b.BasicIndex...),
		NonbasicFlag: append([]int8(nil), b.NonbasicFlag...),
		NonbasicMove: append([]int8(nil), b.NonbasicMove...),
	}
}

// isLogical reports whether the basis is exactly the all-slack basis.
func (b *Basis) isLogical(numCol int) bool {
	for i, j := range b.BasicIndex {
		if j != numCol+i {
			return false
		}
	}

	return true
}

// validate checks dimensions and the one-basic-variable-per-row bijection.
func (b *Basis) validate(numRow, numTot int) error {
	if len(b.BasicIndex) != numRow {
		return errors.Wrapf(ErrBadBasis, "len(BasicIndex)=%d want %d", len(b.BasicIndex), numRow)
	}
	if len(b.NonbasicFlag) != numTot || len(b.NonbasicMove) != numTot {
		return errors.Wrapf(ErrBadBasis, "flag/move vectors want length %d", numTot)
	}
	seen := make([]bool, numTot)
	for i, j := range b.BasicIndex {
		if j < 0 || j >= numTot {
			return errors.Wrapf(ErrBadBasis, "row %d: variable %d outside [0,%d)", i, j, numTot)
		}
		if seen[j] {
			return errors.Wrapf(ErrBadBasis, "variable %d basic in two rows", j)
		}
		seen[j] = true
		if b.NonbasicFlag[j] != 0 {
			return errors.Wrapf(ErrBadBasis, "variable %d both basic and flagged nonbasic", j)
		}
	}
	var nonbasic int
	for j := 0; j < numTot; j++ {
		if b.NonbasicFlag[j] == 1 {
			nonbasic++
		} else if !seen[j] {
			return errors.Wrapf(ErrBadBasis, "variable %d neither basic nor flagged nonbasic", j)
		}
	}
	if nonbasic != numTot-numRow {
		return errors.Wrapf(ErrBadBasis, "%d nonbasic variables, want %d", nonbasic, numTot-numRow)
	}

	return nil
}

// resolveMoves normalizes NonbasicMove against the (scaled) bounds:
// finite lower ⇒ moveUp, finite upper only ⇒ moveDown, fixed and free ⇒
// moveZero. An existing legal move (e.g. at-upper for a boxed variable)
// is preserved so warm starts keep their bound assignment.
func (b *Basis) resolveMoves(v *modelView) {
	for j := 0; j < v.numTot; j++ {
		if b.NonbasicFlag[j] != 1 {
			b.NonbasicMove[j] = moveZero

			continue
		}
		switch {
		case v.isFixed(j) || v.isFree(j):
			b.NonbasicMove[j] = moveZero
		case b.NonbasicMove[j] == moveDown && !math.IsInf(v.upper[j], 1):
			// keep at-upper
		case !math.IsInf(v.lower[j], -1):
			b.NonbasicMove[j] = moveUp
		default:
			b.NonbasicMove[j] = moveDown
		}
	}
}
