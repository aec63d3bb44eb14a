package lp

import (
	stderrors "errors"
	"math"

	"github.com/pkg/errors"
)

// Sentinel errors returned by Validate. Every message is prefixed with
// "lp: " for consistency and grep-ability; Validate wraps them with the
// offending position, so match with errors.Is, not equality.
var (
	// ErrMatrixDimensions indicates negative or mutually inconsistent
	// NumCol/NumRow/vector lengths.
	ErrMatrixDimensions = stderrors.New("lp: inconsistent matrix dimensions")

	// ErrMatrixStart indicates a malformed AStart: wrong length, negative
	// first entry, non-monotone offsets, or a final entry disagreeing with
	// len(AIndex)/len(AValue).
	ErrMatrixStart = stderrors.New("lp: malformed column start offsets")

	// ErrMatrixIndices indicates an AIndex entry outside [0, NumRow).
	ErrMatrixIndices = stderrors.New("lp: matrix row index out of range")

	// ErrMatrixValue indicates a NaN or infinite matrix coefficient.
	ErrMatrixValue = stderrors.New("lp: matrix value not finite")

	// ErrColBounds indicates ColLower > ColUpper or a NaN column bound.
	ErrColBounds = stderrors.New("lp: inverted or NaN column bounds")

	// ErrRowBounds indicates RowLower > RowUpper or a NaN row bound.
	ErrRowBounds = stderrors.New("lp: inverted or NaN row bounds")
)

// Validate checks the structural integrity of the model. It returns nil
// for a well-formed model and a wrapped sentinel describing the first
// violation otherwise. A model that fails Validate must be rejected
// before any solve begins.
func (l *Lp) Validate() error {
	if l.NumCol < 0 || l.NumRow < 0 {
		return errors.Wrapf(ErrMatrixDimensions, "numCol=%d numRow=%d", l.NumCol, l.NumRow)
	}
	if len(l.ColCost) != l.NumCol {
		return errors.Wrapf(ErrMatrixDimensions, "len(ColCost)=%d want %d", len(l.ColCost), l.NumCol)
	}
	if len(l.ColLower) != l.NumCol || len(l.ColUpper) != l.NumCol {
		return errors.Wrapf(ErrMatrixDimensions, "column bound vectors want length %d", l.NumCol)
	}
	if len(l.RowLower) != l.NumRow || len(l.RowUpper) != l.NumRow {
		return errors.Wrapf(ErrMatrixDimensions, "row bound vectors want length %d", l.NumRow)
	}

	if err := l.validateMatrix(); err != nil {
		return err
	}

	for j := 0; j < l.NumCol; j++ {
		lo, up := l.ColLower[j], l.ColUpper[j]
		if math.IsNaN(lo) || math.IsNaN(up) || lo > up {
			return errors.Wrapf(ErrColBounds, "column %d: [%g, %g]", j, lo, up)
		}
	}
	for i := 0; i < l.NumRow; i++ {
		lo, up := l.RowLower[i], l.RowUpper[i]
		if math.IsNaN(lo) || math.IsNaN(up) || lo > up {
			return errors.Wrapf(ErrRowBounds, "row %d: [%g, %g]", i, lo, up)
		}
	}

	return nil
}

// validateMatrix checks the CSC arrays: start offsets, index ranges and
// value finiteness.
func (l *Lp) validateMatrix() error {
	if len(l.AStart) != l.NumCol+1 {
		// An entirely empty matrix is tolerated for NumCol==0.
		if l.NumCol == 0 && len(l.AStart) == 0 && len(l.AIndex) == 0 && len(l.AValue) == 0 {
			return nil
		}

		return errors.Wrapf(ErrMatrixStart, "len(AStart)=%d want %d", len(l.AStart), l.NumCol+1)
	}
	if l.AStart[0] != 0 {
		return errors.Wrapf(ErrMatrixStart, "AStart[0]=%d", l.AStart[0])
	}
	for j := 0; j < l.NumCol; j++ {
		if l.AStart[j+1] < l.AStart[j] {
			return errors.Wrapf(ErrMatrixStart, "column %d: AStart decreases (%d -> %d)", j, l.AStart[j], l.AStart[j+1])
		}
	}
	nnz := l.AStart[l.NumCol]
	if len(l.AIndex) != nnz || len(l.AValue) != nnz {
		return errors.Wrapf(ErrMatrixStart, "final offset %d disagrees with len(AIndex)=%d len(AValue)=%d",
			nnz, len(l.AIndex), len(l.AValue))
	}
	for k := 0; k < nnz; k++ {
		if l.AIndex[k] < 0 || l.AIndex[k] >= l.NumRow {
			return errors.Wrapf(ErrMatrixIndices, "entry %d: row %d outside [0,%d)", k, l.AIndex[k], l.NumRow)
		}
		if math.IsNaN(l.AValue[k]) || math.IsInf(l.AValue[k], 0) {
			return errors.Wrapf(ErrMatrixValue, "entry %d: %g", k, l.AValue[k])
		}
	}

	return nil
}
