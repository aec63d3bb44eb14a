// Package lp defines the bounded-variable linear program container consumed
// by the simplex engine, together with strict structural validation and a
// general→standard-form converter.
//
// # Model form
//
// An Lp holds the general-bounds form
//
//	minimize (or maximize)  cᵀx + offset
//	subject to              rowLower ≤ A·x ≤ rowUpper
//	                        colLower ≤   x ≤ colUpper
//
// with A stored column-major compressed (CSC): AStart[j]..AStart[j+1]
// delimit the row indices (AIndex) and values (AValue) of column j.
// Any bound may be ±Inf; a row or column with equal bounds is fixed.
//
// # Validation
//
// Validate rejects malformed models before any solve begins: inconsistent
// dimensions, non-monotone column starts, out-of-range row indices,
// non-finite matrix values, and inverted bounds. Each violation is one of
// the package sentinels (ErrMatrixDimensions, ErrMatrixStart,
// ErrMatrixIndices, ErrMatrixValue, ErrColBounds, ErrRowBounds) wrapped
// with positional context; match with errors.Is.
//
// # Standard form
//
// StandardForm rewrites the general-bounds model as
//
//	minimize c'ᵀx' + offset'   subject to   A'·x' = b,  x' ≥ 0
//
// shifting finite lower bounds into the offset/rhs, negating columns that
// carry only an upper bound, splitting free columns, adding one extra row
// per boxed column and one slack or surplus column per inequality row
// (ranged rows contribute two rows). The transform preserves the optimal
// objective value exactly up to the reported offset and sense, which the
// simplex tests exercise by re-solving the converted model.
package lp
