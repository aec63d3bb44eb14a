package lp

import "math"

// rowKind classifies an original row for the standard-form rewrite.
type rowKind uint8

const (
	rowFree     rowKind = iota // both bounds infinite: dropped
	rowEquality                // equal finite bounds: kept as-is
	rowLower                   // finite lower only: surplus column
	rowUpper                   // finite upper only: slack column
	rowRanged                  // both finite, distinct: split into two rows
)

// StandardForm rewrites the model as an equivalent standard-form LP
//
//	minimize c'ᵀx' + offset'   s.t.   A'·x' = b,  x' ≥ 0,
//
// returned as a fresh *Lp whose rows are all equalities and whose columns
// all carry bounds [0, +Inf). The construction:
//
//  1. Costs are negated for a Maximize model so the result always
//     minimizes; offset' likewise carries the sense, so that
//     sense·(objective of the returned model) equals the objective of the
//     original model at the corresponding solution.
//  2. A column with a finite lower bound l is shifted (x = l + x̂); the
//     shift moves c·l into offset' and A_j·l into the row right-hand
//     sides. A column with only a finite upper bound u is reflected
//     (x = u − x̂). A free column is split into x⁺ − x⁻.
//  3. A boxed column contributes one extra row x̂ + s = u − l with a fresh
//     slack s ≥ 0.
//  4. Each inequality row gains a slack (≤) or surplus (≥) column; a
//     ranged row L ≤ a·x ≤ U with L < U is emitted twice, once per side.
//     Rows free in both directions are dropped.
//
// The receiver is not modified. Validate errors are returned unchanged.
func (l *Lp) StandardForm() (*Lp, error) {
	if err := l.Validate(); err != nil {
		return nil, err
	}
	sense := l.normalizeSense()

	// Sense-adjusted cost view: the output always minimizes.
	cost := func(j int) float64 {
		if sense == Maximize {
			return -l.ColCost[j]
		}

		return l.ColCost[j]
	}

	// Per-column substitution base: finite lower wins, else finite upper,
	// else zero (free / split).
	base := make([]float64, l.NumCol)
	for j := 0; j < l.NumCol; j++ {
		switch {
		case !math.IsInf(l.ColLower[j], -1):
			base[j] = l.ColLower[j]
		case !math.IsInf(l.ColUpper[j], 1):
			base[j] = l.ColUpper[j]
		}
	}

	// Row right-hand-side shift induced by the substitutions.
	shift := make([]float64, l.NumRow)
	for j := 0; j < l.NumCol; j++ {
		if base[j] == 0 {
			continue
		}
		for k := l.AStart[j]; k < l.AStart[j+1]; k++ {
			shift[l.AIndex[k]] += l.AValue[k] * base[j]
		}
	}

	// Classify rows and assign output row slots. rowAt[i] is the first
	// output row of original row i; ranged rows occupy rowAt[i] and
	// rowAt[i]+1 (lower side first).
	kind := make([]rowKind, l.NumRow)
	rowAt := make([]int, l.NumRow)
	numRow := 0
	for i := 0; i < l.NumRow; i++ {
		lo, up := l.RowLower[i], l.RowUpper[i]
		switch {
		case math.IsInf(lo, -1) && math.IsInf(up, 1):
			kind[i] = rowFree
			rowAt[i] = -1

			continue
		case lo == up:
			kind[i] = rowEquality
		case math.IsInf(up, 1):
			kind[i] = rowLower
		case math.IsInf(lo, -1):
			kind[i] = rowUpper
		default:
			kind[i] = rowRanged
		}
		rowAt[i] = numRow
		if kind[i] == rowRanged {
			numRow += 2
		} else {
			numRow++
		}
	}

	// Box rows come after all constraint rows, one per boxed column.
	boxRow := make([]int, l.NumCol)
	for j := 0; j < l.NumCol; j++ {
		boxRow[j] = -1
		if !math.IsInf(l.ColLower[j], -1) && !math.IsInf(l.ColUpper[j], 1) {
			boxRow[j] = numRow
			numRow++
		}
	}

	out := &Lp{Sense: Minimize, Name: l.Name + " (standard form)"}
	out.NumRow = numRow
	out.RowLower = make([]float64, numRow)
	out.RowUpper = make([]float64, numRow)
	offset := l.Offset
	if sense == Maximize {
		offset = -offset
	}

	// Right-hand sides.
	for i := 0; i < l.NumRow; i++ {
		switch kind[i] {
		case rowFree:
		case rowEquality:
			out.RowLower[rowAt[i]] = l.RowLower[i] - shift[i]
		case rowLower:
			out.RowLower[rowAt[i]] = l.RowLower[i] - shift[i]
		case rowUpper:
			out.RowLower[rowAt[i]] = l.RowUpper[i] - shift[i]
		case rowRanged:
			out.RowLower[rowAt[i]] = l.RowLower[i] - shift[i]
			out.RowLower[rowAt[i]+1] = l.RowUpper[i] - shift[i]
		}
	}
	for j := 0; j < l.NumCol; j++ {
		if boxRow[j] >= 0 {
			out.RowLower[boxRow[j]] = l.ColUpper[j] - l.ColLower[j]
		}
	}
	copy(out.RowUpper, out.RowLower)

	// Columns: substituted originals first, then row slacks, then box
	// slacks.
	out.AStart = append(out.AStart, 0)
	appendEntry := func(row int, v float64) {
		out.AIndex = append(out.AIndex, row)
		out.AValue = append(out.AValue, v)
	}
	closeCol := func(c float64) {
		out.ColCost = append(out.ColCost, c)
		out.ColLower = append(out.ColLower, 0)
		out.ColUpper = append(out.ColUpper, Inf)
		out.AStart = append(out.AStart, len(out.AIndex))
		out.NumCol++
	}
	// emitColumn writes original column j scaled by sig into every output
	// row it touches.
	emitColumn := func(j int, sig float64) {
		for k := l.AStart[j]; k < l.AStart[j+1]; k++ {
			i := l.AIndex[k]
			if kind[i] == rowFree {
				continue
			}
			appendEntry(rowAt[i], sig*l.AValue[k])
			if kind[i] == rowRanged {
				appendEntry(rowAt[i]+1, sig*l.AValue[k])
			}
		}
	}

	for j := 0; j < l.NumCol; j++ {
		freeLower := math.IsInf(l.ColLower[j], -1)
		freeUpper := math.IsInf(l.ColUpper[j], 1)
		switch {
		case freeLower && freeUpper:
			// Free: x = x⁺ − x⁻.
			emitColumn(j, 1)
			closeCol(cost(j))
			emitColumn(j, -1)
			closeCol(-cost(j))
		case freeLower:
			// Upper bound only: x = u − x̂.
			emitColumn(j, -1)
			offset += cost(j) * base[j]
			closeCol(-cost(j))
		default:
			// Finite lower (possibly boxed): x = l + x̂.
			emitColumn(j, 1)
			if boxRow[j] >= 0 {
				appendEntry(boxRow[j], 1)
			}
			offset += cost(j) * base[j]
			closeCol(cost(j))
		}
	}

	// Slack/surplus columns per inequality side, in output-row order.
	for i := 0; i < l.NumRow; i++ {
		switch kind[i] {
		case rowLower:
			appendEntry(rowAt[i], -1)
			closeCol(0)
		case rowUpper:
			appendEntry(rowAt[i], 1)
			closeCol(0)
		case rowRanged:
			appendEntry(rowAt[i], -1)
			closeCol(0)
			appendEntry(rowAt[i]+1, 1)
			closeCol(0)
		}
	}
	for j := 0; j < l.NumCol; j++ {
		if boxRow[j] >= 0 {
			appendEntry(boxRow[j], 1)
			closeCol(0)
		}
	}

	out.Offset = offset

	return out, nil
}
