package grid

import (
	"github.com/aretw0/plangen/pkg/domain"
	"github.com/aretw0/plangen/pkg/naming"
)

// MinSize is the smallest board the encoding supports.
const MinSize = 2

// Rows returns r1..rN.
func Rows(n int) []string {
	rows := make([]string, n)
	for i := range rows {
		rows[i] = naming.Row(i + 1)
	}
	return rows
}

// Cols returns c1..cN.
func Cols(n int) []string {
	cols := make([]string, n)
	for i := range cols {
		cols[i] = naming.Col(i + 1)
	}
	return cols
}

// Slide returns the 0-based indices a move from index i can end on when
// stepping by delta (-1 or +1) on an axis of length n: one cell, then a second
// cell if the board allows it. A move off the board yields nil.
func Slide(i, delta, n int) []int {
	var out []int
	for step := 1; step <= 2; step++ {
		k := i + step*delta
		if k < 0 || k >= n {
			break
		}
		out = append(out, k)
	}
	return out
}

// Cells enumerates every (row, column) pair in row-major order.
// The encoding never needs them; diagrams and descriptions do.
func Cells(n int) []domain.Location {
	cells := make([]domain.Location, 0, n*n)
	for r := 1; r <= n; r++ {
		for c := 1; c <= n; c++ {
			cells = append(cells, domain.Location{I: r, J: c})
		}
	}
	return cells
}

// Neighbors returns the cells reachable from l in one move of any direction,
// in l, r, u, d order.
func Neighbors(l domain.Location, n int) []domain.Location {
	var out []domain.Location
	for _, m := range moves {
		idx := l.J - 1
		if m.axis == axisRows {
			idx = l.I - 1
		}
		for _, k := range Slide(idx, m.delta, n) {
			next := l
			if m.axis == axisRows {
				next.I = k + 1
			} else {
				next.J = k + 1
			}
			out = append(out, next)
		}
	}
	return out
}
