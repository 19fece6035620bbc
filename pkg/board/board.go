// Package board models a 9x9 Sudoku puzzle and renders it to a colour image.
package board

import (
	"fmt"
	"strings"
	"unicode"

	"github.com/user/gridraster/pkg/ports"
)

// Size is the number of rows and columns of a board.
const Size = 9

// BoxSize is the side of a 3x3 box.
const BoxSize = 3

// Board holds cell values by [row][col]. Zero marks an empty cell.
type Board [Size][Size]int

// Parse reads 81 cells in row order. Digits 1-9 are givens, '0' and '.'
// are empty, and whitespace is ignored.
func Parse(s string) (Board, error) {
	var b Board
	n := 0
	for _, ch := range s {
		if unicode.IsSpace(ch) {
			continue
		}
		var v int
		switch {
		case ch >= '1' && ch <= '9':
			v = int(ch - '0')
		case ch == '0' || ch == '.':
			v = 0
		default:
			return Board{}, fmt.Errorf("%w: unexpected character %q in puzzle", ports.ErrInvalidArgument, ch)
		}
		if n >= Size*Size {
			return Board{}, fmt.Errorf("%w: puzzle has more than %d cells", ports.ErrInvalidArgument, Size*Size)
		}
		b[n/Size][n%Size] = v
		n++
	}
	if n != Size*Size {
		return Board{}, fmt.Errorf("%w: puzzle has %d cells, want %d", ports.ErrInvalidArgument, n, Size*Size)
	}
	return b, nil
}

// Givens returns the number of filled cells.
func (b Board) Givens() int {
	n := 0
	for _, row := range b {
		for _, v := range row {
			if v != 0 {
				n++
			}
		}
	}
	return n
}

// String formats the board as nine lines using '.' for empty cells.
func (b Board) String() string {
	var sb strings.Builder
	for r, row := range b {
		if r > 0 {
			sb.WriteByte('\n')
		}
		for _, v := range row {
			if v == 0 {
				sb.WriteByte('.')
			} else {
				sb.WriteByte(byte('0' + v))
			}
		}
	}
	return sb.String()
}
