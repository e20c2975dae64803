package engine

import (
	"fmt"
	"slices"
	"strings"
)

// Board is the playing field. Cells hold KindNone or the kind of the piece
// that locked there. Row 0 is the top.
type Board struct {
	width  int
	height int
	cells  [][]Kind
}

// NewBoard creates an empty width x height board.
func NewBoard(width, height int) *Board {
	b := &Board{width: width, height: height}
	b.cells = make([][]Kind, height)
	for y := range b.cells {
		b.cells[y] = make([]Kind, width)
	}
	return b
}

// ParseBoard builds a board from rows of Kind letters, '.' for empty and
// '#' for a generic filled cell. All rows must have the same length.
func ParseBoard(rows ...string) (*Board, error) {
	if len(rows) == 0 {
		return nil, fmt.Errorf("engine: board needs at least one row")
	}
	b := NewBoard(len(rows[0]), len(rows))
	for y, row := range rows {
		if len(row) != b.width {
			return nil, fmt.Errorf("engine: row %d has width %d, expected %d", y, len(row), b.width)
		}
		for x, ch := range row {
			if ch == '#' {
				b.cells[y][x] = KindI
				continue
			}
			k, ok := KindFromRune(ch)
			if !ok {
				return nil, fmt.Errorf("engine: row %d: unknown cell %q", y, ch)
			}
			b.cells[y][x] = k
		}
	}
	return b, nil
}

// Width returns the number of columns.
func (b *Board) Width() int { return b.width }

// Height returns the number of rows.
func (b *Board) Height() int { return b.height }

// Cell returns the kind stored at (x, y), or KindNone when out of range.
func (b *Board) Cell(x, y int) Kind {
	if !b.inside(x, y) {
		return KindNone
	}
	return b.cells[y][x]
}

// Set stores k at (x, y). Out-of-range writes are ignored.
func (b *Board) Set(x, y int, k Kind) {
	if !b.inside(x, y) {
		return
	}
	b.cells[y][x] = k
}

func (b *Board) inside(x, y int) bool {
	return x >= 0 && x < b.width && y >= 0 && y < b.height
}

// Blocked reports whether (x, y) is outside the field or occupied.
// Cells above the top edge count as blocked.
func (b *Board) Blocked(x, y int) bool {
	if !b.inside(x, y) {
		return true
	}
	return b.cells[y][x] != KindNone
}

// Fits reports whether p can occupy its pose. Cells above the top edge
// never collide; every other cell must be inside the field and empty.
func (b *Board) Fits(p Piece) bool {
	for _, c := range p.Cells() {
		if c.X < 0 || c.X >= b.width || c.Y >= b.height {
			return false
		}
		if c.Y >= 0 && b.cells[c.Y][c.X] != KindNone {
			return false
		}
	}
	return true
}

// Merge writes p's cells into the board. Cells above the top edge are dropped.
func (b *Board) Merge(p Piece) {
	for _, c := range p.Cells() {
		b.Set(c.X, c.Y, p.Kind)
	}
}

// FullRows returns the indices of completely filled rows in ascending order.
func (b *Board) FullRows() []int {
	var rows []int
	for y := 0; y < b.height; y++ {
		if b.rowFull(y) {
			rows = append(rows, y)
		}
	}
	return rows
}

func (b *Board) rowFull(y int) bool {
	for _, k := range b.cells[y] {
		if k == KindNone {
			return false
		}
	}
	return true
}

// Compact removes the given rows, shifts the remaining rows down and fills
// the top with empty rows. Height and the order of kept rows are preserved.
func (b *Board) Compact(rows []int) {
	if len(rows) == 0 {
		return
	}
	kept := make([][]Kind, 0, b.height)
	for y := 0; y < b.height; y++ {
		if !slices.Contains(rows, y) {
			kept = append(kept, b.cells[y])
		}
	}
	fresh := make([][]Kind, 0, b.height)
	for len(fresh)+len(kept) < b.height {
		fresh = append(fresh, make([]Kind, b.width))
	}
	b.cells = append(fresh, kept...)
}

// IsEmpty reports whether no cell is occupied.
func (b *Board) IsEmpty() bool {
	return b.EmptyAfterClearing(nil)
}

// EmptyAfterClearing reports whether the board would be empty once rows
// are removed.
func (b *Board) EmptyAfterClearing(rows []int) bool {
	for y := 0; y < b.height; y++ {
		if slices.Contains(rows, y) {
			continue
		}
		for _, k := range b.cells[y] {
			if k != KindNone {
				return false
			}
		}
	}
	return true
}

// Rows returns a copy of the grid, top row first.
func (b *Board) Rows() [][]Kind {
	out := make([][]Kind, b.height)
	for y := range b.cells {
		out[y] = slices.Clone(b.cells[y])
	}
	return out
}

// Clone returns a deep copy.
func (b *Board) Clone() *Board {
	return &Board{width: b.width, height: b.height, cells: b.Rows()}
}

// String draws the board with one Kind letter per cell.
func (b *Board) String() string {
	var sb strings.Builder
	sb.Grow((b.width + 1) * b.height)
	for y, row := range b.cells {
		if y > 0 {
			sb.WriteByte('\n')
		}
		for _, k := range row {
			sb.WriteString(k.String())
		}
	}
	return sb.String()
}
