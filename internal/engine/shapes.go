// Package engine implements the falling-block rules engine: board, 7-bag
// randomizer, SRS rotation with wall kicks, T-spin detection, hold and
// preview queue, lock delay, line-clear animation timing, and scoring.
//
// The engine is single-threaded and tick-driven. All time comes from an
// injected clock.Clock, so a Session replays identically for a given seed
// and sequence of (operation, time) inputs.
package engine

import (
	"fmt"
	"strings"
)

// Kind identifies a tetromino. The zero value marks an empty cell or an
// empty hold slot; locked board cells store the Kind that produced them.
type Kind uint8

const (
	KindNone Kind = iota
	KindI
	KindO
	KindT
	KindS
	KindZ
	KindJ
	KindL
)

// NumKinds is the number of playable kinds.
const NumKinds = 7

// Kinds lists the playable kinds in canonical order.
var Kinds = [NumKinds]Kind{KindI, KindO, KindT, KindS, KindZ, KindJ, KindL}

// String returns the single-letter name of the kind.
func (k Kind) String() string {
	switch k {
	case KindNone:
		return "."
	case KindI:
		return "I"
	case KindO:
		return "O"
	case KindT:
		return "T"
	case KindS:
		return "S"
	case KindZ:
		return "Z"
	case KindJ:
		return "J"
	case KindL:
		return "L"
	default:
		return "?"
	}
}

// Valid reports whether k is one of the seven playable kinds.
func (k Kind) Valid() bool {
	return k >= KindI && k <= KindL
}

// KindFromRune parses a letter produced by Kind.String.
func KindFromRune(r rune) (Kind, bool) {
	for _, k := range Kinds {
		if rune(k.String()[0]) == r {
			return k, true
		}
	}
	if r == '.' {
		return KindNone, true
	}
	return KindNone, false
}

// Rotation is one of the four SRS orientation states.
type Rotation uint8

const (
	Rot0 Rotation = iota // spawn state
	RotR                 // one clockwise turn
	Rot2                 // two turns
	RotL                 // one counter-clockwise turn
)

// String returns the SRS name of the state.
func (r Rotation) String() string {
	switch r {
	case Rot0:
		return "0"
	case RotR:
		return "R"
	case Rot2:
		return "2"
	case RotL:
		return "L"
	default:
		return "?"
	}
}

// CW returns the state after a clockwise turn.
func (r Rotation) CW() Rotation {
	return (r + 1) % 4
}

// CCW returns the state after a counter-clockwise turn.
func (r Rotation) CCW() Rotation {
	return (r + 3) % 4
}

// Point is a cell offset or board coordinate. Y grows downward.
type Point struct {
	X, Y int
}

// Shape is one rotation layout of a kind inside its bounding box.
type Shape struct {
	Size  int      // bounding box edge, 3 or 4
	Cells [4]Point // occupied cells relative to the box's top-left corner
}

// Has reports whether the layout occupies box cell (x, y).
func (s Shape) Has(x, y int) bool {
	for _, c := range s.Cells {
		if c.X == x && c.Y == y {
			return true
		}
	}
	return false
}

// layouts holds the SRS rotation states as box art, one string per row.
var layouts = map[Kind][4][]string{
	KindI: {
		{"....", "####", "....", "...."},
		{"..#.", "..#.", "..#.", "..#."},
		{"....", "....", "####", "...."},
		{".#..", ".#..", ".#..", ".#.."},
	},
	KindO: {
		{".##.", ".##.", "....", "...."},
		{".##.", ".##.", "....", "...."},
		{".##.", ".##.", "....", "...."},
		{".##.", ".##.", "....", "...."},
	},
	KindT: {
		{".#.", "###", "..."},
		{".#.", ".##", ".#."},
		{"...", "###", ".#."},
		{".#.", "##.", ".#."},
	},
	KindS: {
		{".##", "##.", "..."},
		{".#.", ".##", "..#"},
		{"...", ".##", "##."},
		{"#..", "##.", ".#."},
	},
	KindZ: {
		{"##.", ".##", "..."},
		{"..#", ".##", ".#."},
		{"...", "##.", ".##"},
		{".#.", "##.", "#.."},
	},
	KindJ: {
		{"#..", "###", "..."},
		{".##", ".#.", ".#."},
		{"...", "###", "..#"},
		{".#.", ".#.", "##."},
	},
	KindL: {
		{"..#", "###", "..."},
		{".#.", ".#.", ".##"},
		{"...", "###", "#.."},
		{"##.", ".#.", ".#."},
	},
}

// shapes is the catalog indexed by [Kind][Rotation], built once at init.
var shapes [NumKinds + 1][4]Shape

func init() {
	for kind, rots := range layouts {
		for r, rows := range rots {
			shapes[kind][r] = parseShape(kind, Rotation(r), rows)
		}
	}
}

func parseShape(kind Kind, rot Rotation, rows []string) Shape {
	s := Shape{Size: len(rows)}
	n := 0
	for y, row := range rows {
		if len(row) != s.Size {
			panic(fmt.Sprintf("engine: %v/%v layout is not square", kind, rot))
		}
		for x, ch := range row {
			if ch != '#' {
				continue
			}
			if n == len(s.Cells) {
				panic(fmt.Sprintf("engine: %v/%v layout has more than 4 cells", kind, rot))
			}
			s.Cells[n] = Point{X: x, Y: y}
			n++
		}
	}
	if n != len(s.Cells) {
		panic(fmt.Sprintf("engine: %v/%v layout has %d cells", kind, rot, n))
	}
	return s
}

// ShapeOf returns the layout of kind k in rotation r.
func ShapeOf(k Kind, r Rotation) Shape {
	return shapes[k][r%4]
}

// String draws the layout as box art.
func (s Shape) String() string {
	var sb strings.Builder
	for y := 0; y < s.Size; y++ {
		if y > 0 {
			sb.WriteByte('\n')
		}
		for x := 0; x < s.Size; x++ {
			if s.Has(x, y) {
				sb.WriteByte('#')
			} else {
				sb.WriteByte('.')
			}
		}
	}
	return sb.String()
}

// Piece is a kind placed on the board. X and Y locate the top-left corner
// of its bounding box and Y may be negative above the visible field.
type Piece struct {
	Kind Kind
	Rot  Rotation
	X, Y int
}

// Shape returns the piece's current layout.
func (p Piece) Shape() Shape {
	return ShapeOf(p.Kind, p.Rot)
}

// Cells returns the absolute board coordinates the piece occupies.
func (p Piece) Cells() [4]Point {
	var out [4]Point
	for i, c := range p.Shape().Cells {
		out[i] = Point{X: p.X + c.X, Y: p.Y + c.Y}
	}
	return out
}

// Moved returns a copy translated by (dx, dy).
func (p Piece) Moved(dx, dy int) Piece {
	p.X += dx
	p.Y += dy
	return p
}
