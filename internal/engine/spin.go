package engine

// Spin classifies a T-spin.
type Spin uint8

const (
	SpinNone Spin = iota
	SpinMini
	SpinFull
)

// String returns a display name.
func (s Spin) String() string {
	switch s {
	case SpinMini:
		return "T-Spin Mini"
	case SpinFull:
		return "T-Spin"
	default:
		return "none"
	}
}

// Box corners of a 3x3 T relative to its top-left.
var (
	cornerTL = Point{0, 0}
	cornerTR = Point{2, 0}
	cornerBL = Point{0, 2}
	cornerBR = Point{2, 2}
)

// frontCorners are the two corners on the side the T's nub points to.
var frontCorners = [4][2]Point{
	Rot0: {cornerTL, cornerTR},
	RotR: {cornerTR, cornerBR},
	Rot2: {cornerBL, cornerBR},
	RotL: {cornerTL, cornerBL},
}

// DetectSpin applies the 3-corner rule to a T that is about to lock.
// rotated must be true when the last successful action on the piece was a
// rotation; kick is the index of the kick test that rotation used.
func DetectSpin(b *Board, p Piece, rotated bool, kick int) Spin {
	if p.Kind != KindT || !rotated {
		return SpinNone
	}

	blocked := 0
	for _, c := range [4]Point{cornerTL, cornerTR, cornerBL, cornerBR} {
		if b.Blocked(p.X+c.X, p.Y+c.Y) {
			blocked++
		}
	}
	if blocked < 3 {
		return SpinNone
	}

	front := frontCorners[p.Rot%4]
	if b.Blocked(p.X+front[0].X, p.Y+front[0].Y) && b.Blocked(p.X+front[1].X, p.Y+front[1].Y) {
		return SpinFull
	}
	if kick == FarKickIndex {
		return SpinFull
	}
	return SpinMini
}
