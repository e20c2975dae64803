package engine

// Kick offsets are stored in board coordinates (y grows downward), so each
// dy is the negation of the usual SRS tables.

type kickTable [4][2][]Point // [from][0 = clockwise, 1 = counter-clockwise]

var noKick = []Point{{0, 0}}

var jlstzKicks = kickTable{
	Rot0: {
		{{0, 0}, {-1, 0}, {-1, -1}, {0, 2}, {-1, 2}}, // 0->R
		{{0, 0}, {1, 0}, {1, -1}, {0, 2}, {1, 2}},    // 0->L
	},
	RotR: {
		{{0, 0}, {1, 0}, {1, 1}, {0, -2}, {1, -2}}, // R->2
		{{0, 0}, {1, 0}, {1, 1}, {0, -2}, {1, -2}}, // R->0
	},
	Rot2: {
		{{0, 0}, {1, 0}, {1, -1}, {0, 2}, {1, 2}},    // 2->L
		{{0, 0}, {-1, 0}, {-1, -1}, {0, 2}, {-1, 2}}, // 2->R
	},
	RotL: {
		{{0, 0}, {-1, 0}, {-1, 1}, {0, -2}, {-1, -2}}, // L->0
		{{0, 0}, {-1, 0}, {-1, 1}, {0, -2}, {-1, -2}}, // L->2
	},
}

var iKicks = kickTable{
	Rot0: {
		{{0, 0}, {-2, 0}, {1, 0}, {-2, 1}, {1, -2}}, // 0->R
		{{0, 0}, {-1, 0}, {2, 0}, {-1, -2}, {2, 1}}, // 0->L
	},
	RotR: {
		{{0, 0}, {-1, 0}, {2, 0}, {-1, -2}, {2, 1}}, // R->2
		{{0, 0}, {2, 0}, {-1, 0}, {2, -1}, {-1, 2}}, // R->0
	},
	Rot2: {
		{{0, 0}, {2, 0}, {-1, 0}, {2, -1}, {-1, 2}}, // 2->L
		{{0, 0}, {1, 0}, {-2, 0}, {1, 2}, {-2, -1}}, // 2->R
	},
	RotL: {
		{{0, 0}, {1, 0}, {-2, 0}, {1, 2}, {-2, -1}}, // L->0
		{{0, 0}, {-2, 0}, {1, 0}, {-2, 1}, {1, -2}}, // L->2
	},
}

// FarKickIndex is the position of the last test in a five-test kick list.
// A T-spin mini reached through it is promoted to a full T-spin.
const FarKickIndex = 4

// Kicks returns the ordered offsets to try when turning kind k from one
// state to an adjacent one. The list always starts with (0, 0). O never
// kicks, and non-adjacent transitions only test the unkicked pose.
func Kicks(k Kind, from, to Rotation) []Point {
	var dir int
	switch to % 4 {
	case from.CW():
		dir = 0
	case from.CCW():
		dir = 1
	default:
		return noKick
	}

	switch k {
	case KindO:
		return noKick
	case KindI:
		return iKicks[from%4][dir]
	case KindJ, KindL, KindS, KindT, KindZ:
		return jlstzKicks[from%4][dir]
	default:
		return noKick
	}
}

// rotate tries to turn p one step and returns the new pose plus the index
// of the kick test that succeeded, or ok=false with p untouched.
func rotate(b *Board, p Piece, clockwise bool) (next Piece, kick int, ok bool) {
	to := p.Rot.CCW()
	if clockwise {
		to = p.Rot.CW()
	}
	for i, off := range Kicks(p.Kind, p.Rot, to) {
		candidate := Piece{Kind: p.Kind, Rot: to, X: p.X + off.X, Y: p.Y + off.Y}
		if b.Fits(candidate) {
			return candidate, i, true
		}
	}
	return p, 0, false
}
