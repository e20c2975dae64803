package engine

import "testing"

func TestDetectSpin(t *testing.T) {
	slot := []string{
		"#....",
		".....",
		"#.#..",
	}
	open := []string{
		".....",
		".....",
		"#.#..",
	}
	wall := []string{
		"....",
		"....",
		".#..",
		"....",
	}

	tests := []struct {
		name    string
		rows    []string
		piece   Piece
		rotated bool
		kick    int
		want    Spin
	}{
		{"front corners blocked", slot, Piece{Kind: KindT, Rot: Rot2, X: 0, Y: 0}, true, 0, SpinFull},
		{"one front corner open", slot, Piece{Kind: KindT, Rot: Rot0, X: 0, Y: 0}, true, 0, SpinMini},
		{"far kick promotes mini", slot, Piece{Kind: KindT, Rot: Rot0, X: 0, Y: 0}, true, FarKickIndex, SpinFull},
		{"not rotated", slot, Piece{Kind: KindT, Rot: Rot2, X: 0, Y: 0}, false, 0, SpinNone},
		{"two corners", open, Piece{Kind: KindT, Rot: Rot2, X: 0, Y: 0}, true, 0, SpinNone},
		{"not a T", slot, Piece{Kind: KindJ, Rot: RotR, X: 0, Y: 0}, true, 0, SpinNone},
		{"walls count as blocked", wall, Piece{Kind: KindT, Rot: RotR, X: -1, Y: 0}, true, 0, SpinMini},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			b := mustBoard(t, tc.rows...)
			if !b.Fits(tc.piece) {
				t.Fatalf("setup piece %+v does not fit", tc.piece)
			}
			if got := DetectSpin(b, tc.piece, tc.rotated, tc.kick); got != tc.want {
				t.Errorf("DetectSpin() = %v, expected %v", got, tc.want)
			}
		})
	}
}
