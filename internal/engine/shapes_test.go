package engine

import (
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestShapeLayouts(t *testing.T) {
	tests := []struct {
		name string
		kind Kind
		rot  Rotation
		want string
	}{
		{"I spawn", KindI, Rot0, "....\n####\n....\n...."},
		{"I right", KindI, RotR, "..#.\n..#.\n..#.\n..#."},
		{"O any", KindO, Rot2, ".##.\n.##.\n....\n...."},
		{"T spawn", KindT, Rot0, ".#.\n###\n..."},
		{"T flat down", KindT, Rot2, "...\n###\n.#."},
		{"S left", KindS, RotL, "#..\n##.\n.#."},
		{"Z right", KindZ, RotR, "..#\n.##\n.#."},
		{"J spawn", KindJ, Rot0, "#..\n###\n..."},
		{"L left", KindL, RotL, "##.\n.#.\n.#."},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if diff := cmp.Diff(tc.want, ShapeOf(tc.kind, tc.rot).String()); diff != "" {
				t.Errorf("ShapeOf(%v, %v) mismatch (-want +got):\n%s", tc.kind, tc.rot, diff)
			}
		})
	}
}

func TestShapeSizes(t *testing.T) {
	for _, k := range Kinds {
		want := 3
		if k == KindI || k == KindO {
			want = 4
		}
		for r := Rot0; r <= RotL; r++ {
			if got := ShapeOf(k, r).Size; got != want {
				t.Errorf("ShapeOf(%v, %v).Size = %d, expected %d", k, r, got, want)
			}
		}
	}
}

func TestRotationCycle(t *testing.T) {
	r := Rot0
	for i := 0; i < 4; i++ {
		r = r.CW()
	}
	if r != Rot0 {
		t.Errorf("four CW turns = %v, expected 0", r)
	}
	if Rot0.CCW() != RotL {
		t.Errorf("Rot0.CCW() = %v, expected L", Rot0.CCW())
	}
	if RotL.CW() != Rot0 {
		t.Errorf("RotL.CW() = %v, expected 0", RotL.CW())
	}
}

func TestKindFromRune(t *testing.T) {
	for _, k := range Kinds {
		got, ok := KindFromRune(rune(k.String()[0]))
		if !ok || got != k {
			t.Errorf("KindFromRune(%q) = %v, %v, expected %v", k.String(), got, ok, k)
		}
	}
	if _, ok := KindFromRune('x'); ok {
		t.Error("KindFromRune('x') should fail")
	}
}

func TestPieceCells(t *testing.T) {
	p := Piece{Kind: KindT, Rot: Rot0, X: 4, Y: -1}
	want := [4]Point{{5, -1}, {4, 0}, {5, 0}, {6, 0}}
	if diff := cmp.Diff(want, p.Cells()); diff != "" {
		t.Errorf("Cells() mismatch (-want +got):\n%s", diff)
	}
}
