package engine

import (
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func mustBoard(t *testing.T, rows ...string) *Board {
	t.Helper()
	b, err := ParseBoard(rows...)
	if err != nil {
		t.Fatalf("ParseBoard() failed: %v", err)
	}
	return b
}

func TestBoardFits(t *testing.T) {
	b := mustBoard(t,
		"....",
		"....",
		"....",
		"#...",
	)

	tests := []struct {
		name string
		p    Piece
		want bool
	}{
		{"inside empty", Piece{Kind: KindO, Rot: Rot0, X: 0, Y: 0}, true},
		{"left wall", Piece{Kind: KindO, Rot: Rot0, X: -2, Y: 0}, false},
		{"right wall", Piece{Kind: KindO, Rot: Rot0, X: 2, Y: 0}, false},
		{"floor", Piece{Kind: KindO, Rot: Rot0, X: 0, Y: 3}, false},
		{"above top", Piece{Kind: KindO, Rot: Rot0, X: 0, Y: -2}, true},
		{"overlaps locked", Piece{Kind: KindT, Rot: Rot0, X: 0, Y: 2}, false},
		{"resting on locked", Piece{Kind: KindT, Rot: Rot0, X: 0, Y: 1}, true},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := b.Fits(tc.p); got != tc.want {
				t.Errorf("Fits(%+v) = %v, expected %v", tc.p, got, tc.want)
			}
		})
	}
}

func TestBoardMergeDropsHiddenCells(t *testing.T) {
	b := NewBoard(4, 3)
	b.Merge(Piece{Kind: KindI, Rot: RotR, X: 0, Y: -1})

	want := strings.Join([]string{
		"..I.",
		"..I.",
		"..I.",
	}, "\n")
	if diff := cmp.Diff(want, b.String()); diff != "" {
		t.Errorf("board mismatch (-want +got):\n%s", diff)
	}
}

func TestBoardFullRows(t *testing.T) {
	b := mustBoard(t,
		"....",
		"IIII",
		"JJ.J",
		"TTTT",
	)
	if diff := cmp.Diff([]int{1, 3}, b.FullRows()); diff != "" {
		t.Errorf("FullRows() mismatch (-want +got):\n%s", diff)
	}
}

func TestBoardCompact(t *testing.T) {
	b := mustBoard(t,
		"S...",
		"IIII",
		"JJ.J",
		"TTTT",
		".Z..",
	)
	b.Compact([]int{1, 3})

	want := strings.Join([]string{
		"....",
		"....",
		"S...",
		"JJ.J",
		".Z..",
	}, "\n")
	if diff := cmp.Diff(want, b.String()); diff != "" {
		t.Errorf("Compact() mismatch (-want +got):\n%s", diff)
	}
	if b.Height() != 5 {
		t.Errorf("Height() = %d, expected 5", b.Height())
	}
}

func TestBoardEmptyAfterClearing(t *testing.T) {
	b := mustBoard(t,
		"....",
		"LLLL",
		"OOOO",
	)
	if b.IsEmpty() {
		t.Error("IsEmpty() = true for a filled board")
	}
	if !b.EmptyAfterClearing([]int{1, 2}) {
		t.Error("EmptyAfterClearing() = false, expected true")
	}
	if b.EmptyAfterClearing([]int{2}) {
		t.Error("EmptyAfterClearing(row 2 only) = true, expected false")
	}
}

func TestBoardBlockedTreatsOutsideAsBlocked(t *testing.T) {
	b := NewBoard(3, 3)
	for _, p := range []Point{{-1, 0}, {3, 0}, {0, -1}, {0, 3}} {
		if !b.Blocked(p.X, p.Y) {
			t.Errorf("Blocked(%d, %d) = false, expected true", p.X, p.Y)
		}
	}
	if b.Blocked(1, 1) {
		t.Error("Blocked(1, 1) = true on empty board")
	}
}

func TestParseBoardRejectsRaggedRows(t *testing.T) {
	if _, err := ParseBoard("...", ".."); err == nil {
		t.Error("ParseBoard() with ragged rows should fail")
	}
	if _, err := ParseBoard("..x"); err == nil {
		t.Error("ParseBoard() with unknown cell should fail")
	}
}

func TestBoardCloneIsIndependent(t *testing.T) {
	b := NewBoard(2, 2)
	c := b.Clone()
	c.Set(0, 0, KindZ)
	if b.Cell(0, 0) != KindNone {
		t.Error("mutating a clone changed the original")
	}
}
