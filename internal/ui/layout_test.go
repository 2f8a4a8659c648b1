package ui

import (
	"testing"

	"github.com/FBemf/freecell/internal/engine"
)

func card(rank int, suit engine.Suit) engine.Card {
	return engine.Card{Rank: rank, Suit: suit}
}

func TestCellGeometry(t *testing.T) {
	if got := freeCellRect(0); got != (Rect{X: leftMargin, Y: topRow, W: cellWidth, H: 1}) {
		t.Errorf("freeCellRect(0) = %+v", got)
	}
	if got, want := freeCellRect(1).X, leftMargin+cellWidth+cellGap; got != want {
		t.Errorf("freeCellRect(1).X = %d, want %d", got, want)
	}
	// foundations sit to the right of the last free cell, with an extra gap
	if got, want := foundationRect(engine.Clubs).X, columnX(engine.NumFreeCells)+foundationGap; got != want {
		t.Errorf("foundationRect(clubs).X = %d, want %d", got, want)
	}
	if got := tableauCardRect(0, 0); got != (Rect{X: leftMargin, Y: tableauTop, W: cellWidth, H: 1}) {
		t.Errorf("tableauCardRect(0, 0) = %+v", got)
	}
	if got, want := tableauCardRect(2, 5).Y, tableauTop+5; got != want {
		t.Errorf("tableauCardRect(2, 5).Y = %d, want %d", got, want)
	}
}

func TestRectContains(t *testing.T) {
	r := Rect{X: 2, Y: 3, W: 5, H: 1}
	for _, x := range []int{2, 4, 6} {
		if !r.Contains(x, 3) {
			t.Errorf("rect should contain (%d, 3)", x)
		}
	}
	if r.Contains(7, 3) {
		t.Error("rect is half-open; should not contain x == X+W")
	}
	if r.Contains(4, 4) {
		t.Error("rect should not contain the row below")
	}
}

func TestCardRectsCounts(t *testing.T) {
	g := engine.GameFromColumns([][]engine.Card{
		{card(7, engine.Clubs), card(6, engine.Hearts), card(5, engine.Spades)},
		{},
	})
	rects := CardRects(g)
	if len(rects) != 3 {
		t.Fatalf("expected 3 card rects, got %d", len(rects))
	}
	// the count is how many cards a grab at that depth would lift
	for _, r := range rects {
		switch r.Card {
		case card(7, engine.Clubs):
			if r.Count != 3 {
				t.Errorf("bottom of run: count = %d, want 3", r.Count)
			}
		case card(5, engine.Spades):
			if r.Count != 1 {
				t.Errorf("top card: count = %d, want 1", r.Count)
			}
		}
	}
}

func TestCardRectsIncludesFreeCells(t *testing.T) {
	g := engine.GameFromColumns([][]engine.Card{{}})
	held := card(9, engine.Diamonds)
	g.FreeCells[2] = &held
	rects := CardRects(g)
	if len(rects) != 1 {
		t.Fatalf("expected 1 card rect, got %d", len(rects))
	}
	if rects[0].Address != engine.FreeCell(2) || rects[0].Count != 1 {
		t.Errorf("unexpected free cell rect: %+v", rects[0])
	}
}

func TestHitCard(t *testing.T) {
	g := engine.GameFromColumns([][]engine.Card{
		{card(7, engine.Clubs), card(6, engine.Hearts)},
		{card(13, engine.Spades)},
	})

	r, ok := hitCard(g, leftMargin, tableauTop+1)
	if !ok || r.Card != card(6, engine.Hearts) {
		t.Errorf("expected 6 of hearts at depth 1, got %+v ok=%v", r, ok)
	}
	r, ok = hitCard(g, columnX(1)+cellWidth-1, tableauTop)
	if !ok || r.Card != card(13, engine.Spades) {
		t.Errorf("expected king of spades in column 1, got %+v ok=%v", r, ok)
	}
	if _, ok := hitCard(g, columnX(1), tableauTop+1); ok {
		t.Error("expected no card below column 1's only card")
	}
	if _, ok := hitCard(g, 0, 0); ok {
		t.Error("expected no card at the origin")
	}
}

func TestDropZones(t *testing.T) {
	g := engine.GameFromColumns([][]engine.Card{
		{card(7, engine.Clubs), card(6, engine.Hearts)},
		{},
	})
	zones := DropZones(g)
	byAddr := make(map[engine.Address]Rect)
	for _, z := range zones {
		byAddr[z.Address] = z.Rect
	}

	if len(byAddr) != engine.NumFreeCells+engine.NumSuits+2 {
		t.Fatalf("unexpected zone count %d", len(byAddr))
	}
	// column zones extend one row past the last card so drops on the
	// "next" slot land
	if got := byAddr[engine.Column(0)].H; got != 3 {
		t.Errorf("column 0 zone height = %d, want 3", got)
	}
	if got := byAddr[engine.Column(1)].H; got != 1 {
		t.Errorf("empty column zone height = %d, want 1", got)
	}
	if _, ok := byAddr[engine.Foundation(engine.Hearts)]; !ok {
		t.Error("missing foundation zone")
	}
}
