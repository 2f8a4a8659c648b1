package ui

import "github.com/FBemf/freecell/internal/engine"

// The board uses a fixed character-cell geometry so that mouse coordinates
// map directly onto rendered cards. Every card occupies one terminal row
// and cellWidth columns.
//
//	row 0            title
//	row topRow       free cells and foundations
//	row tableauTop.. tableau columns
const (
	cellWidth     = 5 // "[10♥]"
	cellGap       = 1
	leftMargin    = 2
	topRow        = 1
	tableauTop    = 3
	foundationGap = 3 // extra space between free cells and foundations
)

// Rect is a rectangle in character cells. Containment is half-open:
// x in [X, X+W), y in [Y, Y+H).
type Rect struct {
	X, Y, W, H int
}

// Contains reports whether the point is inside the rectangle.
func (r Rect) Contains(x, y int) bool {
	return x >= r.X && x < r.X+r.W && y >= r.Y && y < r.Y+r.H
}

func columnX(i int) int {
	return leftMargin + i*(cellWidth+cellGap)
}

func freeCellRect(i int) Rect {
	return Rect{X: columnX(i), Y: topRow, W: cellWidth, H: 1}
}

func foundationRect(s engine.Suit) Rect {
	x := columnX(engine.NumFreeCells) + foundationGap + int(s)*(cellWidth+cellGap)
	return Rect{X: x, Y: topRow, W: cellWidth, H: 1}
}

func tableauCardRect(column, depth int) Rect {
	return Rect{X: columnX(column), Y: tableauTop + depth, W: cellWidth, H: 1}
}

// CardRect is a clickable card on the board. Count is how many cards a
// click picks up: 1 for a top card or a free cell, more for a card buried
// under a run.
type CardRect struct {
	Card    engine.Card
	Address engine.Address
	Count   int
	Rect    Rect
}

// CardRects returns a rect for every pick-up candidate on the board.
func CardRects(g engine.Game) []CardRect {
	var rects []CardRect
	for i, cell := range g.FreeCells {
		if cell != nil {
			rects = append(rects, CardRect{
				Card:    *cell,
				Address: engine.FreeCell(i),
				Count:   1,
				Rect:    freeCellRect(i),
			})
		}
	}
	for i, col := range g.Columns {
		for depth, card := range col {
			rects = append(rects, CardRect{
				Card:    card,
				Address: engine.Column(i),
				Count:   len(col) - depth,
				Rect:    tableauCardRect(i, depth),
			})
		}
	}
	return rects
}

// DropZone is a region the held cards can be released onto.
type DropZone struct {
	Address engine.Address
	Rect    Rect
}

// DropZones returns the release targets: each free cell, each foundation,
// and each column. A column's zone covers its cards plus a row underneath,
// so an empty column is still hittable.
func DropZones(g engine.Game) []DropZone {
	var zones []DropZone
	for i := range g.FreeCells {
		zones = append(zones, DropZone{Address: engine.FreeCell(i), Rect: freeCellRect(i)})
	}
	for s := 0; s < engine.NumSuits; s++ {
		zones = append(zones, DropZone{Address: engine.Foundation(engine.Suit(s)), Rect: foundationRect(engine.Suit(s))})
	}
	for i, col := range g.Columns {
		zones = append(zones, DropZone{
			Address: engine.Column(i),
			Rect:    Rect{X: columnX(i), Y: tableauTop, W: cellWidth, H: len(col) + 1},
		})
	}
	return zones
}

// hitCard returns the topmost card rect containing the point.
func hitCard(g engine.Game, x, y int) (CardRect, bool) {
	rects := CardRects(g)
	for i := len(rects) - 1; i >= 0; i-- {
		if rects[i].Rect.Contains(x, y) {
			return rects[i], true
		}
	}
	return CardRect{}, false
}
