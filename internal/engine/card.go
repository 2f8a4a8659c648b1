// Package engine implements the FreeCell rules: the board, move legality,
// safe auto-moves, and the undo/redo history. It knows nothing about
// rendering or input; the ui package drives it.
package engine

import "fmt"

// Suit identifies one of the four card suits. Its integer value doubles as
// the foundation index for that suit.
type Suit int

const (
	Clubs Suit = iota
	Diamonds
	Hearts
	Spades
)

// NumSuits is the number of suits, and therefore of foundations.
const NumSuits = 4

// Colour is the red/black colour class of a suit.
type Colour int

const (
	Black Colour = iota
	Red
)

// Colour returns the colour class of the suit.
func (s Suit) Colour() Colour {
	if s == Diamonds || s == Hearts {
		return Red
	}
	return Black
}

func (s Suit) String() string {
	switch s {
	case Clubs:
		return "clubs"
	case Diamonds:
		return "diamonds"
	case Hearts:
		return "hearts"
	case Spades:
		return "spades"
	default:
		return fmt.Sprintf("suit(%d)", int(s))
	}
}

// Symbol returns the single-rune suit symbol for rendering.
func (s Suit) Symbol() string {
	switch s {
	case Clubs:
		return "♣"
	case Diamonds:
		return "♦"
	case Hearts:
		return "♥"
	case Spades:
		return "♠"
	default:
		return "?"
	}
}

// Card is a single playing card. Rank runs 1 (ace) through 13 (king).
// Rank 0 marks an empty foundation slot.
type Card struct {
	Rank int  `json:"rank"`
	Suit Suit `json:"suit"`
}

// StacksOn reports whether c may be placed on base in a tableau column:
// opposite colour, exactly one rank below.
func (c Card) StacksOn(base Card) bool {
	return c.Suit.Colour() != base.Suit.Colour() && base.Rank == c.Rank+1
}

// FitsOnFoundation reports whether c may be placed on base on a foundation:
// same suit, exactly one rank above.
func (c Card) FitsOnFoundation(base Card) bool {
	return c.Suit == base.Suit && c.Rank == base.Rank+1
}

// RankLabel is the display label of the card's rank.
func (c Card) RankLabel() string {
	switch c.Rank {
	case 0:
		return "_"
	case 1:
		return "A"
	case 11:
		return "J"
	case 12:
		return "Q"
	case 13:
		return "K"
	default:
		return fmt.Sprintf("%d", c.Rank)
	}
}

func (c Card) String() string {
	if c.Rank == 0 {
		return "  "
	}
	return c.RankLabel() + c.Suit.Symbol()
}

// AddrKind discriminates the board regions an Address can point into.
type AddrKind int

const (
	AddrColumn AddrKind = iota
	AddrFoundation
	AddrFreeCell
)

// Address names a location on the board: a tableau column, a foundation
// (indexed by suit), or a free cell.
type Address struct {
	Kind  AddrKind `json:"kind"`
	Index int      `json:"index"`
}

// Column addresses tableau column i.
func Column(i int) Address { return Address{Kind: AddrColumn, Index: i} }

// Foundation addresses the foundation for suit s.
func Foundation(s Suit) Address { return Address{Kind: AddrFoundation, Index: int(s)} }

// FreeCell addresses free cell i.
func FreeCell(i int) Address { return Address{Kind: AddrFreeCell, Index: i} }

func (a Address) String() string {
	switch a.Kind {
	case AddrColumn:
		return fmt.Sprintf("column %d", a.Index)
	case AddrFoundation:
		return fmt.Sprintf("foundation %s", Suit(a.Index))
	case AddrFreeCell:
		return fmt.Sprintf("free cell %d", a.Index)
	default:
		return fmt.Sprintf("address(%d,%d)", int(a.Kind), a.Index)
	}
}
