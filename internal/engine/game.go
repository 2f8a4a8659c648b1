package engine

import (
	"fmt"
	"math/rand/v2"
	"strings"
)

// Board dimensions.
const (
	NumColumns   = 8
	NumFreeCells = 4
)

// dealCounts is how many cards the dealer places into the first seven
// columns; the remainder fills the eighth.
var dealCounts = [7]int{7, 7, 7, 7, 6, 6, 6}

// Game is the full state of a FreeCell board, including any cards currently
// held by the player ("floating"). All operations are value-semantic: they
// return a new Game and never mutate the receiver.
//
// Fields are exported for JSON serialization in save files; callers outside
// this package must treat them as read-only.
type Game struct {
	Columns     [][]Card `json:"columns"`
	Foundations []Card   `json:"foundations"` // indexed by Suit; rank 0 when empty
	FreeCells   []*Card  `json:"freeCells"`   // nil entry when empty
	// Floating holds the cards in hand, bottom card first. nil when empty;
	// a single entry is a lone card, two or more are a picked-up run.
	Floating []Card `json:"floating,omitempty"`
}

func emptyGame() Game {
	foundations := make([]Card, NumSuits)
	for s := 0; s < NumSuits; s++ {
		foundations[s] = Card{Rank: 0, Suit: Suit(s)}
	}
	return Game{
		Foundations: foundations,
		FreeCells:   make([]*Card, NumFreeCells),
	}
}

// NewGame shuffles a fresh deck with the given seed and deals it out.
// The same seed always produces the same deal.
func NewGame(seed uint64) Game {
	g := emptyGame()
	deck := make([]Card, 0, 52)
	for _, suit := range []Suit{Clubs, Diamonds, Spades, Hearts} {
		for rank := 1; rank <= 13; rank++ {
			deck = append(deck, Card{Rank: rank, Suit: suit})
		}
	}
	rng := rand.New(rand.NewPCG(seed, seed))
	rng.Shuffle(len(deck), func(i, j int) {
		deck[i], deck[j] = deck[j], deck[i]
	})
	g.Columns = make([][]Card, 0, NumColumns)
	for _, n := range dealCounts {
		col := make([]Card, n)
		copy(col, deck[:n])
		deck = deck[n:]
		g.Columns = append(g.Columns, col)
	}
	last := make([]Card, len(deck))
	copy(last, deck)
	g.Columns = append(g.Columns, last)
	return g
}

// GameFromColumns builds a game with the given tableau and everything else
// empty. Used to set up known positions in tests.
func GameFromColumns(columns [][]Card) Game {
	g := emptyGame()
	g.Columns = make([][]Card, len(columns))
	for i, col := range columns {
		g.Columns[i] = make([]Card, len(col))
		copy(g.Columns[i], col)
	}
	return g
}

// clone deep-copies the game so operations can edit the copy freely.
func (g Game) clone() Game {
	out := g
	out.Columns = make([][]Card, len(g.Columns))
	for i, col := range g.Columns {
		out.Columns[i] = make([]Card, len(col))
		copy(out.Columns[i], col)
	}
	out.Foundations = make([]Card, len(g.Foundations))
	copy(out.Foundations, g.Foundations)
	out.FreeCells = make([]*Card, len(g.FreeCells))
	for i, c := range g.FreeCells {
		if c != nil {
			card := *c
			out.FreeCells[i] = &card
		}
	}
	if g.Floating != nil {
		out.Floating = make([]Card, len(g.Floating))
		copy(out.Floating, g.Floating)
	}
	return out
}

// HasFloating reports whether any cards are currently held.
func (g Game) HasFloating() bool {
	return len(g.Floating) > 0
}

// maxStackSize is the largest run that may be picked up at once:
// one card per empty free cell, plus one.
func (g Game) maxStackSize() int {
	n := 1
	for _, c := range g.FreeCells {
		if c == nil {
			n++
		}
	}
	return n
}

// PickUp lifts the single top card at the address into the hand.
func (g Game) PickUp(addr Address) (Game, error) {
	if g.HasFloating() {
		return Game{}, errCannotPickUp(addr, ReasonAlreadyHolding)
	}
	switch addr.Kind {
	case AddrColumn:
		if addr.Index < 0 || addr.Index >= len(g.Columns) {
			return Game{}, errIllegalAddress(addr)
		}
		out := g.clone()
		col := out.Columns[addr.Index]
		if len(col) == 0 {
			return Game{}, errCannotPickUp(addr, ReasonEmptyAddress)
		}
		card := col[len(col)-1]
		out.Columns[addr.Index] = col[:len(col)-1]
		out.Floating = []Card{card}
		return out, nil

	case AddrFoundation:
		return Game{}, errCannotPickUp(addr, ReasonMoveFoundation)

	case AddrFreeCell:
		if addr.Index < 0 || addr.Index >= len(g.FreeCells) {
			return Game{}, errIllegalAddress(addr)
		}
		out := g.clone()
		cell := out.FreeCells[addr.Index]
		if cell == nil {
			return Game{}, errCannotPickUp(addr, ReasonEmptyAddress)
		}
		out.FreeCells[addr.Index] = nil
		out.Floating = []Card{*cell}
		return out, nil

	default:
		return Game{}, errIllegalAddress(addr)
	}
}

// PickUpCount lifts a run of n cards from the bottom of a column into the
// hand. The run must descend by one and alternate colours, and n may not
// exceed maxStackSize. Runs only come from columns; for a column address,
// n == 1 behaves exactly like PickUp.
func (g Game) PickUpCount(addr Address, n int) (Game, error) {
	if addr.Kind != AddrColumn {
		return Game{}, errCannotPickUp(addr, ReasonStackOnlyFromColumn)
	}
	if g.HasFloating() {
		return Game{}, errCannotPickUp(addr, ReasonAlreadyHolding)
	}
	switch {
	case n == 0:
		return Game{}, errCannotPickUp(addr, ReasonEmptyStack)
	case n == 1:
		return g.PickUp(addr)
	}
	if addr.Index < 0 || addr.Index >= len(g.Columns) {
		return Game{}, errIllegalAddress(addr)
	}
	out := g.clone()
	col := out.Columns[addr.Index]
	if n > len(col) {
		return Game{}, errCannotPickUp(addr, ReasonStackLargerThanColumn)
	}
	if n > g.maxStackSize() {
		return Game{}, errCannotPickUp(addr, ReasonStackTooLarge)
	}
	run := col[len(col)-n:]
	for i := len(run) - 1; i > 0; i-- {
		if !run[i].StacksOn(run[i-1]) {
			return Game{}, errCannotPickUp(addr, ReasonUnsoundStack)
		}
	}
	floating := make([]Card, n)
	copy(floating, run)
	out.Columns[addr.Index] = col[:len(col)-n]
	out.Floating = floating
	return out, nil
}

// Place drops the held cards at the address. A run may only go to a column;
// free cells and foundations accept a single held card.
func (g Game) Place(addr Address) (Game, error) {
	out := g.clone()
	switch addr.Kind {
	case AddrColumn:
		if addr.Index < 0 || addr.Index >= len(out.Columns) {
			return Game{}, errIllegalAddress(addr)
		}
		if !out.HasFloating() {
			return Game{}, errCannotPlace(addr, ReasonNoCardsHeld)
		}
		col := out.Columns[addr.Index]
		if len(col) > 0 && !out.Floating[0].StacksOn(col[len(col)-1]) {
			return Game{}, errCannotPlace(addr, ReasonDoesNotFit)
		}
		out.Columns[addr.Index] = append(col, out.Floating...)
		out.Floating = nil
		return out, nil

	case AddrFoundation:
		if addr.Index < 0 || addr.Index >= len(out.Foundations) {
			return Game{}, errIllegalAddress(addr)
		}
		if !out.HasFloating() {
			return Game{}, errCannotPlace(addr, ReasonNoCardsHeld)
		}
		if len(out.Floating) != 1 || !out.Floating[0].FitsOnFoundation(out.Foundations[addr.Index]) {
			return Game{}, errCannotPlace(addr, ReasonDoesNotFit)
		}
		out.Foundations[addr.Index] = out.Floating[0]
		out.Floating = nil
		return out, nil

	case AddrFreeCell:
		if addr.Index < 0 || addr.Index >= len(out.FreeCells) {
			return Game{}, errIllegalAddress(addr)
		}
		if !out.HasFloating() {
			return Game{}, errCannotPlace(addr, ReasonNoCardsHeld)
		}
		if len(out.Floating) != 1 || out.FreeCells[addr.Index] != nil {
			return Game{}, errCannotPlace(addr, ReasonDoesNotFit)
		}
		card := out.Floating[0]
		out.FreeCells[addr.Index] = &card
		out.Floating = nil
		return out, nil

	default:
		return Game{}, errIllegalAddress(addr)
	}
}

// AutoMove moves at most one card from a column top to its foundation, if
// that move is safe. Safe means no buried card of the opposite colour could
// still want to stack on it. Returns the new state and whether a move
// happened.
func (g Game) AutoMove() (Game, bool) {
	if g.HasFloating() {
		return Game{}, false
	}
	for i, col := range g.Columns {
		if len(col) == 0 {
			continue
		}
		card := col[len(col)-1]
		if !g.canAutoMove(card) {
			continue
		}
		out, err := g.PickUp(Column(i))
		if err != nil {
			continue
		}
		out, err = out.Place(Foundation(card.Suit))
		if err != nil {
			continue
		}
		return out, true
	}
	return Game{}, false
}

// canAutoMove implements the classic safe-automove rule: a card may go up
// only if both foundations of the opposite colour have reached (or will
// trivially reach) the rank below it.
func (g Game) canAutoMove(card Card) bool {
	if g.Foundations[card.Suit].Rank != card.Rank-1 {
		return false
	}
	covered := func(s Suit) bool {
		return g.Foundations[s].Rank >= card.Rank-1 ||
			g.canAutoMove(Card{Rank: card.Rank - 1, Suit: s})
	}
	if card.Suit.Colour() == Red {
		return covered(Clubs) && covered(Spades)
	}
	return covered(Diamonds) && covered(Hearts)
}

// Won reports whether every foundation has reached the king.
func (g Game) Won() bool {
	for _, f := range g.Foundations {
		if f.Rank != 13 {
			return false
		}
	}
	return len(g.Foundations) == NumSuits
}

// Equal compares board states. Empty and nil slices compare equal, so
// states survive a JSON round trip without losing identity.
func (g Game) Equal(o Game) bool {
	if len(g.Columns) != len(o.Columns) {
		return false
	}
	for i := range g.Columns {
		if len(g.Columns[i]) != len(o.Columns[i]) {
			return false
		}
		for j := range g.Columns[i] {
			if g.Columns[i][j] != o.Columns[i][j] {
				return false
			}
		}
	}
	if len(g.Foundations) != len(o.Foundations) {
		return false
	}
	for i := range g.Foundations {
		if g.Foundations[i] != o.Foundations[i] {
			return false
		}
	}
	if len(g.FreeCells) != len(o.FreeCells) {
		return false
	}
	for i := range g.FreeCells {
		a, b := g.FreeCells[i], o.FreeCells[i]
		if (a == nil) != (b == nil) {
			return false
		}
		if a != nil && *a != *b {
			return false
		}
	}
	if len(g.Floating) != len(o.Floating) {
		return false
	}
	for i := range g.Floating {
		if g.Floating[i] != o.Floating[i] {
			return false
		}
	}
	return true
}

// View renders a plain-text snapshot of the board, one tableau row per
// line. Meant for logs and test failure output, not for play.
func (g Game) View() string {
	var b strings.Builder
	b.WriteString("cells:")
	for _, c := range g.FreeCells {
		b.WriteByte(' ')
		if c == nil {
			b.WriteString("--")
		} else {
			b.WriteString(c.String())
		}
	}
	b.WriteString("  foundations:")
	for _, c := range g.Foundations {
		b.WriteByte(' ')
		if c.Rank == 0 {
			b.WriteString(c.Suit.Symbol())
		} else {
			b.WriteString(c.String())
		}
	}
	b.WriteByte('\n')
	rows := 0
	for _, col := range g.Columns {
		if len(col) > rows {
			rows = len(col)
		}
	}
	for r := 0; r < rows; r++ {
		for i, col := range g.Columns {
			if i > 0 {
				b.WriteByte(' ')
			}
			if r < len(col) {
				fmt.Fprintf(&b, "%3s", col[r])
			} else {
				b.WriteString("   ")
			}
		}
		b.WriteByte('\n')
	}
	if len(g.Floating) > 0 {
		b.WriteString("hand:")
		for _, c := range g.Floating {
			b.WriteByte(' ')
			b.WriteString(c.String())
		}
		b.WriteByte('\n')
	}
	return b.String()
}
