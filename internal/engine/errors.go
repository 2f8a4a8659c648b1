package engine

import "fmt"

// Reasons attached to MoveError. These are user-facing strings; the ui shows
// them verbatim in the status line.
const (
	ReasonAlreadyHolding        = "already holding cards"
	ReasonEmptyAddress          = "empty address"
	ReasonMoveFoundation        = "cannot move off foundation"
	ReasonEmptyStack            = "cannot pick up zero-card stack"
	ReasonUnsoundStack          = "cards in stack don't stack"
	ReasonStackTooLarge         = "cannot pick up that many cards at once"
	ReasonStackLargerThanColumn = "there are not that many cards in that column"
	ReasonDoesNotFit            = "those cards do not fit there"
	ReasonNoCardsHeld           = "cannot place cards when not holding cards"
	ReasonStackOnlyFromColumn   = "cannot pick up a stack from anywhere except a column"
)

// MoveErrorKind classifies a rejected move.
type MoveErrorKind int

const (
	ErrCannotPickUp MoveErrorKind = iota
	ErrCannotPlace
	ErrIllegalAddress
)

// MoveError is returned by Game operations when a move is not legal.
// It carries the address involved and a human-readable reason.
type MoveError struct {
	Kind    MoveErrorKind
	Address Address
	Reason  string
}

func (e *MoveError) Error() string {
	switch e.Kind {
	case ErrCannotPickUp:
		return fmt.Sprintf("cannot pick up cards from %s: %s", e.Address, e.Reason)
	case ErrCannotPlace:
		return fmt.Sprintf("cannot move current cards to %s: %s", e.Address, e.Reason)
	case ErrIllegalAddress:
		return fmt.Sprintf("address %s does not exist on the board", e.Address)
	default:
		return fmt.Sprintf("move error at %s: %s", e.Address, e.Reason)
	}
}

func errCannotPickUp(from Address, reason string) error {
	return &MoveError{Kind: ErrCannotPickUp, Address: from, Reason: reason}
}

func errCannotPlace(to Address, reason string) error {
	return &MoveError{Kind: ErrCannotPlace, Address: to, Reason: reason}
}

func errIllegalAddress(addr Address) error {
	return &MoveError{Kind: ErrIllegalAddress, Address: addr}
}
