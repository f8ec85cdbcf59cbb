package game

import "errors"

// Recoverable rejections: the acting player is re-prompted, nothing mutates.
var (
	ErrInvalidBid  = errors.New("invalid bid")
	ErrInvalidCard = errors.New("invalid card")
)

// Internal invariant violations: dealing and legality checks are supposed to
// make these unreachable, so callers should abort rather than retry.
var (
	ErrEmptyDeck     = errors.New("not enough cards left in the deck")
	ErrMalformedHand = errors.New("referenced hand slot is empty")
)

type PhaseError string

func (e PhaseError) Error() string { return string(e) }
