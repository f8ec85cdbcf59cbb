package game

import "fmt"

// HandSize is the number of card slots per player.
const HandSize = 8

// Hand maps 8 fixed slots to an optional card. A played slot stays empty
// until the next deal; the slot index is the handle players use to pick the
// card they want to play.
type Hand struct {
	slots [HandSize]*Card
	top   int
}

func NewHand() *Hand {
	return &Hand{top: HandSize - 1}
}

// Add places cards into the hand from the top slot down, the way a player
// picks up the passes of a deal.
func (h *Hand) Add(cards []Card) {
	for _, c := range cards {
		if h.top < 0 {
			panic("adding cards to a full hand")
		}
		c := c
		h.slots[h.top] = &c
		h.top--
	}
}

// Card returns the card held in the given slot, if any.
func (h *Hand) Card(slot int) (Card, bool) {
	if slot < 0 || slot >= HandSize || h.slots[slot] == nil {
		return Card{}, false
	}
	return *h.slots[slot], true
}

// Play removes and returns the card in the given slot. Referencing an empty
// slot is a caller bug, not a user mistake.
func (h *Hand) Play(slot int) (Card, error) {
	c, ok := h.Card(slot)
	if !ok {
		return Card{}, fmt.Errorf("slot %d: %w", slot, ErrMalformedHand)
	}
	h.slots[slot] = nil
	if h.Empty() {
		h.top = HandSize - 1
	}
	return c, nil
}

func (h *Hand) Empty() bool {
	for _, c := range h.slots {
		if c != nil {
			return false
		}
	}
	return true
}

// Cards returns the cards currently held, skipping empty slots.
func (h *Hand) Cards() []Card {
	var out []Card
	for _, c := range h.slots {
		if c != nil {
			out = append(out, *c)
		}
	}
	return out
}

func (h *Hand) HasSuit(s Suit) bool {
	for _, c := range h.slots {
		if c != nil && c.Suit == s {
			return true
		}
	}
	return false
}

func (h *Hand) Has(card Card) bool {
	for _, c := range h.slots {
		if c != nil && *c == card {
			return true
		}
	}
	return false
}

// TakeAll empties the hand and returns the cards it held.
func (h *Hand) TakeAll() []Card {
	out := h.Cards()
	h.slots = [HandSize]*Card{}
	h.top = HandSize - 1
	return out
}
