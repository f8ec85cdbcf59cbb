package game

import (
	"fmt"

	"golang.org/x/exp/rand"
)

// Deck holds the cards not yet dealt. It is emptied by dealing and rebuilt
// between rounds from the two discard piles.
type Deck struct {
	cards []Card
}

// NewDeck returns the full 32-card deck in canonical order.
func NewDeck() *Deck {
	cards := make([]Card, 0, 32)
	for _, s := range AllSuits {
		for _, r := range AllRanks {
			cards = append(cards, Card{Suit: s, Rank: r})
		}
	}
	return &Deck{cards: cards}
}

func (d *Deck) Len() int { return len(d.cards) }

// Shuffle applies a uniform random permutation.
func (d *Deck) Shuffle(rng *rand.Rand) {
	rng.Shuffle(len(d.cards), func(i, j int) {
		d.cards[i], d.cards[j] = d.cards[j], d.cards[i]
	})
}

// Cut rotates the deck at a random split point in 1..len-1 and restacks it.
func (d *Deck) Cut(rng *rand.Rand) {
	if len(d.cards) < 2 {
		return
	}
	pos := 1 + rng.Intn(len(d.cards)-1)
	cut := make([]Card, 0, len(d.cards))
	cut = append(cut, d.cards[pos:]...)
	cut = append(cut, d.cards[:pos]...)
	d.cards = cut
}

// Deal removes and returns the first n cards.
func (d *Deck) Deal(n int) ([]Card, error) {
	if n > len(d.cards) {
		return nil, fmt.Errorf("dealing %d of %d remaining cards: %w", n, len(d.cards), ErrEmptyDeck)
	}
	out := append([]Card(nil), d.cards[:n]...)
	d.cards = d.cards[n:]
	return out, nil
}

// Add stacks the given cards on top of the deck.
func (d *Deck) Add(cards []Card) {
	d.cards = append(append([]Card(nil), cards...), d.cards...)
}

// Cards returns a copy of the remaining cards in order.
func (d *Deck) Cards() []Card {
	return append([]Card(nil), d.cards...)
}
