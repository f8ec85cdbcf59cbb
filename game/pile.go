package game

// Pile accumulates a team's won tricks face down until the cards are merged
// back into the deck between rounds.
type Pile struct {
	cards []Card
}

// Add stacks cards on top of the pile.
func (p *Pile) Add(cards []Card) {
	p.cards = append(append([]Card(nil), cards...), p.cards...)
}

// TakeAll removes and returns every card in the pile.
func (p *Pile) TakeAll() []Card {
	out := p.cards
	p.cards = nil
	return out
}

func (p *Pile) Len() int { return len(p.cards) }
