package game

// PlayedCard is one card of a trick together with the seat that played it.
type PlayedCard struct {
	Player int
	Card   Card
}

// Trick is the ordered sequence of cards played in the current trick.
type Trick struct {
	plays []PlayedCard
}

// Add appends a played card. The first card fixes the asked suit.
func (t *Trick) Add(player int, c Card) {
	t.plays = append(t.plays, PlayedCard{Player: player, Card: c})
}

func (t *Trick) Len() int { return len(t.plays) }

// LedSuit returns the suit asked by the first card of the trick.
func (t *Trick) LedSuit() (Suit, bool) {
	if len(t.plays) == 0 {
		return 0, false
	}
	return t.plays[0].Card.Suit, true
}

func (t *Trick) Plays() []PlayedCard {
	return append([]PlayedCard(nil), t.plays...)
}

// Resolve returns the seat currently holding the trick and the summed point
// value of its cards. It works on partial tricks too, which is how the
// partner-is-winning exemption is evaluated mid-trick.
func (t *Trick) Resolve(trump Suit) (winner, points int) {
	if len(t.plays) == 0 {
		panic("resolving an empty trick")
	}
	led := t.plays[0].Card.Suit
	best := 0
	for i, p := range t.plays {
		points += p.Card.Points(trump)
		if i > 0 && p.Card.Beats(t.plays[best].Card, led, trump) {
			best = i
		}
	}
	return t.plays[best].Player, points
}

// TakeAll empties the trick and returns its cards in play order.
func (t *Trick) TakeAll() []Card {
	out := make([]Card, 0, len(t.plays))
	for _, p := range t.plays {
		out = append(out, p.Card)
	}
	t.plays = nil
	return out
}
