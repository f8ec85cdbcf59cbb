package game

import "fmt"

type Suit int

const (
	Hearts Suit = iota
	Spades
	Clubs
	Diamonds
)

type Rank int

const (
	Seven Rank = iota
	Eight
	Nine
	Ten
	Jack
	Queen
	King
	Ace
)

var AllSuits = []Suit{Hearts, Spades, Clubs, Diamonds}
var AllRanks = []Rank{Seven, Eight, Nine, Ten, Jack, Queen, King, Ace}

func (s Suit) String() string {
	switch s {
	case Hearts:
		return "hearts"
	case Spades:
		return "spades"
	case Clubs:
		return "clubs"
	case Diamonds:
		return "diamonds"
	default:
		return "?"
	}
}

// ParseSuit maps a suit name back to its value.
func ParseSuit(name string) (Suit, bool) {
	for _, s := range AllSuits {
		if s.String() == name {
			return s, true
		}
	}
	return 0, false
}

func (r Rank) String() string {
	switch r {
	case Seven:
		return "7"
	case Eight:
		return "8"
	case Nine:
		return "9"
	case Ten:
		return "10"
	case Jack:
		return "J"
	case Queen:
		return "Q"
	case King:
		return "K"
	case Ace:
		return "A"
	default:
		return "?"
	}
}

// Card is an immutable (suit, rank) pair; 32 unique cards exist.
type Card struct {
	Suit Suit
	Rank Rank
}

func (c Card) String() string {
	return fmt.Sprintf("%s of %s", c.Rank, c.Suit)
}

// Points returns the trick value of the card under the given trump suit.
// The trump suit uses its own table: J=20 and 9=14 instead of 2 and 0.
func (c Card) Points(trump Suit) int {
	if c.Suit == trump {
		switch c.Rank {
		case Jack:
			return 20
		case Nine:
			return 14
		}
	}
	switch c.Rank {
	case Ace:
		return 11
	case Ten:
		return 10
	case King:
		return 4
	case Queen:
		return 3
	case Jack:
		return 2
	default:
		return 0
	}
}

// Ranking tables as positional strength. Plain suits order
// 7<8<9<J<Q<K<10<A, the trump suit 7<8<Q<K<10<A<9<J.
var plainStrength = map[Rank]int{
	Seven: 0, Eight: 1, Nine: 2, Jack: 3, Queen: 4, King: 5, Ten: 6, Ace: 7,
}

var trumpStrength = map[Rank]int{
	Seven: 0, Eight: 1, Queen: 2, King: 3, Ten: 4, Ace: 5, Nine: 6, Jack: 7,
}

// Strength returns the card's index in the ranking table that applies under
// the given trump suit. It is only meaningful between cards of the same suit;
// cross-suit comparison is Beats' job.
func (c Card) Strength(trump Suit) int {
	if c.Suit == trump {
		return trumpStrength[c.Rank]
	}
	return plainStrength[c.Rank]
}

// Beats reports whether c takes the trick from best, where led is the suit
// that opened the trick. Any trump beats any plain card, and a plain card
// that does not follow the led suit never takes a trick.
func (c Card) Beats(best Card, led, trump Suit) bool {
	switch {
	case c.Suit == trump && best.Suit == trump:
		return c.Strength(trump) > best.Strength(trump)
	case c.Suit == trump:
		return true
	case best.Suit == trump:
		return false
	case c.Suit != led:
		return false
	case best.Suit != led:
		return true
	default:
		return c.Strength(trump) > best.Strength(trump)
	}
}
