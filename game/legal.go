package game

// PartnerOf returns the seat across the table.
func PartnerOf(player int) int { return (player + 2) % 4 }

// LegalPlay reports whether the given seat may play card from hand onto the
// current trick under the contract's trump suit.
//
// The rules, in order: an empty trick accepts anything; a player holding the
// asked suit must follow it; a trump played onto a trick already containing
// trumps must outrank them whenever the hand holds one that can; a player
// void in the asked suit but holding trumps must play one, unless their
// partner currently holds the trick.
func LegalPlay(card Card, hand *Hand, player int, trick *Trick, trump Suit) bool {
	if trick.Len() == 0 {
		return true
	}
	led, _ := trick.LedSuit()

	if card.Suit != led && hand.HasSuit(led) {
		return false
	}

	if card.Suit == trump {
		bestPlayed := -1
		for _, p := range trick.Plays() {
			if p.Card.Suit == trump && p.Card.Strength(trump) > bestPlayed {
				bestPlayed = p.Card.Strength(trump)
			}
		}
		if bestPlayed >= 0 && card.Strength(trump) < bestPlayed {
			for _, c := range hand.Cards() {
				if c.Suit == trump && c.Strength(trump) > bestPlayed {
					return false
				}
			}
		}
	}

	if card.Suit != trump && !hand.HasSuit(led) && hand.HasSuit(trump) {
		winner, _ := trick.Resolve(trump)
		if winner != PartnerOf(player) {
			return false
		}
	}
	return true
}
