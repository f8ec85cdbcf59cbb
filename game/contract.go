package game

// Contract is the commitment the bidding team carries into the play phase.
type Contract struct {
	Value       int
	Trump       Suit
	Team        int
	Bidder      int
	Coinched    bool
	Surcoinched bool
	Belote      int
}

// Fulfilled reports whether the bidding team met the contract at round end.
// A generale requires the bidder's seat to win all 8 tricks, a capot
// requires the challengers to finish on zero trick points, and a standard
// contract requires trick points plus the belote bonus to reach the bid.
func (c *Contract) Fulfilled(biddingPoints, challengerPoints int, trickWinners []int) bool {
	switch c.Value {
	case Generale:
		for _, w := range trickWinners {
			if w != c.Bidder {
				return false
			}
		}
		return len(trickWinners) > 0
	case Capot:
		return challengerPoints == 0
	default:
		return biddingPoints+c.Belote >= c.Value
	}
}
