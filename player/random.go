package player

import (
	"golang.org/x/exp/rand"

	"coinche/game"
)

// Dumb-strategy defaults: mostly pass, occasionally raise, rarely challenge.
const (
	DefaultRaiseProb      = 0.20
	DefaultCoincheProb    = 0.05
	DefaultSurcoincheProb = 0.02
)

// Random is the automated decision provider. It bids by weighted random
// choice and plays a uniformly random card; the engine re-prompts it until
// the proposal is legal.
type Random struct {
	RaiseProb      float64
	CoincheProb    float64
	SurcoincheProb float64

	rng *rand.Rand
}

func NewRandom(rng *rand.Rand) *Random {
	return &Random{
		RaiseProb:      DefaultRaiseProb,
		CoincheProb:    DefaultCoincheProb,
		SurcoincheProb: DefaultSurcoincheProb,
		rng:            rng,
	}
}

// ProposeBid rolls once against the configured probabilities. A raise picks
// a uniformly random scale value above the current highest bid and a random
// trump suit; a standing generale cannot be outbid, so it turns into a pass.
func (r *Random) ProposeBid(ledger *game.Ledger) game.BidAction {
	roll := r.rng.Float64()
	switch {
	case roll < r.RaiseProb:
		high := ledger.HighestBid()
		if high >= game.Generale {
			return game.BidAction{}
		}
		var candidates []int
		for _, v := range game.BidValues() {
			if v > high {
				candidates = append(candidates, v)
			}
		}
		suit := game.AllSuits[r.rng.Intn(len(game.AllSuits))]
		return game.BidAction{Value: candidates[r.rng.Intn(len(candidates))], Suit: &suit}
	case roll < r.RaiseProb+r.CoincheProb:
		return game.BidAction{Coinche: true}
	case roll < r.RaiseProb+r.CoincheProb+r.SurcoincheProb:
		return game.BidAction{Surcoinche: true}
	default:
		return game.BidAction{}
	}
}

// ProposeCard picks a random occupied slot; the trick and play memory are
// there for smarter strategies and ignored here.
func (r *Random) ProposeCard(hand *game.Hand, _ *game.Trick, _ []game.PlayRecord) int {
	for {
		slot := r.rng.Intn(game.HandSize)
		if _, ok := hand.Card(slot); ok {
			return slot
		}
	}
}
