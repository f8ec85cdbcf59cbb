package game

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func suitPtr(s Suit) *Suit { return &s }

func TestValidBidValue(t *testing.T) {
	for _, v := range []int{80, 90, 100, 110, 120, 130, 140, 150, 160, 250, 500} {
		require.True(t, ValidBidValue(v), "expected %d to be on the bid scale", v)
	}
	for _, v := range []int{0, 70, 85, 170, 200, 300, 600} {
		require.False(t, ValidBidValue(v), "expected %d to be off the bid scale", v)
	}
}

func TestLedgerValidateRaise(t *testing.T) {
	t.Run("first raise needs value and suit on the scale", func(t *testing.T) {
		l := &Ledger{}
		require.True(t, l.Validate(0, BidAction{Value: 80, Suit: suitPtr(Hearts)}))
		require.False(t, l.Validate(0, BidAction{Value: 80}), "expected a raise without a suit to be rejected")
		require.False(t, l.Validate(0, BidAction{Suit: suitPtr(Hearts)}), "expected a suit without a value to be rejected")
		require.False(t, l.Validate(0, BidAction{Value: 85, Suit: suitPtr(Hearts)}))
	})

	t.Run("raises must strictly exceed the standing bid", func(t *testing.T) {
		l := &Ledger{}
		l.Append(0, 0, BidAction{Value: 100, Suit: suitPtr(Spades)})
		require.False(t, l.Validate(1, BidAction{Value: 100, Suit: suitPtr(Hearts)}))
		require.False(t, l.Validate(1, BidAction{Value: 90, Suit: suitPtr(Hearts)}))
		require.True(t, l.Validate(1, BidAction{Value: 110, Suit: suitPtr(Hearts)}))
		require.True(t, l.Validate(1, BidAction{Value: Capot, Suit: suitPtr(Hearts)}))
		require.True(t, l.Validate(1, BidAction{Value: Generale, Suit: suitPtr(Hearts)}))
	})

	t.Run("a team may outbid itself", func(t *testing.T) {
		l := &Ledger{}
		l.Append(0, 0, BidAction{Value: 80, Suit: suitPtr(Spades)})
		require.True(t, l.Validate(0, BidAction{Value: 90, Suit: suitPtr(Clubs)}))
	})
}

func TestLedgerValidateCoinche(t *testing.T) {
	t.Run("needs a standing bid by the other team", func(t *testing.T) {
		l := &Ledger{}
		require.False(t, l.Validate(1, BidAction{Coinche: true}), "expected no coinche without a bid")

		l.Append(0, 0, BidAction{Value: 90, Suit: suitPtr(Hearts)})
		require.False(t, l.Validate(0, BidAction{Coinche: true}), "expected no coinche of the own team's bid")
		require.True(t, l.Validate(1, BidAction{Coinche: true}))
	})

	t.Run("only once per round", func(t *testing.T) {
		l := &Ledger{}
		l.Append(0, 0, BidAction{Value: 90, Suit: suitPtr(Hearts)})
		l.Append(1, 1, BidAction{Coinche: true})
		require.False(t, l.Validate(1, BidAction{Coinche: true}))
		require.False(t, l.Validate(3, BidAction{Coinche: true}))
	})

	t.Run("carries nothing else", func(t *testing.T) {
		l := &Ledger{}
		l.Append(0, 0, BidAction{Value: 90, Suit: suitPtr(Hearts)})
		require.False(t, l.Validate(1, BidAction{Coinche: true, Value: 100, Suit: suitPtr(Clubs)}))
		require.False(t, l.Validate(1, BidAction{Coinche: true, Surcoinche: true}))
	})
}

func TestLedgerValidateSurcoinche(t *testing.T) {
	t.Run("needs a standing coinche against the acting team", func(t *testing.T) {
		l := &Ledger{}
		l.Append(0, 0, BidAction{Value: 90, Suit: suitPtr(Hearts)})
		require.False(t, l.Validate(0, BidAction{Surcoinche: true}), "expected no surcoinche before a coinche")

		l.Append(1, 1, BidAction{Coinche: true})
		require.True(t, l.Validate(0, BidAction{Surcoinche: true}))
		require.True(t, l.Validate(2, BidAction{Surcoinche: true}), "expected the bidder's partner to be allowed too")
		require.False(t, l.Validate(1, BidAction{Surcoinche: true}), "expected the coinching team to be barred")
	})

	t.Run("only once per round", func(t *testing.T) {
		l := &Ledger{}
		l.Append(0, 0, BidAction{Value: 90, Suit: suitPtr(Hearts)})
		l.Append(1, 1, BidAction{Coinche: true})
		l.Append(2, 0, BidAction{Surcoinche: true})
		require.False(t, l.Validate(0, BidAction{Surcoinche: true}))
	})
}

func TestLedgerValidatePass(t *testing.T) {
	l := &Ledger{}
	require.True(t, l.Validate(0, BidAction{}), "expected a pass to always be legal")
	l.Append(0, 0, BidAction{Value: Generale, Suit: suitPtr(Hearts)})
	require.True(t, l.Validate(1, BidAction{}))
}

func TestLedgerQueries(t *testing.T) {
	l := &Ledger{}
	require.Equal(t, 0, l.HighestBid())
	_, found := l.HighestBidTeam()
	require.False(t, found)

	l.Append(0, 0, BidAction{})
	l.Append(1, 1, BidAction{Value: 80, Suit: suitPtr(Hearts)})
	l.Append(2, 0, BidAction{Value: 110, Suit: suitPtr(Clubs)})
	l.Append(3, 1, BidAction{Coinche: true})

	require.Equal(t, 110, l.HighestBid())
	team, found := l.HighestBidTeam()
	require.True(t, found)
	require.Equal(t, 0, team)
	require.True(t, l.Coinched())
	require.False(t, l.Surcoinched())
	require.Equal(t, 4, l.Len())

	records := l.Records()
	require.Len(t, records, 4)
	require.Equal(t, BidRecord{Player: 2, Team: 0, Value: 110, Suit: records[2].Suit}, records[2])
	require.Equal(t, Clubs, *records[2].Suit)
}

func TestBidValues(t *testing.T) {
	require.Equal(t, []int{80, 90, 100, 110, 120, 130, 140, 150, 160, 250, 500}, BidValues())
}
