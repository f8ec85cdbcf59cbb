package game

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func handOf(cards ...Card) *Hand {
	h := NewHand()
	h.Add(cards)
	return h
}

func TestLegalPlay(t *testing.T) {
	trump := Spades

	t.Run("opening a trick accepts any card", func(t *testing.T) {
		h := handOf(Card{Suit: Hearts, Rank: Seven}, Card{Suit: trump, Rank: Jack})
		require.True(t, LegalPlay(Card{Suit: Hearts, Rank: Seven}, h, 0, &Trick{}, trump))
		require.True(t, LegalPlay(Card{Suit: trump, Rank: Jack}, h, 0, &Trick{}, trump))
	})

	t.Run("must follow the asked suit when able", func(t *testing.T) {
		tr := &Trick{}
		tr.Add(0, Card{Suit: Hearts, Rank: King})
		h := handOf(Card{Suit: Hearts, Rank: Seven}, Card{Suit: Clubs, Rank: Ace})

		require.True(t, LegalPlay(Card{Suit: Hearts, Rank: Seven}, h, 1, tr, trump))
		require.False(t, LegalPlay(Card{Suit: Clubs, Rank: Ace}, h, 1, tr, trump))
	})

	t.Run("a trump must outrank the trumps already played when it can", func(t *testing.T) {
		tr := &Trick{}
		tr.Add(0, Card{Suit: trump, Rank: Nine})
		h := handOf(Card{Suit: trump, Rank: Jack}, Card{Suit: trump, Rank: Seven})

		require.True(t, LegalPlay(Card{Suit: trump, Rank: Jack}, h, 1, tr, trump))
		require.False(t, LegalPlay(Card{Suit: trump, Rank: Seven}, h, 1, tr, trump),
			"expected the 7 of trump to be barred while the jack can overcall")
	})

	t.Run("an undercut is fine when no held trump can overcall", func(t *testing.T) {
		tr := &Trick{}
		tr.Add(0, Card{Suit: trump, Rank: Jack})
		h := handOf(Card{Suit: trump, Rank: Seven}, Card{Suit: trump, Rank: Eight})

		require.True(t, LegalPlay(Card{Suit: trump, Rank: Seven}, h, 1, tr, trump))
	})

	t.Run("void in the asked suit must trump", func(t *testing.T) {
		tr := &Trick{}
		tr.Add(0, Card{Suit: Hearts, Rank: King})
		h := handOf(Card{Suit: trump, Rank: Eight}, Card{Suit: Clubs, Rank: Ace})

		require.True(t, LegalPlay(Card{Suit: trump, Rank: Eight}, h, 1, tr, trump))
		require.False(t, LegalPlay(Card{Suit: Clubs, Rank: Ace}, h, 1, tr, trump))
	})

	t.Run("no trump obligation while the partner holds the trick", func(t *testing.T) {
		tr := &Trick{}
		tr.Add(0, Card{Suit: Hearts, Rank: Ace})
		tr.Add(1, Card{Suit: Hearts, Rank: Seven})
		h := handOf(Card{Suit: trump, Rank: Eight}, Card{Suit: Clubs, Rank: Ace})

		// Seat 2's partner is seat 0, currently winning with the ace
		require.True(t, LegalPlay(Card{Suit: Clubs, Rank: Ace}, h, 2, tr, trump))
		// Seat 3's partner is seat 1, currently losing
		require.False(t, LegalPlay(Card{Suit: Clubs, Rank: Ace}, h, 3, tr, trump))
	})

	t.Run("void in both suits discards freely", func(t *testing.T) {
		tr := &Trick{}
		tr.Add(0, Card{Suit: Hearts, Rank: King})
		h := handOf(Card{Suit: Clubs, Rank: Ace}, Card{Suit: Diamonds, Rank: Seven})

		require.True(t, LegalPlay(Card{Suit: Clubs, Rank: Ace}, h, 1, tr, trump))
		require.True(t, LegalPlay(Card{Suit: Diamonds, Rank: Seven}, h, 1, tr, trump))
	})
}

func TestPartnerOf(t *testing.T) {
	require.Equal(t, 2, PartnerOf(0))
	require.Equal(t, 3, PartnerOf(1))
	require.Equal(t, 0, PartnerOf(2))
	require.Equal(t, 1, PartnerOf(3))
}
