package game

import (
	"fmt"

	"golang.org/x/exp/rand"
)

// Phase is the state of the round state machine.
type Phase int

const (
	BiddingReady Phase = iota
	Bidding
	PlayingReady
	Playing
	BetweenRounds
	Ended
)

func (p Phase) String() string {
	switch p {
	case BiddingReady:
		return "bidding ready"
	case Bidding:
		return "bidding"
	case PlayingReady:
		return "playing ready"
	case Playing:
		return "playing"
	case BetweenRounds:
		return "between rounds"
	case Ended:
		return "ended"
	default:
		return "?"
	}
}

const tricksPerRound = 8

// The three-pass deal compositions: one pass delivers 2 cards, the other two
// deliver 3, which of them is short varies per round.
var dealPatterns = [3][3]int{{2, 3, 3}, {3, 2, 3}, {3, 3, 2}}

// Match is the round state machine. It owns every card container, the bid
// ledger and the contract, and is driven one action at a time: one Bid or
// one Play call per decision of the active seat.
type Match struct {
	Teams   [2]*Team
	Players [4]*Player
	Target  int

	Phase    Phase
	Current  int
	Starting int

	Ledger   *Ledger
	Contract *Contract

	Deck  *Deck
	Piles [2]*Pile
	Trick *Trick

	TrickCount   int
	TrickWinners []int

	// Recorder, when set, receives a RoundRecord at every round conclusion
	// or void.
	Recorder Recorder

	rng     *rand.Rand
	bidder  int
	plays   []PlayRecord
	pattern *[3]int
	winner  int
}

// NewMatch shuffles, deals and returns a match ready for its first bidding
// phase. Seat i belongs to team i%2. All randomness (shuffle, cut, deal
// split) is drawn from rng.
func NewMatch(players [4]*Player, teams [2]*Team, target int, rng *rand.Rand) *Match {
	m := &Match{
		Teams:   teams,
		Players: players,
		Target:  target,
		Deck:    NewDeck(),
		Piles:   [2]*Pile{{}, {}},
		Trick:   &Trick{},
		rng:     rng,
		bidder:  -1,
		winner:  -1,
	}
	m.Deck.Shuffle(rng)
	m.deal()
	m.Phase = BiddingReady
	return m
}

// SetDealPattern pins the per-round deal composition instead of picking one
// at random. Intended for deterministic tests; any permutation of {2,3,3}
// is accepted.
func (m *Match) SetDealPattern(pattern [3]int) {
	m.pattern = &pattern
}

func (m *Match) deal() {
	pattern := dealPatterns[m.rng.Intn(len(dealPatterns))]
	if m.pattern != nil {
		pattern = *m.pattern
	}
	for _, n := range pattern {
		for _, p := range m.Players {
			cards, err := m.Deck.Deal(n)
			if err != nil {
				// The 32 cards are always recombined before a deal.
				panic(err)
			}
			p.Hand.Add(cards)
		}
	}
}

// Winner returns the winning team's name once the match has ended, "" before
// that.
func (m *Match) Winner() string {
	if m.winner < 0 {
		return ""
	}
	return m.Teams[m.winner].Name
}

// StartBidding resets the round's bidding state and prompts the starting
// player.
func (m *Match) StartBidding() ([]string, error) {
	if m.Phase != BiddingReady {
		return nil, PhaseError("not ready for bidding")
	}
	m.Ledger = &Ledger{}
	m.Contract = nil
	m.bidder = -1
	m.Current = m.Starting
	m.Phase = Bidding
	return []string{
		"Starting bidding phase:",
		fmt.Sprintf("%s has to bid", m.Players[m.Current].Name),
	}, nil
}

// Bid applies one bidding action from the active player. An invalid action
// is rejected with ErrInvalidBid and leaves the state untouched so the same
// seat can try again.
//
// Bidding closes when the table comes back around to the current highest
// bidder (a coinche restarts the revolution at the coincher), immediately on
// a surcoinche, or voids the round when all four players pass with no bid.
func (m *Match) Bid(a BidAction) ([]string, error) {
	if m.Phase != Bidding {
		return nil, PhaseError("not in bidding phase")
	}
	seat := m.Current
	actor := m.Players[seat]
	if !m.Ledger.Validate(actor.Team, a) {
		return nil, fmt.Errorf("%s: %w", actor.Name, ErrInvalidBid)
	}
	m.Ledger.Append(seat, actor.Team, a)

	var events []string
	switch {
	case a.Coinche:
		m.Contract.Coinched = true
		m.bidder = seat
		events = append(events, fmt.Sprintf("%s has coinched", actor.Name))
	case a.Surcoinche:
		m.Contract.Surcoinched = true
		events = append(events, fmt.Sprintf("%s has surcoinched", actor.Name))
	case a.Value != 0:
		m.Contract = &Contract{Value: a.Value, Trump: *a.Suit, Team: actor.Team, Bidder: seat}
		m.bidder = seat
		events = append(events, fmt.Sprintf("%s bid: %d of %s", actor.Name, a.Value, *a.Suit))
	default:
		events = append(events, fmt.Sprintf("%s passed", actor.Name))
	}

	m.Current = (m.Current + 1) % len(m.Players)

	if m.bidder == -1 && m.Current == m.Starting {
		// Nobody bid over a full revolution: the round is voided.
		m.collectHands()
		m.record([2]int{})
		m.Phase = BetweenRounds
		return append(events, "This round is cancelled, everyone passed"), nil
	}

	if a.Surcoinche || (m.bidder != -1 && m.Current == m.bidder) {
		m.Contract.Belote = m.belotePoints()
		events = append(events,
			"This round is starting with a contract of",
			fmt.Sprintf("%d of %s for %s", m.Contract.Value, m.Contract.Trump, m.Teams[m.Contract.Team].Name))
		if m.Contract.Coinched {
			events = append(events, "The contract has been coinched")
		}
		if m.Contract.Surcoinched {
			events = append(events, "The contract has been surcoinched")
		}
		m.Phase = PlayingReady
		return events, nil
	}

	return append(events, fmt.Sprintf("%s has to bid", m.Players[m.Current].Name)), nil
}

// belotePoints awards the bonus when one hand of the contract team holds
// both king and queen of trump at contract time.
func (m *Match) belotePoints() int {
	trump := m.Contract.Trump
	for _, p := range m.Players {
		if p.Team != m.Contract.Team {
			continue
		}
		if p.Hand.Has(Card{Suit: trump, Rank: King}) && p.Hand.Has(Card{Suit: trump, Rank: Queen}) {
			return BelotePoints
		}
	}
	return 0
}

// PlayHistory returns the cards played so far this round in play order.
func (m *Match) PlayHistory() []PlayRecord {
	return append([]PlayRecord(nil), m.plays...)
}

// collectHands gathers every remaining hand onto a single pile. Which pile
// does not matter: the deck is rebuilt from both right after.
func (m *Match) collectHands() {
	for _, p := range m.Players {
		m.Piles[0].Add(p.Hand.TakeAll())
	}
}

// StartPlaying resets the trick bookkeeping and prompts the starting player.
func (m *Match) StartPlaying() ([]string, error) {
	if m.Phase != PlayingReady {
		return nil, PhaseError("not ready for playing")
	}
	m.Current = m.Starting
	m.TrickCount = 0
	m.TrickWinners = nil
	m.Trick = &Trick{}
	m.plays = nil
	m.Phase = Playing
	return []string{fmt.Sprintf("%s has to play", m.Players[m.Current].Name)}, nil
}

// Play applies one card play, identified by the active player's hand slot.
// An illegal card is rejected with ErrInvalidCard and leaves the state
// untouched; referencing an empty slot surfaces ErrMalformedHand, which is a
// driver bug rather than a player mistake.
func (m *Match) Play(slot int) ([]string, error) {
	if m.Phase != Playing {
		return nil, PhaseError("not in playing phase")
	}
	seat := m.Current
	actor := m.Players[seat]
	card, ok := actor.Hand.Card(slot)
	if !ok {
		return nil, fmt.Errorf("%s slot %d: %w", actor.Name, slot, ErrMalformedHand)
	}
	if !LegalPlay(card, actor.Hand, seat, m.Trick, m.Contract.Trump) {
		return nil, fmt.Errorf("%s cannot play %s: %w", actor.Name, card, ErrInvalidCard)
	}
	if _, err := actor.Hand.Play(slot); err != nil {
		return nil, err
	}
	m.Trick.Add(seat, card)
	m.plays = append(m.plays, PlayRecord{Player: seat, Rank: card.Rank, Suit: card.Suit})
	events := []string{fmt.Sprintf("%s played a %s", actor.Name, card)}

	m.Current = (m.Current + 1) % len(m.Players)

	if m.Trick.Len() < len(m.Players) {
		return append(events, fmt.Sprintf("%s has to play", m.Players[m.Current].Name)), nil
	}

	winner, pts := m.Trick.Resolve(m.Contract.Trump)
	winTeam := m.Players[winner].Team
	m.TrickWinners = append(m.TrickWinners, winner)
	m.Teams[winTeam].Points += pts
	m.Piles[winTeam].Add(m.Trick.TakeAll())
	m.TrickCount++
	m.Current = winner
	events = append(events, fmt.Sprintf("%s won the trick for %s", m.Players[winner].Name, m.Teams[winTeam].Name))

	if m.TrickCount < tricksPerRound {
		return append(events, fmt.Sprintf("%s has to play", m.Players[m.Current].Name)), nil
	}

	return append(events, m.settleContract()...), nil
}

// settleContract decides the round after the 8th trick: the contract's value
// goes whole to the bidding team on fulfillment and whole to the challengers
// on failure, round points reset either way, and the match ends as soon as a
// team reaches the target score.
func (m *Match) settleContract() []string {
	c := m.Contract
	bidding := m.Teams[c.Team]
	challenger := m.Teams[1-c.Team]
	fulfilled := c.Fulfilled(bidding.Points, challenger.Points, m.TrickWinners)

	var events []string
	var outcome [2]int
	if fulfilled {
		bidding.Score += c.Value
		outcome[c.Team] = c.Value
		outcome[1-c.Team] = -c.Value
		events = append(events,
			"The contract has been fulfilled",
			fmt.Sprintf("%d points won by the team %s", c.Value, bidding.Name))
	} else {
		challenger.Score += c.Value
		outcome[1-c.Team] = c.Value
		outcome[c.Team] = -c.Value
		events = append(events,
			"The contract has been failed",
			fmt.Sprintf("%d points won by the team %s", c.Value, challenger.Name))
	}
	m.record(outcome)

	for _, t := range m.Teams {
		t.Points = 0
	}

	// With two teams and a single score increment per round, at most one
	// team can cross the target here; ties are broken by team index anyway.
	for i, t := range m.Teams {
		if t.Score >= m.Target {
			events = append(events, fmt.Sprintf("Team %s wins with a score of %d!", t.Name, t.Score))
			m.winner = i
			m.Phase = Ended
			break
		}
	}
	if m.Phase != Ended {
		events = append(events, "End of round, preparing next round")
		m.Phase = BetweenRounds
	}
	return events
}

func (m *Match) record(outcome [2]int) {
	if m.Recorder == nil {
		return
	}
	m.Recorder.RecordRound(RoundRecord{
		Bids:    m.Ledger.Records(),
		Plays:   append([]PlayRecord(nil), m.plays...),
		Outcome: outcome,
	})
	m.plays = nil
}

// BetweenRounds rotates the starting seat, rebuilds the deck from both
// discard piles, cuts it and redeals for the next round.
func (m *Match) BetweenRounds() error {
	if m.Phase != BetweenRounds {
		return PhaseError("not between rounds")
	}
	m.Starting = (m.Starting + 1) % len(m.Players)
	for _, pile := range m.Piles {
		m.Deck.Add(pile.TakeAll())
	}
	m.Deck.Cut(m.rng)
	m.deal()
	m.Phase = BiddingReady
	return nil
}
