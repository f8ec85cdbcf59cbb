package game

// Contract bid scale: 80 to 160 in steps of 10, then the two all-or-nothing
// contracts.
const (
	MinBid   = 80
	MaxBid   = 160
	BidStep  = 10
	Capot    = 250
	Generale = 500
)

// BelotePoints is the bonus for holding king and queen of trump in one hand.
const BelotePoints = 20

// BidValues returns the allowed bid scale in ascending order.
func BidValues() []int {
	var out []int
	for v := MinBid; v <= MaxBid; v += BidStep {
		out = append(out, v)
	}
	return append(out, Capot, Generale)
}

func ValidBidValue(v int) bool {
	if v == Capot || v == Generale {
		return true
	}
	return v >= MinBid && v <= MaxBid && (v-MinBid)%BidStep == 0
}

// BidAction is one proposed bidding action. The zero value is a pass; a
// raise carries both a value and a suit.
type BidAction struct {
	Value      int
	Suit       *Suit
	Coinche    bool
	Surcoinche bool
}

// BidRecord is one entry of the bid ledger.
type BidRecord struct {
	Player     int
	Team       int
	Value      int
	Suit       *Suit
	Coinche    bool
	Surcoinche bool
}

// Ledger is the append-only log of bidding actions for the active round.
// Everything the validation rules need is derived by scanning it.
type Ledger struct {
	records []BidRecord
}

func (l *Ledger) Append(player, team int, a BidAction) {
	l.records = append(l.records, BidRecord{
		Player:     player,
		Team:       team,
		Value:      a.Value,
		Suit:       a.Suit,
		Coinche:    a.Coinche,
		Surcoinche: a.Surcoinche,
	})
}

func (l *Ledger) Len() int { return len(l.records) }

func (l *Ledger) Records() []BidRecord {
	return append([]BidRecord(nil), l.records...)
}

// HighestBid returns the highest raised value so far, 0 if nobody raised.
func (l *Ledger) HighestBid() int {
	high := 0
	for _, r := range l.records {
		if r.Value > high {
			high = r.Value
		}
	}
	return high
}

// HighestBidTeam returns the team holding the current highest bid.
func (l *Ledger) HighestBidTeam() (int, bool) {
	high, team, found := 0, 0, false
	for _, r := range l.records {
		if r.Value > high {
			high = r.Value
			team = r.Team
			found = true
		}
	}
	return team, found
}

func (l *Ledger) Coinched() bool {
	for _, r := range l.records {
		if r.Coinche {
			return true
		}
	}
	return false
}

func (l *Ledger) Surcoinched() bool {
	for _, r := range l.records {
		if r.Surcoinche {
			return true
		}
	}
	return false
}

// Validate reports whether the proposed action is legal for the acting team
// given the bids recorded so far. It never mutates the ledger.
//
// A coinche needs a standing bid held by the other team and none before it;
// a surcoinche needs a standing coinche against the acting team and none
// before it; a raise needs a value on the scale strictly above the current
// highest; a pass carries nothing at all.
func (l *Ledger) Validate(team int, a BidAction) bool {
	switch {
	case a.Coinche:
		if a.Value != 0 || a.Suit != nil || a.Surcoinche {
			return false
		}
		if l.HighestBid() == 0 {
			return false
		}
		if t, ok := l.HighestBidTeam(); ok && t == team {
			return false
		}
		return !l.Coinched()
	case a.Surcoinche:
		if a.Value != 0 || a.Suit != nil {
			return false
		}
		if !l.Coinched() {
			return false
		}
		if t, ok := l.HighestBidTeam(); !ok || t != team {
			return false
		}
		return !l.Surcoinched()
	case a.Value != 0 || a.Suit != nil:
		if a.Value == 0 || a.Suit == nil {
			return false
		}
		if !ValidBidValue(a.Value) {
			return false
		}
		return a.Value > l.HighestBid()
	default:
		return true
	}
}
