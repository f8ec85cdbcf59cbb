package game

// PlayRecord is one card play of the round's play history.
type PlayRecord struct {
	Player int
	Rank   Rank
	Suit   Suit
}

// RoundRecord is the structured outcome of one round: the full bid history,
// the full play history and the per-team score delta. A voided round carries
// an empty play history and a zero outcome.
type RoundRecord struct {
	Bids    []BidRecord
	Plays   []PlayRecord
	Outcome [2]int
}

// Recorder receives a RoundRecord whenever a round concludes or is voided.
// How records are persisted is the sink's business.
type Recorder interface {
	RecordRound(RoundRecord)
}
