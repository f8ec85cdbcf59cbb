package history

import "coinche/game"

// Memory keeps round records in order, in process. Useful on its own for
// tests and as the staging area other sinks drain.
type Memory struct {
	Rounds []game.RoundRecord
}

func (m *Memory) RecordRound(r game.RoundRecord) {
	m.Rounds = append(m.Rounds, r)
}
