package game

// Team accumulates the match score across rounds and the trick points of the
// round in progress. Points reset to zero every time a contract is decided;
// Score only ever grows.
type Team struct {
	Name   string
	Score  int
	Points int
}

// PlayerKind tags which kind of external collaborator supplies a player's
// decisions.
type PlayerKind int

const (
	Human PlayerKind = iota
	Automated
)

// Player is one seat at the table. Seats 0..3 play clockwise; seat i belongs
// to team i%2, so partners sit across from each other.
type Player struct {
	Name string
	Team int
	Kind PlayerKind
	Hand *Hand
}
