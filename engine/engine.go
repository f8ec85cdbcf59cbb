package engine

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/rs/zerolog/log"
	"golang.org/x/exp/rand"

	"coinche/game"
	"coinche/player"
)

const seats = 4

// ErrConfig marks an impossible match configuration.
var ErrConfig = errors.New("invalid match configuration")

// Config fixes a match before it starts; it is immutable afterwards.
type Config struct {
	// TargetScore ends the match once a team's score reaches it.
	TargetScore int
	// Bots is the number of automated seats, 0 to 4. Bot seats are sampled
	// at random so humans face a varied table.
	Bots int
	// Seed drives every shuffle, cut, deal split and bot decision.
	Seed uint64

	// In and Out carry human prompts; they default to stdin/stdout.
	In  io.Reader
	Out io.Writer

	// Sink, when set, receives the engine's event lines per transition, on
	// top of the structured log.
	Sink func(events []string)
}

func (c Config) validate() error {
	if c.TargetScore <= 0 {
		return fmt.Errorf("target score %d: %w", c.TargetScore, ErrConfig)
	}
	if c.Bots < 0 || c.Bots > seats {
		return fmt.Errorf("%d bots for %d seats: %w", c.Bots, seats, ErrConfig)
	}
	return nil
}

// DecisionProvider supplies a seat's decisions. The engine only ever depends
// on this capability, never on what sits behind it.
type DecisionProvider interface {
	ProposeBid(ledger *game.Ledger) game.BidAction
	ProposeCard(hand *game.Hand, trick *game.Trick, memory []game.PlayRecord) int
}

// Engine drives a match: it pumps one decision at a time from the active
// seat's provider into the state machine until the match ends.
type Engine struct {
	Match *game.Match
	Seats [seats]DecisionProvider

	sink func([]string)
}

// New builds a match from the configuration: four seats named player1..4,
// seat i on team i%2, bot seats sampled at random, humans prompted on the
// configured streams. Round records go to rec when it is non-nil.
func New(cfg Config, rec game.Recorder) (*Engine, error) {
	if err := cfg.validate(); err != nil {
		return nil, err
	}
	rng := rand.New(rand.NewSource(cfg.Seed))

	in := cfg.In
	if in == nil {
		in = os.Stdin
	}
	out := cfg.Out
	if out == nil {
		out = os.Stdout
	}

	bots := make(map[int]bool, cfg.Bots)
	for _, seat := range rng.Perm(seats)[:cfg.Bots] {
		bots[seat] = true
	}

	teams := [2]*game.Team{{Name: "team1"}, {Name: "team2"}}
	var players [seats]*game.Player
	var providers [seats]DecisionProvider
	for i := range players {
		kind := game.Human
		providers[i] = player.NewConsole(in, out)
		if bots[i] {
			kind = game.Automated
			providers[i] = player.NewRandom(rng)
		}
		players[i] = &game.Player{
			Name: fmt.Sprintf("player%d", i+1),
			Team: i % 2,
			Kind: kind,
			Hand: game.NewHand(),
		}
	}

	m := game.NewMatch(players, teams, cfg.TargetScore, rng)
	m.Recorder = rec
	return &Engine{Match: m, Seats: providers, sink: cfg.Sink}, nil
}

// maxRetries bounds re-prompting of a single decision. A seat always has at
// least one legal action, so exhausting it means a broken provider.
const maxRetries = 100000

// Run executes the match loop until a team reaches the target score and
// returns the winning team's name. Invalid proposals re-prompt the same
// seat; any other error aborts the match.
func (e *Engine) Run() (string, error) {
	m := e.Match
	retries := 0
	for {
		switch m.Phase {
		case game.BiddingReady:
			events, err := m.StartBidding()
			if err != nil {
				return "", err
			}
			e.emit(events)

		case game.Bidding:
			seat := m.Current
			action := e.Seats[seat].ProposeBid(m.Ledger)
			events, err := m.Bid(action)
			if errors.Is(err, game.ErrInvalidBid) {
				e.emit([]string{"Your bid is invalid, please try again"})
				if retries++; retries > maxRetries {
					return "", fmt.Errorf("seat %d keeps proposing invalid bids: %w", seat, err)
				}
				continue
			}
			if err != nil {
				return "", err
			}
			retries = 0
			e.emit(events)

		case game.PlayingReady:
			events, err := m.StartPlaying()
			if err != nil {
				return "", err
			}
			e.emit(events)

		case game.Playing:
			seat := m.Current
			slot := e.Seats[seat].ProposeCard(m.Players[seat].Hand, m.Trick, m.PlayHistory())
			events, err := m.Play(slot)
			if errors.Is(err, game.ErrInvalidCard) {
				e.emit([]string{"Your card is invalid, please try again"})
				if retries++; retries > maxRetries {
					return "", fmt.Errorf("seat %d keeps proposing invalid cards: %w", seat, err)
				}
				continue
			}
			if err != nil {
				return "", err
			}
			retries = 0
			e.emit(events)

		case game.BetweenRounds:
			if err := m.BetweenRounds(); err != nil {
				return "", err
			}

		case game.Ended:
			winner := m.Winner()
			log.Info().Msgf("match ended, %s wins", winner)
			return winner, nil

		default:
			return "", fmt.Errorf("unknown phase %v", m.Phase)
		}
	}
}

func (e *Engine) emit(events []string) {
	for _, ev := range events {
		log.Info().Msg(ev)
	}
	if e.sink != nil {
		e.sink(events)
	}
}
