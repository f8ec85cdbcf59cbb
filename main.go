package main

import (
	"flag"
	"os"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"coinche/engine"
	"coinche/game"
	"coinche/history"
)

func main() {
	target := flag.Int("target", 1000, "score a team must reach to win the match")
	bots := flag.Int("bots", 4, "number of automated seats, 0 to 4")
	seed := flag.Uint64("seed", uint64(time.Now().UnixNano()), "seed for shuffling, dealing and bot decisions")
	records := flag.String("records", "", "directory to write per-round CSV records into (disabled when empty)")
	flag.Parse()

	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr})

	var rec game.Recorder
	if *records != "" {
		w, err := history.NewCSVWriter(*records)
		if err != nil {
			log.Fatal().Err(err).Msg("failed to set up round records")
		}
		log.Info().Msgf("writing round records to %s", w.BaseDir())
		rec = w
	}

	e, err := engine.New(engine.Config{
		TargetScore: *target,
		Bots:        *bots,
		Seed:        *seed,
	}, rec)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to set up match")
	}

	winner, err := e.Run()
	if err != nil {
		log.Fatal().Err(err).Msg("match aborted")
	}
	log.Info().Msgf("Winner: %s", winner)
}
