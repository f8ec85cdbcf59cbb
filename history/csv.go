package history

import (
	"encoding/csv"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"time"

	"github.com/rs/zerolog/log"

	"coinche/game"
)

// CSVWriter persists every round as three CSV files (bids, plays, result)
// under a timestamped directory, one trio per round in match order.
type CSVWriter struct {
	baseDir string
	round   int
}

// NewCSVWriter creates a subfolder of dir named by the current timestamp and
// returns a recorder writing into it.
func NewCSVWriter(dir string) (*CSVWriter, error) {
	timestamp := time.Now().UTC().Format(time.RFC3339)
	baseDir := filepath.Join(dir, timestamp)
	if err := os.MkdirAll(baseDir, 0755); err != nil {
		return nil, fmt.Errorf("failed to create directory: %w", err)
	}
	return &CSVWriter{baseDir: baseDir}, nil
}

// BaseDir returns the directory the round files are written into.
func (w *CSVWriter) BaseDir() string { return w.baseDir }

// RecordRound writes the round's bid, play and result files. Failures are
// logged and swallowed: history must never interrupt a running match.
func (w *CSVWriter) RecordRound(r game.RoundRecord) {
	if err := w.writeBids(r.Bids); err != nil {
		log.Warn().Err(err).Msg("failed to record round bids")
	}
	if err := w.writePlays(r.Plays); err != nil {
		log.Warn().Err(err).Msg("failed to record round plays")
	}
	if err := w.writeResult(r.Outcome); err != nil {
		log.Warn().Err(err).Msg("failed to record round result")
	}
	w.round++
}

func (w *CSVWriter) writeBids(bids []game.BidRecord) error {
	rows := [][]string{{"player_index", "team_index", "bid_value", "bid_suit", "coinche", "surcoinche"}}
	for _, b := range bids {
		suit := ""
		if b.Suit != nil {
			suit = b.Suit.String()
		}
		rows = append(rows, []string{
			strconv.Itoa(b.Player),
			strconv.Itoa(b.Team),
			strconv.Itoa(b.Value),
			suit,
			strconv.FormatBool(b.Coinche),
			strconv.FormatBool(b.Surcoinche),
		})
	}
	return w.writeFile("bid", rows)
}

func (w *CSVWriter) writePlays(plays []game.PlayRecord) error {
	rows := [][]string{{"player_index", "card_rank", "card_suit"}}
	for _, p := range plays {
		rows = append(rows, []string{
			strconv.Itoa(p.Player),
			p.Rank.String(),
			p.Suit.String(),
		})
	}
	return w.writeFile("play", rows)
}

func (w *CSVWriter) writeResult(outcome [2]int) error {
	rows := [][]string{{"team_index", "points"}}
	for team, pts := range outcome {
		rows = append(rows, []string{strconv.Itoa(team), strconv.Itoa(pts)})
	}
	return w.writeFile("result", rows)
}

func (w *CSVWriter) writeFile(kind string, rows [][]string) error {
	path := filepath.Join(w.baseDir, fmt.Sprintf("%s_%04d.csv", kind, w.round))
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create %s file: %w", kind, err)
	}
	defer f.Close()

	writer := csv.NewWriter(f)
	defer writer.Flush()
	for _, row := range rows {
		if err := writer.Write(row); err != nil {
			return fmt.Errorf("failed to write %s row: %w", kind, err)
		}
	}
	return nil
}
