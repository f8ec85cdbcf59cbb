package player

import (
	"bufio"
	"fmt"
	"io"
	"strconv"

	"coinche/game"
)

// Console is the human decision provider: it prints the hand and reads
// line-oriented answers. Rendering anything fancier is somebody else's job.
type Console struct {
	in  *bufio.Scanner
	out io.Writer
	eof bool
}

func NewConsole(in io.Reader, out io.Writer) *Console {
	return &Console{in: bufio.NewScanner(in), out: out}
}

func (c *Console) prompt(question string) string {
	fmt.Fprint(c.out, question)
	if !c.in.Scan() {
		c.eof = true
		return ""
	}
	return c.in.Text()
}

// ProposeBid asks for a bid value and suit; an empty answer to both offers
// the coinche and surcoinche questions, and declining those is a pass.
func (c *Console) ProposeBid(ledger *game.Ledger) game.BidAction {
	if high := ledger.HighestBid(); high > 0 {
		fmt.Fprintf(c.out, "The current bid is %d\n", high)
	}
	for {
		value := c.prompt("Please enter your bid value, or press Enter: ")
		suit := c.prompt("Please enter your bid suit, or press Enter: ")
		if value == "" && suit == "" {
			if c.prompt("Please enter 1 if you want to coinche, otherwise press Enter: ") == "1" {
				return game.BidAction{Coinche: true}
			}
			if c.prompt("Please enter 1 if you want to surcoinche, otherwise press Enter: ") == "1" {
				return game.BidAction{Surcoinche: true}
			}
			return game.BidAction{}
		}
		v, err := strconv.Atoi(value)
		s, ok := game.ParseSuit(suit)
		if err != nil || !ok {
			fmt.Fprintln(c.out, "Unrecognized bid, please try again")
			continue
		}
		return game.BidAction{Value: v, Suit: &s}
	}
}

// ProposeCard lists the hand with 1-based slot numbers and reads one back.
func (c *Console) ProposeCard(hand *game.Hand, _ *game.Trick, _ []game.PlayRecord) int {
	fmt.Fprintln(c.out, "Your cards are:")
	for slot := 0; slot < game.HandSize; slot++ {
		if card, ok := hand.Card(slot); ok {
			fmt.Fprintf(c.out, "%d -> %s\n", slot+1, card)
		} else {
			fmt.Fprintf(c.out, "%d -> EMPTY\n", slot+1)
		}
	}
	for !c.eof {
		answer := c.prompt("Please enter the position of the card you want to play, starting at 1: ")
		slot, err := strconv.Atoi(answer)
		if err != nil || slot < 1 || slot > game.HandSize {
			fmt.Fprintln(c.out, "Unrecognized position, please try again")
			continue
		}
		if _, ok := hand.Card(slot - 1); !ok {
			fmt.Fprintln(c.out, "That slot is empty, please try again")
			continue
		}
		return slot - 1
	}
	// Input exhausted: fall back to the first card so the match can end
	for slot := 0; slot < game.HandSize; slot++ {
		if _, ok := hand.Card(slot); ok {
			return slot
		}
	}
	return 0
}
