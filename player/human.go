package player

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"

	"dominion/game"
)

// Human asks for choices on a text terminal. In simulations and once the
// input ends, its fallback decides instead.
type Human struct {
	game.NopHooks
	name     string
	in       *bufio.Scanner
	out      io.Writer
	fallback game.Player
}

func NewHuman(name string, in io.Reader, out io.Writer, fallback game.Player) *Human {
	return &Human{
		name:     name,
		in:       bufio.NewScanner(in),
		out:      out,
		fallback: fallback,
	}
}

func (h *Human) Name() string { return h.name }

func (h *Human) Fallback() game.Player { return h.fallback }

func (h *Human) MakeDecision(d game.Decision) *game.Game {
	state := d.State()
	fmt.Fprintln(h.out, cardList(state.Hand))
	fmt.Fprintf(h.out, "Deck: %d cards\n", state.DeckSize())
	fmt.Fprintf(h.out, "VP: %d\n", state.Score())
	fmt.Fprintln(h.out, d)

	switch d := d.(type) {
	case game.SingleDecision:
		card, ok := h.ask(d.Choices())
		if !ok {
			return h.fallback.MakeDecision(d)
		}
		return d.Choose(card)
	case game.MultiDecision:
		var chosen []*game.Card
		for {
			remaining := d.Remaining(chosen)
			if len(remaining) == 1 && remaining[0] == nil {
				break
			}
			if len(chosen) > 0 {
				fmt.Fprintf(h.out, "Chosen so far: %s\n", cardList(chosen))
			}
			card, ok := h.ask(remaining)
			if !ok {
				return h.fallback.MakeDecision(d)
			}
			if card == nil {
				break
			}
			chosen = append(chosen, card)
		}
		return d.Choose(chosen)
	default:
		panic("unexpected decision")
	}
}

// ask prompts until a valid index is entered. It fails when the input ends.
func (h *Human) ask(choices []*game.Card) (*game.Card, bool) {
	for {
		for i, c := range choices {
			fmt.Fprintf(h.out, "\t[%d] %s\n", i, c)
		}
		fmt.Fprint(h.out, "Your choice: ")
		if !h.in.Scan() {
			fmt.Fprintln(h.out)
			return nil, false
		}
		i, err := strconv.Atoi(strings.TrimSpace(h.in.Text()))
		if err != nil || i < 0 || i >= len(choices) {
			fmt.Fprintln(h.out, "That's not a choice.")
			continue
		}
		return choices[i], true
	}
}

func cardList(cards []*game.Card) string {
	names := make([]string, len(cards))
	for i, c := range cards {
		names[i] = c.String()
	}
	return "[" + strings.Join(names, ", ") + "]"
}
