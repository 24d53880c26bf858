package players

import (
	"fmt"
	"io"
	"strings"

	"github.com/dekarrin/playingsim/deck"
	"github.com/dekarrin/playingsim/klondike"
)

func SendText(w io.Writer, text string, a ...interface{}) {
	fmt.Fprintf(w, text, a...)
}

// BuildBoardText renders a position for the terminal. Face-down cards show
// as "?", piles read left to right from deepest card to playable top.
func BuildBoardText(s klondike.State) string {
	var b strings.Builder

	b.WriteString("\nFoundations:")
	for _, suit := range deck.Suits {
		code := "---"
		if top, ok := s.Foundations[suit].Top(); ok {
			code = top.String()
		}
		fmt.Fprintf(&b, "  %c:%s", suit.String()[0], code)
	}
	b.WriteString("\n")

	fmt.Fprintf(&b, "Stock: %d cards, pass %d", len(s.Stock), s.CurrentPass)
	if s.PassLimit > 0 {
		fmt.Fprintf(&b, " of %d", s.PassLimit)
	}
	b.WriteString("\n")

	b.WriteString("Hand:")
	hand := s.Hand()
	if len(hand) == 0 {
		b.WriteString(" (empty)")
	}
	for _, c := range hand {
		b.WriteString(" " + c.String())
	}
	b.WriteString("\n\n")

	for i, p := range s.Tableau {
		fmt.Fprintf(&b, "Pile %d:", i+1)
		for j := 0; j < p.HiddenCount(); j++ {
			b.WriteString(" ?")
		}
		shown := p.Shown()
		for j := len(shown) - 1; j >= 0; j-- {
			b.WriteString(" " + shown[j].String())
		}
		b.WriteString("\n")
	}

	return b.String()
}
