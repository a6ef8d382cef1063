package command

import (
	"fmt"
	"io"
	"strings"

	"github.com/wizbiz/wizardduel/internal/actor"
	"github.com/wizbiz/wizardduel/internal/battle"
)

// RenderActor formats one wizard as a single status line, e.g.
// "Merlin     HP  80/100  Mana  4  Shield 10  [Burn(2)]".
func RenderActor(s actor.Snapshot) string {
	line := fmt.Sprintf("%-12s HP %3d/%-3d  Mana %2d", s.Name, s.HP, s.MaxHP, s.Mana)
	if s.Shield > 0 {
		line += fmt.Sprintf("  Shield %d", s.Shield)
	}
	if len(s.Effects) > 0 {
		names := make([]string, 0, len(s.Effects))
		for _, e := range s.Effects {
			names = append(names, e.String())
		}
		line += "  [" + strings.Join(names, ", ") + "]"
	}
	return line
}

// RenderHand lists the cards in a hand with their costs.
func RenderHand(s actor.Snapshot) string {
	if len(s.Hand) == 0 {
		return "Your hand is empty."
	}
	cards := make([]string, 0, len(s.Hand))
	for _, c := range s.Hand {
		cards = append(cards, fmt.Sprintf("%s (%d)", c.Name, c.ManaCost))
	}
	return "Hand: " + strings.Join(cards, ", ")
}

// RenderStatus formats both wizards and the progress line.
func RenderStatus(c *battle.Controller) string {
	var sb strings.Builder
	sb.WriteString(RenderActor(c.Player()))
	sb.WriteString("\n")
	sb.WriteString(RenderActor(c.Enemy()))
	sb.WriteString("\n")
	sb.WriteString(fmt.Sprintf("Turn %d | Difficulty %d | Win streak %d | Deck %d",
		c.Turn(), c.Difficulty(), c.WinStreak(), c.DeckRemaining()))
	return sb.String()
}

// Printer is a battle observer that writes log lines as they happen and a
// status block after each intent.
type Printer struct {
	w    io.Writer
	ctrl *battle.Controller
}

// NewPrinter returns an observer writing to w. Register it with
// ctrl.AddObserver.
func NewPrinter(w io.Writer, ctrl *battle.Controller) *Printer {
	return &Printer{w: w, ctrl: ctrl}
}

func (p *Printer) Log(line string) {
	fmt.Fprintln(p.w, line)
}

func (p *Printer) Update() {
	fmt.Fprintln(p.w)
	fmt.Fprintln(p.w, RenderStatus(p.ctrl))
	switch p.ctrl.State() {
	case battle.StatePlayerTurn:
		fmt.Fprintln(p.w, RenderHand(p.ctrl.Player()))
	case battle.StateGameOver:
		fmt.Fprintln(p.w, "Type 'continue' to face the next enemy, 'new' to start over, or 'quit'.")
	}
}
