// Package display renders round state to the terminal and prompts the
// human for bets and decisions. The game engine never touches text I/O
// itself; it talks to this package through the game.Display and game.Agent
// interfaces.
package display

import (
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/lox/blackjack-cli/internal/game"
)

// Styles contains styling for the console renderer
type Styles struct {
	Prompt    lipgloss.Style
	Info      lipgloss.Style
	Error     lipgloss.Style
	Separator lipgloss.Style
	Name      lipgloss.Style
	Dealer    lipgloss.Style
	RedCard   lipgloss.Style
	BlackCard lipgloss.Style
	Hidden    lipgloss.Style
	Win       lipgloss.Style
	Loss      lipgloss.Style
	Push      lipgloss.Style
}

// NewStyles creates the default style set
func NewStyles() *Styles {
	return &Styles{
		Prompt:    lipgloss.NewStyle().Foreground(lipgloss.Color("#04B575")).Bold(true),
		Info:      lipgloss.NewStyle().Foreground(lipgloss.Color("#626262")),
		Error:     lipgloss.NewStyle().Foreground(lipgloss.Color("#FF6B6B")).Bold(true),
		Separator: lipgloss.NewStyle().Foreground(lipgloss.Color("#626262")),
		Name:      lipgloss.NewStyle().Foreground(lipgloss.Color("#74B9FF")),
		Dealer:    lipgloss.NewStyle().Foreground(lipgloss.Color("#FFD700")).Bold(true),
		RedCard:   lipgloss.NewStyle().Foreground(lipgloss.Color("#FF6B6B")).Bold(true),
		BlackCard: lipgloss.NewStyle().Foreground(lipgloss.Color("#FAFAFA")).Bold(true),
		Hidden:    lipgloss.NewStyle().Foreground(lipgloss.Color("#626262")).Italic(true),
		Win:       lipgloss.NewStyle().Foreground(lipgloss.Color("#96CEB4")).Bold(true),
		Loss:      lipgloss.NewStyle().Foreground(lipgloss.Color("#FF6B6B")),
		Push:      lipgloss.NewStyle().Foreground(lipgloss.Color("#626262")),
	}
}

// Console renders round state as styled text, implementing game.Display
type Console struct {
	out    io.Writer
	styles *Styles
}

// NewConsole creates a console renderer writing to out
func NewConsole(out io.Writer) *Console {
	return &Console{out: out, styles: NewStyles()}
}

// ShowTable renders every seat and the dealer between separator lines
func (c *Console) ShowTable(r *game.Round) {
	sep := c.styles.Separator.Render(strings.Repeat("-", 60))
	fmt.Fprintln(c.out, sep)
	for _, p := range r.Players() {
		fmt.Fprintln(c.out, c.playerLine(p))
	}
	fmt.Fprintln(c.out, c.playerLine(r.Dealer()))
	fmt.Fprintln(c.out, sep)
}

// ShowPlayer renders a single seat
func (c *Console) ShowPlayer(p *game.Player) {
	fmt.Fprintln(c.out, c.playerLine(p))
}

// ShowSettlement renders the per-player outcomes and the house net
func (c *Console) ShowSettlement(results []game.Result, houseWin int) {
	fmt.Fprintln(c.out, "Wins:")
	for _, res := range results {
		style := c.styles.Push
		switch {
		case res.Win > 0:
			style = c.styles.Win
		case res.Win < 0:
			style = c.styles.Loss
		}
		fmt.Fprintf(c.out, "%-25s: %12s => %s\n",
			res.Player.Name, res.Outcome, style.Render(fmt.Sprintf("%+d", res.Win)))
	}
	houseStyle := c.styles.Win
	if houseWin < 0 {
		houseStyle = c.styles.Loss
	}
	fmt.Fprintf(c.out, "%-25s: %12s => %s\n",
		"House", "", houseStyle.Render(fmt.Sprintf("%+d", houseWin)))
}

func (c *Console) playerLine(p *game.Player) string {
	hand := c.formatHand(p.Hand)
	if p.Role == game.RoleDealer {
		return fmt.Sprintf("%s: Hand=%s", c.styles.Dealer.Render(fmt.Sprintf("%-25s", p.Name)), hand)
	}
	return fmt.Sprintf("%s: Hand=%s Bet=%-5d Choice=%s",
		c.styles.Name.Render(fmt.Sprintf("%-25s", p.Name)), hand, p.Bet, p.Action)
}

// formatHand colors each card, concealing the hidden one, and appends the
// value with blackjack/bust/soft tags. A hand with a hidden card shows no
// value at all.
func (c *Console) formatHand(h *game.Hand) string {
	parts := make([]string, 0, h.Len())
	for i, card := range h.Cards() {
		if i == h.HiddenIndex() {
			parts = append(parts, c.styles.Hidden.Render("(hidden)"))
			continue
		}
		if card.IsRed() {
			parts = append(parts, c.styles.RedCard.Render(card.String()))
		} else {
			parts = append(parts, c.styles.BlackCard.Render(card.String()))
		}
	}
	cards := "[" + strings.Join(parts, ", ") + "]"

	if h.HiddenIndex() != game.HiddenNone {
		return cards + " Value=(hidden)"
	}

	tag := ""
	switch {
	case h.IsBlackjack():
		tag = c.styles.Win.Render(" (BLACKJACK)")
	case h.IsBust():
		tag = c.styles.Error.Render(" (BUST)")
	case h.IsSoft():
		tag = c.styles.Info.Render(" (SOFT)")
	}
	return fmt.Sprintf("%s Value=%d%s", cards, h.BestValue(), tag)
}
