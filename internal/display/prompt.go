package display

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/chzyer/readline"

	"github.com/lox/blackjack-cli/internal/game"
)

// Prompt is a readline-backed game.Agent that asks the human at the
// terminal for bets and decisions. It owns the retry loop: the engine only
// ever sees a bet inside the casino range and an action from the valid set.
type Prompt struct {
	rl     *readline.Instance
	styles *Styles
}

// NewPrompt creates an interactive prompt
func NewPrompt() (*Prompt, error) {
	styles := NewStyles()
	rl, err := readline.NewEx(&readline.Config{
		Prompt:          styles.Prompt.Render("blackjack> "),
		InterruptPrompt: "^C",
		EOFPrompt:       "quit",
	})
	if err != nil {
		return nil, fmt.Errorf("creating readline: %w", err)
	}
	return &Prompt{rl: rl, styles: styles}, nil
}

// Close releases the terminal
func (pr *Prompt) Close() error {
	return pr.rl.Close()
}

// PlaceBet asks until the player types an integer within [min, max).
// On EOF the minimum bet is placed so the round can finish.
func (pr *Prompt) PlaceBet(p *game.Player, min, max int) int {
	pr.rl.SetPrompt(pr.styles.Prompt.Render(
		fmt.Sprintf("Place bet between %d and %d for %s: ", min, max-1, p.Name)))
	for {
		line, err := pr.rl.Readline()
		if err == readline.ErrInterrupt {
			continue
		} else if err == io.EOF {
			return min
		}

		bet, err := strconv.Atoi(strings.TrimSpace(line))
		if err != nil {
			fmt.Println(pr.styles.Error.Render(fmt.Sprintf("Not a valid bet: %s", line)))
			continue
		}
		if bet < min || bet >= max {
			fmt.Println(pr.styles.Error.Render(
				fmt.Sprintf("Bet %d outside casino range %d-%d", bet, min, max-1)))
			continue
		}
		return bet
	}
}

// ChooseAction asks until the player types one of the valid actions, by
// name or alias. On EOF the player stands.
func (pr *Prompt) ChooseAction(p *game.Player, valid []game.Action) game.Action {
	choices := make([]string, len(valid))
	for i, a := range valid {
		choices[i] = a.String()
	}
	pr.rl.SetPrompt(pr.styles.Prompt.Render(
		fmt.Sprintf("%s [%s]: ", p.Name, strings.Join(choices, " "))))

	for {
		line, err := pr.rl.Readline()
		if err == readline.ErrInterrupt {
			continue
		} else if err == io.EOF {
			return game.ActionStand
		}

		action, err := game.ParseAction(line)
		if err != nil {
			fmt.Println(pr.styles.Error.Render(fmt.Sprintf("Not a valid choice: %s", line)))
			continue
		}
		if !actionIn(valid, action) {
			fmt.Println(pr.styles.Error.Render(
				fmt.Sprintf("%s not allowed now, choose one of: %s", action, strings.Join(choices, " "))))
			continue
		}
		return action
	}
}

// Confirm asks a yes/no question, defaulting to no on EOF
func (pr *Prompt) Confirm(question string) bool {
	pr.rl.SetPrompt(pr.styles.Prompt.Render(question + " (y/n): "))
	for {
		line, err := pr.rl.Readline()
		if err == readline.ErrInterrupt {
			continue
		} else if err == io.EOF {
			return false
		}

		switch strings.ToLower(strings.TrimSpace(line)) {
		case "y", "yes":
			return true
		case "n", "no":
			return false
		default:
			fmt.Println(pr.styles.Error.Render("Please answer y or n"))
		}
	}
}

func actionIn(actions []game.Action, a game.Action) bool {
	for _, v := range actions {
		if v == a {
			return true
		}
	}
	return false
}
