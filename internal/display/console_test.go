package display

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lox/blackjack-cli/internal/deck"
	"github.com/lox/blackjack-cli/internal/game"
)

func playerWith(t *testing.T, name, cards string, bet int) *game.Player {
	t.Helper()
	p := game.NewPlayer(name)
	p.Bet = bet
	parsed, err := deck.ParseCards(cards)
	require.NoError(t, err)
	for _, c := range parsed {
		p.TakeCard(c)
	}
	return p
}

func TestShowPlayer(t *testing.T) {
	var buf bytes.Buffer
	console := NewConsole(&buf)

	console.ShowPlayer(playerWith(t, "PlayerA", "AsKh", 25))

	out := buf.String()
	assert.Contains(t, out, "PlayerA")
	assert.Contains(t, out, "A♠")
	assert.Contains(t, out, "K♥")
	assert.Contains(t, out, "Value=21")
	assert.Contains(t, out, "(BLACKJACK)")
	assert.Contains(t, out, "Bet=25")
}

func TestShowPlayerHidesDealerCard(t *testing.T) {
	var buf bytes.Buffer
	console := NewConsole(&buf)

	dealer := game.NewDealer()
	parsed, err := deck.ParseCards("Ts7d")
	require.NoError(t, err)
	for _, c := range parsed {
		dealer.TakeCard(c)
	}

	console.ShowPlayer(dealer)
	out := buf.String()
	assert.Contains(t, out, "T♠")
	assert.Contains(t, out, "(hidden)")
	assert.NotContains(t, out, "7♦")
	assert.Contains(t, out, "Value=(hidden)")

	buf.Reset()
	dealer.Reveal()
	console.ShowPlayer(dealer)
	out = buf.String()
	assert.Contains(t, out, "7♦")
	assert.Contains(t, out, "Value=17")
}

func TestShowSettlement(t *testing.T) {
	var buf bytes.Buffer
	console := NewConsole(&buf)

	winner := playerWith(t, "PlayerA", "AsKh", 10)
	loser := playerWith(t, "PlayerB", "Ts6h", 10)
	results := []game.Result{
		{Player: winner, Outcome: game.OutcomeBlackjack, Win: 15},
		{Player: loser, Outcome: game.OutcomeLost, Win: -10},
	}

	console.ShowSettlement(results, -5)

	out := buf.String()
	assert.Contains(t, out, "Wins:")
	assert.Contains(t, out, "blackjack")
	assert.Contains(t, out, "+15")
	assert.Contains(t, out, "lost")
	assert.Contains(t, out, "-10")
	assert.Contains(t, out, "House")
	assert.Contains(t, out, "-5")
}
