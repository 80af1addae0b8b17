package game

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/lox/blackjack-cli/internal/deck"
)

// scriptedAgent feeds canned bets and actions to the engine in order.
type scriptedAgent struct {
	t       *testing.T
	bets    []int
	actions []Action
}

func (a *scriptedAgent) PlaceBet(p *Player, min, max int) int {
	require.NotEmpty(a.t, a.bets, "bet script exhausted for %s", p.Name)
	bet := a.bets[0]
	a.bets = a.bets[1:]
	return bet
}

func (a *scriptedAgent) ChooseAction(p *Player, valid []Action) Action {
	require.NotEmpty(a.t, a.actions, "action script exhausted for %s", p.Name)
	action := a.actions[0]
	a.actions = a.actions[1:]
	return action
}

func mustCards(t *testing.T, s string) []deck.Card {
	t.Helper()
	cards, err := deck.ParseCards(s)
	require.NoError(t, err)
	return cards
}

// handOf builds an evaluated hand from a compact card string like "AsKh"
func handOf(t *testing.T, s string) *Hand {
	t.Helper()
	h := NewHand()
	for _, c := range mustCards(t, s) {
		h.Add(c)
	}
	return h
}

// playerWith builds a gambler holding the given cards and bet
func playerWith(t *testing.T, name, cards string, bet int) *Player {
	t.Helper()
	p := NewPlayer(name)
	p.Bet = bet
	for _, c := range mustCards(t, cards) {
		p.TakeCard(c)
	}
	return p
}
