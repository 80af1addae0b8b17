// Package game implements the core logic for a single round of casino
// blackjack: hand evaluation, the per-player decision state machine
// (hit/stand/double-down/split/surrender), dealer play and settlement.
//
// The main type is Round, which owns the card supply, the player list and
// the dealer for exactly one round. Decisions and bets come from an Agent;
// rendering goes through a Display. Both are interfaces, so the same engine
// drives the interactive console, the automatic house player, and the tests.
//
// # Basic Usage
//
//	rng := randutil.New(42)
//	shoe := deck.NewShoe(rng, 1)
//	r := game.NewRound(shoe, agent, []string{"PlayerA", "PlayerB"}, 5, 501)
//	result, err := r.Play()
//	if err != nil {
//	    // the shoe ran dry mid-round
//	}
//
// # Deterministic Testing
//
// Tests stack the shoe explicitly and script the agent:
//
//	shoe := deck.NewStackedShoe(mustCards(t, "8s5dTs8hTh7d")...)
//	r := game.NewRound(shoe, &scriptedAgent{...}, names, 5, 501)
package game
