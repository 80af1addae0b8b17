package game

// Agent supplies bets and decisions for players. Implementations own any
// retry loop for malformed input: the engine only ever receives a bet within
// the requested range and an action from the valid set.
type Agent interface {
	// PlaceBet returns a bet for the player within [min, max).
	PlaceBet(p *Player, min, max int) int

	// ChooseAction returns one of the valid actions for the player.
	ChooseAction(p *Player, valid []Action) Action
}

// HouseAgent plays every seat automatically with the dealer's fixed rule:
// a flat bet, hit below the stand threshold, never split or double.
// Used for --auto runs and demos.
type HouseAgent struct {
	Bet int
}

// PlaceBet returns the flat bet, clamped into the casino range
func (a *HouseAgent) PlaceBet(p *Player, min, max int) int {
	bet := a.Bet
	if bet < min {
		bet = min
	}
	if bet >= max {
		bet = max - 1
	}
	return bet
}

// ChooseAction hits below the dealer threshold, otherwise stands
func (a *HouseAgent) ChooseAction(p *Player, valid []Action) Action {
	if p.Hand.BestValue() >= DealerStand {
		return ActionStand
	}
	return ActionHit
}
