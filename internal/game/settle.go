package game

// Outcome classifies a player's result against the dealer
type Outcome int

const (
	OutcomeLost Outcome = iota
	OutcomeBlackjack
	OutcomeSurrendered
	OutcomeWon
	OutcomePush
)

// String returns the string representation of an outcome
func (o Outcome) String() string {
	switch o {
	case OutcomeLost:
		return "lost"
	case OutcomeBlackjack:
		return "blackjack"
	case OutcomeSurrendered:
		return "surrendered"
	case OutcomeWon:
		return "won"
	case OutcomePush:
		return "push"
	default:
		return "?"
	}
}

// Result is one player's settlement: a positive Win is the amount won,
// negative the amount lost, zero a push.
type Result struct {
	Player  *Player
	Outcome Outcome
	Win     int
}

// Settle computes each player's win against the dealer's final hand using
// first-matching house rules:
//
//  1. bust loses the full bet
//  2. blackjack against a non-blackjack dealer pays 3:2, floored
//  3. surrender loses half the bet, floored
//  4. dealer bust, or a higher total, wins the full bet
//  5. a lower total, or a dealer blackjack without one of your own,
//     loses the full bet
//  6. anything else is a push
//
// It returns the per-player results in settlement order plus the house net,
// which is the negated sum of all player wins.
func Settle(dealer *Player, players []*Player) ([]Result, int) {
	dealerBust := dealer.IsBust()
	dealerBlackjack := dealer.IsBlackjack()
	dealerValue := dealer.Hand.BestValue()

	results := make([]Result, 0, len(players))
	houseWin := 0
	for _, p := range players {
		res := Result{Player: p}
		switch {
		case p.IsBust():
			res.Outcome = OutcomeLost
			res.Win = -p.Bet
		case p.IsBlackjack() && !dealerBlackjack:
			res.Outcome = OutcomeBlackjack
			res.Win = p.Bet * 3 / 2
		case p.Surrendered():
			res.Outcome = OutcomeSurrendered
			res.Win = -(p.Bet / 2)
		case dealerBust || p.Hand.BestValue() > dealerValue:
			res.Outcome = OutcomeWon
			res.Win = p.Bet
		case p.Hand.BestValue() < dealerValue || (dealerBlackjack && !p.IsBlackjack()):
			res.Outcome = OutcomeLost
			res.Win = -p.Bet
		default:
			res.Outcome = OutcomePush
		}
		houseWin -= res.Win
		results = append(results, res)
	}

	return results, houseWin
}
