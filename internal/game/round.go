package game

import (
	"fmt"
	"io"
	"slices"

	"github.com/charmbracelet/log"

	"github.com/lox/blackjack-cli/internal/deck"
)

// Round runs one complete round of blackjack: bets, the opening deal, every
// player's decision loop (including split expansion), the dealer's hand and
// settlement. A Round is built, played once and discarded.
type Round struct {
	shoe    *deck.Shoe
	players []*Player
	dealer  *Player
	agent   Agent
	display Display
	logger  *log.Logger
	betMin  int
	betMax  int
}

// RoundResult contains the settlement of a completed round
type RoundResult struct {
	Results  []Result
	HouseWin int
}

// RoundOption configures a Round during creation
type RoundOption func(*Round)

// WithDisplay sets the display sink. Default is NullDisplay.
func WithDisplay(d Display) RoundOption {
	return func(r *Round) { r.display = d }
}

// WithLogger sets the logger. Default discards everything.
func WithLogger(l *log.Logger) RoundOption {
	return func(r *Round) { r.logger = l }
}

// NewRound creates a round for the named players against a fresh dealer.
// Bets are taken from the half-open range [betMin, betMax).
func NewRound(shoe *deck.Shoe, agent Agent, names []string, betMin, betMax int, opts ...RoundOption) *Round {
	if shoe == nil {
		panic("shoe is required for round creation")
	}
	if agent == nil {
		panic("agent is required for round creation")
	}
	if len(names) < 1 {
		panic("at least 1 player required")
	}
	if betMin < 0 || betMax <= betMin {
		panic(fmt.Sprintf("invalid bet range [%d, %d)", betMin, betMax))
	}

	r := &Round{
		shoe:    shoe,
		agent:   agent,
		dealer:  NewDealer(),
		display: NullDisplay{},
		logger:  log.New(io.Discard),
		betMin:  betMin,
		betMax:  betMax,
	}
	r.players = make([]*Player, 0, len(names))
	for _, name := range names {
		r.players = append(r.players, NewPlayer(name))
	}

	for _, opt := range opts {
		opt(r)
	}
	return r
}

// Players returns the seats in play order, including any split siblings
func (r *Round) Players() []*Player {
	return r.players
}

// Dealer returns the dealer seat
func (r *Round) Dealer() *Player {
	return r.dealer
}

// BetRange returns the half-open casino bet range
func (r *Round) BetRange() (min, max int) {
	return r.betMin, r.betMax
}

// Play runs the round to completion and returns the settlement. An error
// means the shoe ran dry mid-round; the round is abandoned, nothing is
// settled.
func (r *Round) Play() (*RoundResult, error) {
	r.takeBets()

	if err := r.dealOpening(); err != nil {
		return nil, err
	}
	r.display.ShowTable(r)

	if err := r.resolvePlayers(); err != nil {
		return nil, err
	}

	r.dealer.Reveal()
	if err := r.playDealer(); err != nil {
		return nil, err
	}
	r.display.ShowTable(r)

	results, houseWin := Settle(r.dealer, r.players)
	r.display.ShowSettlement(results, houseWin)
	r.logger.Debug("round settled", "houseWin", houseWin)

	return &RoundResult{Results: results, HouseWin: houseWin}, nil
}

// takeBets collects one bet per player. The agent guarantees the value is
// within the casino range; bets accumulate on the seat.
func (r *Round) takeBets() {
	for _, p := range r.players {
		bet := r.agent.PlaceBet(p, r.betMin, r.betMax)
		p.Bet += bet
		r.logger.Debug("bet placed", "player", p.Name, "bet", p.Bet)
	}
}

// dealOpening deals the initial hands: one card to each player in seat
// order, the dealer's up-card, a second card to each player, then the
// dealer's hole card.
func (r *Round) dealOpening() error {
	for pass := 0; pass < 2; pass++ {
		for _, p := range r.players {
			if err := r.dealTo(p); err != nil {
				return err
			}
		}
		if err := r.dealTo(r.dealer); err != nil {
			return err
		}
	}
	return nil
}

func (r *Round) dealTo(p *Player) error {
	card, err := r.shoe.Deal()
	if err != nil {
		return fmt.Errorf("dealing to %s: %w", p.Name, err)
	}
	p.TakeCard(card)
	r.logger.Debug("card dealt", "player", p.Name, "card", card, "value", p.Hand.BestValue())
	return nil
}

// resolvePlayers sweeps the seats left to right, resolving decisions until
// each seat is done. Splits grow the slice in place: the sibling is
// inserted right after the current seat, so both split hands finish before
// the next original seat acts. Index-based traversal keeps the sweep valid
// while the slice grows.
func (r *Round) resolvePlayers() error {
	for i := 0; i < len(r.players); i++ {
		for !r.players[i].Done() {
			if err := r.resolveTurn(i); err != nil {
				return err
			}
		}
	}
	return nil
}

// resolveTurn takes and applies one decision for the seat at index i.
func (r *Round) resolveTurn(i int) error {
	p := r.players[i]

	valid := p.ValidActions()
	var choice Action
	if p.IsBlackjack() {
		// a natural needs no input, the only resolution is stand
		choice = ActionStand
	} else {
		choice = r.agent.ChooseAction(p, valid)
	}
	if !containsAction(valid, choice) {
		return fmt.Errorf("%w: %s chose %s, valid %v", ErrInvalidAction, p.Name, choice, valid)
	}

	p.Action = choice
	r.logger.Debug("action chosen", "player", p.Name, "action", choice)

	switch choice {
	case ActionHit:
		if err := r.dealTo(p); err != nil {
			return err
		}
		r.display.ShowPlayer(p)

	case ActionDoubleDown:
		if err := r.dealTo(p); err != nil {
			return err
		}
		p.Bet *= 2
		r.display.ShowPlayer(p)

	case ActionSplit:
		sibling := p.Split()
		if err := r.dealTo(p); err != nil {
			return err
		}
		if err := r.dealTo(sibling); err != nil {
			return err
		}
		r.players = slices.Insert(r.players, i+1, sibling)
		r.display.ShowTable(r)
	}

	return nil
}

// playDealer reveals nothing itself; Play reveals the hole card first, then
// this draws until the fixed stand rule is satisfied.
func (r *Round) playDealer() error {
	for !r.dealer.Done() {
		if err := r.dealTo(r.dealer); err != nil {
			return err
		}
		r.display.ShowPlayer(r.dealer)
	}
	return nil
}
