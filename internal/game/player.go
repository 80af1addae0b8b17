package game

import (
	"fmt"

	"github.com/lox/blackjack-cli/internal/deck"
)

// Role selects the decision behavior for a seat
type Role int

const (
	RoleGambler Role = iota
	RoleDealer
)

// DealerStand is the fixed total at which the dealer stops drawing
const DealerStand = 17

// Player is a seat at the table: a hand, an accumulated bet and the last
// chosen action. The dealer is a Player with RoleDealer; its action is
// derived from the fixed stand rule instead of an agent.
type Player struct {
	Name   string
	Role   Role
	Bet    int
	Action Action
	Hand   *Hand
}

// NewPlayer creates a gambler seat with an empty hand and no bet
func NewPlayer(name string) *Player {
	return &Player{Name: name, Role: RoleGambler, Hand: NewHand()}
}

// NewDealer creates the dealer seat. The dealer's second card is concealed
// until Reveal is called.
func NewDealer() *Player {
	d := &Player{Name: "Dealer", Role: RoleDealer, Hand: NewHand()}
	d.Hand.SetHidden(1)
	return d
}

// Done returns true once the player's turn is over. Gamblers are done after
// a terminal action; the dealer is done only once its rule says stand.
func (p *Player) Done() bool {
	if p.Role == RoleDealer {
		return p.Action == ActionStand
	}
	return p.Action.Terminal()
}

// IsBust returns true if the player's hand busted
func (p *Player) IsBust() bool {
	return p.Hand.IsBust()
}

// IsBlackjack returns true if the player holds a natural
func (p *Player) IsBlackjack() bool {
	return p.Hand.IsBlackjack()
}

// Surrendered returns true if the player gave up the hand
func (p *Player) Surrendered() bool {
	return p.Action == ActionSurrender
}

// TakeCard adds a card to the hand and applies the post-draw rules: a
// gambler auto-stands on bust or blackjack regardless of the chosen action;
// the dealer stands at DealerStand or better, otherwise keeps hitting.
func (p *Player) TakeCard(c deck.Card) {
	p.Hand.Add(c)

	if p.Role == RoleDealer {
		if p.Hand.BestValue() >= DealerStand {
			p.Action = ActionStand
		} else {
			p.Action = ActionHit
		}
		return
	}

	if p.IsBust() || p.IsBlackjack() {
		p.Action = ActionStand
	}
}

// ValidActions returns the actions the player may choose right now.
// A blackjack leaves only stand. Split requires a pair; double down and
// surrender are only available on the opening two cards.
func (p *Player) ValidActions() []Action {
	if p.IsBlackjack() {
		return []Action{ActionStand}
	}

	actions := []Action{ActionHit, ActionStand}
	if p.Hand.Len() == 2 {
		actions = append(actions, ActionDoubleDown)
		if p.Hand.Flags().Has(FlagPair) {
			actions = append(actions, ActionSplit)
		}
		actions = append(actions, ActionSurrender)
	}
	return actions
}

// Split moves the last card of this player's pair into a new sibling player
// carrying the same bet. The original is renamed with a ".split1" suffix,
// the sibling gets ".split2", and the original's action is reset so it is
// asked to act again. Both hands still need a fresh card from the shoe.
func (p *Player) Split() *Player {
	sibling := &Player{
		Name: p.Name + ".split2",
		Role: p.Role,
		Bet:  p.Bet,
		Hand: NewHand(),
	}
	p.Name += ".split1"
	p.Action = ActionNone
	sibling.TakeCard(p.Hand.SplitCard())
	return sibling
}

// Reveal uncovers the dealer's hidden card
func (p *Player) Reveal() {
	p.Hand.Reveal()
}

// String renders the seat the way the console shows it
func (p *Player) String() string {
	if p.Role == RoleDealer {
		return fmt.Sprintf("%-25s: Hand=%s", p.Name, p.Hand)
	}
	return fmt.Sprintf("%-25s: Hand=%s Bet=%-5d Choice=%s", p.Name, p.Hand, p.Bet, p.Action)
}
