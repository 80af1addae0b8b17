package game

import (
	"fmt"
	"strings"

	"github.com/lox/blackjack-cli/internal/deck"
)

// Flags classifies a hand. Individual bits are set independently on every
// evaluation; they are never merged incrementally.
type Flags uint8

const (
	FlagAce Flags = 1 << iota // at least one ace (pip 11)
	FlagTen                   // at least one ten-valued card
	FlagBust                  // over 21 under every ace valuation
	FlagSoft                  // an ace counted as 11 with room to demote
	FlagPair                  // exactly two cards of equal pip
)

// Has returns true if all bits of f2 are set
func (f Flags) Has(f2 Flags) bool {
	return f&f2 == f2
}

// HiddenNone marks a hand with no concealed card.
const HiddenNone = -1

// Hand is an ordered set of cards plus its derived blackjack valuation.
// Valuation is only meaningful once the hand holds two or more cards: a
// lone first card reports zero value and zero flags.
type Hand struct {
	cards  []deck.Card
	pips   []int
	raw    int
	flags  Flags
	hidden int // index of the concealed card, HiddenNone when all visible
}

// NewHand creates an empty hand with every card visible
func NewHand() *Hand {
	return &Hand{hidden: HiddenNone}
}

// Add appends a card and re-evaluates the hand. Evaluation is skipped while
// the hand holds fewer than two cards.
func (h *Hand) Add(c deck.Card) {
	h.cards = append(h.cards, c)
	if len(h.cards) >= 2 {
		h.evaluate()
	}
}

// evaluate recomputes pips, raw value and flags from scratch.
func (h *Hand) evaluate() {
	h.pips = h.pips[:0]
	h.raw = 0
	for _, c := range h.cards {
		p := c.Pip()
		h.pips = append(h.pips, p)
		h.raw += p
	}

	h.flags = 0
	if len(h.pips) == 2 && h.pips[0] == h.pips[1] {
		h.flags |= FlagPair
	}
	for _, p := range h.pips {
		if p == 11 {
			h.flags |= FlagAce
		}
		if p == 10 {
			h.flags |= FlagTen
		}
	}
	if h.flags.Has(FlagAce) && h.MinValue() < 21 {
		h.flags |= FlagSoft
	}
	if h.BestValue() > 21 {
		h.flags |= FlagBust
	}
}

// Cards returns the cards in deal order
func (h *Hand) Cards() []deck.Card {
	return h.cards
}

// Len returns the number of cards in the hand
func (h *Hand) Len() int {
	return len(h.cards)
}

// Pips returns the pip value of each card, aces always counted as 11
func (h *Hand) Pips() []int {
	return h.pips
}

// Flags returns the classification flags from the last evaluation
func (h *Hand) Flags() Flags {
	return h.flags
}

// AllValues returns the candidate totals of the hand in order: the raw value
// with every ace at 11, then one more value per ace with that ace demoted to
// 1. Length is always 1 + the number of aces. The slice is rebuilt from the
// current pips on every call.
func (h *Hand) AllValues() []int {
	values := []int{h.raw}
	current := h.raw
	for _, p := range h.pips {
		if p != 11 {
			continue
		}
		current -= 10
		values = append(values, current)
	}
	return values
}

// MinValue returns the lowest achievable total, with every ace at 1
func (h *Hand) MinValue() int {
	values := h.AllValues()
	min := values[0]
	for _, v := range values[1:] {
		if v < min {
			min = v
		}
	}
	return min
}

// BestValue returns the highest total not exceeding 21. If every valuation
// busts, it returns the raw all-aces-high total, which is what gets shown
// as the bust value.
func (h *Hand) BestValue() int {
	best := -1
	for _, v := range h.AllValues() {
		if v <= 21 && v > best {
			best = v
		}
	}
	if best < 0 {
		return h.raw
	}
	return best
}

// IsBlackjack returns true for a two-card 21 (an ace plus a ten-value card)
func (h *Hand) IsBlackjack() bool {
	return len(h.cards) == 2 && h.flags.Has(FlagTen|FlagAce)
}

// IsBust returns true if the hand is over 21 under every ace valuation
func (h *Hand) IsBust() bool {
	return h.flags.Has(FlagBust)
}

// IsSoft returns true if the hand counts an ace as 11 with room to demote
func (h *Hand) IsSoft() bool {
	return h.flags.Has(FlagSoft)
}

// SplitCard removes and returns the last card, leaving a one-card hand with
// zeroed valuation. The hand is evaluated again when its next card arrives.
func (h *Hand) SplitCard() deck.Card {
	last := len(h.cards) - 1
	card := h.cards[last]
	h.cards = h.cards[:last]
	h.pips = h.pips[:0]
	h.raw = 0
	h.flags = 0
	return card
}

// HiddenIndex returns the index of the concealed card, or HiddenNone
func (h *Hand) HiddenIndex() int {
	return h.hidden
}

// SetHidden conceals the card at index i from display
func (h *Hand) SetHidden(i int) {
	h.hidden = i
}

// Reveal makes every card visible
func (h *Hand) Reveal() {
	h.hidden = HiddenNone
}

// String renders the hand, honoring the hidden card, e.g.
// "[A♠, K♥] Value=21 (BLACKJACK)" or "[T♠, (hidden)] Value=(hidden)".
func (h *Hand) String() string {
	parts := make([]string, 0, len(h.cards))
	for i, c := range h.cards {
		if i == h.hidden {
			parts = append(parts, "(hidden)")
		} else {
			parts = append(parts, c.String())
		}
	}
	cardStr := "[" + strings.Join(parts, ", ") + "]"

	if h.hidden >= 0 && h.hidden < len(h.cards) {
		return cardStr + " Value=(hidden)"
	}

	tag := ""
	switch {
	case h.IsBlackjack():
		tag = " (BLACKJACK)"
	case h.IsBust():
		tag = " (BUST)"
	case h.IsSoft():
		tag = " (SOFT)"
	}
	return fmt.Sprintf("%s Value=%d%s", cardStr, h.BestValue(), tag)
}
