package deck

import (
	"errors"
	"fmt"
	rand "math/rand/v2"
)

// ErrShoeExhausted is returned when a card is requested from an empty shoe.
// It is fatal to the round in progress; the shoe is never refilled mid-round.
var ErrShoeExhausted = errors.New("shoe exhausted")

// Shoe is the card supply for a round: one or more 52-card decks shuffled
// together. Cards are dealt from the front and never returned.
type Shoe struct {
	cards []Card
}

// NewShoe creates a shoe holding nDecks replica decks, shuffled with the
// provided RNG. The RNG is required so that shuffles are reproducible in
// tests and with a --seed flag.
func NewShoe(rng *rand.Rand, nDecks int) *Shoe {
	if rng == nil {
		panic("rng is required for shoe creation")
	}
	if nDecks < 1 {
		panic(fmt.Sprintf("shoe needs at least one deck, got %d", nDecks))
	}

	s := &Shoe{cards: make([]Card, 0, 52*nDecks)}
	for i := 0; i < nDecks; i++ {
		for suit := Spades; suit <= Clubs; suit++ {
			for rank := Two; rank <= Ace; rank++ {
				s.cards = append(s.cards, Card{Suit: suit, Rank: rank})
			}
		}
	}

	rng.Shuffle(len(s.cards), func(i, j int) {
		s.cards[i], s.cards[j] = s.cards[j], s.cards[i]
	})

	return s
}

// NewStackedShoe creates a shoe that deals the given cards in order.
// Used by tests that need a known sequence of cards.
func NewStackedShoe(cards ...Card) *Shoe {
	stacked := make([]Card, len(cards))
	copy(stacked, cards)
	return &Shoe{cards: stacked}
}

// Deal removes and returns the next card from the shoe.
func (s *Shoe) Deal() (Card, error) {
	if len(s.cards) == 0 {
		return Card{}, ErrShoeExhausted
	}
	card := s.cards[0]
	s.cards = s.cards[1:]
	return card, nil
}

// Remaining returns the number of cards left in the shoe
func (s *Shoe) Remaining() int {
	return len(s.cards)
}

// IsEmpty returns true if the shoe has no cards left
func (s *Shoe) IsEmpty() bool {
	return len(s.cards) == 0
}
