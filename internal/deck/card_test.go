package deck

import (
	"errors"
	"testing"
)

func TestPipValues(t *testing.T) {
	tests := []struct {
		name string
		card Card
		pip  int
	}{
		{"two", Card{Spades, Two}, 2},
		{"nine", Card{Hearts, Nine}, 9},
		{"ten", Card{Diamonds, Ten}, 10},
		{"jack", Card{Clubs, Jack}, 10},
		{"queen", Card{Spades, Queen}, 10},
		{"king", Card{Hearts, King}, 10},
		{"ace", Card{Spades, Ace}, 11},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.card.Pip(); got != tt.pip {
				t.Errorf("Pip() = %d, want %d", got, tt.pip)
			}
		})
	}
}

func TestNewCardValidation(t *testing.T) {
	if _, err := NewCard(Hearts, Queen); err != nil {
		t.Errorf("expected valid card, got error: %v", err)
	}

	if _, err := NewCard(Suit(7), Queen); !errors.Is(err, ErrInvalidCard) {
		t.Errorf("expected ErrInvalidCard for bad suit, got: %v", err)
	}

	if _, err := NewCard(Hearts, Rank(1)); !errors.Is(err, ErrInvalidCard) {
		t.Errorf("expected ErrInvalidCard for bad rank, got: %v", err)
	}

	if _, err := NewCard(Hearts, Rank(15)); !errors.Is(err, ErrInvalidCard) {
		t.Errorf("expected ErrInvalidCard for bad rank, got: %v", err)
	}
}

func TestCardString(t *testing.T) {
	tests := []struct {
		card     Card
		expected string
	}{
		{Card{Spades, Ace}, "A♠"},
		{Card{Hearts, Ten}, "T♥"},
		{Card{Diamonds, Two}, "2♦"},
		{Card{Clubs, King}, "K♣"},
	}

	for _, tt := range tests {
		if got := tt.card.String(); got != tt.expected {
			t.Errorf("String() = %q, want %q", got, tt.expected)
		}
	}
}

func TestIsTen(t *testing.T) {
	for _, rank := range []Rank{Ten, Jack, Queen, King} {
		if !(Card{Spades, rank}).IsTen() {
			t.Errorf("expected %s to be ten-valued", rank)
		}
	}
	for _, rank := range []Rank{Two, Nine, Ace} {
		if (Card{Spades, rank}).IsTen() {
			t.Errorf("expected %s not to be ten-valued", rank)
		}
	}
}

func TestParseCards(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected []Card
		wantErr  bool
	}{
		{
			name:  "blackjack",
			input: "AsKh",
			expected: []Card{
				{Suit: Spades, Rank: Ace},
				{Suit: Hearts, Rank: King},
			},
		},
		{
			name:  "mixed suits",
			input: "8d8cTs2h",
			expected: []Card{
				{Suit: Diamonds, Rank: Eight},
				{Suit: Clubs, Rank: Eight},
				{Suit: Spades, Rank: Ten},
				{Suit: Hearts, Rank: Two},
			},
		},
		{
			name:  "case insensitive",
			input: "asKH",
			expected: []Card{
				{Suit: Spades, Rank: Ace},
				{Suit: Hearts, Rank: King},
			},
		},
		{
			name:    "invalid rank",
			input:   "Xs",
			wantErr: true,
		},
		{
			name:    "invalid suit",
			input:   "Ax",
			wantErr: true,
		},
		{
			name:    "odd length",
			input:   "AsK",
			wantErr: true,
		},
		{
			name:     "empty string",
			input:    "",
			expected: []Card{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseCards(tt.input)
			if (err != nil) != tt.wantErr {
				t.Fatalf("ParseCards() error = %v, wantErr %v", err, tt.wantErr)
			}
			if tt.wantErr {
				if !errors.Is(err, ErrInvalidCard) {
					t.Errorf("expected ErrInvalidCard, got: %v", err)
				}
				return
			}
			if len(got) != len(tt.expected) {
				t.Fatalf("ParseCards() = %v, want %v", got, tt.expected)
			}
			for i := range got {
				if got[i] != tt.expected[i] {
					t.Errorf("card %d = %v, want %v", i, got[i], tt.expected[i])
				}
			}
		})
	}
}
