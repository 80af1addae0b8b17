package game

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGamblerAutoStands(t *testing.T) {
	t.Run("on bust", func(t *testing.T) {
		p := playerWith(t, "A", "KsQh", 10)
		p.Action = ActionHit
		p.TakeCard(mustCards(t, "5d")[0])

		assert.True(t, p.IsBust())
		assert.Equal(t, ActionStand, p.Action)
		assert.True(t, p.Done())
	})

	t.Run("on blackjack", func(t *testing.T) {
		p := playerWith(t, "A", "AsKh", 10)
		assert.True(t, p.IsBlackjack())
		assert.Equal(t, ActionStand, p.Action)
		assert.True(t, p.Done())
	})

	t.Run("not on an ordinary hand", func(t *testing.T) {
		p := playerWith(t, "A", "Ks5h", 10)
		assert.Equal(t, ActionNone, p.Action)
		assert.False(t, p.Done())
	})
}

func TestDealerStandRule(t *testing.T) {
	tests := []struct {
		cards string
		want  Action
	}{
		{"Ts6h", ActionHit},   // 16 hits
		{"Ts7h", ActionStand}, // hard 17 stands
		{"As6h", ActionStand}, // soft 17 stands
		{"Ts6h5d", ActionStand}, // drew to 21
		{"Ts6hKd", ActionStand}, // busting also stops the dealer
	}

	for _, tt := range tests {
		t.Run(tt.cards, func(t *testing.T) {
			d := NewDealer()
			for _, c := range mustCards(t, tt.cards) {
				d.TakeCard(c)
			}
			assert.Equal(t, tt.want, d.Action)
			assert.Equal(t, tt.want == ActionStand, d.Done())
		})
	}
}

func TestDealerHiddenCard(t *testing.T) {
	d := NewDealer()
	for _, c := range mustCards(t, "Ts7d") {
		d.TakeCard(c)
	}

	assert.Equal(t, 1, d.Hand.HiddenIndex())
	assert.Contains(t, d.Hand.String(), "(hidden)")

	d.Reveal()
	assert.Equal(t, HiddenNone, d.Hand.HiddenIndex())
	assert.NotContains(t, d.Hand.String(), "(hidden)")
}

func TestSplit(t *testing.T) {
	p := playerWith(t, "PlayerA", "8s8h", 10)
	require.True(t, p.Hand.Flags().Has(FlagPair))

	sibling := p.Split()

	assert.Equal(t, "PlayerA.split1", p.Name)
	assert.Equal(t, "PlayerA.split2", sibling.Name)
	assert.Equal(t, 10, p.Bet)
	assert.Equal(t, 10, sibling.Bet, "bet is copied, not halved")
	assert.Equal(t, ActionNone, p.Action)
	assert.Equal(t, 1, p.Hand.Len())
	assert.Equal(t, 1, sibling.Hand.Len())
	assert.Equal(t, "8♠", p.Hand.Cards()[0].String())
	assert.Equal(t, "8♥", sibling.Hand.Cards()[0].String())
}

func TestValidActions(t *testing.T) {
	tests := []struct {
		name  string
		cards string
		want  []Action
	}{
		{
			name:  "opening two cards",
			cards: "Ks5h",
			want:  []Action{ActionHit, ActionStand, ActionDoubleDown, ActionSurrender},
		},
		{
			name:  "opening pair",
			cards: "8s8h",
			want:  []Action{ActionHit, ActionStand, ActionDoubleDown, ActionSplit, ActionSurrender},
		},
		{
			name:  "after a hit",
			cards: "Ks5h2d",
			want:  []Action{ActionHit, ActionStand},
		},
		{
			name:  "blackjack",
			cards: "AsKh",
			want:  []Action{ActionStand},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := playerWith(t, "A", tt.cards, 10)
			assert.Equal(t, tt.want, p.ValidActions())
		})
	}
}

func TestSurrendered(t *testing.T) {
	p := playerWith(t, "A", "Ks5h", 10)
	p.Action = ActionSurrender

	assert.True(t, p.Surrendered())
	assert.True(t, p.Done())
}
