package table

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/renato-design/poker-player-the-better-donkey-killers/poker"
)

func TestResolvePosition(t *testing.T) {
	t.Parallel()
	tests := []struct {
		name                  string
		dealer, acting, seats int
		want                  Position
	}{
		{"dealer is button", 1, 1, 4, Button},
		{"seats minus two is cutoff", 0, 2, 4, Cutoff},
		{"dealer plus one is small blind", 0, 1, 4, SmallBlind},
		{"dealer plus two wraps to big blind", 3, 1, 4, BigBlind},
		{"cutoff wins over small blind", 1, 2, 4, Cutoff},
		{"heads up seat zero is cutoff", 1, 0, 2, Cutoff},
		{"heads up button", 0, 0, 2, Button},
		{"heads up small blind", 0, 1, 2, SmallBlind},
		{"three handed big blind", 0, 2, 3, BigBlind},
		{"three handed seat one is cutoff", 0, 1, 3, Cutoff},
		{"other seats default to cutoff", 0, 5, 8, Cutoff},
		{"empty table", 0, 0, 0, Cutoff},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.want, ResolvePosition(tt.dealer, tt.acting, tt.seats))
		})
	}
}

func TestStreetFor(t *testing.T) {
	t.Parallel()
	for n, want := range map[int]Street{0: Preflop, 3: Flop, 4: Turn, 5: River} {
		got, ok := StreetFor(n)
		assert.True(t, ok)
		assert.Equal(t, want, got)
	}
	for _, n := range []int{1, 2, 6} {
		_, ok := StreetFor(n)
		assert.False(t, ok, "n=%d", n)
	}
}

func TestParsePosition(t *testing.T) {
	t.Parallel()
	for _, p := range Positions {
		got, ok := ParsePosition(p.String())
		assert.True(t, ok)
		assert.Equal(t, p, got)
	}
	_, ok := ParsePosition("under_the_gun")
	assert.False(t, ok)
}

func TestHoleCards(t *testing.T) {
	t.Parallel()
	_, known := Unknown().Known()
	assert.False(t, known)

	cards, known := Dealt().Known()
	assert.True(t, known, "dealt nothing is still known")
	assert.Empty(t, cards)

	ah := poker.NewCard(poker.Ace, poker.Hearts)
	ks := poker.NewCard(poker.King, poker.Spades)
	c1, c2, ok := Dealt(ah, ks).Pair()
	assert.True(t, ok)
	assert.Equal(t, ah, c1)
	assert.Equal(t, ks, c2)

	_, _, ok = Unknown().Pair()
	assert.False(t, ok)
}

func TestGameStateAccessors(t *testing.T) {
	t.Parallel()
	gs := GameState{
		SmallBlind:   10,
		CurrentBuyIn: 100,
		InAction:     1,
		Dealer:       0,
		Players: []Player{
			{Name: "Albert", Stack: 1000},
			{Name: "Bob", Stack: 250, Bet: 20},
		},
	}

	me, ok := gs.Me()
	assert.True(t, ok)
	assert.Equal(t, "Bob", me.Name)
	assert.Equal(t, 80, gs.RequiredCall())
	assert.Equal(t, 20, gs.BigBlind())
	assert.Equal(t, 12, gs.BigBlindsLeft())
	assert.Equal(t, SmallBlind, gs.Position())

	street, ok := gs.Street()
	assert.True(t, ok)
	assert.Equal(t, Preflop, street)

	gs.InAction = 5
	_, ok = gs.Me()
	assert.False(t, ok)
	assert.Equal(t, 0, gs.RequiredCall())
	assert.Equal(t, 0, gs.BigBlindsLeft())
}
