package protocol

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/renato-design/poker-player-the-better-donkey-killers/internal/table"
	"github.com/renato-design/poker-player-the-better-donkey-killers/poker"
)

const sampleGameState = `{
  "tournament_id":"T",
  "game_id":"G",
  "round":0,
  "bet_index":0,
  "small_blind":10,
  "current_buy_in":320,
  "pot":400,
  "minimum_raise":240,
  "dealer":1,
  "orbits":7,
  "in_action":1,
  "players":[
    {"id":0,"name":"Albert","status":"active","version":"v","stack":1010,"bet":320},
    {"id":1,"name":"Bob","status":"active","version":"v","stack":1590,"bet":80,
     "hole_cards":[{"rank":"6","suit":"hearts"},{"rank":"K","suit":"spades"}]},
    {"id":2,"name":"Chuck","status":"out","version":"v","stack":0,"bet":0}
  ],
  "community_cards":[{"rank":"4","suit":"spades"},{"rank":"A","suit":"hearts"},{"rank":"10","suit":"clubs"}]
}`

func TestDecodeGameState(t *testing.T) {
	t.Parallel()
	gs, err := DecodeGameState(strings.NewReader(sampleGameState))
	require.NoError(t, err)

	assert.Equal(t, "T", gs.TournamentID)
	assert.Equal(t, "G", gs.GameID)
	assert.Equal(t, 320, gs.CurrentBuyIn)
	assert.Equal(t, 240, gs.MinimumRaise)
	assert.Equal(t, 1, gs.InAction)
	assert.Equal(t, 7, gs.Orbits)
	require.Len(t, gs.Players, 3)
	require.Len(t, gs.CommunityCards, 3)
	assert.Equal(t, poker.NewCard(poker.Ten, poker.Clubs), gs.CommunityCards[2])

	me, ok := gs.Me()
	require.True(t, ok)
	assert.Equal(t, "Bob", me.Name)
	assert.Equal(t, 80, me.Bet)
	c1, c2, ok := me.HoleCards.Pair()
	require.True(t, ok)
	assert.Equal(t, poker.NewCard(poker.Six, poker.Hearts), c1)
	assert.Equal(t, poker.NewCard(poker.King, poker.Spades), c2)

	_, known := gs.Players[0].HoleCards.Known()
	assert.False(t, known, "absent hole_cards must decode as unknown")
	assert.Equal(t, table.StatusOut, gs.Players[2].Status)
}

func TestDecodeGameStateDefaults(t *testing.T) {
	t.Parallel()
	gs, err := UnmarshalGameState([]byte(`{"players":[{"name":"me","hole_cards":[]}]}`))
	require.NoError(t, err)

	assert.Equal(t, 0, gs.SmallBlind)
	assert.Equal(t, "", gs.GameID)
	assert.Empty(t, gs.CommunityCards)
	require.Len(t, gs.Players, 1)

	cards, known := gs.Players[0].HoleCards.Known()
	assert.True(t, known, "an explicit empty list is dealt nothing, not unknown")
	assert.Empty(t, cards)
}

func TestDecodeGameStateErrors(t *testing.T) {
	t.Parallel()
	tests := map[string]string{
		"not json":       `{"players":`,
		"unknown rank":   `{"community_cards":[{"rank":"1","suit":"hearts"}]}`,
		"unknown suit":   `{"community_cards":[{"rank":"A","suit":"stars"}]}`,
		"bad hole cards": `{"players":[{"hole_cards":[{"rank":"Z","suit":"clubs"}]}]}`,
	}
	for name, doc := range tests {
		t.Run(name, func(t *testing.T) {
			t.Parallel()
			_, err := UnmarshalGameState([]byte(doc))
			assert.Error(t, err)
		})
	}
}

func TestEncodeCardsRoundTrip(t *testing.T) {
	t.Parallel()
	cards := poker.MustParseCards("TsAh2c")
	wire := EncodeCards(cards)
	assert.Equal(t, Card{Rank: "10", Suit: "spades"}, wire[0])
	assert.Equal(t, Card{Rank: "A", Suit: "hearts"}, wire[1])

	back, err := DecodeCards(wire)
	require.NoError(t, err)
	assert.Equal(t, cards, back)
}
