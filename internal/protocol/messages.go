// Package protocol decodes the LeanPoker JSON wire format into table state.
package protocol

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/renato-design/poker-player-the-better-donkey-killers/internal/table"
	"github.com/renato-design/poker-player-the-better-donkey-killers/poker"
)

// Card is a card as it appears on the wire: {"rank": "10", "suit": "hearts"}.
type Card struct {
	Rank string `json:"rank"`
	Suit string `json:"suit"`
}

// Player mirrors a LeanPoker player object. HoleCards is a pointer so an
// absent field can be told apart from an empty list.
type Player struct {
	ID        int     `json:"id"`
	Name      string  `json:"name"`
	Status    string  `json:"status"`
	Version   string  `json:"version"`
	Stack     int     `json:"stack"`
	Bet       int     `json:"bet"`
	HoleCards *[]Card `json:"hole_cards,omitempty"`
}

// GameState mirrors the LeanPoker game_state object.
type GameState struct {
	TournamentID   string   `json:"tournament_id"`
	GameID         string   `json:"game_id"`
	Round          int      `json:"round"`
	BetIndex       int      `json:"bet_index"`
	SmallBlind     int      `json:"small_blind"`
	CurrentBuyIn   int      `json:"current_buy_in"`
	Pot            int      `json:"pot"`
	MinimumRaise   int      `json:"minimum_raise"`
	Dealer         int      `json:"dealer"`
	Orbits         int      `json:"orbits"`
	InAction       int      `json:"in_action"`
	Players        []Player `json:"players"`
	CommunityCards []Card   `json:"community_cards"`
}

// DecodeGameState reads one game_state JSON document. Missing numbers default
// to 0, strings to "" and arrays to empty; a player without hole_cards gets
// table.Unknown hole cards.
func DecodeGameState(r io.Reader) (table.GameState, error) {
	var wire GameState
	if err := json.NewDecoder(r).Decode(&wire); err != nil {
		return table.GameState{}, fmt.Errorf("decode game state: %w", err)
	}
	return wire.ToTable()
}

// UnmarshalGameState is DecodeGameState for an in-memory document.
func UnmarshalGameState(data []byte) (table.GameState, error) {
	var wire GameState
	if err := json.Unmarshal(data, &wire); err != nil {
		return table.GameState{}, fmt.Errorf("decode game state: %w", err)
	}
	return wire.ToTable()
}

// ToTable converts the wire form, validating every card.
func (gs GameState) ToTable() (table.GameState, error) {
	community, err := DecodeCards(gs.CommunityCards)
	if err != nil {
		return table.GameState{}, fmt.Errorf("community cards: %w", err)
	}

	players := make([]table.Player, 0, len(gs.Players))
	for i, p := range gs.Players {
		holeCards := table.Unknown()
		if p.HoleCards != nil {
			cards, err := DecodeCards(*p.HoleCards)
			if err != nil {
				return table.GameState{}, fmt.Errorf("player %d hole cards: %w", i, err)
			}
			holeCards = table.Dealt(cards...)
		}
		players = append(players, table.Player{
			ID:        p.ID,
			Name:      p.Name,
			Status:    table.Status(p.Status),
			Version:   p.Version,
			Stack:     p.Stack,
			Bet:       p.Bet,
			HoleCards: holeCards,
		})
	}

	return table.GameState{
		TournamentID:   gs.TournamentID,
		GameID:         gs.GameID,
		Round:          gs.Round,
		BetIndex:       gs.BetIndex,
		SmallBlind:     gs.SmallBlind,
		CurrentBuyIn:   gs.CurrentBuyIn,
		Pot:            gs.Pot,
		MinimumRaise:   gs.MinimumRaise,
		Dealer:         gs.Dealer,
		Orbits:         gs.Orbits,
		InAction:       gs.InAction,
		Players:        players,
		CommunityCards: community,
	}, nil
}

// DecodeCards converts wire cards, failing on the first unknown rank or suit.
func DecodeCards(wire []Card) ([]poker.Card, error) {
	cards := make([]poker.Card, 0, len(wire))
	for _, w := range wire {
		rank, err := poker.ParseRank(w.Rank)
		if err != nil {
			return nil, err
		}
		suit, err := poker.ParseSuit(w.Suit)
		if err != nil {
			return nil, err
		}
		cards = append(cards, poker.NewCard(rank, suit))
	}
	return cards, nil
}

// EncodeCards converts cards to their wire form, spelling ten as "10".
func EncodeCards(cards []poker.Card) []Card {
	wire := make([]Card, len(cards))
	for i, c := range cards {
		rank := c.Rank.String()
		if c.Rank == poker.Ten {
			rank = "10"
		}
		wire[i] = Card{Rank: rank, Suit: c.Suit.Name()}
	}
	return wire
}
