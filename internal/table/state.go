// Package table holds the read-only game state a decision is made from.
package table

import (
	"slices"

	"github.com/renato-design/poker-player-the-better-donkey-killers/poker"
)

// Status is a player's standing in the current hand.
type Status string

const (
	StatusActive Status = "active"
	StatusFolded Status = "folded"
	StatusOut    Status = "out"
)

// HoleCards distinguishes "we do not know this player's cards" from
// "these are the cards dealt", which may legitimately be empty.
type HoleCards struct {
	cards []poker.Card
	known bool
}

// Unknown returns hole cards that were not disclosed.
func Unknown() HoleCards {
	return HoleCards{}
}

// Dealt returns disclosed hole cards.
func Dealt(cards ...poker.Card) HoleCards {
	return HoleCards{cards: slices.Clone(cards), known: true}
}

// Known returns a copy of the cards and whether they were disclosed at all.
func (h HoleCards) Known() ([]poker.Card, bool) {
	if !h.known {
		return nil, false
	}
	return slices.Clone(h.cards), true
}

// Pair returns both cards when exactly two are known.
func (h HoleCards) Pair() (poker.Card, poker.Card, bool) {
	if !h.known || len(h.cards) != 2 {
		return poker.Card{}, poker.Card{}, false
	}
	return h.cards[0], h.cards[1], true
}

// Player is one seat at the table.
type Player struct {
	ID        int
	Name      string
	Status    Status
	Version   string
	Stack     int
	Bet       int
	HoleCards HoleCards
}

// GameState is the snapshot handed to the bot on its turn.
type GameState struct {
	TournamentID   string
	GameID         string
	Round          int
	BetIndex       int
	SmallBlind     int
	CurrentBuyIn   int
	Pot            int
	MinimumRaise   int
	Dealer         int
	Orbits         int
	InAction       int
	Players        []Player
	CommunityCards []poker.Card
}

// Me returns the acting player. It is false when in_action does not index a player.
func (gs GameState) Me() (Player, bool) {
	if gs.InAction < 0 || gs.InAction >= len(gs.Players) {
		return Player{}, false
	}
	return gs.Players[gs.InAction], true
}

// RequiredCall is how many more chips the acting player must add to stay in.
// It is negative when the player has already committed more than the buy-in.
func (gs GameState) RequiredCall() int {
	me, ok := gs.Me()
	if !ok {
		return 0
	}
	return gs.CurrentBuyIn - me.Bet
}

// BigBlind is twice the small blind.
func (gs GameState) BigBlind() int {
	return gs.SmallBlind * 2
}

// BigBlindsLeft is the acting player's stack in whole big blinds. It is 0
// when the blinds are unknown.
func (gs GameState) BigBlindsLeft() int {
	me, ok := gs.Me()
	if !ok || gs.BigBlind() <= 0 {
		return 0
	}
	return me.Stack / gs.BigBlind()
}

// Position resolves the acting player's seat classification.
func (gs GameState) Position() Position {
	return ResolvePosition(gs.Dealer, gs.InAction, len(gs.Players))
}

// Street is derived from the number of community cards.
func (gs GameState) Street() (Street, bool) {
	return StreetFor(len(gs.CommunityCards))
}
