package poker

import (
	"errors"
	"fmt"
	"strings"
)

var (
	// ErrInvalidRank is returned for a rank token outside 2-10, J, Q, K, A.
	ErrInvalidRank = errors.New("invalid rank")
	// ErrInvalidSuit is returned for an unrecognised suit token.
	ErrInvalidSuit = errors.New("invalid suit")
	// ErrInvalidCard is returned when compact card notation cannot be parsed.
	ErrInvalidCard = errors.New("invalid card")
)

// Suit represents a card suit
type Suit int

const (
	Spades Suit = iota
	Hearts
	Diamonds
	Clubs
)

// Suits lists every suit in a fixed order.
var Suits = [...]Suit{Spades, Hearts, Diamonds, Clubs}

// String returns the single letter form of a suit ("s", "h", "d", "c")
func (s Suit) String() string {
	switch s {
	case Spades:
		return "s"
	case Hearts:
		return "h"
	case Diamonds:
		return "d"
	case Clubs:
		return "c"
	default:
		return "?"
	}
}

// Name returns the spelled-out suit used on the wire.
func (s Suit) Name() string {
	switch s {
	case Spades:
		return "spades"
	case Hearts:
		return "hearts"
	case Diamonds:
		return "diamonds"
	case Clubs:
		return "clubs"
	default:
		return "unknown"
	}
}

// Symbol returns the unicode suit symbol.
func (s Suit) Symbol() string {
	switch s {
	case Spades:
		return "♠"
	case Hearts:
		return "♥"
	case Diamonds:
		return "♦"
	case Clubs:
		return "♣"
	default:
		return "?"
	}
}

// Valid reports whether s is one of the four suits.
func (s Suit) Valid() bool {
	return s >= Spades && s <= Clubs
}

// ParseSuit accepts spelled-out suits ("hearts") and single letters ("h").
func ParseSuit(s string) (Suit, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "s", "spades", "spade":
		return Spades, nil
	case "h", "hearts", "heart":
		return Hearts, nil
	case "d", "diamonds", "diamond":
		return Diamonds, nil
	case "c", "clubs", "club":
		return Clubs, nil
	}
	return 0, fmt.Errorf("%w: %q", ErrInvalidSuit, s)
}

// Rank represents a card rank
type Rank int

const (
	Two Rank = iota + 2
	Three
	Four
	Five
	Six
	Seven
	Eight
	Nine
	Ten
	Jack
	Queen
	King
	Ace
)

// Ranks lists every rank from Two to Ace.
var Ranks = [...]Rank{Two, Three, Four, Five, Six, Seven, Eight, Nine, Ten, Jack, Queen, King, Ace}

// String returns the single character form of a rank, using T for ten.
func (r Rank) String() string {
	if !r.Valid() {
		return "?"
	}
	return string(rankChars[r-Two])
}

const rankChars = "23456789TJQKA"

// Valid reports whether r is between Two and Ace.
func (r Rank) Valid() bool {
	return r >= Two && r <= Ace
}

// ParseRank accepts "2"-"9", "10" or "T", and "J", "Q", "K", "A" in either case.
func ParseRank(s string) (Rank, error) {
	s = strings.ToUpper(strings.TrimSpace(s))
	if s == "10" {
		return Ten, nil
	}
	if len(s) == 1 {
		if r, ok := RankFromChar(s[0]); ok {
			return r, nil
		}
	}
	return 0, fmt.Errorf("%w: %q", ErrInvalidRank, s)
}

// RankFromChar converts a single rank character. Only upper-case face letters are accepted.
func RankFromChar(c byte) (Rank, bool) {
	idx := strings.IndexByte(rankChars, c)
	if idx < 0 {
		return 0, false
	}
	return Two + Rank(idx), true
}

// Card represents a playing card
type Card struct {
	Rank Rank
	Suit Suit
}

// NewCard creates a new card
func NewCard(rank Rank, suit Suit) Card {
	return Card{Rank: rank, Suit: suit}
}

// String returns compact notation (e.g. "As", "Th")
func (c Card) String() string {
	return c.Rank.String() + c.Suit.String()
}

// Pretty returns the card with a suit symbol (e.g. "A♠")
func (c Card) Pretty() string {
	return c.Rank.String() + c.Suit.Symbol()
}

// Value returns the numeric value of the card for comparison.
// Aces are high (14); the wheel straight is handled by the evaluator.
func (c Card) Value() int {
	return int(c.Rank)
}

// Valid reports whether both rank and suit are in range.
func (c Card) Valid() bool {
	return c.Rank.Valid() && c.Suit.Valid()
}

// ParseCard parses compact notation such as "As", "Td" or "10d".
func ParseCard(s string) (Card, error) {
	s = strings.TrimSpace(s)
	if len(s) < 2 || len(s) > 3 {
		return Card{}, fmt.Errorf("%w: %q", ErrInvalidCard, s)
	}
	rank, err := ParseRank(s[:len(s)-1])
	if err != nil {
		return Card{}, fmt.Errorf("%w: %q: %w", ErrInvalidCard, s, err)
	}
	suit, err := ParseSuit(s[len(s)-1:])
	if err != nil {
		return Card{}, fmt.Errorf("%w: %q: %w", ErrInvalidCard, s, err)
	}
	return Card{Rank: rank, Suit: suit}, nil
}

// ParseCards parses a run of two-character cards ("AsKhQd"). Whitespace and
// commas between cards are ignored.
func ParseCards(s string) ([]Card, error) {
	s = strings.NewReplacer(" ", "", ",", "").Replace(s)
	if len(s)%2 != 0 {
		return nil, fmt.Errorf("%w: odd length notation %q", ErrInvalidCard, s)
	}
	cards := make([]Card, 0, len(s)/2)
	for i := 0; i < len(s); i += 2 {
		c, err := ParseCard(s[i : i+2])
		if err != nil {
			return nil, err
		}
		cards = append(cards, c)
	}
	return cards, nil
}

// MustParseCards is ParseCards for literals in tests and tables.
func MustParseCards(s string) []Card {
	cards, err := ParseCards(s)
	if err != nil {
		panic(err)
	}
	return cards
}
