package poker

import (
	"fmt"

	ph "github.com/paulhankin/poker"
)

// Describe returns a human-readable description of the best hand in cards,
// such as "Full House, Kings full of Twos".
//
// Six-card hands are reduced to their best five cards first since the
// underlying describer only handles 3, 5 and 7 card hands.
func Describe(cards []Card) (string, error) {
	switch len(cards) {
	case 3, 5, 7:
	case 6:
		_, best, err := BestHand(cards)
		if err != nil {
			return "", err
		}
		cards = best
	default:
		return "", fmt.Errorf("%w: %d", ErrCardCount, len(cards))
	}

	converted := make([]ph.Card, len(cards))
	for i, c := range cards {
		pc, err := toPH(c)
		if err != nil {
			return "", err
		}
		converted[i] = pc
	}
	return ph.Describe(converted)
}

// toPH converts to the describer's card type. Its ranks run 1..13 with Ace=1.
func toPH(c Card) (ph.Card, error) {
	var zero ph.Card
	var s ph.Suit
	switch c.Suit {
	case Clubs:
		s = ph.Club
	case Diamonds:
		s = ph.Diamond
	case Hearts:
		s = ph.Heart
	case Spades:
		s = ph.Spade
	default:
		return zero, fmt.Errorf("%w: %d", ErrInvalidSuit, c.Suit)
	}
	if !c.Rank.Valid() {
		return zero, fmt.Errorf("%w: %d", ErrInvalidRank, c.Rank)
	}
	r := ph.Rank(c.Rank)
	if c.Rank == Ace {
		r = ph.Rank(1)
	}
	return ph.MakeCard(s, r)
}
