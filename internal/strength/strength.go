// Package strength rates how good a partial or complete hand is on a 0-1 scale.
//
// The scores are fixed bands per recognised pattern, not probabilities, so
// thresholds applied to them are policy knobs rather than equities.
package strength

import (
	"context"

	"github.com/renato-design/poker-player-the-better-donkey-killers/poker"
)

// NeutralScore is returned when a score cannot be determined by a remote scorer.
const NeutralScore = 0.5

// Scorer rates hole cards together with whatever community cards are out.
type Scorer interface {
	Score(ctx context.Context, hole, community []poker.Card) float64
}

// Score bands, strongest first.
const (
	RoyalFlushScore    = 1.0
	StraightFlushScore = 0.9
	FourOfAKindScore   = 0.85
	FullHouseScore     = 0.8
	FlushScore         = 0.75
	StraightScore      = 0.7
	ThreeOfAKindScore  = 0.65
	TwoPairScore       = 0.6
	PairScore          = 0.55
	HighCardMinScore   = 0.4
	HighCardMaxScore   = 0.5
)

// Heuristic is the built-in pattern scorer. The zero value is ready to use.
type Heuristic struct{}

var _ Scorer = Heuristic{}

// Score implements Scorer. It never blocks and ignores ctx.
func (Heuristic) Score(_ context.Context, hole, community []poker.Card) float64 {
	cards := make([]poker.Card, 0, len(hole)+len(community))
	cards = append(cards, hole...)
	cards = append(cards, community...)
	return ScoreCards(cards)
}

// ScoreCards rates a pool of cards. An empty pool scores 0, and so does a pool
// holding any card with an invalid rank or suit.
func ScoreCards(cards []poker.Card) float64 {
	var rankCounts [15]int
	var suitCounts [4]int
	var suitRanks [4]uint16
	var ranks uint16
	highest := poker.Rank(0)
	n := 0

	for _, c := range cards {
		if !c.Valid() {
			return 0
		}
		n++
		rankCounts[c.Rank]++
		suitCounts[c.Suit]++
		suitRanks[c.Suit] |= 1 << c.Rank
		ranks |= 1 << c.Rank
		highest = max(highest, c.Rank)
	}
	if n == 0 {
		return 0
	}

	flush := false
	straightFlush := false
	royal := false
	for s, count := range suitCounts {
		if count < 5 {
			continue
		}
		flush = true
		if high := straightHigh(suitRanks[s]); high > 0 {
			straightFlush = true
			if high == poker.Ace {
				royal = true
			}
		}
	}

	quads, trips, pairs := 0, 0, 0
	for _, count := range rankCounts {
		switch {
		case count >= 4:
			quads++
		case count == 3:
			trips++
		case count == 2:
			pairs++
		}
	}

	switch {
	case royal:
		return RoyalFlushScore
	case straightFlush:
		return StraightFlushScore
	case quads > 0:
		return FourOfAKindScore
	case trips > 0 && (pairs > 0 || trips > 1):
		return FullHouseScore
	case flush:
		return FlushScore
	case straightHigh(ranks) > 0:
		return StraightScore
	case trips > 0:
		return ThreeOfAKindScore
	case pairs >= 2:
		return TwoPairScore
	case pairs == 1:
		return PairScore
	default:
		spread := float64(highest-poker.Two) / float64(poker.Ace-poker.Two)
		return HighCardMinScore + spread*(HighCardMaxScore-HighCardMinScore)
	}
}

// straightHigh returns the top rank of the highest five-card run in a rank
// bitmask (bit n set for rank n), or 0. The ace also counts low for the wheel.
func straightHigh(mask uint16) poker.Rank {
	if mask&(1<<poker.Ace) != 0 {
		mask |= 1 << 1
	}
	for high := poker.Ace; high >= poker.Five; high-- {
		run := uint16(0x1f) << (high - 4)
		if mask&run == run {
			return high
		}
	}
	return 0
}
