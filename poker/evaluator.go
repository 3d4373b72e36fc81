package poker

import (
	"errors"
	"fmt"
	"slices"
)

// ErrCardCount is returned when Classify is given a card count it cannot evaluate.
var ErrCardCount = errors.New("unsupported number of cards")

// HandCategory enumerates the categories of poker hands ordered from weakest to strongest.
type HandCategory uint8

const (
	HighCard HandCategory = iota
	Pair
	TwoPair
	ThreeOfAKind
	Straight
	Flush
	FullHouse
	FourOfAKind
	StraightFlush
	RoyalFlush
)

// Categories lists every category from weakest to strongest.
var Categories = [...]HandCategory{
	HighCard, Pair, TwoPair, ThreeOfAKind, Straight,
	Flush, FullHouse, FourOfAKind, StraightFlush, RoyalFlush,
}

// String returns a human-readable category name.
func (hc HandCategory) String() string {
	switch hc {
	case HighCard:
		return "High Card"
	case Pair:
		return "Pair"
	case TwoPair:
		return "Two Pair"
	case ThreeOfAKind:
		return "Three of a Kind"
	case Straight:
		return "Straight"
	case Flush:
		return "Flush"
	case FullHouse:
		return "Full House"
	case FourOfAKind:
		return "Four of a Kind"
	case StraightFlush:
		return "Straight Flush"
	case RoyalFlush:
		return "Royal Flush"
	default:
		return "Unknown"
	}
}

// Classify returns the category of the strongest hand that can be made from cards.
//
// Two cards (hole cards only) classify as Pair or HighCard. Five cards are
// classified directly. Six or seven cards are classified as the best of every
// 5-card subset.
func Classify(cards []Card) (HandCategory, error) {
	category, _, err := BestHand(cards)
	return category, err
}

// BestHand is Classify that also returns the cards forming the hand. For two
// cards the returned slice is the input.
func BestHand(cards []Card) (HandCategory, []Card, error) {
	for _, c := range cards {
		if !c.Rank.Valid() {
			return HighCard, nil, fmt.Errorf("%w: %d", ErrInvalidRank, c.Rank)
		}
		if !c.Suit.Valid() {
			return HighCard, nil, fmt.Errorf("%w: %d", ErrInvalidSuit, c.Suit)
		}
	}

	switch n := len(cards); {
	case n == 2:
		if cards[0].Rank == cards[1].Rank {
			return Pair, cards, nil
		}
		return HighCard, cards, nil
	case n == 5:
		return classifyFive(cards), cards, nil
	case n == 6 || n == 7:
		best := HighCard
		var bestCards []Card
		five := make([]Card, 5)
		for _, idx := range Combinations(n, 5) {
			for i, j := range idx {
				five[i] = cards[j]
			}
			if cat := classifyFive(five); bestCards == nil || cat > best {
				best = cat
				bestCards = slices.Clone(five)
			}
		}
		return best, bestCards, nil
	default:
		return HighCard, nil, fmt.Errorf("%w: %d", ErrCardCount, n)
	}
}

// classifyFive categorises exactly five valid cards. First match wins.
func classifyFive(cards []Card) HandCategory {
	var counts [15]int
	values := make([]int, 0, 5)
	flush := true
	for i, c := range cards {
		counts[c.Rank]++
		values = append(values, int(c.Rank))
		if i > 0 && c.Suit != cards[0].Suit {
			flush = false
		}
	}
	slices.Sort(values)

	multiplicities := make([]int, 0, 5)
	for _, n := range counts {
		if n > 0 {
			multiplicities = append(multiplicities, n)
		}
	}
	slices.SortFunc(multiplicities, func(a, b int) int { return b - a })
	top := multiplicities[0]
	second := 0
	if len(multiplicities) > 1 {
		second = multiplicities[1]
	}

	straight := isStraight(values)

	switch {
	case straight && flush && values[4] == int(Ace) && values[0] == int(Ten):
		return RoyalFlush
	case straight && flush:
		return StraightFlush
	case top == 4:
		return FourOfAKind
	case top == 3 && second == 2:
		return FullHouse
	case flush:
		return Flush
	case straight:
		return Straight
	case top == 3:
		return ThreeOfAKind
	case top == 2 && second == 2:
		return TwoPair
	case top == 2:
		return Pair
	default:
		return HighCard
	}
}

// isStraight checks five sorted values for a run or the wheel (A-2-3-4-5).
func isStraight(sorted []int) bool {
	if slices.Equal(sorted, []int{2, 3, 4, 5, 14}) {
		return true
	}
	for i := 1; i < len(sorted); i++ {
		if sorted[i] != sorted[i-1]+1 {
			return false
		}
	}
	return true
}

// Combinations returns every k-element subset of the indices 0..n-1 in
// lexicographic order. It is iterative and yields C(n, k) entries.
func Combinations(n, k int) [][]int {
	if k < 0 || k > n {
		return nil
	}
	idx := make([]int, k)
	for i := range idx {
		idx[i] = i
	}

	var out [][]int
	for {
		out = append(out, slices.Clone(idx))

		// Find the rightmost index that can still be incremented.
		i := k - 1
		for i >= 0 && idx[i] == n-k+i {
			i--
		}
		if i < 0 {
			return out
		}
		idx[i]++
		for j := i + 1; j < k; j++ {
			idx[j] = idx[j-1] + 1
		}
	}
}
