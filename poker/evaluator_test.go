package poker

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/renato-design/poker-player-the-better-donkey-killers/internal/randutil"
)

func TestClassifyFiveCards(t *testing.T) {
	t.Parallel()
	tests := []struct {
		name  string
		cards string
		want  HandCategory
	}{
		{"royal flush", "AsKsQsJsTs", RoyalFlush},
		{"straight flush", "9h8h7h6h5h", StraightFlush},
		{"wheel straight flush", "2d3d4d5dAd", StraightFlush},
		{"four of a kind", "KsKhKdKc2s", FourOfAKind},
		{"full house", "QsQhQd3c3s", FullHouse},
		{"flush", "As9s7s4s2s", Flush},
		{"broadway straight", "AhKdQcJsTs", Straight},
		{"wheel straight", "Ah2d3c4s5s", Straight},
		{"three of a kind", "7s7h7dKc2s", ThreeOfAKind},
		{"two pair", "JsJh4d4cAs", TwoPair},
		{"pair", "9s9hKdQc2s", Pair},
		{"high card", "AsJh8d5c3s", HighCard},
		{"no wrap-around straight", "QsKhAd2c3s", HighCard},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			got, err := Classify(MustParseCards(tt.cards))
			require.NoError(t, err)
			assert.Equal(t, tt.want, got, "Classify(%s)", tt.cards)
		})
	}
}

func TestClassifyHoleCardsOnly(t *testing.T) {
	t.Parallel()
	got, err := Classify(MustParseCards("QhQd"))
	require.NoError(t, err)
	assert.Equal(t, Pair, got)

	got, err = Classify(MustParseCards("AhKs"))
	require.NoError(t, err)
	assert.Equal(t, HighCard, got)
}

func TestClassifyBestOfSeven(t *testing.T) {
	t.Parallel()
	tests := []struct {
		name  string
		cards string
		want  HandCategory
	}{
		{"trips on the flop with six cards", "QhQdQc2s7hJd", ThreeOfAKind},
		{"quads on the river", "KhKdKcKs7h9c2d", FourOfAKind},
		{"flush beats straight", "9h8h7h6d5h2hKc", Flush},
		{"straight flush hidden in seven", "6s7s8s9sTsTdTh", StraightFlush},
		{"full house from two trips", "8s8h8d4c4s4hAd", FullHouse},
		{"two pair from three pairs", "AsAhKdKc3s3h9d", TwoPair},
		{"royal flush with board noise", "AhKhQhJhTh9h8h", RoyalFlush},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			got, err := Classify(MustParseCards(tt.cards))
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestBestHandReturnsWinningSubset(t *testing.T) {
	t.Parallel()
	category, best, err := BestHand(MustParseCards("KhKdKcKs7h9c2d"))
	require.NoError(t, err)
	assert.Equal(t, FourOfAKind, category)
	require.Len(t, best, 5)

	again, err := Classify(best)
	require.NoError(t, err)
	assert.Equal(t, category, again)
}

func TestClassifyErrors(t *testing.T) {
	t.Parallel()

	_, err := Classify([]Card{{Rank: 1, Suit: Spades}, NewCard(Ace, Hearts)})
	assert.ErrorIs(t, err, ErrInvalidRank)

	_, err = Classify([]Card{{Rank: Ace, Suit: 9}, NewCard(Ace, Hearts)})
	assert.ErrorIs(t, err, ErrInvalidSuit)

	for _, n := range []int{0, 1, 3, 4, 8} {
		cards := make([]Card, n)
		for i := range cards {
			cards[i] = NewCard(Ranks[i%len(Ranks)], Suits[i%len(Suits)])
		}
		_, err := Classify(cards)
		assert.ErrorIs(t, err, ErrCardCount, "n=%d", n)
	}
}

func TestCombinations(t *testing.T) {
	t.Parallel()
	assert.Len(t, Combinations(7, 5), 21)
	assert.Len(t, Combinations(6, 5), 6)
	assert.Len(t, Combinations(5, 5), 1)
	assert.Equal(t, [][]int{{0, 1}, {0, 2}, {1, 2}}, Combinations(3, 2))
	assert.Nil(t, Combinations(3, 4))

	seen := make(map[[5]int]bool)
	for _, idx := range Combinations(7, 5) {
		var key [5]int
		copy(key[:], idx)
		assert.False(t, seen[key], "duplicate subset %v", idx)
		seen[key] = true
		for i := 1; i < len(idx); i++ {
			assert.Less(t, idx[i-1], idx[i], "indices must be strictly increasing")
		}
	}
}

func TestClassifyPermutationInvariant(t *testing.T) {
	t.Parallel()
	rng := randutil.New(42)
	deck := NewDeck(rng)

	for range 500 {
		if deck.CardsRemaining() < 5 {
			deck.Shuffle()
		}
		hand := deck.Deal(5)
		want, err := Classify(hand)
		require.NoError(t, err)

		for range 5 {
			shuffled := append([]Card(nil), hand...)
			rng.Shuffle(len(shuffled), func(i, j int) { shuffled[i], shuffled[j] = shuffled[j], shuffled[i] })
			got, err := Classify(shuffled)
			require.NoError(t, err)
			assert.Equal(t, want, got, "permutation of %v", hand)
		}
	}
}

func TestClassifySevenIsMaximal(t *testing.T) {
	t.Parallel()
	deck := NewDeck(randutil.New(7))

	for range 300 {
		if deck.CardsRemaining() < 7 {
			deck.Shuffle()
		}
		seven := deck.Deal(7)
		best, err := Classify(seven)
		require.NoError(t, err)

		for _, idx := range Combinations(7, 5) {
			five := make([]Card, 0, 5)
			for _, i := range idx {
				five = append(five, seven[i])
			}
			sub, err := Classify(five)
			require.NoError(t, err)
			assert.GreaterOrEqual(t, best, sub, "seven %v subset %v", seven, five)
		}
	}
}

func TestHandCategoryString(t *testing.T) {
	t.Parallel()
	assert.Equal(t, "Royal Flush", RoyalFlush.String())
	assert.Equal(t, "Three of a Kind", ThreeOfAKind.String())
	assert.Equal(t, "Unknown", HandCategory(42).String())
	for i := 1; i < len(Categories); i++ {
		assert.Less(t, Categories[i-1], Categories[i])
	}
}

func TestDescribe(t *testing.T) {
	t.Parallel()
	desc, err := Describe(MustParseCards("KhKdKc2s2h"))
	require.NoError(t, err)
	assert.NotEmpty(t, desc)

	desc, err = Describe(MustParseCards("QhQdQc2s7hJd"))
	require.NoError(t, err)
	assert.NotEmpty(t, desc)

	_, err = Describe(MustParseCards("AhKs"))
	assert.ErrorIs(t, err, ErrCardCount)
}

func TestDeckDealsUniqueCards(t *testing.T) {
	t.Parallel()
	deck := NewDeck(randutil.New(1))
	seen := make(map[Card]bool)
	for deck.CardsRemaining() > 0 {
		c := deck.Deal(1)[0]
		assert.True(t, c.Valid())
		assert.False(t, seen[c], "duplicate %v", c)
		seen[c] = true
	}
	assert.Len(t, seen, 52)
	assert.Nil(t, deck.Deal(1))
}
