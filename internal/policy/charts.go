package policy

import (
	"cmp"
	"fmt"
	"slices"

	"github.com/renato-design/poker-player-the-better-donkey-killers/internal/ranges"
	"github.com/renato-design/poker-player-the-better-donkey-killers/internal/table"
	"github.com/renato-design/poker-player-the-better-donkey-killers/poker"
)

// BucketAction is what a chart does with a hand that is in range.
type BucketAction string

const (
	// Push commits the whole stack.
	Push BucketAction = "push"
	// MinRaise bets the table's minimum raise.
	MinRaise BucketAction = "raise"
)

// ParseBucketAction accepts "push" or "raise".
func ParseBucketAction(s string) (BucketAction, error) {
	switch BucketAction(s) {
	case Push, MinRaise:
		return BucketAction(s), nil
	default:
		return "", fmt.Errorf("unknown chart action %q", s)
	}
}

// Bucket is the range played at a position once the stack is at least MinBB
// big blinds deep.
type Bucket struct {
	MinBB    int
	Notation string
	Action   BucketAction
	hands    *ranges.Range
}

// NewBucket parses notation once; malformed tokens are dropped.
func NewBucket(minBB int, notation string, action BucketAction) Bucket {
	return Bucket{
		MinBB:    minBB,
		Notation: notation,
		Action:   action,
		hands:    ranges.Parse(notation),
	}
}

// Contains reports whether the hole cards are in the bucket's range.
func (b Bucket) Contains(c1, c2 poker.Card) bool {
	if b.hands == nil {
		return false
	}
	return b.hands.Contains(c1, c2)
}

// Range exposes the parsed range.
func (b Bucket) Range() *ranges.Range {
	return b.hands
}

// Charts holds the push/fold buckets for each position.
type Charts map[table.Position][]Bucket

// Lookup picks the deepest bucket whose MinBB does not exceed bigBlinds.
func (c Charts) Lookup(pos table.Position, bigBlinds int) (Bucket, bool) {
	var (
		best  Bucket
		found bool
	)
	for _, b := range c[pos] {
		if b.MinBB <= bigBlinds && (!found || b.MinBB > best.MinBB) {
			best, found = b, true
		}
	}
	return best, found
}

// Sorted returns the buckets for a position, deepest first.
func (c Charts) Sorted(pos table.Position) []Bucket {
	buckets := slices.Clone(c[pos])
	slices.SortFunc(buckets, func(a, b Bucket) int {
		return cmp.Compare(b.MinBB, a.MinBB)
	})
	return buckets
}

const (
	buttonDeep  = "A2s+,K5s+,Q7s+,J8s+,T8s+,97s+,86s+,76s,22+,A4o+,K9o+,Q9o+,JTo,T9o"
	buttonMid   = "A2s+,K4s+,Q6s+,J7s+,T8s+,97s+,87s,76s,22+,A4o+,K9o+,JTo,T9o"
	buttonShort = "A2s+,K2s+,Q5s+,J7s+,T7s+,97s+,87s,76s,22+,A2o+,K5o+,Q9o+,J9o,T9o"
	openRaise   = "A2s+,K3s+,Q7s+,J8s+,T8s+,97s+,86s+,76s,22+,A5o+,K9o+,Q9o+,JTo,T9o"
	cutoffMid   = "A2s+,K5s+,Q8s+,J8s+,T8s+,98s+,87s,22+,A2o+,KTo+,QTo+,JTo"
	cutoffShort = "A2s+,K2s+,Q6s+,J7s+,T7s+,98s,87s,22+,A2o+,K6o+,Q9o+,J9o+"
	blindsMid   = "A2s+,K9s+,Q9s+,J9s+,T9s+,98s+,22+,A8o+,KJo+"
	blindsShort = "A2s+,K2s+,Q2s+,J2s+,T2s+,92s+,83s+,74s+,63s+,53s+,43s+,22+,A2o+,K2o+,Q2o+,J2o+,T3o+,96o+,86o+,76o+"
)

// DefaultCharts returns the built-in push/fold charts. The 20BB raise buckets
// only come into play when the push/fold depth limit is raised to 20 or more.
func DefaultCharts() Charts {
	blinds := []Bucket{
		NewBucket(20, openRaise, MinRaise),
		NewBucket(15, blindsMid, Push),
		NewBucket(10, blindsMid, Push),
		NewBucket(0, blindsShort, Push),
	}
	return Charts{
		table.Button: {
			NewBucket(15, buttonDeep, Push),
			NewBucket(10, buttonMid, Push),
			NewBucket(5, buttonShort, Push),
			NewBucket(0, buttonShort, Push),
		},
		table.Cutoff: {
			NewBucket(20, openRaise, MinRaise),
			NewBucket(15, cutoffMid, Push),
			NewBucket(10, cutoffMid, Push),
			NewBucket(5, cutoffShort, Push),
			NewBucket(0, cutoffShort, Push),
		},
		table.SmallBlind: blinds,
		table.BigBlind:   slices.Clone(blinds),
	}
}
