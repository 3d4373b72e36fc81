// Package ranges parses preflop starting-hand range notation and tests hole
// cards for membership.
package ranges

import (
	"slices"
	"strings"

	"github.com/renato-design/poker-player-the-better-donkey-killers/poker"
)

// Combo is a canonical starting-hand class: the higher rank first (doubled for
// a pocket pair) and whether both cards share a suit. Pairs are never suited.
type Combo struct {
	Ranks  string
	Suited bool
}

// String returns the usual notation: "AA", "AKs", "AKo".
func (c Combo) String() string {
	if c.IsPair() {
		return c.Ranks
	}
	if c.Suited {
		return c.Ranks + "s"
	}
	return c.Ranks + "o"
}

// IsPair reports whether the combo is a pocket pair.
func (c Combo) IsPair() bool {
	return len(c.Ranks) == 2 && c.Ranks[0] == c.Ranks[1]
}

// Count returns how many concrete two-card hands the combo stands for.
func (c Combo) Count() int {
	switch {
	case c.IsPair():
		return 6
	case c.Suited:
		return 4
	default:
		return 12
	}
}

// ComboOf normalises two hole cards to their canonical combo, irrespective of order.
func ComboOf(c1, c2 poker.Card) Combo {
	high, low := c1, c2
	if low.Rank > high.Rank {
		high, low = low, high
	}
	if high.Rank == low.Rank {
		return Combo{Ranks: high.Rank.String() + low.Rank.String()}
	}
	return Combo{Ranks: high.Rank.String() + low.Rank.String(), Suited: c1.Suit == c2.Suit}
}

// Range is a set of starting-hand combos.
type Range struct {
	combos map[Combo]struct{}
}

// NewRange creates a new empty range.
func NewRange() *Range {
	return &Range{combos: make(map[Combo]struct{})}
}

// Parse builds a range from comma separated notation such as
// "A2s+,K9o,77+,JT". Surrounding whitespace and empty tokens are skipped and
// malformed tokens are dropped; use Validate to find out which.
func Parse(notation string) *Range {
	r := NewRange()
	for part := range strings.SplitSeq(notation, ",") {
		part = strings.TrimSpace(part)
		if part == "" {
			continue
		}
		t, ok := parseToken(part)
		if !ok {
			continue
		}
		r.add(t)
	}
	return r
}

// Validate returns the tokens in notation that Parse would drop.
func Validate(notation string) []string {
	var bad []string
	for part := range strings.SplitSeq(notation, ",") {
		part = strings.TrimSpace(part)
		if part == "" {
			continue
		}
		if _, ok := parseToken(part); !ok {
			bad = append(bad, part)
		}
	}
	return bad
}

// InRange reports whether the two hole cards belong to the range in notation.
func InRange(notation string, c1, c2 poker.Card) bool {
	return Parse(notation).Contains(c1, c2)
}

// token is one parsed range element.
type token struct {
	high, low       poker.Rank
	suited, offsuit bool
	plus            bool
}

// parseToken accepts "RR", "RR+", "R1R2", "R1R2s", "R1R2o" each optionally followed by "+".
func parseToken(s string) (token, bool) {
	var t token
	if strings.HasSuffix(s, "+") {
		t.plus = true
		s = s[:len(s)-1]
	}
	if len(s) < 2 || len(s) > 3 {
		return t, false
	}

	r1, ok1 := poker.RankFromChar(s[0])
	r2, ok2 := poker.RankFromChar(s[1])
	if !ok1 || !ok2 {
		return t, false
	}
	t.high, t.low = max(r1, r2), min(r1, r2)

	if t.high == t.low {
		// Pocket pairs cannot carry a suit modifier.
		return t, len(s) == 2
	}

	if len(s) == 2 {
		t.suited, t.offsuit = true, true
		return t, true
	}
	switch s[2] {
	case 's':
		t.suited = true
	case 'o':
		t.offsuit = true
	default:
		return t, false
	}
	return t, true
}

func (r *Range) add(t token) {
	if t.high == t.low {
		top := t.high
		if t.plus {
			top = poker.Ace
		}
		for rank := t.high; rank <= top; rank++ {
			r.combos[Combo{Ranks: rank.String() + rank.String()}] = struct{}{}
		}
		return
	}

	// "K9+" walks the second rank up to one below the first.
	top := t.low
	if t.plus {
		top = t.high - 1
	}
	for rank := t.low; rank <= top; rank++ {
		ranks := t.high.String() + rank.String()
		if t.suited {
			r.combos[Combo{Ranks: ranks, Suited: true}] = struct{}{}
		}
		if t.offsuit {
			r.combos[Combo{Ranks: ranks, Suited: false}] = struct{}{}
		}
	}
}

// Contains checks whether the hole cards are in the range, in either order.
func (r *Range) Contains(c1, c2 poker.Card) bool {
	if r == nil || !c1.Valid() || !c2.Valid() || c1 == c2 {
		return false
	}
	_, ok := r.combos[ComboOf(c1, c2)]
	return ok
}

// ContainsCombo checks a canonical combo directly.
func (r *Range) ContainsCombo(c Combo) bool {
	if r == nil {
		return false
	}
	_, ok := r.combos[c]
	return ok
}

// Len returns the number of distinct combos (starting-hand classes).
func (r *Range) Len() int {
	return len(r.combos)
}

// Size returns the number of concrete two-card hands in the range.
func (r *Range) Size() int {
	n := 0
	for c := range r.combos {
		n += c.Count()
	}
	return n
}

// Combos returns the combos sorted strongest rank pair first.
func (r *Range) Combos() []Combo {
	out := make([]Combo, 0, len(r.combos))
	for c := range r.combos {
		out = append(out, c)
	}
	slices.SortFunc(out, compareCombos)
	return out
}

// HoleCards expands the range into every concrete two-card hand it contains.
func (r *Range) HoleCards() [][2]poker.Card {
	var out [][2]poker.Card
	for _, c := range r.Combos() {
		high, _ := poker.RankFromChar(c.Ranks[0])
		low, _ := poker.RankFromChar(c.Ranks[1])
		for i, s1 := range poker.Suits {
			for j, s2 := range poker.Suits {
				switch {
				case c.IsPair() && j <= i:
					continue
				case !c.IsPair() && c.Suited && s1 != s2:
					continue
				case !c.IsPair() && !c.Suited && s1 == s2:
					continue
				}
				out = append(out, [2]poker.Card{poker.NewCard(high, s1), poker.NewCard(low, s2)})
			}
		}
	}
	return out
}

// String renders the range back to comma separated notation, one token per combo.
func (r *Range) String() string {
	combos := r.Combos()
	parts := make([]string, len(combos))
	for i, c := range combos {
		parts[i] = c.String()
	}
	return strings.Join(parts, ",")
}

func compareCombos(a, b Combo) int {
	ah, _ := poker.RankFromChar(a.Ranks[0])
	bh, _ := poker.RankFromChar(b.Ranks[0])
	if ah != bh {
		return int(bh - ah)
	}
	al, _ := poker.RankFromChar(a.Ranks[1])
	bl, _ := poker.RankFromChar(b.Ranks[1])
	if al != bl {
		return int(bl - al)
	}
	switch {
	case a.Suited == b.Suited:
		return 0
	case a.Suited:
		return -1
	default:
		return 1
	}
}
