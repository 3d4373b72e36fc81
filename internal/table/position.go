package table

// Street is a betting round.
type Street int

const (
	Preflop Street = iota
	Flop
	Turn
	River
)

func (s Street) String() string {
	switch s {
	case Preflop:
		return "preflop"
	case Flop:
		return "flop"
	case Turn:
		return "turn"
	case River:
		return "river"
	default:
		return "unknown"
	}
}

// StreetFor maps a community card count (0, 3, 4, 5) to its street.
func StreetFor(communityCards int) (Street, bool) {
	switch communityCards {
	case 0:
		return Preflop, true
	case 3:
		return Flop, true
	case 4:
		return Turn, true
	case 5:
		return River, true
	default:
		return Preflop, false
	}
}

// Position is the acting seat's classification for preflop charts.
type Position int

const (
	Button Position = iota
	Cutoff
	SmallBlind
	BigBlind
)

// Positions lists every position.
var Positions = [...]Position{Button, Cutoff, SmallBlind, BigBlind}

func (p Position) String() string {
	switch p {
	case Button:
		return "button"
	case Cutoff:
		return "cutoff"
	case SmallBlind:
		return "small_blind"
	case BigBlind:
		return "big_blind"
	default:
		return "unknown"
	}
}

// ParsePosition is the inverse of Position.String.
func ParsePosition(s string) (Position, bool) {
	for _, p := range Positions {
		if p.String() == s {
			return p, true
		}
	}
	return 0, false
}

// ResolvePosition classifies the acting seat. Checks run in order and the
// first match wins:
//
//   - the dealer seat is the button;
//   - seat seats-2 is the cutoff, or seat 0 on tables of two or fewer;
//   - dealer+1 is the small blind and dealer+2 the big blind;
//   - anything else is treated as the cutoff.
//
// The last rule is a simplification for tables with more than four players.
func ResolvePosition(dealer, acting, seats int) Position {
	if seats <= 0 {
		return Cutoff
	}
	cutoff := 0
	if seats > 2 {
		cutoff = seats - 2
	}
	switch acting {
	case dealer:
		return Button
	case cutoff:
		return Cutoff
	case (dealer + 1) % seats:
		return SmallBlind
	case (dealer + 2) % seats:
		return BigBlind
	default:
		return Cutoff
	}
}
