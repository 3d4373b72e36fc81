package policy

import (
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/renato-design/poker-player-the-better-donkey-killers/poker"
)

// ActionKind is what the bot does with a hand of a given category.
type ActionKind int

const (
	Fold ActionKind = iota
	Call
	Raise
	AllIn
)

func (k ActionKind) String() string {
	switch k {
	case Fold:
		return "fold"
	case Call:
		return "call"
	case Raise:
		return "raise"
	case AllIn:
		return "all-in"
	default:
		return "unknown"
	}
}

// Action is a sizing rule. For Raise the amount is the required call plus
// K times the minimum raise.
type Action struct {
	Kind ActionKind
	K    float64
}

// RaiseBy is shorthand for a Raise of k minimum raises over the call.
func RaiseBy(k float64) Action {
	return Action{Kind: Raise, K: k}
}

// Amount converts the rule to chips. The result is not clamped.
func (a Action) Amount(requiredCall, minimumRaise, stack int) int {
	switch a.Kind {
	case Call:
		return requiredCall
	case Raise:
		return requiredCall + int(a.K*float64(minimumRaise))
	case AllIn:
		return stack
	default:
		return 0
	}
}

// String renders the rule in the form ParseAction accepts.
func (a Action) String() string {
	if a.Kind == Raise {
		return "raise " + strconv.FormatFloat(a.K, 'g', -1, 64)
	}
	return a.Kind.String()
}

// MaxRaiseMultiplier bounds the k accepted by ParseAction.
const MaxRaiseMultiplier = 100

// ParseAction parses "fold", "call", "all-in" or "raise <k>".
func ParseAction(s string) (Action, error) {
	fields := strings.Fields(strings.ToLower(s))
	if len(fields) == 0 {
		return Action{}, fmt.Errorf("empty action")
	}

	switch fields[0] {
	case "fold":
		if len(fields) == 1 {
			return Action{Kind: Fold}, nil
		}
	case "call":
		if len(fields) == 1 {
			return Action{Kind: Call}, nil
		}
	case "all-in", "allin", "push":
		if len(fields) == 1 {
			return Action{Kind: AllIn}, nil
		}
	case "raise":
		if len(fields) != 2 {
			return Action{}, fmt.Errorf("raise %q needs exactly one multiplier", s)
		}
		k, err := strconv.ParseFloat(fields[1], 64)
		if err != nil || math.IsNaN(k) || k < 0 || k > MaxRaiseMultiplier {
			return Action{}, fmt.Errorf("invalid raise multiplier %q", fields[1])
		}
		return RaiseBy(k), nil
	default:
		return Action{}, fmt.Errorf("unknown action %q", s)
	}
	return Action{}, fmt.Errorf("unexpected arguments in action %q", s)
}

// SizingTable maps every hand category to an action.
type SizingTable [len(poker.Categories)]Action

// For returns the rule for a category; unknown categories fold.
func (t SizingTable) For(c poker.HandCategory) Action {
	if int(c) >= len(t) {
		return Action{Kind: Fold}
	}
	return t[c]
}
