// Package policy turns a game state into a chip amount.
//
// Every decision is computed from the state alone: the street comes from the
// number of community cards, so there is no state carried between calls and a
// Policy may be shared across goroutines.
package policy

import (
	"context"

	"github.com/charmbracelet/log"
	"github.com/coder/quartz"

	"github.com/renato-design/poker-player-the-better-donkey-killers/internal/strength"
	"github.com/renato-design/poker-player-the-better-donkey-killers/internal/table"
	"github.com/renato-design/poker-player-the-better-donkey-killers/poker"
)

// Strategy holds the tunable constants of the betting policy.
type Strategy struct {
	// PushFoldMaxBB is the deepest stack, in big blinds, at which unraised
	// preflop pots are played from the charts.
	PushFoldMaxBB int
	// CallThreshold is the minimum score to continue preflop when facing a bet
	// outside the charts.
	CallThreshold float64
	// OpenThreshold and StrongOpenThreshold size a postflop bet when nothing
	// is owed: one or two minimum raises.
	OpenThreshold       float64
	StrongOpenThreshold float64

	Preflop SizingTable
	Flop    SizingTable
	Late    SizingTable
}

// DefaultStrategy returns the canonical sizing tables.
func DefaultStrategy() Strategy {
	allIn := Action{Kind: AllIn}
	return Strategy{
		PushFoldMaxBB:       15,
		CallThreshold:       0.45,
		OpenThreshold:       0.6,
		StrongOpenThreshold: 0.75,
		Preflop: SizingTable{
			poker.HighCard:      {Kind: Call},
			poker.Pair:          RaiseBy(1),
			poker.TwoPair:       RaiseBy(1),
			poker.ThreeOfAKind:  RaiseBy(1.5),
			poker.Straight:      RaiseBy(2),
			poker.Flush:         RaiseBy(2),
			poker.FullHouse:     allIn,
			poker.FourOfAKind:   allIn,
			poker.StraightFlush: allIn,
			poker.RoyalFlush:    allIn,
		},
		Flop: SizingTable{
			poker.HighCard:      {Kind: Fold},
			poker.Pair:          {Kind: Call},
			poker.TwoPair:       {Kind: Call},
			poker.ThreeOfAKind:  RaiseBy(2),
			poker.Straight:      RaiseBy(2.5),
			poker.Flush:         RaiseBy(3),
			poker.FullHouse:     allIn,
			poker.FourOfAKind:   allIn,
			poker.StraightFlush: allIn,
			poker.RoyalFlush:    allIn,
		},
		Late: SizingTable{
			poker.HighCard:      {Kind: Fold},
			poker.Pair:          {Kind: Fold},
			poker.TwoPair:       {Kind: Call},
			poker.ThreeOfAKind:  RaiseBy(1),
			poker.Straight:      RaiseBy(1.5),
			poker.Flush:         RaiseBy(2),
			poker.FullHouse:     allIn,
			poker.FourOfAKind:   allIn,
			poker.StraightFlush: allIn,
			poker.RoyalFlush:    allIn,
		},
	}
}

// Decision is an amount together with what led to it.
type Decision struct {
	Amount    int
	Street    table.Street
	Position  table.Position
	Category  poker.HandCategory
	Score     float64
	BigBlinds int
	HoleClass poker.HoleCardCategory
	Reason    string
}

// Policy decides bets.
type Policy struct {
	strategy Strategy
	charts   Charts
	scorer   strength.Scorer
	logger   *log.Logger
	clock    quartz.Clock
}

// Option configures a Policy.
type Option func(*Policy)

// WithClock sets the clock used to time decisions.
func WithClock(clock quartz.Clock) Option {
	return func(p *Policy) { p.clock = clock }
}

// New creates a policy. A nil scorer uses the built-in heuristic and nil
// charts use DefaultCharts.
func New(strategy Strategy, charts Charts, scorer strength.Scorer, logger *log.Logger, opts ...Option) *Policy {
	if scorer == nil {
		scorer = strength.Heuristic{}
	}
	if charts == nil {
		charts = DefaultCharts()
	}
	if logger == nil {
		logger = log.Default()
	}
	p := &Policy{
		strategy: strategy,
		charts:   charts,
		scorer:   scorer,
		logger:   logger.WithPrefix("policy"),
		clock:    quartz.NewReal(),
	}
	for _, opt := range opts {
		opt(p)
	}
	return p
}

// Decide returns the number of chips to put in: 0 folds or checks, the
// required call calls, anything more raises. The result is always within
// [0, stack] of the acting player.
func (p *Policy) Decide(ctx context.Context, gs table.GameState) int {
	return p.Explain(ctx, gs).Amount
}

// Explain is Decide with the reasoning attached.
func (p *Policy) Explain(ctx context.Context, gs table.GameState) Decision {
	start := p.clock.Now()
	d := p.decide(ctx, gs)

	p.logger.Debug("Decision",
		"game", gs.GameID,
		"street", d.Street,
		"position", d.Position,
		"hole", d.HoleClass,
		"category", d.Category,
		"score", d.Score,
		"bb", d.BigBlinds,
		"amount", d.Amount,
		"reason", d.Reason,
		"elapsed", p.clock.Since(start))
	return d
}

func (p *Policy) decide(ctx context.Context, gs table.GameState) Decision {
	me, ok := gs.Me()
	if !ok {
		return Decision{Reason: "no acting player"}
	}
	if me.Stack <= 0 {
		return Decision{Reason: "no chips"}
	}

	d := Decision{
		Position:  gs.Position(),
		BigBlinds: gs.BigBlindsLeft(),
	}

	required := gs.RequiredCall()
	if required < 0 {
		d.Reason = "already committed beyond the buy-in"
		return d
	}

	street, ok := gs.Street()
	if !ok {
		d.Reason = "unexpected community card count"
		return d
	}
	d.Street = street

	c1, c2, ok := me.HoleCards.Pair()
	if !ok {
		d.Reason = "hole cards unknown"
		return d
	}
	d.HoleClass = poker.CategorizeHoleCards(c1, c2)

	if street == table.Preflop && required == 0 && gs.SmallBlind > 0 && d.BigBlinds <= p.strategy.PushFoldMaxBB {
		return p.chart(gs, me, c1, c2, d)
	}

	hole := []poker.Card{c1, c2}
	cards := append(hole[:2:2], gs.CommunityCards...)
	category, err := poker.Classify(cards)
	if err != nil {
		d.Reason = "classification failed: " + err.Error()
		return d
	}
	d.Category = category
	d.Score = p.scorer.Score(ctx, hole, gs.CommunityCards)

	var action Action
	switch {
	case street == table.Preflop && required == 0:
		d.Reason = "check, deep stack in an unraised pot"
		return d
	case street == table.Preflop && d.Score < p.strategy.CallThreshold:
		d.Reason = "score below call threshold"
		return d
	case street == table.Preflop:
		action = p.strategy.Preflop.For(category)
	case required == 0:
		action = p.open(d.Score)
	case street == table.Flop:
		action = p.strategy.Flop.For(category)
	default:
		action = p.strategy.Late.For(category)
	}

	d.Amount = clamp(action.Amount(required, gs.MinimumRaise, me.Stack), me.Stack)
	d.Reason = action.String()
	if d.Amount == 0 && required == 0 {
		d.Reason = "check"
	}
	return d
}

func (p *Policy) chart(gs table.GameState, me table.Player, c1, c2 poker.Card, d Decision) Decision {
	bucket, ok := p.charts.Lookup(d.Position, d.BigBlinds)
	if !ok {
		d.Reason = "no chart for position"
		return d
	}
	if !bucket.Contains(c1, c2) {
		d.Reason = "outside " + d.Position.String() + " chart"
		return d
	}

	switch bucket.Action {
	case MinRaise:
		d.Amount = clamp(gs.MinimumRaise, me.Stack)
		d.Reason = "chart raise"
	default:
		d.Amount = me.Stack
		d.Reason = "chart push"
	}
	return d
}

func (p *Policy) open(score float64) Action {
	switch {
	case score >= p.strategy.StrongOpenThreshold:
		return RaiseBy(2)
	case score >= p.strategy.OpenThreshold:
		return RaiseBy(1)
	default:
		return Action{Kind: Call}
	}
}

func clamp(amount, stack int) int {
	return max(0, min(amount, stack))
}
