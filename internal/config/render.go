package config

import (
	"fmt"

	"github.com/hashicorp/hcl/v2/gohcl"
	"github.com/hashicorp/hcl/v2/hclwrite"

	"github.com/renato-design/poker-player-the-better-donkey-killers/internal/fileutil"
	"github.com/renato-design/poker-player-the-better-donkey-killers/internal/policy"
	"github.com/renato-design/poker-player-the-better-donkey-killers/internal/table"
	"github.com/renato-design/poker-player-the-better-donkey-killers/poker"
)

// Example is DefaultConfig with the built-in sizing tables and charts spelled
// out, so a rendered file shows every knob.
func Example() *Config {
	cfg := DefaultConfig()
	s := policy.DefaultStrategy()
	cfg.Strategy.Preflop = sizingSettings(s.Preflop)
	cfg.Strategy.Flop = sizingSettings(s.Flop)
	cfg.Strategy.Late = sizingSettings(s.Late)

	charts := policy.DefaultCharts()
	for _, pos := range table.Positions {
		rc := RangeConfig{Position: pos.String()}
		for _, b := range charts.Sorted(pos) {
			rc.Buckets = append(rc.Buckets, BucketConfig{
				MinBB:  b.MinBB,
				Hands:  b.Notation,
				Action: string(b.Action),
			})
		}
		cfg.Ranges = append(cfg.Ranges, rc)
	}
	return cfg
}

func sizingSettings(t policy.SizingTable) *SizingSettings {
	return &SizingSettings{
		HighCard:      t[poker.HighCard].String(),
		Pair:          t[poker.Pair].String(),
		TwoPair:       t[poker.TwoPair].String(),
		ThreeOfAKind:  t[poker.ThreeOfAKind].String(),
		Straight:      t[poker.Straight].String(),
		Flush:         t[poker.Flush].String(),
		FullHouse:     t[poker.FullHouse].String(),
		FourOfAKind:   t[poker.FourOfAKind].String(),
		StraightFlush: t[poker.StraightFlush].String(),
		RoyalFlush:    t[poker.RoyalFlush].String(),
	}
}

// Render encodes cfg as HCL.
func Render(cfg *Config) []byte {
	f := hclwrite.NewEmptyFile()
	gohcl.EncodeIntoBody(cfg, f.Body())
	return f.Bytes()
}

// Save renders cfg to filename atomically.
func Save(filename string, cfg *Config) error {
	if err := fileutil.WriteFileAtomic(filename, Render(cfg), 0o644); err != nil {
		return fmt.Errorf("save config: %w", err)
	}
	return nil
}
