// Package config loads the bot's HCL configuration.
package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/hashicorp/hcl/v2/gohcl"
	"github.com/hashicorp/hcl/v2/hclparse"
	"github.com/joho/godotenv"

	"github.com/renato-design/poker-player-the-better-donkey-killers/internal/policy"
	"github.com/renato-design/poker-player-the-better-donkey-killers/internal/ranges"
	"github.com/renato-design/poker-player-the-better-donkey-killers/internal/table"
	"github.com/renato-design/poker-player-the-better-donkey-killers/poker"
)

// DefaultFile is where the CLI looks for configuration.
const DefaultFile = "donkeykilla.hcl"

// Config is the complete configuration.
type Config struct {
	Server   *ServerSettings   `hcl:"server,block"`
	Strategy *StrategySettings `hcl:"strategy,block"`
	Scorer   *ScorerSettings   `hcl:"scorer,block"`
	Ranges   []RangeConfig     `hcl:"range,block"`
}

// ServerSettings configures the HTTP listener.
type ServerSettings struct {
	Address  string `hcl:"address,optional"`
	Port     int    `hcl:"port,optional"`
	LogLevel string `hcl:"log_level,optional"`
}

// StrategySettings overrides policy constants. Zero values keep the defaults.
type StrategySettings struct {
	PushFoldMaxBB       int             `hcl:"push_fold_max_bb,optional"`
	CallThreshold       float64         `hcl:"call_threshold,optional"`
	OpenThreshold       float64         `hcl:"open_threshold,optional"`
	StrongOpenThreshold float64         `hcl:"strong_open_threshold,optional"`
	Preflop             *SizingSettings `hcl:"preflop,block"`
	Flop                *SizingSettings `hcl:"flop,block"`
	Late                *SizingSettings `hcl:"late,block"`
}

// SizingSettings maps hand categories to actions such as "call" or "raise 2".
type SizingSettings struct {
	HighCard      string `hcl:"high_card,optional"`
	Pair          string `hcl:"pair,optional"`
	TwoPair       string `hcl:"two_pair,optional"`
	ThreeOfAKind  string `hcl:"three_of_a_kind,optional"`
	Straight      string `hcl:"straight,optional"`
	Flush         string `hcl:"flush,optional"`
	FullHouse     string `hcl:"full_house,optional"`
	FourOfAKind   string `hcl:"four_of_a_kind,optional"`
	StraightFlush string `hcl:"straight_flush,optional"`
	RoyalFlush    string `hcl:"royal_flush,optional"`
}

// ScorerSettings selects the hand strength scorer.
type ScorerSettings struct {
	Kind      string `hcl:"kind,optional"`
	URL       string `hcl:"url,optional"`
	TimeoutMS int    `hcl:"timeout_ms,optional"`
}

// RangeConfig replaces the push/fold chart of one position.
type RangeConfig struct {
	Position string         `hcl:"position,label"`
	Buckets  []BucketConfig `hcl:"bucket,block"`
}

// BucketConfig is one stack-depth bucket of a chart.
type BucketConfig struct {
	MinBB  int    `hcl:"min_bb"`
	Hands  string `hcl:"hands"`
	Action string `hcl:"action,optional"`
}

const (
	ScorerHeuristic = "heuristic"
	ScorerRemote    = "remote"
)

// DefaultConfig returns the configuration used when no file exists.
func DefaultConfig() *Config {
	s := policy.DefaultStrategy()
	return &Config{
		Server: &ServerSettings{
			Address:  "0.0.0.0",
			Port:     8080,
			LogLevel: "info",
		},
		Strategy: &StrategySettings{
			PushFoldMaxBB:       s.PushFoldMaxBB,
			CallThreshold:       s.CallThreshold,
			OpenThreshold:       s.OpenThreshold,
			StrongOpenThreshold: s.StrongOpenThreshold,
		},
		Scorer: &ScorerSettings{
			Kind:      ScorerHeuristic,
			TimeoutMS: 500,
		},
	}
}

// Load reads filename. A missing file yields DefaultConfig.
func Load(filename string) (*Config, error) {
	if _, err := os.Stat(filename); errors.Is(err, os.ErrNotExist) {
		return DefaultConfig(), nil
	}

	parser := hclparse.NewParser()
	file, diags := parser.ParseHCLFile(filename)
	if diags.HasErrors() {
		return nil, fmt.Errorf("failed to parse HCL file: %s", diags.Error())
	}

	var cfg Config
	if diags := gohcl.DecodeBody(file.Body, nil, &cfg); diags.HasErrors() {
		return nil, fmt.Errorf("failed to decode HCL: %s", diags.Error())
	}
	cfg.applyDefaults()
	return &cfg, nil
}

func (c *Config) applyDefaults() {
	def := DefaultConfig()

	if c.Server == nil {
		c.Server = def.Server
	}
	if c.Server.Address == "" {
		c.Server.Address = def.Server.Address
	}
	if c.Server.Port == 0 {
		c.Server.Port = def.Server.Port
	}
	if c.Server.LogLevel == "" {
		c.Server.LogLevel = def.Server.LogLevel
	}

	if c.Strategy == nil {
		c.Strategy = def.Strategy
	}
	if c.Strategy.PushFoldMaxBB == 0 {
		c.Strategy.PushFoldMaxBB = def.Strategy.PushFoldMaxBB
	}
	if c.Strategy.CallThreshold == 0 {
		c.Strategy.CallThreshold = def.Strategy.CallThreshold
	}
	if c.Strategy.OpenThreshold == 0 {
		c.Strategy.OpenThreshold = def.Strategy.OpenThreshold
	}
	if c.Strategy.StrongOpenThreshold == 0 {
		c.Strategy.StrongOpenThreshold = def.Strategy.StrongOpenThreshold
	}

	if c.Scorer == nil {
		c.Scorer = def.Scorer
	}
	if c.Scorer.Kind == "" {
		c.Scorer.Kind = def.Scorer.Kind
	}
	if c.Scorer.TimeoutMS == 0 {
		c.Scorer.TimeoutMS = def.Scorer.TimeoutMS
	}

	for i := range c.Ranges {
		for j := range c.Ranges[i].Buckets {
			if c.Ranges[i].Buckets[j].Action == "" {
				c.Ranges[i].Buckets[j].Action = string(policy.Push)
			}
		}
	}
}

// LoadEnv reads a .env file if present and applies PORT over server.port.
func (c *Config) LoadEnv(files ...string) error {
	for _, f := range files {
		if _, err := os.Stat(f); err != nil {
			continue
		}
		if err := godotenv.Load(f); err != nil {
			return fmt.Errorf("load %s: %w", f, err)
		}
	}

	if port := os.Getenv("PORT"); port != "" {
		n, err := strconv.Atoi(port)
		if err != nil {
			return fmt.Errorf("invalid PORT %q: %w", port, err)
		}
		c.Server.Port = n
	}
	return nil
}

// Validate checks the configuration. Malformed range tokens are not errors
// here; they are reported by Warnings.
func (c *Config) Validate() error {
	if c.Server.Port < 1 || c.Server.Port > 65535 {
		return fmt.Errorf("invalid port: %d", c.Server.Port)
	}

	switch c.Server.LogLevel {
	case "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("invalid log level: %s", c.Server.LogLevel)
	}

	if c.Strategy.PushFoldMaxBB < 0 {
		return fmt.Errorf("push_fold_max_bb must not be negative")
	}
	for name, v := range map[string]float64{
		"call_threshold":        c.Strategy.CallThreshold,
		"open_threshold":        c.Strategy.OpenThreshold,
		"strong_open_threshold": c.Strategy.StrongOpenThreshold,
	} {
		if v < 0 || v > 1 {
			return fmt.Errorf("%s must be between 0 and 1, got %v", name, v)
		}
	}
	if c.Strategy.OpenThreshold > c.Strategy.StrongOpenThreshold {
		return fmt.Errorf("open_threshold must not exceed strong_open_threshold")
	}
	if _, err := c.PolicyStrategy(); err != nil {
		return err
	}

	switch c.Scorer.Kind {
	case ScorerHeuristic:
	case ScorerRemote:
		if c.Scorer.URL == "" {
			return fmt.Errorf("remote scorer requires a url")
		}
	default:
		return fmt.Errorf("invalid scorer kind: %s", c.Scorer.Kind)
	}
	if c.Scorer.TimeoutMS < 0 {
		return fmt.Errorf("scorer timeout must not be negative")
	}

	_, err := c.Charts()
	return err
}

// Warnings lists malformed range tokens, which the charts silently drop.
func (c *Config) Warnings() []string {
	var warnings []string
	for _, r := range c.Ranges {
		for _, b := range r.Buckets {
			for _, tok := range ranges.Validate(b.Hands) {
				warnings = append(warnings, fmt.Sprintf("range %q bucket %d: ignoring malformed token %q", r.Position, b.MinBB, tok))
			}
		}
	}
	return warnings
}

// Address returns host:port for the listener.
func (c *Config) Address() string {
	return fmt.Sprintf("%s:%d", c.Server.Address, c.Server.Port)
}

// ScorerTimeout returns the remote scorer timeout.
func (c *Config) ScorerTimeout() time.Duration {
	return time.Duration(c.Scorer.TimeoutMS) * time.Millisecond
}

// PolicyStrategy builds the policy constants, starting from the defaults.
func (c *Config) PolicyStrategy() (policy.Strategy, error) {
	s := policy.DefaultStrategy()
	if c.Strategy == nil {
		return s, nil
	}
	s.PushFoldMaxBB = c.Strategy.PushFoldMaxBB
	s.CallThreshold = c.Strategy.CallThreshold
	s.OpenThreshold = c.Strategy.OpenThreshold
	s.StrongOpenThreshold = c.Strategy.StrongOpenThreshold

	var err error
	if s.Preflop, err = c.Strategy.Preflop.apply(s.Preflop); err != nil {
		return s, fmt.Errorf("strategy preflop: %w", err)
	}
	if s.Flop, err = c.Strategy.Flop.apply(s.Flop); err != nil {
		return s, fmt.Errorf("strategy flop: %w", err)
	}
	if s.Late, err = c.Strategy.Late.apply(s.Late); err != nil {
		return s, fmt.Errorf("strategy late: %w", err)
	}
	return s, nil
}

func (s *SizingSettings) apply(base policy.SizingTable) (policy.SizingTable, error) {
	if s == nil {
		return base, nil
	}
	overrides := map[poker.HandCategory]string{
		poker.HighCard:      s.HighCard,
		poker.Pair:          s.Pair,
		poker.TwoPair:       s.TwoPair,
		poker.ThreeOfAKind:  s.ThreeOfAKind,
		poker.Straight:      s.Straight,
		poker.Flush:         s.Flush,
		poker.FullHouse:     s.FullHouse,
		poker.FourOfAKind:   s.FourOfAKind,
		poker.StraightFlush: s.StraightFlush,
		poker.RoyalFlush:    s.RoyalFlush,
	}
	for category, text := range overrides {
		if text == "" {
			continue
		}
		action, err := policy.ParseAction(text)
		if err != nil {
			return base, fmt.Errorf("%s: %w", category, err)
		}
		base[category] = action
	}
	return base, nil
}

// Charts builds the push/fold charts: the defaults with every configured
// position replaced wholesale.
func (c *Config) Charts() (policy.Charts, error) {
	charts := policy.DefaultCharts()
	seen := make(map[table.Position]bool)

	for _, r := range c.Ranges {
		pos, ok := table.ParsePosition(r.Position)
		if !ok {
			return nil, fmt.Errorf("range %q: unknown position", r.Position)
		}
		if seen[pos] {
			return nil, fmt.Errorf("range %q: configured twice", r.Position)
		}
		seen[pos] = true

		buckets := make([]policy.Bucket, 0, len(r.Buckets))
		for _, b := range r.Buckets {
			if b.MinBB < 0 {
				return nil, fmt.Errorf("range %q: min_bb must not be negative", r.Position)
			}
			action, err := policy.ParseBucketAction(b.Action)
			if err != nil {
				return nil, fmt.Errorf("range %q: %w", r.Position, err)
			}
			buckets = append(buckets, policy.NewBucket(b.MinBB, b.Hands, action))
		}
		charts[pos] = buckets
	}
	return charts, nil
}
