package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"runtime"

	"golang.org/x/sync/errgroup"

	"github.com/renato-design/poker-player-the-better-donkey-killers/internal/policy"
	"github.com/renato-design/poker-player-the-better-donkey-killers/internal/protocol"
)

// DecideCmd runs the policy over saved game states.
type DecideCmd struct {
	Files   []string `arg:"" name:"file" help:"Game state JSON files ('-' reads stdin)"`
	Explain bool     `short:"e" help:"Print how each decision was reached"`
}

func (c *DecideCmd) Run(g *Globals) error {
	cfg, logger, err := g.load()
	if err != nil {
		return err
	}
	p, err := newPolicy(cfg, logger)
	if err != nil {
		return err
	}

	decisions := make([]policy.Decision, len(c.Files))
	group, ctx := errgroup.WithContext(context.Background())
	group.SetLimit(runtime.GOMAXPROCS(0))

	for i, name := range c.Files {
		group.Go(func() error {
			d, err := decideFile(ctx, p, name)
			if err != nil {
				return fmt.Errorf("%s: %w", name, err)
			}
			decisions[i] = d
			return nil
		})
	}
	if err := group.Wait(); err != nil {
		return err
	}

	for i, d := range decisions {
		if !c.Explain {
			fmt.Println(d.Amount)
			continue
		}
		fmt.Printf("%s\t%d\t%s %s %s score=%.2f bb=%d (%s)\n",
			c.Files[i], d.Amount, d.Street, d.Position, d.Category, d.Score, d.BigBlinds, d.Reason)
	}
	return nil
}

func decideFile(ctx context.Context, p *policy.Policy, name string) (policy.Decision, error) {
	var r io.Reader = os.Stdin
	if name != "-" {
		f, err := os.Open(name)
		if err != nil {
			return policy.Decision{}, err
		}
		defer f.Close()
		r = f
	}

	gs, err := protocol.DecodeGameState(r)
	if err != nil {
		return policy.Decision{}, err
	}
	return p.Explain(ctx, gs), nil
}
