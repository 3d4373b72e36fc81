package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"golang.org/x/sync/errgroup"

	"github.com/renato-design/poker-player-the-better-donkey-killers/internal/server"
)

// ServeCmd runs the HTTP player.
type ServeCmd struct {
	Addr string `short:"a" help:"Address to listen on (overrides config and PORT)"`
}

func (c *ServeCmd) Run(g *Globals) error {
	cfg, logger, err := g.load()
	if err != nil {
		return err
	}

	p, err := newPolicy(cfg, logger)
	if err != nil {
		return err
	}

	addr := cfg.Address()
	if c.Addr != "" {
		addr = c.Addr
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	srv := server.New(addr, p, logger)
	group, ctx := errgroup.WithContext(ctx)
	group.Go(func() error {
		return srv.Run(ctx)
	})
	group.Go(func() error {
		<-ctx.Done()
		logger.Info("Stopping player")
		return nil
	})

	logger.Info("Starting donkeykilla", "addr", addr, "version", version, "scorer", cfg.Scorer.Kind)
	return group.Wait()
}
