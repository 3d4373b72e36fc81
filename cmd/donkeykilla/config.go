package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/renato-design/poker-player-the-better-donkey-killers/internal/config"
)

// ConfigCmd groups configuration commands.
type ConfigCmd struct {
	Init  ConfigInitCmd  `cmd:"" help:"Write a configuration file with every default spelled out"`
	Check ConfigCheckCmd `cmd:"" help:"Validate the configuration file"`
}

// ConfigInitCmd writes config.Example to the --config path.
type ConfigInitCmd struct {
	Force bool `short:"f" help:"Overwrite an existing file"`
}

func (c *ConfigInitCmd) Run(g *Globals) error {
	if _, err := os.Stat(g.Config); err == nil && !c.Force {
		return fmt.Errorf("%s already exists (use --force to overwrite)", g.Config)
	} else if err != nil && !errors.Is(err, os.ErrNotExist) {
		return err
	}

	if err := config.Save(g.Config, config.Example()); err != nil {
		return err
	}
	fmt.Printf("Wrote %s\n", g.Config)
	return nil
}

// ConfigCheckCmd loads and validates the --config path.
type ConfigCheckCmd struct{}

func (c *ConfigCheckCmd) Run(g *Globals) error {
	cfg, logger, err := g.load()
	if err != nil {
		return err
	}
	if _, err := newPolicy(cfg, logger); err != nil {
		return err
	}
	logger.Info("Configuration is valid",
		"file", g.Config,
		"addr", cfg.Address(),
		"scorer", cfg.Scorer.Kind,
		"warnings", len(cfg.Warnings()))
	return nil
}
