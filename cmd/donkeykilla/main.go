package main

import (
	"github.com/alecthomas/kong"
)

// version is set by ldflags during build
var version = "dev"

// Globals are flags shared by every command.
type Globals struct {
	Config   string `short:"c" default:"donkeykilla.hcl" help:"Path to HCL configuration file"`
	LogLevel string `short:"l" help:"Log level: debug, info, warn or error (overrides config)"`
}

type CLI struct {
	Globals

	Version  kong.VersionFlag `short:"v" help:"Show version"`
	Serve    ServeCmd         `cmd:"" help:"Run the LeanPoker HTTP player"`
	Decide   DecideCmd        `cmd:"" help:"Decide bets for game state JSON files"`
	Range    RangeCmd         `cmd:"" help:"Expand range notation into a starting hand grid"`
	Classify ClassifyCmd      `cmd:"" help:"Classify and score a set of cards"`
	Settings ConfigCmd        `cmd:"" name:"config" help:"Manage the configuration file"`
}

func main() {
	var cli CLI
	ctx := kong.Parse(&cli,
		kong.Name("donkeykilla"),
		kong.Description("Texas Hold'em tournament bot for LeanPoker"),
		kong.UsageOnError(),
		kong.ConfigureHelp(kong.HelpOptions{
			Compact: true,
		}),
		kong.Vars{
			"version": version,
		},
	)
	err := ctx.Run(&cli.Globals)
	ctx.FatalIfErrorf(err)
}
