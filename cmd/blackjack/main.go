package main

import (
	"fmt"
	"os"

	"github.com/alecthomas/kong"
	"github.com/charmbracelet/log"
	"github.com/lox/blackjack-cli/internal/config"
)

// version is set by ldflags during build
var version = "dev"

type CLI struct {
	Config  string           `kong:"short='c',default='blackjack.hcl',help='Path to HCL config file'"`
	Version kong.VersionFlag `short:"v" help:"Show version"`

	Play     PlayCmd     `cmd:"" default:"withargs" help:"Play blackjack at the terminal"`
	Simulate SimulateCmd `cmd:"" help:"Auto-play rounds and report the results"`
	Stats    StatsCmd    `cmd:"" help:"Show or reset saved session statistics"`
}

func main() {
	var cli CLI
	ctx := kong.Parse(&cli,
		kong.Name("blackjack"),
		kong.Description("Single-player casino blackjack for the terminal"),
		kong.UsageOnError(),
		kong.ConfigureHelp(kong.HelpOptions{
			Compact: true,
		}),
		kong.Vars{
			"version": version,
		},
	)
	err := ctx.Run(&cli)
	ctx.FatalIfErrorf(err)
}

// loadConfig reads and validates the shared config file.
func loadConfig(cli *CLI) (*config.Config, error) {
	cfg, err := config.Load(cli.Config)
	if err != nil {
		return nil, err
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config %s: %w", cli.Config, err)
	}
	return cfg, nil
}

// setupFileLogger logs to a file so output never fights the TUI for the
// terminal. The returned closer flushes the file on exit.
func setupFileLogger(path, level string, debug bool) (*log.Logger, func(), error) {
	file, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to open log file: %w", err)
	}

	logLevel, err := log.ParseLevel(level)
	if err != nil {
		logLevel = log.WarnLevel
	}
	if debug {
		logLevel = log.DebugLevel
	}

	logger := log.NewWithOptions(file, log.Options{
		ReportTimestamp: true,
		TimeFormat:      "15:04:05",
		Level:           logLevel,
	})
	return logger, func() { file.Close() }, nil
}
