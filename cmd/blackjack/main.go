package main

import (
	"fmt"
	"os"

	"github.com/alecthomas/kong"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"

	"github.com/lox/blackjack-cli/internal/config"
	"github.com/lox/blackjack-cli/internal/deck"
	"github.com/lox/blackjack-cli/internal/display"
	"github.com/lox/blackjack-cli/internal/game"
	"github.com/lox/blackjack-cli/internal/randutil"
)

// version is set by ldflags during build
var version = "dev"

var titleStyle = lipgloss.NewStyle().
	Foreground(lipgloss.Color("#FAFAFA")).
	Background(lipgloss.Color("#04B575")).
	Padding(0, 1).
	Bold(true)

type CLI struct {
	Version kong.VersionFlag `short:"v" help:"Show version"`
	Config  string           `short:"c" help:"Path to the casino config file" default:"casino.hcl"`
	Players int              `short:"p" help:"Number of players at the table (overrides config)"`
	Decks   int              `short:"d" help:"Number of decks in the shoe (overrides config)"`
	Seed    int64            `help:"Seed the shuffle for reproducible rounds"`
	Auto    bool             `help:"Let the house play every seat automatically"`
	AutoBet int              `help:"Flat bet per seat used with --auto" default:"10"`
	Debug   bool             `help:"Enable debug logging"`
}

func main() {
	var cli CLI
	ctx := kong.Parse(&cli,
		kong.Name("blackjack"),
		kong.Description("Single-round casino blackjack at the console"),
		kong.UsageOnError(),
		kong.Vars{"version": version},
	)

	cfg, err := config.Load(cli.Config)
	if err != nil {
		log.Fatal("Failed to load config", "path", cli.Config, "error", err)
	}
	if cli.Players > 0 {
		cfg.Casino.Players = cli.Players
	}
	if cli.Decks > 0 {
		cfg.Casino.Decks = cli.Decks
	}

	logger := log.NewWithOptions(os.Stderr, log.Options{
		ReportTimestamp: false,
		Level:           logLevel(cli, cfg),
	})

	fmt.Print(titleStyle.Render(" ♠ ♥ Blackjack ♦ ♣ "))
	fmt.Println()
	fmt.Println()

	if err := run(cli, cfg, logger); err != nil {
		log.Fatal("Round abandoned", "error", err)
	}

	ctx.Exit(0)
}

func run(cli CLI, cfg *config.Config, logger *log.Logger) error {
	rng := randutil.NewFromTime()
	if cli.Seed != 0 {
		rng = randutil.New(cli.Seed)
	}

	names := make([]string, cfg.Casino.Players)
	for i := range names {
		names[i] = fmt.Sprintf("Player%c", 'A'+i)
	}

	console := display.NewConsole(os.Stdout)
	// inclusive table limits from the config, half-open for the engine
	betMin, betMax := cfg.Casino.BetMin, cfg.Casino.BetMax+1

	if cli.Auto {
		agent := &game.HouseAgent{Bet: cli.AutoBet}
		shoe := deck.NewShoe(rng, cfg.Casino.Decks)
		round := game.NewRound(shoe, agent, names, betMin, betMax,
			game.WithDisplay(console), game.WithLogger(logger))
		_, err := round.Play()
		return err
	}

	prompt, err := display.NewPrompt()
	if err != nil {
		return fmt.Errorf("starting prompt: %w", err)
	}
	defer func() {
		if err := prompt.Close(); err != nil {
			logger.Error("Failed to close prompt", "error", err)
		}
	}()

	for {
		shoe := deck.NewShoe(rng, cfg.Casino.Decks)
		round := game.NewRound(shoe, prompt, names, betMin, betMax,
			game.WithDisplay(console), game.WithLogger(logger))
		if _, err := round.Play(); err != nil {
			return err
		}
		if !prompt.Confirm("Play another round?") {
			return nil
		}
	}
}

func logLevel(cli CLI, cfg *config.Config) log.Level {
	if cli.Debug {
		return log.DebugLevel
	}
	level, err := log.ParseLevel(cfg.Casino.LogLevel)
	if err != nil {
		return log.InfoLevel
	}
	return level
}
