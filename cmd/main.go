package main

import (
	"context"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"os/signal"

	"github.com/pterm/pterm"

	"github.com/Sumiya-Bano-Samiullah/Bluff-Bar-Game/config"
	"github.com/Sumiya-Bano-Samiullah/Bluff-Bar-Game/domain/bluff"
	"github.com/Sumiya-Bano-Samiullah/Bluff-Bar-Game/domain/random"
	"github.com/Sumiya-Bano-Samiullah/Bluff-Bar-Game/ledger"
)

func main() {
	seed := flag.String("seed", "", "deterministic game seed (overrides BLUFF_SEED)")
	flag.Parse()

	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
	if *seed != "" {
		cfg.Seed = *seed
	}

	level, _ := cfg.Level()
	handler := pterm.NewSlogHandler(pterm.DefaultLogger.WithLevel(ptermLevel(level)))
	logger := slog.New(handler)

	printBanner()

	seats, human := buildSeats(cfg)
	names := make([]string, len(seats))
	for i, s := range seats {
		names[i] = s.Name
	}
	if cfg.Autoplay {
		pterm.Info.Println("Autoplay: every seat is played by a bot.")
	}
	if cfg.Seed != "" {
		pterm.Info.Printfln("Seed: %s", cfg.Seed)
	}

	chain := ledger.New()
	recorder := ledger.NewRecorder(chain, names)
	player := newTerminalPlayer()
	game, err := bluff.NewGame(seats, random.FromString(cfg.Seed),
		bluff.WithMoveProvider(player),
		bluff.WithQuestionDecider(player),
		bluff.WithHandSize(cfg.HandSize),
		bluff.WithSink(bluff.MultiSink{
			newRenderer(names, human),
			bluff.NewLogSink(logger),
			recorder,
		}),
	)
	if err != nil {
		logger.Error("failed to set up the game", "error", err)
		os.Exit(1)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	res, err := game.Play(ctx)
	if err != nil {
		logger.Error("game aborted", "error", err)
		os.Exit(1)
	}
	logger.Info("game over", "winner", res.WinnerName, "rounds", res.Rounds)

	if !cfg.History {
		return
	}
	if err := recorder.Err(); err != nil {
		logger.Error("match history incomplete", "error", err)
		os.Exit(1)
	}
	if err := chain.Verify(); err != nil {
		logger.Error("match history does not verify", "error", err)
		os.Exit(1)
	}
	pterm.Success.Printfln("Match history verified (%d blocks)", chain.Len())
	if err := printHistory(chain); err != nil {
		logger.Error("failed to render match history", "error", err)
	}
}

// buildSeats seats the human first, then the bots. It returns the index of
// the human seat, or bluff.NoPlayer on autoplay.
func buildSeats(cfg config.Game) ([]bluff.Seat, int) {
	human := 0
	controller := bluff.Human
	if cfg.Autoplay {
		human = bluff.NoPlayer
		controller = bluff.Bot
	}
	seats := []bluff.Seat{{Name: cfg.PlayerName, Controller: controller}}
	for _, name := range cfg.BotNames {
		seats = append(seats, bluff.Seat{Name: name, Controller: bluff.Bot})
	}
	return seats, human
}

func ptermLevel(l slog.Level) pterm.LogLevel {
	switch {
	case l <= slog.LevelDebug:
		return pterm.LogLevelDebug
	case l <= slog.LevelInfo:
		return pterm.LogLevelInfo
	case l <= slog.LevelWarn:
		return pterm.LogLevelWarn
	default:
		return pterm.LogLevelError
	}
}
