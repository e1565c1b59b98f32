package main

import (
	"errors"
	"flag"
	"fmt"
	"os"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hersh/go1010/internal/config"
	"github.com/hersh/go1010/internal/game"
	"github.com/hersh/go1010/internal/gui"
	"github.com/hersh/go1010/internal/highscore"
	"github.com/hersh/go1010/internal/logging"
	"go.uber.org/zap"
)

func main() {
	cfg, err := config.Load(".env")
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	seed := flag.Int64("seed", cfg.Seed, "Piece generator seed (0 = clock)")
	scoreFile := flag.String("scores", cfg.ScoreFile, "High score file")
	logFile := flag.String("log", cfg.LogFile, "Log file (empty disables logging)")
	debug := flag.Bool("debug", false, "Log at debug level")
	flag.Parse()

	cfg.Seed = *seed
	cfg.ScoreFile = *scoreFile
	cfg.LogFile = *logFile
	if err := cfg.Validate(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	logger, err := logging.New(cfg.LogFile, *debug)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	defer logger.Sync()

	if cfg.Seed == 0 {
		cfg.Seed = time.Now().UnixNano()
	}
	store := highscore.NewFileStore(cfg.ScoreFile)
	logger.Info("starting",
		zap.String("frontend", "gui"),
		zap.Int64("seed", cfg.Seed),
		zap.String("score_file", store.Path()),
	)

	session := game.NewSession(
		cfg.Rules(),
		game.NewPieceGenerator(cfg.Seed),
		store,
		logger,
	)

	g := gui.New(session)
	ebiten.SetWindowSize(g.WindowSize())
	ebiten.SetWindowTitle("Go 1010")
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeDisabled)

	if err := ebiten.RunGame(g); err != nil && !errors.Is(err, gui.ErrQuit) {
		logger.Error("gui exited", zap.Error(err))
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
