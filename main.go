package main

import (
	"flag"
	"fmt"
	"os"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/hersh/go1010/internal/config"
	"github.com/hersh/go1010/internal/game"
	"github.com/hersh/go1010/internal/highscore"
	"github.com/hersh/go1010/internal/logging"
	"github.com/hersh/go1010/internal/tui"
	"github.com/muesli/termenv"
	"go.uber.org/zap"
)

// This is the terminal frontend. For the windowed version, use:
//   go run ./cmd/go1010-gui

func main() {
	cfg, err := config.Load(".env")
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	rows := flag.Int("rows", cfg.Rows, "Board rows")
	cols := flag.Int("cols", cfg.Cols, "Board columns")
	setSize := flag.Int("set", cfg.SetSize, "Pieces dealt per set")
	seed := flag.Int64("seed", cfg.Seed, "Piece generator seed (0 = clock)")
	scoreFile := flag.String("scores", cfg.ScoreFile, "High score file")
	logFile := flag.String("log", cfg.LogFile, "Log file (empty disables logging)")
	noColor := flag.Bool("no-color", cfg.NoColor, "Disable colour output")
	debug := flag.Bool("debug", false, "Log at debug level")
	flag.Parse()

	cfg.Rows, cfg.Cols, cfg.SetSize = *rows, *cols, *setSize
	cfg.Seed = *seed
	cfg.ScoreFile = *scoreFile
	cfg.LogFile = *logFile
	cfg.NoColor = *noColor
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

	if cfg.NoColor {
		lipgloss.SetColorProfile(termenv.Ascii)
	}

	if cfg.Seed == 0 {
		cfg.Seed = time.Now().UnixNano()
	}
	store := highscore.NewFileStore(cfg.ScoreFile)
	logger.Info("starting",
		zap.String("frontend", "tui"),
		zap.Int64("seed", cfg.Seed),
		zap.String("score_file", store.Path()),
	)

	session := game.NewSession(
		cfg.Rules(),
		game.NewPieceGenerator(cfg.Seed),
		store,
		logger,
	)

	p := tea.NewProgram(
		tui.NewModel(session),
		tea.WithAltScreen(),
	)

	if _, err := p.Run(); err != nil {
		logger.Error("tui exited", zap.Error(err))
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
