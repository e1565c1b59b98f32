package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strconv"

	"github.com/hersh/go1010/internal/game"
	"github.com/hersh/go1010/internal/highscore"
	"github.com/joho/godotenv"
)

const (
	envRows          = "GO1010_ROWS"
	envCols          = "GO1010_COLS"
	envSetSize       = "GO1010_SET_SIZE"
	envLinesPerLevel = "GO1010_LINES_PER_LEVEL"
	envPointsPerLine = "GO1010_POINTS_PER_LINE"
	envSeed          = "GO1010_SEED"
	envScoreFile     = "GO1010_SCORE_FILE"
	envLogFile       = "GO1010_LOG_FILE"
	envNoColor       = "NO_COLOR"

	maxSide    = 50
	maxSetSize = 9
)

type Config struct {
	Rows          int
	Cols          int
	SetSize       int
	LinesPerLevel int
	PointsPerLine int
	// Seed 0 means seed from the clock.
	Seed      int64
	ScoreFile string
	LogFile   string
	NoColor   bool
}

func Default() Config {
	r := game.DefaultRules()
	return Config{
		Rows:          r.Rows,
		Cols:          r.Cols,
		SetSize:       r.SetSize,
		LinesPerLevel: r.LinesPerLevel,
		PointsPerLine: r.PointsPerLine,
		ScoreFile:     highscore.DefaultPath(),
	}
}

// Load starts from Default, reads the given .env files (missing files are
// skipped), then applies GO1010_* environment variables.
func Load(files ...string) (Config, error) {
	for _, f := range files {
		if err := godotenv.Load(f); err != nil && !errors.Is(err, fs.ErrNotExist) {
			return Config{}, fmt.Errorf("load %s: %w", f, err)
		}
	}

	cfg := Default()
	ints := []struct {
		key string
		dst *int
	}{
		{envRows, &cfg.Rows},
		{envCols, &cfg.Cols},
		{envSetSize, &cfg.SetSize},
		{envLinesPerLevel, &cfg.LinesPerLevel},
		{envPointsPerLine, &cfg.PointsPerLine},
	}
	for _, it := range ints {
		v, ok := os.LookupEnv(it.key)
		if !ok || v == "" {
			continue
		}
		n, err := strconv.Atoi(v)
		if err != nil {
			return Config{}, fmt.Errorf("%s: %w", it.key, err)
		}
		*it.dst = n
	}

	if v := os.Getenv(envSeed); v != "" {
		seed, err := strconv.ParseInt(v, 10, 64)
		if err != nil {
			return Config{}, fmt.Errorf("%s: %w", envSeed, err)
		}
		cfg.Seed = seed
	}
	if v := os.Getenv(envScoreFile); v != "" {
		cfg.ScoreFile = v
	}
	if v := os.Getenv(envLogFile); v != "" {
		cfg.LogFile = v
	}
	// https://no-color.org: any non-empty value disables colour.
	if os.Getenv(envNoColor) != "" {
		cfg.NoColor = true
	}

	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

func (c Config) Validate() error {
	var errs []error
	if c.Rows < 1 || c.Rows > maxSide {
		errs = append(errs, fmt.Errorf("rows must be in [1, %d], got %d", maxSide, c.Rows))
	}
	if c.Cols < 1 || c.Cols > maxSide {
		errs = append(errs, fmt.Errorf("cols must be in [1, %d], got %d", maxSide, c.Cols))
	}
	if c.SetSize < 1 || c.SetSize > maxSetSize {
		errs = append(errs, fmt.Errorf("set size must be in [1, %d], got %d", maxSetSize, c.SetSize))
	}
	if c.LinesPerLevel < 1 {
		errs = append(errs, fmt.Errorf("lines per level must be at least 1, got %d", c.LinesPerLevel))
	}
	if c.PointsPerLine < 0 {
		errs = append(errs, fmt.Errorf("points per line must not be negative, got %d", c.PointsPerLine))
	}
	if c.ScoreFile == "" {
		errs = append(errs, errors.New("score file path is empty"))
	}
	if len(errs) > 0 {
		return fmt.Errorf("invalid config: %w", errors.Join(errs...))
	}
	return nil
}

func (c Config) Rules() game.Rules {
	return game.Rules{
		Rows:          c.Rows,
		Cols:          c.Cols,
		SetSize:       c.SetSize,
		LinesPerLevel: c.LinesPerLevel,
		PointsPerLine: c.PointsPerLine,
	}
}
