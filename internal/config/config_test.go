package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/hersh/go1010/internal/game"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func clearEnv(t *testing.T) {
	t.Helper()
	for _, k := range []string{
		envRows, envCols, envSetSize, envLinesPerLevel, envPointsPerLine,
		envSeed, envScoreFile, envLogFile, envNoColor,
	} {
		t.Setenv(k, "")
	}
}

func TestDefault(t *testing.T) {
	cfg := Default()
	require.NoError(t, cfg.Validate())
	assert.Equal(t, game.DefaultRules(), cfg.Rules())
	assert.Equal(t, int64(0), cfg.Seed)
	assert.NotEmpty(t, cfg.ScoreFile)
	assert.False(t, cfg.NoColor)
}

func TestLoadFromEnv(t *testing.T) {
	clearEnv(t)
	t.Setenv(envRows, "8")
	t.Setenv(envCols, "12")
	t.Setenv(envSetSize, "4")
	t.Setenv(envLinesPerLevel, "5")
	t.Setenv(envPointsPerLine, "10")
	t.Setenv(envSeed, "99")
	t.Setenv(envScoreFile, "/tmp/score.json")
	t.Setenv(envLogFile, "/tmp/go1010.log")
	t.Setenv(envNoColor, "1")

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, Config{
		Rows:          8,
		Cols:          12,
		SetSize:       4,
		LinesPerLevel: 5,
		PointsPerLine: 10,
		Seed:          99,
		ScoreFile:     "/tmp/score.json",
		LogFile:       "/tmp/go1010.log",
		NoColor:       true,
	}, cfg)
}

func TestLoadDotEnv(t *testing.T) {
	clearEnv(t)
	dir := t.TempDir()
	path := filepath.Join(dir, ".env")
	require.NoError(t, os.WriteFile(path, []byte("GO1010_ROWS=6\nGO1010_SEED=7\n"), 0o644))
	// godotenv never overrides a variable that is already set, and clearEnv
	// set them all to empty; unset the two we want to come from the file.
	require.NoError(t, os.Unsetenv(envRows))
	require.NoError(t, os.Unsetenv(envSeed))
	t.Cleanup(func() {
		os.Unsetenv(envRows)
		os.Unsetenv(envSeed)
	})

	cfg, err := Load(path, filepath.Join(dir, "missing.env"))
	require.NoError(t, err)
	assert.Equal(t, 6, cfg.Rows)
	assert.Equal(t, int64(7), cfg.Seed)
	assert.Equal(t, game.DefaultCols, cfg.Cols)
}

func TestLoadRejectsBadValues(t *testing.T) {
	tests := []struct {
		key   string
		value string
	}{
		{envRows, "ten"},
		{envRows, "0"},
		{envCols, "51"},
		{envSetSize, "0"},
		{envLinesPerLevel, "0"},
		{envPointsPerLine, "-1"},
		{envSeed, "x"},
	}
	for _, tt := range tests {
		t.Run(tt.key+"="+tt.value, func(t *testing.T) {
			clearEnv(t)
			t.Setenv(tt.key, tt.value)
			_, err := Load()
			assert.Error(t, err)
		})
	}
}

func TestValidateReportsEveryProblem(t *testing.T) {
	cfg := Config{}
	err := cfg.Validate()
	require.Error(t, err)
	for _, want := range []string{"rows", "cols", "set size", "lines per level", "score file"} {
		assert.Contains(t, err.Error(), want)
	}
}

func TestValidateRejectsClearedScoreFile(t *testing.T) {
	cfg := Default()
	require.NoError(t, cfg.Validate())

	cfg.ScoreFile = ""
	err := cfg.Validate()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "score file")
}
