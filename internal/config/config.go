package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/caarlos0/env/v10"
	"github.com/joho/godotenv"
)

// App holds runtime configuration for the quizzer CLI.
type App struct {
	// DBPath is the SQLite file. Empty means the XDG default.
	DBPath string `env:"QUIZZER_DB"`

	LogLevel string `env:"QUIZZER_LOG_LEVEL" envDefault:"info"`

	// LogFile receives structured logs. Empty means quizzer.log next to
	// the database; "-" means stderr.
	LogFile string `env:"QUIZZER_LOG_FILE"`

	NoColor      bool   `env:"QUIZZER_NO_COLOR" envDefault:"false"`
	SeedDefaults bool   `env:"QUIZZER_SEED_DEFAULTS" envDefault:"true"`
	Prompt       string `env:"QUIZZER_PROMPT" envDefault:"quiz > "`
}

// Load reads an optional .env file from the working directory and then
// parses the process environment. Variables already set win over .env.
func Load() (*App, error) {
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("load .env: %w", err)
	}
	return parse(env.Options{})
}

// LoadFrom parses configuration from the given variables only.
func LoadFrom(environ map[string]string) (*App, error) {
	return parse(env.Options{Environment: environ})
}

func parse(opts env.Options) (*App, error) {
	cfg := &App{}
	if err := env.ParseWithOptions(cfg, opts); err != nil {
		return nil, fmt.Errorf("parse config: %w", err)
	}
	return cfg, nil
}

// ResolveDBPath returns the database path in priority order:
// 1. DBPath (QUIZZER_DB or the --db flag)
// 2. $XDG_DATA_HOME/quizzer/quizzer.db
// 3. ~/.local/share/quizzer/quizzer.db
//
// The parent directory is created if missing.
func (c *App) ResolveDBPath() (string, error) {
	if c.DBPath != "" {
		return c.DBPath, ensureDir(c.DBPath)
	}

	dataHome := os.Getenv("XDG_DATA_HOME")
	if dataHome == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", fmt.Errorf("resolve home dir: %w", err)
		}
		dataHome = filepath.Join(home, ".local", "share")
	}

	p := filepath.Join(dataHome, "quizzer", "quizzer.db")
	return p, ensureDir(p)
}

// ResolveLogFile returns where logs go for a database at dbPath.
func (c *App) ResolveLogFile(dbPath string) string {
	if c.LogFile != "" {
		return c.LogFile
	}
	return filepath.Join(filepath.Dir(dbPath), "quizzer.log")
}

func ensureDir(path string) error {
	return os.MkdirAll(filepath.Dir(path), 0o755)
}
