package config

import (
	"os"
	"path/filepath"
)

type Config struct {
	DataDir          string
	AccountsFile     string
	TransactionsFile string
	LogLevel         string
}

// Load reads the environment. Everything has a default, so nothing here
// is fatal.
func Load() Config {
	dir := os.Getenv("ABCBANK_DATA_DIR")
	if dir == "" {
		dir = "."
	}

	level := os.Getenv("ABCBANK_LOG_LEVEL")
	if level == "" {
		level = "info"
	}

	return Config{
		DataDir:          dir,
		AccountsFile:     filepath.Join(dir, "users.csv"),
		TransactionsFile: filepath.Join(dir, "transactions.csv"),
		LogLevel:         level,
	}
}
