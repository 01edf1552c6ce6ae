package cmd

import (
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"
)

// Config holds the REPL preferences read from ~/.maymun.toml (or --config).
type Config struct {
	Prompt      string `toml:"prompt"`
	HistoryFile string `toml:"history_file"`
	Color       bool   `toml:"color"`
}

func defaultConfig() Config {
	home, _ := os.UserHomeDir()
	return Config{
		Prompt:      ">> ",
		HistoryFile: filepath.Join(home, ".maymun_history"),
		Color:       true,
	}
}

// loadConfig returns the defaults overlaid with the config file, if any.
// A missing file is not an error; a malformed one is.
func loadConfig(path string) (Config, error) {
	cfg := defaultConfig()

	if path == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return cfg, nil
		}
		path = filepath.Join(home, ".maymun.toml")
		if _, err := os.Stat(path); err != nil {
			return cfg, nil
		}
	}

	if _, err := toml.DecodeFile(path, &cfg); err != nil {
		return cfg, err
	}
	return cfg, nil
}
