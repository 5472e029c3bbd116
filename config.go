package main

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"

	"pixl/internal/drawing"
)

const configFile = ".pixlrc"

type Config struct {
	SaveDirectory string `toml:"save_directory"`
	ShowGrid      bool   `toml:"show_grid"`
	CellSize      int    `toml:"cell_size"`
	HistoryLimit  int    `toml:"history_limit"`
	LogFile       string `toml:"log_file"`
	Confirmations bool   `toml:"confirmations"`
}

func defaultConfig() *Config {
	return &Config{
		SaveDirectory: "",
		ShowGrid:      true,
		CellSize:      drawing.DefaultCellSize,
		HistoryLimit:  drawing.DefaultHistoryLimit,
		LogFile:       "",
		Confirmations: true,
	}
}

// loadConfig reads ~/.pixlrc. A missing or unreadable file leaves the
// defaults in place; the error is returned so main can log it.
func loadConfig() (*Config, error) {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return defaultConfig(), nil
	}
	return loadConfigFile(filepath.Join(homeDir, configFile), homeDir)
}

func loadConfigFile(path, homeDir string) (*Config, error) {
	config := defaultConfig()
	if _, err := toml.DecodeFile(path, config); err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return config, nil
		}
		return defaultConfig(), fmt.Errorf("read config %s: %w", path, err)
	}

	config.SaveDirectory = expandPath(config.SaveDirectory, homeDir)
	config.LogFile = expandPath(config.LogFile, homeDir)
	if config.CellSize < 1 {
		config.CellSize = drawing.DefaultCellSize
	}
	if config.HistoryLimit < 1 {
		config.HistoryLimit = drawing.DefaultHistoryLimit
	}
	return config, nil
}

func expandPath(value, homeDir string) string {
	if value == "" {
		return ""
	}
	if strings.HasPrefix(value, "~") {
		value = filepath.Join(homeDir, strings.TrimPrefix(value, "~"))
	}
	if !filepath.IsAbs(value) {
		if absPath, err := filepath.Abs(value); err == nil {
			value = absPath
		}
	}
	return value
}

func (c *Config) GetSavePath(filename string) string {
	if c.SaveDirectory == "" {
		return filename
	}
	os.MkdirAll(c.SaveDirectory, 0755)
	return filepath.Join(c.SaveDirectory, filename)
}

func (c *Config) documentOptions() []drawing.Option {
	return []drawing.Option{
		drawing.WithCellSize(c.CellSize),
		drawing.WithHistoryLimit(c.HistoryLimit),
		drawing.WithGrid(c.ShowGrid),
	}
}
