package main

import (
	"fmt"
	"io"
	"log"
	"log/slog"
	"os"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"pixl/internal/drawing"
)

func main() {
	config, configErr := loadConfig()

	logOut, err := openLog(config.LogFile)
	if err != nil {
		log.Fatal(err)
	}
	defer logOut.Close()
	logger := slog.New(slog.NewTextHandler(logOut, &slog.HandlerOptions{Level: slog.LevelDebug}))
	drawing.SetLogger(logger)
	if configErr != nil {
		logger.Warn("using default config", "err", configErr)
	}

	p := tea.NewProgram(
		initialModel(config),
		tea.WithAltScreen(),
		tea.WithMouseCellMotion(),
	)
	if _, err := p.Run(); err != nil {
		log.Fatal(err)
	}
}

type nopCloser struct{ io.Writer }

func (nopCloser) Close() error { return nil }

// openLog opens the configured log file for appending. The terminal belongs to
// the UI, so without a log file output is discarded.
func openLog(path string) (io.WriteCloser, error) {
	if path == "" {
		return nopCloser{io.Discard}, nil
	}
	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644)
	if err != nil {
		return nil, fmt.Errorf("open log %s: %w", path, err)
	}
	return f, nil
}

func initialModel(config *Config) model {
	doc := drawing.New(config.documentOptions()...)

	input := textinput.New()
	input.Placeholder = "#rrggbb or a color name"
	input.CharLimit = 32
	input.Width = 24
	input.Prompt = "Color: "

	return model{
		doc:     doc,
		gesture: drawing.NewGesture(doc),
		config:  config,
		keys:    newKeyMap(),
		help:    help.New(),
		input:   input,
		mode:    ModeNormal,
		now:     time.Now,
	}
}

func (m model) Init() tea.Cmd {
	return nil
}
