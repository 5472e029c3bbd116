package main

import (
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/textinput"

	"pixl/internal/drawing"
)

type model struct {
	width          int
	height         int
	doc            *drawing.Document
	gesture        *drawing.Gesture
	config         *Config
	keys           keyMap
	help           help.Model
	showHelp       bool
	input          textinput.Model
	mode           Mode
	confirmAction  ConfirmAction
	paletteIndex   int
	errorMessage   string
	successMessage string
	now            func() time.Time
}
