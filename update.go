package main

import (
	"fmt"
	"math"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"pixl/internal/drawing"
	"pixl/internal/export"
)

func (m model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width
		return m, nil

	case tea.MouseMsg:
		return m.handleMouse(msg), nil

	case tea.KeyMsg:
		if m.showHelp {
			switch msg.String() {
			case "ctrl+c":
				return m, tea.Quit
			default:
				m.showHelp = false
				return m, nil
			}
		}

		switch m.mode {
		case ModeColorInput:
			return m.handleColorInput(msg)
		case ModeConfirm:
			return m.handleConfirm(msg)
		}
		return m.handleKey(msg)
	}
	return m, nil
}

func (m model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	m.errorMessage = ""
	m.successMessage = ""

	switch {
	case key.Matches(msg, m.keys.Quit):
		if m.config.Confirmations && m.hasArtwork() {
			m.mode = ModeConfirm
			m.confirmAction = ConfirmQuit
			return m, nil
		}
		return m, tea.Quit
	case key.Matches(msg, m.keys.Help):
		m.showHelp = true
	case key.Matches(msg, m.keys.Brush):
		m.doc.SetTool(drawing.ToolBrush)
	case key.Matches(msg, m.keys.Eraser):
		m.doc.SetTool(drawing.ToolEraser)
	case key.Matches(msg, m.keys.Fill):
		m.doc.SetTool(drawing.ToolFill)
	case key.Matches(msg, m.keys.Picker):
		m.doc.SetTool(drawing.ToolPicker)
	case key.Matches(msg, m.keys.Undo):
		m.undo()
	case key.Matches(msg, m.keys.Redo):
		m.redo()
	case key.Matches(msg, m.keys.SavePNG):
		m.export(ExportPNG)
	case key.Matches(msg, m.keys.SavePDF):
		m.export(ExportPDF)
	case key.Matches(msg, m.keys.ZoomIn):
		m.doc.ZoomIn()
	case key.Matches(msg, m.keys.ZoomOut):
		m.doc.ZoomOut()
	case key.Matches(msg, m.keys.Pan):
		m.handlePan(msg.String())
	case key.Matches(msg, m.keys.Grid):
		m.doc.ToggleGrid()
	case key.Matches(msg, m.keys.BrushSize):
		b := drawing.Brushes[int(msg.String()[0]-'1')]
		m.doc.SetBrush(b)
		m.successMessage = fmt.Sprintf("Brush: %s", b.Name)
	case key.Matches(msg, m.keys.PrevColor):
		m.cyclePalette(-1)
	case key.Matches(msg, m.keys.NextColor):
		m.cyclePalette(1)
	case key.Matches(msg, m.keys.Custom):
		m.mode = ModeColorInput
		m.input.SetValue("")
		cmd := m.input.Focus()
		return m, cmd
	case key.Matches(msg, m.keys.Paste):
		m.pasteColor()
	case key.Matches(msg, m.keys.Copy):
		m.copyColor()
	case key.Matches(msg, m.keys.NewLayer):
		m.doc.Commit()
		m.doc.AddLayer("")
		m.successMessage = fmt.Sprintf("Added %s", m.doc.ActiveLayer().Name())
	case key.Matches(msg, m.keys.DelLayer):
		if len(m.doc.Layers()) <= 1 {
			m.errorMessage = "Cannot delete the last layer"
			return m, nil
		}
		if m.config.Confirmations {
			m.mode = ModeConfirm
			m.confirmAction = ConfirmDeleteLayer
			return m, nil
		}
		m.deleteActiveLayer()
	case key.Matches(msg, m.keys.Visibility):
		m.doc.Commit()
		m.doc.ToggleLayerVisibility(m.doc.ActiveLayerID())
	case key.Matches(msg, m.keys.Fainter):
		m.stepOpacity(-opacityStep)
	case key.Matches(msg, m.keys.Stronger):
		m.stepOpacity(opacityStep)
	case key.Matches(msg, m.keys.NextLayer):
		m.nextLayer()
	}
	return m, nil
}

func (m model) handleConfirm(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "y", "Y":
		m.mode = ModeNormal
		switch m.confirmAction {
		case ConfirmQuit:
			return m, tea.Quit
		case ConfirmDeleteLayer:
			m.deleteActiveLayer()
		}
	case "ctrl+c":
		return m, tea.Quit
	default:
		m.mode = ModeNormal
	}
	return m, nil
}

func (m model) handleColorInput(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.Type {
	case tea.KeyEnter:
		value := strings.TrimSpace(m.input.Value())
		m.mode = ModeNormal
		m.input.Blur()
		if value == "" {
			return m, nil
		}
		m.doc.SetColor(value)
		if _, ok := export.ParseColor(value); !ok {
			m.errorMessage = fmt.Sprintf("%q is not a known color; it will not render", value)
		} else {
			m.successMessage = fmt.Sprintf("Color: %s", value)
		}
		return m, nil
	case tea.KeyEsc:
		m.mode = ModeNormal
		m.input.Blur()
		return m, nil
	case tea.KeyCtrlC:
		return m, tea.Quit
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

func (m model) handleMouse(msg tea.MouseMsg) model {
	p := screenPoint(msg.X, msg.Y)
	switch {
	case msg.Button == tea.MouseButtonWheelUp:
		m.doc.WheelZoom(p, -1)
	case msg.Button == tea.MouseButtonWheelDown:
		m.doc.WheelZoom(p, 1)
	case msg.Action == tea.MouseActionPress:
		if m.mode != ModeNormal || m.showHelp || !m.inCanvas(msg.X, msg.Y) {
			return m
		}
		m.errorMessage = ""
		m.successMessage = ""
		m.gesture.Down(p, pointerButton(msg.Button), drawing.Modifiers{Alt: msg.Alt})
	case msg.Action == tea.MouseActionMotion:
		m.gesture.Move(p)
	case msg.Action == tea.MouseActionRelease:
		m.gesture.Up()
	}
	return m
}

// screenPoint maps a terminal cell to the screen pixel at its centre.
func screenPoint(col, row int) drawing.Point {
	return drawing.Point{
		X: float64(col*colPx) + colPx/2,
		Y: float64(row*rowPx) + rowPx/2,
	}
}

func pointerButton(b tea.MouseButton) drawing.Button {
	switch b {
	case tea.MouseButtonMiddle:
		return drawing.ButtonMiddle
	case tea.MouseButtonRight:
		return drawing.ButtonRight
	default:
		return drawing.ButtonLeft
	}
}

func (m *model) cyclePalette(step int) {
	n := len(drawing.Palette)
	m.paletteIndex = ((m.paletteIndex+step)%n + n) % n
	m.doc.SetColor(drawing.Palette[m.paletteIndex])
}

func (m *model) deleteActiveLayer() {
	name := m.doc.ActiveLayer().Name()
	m.doc.Commit()
	m.doc.RemoveLayer(m.doc.ActiveLayerID())
	m.successMessage = fmt.Sprintf("Deleted %s", name)
}

func (m *model) stepOpacity(delta float64) {
	l := m.doc.ActiveLayer()
	opacity := math.Round((l.Opacity()+delta)*10) / 10
	m.doc.Commit()
	m.doc.SetLayerOpacity(l.ID(), opacity)
}

// nextLayer activates the layer above the active one, wrapping to the bottom.
func (m *model) nextLayer() {
	layers := m.doc.Layers()
	for i, l := range layers {
		if l.ID() == m.doc.ActiveLayerID() {
			m.doc.SetActiveLayer(layers[(i+1)%len(layers)].ID())
			return
		}
	}
}

func (m model) hasArtwork() bool {
	for _, l := range m.doc.Layers() {
		if l.Len() > 0 {
			return true
		}
	}
	return false
}

func (m model) canvasWidth() int {
	return max(m.width-sidebarWidth, 1)
}

func (m model) canvasHeight() int {
	return max(m.height-2, 1)
}

func (m model) inCanvas(col, row int) bool {
	return col >= 0 && row >= 0 && col < m.canvasWidth() && row < m.canvasHeight()
}
