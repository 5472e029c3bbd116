package main

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"pixl/internal/drawing"
)

func newTestModel(t *testing.T) model {
	t.Helper()
	config := defaultConfig()
	config.SaveDirectory = t.TempDir()
	m := initialModel(config)
	m.now = func() time.Time { return time.UnixMilli(1700000000000) }
	return send(m, tea.WindowSizeMsg{Width: 80, Height: 30})
}

func send(m model, msgs ...tea.Msg) model {
	for _, msg := range msgs {
		next, _ := m.Update(msg)
		m = next.(model)
	}
	return m
}

func keys(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func mouse(x, y int, action tea.MouseAction, button tea.MouseButton) tea.MouseMsg {
	return tea.MouseMsg{X: x, Y: y, Action: action, Button: button}
}

func TestToolKeys(t *testing.T) {
	m := newTestModel(t)
	for _, tt := range []struct {
		key  string
		tool drawing.Tool
	}{
		{"e", drawing.ToolEraser},
		{"f", drawing.ToolFill},
		{"i", drawing.ToolPicker},
		{"b", drawing.ToolBrush},
	} {
		m = send(m, keys(tt.key))
		assert.Equal(t, tt.tool, m.doc.Tool(), "key %s", tt.key)
	}
}

func TestMouseStrokeAndUndo(t *testing.T) {
	m := newTestModel(t)
	m = send(m,
		mouse(0, 0, tea.MouseActionPress, tea.MouseButtonLeft),
		mouse(2, 0, tea.MouseActionMotion, tea.MouseButtonLeft),
		mouse(2, 0, tea.MouseActionRelease, tea.MouseButtonNone),
	)
	assert.Equal(t, map[drawing.GridPoint]bool{{X: 0, Y: 0}: true, {X: 1, Y: 0}: true}, drawn(m.doc.ActiveLayer()))
	assert.Equal(t, 2, m.doc.History().Len())
	assert.False(t, m.gesture.Drawing())

	m = send(m, tea.KeyMsg{Type: tea.KeyCtrlZ})
	assert.Equal(t, 0, m.doc.ActiveLayer().Len())
	assert.Contains(t, m.successMessage, "Undo")

	m = send(m, tea.KeyMsg{Type: tea.KeyCtrlY})
	assert.Equal(t, 2, m.doc.ActiveLayer().Len())

	m = send(m, tea.KeyMsg{Type: tea.KeyCtrlY})
	assert.Equal(t, "Nothing to redo", m.errorMessage)
}

func drawn(l *drawing.Layer) map[drawing.GridPoint]bool {
	out := make(map[drawing.GridPoint]bool)
	for _, c := range l.Cells() {
		out[drawing.GridPoint{X: c.X, Y: c.Y}] = true
	}
	return out
}

func TestMouseOutsideCanvasIgnored(t *testing.T) {
	m := newTestModel(t)
	m = send(m, mouse(79, 0, tea.MouseActionPress, tea.MouseButtonLeft))
	assert.False(t, m.gesture.Drawing())
	assert.Equal(t, 0, m.doc.ActiveLayer().Len())
	assert.Equal(t, 1, m.doc.History().Len())
}

func TestRightDragPans(t *testing.T) {
	m := newTestModel(t)
	m = send(m,
		mouse(10, 5, tea.MouseActionPress, tea.MouseButtonRight),
		mouse(12, 4, tea.MouseActionMotion, tea.MouseButtonRight),
		mouse(12, 4, tea.MouseActionRelease, tea.MouseButtonNone),
	)
	assert.Equal(t, drawing.Point{X: 8, Y: -8}, m.doc.Pan())
	assert.Equal(t, 0, m.doc.ActiveLayer().Len())
}

func TestAltLeftDragPans(t *testing.T) {
	m := newTestModel(t)
	press := mouse(10, 5, tea.MouseActionPress, tea.MouseButtonLeft)
	press.Alt = true
	m = send(m, press)
	assert.True(t, m.gesture.Panning())
	assert.Equal(t, "PAN", m.modeString())
}

func TestModifiedLeftPressDraws(t *testing.T) {
	for _, tt := range []struct {
		name string
		set  func(*tea.MouseMsg)
	}{
		{"ctrl", func(msg *tea.MouseMsg) { msg.Ctrl = true }},
		{"shift", func(msg *tea.MouseMsg) { msg.Shift = true }},
	} {
		t.Run(tt.name, func(t *testing.T) {
			m := newTestModel(t)
			press := mouse(0, 0, tea.MouseActionPress, tea.MouseButtonLeft)
			tt.set(&press)
			m = send(m, press)
			assert.True(t, m.gesture.Drawing())
			assert.Equal(t, 1, m.doc.ActiveLayer().Len())
		})
	}
}

func TestRedoKey(t *testing.T) {
	m := newTestModel(t)
	assert.Equal(t, []string{"ctrl+y"}, m.keys.Redo.Keys())

	m.doc.Commit()
	m.doc.SetCell(0, 0, "#000000")
	m = send(m, tea.KeyMsg{Type: tea.KeyCtrlZ}, tea.KeyMsg{Type: tea.KeyCtrlY})
	assert.Equal(t, 1, m.doc.ActiveLayer().Len())
}

func TestWheelZoom(t *testing.T) {
	m := newTestModel(t)
	m = send(m, mouse(5, 5, tea.MouseActionPress, tea.MouseButtonWheelUp))
	assert.InDelta(t, 1.1, m.doc.Zoom(), 1e-9)
	m = send(m,
		mouse(5, 5, tea.MouseActionPress, tea.MouseButtonWheelDown),
		mouse(5, 5, tea.MouseActionPress, tea.MouseButtonWheelDown),
	)
	assert.InDelta(t, 1.1*0.9*0.9, m.doc.Zoom(), 1e-9)
}

func TestZoomAndPanKeys(t *testing.T) {
	m := newTestModel(t)
	m = send(m, keys("+"))
	assert.InDelta(t, drawing.KeyZoomStep, m.doc.Zoom(), 1e-9)
	m = send(m, keys("-"))
	assert.InDelta(t, 1, m.doc.Zoom(), 1e-9)

	m = send(m, tea.KeyMsg{Type: tea.KeyLeft}, tea.KeyMsg{Type: tea.KeyDown})
	assert.Equal(t, drawing.Point{X: panStep, Y: -panStep}, m.doc.Pan())
}

func TestBrushAndPaletteKeys(t *testing.T) {
	m := newTestModel(t)
	m = send(m, keys("3"))
	assert.Equal(t, drawing.Brushes[2], m.doc.Brush())

	m = send(m, keys("]"))
	assert.Equal(t, drawing.Palette[1], m.doc.Color())
	m = send(m, keys("["), keys("["))
	assert.Equal(t, drawing.Palette[len(drawing.Palette)-1], m.doc.Color())

	m = send(m, keys("g"))
	assert.False(t, m.doc.ShowGrid())
}

func TestCustomColorPrompt(t *testing.T) {
	m := newTestModel(t)
	m = send(m, keys("c"))
	require.Equal(t, ModeColorInput, m.mode)

	m = send(m, keys("#ABCDEF"), tea.KeyMsg{Type: tea.KeyEnter})
	assert.Equal(t, ModeNormal, m.mode)
	assert.Equal(t, "#ABCDEF", m.doc.Color())
	assert.Equal(t, "#ABCDEF", m.doc.RecentColors()[0])

	m = send(m, keys("c"), keys("sparkly"), tea.KeyMsg{Type: tea.KeyEnter})
	assert.Equal(t, "sparkly", m.doc.Color(), "tokens are accepted verbatim")
	assert.NotEmpty(t, m.errorMessage)

	m = send(m, keys("c"), keys("red"), tea.KeyMsg{Type: tea.KeyEsc})
	assert.Equal(t, "sparkly", m.doc.Color())
}

func TestLayerKeys(t *testing.T) {
	m := newTestModel(t)
	m = send(m, keys("n"))
	require.Len(t, m.doc.Layers(), 2)
	top := m.doc.ActiveLayerID()
	assert.NotEqual(t, drawing.DefaultLayerID, top)

	m = send(m, tea.KeyMsg{Type: tea.KeyTab})
	assert.Equal(t, top, m.doc.Layers()[1].ID())
	assert.Equal(t, drawing.DefaultLayerID, m.doc.Layers()[0].ID())
	assert.Equal(t, drawing.DefaultLayerID, m.doc.ActiveLayerID(), "tab wraps from the top to the bottom layer")

	m = send(m, keys("v"))
	assert.False(t, m.doc.ActiveLayer().Visible())

	m = send(m, keys("{"), keys("{"))
	assert.InDelta(t, 0.8, m.doc.ActiveLayer().Opacity(), 1e-9)
	m = send(m, keys("}"), keys("}"), keys("}"))
	assert.Equal(t, 1.0, m.doc.ActiveLayer().Opacity())

	m = send(m, keys("x"))
	require.Equal(t, ModeConfirm, m.mode)
	m = send(m, keys("n"))
	assert.Len(t, m.doc.Layers(), 2, "declining keeps the layer")

	m = send(m, keys("x"), keys("y"))
	assert.Len(t, m.doc.Layers(), 1)
	assert.Equal(t, top, m.doc.ActiveLayerID())

	m = send(m, keys("x"))
	assert.Equal(t, ModeNormal, m.mode)
	assert.Equal(t, "Cannot delete the last layer", m.errorMessage)

	m = send(m, tea.KeyMsg{Type: tea.KeyCtrlZ})
	assert.Len(t, m.doc.Layers(), 2, "layer removal is undoable")
}

func TestQuit(t *testing.T) {
	m := newTestModel(t)
	_, cmd := m.Update(keys("q"))
	require.NotNil(t, cmd)
	assert.Equal(t, tea.QuitMsg{}, cmd())

	m.doc.SetCell(0, 0, "#000000")
	m = send(m, keys("q"))
	require.Equal(t, ModeConfirm, m.mode)
	assert.Contains(t, m.View(), "Quit pixl?")

	next, cmd := m.Update(keys("y"))
	require.NotNil(t, cmd)
	assert.Equal(t, tea.QuitMsg{}, cmd())
	assert.Equal(t, ModeNormal, next.(model).mode)
}

func TestExportKeys(t *testing.T) {
	m := newTestModel(t)
	m.doc.SetCell(0, 0, "#FF0000")

	m = send(m, tea.KeyMsg{Type: tea.KeyCtrlS})
	png := filepath.Join(m.config.SaveDirectory, "pixel-art-1700000000000.png")
	assert.FileExists(t, png)
	assert.Contains(t, m.successMessage, png)

	m = send(m, tea.KeyMsg{Type: tea.KeyCtrlP})
	pdf := filepath.Join(m.config.SaveDirectory, "pixel-art-1700000000000.pdf")
	data, err := os.ReadFile(pdf)
	require.NoError(t, err)
	assert.Equal(t, "%PDF", string(data[:4]))
}

func TestExportFailureIsReported(t *testing.T) {
	m := newTestModel(t)
	blocker := filepath.Join(t.TempDir(), "file")
	require.NoError(t, os.WriteFile(blocker, nil, 0644))
	m.config.SaveDirectory = filepath.Join(blocker, "sub")

	m = send(m, tea.KeyMsg{Type: tea.KeyCtrlS})
	assert.Contains(t, m.errorMessage, "Export failed")
}

func TestHelpToggle(t *testing.T) {
	m := newTestModel(t)
	m = send(m, keys("?"))
	require.True(t, m.showHelp)
	assert.Contains(t, m.View(), "pixl Help")

	m = send(m, keys("b"))
	assert.False(t, m.showHelp)
	assert.Equal(t, drawing.ToolBrush, m.doc.Tool())
}

func TestViewRenders(t *testing.T) {
	m := newTestModel(t)
	m.doc.SetCell(0, 0, "#FF0000")
	out := m.View()
	assert.Contains(t, out, "Layers")
	assert.Contains(t, out, "Слой 1")
	assert.Contains(t, out, "Mode: NORMAL")
}
