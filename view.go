package main

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/lipgloss"
	"github.com/lucasb-eyer/go-colorful"

	"pixl/internal/drawing"
	"pixl/internal/export"
)

var (
	paper   = colorful.Color{R: 1, G: 1, B: 1}
	outside = colorful.Color{R: 0.82, G: 0.82, B: 0.82}

	gridColor   = lipgloss.Color("#9e9e9e")
	errorStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("#ff5f5f"))
	okStyle     = lipgloss.NewStyle().Foreground(lipgloss.Color("#5fd75f"))
	titleStyle  = lipgloss.NewStyle().Bold(true)
	activeStyle = lipgloss.NewStyle().Reverse(true)
	panelStyle  = lipgloss.NewStyle().Width(sidebarWidth - 1).PaddingLeft(1).BorderStyle(lipgloss.NormalBorder()).BorderLeft(true)
)

func (m model) View() string {
	if m.showHelp {
		return m.helpView()
	}

	body := lipgloss.JoinHorizontal(lipgloss.Top,
		strings.Join(m.renderCanvas(), "\n"),
		panelStyle.Height(m.canvasHeight()).Render(m.renderPanel()),
	)

	var result strings.Builder
	result.WriteString(body)
	result.WriteString("\n")
	result.WriteString(m.statusLine())
	result.WriteString("\n")
	result.WriteString(m.help.View(m.keys))
	return result.String()
}

// renderCanvas draws one line per terminal row. Every terminal cell shows the
// composite color of the grid cell under its centre.
func (m model) renderCanvas() []string {
	width, height := m.canvasWidth(), m.canvasHeight()
	layers := m.doc.Layers()
	scaled := m.doc.Zoom() * float64(m.doc.CellSize())
	showGrid := m.doc.ShowGrid() && scaled >= 2*colPx

	lines := make([]string, height)
	for row := 0; row < height; row++ {
		var (
			line    strings.Builder
			run     strings.Builder
			runBg   colorful.Color
			runGrid bool
		)
		flush := func() {
			if run.Len() == 0 {
				return
			}
			style := lipgloss.NewStyle().Background(lipgloss.Color(runBg.Hex()))
			if runGrid {
				style = style.Foreground(gridColor)
			}
			line.WriteString(style.Render(run.String()))
			run.Reset()
		}

		for col := 0; col < width; col++ {
			g := m.doc.ScreenToGrid(screenPoint(col, row))
			bg := m.composite(layers, g)
			dot := showGrid &&
				g != m.doc.ScreenToGrid(screenPoint(col-1, row)) &&
				g != m.doc.ScreenToGrid(screenPoint(col, row-1))

			if run.Len() > 0 && (bg != runBg || dot != runGrid) {
				flush()
			}
			runBg, runGrid = bg, dot
			if dot {
				run.WriteString("·")
			} else {
				run.WriteString(" ")
			}
		}
		flush()
		lines[row] = line.String()
	}
	return lines
}

// composite blends the visible layers at g, bottom first, over the paper
// color. Cells off the canvas sit on a grey background.
func (m model) composite(layers []*drawing.Layer, g drawing.GridPoint) colorful.Color {
	size := m.doc.CanvasSize()
	bg := paper
	if g.X < 0 || g.Y < 0 || g.X >= size.Width || g.Y >= size.Height {
		bg = outside
	}
	for _, l := range layers {
		if !l.Visible() {
			continue
		}
		token, ok := l.Color(g.X, g.Y)
		if !ok {
			continue
		}
		c, ok := export.ParseColor(token)
		if !ok {
			continue
		}
		fg, _ := colorful.MakeColor(c)
		bg = bg.BlendRgb(fg, l.Opacity())
	}
	return bg
}

func (m model) renderPanel() string {
	var b strings.Builder

	b.WriteString(titleStyle.Render("Tool"))
	b.WriteString("\n")
	fmt.Fprintf(&b, "%s / %s\n", m.doc.Tool(), truncate(m.doc.Brush().Name, sidebarWidth-12))
	fmt.Fprintf(&b, "%s %s\n", swatch(m.doc.Color()), truncate(m.doc.Color(), sidebarWidth-6))
	fmt.Fprintf(&b, "zoom %.0f%%  grid %s\n", m.doc.Zoom()*100, onOff(m.doc.ShowGrid()))
	h := m.doc.History()
	fmt.Fprintf(&b, "history %d/%d\n", h.Index()+1, h.Len())

	b.WriteString("\n")
	b.WriteString(titleStyle.Render("Layers"))
	b.WriteString("\n")
	layers := m.doc.Layers()
	for i := len(layers) - 1; i >= 0; i-- {
		l := layers[i]
		eye := "○"
		if l.Visible() {
			eye = "●"
		}
		line := fmt.Sprintf("%s %-*s %3.0f%%", eye, sidebarWidth-10, truncate(l.Name(), sidebarWidth-10), l.Opacity()*100)
		if l.ID() == m.doc.ActiveLayerID() {
			line = activeStyle.Render(line)
		}
		b.WriteString(line)
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(titleStyle.Render("Recent"))
	b.WriteString("\n")
	for i, c := range m.doc.RecentColors() {
		if i > 0 && i%8 == 0 {
			b.WriteString("\n")
		}
		b.WriteString(swatch(c))
	}
	return b.String()
}

func (m model) statusLine() string {
	switch m.mode {
	case ModeColorInput:
		return m.input.View() + "  (enter to apply, esc to cancel)"
	case ModeConfirm:
		var message string
		switch m.confirmAction {
		case ConfirmQuit:
			message = "Quit pixl? Unexported changes will be lost. (y/n)"
		case ConfirmDeleteLayer:
			message = fmt.Sprintf("Delete layer %s? (y/n)", m.doc.ActiveLayer().Name())
		}
		return fmt.Sprintf("Mode: %s | %s", m.modeString(), message)
	}

	status := fmt.Sprintf("Mode: %s | Tool: %s | Layer: %s", m.modeString(), m.doc.Tool(), m.doc.ActiveLayer().Name())
	if m.errorMessage != "" {
		status += " | " + errorStyle.Render(m.errorMessage)
	} else if m.successMessage != "" {
		status += " | " + okStyle.Render(m.successMessage)
	}
	return status
}

func (m model) modeString() string {
	switch m.mode {
	case ModeNormal:
		if m.gesture.Panning() {
			return "PAN"
		}
		if m.gesture.Drawing() {
			return "DRAW"
		}
		return "NORMAL"
	case ModeColorInput:
		return "COLOR"
	case ModeConfirm:
		return "CONFIRM"
	default:
		return "UNKNOWN"
	}
}

func (m model) helpView() string {
	helpLines := []string{
		titleStyle.Render("pixl Help"),
		"=========",
		"",
		"Mouse:",
		"------",
		"  Left drag              Draw with the current tool",
		"  Right/middle drag      Pan",
		"  Alt+left drag          Pan",
		"  Wheel                  Zoom at the pointer",
		"",
		"Keys:",
		"-----",
	}
	for _, group := range m.keys.FullHelp() {
		helpLines = append(helpLines, m.help.FullHelpView([][]key.Binding{group}), "")
	}
	helpLines = append(helpLines, "Brushes:", "--------")
	for i, b := range drawing.Brushes {
		helpLines = append(helpLines, fmt.Sprintf("  %d  %-20s %s %d", i+1, b.Name, b.Shape, b.Size))
	}
	helpLines = append(helpLines, "", "Press any key to close")
	return strings.Join(helpLines, "\n")
}

func swatch(token string) string {
	c, ok := export.ParseColor(token)
	if !ok {
		return "??"
	}
	fg, _ := colorful.MakeColor(c)
	return lipgloss.NewStyle().Background(lipgloss.Color(fg.Hex())).Render("  ")
}

func onOff(b bool) string {
	if b {
		return "on"
	}
	return "off"
}

func truncate(s string, n int) string {
	r := []rune(s)
	if n < 1 {
		return ""
	}
	if len(r) <= n {
		return s
	}
	return string(r[:n-1]) + "…"
}
