package main

import "github.com/charmbracelet/bubbles/key"

type keyMap struct {
	Brush      key.Binding
	Eraser     key.Binding
	Fill       key.Binding
	Picker     key.Binding
	Undo       key.Binding
	Redo       key.Binding
	SavePNG    key.Binding
	SavePDF    key.Binding
	ZoomIn     key.Binding
	ZoomOut    key.Binding
	Pan        key.Binding
	Grid       key.Binding
	BrushSize  key.Binding
	PrevColor  key.Binding
	NextColor  key.Binding
	Custom     key.Binding
	Paste      key.Binding
	Copy       key.Binding
	NewLayer   key.Binding
	DelLayer   key.Binding
	Visibility key.Binding
	Fainter    key.Binding
	Stronger   key.Binding
	NextLayer  key.Binding
	Help       key.Binding
	Quit       key.Binding
}

func newKeyMap() keyMap {
	return keyMap{
		Brush:      key.NewBinding(key.WithKeys("b"), key.WithHelp("b", "brush")),
		Eraser:     key.NewBinding(key.WithKeys("e"), key.WithHelp("e", "eraser")),
		Fill:       key.NewBinding(key.WithKeys("f"), key.WithHelp("f", "fill")),
		Picker:     key.NewBinding(key.WithKeys("i"), key.WithHelp("i", "picker")),
		Undo:       key.NewBinding(key.WithKeys("ctrl+z"), key.WithHelp("ctrl+z", "undo")),
		Redo:       key.NewBinding(key.WithKeys("ctrl+y"), key.WithHelp("ctrl+y", "redo")),
		SavePNG:    key.NewBinding(key.WithKeys("ctrl+s"), key.WithHelp("ctrl+s", "export png")),
		SavePDF:    key.NewBinding(key.WithKeys("ctrl+p"), key.WithHelp("ctrl+p", "export pdf")),
		ZoomIn:     key.NewBinding(key.WithKeys("+", "="), key.WithHelp("+", "zoom in")),
		ZoomOut:    key.NewBinding(key.WithKeys("-"), key.WithHelp("-", "zoom out")),
		Pan:        key.NewBinding(key.WithKeys("left", "right", "up", "down"), key.WithHelp("←↑↓→", "pan")),
		Grid:       key.NewBinding(key.WithKeys("g"), key.WithHelp("g", "grid")),
		BrushSize:  key.NewBinding(key.WithKeys("1", "2", "3", "4", "5", "6", "7", "8", "9"), key.WithHelp("1-9", "brush preset")),
		PrevColor:  key.NewBinding(key.WithKeys("["), key.WithHelp("[", "prev color")),
		NextColor:  key.NewBinding(key.WithKeys("]"), key.WithHelp("]", "next color")),
		Custom:     key.NewBinding(key.WithKeys("c"), key.WithHelp("c", "custom color")),
		Paste:      key.NewBinding(key.WithKeys("ctrl+v"), key.WithHelp("ctrl+v", "paste color")),
		Copy:       key.NewBinding(key.WithKeys("y"), key.WithHelp("y", "copy color")),
		NewLayer:   key.NewBinding(key.WithKeys("n"), key.WithHelp("n", "new layer")),
		DelLayer:   key.NewBinding(key.WithKeys("x"), key.WithHelp("x", "delete layer")),
		Visibility: key.NewBinding(key.WithKeys("v"), key.WithHelp("v", "show/hide layer")),
		Fainter:    key.NewBinding(key.WithKeys("{"), key.WithHelp("{", "opacity -")),
		Stronger:   key.NewBinding(key.WithKeys("}"), key.WithHelp("}", "opacity +")),
		NextLayer:  key.NewBinding(key.WithKeys("tab"), key.WithHelp("tab", "next layer")),
		Help:       key.NewBinding(key.WithKeys("?"), key.WithHelp("?", "help")),
		Quit:       key.NewBinding(key.WithKeys("q", "ctrl+c"), key.WithHelp("q", "quit")),
	}
}

func (k keyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Brush, k.Eraser, k.Fill, k.Picker, k.Undo, k.SavePNG, k.Help, k.Quit}
}

func (k keyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Brush, k.Eraser, k.Fill, k.Picker, k.BrushSize, k.Grid},
		{k.PrevColor, k.NextColor, k.Custom, k.Paste, k.Copy},
		{k.NewLayer, k.DelLayer, k.Visibility, k.Fainter, k.Stronger, k.NextLayer},
		{k.Undo, k.Redo, k.ZoomIn, k.ZoomOut, k.Pan},
		{k.SavePNG, k.SavePDF, k.Help, k.Quit},
	}
}
