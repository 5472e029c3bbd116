package main

type Mode int

const (
	ModeNormal Mode = iota
	ModeColorInput
	ModeConfirm
)

type ConfirmAction int

const (
	ConfirmQuit ConfirmAction = iota
	ConfirmDeleteLayer
)

type ExportFormat int

const (
	ExportPNG ExportFormat = iota
	ExportPDF
)

const (
	colPx        = 4 // screen pixels per terminal column
	rowPx        = 8 // screen pixels per terminal row
	sidebarWidth = 26
	panStep      = 16 // screen pixels per arrow press
	opacityStep  = 0.1
)
