package main

import (
	"fmt"
	"os/exec"
	"runtime"
	"strings"

	"github.com/atotto/clipboard"

	"pixl/internal/export"
)

func readClipboardText() (string, error) {
	if runtime.GOOS == "darwin" {
		if output, err := exec.Command("pbpaste", "-Prefer", "txt").Output(); err == nil {
			return string(output), nil
		}
	}
	return clipboard.ReadAll()
}

// colorToken pulls a color out of pasted text: the first line, trimmed, with a
// "#" added to bare six or three digit hex.
func colorToken(text string) string {
	line, _, _ := strings.Cut(strings.TrimSpace(text), "\n")
	line = strings.TrimSpace(line)
	if !strings.HasPrefix(line, "#") && (len(line) == 6 || len(line) == 3) {
		if _, ok := export.ParseColor("#" + line); ok {
			return "#" + line
		}
	}
	return line
}

func (m *model) pasteColor() {
	text, err := readClipboardText()
	if err != nil {
		m.errorMessage = fmt.Sprintf("Clipboard: %v", err)
		return
	}
	token := colorToken(text)
	if _, ok := export.ParseColor(token); !ok {
		m.errorMessage = fmt.Sprintf("Clipboard does not hold a color: %q", token)
		return
	}
	m.doc.SetColor(token)
	m.successMessage = fmt.Sprintf("Color: %s", token)
}

func (m *model) copyColor() {
	if err := clipboard.WriteAll(m.doc.Color()); err != nil {
		m.errorMessage = fmt.Sprintf("Clipboard: %v", err)
		return
	}
	m.successMessage = fmt.Sprintf("Copied %s", m.doc.Color())
}
