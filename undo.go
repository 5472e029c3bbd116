package main

import "fmt"

func (m *model) undo() {
	if !m.doc.History().CanUndo() {
		m.errorMessage = "Nothing to undo"
		return
	}
	m.gesture.Up()
	m.doc.Undo()
	m.successMessage = m.historyStatus("Undo")
}

func (m *model) redo() {
	if !m.doc.History().CanRedo() {
		m.errorMessage = "Nothing to redo"
		return
	}
	m.gesture.Up()
	m.doc.Redo()
	m.successMessage = m.historyStatus("Redo")
}

func (m *model) historyStatus(action string) string {
	h := m.doc.History()
	return fmt.Sprintf("%s (%d/%d)", action, h.Index()+1, h.Len())
}
