package drawing

// DefaultHistoryLimit is the number of snapshots kept by default.
const DefaultHistoryLimit = 50

// History is a bounded list of document snapshots with a cursor.
// Entries are deep copies; nothing in them is shared with the live document.
type History struct {
	entries []state
	index   int
	limit   int
}

func newHistory(initial state, limit int) *History {
	if limit < 1 {
		limit = DefaultHistoryLimit
	}
	return &History{
		entries: []state{initial.clone()},
		limit:   limit,
	}
}

// Len returns the number of stored snapshots.
func (h *History) Len() int { return len(h.entries) }

// Index returns the position of the current snapshot.
func (h *History) Index() int { return h.index }

// Limit returns the maximum number of stored snapshots.
func (h *History) Limit() int { return h.limit }

func (h *History) CanUndo() bool { return h.index > 0 }

func (h *History) CanRedo() bool { return h.index < len(h.entries)-1 }

func (h *History) atTip() bool { return h.index == len(h.entries)-1 }

// push drops everything after the cursor, appends s and trims the oldest
// entries beyond the limit.
func (h *History) push(s state) {
	entries := append(h.entries[:h.index+1:h.index+1], s.clone())
	if over := len(entries) - h.limit; over > 0 {
		entries = entries[over:]
	}
	h.entries = entries
	h.index = len(entries) - 1
}

// truncate drops every entry after the cursor.
func (h *History) truncate() {
	h.entries = h.entries[:h.index+1]
}

// back moves the cursor to the nearest older entry whose layers differ from
// live, then to the oldest entry of the run holding those same layers. Runs of
// identical snapshots are one undo step.
func (h *History) back(live []*Layer) (state, bool) {
	i := h.index - 1
	for i > 0 && sameLayers(h.entries[i].layers, live) {
		i--
	}
	for i > 0 && sameLayers(h.entries[i-1].layers, h.entries[i].layers) {
		i--
	}
	if i < 0 {
		return state{}, false
	}
	h.index = i
	return h.entries[i], true
}

// forward is back in the other direction. It stops on the newest entry of a
// run.
func (h *History) forward(live []*Layer) (state, bool) {
	last := len(h.entries) - 1
	i := h.index + 1
	for i < last && sameLayers(h.entries[i].layers, live) {
		i++
	}
	for i < last && sameLayers(h.entries[i+1].layers, h.entries[i].layers) {
		i++
	}
	if i > last {
		return state{}, false
	}
	h.index = i
	return h.entries[i], true
}
