package state

// History is the committed command list plus the redo buffer. Commands move
// between the two by reference and are never copied.
type History struct {
	committed []Command
	redo      []Command
}

// Commit appends cmd and invalidates the redo branch.
func (h *History) Commit(cmd Command) {
	h.committed = append(h.committed, cmd)
	clear(h.redo)
	h.redo = h.redo[:0]
}

// Undo moves the newest committed command onto the redo buffer. It reports
// false and changes nothing when there is nothing to undo.
func (h *History) Undo() bool {
	n := len(h.committed)
	if n == 0 {
		return false
	}
	cmd := h.committed[n-1]
	h.committed[n-1] = nil
	h.committed = h.committed[:n-1]
	h.redo = append(h.redo, cmd)
	return true
}

// Redo moves the most recently undone command back onto the committed list.
func (h *History) Redo() bool {
	n := len(h.redo)
	if n == 0 {
		return false
	}
	cmd := h.redo[n-1]
	h.redo[n-1] = nil
	h.redo = h.redo[:n-1]
	h.committed = append(h.committed, cmd)
	return true
}

// Clear discards every committed command and the redo buffer. It returns
// how many redo entries were dropped along with the drawing.
func (h *History) Clear() int {
	dropped := len(h.redo)
	clear(h.committed)
	h.committed = h.committed[:0]
	clear(h.redo)
	h.redo = h.redo[:0]
	return dropped
}

// Committed returns the committed commands, oldest first. The slice must
// not be modified.
func (h *History) Committed() []Command { return h.committed }

// RedoBuffer returns undone commands; the last element is redone first.
func (h *History) RedoBuffer() []Command { return h.redo }

// Len is the number of committed commands.
func (h *History) Len() int { return len(h.committed) }

// CanUndo reports whether Undo would change anything.
func (h *History) CanUndo() bool { return len(h.committed) > 0 }

// CanRedo reports whether Redo would change anything.
func (h *History) CanRedo() bool { return len(h.redo) > 0 }
