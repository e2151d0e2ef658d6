package imagedit

import "fmt"

type historyEntry struct {
	cmd  Command
	op   string
	args []any
}

// History is a bounded undo/redo stack of executed commands. A command
// reaches the undo stack only after its Execute succeeded, so Undo never
// runs on a command without undo data.
type History struct {
	session *Session
	limit   int
	undo    []historyEntry
	redo    []historyEntry
}

// NewHistory creates a history for s keeping at most limit undo entries.
// A limit <= 0 uses the default of 40.
func NewHistory(s *Session, limit int) *History {
	if limit <= 0 {
		limit = defaultHistoryLimit
	}
	return &History{session: s, limit: limit}
}

// Execute creates the command registered under name, runs op and records it.
// Recording a new command clears the redo stack; past the limit the oldest
// entry is dropped.
func (h *History) Execute(name, op string, args ...any) error {
	cmd, err := NewCommand(name)
	if err != nil {
		return err
	}
	if err := cmd.Execute(h.session, op, args...); err != nil {
		return err
	}
	h.push(historyEntry{cmd: cmd, op: op, args: args})
	h.redo = h.redo[:0]
	return nil
}

func (h *History) push(e historyEntry) {
	h.undo = append(h.undo, e)
	if over := len(h.undo) - h.limit; over > 0 {
		clear(h.undo[:over])
		h.undo = h.undo[over:]
	}
}

// Undo reverts the most recent command. On failure the command stays on
// the undo stack.
func (h *History) Undo() error {
	if len(h.undo) == 0 {
		return ErrNothingToUndo
	}
	e := h.undo[len(h.undo)-1]
	if err := e.cmd.Undo(h.session); err != nil {
		return fmt.Errorf("imagedit: undo %s: %w", e.cmd.Name(), err)
	}
	h.undo[len(h.undo)-1] = historyEntry{}
	h.undo = h.undo[:len(h.undo)-1]
	h.redo = append(h.redo, e)
	return nil
}

// Redo re-executes the most recently undone command with its original
// arguments.
func (h *History) Redo() error {
	if len(h.redo) == 0 {
		return ErrNothingToRedo
	}
	e := h.redo[len(h.redo)-1]
	if err := e.cmd.Execute(h.session, e.op, e.args...); err != nil {
		return fmt.Errorf("imagedit: redo %s: %w", e.cmd.Name(), err)
	}
	h.redo[len(h.redo)-1] = historyEntry{}
	h.redo = h.redo[:len(h.redo)-1]
	h.push(e)
	return nil
}

// CanUndo reports whether Undo has an entry to revert.
func (h *History) CanUndo() bool { return len(h.undo) > 0 }

// CanRedo reports whether Redo has an entry to replay.
func (h *History) CanRedo() bool { return len(h.redo) > 0 }

// Len returns the number of undoable entries.
func (h *History) Len() int { return len(h.undo) }

// Clear drops every entry.
func (h *History) Clear() {
	h.undo = nil
	h.redo = nil
}
