package action

import (
	"sync"

	"github.com/oshokin/smart-home/internal/event"
)

// historySource is the event source of history reports.
const historySource = "history"

// History is a linear undo/redo manager.
type History struct {
	// undo holds executed actions, most recent last.
	undo []Action
	// redo holds undone actions, most recent last.
	redo []Action
	// reporter receives history events.
	reporter event.Reporter
	// mu keeps both stacks consistent.
	mu sync.Mutex
}

// NewHistory creates an empty history reporting to r.
func NewHistory(r event.Reporter) *History {
	return &History{reporter: r}
}

// Execute applies a, records it for undo and discards the redo branch.
func (h *History) Execute(a Action) {
	h.mu.Lock()
	defer h.mu.Unlock()

	a.Execute()
	h.undo = append(h.undo, a)
	clear(h.redo)
	h.redo = h.redo[:0]

	h.reporter.Report(event.KindHistory, historySource, "Executed "+a.String())
}

// Undo reverts the most recent action. It returns false when there is nothing to undo.
func (h *History) Undo() bool {
	h.mu.Lock()
	defer h.mu.Unlock()

	a, ok := pop(&h.undo)
	if !ok {
		h.reporter.Report(event.KindInfo, historySource, "Nothing to undo")

		return false
	}

	a.Undo()
	h.redo = append(h.redo, a)

	h.reporter.Report(event.KindHistory, historySource, "Undid "+a.String())

	return true
}

// Redo re-applies the most recently undone action. It returns false when there is nothing to redo.
func (h *History) Redo() bool {
	h.mu.Lock()
	defer h.mu.Unlock()

	a, ok := pop(&h.redo)
	if !ok {
		h.reporter.Report(event.KindInfo, historySource, "Nothing to redo")

		return false
	}

	a.Execute()
	h.undo = append(h.undo, a)

	h.reporter.Report(event.KindHistory, historySource, "Redid "+a.String())

	return true
}

// CanUndo reports whether Undo would do something.
func (h *History) CanUndo() bool {
	return h.UndoLen() > 0
}

// CanRedo reports whether Redo would do something.
func (h *History) CanRedo() bool {
	return h.RedoLen() > 0
}

// UndoLen returns the depth of the undo stack.
func (h *History) UndoLen() int {
	h.mu.Lock()
	defer h.mu.Unlock()

	return len(h.undo)
}

// RedoLen returns the depth of the redo stack.
func (h *History) RedoLen() int {
	h.mu.Lock()
	defer h.mu.Unlock()

	return len(h.redo)
}

func pop(stack *[]Action) (Action, bool) {
	s := *stack
	if len(s) == 0 {
		return nil, false
	}

	a := s[len(s)-1]
	s[len(s)-1] = nil
	*stack = s[:len(s)-1]

	return a, true
}
