package imagedit

import (
	"errors"
	"testing"
)

func TestHistoryUndoRedoZoom(t *testing.T) {
	s, _ := newTestSession(t)
	h := s.History()
	v := s.Viewport()

	if err := h.Execute(CommandZoomImage, OpSetZoomValue, 2.0); err != nil {
		t.Fatal(err)
	}
	if err := h.Execute(CommandZoomImage, OpSetZoomValue, 3.0); err != nil {
		t.Fatal(err)
	}
	if h.Len() != 2 || !h.CanUndo() || h.CanRedo() {
		t.Fatalf("Len=%d CanUndo=%v CanRedo=%v", h.Len(), h.CanUndo(), h.CanRedo())
	}

	_ = h.Undo()
	if v.CurrentValue() != 2 {
		t.Errorf("after undo = %v, want 2", v.CurrentValue())
	}
	_ = h.Undo()
	if v.CurrentValue() != 1 {
		t.Errorf("after second undo = %v, want 1", v.CurrentValue())
	}
	if err := h.Undo(); !errors.Is(err, ErrNothingToUndo) {
		t.Errorf("err = %v, want ErrNothingToUndo", err)
	}

	_ = h.Redo()
	if v.CurrentValue() != 2 {
		t.Errorf("after redo = %v, want 2", v.CurrentValue())
	}
	_ = h.Redo()
	if v.CurrentValue() != 3 {
		t.Errorf("after second redo = %v, want 3", v.CurrentValue())
	}
	if err := h.Redo(); !errors.Is(err, ErrNothingToRedo) {
		t.Errorf("err = %v, want ErrNothingToRedo", err)
	}

	// redone commands can be undone again
	_ = h.Undo()
	if v.CurrentValue() != 2 {
		t.Errorf("undo after redo = %v, want 2", v.CurrentValue())
	}
}

func TestHistoryExecuteClearsRedo(t *testing.T) {
	s, _ := newTestSession(t)
	h := s.History()
	_ = h.Execute(CommandZoomImage, OpSetZoomValue, 2.0)
	_ = h.Undo()
	if !h.CanRedo() {
		t.Fatal("CanRedo = false after undo")
	}
	_ = h.Execute(CommandResizeImage, OpResize, Dimensions{100, 100})
	if h.CanRedo() {
		t.Error("a new command should clear the redo stack")
	}
}

func TestHistoryFailedExecuteNotRecorded(t *testing.T) {
	s, _ := newTestSession(t)
	h := s.History()
	if err := h.Execute(CommandResizeImage, OpResize, Dimensions{0, 0}); !errors.Is(err, ErrInvalidDimensions) {
		t.Fatalf("err = %v", err)
	}
	if err := h.Execute("rotateImage", "rotate"); !errors.Is(err, ErrUnknownCommand) {
		t.Fatalf("err = %v", err)
	}
	if h.Len() != 0 {
		t.Errorf("Len = %d, want 0", h.Len())
	}
}

func TestHistoryLimitDropsOldest(t *testing.T) {
	s := NewSession(SessionConfig{Width: 100, Height: 100, HistoryLimit: 3})
	h := s.History()
	for i := 2; i <= 6; i++ {
		if err := h.Execute(CommandZoomImage, OpSetZoomValue, float64(i)); err != nil {
			t.Fatal(err)
		}
	}
	if h.Len() != 3 {
		t.Fatalf("Len = %d, want 3", h.Len())
	}
	for h.CanUndo() {
		if err := h.Undo(); err != nil {
			t.Fatal(err)
		}
	}
	// zooms to 2 and 3 were dropped; the oldest kept entry restores 3
	if got := s.Viewport().CurrentValue(); got != 3 {
		t.Errorf("scale after undoing all = %v, want 3", got)
	}
}

func TestHistoryResizeRoundTrip(t *testing.T) {
	s, _ := newTestSession(t)
	h := s.History()
	resized := 0
	s.Events().Subscribe(TopicImageResized, func(Event) { resized++ })

	_ = h.Execute(CommandResizeImage, OpResize, Dimensions{Width: 200, Height: 100})
	_ = h.Undo()
	if got := s.Resizer().CurrentDimensions(); got != (Dimensions{800, 600}) {
		t.Errorf("after undo = %+v", got)
	}
	if resized != 2 {
		t.Errorf("imageResized events = %d, want 2", resized)
	}
}

func TestHistoryClear(t *testing.T) {
	s, _ := newTestSession(t)
	h := s.History()
	_ = h.Execute(CommandZoomImage, OpSetZoomValue, 2.0)
	_ = h.Execute(CommandZoomImage, OpSetZoomValue, 3.0)
	_ = h.Undo()
	h.Clear()
	if h.CanUndo() || h.CanRedo() || h.Len() != 0 {
		t.Error("Clear should empty both stacks")
	}
}

func TestNewHistoryDefaultLimit(t *testing.T) {
	s, _ := newTestSession(t)
	if h := NewHistory(s, 0); h.limit != defaultHistoryLimit {
		t.Errorf("limit = %d, want %d", h.limit, defaultHistoryLimit)
	}
}
