package imagedit

import (
	"errors"
	"testing"
)

func runScript(t *testing.T, s *Session, script *GestureScript, maxFrames int) {
	t.Helper()
	s.SetGestureScript(script)
	for i := 0; i < maxFrames && !script.Done(); i++ {
		if err := s.Update(1.0 / 60); err != nil {
			t.Fatalf("Update: %v", err)
		}
	}
	if !script.Done() {
		t.Fatalf("script not done after %d frames", maxFrames)
	}
}

func TestLoadGestureScript(t *testing.T) {
	data := []byte(`{"steps": [
		{"action": "press", "x": 10, "y": 20},
		{"action": "move", "x": 30, "y": 40, "shift": true},
		{"action": "release", "x": 30, "y": 40},
		{"action": "wait", "frames": 3}
	]}`)
	g, err := LoadGestureScript(data)
	if err != nil {
		t.Fatal(err)
	}
	if len(g.steps) != 4 {
		t.Fatalf("steps = %d, want 4", len(g.steps))
	}
	if g.steps[1].X != 30 || !g.steps[1].Shift {
		t.Errorf("step 1 = %+v", g.steps[1])
	}
	if g.Done() || g.Err() != nil {
		t.Error("new script should not be done")
	}
}

func TestLoadGestureScriptErrors(t *testing.T) {
	tests := []struct {
		name string
		data string
	}{
		{"invalid json", `{"steps": [`},
		{"no steps", `{"steps": []}`},
		{"unknown action", `{"steps": [{"action": "teleport"}]}`},
	}
	for _, tt := range tests {
		if _, err := LoadGestureScript([]byte(tt.data)); err == nil {
			t.Errorf("%s: expected error", tt.name)
		}
	}
}

func TestGestureScriptDrawsArrow(t *testing.T) {
	s, scene := newTestSession(t)
	var added []ObjectProperties
	s.Events().Subscribe(TopicObjectAdded, func(e Event) { added = append(added, e.Properties) })

	g, err := LoadGestureScript([]byte(`{"steps": [
		{"action": "mode", "mode": "ARROW_DRAWING", "brush": {"width": 5, "color": "#ff0000"}},
		{"action": "drag", "fromX": 10, "fromY": 10, "toX": 50, "toY": 50, "frames": 4},
		{"action": "mode"}
	]}`))
	if err != nil {
		t.Fatal(err)
	}
	runScript(t, s, g, 50)

	if g.Err() != nil {
		t.Fatal(g.Err())
	}
	if len(added) != 1 || added[0].Type != "arrow" || added[0].Name != "my_ArrowGroup" {
		t.Errorf("added = %+v", added)
	}
	if s.Modes().Current() != "" {
		t.Errorf("mode = %q after stop step", s.Modes().Current())
	}
	if len(scene.Objects()) != 0 {
		t.Errorf("live objects = %d", len(scene.Objects()))
	}
}

func TestGestureScriptZoomPanUndo(t *testing.T) {
	s, _ := newTestSession(t)
	var panned int
	s.Events().Subscribe(TopicImagePanned, func(Event) { panned++ })

	g, err := LoadGestureScript([]byte(`{"steps": [
		{"action": "zoom", "scale": 2},
		{"action": "press", "x": 400, "y": 300, "shift": true},
		{"action": "move", "x": 350, "y": 300},
		{"action": "release", "x": 350, "y": 300},
		{"action": "zoom", "scale": 3},
		{"action": "undo"},
		{"action": "redo"},
		{"action": "undo"},
		{"action": "resize", "width": 200, "height": 100},
		{"action": "undo"}
	]}`))
	if err != nil {
		t.Fatal(err)
	}
	runScript(t, s, g, 100)

	if g.Err() != nil {
		t.Fatal(g.Err())
	}
	if panned != 1 {
		t.Errorf("panned events = %d, want 1", panned)
	}
	if got := s.Viewport().CurrentValue(); got != 2 {
		t.Errorf("scale = %v, want 2", got)
	}
	if got := s.Resizer().CurrentDimensions(); got != (Dimensions{800, 600}) {
		t.Errorf("dimensions = %+v", got)
	}
	if s.History().Len() != 1 {
		t.Errorf("history Len = %d, want 1", s.History().Len())
	}
}

func TestGestureScriptStopsOnError(t *testing.T) {
	s, _ := newTestSession(t)
	g, err := LoadGestureScript([]byte(`{"steps": [
		{"action": "undo"},
		{"action": "zoom", "scale": 2}
	]}`))
	if err != nil {
		t.Fatal(err)
	}
	runScript(t, s, g, 10)
	if !errors.Is(g.Err(), ErrNothingToUndo) {
		t.Errorf("Err = %v, want ErrNothingToUndo", g.Err())
	}
	if s.Viewport().CurrentValue() != 1 {
		t.Error("steps after a failure should not run")
	}
}

func TestGestureScriptWait(t *testing.T) {
	s, _ := newTestSession(t)
	g, err := LoadGestureScript([]byte(`{"steps": [
		{"action": "wait", "frames": 5},
		{"action": "zoom", "scale": 2}
	]}`))
	if err != nil {
		t.Fatal(err)
	}
	s.SetGestureScript(g)
	for i := 0; i < 3; i++ {
		_ = s.Update(1.0 / 60)
	}
	if s.Viewport().CurrentValue() != 1 {
		t.Error("zoom ran before the wait finished")
	}
	runScript(t, s, g, 20)
	if s.Viewport().CurrentValue() != 2 {
		t.Errorf("scale = %v, want 2", s.Viewport().CurrentValue())
	}
}

// plainCanvas hides the Scene injection methods.
type plainCanvas struct{ Canvas }

func TestGestureScriptNeedsInjectableCanvas(t *testing.T) {
	s := NewSession(SessionConfig{Canvas: plainCanvas{NewScene(100, 100)}})
	g, _ := LoadGestureScript([]byte(`{"steps": [{"action": "press", "x": 1, "y": 1}]}`))
	runScript(t, s, g, 5)
	if g.Err() == nil {
		t.Error("expected an error for a canvas without input injection")
	}
}
