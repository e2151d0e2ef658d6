package imagedit

import "testing"

func TestNewScene(t *testing.T) {
	s := NewScene(640, 480)
	w, h := s.Size()
	if w != 640 || h != 480 {
		t.Errorf("Size = %vx%v, want 640x480", w, h)
	}
	assertMatrix(t, "vpt", s.ViewportTransform(), identityTransform)
	if !s.Selection() {
		t.Error("selection should default to enabled")
	}
	if s.DefaultCursor() != CursorDefault {
		t.Errorf("cursor = %q, want default", s.DefaultCursor())
	}
	if len(s.Objects()) != 0 {
		t.Error("new scene should be empty")
	}
}

func TestSceneAddRemove(t *testing.T) {
	s := NewScene(100, 100)
	a := NewLine(0, 0, 10, 10)
	b := NewTriangle(20, 20)
	c := NewLine(5, 5, 6, 6)
	s.Add(a, b, c)
	if got := len(s.Objects()); got != 3 {
		t.Fatalf("Objects = %d, want 3", got)
	}

	s.SetActiveObject(b)
	s.Remove(b, NewLine(0, 0, 1, 1))
	if s.Contains(b) {
		t.Error("b still in scene")
	}
	if s.ActiveObject() != nil {
		t.Error("removing the active object should clear it")
	}
	objs := s.Objects()
	if len(objs) != 2 || objs[0] != a || objs[1] != c {
		t.Errorf("paint order broken: %v", objs)
	}
}

func TestSceneRenderRequests(t *testing.T) {
	s := NewScene(100, 100)
	before := s.RenderRequests()
	s.Add(NewLine(0, 0, 1, 1))
	s.SetViewportTransform(identityTransform)
	s.RequestRender()
	if got := s.RenderRequests() - before; got != 3 {
		t.Errorf("render requests = %d, want 3", got)
	}
}

func TestSceneStateSetters(t *testing.T) {
	s := NewScene(100, 100)
	s.SetSelection(false)
	s.SetDefaultCursor(CursorCrosshair)
	s.SetSize(200, 50)
	if s.Selection() {
		t.Error("selection should be disabled")
	}
	if s.DefaultCursor() != CursorCrosshair {
		t.Errorf("cursor = %q", s.DefaultCursor())
	}
	if w, h := s.Size(); w != 200 || h != 50 {
		t.Errorf("Size = %vx%v", w, h)
	}
}
