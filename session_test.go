package imagedit

import (
	"errors"
	"testing"
)

// newTestSession returns an 800x600 session and its scene.
func newTestSession(t *testing.T) (*Session, *Scene) {
	t.Helper()
	s := NewSession(SessionConfig{Width: 800, Height: 600})
	scene, ok := s.Canvas().(*Scene)
	if !ok {
		t.Fatalf("default canvas is %T, want *Scene", s.Canvas())
	}
	return s, scene
}

func TestNewSessionDefaults(t *testing.T) {
	s := NewSession(SessionConfig{})
	w, h := s.Canvas().Size()
	if w != defaultCanvasWidth || h != defaultCanvasHeight {
		t.Errorf("canvas = %vx%v, want %vx%v", w, h, defaultCanvasWidth, defaultCanvasHeight)
	}
	if s.History().limit != defaultHistoryLimit {
		t.Errorf("history limit = %d", s.History().limit)
	}
	if _, ok := s.Events().(*Bus); !ok {
		t.Errorf("events = %T, want *Bus", s.Events())
	}
}

func TestSessionComponents(t *testing.T) {
	s, _ := newTestSession(t)
	tests := []struct {
		name string
		want Component
	}{
		{ComponentZoom, s.Viewport()},
		{ComponentResize, s.Resizer()},
		{ComponentArrow, s.Arrow()},
	}
	for _, tt := range tests {
		if got := s.Component(tt.name); got != tt.want {
			t.Errorf("Component(%q) = %v, want %v", tt.name, got, tt.want)
		}
		if got := s.Component(tt.name).Name(); got != tt.name {
			t.Errorf("Name() = %q, want %q", got, tt.name)
		}
	}
	if s.Component("FILTER") != nil {
		t.Error("unknown component should be nil")
	}
}

type recordingBus struct {
	*Bus
	published []Topic
}

func (b *recordingBus) Publish(e Event) {
	b.published = append(b.published, e.Topic)
	b.Bus.Publish(e)
}

func TestSessionCustomCollaborators(t *testing.T) {
	scene := NewScene(320, 200)
	bus := &recordingBus{Bus: NewBus()}
	called := 0
	s := NewSession(SessionConfig{
		Canvas: scene,
		Events: bus,
		PropertyFunc: func(o *Object) ObjectProperties {
			called++
			return ObjectProperties{ID: "custom"}
		},
	})
	if s.Canvas() != scene {
		t.Error("custom canvas not used")
	}
	if got := s.Resizer().CurrentDimensions(); got != (Dimensions{320, 200}) {
		t.Errorf("initial dimensions = %+v", got)
	}

	if err := s.Arrow().Start(BrushSettings{}); err != nil {
		t.Fatal(err)
	}
	scene.InjectDrag(10, 10, 30, 30, 3)
	scene.DrainInput()
	if called != 1 {
		t.Errorf("PropertyFunc called %d times, want 1", called)
	}
	if len(bus.published) != 1 || bus.published[0] != TopicObjectAdded {
		t.Errorf("published = %v", bus.published)
	}
}

func TestSessionUpdateDrivesInput(t *testing.T) {
	s, scene := newTestSession(t)
	downs := 0
	scene.OnPointerDown(func(PointerEvent) { downs++ })
	scene.InjectPress(1, 1)
	if err := s.Update(1.0 / 60); err != nil {
		t.Fatal(err)
	}
	if downs != 1 {
		t.Errorf("downs = %d, want 1", downs)
	}
}

func TestSessionDebugMode(t *testing.T) {
	s, _ := newTestSession(t)
	s.SetDebugMode(true)
	if !s.debug {
		t.Error("debug should be enabled")
	}
	s.debugf("trace %d", 1)
	s.SetDebugMode(false)
	if s.debug {
		t.Error("debug should be disabled")
	}
}

func TestSessionUpdateFunc(t *testing.T) {
	s, _ := newTestSession(t)
	calls := 0
	s.SetUpdateFunc(func() error {
		calls++
		return nil
	})
	_ = s.Update(1.0 / 60)
	_ = s.Update(1.0 / 60)
	if calls != 2 {
		t.Errorf("update func calls = %d, want 2", calls)
	}

	stop := errors.New("stop")
	s.SetUpdateFunc(func() error { return stop })
	if err := s.Update(1.0 / 60); !errors.Is(err, stop) {
		t.Errorf("Update err = %v, want %v", err, stop)
	}
}
