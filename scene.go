package imagedit

// Canvas is the scene collaborator the controllers drive. Scene is the
// in-repo implementation; other backends may provide their own.
type Canvas interface {
	// Size returns the canvas size in screen pixels.
	Size() (width, height float64)

	ViewportTransform() [6]float64
	SetViewportTransform(vpt [6]float64)

	Add(objs ...*Object)
	Remove(objs ...*Object)
	// Objects returns the live objects in paint order. The returned slice
	// MUST NOT be mutated.
	Objects() []*Object
	SetActiveObject(o *Object)
	ActiveObject() *Object

	SetSelection(enabled bool)
	Selection() bool
	SetDefaultCursor(c Cursor)
	DefaultCursor() Cursor

	OnPointerDown(fn func(PointerEvent)) CallbackHandle
	OnPointerMove(fn func(PointerEvent)) CallbackHandle
	OnPointerUp(fn func(PointerEvent)) CallbackHandle

	// Snapshot encodes the current canvas content as PNG.
	Snapshot() ([]byte, error)
	RequestRender()
}

// pointerPoller reads the current device pointer in screen coordinates.
type pointerPoller func() (sx, sy float64, pressed bool, button MouseButton, mods KeyModifiers)

// Scene is the top-level object that owns the canvas objects, viewport
// transform, selection state and input state.
type Scene struct {
	// Background fills the canvas before objects are painted.
	Background Color

	width, height float64
	vpt           [6]float64

	objects   []*Object
	active    *Object
	selection bool
	cursor    Cursor

	// Render state
	renderRequests int

	// Input state
	handlers    handlerRegistry
	pointers    [maxPointers]pointerState
	injectQueue []syntheticPointerEvent
	injectMods  KeyModifiers
	poller      pointerPoller
}

var _ Canvas = (*Scene)(nil)

// NewScene creates an empty scene of the given size with an identity
// viewport transform, selection enabled and the default cursor.
func NewScene(width, height float64) *Scene {
	return &Scene{
		Background: Color{1, 1, 1, 1},
		width:      width,
		height:     height,
		vpt:        identityTransform,
		selection:  true,
		cursor:     CursorDefault,
	}
}

// Size returns the canvas size in screen pixels.
func (s *Scene) Size() (float64, float64) {
	return s.width, s.height
}

// SetSize changes the canvas size.
func (s *Scene) SetSize(width, height float64) {
	s.width, s.height = width, height
	s.RequestRender()
}

// ViewportTransform returns the current viewport matrix.
func (s *Scene) ViewportTransform() [6]float64 {
	return s.vpt
}

// SetViewportTransform replaces the viewport matrix.
func (s *Scene) SetViewportTransform(vpt [6]float64) {
	s.vpt = vpt
	s.RequestRender()
}

// Add appends objects to the top of the paint order.
func (s *Scene) Add(objs ...*Object) {
	s.objects = append(s.objects, objs...)
	s.RequestRender()
}

// Remove deletes objects from the scene. Unknown objects are ignored.
func (s *Scene) Remove(objs ...*Object) {
	for _, o := range objs {
		for i, c := range s.objects {
			if c == o {
				s.objects = append(s.objects[:i], s.objects[i+1:]...)
				break
			}
		}
		if s.active == o {
			s.active = nil
		}
	}
	s.RequestRender()
}

// Objects returns the live objects in paint order. The returned slice MUST
// NOT be mutated.
func (s *Scene) Objects() []*Object {
	return s.objects
}

// Contains reports whether o is part of the scene.
func (s *Scene) Contains(o *Object) bool {
	for _, c := range s.objects {
		if c == o {
			return true
		}
	}
	return false
}

// SetActiveObject marks o as the selected object; nil clears it.
func (s *Scene) SetActiveObject(o *Object) {
	s.active = o
}

// ActiveObject returns the selected object, if any.
func (s *Scene) ActiveObject() *Object {
	return s.active
}

// SetSelection enables or disables interactive selection.
func (s *Scene) SetSelection(enabled bool) {
	s.selection = enabled
}

// Selection reports whether interactive selection is enabled.
func (s *Scene) Selection() bool {
	return s.selection
}

// SetDefaultCursor sets the cursor shown over the canvas.
func (s *Scene) SetDefaultCursor(c Cursor) {
	s.cursor = c
}

// DefaultCursor returns the cursor shown over the canvas.
func (s *Scene) DefaultCursor() Cursor {
	return s.cursor
}

// RequestRender marks the scene as needing a redraw.
func (s *Scene) RequestRender() {
	s.renderRequests++
}

// RenderRequests returns how many redraws have been requested since the
// scene was created.
func (s *Scene) RenderRequests() int {
	return s.renderRequests
}

// Update processes one frame of input: an injected event if one is queued,
// otherwise the polled device pointer.
func (s *Scene) Update() {
	s.processInput()
}
