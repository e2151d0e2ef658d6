package imagedit

// maxPointers bounds the pointer slots; pointer 0 is the mouse.
const maxPointers = 10

// PointerEvent carries pointer event data. X/Y are scene coordinates
// (screen position mapped through the inverse viewport transform).
type PointerEvent struct {
	X, Y             float64
	ScreenX, ScreenY float64
	Button           MouseButton
	PointerID        int
	Modifiers        KeyModifiers
}

// Shift reports whether the shift modifier was held.
func (e PointerEvent) Shift() bool {
	return e.Modifiers&ModShift != 0
}

// --- Per-pointer state ---

type pointerState struct {
	down   bool
	lastX  float64 // screen space
	lastY  float64
	button MouseButton // button captured at press time
}

// --- Handler registry ---

type pointerHandler struct {
	id uint32
	fn func(PointerEvent)
}

type handlerRegistry struct {
	pointerDown []pointerHandler
	pointerMove []pointerHandler
	pointerUp   []pointerHandler
	nextID      uint32
}

func (r *handlerRegistry) list(event EventType) *[]pointerHandler {
	switch event {
	case EventPointerDown:
		return &r.pointerDown
	case EventPointerMove:
		return &r.pointerMove
	default:
		return &r.pointerUp
	}
}

func (r *handlerRegistry) add(event EventType, fn func(PointerEvent)) CallbackHandle {
	r.nextID++
	id := r.nextID
	l := r.list(event)
	*l = append(*l, pointerHandler{id: id, fn: fn})
	return CallbackHandle{id: id, reg: r, event: event}
}

// CallbackHandle allows removing a registered pointer listener. The zero
// value is an inactive handle.
type CallbackHandle struct {
	id    uint32
	reg   *handlerRegistry
	event EventType
}

// Remove unregisters this callback so it no longer fires.
// The entry is removed from the slice to avoid nil iteration waste.
func (h CallbackHandle) Remove() {
	if h.reg == nil {
		return
	}
	l := h.reg.list(h.event)
	*l = removePointerHandler(*l, h.id)
}

// Active reports whether the handle refers to a registration.
func (h CallbackHandle) Active() bool {
	return h.reg != nil
}

func removePointerHandler(s []pointerHandler, id uint32) []pointerHandler {
	for i := range s {
		if s[i].id == id {
			copy(s[i:], s[i+1:])
			s[len(s)-1] = pointerHandler{}
			return s[:len(s)-1]
		}
	}
	return s
}

// --- Scene-level listener registration ---

// OnPointerDown registers a scene-level callback for pointer down events.
func (s *Scene) OnPointerDown(fn func(PointerEvent)) CallbackHandle {
	return s.handlers.add(EventPointerDown, fn)
}

// OnPointerMove registers a scene-level callback for pointer move events.
func (s *Scene) OnPointerMove(fn func(PointerEvent)) CallbackHandle {
	return s.handlers.add(EventPointerMove, fn)
}

// OnPointerUp registers a scene-level callback for pointer up events.
func (s *Scene) OnPointerUp(fn func(PointerEvent)) CallbackHandle {
	return s.handlers.add(EventPointerUp, fn)
}

// ListenerCount returns the number of registered listeners for event.
func (s *Scene) ListenerCount(event EventType) int {
	return len(*s.handlers.list(event))
}

// --- Input processing ---

// processInput is called from Scene.Update. An injected event takes
// precedence over the polled device for the frame.
func (s *Scene) processInput() {
	if s.processInjectedInput() {
		return
	}
	if s.poller == nil {
		return
	}
	sx, sy, pressed, button, mods := s.poller()
	s.processPointer(0, sx, sy, pressed, button, mods)
}

// screenToScene converts screen coordinates to scene coordinates using the
// current viewport transform.
func (s *Scene) screenToScene(sx, sy float64) (float64, float64) {
	return transformPoint(invertAffine(s.vpt), sx, sy)
}

// processPointer runs the pointer state machine for a single pointer.
func (s *Scene) processPointer(pointerID int, sx, sy float64, pressed bool, button MouseButton, mods KeyModifiers) {
	if pointerID < 0 || pointerID >= maxPointers {
		return
	}
	ps := &s.pointers[pointerID]

	switch {
	case pressed && !ps.down:
		// Just pressed: capture button for the duration of this interaction.
		ps.down = true
		ps.button = button
		ps.lastX = sx
		ps.lastY = sy
		s.fire(EventPointerDown, pointerID, sx, sy, ps.button, mods)
	case !pressed && ps.down:
		// Just released: use button from press start.
		ps.down = false
		ps.lastX = sx
		ps.lastY = sy
		s.fire(EventPointerUp, pointerID, sx, sy, ps.button, mods)
	default:
		// Held or hovering; fire only when the position changed.
		if sx != ps.lastX || sy != ps.lastY {
			b := button
			if ps.down {
				b = ps.button
			}
			ps.lastX = sx
			ps.lastY = sy
			s.fire(EventPointerMove, pointerID, sx, sy, b, mods)
		}
	}
}

// fire dispatches to a copy of the listener list so that listeners may
// register or remove listeners while running.
func (s *Scene) fire(event EventType, pointerID int, sx, sy float64, button MouseButton, mods KeyModifiers) {
	x, y := s.screenToScene(sx, sy)
	e := PointerEvent{
		X: x, Y: y, ScreenX: sx, ScreenY: sy,
		Button: button, PointerID: pointerID, Modifiers: mods,
	}
	list := *s.handlers.list(event)
	if len(list) == 0 {
		return
	}
	snapshot := make([]pointerHandler, len(list))
	copy(snapshot, list)
	for _, h := range snapshot {
		if h.fn != nil {
			h.fn(e)
		}
	}
}
