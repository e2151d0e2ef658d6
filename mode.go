package imagedit

import "fmt"

// DrawingMode is an interaction mode a ModeSwitcher can activate. Start
// receives the brush settings the mode was switched on with.
type DrawingMode interface {
	Name() string
	Start(s *Session, settings BrushSettings) error
	End(s *Session)
}

// ArrowDrawingMode drives the ARROW component.
type ArrowDrawingMode struct{}

// Name returns DrawingModeArrow.
func (ArrowDrawingMode) Name() string { return DrawingModeArrow }

// Start starts arrow authoring with settings.
func (ArrowDrawingMode) Start(s *Session, settings BrushSettings) error {
	a, err := componentAs[*ArrowController](s, ComponentArrow)
	if err != nil {
		return err
	}
	return a.Start(settings)
}

// End stops arrow authoring.
func (ArrowDrawingMode) End(s *Session) {
	if a, err := componentAs[*ArrowController](s, ComponentArrow); err == nil {
		a.End()
	}
}

// PanMode arms shift-drag panning on the ZOOM component without changing
// the zoom. Brush settings are ignored.
type PanMode struct{}

// Name returns DrawingModePan.
func (PanMode) Name() string { return DrawingModePan }

// Start arms the pan listener and shows the move cursor.
func (PanMode) Start(s *Session, _ BrushSettings) error {
	v, err := componentAs[*ViewportController](s, ComponentZoom)
	if err != nil {
		return err
	}
	s.Canvas().SetDefaultCursor(CursorMove)
	v.Arm()
	return nil
}

// End restores the default cursor and disarms panning unless a zoom had
// already armed it.
func (PanMode) End(s *Session) {
	if v, err := componentAs[*ViewportController](s, ComponentZoom); err == nil {
		v.releaseMode()
	}
	s.Canvas().SetDefaultCursor(CursorDefault)
}

// componentAs looks up a component and asserts its concrete type.
func componentAs[T Component](s *Session, name string) (T, error) {
	var zero T
	c := s.Component(name)
	if c == nil {
		return zero, fmt.Errorf("imagedit: component %q: %w", name, ErrUnknownComponent)
	}
	t, ok := c.(T)
	if !ok {
		return zero, fmt.Errorf("imagedit: component %q has type %T: %w", name, c, ErrUnknownComponent)
	}
	return t, nil
}

// ModeSwitcher keeps at most one DrawingMode active.
type ModeSwitcher struct {
	session *Session
	modes   map[string]DrawingMode
	current DrawingMode
}

// NewModeSwitcher creates a switcher with no modes registered.
func NewModeSwitcher(s *Session) *ModeSwitcher {
	return &ModeSwitcher{session: s, modes: make(map[string]DrawingMode)}
}

// Register adds or replaces the mode stored under m.Name().
func (m *ModeSwitcher) Register(mode DrawingMode) {
	m.modes[mode.Name()] = mode
}

// Switch ends the active mode, if any, and starts the named one. When the
// new mode fails to start, no mode is active afterwards.
func (m *ModeSwitcher) Switch(name string, settings BrushSettings) error {
	mode, ok := m.modes[name]
	if !ok {
		return fmt.Errorf("imagedit: mode %q: %w", name, ErrUnknownMode)
	}
	m.Stop()
	if err := mode.Start(m.session, settings); err != nil {
		return fmt.Errorf("imagedit: start mode %s: %w", name, err)
	}
	m.current = mode
	m.session.debugf("mode %s", name)
	return nil
}

// Stop ends the active mode.
func (m *ModeSwitcher) Stop() {
	if m.current == nil {
		return
	}
	m.current.End(m.session)
	m.session.debugf("mode %s ended", m.current.Name())
	m.current = nil
}

// Current returns the active mode's name, or "" when none is active.
func (m *ModeSwitcher) Current() string {
	if m.current == nil {
		return ""
	}
	return m.current.Name()
}
