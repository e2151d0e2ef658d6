package imagedit

// Component is a controller registered with a Session under a stable name.
type Component interface {
	Name() string
}

// SessionConfig configures a Session. Zero values fall back to defaults.
type SessionConfig struct {
	// Width and Height size the default Scene. Ignored when Canvas is set.
	Width, Height float64

	// Canvas overrides the default Scene.
	Canvas Canvas
	// Events overrides the default Bus.
	Events EventBus
	// PropertyFunc derives persisted records for committed objects.
	// Defaults to CreateObjectProperties.
	PropertyFunc PropertyFunc

	// HistoryLimit bounds the undo stack. Defaults to 40.
	HistoryLimit int

	// Debug prints gesture and command traces to stderr.
	Debug bool
}

const (
	defaultCanvasWidth  = 800
	defaultCanvasHeight = 600
	defaultHistoryLimit = 40
)

// Session is the editing session shared by all controllers: the canvas, the
// event bus and the registered components. Controllers hold a reference to
// it instead of reaching for global state.
type Session struct {
	canvas     Canvas
	events     EventBus
	properties PropertyFunc
	components map[string]Component
	debug      bool

	viewport *ViewportController
	resizer  *ResizeController
	arrow    *ArrowController
	modes    *ModeSwitcher
	history  *History
	script   *GestureScript

	updateFunc func() error
}

// NewSession creates a session with the zoom, resize and arrow components
// registered, the arrow and pan drawing modes available and an empty
// command history.
func NewSession(cfg SessionConfig) *Session {
	if cfg.Width <= 0 {
		cfg.Width = defaultCanvasWidth
	}
	if cfg.Height <= 0 {
		cfg.Height = defaultCanvasHeight
	}
	if cfg.Canvas == nil {
		cfg.Canvas = NewScene(cfg.Width, cfg.Height)
	}
	if cfg.Events == nil {
		cfg.Events = NewBus()
	}
	if cfg.PropertyFunc == nil {
		cfg.PropertyFunc = CreateObjectProperties
	}
	if cfg.HistoryLimit <= 0 {
		cfg.HistoryLimit = defaultHistoryLimit
	}

	s := &Session{
		canvas:     cfg.Canvas,
		events:     cfg.Events,
		properties: cfg.PropertyFunc,
		components: make(map[string]Component),
		debug:      cfg.Debug,
	}
	s.viewport = NewViewportController(s)
	s.resizer = NewResizeController(s)
	s.arrow = NewArrowController(s)
	s.RegisterComponent(s.viewport)
	s.RegisterComponent(s.resizer)
	s.RegisterComponent(s.arrow)

	s.modes = NewModeSwitcher(s)
	s.modes.Register(ArrowDrawingMode{})
	s.modes.Register(PanMode{})

	s.history = NewHistory(s, cfg.HistoryLimit)
	return s
}

// Canvas returns the session canvas.
func (s *Session) Canvas() Canvas { return s.canvas }

// Events returns the session event bus.
func (s *Session) Events() EventBus { return s.events }

// Fire publishes a domain event on the session bus.
func (s *Session) Fire(e Event) {
	s.debugf("event %s", e.Topic)
	s.events.Publish(e)
}

// RegisterComponent adds or replaces the component stored under c.Name().
func (s *Session) RegisterComponent(c Component) {
	s.components[c.Name()] = c
}

// Component returns the component registered under name, or nil.
func (s *Session) Component(name string) Component {
	return s.components[name]
}

// CreateObjectProperties derives the persisted record for o.
func (s *Session) CreateObjectProperties(o *Object) ObjectProperties {
	return s.properties(o)
}

// Viewport returns the zoom/pan controller.
func (s *Session) Viewport() *ViewportController { return s.viewport }

// Resizer returns the resize controller.
func (s *Session) Resizer() *ResizeController { return s.resizer }

// Arrow returns the arrow authoring controller.
func (s *Session) Arrow() *ArrowController { return s.arrow }

// Modes returns the drawing mode switcher.
func (s *Session) Modes() *ModeSwitcher { return s.modes }

// History returns the undo/redo history.
func (s *Session) History() *History { return s.history }

// SetGestureScript attaches a script that is stepped once per Update.
func (s *Session) SetGestureScript(script *GestureScript) {
	s.script = script
}

// SetUpdateFunc registers fn to run at the start of every Update. A non-nil
// error from fn is returned by Update, which stops Run.
func (s *Session) SetUpdateFunc(fn func() error) {
	s.updateFunc = fn
}

// Update advances one frame: the update func, the attached script, scene
// input and the zoom animation. dt is the frame time in seconds.
func (s *Session) Update(dt float32) error {
	if s.updateFunc != nil {
		if err := s.updateFunc(); err != nil {
			return err
		}
	}
	if s.script != nil {
		s.script.step(s)
	}
	if scene, ok := s.canvas.(*Scene); ok {
		scene.Update()
	}
	return s.viewport.Update(dt)
}
