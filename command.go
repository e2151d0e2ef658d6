package imagedit

import (
	"fmt"
	"math"
	"sort"
)

// Command is a reversible operation on a session component. Execute
// captures the component state Undo needs before mutating it.
type Command interface {
	Name() string
	Execute(s *Session, op string, args ...any) error
	Undo(s *Session) error
}

// Zoom command operations.
const (
	OpSetZoomValue = "setZoomValue"
	OpZoom         = "zoom"
)

// Resize command operation.
const OpResize = "resize"

var commandFactories = map[string]func() Command{}

// RegisterCommand makes a command available to NewCommand under name.
// Registering a name twice panics.
func RegisterCommand(name string, factory func() Command) {
	if factory == nil {
		panic("imagedit: RegisterCommand factory is nil")
	}
	if _, dup := commandFactories[name]; dup {
		panic("imagedit: RegisterCommand called twice for " + name)
	}
	commandFactories[name] = factory
}

// NewCommand returns a fresh command registered under name.
func NewCommand(name string) (Command, error) {
	f, ok := commandFactories[name]
	if !ok {
		return nil, fmt.Errorf("imagedit: command %q: %w", name, ErrUnknownCommand)
	}
	return f(), nil
}

// CommandNames returns the registered command names, sorted.
func CommandNames() []string {
	names := make([]string, 0, len(commandFactories))
	for n := range commandFactories {
		names = append(names, n)
	}
	sort.Strings(names)
	return names
}

func init() {
	RegisterCommand(CommandZoomImage, func() Command { return &ZoomCommand{} })
	RegisterCommand(CommandResizeImage, func() Command { return &ResizeCommand{} })
}

// zoomTarget is the part of the ZOOM component the zoom command drives.
type zoomTarget interface {
	Component
	CurrentValue() float64
	SetZoom(scale float64, reset bool, transform *[6]float64) error
	SetZoomValue(scale float64) error
}

// ZoomCommand changes the viewport zoom. Its undo data is the scale before
// Execute.
type ZoomCommand struct {
	undoZoom float64
	captured bool
}

// Name returns CommandZoomImage.
func (c *ZoomCommand) Name() string { return CommandZoomImage }

// Execute runs op with args (scale, [reset], [transform]).
func (c *ZoomCommand) Execute(s *Session, op string, args ...any) error {
	if op != OpSetZoomValue && op != OpZoom {
		return fmt.Errorf("imagedit: %s: operation %q: %w", CommandZoomImage, op, ErrUnknownOperation)
	}
	target, err := componentAs[zoomTarget](s, ComponentZoom)
	if err != nil {
		return err
	}
	scale, reset, transform, err := zoomArgs(args)
	if err != nil {
		return fmt.Errorf("imagedit: %s: %w", CommandZoomImage, err)
	}

	c.undoZoom = target.CurrentValue()
	c.captured = true
	s.debugf("command %s %s scale=%g reset=%t", CommandZoomImage, op, scale, reset)
	return target.SetZoom(scale, reset, transform)
}

// Undo restores the scale captured by Execute.
func (c *ZoomCommand) Undo(s *Session) error {
	if !c.captured {
		return fmt.Errorf("imagedit: %s: %w", CommandZoomImage, ErrUndoWithoutExecute)
	}
	target, err := componentAs[zoomTarget](s, ComponentZoom)
	if err != nil {
		return err
	}
	if err := target.SetZoomValue(c.undoZoom); err != nil {
		return err
	}
	c.captured = false
	s.debugf("undo %s -> %g", CommandZoomImage, c.undoZoom)
	return nil
}

func zoomArgs(args []any) (scale float64, reset bool, transform *[6]float64, err error) {
	if len(args) > 3 {
		return 0, false, nil, fmt.Errorf("%d arguments: %w", len(args), ErrInvalidArgument)
	}
	if len(args) > 0 && args[0] != nil {
		if scale, err = toFloat(args[0]); err != nil {
			return 0, false, nil, fmt.Errorf("scale: %w", err)
		}
	}
	if len(args) > 1 && args[1] != nil {
		b, ok := args[1].(bool)
		if !ok {
			return 0, false, nil, fmt.Errorf("reset %T: %w", args[1], ErrInvalidArgument)
		}
		reset = b
	}
	if len(args) > 2 && args[2] != nil {
		if transform, err = toTransform(args[2]); err != nil {
			return 0, false, nil, fmt.Errorf("transform: %w", err)
		}
	}
	if (len(args) == 0 || args[0] == nil) && !reset {
		return 0, false, nil, fmt.Errorf("missing scale: %w", ErrInvalidArgument)
	}
	return scale, reset, transform, nil
}

func toFloat(v any) (float64, error) {
	switch n := v.(type) {
	case float64:
		if math.IsNaN(n) || math.IsInf(n, 0) {
			return 0, fmt.Errorf("%v: %w", n, ErrInvalidArgument)
		}
		return n, nil
	case float32:
		return toFloat(float64(n))
	case int:
		return float64(n), nil
	case int64:
		return float64(n), nil
	default:
		return 0, fmt.Errorf("%T: %w", v, ErrInvalidArgument)
	}
}

func toTransform(v any) (*[6]float64, error) {
	switch t := v.(type) {
	case [6]float64:
		return &t, nil
	case *[6]float64:
		return t, nil
	case []float64:
		if len(t) != 6 {
			return nil, fmt.Errorf("%d elements: %w", len(t), ErrInvalidArgument)
		}
		var m [6]float64
		copy(m[:], t)
		return &m, nil
	case []any:
		if len(t) != 6 {
			return nil, fmt.Errorf("%d elements: %w", len(t), ErrInvalidArgument)
		}
		var m [6]float64
		for i, e := range t {
			f, err := toFloat(e)
			if err != nil {
				return nil, err
			}
			m[i] = f
		}
		return &m, nil
	default:
		return nil, fmt.Errorf("%T: %w", v, ErrInvalidArgument)
	}
}

// resizeTarget is the part of the RESIZE component the resize command
// drives.
type resizeTarget interface {
	Component
	CurrentDimensions() Dimensions
	Resize(d Dimensions) error
}

// ResizeCommand resizes the canvas output. Its undo data is the dimensions
// before Execute.
type ResizeCommand struct {
	undoDimensions Dimensions
	captured       bool
}

// Name returns CommandResizeImage.
func (c *ResizeCommand) Name() string { return CommandResizeImage }

// Execute runs op with args (dimensions).
func (c *ResizeCommand) Execute(s *Session, op string, args ...any) error {
	if op != OpResize {
		return fmt.Errorf("imagedit: %s: operation %q: %w", CommandResizeImage, op, ErrUnknownOperation)
	}
	target, err := componentAs[resizeTarget](s, ComponentResize)
	if err != nil {
		return err
	}
	if len(args) != 1 {
		return fmt.Errorf("imagedit: %s: %d arguments: %w", CommandResizeImage, len(args), ErrInvalidArgument)
	}
	d, err := toDimensions(args[0])
	if err != nil {
		return fmt.Errorf("imagedit: %s: dimensions: %w", CommandResizeImage, err)
	}

	c.undoDimensions = target.CurrentDimensions()
	c.captured = true
	s.debugf("command %s %gx%g", CommandResizeImage, d.Width, d.Height)
	return target.Resize(d)
}

// Undo resizes back to the dimensions captured by Execute.
func (c *ResizeCommand) Undo(s *Session) error {
	if !c.captured {
		return fmt.Errorf("imagedit: %s: %w", CommandResizeImage, ErrUndoWithoutExecute)
	}
	target, err := componentAs[resizeTarget](s, ComponentResize)
	if err != nil {
		return err
	}
	if err := target.Resize(c.undoDimensions); err != nil {
		return err
	}
	c.captured = false
	s.debugf("undo %s -> %gx%g", CommandResizeImage, c.undoDimensions.Width, c.undoDimensions.Height)
	return nil
}

func toDimensions(v any) (Dimensions, error) {
	switch d := v.(type) {
	case Dimensions:
		return d, nil
	case *Dimensions:
		if d == nil {
			return Dimensions{}, fmt.Errorf("nil: %w", ErrInvalidArgument)
		}
		return *d, nil
	case map[string]any:
		w, err := toFloat(d["width"])
		if err != nil {
			return Dimensions{}, fmt.Errorf("width: %w", err)
		}
		h, err := toFloat(d["height"])
		if err != nil {
			return Dimensions{}, fmt.Errorf("height: %w", err)
		}
		return Dimensions{Width: w, Height: h}, nil
	default:
		return Dimensions{}, fmt.Errorf("%T: %w", v, ErrInvalidArgument)
	}
}
