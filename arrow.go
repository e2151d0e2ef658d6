package imagedit

import (
	"fmt"
	"math"

	"github.com/google/uuid"
)

// Arrow defaults.
const (
	defaultArrowWidth = 12
	defaultArrowColor = "rgba(0, 0, 0, 0.5)"

	arrowheadSize  = 20
	arrowheadAngle = -45

	arrowheadName      = "arrow_triangle"
	arrowheadPointType = "arrow_start"
	arrowGroupName     = "my_ArrowGroup"
	arrowUserLevel     = 1
)

// BrushSettings configures the arrow stroke. Zero fields keep the current
// value.
type BrushSettings struct {
	Width float64 `json:"width,omitempty"`
	Color string  `json:"color,omitempty"`
}

// ArrowState is the arrow controller's gesture state.
type ArrowState uint8

const (
	ArrowInactive ArrowState = iota // not started
	ArrowArmed                      // waiting for pointer-down
	ArrowDrawing                    // a draft follows the pointer
)

// String returns the state name.
func (s ArrowState) String() string {
	switch s {
	case ArrowArmed:
		return "armed"
	case ArrowDrawing:
		return "drawing"
	default:
		return "inactive"
	}
}

// ArrowDraft is the arrow under construction between pointer-down and
// pointer-up.
type ArrowDraft struct {
	ID          string
	Start, End  Vec2
	StrokeWidth float64
	Color       Color
	Angle       float64
	// DeltaX and DeltaY offset the arrowhead from the pointer. They are
	// captured at pointer-down as the line's left/top minus its center.
	DeltaX, DeltaY float64
}

// ArrowController turns pointer gestures into grouped line + arrowhead
// shapes.
type ArrowController struct {
	session *Session

	width float64
	color Color
	state ArrowState

	draft     *ArrowDraft
	line      *Object
	arrowhead *Object

	downHandle CallbackHandle
	moveHandle CallbackHandle
	upHandle   CallbackHandle
}

// NewArrowController creates the ARROW component for s.
func NewArrowController(s *Session) *ArrowController {
	c, err := ParseColor(defaultArrowColor)
	if err != nil {
		panic("imagedit: bad default arrow color: " + err.Error())
	}
	return &ArrowController{
		session: s,
		width:   defaultArrowWidth,
		color:   c,
	}
}

// Name returns ComponentArrow.
func (a *ArrowController) Name() string { return ComponentArrow }

// State returns the current gesture state.
func (a *ArrowController) State() ArrowState { return a.state }

// Drawing reports whether a gesture is in flight.
func (a *ArrowController) Drawing() bool { return a.state == ArrowDrawing }

// Draft returns a copy of the in-flight draft, or nil when idle.
func (a *ArrowController) Draft() *ArrowDraft {
	if a.draft == nil {
		return nil
	}
	d := *a.draft
	return &d
}

// Brush returns the current stroke width and color.
func (a *ArrowController) Brush() (float64, Color) {
	return a.width, a.color
}

// SetBrush updates the stroke width and color. An unparseable color is
// returned as an error and leaves both settings unchanged.
func (a *ArrowController) SetBrush(settings BrushSettings) error {
	color := a.color
	if settings.Color != "" {
		c, err := ParseColor(settings.Color)
		if err != nil {
			return fmt.Errorf("imagedit: arrow brush: %w", err)
		}
		color = c
	}
	if settings.Width > 0 {
		a.width = settings.Width
	}
	a.color = color
	return nil
}

// Start enters arrow drawing: crosshair cursor, selection and object events
// off, pointer-down armed. Starting while already started discards any
// in-flight draft first.
func (a *ArrowController) Start(settings BrushSettings) error {
	if err := a.SetBrush(settings); err != nil {
		return err
	}
	if a.state != ArrowInactive {
		a.discard()
		a.downHandle.Remove()
		a.downHandle = CallbackHandle{}
	}

	c := a.session.Canvas()
	c.SetDefaultCursor(CursorCrosshair)
	c.SetSelection(false)
	setEvented(c, false)
	a.downHandle = c.OnPointerDown(a.onPointerDown)
	a.state = ArrowArmed
	a.session.debugf("arrow start width=%g color=%s", a.width, a.color)
	return nil
}

// End leaves arrow drawing and restores the cursor, selection and object
// events. A draft in flight is discarded.
func (a *ArrowController) End() {
	a.discard()
	c := a.session.Canvas()
	c.SetDefaultCursor(CursorDefault)
	c.SetSelection(true)
	setEvented(c, true)
	a.downHandle.Remove()
	a.downHandle = CallbackHandle{}
	a.state = ArrowInactive
	a.session.debugf("arrow end")
}

func setEvented(c Canvas, evented bool) {
	for _, o := range c.Objects() {
		o.Evented = evented
	}
}

func (a *ArrowController) onPointerDown(e PointerEvent) {
	if a.state != ArrowArmed {
		return
	}
	c := a.session.Canvas()
	id := uuid.NewString()

	line := NewLine(e.X, e.Y, e.X, e.Y)
	line.ID = id
	line.Type = ObjectTypeArrow
	line.Stroke = a.color
	line.StrokeWidth = a.width
	line.Evented = false

	center := line.Center()
	draft := &ArrowDraft{
		ID:          id,
		Start:       Vec2{X: e.X, Y: e.Y},
		End:         Vec2{X: e.X, Y: e.Y},
		StrokeWidth: a.width,
		Color:       a.color,
		DeltaX:      line.Left - center.X,
		DeltaY:      line.Top - center.Y,
	}

	head := NewTriangle(arrowheadSize, arrowheadSize)
	head.ID = id
	head.Name = arrowheadName
	head.PointType = arrowheadPointType
	head.Origin = OriginCenter
	head.Left = line.X1 + draft.DeltaX
	head.Top = line.Y1 + draft.DeltaY
	head.Angle = arrowheadAngle
	head.Stroke = a.color
	head.StrokeWidth = a.width
	head.Fill = ColorRed
	head.Evented = false
	head.Selectable = false

	a.draft, a.line, a.arrowhead = draft, line, head
	c.Add(line, head)
	c.SetActiveObject(line)
	a.moveHandle = c.OnPointerMove(a.onPointerMove)
	a.upHandle = c.OnPointerUp(a.onPointerUp)
	a.state = ArrowDrawing
	a.session.debugf("arrow down %s (%.1f, %.1f)", id, e.X, e.Y)
}

func (a *ArrowController) onPointerMove(e PointerEvent) {
	if a.state != ArrowDrawing {
		return
	}
	a.line.SetLineEnd(e.X, e.Y)
	a.draft.End = Vec2{X: e.X, Y: e.Y}
	a.draft.Angle = ArrowAngle(a.line.X1, a.line.Y1, a.line.X2, a.line.Y2)
	a.arrowhead.Left = e.X + a.draft.DeltaX
	a.arrowhead.Top = e.Y + a.draft.DeltaY
	a.arrowhead.Angle = a.draft.Angle
	a.session.Canvas().RequestRender()
}

func (a *ArrowController) onPointerUp(e PointerEvent) {
	if a.state != ArrowDrawing {
		return
	}
	// A release can land without a preceding move to the same point.
	if e.X != a.draft.End.X || e.Y != a.draft.End.Y {
		a.onPointerMove(e)
	}
	c := a.session.Canvas()
	line, head, draft := a.line, a.arrowhead, a.draft

	group := NewGroup(line, head)
	group.ID = draft.ID
	group.Type = ObjectTypeArrow
	group.Name = arrowGroupName
	group.TypeOfGroup = ObjectTypeArrow
	group.UserLevel = arrowUserLevel
	group.LockScalingFlip = true

	c.Remove(line, head)
	props := a.session.CreateObjectProperties(group)

	a.draft, a.line, a.arrowhead = nil, nil, nil
	a.moveHandle.Remove()
	a.upHandle.Remove()
	a.moveHandle = CallbackHandle{}
	a.upHandle = CallbackHandle{}
	a.state = ArrowArmed

	a.session.debugf("arrow commit %s", draft.ID)
	a.session.Fire(Event{Topic: TopicObjectAdded, Properties: props, Object: group})
}

// discard removes an in-flight draft and its listeners.
func (a *ArrowController) discard() {
	if a.line != nil || a.arrowhead != nil {
		var objs []*Object
		if a.line != nil {
			objs = append(objs, a.line)
		}
		if a.arrowhead != nil {
			objs = append(objs, a.arrowhead)
		}
		a.session.Canvas().Remove(objs...)
		a.session.debugf("arrow discard %s", a.draft.ID)
	}
	a.draft, a.line, a.arrowhead = nil, nil, nil
	a.moveHandle.Remove()
	a.upHandle.Remove()
	a.moveHandle = CallbackHandle{}
	a.upHandle = CallbackHandle{}
	if a.state == ArrowDrawing {
		a.state = ArrowArmed
	}
}

// ArrowAngle returns the arrowhead rotation for a line from (x1, y1) to
// (x2, y2). The radian angle in [0, 2π) is scaled by 180/(π+90); existing
// documents depend on this exact value.
func ArrowAngle(x1, y1, x2, y2 float64) float64 {
	var angle float64
	x := x2 - x1
	y := y2 - y1
	switch {
	case x == 0:
		switch {
		case y == 0:
			angle = 0
		case y > 0:
			angle = math.Pi / 2
		default:
			angle = (math.Pi * 3) / 2
		}
	case y == 0:
		if x > 0 {
			angle = 0
		} else {
			angle = math.Pi
		}
	case x < 0:
		angle = math.Atan(y/x) + math.Pi
	case y < 0:
		angle = math.Atan(y/x) + 2*math.Pi
	default:
		angle = math.Atan(y / x)
	}
	return (angle * 180) / (math.Pi + 90)
}
