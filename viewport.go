package imagedit

import (
	"math"

	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
)

// minZoom is the smallest scale the viewport accepts; smaller values clamp.
const minZoom = 1.0

// clampScale maps scales below minZoom, and non-finite scales, to minZoom.
func clampScale(scale float64) float64 {
	if math.IsNaN(scale) || math.IsInf(scale, 0) || scale < minZoom {
		return minZoom
	}
	return scale
}

// ViewportState is the zoom/pan state owned by a ViewportController.
type ViewportState struct {
	// Scale is the applied zoom factor, always >= 1.
	Scale float64
	// PanX and PanY mirror the viewport translation; both stay <= 0 after
	// a pan move.
	PanX, PanY float64
	// IsPanning records that a pan moved the viewport since the last reset.
	IsPanning bool
	// Dragging is true between a shift pointer-down and pointer-up.
	Dragging bool
	// LastPointerX and LastPointerY are the screen position of the
	// previous pan event.
	LastPointerX, LastPointerY float64
	// PrevScale is the scale applied by the previous zoom.
	PrevScale float64
}

// zoomAnim holds an active AnimateZoom tween.
type zoomAnim struct {
	tween *gween.Tween
}

// ViewportController zooms the canvas around its visual center and pans it
// with shift-drag.
type ViewportController struct {
	session *Session
	state   ViewportState

	downHandle CallbackHandle
	moveHandle CallbackHandle
	upHandle   CallbackHandle
	// zoomArmed is set once a zoom has armed the pan listener.
	zoomArmed bool

	anim *zoomAnim
}

// NewViewportController creates the ZOOM component for s. The initial pan
// offsets are taken from the canvas's current viewport transform.
func NewViewportController(s *Session) *ViewportController {
	vpt := s.Canvas().ViewportTransform()
	return &ViewportController{
		session: s,
		state: ViewportState{
			Scale:     minZoom,
			PanX:      vpt[4],
			PanY:      vpt[5],
			PrevScale: minZoom,
		},
	}
}

// Name returns ComponentZoom.
func (v *ViewportController) Name() string { return ComponentZoom }

// CurrentValue returns the current zoom scale.
func (v *ViewportController) CurrentValue() float64 { return v.state.Scale }

// State returns a copy of the viewport state.
func (v *ViewportController) State() ViewportState { return v.state }

// ViewportTransform returns the canvas's current viewport matrix.
func (v *ViewportController) ViewportTransform() [6]float64 {
	return v.session.Canvas().ViewportTransform()
}

// SetZoom applies scale, or with reset restores transform (identity when
// nil) and returns to scale 1. Scales below 1, NaN and infinities clamp to
// 1. A reset keeps PrevScale, so zooming out after a later pan still snaps
// to identity. Either form cancels a running AnimateZoom. The returned error
// is nil once the new transform is in place.
func (v *ViewportController) SetZoom(scale float64, reset bool, transform *[6]float64) error {
	v.anim = nil
	if reset {
		v.reset(transform)
		return nil
	}
	v.state.Scale = scale
	v.zoomCanvas()
	return nil
}

// SetZoomValue is SetZoom without reset.
func (v *ViewportController) SetZoomValue(scale float64) error {
	return v.SetZoom(scale, false, nil)
}

// Reset restores the identity transform and scale 1.
func (v *ViewportController) Reset() error {
	return v.SetZoom(0, true, nil)
}

func (v *ViewportController) reset(transform *[6]float64) {
	c := v.session.Canvas()
	vpt := identityTransform
	if transform != nil {
		vpt = *transform
	}
	c.SetViewportTransform(vpt)
	v.state.IsPanning = false
	v.state.Scale = minZoom
	v.state.PanX, v.state.PanY = vpt[4], vpt[5]
	v.session.debugf("zoom reset")
}

func (v *ViewportController) zoomCanvas() {
	c := v.session.Canvas()
	v.state.Scale = clampScale(v.state.Scale)
	if v.state.Scale < v.state.PrevScale && v.state.IsPanning {
		c.SetViewportTransform(identityTransform)
		v.state.IsPanning = false
	}
	w, h := c.Size()
	vpt := zoomToPoint(c.ViewportTransform(), w/2, h/2, v.state.Scale)
	c.SetViewportTransform(vpt)
	v.state.PanX, v.state.PanY = vpt[4], vpt[5]
	v.state.PrevScale = v.state.Scale
	v.Arm()
	v.zoomArmed = true
	v.session.debugf("zoom %.3f", v.state.Scale)
}

// Arm registers the shift-drag pan listener. Calling Arm while armed is a
// no-op.
func (v *ViewportController) Arm() {
	if v.downHandle.Active() {
		return
	}
	v.downHandle = v.session.Canvas().OnPointerDown(v.onPointerDown)
}

// Disarm removes every pan listener and abandons a pan in progress.
func (v *ViewportController) Disarm() {
	v.downHandle.Remove()
	v.downHandle = CallbackHandle{}
	v.zoomArmed = false
	v.endDrag()
}

// releaseMode drops the pan listener armed by a drawing mode. A listener a
// zoom armed stays registered.
func (v *ViewportController) releaseMode() {
	if v.zoomArmed {
		return
	}
	v.Disarm()
}

// Armed reports whether the pan listener is registered.
func (v *ViewportController) Armed() bool {
	return v.downHandle.Active()
}

func (v *ViewportController) onPointerDown(e PointerEvent) {
	if !e.Shift() || v.state.Dragging {
		return
	}
	c := v.session.Canvas()
	v.state.Dragging = true
	c.SetSelection(false)
	v.state.LastPointerX = e.ScreenX
	v.state.LastPointerY = e.ScreenY
	v.moveHandle = c.OnPointerMove(v.onPointerMove)
	v.upHandle = c.OnPointerUp(v.onPointerUp)
	v.session.debugf("pan start (%.1f, %.1f)", e.ScreenX, e.ScreenY)
}

func (v *ViewportController) onPointerMove(e PointerEvent) {
	if !v.state.Dragging {
		return
	}
	c := v.session.Canvas()
	w, h := c.Size()
	vpt := c.ViewportTransform()
	brX, brY := viewportBottomRight(vpt, w, h)

	diffX := e.ScreenX - v.state.LastPointerX
	if brX < w || diffX > 0 {
		vpt[4] += diffX
	}
	if vpt[4] >= 0 {
		vpt[4] = 0
	}
	diffY := e.ScreenY - v.state.LastPointerY
	if brY < h || diffY > 0 {
		vpt[5] += diffY
	}
	if vpt[5] >= 0 {
		vpt[5] = 0
	}

	c.SetViewportTransform(vpt)
	v.state.PanX, v.state.PanY = vpt[4], vpt[5]
	v.state.IsPanning = true
	v.state.LastPointerX = e.ScreenX
	v.state.LastPointerY = e.ScreenY
}

func (v *ViewportController) onPointerUp(e PointerEvent) {
	if v.state.Dragging && (e.ScreenX != v.state.LastPointerX || e.ScreenY != v.state.LastPointerY) {
		v.onPointerMove(e)
	}
	c := v.session.Canvas()
	v.endDrag()
	c.SetSelection(true)

	w, h := c.Size()
	brX, brY := viewportBottomRight(c.ViewportTransform(), w, h)
	overflow := PanOverflow{X: brX > w, Y: brY > h}
	v.session.debugf("pan end overflow=%+v", overflow)
	v.session.Fire(Event{Topic: TopicImagePanned, Overflow: overflow})
}

func (v *ViewportController) endDrag() {
	v.state.Dragging = false
	v.moveHandle.Remove()
	v.upHandle.Remove()
	v.moveHandle = CallbackHandle{}
	v.upHandle = CallbackHandle{}
}

// AnimateZoom tweens the scale from its current value to target over
// duration seconds. Each frame applies the same clamping and pan reset as
// SetZoomValue. A later SetZoom or Reset cancels the tween. If easeFn is
// nil, ease.Linear is used.
func (v *ViewportController) AnimateZoom(target float64, duration float32, easeFn ease.TweenFunc) {
	if easeFn == nil {
		easeFn = ease.Linear
	}
	target = clampScale(target)
	v.anim = &zoomAnim{
		tween: gween.New(float32(v.state.Scale), float32(target), duration, easeFn),
	}
}

// Animating reports whether an AnimateZoom tween is running.
func (v *ViewportController) Animating() bool {
	return v.anim != nil
}

// Update advances an active zoom tween by dt seconds.
func (v *ViewportController) Update(dt float32) error {
	if v.anim == nil {
		return nil
	}
	val, done := v.anim.tween.Update(dt)
	if done {
		v.anim = nil
	}
	v.state.Scale = float64(val)
	v.zoomCanvas()
	return nil
}
