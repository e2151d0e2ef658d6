// Package imagedit is the interaction core of an image editor: shift-drag
// panning and zoom, resizing the canvas output, and authoring arrows from
// pointer gestures, with reversible commands and an undo/redo history.
//
// # Quick start
//
// A [Session] owns the canvas, the event bus and the controllers. The
// simplest way to try it is [Run], which opens an [Ebitengine] window:
//
//	s := imagedit.NewSession(imagedit.SessionConfig{Width: 800, Height: 600})
//	s.Events().Subscribe(imagedit.TopicObjectAdded, func(e imagedit.Event) {
//		s.Canvas().Add(e.Object)
//	})
//	_ = s.Modes().Switch(imagedit.DrawingModeArrow, imagedit.BrushSettings{Width: 5, Color: "#ff0000"})
//	imagedit.Run(s, imagedit.RunConfig{Title: "Arrows", ShowFPS: true})
//
// For full control, implement [ebiten.Game] yourself and call
// [Session.Update] each tick.
//
// # Controllers
//
// [ViewportController] (component "ZOOM") zooms around the canvas center,
// clamps scales below 1 and pans with shift-drag. Pan offsets never go
// positive, and zooming out after a pan snaps back to the identity
// transform first. [ViewportController.AnimateZoom] tweens the scale via
// [gween].
//
// [ResizeController] (component "RESIZE") snapshots the canvas, decodes the
// PNG and publishes an image object scaled to the requested size.
//
// [ArrowController] (component "ARROW") is a gesture state machine:
// inactive, armed after Start, drawing between pointer-down and
// pointer-up. A committed arrow is a group of a line and a triangle
// arrowhead sharing one ID, delivered through [TopicObjectAdded]; the
// consumer decides where it lives.
//
// # Commands
//
// Reversible operations are [Command] values created by name from a
// process-wide registry ([NewCommand]). [History] records executed commands
// and only ever undoes a command whose Execute succeeded.
//
//	h := s.History()
//	_ = h.Execute(imagedit.CommandZoomImage, imagedit.OpSetZoomValue, 2.0)
//	_ = h.Execute(imagedit.CommandResizeImage, imagedit.OpResize, imagedit.Dimensions{Width: 200, Height: 100})
//	_ = h.Undo()
//
// # Testing
//
// Pointer input can be injected with [Scene.InjectPress],
// [Scene.InjectMove], [Scene.InjectRelease] and [Scene.InjectDrag], or
// scripted as JSON with [LoadGestureScript]. No window is needed.
//
// [Ebitengine]: https://ebitengine.org
// [gween]: https://github.com/tanema/gween
package imagedit
