package imagedit

import (
	"fmt"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

// RunConfig configures the window opened by Run.
type RunConfig struct {
	Title  string
	Width  int
	Height int
	// ShowFPS draws FPS, TPS, zoom scale and the active mode in the
	// top-left corner.
	ShowFPS bool
	// ZoomStep is the scale change for the +/- keys. Defaults to 0.25.
	ZoomStep float64
}

// zoomAnimSeconds is the AnimateZoom duration used by the zoom keys.
const zoomAnimSeconds = 0.15

// Run opens a window and drives the session with ebiten until the window
// closes. The session canvas must be a *Scene.
//
// Keys: Ctrl+Z undo, Ctrl+Shift+Z redo, +/- zoom, 0 reset zoom, A arrow
// mode, Esc stop the active mode. Shift-drag pans once the viewport is
// zoomed.
func Run(s *Session, cfg RunConfig) error {
	scene, ok := s.Canvas().(*Scene)
	if !ok {
		return fmt.Errorf("imagedit: run: canvas %T is not a *Scene", s.Canvas())
	}
	if cfg.Width <= 0 || cfg.Height <= 0 {
		w, h := scene.Size()
		cfg.Width, cfg.Height = int(w), int(h)
	}
	if cfg.ZoomStep <= 0 {
		cfg.ZoomStep = 0.25
	}
	if cfg.Title != "" {
		ebiten.SetWindowTitle(cfg.Title)
	}
	ebiten.SetWindowSize(cfg.Width, cfg.Height)
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)

	scene.poller = pollEbitenPointer
	defer func() { scene.poller = nil }()

	g := &game{session: s, scene: scene, cfg: cfg, cache: newDrawCache()}
	if cfg.ShowFPS {
		g.hud = newStatusHUD()
	}
	return ebiten.RunGame(g)
}

type game struct {
	session *Session
	scene   *Scene
	cfg     RunConfig
	cache   *drawCache
	hud     *statusHUD
}

func (g *game) Update() error {
	dt := 1 / float32(ebiten.TPS())
	g.handleKeys()
	if err := g.session.Update(dt); err != nil {
		return err
	}
	if g.hud != nil {
		g.hud.update(float64(dt), g.session)
	}
	ebiten.SetCursorShape(cursorShape(g.scene.DefaultCursor()))
	return nil
}

func (g *game) Draw(screen *ebiten.Image) {
	g.scene.draw(screen, g.cache)
	if g.hud != nil {
		g.hud.draw(screen)
	}
}

func (g *game) Layout(outsideWidth, outsideHeight int) (int, int) {
	w, h := float64(outsideWidth), float64(outsideHeight)
	if sw, sh := g.scene.Size(); sw != w || sh != h {
		g.scene.SetSize(w, h)
	}
	return outsideWidth, outsideHeight
}

// handleKeys maps keyboard shortcuts to history, zoom and mode operations.
// Failures are logged in debug mode and otherwise ignored.
func (g *game) handleKeys() {
	s := g.session
	mods := readModifiers()
	var err error
	switch {
	case mods&ModCtrl != 0 && inpututil.IsKeyJustPressed(ebiten.KeyZ):
		if mods&ModShift != 0 {
			err = s.History().Redo()
		} else {
			err = s.History().Undo()
		}
	case inpututil.IsKeyJustPressed(ebiten.KeyEqual), inpututil.IsKeyJustPressed(ebiten.KeyNumpadAdd):
		err = g.zoomBy(g.cfg.ZoomStep)
	case inpututil.IsKeyJustPressed(ebiten.KeyMinus), inpututil.IsKeyJustPressed(ebiten.KeyNumpadSubtract):
		err = g.zoomBy(-g.cfg.ZoomStep)
	case inpututil.IsKeyJustPressed(ebiten.Key0), inpututil.IsKeyJustPressed(ebiten.KeyNumpad0):
		err = s.History().Execute(CommandZoomImage, OpSetZoomValue, 1.0, true)
	case inpututil.IsKeyJustPressed(ebiten.KeyA):
		err = s.Modes().Switch(DrawingModeArrow, BrushSettings{})
	case inpututil.IsKeyJustPressed(ebiten.KeyEscape):
		s.Modes().Stop()
	}
	if err != nil {
		s.debugf("key: %v", err)
	}
}

// zoomBy records the target scale in the history and tweens toward it.
func (g *game) zoomBy(step float64) error {
	v := g.session.Viewport()
	from := v.CurrentValue()
	target := from + step
	if target < minZoom {
		target = minZoom
	}
	if err := g.session.History().Execute(CommandZoomImage, OpSetZoomValue, target); err != nil {
		return err
	}
	if err := v.SetZoomValue(from); err != nil {
		return err
	}
	v.AnimateZoom(target, zoomAnimSeconds, nil)
	return nil
}

// readModifiers reads the current keyboard modifier state.
func readModifiers() KeyModifiers {
	var mods KeyModifiers
	if ebiten.IsKeyPressed(ebiten.KeyShift) || ebiten.IsKeyPressed(ebiten.KeyShiftLeft) || ebiten.IsKeyPressed(ebiten.KeyShiftRight) {
		mods |= ModShift
	}
	if ebiten.IsKeyPressed(ebiten.KeyControl) || ebiten.IsKeyPressed(ebiten.KeyControlLeft) || ebiten.IsKeyPressed(ebiten.KeyControlRight) {
		mods |= ModCtrl
	}
	if ebiten.IsKeyPressed(ebiten.KeyAlt) || ebiten.IsKeyPressed(ebiten.KeyAltLeft) || ebiten.IsKeyPressed(ebiten.KeyAltRight) {
		mods |= ModAlt
	}
	if ebiten.IsKeyPressed(ebiten.KeyMeta) || ebiten.IsKeyPressed(ebiten.KeyMetaLeft) || ebiten.IsKeyPressed(ebiten.KeyMetaRight) {
		mods |= ModMeta
	}
	return mods
}

// pollEbitenPointer reads the mouse (pointer 0) in screen coordinates. While
// a button is held the first pressed of left, right, middle is reported.
func pollEbitenPointer() (sx, sy float64, pressed bool, button MouseButton, mods KeyModifiers) {
	mx, my := ebiten.CursorPosition()
	left := ebiten.IsMouseButtonPressed(ebiten.MouseButtonLeft)
	right := ebiten.IsMouseButtonPressed(ebiten.MouseButtonRight)
	middle := ebiten.IsMouseButtonPressed(ebiten.MouseButtonMiddle)

	if left || right || middle {
		pressed = true
		if left {
			button = MouseButtonLeft
		} else if right {
			button = MouseButtonRight
		} else {
			button = MouseButtonMiddle
		}
	}
	return float64(mx), float64(my), pressed, button, readModifiers()
}

func cursorShape(c Cursor) ebiten.CursorShapeType {
	switch c {
	case CursorCrosshair:
		return ebiten.CursorShapeCrosshair
	case CursorMove:
		return ebiten.CursorShapeMove
	default:
		return ebiten.CursorShapeDefault
	}
}
