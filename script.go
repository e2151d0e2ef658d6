package imagedit

import (
	"encoding/json"
	"errors"
	"fmt"
)

// scriptStep is a single action in a gesture script.
type scriptStep struct {
	Action string  `json:"action"`
	X      float64 `json:"x,omitempty"`
	Y      float64 `json:"y,omitempty"`
	FromX  float64 `json:"fromX,omitempty"`
	FromY  float64 `json:"fromY,omitempty"`
	ToX    float64 `json:"toX,omitempty"`
	ToY    float64 `json:"toY,omitempty"`
	Frames int     `json:"frames,omitempty"`
	Shift  bool    `json:"shift,omitempty"`

	// zoom
	Scale float64 `json:"scale,omitempty"`
	Reset bool    `json:"reset,omitempty"`

	// resize
	Width  float64 `json:"width,omitempty"`
	Height float64 `json:"height,omitempty"`

	// mode; an empty Mode stops the active one
	Mode  string        `json:"mode,omitempty"`
	Brush BrushSettings `json:"brush,omitempty"`
}

// gestureScript is the top-level JSON structure for a gesture script.
type gestureScript struct {
	Steps []scriptStep `json:"steps"`
}

// inputInjector is the canvas surface a script needs for pointer steps.
type inputInjector interface {
	InjectModifiers(mods KeyModifiers)
	InjectPress(x, y float64)
	InjectMove(x, y float64)
	InjectRelease(x, y float64)
	InjectDrag(fromX, fromY, toX, toY float64, frames int)
	PendingInput() int
}

// GestureScript sequences injected pointer events, commands and mode
// switches across frames. Attach to a Session via SetGestureScript.
//
// Example:
//
//	{"steps": [
//	  {"action": "mode", "mode": "ARROW_DRAWING", "brush": {"width": 5, "color": "#ff0000"}},
//	  {"action": "drag", "fromX": 10, "fromY": 10, "toX": 50, "toY": 50, "frames": 4},
//	  {"action": "zoom", "scale": 2},
//	  {"action": "undo"}
//	]}
type GestureScript struct {
	steps     []scriptStep
	cursor    int
	waitCount int
	done      bool
	err       error
}

// LoadGestureScript parses a JSON gesture script.
func LoadGestureScript(jsonData []byte) (*GestureScript, error) {
	var script gestureScript
	if err := json.Unmarshal(jsonData, &script); err != nil {
		return nil, fmt.Errorf("imagedit: parse gesture script: %w", err)
	}
	if len(script.Steps) == 0 {
		return nil, errors.New("imagedit: parse gesture script: no steps")
	}
	for i, st := range script.Steps {
		switch st.Action {
		case "press", "move", "release", "drag", "zoom", "resize", "undo", "redo", "mode", "wait":
		default:
			return nil, fmt.Errorf("imagedit: parse gesture script: step %d: unknown action %q", i, st.Action)
		}
	}
	return &GestureScript{steps: script.Steps}, nil
}

// Done reports whether every step ran or a step failed.
func (g *GestureScript) Done() bool {
	return g.done
}

// Err returns the error of the step that stopped the script, if any.
func (g *GestureScript) Err() error {
	return g.err
}

// step advances the script by one frame. Called from Session.Update before
// scene input is processed.
func (g *GestureScript) step(s *Session) {
	if g.done {
		return
	}
	inj, _ := s.Canvas().(inputInjector)
	if inj != nil && inj.PendingInput() > 0 {
		return
	}
	if g.waitCount > 0 {
		g.waitCount--
		return
	}
	if g.cursor >= len(g.steps) {
		g.done = true
		return
	}

	st := g.steps[g.cursor]
	g.cursor++
	if err := g.run(s, inj, st); err != nil {
		g.err = fmt.Errorf("imagedit: gesture script step %d (%s): %w", g.cursor-1, st.Action, err)
		g.done = true
		s.debugf("%v", g.err)
		return
	}

	if g.cursor >= len(g.steps) && g.waitCount == 0 && (inj == nil || inj.PendingInput() == 0) {
		g.done = true
	}
}

func (g *GestureScript) run(s *Session, inj inputInjector, st scriptStep) error {
	switch st.Action {
	case "press", "move", "release", "drag":
		if inj == nil {
			return fmt.Errorf("canvas %T does not accept injected input", s.Canvas())
		}
		var mods KeyModifiers
		if st.Shift {
			mods = ModShift
		}
		inj.InjectModifiers(mods)
		switch st.Action {
		case "press":
			inj.InjectPress(st.X, st.Y)
		case "move":
			inj.InjectMove(st.X, st.Y)
		case "release":
			inj.InjectRelease(st.X, st.Y)
		default:
			inj.InjectDrag(st.FromX, st.FromY, st.ToX, st.ToY, st.Frames)
		}
	case "zoom":
		return s.History().Execute(CommandZoomImage, OpSetZoomValue, st.Scale, st.Reset)
	case "resize":
		return s.History().Execute(CommandResizeImage, OpResize, Dimensions{Width: st.Width, Height: st.Height})
	case "undo":
		return s.History().Undo()
	case "redo":
		return s.History().Redo()
	case "mode":
		if st.Mode == "" {
			s.Modes().Stop()
			return nil
		}
		return s.Modes().Switch(st.Mode, st.Brush)
	case "wait":
		if st.Frames > 0 {
			g.waitCount = st.Frames - 1
		}
	}
	return nil
}
