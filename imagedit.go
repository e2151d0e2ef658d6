package imagedit

import (
	"fmt"
	"image/color"
	"math"
	"strconv"
	"strings"
)

// Color represents an RGBA color with components in [0, 1]. Not premultiplied.
type Color struct {
	R, G, B, A float64
}

// ColorRed is the arrowhead fill.
var ColorRed = Color{1, 0, 0, 1}

// ParseColor parses the color strings accepted by brush settings:
// "#rgb", "#rrggbb", "#rrggbbaa", "rgb(r, g, b)" and "rgba(r, g, b, a)".
// Channel values in rgb()/rgba() are 0-255; alpha is 0-1.
func ParseColor(s string) (Color, error) {
	s = strings.TrimSpace(strings.ToLower(s))
	switch {
	case strings.HasPrefix(s, "#"):
		return parseHexColor(s[1:])
	case strings.HasPrefix(s, "rgba(") && strings.HasSuffix(s, ")"):
		return parseFuncColor(s[len("rgba("):len(s)-1], 4)
	case strings.HasPrefix(s, "rgb(") && strings.HasSuffix(s, ")"):
		return parseFuncColor(s[len("rgb("):len(s)-1], 3)
	}
	return Color{}, fmt.Errorf("imagedit: %w: %q", ErrInvalidColor, s)
}

func parseHexColor(h string) (Color, error) {
	if len(h) == 3 {
		h = string([]byte{h[0], h[0], h[1], h[1], h[2], h[2]})
	}
	if len(h) == 6 {
		h += "ff"
	}
	if len(h) != 8 {
		return Color{}, fmt.Errorf("imagedit: %w: #%s", ErrInvalidColor, h)
	}
	v, err := strconv.ParseUint(h, 16, 32)
	if err != nil {
		return Color{}, fmt.Errorf("imagedit: %w: #%s", ErrInvalidColor, h)
	}
	return Color{
		R: float64(v>>24&0xff) / 255,
		G: float64(v>>16&0xff) / 255,
		B: float64(v>>8&0xff) / 255,
		A: float64(v&0xff) / 255,
	}, nil
}

func parseFuncColor(body string, n int) (Color, error) {
	parts := strings.Split(body, ",")
	if len(parts) != n {
		return Color{}, fmt.Errorf("imagedit: %w: want %d components, got %d", ErrInvalidColor, n, len(parts))
	}
	var v [4]float64
	v[3] = 1
	for i, p := range parts {
		f, err := strconv.ParseFloat(strings.TrimSpace(p), 64)
		if err != nil {
			return Color{}, fmt.Errorf("imagedit: %w: %v", ErrInvalidColor, err)
		}
		if math.IsNaN(f) || math.IsInf(f, 0) {
			return Color{}, fmt.Errorf("imagedit: %w: component %q is not finite", ErrInvalidColor, strings.TrimSpace(p))
		}
		if i < 3 {
			f /= 255
		}
		v[i] = clamp01(f)
	}
	return Color{R: v[0], G: v[1], B: v[2], A: v[3]}, nil
}

// String formats the color the way brush colors are persisted, e.g.
// "rgba(255,0,0,1)".
func (c Color) String() string {
	return fmt.Sprintf("rgba(%d,%d,%d,%s)",
		channel8(c.R), channel8(c.G), channel8(c.B),
		strconv.FormatFloat(clamp01(c.A), 'f', -1, 64))
}

// nrgba converts to a straight-alpha image/color value.
func (c Color) nrgba() color.NRGBA {
	return color.NRGBA{R: channel8(c.R), G: channel8(c.G), B: channel8(c.B), A: channel8(c.A)}
}

func channel8(v float64) uint8 {
	return uint8(clamp01(v)*255 + 0.5)
}

func clamp01(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}

// Vec2 is a 2D point or offset.
type Vec2 struct {
	X, Y float64
}

// Rect is an axis-aligned rectangle. The coordinate system has its origin at
// the top-left, with Y increasing downward.
type Rect struct {
	X, Y, Width, Height float64
}

// Contains reports whether the point (x, y) lies inside the rectangle.
// Points on the edge are considered inside.
func (r Rect) Contains(x, y float64) bool {
	return x >= r.X && x <= r.X+r.Width &&
		y >= r.Y && y <= r.Y+r.Height
}

// Union returns the smallest rectangle containing both r and other.
func (r Rect) Union(other Rect) Rect {
	minX := min(r.X, other.X)
	minY := min(r.Y, other.Y)
	maxX := max(r.X+r.Width, other.X+other.Width)
	maxY := max(r.Y+r.Height, other.Y+other.Height)
	return Rect{X: minX, Y: minY, Width: maxX - minX, Height: maxY - minY}
}

// Dimensions is an output size in pixels.
type Dimensions struct {
	Width  float64 `json:"width"`
	Height float64 `json:"height"`
}

// Cursor names a pointer cursor shown over the canvas.
type Cursor string

const (
	CursorDefault   Cursor = "default"
	CursorCrosshair Cursor = "crosshair"
	CursorMove      Cursor = "move"
)

// EventType identifies a kind of pointer event.
type EventType uint8

const (
	EventPointerDown EventType = iota // fires when a pointer button is pressed
	EventPointerMove                  // fires when the pointer moves, pressed or not
	EventPointerUp                    // fires when a pointer button is released
)

// MouseButton identifies a mouse button.
type MouseButton uint8

const (
	MouseButtonLeft   MouseButton = iota // primary (left) mouse button
	MouseButtonRight                     // secondary (right) mouse button
	MouseButtonMiddle                    // middle mouse button (scroll wheel click)
)

// KeyModifiers is a bitmask of keyboard modifier keys.
// Values can be combined with bitwise OR (e.g. ModShift | ModCtrl).
type KeyModifiers uint8

const (
	ModShift KeyModifiers = 1 << iota // Shift key
	ModCtrl                           // Control key
	ModAlt                            // Alt / Option key
	ModMeta                           // Meta / Command / Windows key
)

// Component names used for Session.Component lookups.
const (
	ComponentZoom   = "ZOOM"
	ComponentResize = "RESIZE"
	ComponentArrow  = "ARROW"
)

// Drawing mode names.
const (
	DrawingModeArrow = "ARROW_DRAWING"
	DrawingModePan   = "PAN"
)

// Command names registered in the command registry.
const (
	CommandZoomImage   = "zoomImage"
	CommandResizeImage = "resizeImage"
)

// ObjectTypeArrow tags committed arrow shapes.
const ObjectTypeArrow = "arrow"
