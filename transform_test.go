package imagedit

import (
	"math"
	"testing"
)

const epsilon = 1e-9

func approxEqual(a, b, eps float64) bool {
	return math.Abs(a-b) < eps
}

func assertNear(t *testing.T, name string, got, want float64) {
	t.Helper()
	if math.Abs(got-want) > epsilon {
		t.Errorf("%s = %v, want %v", name, got, want)
	}
}

func assertMatrix(t *testing.T, name string, got, want [6]float64) {
	t.Helper()
	for i := range got {
		if math.Abs(got[i]-want[i]) > epsilon {
			t.Errorf("%s[%d] = %v, want %v (full: %v vs %v)", name, i, got[i], want[i], got, want)
		}
	}
}

func TestIdentityTransform(t *testing.T) {
	assertMatrix(t, "identity", IdentityTransform(), [6]float64{1, 0, 0, 1, 0, 0})
}

func TestInvertAffine(t *testing.T) {
	tests := []struct {
		name string
		m    [6]float64
	}{
		{"identity", identityTransform},
		{"translate", [6]float64{1, 0, 0, 1, 30, -40}},
		{"scale", [6]float64{2, 0, 0, 3, 0, 0}},
		{"scale+translate", [6]float64{2, 0, 0, 2, -100, -50}},
		{"rotate", [6]float64{0, 1, -1, 0, 5, 7}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			inv := invertAffine(tt.m)
			x, y := transformPoint(tt.m, 12, -7)
			bx, by := transformPoint(inv, x, y)
			assertNear(t, "x", bx, 12)
			assertNear(t, "y", by, -7)
		})
	}
}

func TestInvertAffineSingular(t *testing.T) {
	assertMatrix(t, "singular", invertAffine([6]float64{0, 0, 0, 0, 10, 10}), identityTransform)
}

func TestTransformPoint(t *testing.T) {
	x, y := transformPoint([6]float64{2, 0, 0, 3, 10, 20}, 5, 5)
	assertNear(t, "x", x, 20)
	assertNear(t, "y", y, 35)
}

func TestZoomToPointKeepsAnchor(t *testing.T) {
	tests := []struct {
		name   string
		vpt    [6]float64
		px, py float64
		zoom   float64
	}{
		{"identity to 2x at center", identityTransform, 400, 300, 2},
		{"2x to 3x at center", [6]float64{2, 0, 0, 2, -400, -300}, 400, 300, 3},
		{"2x back to 1x", [6]float64{2, 0, 0, 2, -400, -300}, 400, 300, 1},
		{"off-center anchor", identityTransform, 100, 50, 4},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			before := invertAffine(tt.vpt)
			sx, sy := transformPoint(before, tt.px, tt.py)

			got := zoomToPoint(tt.vpt, tt.px, tt.py, tt.zoom)
			assertNear(t, "a", got[0], tt.zoom)
			assertNear(t, "d", got[3], tt.zoom)
			ax, ay := transformPoint(got, sx, sy)
			assertNear(t, "anchor x", ax, tt.px)
			assertNear(t, "anchor y", ay, tt.py)
		})
	}
}

func TestZoomToPointCenter(t *testing.T) {
	got := zoomToPoint(identityTransform, 400, 300, 2)
	assertMatrix(t, "2x", got, [6]float64{2, 0, 0, 2, -400, -300})
}

func TestViewportBottomRight(t *testing.T) {
	x, y := viewportBottomRight(identityTransform, 800, 600)
	assertNear(t, "identity x", x, 800)
	assertNear(t, "identity y", y, 600)

	x, y = viewportBottomRight([6]float64{2, 0, 0, 2, -400, -300}, 800, 600)
	assertNear(t, "2x x", x, 600)
	assertNear(t, "2x y", y, 450)
}
