package imagedit

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

var whitePixel *ebiten.Image

// ensureWhitePixel returns a lazily-initialized 1x1 white pixel image used
// as the DrawTriangles source.
func ensureWhitePixel() *ebiten.Image {
	if whitePixel == nil {
		whitePixel = ebiten.NewImage(1, 1)
		whitePixel.Fill(color.White)
	}
	return whitePixel
}

// drawCache holds GPU images uploaded for image objects, keyed by object.
type drawCache struct {
	images map[*Object]*ebiten.Image
	sizes  map[*Object][2]int
}

func newDrawCache() *drawCache {
	return &drawCache{
		images: make(map[*Object]*ebiten.Image),
		sizes:  make(map[*Object][2]int),
	}
}

// prune disposes images of objects no longer in the scene.
func (c *drawCache) prune(s *Scene) {
	for o, img := range c.images {
		if !s.Contains(o) && !containsInGroups(s.objects, o) {
			img.Deallocate()
			delete(c.images, o)
			delete(c.sizes, o)
		}
	}
}

func containsInGroups(objs []*Object, target *Object) bool {
	for _, o := range objs {
		if o.Kind != ObjectGroup {
			continue
		}
		for _, c := range o.children {
			if c == target || containsInGroups(c.children, target) {
				return true
			}
		}
	}
	return false
}

// imageFor returns the uploaded raster for o, re-uploading when the scaled
// size changed.
func (c *drawCache) imageFor(o *Object) *ebiten.Image {
	src := o.Raster()
	if src == nil {
		return nil
	}
	b := src.Bounds()
	size := [2]int{b.Dx(), b.Dy()}
	if img, ok := c.images[o]; ok && c.sizes[o] == size {
		return img
	}
	if old, ok := c.images[o]; ok {
		old.Deallocate()
	}
	img := ebiten.NewImageFromImage(src)
	c.images[o] = img
	c.sizes[o] = size
	return img
}

// draw paints the scene onto screen through the viewport transform.
func (s *Scene) draw(screen *ebiten.Image, cache *drawCache) {
	if s.Background.A > 0 {
		screen.Fill(s.Background.nrgba())
	}
	for _, o := range s.objects {
		drawObject(screen, o, s.vpt, cache)
	}
	cache.prune(s)
}

func drawObject(dst *ebiten.Image, o *Object, vpt [6]float64, cache *drawCache) {
	switch o.Kind {
	case ObjectLine:
		if o.StrokeWidth <= 0 || o.Stroke.A <= 0 {
			return
		}
		x1, y1 := transformPoint(vpt, o.X1, o.Y1)
		x2, y2 := transformPoint(vpt, o.X2, o.Y2)
		vector.StrokeLine(dst, float32(x1), float32(y1), float32(x2), float32(y2),
			float32(o.StrokeWidth*vpt[0]), withOpacity(o.Stroke, o.Opacity).nrgba(), true)

	case ObjectTriangle:
		pts := o.TrianglePoints()
		var sp [3]Vec2
		for i, p := range pts {
			x, y := transformPoint(vpt, p.X, p.Y)
			sp[i] = Vec2{X: x, Y: y}
		}
		if o.Fill.A > 0 {
			fillTriangle(dst, sp, withOpacity(o.Fill, o.Opacity))
		}
		if o.StrokeWidth > 0 && o.Stroke.A > 0 {
			clr := withOpacity(o.Stroke, o.Opacity).nrgba()
			w := float32(o.StrokeWidth * vpt[0])
			for i := range sp {
				a, b := sp[i], sp[(i+1)%3]
				vector.StrokeLine(dst, float32(a.X), float32(a.Y), float32(b.X), float32(b.Y), w, clr, true)
			}
		}

	case ObjectImage:
		img := cache.imageFor(o)
		if img == nil {
			return
		}
		tl := o.BoundingRect()
		x, y := transformPoint(vpt, tl.X, tl.Y)
		var op ebiten.DrawImageOptions
		op.GeoM.Scale(vpt[0], vpt[3])
		op.GeoM.Translate(x, y)
		op.ColorScale.ScaleAlpha(float32(clamp01(o.Opacity)))
		op.Filter = ebiten.FilterLinear
		dst.DrawImage(img, &op)

	case ObjectGroup:
		for _, c := range o.children {
			drawObject(dst, c, vpt, cache)
		}
	}
}

// fillTriangle draws a solid triangle in screen coordinates.
func fillTriangle(dst *ebiten.Image, pts [3]Vec2, c Color) {
	r, g, b, a := float32(c.R*c.A), float32(c.G*c.A), float32(c.B*c.A), float32(c.A)
	var verts [3]ebiten.Vertex
	for i, p := range pts {
		verts[i] = ebiten.Vertex{
			DstX: float32(p.X), DstY: float32(p.Y),
			SrcX: 0.5, SrcY: 0.5,
			ColorR: r, ColorG: g, ColorB: b, ColorA: a,
		}
	}
	indices := []uint16{0, 1, 2}
	var op ebiten.DrawTrianglesOptions
	op.AntiAlias = true
	dst.DrawTriangles(verts[:], indices, ensureWhitePixel(), &op)
}
