package imagedit

import (
	"bytes"
	"fmt"
	"image"
	"math"

	"github.com/gogpu/gg"
)

// Snapshot rasterizes the canvas as currently viewed (viewport transform
// applied) with the software renderer and returns it PNG-encoded.
func (s *Scene) Snapshot() ([]byte, error) {
	w := int(math.Ceil(s.width))
	h := int(math.Ceil(s.height))
	if w <= 0 || h <= 0 {
		return nil, fmt.Errorf("imagedit: snapshot: empty canvas %dx%d", w, h)
	}

	dc := gg.NewContext(w, h)
	defer dc.Close()

	if s.Background.A > 0 {
		dc.ClearWithColor(gg.RGBA{R: s.Background.R, G: s.Background.G, B: s.Background.B, A: s.Background.A})
	}
	for _, o := range s.objects {
		if err := rasterizeObject(dc, o, s.vpt); err != nil {
			return nil, fmt.Errorf("imagedit: snapshot: %s %s: %w", o.Kind, o.ID, err)
		}
	}

	var buf bytes.Buffer
	if err := dc.EncodePNG(&buf); err != nil {
		return nil, fmt.Errorf("imagedit: snapshot: encode: %w", err)
	}
	return buf.Bytes(), nil
}

// rasterizeObject paints o onto dc through the viewport transform vpt.
func rasterizeObject(dc *gg.Context, o *Object, vpt [6]float64) error {
	switch o.Kind {
	case ObjectLine:
		if o.StrokeWidth <= 0 || o.Stroke.A <= 0 {
			return nil
		}
		x1, y1 := transformPoint(vpt, o.X1, o.Y1)
		x2, y2 := transformPoint(vpt, o.X2, o.Y2)
		dc.SetColor(withOpacity(o.Stroke, o.Opacity).nrgba())
		dc.SetLineWidth(o.StrokeWidth * vpt[0])
		dc.DrawLine(x1, y1, x2, y2)
		return dc.Stroke()

	case ObjectTriangle:
		pts := o.TrianglePoints()
		tracePolygon(dc, vpt, pts[:])
		if o.Fill.A > 0 {
			dc.SetColor(withOpacity(o.Fill, o.Opacity).nrgba())
			if err := dc.FillPreserve(); err != nil {
				return err
			}
		}
		if o.StrokeWidth > 0 && o.Stroke.A > 0 {
			dc.SetColor(withOpacity(o.Stroke, o.Opacity).nrgba())
			dc.SetLineWidth(o.StrokeWidth * vpt[0])
			if err := dc.StrokePreserve(); err != nil {
				return err
			}
		}
		dc.ClearPath()
		return nil

	case ObjectImage:
		src := o.Raster()
		if src == nil {
			return nil
		}
		b := src.Bounds()
		w := int(math.Round(float64(b.Dx()) * vpt[0]))
		h := int(math.Round(float64(b.Dy()) * vpt[3]))
		if w <= 0 || h <= 0 {
			return nil
		}
		var scaled image.Image = src
		if w != b.Dx() || h != b.Dy() {
			scaled = resample(src, w, h)
		}
		tl := o.BoundingRect()
		x, y := transformPoint(vpt, tl.X, tl.Y)
		dc.DrawImageEx(gg.ImageBufFromImage(scaled), gg.DrawImageOptions{
			X:       x,
			Y:       y,
			Opacity: o.Opacity,
		})
		return nil

	case ObjectGroup:
		for _, c := range o.children {
			if err := rasterizeObject(dc, c, vpt); err != nil {
				return err
			}
		}
	}
	return nil
}

func tracePolygon(dc *gg.Context, vpt [6]float64, pts []Vec2) {
	for i, p := range pts {
		x, y := transformPoint(vpt, p.X, p.Y)
		if i == 0 {
			dc.MoveTo(x, y)
		} else {
			dc.LineTo(x, y)
		}
	}
	dc.ClosePath()
}

func withOpacity(c Color, opacity float64) Color {
	c.A *= clamp01(opacity)
	return c
}
