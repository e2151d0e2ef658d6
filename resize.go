package imagedit

import (
	"bytes"
	"fmt"
	"image"
	_ "image/png" // snapshot format
	"math"
)

// ResizeController rebuilds the canvas content as a single image object
// scaled to target output dimensions.
type ResizeController struct {
	session    *Session
	dimensions Dimensions
}

// NewResizeController creates the RESIZE component for s. The initial
// dimensions are the canvas size.
func NewResizeController(s *Session) *ResizeController {
	w, h := s.Canvas().Size()
	return &ResizeController{
		session:    s,
		dimensions: Dimensions{Width: w, Height: h},
	}
}

// Name returns ComponentResize.
func (r *ResizeController) Name() string { return ComponentResize }

// CurrentDimensions returns the last committed output dimensions.
func (r *ResizeController) CurrentDimensions() Dimensions { return r.dimensions }

// Resize snapshots the canvas, decodes the snapshot and publishes
// TopicImageResized with an image object scaled to d. Scaling is
// independent per axis. A snapshot that cannot be decoded yields an error
// wrapping ErrSnapshotDecode and no event.
func (r *ResizeController) Resize(d Dimensions) error {
	if !(d.Width > 0) || !(d.Height > 0) || math.IsInf(d.Width, 0) || math.IsInf(d.Height, 0) {
		return fmt.Errorf("imagedit: resize %gx%g: %w", d.Width, d.Height, ErrInvalidDimensions)
	}

	data, err := r.session.Canvas().Snapshot()
	if err != nil {
		return fmt.Errorf("imagedit: resize: %w: %w", ErrSnapshotDecode, err)
	}
	if len(data) == 0 {
		return fmt.Errorf("imagedit: resize: empty snapshot: %w", ErrSnapshotDecode)
	}
	img, format, err := image.Decode(bytes.NewReader(data))
	if err != nil {
		return fmt.Errorf("imagedit: resize: %w: %w", ErrSnapshotDecode, err)
	}
	b := img.Bounds()
	if b.Dx() == 0 || b.Dy() == 0 {
		return fmt.Errorf("imagedit: resize: empty %s snapshot: %w", format, ErrSnapshotDecode)
	}

	obj := NewImage(img)
	obj.ScaleX = d.Width / float64(b.Dx())
	obj.ScaleY = d.Height / float64(b.Dy())
	r.dimensions = d

	r.session.debugf("resize %s %dx%d -> %gx%g", format, b.Dx(), b.Dy(), d.Width, d.Height)
	r.session.Fire(Event{Topic: TopicImageResized, Object: obj})
	return nil
}
