package imagedit

import (
	"image"
	"math"

	"github.com/google/uuid"
	"golang.org/x/image/draw"
)

// ObjectKind distinguishes the primitives the editor places on a canvas.
type ObjectKind uint8

const (
	ObjectLine     ObjectKind = iota // straight segment from (X1,Y1) to (X2,Y2)
	ObjectTriangle                   // isosceles triangle pointing up at Angle 0
	ObjectImage                      // raster image, scaled by ScaleX/ScaleY
	ObjectGroup                      // container committing its children as one object
)

func (k ObjectKind) String() string {
	switch k {
	case ObjectLine:
		return "line"
	case ObjectTriangle:
		return "triangle"
	case ObjectImage:
		return "image"
	case ObjectGroup:
		return "group"
	default:
		return "unknown"
	}
}

// Origin selects which point of an object Left/Top refer to.
type Origin uint8

const (
	OriginTopLeft Origin = iota // Left/Top is the top-left corner
	OriginCenter                // Left/Top is the object's center
)

// Object is a scene object. A single flat struct is used for every kind,
// like a scene graph node; kind-specific fields are ignored by other kinds.
type Object struct {
	// Identity
	ID   string
	Kind ObjectKind
	Type string // persisted type tag; defaults to Kind.String()
	Name string

	// Line endpoints (ObjectLine)
	X1, Y1, X2, Y2 float64

	// Placement
	Left, Top     float64
	Width, Height float64
	ScaleX        float64
	ScaleY        float64
	Angle         float64 // degrees, clockwise
	Origin        Origin

	// Style
	Stroke      Color
	StrokeWidth float64
	Fill        Color
	Opacity     float64

	// Interaction
	Evented    bool
	Selectable bool

	// Arrow metadata
	PointType       string
	TypeOfGroup     string
	UserLevel       int
	LockScalingFlip bool

	// Image fields (ObjectImage)
	Image image.Image

	children []*Object

	raster  image.Image
	rasterW int
	rasterH int
}

// objectDefaults sets the common default field values shared by all constructors.
func objectDefaults(o *Object) {
	o.ID = uuid.NewString()
	o.Type = o.Kind.String()
	o.ScaleX = 1
	o.ScaleY = 1
	o.Opacity = 1
	o.Evented = true
	o.Selectable = true
}

// NewLine creates a line from (x1, y1) to (x2, y2).
func NewLine(x1, y1, x2, y2 float64) *Object {
	o := &Object{Kind: ObjectLine}
	objectDefaults(o)
	o.SetLinePoints(x1, y1, x2, y2)
	return o
}

// NewTriangle creates a triangle with the given bounding size.
func NewTriangle(width, height float64) *Object {
	o := &Object{Kind: ObjectTriangle, Width: width, Height: height}
	objectDefaults(o)
	return o
}

// NewImage creates an image object sized to img's bounds.
func NewImage(img image.Image) *Object {
	o := &Object{Kind: ObjectImage, Image: img}
	objectDefaults(o)
	if img != nil {
		b := img.Bounds()
		o.Width = float64(b.Dx())
		o.Height = float64(b.Dy())
	}
	return o
}

// NewGroup creates a group whose bounds enclose all children.
func NewGroup(children ...*Object) *Object {
	o := &Object{Kind: ObjectGroup, children: children}
	objectDefaults(o)
	if len(children) == 0 {
		return o
	}
	bounds := children[0].BoundingRect()
	for _, c := range children[1:] {
		bounds = bounds.Union(c.BoundingRect())
	}
	o.Left, o.Top = bounds.X, bounds.Y
	o.Width, o.Height = bounds.Width, bounds.Height
	return o
}

// Children returns the group's members. The returned slice MUST NOT be mutated.
func (o *Object) Children() []*Object {
	return o.children
}

// SetLinePoints moves both endpoints and recomputes the line's bounds.
func (o *Object) SetLinePoints(x1, y1, x2, y2 float64) {
	o.X1, o.Y1, o.X2, o.Y2 = x1, y1, x2, y2
	o.Width = math.Abs(x2 - x1)
	o.Height = math.Abs(y2 - y1)
	if o.Origin == OriginCenter {
		o.Left = (x1 + x2) / 2
		o.Top = (y1 + y2) / 2
		return
	}
	o.Left = math.Min(x1, x2)
	o.Top = math.Min(y1, y2)
}

// SetLineEnd moves the second endpoint.
func (o *Object) SetLineEnd(x2, y2 float64) {
	o.SetLinePoints(o.X1, o.Y1, x2, y2)
}

// Center returns the object's center in scene coordinates.
func (o *Object) Center() Vec2 {
	if o.Kind == ObjectLine {
		return Vec2{X: (o.X1 + o.X2) / 2, Y: (o.Y1 + o.Y2) / 2}
	}
	if o.Origin == OriginCenter {
		return Vec2{X: o.Left, Y: o.Top}
	}
	return Vec2{X: o.Left + o.Width*o.ScaleX/2, Y: o.Top + o.Height*o.ScaleY/2}
}

// corners returns the object's four corners after scale and rotation.
func (o *Object) corners() [4]Vec2 {
	c := o.Center()
	hw := o.Width * o.ScaleX / 2
	hh := o.Height * o.ScaleY / 2
	sin, cos := math.Sincos(o.Angle * math.Pi / 180)
	local := [4]Vec2{{-hw, -hh}, {hw, -hh}, {hw, hh}, {-hw, hh}}
	var out [4]Vec2
	for i, p := range local {
		out[i] = Vec2{X: c.X + p.X*cos - p.Y*sin, Y: c.Y + p.X*sin + p.Y*cos}
	}
	return out
}

// BoundingRect returns the axis-aligned bounds of the object in scene space.
func (o *Object) BoundingRect() Rect {
	if o.Kind == ObjectLine {
		return Rect{X: math.Min(o.X1, o.X2), Y: math.Min(o.Y1, o.Y2), Width: o.Width, Height: o.Height}
	}
	pts := o.corners()
	minX, minY := pts[0].X, pts[0].Y
	maxX, maxY := minX, minY
	for _, p := range pts[1:] {
		minX = math.Min(minX, p.X)
		minY = math.Min(minY, p.Y)
		maxX = math.Max(maxX, p.X)
		maxY = math.Max(maxY, p.Y)
	}
	return Rect{X: minX, Y: minY, Width: maxX - minX, Height: maxY - minY}
}

// TrianglePoints returns the apex, bottom-right and bottom-left vertices of a
// triangle object in scene space.
func (o *Object) TrianglePoints() [3]Vec2 {
	c := o.Center()
	hw := o.Width * o.ScaleX / 2
	hh := o.Height * o.ScaleY / 2
	sin, cos := math.Sincos(o.Angle * math.Pi / 180)
	local := [3]Vec2{{0, -hh}, {hw, hh}, {-hw, hh}}
	var out [3]Vec2
	for i, p := range local {
		out[i] = Vec2{X: c.X + p.X*cos - p.Y*sin, Y: c.Y + p.X*sin + p.Y*cos}
	}
	return out
}

// Raster returns the image resampled to its scaled size. The result is
// cached until the scaled size changes. Returns nil for non-image
// objects or empty sizes.
func (o *Object) Raster() image.Image {
	if o.Kind != ObjectImage || o.Image == nil {
		return nil
	}
	w := int(math.Round(o.Width * o.ScaleX))
	h := int(math.Round(o.Height * o.ScaleY))
	if w <= 0 || h <= 0 {
		return nil
	}
	if o.raster != nil && o.rasterW == w && o.rasterH == h {
		return o.raster
	}
	o.raster = resample(o.Image, w, h)
	o.rasterW, o.rasterH = w, h
	return o.raster
}

// InvalidateRaster drops the cached raster. Call this after replacing Image.
func (o *Object) InvalidateRaster() {
	o.raster = nil
}

// resample scales src to w x h with Catmull-Rom filtering.
func resample(src image.Image, w, h int) *image.NRGBA {
	dst := image.NewNRGBA(image.Rect(0, 0, w, h))
	draw.CatmullRom.Scale(dst, dst.Bounds(), src, src.Bounds(), draw.Src, nil)
	return dst
}
