package imagedit

// ObjectProperties is the persisted property record derived from a scene
// object. Downstream state management stores these instead of live objects.
type ObjectProperties struct {
	ID          string  `json:"id"`
	Type        string  `json:"type"`
	Name        string  `json:"name,omitempty"`
	Left        float64 `json:"left"`
	Top         float64 `json:"top"`
	Width       float64 `json:"width"`
	Height      float64 `json:"height"`
	Angle       float64 `json:"angle"`
	ScaleX      float64 `json:"scaleX"`
	ScaleY      float64 `json:"scaleY"`
	Opacity     float64 `json:"opacity"`
	Stroke      string  `json:"stroke,omitempty"`
	StrokeWidth float64 `json:"strokeWidth,omitempty"`
	Fill        string  `json:"fill,omitempty"`

	TypeOfGroup     string `json:"typeOfGroup,omitempty"`
	UserLevel       int    `json:"userLevel,omitempty"`
	LockScalingFlip bool   `json:"lockScalingFlip,omitempty"`
}

// PropertyFunc derives a property record from an object.
type PropertyFunc func(o *Object) ObjectProperties

// CreateObjectProperties is the default PropertyFunc. Colors with zero
// alpha are omitted.
func CreateObjectProperties(o *Object) ObjectProperties {
	p := ObjectProperties{
		ID:              o.ID,
		Type:            o.Type,
		Name:            o.Name,
		Left:            o.Left,
		Top:             o.Top,
		Width:           o.Width,
		Height:          o.Height,
		Angle:           o.Angle,
		ScaleX:          o.ScaleX,
		ScaleY:          o.ScaleY,
		Opacity:         o.Opacity,
		StrokeWidth:     o.StrokeWidth,
		TypeOfGroup:     o.TypeOfGroup,
		UserLevel:       o.UserLevel,
		LockScalingFlip: o.LockScalingFlip,
	}
	if o.Stroke.A > 0 {
		p.Stroke = o.Stroke.String()
	}
	if o.Fill.A > 0 {
		p.Fill = o.Fill.String()
	}
	return p
}
