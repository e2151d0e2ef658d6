package imagedit

import (
	"encoding/json"
	"testing"
)

func TestCreateObjectProperties(t *testing.T) {
	line := NewLine(0, 0, 10, 10)
	line.Stroke = Color{1, 0, 0, 1}
	line.StrokeWidth = 5

	g := NewGroup(line)
	g.Type = ObjectTypeArrow
	g.Name = "my_ArrowGroup"
	g.TypeOfGroup = ObjectTypeArrow
	g.UserLevel = 1
	g.LockScalingFlip = true

	p := CreateObjectProperties(g)
	if p.ID != g.ID || p.Type != "arrow" || p.Name != "my_ArrowGroup" {
		t.Errorf("identity = %+v", p)
	}
	if p.TypeOfGroup != "arrow" || p.UserLevel != 1 || !p.LockScalingFlip {
		t.Errorf("group attributes = %+v", p)
	}
	if p.Stroke != "" || p.Fill != "" {
		t.Errorf("transparent colors should be omitted, got stroke=%q fill=%q", p.Stroke, p.Fill)
	}

	lp := CreateObjectProperties(line)
	if lp.Stroke != "rgba(255,0,0,1)" || lp.StrokeWidth != 5 {
		t.Errorf("line style = %q %v", lp.Stroke, lp.StrokeWidth)
	}
}

func TestObjectPropertiesJSON(t *testing.T) {
	p := ObjectProperties{ID: "abc", Type: "arrow", ScaleX: 1, ScaleY: 1, LockScalingFlip: true}
	data, err := json.Marshal(p)
	if err != nil {
		t.Fatal(err)
	}
	var m map[string]any
	if err := json.Unmarshal(data, &m); err != nil {
		t.Fatal(err)
	}
	if m["id"] != "abc" || m["lockScalingFlip"] != true {
		t.Errorf("json = %s", data)
	}
	if _, ok := m["fill"]; ok {
		t.Errorf("empty fill should be omitted: %s", data)
	}
}
