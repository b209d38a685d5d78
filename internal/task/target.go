package task

import (
	"fmt"
	"math"
	"strconv"
	"strings"
)

// Vec3 is a block position on the integer lattice.
type Vec3 struct {
	X int `json:"x"`
	Y int `json:"y"`
	Z int `json:"z"`
}

func (v Vec3) ToArray() [3]int { return [3]int{v.X, v.Y, v.Z} }

func Manhattan(a, b Vec3) int {
	dx := a.X - b.X
	if dx < 0 {
		dx = -dx
	}
	dy := a.Y - b.Y
	if dy < 0 {
		dy = -dy
	}
	dz := a.Z - b.Z
	if dz < 0 {
		dz = -dz
	}
	return dx + dy + dz
}

// Target references either a location or a named/typed object. Point targets
// keep float coordinates as received; Point() truncates onto the lattice.
type Target struct {
	X *float64 `json:"x,omitempty"`
	Y *float64 `json:"y,omitempty"`
	Z *float64 `json:"z,omitempty"`

	Dimension string `json:"dimension,omitempty"`

	Name string `json:"name,omitempty"`
	Type string `json:"type,omitempty"`
	ID   string `json:"id,omitempty"`
}

func (t *Target) HasPoint() bool {
	return t != nil && t.X != nil && t.Y != nil && t.Z != nil
}

// Point returns the target as a lattice position.
func (t *Target) Point() (Vec3, bool) {
	if !t.HasPoint() {
		return Vec3{}, false
	}
	return Vec3{X: int(math.Floor(*t.X)), Y: int(math.Floor(*t.Y)), Z: int(math.Floor(*t.Z))}, true
}

// PointTarget builds a location target from lattice coordinates.
func PointTarget(x, y, z int) *Target {
	fx, fy, fz := float64(x), float64(y), float64(z)
	return &Target{X: &fx, Y: &fy, Z: &fz}
}

// DescribeTarget renders a target as a stable short string: "(x,y,z)",
// "(x,y,z) in dimension", the object's name, or "the designated location"
// when nothing usable is present. It never fails on malformed input.
func DescribeTarget(t *Target) string {
	if t == nil {
		return "the designated location"
	}
	if t.HasPoint() {
		s := fmt.Sprintf("(%s,%s,%s)", formatCoord(*t.X), formatCoord(*t.Y), formatCoord(*t.Z))
		if dim := strings.TrimSpace(t.Dimension); dim != "" {
			return s + " in " + dim
		}
		return s
	}
	if name := strings.TrimSpace(t.Name); name != "" {
		return name
	}
	if typ := strings.TrimSpace(t.Type); typ != "" {
		return typ
	}
	if id := strings.TrimSpace(t.ID); id != "" {
		return id
	}
	return "the designated location"
}

func formatCoord(v float64) string {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return "0"
	}
	if v == math.Trunc(v) {
		return strconv.Itoa(int(v))
	}
	return strconv.FormatFloat(v, 'g', -1, 64)
}
