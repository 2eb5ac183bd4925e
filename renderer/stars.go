package renderer

import (
	rl "github.com/gen2brain/raylib-go/raylib"

	"github.com/pthm-cable/gargantua/systems"
)

// StarRenderer draws the static background starfield.
type StarRenderer struct {
	points []rl.Vector3
	colors []rl.Color
}

// NewStarRenderer prepares stars for drawing.
func NewStarRenderer(stars []systems.Star) *StarRenderer {
	r := &StarRenderer{
		points: make([]rl.Vector3, len(stars)),
		colors: make([]rl.Color, len(stars)),
	}
	for i, s := range stars {
		r.points[i] = vec3(s.Pos)
		r.colors[i] = toColor(s.Brightness, s.Brightness, s.Brightness, 1)
	}
	return r
}

// Draw renders the stars. Must be called inside BeginMode3D.
func (r *StarRenderer) Draw() {
	for i, p := range r.points {
		rl.DrawPoint3D(p, r.colors[i])
	}
}
