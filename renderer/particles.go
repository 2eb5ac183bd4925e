package renderer

import (
	"image/color"

	rl "github.com/gen2brain/raylib-go/raylib"

	"github.com/pthm-cable/gargantua/camera"
	"github.com/pthm-cable/gargantua/components"
	"github.com/pthm-cable/gargantua/systems"
)

const glowTextureSize = 64

// ParticleRenderer draws the field as additive, camera-facing glow sprites.
type ParticleRenderer struct {
	cam     *camera.Camera
	screenH float32

	glow        rl.Texture2D
	initialized bool

	// World-space positions after rotation, rebuilt when the field changes
	world    []rl.Vector3
	tints    []rl.Color
	sizes    []float32
	rotation float32
}

// NewParticleRenderer creates a renderer for a viewport screenH pixels tall.
func NewParticleRenderer(cam *camera.Camera, screenH int32) *ParticleRenderer {
	return &ParticleRenderer{cam: cam, screenH: float32(screenH)}
}

// Init bakes the glow sprite (must be called after the raylib window is created).
func (r *ParticleRenderer) Init() {
	if r.initialized {
		return
	}

	img := rl.GenImageColor(glowTextureSize, glowTextureSize, rl.Blank)
	r.glow = rl.LoadTextureFromImage(img)
	rl.UnloadImage(img)

	alpha := systems.GlowSprite(glowTextureSize)
	pixels := make([]color.RGBA, len(alpha))
	for i, a := range alpha {
		pixels[i] = color.RGBA{R: 255, G: 255, B: 255, A: uint8(a*255 + 0.5)}
	}
	rl.UpdateTexture(r.glow, pixels)
	rl.SetTextureFilter(r.glow, rl.FilterBilinear)

	r.initialized = true
}

// Resize updates the viewport height used for sprite sizing.
func (r *ParticleRenderer) Resize(screenH int32) {
	r.screenH = float32(screenH)
	r.sizes = nil
}

// sync rebuilds the cached draw data when positions changed or the field
// rotated, then clears the field's dirty flag.
func (r *ParticleRenderer) sync(field *components.ParticleField, rotation float32) {
	n := field.Len()
	if len(r.tints) != n {
		r.tints = make([]rl.Color, n)
		for i := range r.tints {
			cr, cg, cb := field.Color(i)
			r.tints[i] = toColor(cr, cg, cb, 1)
		}
		r.world = make([]rl.Vector3, n)
		r.sizes = nil
		field.MarkDirty()
	}
	if r.sizes == nil {
		r.sizes = make([]float32, n)
		for i, s := range field.Sizes {
			r.sizes[i] = float32(r.cam.BillboardSize(float64(s), float64(r.screenH)))
		}
	}
	if !field.Dirty() && rotation == r.rotation {
		return
	}

	for i := 0; i < n; i++ {
		x, y, z := field.Position(i)
		rx, rz := camera.RotateY(x, z, rotation)
		r.world[i] = rl.Vector3{X: rx, Y: y, Z: rz}
	}
	r.rotation = rotation
	field.ClearDirty()
}

// Draw renders the field rotated by rotation radians about the vertical
// axis. Must be called inside BeginMode3D.
func (r *ParticleRenderer) Draw(view rl.Camera3D, field *components.ParticleField, rotation float32) {
	if !r.initialized {
		r.Init()
	}
	r.sync(field, rotation)

	// Additive sprites are order independent; depth writes would clip them
	rl.DrawRenderBatchActive()
	rl.DisableDepthMask()
	rl.BeginBlendMode(rl.BlendAdditive)

	for i := range r.world {
		rl.DrawBillboard(view, r.glow, r.world[i], r.sizes[i], r.tints[i])
	}

	rl.EndBlendMode()
	rl.DrawRenderBatchActive()
	rl.EnableDepthMask()
}

// Unload frees the glow texture.
func (r *ParticleRenderer) Unload() {
	if r.initialized {
		rl.UnloadTexture(r.glow)
		r.initialized = false
	}
}
