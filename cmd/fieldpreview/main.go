// Particle field preview tool - interactive look at the generated disk and
// halo with sliders for the layout parameters.
//
// Usage: go run ./cmd/fieldpreview
package main

import (
	"fmt"
	"image/color"
	"math"
	"math/rand"
	"sort"

	gui "github.com/gen2brain/raylib-go/raygui"
	rl "github.com/gen2brain/raylib-go/raylib"
	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat"

	"github.com/pthm-cable/gargantua/components"
	"github.com/pthm-cable/gargantua/config"
	"github.com/pthm-cable/gargantua/systems"
)

const (
	windowWidth  = 1200
	windowHeight = 720
	previewSize  = 400
	gridSize     = 256
	extent       = 22.0 // world units from centre to preview edge
	histBins     = 24
	panelX       = float32(previewSize*2 + 30)
	panelWidth   = windowWidth - previewSize*2 - 40
)

// FieldParams holds the tunable generation parameters.
type FieldParams struct {
	Seed          float32
	HaloFraction  float32
	DiskThickness float32
	ColorBlend    float32
}

func defaultParams(cfg *config.Config) FieldParams {
	return FieldParams{
		Seed:          1,
		HaloFraction:  float32(cfg.Field.HaloFraction),
		DiskThickness: float32(cfg.Field.DiskThickness),
		ColorBlend:    float32(cfg.Field.ColorBlend),
	}
}

func main() {
	config.MustInit("")
	base := config.Cfg()

	rl.InitWindow(windowWidth, windowHeight, "Particle Field Preview")
	defer rl.CloseWindow()
	rl.SetTargetFPS(30)

	top := newProjection()
	side := newProjection()
	defer top.unload()
	defer side.unload()

	params := defaultParams(base)
	var field *components.ParticleField
	var hist []float64
	needsRegen := true

	for !rl.WindowShouldClose() {
		if needsRegen {
			field = generate(base, params)
			top.render(field, func(x, _, z float32) (float32, float32) { return x, z })
			side.render(field, func(x, y, _ float32) (float32, float32) { return x, -y * 4 })
			hist = radialHistogram(field)
			needsRegen = false
		}

		rl.BeginDrawing()
		rl.ClearBackground(rl.Black)

		top.draw(10, 10, "Top (x, z)")
		side.draw(previewSize+20, 10, "Side (x, y x4)")
		drawHistogram(10, previewSize+50, previewSize*2+10, 180, hist)

		disk := field.DiskCount()
		rl.DrawText(fmt.Sprintf("Particles: %d  Disk: %d  Halo: %d  (%.1f%% halo)",
			field.Len(), disk, field.Len()-disk, 100*float64(field.Len()-disk)/float64(field.Len())),
			15, windowHeight-30, 16, rl.LightGray)

		// Control panel
		y := float32(10)
		rl.DrawText("Field Parameters", int32(panelX), int32(y), 20, rl.RayWhite)
		y += 35

		y, needsRegen = slider(y, "Seed", &params.Seed, 1, 1000, "%.0f", needsRegen)
		y, needsRegen = slider(y, "Halo fraction", &params.HaloFraction, 0, 1, "%.2f", needsRegen)
		y, needsRegen = slider(y, "Disk thickness", &params.DiskThickness, 0, 3, "%.2f", needsRegen)
		y, needsRegen = slider(y, "Colour blend", &params.ColorBlend, 0, 1, "%.2f", needsRegen)

		y += 10
		if gui.Button(rl.Rectangle{X: panelX, Y: y, Width: 120, Height: 30}, "Random Seed") {
			params.Seed = float32(1 + rand.Intn(1000))
			needsRegen = true
		}
		if gui.Button(rl.Rectangle{X: panelX + 130, Y: y, Width: 120, Height: 30}, "Reset All") {
			params = defaultParams(base)
			needsRegen = true
		}

		rl.EndDrawing()
	}
}

// slider draws a labelled slider and reports whether the value changed.
func slider(y float32, label string, value *float32, lo, hi float32, format string, dirty bool) (float32, bool) {
	rl.DrawText(label, int32(panelX), int32(y), 14, rl.Gray)
	y += 18
	v := gui.SliderBar(
		rl.Rectangle{X: panelX, Y: y, Width: float32(panelWidth - 80), Height: 20},
		fmt.Sprintf(format, lo), fmt.Sprintf(format, hi),
		*value, lo, hi,
	)
	rl.DrawText(fmt.Sprintf(format, *value), int32(panelX+float32(panelWidth-70)), int32(y+2), 16, rl.RayWhite)
	if label == "Seed" {
		v = float32(math.Round(float64(v)))
	}
	if v != *value {
		*value = v
		dirty = true
	}
	return y + 35, dirty
}

func generate(base *config.Config, params FieldParams) *components.ParticleField {
	cfg := *base
	cfg.Field.HaloFraction = float64(params.HaloFraction)
	cfg.Field.DiskThickness = float64(params.DiskThickness)
	cfg.Field.ColorBlend = float64(params.ColorBlend)
	rng := rand.New(rand.NewSource(int64(params.Seed)))
	return systems.NewFieldGenerator(&cfg).Generate(rng)
}

// radialHistogram bins planar distances from the centre.
func radialHistogram(field *components.ParticleField) []float64 {
	dists := make([]float64, field.Len())
	for i := range dists {
		x, _, z := field.Origin(i)
		dists[i] = math.Hypot(float64(x), float64(z))
	}
	sort.Float64s(dists)

	dividers := make([]float64, histBins+1)
	floats.Span(dividers, 0, extent+1e-9)
	return stat.Histogram(nil, dividers, dists, nil)
}

func drawHistogram(x, y, w, h int32, counts []float64) {
	rl.DrawRectangleLines(x, y, w, h, rl.DarkGray)
	rl.DrawText("Planar radius distribution", x+6, y+4, 12, rl.Gray)
	peak := floats.Max(counts)
	if peak == 0 {
		return
	}
	barW := w / int32(len(counts))
	for i, c := range counts {
		bh := int32(float64(h-24) * c / peak)
		rl.DrawRectangle(x+int32(i)*barW+1, y+h-bh, barW-2, bh, rl.Orange)
	}
}

// projection accumulates particle colours into a texture.
type projection struct {
	accum   []float32
	pixels  []color.RGBA
	texture rl.Texture2D
}

func newProjection() *projection {
	img := rl.GenImageColor(gridSize, gridSize, rl.Black)
	tex := rl.LoadTextureFromImage(img)
	rl.UnloadImage(img)
	return &projection{
		accum:   make([]float32, gridSize*gridSize*3),
		pixels:  make([]color.RGBA, gridSize*gridSize),
		texture: tex,
	}
}

func (p *projection) render(field *components.ParticleField, project func(x, y, z float32) (float32, float32)) {
	clear(p.accum)
	for i := 0; i < field.Len(); i++ {
		u, v := project(field.Origin(i))
		px := int((u/extent + 1) * 0.5 * gridSize)
		py := int((v/extent + 1) * 0.5 * gridSize)
		if px < 0 || px >= gridSize || py < 0 || py >= gridSize {
			continue
		}
		r, g, b := field.Color(i)
		idx := (py*gridSize + px) * 3
		p.accum[idx] += r * 0.25
		p.accum[idx+1] += g * 0.25
		p.accum[idx+2] += b * 0.25
	}
	for i := range p.pixels {
		p.pixels[i] = color.RGBA{
			R: clampByte(p.accum[i*3]),
			G: clampByte(p.accum[i*3+1]),
			B: clampByte(p.accum[i*3+2]),
			A: 255,
		}
	}
	rl.UpdateTexture(p.texture, p.pixels)
}

func (p *projection) draw(x, y float32, label string) {
	rl.DrawTexturePro(
		p.texture,
		rl.Rectangle{X: 0, Y: 0, Width: gridSize, Height: gridSize},
		rl.Rectangle{X: x, Y: y, Width: previewSize, Height: previewSize},
		rl.Vector2{X: 0, Y: 0},
		0,
		rl.White,
	)
	rl.DrawRectangleLines(int32(x), int32(y), previewSize, previewSize, rl.DarkGray)
	rl.DrawText(label, int32(x)+6, int32(y)+previewSize+6, 14, rl.Gray)
}

func (p *projection) unload() {
	rl.UnloadTexture(p.texture)
}

func clampByte(v float32) uint8 {
	if v >= 1 {
		return 255
	}
	if v <= 0 {
		return 0
	}
	return uint8(v * 255)
}
