package ui

import (
	"fmt"

	rl "github.com/gen2brain/raylib-go/raylib"
)

// HUDData holds all the data needed to render the status banners.
type HUDData struct {
	// Active is false until some input source has produced an observation
	Active       bool
	Mode         string
	Hands        int
	Source       string
	Clients      int
	Tick         int64
	FPS          int32
	Paused       bool
	ScreenWidth  int32
	ScreenHeight int32
}

// HUD renders the heads-up display.
type HUD struct {
	renderer *Renderer
}

// NewHUD creates a new HUD renderer.
func NewHUD() *HUD {
	return &HUD{renderer: NewRenderer()}
}

// Draw renders the startup banner, or the active banner once input arrives.
func (h *HUD) Draw(data HUDData) {
	if !data.Active {
		h.drawWaiting(data)
		return
	}
	h.drawActive(data)
}

func (h *HUD) drawWaiting(data HUDData) {
	const (
		title    = "INITIALIZING UNIVERSE"
		subtitle = "Awaiting input source..."
	)
	r := h.renderer
	titleW := rl.MeasureText(title, 32)
	subW := rl.MeasureText(subtitle, 16)
	w := titleW + 80
	hgt := int32(120)
	x := (data.ScreenWidth - w) / 2
	y := (data.ScreenHeight - hgt) / 2

	r.DrawPanel(x, y, w, hgt)
	rl.DrawText(title, (data.ScreenWidth-titleW)/2, y+30, 32, r.Theme.Accent)
	rl.DrawText(subtitle, (data.ScreenWidth-subW)/2, y+76, 16, r.Theme.LabelColor)
	if data.Source != "" {
		src := fmt.Sprintf("listening: %s", data.Source)
		rl.DrawText(src, (data.ScreenWidth-rl.MeasureText(src, 12))/2, y+hgt+8, 12, rl.Gray)
	}
}

func (h *HUD) drawActive(data HUDData) {
	r := h.renderer
	x, y := int32(30), int32(30)
	r.DrawPanel(x, y, 300, 96)

	rl.DrawText("SYSTEM ACTIVE", x+16, y+12, 20, r.Theme.Accent)
	rl.DrawText("ONE HAND: GRAVITY CONTROL", x+16, y+40, 12, r.Theme.LabelColor)
	rl.DrawText("FIST: IMPLOSION", x+16, y+56, 12, r.Theme.LabelColor)
	rl.DrawText("TWO HANDS: SPATIAL WARP", x+16, y+72, 12, r.Theme.LabelColor)

	status := fmt.Sprintf("Mode: %s | Hands: %d | Source: %s | FPS: %d", data.Mode, data.Hands, data.Source, data.FPS)
	if data.Clients > 0 {
		status += fmt.Sprintf(" | Trackers: %d", data.Clients)
	}
	rl.DrawText(status, 10, data.ScreenHeight-45, 14, rl.LightGray)
	if data.Paused {
		rl.DrawText("PAUSED", 10, data.ScreenHeight-65, 16, rl.Yellow)
	}
}

// DrawControls renders the key legend at the bottom of the screen.
func (h *HUD) DrawControls(screenHeight int32, controls string) {
	rl.DrawText(controls, 10, screenHeight-22, 12, rl.Gray)
}

// PerfPanelData holds frame timing for display.
type PerfPanelData struct {
	AvgTickUS int64
	MaxTickUS int64
	FPS       float64
	PhasePct  map[string]float64
	Phases    []string
}

// DrawPerf renders the frame timing panel at (x, y).
func (h *HUD) DrawPerf(x, y int32, data PerfPanelData) {
	r := h.renderer
	lines := int32(len(data.Phases) + 2)
	r.DrawPanel(x, y, 220, lines*r.Theme.LineHeight+r.Theme.Padding*2)

	ty := y + r.Theme.Padding
	ty = r.DrawLabelValue(x+r.Theme.Padding, ty, "tick", fmt.Sprintf("%dus (max %dus)", data.AvgTickUS, data.MaxTickUS))
	ty = r.DrawLabelValue(x+r.Theme.Padding, ty, "fps", fmt.Sprintf("%.0f", data.FPS))
	for _, phase := range data.Phases {
		ty = r.DrawLabelValue(x+r.Theme.Padding, ty, phase, fmt.Sprintf("%.1f%%", data.PhasePct[phase]))
	}
}
