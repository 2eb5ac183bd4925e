package ui

import (
	"fmt"

	gui "github.com/gen2brain/raylib-go/raygui"
	rl "github.com/gen2brain/raylib-go/raylib"

	"github.com/pthm-cable/gargantua/input"
)

// ControlsPanel lists the overlays and their key bindings.
type ControlsPanel struct {
	renderer *Renderer
	x, y     int32
	width    int32
}

// NewControlsPanel creates a controls panel anchored at (x, y).
func NewControlsPanel(x, y, width int32) *ControlsPanel {
	return &ControlsPanel{renderer: NewRenderer(), x: x, y: y, width: width}
}

// Draw renders one toggle line per overlay and returns the bottom edge.
func (c *ControlsPanel) Draw(overlays *OverlayRegistry) int32 {
	r := c.renderer
	padding := r.Theme.Padding
	lineHeight := r.Theme.LineHeight
	all := overlays.All()

	height := int32(len(all)+1)*lineHeight + padding*2 + 4
	r.DrawPanel(c.x, c.y, c.width, height)

	y := c.y + padding
	rl.DrawText("Overlays", c.x+padding, y, r.Theme.HeaderFontSize, r.Theme.SectionHeader)
	y += lineHeight + 4

	for _, desc := range all {
		c.drawToggle(c.x+padding, y, desc, overlays.IsEnabled(desc.ID), c.width-padding*2)
		y += lineHeight
	}
	return c.y + height
}

func (c *ControlsPanel) drawToggle(x, y int32, desc OverlayDescriptor, enabled bool, width int32) {
	r := c.renderer

	statusColor := rl.Color{R: 60, G: 60, B: 60, A: 255}
	nameColor := r.Theme.LabelColor
	if enabled {
		statusColor = r.Theme.Accent
		nameColor = rl.White
	}
	rl.DrawRectangle(x, y+2, 8, 8, statusColor)
	rl.DrawText(desc.Name, x+14, y, r.Theme.FontSize, nameColor)

	if desc.KeyLabel != "" {
		keyText := fmt.Sprintf("[%s]", desc.KeyLabel)
		keyWidth := rl.MeasureText(keyText, r.Theme.FontSize)
		rl.DrawText(keyText, x+width-keyWidth, y, r.Theme.FontSize, rl.Gray)
	}
}

// HandPanel is the raygui panel controlling the mouse hand simulator.
type HandPanel struct {
	x, y  float32
	width float32
}

// NewHandPanel creates a hand simulator panel anchored at (x, y).
func NewHandPanel(x, y, width int32) *HandPanel {
	return &HandPanel{x: float32(x), y: float32(y), width: float32(width)}
}

// Height returns the panel height.
func (p *HandPanel) Height() float32 {
	return 130
}

// Contains reports whether a screen point lies on the panel, so clicks on
// its widgets are not read as a fist.
func (p *HandPanel) Contains(sx, sy float32) bool {
	return rl.CheckCollisionPointRec(rl.Vector2{X: sx, Y: sy}, p.bounds())
}

func (p *HandPanel) bounds() rl.Rectangle {
	return rl.Rectangle{X: p.x, Y: p.y, Width: p.width, Height: p.Height()}
}

// Draw renders the panel and applies any edits to m.
func (p *HandPanel) Draw(m *input.MouseHands) {
	gui.GroupBox(p.bounds(), "Hand Simulator")

	x := p.x + 12
	y := p.y + 16
	m.Enabled = gui.CheckBox(rl.Rectangle{X: x, Y: y, Width: 16, Height: 16}, "Mouse drives hand", m.Enabled)
	y += 26
	m.Second = gui.CheckBox(rl.Rectangle{X: x, Y: y, Width: 16, Height: 16}, "Second hand [2]", m.Second)
	y += 30

	rl.DrawText("Open hand spread", int32(x), int32(y), 12, rl.LightGray)
	y += 16
	m.Spread = gui.SliderBar(
		rl.Rectangle{X: x + 30, Y: y, Width: p.width - 100, Height: 14},
		"0.0", fmt.Sprintf("%.2f", m.Spread),
		m.Spread, 0, 0.3,
	)
	y += 22
	rl.DrawText("Hold left button to make a fist", int32(x), int32(y), 10, rl.Gray)
}
