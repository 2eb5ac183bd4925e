package ui

import (
	"fmt"

	rl "github.com/gen2brain/raylib-go/raylib"
)

// InstrumentsData is the attractor readout shown by the instruments panel.
type InstrumentsData struct {
	Mode       string
	Hands      int
	TargetX    float32
	TargetY    float32
	Expansion  float32
	Attraction float32
	Imploding  bool
	Rotation   float32 // radians
	Particles  int
	Disk       int
}

func instruments(data any) *InstrumentsData {
	return data.(*InstrumentsData)
}

// InstrumentSections describes the instruments panel layout.
var InstrumentSections = []SectionDescriptor{
	{
		ID:    "gesture",
		Title: "Gesture",
		Fields: []FieldDescriptor{
			{ID: "mode", Label: "Mode", Widget: WidgetText, TextGetter: func(d any) string { return instruments(d).Mode }},
			{ID: "hands", Label: "Hands", Widget: WidgetText, TextGetter: func(d any) string { return fmt.Sprint(instruments(d).Hands) }},
		},
	},
	{
		ID:    "attractor",
		Title: "Attractor",
		Fields: []FieldDescriptor{
			{ID: "target_x", Label: "Target X", Widget: WidgetCenteredBar, Range: FieldRange{Min: -15, Max: 15},
				Getter: func(d any) float32 { return instruments(d).TargetX }},
			{ID: "target_y", Label: "Target Y", Widget: WidgetCenteredBar, Range: FieldRange{Min: -15, Max: 15},
				Getter: func(d any) float32 { return instruments(d).TargetY }},
			{ID: "expansion", Label: "Expansion", Widget: WidgetBar, Range: FieldRange{Min: 0, Max: 5},
				Getter: func(d any) float32 { return instruments(d).Expansion }},
			{ID: "attraction", Label: "Strength", Widget: WidgetBar, Range: FieldRange{Min: 0, Max: 20},
				Getter: func(d any) float32 { return instruments(d).Attraction }},
			{ID: "imploding", Label: "Implosion", Widget: WidgetText, Visible: func(d any) bool { return instruments(d).Imploding },
				TextGetter: func(any) string { return "ENGAGED" }},
		},
	},
	{
		ID:    "field",
		Title: "Field",
		Fields: []FieldDescriptor{
			{ID: "particles", Label: "Particles", Widget: WidgetText,
				TextGetter: func(d any) string {
					in := instruments(d)
					return fmt.Sprintf("%d (%d disk)", in.Particles, in.Disk)
				}},
			{ID: "rotation", Label: "Rotation", Widget: WidgetText, Format: "%.2f rad",
				Getter: func(d any) float32 { return instruments(d).Rotation }},
		},
	},
}

// InstrumentsPanel renders the attractor readout.
type InstrumentsPanel struct {
	renderer *Renderer
	x, y     int32
	width    int32
}

// NewInstrumentsPanel creates an instruments panel anchored at (x, y).
func NewInstrumentsPanel(x, y, width int32) *InstrumentsPanel {
	return &InstrumentsPanel{renderer: NewRenderer(), x: x, y: y, width: width}
}

// SetPosition moves the panel.
func (p *InstrumentsPanel) SetPosition(x, y int32) {
	p.x, p.y = x, y
}

// Draw renders the panel.
func (p *InstrumentsPanel) Draw(data *InstrumentsData) {
	r := p.renderer
	padding := r.Theme.Padding

	height := padding * 2
	for _, sd := range InstrumentSections {
		height += r.SectionHeight(sd, data)
	}
	r.DrawPanel(p.x, p.y, p.width, height)

	y := p.y + padding
	for _, sd := range InstrumentSections {
		y = r.DrawSection(p.x+padding, y, sd, data, p.width-padding*2)
	}
	rl.DrawLine(p.x, p.y, p.x+p.width, p.y, r.Theme.Accent)
}
