// Package ui draws the on-screen overlays: status banners, the attractor
// readout, overlay toggles and the hand simulator panel. Panels are described
// by field descriptors so the readout can follow the attractor state without
// hand-written layouts.
package ui

import rl "github.com/gen2brain/raylib-go/raylib"

// WidgetType specifies how a field should be rendered.
type WidgetType int

const (
	WidgetText        WidgetType = iota // Plain text with format string
	WidgetBar                           // Bar over Range
	WidgetCenteredBar                   // Bar filled from the middle of Range
	WidgetSection                       // Section header
	WidgetSpacer                        // Vertical spacing
)

// FieldRange defines the value range for bar widgets.
type FieldRange struct {
	Min float32
	Max float32
}

// FieldDescriptor defines how to display a single piece of data.
type FieldDescriptor struct {
	ID         string            // Unique identifier for the field
	Label      string            // Display label
	Widget     WidgetType        // How to render
	Format     string            // Printf format for text (e.g., "%.2f")
	Range      FieldRange        // Value range for bars
	Visible    func(any) bool    // Optional visibility check (nil = always visible)
	Getter     func(any) float32 // Value extractor (for numeric fields)
	TextGetter func(any) string  // Value extractor (for text fields)
}

// SectionDescriptor defines a group of fields with a header.
type SectionDescriptor struct {
	ID      string
	Title   string
	Fields  []FieldDescriptor
	Visible func(any) bool
}

// Theme holds UI styling constants.
type Theme struct {
	PanelBg         rl.Color
	PanelBorder     rl.Color
	SectionHeader   rl.Color
	LabelColor      rl.Color
	ValueColor      rl.Color
	BarBg           rl.Color
	BarFill         rl.Color
	BarFillNegative rl.Color
	BarFillPositive rl.Color
	Accent          rl.Color
	Padding         int32
	LineHeight      int32
	LabelWidth      int32
	BarHeight       int32
	FontSize        int32
	HeaderFontSize  int32
}

// DefaultTheme returns the default UI theme: dark panels with warm accents
// matching the disk palette.
func DefaultTheme() Theme {
	return Theme{
		PanelBg:         rl.Color{R: 8, G: 8, B: 12, A: 200},
		PanelBorder:     rl.Color{R: 90, G: 60, B: 20, A: 255},
		SectionHeader:   rl.Color{R: 255, G: 170, B: 0, A: 255},
		LabelColor:      rl.LightGray,
		ValueColor:      rl.White,
		BarBg:           rl.Color{R: 40, G: 40, B: 40, A: 255},
		BarFill:         rl.Color{R: 255, G: 140, B: 40, A: 255},
		BarFillNegative: rl.Color{R: 120, G: 160, B: 255, A: 255},
		BarFillPositive: rl.Color{R: 255, G: 140, B: 40, A: 255},
		Accent:          rl.Color{R: 255, G: 170, B: 0, A: 255},
		Padding:         10,
		LineHeight:      16,
		LabelWidth:      80,
		BarHeight:       10,
		FontSize:        12,
		HeaderFontSize:  14,
	}
}
