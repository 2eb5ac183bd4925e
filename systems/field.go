package systems

import (
	"math"
	"math/rand"

	"github.com/pthm-cable/gargantua/components"
	"github.com/pthm-cable/gargantua/config"
)

// RGB is a colour with components in [0,1].
type RGB struct {
	R, G, B float32
}

// HexRGB converts a 0xRRGGBB value to RGB.
func HexRGB(hex uint32) RGB {
	return RGB{
		R: float32((hex>>16)&0xff) / 255,
		G: float32((hex>>8)&0xff) / 255,
		B: float32(hex&0xff) / 255,
	}
}

// Lerp blends c toward o by t.
func (c RGB) Lerp(o RGB, t float32) RGB {
	return RGB{
		R: c.R + (o.R-c.R)*t,
		G: c.G + (o.G-c.G)*t,
		B: c.B + (o.B-c.B)*t,
	}
}

// Field colours.
var (
	ColorDeepOrange    = HexRGB(0xffaa33)
	ColorGold          = HexRGB(0xffdd88)
	ColorWhite         = HexRGB(0xffffff)
	ColorReddishOrange = HexRGB(0xcc4400)
)

// Palette is the set of tints blended into every particle.
var Palette = [4]RGB{ColorDeepOrange, ColorGold, ColorWhite, ColorReddishOrange}

// FieldGenerator builds the initial particle layout.
type FieldGenerator struct {
	count         int
	haloFraction  float64
	diskInner     float64
	diskWidth     float64
	diskThickness float64
	haloInner     float64
	haloWidth     float64
	sizeMin       float64
	sizeRange     float64
	coreRadius    float64
	goldRadius    float64
	colorBlend    float32
}

// NewFieldGenerator creates a generator from config.
func NewFieldGenerator(cfg *config.Config) *FieldGenerator {
	f := cfg.Field
	return &FieldGenerator{
		count:         f.Count,
		haloFraction:  f.HaloFraction,
		diskInner:     f.DiskInner,
		diskWidth:     f.DiskWidth,
		diskThickness: f.DiskThickness,
		haloInner:     f.HaloInner,
		haloWidth:     f.HaloWidth,
		sizeMin:       f.SizeMin,
		sizeRange:     f.SizeRange,
		coreRadius:    f.CoreRadius,
		goldRadius:    f.GoldRadius,
		colorBlend:    float32(f.ColorBlend),
	}
}

// Generate lays out a fresh field. All randomness comes from rng, so the
// same seed always yields the same field.
func (g *FieldGenerator) Generate(rng *rand.Rand) *components.ParticleField {
	field := components.NewParticleField(g.count)

	for i := 0; i < g.count; i++ {
		isDisk := rng.Float64() > g.haloFraction

		var x, y, z float64
		if isDisk {
			// Flattened annulus, thinner toward the outer edge
			rBase := rng.Float64()
			r := g.diskInner + rBase*g.diskWidth
			theta := rng.Float64() * 2 * math.Pi
			thickness := g.diskThickness * (1 - rBase)

			x = r * math.Cos(theta)
			y = (rng.Float64() - 0.5) * thickness
			z = r * math.Sin(theta)
		} else {
			r := g.haloInner + rng.Float64()*g.haloWidth
			theta := rng.Float64() * 2 * math.Pi
			phi := rng.Float64() * 2 * math.Pi

			x = r * math.Sin(phi) * math.Cos(theta)
			y = r * math.Sin(phi) * math.Sin(theta)
			z = r * math.Cos(phi)
		}

		ix := i * 3
		field.Origins[ix] = float32(x)
		field.Origins[ix+1] = float32(y)
		field.Origins[ix+2] = float32(z)
		field.Disk[i] = isDisk

		c := g.BaseColor(math.Sqrt(x*x+z*z)).Lerp(Palette[rng.Intn(len(Palette))], g.colorBlend)
		field.Colors[ix] = c.R
		field.Colors[ix+1] = c.G
		field.Colors[ix+2] = c.B

		field.Sizes[i] = float32(g.sizeMin + rng.Float64()*g.sizeRange)
	}

	copy(field.Positions, field.Origins)
	return field
}

// BaseColor returns the temperature colour for a planar distance from the
// centre: hot white core, gold middle, red outer edge.
func (g *FieldGenerator) BaseColor(d float64) RGB {
	switch {
	case d < g.coreRadius:
		return ColorWhite
	case d < g.goldRadius:
		return ColorGold
	default:
		return ColorReddishOrange
	}
}
