package systems

import (
	"math"
	"math/rand"
	"testing"

	"github.com/pthm-cable/gargantua/config"
)

func TestGenerate_Count(t *testing.T) {
	field := NewFieldGenerator(config.Cfg()).Generate(rand.New(rand.NewSource(1)))

	if field.Len() != 15000 {
		t.Fatalf("expected 15000 particles, got %d", field.Len())
	}
	if len(field.Positions) != 45000 || len(field.Origins) != 45000 || len(field.Colors) != 45000 {
		t.Errorf("expected 3 floats per particle, got pos=%d orig=%d col=%d",
			len(field.Positions), len(field.Origins), len(field.Colors))
	}
}

func TestGenerate_DiskHaloSplit(t *testing.T) {
	gen := NewFieldGenerator(config.Cfg())
	for seed := int64(1); seed <= 5; seed++ {
		field := gen.Generate(rand.New(rand.NewSource(seed)))
		frac := float64(field.DiskCount()) / float64(field.Len())
		if math.Abs(frac-0.85) > 0.03 {
			t.Errorf("seed %d: disk fraction %.3f outside 0.85 ± 0.03", seed, frac)
		}
	}
}

func TestGenerate_PositionsStartAtOrigins(t *testing.T) {
	field := NewFieldGenerator(config.Cfg()).Generate(rand.New(rand.NewSource(7)))
	for i := range field.Positions {
		if field.Positions[i] != field.Origins[i] {
			t.Fatalf("position %d = %v, origin %v", i, field.Positions[i], field.Origins[i])
		}
	}
	if !field.Dirty() {
		t.Error("a fresh field should be marked for upload")
	}
}

func TestGenerate_Geometry(t *testing.T) {
	field := NewFieldGenerator(config.Cfg()).Generate(rand.New(rand.NewSource(3)))
	const eps = 1e-4

	for i := 0; i < field.Len(); i++ {
		x, y, z := field.Origin(i)
		if field.Disk[i] {
			r := math.Hypot(float64(x), float64(z))
			if r < 4-eps || r > 20+eps {
				t.Fatalf("disk particle %d at radius %v outside [4, 20]", i, r)
			}
			// Thickness shrinks from 0.5 at r=4 to 0 at r=20
			maxY := 0.5*(1-(r-4)/16)/2 + eps
			if math.Abs(float64(y)) > maxY {
				t.Fatalf("disk particle %d at radius %v has |y|=%v > %v", i, r, math.Abs(float64(y)), maxY)
			}
		} else {
			r := math.Sqrt(float64(x*x + y*y + z*z))
			if r < 4-eps || r > 9+eps {
				t.Fatalf("halo particle %d at radius %v outside [4, 9]", i, r)
			}
		}
	}
}

func TestGenerate_SizesInRange(t *testing.T) {
	field := NewFieldGenerator(config.Cfg()).Generate(rand.New(rand.NewSource(11)))
	for i, s := range field.Sizes {
		if s < 0.02 || s > 0.17 {
			t.Fatalf("size %d = %v outside [0.02, 0.17]", i, s)
		}
	}
}

func TestGenerate_ColorsBlendPalette(t *testing.T) {
	gen := NewFieldGenerator(config.Cfg())
	field := gen.Generate(rand.New(rand.NewSource(5)))

	for i := 0; i < field.Len(); i++ {
		x, _, z := field.Origin(i)
		base := gen.BaseColor(math.Hypot(float64(x), float64(z)))
		r, g, b := field.Color(i)

		matched := false
		for _, p := range Palette {
			want := base.Lerp(p, 0.3)
			if math.Abs(float64(r-want.R)) < 1e-5 && math.Abs(float64(g-want.G)) < 1e-5 && math.Abs(float64(b-want.B)) < 1e-5 {
				matched = true
				break
			}
		}
		if !matched {
			t.Fatalf("particle %d colour (%v,%v,%v) is not a 70/30 blend of its base colour", i, r, g, b)
		}
	}
}

func TestGenerate_Reproducible(t *testing.T) {
	gen := NewFieldGenerator(config.Cfg())
	a := gen.Generate(rand.New(rand.NewSource(99)))
	b := gen.Generate(rand.New(rand.NewSource(99)))

	for i := range a.Origins {
		if a.Origins[i] != b.Origins[i] || a.Colors[i] != b.Colors[i] {
			t.Fatalf("same seed produced different fields at %d", i)
		}
	}
	for i := range a.Sizes {
		if a.Sizes[i] != b.Sizes[i] {
			t.Fatalf("same seed produced different sizes at %d", i)
		}
	}
}

func TestBaseColorBands(t *testing.T) {
	gen := NewFieldGenerator(config.Cfg())
	cases := []struct {
		d    float64
		want RGB
	}{
		{0, ColorWhite},
		{5.99, ColorWhite},
		{6, ColorGold},
		{9.99, ColorGold},
		{10, ColorReddishOrange},
		{25, ColorReddishOrange},
	}
	for _, c := range cases {
		if got := gen.BaseColor(c.d); got != c.want {
			t.Errorf("BaseColor(%v) = %+v, want %+v", c.d, got, c.want)
		}
	}
}

func TestHexRGB(t *testing.T) {
	c := HexRGB(0xcc4400)
	if math.Abs(float64(c.R)-0.8) > 1e-6 || math.Abs(float64(c.G)-float64(0x44)/255) > 1e-6 || c.B != 0 {
		t.Errorf("unexpected conversion of #cc4400: %+v", c)
	}
	if HexRGB(0xffffff) != (RGB{1, 1, 1}) {
		t.Errorf("#ffffff should be (1,1,1), got %+v", HexRGB(0xffffff))
	}
}
