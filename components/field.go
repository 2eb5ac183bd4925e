package components

// ParticleField holds the particle population as parallel buffers laid out
// for direct upload to the renderer.
//
// Origins, Colors, Sizes and Disk are written once by the generator.
// Positions is the only buffer that changes after construction and is
// owned by the simulation loop.
type ParticleField struct {
	Positions []float32 // x,y,z per particle
	Origins   []float32 // x,y,z per particle
	Colors    []float32 // r,g,b per particle in [0,1]
	Sizes     []float32 // one per particle
	Disk      []bool    // true for disk particles, false for halo

	dirty bool
}

// NewParticleField allocates buffers for n particles.
func NewParticleField(n int) *ParticleField {
	return &ParticleField{
		Positions: make([]float32, n*3),
		Origins:   make([]float32, n*3),
		Colors:    make([]float32, n*3),
		Sizes:     make([]float32, n),
		Disk:      make([]bool, n),
		dirty:     true,
	}
}

// Len returns the particle count.
func (f *ParticleField) Len() int {
	return len(f.Sizes)
}

// Position returns the current position of particle i.
func (f *ParticleField) Position(i int) (x, y, z float32) {
	return f.Positions[i*3], f.Positions[i*3+1], f.Positions[i*3+2]
}

// Origin returns the rest position of particle i.
func (f *ParticleField) Origin(i int) (x, y, z float32) {
	return f.Origins[i*3], f.Origins[i*3+1], f.Origins[i*3+2]
}

// Color returns the colour of particle i.
func (f *ParticleField) Color(i int) (r, g, b float32) {
	return f.Colors[i*3], f.Colors[i*3+1], f.Colors[i*3+2]
}

// DiskCount returns how many particles belong to the disk population.
func (f *ParticleField) DiskCount() int {
	n := 0
	for _, d := range f.Disk {
		if d {
			n++
		}
	}
	return n
}

// MarkDirty flags the position buffer for re-upload.
func (f *ParticleField) MarkDirty() {
	f.dirty = true
}

// Dirty reports whether positions changed since the last ClearDirty.
func (f *ParticleField) Dirty() bool {
	return f.dirty
}

// ClearDirty is called by the renderer after consuming the positions.
func (f *ParticleField) ClearDirty() {
	f.dirty = false
}
