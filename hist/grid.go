package hist

// Grid3D is a 3D binned container with an independent value and
// uncertainty per cell. Cells start at zero.
type Grid3D struct {
	x, y, z Axis
	vals    []float64
	errs    []float64
}

// NewGrid3D returns a zero-filled grid spanned by the three axes.
func NewGrid3D(x, y, z Axis) *Grid3D {
	n := x.Len() * y.Len() * z.Len()
	return &Grid3D{
		x: x, y: y, z: z,
		vals: make([]float64, n),
		errs: make([]float64, n),
	}
}

func (g *Grid3D) XAxis() Axis { return g.x }
func (g *Grid3D) YAxis() Axis { return g.y }
func (g *Grid3D) ZAxis() Axis { return g.z }

// Dims returns the number of bins along x, y and z.
func (g *Grid3D) Dims() (nx, ny, nz int) {
	return g.x.Len(), g.y.Len(), g.z.Len()
}

func (g *Grid3D) index(ix, iy, iz int) int {
	if ix < 0 || ix >= g.x.Len() || iy < 0 || iy >= g.y.Len() || iz < 0 || iz >= g.z.Len() {
		panic("hist: grid index out of range")
	}
	return (ix*g.y.Len()+iy)*g.z.Len() + iz
}

// At returns the value and uncertainty of cell (ix, iy, iz).
func (g *Grid3D) At(ix, iy, iz int) (v, e float64) {
	i := g.index(ix, iy, iz)
	return g.vals[i], g.errs[i]
}

// Set stores value v and uncertainty e in cell (ix, iy, iz).
func (g *Grid3D) Set(ix, iy, iz int, v, e float64) {
	i := g.index(ix, iy, iz)
	g.vals[i], g.errs[i] = v, e
}

// FindBin returns the cell holding the point (x, y, z). ok is false when
// the point lies outside any of the axes.
func (g *Grid3D) FindBin(x, y, z float64) (ix, iy, iz int, ok bool) {
	ix, iy, iz = g.x.FindBin(x), g.y.FindBin(y), g.z.FindBin(z)
	ok = ix >= 0 && iy >= 0 && iz >= 0
	return ix, iy, iz, ok
}
