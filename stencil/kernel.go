package stencil

import (
	"fmt"

	prk "github.com/homerdin/PRK"
)

// kernelBody sweeps rows [i0, i1) and columns [j0, j1) of an n x n grid,
// accumulating the stencil into the destination. Bodies are only ever
// handed sub-ranges of the grid interior, so every neighbor access stays
// in bounds.
type kernelBody func(n int, in, out []float64, i0, i1, j0, j1 int)

// Specialized fast paths, keyed by radius. Anything not listed here goes
// through the table-driven body.
var (
	starKernels = map[int]kernelBody{
		1: star1,
		2: star2,
		3: star3,
		4: star4,
		5: star5,
	}
	gridKernels = map[int]kernelBody{
		1: grid1,
		2: grid2,
		3: grid3,
		4: grid4,
		5: grid5,
	}
)

// Op is the stencil operator for one run: a kernel body bound to a grid
// dimension, radius, shape, and blocking factor. Op is immutable after
// construction and safe for concurrent Apply calls on distinct buffers.
type Op struct {
	n      int
	radius int
	tile   int
	shape  Shape
	body   kernelBody
	table  *WeightTable
}

// NewOp validates the configuration and selects the kernel: the
// radius-specialized body where one exists, otherwise the generic
// table-driven body. The footprint must fit the grid (2r+1 <= n) and the
// tile size must lie in [1, n].
func NewOp(n, radius, tile int, shape Shape) (*Op, error) {
	if n < 1 {
		return nil, prk.NewParameterError("NewOp",
			fmt.Sprintf("grid dimension must be positive, got %d", n))
	}
	if radius < 1 || 2*radius+1 > n {
		return nil, prk.NewParameterError("NewOp",
			fmt.Sprintf("stencil radius %d negative or too large for grid dimension %d", radius, n))
	}
	if tile < 1 || tile > n {
		return nil, prk.NewParameterError("NewOp",
			fmt.Sprintf("tile size %d outside [1, %d]", tile, n))
	}

	table, err := NewWeightTable(radius, shape)
	if err != nil {
		return nil, err
	}

	op := &Op{
		n:      n,
		radius: radius,
		tile:   tile,
		shape:  shape,
		table:  table,
	}

	var specialized map[int]kernelBody
	switch shape {
	case Star:
		specialized = starKernels
	case Grid:
		specialized = gridKernels
	default:
		// NewWeightTable already rejects unknown shapes; this guards the
		// dispatch if a shape ever ships without a kernel family.
		return nil, prk.NewUnsupportedError("NewOp",
			fmt.Sprintf("no kernel family for shape %v", shape))
	}

	if body, ok := specialized[radius]; ok {
		op.body = body
	} else {
		op.body = genericBody(table)
	}

	return op, nil
}

// Radius returns the stencil radius
func (op *Op) Radius() int { return op.radius }

// Shape returns the stencil shape
func (op *Op) Shape() Shape { return op.shape }

// Weights returns the coefficient table the operator was built from.
// For specialized radii the body inlines the same values.
func (op *Op) Weights() *WeightTable { return op.table }

// Apply accumulates one stencil application into the destination:
// dst[i,j] += sum_w W(di,dj) * src[i+di,j+dj] over the grid interior
// [r, n-r) x [r, n-r). The interior is decomposed into tile x tile blocks
// and one block is launched per tile; tiles are disjoint, so each
// destination cell has exactly one writer. Apply synchronizes before
// returning, which is the barrier the iteration protocol needs before
// the source grid may be touched again.
func (op *Op) Apply(src, dst prk.DevicePtr) error {
	in := src.Float64()
	out := dst.Float64()

	lo := op.radius
	hi := op.n - op.radius
	span := hi - lo
	if span <= 0 {
		return nil
	}

	tiles := (span + op.tile - 1) / op.tile
	grid := prk.Dim3{X: tiles, Y: tiles, Z: 1}
	block := prk.Dim3{X: 1, Y: 1, Z: 1}

	n, tile, body := op.n, op.tile, op.body
	kernel := prk.KernelFunc(func(tid prk.ThreadID, args ...interface{}) {
		it := lo + tid.BlockIdx.X*tile
		jt := lo + tid.BlockIdx.Y*tile
		i1 := min(hi, it+tile)
		j1 := min(hi, jt+tile)
		body(n, in, out, it, i1, jt, j1)
	})

	if err := prk.LaunchFunc(kernel, grid, block); err != nil {
		return prk.NewExecutionError("Apply", "stencil launch failed", err)
	}
	return prk.Synchronize()
}

// genericBody builds the table-driven fallback: a straight sweep over the
// nonzero offsets for every point. Slower than the specialized bodies but
// correct for any radius, and the reference the fast paths are tested
// against.
func genericBody(t *WeightTable) kernelBody {
	offsets := t.Offsets()
	return func(n int, in, out []float64, i0, i1, j0, j1 int) {
		for i := i0; i < i1; i++ {
			for j := j0; j < j1; j++ {
				sum := 0.0
				for _, o := range offsets {
					sum += o.W * in[(i+o.DI)*n+(j+o.DJ)]
				}
				out[i*n+j] += sum
			}
		}
	}
}
