// Package stencil applies a space-invariant, linear, symmetric filter to
// a square grid and measures the achieved floating-point rate. The filter
// is a discrete approximation of the divergence operator: weights are
// antisymmetric about the center, sum to zero, and shrink with distance.
package stencil

import (
	"fmt"

	prk "github.com/homerdin/PRK"
)

// Shape selects the stencil footprint.
type Shape int

const (
	// Star restricts the footprint to the center point's row and column,
	// 4r+1 points for radius r.
	Star Shape = iota

	// Grid covers the full (2r+1) x (2r+1) neighborhood, with reduced
	// weights off-axis and a redundancy correction at the diagonal
	// corners so the operator stays a consistent divergence
	// approximation.
	Grid
)

// String returns the token the CLI uses for the shape
func (s Shape) String() string {
	switch s {
	case Star:
		return "star"
	case Grid:
		return "grid"
	default:
		return fmt.Sprintf("Shape(%d)", int(s))
	}
}

// ParseShape interprets a CLI shape token. The literal "grid" selects
// Grid; anything else, including the empty string, selects Star.
func ParseShape(tok string) Shape {
	if tok == "grid" {
		return Grid
	}
	return Star
}

// Size returns the footprint size used in the flop count: 4r+1 for Star,
// (2r+1)^2 for Grid.
func (s Shape) Size(radius int) int {
	if s == Star {
		return 4*radius + 1
	}
	return (2*radius + 1) * (2*radius + 1)
}

// Offset is one nonzero stencil coefficient: destination cell (i, j)
// accumulates W * source(i+DI, j+DJ).
type Offset struct {
	DI, DJ int
	W      float64
}

// WeightTable holds the coefficients for one (radius, shape) pair.
// Entries outside the footprint are zero and are never applied; the
// center entry is always zero (a point never references itself).
type WeightTable struct {
	radius  int
	shape   Shape
	w       []float64 // dense (2r+1) x (2r+1), center at (r, r)
	offsets []Offset  // nonzero entries, row-major scan order
}

// NewWeightTable generates every nonzero coefficient for the given radius
// and shape. The radius must be at least 1; whether the footprint fits a
// particular grid is checked when the operator is built.
func NewWeightTable(radius int, shape Shape) (*WeightTable, error) {
	if radius < 1 {
		return nil, prk.NewParameterError("NewWeightTable",
			fmt.Sprintf("stencil radius must be >= 1, got %d", radius))
	}

	t := &WeightTable{
		radius: radius,
		shape:  shape,
		w:      make([]float64, (2*radius+1)*(2*radius+1)),
	}

	r := float64(radius)
	switch shape {
	case Star:
		for k := 1; k <= radius; k++ {
			w := 1.0 / (2.0 * float64(k) * r)
			t.set(0, k, w)
			t.set(0, -k, -w)
			t.set(k, 0, w)
			t.set(-k, 0, -w)
		}
	case Grid:
		for j := 1; j <= radius; j++ {
			edge := 1.0 / (4.0 * float64(j) * float64(2*j-1) * r)
			for i := -j + 1; i <= j-1; i++ {
				t.set(i, j, edge)
				t.set(i, -j, -edge)
				t.set(j, i, edge)
				t.set(-j, i, -edge)
			}
			// Corner terms carry the redundancy correction.
			corner := 1.0 / (4.0 * float64(j) * r)
			t.set(j, j, corner)
			t.set(-j, -j, -corner)
		}
	default:
		return nil, prk.NewUnsupportedError("NewWeightTable",
			fmt.Sprintf("no weight generator for shape %v", shape))
	}

	for di := -radius; di <= radius; di++ {
		for dj := -radius; dj <= radius; dj++ {
			if w := t.At(di, dj); w != 0 {
				t.offsets = append(t.offsets, Offset{DI: di, DJ: dj, W: w})
			}
		}
	}

	return t, nil
}

// Radius returns the stencil radius
func (t *WeightTable) Radius() int { return t.radius }

// Shape returns the stencil shape
func (t *WeightTable) Shape() Shape { return t.shape }

// At returns the coefficient at offset (di, dj); zero outside the
// footprint.
func (t *WeightTable) At(di, dj int) float64 {
	if di < -t.radius || di > t.radius || dj < -t.radius || dj > t.radius {
		return 0
	}
	side := 2*t.radius + 1
	return t.w[(di+t.radius)*side+(dj+t.radius)]
}

// Offsets returns the nonzero coefficients in a deterministic order.
// The slice is shared; callers must not modify it.
func (t *WeightTable) Offsets() []Offset { return t.offsets }

func (t *WeightTable) set(di, dj int, w float64) {
	side := 2*t.radius + 1
	t.w[(di+t.radius)*side+(dj+t.radius)] = w
}
