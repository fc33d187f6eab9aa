package stencil

import (
	"math"
	"math/rand"
	"testing"

	prk "github.com/homerdin/PRK"
)

// randomGrid fills an n x n grid with a reproducible pseudo-random field.
func randomGrid(n int, seed int64) []float64 {
	rng := rand.New(rand.NewSource(seed))
	g := make([]float64, n*n)
	for i := range g {
		g[i] = rng.Float64()*2.0 - 1.0
	}
	return g
}

// applyOnce runs one stencil application through the runtime and returns
// the destination grid.
func applyOnce(t *testing.T, op *Op, src []float64) []float64 {
	t.Helper()
	n := op.n

	dIn := prk.MallocOrFail(t, n*n*8)
	defer prk.Free(dIn)
	dOut := prk.MallocOrFail(t, n*n*8)
	defer prk.Free(dOut)

	copy(dIn.Float64(), src)
	out := dOut.Float64()
	for i := range out {
		out[i] = 0.0
	}

	if err := op.Apply(dIn, dOut); err != nil {
		t.Fatalf("Apply failed: %v", err)
	}

	result := make([]float64, n*n)
	copy(result, out)
	return result
}

// genericOp builds an operator forced onto the table-driven body, the
// correctness reference for the specialized paths.
func genericOp(t *testing.T, n, radius, tile int, shape Shape) *Op {
	t.Helper()
	op, err := NewOp(n, radius, tile, shape)
	if err != nil {
		t.Fatalf("NewOp failed: %v", err)
	}
	op.body = genericBody(op.table)
	return op
}

func TestSpecializedMatchesGeneric(t *testing.T) {
	const n = 24
	src := randomGrid(n, 42)
	tol := prk.ToleranceConfig{AbsTol: 1e-14, RelTol: 1e-12, ULPTol: 16}

	for _, shape := range []Shape{Star, Grid} {
		for radius := 1; radius <= 5; radius++ {
			op, err := NewOp(n, radius, 5, shape)
			if err != nil {
				t.Fatalf("%v radius %d: %v", shape, radius, err)
			}

			fast := applyOnce(t, op, src)
			reference := applyOnce(t, genericOp(t, n, radius, 5, shape), src)

			res := prk.VerifyFloat64Array(reference, fast, tol)
			if res.NumErrors != 0 {
				t.Errorf("%v radius %d: specialized diverges from generic\n%v",
					shape, radius, res)
			}
		}
	}
}

func TestTilingInvariance(t *testing.T) {
	const n = 32
	src := randomGrid(n, 7)
	tol := prk.ToleranceConfig{AbsTol: 1e-14, RelTol: 1e-12, ULPTol: 16}

	for _, shape := range []Shape{Star, Grid} {
		baseOp, err := NewOp(n, 2, n, shape)
		if err != nil {
			t.Fatal(err)
		}
		base := applyOnce(t, baseOp, src)

		for _, tile := range []int{1, 7, 13} {
			op, err := NewOp(n, 2, tile, shape)
			if err != nil {
				t.Fatalf("%v tile %d: %v", shape, tile, err)
			}
			got := applyOnce(t, op, src)

			res := prk.VerifyFloat64Array(base, got, tol)
			if res.NumErrors != 0 {
				t.Errorf("%v: tile %d changes the result\n%v", shape, tile, res)
			}
		}
	}
}

// TestAccumulation confirms Apply adds into the destination rather than
// overwriting it: two applications double the interior values.
func TestAccumulation(t *testing.T) {
	const n = 16
	src := randomGrid(n, 3)

	op, err := NewOp(n, 2, n, Star)
	if err != nil {
		t.Fatal(err)
	}

	dIn := prk.MallocOrFail(t, n*n*8)
	defer prk.Free(dIn)
	dOut := prk.MallocOrFail(t, n*n*8)
	defer prk.Free(dOut)
	copy(dIn.Float64(), src)

	once := applyOnce(t, op, src)

	out := dOut.Float64()
	for i := range out {
		out[i] = 0.0
	}
	if err := op.Apply(dIn, dOut); err != nil {
		t.Fatal(err)
	}
	if err := op.Apply(dIn, dOut); err != nil {
		t.Fatal(err)
	}

	for i, v := range out {
		if math.Abs(v-2.0*once[i]) > 1e-12 {
			t.Fatalf("cell %d: two applications gave %v, want %v", i, v, 2.0*once[i])
		}
	}
}

// TestMaxLegalRadius runs the largest footprint that still fits:
// 2r+1 == n leaves a single interior point.
func TestMaxLegalRadius(t *testing.T) {
	const n = 11
	const radius = 5
	src := randomGrid(n, 11)

	for _, shape := range []Shape{Star, Grid} {
		op, err := NewOp(n, radius, n, shape)
		if err != nil {
			t.Fatalf("%v: %v", shape, err)
		}
		out := applyOnce(t, op, src)

		// Only the single center point may change.
		for i := 0; i < n; i++ {
			for j := 0; j < n; j++ {
				if i == radius && j == radius {
					continue
				}
				if out[i*n+j] != 0 {
					t.Fatalf("%v: boundary cell (%d,%d) written: %v", shape, i, j, out[i*n+j])
				}
			}
		}
	}
}

func TestNewOpRejectsBadParameters(t *testing.T) {
	tests := []struct {
		name            string
		n, radius, tile int
	}{
		{"radius too large", 10, 5, 10},  // 2*5+1 = 11 > 10
		{"radius zero", 10, 0, 10},
		{"radius negative", 10, -1, 10},
		{"grid dimension zero", 0, 1, 1},
		{"tile zero", 10, 2, 0},
		{"tile exceeds grid", 10, 2, 11},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := NewOp(tt.n, tt.radius, tt.tile, Star)
			if err == nil {
				t.Fatal("expected error")
			}
			if !prk.IsParameterError(err) {
				t.Errorf("got %v, want parameter error", err)
			}
		})
	}
}

// TestGenericFallbackRadius exercises a radius with no specialized body.
func TestGenericFallbackRadius(t *testing.T) {
	const n = 32
	const radius = 7
	src := randomGrid(n, 19)

	for _, shape := range []Shape{Star, Grid} {
		op, err := NewOp(n, radius, 8, shape)
		if err != nil {
			t.Fatalf("%v: %v", shape, err)
		}
		out := applyOnce(t, op, src)

		// Spot-check one interior point against a direct evaluation.
		i, j := radius+2, radius+3
		want := 0.0
		for _, o := range op.Weights().Offsets() {
			want += o.W * src[(i+o.DI)*n+(j+o.DJ)]
		}
		if math.Abs(out[i*n+j]-want) > 1e-12 {
			t.Errorf("%v: point (%d,%d) = %v, want %v", shape, i, j, out[i*n+j], want)
		}
	}
}

func BenchmarkApplyStar2(b *testing.B) {
	const n = 512
	op, err := NewOp(n, 2, prk.DefaultTileSize, Star)
	if err != nil {
		b.Fatal(err)
	}

	dIn := prk.MallocOrFail(b, n*n*8)
	defer prk.Free(dIn)
	dOut := prk.MallocOrFail(b, n*n*8)
	defer prk.Free(dOut)

	in := dIn.Float64()
	for i := range in {
		in[i] = float64(i % 97)
	}

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if err := op.Apply(dIn, dOut); err != nil {
			b.Fatal(err)
		}
	}
}
