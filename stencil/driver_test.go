package stencil

import (
	"math"
	"testing"

	prk "github.com/homerdin/PRK"
)

func TestRunStar(t *testing.T) {
	tests := []struct {
		name       string
		iterations int
		n          int
		tile       int
		radius     int
		wantNorm   float64
	}{
		{"small radius 2", 1, 10, 32, 2, 4.0},
		{"five iterations radius 1", 5, 10, 32, 1, 12.0},
		{"tile 1", 2, 20, 1, 2, 6.0},
		{"tile 7", 2, 20, 7, 2, 6.0},
		{"tile equals n", 2, 20, 20, 2, 6.0},
		{"radius 5", 3, 32, 8, 5, 8.0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := Config{
				Iterations: tt.iterations,
				N:          tt.n,
				TileSize:   tt.tile,
				Shape:      Star,
				Radius:     tt.radius,
			}
			res, err := Run(cfg)
			if err != nil {
				t.Fatalf("Run failed: %v", err)
			}
			if math.Abs(res.Norm-tt.wantNorm) > prk.ValidationEpsilon {
				t.Errorf("norm = %v, want %v", res.Norm, tt.wantNorm)
			}
			if res.ReferenceNorm != tt.wantNorm {
				t.Errorf("reference norm = %v, want %v", res.ReferenceNorm, tt.wantNorm)
			}
			if res.MFlops <= 0 {
				t.Errorf("MFlops = %v, want > 0", res.MFlops)
			}
			if res.AvgTime <= 0 {
				t.Errorf("AvgTime = %v, want > 0", res.AvgTime)
			}
		})
	}
}

func TestRunGrid(t *testing.T) {
	tests := []struct {
		name       string
		iterations int
		n          int
		radius     int
	}{
		{"specialized radius 2", 2, 24, 2},
		{"specialized radius 5", 1, 16, 5},
		{"generic radius 9", 3, 100, 9},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := Config{
				Iterations: tt.iterations,
				N:          tt.n,
				TileSize:   prk.DefaultTileSize,
				Shape:      Grid,
				Radius:     tt.radius,
			}
			res, err := Run(cfg)
			if err != nil {
				t.Fatalf("Run failed: %v", err)
			}
			want := 2.0 * float64(tt.iterations+1)
			if math.Abs(res.Norm-want) > prk.ValidationEpsilon {
				t.Errorf("norm = %v, want %v", res.Norm, want)
			}
		})
	}
}

func TestRunMaxLegalRadius(t *testing.T) {
	cfg := Config{Iterations: 2, N: 11, TileSize: 11, Shape: Star, Radius: 5}
	res, err := Run(cfg)
	if err != nil {
		t.Fatalf("Run failed: %v", err)
	}
	if math.Abs(res.Norm-6.0) > prk.ValidationEpsilon {
		t.Errorf("norm = %v, want 6.0", res.Norm)
	}
}

func TestRunRejectsBadParameters(t *testing.T) {
	tests := []struct {
		name string
		cfg  Config
	}{
		{"zero iterations", Config{Iterations: 0, N: 10, TileSize: 10, Radius: 2}},
		{"negative iterations", Config{Iterations: -3, N: 10, TileSize: 10, Radius: 2}},
		{"zero dimension", Config{Iterations: 1, N: 0, TileSize: 1, Radius: 2}},
		{"oversized dimension", Config{Iterations: 1, N: prk.MaxDimension + 1, TileSize: 1, Radius: 2}},
		{"grid exceeds allocation bound", Config{Iterations: 1, N: 400000, TileSize: 32, Radius: 2}},
		{"footprint exceeds grid", Config{Iterations: 1, N: 10, TileSize: 10, Radius: 6}},
		{"zero radius", Config{Iterations: 1, N: 10, TileSize: 10, Radius: 0}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Run(tt.cfg)
			if err == nil {
				t.Fatal("expected error")
			}
			if !prk.IsParameterError(err) {
				t.Errorf("got %v, want parameter error", err)
			}
		})
	}
}

// Dimensions whose grids exceed 1<<27 elements are still legal as long as
// each grid fits in a single allocation.
func TestConfigAcceptsLargeDimension(t *testing.T) {
	cfg := Config{Iterations: 1, N: 11586, TileSize: 32, Radius: 2}
	if err := cfg.Validate(); err != nil {
		t.Fatalf("Validate rejected a legal dimension: %v", err)
	}
}

func TestConfigClampsTileSize(t *testing.T) {
	tests := []struct {
		name string
		tile int
		want int
	}{
		{"default exceeds small grid", 32, 10},
		{"zero", 0, 10},
		{"negative", -4, 10},
		{"in range", 5, 5},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := Config{Iterations: 1, N: 10, TileSize: tt.tile, Radius: 2}
			if err := cfg.Validate(); err != nil {
				t.Fatalf("Validate failed: %v", err)
			}
			if cfg.TileSize != tt.want {
				t.Errorf("tile size = %d, want %d", cfg.TileSize, tt.want)
			}
		})
	}
}

func TestVerifyDetectsCorruption(t *testing.T) {
	const n = 10
	const radius = 2
	const iterations = 1

	dOut := prk.MallocOrFail(t, n*n*8)
	defer prk.Free(dOut)

	// A destination every interior cell of which holds the expected
	// per-cell value passes verification.
	out := dOut.Float64()
	for i := radius; i < n-radius; i++ {
		for j := radius; j < n-radius; j++ {
			out[i*n+j] = 2.0 * float64(iterations+1)
		}
	}

	if _, _, err := Verify(dOut, n, radius, iterations); err != nil {
		t.Fatalf("clean grid failed verification: %v", err)
	}

	// One corrupted cell must be reported.
	out[(radius+1)*n+radius+1] += 0.5
	norm, reference, err := Verify(dOut, n, radius, iterations)
	if err == nil {
		t.Fatal("corrupted grid passed verification")
	}
	if !prk.IsValidationError(err) {
		t.Fatalf("got %v, want validation error", err)
	}
	if norm == reference {
		t.Error("observed norm should differ from reference after corruption")
	}
}
