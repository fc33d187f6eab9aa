package stencil

import (
	"fmt"
	"time"

	prk "github.com/homerdin/PRK"
)

// Config holds the parameters of one benchmark run.
type Config struct {
	Iterations int   // measured stencil applications (a warmup pass is added)
	N          int   // linear grid dimension
	TileSize   int   // blocking factor for the interior sweep
	Shape      Shape // stencil footprint
	Radius     int   // stencil radius
}

// DefaultConfig returns a Config with the customary tile size and radius;
// Iterations and N must still be set by the caller.
func DefaultConfig() Config {
	return Config{
		TileSize: prk.DefaultTileSize,
		Shape:    Star,
		Radius:   prk.DefaultRadius,
	}
}

// Validate checks the parameter ranges and clamps the tile size into
// [1, N]. It must pass before any grid memory is allocated; every
// violation is a parameter error.
func (c *Config) Validate() error {
	if c.Iterations < 1 {
		return prk.NewParameterError("Config",
			fmt.Sprintf("iterations must be >= 1, got %d", c.Iterations))
	}
	if c.N < 1 {
		return prk.NewParameterError("Config",
			fmt.Sprintf("grid dimension must be positive, got %d", c.N))
	}
	if c.N > prk.MaxDimension {
		return prk.NewParameterError("Config",
			fmt.Sprintf("grid dimension %d too large - overflow risk", c.N))
	}
	// Each grid is n*n float64s; both must be allocatable.
	if c.N > prk.MaxAllocSize/8/c.N {
		return prk.NewParameterError("Config",
			fmt.Sprintf("grid dimension %d requires more memory per grid than can be allocated", c.N))
	}
	if c.TileSize < 1 || c.TileSize > c.N {
		c.TileSize = c.N
	}
	if c.Radius < 1 || 2*c.Radius+1 > c.N {
		return prk.NewParameterError("Config",
			fmt.Sprintf("stencil radius %d negative or too large for grid dimension %d", c.Radius, c.N))
	}
	return nil
}

// Result reports one benchmark run. Norm and ReferenceNorm are filled in
// even when validation fails, so drivers can dump both values.
type Result struct {
	Config        Config
	Norm          float64 // observed interior L1 mean
	ReferenceNorm float64 // analytic expectation
	AvgTime       float64 // seconds per measured iteration
	MFlops        float64 // achieved rate over the measured iterations
}

// Run executes the full benchmark protocol: allocate the two grids, fill
// the source with the linear ramp i+j and zero the destination, apply the
// stencil iterations+1 times (the first pass is warmup and excluded from
// timing), perturb the source by +1 after every application, then verify
// the destination checksum against the analytic reference.
//
// Each iteration is three barrier-separated phases: apply the operator,
// wait, add the constant, wait. The perturbation touches the full grid,
// not just the interior; it refreshes the neighbor data so no pass can be
// hoisted or skipped, and it is what makes the final checksum depend on
// the iteration count.
//
// On a validation failure Run returns the Result alongside the error;
// both grids are freed in every path.
func Run(cfg Config) (*Result, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	op, err := NewOp(cfg.N, cfg.Radius, cfg.TileSize, cfg.Shape)
	if err != nil {
		return nil, err
	}

	n := cfg.N
	bytes := n * n * 8

	dIn, err := prk.Malloc(bytes)
	if err != nil {
		return nil, prk.NewMemoryError("Run", "failed to allocate source grid", err)
	}
	defer prk.Free(dIn)

	dOut, err := prk.Malloc(bytes)
	if err != nil {
		return nil, prk.NewMemoryError("Run", "failed to allocate destination grid", err)
	}
	defer prk.Free(dOut)

	in := dIn.Float64()
	out := dOut.Float64()

	// Source is a linear ramp; destination starts at zero and accumulates
	// across all iterations.
	prk.ParallelFor2D(n, n, func(i, j int) {
		in[i*n+j] = float64(i + j)
		out[i*n+j] = 0.0
	})
	if err := prk.Synchronize(); err != nil {
		return nil, prk.NewExecutionError("Run", "grid initialization failed", err)
	}

	var start time.Time
	for iter := 0; iter <= cfg.Iterations; iter++ {
		// Iteration 0 is warmup; start timing once it has drained.
		if iter == 1 {
			start = time.Now()
		}

		if err := op.Apply(dIn, dOut); err != nil {
			return nil, err
		}

		// Add constant to the source to force refresh of neighbor data.
		prk.ParallelFor2D(n, n, func(i, j int) {
			in[i*n+j] += 1.0
		})
		if err := prk.Synchronize(); err != nil {
			return nil, prk.NewExecutionError("Run", "source perturbation failed", err)
		}
	}
	elapsed := time.Since(start).Seconds()

	res := &Result{Config: cfg}
	res.Norm, res.ReferenceNorm, err = Verify(dOut, n, cfg.Radius, cfg.Iterations)

	activePoints := (n - 2*cfg.Radius) * (n - 2*cfg.Radius)
	flops := float64(2*cfg.Shape.Size(cfg.Radius)+1) * float64(activePoints)
	res.AvgTime = elapsed / float64(cfg.Iterations)
	res.MFlops = 1.0e-6 * flops / res.AvgTime

	if err != nil {
		return res, err
	}
	return res, nil
}
