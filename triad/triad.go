// Package triad measures sustainable memory bandwidth with the nstream
// kernel: A[i] += B[i] + scalar*C[i] over three double-precision vectors.
// It is loosely based on the Stream triad benchmark but does not follow
// all the Stream rules, so reported results should not be compared with
// published Stream numbers.
package triad

import (
	"fmt"
	"math"
	"time"

	prk "github.com/homerdin/PRK"
)

// Initial values and the triad scalar. The checksum below is closed-form
// in these, so they are fixed rather than configurable.
const (
	initA  = 0.0
	initB  = 2.0
	initC  = 2.0
	scalar = 3.0
)

// Config holds the parameters of one nstream run.
type Config struct {
	Iterations int // measured triad passes (a warmup pass is added)
	Length     int // vector length
}

// Validate checks the parameter ranges. It must pass before any vector
// memory is allocated.
func (c *Config) Validate() error {
	if c.Iterations < 1 {
		return prk.NewParameterError("Config",
			fmt.Sprintf("iterations must be >= 1, got %d", c.Iterations))
	}
	if c.Length < 1 {
		return prk.NewParameterError("Config",
			fmt.Sprintf("vector length must be positive, got %d", c.Length))
	}
	if c.Length > prk.MaxDimension {
		return prk.NewParameterError("Config",
			fmt.Sprintf("vector length %d too large - overflow risk", c.Length))
	}
	return nil
}

// Result reports one nstream run.
type Result struct {
	Config   Config
	Checksum float64 // observed sum of |A|
	Expected float64 // analytic expectation
	AvgTime  float64 // seconds per measured pass
	MBPerSec float64 // achieved bandwidth over the measured passes
}

// Run executes the nstream protocol: allocate three vectors, run
// iterations+1 triad passes (the first is warmup and excluded from
// timing), then compare the accumulated checksum of A against the
// closed-form expectation. Each pass reads B and C and reads and writes
// A, 4 words per element.
func Run(cfg Config) (*Result, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	length := cfg.Length
	bytes := length * 8

	dA, err := prk.Malloc(bytes)
	if err != nil {
		return nil, prk.NewMemoryError("Run", "failed to allocate vector A", err)
	}
	defer prk.Free(dA)

	dB, err := prk.Malloc(bytes)
	if err != nil {
		return nil, prk.NewMemoryError("Run", "failed to allocate vector B", err)
	}
	defer prk.Free(dB)

	dC, err := prk.Malloc(bytes)
	if err != nil {
		return nil, prk.NewMemoryError("Run", "failed to allocate vector C", err)
	}
	defer prk.Free(dC)

	a := dA.Float64()
	b := dB.Float64()
	c := dC.Float64()

	prk.ParallelFor(length, func(i int) {
		a[i] = initA
		b[i] = initB
		c[i] = initC
	})
	if err := prk.Synchronize(); err != nil {
		return nil, prk.NewExecutionError("Run", "vector initialization failed", err)
	}

	var start time.Time
	for iter := 0; iter <= cfg.Iterations; iter++ {
		// Iteration 0 is warmup; start timing once it has drained.
		if iter == 1 {
			start = time.Now()
		}

		prk.ParallelFor(length, func(i int) {
			a[i] += b[i] + scalar*c[i]
		})
		if err := prk.Synchronize(); err != nil {
			return nil, prk.NewExecutionError("Run", "triad pass failed", err)
		}
	}
	elapsed := time.Since(start).Seconds()

	// A accumulates the same contribution every pass, so the expected
	// checksum follows the scalar recurrence.
	ar := initA
	for i := 0; i <= cfg.Iterations; i++ {
		ar += initB + scalar*initC
	}
	ar *= float64(length)

	res := &Result{
		Config:   cfg,
		Checksum: dA.SumAbs(length),
		Expected: ar,
	}
	res.AvgTime = elapsed / float64(cfg.Iterations)
	nbytes := 4.0 * float64(length) * 8.0
	res.MBPerSec = 1.0e-6 * nbytes / res.AvgTime

	if math.Abs(res.Expected-res.Checksum)/res.Checksum > prk.ValidationEpsilon {
		return res, prk.NewValidationError("Run",
			fmt.Sprintf("expected checksum %f, observed %f", res.Expected, res.Checksum),
			[2]float64{res.Checksum, res.Expected})
	}
	return res, nil
}
