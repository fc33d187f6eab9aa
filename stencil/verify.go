package stencil

import (
	"fmt"
	"math"

	prk "github.com/homerdin/PRK"
)

// Verify checks the destination grid against the analytic expectation and
// returns the observed and reference norms. The checksum is the mean
// absolute value over the (n-2r)^2 interior points.
//
// The expectation is closed-form: the source starts as the ramp i+j and
// stays a ramp under the +1 perturbation, and the weights contracted
// against a unit gradient sum to exactly 2 for either shape (each ring of
// coefficients contributes 2/r). Every application therefore adds 2 to
// every interior cell, giving 2*(iterations+1) after the warmup pass and
// the measured passes. The oracle is independent of the kernels; it never
// runs the operator.
//
// Summation order varies with tile size and worker count, so the
// comparison is epsilon-bounded rather than exact. A mismatch is a
// validation error carrying both values.
func Verify(dst prk.DevicePtr, n, radius, iterations int) (norm, referenceNorm float64, err error) {
	width := n - 2*radius
	activePoints := width * width

	sum := dst.SumAbsStrided(radius*n+radius, width, n, width)
	norm = sum / float64(activePoints)
	referenceNorm = 2.0 * (float64(iterations) + 1.0)

	if math.Abs(norm-referenceNorm) > prk.ValidationEpsilon {
		return norm, referenceNorm, prk.NewValidationError("Verify",
			fmt.Sprintf("L1 norm = %f Reference L1 norm = %f", norm, referenceNorm),
			[2]float64{norm, referenceNorm})
	}
	return norm, referenceNorm, nil
}
