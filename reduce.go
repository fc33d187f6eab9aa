package prk

import (
	"math"
)

// Reduction operations on device buffers. The benchmarks use these for
// their checksums: an order-insensitive sum of absolute values is cheap
// to compute and cheap to predict analytically.

// Sum computes the sum of the first n elements
func (d DevicePtr) Sum(n int) float64 {
	x := d.Float64()[:n]
	sum := float64(0)
	for i := 0; i < n; i++ {
		sum += x[i]
	}
	return sum
}

// SumAbs computes the sum of absolute values of the first n elements.
// This is the L1 reduction the verifiers are built on.
func (d DevicePtr) SumAbs(n int) float64 {
	x := d.Float64()[:n]
	sum := float64(0)
	for i := 0; i < n; i++ {
		sum += math.Abs(x[i])
	}
	return sum
}

// Max returns the maximum value among the first n elements
func (d DevicePtr) Max(n int) float64 {
	if n == 0 {
		return math.Inf(-1)
	}
	x := d.Float64()[:n]
	max := x[0]
	for i := 1; i < n; i++ {
		if x[i] > max {
			max = x[i]
		}
	}
	return max
}

// Min returns the minimum value among the first n elements
func (d DevicePtr) Min(n int) float64 {
	if n == 0 {
		return math.Inf(1)
	}
	x := d.Float64()[:n]
	min := x[0]
	for i := 1; i < n; i++ {
		if x[i] < min {
			min = x[i]
		}
	}
	return min
}

// Mean computes the arithmetic mean of the first n elements
func (d DevicePtr) Mean(n int) float64 {
	if n == 0 {
		return 0
	}
	return d.Sum(n) / float64(n)
}

// SumAbsStrided computes the sum of absolute values over count windows of
// width elements, with consecutive windows stride elements apart, starting
// at element start. This walks the interior rows of a flattened 2D grid
// without copying them out.
//
// Example (interior of an n x n grid with radius r):
//
//	sum := d.SumAbsStrided(r*n+r, n-2*r, n, n-2*r)
func (d DevicePtr) SumAbsStrided(start, width, stride, count int) float64 {
	x := d.Float64()
	sum := float64(0)
	for c := 0; c < count; c++ {
		row := x[start+c*stride : start+c*stride+width]
		for i := 0; i < width; i++ {
			sum += math.Abs(row[i])
		}
	}
	return sum
}
