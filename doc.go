// Copyright ©2024 The PRK Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package prk is the execution runtime for the Parallel Research Kernels
// benchmark suite in Go.
//
// The runtime exposes the accelerator-style capability surface the
// benchmarks are written against: device memory allocation with explicit
// host/device copies, kernel launches over a grid of blocks, data-parallel
// for loops over 1D and 2D index spaces, stream synchronization as the
// barrier between compute phases, and float64 reductions for checksums.
// On CPU, launches fan out across a pool of worker goroutines; each output
// index is visited by exactly one worker, so kernels need no internal
// locking.
//
// The benchmarks themselves live in the stencil and triad packages, with
// command-line drivers under cmd/.
package prk
