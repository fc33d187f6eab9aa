package prk

import (
	"runtime"
	"sync"
)

// launchInternal implements the core kernel execution logic
func (ctx *Context) launchInternal(
	kernelFunc func(ThreadID, ...interface{}),
	grid, block Dim3,
	stream *Stream,
	args ...interface{},
) error {
	// Calculate total work items
	gridSize := grid.Size()
	blockSize := block.Size()

	// Handle edge case where grid size is zero
	if gridSize == 0 {
		// Submit an empty task to maintain stream ordering
		stream.Submit(func() {})
		return nil
	}

	// Determine parallelism strategy
	numWorkers := runtime.NumCPU()
	if gridSize < numWorkers {
		numWorkers = gridSize
	}

	// Cache-aware scheduling: each worker processes multiple blocks
	// to maximize cache reuse
	blocksPerWorker := (gridSize + numWorkers - 1) / numWorkers

	// Submit work to stream
	stream.Submit(func() {
		var wg sync.WaitGroup
		wg.Add(numWorkers)

		for workerID := 0; workerID < numWorkers; workerID++ {
			wID := workerID
			startBlock := wID * blocksPerWorker
			endBlock := startBlock + blocksPerWorker
			if endBlock > gridSize {
				endBlock = gridSize
			}

			// Launch worker goroutine
			go func() {
				defer wg.Done()

				// Process assigned blocks
				for blockID := startBlock; blockID < endBlock; blockID++ {
					// Convert linear block ID to 3D
					blockIdx := linearTo3D(blockID, grid)

					// Execute all threads in this block
					// On CPU, threads within a block run sequentially.
					// This maximizes cache reuse and minimizes synchronization.
					for threadID := 0; threadID < blockSize; threadID++ {
						threadIdx := linearTo3D(threadID, block)

						tid := ThreadID{
							BlockIdx:  blockIdx,
							ThreadIdx: threadIdx,
							BlockDim:  block,
							GridDim:   grid,
						}

						kernelFunc(tid, args...)
					}
				}
			}()
		}

		wg.Wait()
	})

	return nil
}

// linearTo3D converts a linear index to 3D coordinates
func linearTo3D(linear int, dim Dim3) Dim3 {
	z := linear / (dim.X * dim.Y)
	y := (linear % (dim.X * dim.Y)) / dim.X
	x := linear % dim.X
	return Dim3{X: x, Y: y, Z: z}
}

// WorkerPool manages a pool of worker goroutines for kernel execution
type WorkerPool struct {
	workers int
	tasks   chan func()
	wg      sync.WaitGroup
}

// NewWorkerPool creates a new worker pool
func NewWorkerPool(workers int) *WorkerPool {
	if workers <= 0 {
		workers = runtime.NumCPU()
	}

	pool := &WorkerPool{
		workers: workers,
		tasks:   make(chan func(), workers*2),
	}

	// Start workers
	for i := 0; i < workers; i++ {
		pool.wg.Add(1)
		go pool.worker()
	}

	return pool
}

// worker processes tasks from the queue
func (wp *WorkerPool) worker() {
	defer wp.wg.Done()
	for task := range wp.tasks {
		task()
	}
}

// Submit adds a task to the pool
func (wp *WorkerPool) Submit(task func()) {
	wp.tasks <- task
}

// Close shuts down the worker pool
func (wp *WorkerPool) Close() {
	close(wp.tasks)
	wp.wg.Wait()
}

// Data-parallel helpers for the benchmark kernels.
//
// Both helpers guarantee that every index is visited by exactly one worker,
// so a kernel body may write its own output cell without synchronization.
// They enqueue on the default stream; Synchronize is the barrier between
// dependent phases.

// ParallelFor applies fn to every index in [0, n) in parallel.
//
// Example:
//
//	a := d_a.Float64()
//	prk.ParallelFor(len(a), func(i int) { a[i] += 1.0 })
//	prk.Synchronize()
func ParallelFor(n int, fn func(i int)) error {
	return defaultContext.ParallelFor(n, fn)
}

// ParallelFor2D applies fn to every index pair (i, j) in [0, rows) x
// [0, cols) in parallel. One block per row; each worker sweeps whole rows
// for contiguous access.
func ParallelFor2D(rows, cols int, fn func(i, j int)) error {
	return defaultContext.ParallelFor2D(rows, cols, fn)
}

// ParallelFor applies fn to every index in [0, n) in parallel.
func (ctx *Context) ParallelFor(n int, fn func(i int)) error {
	if n <= 0 {
		return nil
	}
	grid := Dim3{X: (n + DefaultBlockSize - 1) / DefaultBlockSize, Y: 1, Z: 1}
	block := Dim3{X: DefaultBlockSize, Y: 1, Z: 1}

	kernel := KernelFunc(func(tid ThreadID, args ...interface{}) {
		idx := tid.Global()
		if idx < n {
			fn(idx)
		}
	})

	return ctx.LaunchFunc(kernel, grid, block)
}

// ParallelFor2D applies fn to every (i, j) in [0, rows) x [0, cols).
func (ctx *Context) ParallelFor2D(rows, cols int, fn func(i, j int)) error {
	if rows <= 0 || cols <= 0 {
		return nil
	}
	grid := Dim3{X: rows, Y: 1, Z: 1}
	block := Dim3{X: 1, Y: 1, Z: 1}

	kernel := KernelFunc(func(tid ThreadID, args ...interface{}) {
		i := tid.BlockIdx.X
		for j := 0; j < cols; j++ {
			fn(i, j)
		}
	})

	return ctx.LaunchFunc(kernel, grid, block)
}

// ForEach applies a function to each element in parallel
func ForEach(data DevicePtr, size int, fn func(idx int, val *float64)) error {
	slice := data.Float64()
	return ParallelFor(size, func(idx int) {
		fn(idx, &slice[idx])
	})
}

// Map applies a transformation function to create a new array
func Map(input, output DevicePtr, size int, fn func(float64) float64) error {
	in := input.Float64()
	out := output.Float64()
	return ParallelFor(size, func(idx int) {
		out[idx] = fn(in[idx])
	})
}
