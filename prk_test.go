package prk

import (
	"math"
	"math/rand"
	"sync/atomic"
	"testing"
)

// Test basic memory allocation and deallocation
func TestMemoryAllocation(t *testing.T) {
	sizes := []int{100, 1000, 10000, 1000000}

	for _, size := range sizes {
		ptr, err := Malloc(size * 8)
		if err != nil {
			t.Fatalf("Failed to allocate %d bytes: %v", size*8, err)
		}

		// Verify we can access the memory
		slice := ptr.Float64()
		if len(slice) != size {
			t.Errorf("Expected slice length %d, got %d", size, len(slice))
		}

		// Write and read test
		for i := 0; i < min(100, size); i++ {
			slice[i] = float64(i)
		}

		for i := 0; i < min(100, size); i++ {
			if slice[i] != float64(i) {
				t.Errorf("Memory corruption at index %d", i)
			}
		}

		err = Free(ptr)
		if err != nil {
			t.Fatalf("Failed to free memory: %v", err)
		}
	}
}

func TestMallocRejectsBadSize(t *testing.T) {
	for _, size := range []int{0, -8} {
		if _, err := Malloc(size); err == nil {
			t.Errorf("Malloc(%d) succeeded, want error", size)
		}
	}
}

func TestMallocRejectsOversizedRequest(t *testing.T) {
	_, err := Malloc(MaxAllocSize + 1)
	if err == nil {
		t.Fatal("Malloc beyond MaxAllocSize succeeded, want error")
	}
	if !IsMemoryError(err) {
		t.Errorf("got %v, want out-of-memory error", err)
	}
}

// The typed views must cover buffers of any allocatable size. This grid is
// the smallest whose element count exceeds 1<<27, a length a view built on
// a fixed-size array cast cannot reach.
func TestLargeBufferView(t *testing.T) {
	if testing.Short() {
		t.Skip("allocates a gigabyte-scale buffer")
	}

	const n = 11586
	d := MallocOrFail(t, n*n*8)
	defer Free(d)

	grid := d.Float64()
	if len(grid) != n*n {
		t.Fatalf("view length = %d, want %d", len(grid), n*n)
	}

	grid[0] = 1.5
	grid[n*n-1] = 2.5
	if grid[0] != 1.5 || grid[n*n-1] != 2.5 {
		t.Error("view does not cover the full buffer")
	}

	if got := len(d.Byte()); got != n*n*8 {
		t.Errorf("byte view length = %d, want %d", got, n*n*8)
	}
}

func TestDoubleFree(t *testing.T) {
	ptr := MallocOrFail(t, 1024)
	if err := Free(ptr); err != nil {
		t.Fatalf("first Free failed: %v", err)
	}
	if err := Free(ptr); err == nil {
		t.Fatal("second Free succeeded, want double free error")
	}
}

// Test memory copy operations
func TestMemcpy(t *testing.T) {
	const N = 1000

	// Create host data
	h_src := make([]float64, N)
	h_dst := make([]float64, N)
	for i := 0; i < N; i++ {
		h_src[i] = rand.Float64()
	}

	// Allocate device memory
	d_src := MallocOrFail(t, N*8)
	d_dst := MallocOrFail(t, N*8)
	defer Free(d_src)
	defer Free(d_dst)

	// Test H2D copy
	MemcpyOrFail(t, d_src, h_src, N*8, MemcpyHostToDevice)

	// Test D2D copy
	MemcpyOrFail(t, d_dst, d_src, N*8, MemcpyDeviceToDevice)

	// Test D2H copy
	err := Memcpy(h_dst, d_dst, N*8, MemcpyDeviceToHost)
	if err != nil {
		t.Fatalf("D2H copy failed: %v", err)
	}

	// Verify data
	for i := 0; i < N; i++ {
		if h_src[i] != h_dst[i] {
			t.Errorf("Data mismatch at index %d: %f vs %f", i, h_src[i], h_dst[i])
		}
	}
}

// Test basic kernel launch
func TestKernelLaunch(t *testing.T) {
	const N = 10000

	d_data := MallocOrFail(t, N*8)
	defer Free(d_data)

	slice := d_data.Float64()
	for i := 0; i < N; i++ {
		slice[i] = 0
	}

	kernel := KernelFunc(func(tid ThreadID, args ...interface{}) {
		idx := tid.Global()
		if idx < N {
			slice[idx] = float64(idx)
		}
	})

	LaunchOrFail(t, kernel, Dim3{X: (N + 255) / 256, Y: 1, Z: 1}, Dim3{X: 256, Y: 1, Z: 1})
	SynchronizeOrFail(t)

	for i := 0; i < N; i++ {
		if slice[i] != float64(i) {
			t.Fatalf("Kernel did not write index %d", i)
		}
	}
}

// ParallelFor must visit every index exactly once
func TestParallelFor(t *testing.T) {
	const N = 12345

	visits := make([]int32, N)
	err := ParallelFor(N, func(i int) {
		atomic.AddInt32(&visits[i], 1)
	})
	if err != nil {
		t.Fatalf("ParallelFor failed: %v", err)
	}
	SynchronizeOrFail(t)

	for i, v := range visits {
		if v != 1 {
			t.Fatalf("index %d visited %d times", i, v)
		}
	}
}

// ParallelFor2D must visit every index pair exactly once
func TestParallelFor2D(t *testing.T) {
	const rows, cols = 137, 89

	visits := make([]int32, rows*cols)
	err := ParallelFor2D(rows, cols, func(i, j int) {
		atomic.AddInt32(&visits[i*cols+j], 1)
	})
	if err != nil {
		t.Fatalf("ParallelFor2D failed: %v", err)
	}
	SynchronizeOrFail(t)

	for idx, v := range visits {
		if v != 1 {
			t.Fatalf("index (%d,%d) visited %d times", idx/cols, idx%cols, v)
		}
	}
}

// Synchronize must order dependent phases: the second launch sees every
// write of the first.
func TestSynchronizeBarrier(t *testing.T) {
	const N = 5000

	d_data := MallocOrFail(t, N*8)
	defer Free(d_data)
	slice := d_data.Float64()

	if err := ParallelFor(N, func(i int) { slice[i] = 1.0 }); err != nil {
		t.Fatal(err)
	}
	SynchronizeOrFail(t)

	if err := ParallelFor(N, func(i int) { slice[i] += 1.0 }); err != nil {
		t.Fatal(err)
	}
	SynchronizeOrFail(t)

	for i := 0; i < N; i++ {
		if slice[i] != 2.0 {
			t.Fatalf("index %d = %v, want 2.0 after both phases", i, slice[i])
		}
	}
}

func TestForEachAndMap(t *testing.T) {
	const N = 256

	d_in := MallocOrFail(t, N*8)
	d_out := MallocOrFail(t, N*8)
	defer Free(d_in)
	defer Free(d_out)

	in := d_in.Float64()
	for i := 0; i < N; i++ {
		in[i] = float64(i)
	}

	if err := Map(d_in, d_out, N, func(x float64) float64 { return 2 * x }); err != nil {
		t.Fatal(err)
	}
	SynchronizeOrFail(t)

	out := d_out.Float64()
	for i := 0; i < N; i++ {
		if out[i] != 2*float64(i) {
			t.Fatalf("Map: index %d = %v, want %v", i, out[i], 2*float64(i))
		}
	}

	if err := ForEach(d_out, N, func(idx int, val *float64) { *val += 1 }); err != nil {
		t.Fatal(err)
	}
	SynchronizeOrFail(t)

	for i := 0; i < N; i++ {
		if out[i] != 2*float64(i)+1 {
			t.Fatalf("ForEach: index %d = %v, want %v", i, out[i], 2*float64(i)+1)
		}
	}
}

func TestDevicePtrOffset(t *testing.T) {
	const N = 64

	d := MallocOrFail(t, N*8)
	defer Free(d)

	full := d.Float64()
	for i := 0; i < N; i++ {
		full[i] = float64(i)
	}

	half := d.Offset(N / 2 * 8).Float64()
	if len(half) != N/2 {
		t.Fatalf("offset view length = %d, want %d", len(half), N/2)
	}
	if half[0] != float64(N/2) {
		t.Errorf("offset view starts at %v, want %v", half[0], float64(N/2))
	}
}

func TestDeviceProperties(t *testing.T) {
	device := GetDevice()
	if device.NumCores < 1 {
		t.Errorf("NumCores = %d, want >= 1", device.NumCores)
	}
	if device.TotalMem == 0 {
		t.Error("TotalMem = 0, want > 0")
	}

	if GetDeviceCount() != 1 {
		t.Errorf("GetDeviceCount() = %d, want 1", GetDeviceCount())
	}

	if err := SetDevice(0); err != nil {
		t.Errorf("SetDevice(0) failed: %v", err)
	}
	if err := SetDevice(1); !IsDeviceError(err) {
		t.Errorf("SetDevice(1) = %v, want device error", err)
	}

	if _, err := GetDeviceProperties(2); !IsDeviceError(err) {
		t.Errorf("GetDeviceProperties(2) = %v, want device error", err)
	}
}

func TestWorkerPool(t *testing.T) {
	pool := NewWorkerPool(4)

	var counter int64
	for i := 0; i < 100; i++ {
		pool.Submit(func() {
			atomic.AddInt64(&counter, 1)
		})
	}
	pool.Close()

	if counter != 100 {
		t.Errorf("completed %d tasks, want 100", counter)
	}
}

func TestVectorWidth(t *testing.T) {
	w := VectorWidth()
	switch w {
	case 1, 2, 4, 8:
	default:
		t.Errorf("VectorWidth() = %d, want a power of two lane count", w)
	}
	if math.Log2(float64(w)) != math.Trunc(math.Log2(float64(w))) {
		t.Errorf("VectorWidth() = %d not a power of two", w)
	}
}
