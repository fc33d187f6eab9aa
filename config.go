// Package prk configuration constants
package prk

// Cache sizes for different levels (in bytes)
const (
	// L1 cache size per core (typical for modern CPUs)
	L1CacheSize = 32 * 1024 // 32KB

	// L2 cache size per core (typical for modern CPUs)
	L2CacheSize = 256 * 1024 // 256KB

	// L3 cache size (shared, typical for modern CPUs)
	L3CacheSize = 8 * 1024 * 1024 // 8MB
)

// Thread and block dimensions
const (
	// Default block size for 1D kernels
	DefaultBlockSize = 256

	// Maximum threads per block
	MaxThreadsPerBlock = 1024
)

// Memory pool parameters
const (
	// Memory alignment for allocations (cache line)
	MemoryAlignment = 64

	// Assumed total memory when the OS cannot be queried
	defaultSystemMemory = 16 * 1024 * 1024 * 1024 // 16GB
)

// Benchmark parameters
const (
	// Default blocking factor for the stencil sweep. A 32x32 tile of
	// float64 is 8KB, a quarter of a typical L1.
	DefaultTileSize = 32

	// Default stencil radius
	DefaultRadius = 2

	// Largest grid/vector dimension accepted before index arithmetic
	// risks overflow
	MaxDimension = 1 << 25

	// Largest single buffer the pool will allocate. Requests beyond this
	// fail with ErrOutOfMemory rather than faulting inside make; parameter
	// validation uses the same bound so impossible problem sizes are
	// rejected before any allocation.
	MaxAllocSize = 1 << 40 // 1TB

	// Absolute tolerance for checksum validation
	ValidationEpsilon = 1.0e-8
)
