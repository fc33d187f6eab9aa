//go:build !linux

package prk

// getSystemMemory returns total system memory in bytes.
// Without an OS-specific probe we assume a reasonable workstation.
func getSystemMemory() uint64 {
	return defaultSystemMemory
}
