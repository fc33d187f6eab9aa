package prk

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sync"
	"time"
)

// BenchmarkResult captures the result of a single benchmark run
type BenchmarkResult struct {
	Name         string    `json:"name"`
	Status       string    `json:"status"` // "validated" or "failed"
	Iterations   int       `json:"iterations,omitempty"`
	ProblemSize  int       `json:"problem_size,omitempty"`
	MFlopsPerSec float64   `json:"mflops_per_sec,omitempty"`
	MBPerSec     float64   `json:"mb_per_sec,omitempty"`
	AvgTimeSec   float64   `json:"avg_time_sec,omitempty"`
	Error        string    `json:"error,omitempty"`
	Timestamp    time.Time `json:"timestamp"`
}

// BenchmarkLogger appends run records to a JSON session file so that
// repeated runs can be compared. Logging is off unless the
// PRK_BENCHMARK_LOG environment variable names a directory.
type BenchmarkLogger struct {
	mu          sync.Mutex
	results     []BenchmarkResult
	logDir      string
	sessionFile string
}

var globalLogger = &BenchmarkLogger{
	logDir: os.Getenv("PRK_BENCHMARK_LOG"),
}

// LogBenchmarkResult records a single benchmark result. A no-op when
// logging is not enabled.
func LogBenchmarkResult(result BenchmarkResult) error {
	globalLogger.mu.Lock()
	defer globalLogger.mu.Unlock()

	if globalLogger.logDir == "" {
		return nil
	}

	if globalLogger.sessionFile == "" {
		if err := os.MkdirAll(globalLogger.logDir, 0755); err != nil {
			return fmt.Errorf("failed to create log directory: %w", err)
		}
		timestamp := time.Now().Format("20060102_150405")
		globalLogger.sessionFile = filepath.Join(globalLogger.logDir,
			fmt.Sprintf("session_%s.json", timestamp))
	}

	result.Timestamp = time.Now()
	globalLogger.results = append(globalLogger.results, result)

	// Flush to disk immediately to avoid losing data on crash
	return globalLogger.flush()
}

// flush writes results to disk
func (bl *BenchmarkLogger) flush() error {
	if bl.sessionFile == "" {
		return nil // Not initialized
	}

	data, err := json.MarshalIndent(bl.results, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal results: %w", err)
	}

	return os.WriteFile(bl.sessionFile, data, 0644)
}

// ReadBenchmarkLog loads the records from a session file written by
// LogBenchmarkResult.
func ReadBenchmarkLog(path string) ([]BenchmarkResult, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	var results []BenchmarkResult
	if err := json.Unmarshal(data, &results); err != nil {
		return nil, err
	}
	return results, nil
}
