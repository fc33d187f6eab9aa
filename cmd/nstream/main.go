// Command nstream measures memory bandwidth with the triad kernel
// A = A + B + scalar*C over double-precision vectors.
//
// Usage:
//
//	nstream <# iterations> <vector length>
package main

import (
	"fmt"
	"os"
	"strconv"

	prk "github.com/homerdin/PRK"
	"github.com/homerdin/PRK/triad"
)

const usage = "Usage: <# iterations> <vector length>"

func main() {
	fmt.Println(prk.VersionBanner)
	fmt.Println("Go STREAM triad: A = B + scalar * C")

	cfg, err := parseArgs(os.Args[1:])
	if err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
	if err := cfg.Validate(); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}

	fmt.Println("Number of iterations =", cfg.Iterations)
	fmt.Println("Vector length        =", cfg.Length)
	prk.PrintDeviceInfo()

	res, err := triad.Run(cfg)
	if err != nil {
		if prk.IsValidationError(err) && res != nil {
			fmt.Println("Failed Validation on output array")
			fmt.Printf("       Expected checksum: %f\n", res.Expected)
			fmt.Printf("       Observed checksum: %f\n", res.Checksum)
			fmt.Println("ERROR: solution did not validate")
		} else {
			fmt.Println(err)
		}
		logResult(cfg, res, err)
		os.Exit(1)
	}

	fmt.Println("Solution validates")
	fmt.Printf("Rate (MB/s): %f Avg time (s): %f\n", res.MBPerSec, res.AvgTime)
	logResult(cfg, res, nil)
}

func parseArgs(args []string) (triad.Config, error) {
	var cfg triad.Config
	if len(args) < 2 {
		return cfg, fmt.Errorf("%s", usage)
	}

	var err error
	if cfg.Iterations, err = strconv.Atoi(args[0]); err != nil {
		return cfg, fmt.Errorf("ERROR: invalid iteration count %q", args[0])
	}
	if cfg.Length, err = strconv.Atoi(args[1]); err != nil {
		return cfg, fmt.Errorf("ERROR: invalid vector length %q", args[1])
	}
	return cfg, nil
}

func logResult(cfg triad.Config, res *triad.Result, runErr error) {
	rec := prk.BenchmarkResult{
		Name:        "nstream",
		Status:      "validated",
		Iterations:  cfg.Iterations,
		ProblemSize: cfg.Length,
	}
	if res != nil {
		rec.MBPerSec = res.MBPerSec
		rec.AvgTimeSec = res.AvgTime
	}
	if runErr != nil {
		rec.Status = "failed"
		rec.Error = runErr.Error()
	}
	prk.LogBenchmarkResult(rec)
}
