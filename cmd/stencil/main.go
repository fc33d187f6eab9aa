// Command stencil measures the rate at which a space-invariant, linear,
// symmetric filter can be applied to a square grid.
//
// Usage:
//
//	stencil <# iterations> <array dimension> [<tile_size> [<star/grid> [<radius>]]]
//
// The output consists of diagnostics to make sure the algorithm worked,
// and of timing statistics.
package main

import (
	"fmt"
	"os"
	"strconv"

	prk "github.com/homerdin/PRK"
	"github.com/homerdin/PRK/stencil"
)

const usage = "Usage: <# iterations> <array dimension> [<tile_size> [<star/grid> [<radius>]]]"

func main() {
	fmt.Println(prk.VersionBanner)
	fmt.Println("Go stencil execution on 2D grid")

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
	fmt.Println("Grid size            =", cfg.N)
	fmt.Println("Tile size            =", cfg.TileSize)
	fmt.Println("Type of stencil      =", cfg.Shape)
	fmt.Println("Radius of stencil    =", cfg.Radius)
	prk.PrintDeviceInfo()

	res, err := stencil.Run(cfg)
	if err != nil {
		if prk.IsValidationError(err) && res != nil {
			fmt.Printf("ERROR: L1 norm = %f Reference L1 norm = %f\n",
				res.Norm, res.ReferenceNorm)
		} else {
			fmt.Println(err)
		}
		logResult(cfg, res, err)
		os.Exit(1)
	}

	fmt.Println("Solution validates")
	fmt.Printf("Rate (MFlops/s): %f Avg time (s): %f\n", res.MFlops, res.AvgTime)
	logResult(cfg, res, nil)
}

// parseArgs converts the positional arguments; range checks live in
// Config.Validate so nothing is allocated before parameters are known
// good.
func parseArgs(args []string) (stencil.Config, error) {
	cfg := stencil.DefaultConfig()
	if len(args) < 2 {
		return cfg, fmt.Errorf("%s", usage)
	}

	var err error
	if cfg.Iterations, err = strconv.Atoi(args[0]); err != nil {
		return cfg, fmt.Errorf("ERROR: invalid iteration count %q", args[0])
	}
	if cfg.N, err = strconv.Atoi(args[1]); err != nil {
		return cfg, fmt.Errorf("ERROR: invalid grid dimension %q", args[1])
	}
	if len(args) > 2 {
		if cfg.TileSize, err = strconv.Atoi(args[2]); err != nil {
			return cfg, fmt.Errorf("ERROR: invalid tile size %q", args[2])
		}
	}
	if len(args) > 3 {
		cfg.Shape = stencil.ParseShape(args[3])
	}
	if len(args) > 4 {
		if cfg.Radius, err = strconv.Atoi(args[4]); err != nil {
			return cfg, fmt.Errorf("ERROR: invalid stencil radius %q", args[4])
		}
	}
	return cfg, nil
}

func logResult(cfg stencil.Config, res *stencil.Result, runErr error) {
	rec := prk.BenchmarkResult{
		Name:        "stencil",
		Status:      "validated",
		Iterations:  cfg.Iterations,
		ProblemSize: cfg.N,
	}
	if res != nil {
		rec.MFlopsPerSec = res.MFlops
		rec.AvgTimeSec = res.AvgTime
	}
	if runErr != nil {
		rec.Status = "failed"
		rec.Error = runErr.Error()
	}
	prk.LogBenchmarkResult(rec)
}
