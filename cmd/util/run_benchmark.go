package util

import (
	"context"
	"fmt"
	"io"
	"os/exec"
	"path/filepath"
)

// BenchOptions describes one `go test -bench` invocation.
type BenchOptions struct {
	// Package is the package pattern to benchmark, e.g. ./matrix.
	Package   string
	BenchName string
	Count     int
	// CPUProfile and MemProfile are written when non-empty.
	CPUProfile string
	MemProfile string
	Flags      []string
}

// BenchArgs returns the arguments for the go command.
func BenchArgs(o BenchOptions) ([]string, error) {
	if o.BenchName == "" {
		return nil, fmt.Errorf("no benchmark name given")
	}
	if o.Count < 1 {
		return nil, fmt.Errorf("count must be at least 1, got %d", o.Count)
	}
	pkg := o.Package
	if pkg == "" {
		pkg = "."
	}
	// set up all the arguments in an array, to allow for conditional arguments
	args := []string{"test", pkg}
	args = append(args, o.Flags...)
	args = append(args, "-bench="+o.BenchName) // the benchmark to run
	args = append(args, "-run=NONE")           // no normal tests
	args = append(args, "-benchmem")
	args = append(args, fmt.Sprintf("-count=%d", o.Count))
	if o.CPUProfile != "" {
		args = append(args, "-cpuprofile", absOrSame(o.CPUProfile))
	}
	if o.MemProfile != "" {
		args = append(args, "-memprofile", absOrSame(o.MemProfile))
	}
	return args, nil
}

// go test resolves profile paths against the package directory
func absOrSame(path string) string {
	if abs, err := filepath.Abs(path); err == nil {
		return abs
	}
	return path
}

// RunBenchmark runs the benchmark described by o in dir, streaming the
// combined output of the go command to out.
func RunBenchmark(ctx context.Context, dir string, o BenchOptions, out io.Writer) error {
	args, err := BenchArgs(o)
	if err != nil {
		return err
	}
	cmd := exec.CommandContext(ctx, "go", args...)
	cmd.Dir = dir
	cmd.Stdout = out
	cmd.Stderr = out
	if err := cmd.Run(); err != nil {
		return fmt.Errorf("failed to run benchmark: %w", err)
	}
	return nil
}
