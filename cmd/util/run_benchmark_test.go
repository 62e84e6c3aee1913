package util

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBenchArgs(t *testing.T) {
	cpu, err := filepath.Abs("cpu.pprof")
	require.NoError(t, err)

	args, err := BenchArgs(BenchOptions{
		Package:    "./matrix",
		BenchName:  "Multiply",
		Count:      3,
		CPUProfile: "cpu.pprof",
		Flags:      []string{"-cpu=1"},
	})
	require.NoError(t, err)
	assert.Equal(t, []string{
		"test", "./matrix", "-cpu=1", "-bench=Multiply", "-run=NONE", "-benchmem", "-count=3",
		"-cpuprofile", cpu,
	}, args)

	args, err = BenchArgs(BenchOptions{BenchName: ".", Count: 1, MemProfile: "/tmp/mem.pprof"})
	require.NoError(t, err)
	assert.Equal(t, []string{"test", ".", "-bench=.", "-run=NONE", "-benchmem", "-count=1", "-memprofile", "/tmp/mem.pprof"}, args)
}

func TestBenchArgsInvalid(t *testing.T) {
	_, err := BenchArgs(BenchOptions{Count: 1})
	assert.Error(t, err)
	_, err = BenchArgs(BenchOptions{BenchName: "Multiply"})
	assert.Error(t, err)

	assert.Error(t, RunBenchmark(context.Background(), ".", BenchOptions{}, nil))
}
