package cmd

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/google/pprof/profile"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const sumSource = `package demo

func sum(xs []int) int {
	total := 0
	for _, x := range xs {
		total += x
	}
	return total
}
`

// writeSumProfile writes sumSource and a cpu profile with 30ns on line 6
// and 10ns on line 8.
func writeSumProfile(t *testing.T) (string, string) {
	t.Helper()
	dir := t.TempDir()
	src := filepath.Join(dir, "sum.go")
	require.NoError(t, os.WriteFile(src, []byte(sumSource), 0o644))

	fn := &profile.Function{ID: 1, Name: "demo.sum", Filename: src}
	inLoop := &profile.Location{ID: 1, Line: []profile.Line{{Function: fn, Line: 6}}}
	after := &profile.Location{ID: 2, Line: []profile.Line{{Function: fn, Line: 8}}}
	prof := &profile.Profile{
		SampleType: []*profile.ValueType{{Type: "samples", Unit: "count"}, {Type: "cpu", Unit: "nanoseconds"}},
		PeriodType: &profile.ValueType{Type: "cpu", Unit: "nanoseconds"},
		Period:     1,
		Sample: []*profile.Sample{
			{Location: []*profile.Location{inLoop}, Value: []int64{3, 30}},
			{Location: []*profile.Location{after}, Value: []int64{1, 10}},
		},
		Location: []*profile.Location{inLoop, after},
		Function: []*profile.Function{fn},
	}
	profPath := filepath.Join(dir, "cpu.pprof")
	f, err := os.Create(profPath)
	require.NoError(t, err)
	require.NoError(t, prof.Write(f))
	require.NoError(t, f.Close())
	return src, profPath
}

func TestHotloops(t *testing.T) {
	src, profPath := writeSumProfile(t)
	sarifPath := filepath.Join(t.TempDir(), "hot.sarif")

	out, err := execute(t, "hotloops", "-s", src, "-p", profPath, "--sarif", sarifPath)
	require.NoError(t, err)
	assert.Contains(t, out, "Loop at line 5 (range, depth 0) has a total of 30ns (75.00%), 30ns (75.00%) in the loop itself\n")
	assert.Contains(t, out, "SARIF file written to "+sarifPath)
	assert.FileExists(t, sarifPath)
}

func TestHotloopsThreshold(t *testing.T) {
	src, profPath := writeSumProfile(t)

	out, err := execute(t, "hl", "-s", src, "-p", profPath, "--threshold", "80")
	require.NoError(t, err)
	assert.Equal(t, "No loops in "+src+" above 80.00% of 40ns cpu\n", out)
}

func TestHotloopsSampleCount(t *testing.T) {
	src, profPath := writeSumProfile(t)

	out, err := execute(t, "hotloops", "-s", src, "-p", profPath, "--sample", "samples")
	require.NoError(t, err)
	assert.Contains(t, out, "has a total of 3 (75.00%)")
}

func TestHotloopsErrors(t *testing.T) {
	src, profPath := writeSumProfile(t)

	_, err := execute(t, "hotloops", "-p", profPath)
	assert.Error(t, err, "source is required")

	_, err = execute(t, "hotloops", "-s", filepath.Join(t.TempDir(), "missing.go"), "-p", profPath)
	assert.Error(t, err)

	_, err = execute(t, "hotloops", "-s", src, "-p", filepath.Join(t.TempDir(), "missing.pprof"))
	assert.Error(t, err)
}
