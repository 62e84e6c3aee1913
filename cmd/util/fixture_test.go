package util

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/google/pprof/profile"
	"github.com/stretchr/testify/require"
)

const demoSource = `package demo

func product(a, b [][]float32) [][]float32 {
	out := make([][]float32, len(a))
	for i := range a {
		out[i] = make([]float32, len(b[0]))
		for j := range b[0] {
			var sum float32
			for k := range b {
				sum += a[i][k] * b[k][j]
			}
			out[i][j] = sum
		}
	}
	return out
}

func other() {
	for {
		break
	}
}
`

// writeDemo writes demoSource and a cpu profile of it into a temp folder and
// returns both paths. The profile holds 100ns of samples:
// 60 on line 10, 20 on line 12, 10 on line 6, 5 on line 9 and 5 outside.
func writeDemo(t *testing.T) (string, string) {
	t.Helper()
	dir := t.TempDir()
	src := filepath.Join(dir, "demo.go")
	require.NoError(t, os.WriteFile(src, []byte(demoSource), 0o644))

	fMain := &profile.Function{ID: 1, Name: "main.main", Filename: filepath.Join(dir, "main.go")}
	fProduct := &profile.Function{ID: 2, Name: "demo.product", Filename: src}
	root := &profile.Location{ID: 1, Line: []profile.Line{{Function: fMain, Line: 3}}}
	prof := &profile.Profile{
		SampleType: []*profile.ValueType{
			{Type: "samples", Unit: "count"},
			{Type: "cpu", Unit: "nanoseconds"},
		},
		PeriodType:    &profile.ValueType{Type: "cpu", Unit: "nanoseconds"},
		Period:        1,
		DurationNanos: 100,
		Location:      []*profile.Location{root},
		Function:      []*profile.Function{fMain, fProduct},
	}
	for i, s := range []struct {
		line   int64
		weight int64
	}{{10, 60}, {12, 20}, {6, 10}, {9, 5}} {
		loc := &profile.Location{ID: uint64(i + 2), Line: []profile.Line{{Function: fProduct, Line: s.line}}}
		prof.Location = append(prof.Location, loc)
		prof.Sample = append(prof.Sample, &profile.Sample{
			Location: []*profile.Location{loc, root},
			Value:    []int64{1, s.weight},
		})
	}
	prof.Sample = append(prof.Sample, &profile.Sample{
		Location: []*profile.Location{root},
		Value:    []int64{1, 5},
	})

	profPath := filepath.Join(dir, "cpu.pprof")
	f, err := os.Create(profPath)
	require.NoError(t, err)
	require.NoError(t, prof.Write(f))
	require.NoError(t, f.Close())
	return src, profPath
}
