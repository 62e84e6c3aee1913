package matrix

import "testing"

// BenchmarkMultiply is the profiling target:
//
//	go test ./matrix -run NONE -bench Multiply -cpuprofile cpu.pprof
func BenchmarkMultiply(b *testing.B) {
	for _, n := range []int{16, 64, 128} {
		src := seeded(int64(n))
		x := NewRandom(n, n, src)
		y := NewRandom(n, n, src)
		b.Run(sizeName(n), func(b *testing.B) {
			for i := 0; i < b.N; i++ {
				if _, err := Multiply(x, y); err != nil {
					b.Fatal(err)
				}
			}
		})
	}
}

func BenchmarkNewRandom(b *testing.B) {
	src := seeded(1)
	for i := 0; i < b.N; i++ {
		NewRandom(128, 128, src)
	}
}

func sizeName(n int) string {
	switch n {
	case 16:
		return "16x16"
	case 64:
		return "64x64"
	default:
		return "128x128"
	}
}
