package util

import (
	"fmt"
	"time"

	"github.com/dustin/go-humanize"
	"github.com/montanaflynn/stats"
)

// Summary describes repeated timings of the same operation.
type Summary struct {
	Runs   int
	Min    time.Duration
	Max    time.Duration
	Mean   time.Duration
	Median time.Duration
	P99    time.Duration
	StdDev time.Duration
}

// SummariseDurations computes a Summary of ds.
func SummariseDurations(ds []time.Duration) (Summary, error) {
	if len(ds) == 0 {
		return Summary{}, fmt.Errorf("no durations to summarise")
	}
	data := make(stats.Float64Data, len(ds))
	for i, d := range ds {
		data[i] = float64(d)
	}
	s := Summary{Runs: len(ds)}
	for _, f := range []struct {
		dst  *time.Duration
		calc func(stats.Float64Data) (float64, error)
	}{
		{&s.Min, stats.Min},
		{&s.Max, stats.Max},
		{&s.Mean, stats.Mean},
		{&s.Median, stats.Median},
		{&s.StdDev, stats.StandardDeviation},
		{&s.P99, func(d stats.Float64Data) (float64, error) { return stats.Percentile(d, 99) }},
	} {
		v, err := f.calc(data)
		if err != nil {
			return Summary{}, err
		}
		*f.dst = time.Duration(v)
	}
	return s, nil
}

// Throughput formats the floating point operation rate of a product with
// the given number of multiply-adds, e.g. "1.2 GFLOP/s".
func Throughput(multiplyAdds int64, d time.Duration) string {
	if d <= 0 {
		return "n/a"
	}
	flops := 2 * float64(multiplyAdds) / d.Seconds()
	return humanize.SIWithDigits(flops, 2, "FLOP/s")
}

// FormatWeight renders a sample value in its unit.
func FormatWeight(v int64, unit string) string {
	switch unit {
	case "nanoseconds":
		return time.Duration(v).String()
	case "bytes":
		if v < 0 {
			return "-" + humanize.Bytes(uint64(-v))
		}
		return humanize.Bytes(uint64(v))
	default:
		return humanize.Comma(v)
	}
}

// Percent renders v as a percentage of total.
func Percent(v, total int64) string {
	if total == 0 {
		return "0.00%"
	}
	return fmt.Sprintf("%.2f%%", 100*float64(v)/float64(total))
}
