package cmd

import (
	"fmt"
	"math/rand"
	"os"
	"strconv"
	"time"

	"github.com/dustin/go-humanize"
	"github.com/google/uuid"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"matmul/cmd/util"
	"matmul/matrix"
)

// RootCmd multiplies two random matrices. It is also the parent of the
// profile analysis commands.
var RootCmd = &cobra.Command{
	Use:   "matmul <rows> <inner> <cols>",
	Short: "Multiply two random matrices with the textbook triple loop",
	Long: `matmul builds a rows x inner and an inner x cols matrix of uniform random
float32 values, multiplies them and prints all three.

With --profile the multiplication is recorded as a CPU profile (and a heap
profile afterwards) that the top and hotloops commands can analyse.`,
	Example: `  matmul 3 4 2 --seed 42
  matmul 512 512 512 --profile -n baseline
  matmul hotloops -s matrix/matrix.go -p _data/baseline-cpu.pprof`,
	Args:              dimensionArgs,
	PersistentPreRunE: setupLogger,
	PersistentPostRun: func(cmd *cobra.Command, args []string) { _ = log.Sync() },
	RunE:              multiply,
	SilenceUsage:      true,
	SilenceErrors:     true,
}

var (
	seed      int64
	repeat    int
	doProfile bool
	output    string
	name      string
	verbose   bool

	log = zap.NewNop()
)

// names of the positional arguments, in order
var dimensionNames = [3]string{"final row", "internal dimension", "final col"}

// Execute adds all child commands to the root command and sets Flags appropriately.
// This is called by main.main(). It only needs to happen once to the RootCmd.
func Execute() {
	err := RootCmd.Execute()
	if err != nil {
		println("Failed to execute command: " + err.Error())
		os.Exit(1)
	}
}

func init() {
	RootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Log progress to stderr")

	RootCmd.Flags().Int64Var(&seed, "seed", 0, "Seed for the random matrices (default: current time)")
	RootCmd.Flags().IntVarP(&repeat, "repeat", "r", 1, "Number of times to run the multiplication")
	RootCmd.Flags().BoolVar(&doProfile, "profile", false, "Record CPU and heap profiles of the multiplication")
	RootCmd.Flags().StringVarP(&output, "output", "o", "_data", "The path to the folder for profiles")
	RootCmd.Flags().StringVarP(&name, "name", "n", "", "The id/name of the run (default: a new UUID)")
}

func setupLogger(cmd *cobra.Command, args []string) error {
	if !verbose {
		log = zap.NewNop()
		return nil
	}
	l, err := zap.NewDevelopment()
	if err != nil {
		return fmt.Errorf("create logger: %w", err)
	}
	log = l
	return nil
}

func dimensionArgs(cmd *cobra.Command, args []string) error {
	_, err := parseDimensions(args)
	return err
}

// parseDimensions reads rows, inner and cols from the positional arguments.
func parseDimensions(args []string) ([3]int, error) {
	var dims [3]int
	for i, argName := range dimensionNames {
		if i >= len(args) {
			return dims, fmt.Errorf("no %s number given", argName)
		}
		v, err := strconv.ParseUint(args[i], 10, strconv.IntSize-1)
		if err != nil {
			return dims, fmt.Errorf("invalid %s number %q: %w", argName, args[i], err)
		}
		dims[i] = int(v)
	}
	if len(args) > len(dimensionNames) {
		return dims, fmt.Errorf("expected 3 arguments, got %d", len(args))
	}
	return dims, nil
}

func multiply(cmd *cobra.Command, args []string) error {
	dims, err := parseDimensions(args)
	if err != nil {
		return err
	}
	if repeat < 1 {
		return fmt.Errorf("--repeat must be at least 1, got %d", repeat)
	}
	rows, inner, cols := dims[0], dims[1], dims[2]

	runSeed := seed
	if !cmd.Flags().Changed("seed") {
		runSeed = time.Now().UnixNano()
	}
	runName := name
	if len(runName) == 0 {
		runName = uuid.New().String()
	}
	log.Info("starting run",
		zap.String("name", runName),
		zap.Int("rows", rows), zap.Int("inner", inner), zap.Int("cols", cols),
		zap.Int64("seed", runSeed),
		zap.String("input size", humanize.Bytes(uint64(4*(rows*inner+inner*cols)))))

	rng := rand.New(rand.NewSource(runSeed))
	first := matrix.NewRandom(rows, inner, rng)
	second := matrix.NewRandom(inner, cols, rng)

	var stopProfile func() error
	if doProfile {
		if err := util.CreateFolder(output); err != nil {
			return fmt.Errorf("create output folder: %w", err)
		}
		cpuPath := util.ProfilePath(output, runName, "cpu")
		stopProfile, err = util.StartCPUProfile(cpuPath)
		if err != nil {
			return err
		}
		log.Info("cpu profile started", zap.String("path", cpuPath))
	}

	result, durations, mulErr := multiplyRepeated(first, second, repeat)

	if stopProfile != nil {
		if err := stopProfile(); err != nil {
			return err
		}
		memPath := util.ProfilePath(output, runName, "mem")
		if err := util.WriteHeapProfile(memPath); err != nil {
			return err
		}
		log.Info("profiles written",
			zap.String("cpu", util.ProfilePath(output, runName, "cpu")),
			zap.String("mem", memPath))
	}

	out := cmd.OutOrStdout()
	if mulErr != nil {
		fmt.Fprintf(out, "get error in matrix mul: %v\n", mulErr)
		return nil
	}
	fmt.Fprintf(out, "first matrix: \n%v\n", first)
	fmt.Fprintf(out, "second matrix: \n%v\n", second)
	fmt.Fprintf(out, "result matrix: \n%v\n", result)

	if repeat > 1 {
		summary, err := util.SummariseDurations(durations)
		if err != nil {
			return err
		}
		fmt.Fprintf(out, "timing (%d runs): min %v, median %v, mean %v, p99 %v, max %v, stddev %v, %s\n",
			summary.Runs, summary.Min, summary.Median, summary.Mean, summary.P99, summary.Max, summary.StdDev,
			util.Throughput(int64(rows)*int64(inner)*int64(cols), summary.Median))
	}
	return nil
}

// multiplyRepeated runs the product n times and returns the last result with
// the duration of every run.
func multiplyRepeated(a, b matrix.Matrix, n int) (matrix.Matrix, []time.Duration, error) {
	var result matrix.Matrix
	durations := make([]time.Duration, 0, n)
	for i := 0; i < n; i++ {
		start := time.Now()
		r, err := matrix.Multiply(a, b)
		if err != nil {
			return matrix.Matrix{}, nil, err
		}
		elapsed := time.Since(start)
		durations = append(durations, elapsed)
		log.Debug("multiplied", zap.Int("run", i+1), zap.Duration("elapsed", elapsed))
		result = r
	}
	return result, durations, nil
}
