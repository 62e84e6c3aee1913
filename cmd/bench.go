package cmd

import (
	"io"
	"os"

	"github.com/google/uuid"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"matmul/cmd/util"
)

var benchCmd = &cobra.Command{
	Use:     "bench",
	Aliases: []string{"b"},
	Short:   "Run the multiplication benchmark with go test and keep its profiles",
	Long: `bench runs go test -bench on the matrix package (or any package given with
--package) and stores the benchmark output and its CPU and heap profiles in the
output folder as <name>.bench, <name>-cpu.pprof and <name>-mem.pprof.`,
	Args: cobra.NoArgs,
	RunE: bench,
}

var benchName string
var benchPackage string
var benchProject string
var benchCount int
var benchFlags []string

func init() {
	benchCmd.Flags().StringVarP(&benchName, "benchname", "b", "Multiply", "The name of the benchmark to run")
	benchCmd.Flags().StringVar(&benchPackage, "package", "./matrix", "The package to benchmark")
	benchCmd.Flags().StringVarP(&benchProject, "project", "p", ".", "The path to the module")
	benchCmd.Flags().IntVarP(&benchCount, "count", "c", 1, "How many times to run the benchmark")
	benchCmd.Flags().StringSliceVar(&benchFlags, "flags", nil, "Any flags to pass to go test")
	benchCmd.Flags().StringVarP(&output, "output", "o", "_data", "The path to the output folder")
	benchCmd.Flags().StringVarP(&name, "name", "n", "", "The id/name of the run (default: a new UUID)")
	RootCmd.AddCommand(benchCmd)
}

func bench(cmd *cobra.Command, args []string) error {
	runName := name
	if len(runName) == 0 {
		runName = uuid.New().String()
	}
	if err := util.CreateFolder(output); err != nil {
		return err
	}
	benchFile, err := os.Create(output + string(os.PathSeparator) + runName + ".bench")
	if err != nil {
		return err
	}
	defer benchFile.Close()

	o := util.BenchOptions{
		Package:    benchPackage,
		BenchName:  benchName,
		Count:      benchCount,
		CPUProfile: util.ProfilePath(output, runName, "cpu"),
		MemProfile: util.ProfilePath(output, runName, "mem"),
		Flags:      benchFlags,
	}
	log.Info("running benchmark",
		zap.String("name", runName),
		zap.String("package", o.Package),
		zap.String("bench", o.BenchName),
		zap.Int("count", o.Count))
	return util.RunBenchmark(cmd.Context(), benchProject, o, io.MultiWriter(cmd.OutOrStdout(), benchFile))
}
