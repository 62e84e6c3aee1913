package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"matmul/cmd/util"
)

var hotloopsCmd = &cobra.Command{
	Use:     "hotloops",
	Aliases: []string{"hl"},
	Short:   "Rank the loops of a Go file by the profile weight spent in them",
	Args:    cobra.NoArgs,
	RunE:    hotloops,
}

var Source string
var ProfileSource string
var threshold float64
var loopSample string
var sarifOut string

func init() {
	hotloopsCmd.Flags().StringVarP(&Source, "source", "s", "", "source file to read from")
	hotloopsCmd.Flags().StringVarP(&ProfileSource, "profile", "p", "", "file to read profile data from")
	hotloopsCmd.Flags().Float64Var(&threshold, "threshold", 0, "hide loops below this percentage of the total weight")
	hotloopsCmd.Flags().StringVar(&loopSample, "sample", "", "sample type to use (default: last in profile)")
	hotloopsCmd.Flags().StringVar(&sarifOut, "sarif", "", "also write the findings as a SARIF report to this file")
	_ = hotloopsCmd.MarkFlagRequired("source")
	_ = hotloopsCmd.MarkFlagRequired("profile")
	RootCmd.AddCommand(hotloopsCmd)
}

func hotloops(cmd *cobra.Command, args []string) error {
	sf, err := util.GetASTFromFile(Source)
	if err != nil {
		return err
	}
	g, err := loadGraph(ProfileSource, loopSample)
	if err != nil {
		return err
	}

	loops := sf.FindLoopsInAST()
	log.Debug("loops found", zap.String("source", Source), zap.Int("loops", len(loops)))
	sorted := util.SortLoopsUsingProfileData(g, sf, loops)
	hot := util.FilterLoopsUsingProfileData(sorted, util.ThresholdWeight(g.Total, threshold))

	out := cmd.OutOrStdout()
	if len(hot) == 0 {
		fmt.Fprintf(out, "No loops in %s above %.2f%% of %s %s\n",
			Source, threshold, util.FormatWeight(g.Total, g.Unit), g.SampleType)
	}
	for _, lt := range hot {
		fmt.Fprintf(out, "Loop at line %d (%s, depth %d) has a total of %s (%s), %s (%s) in the loop itself\n",
			lt.Loop.StartLine, lt.Loop.Kind(), lt.Loop.Depth,
			util.FormatWeight(lt.Cum, g.Unit), util.Percent(lt.Cum, g.Total),
			util.FormatWeight(lt.Self, g.Unit), util.Percent(lt.Self, g.Total))
	}

	if sarifOut == "" {
		return nil
	}
	report, err := util.NewHotLoopReport(sf, hot, g)
	if err != nil {
		return err
	}
	if err := util.WriteSarifFile(report, sarifOut); err != nil {
		return err
	}
	fmt.Fprintf(out, "SARIF file written to %s\n", sarifOut)
	return nil
}
