package cmd

import (
	"fmt"
	"text/tabwriter"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"matmul/cmd/util"
	"matmul/graph"
)

var topCmd = &cobra.Command{
	Use:     "top",
	Aliases: []string{"t"},
	Short:   "List the source lines with the most sampled weight in a profile",
	Args:    cobra.NoArgs,
	RunE:    top,
}

var topProfile string
var topCount int
var topSample string

func init() {
	topCmd.Flags().StringVarP(&topProfile, "profile", "p", "", "file to read profile data from")
	topCmd.Flags().IntVarP(&topCount, "count", "c", 10, "number of lines to show (0 for all)")
	topCmd.Flags().StringVar(&topSample, "sample", "", "sample type to use, e.g. cpu or alloc_space (default: last in profile)")
	_ = topCmd.MarkFlagRequired("profile")
	RootCmd.AddCommand(topCmd)
}

func top(cmd *cobra.Command, args []string) error {
	g, err := loadGraph(topProfile, topSample)
	if err != nil {
		return err
	}
	nodes := g.Nodes
	if topCount > 0 && len(nodes) > topCount {
		nodes = nodes[:topCount]
	}

	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "Showing %d of %d lines, %s total %s\n",
		len(nodes), len(g.Nodes), g.SampleType, util.FormatWeight(g.Total, g.Unit))
	w := tabwriter.NewWriter(out, 0, 0, 2, ' ', tabwriter.AlignRight)
	fmt.Fprintln(w, "flat\tflat%\tcum\tcum%\t")
	for _, n := range nodes {
		fmt.Fprintf(w, "%s\t%s\t%s\t%s\t  %s %s:%d\n",
			util.FormatWeight(n.Flat, g.Unit), util.Percent(n.Flat, g.Total),
			util.FormatWeight(n.Cum, g.Unit), util.Percent(n.Cum, g.Total),
			n.Info.Name, n.Info.File, n.Info.Lineno)
	}
	return w.Flush()
}

// loadGraph reads the profile at path and builds its graph for the named
// sample type.
func loadGraph(path, sample string) (*graph.Graph, error) {
	prof, err := util.GetProfileDataFromFile(path)
	if err != nil {
		return nil, err
	}
	idx, err := graph.SampleIndex(prof, sample)
	if err != nil {
		return nil, err
	}
	g, err := graph.New(prof, idx)
	if err != nil {
		return nil, err
	}
	log.Debug("profile loaded",
		zap.String("path", path),
		zap.String("sample", g.SampleType),
		zap.Int("lines", len(g.Nodes)),
		zap.Int("samples", len(g.Stacks)))
	return g, nil
}
