package util

import (
	"fmt"
	"os"

	"github.com/owenrumney/go-sarif/sarif"

	"matmul/graph"
)

const HotLoopRule = "MATMUL_HOT_LOOP"

// NewHotLoopReport builds a SARIF report with one result per loop in loops.
func NewHotLoopReport(sf *SourceFile, loops LoopTimeArray, g *graph.Graph) (*sarif.Report, error) {
	report, err := sarif.New(sarif.Version210)
	if err != nil {
		return nil, fmt.Errorf("create SARIF report: %w", err)
	}
	run := sarif.NewRun("matmul", "https://github.com/google/pprof")
	run.AddRule(HotLoopRule).
		WithDescription("Loop that accounts for a large share of the sampled profile weight")
	for _, lt := range loops {
		msg := fmt.Sprintf("%s loop at line %d accounts for %s of %s %s (%s in the loop itself)",
			lt.Loop.Kind(), lt.Loop.StartLine, Percent(lt.Cum, g.Total),
			FormatWeight(g.Total, g.Unit), g.SampleType, FormatWeight(lt.Self, g.Unit))
		addRunResult(run, HotLoopRule, msg, sf.Path, lt.Loop.StartLine, lt.Loop.Column)
	}
	report.AddRun(run)
	return report, nil
}

func addRunResult(run *sarif.Run, ruleID, messageText, filePath string, line, column int) {
	run.AddResult(ruleID).
		WithLocation(sarif.NewLocationWithPhysicalLocation(sarif.NewPhysicalLocation().
			WithArtifactLocation(sarif.NewArtifactLocation().
				WithUri(filePath)).
			WithRegion(sarif.NewRegion().
				WithStartLine(line).
				WithStartColumn(column)))).
		WithMessage(sarif.NewMessage().WithText(messageText))
}

// WriteSarifFile writes report to path as JSON.
func WriteSarifFile(report *sarif.Report, path string) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create SARIF file: %w", err)
	}
	defer f.Close()
	if err := report.Write(f); err != nil {
		return fmt.Errorf("write SARIF report: %w", err)
	}
	return nil
}
