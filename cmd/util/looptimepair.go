package util

import (
	"go/ast"
	"sort"

	"golang.org/x/tools/go/ast/astutil"

	"matmul/graph"
)

// LoopTime is a loop with the profile weight attributed to it.
// Cum counts every sample with a frame inside the loop's lines. Self counts
// samples whose leaf-most frame in the file has this loop as its innermost
// enclosing loop.
type LoopTime struct {
	Loop Loop
	Cum  int64
	Self int64
}

type LoopTimeArray []LoopTime

func (l LoopTimeArray) Len() int {
	return len(l)
}

func (l LoopTimeArray) Less(i, j int) bool {
	// greatest first, outer loops before the inner loops they tie with
	if l[i].Cum != l[j].Cum {
		return l[i].Cum > l[j].Cum
	}
	return l[i].Loop.Pos < l[j].Loop.Pos
}

func (l LoopTimeArray) Swap(i, j int) {
	l[i], l[j] = l[j], l[i]
}

// SortLoopsUsingProfileData attributes the weight in g to the loops of sf
// and returns them greatest first.
func SortLoopsUsingProfileData(g *graph.Graph, sf *SourceFile, loops []Loop) LoopTimeArray {
	times := make(LoopTimeArray, len(loops))
	index := make(map[ast.Node]int, len(loops))
	for i, loop := range loops {
		times[i].Loop = loop
		times[i].Cum = g.CumWhere(func(n *graph.Node) bool {
			return n.Info.Lineno >= loop.StartLine && n.Info.Lineno <= loop.EndLine &&
				graph.SameFile(n.Info.File, sf.Path)
		})
		index[loop.Stmt] = i
	}
	attributeSelfTime(g, sf, times, index)
	sort.Sort(times)
	return times
}

func attributeSelfTime(g *graph.Graph, sf *SourceFile, times LoopTimeArray, index map[ast.Node]int) {
	for _, s := range g.Stacks {
		// Stack nodes are leaf first, so the first hit in the file is the
		// line that was executing there.
		for _, n := range s.Nodes {
			if !graph.SameFile(n.Info.File, sf.Path) {
				continue
			}
			if i, ok := index[sf.innermostLoop(n.Info.Lineno)]; ok {
				times[i].Self += s.Weight
			}
			break
		}
	}
}

// innermostLoop returns the innermost for or range statement enclosing the
// code on line, or nil.
func (sf *SourceFile) innermostLoop(line int) ast.Node {
	pos := sf.lineCode(line)
	if !pos.IsValid() {
		return nil
	}
	path, _ := astutil.PathEnclosingInterval(sf.AST, pos, pos)
	for _, n := range path {
		switch n.(type) {
		case *ast.ForStmt, *ast.RangeStmt:
			return n
		}
	}
	return nil
}

// FilterLoopsUsingProfileData drops loops whose cumulative weight is zero or
// below threshold. The order of sorted is kept.
func FilterLoopsUsingProfileData(sorted LoopTimeArray, threshold int64) LoopTimeArray {
	output := make(LoopTimeArray, 0, len(sorted))
	for _, lt := range sorted {
		if lt.Cum == 0 || lt.Cum < threshold {
			continue
		}
		output = append(output, lt)
	}
	return output
}

// ThresholdWeight converts a percentage of total into a weight.
func ThresholdWeight(total int64, percent float64) int64 {
	if percent <= 0 {
		return 0
	}
	return int64(float64(total) / 100 * percent)
}
