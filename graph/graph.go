package graph

import (
	"fmt"
	"path/filepath"
	"sort"
	"strings"

	"github.com/google/pprof/profile"
)

// The aggregation below follows pprof's internal graph package (newGraph in
// internal/graph/graph.go), which is not importable. It keeps only what line
// attribution needs: nodes per source line with flat and cumulative weight,
// and the deduplicated stack of every sample.

// NodeInfo identifies a single source line within a function.
type NodeInfo struct {
	Name, File string
	Lineno     int
}

func (i NodeInfo) String() string {
	return fmt.Sprintf("%s %s:%d", i.Name, i.File, i.Lineno)
}

// Node accumulates the sampled weight of one source line.
// Flat counts samples whose leaf-most frame is this line, Cum counts samples
// with this line anywhere on the stack.
type Node struct {
	Info      NodeInfo
	Flat, Cum int64
}

type Nodes []*Node

// Stack is the set of nodes hit by one sample, leaf first, without repeats.
type Stack struct {
	Nodes  Nodes
	Weight int64
}

// Graph is the line-level view of a profile for one sample type.
type Graph struct {
	Nodes      Nodes
	Stacks     []Stack
	Total      int64
	SampleType string
	Unit       string
}

type nodeMap map[NodeInfo]*Node

func (nm nodeMap) findOrInsert(info NodeInfo) *Node {
	if n, ok := nm[info]; ok {
		return n
	}
	n := &Node{Info: info}
	nm[info] = n
	return n
}

// SampleIndex returns the index of the sample type called name. An empty
// name selects the last sample type, which is what pprof shows by default.
func SampleIndex(prof *profile.Profile, name string) (int, error) {
	if len(prof.SampleType) == 0 {
		return 0, fmt.Errorf("profile has no sample types")
	}
	if name == "" {
		return len(prof.SampleType) - 1, nil
	}
	names := make([]string, 0, len(prof.SampleType))
	for i, st := range prof.SampleType {
		if st.Type == name {
			return i, nil
		}
		names = append(names, st.Type)
	}
	return 0, fmt.Errorf("sample type %q not in profile (have %s)", name, strings.Join(names, ", "))
}

// New builds the graph of prof for the sample value at sampleIndex.
// A negative index selects the last sample type.
func New(prof *profile.Profile, sampleIndex int) (*Graph, error) {
	if sampleIndex < 0 {
		sampleIndex = len(prof.SampleType) - 1
	}
	if sampleIndex < 0 || sampleIndex >= len(prof.SampleType) {
		return nil, fmt.Errorf("sample index %d out of range [0, %d)", sampleIndex, len(prof.SampleType))
	}
	g := &Graph{
		SampleType: prof.SampleType[sampleIndex].Type,
		Unit:       prof.SampleType[sampleIndex].Unit,
	}

	// One node per line of every location. Locations without symbol
	// information produce no node.
	nm := make(nodeMap, len(prof.Location))
	locations := make(map[uint64]Nodes, len(prof.Location))
	for _, l := range prof.Location {
		nodes := make(Nodes, 0, len(l.Line))
		for _, line := range l.Line {
			if line.Function == nil {
				continue
			}
			nodes = append(nodes, nm.findOrInsert(NodeInfo{
				Name:   line.Function.Name,
				File:   filepath.ToSlash(filepath.Clean(line.Function.Filename)),
				Lineno: int(line.Line),
			}))
		}
		locations[l.ID] = nodes
	}

	seen := make(map[*Node]bool)
	for _, sample := range prof.Sample {
		if sampleIndex >= len(sample.Value) {
			continue
		}
		w := sample.Value[sampleIndex]
		if w == 0 {
			continue
		}
		for k := range seen {
			delete(seen, k)
		}
		stack := Stack{Weight: w}
		var leaf *Node
		// Location[0] is the leaf and Line[0] the innermost inlined frame, so
		// walk from the root down and the last node visited is the leaf.
		for i := len(sample.Location) - 1; i >= 0; i-- {
			locNodes := locations[sample.Location[i].ID]
			for ni := len(locNodes) - 1; ni >= 0; ni-- {
				n := locNodes[ni]
				if !seen[n] {
					seen[n] = true
					n.Cum += w
					stack.Nodes = append(stack.Nodes, n)
				}
				leaf = n
			}
		}
		if leaf != nil {
			leaf.Flat += w
		}
		reverse(stack.Nodes)
		g.Stacks = append(g.Stacks, stack)
		g.Total += w
	}

	for _, n := range nm {
		if n.Cum == 0 && n.Flat == 0 {
			continue
		}
		g.Nodes = append(g.Nodes, n)
	}
	g.Nodes.Sort()
	return g, nil
}

func reverse(ns Nodes) {
	for i, j := 0, len(ns)-1; i < j; i, j = i+1, j-1 {
		ns[i], ns[j] = ns[j], ns[i]
	}
}

// FindNodesByLine returns the nodes of file whose line lies in [start, end].
func (g *Graph) FindNodesByLine(file string, start, end int) Nodes {
	var nodes Nodes
	for _, n := range g.Nodes {
		if n.Info.Lineno >= start && n.Info.Lineno <= end && SameFile(n.Info.File, file) {
			nodes = append(nodes, n)
		}
	}
	return nodes
}

// CumWhere sums the weight of every sample with at least one node matching
// pred. Each sample counts once however many of its nodes match.
func (g *Graph) CumWhere(pred func(*Node) bool) int64 {
	var total int64
	for _, s := range g.Stacks {
		for _, n := range s.Nodes {
			if pred(n) {
				total += s.Weight
				break
			}
		}
	}
	return total
}

// SameFile reports whether the profile path and the source path name the same
// file. Profiles record absolute build paths, so a relative source path
// matches when it is a suffix on a path boundary.
func SameFile(profilePath, sourcePath string) bool {
	p := filepath.ToSlash(filepath.Clean(profilePath))
	s := filepath.ToSlash(filepath.Clean(sourcePath))
	if p == s {
		return true
	}
	s = strings.TrimPrefix(s, "./")
	return strings.HasSuffix(p, "/"+s)
}

// Sort orders nodes by decreasing cumulative weight, then name, then
// decreasing flat weight.
func (ns Nodes) Sort() {
	sort.SliceStable(ns, func(i, j int) bool {
		l, r := ns[i], ns[j]
		if iv, jv := abs64(l.Cum), abs64(r.Cum); iv != jv {
			return iv > jv
		}
		if l.Info.Name != r.Info.Name {
			return l.Info.Name < r.Info.Name
		}
		if iv, jv := abs64(l.Flat), abs64(r.Flat); iv != jv {
			return iv > jv
		}
		return l.Info.String() < r.Info.String()
	})
}

func abs64(i int64) int64 {
	if i < 0 {
		return -i
	}
	return i
}
