package graph

import (
	"math"
	"sort"
)

// Stats holds the structural statistics of a graph, computed once at build
// time.
type Stats struct {
	NodeCount    int      `json:"nodeCount"`
	EdgeCount    int      `json:"edgeCount"`
	RootNodes    []string `json:"rootNodes"`
	LeafNodes    []string `json:"leafNodes"`
	MaxInDegree  int      `json:"maxInDegree"`
	MaxOutDegree int      `json:"maxOutDegree"`
	AvgInDegree  float64  `json:"avgInDegree"`
	AvgOutDegree float64  `json:"avgOutDegree"`
	// Density is 2E / (N(N-1)) for N > 1, else 0.
	Density float64 `json:"density"`
	// ComplexityScore is min(10, 0.3*ln(N+1) + 0.4*ln(E+1) + 0.3*max(maxIn, maxOut)).
	// The constants are a fixed scoring convention: scores are only comparable
	// across graphs if every implementation reproduces them exactly.
	ComplexityScore float64 `json:"complexityScore"`
}

func computeStats(g *Graph) Stats {
	s := Stats{
		NodeCount: len(g.nodes),
		EdgeCount: len(g.edges),
	}

	for id := range g.nodes {
		in := len(g.upstream[id])
		out := len(g.downstream[id])
		if in == 0 {
			s.RootNodes = append(s.RootNodes, id)
		}
		if out == 0 {
			s.LeafNodes = append(s.LeafNodes, id)
		}
		if in > s.MaxInDegree {
			s.MaxInDegree = in
		}
		if out > s.MaxOutDegree {
			s.MaxOutDegree = out
		}
	}
	sort.Strings(s.RootNodes)
	sort.Strings(s.LeafNodes)

	n := float64(s.NodeCount)
	e := float64(s.EdgeCount)
	if s.NodeCount > 0 {
		s.AvgInDegree = e / n
		s.AvgOutDegree = e / n
	}
	if s.NodeCount > 1 {
		s.Density = 2 * e / (n * (n - 1))
	}

	branching := float64(s.MaxInDegree)
	if s.MaxOutDegree > s.MaxInDegree {
		branching = float64(s.MaxOutDegree)
	}
	score := 0.3*math.Log(n+1) + 0.4*math.Log(e+1) + 0.3*branching
	s.ComplexityScore = math.Min(10, score)

	return s
}
