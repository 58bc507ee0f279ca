// Package graph models a directed lineage multigraph and the traversal,
// path-finding, and structural-statistics queries over it.
//
// A Graph is an immutable snapshot: it is fully constructed by Build and
// never mutated afterwards, so any number of queries may run against the
// same Graph concurrently without coordination.
package graph

import (
	"sort"

	"github.com/linea-labs/linea/pkg/lineage"
)

// Graph is a directed multigraph of lineage nodes and edges with O(1)
// adjacency lookup in both directions. Adjacency is derived state: it is
// computed once by Build from the edge list and never mutated independently.
type Graph struct {
	nodes      map[string]lineage.Node
	edges      []lineage.Edge
	downstream map[string][]lineage.Edge // edges where SourceID == key
	upstream   map[string][]lineage.Edge // edges where TargetID == key
	stats      Stats
}

// Build constructs a Graph from flat node and edge records.
//
// Node ids must be unique (*DuplicateNodeError otherwise) and every edge
// must reference existing node ids (*DanglingEdgeError otherwise). On
// error no partially-built Graph is returned. Edge order is preserved:
// adjacency lists keep discovery order, which traversal uses as a tiebreak.
func Build(nodes []lineage.Node, edges []lineage.Edge) (*Graph, error) {
	g := &Graph{
		nodes:      make(map[string]lineage.Node, len(nodes)),
		edges:      make([]lineage.Edge, 0, len(edges)),
		downstream: make(map[string][]lineage.Edge),
		upstream:   make(map[string][]lineage.Edge),
	}

	for _, n := range nodes {
		if _, exists := g.nodes[n.ID]; exists {
			return nil, &DuplicateNodeError{ID: n.ID}
		}
		g.nodes[n.ID] = n
	}

	// Single pass over edges builds both adjacency indices.
	for _, e := range edges {
		if _, ok := g.nodes[e.SourceID]; !ok {
			return nil, &DanglingEdgeError{EdgeID: e.ID, MissingID: e.SourceID}
		}
		if _, ok := g.nodes[e.TargetID]; !ok {
			return nil, &DanglingEdgeError{EdgeID: e.ID, MissingID: e.TargetID}
		}
		g.edges = append(g.edges, e)
		g.downstream[e.SourceID] = append(g.downstream[e.SourceID], e)
		g.upstream[e.TargetID] = append(g.upstream[e.TargetID], e)
	}

	g.stats = computeStats(g)
	return g, nil
}

// GetNode returns a node by id.
func (g *Graph) GetNode(id string) (lineage.Node, bool) {
	n, ok := g.nodes[id]
	return n, ok
}

// HasNode reports whether the graph contains a node with the given id.
func (g *Graph) HasNode(id string) bool {
	_, ok := g.nodes[id]
	return ok
}

// GetAllNodes returns all nodes sorted by id for deterministic output.
func (g *Graph) GetAllNodes() []lineage.Node {
	nodes := make([]lineage.Node, 0, len(g.nodes))
	for _, n := range g.nodes {
		nodes = append(nodes, n)
	}
	sort.Slice(nodes, func(i, j int) bool { return nodes[i].ID < nodes[j].ID })
	return nodes
}

// Edges returns the edges in discovery order. The returned slice is a copy.
func (g *Graph) Edges() []lineage.Edge {
	out := make([]lineage.Edge, len(g.edges))
	copy(out, g.edges)
	return out
}

// OutgoingEdges returns the edges whose source is the given node,
// in discovery order. Callers must not modify the returned slice.
func (g *Graph) OutgoingEdges(id string) []lineage.Edge {
	return g.downstream[id]
}

// IncomingEdges returns the edges whose target is the given node,
// in discovery order. Callers must not modify the returned slice.
func (g *Graph) IncomingEdges(id string) []lineage.Edge {
	return g.upstream[id]
}

// NodeCount returns the number of nodes in the graph.
func (g *Graph) NodeCount() int {
	return len(g.nodes)
}

// EdgeCount returns the number of edges in the graph.
func (g *Graph) EdgeCount() int {
	return len(g.edges)
}

// Stats returns the structural statistics computed at build time.
func (g *Graph) Stats() Stats {
	return g.stats
}

// NodeIDs returns all node ids sorted lexically.
func (g *Graph) NodeIDs() []string {
	ids := make([]string, 0, len(g.nodes))
	for id := range g.nodes {
		ids = append(ids, id)
	}
	sort.Strings(ids)
	return ids
}
