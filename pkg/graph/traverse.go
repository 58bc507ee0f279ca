package graph

import (
	"strings"

	"github.com/linea-labs/linea/pkg/lineage"
)

// DefaultMaxDepth bounds traversal and path enumeration when the caller
// passes a depth of 0.
const DefaultMaxDepth = 10

// Direction selects which adjacency a traversal follows.
type Direction string

// Traversal directions.
const (
	// DirectionDownstream follows edges source -> target (descendants).
	DirectionDownstream Direction = "downstream"
	// DirectionUpstream follows edges target -> source (ancestors).
	DirectionUpstream Direction = "upstream"
	// DirectionBoth follows the union of both adjacencies at every hop.
	DirectionBoth Direction = "both"
)

// ParseDirection converts a string to a Direction.
// Returns the direction and true if valid, or DirectionDownstream and false if invalid.
func ParseDirection(s string) (Direction, bool) {
	switch Direction(strings.ToLower(s)) {
	case DirectionDownstream:
		return DirectionDownstream, true
	case DirectionUpstream:
		return DirectionUpstream, true
	case DirectionBoth:
		return DirectionBoth, true
	default:
		return DirectionDownstream, false
	}
}

// Traverse performs a bounded-depth depth-first walk from startID and returns
// every reachable node at most once, starting with the start node itself.
//
// A visited set guarantees termination even when the graph contains cycles.
// Neighbors are explored in edge discovery order; for DirectionBoth the
// downstream edges of a node are explored before its upstream edges.
// A startID not present in the graph yields an empty result, not an error.
// maxDepth of 0 means DefaultMaxDepth; a negative maxDepth is a programming
// error and fails fast with *InvalidArgumentError.
func Traverse(g *Graph, startID string, dir Direction, maxDepth int) ([]lineage.Node, error) {
	if maxDepth < 0 {
		return nil, &InvalidArgumentError{Arg: "maxDepth", Reason: "must not be negative"}
	}
	if maxDepth == 0 {
		maxDepth = DefaultMaxDepth
	}

	if _, ok := g.nodes[startID]; !ok {
		return nil, nil
	}

	visited := make(map[string]bool)
	var result []lineage.Node

	var walk func(id string, depth int)
	walk = func(id string, depth int) {
		if visited[id] {
			return
		}
		visited[id] = true
		result = append(result, g.nodes[id])

		if depth+1 > maxDepth {
			return
		}
		for _, next := range g.neighbors(id, dir) {
			walk(next, depth+1)
		}
	}

	walk(startID, 0)
	return result, nil
}

// neighbors returns the adjacent node ids of id in the given direction,
// preserving edge discovery order.
func (g *Graph) neighbors(id string, dir Direction) []string {
	var out []string
	if dir == DirectionDownstream || dir == DirectionBoth {
		for _, e := range g.downstream[id] {
			out = append(out, e.TargetID)
		}
	}
	if dir == DirectionUpstream || dir == DirectionBoth {
		for _, e := range g.upstream[id] {
			out = append(out, e.SourceID)
		}
	}
	return out
}
