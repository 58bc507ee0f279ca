package graph

// FindPaths enumerates every simple downstream path from sourceID to
// targetID, bounded by maxDepth hops. A path never repeats a node, which
// doubles as the cycle guard. Branches are explored in edge discovery order
// so results are deterministic and reproducible.
//
// No path found yields an empty list, not an error; so does a sourceID or
// targetID absent from the graph. maxDepth of 0 means DefaultMaxDepth;
// a negative maxDepth fails fast with *InvalidArgumentError.
func FindPaths(g *Graph, sourceID, targetID string, maxDepth int) ([][]string, error) {
	if maxDepth < 0 {
		return nil, &InvalidArgumentError{Arg: "maxDepth", Reason: "must not be negative"}
	}
	if maxDepth == 0 {
		maxDepth = DefaultMaxDepth
	}
	if !g.HasNode(sourceID) || !g.HasNode(targetID) {
		return nil, nil
	}

	var paths [][]string
	onPath := make(map[string]bool)

	var explore func(id string, path []string, depth int)
	explore = func(id string, path []string, depth int) {
		path = append(path, id)
		if id == targetID {
			recorded := make([]string, len(path))
			copy(recorded, path)
			paths = append(paths, recorded)
			return
		}
		if depth+1 > maxDepth {
			return
		}

		onPath[id] = true
		for _, e := range g.downstream[id] {
			if onPath[e.TargetID] {
				continue
			}
			explore(e.TargetID, path, depth+1)
		}
		onPath[id] = false
	}

	explore(sourceID, nil, 0)
	return paths, nil
}

// ShortestPath returns a minimum-hop downstream path from sourceID to
// targetID as a sequence of node ids, or nil when targetID is unreachable.
//
// Breadth-first search over downstream edges guarantees minimum hop count;
// ties among equal-length paths are broken by edge discovery order (the
// first edge enqueued wins), so results are deterministic.
func ShortestPath(g *Graph, sourceID, targetID string) []string {
	if !g.HasNode(sourceID) || !g.HasNode(targetID) {
		return nil
	}
	if sourceID == targetID {
		return []string{sourceID}
	}

	type item struct {
		id   string
		path []string
	}

	visited := map[string]bool{sourceID: true}
	queue := []item{{id: sourceID, path: []string{sourceID}}}

	for len(queue) > 0 {
		cur := queue[0]
		queue = queue[1:]

		for _, e := range g.downstream[cur.id] {
			if visited[e.TargetID] {
				continue
			}
			visited[e.TargetID] = true

			path := make([]string, len(cur.path), len(cur.path)+1)
			copy(path, cur.path)
			path = append(path, e.TargetID)

			if e.TargetID == targetID {
				return path
			}
			queue = append(queue, item{id: e.TargetID, path: path})
		}
	}

	return nil
}
