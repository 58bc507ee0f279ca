package graph

import (
	"errors"
	"testing"

	"github.com/linea-labs/linea/pkg/lineage"
)

func ids(ns []lineage.Node) []string {
	out := make([]string, len(ns))
	for i, n := range ns {
		out[i] = n.ID
	}
	return out
}

func idSet(ns []lineage.Node) map[string]bool {
	set := make(map[string]bool, len(ns))
	for _, n := range ns {
		set[n.ID] = true
	}
	return set
}

func TestTraverse_DownstreamChain(t *testing.T) {
	g := mustBuild(t, nodes("a", "b", "c"), []lineage.Edge{
		edge("e1", "a", "b"),
		edge("e2", "b", "c"),
	})

	result, err := Traverse(g, "a", DirectionDownstream, 10)
	if err != nil {
		t.Fatalf("Traverse failed: %v", err)
	}
	set := idSet(result)
	if len(set) != 3 || !set["a"] || !set["b"] || !set["c"] {
		t.Errorf("expected {a,b,c}, got %v", ids(result))
	}
}

func TestTraverse_Upstream(t *testing.T) {
	g := mustBuild(t, nodes("a", "b", "c"), []lineage.Edge{
		edge("e1", "a", "b"),
		edge("e2", "b", "c"),
	})

	result, _ := Traverse(g, "c", DirectionUpstream, 10)
	set := idSet(result)
	if len(set) != 3 || !set["a"] || !set["b"] || !set["c"] {
		t.Errorf("expected {a,b,c}, got %v", ids(result))
	}
}

func TestTraverse_TerminatesOnCycle(t *testing.T) {
	g := mustBuild(t, nodes("a", "b", "c"), []lineage.Edge{
		edge("e1", "a", "b"),
		edge("e2", "b", "c"),
		edge("e3", "c", "a"),
	})

	result, err := Traverse(g, "a", DirectionDownstream, 5)
	if err != nil {
		t.Fatalf("Traverse failed: %v", err)
	}
	seen := make(map[string]int)
	for _, n := range result {
		seen[n.ID]++
	}
	for id, count := range seen {
		if count > 1 {
			t.Errorf("node %s emitted %d times, want at most once", id, count)
		}
	}
	if len(seen) != 3 {
		t.Errorf("expected all of a, b, c to be reached, got %v", seen)
	}
}

func TestTraverse_DepthBound(t *testing.T) {
	g := mustBuild(t, nodes("a", "b", "c", "d"), []lineage.Edge{
		edge("e1", "a", "b"),
		edge("e2", "b", "c"),
		edge("e3", "c", "d"),
	})

	result, _ := Traverse(g, "a", DirectionDownstream, 2)
	set := idSet(result)
	if set["d"] {
		t.Error("node d is 3 hops away and must not be reached with maxDepth=2")
	}
	if !set["a"] || !set["b"] || !set["c"] {
		t.Errorf("expected {a,b,c} within depth 2, got %v", ids(result))
	}
}

func TestTraverse_DisconnectedNodeBoth(t *testing.T) {
	g := mustBuild(t, nodes("a", "b", "d"), []lineage.Edge{edge("e1", "a", "b")})

	result, _ := Traverse(g, "d", DirectionBoth, 10)
	if len(result) != 1 || result[0].ID != "d" {
		t.Errorf("expected just {d}, got %v", ids(result))
	}
}

func TestTraverse_BothDirection(t *testing.T) {
	// b <- a -> c, starting at b with direction=both reaches everything.
	g := mustBuild(t, nodes("a", "b", "c"), []lineage.Edge{
		edge("e1", "a", "b"),
		edge("e2", "a", "c"),
	})

	result, _ := Traverse(g, "b", DirectionBoth, 10)
	set := idSet(result)
	if len(set) != 3 {
		t.Errorf("expected {a,b,c} via both directions, got %v", ids(result))
	}
}

func TestTraverse_MissingStart(t *testing.T) {
	g := mustBuild(t, nodes("a"), nil)
	result, err := Traverse(g, "ghost", DirectionDownstream, 10)
	if err != nil {
		t.Fatalf("missing start must not be an error, got %v", err)
	}
	if len(result) != 0 {
		t.Errorf("expected empty result, got %v", ids(result))
	}
}

func TestTraverse_NegativeDepth(t *testing.T) {
	g := mustBuild(t, nodes("a"), nil)
	_, err := Traverse(g, "a", DirectionDownstream, -1)
	var invalid *InvalidArgumentError
	if !errors.As(err, &invalid) {
		t.Fatalf("expected InvalidArgumentError, got %v", err)
	}
}

func TestTraverse_ZeroDepthUsesDefault(t *testing.T) {
	// Chain of length 11: with the default depth of 10 the last node is
	// exactly on the boundary and still reached.
	ns := nodes("n0", "n1", "n2", "n3", "n4", "n5", "n6", "n7", "n8", "n9", "n10")
	var es []lineage.Edge
	for i := 0; i < 10; i++ {
		es = append(es, edge(ns[i].ID+ns[i+1].ID, ns[i].ID, ns[i+1].ID))
	}
	g := mustBuild(t, ns, es)

	result, err := Traverse(g, "n0", DirectionDownstream, 0)
	if err != nil {
		t.Fatalf("Traverse failed: %v", err)
	}
	if len(result) != 11 {
		t.Errorf("expected 11 nodes with default depth, got %d", len(result))
	}
}

func TestParseDirection(t *testing.T) {
	if d, ok := ParseDirection("Upstream"); !ok || d != DirectionUpstream {
		t.Errorf("ParseDirection(Upstream) = %v, %v", d, ok)
	}
	if _, ok := ParseDirection("sideways"); ok {
		t.Error("expected sideways to be invalid")
	}
}
