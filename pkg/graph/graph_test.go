package graph

import (
	"errors"
	"reflect"
	"testing"

	"github.com/linea-labs/linea/pkg/lineage"
)

func nodes(ids ...string) []lineage.Node {
	out := make([]lineage.Node, len(ids))
	for i, id := range ids {
		out[i] = lineage.Node{ID: id, AssetID: "asset-" + id, AssetName: id, AssetType: "table"}
	}
	return out
}

func edge(id, source, target string) lineage.Edge {
	return lineage.Edge{ID: id, SourceID: source, TargetID: target, Relationship: lineage.RelTableToTable, Weight: 1}
}

func mustBuild(t *testing.T, ns []lineage.Node, es []lineage.Edge) *Graph {
	t.Helper()
	g, err := Build(ns, es)
	if err != nil {
		t.Fatalf("Build failed: %v", err)
	}
	return g
}

func TestBuild_Adjacency(t *testing.T) {
	g := mustBuild(t, nodes("a", "b", "c"), []lineage.Edge{
		edge("e1", "a", "b"),
		edge("e2", "a", "c"),
		edge("e3", "b", "c"),
	})

	if g.NodeCount() != 3 {
		t.Errorf("expected 3 nodes, got %d", g.NodeCount())
	}
	if g.EdgeCount() != 3 {
		t.Errorf("expected 3 edges, got %d", g.EdgeCount())
	}

	out := g.OutgoingEdges("a")
	if len(out) != 2 || out[0].ID != "e1" || out[1].ID != "e2" {
		t.Errorf("unexpected outgoing edges for a: %+v", out)
	}
	in := g.IncomingEdges("c")
	if len(in) != 2 || in[0].ID != "e2" || in[1].ID != "e3" {
		t.Errorf("unexpected incoming edges for c: %+v", in)
	}
	if len(g.OutgoingEdges("c")) != 0 {
		t.Errorf("expected c to have no outgoing edges")
	}
}

func TestBuild_DuplicateNode(t *testing.T) {
	_, err := Build(nodes("a", "a"), nil)
	if err == nil {
		t.Fatal("expected error for duplicate node id")
	}
	var dup *DuplicateNodeError
	if !errors.As(err, &dup) {
		t.Fatalf("expected DuplicateNodeError, got %T", err)
	}
	if dup.ID != "a" {
		t.Errorf("expected duplicate id a, got %q", dup.ID)
	}
}

func TestBuild_DanglingEdge(t *testing.T) {
	for _, tc := range []struct {
		name    string
		edge    lineage.Edge
		missing string
	}{
		{"missing source", edge("e1", "ghost", "a"), "ghost"},
		{"missing target", edge("e1", "a", "ghost"), "ghost"},
	} {
		t.Run(tc.name, func(t *testing.T) {
			g, err := Build(nodes("a"), []lineage.Edge{tc.edge})
			if g != nil {
				t.Error("expected no graph on build error")
			}
			var dangling *DanglingEdgeError
			if !errors.As(err, &dangling) {
				t.Fatalf("expected DanglingEdgeError, got %v", err)
			}
			if dangling.MissingID != tc.missing {
				t.Errorf("expected missing id %q, got %q", tc.missing, dangling.MissingID)
			}
			if dangling.EdgeID != "e1" {
				t.Errorf("expected edge id e1, got %q", dangling.EdgeID)
			}
		})
	}
}

func TestBuild_Deterministic(t *testing.T) {
	ns := nodes("a", "b", "c", "d")
	es := []lineage.Edge{edge("e1", "a", "b"), edge("e2", "b", "c"), edge("e3", "a", "d")}

	g1 := mustBuild(t, ns, es)
	g2 := mustBuild(t, ns, es)

	if !reflect.DeepEqual(g1.Stats(), g2.Stats()) {
		t.Errorf("stats differ between identical builds:\n%+v\n%+v", g1.Stats(), g2.Stats())
	}
	for _, id := range g1.NodeIDs() {
		if !reflect.DeepEqual(g1.OutgoingEdges(id), g2.OutgoingEdges(id)) {
			t.Errorf("outgoing adjacency differs for %s", id)
		}
		if !reflect.DeepEqual(g1.IncomingEdges(id), g2.IncomingEdges(id)) {
			t.Errorf("incoming adjacency differs for %s", id)
		}
	}
}

func TestGetAllNodes_Sorted(t *testing.T) {
	g := mustBuild(t, nodes("c", "a", "b"), nil)
	all := g.GetAllNodes()
	if len(all) != 3 || all[0].ID != "a" || all[1].ID != "b" || all[2].ID != "c" {
		t.Errorf("expected nodes sorted by id, got %+v", all)
	}
}

func TestEdges_ReturnsCopy(t *testing.T) {
	g := mustBuild(t, nodes("a", "b"), []lineage.Edge{edge("e1", "a", "b")})
	es := g.Edges()
	es[0].ID = "mutated"
	if g.Edges()[0].ID != "e1" {
		t.Error("Edges must return a copy, not the internal slice")
	}
}
