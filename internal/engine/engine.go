// Package engine is the host facade over the lineage graph engine. It loads
// catalog exports, builds immutable graph snapshots, and exposes the query
// operations to the CLI. All queries run against the current snapshot;
// a refresh builds a new graph and swaps the reference, it never mutates the
// graph in place.
package engine

import (
	"fmt"
	"io"
	"log/slog"
	"sync"

	"github.com/linea-labs/linea/internal/loader"
	"github.com/linea-labs/linea/internal/state"
	"github.com/linea-labs/linea/pkg/anomaly"
	"github.com/linea-labs/linea/pkg/graph"
	"github.com/linea-labs/linea/pkg/impact"
	"github.com/linea-labs/linea/pkg/lineage"
	"github.com/linea-labs/linea/pkg/metrics"
	"github.com/linea-labs/linea/pkg/validate"
)

// Config holds engine configuration.
type Config struct {
	// CatalogPath is the lineage catalog export to load.
	CatalogPath string
	// StatePath is the snapshot database; empty disables the store.
	StatePath string
	// Logger for engine operations. Nil means discard.
	Logger *slog.Logger
}

// Engine owns the current graph snapshot and the optional snapshot store.
type Engine struct {
	cfg    Config
	logger *slog.Logger
	store  state.SnapshotStore

	mu    sync.RWMutex
	graph *graph.Graph
}

// New creates an engine. When cfg.StatePath is set the snapshot store is
// opened and its schema initialized.
func New(cfg Config) (*Engine, error) {
	logger := cfg.Logger
	if logger == nil {
		logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}

	e := &Engine{cfg: cfg, logger: logger}

	if cfg.StatePath != "" {
		store := state.NewSQLiteStore()
		if err := store.Open(cfg.StatePath); err != nil {
			return nil, fmt.Errorf("open snapshot store: %w", err)
		}
		if err := store.InitSchema(); err != nil {
			store.Close()
			return nil, fmt.Errorf("init snapshot store: %w", err)
		}
		e.store = store
	}

	return e, nil
}

// Close releases the snapshot store, if any.
func (e *Engine) Close() error {
	if e.store != nil {
		return e.store.Close()
	}
	return nil
}

// Load reads the configured catalog and builds a fresh graph snapshot.
// Construction errors (duplicate node, dangling edge) surface unwrapped
// semantics-wise: no partially built graph ever replaces the current one.
func (e *Engine) Load() error {
	catalog, err := loader.LoadCatalog(e.cfg.CatalogPath)
	if err != nil {
		return err
	}

	g, err := graph.Build(catalog.Nodes, catalog.Edges)
	if err != nil {
		return fmt.Errorf("build lineage graph: %w", err)
	}

	e.mu.Lock()
	e.graph = g
	e.mu.Unlock()

	e.logger.Debug("lineage graph loaded",
		"catalog", e.cfg.CatalogPath,
		"nodes", g.NodeCount(),
		"edges", g.EdgeCount())
	return nil
}

// Graph returns the current graph snapshot. Callers holding the returned
// reference keep a consistent snapshot even across a concurrent Load.
func (e *Engine) Graph() (*graph.Graph, error) {
	e.mu.RLock()
	g := e.graph
	e.mu.RUnlock()
	if g == nil {
		return nil, fmt.Errorf("no lineage graph loaded")
	}
	return g, nil
}

// Stats returns the structural statistics of the current snapshot.
func (e *Engine) Stats() (graph.Stats, error) {
	g, err := e.Graph()
	if err != nil {
		return graph.Stats{}, err
	}
	return g.Stats(), nil
}

// Traverse walks the current snapshot from startID.
func (e *Engine) Traverse(startID string, dir graph.Direction, maxDepth int) ([]lineage.Node, error) {
	g, err := e.Graph()
	if err != nil {
		return nil, err
	}
	return graph.Traverse(g, startID, dir, maxDepth)
}

// FindPaths enumerates downstream paths between two nodes.
func (e *Engine) FindPaths(sourceID, targetID string, maxDepth int) ([][]string, error) {
	g, err := e.Graph()
	if err != nil {
		return nil, err
	}
	return graph.FindPaths(g, sourceID, targetID, maxDepth)
}

// ShortestPath returns a minimum-hop downstream path, or nil if unreachable.
func (e *Engine) ShortestPath(sourceID, targetID string) ([]string, error) {
	g, err := e.Graph()
	if err != nil {
		return nil, err
	}
	return graph.ShortestPath(g, sourceID, targetID), nil
}

// AnalyzeImpact computes the blast radius of a change at changedID.
func (e *Engine) AnalyzeImpact(changedID string, changeType lineage.ChangeType) (impact.Analysis, error) {
	g, err := e.Graph()
	if err != nil {
		return impact.Analysis{}, err
	}
	return impact.Analyze(g, changedID, changeType), nil
}

// Validate compares the current snapshot against a ground-truth adjacency.
func (e *Engine) Validate(groundTruth map[string][]string) (validate.Result, error) {
	g, err := e.Graph()
	if err != nil {
		return validate.Result{}, err
	}
	return validate.Validate(g, groundTruth), nil
}

// DetectAnomalies diffs the current snapshot against up to historySize prior
// snapshots from the store. With no store or no history the report is empty
// and low severity.
func (e *Engine) DetectAnomalies(historySize int) (anomaly.Report, error) {
	g, err := e.Graph()
	if err != nil {
		return anomaly.Report{}, err
	}
	return e.detectAnomalies(g, historySize)
}

func (e *Engine) detectAnomalies(g *graph.Graph, historySize int) (anomaly.Report, error) {
	var historical []*graph.Graph
	if e.store != nil {
		snaps, err := e.store.RecentSnapshots(historySize)
		if err != nil {
			return anomaly.Report{}, fmt.Errorf("load snapshot history: %w", err)
		}
		for _, snap := range snaps {
			hg, err := graph.Build(snap.Nodes, snap.Edges)
			if err != nil {
				return anomaly.Report{}, fmt.Errorf("rebuild snapshot %s: %w", snap.ID, err)
			}
			historical = append(historical, hg)
		}
	}

	return anomaly.NewDetector().Detect(g, historical), nil
}

// Metrics rolls up structural statistics with externally supplied feeds.
func (e *Engine) Metrics(feeds metrics.Feeds) (metrics.Report, error) {
	g, err := e.Graph()
	if err != nil {
		return metrics.Report{}, err
	}
	return metrics.Aggregate(g, feeds), nil
}

// SaveSnapshot persists the current snapshot to the store and returns its id.
func (e *Engine) SaveSnapshot(label string) (string, error) {
	if e.store == nil {
		return "", fmt.Errorf("no snapshot store configured")
	}
	g, err := e.Graph()
	if err != nil {
		return "", err
	}

	id, err := e.store.SaveSnapshot(&state.Snapshot{
		Label: label,
		Nodes: g.GetAllNodes(),
		Edges: g.Edges(),
	})
	if err != nil {
		return "", err
	}
	e.logger.Debug("snapshot saved", "id", id, "label", label)
	return id, nil
}

// ListSnapshots returns snapshot metadata from the store, newest first.
func (e *Engine) ListSnapshots() ([]*state.Snapshot, error) {
	if e.store == nil {
		return nil, fmt.Errorf("no snapshot store configured")
	}
	return e.store.ListSnapshots()
}
