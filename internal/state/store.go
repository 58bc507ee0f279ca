// Package state persists lineage graph snapshots to SQLite. The anomaly
// detector consumes prior snapshots as its history; the engine itself never
// reads or writes this store directly, it is a host-side collaborator.
package state

import (
	"time"

	"github.com/linea-labs/linea/pkg/lineage"
)

// Snapshot is one persisted lineage graph build.
type Snapshot struct {
	ID        string         `json:"id"`
	Label     string         `json:"label,omitempty"`
	CreatedAt time.Time      `json:"createdAt"`
	NodeCount int            `json:"nodeCount"`
	EdgeCount int            `json:"edgeCount"`
	Nodes     []lineage.Node `json:"nodes,omitempty"`
	Edges     []lineage.Edge `json:"edges,omitempty"`
}

// SnapshotStore is the persistence contract for graph snapshots.
type SnapshotStore interface {
	// SaveSnapshot persists a snapshot and returns its id. An empty
	// Snapshot.ID is assigned a fresh one.
	SaveSnapshot(s *Snapshot) (string, error)
	// GetSnapshot returns a snapshot with its full node/edge records,
	// or nil if no snapshot has that id.
	GetSnapshot(id string) (*Snapshot, error)
	// ListSnapshots returns snapshot metadata (no node/edge records),
	// newest first.
	ListSnapshots() ([]*Snapshot, error)
	// RecentSnapshots returns up to n full snapshots ordered oldest to
	// newest, so the last element is the most recent.
	RecentSnapshots(n int) ([]*Snapshot, error)
	// DeleteSnapshot removes a snapshot by id. Deleting an unknown id is
	// not an error.
	DeleteSnapshot(id string) error
	// Close releases the underlying database.
	Close() error
}
