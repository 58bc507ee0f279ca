package state

import (
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
)

// SaveSnapshot persists a snapshot and returns its id.
func (s *SQLiteStore) SaveSnapshot(snap *Snapshot) (string, error) {
	if s.db == nil {
		return "", fmt.Errorf("database not open")
	}

	id := snap.ID
	if id == "" {
		id = uuid.New().String()
	}
	createdAt := snap.CreatedAt
	if createdAt.IsZero() {
		createdAt = time.Now().UTC()
	}

	nodesJSON, err := json.Marshal(snap.Nodes)
	if err != nil {
		return "", fmt.Errorf("marshal nodes: %w", err)
	}
	edgesJSON, err := json.Marshal(snap.Edges)
	if err != nil {
		return "", fmt.Errorf("marshal edges: %w", err)
	}

	_, err = s.db.Exec(`
		INSERT INTO snapshots (id, label, created_at, node_count, edge_count, nodes_json, edges_json)
		VALUES (?, ?, ?, ?, ?, ?, ?)
	`, id, snap.Label, createdAt, len(snap.Nodes), len(snap.Edges), string(nodesJSON), string(edgesJSON))
	if err != nil {
		return "", fmt.Errorf("insert snapshot: %w", err)
	}

	return id, nil
}

// GetSnapshot returns a snapshot with its full node/edge records, or nil if
// no snapshot has that id.
func (s *SQLiteStore) GetSnapshot(id string) (*Snapshot, error) {
	if s.db == nil {
		return nil, fmt.Errorf("database not open")
	}

	row := s.db.QueryRow(`
		SELECT id, label, created_at, node_count, edge_count, nodes_json, edges_json
		FROM snapshots WHERE id = ?
	`, id)

	snap, err := scanSnapshot(row)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	return snap, err
}

// ListSnapshots returns snapshot metadata without node/edge records, newest
// first.
func (s *SQLiteStore) ListSnapshots() ([]*Snapshot, error) {
	if s.db == nil {
		return nil, fmt.Errorf("database not open")
	}

	rows, err := s.db.Query(`
		SELECT id, label, created_at, node_count, edge_count
		FROM snapshots ORDER BY created_at DESC, id DESC
	`)
	if err != nil {
		return nil, fmt.Errorf("query snapshots: %w", err)
	}
	defer rows.Close()

	var snaps []*Snapshot
	for rows.Next() {
		var snap Snapshot
		if err := rows.Scan(&snap.ID, &snap.Label, &snap.CreatedAt, &snap.NodeCount, &snap.EdgeCount); err != nil {
			return nil, fmt.Errorf("scan snapshot: %w", err)
		}
		snaps = append(snaps, &snap)
	}
	return snaps, rows.Err()
}

// RecentSnapshots returns up to n full snapshots ordered oldest to newest.
func (s *SQLiteStore) RecentSnapshots(n int) ([]*Snapshot, error) {
	if s.db == nil {
		return nil, fmt.Errorf("database not open")
	}
	if n <= 0 {
		return nil, nil
	}

	rows, err := s.db.Query(`
		SELECT id, label, created_at, node_count, edge_count, nodes_json, edges_json
		FROM snapshots ORDER BY created_at DESC, id DESC LIMIT ?
	`, n)
	if err != nil {
		return nil, fmt.Errorf("query recent snapshots: %w", err)
	}
	defer rows.Close()

	var snaps []*Snapshot
	for rows.Next() {
		snap, err := scanSnapshot(rows)
		if err != nil {
			return nil, err
		}
		snaps = append(snaps, snap)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	// Reverse: query returns newest first, callers want oldest first.
	for i, j := 0, len(snaps)-1; i < j; i, j = i+1, j-1 {
		snaps[i], snaps[j] = snaps[j], snaps[i]
	}
	return snaps, nil
}

// DeleteSnapshot removes a snapshot by id. Deleting an unknown id is not an
// error.
func (s *SQLiteStore) DeleteSnapshot(id string) error {
	if s.db == nil {
		return fmt.Errorf("database not open")
	}
	if _, err := s.db.Exec(`DELETE FROM snapshots WHERE id = ?`, id); err != nil {
		return fmt.Errorf("delete snapshot: %w", err)
	}
	return nil
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanSnapshot(row rowScanner) (*Snapshot, error) {
	var snap Snapshot
	var nodesJSON, edgesJSON string
	if err := row.Scan(&snap.ID, &snap.Label, &snap.CreatedAt, &snap.NodeCount,
		&snap.EdgeCount, &nodesJSON, &edgesJSON); err != nil {
		return nil, err
	}
	if err := json.Unmarshal([]byte(nodesJSON), &snap.Nodes); err != nil {
		return nil, fmt.Errorf("unmarshal nodes for snapshot %s: %w", snap.ID, err)
	}
	if err := json.Unmarshal([]byte(edgesJSON), &snap.Edges); err != nil {
		return nil, fmt.Errorf("unmarshal edges for snapshot %s: %w", snap.ID, err)
	}
	return &snap, nil
}
