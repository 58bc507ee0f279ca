package state

import (
	"fmt"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// Failure paths that an in-memory database cannot produce are exercised
// against a mocked driver.

func newMockStore(t *testing.T) (*SQLiteStore, sqlmock.Sqlmock) {
	t.Helper()
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })
	return &SQLiteStore{db: db, path: ":mock:"}, mock
}

func TestSQLiteStore_SaveSnapshot_InsertError(t *testing.T) {
	store, mock := newMockStore(t)

	mock.ExpectExec("INSERT INTO snapshots").WillReturnError(fmt.Errorf("disk I/O error"))

	_, err := store.SaveSnapshot(&Snapshot{Label: "x"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "insert snapshot")
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestSQLiteStore_ListSnapshots_QueryError(t *testing.T) {
	store, mock := newMockStore(t)

	mock.ExpectQuery("SELECT id, label, created_at").WillReturnError(fmt.Errorf("database is locked"))

	_, err := store.ListSnapshots()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "query snapshots")
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestSQLiteStore_GetSnapshot_CorruptRecords(t *testing.T) {
	store, mock := newMockStore(t)

	rows := sqlmock.NewRows([]string{"id", "label", "created_at", "node_count", "edge_count", "nodes_json", "edges_json"}).
		AddRow("snap-1", "bad", time.Now().UTC(), 1, 1, "{not json", "[]")
	mock.ExpectQuery("SELECT id, label, created_at").WillReturnRows(rows)

	_, err := store.GetSnapshot("snap-1")
	require.Error(t, err)
}

func TestSQLiteStore_DeleteSnapshot_ExecError(t *testing.T) {
	store, mock := newMockStore(t)

	mock.ExpectExec("DELETE FROM snapshots").WillReturnError(fmt.Errorf("database is locked"))

	err := store.DeleteSnapshot("snap-1")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "delete snapshot")
	assert.NoError(t, mock.ExpectationsWereMet())
}
