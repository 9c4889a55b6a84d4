package database

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestStore(t *testing.T) *Store {
	t.Helper()
	store, err := Open(filepath.Join(t.TempDir(), "semilleros_test.db"))
	require.NoError(t, err)
	t.Cleanup(func() { store.Close() })
	return store
}

func TestFetchOneAbsent(t *testing.T) {
	store := newTestStore(t)

	row, err := store.FetchOne(`SELECT id, nombre FROM grupos_investigacion WHERE id = ?`, 999)
	require.NoError(t, err)
	assert.Nil(t, row)
}

func TestExecReturnsLastInsertID(t *testing.T) {
	store := newTestStore(t)

	id, affected, err := store.Exec(
		`INSERT INTO grupos_investigacion (nombre, campo, identificador, director) VALUES (?, ?, ?, ?)`,
		"ONTARE", "Tecnologías de información", "COL0007814", "RICARDO BUITRAGO PULIDO",
	)
	require.NoError(t, err)
	assert.Equal(t, int64(1), id)
	assert.Equal(t, int64(1), affected)

	row, err := store.FetchOne(`SELECT nombre, identificador FROM grupos_investigacion WHERE id = ?`, id)
	require.NoError(t, err)
	require.NotNil(t, row)
	assert.Equal(t, "ONTARE", row.Text("nombre"))
	assert.Equal(t, "COL0007814", row.Text("identificador"))
}

func TestFetchAllRowMaps(t *testing.T) {
	store := newTestStore(t)

	for _, nombre := range []string{"B", "A"} {
		_, _, err := store.Exec(`INSERT INTO grupos_investigacion (nombre) VALUES (?)`, nombre)
		require.NoError(t, err)
	}

	rows, err := store.FetchAll(`SELECT id, nombre FROM grupos_investigacion ORDER BY nombre`)
	require.NoError(t, err)
	require.Len(t, rows, 2)
	assert.Equal(t, "A", rows[0].Text("nombre"))
	assert.Equal(t, "B", rows[1].Text("nombre"))
	assert.NotZero(t, rows[0].Int("id"))
}

func TestFetchAllEmptyIsNotNil(t *testing.T) {
	store := newTestStore(t)

	rows, err := store.FetchAll(`SELECT id FROM grupos_investigacion`)
	require.NoError(t, err)
	assert.NotNil(t, rows)
	assert.Empty(t, rows)
}

func TestExecBatchCommitsAllTuples(t *testing.T) {
	store := newTestStore(t)

	err := store.ExecBatch(
		`INSERT INTO grupos_investigacion (nombre, campo) VALUES (?, ?)`,
		[][]any{{"G1", "Campo 1"}, {"G2", "Campo 2"}, {"G3", "Campo 3"}},
	)
	require.NoError(t, err)

	row, err := store.FetchOne(`SELECT COUNT(*) AS total FROM grupos_investigacion`)
	require.NoError(t, err)
	assert.Equal(t, 3, row.Int("total"))
}

func TestExecBatchRollsBackOnFailure(t *testing.T) {
	store := newTestStore(t)

	// nombre is NOT NULL; the second tuple must sink the whole batch.
	err := store.ExecBatch(
		`INSERT INTO grupos_investigacion (nombre, campo) VALUES (?, ?)`,
		[][]any{{"G1", "Campo 1"}, {nil, "Campo 2"}},
	)
	require.Error(t, err)

	row, err := store.FetchOne(`SELECT COUNT(*) AS total FROM grupos_investigacion`)
	require.NoError(t, err)
	assert.Equal(t, 0, row.Int("total"))
}

func TestMissingColumnErrorStillPropagates(t *testing.T) {
	store := newTestStore(t)

	_, err := store.FetchAll(`SELECT s.no_existe FROM semilleros s`)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "no such column")
}

func TestForeignKeysEnforced(t *testing.T) {
	store := newTestStore(t)

	_, _, err := store.Exec(
		`INSERT INTO entregables (titulo, tipo, semillero_id) VALUES (?, ?, ?)`,
		"Artículo", "Prototipo", 999,
	)
	require.Error(t, err)
}
