package dbx

import (
	"context"
	"database/sql"
	"testing"

	"github.com/stretchr/testify/require"
	_ "modernc.org/sqlite"
)

func exec(t *testing.T, db DBTX, q string) {
	t.Helper()
	_, err := db.ExecContext(context.Background(), q)
	require.NoError(t, err)
}

func TestDBTX_DBAndTxAreInterchangeable(t *testing.T) {
	db, err := sql.Open("sqlite", ":memory:")
	require.NoError(t, err)
	db.SetMaxOpenConns(1)
	t.Cleanup(func() { _ = db.Close() })

	exec(t, db, `CREATE TABLE t (v TEXT)`)

	tx, err := db.BeginTx(context.Background(), nil)
	require.NoError(t, err)
	exec(t, tx, `INSERT INTO t(v) VALUES ('a')`)
	require.NoError(t, tx.Commit())

	var n int
	var q DBTX = db
	require.NoError(t, q.QueryRowContext(context.Background(), `SELECT COUNT(*) FROM t`).Scan(&n))
	require.Equal(t, 1, n)
}
