package database_test

import (
	"context"
	"database/sql"
	"regexp"
	"testing"

	"travel-service/internal/pkg/database"
	"travel-service/internal/pkg/jsoncol"
	log_internal "travel-service/internal/pkg/log"

	_ "github.com/glebarez/go-sqlite"
	"github.com/jmoiron/sqlx"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	sqlxmock "github.com/zhashkevych/go-sqlxmock"
)

func TestSQLXQuery(t *testing.T) {
	dbx, mock, err := sqlxmock.Newx()
	require.NoError(t, err)
	defer dbx.Close()

	client := database.NewSQLXClient(dbx, log_internal.Nop())

	t.Run("rows", func(t *testing.T) {
		rows := sqlxmock.NewRows([]string{"id", "title", "images"}).
			AddRow("t1", "Bali", []byte(`["a.jpg"]`))
		mock.ExpectQuery(regexp.QuoteMeta("SELECT id, title, images FROM tours WHERE status = ?")).
			WithArgs("active").
			WillReturnRows(rows)

		res := client.Query(context.Background(), "SELECT id, title, images FROM tours WHERE status = ?", "active")

		assert.True(t, res.Success)
		assert.Equal(t, []database.Row{{"id": "t1", "title": "Bali", "images": `["a.jpg"]`}}, res.Data)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("driver error is swallowed", func(t *testing.T) {
		mock.ExpectQuery(regexp.QuoteMeta("SELECT * FROM tours")).
			WillReturnError(sql.ErrConnDone)

		res := client.Query(context.Background(), "SELECT * FROM tours")

		assert.False(t, res.Success)
		assert.Equal(t, []database.Row{}, res.Data)
		assert.Equal(t, sql.ErrConnDone.Error(), res.Error)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("get on zero rows", func(t *testing.T) {
		mock.ExpectQuery(regexp.QuoteMeta("SELECT * FROM tours WHERE id = ?")).
			WithArgs("missing").
			WillReturnRows(sqlxmock.NewRows([]string{"id"}))

		assert.Nil(t, client.Get(context.Background(), "SELECT * FROM tours WHERE id = ?", "missing"))
		assert.NoError(t, mock.ExpectationsWereMet())
	})
}

func TestSQLXRun(t *testing.T) {
	dbx, mock, err := sqlxmock.Newx()
	require.NoError(t, err)
	defer dbx.Close()

	client := database.NewSQLXClient(dbx, log_internal.Nop())

	mock.ExpectExec(regexp.QuoteMeta("UPDATE services SET featured = ?, images = ? WHERE id = ?")).
		WithArgs(int64(1), `["a.jpg"]`, "s1").
		WillReturnResult(sqlxmock.NewResult(0, 1))

	res := client.Run(context.Background(), "UPDATE services SET featured = ?, images = ? WHERE id = ?",
		true, jsoncol.Array[string]{"a.jpg"}, "s1")

	assert.Equal(t, database.RunResult{Success: true, Changes: 1}, res)
	assert.NoError(t, mock.ExpectationsWereMet())

	mock.ExpectExec(regexp.QuoteMeta("DELETE FROM services WHERE id = ?")).
		WithArgs("s1").
		WillReturnError(sql.ErrTxDone)

	res = client.Run(context.Background(), "DELETE FROM services WHERE id = ?", "s1")
	assert.False(t, res.Success)
	assert.NotEmpty(t, res.Error)
}

type tourRow struct {
	ID     string                `json:"id"`
	Title  string                `json:"title"`
	Price  float64               `json:"price"`
	Images jsoncol.Array[string] `json:"images"`
}

func TestSQLiteMigrateAndDecode(t *testing.T) {
	db, err := sqlx.Connect("sqlite", ":memory:")
	require.NoError(t, err)
	db.SetMaxOpenConns(1)
	defer db.Close()

	client := database.NewSQLXClient(db, log_internal.Nop())
	ctx := context.Background()

	require.NoError(t, database.Migrate(ctx, client))
	// idempotent
	require.NoError(t, database.Migrate(ctx, client))

	run := client.Run(ctx, `INSERT INTO tours (id, title, price, images, status, created_at, updated_at)
		VALUES (?, ?, ?, ?, ?, ?, ?)`, "t1", "Bali", 120.5, jsoncol.Array[string]{"a.jpg"}, "active", "now", "now")
	require.True(t, run.Success, run.Error)
	assert.Equal(t, int64(1), run.Changes)

	row := client.Get(ctx, "SELECT id, title, price, images FROM tours WHERE id = ?", "t1")
	require.NotNil(t, row)

	tour, err := database.Decode[tourRow](row)
	require.NoError(t, err)
	assert.Equal(t, tourRow{ID: "t1", Title: "Bali", Price: 120.5, Images: jsoncol.Array[string]{"a.jpg"}}, tour)

	agg := client.Get(ctx, "SELECT COUNT(*) AS total, CAST(AVG(price) AS DOUBLE PRECISION) AS avg_price FROM tours")
	assert.Equal(t, int64(1), database.Int(agg, "total"))
	assert.Equal(t, 120.5, database.Float(agg, "avg_price"))

	dup := client.Run(ctx, `INSERT INTO tours (id, title, created_at, updated_at) VALUES (?, ?, ?, ?)`, "t1", "Again", "now", "now")
	assert.False(t, dup.Success)
	assert.NotEmpty(t, dup.Error)
}

func TestStatements(t *testing.T) {
	stmts := database.Statements()
	require.NotEmpty(t, stmts)
	for _, s := range stmts {
		assert.Regexp(t, `^CREATE (TABLE|INDEX) IF NOT EXISTS`, s)
	}
}
