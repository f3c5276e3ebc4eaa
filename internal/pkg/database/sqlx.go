package database

import (
	"context"

	"github.com/jmoiron/sqlx"
	"github.com/uptrace/opentelemetry-go-extra/otelzap"
	"go.uber.org/zap"
)

// SQLXClient serves the same contract as D1Client over a local driver.
// Statements are written with ? placeholders and rebound per driver.
type SQLXClient struct {
	db  *sqlx.DB
	log *otelzap.Logger
}

func NewSQLXClient(db *sqlx.DB, log *otelzap.Logger) *SQLXClient {
	return &SQLXClient{db: db, log: log}
}

func (c *SQLXClient) Query(ctx context.Context, query string, params ...interface{}) Result {
	args, err := normalizeParams(params)
	if err != nil {
		c.log.Ctx(ctx).Error("sql query failed", zap.String("sql", query), zap.Error(err))
		return failed(err)
	}

	rows, err := c.db.QueryxContext(ctx, c.db.Rebind(query), args...)
	if err != nil {
		c.log.Ctx(ctx).Error("sql query failed", zap.String("sql", query), zap.Error(err))
		return failed(err)
	}
	defer rows.Close()

	data := []Row{}
	for rows.Next() {
		row := map[string]interface{}{}
		if err := rows.MapScan(row); err != nil {
			c.log.Ctx(ctx).Error("sql scan failed", zap.String("sql", query), zap.Error(err))
			return failed(err)
		}
		for k, v := range row {
			if b, ok := v.([]byte); ok {
				row[k] = string(b)
			}
		}
		data = append(data, Row(row))
	}
	if err := rows.Err(); err != nil {
		c.log.Ctx(ctx).Error("sql rows failed", zap.String("sql", query), zap.Error(err))
		return failed(err)
	}

	return Result{Success: true, Data: data}
}

func (c *SQLXClient) Get(ctx context.Context, query string, params ...interface{}) Row {
	return first(c.Query(ctx, query, params...))
}

func (c *SQLXClient) Run(ctx context.Context, query string, params ...interface{}) RunResult {
	args, err := normalizeParams(params)
	if err != nil {
		c.log.Ctx(ctx).Error("sql run failed", zap.String("sql", query), zap.Error(err))
		return runFailed(err)
	}

	res, err := c.db.ExecContext(ctx, c.db.Rebind(query), args...)
	if err != nil {
		c.log.Ctx(ctx).Error("sql run failed", zap.String("sql", query), zap.Error(err))
		return runFailed(err)
	}

	changes, _ := res.RowsAffected()
	// postgres does not report insert ids
	lastID, _ := res.LastInsertId()

	return RunResult{Success: true, Changes: changes, LastInsertRowID: lastID}
}
