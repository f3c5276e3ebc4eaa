// Package database is the data-access shim. It forwards SQL text and
// positional parameters to a row store and normalizes every outcome into a
// Result envelope. Failures are logged and reported through the envelope,
// never returned as Go errors, so callers cannot tell a transport failure
// from a remote SQL error.
package database

import (
	"context"
	"database/sql/driver"
	"fmt"
	"time"

	apperrors "travel-service/internal/pkg/errors"

	"github.com/goccy/go-json"
	"github.com/pkg/errors"
)

type Row map[string]interface{}

type Result struct {
	Success bool   `json:"success"`
	Data    []Row  `json:"data"`
	Error   string `json:"error,omitempty"`
}

type RunResult struct {
	Success         bool   `json:"success"`
	Changes         int64  `json:"changes"`
	LastInsertRowID int64  `json:"lastInsertRowid"`
	Error           string `json:"error,omitempty"`
}

type Client interface {
	// Query returns every row produced by the statement.
	Query(ctx context.Context, query string, params ...interface{}) Result
	// Get returns the first row, or nil when there is none or the call failed.
	Get(ctx context.Context, query string, params ...interface{}) Row
	// Run executes a mutating statement.
	Run(ctx context.Context, query string, params ...interface{}) RunResult
}

// Affected maps a write outcome onto typed errors. A failed envelope is an
// internal error and zero changed rows means the named record was not found.
func Affected(res RunResult, name string) error {
	if !res.Success {
		return apperrors.InternalServerError(fmt.Sprintf("error write %s", name))
	}
	if res.Changes == 0 {
		return apperrors.NotFound(fmt.Sprintf("%s not found", name))
	}
	return nil
}

func failed(err error) Result {
	return Result{Success: false, Data: []Row{}, Error: err.Error()}
}

func runFailed(err error) RunResult {
	return RunResult{Success: false, Error: err.Error()}
}

func first(res Result) Row {
	if !res.Success || len(res.Data) == 0 {
		return nil
	}
	return res.Data[0]
}

// normalizeParams resolves JSON column values and flattens types the remote
// endpoint cannot carry.
func normalizeParams(params []interface{}) ([]interface{}, error) {
	out := make([]interface{}, len(params))
	for i, p := range params {
		if v, ok := p.(driver.Valuer); ok {
			val, err := v.Value()
			if err != nil {
				return nil, errors.Wrapf(err, "param %d", i)
			}
			p = val
		}

		switch v := p.(type) {
		case bool:
			if v {
				out[i] = int64(1)
			} else {
				out[i] = int64(0)
			}
		case time.Time:
			out[i] = v.UTC().Format(time.RFC3339)
		case []byte:
			out[i] = string(v)
		default:
			out[i] = v
		}
	}
	return out, nil
}

// Decode maps a raw row onto T through its json tags. Columns holding JSON
// text are expected to use jsoncol types.
func Decode[T any](row Row) (T, error) {
	var out T
	b, err := json.Marshal(row)
	if err != nil {
		return out, errors.Wrap(err, "marshal row")
	}
	if err := json.Unmarshal(b, &out); err != nil {
		return out, errors.Wrap(err, "decode row")
	}
	return out, nil
}

func DecodeAll[T any](rows []Row) ([]T, error) {
	out := make([]T, 0, len(rows))
	for _, row := range rows {
		v, err := Decode[T](row)
		if err != nil {
			return nil, err
		}
		out = append(out, v)
	}
	return out, nil
}

// Int reads an integer aggregate column regardless of how the driver typed it.
func Int(row Row, column string) int64 {
	if row == nil {
		return 0
	}
	switch v := row[column].(type) {
	case int64:
		return v
	case int:
		return int64(v)
	case float64:
		return int64(v)
	case json.Number:
		if i, err := v.Int64(); err == nil {
			return i
		}
		f, _ := v.Float64()
		return int64(f)
	case string:
		n := json.Number(v)
		if i, err := n.Int64(); err == nil {
			return i
		}
		f, _ := n.Float64()
		return int64(f)
	}
	return 0
}

// Float reads a numeric aggregate column.
func Float(row Row, column string) float64 {
	if row == nil {
		return 0
	}
	switch v := row[column].(type) {
	case float64:
		return v
	case int64:
		return float64(v)
	case int:
		return float64(v)
	case json.Number:
		f, _ := v.Float64()
		return f
	case string:
		f, _ := json.Number(v).Float64()
		return f
	}
	return 0
}
