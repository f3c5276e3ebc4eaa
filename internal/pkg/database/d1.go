package database

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"net/http"
	"strings"

	"travel-service/config"

	"github.com/goccy/go-json"
	"github.com/pkg/errors"
	"github.com/uptrace/opentelemetry-go-extra/otelzap"
	"go.uber.org/zap"
)

// Doer is satisfied by *http.Client and the circuit breaker client.
type Doer interface {
	Do(req *http.Request) (*http.Response, error)
}

// D1Client talks to a Cloudflare D1 database over its REST query endpoint.
type D1Client struct {
	endpoint string
	token    string
	http     Doer
	log      *otelzap.Logger
}

type d1Request struct {
	SQL    string        `json:"sql"`
	Params []interface{} `json:"params"`
}

type d1Message struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}

type d1Meta struct {
	Changes   int64 `json:"changes"`
	LastRowID int64 `json:"last_row_id"`
}

type d1Statement struct {
	Results []Row  `json:"results"`
	Success bool   `json:"success"`
	Meta    d1Meta `json:"meta"`
}

type d1Envelope struct {
	Success bool          `json:"success"`
	Errors  []d1Message   `json:"errors"`
	Result  []d1Statement `json:"result"`
}

func NewD1Client(cfg *config.D1Config, httpClient Doer, log *otelzap.Logger) *D1Client {
	endpoint := fmt.Sprintf("%s/accounts/%s/d1/database/%s/query",
		strings.TrimRight(cfg.BaseURL, "/"), cfg.AccountID, cfg.DatabaseID)

	return &D1Client{
		endpoint: endpoint,
		token:    cfg.APIToken,
		http:     httpClient,
		log:      log,
	}
}

func (c *D1Client) Query(ctx context.Context, query string, params ...interface{}) Result {
	stmt, err := c.execute(ctx, query, params)
	if err != nil {
		c.log.Ctx(ctx).Error("d1 query failed", zap.String("sql", query), zap.Error(err))
		return failed(err)
	}

	rows := stmt.Results
	if rows == nil {
		rows = []Row{}
	}
	return Result{Success: true, Data: rows}
}

func (c *D1Client) Get(ctx context.Context, query string, params ...interface{}) Row {
	return first(c.Query(ctx, query, params...))
}

func (c *D1Client) Run(ctx context.Context, query string, params ...interface{}) RunResult {
	stmt, err := c.execute(ctx, query, params)
	if err != nil {
		c.log.Ctx(ctx).Error("d1 run failed", zap.String("sql", query), zap.Error(err))
		return runFailed(err)
	}

	return RunResult{
		Success:         true,
		Changes:         stmt.Meta.Changes,
		LastInsertRowID: stmt.Meta.LastRowID,
	}
}

func (c *D1Client) execute(ctx context.Context, query string, params []interface{}) (d1Statement, error) {
	normalized, err := normalizeParams(params)
	if err != nil {
		return d1Statement{}, err
	}

	body, err := json.Marshal(d1Request{SQL: query, Params: normalized})
	if err != nil {
		return d1Statement{}, errors.Wrap(err, "encode request")
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.endpoint, bytes.NewReader(body))
	if err != nil {
		return d1Statement{}, errors.Wrap(err, "build request")
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+c.token)

	resp, err := c.http.Do(req)
	if err != nil {
		return d1Statement{}, errors.Wrap(err, "d1 request")
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return d1Statement{}, errors.Wrap(err, "read response")
	}

	// numbers stay json.Number so integers past 2^53 survive
	var env d1Envelope
	dec := json.NewDecoder(bytes.NewReader(raw))
	dec.UseNumber()
	decodeErr := dec.Decode(&env)

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		if decodeErr == nil && len(env.Errors) > 0 {
			return d1Statement{}, fmt.Errorf("d1 http %d: %s", resp.StatusCode, env.Errors[0].Message)
		}
		return d1Statement{}, fmt.Errorf("d1 http %d", resp.StatusCode)
	}
	if decodeErr != nil {
		return d1Statement{}, errors.Wrap(decodeErr, "decode response")
	}
	if !env.Success {
		if len(env.Errors) > 0 {
			return d1Statement{}, errors.New(env.Errors[0].Message)
		}
		return d1Statement{}, errors.New("d1 query failed")
	}
	if len(env.Result) == 0 {
		return d1Statement{}, nil
	}

	stmt := env.Result[0]
	if !stmt.Success {
		return d1Statement{}, errors.New("d1 statement failed")
	}
	return stmt, nil
}
