package dbmetrics

import (
	"context"
	"database/sql"
	"time"

	"github.com/sumonben/hotelmanagement/pkg/metrics"
)

// DBExecutor common query interface satisfied by *sql.DB, *sql.Tx and the
// metric wrappers below. Repositories depend on this instead of *sql.DB.
type DBExecutor interface {
	ExecContext(ctx context.Context, query string, args ...interface{}) (sql.Result, error)
	QueryContext(ctx context.Context, query string, args ...interface{}) (*sql.Rows, error)
	QueryRowContext(ctx context.Context, query string, args ...interface{}) *sql.Row
}

// TxExecutor transaction-scoped executor
type TxExecutor interface {
	DBExecutor
	Commit() error
	Rollback() error
}

type ctxKey int

const txCtxKey ctxKey = iota

// WithTx returns a context carrying an active transaction executor
func WithTx(ctx context.Context, tx TxExecutor) context.Context {
	return context.WithValue(ctx, txCtxKey, tx)
}

// GetExecutor returns the transaction from the context when one is active,
// falling back to the given default executor
func GetExecutor(ctx context.Context, def DBExecutor) DBExecutor {
	if tx, ok := ctx.Value(txCtxKey).(TxExecutor); ok {
		return tx
	}
	return def
}

// IsInTransaction reports whether the context carries an active transaction
func IsInTransaction(ctx context.Context) bool {
	_, ok := ctx.Value(txCtxKey).(TxExecutor)
	return ok
}

// DB wraps *sql.DB and records query metrics
type DB struct {
	db      *sql.DB
	metrics *metrics.Metrics
}

// WrapWithDefault wraps the database with metric collection and starts the
// connection pool stats collector. The collector stops when stopCh is closed.
func WrapWithDefault(db *sql.DB, m *metrics.Metrics, serviceName string, stopCh <-chan struct{}) *DB {
	wrapped := &DB{db: db, metrics: m}
	go wrapped.collectPoolStats(15*time.Second, stopCh)
	return wrapped
}

// ExecContext executes a statement recording its duration
func (d *DB) ExecContext(ctx context.Context, query string, args ...interface{}) (sql.Result, error) {
	start := time.Now()
	res, err := d.db.ExecContext(ctx, query, args...)
	d.metrics.ObserveDBQuery("exec", time.Since(start).Seconds(), err)
	return res, err
}

// QueryContext executes a query recording its duration
func (d *DB) QueryContext(ctx context.Context, query string, args ...interface{}) (*sql.Rows, error) {
	start := time.Now()
	rows, err := d.db.QueryContext(ctx, query, args...)
	d.metrics.ObserveDBQuery("query", time.Since(start).Seconds(), err)
	return rows, err
}

// QueryRowContext executes a single-row query recording its duration
func (d *DB) QueryRowContext(ctx context.Context, query string, args ...interface{}) *sql.Row {
	start := time.Now()
	row := d.db.QueryRowContext(ctx, query, args...)
	d.metrics.ObserveDBQuery("query_row", time.Since(start).Seconds(), nil)
	return row
}

// BeginTx starts a transaction whose statements are also measured
func (d *DB) BeginTx(ctx context.Context, opts *sql.TxOptions) (TxExecutor, error) {
	tx, err := d.db.BeginTx(ctx, opts)
	if err != nil {
		return nil, err
	}
	return &measuredTx{tx: tx, metrics: d.metrics}, nil
}

func (d *DB) collectPoolStats(interval time.Duration, stopCh <-chan struct{}) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-stopCh:
			return
		case <-ticker.C:
			stats := d.db.Stats()
			d.metrics.DBConnections.WithLabelValues("open").Set(float64(stats.OpenConnections))
			d.metrics.DBConnections.WithLabelValues("in_use").Set(float64(stats.InUse))
			d.metrics.DBConnections.WithLabelValues("idle").Set(float64(stats.Idle))
		}
	}
}

// measuredTx transaction wrapper recording per-statement metrics
type measuredTx struct {
	tx      *sql.Tx
	metrics *metrics.Metrics
}

func (t *measuredTx) ExecContext(ctx context.Context, query string, args ...interface{}) (sql.Result, error) {
	start := time.Now()
	res, err := t.tx.ExecContext(ctx, query, args...)
	t.metrics.ObserveDBQuery("tx_exec", time.Since(start).Seconds(), err)
	return res, err
}

func (t *measuredTx) QueryContext(ctx context.Context, query string, args ...interface{}) (*sql.Rows, error) {
	start := time.Now()
	rows, err := t.tx.QueryContext(ctx, query, args...)
	t.metrics.ObserveDBQuery("tx_query", time.Since(start).Seconds(), err)
	return rows, err
}

func (t *measuredTx) QueryRowContext(ctx context.Context, query string, args ...interface{}) *sql.Row {
	start := time.Now()
	row := t.tx.QueryRowContext(ctx, query, args...)
	t.metrics.ObserveDBQuery("tx_query_row", time.Since(start).Seconds(), nil)
	return row
}

func (t *measuredTx) Commit() error   { return t.tx.Commit() }
func (t *measuredTx) Rollback() error { return t.tx.Rollback() }
