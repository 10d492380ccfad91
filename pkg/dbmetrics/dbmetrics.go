// Package dbmetrics - обёртка над *sql.DB со сбором метрик запросов
// и передачей активной транзакции через context.
package dbmetrics

import (
	"context"
	"database/sql"
	"time"

	"github.com/haruyasu/booking-service/pkg/metrics"
)

// DBExecutor интерфейс выполнения запросов, реализуется *sql.DB, *sql.Tx и обёртками пакета
type DBExecutor interface {
	ExecContext(ctx context.Context, query string, args ...interface{}) (sql.Result, error)
	QueryContext(ctx context.Context, query string, args ...interface{}) (*sql.Rows, error)
	QueryRowContext(ctx context.Context, query string, args ...interface{}) *sql.Row
}

// TxExecutor интерфейс транзакции
type TxExecutor interface {
	DBExecutor
	Commit() error
	Rollback() error
}

// ctxKey ключ контекста для активной транзакции
type ctxKey struct{}

// WithTx кладет активную транзакцию в контекст
func WithTx(ctx context.Context, tx TxExecutor) context.Context {
	return context.WithValue(ctx, ctxKey{}, tx)
}

// GetExecutor возвращает транзакцию из контекста, если она есть, иначе fallback
func GetExecutor(ctx context.Context, fallback DBExecutor) DBExecutor {
	if tx, ok := ctx.Value(ctxKey{}).(TxExecutor); ok {
		return tx
	}
	return fallback
}

// IsInTransaction сообщает, выполняется ли запрос внутри транзакции
func IsInTransaction(ctx context.Context) bool {
	_, ok := ctx.Value(ctxKey{}).(TxExecutor)
	return ok
}

// DB обёртка над *sql.DB, записывающая метрики каждого запроса
type DB struct {
	db      *sql.DB
	metrics *metrics.Metrics
	service string
}

// Wrap оборачивает *sql.DB сборщиком метрик
func Wrap(db *sql.DB, m *metrics.Metrics, service string) *DB {
	return &DB{db: db, metrics: m, service: service}
}

// WrapWithDefault оборачивает *sql.DB и запускает периодический сбор статистики
// connection pool; сбор останавливается закрытием stopCh.
func WrapWithDefault(db *sql.DB, m *metrics.Metrics, service string, stopCh <-chan struct{}) *DB {
	wrapped := Wrap(db, m, service)
	go wrapped.collectPoolStats(stopCh)
	return wrapped
}

// ExecContext выполняет запрос с записью метрик
func (d *DB) ExecContext(ctx context.Context, query string, args ...interface{}) (sql.Result, error) {
	start := time.Now()
	res, err := d.db.ExecContext(ctx, query, args...)
	d.observe("exec", start, err)
	return res, err
}

// QueryContext выполняет запрос с записью метрик
func (d *DB) QueryContext(ctx context.Context, query string, args ...interface{}) (*sql.Rows, error) {
	start := time.Now()
	rows, err := d.db.QueryContext(ctx, query, args...)
	d.observe("query", start, err)
	return rows, err
}

// QueryRowContext выполняет запрос с записью метрик
// Ошибка выполнения здесь недоступна (откладывается до Scan), статус всегда ok
func (d *DB) QueryRowContext(ctx context.Context, query string, args ...interface{}) *sql.Row {
	start := time.Now()
	row := d.db.QueryRowContext(ctx, query, args...)
	d.observe("query_row", start, nil)
	return row
}

// BeginTx начинает транзакцию
func (d *DB) BeginTx(ctx context.Context, opts *sql.TxOptions) (TxExecutor, error) {
	return d.db.BeginTx(ctx, opts)
}

func (d *DB) observe(operation string, start time.Time, err error) {
	status := "ok"
	if err != nil {
		status = "error"
	}
	d.metrics.ObserveDBQuery(operation, status, time.Since(start).Seconds())
}

func (d *DB) collectPoolStats(stopCh <-chan struct{}) {
	ticker := time.NewTicker(10 * time.Second)
	defer ticker.Stop()

	for {
		select {
		case <-stopCh:
			return
		case <-ticker.C:
			stats := d.db.Stats()
			d.metrics.SetDBPoolStats(stats.OpenConnections, stats.Idle, stats.InUse)
		}
	}
}
