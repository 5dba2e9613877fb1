package sqlite

import (
	"context"
	"database/sql"
	"time"

	"inventory-api/internal/repositories"

	"github.com/sirupsen/logrus"
)

// baseRepository provides common functionality for all SQLite repositories
type baseRepository struct {
	db     *sql.DB
	table  string
	logger *logrus.Logger
}

// newBaseRepository creates a new base repository
func newBaseRepository(db *sql.DB, table string, logger *logrus.Logger) *baseRepository {
	if logger == nil {
		logger = logrus.New()
	}
	return &baseRepository{
		db:     db,
		table:  table,
		logger: logger,
	}
}

// validateID checks that an entity ID is present
func (r *baseRepository) validateID(id string) error {
	if id == "" {
		return repositories.NewRepositoryError("validate", r.table, id, repositories.ErrInvalidID)
	}
	return nil
}

// executeExec runs a statement and logs its execution time
func (r *baseRepository) executeExec(ctx context.Context, operation, query string, args ...interface{}) (sql.Result, error) {
	start := time.Now()
	result, err := r.db.ExecContext(ctx, query, args...)
	r.logQuery(operation, query, time.Since(start), err)

	if err != nil {
		return nil, repositories.NewRepositoryError(operation, r.table, "", err)
	}
	return result, nil
}

// executeQuery runs a query and logs its execution time
func (r *baseRepository) executeQuery(ctx context.Context, operation, query string, args ...interface{}) (*sql.Rows, error) {
	start := time.Now()
	rows, err := r.db.QueryContext(ctx, query, args...)
	r.logQuery(operation, query, time.Since(start), err)

	if err != nil {
		return nil, repositories.NewRepositoryError(operation, r.table, "", err)
	}
	return rows, nil
}

// executeQueryRow runs a single-row query and logs it
func (r *baseRepository) executeQueryRow(ctx context.Context, operation, query string, args ...interface{}) *sql.Row {
	start := time.Now()
	row := r.db.QueryRowContext(ctx, query, args...)
	r.logQuery(operation, query, time.Since(start), nil)
	return row
}

// checkRowsAffected verifies that a mutation touched an existing row
func (r *baseRepository) checkRowsAffected(result sql.Result, operation, id string) error {
	affected, err := result.RowsAffected()
	if err != nil {
		return repositories.NewRepositoryError(operation, r.table, id, err)
	}

	if affected == 0 {
		return repositories.NotFoundError(r.table, id)
	}
	return nil
}

// logQuery logs a query with its execution time
func (r *baseRepository) logQuery(operation string, query string, duration time.Duration, err error) {
	fields := logrus.Fields{
		"operation": operation,
		"table":     r.table,
		"query":     query,
		"duration":  duration,
	}

	if err != nil {
		fields["error"] = err.Error()
		r.logger.WithFields(fields).Error("Query failed")
	} else {
		r.logger.WithFields(fields).Debug("Query executed")
	}
}
