package iodb

import (
	"context"
	"database/sql"
	"fmt"
	"strconv"
	"strings"

	"github.com/gnames/pubdb/pkg/config"
	"github.com/gnames/pubdb/pkg/db"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/jackc/pgx/v5/stdlib"
)

// pgxOperator implements db.Operator interface using
// pgxpool for connection pooling.
type pgxOperator struct {
	pool *pgxpool.Pool
	db   *sql.DB
}

// NewPgxOperator creates a new database operator
// (without connecting).
func NewPgxOperator() db.Operator {
	return &pgxOperator{}
}

// Connect establishes a connection pool to PostgreSQL.
// Uses sensible hardcoded pool settings that work well for
// most use cases.
func (p *pgxOperator) Connect(
	ctx context.Context,
	cfg *config.DatabaseConfig,
) error {
	// Build connection string
	dsn := fmt.Sprintf(
		"postgres://%s:%s@%s:%d/%s?sslmode=%s",
		cfg.User,
		cfg.Password,
		cfg.Host,
		cfg.Port,
		cfg.Database,
		cfg.SSLMode,
	)

	poolConfig, err := pgxpool.ParseConfig(dsn)
	if err != nil {
		return ConnectionError(cfg.Host, cfg.Port,
			cfg.Database, cfg.User, err)
	}

	poolConfig.MaxConns = 4
	poolConfig.MinConns = 1
	poolConfig.MaxConnLifetime = 0 // No lifetime limit
	poolConfig.MaxConnIdleTime = 0 // No idle timeout

	pool, err := pgxpool.NewWithConfig(ctx, poolConfig)
	if err != nil {
		return ConnectionError(cfg.Host, cfg.Port,
			cfg.Database, cfg.User, err)
	}

	// Verify connection
	if err := pool.Ping(ctx); err != nil {
		pool.Close()
		return ConnectionError(cfg.Host, cfg.Port,
			cfg.Database, cfg.User, err)
	}

	p.pool = pool
	p.db = stdlib.OpenDBFromPool(pool)
	return nil
}

// Close releases all database connections.
func (p *pgxOperator) Close() error {
	if p.db != nil {
		p.db.Close()
		p.db = nil
	}
	if p.pool != nil {
		p.pool.Close()
		p.pool = nil
	}
	return nil
}

// DB returns the pool wrapped into database/sql interface.
func (p *pgxOperator) DB() *sql.DB {
	return p.db
}

// Driver returns "postgres".
func (p *pgxOperator) Driver() string {
	return "postgres"
}

// Rebind converts '?' placeholders to $1, $2, ...
func (p *pgxOperator) Rebind(query string) string {
	var b strings.Builder
	b.Grow(len(query) + 8)
	n := 0
	for _, r := range query {
		if r == '?' {
			n++
			b.WriteByte('$')
			b.WriteString(strconv.Itoa(n))
			continue
		}
		b.WriteRune(r)
	}
	return b.String()
}

// TableExists checks if a table exists in the current
// database.
func (p *pgxOperator) TableExists(
	ctx context.Context,
	tableName string,
) (bool, error) {
	if p.db == nil {
		return false, NotConnectedError()
	}

	query := `
		SELECT EXISTS (
			SELECT FROM information_schema.tables
			WHERE table_schema = 'public'
			AND table_name = $1
		)
	`

	var exists bool
	err := p.db.QueryRowContext(ctx, query, tableName).Scan(&exists)
	if err != nil {
		return false, TableExistsCheckError(tableName, err)
	}

	return exists, nil
}

// HasTables checks if the database has any tables in the
// public schema.
func (p *pgxOperator) HasTables(ctx context.Context) (bool, error) {
	if p.db == nil {
		return false, NotConnectedError()
	}

	query := `
		SELECT EXISTS (
			SELECT FROM information_schema.tables
			WHERE table_schema = 'public'
		)
	`

	var hasTables bool
	err := p.db.QueryRowContext(ctx, query).Scan(&hasTables)
	if err != nil {
		return false, TableCheckError(err)
	}

	return hasTables, nil
}

// TableDefinitions renders CREATE TABLE statements from the catalog.
// PostgreSQL does not keep the original statements, so columns and
// constraints are read from information_schema and pg_constraint.
func (p *pgxOperator) TableDefinitions(
	ctx context.Context,
	q db.Querier,
) ([]string, error) {
	if p.db == nil {
		return nil, NotConnectedError()
	}
	if q == nil {
		q = p.db
	}

	tables, err := p.tableNames(ctx, q)
	if err != nil {
		return nil, TableDefinitionsError(err)
	}

	res := make([]string, 0, len(tables))
	for _, table := range tables {
		lines, err := p.columnLines(ctx, q, table)
		if err != nil {
			return nil, TableDefinitionsError(err)
		}
		constr, err := p.constraintLines(ctx, q, table)
		if err != nil {
			return nil, TableDefinitionsError(err)
		}
		lines = append(lines, constr...)
		stmt := fmt.Sprintf("CREATE TABLE %s (\n%s\n)",
			table, strings.Join(lines, ",\n"))
		res = append(res, stmt)
	}
	return res, nil
}

func (p *pgxOperator) tableNames(
	ctx context.Context,
	q db.Querier,
) ([]string, error) {
	query := `
		SELECT tablename
		FROM pg_tables
		WHERE schemaname = 'public'
	`
	return queryStrings(ctx, q, query)
}

func (p *pgxOperator) columnLines(
	ctx context.Context,
	q db.Querier,
	table string,
) ([]string, error) {
	query := `
		SELECT column_name || ' ' || data_type ||
			CASE WHEN is_nullable = 'NO' THEN ' NOT NULL' ELSE '' END
		FROM information_schema.columns
		WHERE table_schema = 'public' AND table_name = $1
		ORDER BY ordinal_position
	`
	res, err := queryStrings(ctx, q, query, table)
	if err != nil {
		return nil, err
	}
	for i := range res {
		res[i] = "    " + res[i]
	}
	return res, nil
}

func (p *pgxOperator) constraintLines(
	ctx context.Context,
	q db.Querier,
	table string,
) ([]string, error) {
	query := `
		SELECT 'CONSTRAINT ' || c.conname || ' ' || pg_get_constraintdef(c.oid)
		FROM pg_constraint c
		JOIN pg_class t ON t.oid = c.conrelid
		JOIN pg_namespace n ON n.oid = t.relnamespace
		WHERE n.nspname = 'public' AND t.relname = $1
		ORDER BY c.contype DESC, c.conname
	`
	res, err := queryStrings(ctx, q, query, table)
	if err != nil {
		return nil, err
	}
	for i := range res {
		res[i] = "    " + res[i]
	}
	return res, nil
}

func queryStrings(
	ctx context.Context,
	q db.Querier,
	query string,
	args ...any,
) ([]string, error) {
	rows, err := q.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var res []string
	for rows.Next() {
		var s string
		if err := rows.Scan(&s); err != nil {
			return nil, err
		}
		res = append(res, s)
	}
	return res, rows.Err()
}
