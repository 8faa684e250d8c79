// Package oracle wraps a single read-only connection to the audited database.
package oracle

import (
	"context"
	"database/sql"
	"fmt"
	"strconv"
	"time"

	go_ora "github.com/sijms/go-ora/v2"
)

// Descriptor holds the connection parameters collected from the operator.
type Descriptor struct {
	Host     string
	Port     string
	Service  string
	User     string
	Password string
}

// Session is one live connection. Checks run strictly sequentially on it;
// it is not safe for concurrent callers and none exist.
type Session struct {
	db *sql.DB
}

// Connect builds the DSN from the descriptor and authenticates. The
// connection is verified up front so an authentication failure surfaces
// here rather than on the first check.
func Connect(ctx context.Context, d Descriptor) (*Session, error) {
	port, err := strconv.Atoi(d.Port)
	if err != nil {
		return nil, fmt.Errorf("invalid port %q: %w", d.Port, err)
	}

	dsn := go_ora.BuildUrl(d.Host, port, d.Service, d.User, d.Password, nil)
	db, err := sql.Open("oracle", dsn)
	if err != nil {
		return nil, fmt.Errorf("open connection: %w", err)
	}
	db.SetMaxOpenConns(1)

	if err := db.PingContext(ctx); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("connect to %s:%d/%s: %w", d.Host, port, d.Service, err)
	}
	return &Session{db: db}, nil
}

// Execute runs one query synchronously and fetches all rows into memory as
// string tuples. Checks are expected to return bounded output; there is no
// pagination.
func (s *Session) Execute(ctx context.Context, query string) ([][]string, error) {
	rows, err := s.db.QueryContext(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	columns, err := rows.Columns()
	if err != nil {
		return nil, err
	}

	var out [][]string
	for rows.Next() {
		values := make([]any, len(columns))
		ptrs := make([]any, len(columns))
		for i := range values {
			ptrs[i] = &values[i]
		}
		if err := rows.Scan(ptrs...); err != nil {
			return nil, err
		}
		tuple := make([]string, len(columns))
		for i, v := range values {
			tuple[i] = stringify(v)
		}
		out = append(out, tuple)
	}
	return out, rows.Err()
}

// Close releases the connection. Called exactly once after all checks
// complete, regardless of per-check errors.
func (s *Session) Close() error {
	return s.db.Close()
}

// stringify renders a scanned column value the way it should appear in the
// report: raw text for strings and byte slices, blank for NULL.
func stringify(v any) string {
	switch value := v.(type) {
	case nil:
		return ""
	case []byte:
		return string(value)
	case string:
		return value
	case time.Time:
		return value.Format("2006-01-02 15:04:05")
	default:
		return fmt.Sprint(value)
	}
}
