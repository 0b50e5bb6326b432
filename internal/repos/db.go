package repos

import (
	"context"
	"database/sql/driver"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
	"modernc.org/sqlite"
)

// foldFunc lowercases with Go's Unicode tables; SQLite's LOWER only folds ASCII.
const foldFunc = "fold_lower"

func init() {
	sqlite.MustRegisterDeterministicScalarFunction(foldFunc, 1, func(_ *sqlite.FunctionContext, args []driver.Value) (driver.Value, error) {
		switch v := args[0].(type) {
		case string:
			return strings.ToLower(v), nil
		case []byte:
			return strings.ToLower(string(v)), nil
		}
		return args[0], nil
	})
}

// DocDB keeps documents as JSON bodies in a single SQLite table.
type DocDB struct {
	db   *sqlx.DB
	name string
}

func OpenDB(dsn string) (*DocDB, error) {
	db, err := sqlx.Open("sqlite", dsn)
	if err != nil {
		return nil, err
	}
	// one connection so :memory: databases are shared by every query
	db.SetMaxOpenConns(1)
	if err = db.Ping(); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("%w: %v", ErrUnavailable, err)
	}

	if err := ensureSchema(db); err != nil {
		_ = db.Close()
		return nil, err
	}
	return &DocDB{db: db, name: dsn}, nil
}

func ensureSchema(db *sqlx.DB) error {
	schema := `
CREATE TABLE IF NOT EXISTS documents(
  seq INTEGER PRIMARY KEY AUTOINCREMENT,
  id TEXT NOT NULL UNIQUE,
  collection TEXT NOT NULL,
  body TEXT NOT NULL CHECK (json_valid(body)),
  created_at TEXT DEFAULT CURRENT_TIMESTAMP
);
CREATE INDEX IF NOT EXISTS idx_documents_collection ON documents(collection, seq);
`
	_, err := db.Exec(schema)
	return err
}

// DB exposes the underlying handle, mainly for tests.
func (s *DocDB) DB() *sqlx.DB { return s.db }

func (s *DocDB) Name() string { return s.name }

func (s *DocDB) Ping(ctx context.Context) error {
	if err := s.db.PingContext(ctx); err != nil {
		return fmt.Errorf("%w: %v", ErrUnavailable, err)
	}
	return nil
}

func (s *DocDB) Close() error { return s.db.Close() }

func (s *DocDB) Insert(ctx context.Context, collection string, record any) (string, error) {
	body, err := json.Marshal(record)
	if err != nil {
		return "", fmt.Errorf("encode %s document: %w", collection, err)
	}
	if len(body) == 0 || body[0] != '{' {
		return "", fmt.Errorf("%s document must be an object", collection)
	}
	id := uuid.NewString()
	_, err = s.db.ExecContext(ctx, `
		INSERT INTO documents(id, collection, body) VALUES (?, ?, ?)
	`, id, collection, string(body))
	if err != nil {
		return "", s.fail(ctx, err)
	}
	return id, nil
}

func (s *DocDB) Find(ctx context.Context, collection string, filter Filter, limit int) ([]Document, error) {
	if err := filter.check(); err != nil {
		return nil, err
	}
	where := `collection = ?`
	args := []any{collection}
	for _, c := range filter {
		switch c.Op {
		case OpEq:
			where += ` AND json_extract(body, ?) = ?`
			args = append(args, "$."+c.Field, c.Value)
		case OpContainsFold:
			where += ` AND instr(` + foldFunc + `(json_extract(body, ?)), ?) > 0`
			args = append(args, "$."+c.Field, strings.ToLower(c.Value))
		}
	}
	if limit <= 0 {
		limit = -1 // sqlite: no limit
	}
	args = append(args, limit)

	var bodies []string
	err := s.db.SelectContext(ctx, &bodies, `
		SELECT body FROM documents
		WHERE `+where+`
		ORDER BY seq
		LIMIT ?`, args...)
	if err != nil {
		return nil, s.fail(ctx, err)
	}

	out := make([]Document, 0, len(bodies))
	for _, b := range bodies {
		var d Document
		if err := json.Unmarshal([]byte(b), &d); err != nil {
			return nil, fmt.Errorf("decode %s document: %w", collection, err)
		}
		delete(d, "_id")
		out = append(out, d)
	}
	return out, nil
}

func (s *DocDB) Count(ctx context.Context, collection string) (int64, error) {
	var n int64
	if err := s.db.GetContext(ctx, &n, `SELECT COUNT(*) FROM documents WHERE collection = ?`, collection); err != nil {
		return 0, s.fail(ctx, err)
	}
	return n, nil
}

func (s *DocDB) CollectionNames(ctx context.Context) ([]string, error) {
	var names []string
	if err := s.db.SelectContext(ctx, &names, `SELECT DISTINCT collection FROM documents ORDER BY collection`); err != nil {
		return nil, s.fail(ctx, err)
	}
	return names, nil
}

// fail marks err as ErrUnavailable when the database itself no longer answers.
func (s *DocDB) fail(ctx context.Context, err error) error {
	if perr := s.db.PingContext(ctx); perr != nil {
		return fmt.Errorf("%w: %v", ErrUnavailable, err)
	}
	return err
}
