package repos

import (
	"context"
	"errors"
	"fmt"
	"regexp"
	"strings"
	"time"
)

// ErrUnavailable means the document store is absent or cannot be reached.
var ErrUnavailable = errors.New("document store unavailable")

// Document is a stored record with its storage id removed.
type Document map[string]any

type Op int

const (
	OpEq Op = iota
	OpContainsFold
)

// Cond is a single field condition of a Filter.
type Cond struct {
	Field string
	Op    Op
	Value string
}

// Filter is a conjunction of conditions. An empty filter matches everything.
type Filter []Cond

func Eq(field, value string) Cond { return Cond{Field: field, Op: OpEq, Value: value} }

// ContainsFold matches a case-insensitive literal substring.
func ContainsFold(field, value string) Cond {
	return Cond{Field: field, Op: OpContainsFold, Value: value}
}

var reField = regexp.MustCompile(`^[a-z_][a-z0-9_]*$`)

func (f Filter) check() error {
	for _, c := range f {
		if !reField.MatchString(c.Field) {
			return fmt.Errorf("invalid filter field %q", c.Field)
		}
	}
	return nil
}

// Store is a schema-flexible collection store.
type Store interface {
	Insert(ctx context.Context, collection string, record any) (string, error)
	Find(ctx context.Context, collection string, filter Filter, limit int) ([]Document, error)
	Count(ctx context.Context, collection string) (int64, error)
	CollectionNames(ctx context.Context) ([]string, error)
	Ping(ctx context.Context) error
	Name() string
	Close() error
}

const defaultSQLitePath = "chiragbattery.db"

// Open connects to the store named by url. mongodb:// and mongodb+srv://
// select MongoDB; anything else is treated as a SQLite DSN.
func Open(ctx context.Context, url, name string, timeout time.Duration) (Store, error) {
	switch {
	case strings.HasPrefix(url, "mongodb://"), strings.HasPrefix(url, "mongodb+srv://"):
		m, err := OpenMongo(ctx, url, name, timeout)
		if err != nil {
			return nil, err
		}
		return m, nil
	default:
		dsn := strings.TrimPrefix(url, "sqlite://")
		if dsn == "" {
			dsn = defaultSQLitePath
		}
		d, err := OpenDB(dsn)
		if err != nil {
			return nil, err
		}
		return d, nil
	}
}
