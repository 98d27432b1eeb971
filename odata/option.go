package odata

import (
	"log/slog"
	"strings"
	"time"

	"github.com/syssam/fluentsql"
	"github.com/syssam/fluentsql/dialect"
	"github.com/syssam/fluentsql/dialect/sql"
)

// Option configures a Mapper.
type Option func(*Mapper) error

// ColumnNaming controls how property names become column names.
type ColumnNaming int

const (
	// NamingAsIs uses property names verbatim.
	NamingAsIs ColumnNaming = iota
	// NamingSnake converts each path segment to snake_case.
	NamingSnake
)

// String returns the config spelling of the naming.
func (n ColumnNaming) String() string {
	if n == NamingSnake {
		return "snake"
	}
	return "as_is"
}

// ParseColumnNaming parses "as_is" or "snake".
func ParseColumnNaming(s string) (ColumnNaming, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "as_is", "asis":
		return NamingAsIs, nil
	case "snake", "snake_case":
		return NamingSnake, nil
	default:
		return 0, NewConfigError("column_naming", s, "expected as_is or snake")
	}
}

// WithSchema validates selections against s.
func WithSchema(s *Schema) Option {
	return func(m *Mapper) error {
		if s == nil {
			return NewConfigError("Schema", nil, "schema cannot be nil")
		}
		m.schema = s
		return nil
	}
}

// WithModel validates selections against the schema derived from v.
// See SchemaOf.
func WithModel(v any) Option {
	return func(m *Mapper) error {
		s, err := SchemaOf(v)
		if err != nil {
			return NewConfigError("Model", nil, err.Error())
		}
		m.schema = s
		return nil
	}
}

// WithPolicy sets the unknown field policy. It only matters with a schema.
func WithPolicy(p UnknownFieldPolicy) Option {
	return func(m *Mapper) error {
		if p != RejectUnknown && p != PassThrough {
			return NewConfigError("Policy", p, "unsupported policy")
		}
		m.policy = p
		return nil
	}
}

// WithTable sets the FROM table of mapped statements.
func WithTable(table string) Option {
	return func(m *Mapper) error {
		m.table = strings.TrimSpace(table)
		return nil
	}
}

// WithRenderer sets the renderer used by Render.
func WithRenderer(r sql.Renderer) Option {
	return func(m *Mapper) error {
		if r == nil {
			return NewConfigError("Renderer", nil, "renderer cannot be nil")
		}
		m.renderer = r
		return nil
	}
}

// WithDialect selects the renderer for a dialect name, e.g. "sqlserver".
func WithDialect(name string) Option {
	return func(m *Mapper) error {
		if !dialect.IsSupported(name) {
			return NewConfigError("Dialect", name, "unsupported dialect; use mysql, postgres, sqlite or sqlserver")
		}
		m.dialect = dialect.Normalize(name)
		m.renderer = sql.RendererFor(name)
		return nil
	}
}

// WithCache memoizes Render results in c. Entries are written with ttl.
func WithCache(c fluentsql.Cache, ttl time.Duration) Option {
	return func(m *Mapper) error {
		if c == nil {
			return NewConfigError("Cache", nil, "cache cannot be nil")
		}
		if ttl < 0 {
			return NewConfigError("Cache", ttl, "ttl must not be negative")
		}
		m.cache = c
		m.cacheTTL = ttl
		return nil
	}
}

// WithLogger sets the logger. The default is slog.Default().
func WithLogger(l *slog.Logger) Option {
	return func(m *Mapper) error {
		if l == nil {
			return NewConfigError("Logger", nil, "logger cannot be nil")
		}
		m.logger = l
		return nil
	}
}

// WithColumnNaming sets how property names become column names.
func WithColumnNaming(n ColumnNaming) Option {
	return func(m *Mapper) error {
		if n != NamingAsIs && n != NamingSnake {
			return NewConfigError("ColumnNaming", n, "unsupported naming")
		}
		m.naming = n
		return nil
	}
}

// WithMaxTop caps the page size. A larger $top is lowered to n, and queries
// without $top get a limit of n. Zero disables the cap.
func WithMaxTop(n int) Option {
	return func(m *Mapper) error {
		if n < 0 {
			return NewConfigError("MaxTop", n, "must not be negative")
		}
		m.maxTop = n
		return nil
	}
}
