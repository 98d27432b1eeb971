package odata

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"log/slog"
	"maps"
	"net/url"
	"slices"
	"strings"
	"time"

	"github.com/go-openapi/inflect"
	"github.com/vmihailenco/msgpack/v5"

	"github.com/syssam/fluentsql"
	"github.com/syssam/fluentsql/dialect/sql"
)

// Mapper turns query options into SELECT statements.
type Mapper struct {
	schema   *Schema
	policy   UnknownFieldPolicy
	table    string
	dialect  string
	renderer sql.Renderer
	cache    fluentsql.Cache
	cacheTTL time.Duration
	logger   *slog.Logger
	naming   ColumnNaming
	maxTop   int
	variant  string
}

// New returns a Mapper configured by opts. Without options it maps every
// selection verbatim, adds no FROM table and renders LIMIT/OFFSET SQL.
func New(opts ...Option) (*Mapper, error) {
	m := &Mapper{
		renderer: sql.NewRenderer(),
		logger:   slog.Default(),
	}
	for _, opt := range opts {
		if err := opt(m); err != nil {
			return nil, err
		}
	}
	m.variant = m.fingerprint()
	return m, nil
}

// ToSelect maps opts to statements. The first statement selects the mapped
// columns with top and skip as limit and offset; when a count is requested a
// second, COUNT(*) statement follows. Expanded properties are prefixed with
// their navigation path, e.g. "Contact/FirstName".
func (m *Mapper) ToSelect(ctx context.Context, opts *Options) ([]*sql.SelectStatement, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if opts == nil {
		opts = &Options{}
	}
	columns, err := m.columns(ctx, opts.Select, m.schema, "")
	if err != nil {
		return nil, err
	}
	s := sql.Select(columns...)
	if m.table != "" {
		s.From(m.table)
	}
	if limit, ok, err := m.limit(ctx, opts.Top); err != nil {
		return nil, err
	} else if ok {
		s.Limit(limit)
	}
	if opts.Skip != nil {
		if *opts.Skip < 0 {
			return nil, fluentsql.NewInvalidOperationError("ToSelect", "negative $skip")
		}
		s.Offset(*opts.Skip)
	}
	stmts := []*sql.SelectStatement{s}
	if opts.Count {
		stmts = append(stmts, s.ToCount())
	}
	m.logger.DebugContext(ctx, "odata: mapped options",
		slog.Int("columns", len(columns)),
		slog.Bool("count", opts.Count),
	)
	return stmts, nil
}

func (m *Mapper) limit(ctx context.Context, top *int) (int, bool, error) {
	switch {
	case top == nil && m.maxTop > 0:
		return m.maxTop, true, nil
	case top == nil:
		return 0, false, nil
	case *top < 0:
		return 0, false, fluentsql.NewInvalidOperationError("ToSelect", "negative $top")
	case m.maxTop > 0 && *top > m.maxTop:
		m.logger.WarnContext(ctx, "odata: $top exceeds the maximum page size",
			slog.Int("top", *top),
			slog.Int("max_top", m.maxTop),
		)
		return m.maxTop, true, nil
	default:
		return *top, true, nil
	}
}

// columns flattens items into column names. schema is nil when the
// selection is not validated, either because no schema was configured or
// because an unknown navigation was passed through.
func (m *Mapper) columns(ctx context.Context, items []SelectItem, schema *Schema, prefix string) ([]string, error) {
	var columns []string
	for _, item := range items {
		switch it := item.(type) {
		case PathItem:
			c, err := m.property(ctx, it.Property, schema, prefix)
			if err != nil {
				return nil, err
			}
			columns = append(columns, c)
		case *PathItem:
			c, err := m.property(ctx, it.Property, schema, prefix)
			if err != nil {
				return nil, err
			}
			columns = append(columns, c)
		case ExpandItem:
			cs, err := m.expand(ctx, it, schema, prefix)
			if err != nil {
				return nil, err
			}
			columns = append(columns, cs...)
		case *ExpandItem:
			cs, err := m.expand(ctx, *it, schema, prefix)
			if err != nil {
				return nil, err
			}
			columns = append(columns, cs...)
		default:
			return nil, fluentsql.NewUnsupportedOperationError("map select item", fmt.Sprintf("%T", item))
		}
	}
	return columns, nil
}

func (m *Mapper) property(ctx context.Context, name string, schema *Schema, prefix string) (string, error) {
	if name != "*" && schema != nil && !schema.HasField(name) {
		if err := m.unknown(ctx, prefix+name); err != nil {
			return "", err
		}
	}
	return m.column(prefix, name), nil
}

func (m *Mapper) expand(ctx context.Context, item ExpandItem, schema *Schema, prefix string) ([]string, error) {
	var child *Schema
	if schema != nil {
		nav, ok := schema.Nav(item.Navigation)
		if !ok {
			if err := m.unknown(ctx, prefix+item.Navigation); err != nil {
				return nil, err
			}
		}
		child = nav
	}
	path := m.column(prefix, item.Navigation) + "/"
	if len(item.Items) == 0 {
		return []string{path + "*"}, nil
	}
	return m.columns(ctx, item.Items, child, path)
}

func (m *Mapper) unknown(ctx context.Context, path string) error {
	if m.policy == RejectUnknown {
		return &UnknownFieldError{Path: path}
	}
	m.logger.WarnContext(ctx, "odata: passing through unknown field", slog.String("path", path))
	return nil
}

// column joins the already mapped prefix with a property name.
func (m *Mapper) column(prefix, name string) string {
	if m.naming == NamingSnake && name != "*" {
		name = inflect.Underscore(name)
	}
	return prefix + name
}

// Result holds the SQL rendered for one query.
type Result struct {
	SQL      string `msgpack:"sql"`
	CountSQL string `msgpack:"count_sql,omitempty"`
}

// Render parses rawQuery, maps it and renders the statements with the
// configured renderer. With a cache, results are memoized per dialect,
// table, mapper settings and query, so mappers may share one cache; cache
// failures are logged and otherwise ignored.
func (m *Mapper) Render(ctx context.Context, rawQuery string) (*Result, error) {
	values, err := url.ParseQuery(strings.TrimPrefix(rawQuery, "?"))
	if err != nil {
		return nil, &ParseError{Option: "query", Value: rawQuery, Err: err}
	}
	key := m.cacheKey(values.Encode())
	if res, ok := m.cached(ctx, key); ok {
		return res, nil
	}
	opts, err := ParseValues(values)
	if err != nil {
		return nil, err
	}
	stmts, err := m.ToSelect(ctx, opts)
	if err != nil {
		return nil, err
	}
	res := &Result{}
	if res.SQL, err = m.renderer.RenderSelect(stmts[0]); err != nil {
		return nil, err
	}
	if len(stmts) > 1 {
		if res.CountSQL, err = m.renderer.RenderSelect(stmts[1]); err != nil {
			return nil, err
		}
	}
	m.store(ctx, key, res)
	return res, nil
}

// Purge drops every cached result of this mapper. Mappers with the same
// dialect, table and settings share entries.
func (m *Mapper) Purge(ctx context.Context) error {
	if m.cache == nil {
		return nil
	}
	return m.cache.DeletePrefix(ctx, m.cacheKey(""))
}

func (m *Mapper) cacheKey(query string) string {
	return fluentsql.CacheKey{Dialect: m.dialect, Table: m.table, Variant: m.variant, Query: query}.String()
}

// fingerprint hashes every setting that changes the rendered SQL besides
// the dialect name and table. The renderer is identified by its output.
func (m *Mapper) fingerprint() string {
	var b strings.Builder
	fmt.Fprintf(&b, "naming=%s;policy=%s;max_top=%d;", m.naming, m.policy, m.maxTop)
	fmt.Fprintf(&b, "page=%q,%q,%q;", m.renderer.Limit("1"), m.renderer.Offset("2"), m.renderer.LimitOffset("1", "2"))
	b.WriteString("schema=")
	writeSchema(&b, m.schema, make(map[*Schema]int))
	sum := sha256.Sum256([]byte(b.String()))
	return hex.EncodeToString(sum[:8])
}

// writeSchema writes a canonical form of s. Navigations are sorted by name
// and a schema seen before is written as a back reference.
func writeSchema(b *strings.Builder, s *Schema, seen map[*Schema]int) {
	if s == nil {
		b.WriteString("nil")
		return
	}
	if id, ok := seen[s]; ok {
		fmt.Fprintf(b, "#%d", id)
		return
	}
	seen[s] = len(seen)
	fmt.Fprintf(b, "{%q", s.fields)
	for _, name := range slices.Sorted(maps.Keys(s.navs)) {
		fmt.Fprintf(b, " %q:", name)
		writeSchema(b, s.navs[name], seen)
	}
	b.WriteString("}")
}

func (m *Mapper) cached(ctx context.Context, key string) (*Result, bool) {
	if m.cache == nil {
		return nil, false
	}
	data, err := m.cache.Get(ctx, key)
	if err != nil {
		m.logger.WarnContext(ctx, "odata: cache get failed", slog.String("key", key), slog.Any("error", err))
		return nil, false
	}
	if data == nil {
		return nil, false
	}
	var res Result
	if err := msgpack.Unmarshal(data, &res); err != nil {
		m.logger.WarnContext(ctx, "odata: dropping undecodable cache entry", slog.String("key", key), slog.Any("error", err))
		_ = m.cache.Delete(ctx, key)
		return nil, false
	}
	m.logger.DebugContext(ctx, "odata: cache hit", slog.String("key", key))
	return &res, true
}

func (m *Mapper) store(ctx context.Context, key string, res *Result) {
	if m.cache == nil {
		return
	}
	data, err := msgpack.Marshal(res)
	if err != nil {
		m.logger.WarnContext(ctx, "odata: cache encode failed", slog.String("key", key), slog.Any("error", err))
		return
	}
	if err := m.cache.Set(ctx, key, data, m.cacheTTL); err != nil {
		m.logger.WarnContext(ctx, "odata: cache set failed", slog.String("key", key), slog.Any("error", err))
	}
}
