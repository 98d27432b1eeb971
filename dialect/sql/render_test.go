package sql

import (
	"testing"

	"github.com/syssam/fluentsql/dialect"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSQLServerRenderer(t *testing.T) {
	r := NewSQLServerRenderer()

	t.Run("limit and offset", func(t *testing.T) {
		s := Select("u.ID").From("Users u").Limit(3).Offset(6)
		query, err := r.RenderSelect(s)
		require.NoError(t, err)
		assert.Equal(t, `SELECT
    u.ID
FROM
    Users u
OFFSET 6 ROWS
FETCH NEXT 3 ROWS ONLY`, query)
	})

	t.Run("limit only", func(t *testing.T) {
		query, err := Select("u.ID").From("Users u").OrderBy("u.ID").Limit(3).ToSQL(r)
		require.NoError(t, err)
		assert.Equal(t, "SELECT\n    u.ID\nFROM\n    Users u\nORDER BY\n    u.ID ASC\nFETCH NEXT 3 ROWS ONLY", query)
	})

	t.Run("offset only", func(t *testing.T) {
		query, err := Select("u.ID").From("Users u").Offset(6).ToSQL(r)
		require.NoError(t, err)
		assert.Equal(t, "SELECT\n    u.ID\nFROM\n    Users u\nOFFSET 6 ROWS", query)
	})

	t.Run("other statements are unchanged", func(t *testing.T) {
		u := Update("Name").From("Users")
		want, err := u.ToSQL(nil)
		require.NoError(t, err)
		got, err := r.RenderUpdate(u)
		require.NoError(t, err)
		assert.Equal(t, want, got)
	})
}

func TestPagination(t *testing.T) {
	tests := []struct {
		name                string
		p                   Pagination
		limit, offset, both string
	}{
		{
			name:   "limit offset",
			p:      LimitOffsetPagination{},
			limit:  "LIMIT 10",
			offset: "OFFSET 20",
			both:   "LIMIT 10 OFFSET 20",
		},
		{
			name:   "offset fetch",
			p:      OffsetFetchPagination{},
			limit:  "FETCH NEXT 10 ROWS ONLY",
			offset: "OFFSET 20 ROWS",
			both:   "OFFSET 20 ROWS\nFETCH NEXT 10 ROWS ONLY",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.limit, tt.p.Limit("10"))
			assert.Equal(t, tt.offset, tt.p.Offset("20"))
			assert.Equal(t, tt.both, tt.p.LimitOffset(tt.p, "10", "20"))
		})
	}
}

func TestRendererFor(t *testing.T) {
	s := Select("*").From("T").Limit(1)
	for name, want := range map[string]string{
		dialect.SQLServer: "FETCH NEXT 1 ROWS ONLY",
		"mssql":           "FETCH NEXT 1 ROWS ONLY",
		dialect.Postgres:  "LIMIT 1",
		dialect.SQLite:    "LIMIT 1",
		dialect.MySQL:     "LIMIT 1",
		"unknown":         "LIMIT 1",
	} {
		query, err := s.ToSQL(RendererFor(name))
		require.NoError(t, err, name)
		assert.Contains(t, query, want, name)
	}
}

type bracketPagination struct{}

func (bracketPagination) Limit(limit string) string   { return "TOP(" + limit + ")" }
func (bracketPagination) Offset(offset string) string { return "SKIP(" + offset + ")" }
func (bracketPagination) LimitOffset(_ Pagination, l, o string) string {
	return "SKIP(" + o + ") TOP(" + l + ")"
}

func TestWithPagination(t *testing.T) {
	r := NewRenderer(WithPagination(bracketPagination{}))
	query, err := Select("*").From("T").Limit(1).Offset(2).ToSQL(r)
	require.NoError(t, err)
	assert.Equal(t, "SELECT\n    *\nFROM\n    T\nSKIP(2) TOP(1)", query)
}

type topPagination struct{ LimitOffsetPagination }

func (topPagination) Limit(limit string) string { return "TOP " + limit }

type rowsPagination struct{ OffsetFetchPagination }

func (rowsPagination) Offset(offset string) string { return "SKIP " + offset + " ROWS" }

func TestWithPagination_PartialOverride(t *testing.T) {
	tests := []struct {
		name string
		p    Pagination
		want string
	}{
		{
			name: "limit only",
			p:    topPagination{},
			want: "SELECT\n    a\nFROM\n    T\nTOP 3 OFFSET 6",
		},
		{
			name: "offset only",
			p:    rowsPagination{},
			want: "SELECT\n    a\nFROM\n    T\nSKIP 6 ROWS\nFETCH NEXT 3 ROWS ONLY",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			query, err := Select("a").From("T").Limit(3).Offset(6).ToSQL(NewRenderer(WithPagination(tt.p)))
			require.NoError(t, err)
			assert.Equal(t, tt.want, query)
		})
	}
}

func TestRenderer_Columns(t *testing.T) {
	r := NewRenderer()
	assert.Equal(t, "*", r.Columns(nil))
	assert.Equal(t, "a, b", r.Columns([]string{"a", "b"}))
}

func TestRenderer_RenderMethods(t *testing.T) {
	r := NewRenderer()

	query, err := r.RenderInsert(Insert("A").Into("T"))
	require.NoError(t, err)
	assert.Equal(t, "INSERT INTO T\n    (\n        A\n    )\nVALUES\n    (\n        @A\n    )", query)

	query, err = r.RenderDelete(Delete().From("T").Where("A = 1"))
	require.NoError(t, err)
	assert.Equal(t, "DELETE T\nWHERE\n    A = 1", query)

	query, err = r.RenderFrom(Table("Users").As("u"))
	require.NoError(t, err)
	assert.Equal(t, "Users u", query)
}

func TestBuilder(t *testing.T) {
	var b Builder
	b.WriteLine("SELECT").Indent().WriteString("1")
	assert.Equal(t, "SELECT\n    1", b.String())
	assert.Equal(t, len("SELECT\n    1"), b.Len())
}

func TestToSQL_TrimsWhitespace(t *testing.T) {
	query, err := ToSQL(Select("1"), nil)
	require.NoError(t, err)
	assert.Equal(t, "SELECT\n    1", query)
}

func TestClauses(t *testing.T) {
	assert.Equal(t, OrderByClause{Column: "a", Asc: true}, Asc("a"))
	assert.Equal(t, OrderByClause{Column: "a"}, Desc("a"))
	assert.Equal(t, "ASC", Asc("a").direction())
	assert.Equal(t, "DESC", Desc("a").direction())
	assert.Equal(t, GroupByClause{Column: "g"}, GroupBy("g"))

	w := WhereClause{Clause: "a = 1", Or: true}
	assert.Equal(t, w, w.Clone())
}
