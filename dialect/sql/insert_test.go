package sql

import (
	"testing"

	"github.com/syssam/fluentsql"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestInsert(t *testing.T) {
	tests := []struct {
		name  string
		input *InsertStatement
		want  string
	}{
		{
			name:  "rows",
			input: Insert().Columns("Name", "EmailAddress").Into("Users").Rows(3),
			want: `INSERT INTO Users
    (
        Name,
        EmailAddress
    )
VALUES
    (
        @Name0,
        @EmailAddress0
    ),
    (
        @Name1,
        @EmailAddress1
    ),
    (
        @Name2,
        @EmailAddress2
    )`,
		},
		{
			name:  "one row",
			input: Insert("Name", "EmailAddress").Into("Users"),
			want: `INSERT INTO Users
    (
        Name,
        EmailAddress
    )
VALUES
    (
        @Name,
        @EmailAddress
    )`,
		},
		{
			name:  "explicit single row",
			input: Insert("Name").Into("Users").Rows(1),
			want: `INSERT INTO Users
    (
        Name
    )
VALUES
    (
        @Name
    )`,
		},
		{
			name: "from select",
			input: InsertFrom(
				Select("Name", "EmailAddress").
					From("Users").
					InnerJoin(Table("Teams"), "Users.TeamID = Teams.ID").
					Where("Teams.IsOld = FALSE"),
			).Into("Users"),
			want: `INSERT INTO Users
    (
        Name,
        EmailAddress
    )
SELECT
    Name, EmailAddress
FROM
    Users
    INNER JOIN Teams ON Users.TeamID = Teams.ID
WHERE
    Teams.IsOld = FALSE`,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, mustSQL(t, tt.input))
		})
	}
}

func TestInsert_Unsupported(t *testing.T) {
	_, err := Insert().Into("Users").ToSQL(nil)
	require.Error(t, err)
	assert.ErrorIs(t, err, fluentsql.ErrUnsupportedOperation)
	assert.Empty(t, Insert().Into("Users").String())
}

func TestInsert_SourceError(t *testing.T) {
	src := Select("a").InnerJoin(Table("B"), "1 = 1")
	_, err := InsertFrom(src).Into("T").ToSQL(nil)
	assert.ErrorIs(t, err, fluentsql.ErrInvalidOperation)
}

func TestInsert_Clone(t *testing.T) {
	i := InsertFrom(Select("Name").From("Users")).Into("Archive").Rows(2)
	c := i.Clone()
	c.Source().Where("Name IS NOT NULL")
	c.Into("Other")

	assert.Equal(t, "Archive", i.Table())
	assert.Equal(t, 2, c.RowCount())
	assert.Empty(t, i.Source().WhereList())

	cols := Insert("A", "B").Into("T")
	cc := cols.Clone().SetColumns("C")
	assert.Equal(t, []string{"A", "B"}, cols.ColumnsList())
	assert.Equal(t, []string{"C"}, cc.ColumnsList())
}
