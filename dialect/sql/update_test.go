package sql

import (
	"testing"

	"github.com/syssam/fluentsql"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestUpdate(t *testing.T) {
	t.Run("single table", func(t *testing.T) {
		u := Update("ID", "Name", "EmailAddress").
			From("Users").
			Where("u.IsCool = TRUE").
			Where("u.Name LIKE @Query")
		assert.Equal(t, `UPDATE Users
SET
    ID = @ID,
    Name = @Name,
    EmailAddress = @EmailAddress
WHERE
    u.IsCool = TRUE AND
    u.Name LIKE @Query`, mustSQL(t, u))
	})

	t.Run("two tables", func(t *testing.T) {
		u := Update("Name").
			Table("u").
			From("Users u").
			InnerJoin(Table("Teams t"), "u.TeamID = t.ID").
			Where("t.IsOld = TRUE")
		assert.Equal(t, `UPDATE u
SET
    Name = @Name
FROM
    Users u
    INNER JOIN Teams t ON u.TeamID = t.ID
WHERE
    t.IsOld = TRUE`, mustSQL(t, u))
		assert.Equal(t, "u", u.TableToUpdate())
	})

	t.Run("aliased table", func(t *testing.T) {
		u := Update("Name").FromSources(Table("Users").As("u"))
		assert.Equal(t, "UPDATE Users u\nSET\n    Name = @Name", mustSQL(t, u))
	})
}

func TestUpdate_Errors(t *testing.T) {
	tests := []struct {
		name  string
		input *UpdateStatement
		want  error
	}{
		{name: "no columns", input: Update().From("Users"), want: fluentsql.ErrUnsupportedOperation},
		{name: "no table", input: Update("Name"), want: fluentsql.ErrUnsupportedOperation},
		{name: "several tables without target", input: Update("Name").From("A", "B"), want: fluentsql.ErrUnsupportedOperation},
		{
			name:  "join without target",
			input: Update("Name").From("A").InnerJoin(Table("B"), "A.ID = B.ID"),
			want:  fluentsql.ErrUnsupportedOperation,
		},
		{name: "join on empty from", input: Update("Name").Table("u").InnerJoin(Table("B"), "1 = 1"), want: fluentsql.ErrInvalidOperation},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := tt.input.ToSQL(nil)
			require.Error(t, err)
			assert.ErrorIs(t, err, tt.want)
		})
	}
}

func TestUpdate_Clone(t *testing.T) {
	u := Update("Name").Table("u").From("Users u").Where("u.ID = @ID")
	c := u.Clone().Columns("Email").Where("u.IsCool = TRUE")
	c.Table("x")

	assert.Equal(t, []string{"Name"}, u.ColumnsList())
	assert.Len(t, u.WhereList(), 1)
	assert.Equal(t, "u", u.TableToUpdate())
	assert.Equal(t, []string{"Name", "Email"}, c.ColumnsList())
	assert.Len(t, c.WhereList(), 2)
}

func TestDelete(t *testing.T) {
	t.Run("single table", func(t *testing.T) {
		d := Delete().
			From("Users").
			Where("u.IsCool = TRUE").
			Where("u.Name LIKE @Query")
		assert.Equal(t, `DELETE Users
WHERE
    u.IsCool = TRUE AND
    u.Name LIKE @Query`, mustSQL(t, d))
	})

	t.Run("two tables", func(t *testing.T) {
		d := Delete().
			Table("u").
			From("Users u").
			InnerJoin(Table("Teams t"), "u.TeamID = t.ID").
			Where("t.IsOld = TRUE")
		assert.Equal(t, `DELETE u
FROM
    Users u
    INNER JOIN Teams t ON u.TeamID = t.ID
WHERE
    t.IsOld = TRUE`, mustSQL(t, d))
		assert.Equal(t, "u", d.TableToDelete())
	})

	t.Run("no where", func(t *testing.T) {
		assert.Equal(t, "DELETE Users", mustSQL(t, Delete().From("Users")))
	})
}

func TestDelete_Errors(t *testing.T) {
	_, err := Delete().ToSQL(nil)
	assert.ErrorIs(t, err, fluentsql.ErrUnsupportedOperation)

	_, err = Delete().FromSources(Select("*").From("T")).ToSQL(nil)
	assert.ErrorIs(t, err, fluentsql.ErrUnsupportedOperation)

	_, err = Delete().Table("u").LeftOuterJoin(Table("B"), "1 = 1").ToSQL(nil)
	assert.ErrorIs(t, err, fluentsql.ErrInvalidOperation)
}

func TestDelete_Clone(t *testing.T) {
	d := Delete().Table("u").From("Users u").Where("u.ID = @ID")
	c := d.Clone().Where("u.Name = @Name").Table("v")
	assert.Len(t, d.WhereList(), 1)
	assert.Equal(t, "u", d.TableToDelete())
	assert.Equal(t, "v", c.TableToDelete())
}
