package sql

import (
	"context"
	stdsql "database/sql"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	_ "modernc.org/sqlite"
)

// openSQLite returns an in-memory database seeded with users and teams.
func openSQLite(t *testing.T) *stdsql.DB {
	t.Helper()
	db, err := stdsql.Open("sqlite", ":memory:")
	require.NoError(t, err)
	db.SetMaxOpenConns(1)
	t.Cleanup(func() { db.Close() })

	ctx := context.Background()
	for _, stmt := range []string{
		"CREATE TABLE Teams (ID INTEGER PRIMARY KEY, Name TEXT, IsOld BOOLEAN)",
		"CREATE TABLE Users (ID INTEGER PRIMARY KEY, Name TEXT, EmailAddress TEXT, TeamID INTEGER)",
		"INSERT INTO Teams (ID, Name, IsOld) VALUES (1, 'core', FALSE), (2, 'legacy', TRUE)",
	} {
		_, err := db.ExecContext(ctx, stmt)
		require.NoError(t, err)
	}
	return db
}

func TestSQLite_InsertSelectUpdateDelete(t *testing.T) {
	db := openSQLite(t)
	ctx := context.Background()

	insert, err := Insert("Name", "EmailAddress", "TeamID").Into("Users").Rows(3).ToSQL(nil)
	require.NoError(t, err)
	_, err = db.ExecContext(ctx, insert,
		stdsql.Named("Name0", "a8m"), stdsql.Named("EmailAddress0", "a8m@example.com"), stdsql.Named("TeamID0", 1),
		stdsql.Named("Name1", "nati"), stdsql.Named("EmailAddress1", "nati@example.com"), stdsql.Named("TeamID1", 2),
		stdsql.Named("Name2", "masseelch"), stdsql.Named("EmailAddress2", "ms@example.com"), stdsql.Named("TeamID2", 1),
	)
	require.NoError(t, err)

	query, err := Select("u.Name").
		From("Users u").
		InnerJoin(Table("Teams t"), "u.TeamID = t.ID").
		Where("t.IsOld = FALSE").
		OrderByDesc("u.Name").
		Limit(1).
		Offset(1).
		ToSQL(nil)
	require.NoError(t, err)
	var name string
	require.NoError(t, db.QueryRowContext(ctx, query).Scan(&name))
	assert.Equal(t, "a8m", name)

	count, err := Select("u.Name").
		From("Users u").
		LeftOuterJoin(Table("Teams t"), "u.TeamID = t.ID").
		Where("t.IsOld = FALSE").
		OrderBy("u.Name").
		Limit(1).
		ToCount().
		ToSQL(nil)
	require.NoError(t, err)
	var n int
	require.NoError(t, db.QueryRowContext(ctx, count).Scan(&n))
	assert.Equal(t, 2, n)

	update, err := Update("EmailAddress").From("Users").Where("Name = @Name").ToSQL(nil)
	require.NoError(t, err)
	res, err := db.ExecContext(ctx, update, stdsql.Named("EmailAddress", "new@example.com"), stdsql.Named("Name", "nati"))
	require.NoError(t, err)
	affected, err := res.RowsAffected()
	require.NoError(t, err)
	assert.EqualValues(t, 1, affected)

	archive, err := InsertFrom(Select("Name", "EmailAddress").From("Users").Where("TeamID = 2")).Into("Archive").ToSQL(nil)
	require.NoError(t, err)
	_, err = db.ExecContext(ctx, "CREATE TABLE Archive (Name TEXT, EmailAddress TEXT)")
	require.NoError(t, err)
	_, err = db.ExecContext(ctx, archive)
	require.NoError(t, err)
	var email string
	require.NoError(t, db.QueryRowContext(ctx, "SELECT EmailAddress FROM Archive").Scan(&email))
	assert.Equal(t, "new@example.com", email)
}

func TestSQLite_SetOperations(t *testing.T) {
	db := openSQLite(t)
	ctx := context.Background()
	_, err := db.ExecContext(ctx, "INSERT INTO Users (ID, Name, TeamID) VALUES (1, 'a', 1), (2, 'b', 2), (3, 'c', 1)")
	require.NoError(t, err)

	users := Select("TeamID AS ID").From("Users")
	teams := Select("ID").From("Teams")
	old := Select("ID").From("Teams").Where("IsOld = TRUE")

	tests := []struct {
		name string
		op   *SetOperation
		want int
	}{
		{name: "union all", op: users.UnionAll(teams), want: 5},
		{name: "union", op: users.Union(teams), want: 2},
		{name: "intersect then except", op: users.Intersect(teams).Except(old), want: 1},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			query, err := Select("COUNT(*)").FromSources(tt.op.As("Sub")).ToSQL(nil)
			require.NoError(t, err)
			var n int
			require.NoError(t, db.QueryRowContext(ctx, query).Scan(&n))
			assert.Equal(t, tt.want, n)
		})
	}
}
