package fluentsql_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/syssam/fluentsql"
)

func TestCacheKey(t *testing.T) {
	k := fluentsql.CacheKey{Dialect: "sqlserver", Table: "Users", Variant: "v1", Query: "$top=10"}
	assert.Equal(t, "sqlserver:Users:v1:$top=10", k.String())
}

func TestLRUCache(t *testing.T) {
	ctx := context.Background()

	t.Run("InvalidSize", func(t *testing.T) {
		_, err := fluentsql.NewLRUCache(0)
		assert.Error(t, err)
	})

	t.Run("GetSetDelete", func(t *testing.T) {
		c, err := fluentsql.NewLRUCache(4)
		require.NoError(t, err)

		v, err := c.Get(ctx, "missing")
		require.NoError(t, err)
		assert.Nil(t, v)

		require.NoError(t, c.Set(ctx, "a", []byte("1"), 0))
		v, err = c.Get(ctx, "a")
		require.NoError(t, err)
		assert.Equal(t, []byte("1"), v)

		require.NoError(t, c.Delete(ctx, "a"))
		v, err = c.Get(ctx, "a")
		require.NoError(t, err)
		assert.Nil(t, v)
	})

	t.Run("Eviction", func(t *testing.T) {
		c, err := fluentsql.NewLRUCache(2)
		require.NoError(t, err)
		require.NoError(t, c.Set(ctx, "a", []byte("1"), 0))
		require.NoError(t, c.Set(ctx, "b", []byte("2"), 0))
		require.NoError(t, c.Set(ctx, "c", []byte("3"), 0))
		assert.Equal(t, 2, c.Len())
		v, _ := c.Get(ctx, "a")
		assert.Nil(t, v)
	})

	t.Run("DeletePrefixAndClear", func(t *testing.T) {
		c, err := fluentsql.NewLRUCache(8)
		require.NoError(t, err)
		require.NoError(t, c.Set(ctx, "sqlite:Users:a", []byte("1"), 0))
		require.NoError(t, c.Set(ctx, "sqlite:Users:b", []byte("2"), 0))
		require.NoError(t, c.Set(ctx, "sqlserver:Users:a", []byte("3"), 0))

		require.NoError(t, c.DeletePrefix(ctx, "sqlite:"))
		assert.Equal(t, 1, c.Len())

		require.NoError(t, c.Clear(ctx))
		assert.Equal(t, 0, c.Len())
	})
}
