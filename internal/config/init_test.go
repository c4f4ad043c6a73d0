package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	t.Setenv("DB_DSN", "user:pass@tcp(localhost:3306)/blog")
	t.Setenv("JWT_SECRET", "secret")

	c, err := Load()
	require.NoError(t, err)
	assert.Equal(t, 8080, c.AppPort)
	assert.Equal(t, "mysql", c.DBDriver)
	assert.Equal(t, 10, c.AmountPosts)
	assert.Equal(t, 20*time.Second, c.IndexCacheTTL)
	assert.Empty(t, c.RedisAddr)
}

func TestLoadPrefixedOverridesBare(t *testing.T) {
	t.Setenv("DB_DSN", "bare")
	t.Setenv("BLOGFEED_DB_DSN", "prefixed")
	t.Setenv("JWT_SECRET", "secret")
	t.Setenv("AMOUNT_POSTS", "3")
	t.Setenv("INDEX_CACHE_TTL", "1m")

	c, err := Load()
	require.NoError(t, err)
	assert.Equal(t, "prefixed", c.DBDSN)
	assert.Equal(t, 3, c.AmountPosts)
	assert.Equal(t, time.Minute, c.IndexCacheTTL)
}

func TestValidate(t *testing.T) {
	c := &Config{DBDriver: "sqlite", AmountPosts: 0, IndexCacheTTL: time.Second}
	err := c.Validate()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "DB_DSN is not set")
	assert.Contains(t, err.Error(), "JWT_SECRET is not set")
	assert.Contains(t, err.Error(), "AMOUNT_POSTS must be >= 1")
	assert.Contains(t, err.Error(), `unsupported DB_DRIVER "sqlite"`)

	ok := &Config{DBDriver: "postgres", DBDSN: "dsn", JWTSecret: "s", AmountPosts: 1, IndexCacheTTL: time.Second}
	assert.NoError(t, ok.Validate())
}

func TestGroupSeeds(t *testing.T) {
	c := &Config{SeedGroups: []string{"cats:Cats and kittens", " dogs ", "", ":nameless", "birds:"}}
	assert.Equal(t, []GroupSeed{
		{Slug: "cats", Title: "Cats and kittens"},
		{Slug: "dogs", Title: "dogs"},
		{Slug: "birds", Title: "birds"},
	}, c.GroupSeeds())
}
