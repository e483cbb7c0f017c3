package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), ".lcfriends.yml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestLoad(t *testing.T) {
	t.Run("missing file yields defaults", func(t *testing.T) {
		config, err := Load(filepath.Join(t.TempDir(), "nope.yml"))
		require.NoError(t, err)
		assert.Equal(t, "localhost:6379", config.Redis.Addr)
		assert.Equal(t, "https://leetcode.com/graphql/", config.Endpoint)
		assert.Equal(t, "default", config.Namespace)
		assert.Equal(t, 5, config.SubmissionLimit)
	})

	t.Run("file values win over defaults", func(t *testing.T) {
		path := writeConfig(t, `
redis:
  addr: redis.internal:6380
  db: 2
namespace: work
submission_limit: 10
`)
		config, err := Load(path)
		require.NoError(t, err)
		assert.Equal(t, "redis.internal:6380", config.Redis.Addr)
		assert.Equal(t, 2, config.Redis.DB)
		assert.Equal(t, "work", config.Namespace)
		assert.Equal(t, 10, config.SubmissionLimit)
		// Untouched fields keep defaults.
		assert.Equal(t, "https://leetcode.com/graphql/", config.Endpoint)
	})

	t.Run("env overrides win over file", func(t *testing.T) {
		path := writeConfig(t, "endpoint: https://file.example/graphql\n")
		t.Setenv("LCFRIENDS_ENDPOINT", "https://env.example/graphql")
		t.Setenv("LCFRIENDS_REDIS_ADDR", "env-redis:6379")

		config, err := Load(path)
		require.NoError(t, err)
		assert.Equal(t, "https://env.example/graphql", config.Endpoint)
		assert.Equal(t, "env-redis:6379", config.Redis.Addr)
	})

	t.Run("malformed YAML is rejected", func(t *testing.T) {
		path := writeConfig(t, "redis: [not: a: map\n")
		_, err := Load(path)
		assert.Error(t, err)
	})

	t.Run("negative submission_limit is rejected", func(t *testing.T) {
		path := writeConfig(t, "submission_limit: -1\n")
		_, err := Load(path)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "submission_limit")
	})
}
