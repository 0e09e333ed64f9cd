package utils

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGetEnv(t *testing.T) {
	t.Setenv("MOMENTOS_TEST_VALUE", "abc")
	assert.Equal(t, "abc", GetEnv("MOMENTOS_TEST_VALUE", "def"))
	assert.Equal(t, "def", GetEnv("MOMENTOS_TEST_MISSING", "def"))
}

func TestGetEnvInt(t *testing.T) {
	t.Setenv("MOMENTOS_TEST_PORT", "8080")
	t.Setenv("MOMENTOS_TEST_BAD", "eighty")

	assert.Equal(t, 8080, GetEnvInt("MOMENTOS_TEST_PORT", 1))
	assert.Equal(t, 1, GetEnvInt("MOMENTOS_TEST_BAD", 1))
	assert.Equal(t, 1, GetEnvInt("MOMENTOS_TEST_MISSING", 1))
}

func TestGetEnvList(t *testing.T) {
	t.Setenv("MOMENTOS_TEST_LIST", " http://a.test, ,http://b.test ")
	t.Setenv("MOMENTOS_TEST_BLANK", " , ")

	assert.Equal(t, []string{"http://a.test", "http://b.test"}, GetEnvList("MOMENTOS_TEST_LIST", nil))
	assert.Equal(t, []string{"*"}, GetEnvList("MOMENTOS_TEST_BLANK", []string{"*"}))
	assert.Equal(t, []string{"*"}, GetEnvList("MOMENTOS_TEST_MISSING", []string{"*"}))
}

func TestLoadEnv(t *testing.T) {
	dir := t.TempDir()
	wd, err := os.Getwd()
	require.NoError(t, err)
	require.NoError(t, os.Chdir(dir))
	t.Cleanup(func() { _ = os.Chdir(wd) })

	// no .env present
	require.NoError(t, LoadEnv())

	require.NoError(t, os.WriteFile(filepath.Join(dir, ".env"), []byte("MOMENTOS_FROM_DOTENV=yes\n"), 0o644))
	t.Cleanup(func() { _ = os.Unsetenv("MOMENTOS_FROM_DOTENV") })
	require.NoError(t, LoadEnv())
	assert.Equal(t, "yes", os.Getenv("MOMENTOS_FROM_DOTENV"))
}
