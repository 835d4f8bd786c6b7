package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeWorkload(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "workload.yaml")
	require.NoError(t, os.WriteFile(path, []byte(body), 0644))
	return path
}

func TestLoadWorkload(t *testing.T) {
	path := writeWorkload(t, `
records: 42
seed: 9
prefixes: ["wa", "ki"]
`)
	w, err := LoadWorkload(path)
	require.NoError(t, err)

	assert.Equal(t, 42, w.Records)
	assert.Equal(t, int64(9), w.Seed)
	assert.Equal(t, []string{"wa", "ki"}, w.Prefixes)
	// Fields absent from the file keep their defaults.
	assert.Equal(t, 1000, w.Lookups)
	assert.Equal(t, 100, w.RangeWidth)
}

func TestLoadWorkloadClampsDeletes(t *testing.T) {
	path := writeWorkload(t, `
records: 10
deletes: 50
`)
	w, err := LoadWorkload(path)
	require.NoError(t, err)
	assert.Equal(t, 10, w.Deletes, "cannot delete more records than were loaded")
}

func TestLoadWorkloadRejectsBadYAML(t *testing.T) {
	path := writeWorkload(t, "records: [not a number")
	_, err := LoadWorkload(path)
	assert.Error(t, err)
}

func TestLoadWorkloadMissingFile(t *testing.T) {
	_, err := LoadWorkload(filepath.Join(t.TempDir(), "absent.yaml"))
	assert.Error(t, err)
}

func TestSplitList(t *testing.T) {
	assert.Equal(t, []string{"sm", "jo"}, splitList("sm, jo"))
	assert.Equal(t, []string{"a"}, splitList(",a,,"))
	assert.Nil(t, splitList(""))
}

func TestEnvFallbacks(t *testing.T) {
	t.Setenv("TREEDB_TEST_STR", "hello")
	t.Setenv("TREEDB_TEST_INT", "17")
	t.Setenv("TREEDB_TEST_BAD", "nope")

	assert.Equal(t, "hello", envStr("TREEDB_TEST_STR", "fallback"))
	assert.Equal(t, "fallback", envStr("TREEDB_TEST_UNSET", "fallback"))
	assert.Equal(t, 17, envInt("TREEDB_TEST_INT", 3))
	assert.Equal(t, 3, envInt("TREEDB_TEST_BAD", 3))
	assert.Equal(t, 3, envInt("TREEDB_TEST_UNSET", 3))
}
