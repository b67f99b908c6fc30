package vocab

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultSetPopulated(t *testing.T) {
	set := Default()
	assert.NotEmpty(t, set.Tags)
	assert.NotEmpty(t, set.UseCases)
	assert.NotEmpty(t, set.Patterns)
	assert.NotEmpty(t, set.Queries)
	assert.NotEmpty(t, set.Topics)

	for _, tag := range set.Tags {
		assert.NotEmpty(t, tag.Keywords, "tag %s has no keywords", tag.ID)
	}
}

func TestLoadMissingDirKeepsDefaults(t *testing.T) {
	set, err := Load(filepath.Join(t.TempDir(), "nope"))
	require.NoError(t, err)
	assert.Equal(t, Default().Queries, set.Queries)
}

func TestLoadOverridesPerFile(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "queries.yaml"),
		[]byte("- custom query\n"), 0644))

	set, err := Load(dir)
	require.NoError(t, err)
	assert.Equal(t, []string{"custom query"}, set.Queries)
	assert.Equal(t, Default().Tags, set.Tags, "absent files keep defaults")
}

func TestLoadMalformedFile(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "tags.yaml"),
		[]byte(":\tnot yaml"), 0644))

	_, err := Load(dir)
	assert.Error(t, err)
}
